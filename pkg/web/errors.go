package web

import "errors"

var (
	ErrUnknownPage    = errors.New("web: unknown page")
	ErrShell          = errors.New("web: invalid page shell")
	ErrUnknownBackend = errors.New("web: unknown session backend")
	ErrBadLogin       = errors.New("web: login requires id name and display name")
)
