package page

import "errors"

var (
	ErrNilDocument     = errors.New("page.nil_document")
	ErrInvalidLocation = errors.New("page.invalid_location")
)
