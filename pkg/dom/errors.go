package dom

import "errors"

var (
	// ErrParse is returned when markup cannot be parsed into a tree.
	ErrParse = errors.New("dom.parse_failed")

	// ErrRender is returned when a tree cannot be serialized.
	ErrRender = errors.New("dom.render_failed")
)
