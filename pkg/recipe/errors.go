package recipe

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyIDName     = errors.New("recipe: idname is required")
	ErrInvalidEndpoint = errors.New("recipe: invalid endpoint")
	ErrLookup          = errors.New("recipe: lookup failed")
	ErrResponseFormat  = errors.New("recipe: malformed response")
)

// StatusError is a reply outside the 2xx range.
type StatusError struct {
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("recipe: server responded %d", e.StatusCode)
}

func (e *StatusError) Is(target error) bool { return target == ErrLookup }

// BackendError carries the {"error": "..."} message of a reply.
type BackendError struct {
	Message string
}

func (e *BackendError) Error() string { return "recipe: " + e.Message }

func (e *BackendError) Is(target error) bool { return target == ErrLookup }
