package gateway

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidEndpoint = errors.New("gateway: invalid endpoint")
	ErrInvalidAction   = errors.New("gateway: action is required")
	ErrInvalidPayload  = errors.New("gateway: payload cannot be encoded")
	ErrInvalidMode     = errors.New("gateway: unknown success mode")

	ErrTransport      = errors.New("gateway: transport failure")
	ErrResponseFormat = errors.New("gateway: malformed response")
	ErrApplication    = errors.New("gateway: backend reported failure")
)

// TransportError is a reply outside the 2xx range.
type TransportError struct {
	StatusCode int
	// StatusText is the reason phrase, e.g. "Not Found".
	StatusText string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("gateway: server responded %d %s", e.StatusCode, e.StatusText)
}

func (e *TransportError) Is(target error) bool { return target == ErrTransport }

// ApplicationError is a well-formed reply that does not report success.
type ApplicationError struct {
	// Message is the backend supplied reason; it may be empty.
	Message string
	Body    map[string]any
}

func (e *ApplicationError) Error() string {
	if e.Message == "" {
		return ErrApplication.Error()
	}
	return ErrApplication.Error() + ": " + e.Message
}

func (e *ApplicationError) Is(target error) bool { return target == ErrApplication }
