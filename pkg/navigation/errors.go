package navigation

import (
	"errors"
	"fmt"
)

var ErrInvalidTransition = errors.New("navigation: invalid transition")

// NoTransitionError reports an event the machine has no transition for.
type NoTransitionError struct {
	State State
	Event Event
}

func (e *NoTransitionError) Error() string {
	return fmt.Sprintf("navigation: no transition from %q on %q", e.State, e.Event)
}

func IsNoTransition(err error) bool {
	var e *NoTransitionError
	return errors.As(err, &e)
}
