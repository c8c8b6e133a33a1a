package navigation

import (
	"context"
	"fmt"
	"sync"
)

// State of the navigation header.
type State string

const (
	Authenticated State = "authenticated"
	Anonymous     State = "anonymous"
)

// Event drives the navigation state machine.
type Event string

const (
	SessionFound   Event = "session.found"
	SessionAbsent  Event = "session.absent"
	SessionCorrupt Event = "session.corrupt"
	LoggedOut      Event = "logout"
)

// Action runs when a transition is taken, before the state changes.
// Returning an error aborts the transition.
type Action func(ctx context.Context, from, to State, event Event) error

type transition struct {
	to      State
	actions []Action
}

// machine is a table driven FSM: [from][event] -> transition.
type machine struct {
	mu          sync.RWMutex
	current     State
	transitions map[State]map[Event]transition
}

func newMachine(initial State) *machine {
	return &machine{
		current:     initial,
		transitions: make(map[State]map[Event]transition),
	}
}

func (m *machine) add(from, to State, event Event, actions ...Action) error {
	if from == "" || to == "" || event == "" {
		return ErrInvalidTransition
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.transitions[from] == nil {
		m.transitions[from] = make(map[Event]transition)
	}
	m.transitions[from][event] = transition{to: to, actions: actions}
	return nil
}

func (m *machine) Current() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

func (m *machine) Fire(ctx context.Context, event Event) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	t, ok := m.transitions[m.current][event]
	if !ok {
		return &NoTransitionError{State: m.current, Event: event}
	}
	for _, action := range t.actions {
		if err := action(ctx, m.current, t.to, event); err != nil {
			return fmt.Errorf("navigation: action failed: %w", err)
		}
	}
	m.current = t.to
	return nil
}
