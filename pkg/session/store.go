package session

import (
	"context"
	"errors"
	"log/slog"
)

// Store loads, saves and clears the login record held by a Slot.
type Store struct {
	slot   Slot
	logger *slog.Logger
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used to report corrupt records.
func WithLogger(l *slog.Logger) StoreOption {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewStore creates a Store backed by slot.
func NewStore(slot Slot, opts ...StoreOption) *Store {
	s := &Store{
		slot:   slot,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load returns the stored session.
// It returns ErrNotFound when nothing is stored, ErrCorrupt when the stored
// bytes are not a complete record and ErrSlotUnavailable on backend failure.
func (s *Store) Load(ctx context.Context) (Session, error) {
	raw, err := s.slot.Get(ctx)
	switch {
	case errors.Is(err, ErrSlotEmpty):
		return Session{}, ErrNotFound
	case errors.Is(err, ErrCorrupt):
		return Session{}, err
	case err != nil:
		return Session{}, errors.Join(ErrSlotUnavailable, err)
	}
	if len(raw) == 0 {
		return Session{}, ErrNotFound
	}
	return decode(raw)
}

// Lookup is the fail-soft form of Load: any failure is logged and reported
// as an absent session.
func (s *Store) Lookup(ctx context.Context) (Session, bool) {
	sess, err := s.Load(ctx)
	switch {
	case err == nil:
		return sess, true
	case errors.Is(err, ErrNotFound):
	case errors.Is(err, ErrCorrupt):
		s.logger.WarnContext(ctx, "stored session is corrupt, treating as absent", "error", err)
	default:
		s.logger.ErrorContext(ctx, "session slot read failed", "error", err)
	}
	return Session{}, false
}

// Save replaces the stored record. It is used by the login flow.
func (s *Store) Save(ctx context.Context, sess Session) error {
	raw, err := encode(sess)
	if err != nil {
		return err
	}
	if err := s.slot.Set(ctx, raw); err != nil {
		return errors.Join(ErrSlotUnavailable, err)
	}
	return nil
}

// Clear removes the stored record. Clearing an empty slot is not an error.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.slot.Delete(ctx); err != nil && !errors.Is(err, ErrSlotEmpty) {
		return errors.Join(ErrSlotUnavailable, err)
	}
	return nil
}
