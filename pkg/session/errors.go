package session

import "errors"

var (
	// ErrNotFound indicates no record is stored.
	ErrNotFound = errors.New("session.not_found")

	// ErrCorrupt indicates the stored record cannot be parsed or is incomplete.
	ErrCorrupt = errors.New("session.corrupt")

	// ErrInvalidSession indicates an attempt to save an incomplete record.
	ErrInvalidSession = errors.New("session.invalid")

	// ErrSlotEmpty is returned by a Slot that holds nothing.
	ErrSlotEmpty = errors.New("session.slot_empty")

	// ErrSlotUnavailable wraps backend failures while reading or writing a slot.
	ErrSlotUnavailable = errors.New("session.slot_unavailable")
)
