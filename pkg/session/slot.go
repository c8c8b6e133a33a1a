package session

import (
	"context"
	"slices"
	"sync"
)

// Slot is the raw storage for the single session record.
type Slot interface {
	// Get returns the stored bytes or ErrSlotEmpty.
	Get(ctx context.Context) ([]byte, error)

	// Set replaces the stored bytes.
	Set(ctx context.Context, value []byte) error

	// Delete removes the stored bytes. It must be idempotent.
	Delete(ctx context.Context) error
}

// MemorySlot keeps the record in memory.
type MemorySlot struct {
	mu    sync.RWMutex
	value []byte
}

// NewMemorySlot creates a slot, optionally pre-filled with raw bytes.
func NewMemorySlot(initial ...byte) *MemorySlot {
	m := &MemorySlot{}
	if len(initial) > 0 {
		m.value = slices.Clone(initial)
	}
	return m
}

func (m *MemorySlot) Get(ctx context.Context) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.value == nil {
		return nil, ErrSlotEmpty
	}
	return slices.Clone(m.value), nil
}

func (m *MemorySlot) Set(ctx context.Context, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = slices.Clone(value)
	if m.value == nil {
		m.value = []byte{}
	}
	return nil
}

func (m *MemorySlot) Delete(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.value = nil
	return nil
}
