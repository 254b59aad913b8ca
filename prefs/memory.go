package prefs

import "sync"

// Memory keeps values in a map. Nothing survives Close.
type Memory struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewMemory returns an empty in-memory backend.
func NewMemory() *Memory {
	return &Memory{values: map[string]any{}}
}

// Get returns the value for key or ErrNotFound.
func (m *Memory) Get(key string) (any, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return v, nil
}

// Set stores a bool or string value.
func (m *Memory) Set(key string, value any) error {
	if err := checkValue(value); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

// Close drops every value.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values = map[string]any{}
	return nil
}
