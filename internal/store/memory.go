// In-memory key/value store for tests and ephemeral sessions.
package store

import "sync"

// MemoryKV implements KV over a plain map. Safe for concurrent use.
type MemoryKV struct {
	mu     sync.RWMutex
	values map[string]string
	closed bool

	// SetErr, when non-nil, is returned from every Set. Tests use it to
	// simulate an unavailable store.
	SetErr error
	// GetErr, when non-nil, is returned from every Get.
	GetErr error

	setCalls int
}

// NewMemoryKV returns an empty in-memory store.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{values: make(map[string]string)}
}

func (m *MemoryKV) Get(key string) (string, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.closed {
		return "", false, ErrStoreClosed
	}
	if m.GetErr != nil {
		return "", false, m.GetErr
	}
	v, ok := m.values[key]
	return v, ok, nil
}

func (m *MemoryKV) Set(key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrStoreClosed
	}
	if m.SetErr != nil {
		return m.SetErr
	}
	m.setCalls++
	m.values[key] = value
	return nil
}

// SetCalls reports how many writes have succeeded. Tests use it to verify
// that no-op mutations do not persist.
func (m *MemoryKV) SetCalls() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.setCalls
}

// Close marks the store closed; further operations fail with ErrStoreClosed.
func (m *MemoryKV) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
