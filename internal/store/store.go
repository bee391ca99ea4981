// Package store persists the application state tree as a single JSON
// document in a local key/value store. The KV contract is the only thing a
// backend must provide; the StateStore layers the fixed storage key, the
// codec, and the default-state fallback on top.
package store

import (
	"errors"
	"fmt"
	"os"

	"github.com/mesh-intelligence/abacus/pkg/types"
)

// StorageKey is the single key the estimator uses. The whole state tree
// lives under it; no other keys are touched.
const StorageKey = "task_progress_state"

// Store errors.
var (
	ErrStoreClosed  = errors.New("store is closed")
	ErrParseFailure = errors.New("stored state failed to parse")
)

// KV is the key/value contract a persistence backend implements. Get returns
// the stored value and whether the key was present.
type KV interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Close() error
}

// StateStore reads and writes the application state through a KV backend.
// Persistence is best-effort: Load always returns a usable state, and a
// failed Save leaves the in-memory tree as the source of truth.
type StateStore struct {
	kv KV
}

// New wraps an already-open KV backend.
func New(kv KV) *StateStore {
	return &StateStore{kv: kv}
}

// Open creates the backend described by config and wraps it in a StateStore.
// The data directory is created if it does not exist.
func Open(config types.Config) (*StateStore, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if config.Backend != types.BackendMemory {
		if err := os.MkdirAll(dataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
	}

	var (
		kv  KV
		err error
	)
	switch config.Backend {
	case types.BackendSQLite:
		kv, err = openSQLiteKV(dataDir)
	case types.BackendJSON:
		kv, err = openFileKV(dataDir)
	case types.BackendMemory:
		kv = NewMemoryKV()
	default:
		return nil, types.ErrBackendUnknown
	}
	if err != nil {
		return nil, err
	}
	return New(kv), nil
}

// Load reads the state tree from the store. A missing key yields the default
// state with a nil error; an unreadable store or unparseable document also
// yields the default state, with a non-nil error the caller may log or
// ignore. Load never fails the session.
func (s *StateStore) Load() (types.AppState, error) {
	raw, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		return types.DefaultState(), fmt.Errorf("read state: %w", err)
	}
	if !ok || raw == "" {
		return types.DefaultState(), nil
	}

	state, err := decodeState(raw)
	if err != nil {
		// Incompatible or corrupt document: fall back to the default
		// state. The stored data is not recoverable here; the next save
		// overwrites it.
		return types.DefaultState(), fmt.Errorf("%w: %v", ErrParseFailure, err)
	}
	return state, nil
}

// Save serializes the entire state tree and writes it under the storage key.
// Every save writes the complete tree; there is no partial persistence.
func (s *StateStore) Save(state types.AppState) error {
	raw, err := encodeState(state)
	if err != nil {
		return fmt.Errorf("encode state: %w", err)
	}
	if err := s.kv.Set(StorageKey, raw); err != nil {
		return fmt.Errorf("write state: %w", err)
	}
	return nil
}

// Close releases the underlying backend.
func (s *StateStore) Close() error {
	return s.kv.Close()
}
