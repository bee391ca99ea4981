package store

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/abacus/pkg/types"
)

func TestStateStoreLoadDefaults(t *testing.T) {
	t.Run("missing key yields default state", func(t *testing.T) {
		s := New(NewMemoryKV())
		state, err := s.Load()
		require.NoError(t, err)
		assert.Equal(t, types.DefaultGlobalVelocity, state.GlobalVelocity)
		assert.Empty(t, state.Tasks)
	})

	t.Run("unparseable document falls back to default", func(t *testing.T) {
		kv := NewMemoryKV()
		require.NoError(t, kv.Set(StorageKey, "{{{ not json"))

		s := New(kv)
		state, err := s.Load()
		assert.ErrorIs(t, err, ErrParseFailure)
		assert.Equal(t, types.DefaultGlobalVelocity, state.GlobalVelocity)
		assert.Empty(t, state.Tasks)
	})

	t.Run("unavailable store falls back to default", func(t *testing.T) {
		kv := NewMemoryKV()
		kv.GetErr = errors.New("disk on fire")

		s := New(kv)
		state, err := s.Load()
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrParseFailure)
		assert.Equal(t, types.DefaultGlobalVelocity, state.GlobalVelocity)
	})
}

func TestStateStoreSaveLoadRoundTrip(t *testing.T) {
	kv := NewMemoryKV()
	s := New(kv)

	state := types.DefaultState()
	state.GlobalVelocity = 2
	state.Tasks["a"] = &types.Task{
		ID:            "a",
		Title:         "Alpha",
		PlannedPoints: 10,
		DaysWorked:    1,
		Criteria: []types.Criterion{
			{Text: "first", Points: 5, Done: true},
			{Text: "second", Points: 3},
		},
	}

	require.NoError(t, s.Save(state))

	loaded, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, state.GlobalVelocity, loaded.GlobalVelocity)
	require.Contains(t, loaded.Tasks, "a")
	assert.Equal(t, state.Tasks["a"].Title, loaded.Tasks["a"].Title)
	assert.Equal(t, state.Tasks["a"].Criteria, loaded.Tasks["a"].Criteria)
}

func TestStateStoreSaveFailure(t *testing.T) {
	kv := NewMemoryKV()
	kv.SetErr = errors.New("store unavailable")

	s := New(kv)
	err := s.Save(types.DefaultState())
	assert.Error(t, err)
}

func TestOpenBackends(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		s, err := Open(types.Config{Backend: types.BackendMemory})
		require.NoError(t, err)
		defer s.Close()

		state, err := s.Load()
		require.NoError(t, err)
		assert.Empty(t, state.Tasks)
	})

	t.Run("json creates data dir", func(t *testing.T) {
		dir := t.TempDir() + "/nested/data"
		s, err := Open(types.Config{Backend: types.BackendJSON, DataDir: dir})
		require.NoError(t, err)
		defer s.Close()

		require.NoError(t, s.Save(types.DefaultState()))
	})

	t.Run("sqlite creates database", func(t *testing.T) {
		s, err := Open(types.Config{Backend: types.BackendSQLite, DataDir: t.TempDir()})
		require.NoError(t, err)
		defer s.Close()

		require.NoError(t, s.Save(types.DefaultState()))
	})

	t.Run("invalid config rejected", func(t *testing.T) {
		_, err := Open(types.Config{Backend: "redis"})
		assert.ErrorIs(t, err, types.ErrBackendUnknown)
	})
}
