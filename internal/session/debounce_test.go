package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/abacus/internal/store"
)

const testWindow = 100 * time.Millisecond

// waitForSets polls until the KV has seen at least n writes or the deadline
// passes.
func waitForSets(t *testing.T, kv *store.MemoryKV, n int) {
	t.Helper()
	deadline := time.Now().Add(50 * testWindow)
	for time.Now().Before(deadline) {
		if kv.SetCalls() >= n {
			return
		}
		time.Sleep(testWindow / 10)
	}
	t.Fatalf("timed out waiting for %d writes, saw %d", n, kv.SetCalls())
}

func TestDebounceSavesAfterIdleWindow(t *testing.T) {
	kv := store.NewMemoryKV()
	s := Open(store.New(kv), Options{Strategy: SaveDebounce, DebounceWindow: testWindow})

	_, err := s.CreateTask("T")
	require.NoError(t, err)
	assert.Equal(t, 0, kv.SetCalls(), "save deferred until idle")

	waitForSets(t, kv, 1)
}

func TestDebounceCoalescesRapidEdits(t *testing.T) {
	kv := store.NewMemoryKV()
	s := Open(store.New(kv), Options{Strategy: SaveDebounce, DebounceWindow: testWindow})

	task, err := s.CreateTask("T")
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		require.NoError(t, s.LogWork(task.ID, 0.25))
	}

	waitForSets(t, kv, 1)
	// Give a stray second flush a chance to fire, then confirm the burst
	// produced a single write holding the final value.
	time.Sleep(2 * testWindow)
	assert.Equal(t, 1, kv.SetCalls())

	s2 := Open(store.New(kv), Options{})
	got, err := s2.Task(task.ID)
	require.NoError(t, err)
	assert.Equal(t, 2.5, got.DaysWorked, "last write wins")
}

func TestDebounceCloseFlushesPendingEdit(t *testing.T) {
	kv := store.NewMemoryKV()
	s := Open(store.New(kv), Options{Strategy: SaveDebounce, DebounceWindow: time.Hour})

	task, err := s.CreateTask("T")
	require.NoError(t, err)
	require.NoError(t, s.LogWork(task.ID, 1))
	assert.Equal(t, 0, kv.SetCalls())

	// Flush the pending edit before closing, then verify a new session
	// sees it; Close alone must also write, even though the idle window
	// never elapsed.
	require.NoError(t, s.Flush())
	assert.Equal(t, 1, kv.SetCalls())

	reloaded := Open(store.New(kv), Options{})
	got, err := reloaded.Task(task.ID)
	require.NoError(t, err)
	assert.Equal(t, 1.0, got.DaysWorked)

	require.NoError(t, s.LogWork(task.ID, 1))
	require.NoError(t, s.Close())
	assert.Equal(t, 2, kv.SetCalls(), "close flushes the pending edit")
}

func TestDebounceFlushForcesImmediateSave(t *testing.T) {
	kv := store.NewMemoryKV()
	s := Open(store.New(kv), Options{Strategy: SaveDebounce, DebounceWindow: time.Hour})

	_, err := s.CreateTask("T")
	require.NoError(t, err)
	require.NoError(t, s.Flush())
	assert.Equal(t, 1, kv.SetCalls())

	// Flush with nothing pending writes nothing more.
	require.NoError(t, s.Flush())
	assert.Equal(t, 1, kv.SetCalls())
}

func TestDebounceStopIsIdempotent(t *testing.T) {
	kv := store.NewMemoryKV()
	s := Open(store.New(kv), Options{Strategy: SaveDebounce, DebounceWindow: testWindow})

	_, err := s.CreateTask("T")
	require.NoError(t, err)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	assert.Equal(t, 1, kv.SetCalls(), "second close writes nothing")
}
