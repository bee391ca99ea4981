// Package session implements the model layer: one Session exclusively owns
// the application state tree for the lifetime of a run, applies every
// mutation, and persists the whole tree through the state store after each
// change. Operations are synchronous and never fail because persistence
// failed; the in-memory tree stays authoritative.
package session

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/abacus/internal/store"
	"github.com/mesh-intelligence/abacus/pkg/types"
)

// Save strategies. Immediate persists after every mutation; debounce delays
// the save until a short idle window has passed, coalescing rapid edits.
const (
	SaveImmediate = "immediate"
	SaveDebounce  = "debounce"
)

// DefaultDebounceWindow is the idle window used by the debounce strategy
// when none is configured.
const DefaultDebounceWindow = 500 * time.Millisecond

// Options configures a Session.
type Options struct {
	Strategy       string        // SaveImmediate (default) or SaveDebounce.
	DebounceWindow time.Duration // Idle window for SaveDebounce.
}

// Session owns the application state for one run.
type Session struct {
	mu    sync.Mutex
	store *store.StateStore
	state types.AppState

	saver    *debouncer // nil for the immediate strategy
	loadWarn error      // informational: why Load fell back to defaults
	saveErr  error      // most recent persistence failure, if any
}

// Open hydrates a session from the store. A missing or unreadable stored
// state falls back to the default tree; the reason is available from
// LoadWarning and never prevents the session from opening.
func Open(st *store.StateStore, opts Options) *Session {
	state, loadErr := st.Load()
	s := &Session{
		store:    st,
		state:    state,
		loadWarn: loadErr,
	}

	if opts.Strategy == SaveDebounce {
		window := opts.DebounceWindow
		if window <= 0 {
			window = DefaultDebounceWindow
		}
		s.saver = newDebouncer(window, s.saveSnapshot)
	}
	return s
}

// LoadWarning returns the reason the session started from the default state,
// or nil if the stored state loaded cleanly (or no state was stored yet).
func (s *Session) LoadWarning() error { return s.loadWarn }

// SaveError returns the most recent persistence failure, or nil. Saves are
// best-effort; mutations succeed even when this is non-nil.
func (s *Session) SaveError() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveErr
}

// CreateTask allocates a new task with default fields and inserts it. The
// title is trimmed, an empty title becomes the untitled fallback, and an
// exact match against any existing title fails with ErrDuplicateTitle.
func (s *Session) CreateTask(title string) (*types.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title = types.NormalizeTitle(title)
	if s.state.FindByTitle(title, "") != nil {
		return nil, types.ErrDuplicateTitle
	}

	t := &types.Task{
		ID:            generateID(),
		Title:         title,
		PlannedPoints: types.DefaultPlannedPoints,
		DaysWorked:    0,
		Criteria:      []types.Criterion{},
	}
	s.state.Tasks[t.ID] = t
	s.persistLocked()
	return t.Clone(), nil
}

// RenameTask updates a task's title in place. Renaming to the current title
// is a no-op. A collision with any other task's title fails with
// ErrDuplicateTitle and leaves the stored title unchanged.
func (s *Session) RenameTask(id, newTitle string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.state.Tasks[id]
	if !ok {
		return types.ErrTaskNotFound
	}

	newTitle = types.NormalizeTitle(newTitle)
	if newTitle == t.Title {
		return nil
	}
	if s.state.FindByTitle(newTitle, id) != nil {
		return types.ErrDuplicateTitle
	}

	t.Title = newTitle
	s.persistLocked()
	return nil
}

// DeleteTask removes the task immediately. Missing IDs fail with
// ErrTaskNotFound and change nothing.
func (s *Session) DeleteTask(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.state.Tasks[id]; !ok {
		return types.ErrTaskNotFound
	}
	delete(s.state.Tasks, id)
	s.persistLocked()
	return nil
}

// SetPlannedPoints sets the story points budgeted for the task.
func (s *Session) SetPlannedPoints(id string, points float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if points < 0 {
		return types.ErrNegativePoints
	}
	t, ok := s.state.Tasks[id]
	if !ok {
		return types.ErrTaskNotFound
	}
	if t.PlannedPoints == points {
		return nil
	}
	t.PlannedPoints = points
	s.persistLocked()
	return nil
}

// SetVelocityOverride sets the per-task velocity. A value <= 0 clears the
// override, falling back to the global velocity.
func (s *Session) SetVelocityOverride(id string, velocity float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.state.Tasks[id]
	if !ok {
		return types.ErrTaskNotFound
	}

	before := t.VelocityOverride
	t.SetVelocityOverride(velocity)
	after := t.VelocityOverride
	if before == nil && after == nil {
		return nil
	}
	if before != nil && after != nil && *before == *after {
		return nil
	}
	s.persistLocked()
	return nil
}

// LogWork adds days to the task's cumulative worked total. Days worked only
// ever increases; negative amounts fail with ErrNegativeDays.
func (s *Session) LogWork(id string, days float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if days < 0 {
		return types.ErrNegativeDays
	}
	t, ok := s.state.Tasks[id]
	if !ok {
		return types.ErrTaskNotFound
	}
	if days == 0 {
		return nil
	}
	t.DaysWorked += days
	s.persistLocked()
	return nil
}

// SetGlobalVelocity sets the session-wide work rate in story points per day.
func (s *Session) SetGlobalVelocity(velocity float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if velocity <= 0 {
		return types.ErrInvalidVelocity
	}
	if s.state.GlobalVelocity == velocity {
		return nil
	}
	s.state.GlobalVelocity = velocity
	s.persistLocked()
	return nil
}

// ReplaceCriteria replaces the task's full criteria list. Blank placeholder
// rows (empty text, zero points) are dropped first; if the filtered list
// equals the current one field-by-field and in order, nothing is persisted.
func (s *Session) ReplaceCriteria(id string, criteria []types.Criterion) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.state.Tasks[id]
	if !ok {
		return types.ErrTaskNotFound
	}

	filtered := types.FilterCriteria(criteria)
	if types.CriteriaEqual(filtered, t.Criteria) {
		return nil
	}
	t.Criteria = filtered
	s.persistLocked()
	return nil
}

// Task returns a copy of the task with the given ID.
func (s *Session) Task(id string) (*types.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.state.Tasks[id]
	if !ok {
		return nil, types.ErrTaskNotFound
	}
	return t.Clone(), nil
}

// Tasks returns copies of all tasks in display order: by title,
// case-insensitive.
func (s *Session) Tasks() []*types.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	sorted := s.state.SortedTasks()
	out := make([]*types.Task, len(sorted))
	for i, t := range sorted {
		out[i] = t.Clone()
	}
	return out
}

// GlobalVelocity returns the session-wide work rate.
func (s *Session) GlobalVelocity() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.GlobalVelocity
}

// State returns a deep copy of the whole state tree.
func (s *Session) State() types.AppState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// TaskMetrics computes the derived metrics for the task at its effective
// velocity. Metrics are recomputed on every call.
func (s *Session) TaskMetrics(id string) (types.Metrics, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t, ok := s.state.Tasks[id]
	if !ok {
		return types.Metrics{}, types.ErrTaskNotFound
	}
	return types.ComputeMetrics(t, s.state.GlobalVelocity), nil
}

// Flush persists the current state immediately, regardless of strategy.
func (s *Session) Flush() error {
	if s.saver != nil {
		return s.saver.Flush()
	}
	return s.saveSnapshot()
}

// Close flushes any pending save and releases the store. Idempotent on the
// saver; the store's own Close semantics apply.
func (s *Session) Close() error {
	var saveErr error
	if s.saver != nil {
		saveErr = s.saver.Stop()
	} else {
		saveErr = s.saveSnapshot()
	}

	if err := s.store.Close(); err != nil {
		return err
	}
	return saveErr
}

// persistLocked triggers persistence after a mutation. The caller holds mu.
// Immediate strategy saves now; debounce schedules a save for the idle
// window. Save failures are recorded, not raised: the in-memory tree remains
// the source of truth.
func (s *Session) persistLocked() {
	if s.saver != nil {
		s.saver.Schedule()
		return
	}
	s.saveErr = s.store.Save(s.state)
}

// saveSnapshot persists the current state. Used as the debouncer's flush
// target and by Flush/Close, so it takes the lock itself and always writes
// the newest tree: the last write wins.
func (s *Session) saveSnapshot() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saveErr = s.store.Save(s.state)
	return s.saveErr
}

// generateID returns a new UUID v7 for task IDs, falling back to v4 if v7
// generation fails.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
