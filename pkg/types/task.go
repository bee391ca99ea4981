package types

import (
	"errors"
	"strings"
)

// UntitledTitle is the fallback title for a task created or renamed with an
// empty (or all-whitespace) title.
const UntitledTitle = "Untitled Task"

// Default field values for a freshly created task.
const (
	DefaultPlannedPoints = 3.0
)

// Task operation errors.
var (
	ErrDuplicateTitle  = errors.New("a task with this title already exists")
	ErrTaskNotFound    = errors.New("task not found")
	ErrInvalidVelocity = errors.New("velocity must be positive")
	ErrNegativePoints  = errors.New("points must not be negative")
	ErrNegativeDays    = errors.New("days must not be negative")
)

// Task is a unit of tracked work, composed of weighted acceptance criteria.
type Task struct {
	ID               string      // UUID v7, generated on creation, immutable.
	Title            string      // Non-empty, unique across all tasks.
	PlannedPoints    float64     // Story points budgeted for the task, >= 0.
	DaysWorked       float64     // Cumulative logged days, >= 0, only increases.
	VelocityOverride *float64    // Per-task velocity in SP/day; nil means use the global value.
	Criteria         []Criterion // Ordered acceptance criteria.
}

// Criterion is a discrete, weighted, completable sub-requirement of a task.
type Criterion struct {
	Text   string
	Points float64
	Done   bool
}

// NormalizeTitle trims surrounding whitespace and substitutes the untitled
// fallback for an empty result.
func NormalizeTitle(title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return UntitledTitle
	}
	return title
}

// SetVelocityOverride sets the per-task velocity. A value <= 0 clears the
// override, falling back to the global velocity.
func (t *Task) SetVelocityOverride(v float64) {
	if v <= 0 {
		t.VelocityOverride = nil
		return
	}
	t.VelocityOverride = &v
}

// EffectiveVelocity returns the task's velocity override when set, otherwise
// the given global velocity.
func (t *Task) EffectiveVelocity(globalVelocity float64) float64 {
	if t.VelocityOverride != nil && *t.VelocityOverride > 0 {
		return *t.VelocityOverride
	}
	return globalVelocity
}

// IsBlank reports whether the criterion is a placeholder row: empty text and
// zero points. Blank rows are dropped before criteria are stored.
func (c Criterion) IsBlank() bool {
	return strings.TrimSpace(c.Text) == "" && c.Points == 0
}

// FilterCriteria returns the criteria with blank placeholder rows removed,
// preserving order. Text of kept rows is trimmed.
func FilterCriteria(criteria []Criterion) []Criterion {
	out := make([]Criterion, 0, len(criteria))
	for _, c := range criteria {
		if c.IsBlank() {
			continue
		}
		c.Text = strings.TrimSpace(c.Text)
		out = append(out, c)
	}
	return out
}

// CriteriaEqual reports whether two criteria lists are equal: same length,
// same order, every field identical.
func CriteriaEqual(a, b []Criterion) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy of the task.
func (t *Task) Clone() *Task {
	cp := *t
	if t.VelocityOverride != nil {
		v := *t.VelocityOverride
		cp.VelocityOverride = &v
	}
	cp.Criteria = make([]Criterion, len(t.Criteria))
	copy(cp.Criteria, t.Criteria)
	return &cp
}
