// Shared helpers for abacus CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/mesh-intelligence/abacus/internal/paths"
	"github.com/mesh-intelligence/abacus/internal/session"
	"github.com/mesh-intelligence/abacus/internal/store"
	"github.com/mesh-intelligence/abacus/pkg/types"
)

// sysError marks a failure of the environment (config, store, filesystem)
// rather than of the user's input, so main can map it to a distinct exit
// status.
type sysError struct {
	err error
}

func (e sysError) Error() string { return e.err.Error() }
func (e sysError) Unwrap() error { return e.err }

// openSession resolves directories, opens the configured store, and hydrates
// a session from it. The caller must defer closeSession. A stored state that
// fails to load produces a warning, not an error; the session starts from
// the default tree.
func openSession() (*session.Session, error) {
	dataDir, err := paths.ResolveDataDir(flagDataDir, configDataDir)
	if err != nil {
		return nil, sysError{err: fmt.Errorf("resolve data dir: %w", err)}
	}

	backend := configBackend
	if backend == "" {
		backend = defaultBackend
	}

	st, err := store.Open(types.Config{Backend: backend, DataDir: dataDir})
	if err != nil {
		return nil, sysError{err: fmt.Errorf("open store: %w", err)}
	}

	opts := session.Options{Strategy: configSaveStrategy}
	if configDebounceMS > 0 {
		opts.DebounceWindow = time.Duration(configDebounceMS) * time.Millisecond
	}

	s := session.Open(st, opts)
	if warn := s.LoadWarning(); warn != nil {
		fmt.Fprintln(os.Stderr, "Warning: starting from defaults:", warn)
	}
	return s, nil
}

// closeSession flushes and closes the session, reporting any persistence
// failure as a warning. State already applied in memory is not rolled back.
func closeSession(s *session.Session) {
	if err := s.Close(); err != nil {
		fmt.Fprintln(os.Stderr, "Warning: state not saved:", err)
	}
}

// resolveTask finds a task by exact ID, unique ID prefix, or exact title.
func resolveTask(s *session.Session, ref string) (*types.Task, error) {
	if t, err := s.Task(ref); err == nil {
		return t, nil
	}

	var byPrefix *types.Task
	for _, t := range s.Tasks() {
		if strings.HasPrefix(t.ID, ref) {
			if byPrefix != nil {
				return nil, fmt.Errorf("task reference %q is ambiguous", ref)
			}
			byPrefix = t
		}
	}
	if byPrefix != nil {
		return byPrefix, nil
	}

	for _, t := range s.Tasks() {
		if t.Title == ref {
			return t, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", types.ErrTaskNotFound, ref)
}

// printJSON writes v as indented JSON to stdout.
func printJSON(v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(out))
	return nil
}

// shortID truncates an ID to its first 8 characters for table output.
func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// formatDays renders a day count for humans; infinity prints as "inf".
func formatDays(d float64) string {
	if math.IsInf(d, 1) {
		return "inf"
	}
	return fmt.Sprintf("%.2f", d)
}

// verdictLabel maps a verdict constant to its display form.
func verdictLabel(verdict string) string {
	switch verdict {
	case types.VerdictOnTrack:
		return "on track"
	case types.VerdictAtRisk:
		return "AT RISK"
	case types.VerdictUndetermined:
		return "undetermined"
	default:
		return verdict
	}
}

// taskJSONView is the JSON output shape for a task plus its metrics.
type taskJSONView struct {
	ID               string              `json:"id"`
	Title            string              `json:"title"`
	PlannedPoints    float64             `json:"planned_points"`
	DaysWorked       float64             `json:"days_worked"`
	VelocityOverride *float64            `json:"velocity_override"`
	Criteria         []criterionJSONView `json:"criteria"`
	Metrics          metricsJSONView     `json:"metrics"`
}

// criterionJSONView is the JSON output shape for one criterion row.
type criterionJSONView struct {
	Text   string  `json:"text"`
	Points float64 `json:"points"`
	Done   bool    `json:"done"`
}

// metricsJSONView renders metrics with RequiredDays as a string so +Inf
// survives JSON encoding.
type metricsJSONView struct {
	TotalPoints       float64 `json:"total_points"`
	CompletedPoints   float64 `json:"completed_points"`
	IncompletePoints  float64 `json:"incomplete_points"`
	EffectiveVelocity float64 `json:"effective_velocity"`
	RequiredDays      string  `json:"required_days"`
	PlannedDays       float64 `json:"planned_days"`
	RemainingTime     float64 `json:"remaining_time"`
	Verdict           string  `json:"verdict"`
}

func newTaskJSONView(t *types.Task, m types.Metrics) taskJSONView {
	criteria := make([]criterionJSONView, len(t.Criteria))
	for i, c := range t.Criteria {
		criteria[i] = criterionJSONView{Text: c.Text, Points: c.Points, Done: c.Done}
	}
	return taskJSONView{
		ID:               t.ID,
		Title:            t.Title,
		PlannedPoints:    t.PlannedPoints,
		DaysWorked:       t.DaysWorked,
		VelocityOverride: t.VelocityOverride,
		Criteria:         criteria,
		Metrics: metricsJSONView{
			TotalPoints:       m.TotalPoints,
			CompletedPoints:   m.CompletedPoints,
			IncompletePoints:  m.IncompletePoints,
			EffectiveVelocity: m.EffectiveVelocity,
			RequiredDays:      formatDays(m.RequiredDays),
			PlannedDays:       m.PlannedDays,
			RemainingTime:     m.RemainingTime,
			Verdict:           m.Verdict,
		},
	}
}
