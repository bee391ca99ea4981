package types

import "math"

// Risk verdicts. A task is classified by comparing the calendar time left in
// its plan against the time its incomplete points require at the effective
// velocity.
const (
	VerdictOnTrack      = "on_track"
	VerdictAtRisk       = "at_risk"
	VerdictUndetermined = "undetermined"
)

// Metrics holds the derived figures for one task at one effective velocity.
// All fields are recomputed on every read; nothing is cached.
type Metrics struct {
	TotalPoints       float64 // Sum of points over all criteria.
	CompletedPoints   float64 // Sum of points over done criteria.
	IncompletePoints  float64 // TotalPoints - CompletedPoints.
	EffectiveVelocity float64 // Override when set, otherwise global velocity.
	RequiredDays      float64 // IncompletePoints / velocity; +Inf at velocity <= 0.
	PlannedDays       float64 // PlannedPoints / velocity; 0 at velocity <= 0.
	RemainingTime     float64 // max(0, PlannedDays - DaysWorked).
	Verdict           string  // One of the Verdict constants.
}

// ComputeMetrics derives the metrics for a task given the global velocity.
// Pure: the task is not modified.
func ComputeMetrics(t *Task, globalVelocity float64) Metrics {
	var total, completed float64
	for _, c := range t.Criteria {
		total += c.Points
		if c.Done {
			completed += c.Points
		}
	}

	m := Metrics{
		TotalPoints:       total,
		CompletedPoints:   completed,
		IncompletePoints:  total - completed,
		EffectiveVelocity: t.EffectiveVelocity(globalVelocity),
	}

	if m.EffectiveVelocity > 0 {
		m.RequiredDays = m.IncompletePoints / m.EffectiveVelocity
		m.PlannedDays = t.PlannedPoints / m.EffectiveVelocity
	} else {
		m.RequiredDays = math.Inf(1)
		m.PlannedDays = 0
	}

	m.RemainingTime = math.Max(0, m.PlannedDays-t.DaysWorked)

	switch {
	case m.EffectiveVelocity <= 0:
		m.Verdict = VerdictUndetermined
	case m.RemainingTime < m.RequiredDays:
		m.Verdict = VerdictAtRisk
	default:
		m.Verdict = VerdictOnTrack
	}

	return m
}
