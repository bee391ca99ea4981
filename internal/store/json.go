// JSON record structures for the persisted state document. These mirror the
// on-disk format and keep serialization concerns out of the domain types.
package store

import (
	"encoding/json"

	"github.com/mesh-intelligence/abacus/pkg/types"
)

// stateJSON is the root document stored under StorageKey.
type stateJSON struct {
	GlobalVelocity float64             `json:"global_velocity"`
	Tasks          map[string]taskJSON `json:"tasks"`
}

// taskJSON represents one task in the persisted document.
type taskJSON struct {
	ID               string          `json:"id"`
	Title            string          `json:"title"`
	PlannedPoints    float64         `json:"planned_points"`
	DaysWorked       float64         `json:"days_worked"`
	VelocityOverride *float64        `json:"velocity_override"`
	Criteria         []criterionJSON `json:"criteria"`
}

// criterionJSON represents one acceptance criterion row.
type criterionJSON struct {
	Text   string  `json:"text"`
	Points float64 `json:"points"`
	Done   bool    `json:"done"`
}

// encodeState serializes the state tree to the stored document format.
// Blank placeholder criteria rows are never written.
func encodeState(state types.AppState) (string, error) {
	doc := stateJSON{
		GlobalVelocity: state.GlobalVelocity,
		Tasks:          make(map[string]taskJSON, len(state.Tasks)),
	}
	for id, t := range state.Tasks {
		rec := taskJSON{
			ID:            t.ID,
			Title:         t.Title,
			PlannedPoints: t.PlannedPoints,
			DaysWorked:    t.DaysWorked,
			Criteria:      make([]criterionJSON, 0, len(t.Criteria)),
		}
		if t.VelocityOverride != nil && *t.VelocityOverride > 0 {
			v := *t.VelocityOverride
			rec.VelocityOverride = &v
		}
		for _, c := range t.Criteria {
			if c.IsBlank() {
				continue
			}
			rec.Criteria = append(rec.Criteria, criterionJSON{
				Text:   c.Text,
				Points: c.Points,
				Done:   c.Done,
			})
		}
		doc.Tasks[id] = rec
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// decodeState parses a stored document back into a state tree. Field values
// are normalized on the way in: a non-positive velocity override becomes no
// override, and a task record missing its own ID inherits the map key.
func decodeState(raw string) (types.AppState, error) {
	var doc stateJSON
	if err := json.Unmarshal([]byte(raw), &doc); err != nil {
		return types.AppState{}, err
	}

	state := types.AppState{
		GlobalVelocity: doc.GlobalVelocity,
		Tasks:          make(map[string]*types.Task, len(doc.Tasks)),
	}
	if state.GlobalVelocity <= 0 {
		state.GlobalVelocity = types.DefaultGlobalVelocity
	}

	for id, rec := range doc.Tasks {
		t := &types.Task{
			ID:            rec.ID,
			Title:         rec.Title,
			PlannedPoints: rec.PlannedPoints,
			DaysWorked:    rec.DaysWorked,
			Criteria:      make([]types.Criterion, 0, len(rec.Criteria)),
		}
		if t.ID == "" {
			t.ID = id
		}
		if rec.VelocityOverride != nil && *rec.VelocityOverride > 0 {
			v := *rec.VelocityOverride
			t.VelocityOverride = &v
		}
		for _, c := range rec.Criteria {
			crit := types.Criterion{Text: c.Text, Points: c.Points, Done: c.Done}
			if crit.IsBlank() {
				continue
			}
			t.Criteria = append(t.Criteria, crit)
		}
		state.Tasks[t.ID] = t
	}

	return state, nil
}
