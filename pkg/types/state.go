package types

import (
	"sort"
	"strings"
)

// DefaultGlobalVelocity is the global work rate assumed for a fresh state,
// in story points per day.
const DefaultGlobalVelocity = 1.8

// AppState is the root of the application state tree: one global velocity
// plus the task collection keyed by task ID. One AppState exists per running
// session; it is hydrated from the store at startup and persisted whole on
// every change.
type AppState struct {
	GlobalVelocity float64
	Tasks          map[string]*Task
}

// DefaultState returns a fresh state with the default global velocity and no
// tasks.
func DefaultState() AppState {
	return AppState{
		GlobalVelocity: DefaultGlobalVelocity,
		Tasks:          make(map[string]*Task),
	}
}

// SortedTasks returns the tasks ordered by title, case-insensitive. Map
// insertion order is irrelevant; this is the display order.
func (s AppState) SortedTasks() []*Task {
	tasks := make([]*Task, 0, len(s.Tasks))
	for _, t := range s.Tasks {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return strings.ToLower(tasks[i].Title) < strings.ToLower(tasks[j].Title)
	})
	return tasks
}

// FindByTitle returns the task whose title exactly matches the given title
// (case-sensitive), or nil. excludeID skips one task, so rename can check
// collisions against every other task.
func (s AppState) FindByTitle(title, excludeID string) *Task {
	for id, t := range s.Tasks {
		if id == excludeID {
			continue
		}
		if t.Title == title {
			return t
		}
	}
	return nil
}

// Clone returns a deep copy of the state tree.
func (s AppState) Clone() AppState {
	cp := AppState{
		GlobalVelocity: s.GlobalVelocity,
		Tasks:          make(map[string]*Task, len(s.Tasks)),
	}
	for id, t := range s.Tasks {
		cp.Tasks[id] = t.Clone()
	}
	return cp
}
