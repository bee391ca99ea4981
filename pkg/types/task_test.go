package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeTitle(t *testing.T) {
	tests := []struct {
		name  string
		title string
		want  string
	}{
		{name: "plain title", title: "Ship it", want: "Ship it"},
		{name: "trims whitespace", title: "  Ship it  ", want: "Ship it"},
		{name: "empty becomes untitled", title: "", want: UntitledTitle},
		{name: "whitespace only becomes untitled", title: "   \t", want: UntitledTitle},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTitle(tt.title))
		})
	}
}

func TestSetVelocityOverride(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  *float64
	}{
		{name: "positive sets override", value: 1.5, want: ptr(1.5)},
		{name: "zero clears override", value: 0, want: nil},
		{name: "negative clears override", value: -2, want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := &Task{Title: "t", VelocityOverride: ptr(3.0)}
			task.SetVelocityOverride(tt.value)
			if tt.want == nil {
				assert.Nil(t, task.VelocityOverride)
			} else {
				assert.NotNil(t, task.VelocityOverride)
				assert.Equal(t, *tt.want, *task.VelocityOverride)
			}
		})
	}
}

func TestEffectiveVelocity(t *testing.T) {
	t.Run("override wins when set", func(t *testing.T) {
		task := &Task{VelocityOverride: ptr(2.5)}
		assert.Equal(t, 2.5, task.EffectiveVelocity(1.8))
	})

	t.Run("falls back to global without override", func(t *testing.T) {
		task := &Task{}
		assert.Equal(t, 1.8, task.EffectiveVelocity(1.8))
	})
}

func TestFilterCriteria(t *testing.T) {
	tests := []struct {
		name  string
		input []Criterion
		want  []Criterion
	}{
		{
			name: "drops blank placeholder row",
			input: []Criterion{
				{Text: "", Points: 0, Done: false},
				{Text: "A", Points: 2, Done: true},
			},
			want: []Criterion{{Text: "A", Points: 2, Done: true}},
		},
		{
			name:  "keeps empty text with nonzero points",
			input: []Criterion{{Text: "", Points: 1}},
			want:  []Criterion{{Text: "", Points: 1}},
		},
		{
			name:  "keeps text with zero points",
			input: []Criterion{{Text: "review", Points: 0}},
			want:  []Criterion{{Text: "review", Points: 0}},
		},
		{
			name:  "trims kept text",
			input: []Criterion{{Text: "  padded  ", Points: 1}},
			want:  []Criterion{{Text: "padded", Points: 1}},
		},
		{
			name:  "whitespace-only text with zero points is blank",
			input: []Criterion{{Text: "   ", Points: 0}},
			want:  []Criterion{},
		},
		{
			name:  "preserves order",
			input: []Criterion{{Text: "b", Points: 1}, {Text: "", Points: 0}, {Text: "a", Points: 2}},
			want:  []Criterion{{Text: "b", Points: 1}, {Text: "a", Points: 2}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterCriteria(tt.input))
		})
	}
}

func TestCriteriaEqual(t *testing.T) {
	a := []Criterion{{Text: "A", Points: 2, Done: true}, {Text: "B", Points: 1}}

	tests := []struct {
		name string
		b    []Criterion
		want bool
	}{
		{name: "identical", b: []Criterion{{Text: "A", Points: 2, Done: true}, {Text: "B", Points: 1}}, want: true},
		{name: "different order", b: []Criterion{{Text: "B", Points: 1}, {Text: "A", Points: 2, Done: true}}, want: false},
		{name: "different done flag", b: []Criterion{{Text: "A", Points: 2}, {Text: "B", Points: 1}}, want: false},
		{name: "different points", b: []Criterion{{Text: "A", Points: 3, Done: true}, {Text: "B", Points: 1}}, want: false},
		{name: "different length", b: []Criterion{{Text: "A", Points: 2, Done: true}}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CriteriaEqual(a, tt.b))
		})
	}

	t.Run("both empty", func(t *testing.T) {
		assert.True(t, CriteriaEqual(nil, []Criterion{}))
	})
}

func TestTaskClone(t *testing.T) {
	orig := &Task{
		ID:               "id-1",
		Title:            "t",
		PlannedPoints:    5,
		DaysWorked:       2,
		VelocityOverride: ptr(1.5),
		Criteria:         []Criterion{{Text: "A", Points: 2}},
	}

	cp := orig.Clone()
	cp.Title = "changed"
	*cp.VelocityOverride = 9
	cp.Criteria[0].Done = true

	assert.Equal(t, "t", orig.Title)
	assert.Equal(t, 1.5, *orig.VelocityOverride)
	assert.False(t, orig.Criteria[0].Done)
}

func ptr(v float64) *float64 { return &v }
