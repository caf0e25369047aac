package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func catchUpPlan() *Plan {
	// work 20, rest 10, work 20, rest 10, work 20, done
	return NewPlan(WorkoutDefinition{
		Exercises: []ExerciseDefinition{
			{Name: "Squats", Sets: 3, WorkSec: 20, RestSec: 10, RestPolicy: NoRest()},
		},
	})
}

func TestCatchUp_AnchorsAtSegmentEnds(t *testing.T) {
	p := catchUpPlan()
	s := NewRuntimeSnapshot("w", 1_000)

	got, advanced := CatchUp(p, s, 1_000+47_500)

	assert.True(t, advanced)
	assert.Equal(t, 2, got.SegmentIndex)
	assert.Equal(t, int64(1_000+30_000), got.SegmentStartedAtMs)
	assert.Equal(t, 3, got.RemainingSeconds(p, 1_000+47_500))
	assert.False(t, got.IsFinished)
}

func TestCatchUp_StopsAtDone(t *testing.T) {
	p := catchUpPlan()
	s := NewRuntimeSnapshot("w", 0)

	got, advanced := CatchUp(p, s, 10*60_000)

	assert.True(t, advanced)
	assert.Equal(t, p.DoneIndex, got.SegmentIndex)
	assert.True(t, got.IsFinished)
}

func TestCatchUp_NoChange(t *testing.T) {
	p := catchUpPlan()
	s := NewRuntimeSnapshot("w", 0)

	got, advanced := CatchUp(p, s, 19_999)
	assert.False(t, advanced)
	assert.Equal(t, s, got)

	paused := Pause(s, 5_000)
	got, advanced = CatchUp(p, paused, 10*60_000)
	assert.False(t, advanced)
	assert.Equal(t, paused, got)
}
