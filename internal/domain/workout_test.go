package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRestPolicy_Resolve(t *testing.T) {
	tests := []struct {
		name     string
		policy   RestPolicy
		regular  int
		expected int
	}{
		{"same", SameAsRegularRest(), 15, 15},
		{"same negative regular", SameAsRegularRest(), -1, 0},
		{"none", NoRest(), 15, 0},
		{"custom", CustomRest(40), 15, 40},
		{"custom zero", CustomRest(0), 15, 0},
		{"custom negative", CustomRest(-3), 15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.policy.Resolve(tt.regular))
		})
	}
}

func TestRestPolicy_String(t *testing.T) {
	assert.Equal(t, "same", SameAsRegularRest().String())
	assert.Equal(t, "none", NoRest().String())
	assert.Equal(t, "custom", CustomRest(5).String())
	assert.Equal(t, "none", CustomRest(0).String())
}

func TestWorkoutDefinition_Validate(t *testing.T) {
	tests := []struct {
		name    string
		workout WorkoutDefinition
		wantErr bool
	}{
		{"valid", singleExercise(2, 10, 10, NoRest()), false},
		{"no exercises", WorkoutDefinition{Name: "Empty"}, false},
		{"missing name", WorkoutDefinition{}, true},
		{"unnamed exercise", WorkoutDefinition{Name: "W", Exercises: []ExerciseDefinition{{Sets: 1}}}, true},
		{"negative sets", singleExercise(-1, 10, 10, NoRest()), true},
		{"negative prepare", WorkoutDefinition{Name: "W", PrepareSec: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.workout.Validate()
			if tt.wantErr {
				assert.True(t, errors.Is(err, ErrInvalidWorkout))
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestQuickStartWorkout_RoundTripsParams(t *testing.T) {
	params := QuickStartParams{Sets: 6, WorkSec: 40, RestSec: 20, SkipLastRest: true}

	w := QuickStartWorkout(params)

	assert.Equal(t, QuickStartID, w.ID)
	assert.Equal(t, SourceSystem, w.Source)
	assert.NoError(t, w.Validate())

	back, ok := QuickStartParamsFrom(w)
	assert.True(t, ok)
	assert.Equal(t, params, back)

	// 6 work sets and 5 rests, no rest after the last set
	assert.Equal(t, 6*40+5*20, NewPlan(w).TotalDurationSec())
}

func TestQuickStartParamsFrom_NoExercises(t *testing.T) {
	_, ok := QuickStartParamsFrom(WorkoutDefinition{})
	assert.False(t, ok)
}
