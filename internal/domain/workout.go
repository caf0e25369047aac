package domain

import "time"

// RestPolicyKind selects how the rest after the last set of an exercise is resolved
type RestPolicyKind int

const (
	RestSameAsRegular RestPolicyKind = iota // use the exercise's regular rest
	RestNone                                // no rest after the last set
	RestCustom                              // use RestPolicy.Seconds
)

// RestPolicy is the post-last-set rest policy of an exercise
type RestPolicy struct {
	Kind    RestPolicyKind
	Seconds int // only meaningful for RestCustom
}

// SameAsRegularRest returns the policy that reuses the regular rest duration
func SameAsRegularRest() RestPolicy { return RestPolicy{Kind: RestSameAsRegular} }

// NoRest returns the policy that skips the rest after the last set
func NoRest() RestPolicy { return RestPolicy{Kind: RestNone} }

// CustomRest returns a policy with a custom rest duration.
// A duration <= 0 behaves like NoRest.
func CustomRest(seconds int) RestPolicy {
	return RestPolicy{Kind: RestCustom, Seconds: seconds}
}

// Resolve returns the rest duration after the last set given the regular rest
func (p RestPolicy) Resolve(regularRestSec int) int {
	switch p.Kind {
	case RestNone:
		return 0
	case RestCustom:
		return max(0, p.Seconds)
	default:
		return max(0, regularRestSec)
	}
}

// String renders the policy the way workout files spell it
func (p RestPolicy) String() string {
	switch p.Kind {
	case RestNone:
		return "none"
	case RestCustom:
		if p.Seconds <= 0 {
			return "none"
		}
		return "custom"
	default:
		return "same"
	}
}

// WorkoutSource records where a workout definition came from
type WorkoutSource int

const (
	SourceSystem WorkoutSource = iota // shipped with the app (quick start)
	SourceUser                        // created by the user
	SourcePreset                      // imported preset
)

// QuickStartID is the fixed id of the quick start workout
const QuickStartID = "quick_start"

// ExerciseDefinition describes one exercise of a workout
type ExerciseDefinition struct {
	ID         string
	Name       string
	RestPolicy RestPolicy
	RestSec    int
	Sets       int
	WorkSec    int
}

// WorkoutDefinition is an immutable description of a workout
type WorkoutDefinition struct {
	CreatedAt  time.Time
	Exercises  []ExerciseDefinition
	ID         string
	IsDeleted  bool
	IsPinned   bool
	Name       string
	PrepareSec int
	Source     WorkoutSource
	UpdatedAt  time.Time
}

// Validate reports definitions that cannot be stored.
// The planner never needs this: it clamps bad values on its own.
func (w WorkoutDefinition) Validate() error {
	if w.Name == "" {
		return invalidWorkout("workout name is required")
	}
	for i, ex := range w.Exercises {
		if ex.Name == "" {
			return invalidWorkout("exercise %d has no name", i+1)
		}
		if ex.Sets < 0 || ex.WorkSec < 0 || ex.RestSec < 0 {
			return invalidWorkout("exercise %q has negative values", ex.Name)
		}
	}
	if w.PrepareSec < 0 {
		return invalidWorkout("prepare time cannot be negative")
	}
	return nil
}

// QuickStartParams are the knobs of the single-exercise quick start workout
type QuickStartParams struct {
	RestSec      int
	Sets         int
	SkipLastRest bool
	WorkSec      int
}

// DefaultQuickStartParams returns the quick start values used on first run
func DefaultQuickStartParams() QuickStartParams {
	return QuickStartParams{Sets: 8, WorkSec: 20, RestSec: 10}
}

// QuickStartWorkout maps quick start parameters to a workout definition
func QuickStartWorkout(p QuickStartParams) WorkoutDefinition {
	policy := SameAsRegularRest()
	if p.SkipLastRest {
		policy = NoRest()
	}
	return WorkoutDefinition{
		ID:     QuickStartID,
		Name:   "Quick start",
		Source: SourceSystem,
		Exercises: []ExerciseDefinition{{
			ID:         QuickStartID + "_ex",
			Name:       "Work",
			Sets:       p.Sets,
			WorkSec:    p.WorkSec,
			RestSec:    p.RestSec,
			RestPolicy: policy,
		}},
	}
}

// QuickStartParamsFrom reads quick start parameters back from a workout.
// Returns false when the workout has no exercises.
func QuickStartParamsFrom(w WorkoutDefinition) (QuickStartParams, bool) {
	if len(w.Exercises) == 0 {
		return QuickStartParams{}, false
	}
	ex := w.Exercises[0]
	return QuickStartParams{
		Sets:         ex.Sets,
		WorkSec:      ex.WorkSec,
		RestSec:      ex.RestSec,
		SkipLastRest: ex.RestPolicy.Kind == RestNone,
	}, true
}
