package storage

import (
	"github.com/renato0307/hiit/internal/domain"
)

var sourceNames = map[domain.WorkoutSource]string{
	domain.SourceSystem: "system",
	domain.SourceUser:   "user",
	domain.SourcePreset: "preset",
}

func sourceToModel(s domain.WorkoutSource) string {
	if name, ok := sourceNames[s]; ok {
		return name
	}
	return sourceNames[domain.SourceUser]
}

func sourceFromModel(name string) domain.WorkoutSource {
	for source, n := range sourceNames {
		if n == name {
			return source
		}
	}
	return domain.SourceUser
}

func restPolicyFromModel(kind string, seconds int) domain.RestPolicy {
	switch kind {
	case "none":
		return domain.NoRest()
	case "custom":
		return domain.CustomRest(seconds)
	default:
		return domain.SameAsRegularRest()
	}
}

// workoutModelToDomain converts a WorkoutModel (GORM) with its exercises to domain.WorkoutDefinition
func workoutModelToDomain(m WorkoutModel) domain.WorkoutDefinition {
	exercises := make([]domain.ExerciseDefinition, 0, len(m.Exercises))
	for _, e := range m.Exercises {
		exercises = append(exercises, domain.ExerciseDefinition{
			ID:         e.ID,
			Name:       e.Name,
			RestPolicy: restPolicyFromModel(e.RestPolicy, e.RestPolicySec),
			RestSec:    e.RestSec,
			Sets:       e.Sets,
			WorkSec:    e.WorkSec,
		})
	}

	return domain.WorkoutDefinition{
		CreatedAt:  m.CreatedAt,
		Exercises:  exercises,
		ID:         m.ID,
		IsDeleted:  m.IsDeleted,
		IsPinned:   m.IsPinned,
		Name:       m.Name,
		PrepareSec: m.PrepareSec,
		Source:     sourceFromModel(m.Source),
		UpdatedAt:  m.UpdatedAt,
	}
}

// domainToWorkoutModel converts a domain.WorkoutDefinition to WorkoutModel (GORM), without exercises
func domainToWorkoutModel(w domain.WorkoutDefinition) WorkoutModel {
	return WorkoutModel{
		ID:         w.ID,
		IsDeleted:  w.IsDeleted,
		IsPinned:   w.IsPinned,
		Name:       w.Name,
		PrepareSec: w.PrepareSec,
		Source:     sourceToModel(w.Source),
	}
}

// domainToExerciseModels converts the exercises of a workout, keeping their order
func domainToExerciseModels(w domain.WorkoutDefinition) []ExerciseModel {
	models := make([]ExerciseModel, 0, len(w.Exercises))
	for i, e := range w.Exercises {
		models = append(models, ExerciseModel{
			ID:            e.ID,
			Name:          e.Name,
			Position:      i,
			RestPolicy:    e.RestPolicy.String(),
			RestPolicySec: e.RestPolicy.Seconds,
			RestSec:       e.RestSec,
			Sets:          e.Sets,
			WorkSec:       e.WorkSec,
			WorkoutID:     w.ID,
		})
	}
	return models
}

func sessionModelToDomain(m ActiveSessionModel) domain.RuntimeSnapshot {
	return domain.RuntimeSnapshot{
		AccumulatedPausedMs: m.AccumulatedPausedMs,
		IsFinished:          m.IsFinished,
		IsPaused:            m.IsPaused,
		PausedAtMs:          m.PausedAtMs,
		SegmentIndex:        m.SegmentIndex,
		SegmentStartedAtMs:  m.SegmentStartedAtMs,
		WorkoutID:           m.WorkoutID,
	}
}

func domainToSessionModel(s domain.RuntimeSnapshot) ActiveSessionModel {
	return ActiveSessionModel{
		AccumulatedPausedMs: s.AccumulatedPausedMs,
		ID:                  activeSessionID,
		IsFinished:          s.IsFinished,
		IsPaused:            s.IsPaused,
		PausedAtMs:          s.PausedAtMs,
		SegmentIndex:        s.SegmentIndex,
		SegmentStartedAtMs:  s.SegmentStartedAtMs,
		WorkoutID:           s.WorkoutID,
	}
}
