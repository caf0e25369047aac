package ports

import "github.com/renato0307/hiit/internal/domain"

// WorkoutFileStore reads and writes portable workout files
type WorkoutFileStore interface {
	ReadWorkouts(path string) ([]domain.WorkoutDefinition, error)
	WriteWorkouts(path string, workouts []domain.WorkoutDefinition) error
}
