package ports

import (
	"context"

	"github.com/renato0307/hiit/internal/domain"
)

// WorkoutReader reads workout definitions
type WorkoutReader interface {
	// GetWorkout returns domain.ErrWorkoutNotFound when the id is unknown or deleted
	GetWorkout(ctx context.Context, id string) (*domain.WorkoutDefinition, error)
	ListWorkouts(ctx context.Context) ([]domain.WorkoutDefinition, error)
}

// WorkoutWriter creates, updates and deletes workout definitions
type WorkoutWriter interface {
	DeleteWorkout(ctx context.Context, id string) error
	SetPinned(ctx context.Context, id string, pinned bool) error
	UpsertWorkout(ctx context.Context, workout domain.WorkoutDefinition) error
}

// WorkoutRepository is the composite interface
type WorkoutRepository interface {
	WorkoutReader
	WorkoutWriter
}

// Repository is everything the storage adapter provides
type Repository interface {
	SessionStore
	WorkoutRepository
	Close() error
}
