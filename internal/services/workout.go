package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/renato0307/hiit/internal/domain"
	"github.com/renato0307/hiit/internal/logging"
	"github.com/renato0307/hiit/internal/ports"
)

// WorkoutService manages the workout catalogue
type WorkoutService struct {
	files ports.WorkoutFileStore
	repo  ports.WorkoutRepository
}

// NewWorkoutService creates a new WorkoutService
func NewWorkoutService(repo ports.WorkoutRepository, files ports.WorkoutFileStore) *WorkoutService {
	return &WorkoutService{
		files: files,
		repo:  repo,
	}
}

// Get returns a workout by id
func (s *WorkoutService) Get(ctx context.Context, id string) (*domain.WorkoutDefinition, error) {
	return s.repo.GetWorkout(ctx, id)
}

// List returns all workouts, pinned first and then by name
func (s *WorkoutService) List(ctx context.Context) ([]domain.WorkoutDefinition, error) {
	workouts, err := s.repo.ListWorkouts(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	visible := workouts[:0]
	for _, w := range workouts {
		if !w.IsDeleted {
			visible = append(visible, w)
		}
	}

	sort.SliceStable(visible, func(i, j int) bool {
		if visible[i].IsPinned != visible[j].IsPinned {
			return visible[i].IsPinned
		}
		return strings.ToLower(visible[i].Name) < strings.ToLower(visible[j].Name)
	})
	return visible, nil
}

// Save validates and stores a workout, assigning ids where missing.
// Workouts without an explicit source are recorded as user workouts.
func (s *WorkoutService) Save(ctx context.Context, w domain.WorkoutDefinition) (*domain.WorkoutDefinition, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}

	if w.ID == "" {
		w.ID = uuid.New().String()
	}
	if w.Source == domain.SourceSystem && w.ID != domain.QuickStartID {
		w.Source = domain.SourceUser
	}
	exercises := make([]domain.ExerciseDefinition, len(w.Exercises))
	for i, ex := range w.Exercises {
		if ex.ID == "" {
			ex.ID = uuid.New().String()
		}
		exercises[i] = ex
	}
	w.Exercises = exercises

	if err := s.repo.UpsertWorkout(ctx, w); err != nil {
		logging.Logger.Error("Failed to save workout", "workout_id", w.ID, "error", err)
		return nil, fmt.Errorf("failed to save workout: %w", err)
	}

	logging.Logger.Info("Workout saved", "workout_id", w.ID, "name", w.Name)
	return &w, nil
}

// Delete soft-deletes a workout. The quick start workout cannot be deleted.
func (s *WorkoutService) Delete(ctx context.Context, id string) error {
	if id == domain.QuickStartID {
		return fmt.Errorf("%w: the quick start workout cannot be deleted", domain.ErrInvalidWorkout)
	}
	if err := s.repo.DeleteWorkout(ctx, id); err != nil {
		return fmt.Errorf("failed to delete workout %s: %w", id, err)
	}
	logging.Logger.Info("Workout deleted", "workout_id", id)
	return nil
}

// TogglePin flips the pinned flag and returns the new value
func (s *WorkoutService) TogglePin(ctx context.Context, id string) (bool, error) {
	w, err := s.repo.GetWorkout(ctx, id)
	if err != nil {
		return false, err
	}

	pinned := !w.IsPinned
	if err := s.repo.SetPinned(ctx, id, pinned); err != nil {
		return false, fmt.Errorf("failed to update pinned flag: %w", err)
	}
	return pinned, nil
}

// Import reads workouts from a file and stores them as presets
func (s *WorkoutService) Import(ctx context.Context, path string) ([]domain.WorkoutDefinition, error) {
	workouts, err := s.files.ReadWorkouts(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	imported := make([]domain.WorkoutDefinition, 0, len(workouts))
	for _, w := range workouts {
		if w.ID == domain.QuickStartID {
			logging.Logger.Warn("Skipping imported workout with reserved id", "workout_id", w.ID)
			continue
		}
		w.Source = domain.SourcePreset
		saved, err := s.Save(ctx, w)
		if err != nil {
			return imported, fmt.Errorf("failed to import %q: %w", w.Name, err)
		}
		imported = append(imported, *saved)
	}

	logging.Logger.Info("Workouts imported", "path", path, "count", len(imported))
	return imported, nil
}

// Export writes the given workouts, or every listed workout when no ids are given
func (s *WorkoutService) Export(ctx context.Context, path string, ids ...string) (int, error) {
	var workouts []domain.WorkoutDefinition
	if len(ids) == 0 {
		all, err := s.List(ctx)
		if err != nil {
			return 0, err
		}
		workouts = all
	} else {
		for _, id := range ids {
			w, err := s.repo.GetWorkout(ctx, id)
			if err != nil {
				return 0, fmt.Errorf("failed to export %s: %w", id, err)
			}
			workouts = append(workouts, *w)
		}
	}

	if err := s.files.WriteWorkouts(path, workouts); err != nil {
		return 0, fmt.Errorf("failed to write %s: %w", path, err)
	}
	return len(workouts), nil
}

// EnsureQuickStart creates the quick start workout from defaults unless it exists
func (s *WorkoutService) EnsureQuickStart(ctx context.Context, defaults domain.QuickStartParams) (*domain.WorkoutDefinition, error) {
	existing, err := s.repo.GetWorkout(ctx, domain.QuickStartID)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, domain.ErrWorkoutNotFound) {
		return nil, err
	}

	logging.Logger.Info("Creating quick start workout", "sets", defaults.Sets, "work_sec", defaults.WorkSec)
	return s.Save(ctx, domain.QuickStartWorkout(defaults))
}

// SaveQuickStart replaces the quick start parameters, keeping its pinned flag
func (s *WorkoutService) SaveQuickStart(ctx context.Context, params domain.QuickStartParams) (*domain.WorkoutDefinition, error) {
	w := domain.QuickStartWorkout(params)
	if existing, err := s.repo.GetWorkout(ctx, domain.QuickStartID); err == nil {
		w.IsPinned = existing.IsPinned
	}
	return s.Save(ctx, w)
}

// QuickStartParams reads the stored quick start parameters, or the defaults
// when the quick start workout was never created
func (s *WorkoutService) QuickStartParams(ctx context.Context, defaults domain.QuickStartParams) (domain.QuickStartParams, error) {
	w, err := s.repo.GetWorkout(ctx, domain.QuickStartID)
	if errors.Is(err, domain.ErrWorkoutNotFound) {
		return defaults, nil
	}
	if err != nil {
		return defaults, err
	}
	if params, ok := domain.QuickStartParamsFrom(*w); ok {
		return params, nil
	}
	return defaults, nil
}
