// Package workoutfile reads and writes workout definitions as YAML files
package workoutfile

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/renato0307/hiit/internal/domain"
	"github.com/renato0307/hiit/internal/paths"
	"github.com/renato0307/hiit/internal/ports"
)

// document is the on-disk layout of a workout file
type document struct {
	Workouts []workoutYAML `yaml:"workouts"`
}

type workoutYAML struct {
	ID         string         `yaml:"id,omitempty"`
	Name       string         `yaml:"name"`
	PrepareSec int            `yaml:"prepare_sec,omitempty"`
	Pinned     bool           `yaml:"pinned,omitempty"`
	Exercises  []exerciseYAML `yaml:"exercises"`
}

type exerciseYAML struct {
	Name        string `yaml:"name"`
	Sets        int    `yaml:"sets"`
	WorkSec     int    `yaml:"work_sec"`
	RestSec     int    `yaml:"rest_sec"`
	LastRest    string `yaml:"last_rest,omitempty"`
	LastRestSec int    `yaml:"last_rest_sec,omitempty"`
}

// YAMLStore implements ports.WorkoutFileStore on top of an afero filesystem
type YAMLStore struct {
	FS afero.Fs
}

// Verify interface compliance at compile time
var _ ports.WorkoutFileStore = (*YAMLStore)(nil)

// NewYAMLStore creates a store over fs. Use afero.NewOsFs() for the real disk.
func NewYAMLStore(fs afero.Fs) *YAMLStore {
	return &YAMLStore{FS: fs}
}

// ReadWorkouts parses every workout in the file at path
func (s *YAMLStore) ReadWorkouts(path string) ([]domain.WorkoutDefinition, error) {
	path = paths.ExpandPath(path)

	data, err := afero.ReadFile(s.FS, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read workout file: %w", err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	result := make([]domain.WorkoutDefinition, 0, len(doc.Workouts))
	for i, w := range doc.Workouts {
		def, err := w.toDomain()
		if err != nil {
			return nil, fmt.Errorf("workout %d in %s: %w", i+1, path, err)
		}
		result = append(result, def)
	}
	return result, nil
}

// WriteWorkouts writes workouts to path, replacing the file atomically
func (s *YAMLStore) WriteWorkouts(path string, workouts []domain.WorkoutDefinition) error {
	path = paths.ExpandPath(path)

	doc := document{Workouts: make([]workoutYAML, 0, len(workouts))}
	for _, w := range workouts {
		doc.Workouts = append(doc.Workouts, workoutFromDomain(w))
	}

	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal workouts: %w", err)
	}
	return writeFileAtomic(s.FS, path, data)
}

func (w workoutYAML) toDomain() (domain.WorkoutDefinition, error) {
	def := domain.WorkoutDefinition{
		ID:         w.ID,
		IsPinned:   w.Pinned,
		Name:       w.Name,
		PrepareSec: w.PrepareSec,
		Exercises:  make([]domain.ExerciseDefinition, 0, len(w.Exercises)),
	}
	for _, ex := range w.Exercises {
		policy, err := parseRestPolicy(ex.LastRest, ex.LastRestSec)
		if err != nil {
			return domain.WorkoutDefinition{}, fmt.Errorf("exercise %q: %w", ex.Name, err)
		}
		def.Exercises = append(def.Exercises, domain.ExerciseDefinition{
			Name:       ex.Name,
			RestPolicy: policy,
			RestSec:    ex.RestSec,
			Sets:       ex.Sets,
			WorkSec:    ex.WorkSec,
		})
	}
	return def, def.Validate()
}

func workoutFromDomain(w domain.WorkoutDefinition) workoutYAML {
	out := workoutYAML{
		ID:         w.ID,
		Name:       w.Name,
		PrepareSec: w.PrepareSec,
		Pinned:     w.IsPinned,
		Exercises:  make([]exerciseYAML, 0, len(w.Exercises)),
	}
	for _, ex := range w.Exercises {
		e := exerciseYAML{
			Name:     ex.Name,
			Sets:     ex.Sets,
			WorkSec:  ex.WorkSec,
			RestSec:  ex.RestSec,
			LastRest: ex.RestPolicy.String(),
		}
		if e.LastRest == "custom" {
			e.LastRestSec = ex.RestPolicy.Seconds
		}
		out.Exercises = append(out.Exercises, e)
	}
	return out
}

// parseRestPolicy maps the last_rest field. An empty value means "same".
func parseRestPolicy(kind string, seconds int) (domain.RestPolicy, error) {
	switch kind {
	case "", "same":
		return domain.SameAsRegularRest(), nil
	case "none":
		return domain.NoRest(), nil
	case "custom":
		return domain.CustomRest(seconds), nil
	default:
		return domain.RestPolicy{}, fmt.Errorf("%w: unknown last_rest %q (want same, none or custom)", domain.ErrInvalidWorkout, kind)
	}
}

// writeFileAtomic writes through a temp file in the same directory and renames it
func writeFileAtomic(fs afero.Fs, path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmpFile, err := afero.TempFile(fs, dir, ".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer fs.Remove(tmpPath)

	if _, err := tmpFile.Write(data); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmpFile.Sync(); err != nil {
		tmpFile.Close()
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := fs.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}
	return nil
}
