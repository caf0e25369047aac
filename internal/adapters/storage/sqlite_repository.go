package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-sqlite3"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"

	"github.com/renato0307/hiit/internal/domain"
	"github.com/renato0307/hiit/internal/logging"
	"github.com/renato0307/hiit/internal/paths"
	"github.com/renato0307/hiit/internal/ports"
)

const defaultRetries = 3

// SQLiteRepository implements ports.Repository using GORM
type SQLiteRepository struct {
	db *gorm.DB
}

// Verify interface compliance at compile time
var _ ports.Repository = (*SQLiteRepository)(nil)

// gormLogger wraps the hiit logger for GORM
type gormLogger struct {
	level logger.LogLevel
}

func (l *gormLogger) LogMode(level logger.LogLevel) logger.Interface {
	return &gormLogger{level: level}
}

func (l *gormLogger) Info(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Info {
		logging.Logger.Info(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Warn(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Warn {
		logging.Logger.Warn(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Error(ctx context.Context, msg string, data ...any) {
	if l.level >= logger.Error {
		logging.Logger.Error(fmt.Sprintf(msg, data...))
	}
}

func (l *gormLogger) Trace(ctx context.Context, begin time.Time, fc func() (sql string, rowsAffected int64), err error) {
	if l.level < logger.Info {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()

	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		logging.Logger.Error("gorm query error", "error", err, "duration", elapsed, "sql", sql, "rows", rows)
	case elapsed > 200*time.Millisecond:
		logging.Logger.Warn("slow query", "duration", elapsed, "sql", sql, "rows", rows)
	default:
		logging.Logger.Debug("gorm query", "duration", elapsed, "sql", sql, "rows", rows)
	}
}

func newGormLogger() logger.Interface {
	if os.Getenv("HIIT_DEBUG") == "1" {
		return (&gormLogger{}).LogMode(logger.Info)
	}
	return (&gormLogger{}).LogMode(logger.Silent)
}

// NewSQLiteRepository opens (and migrates) the database at dbPath
func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	dbPath = paths.ExpandPath(dbPath)

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := gorm.Open(sqlite.Open(dbPath), &gorm.Config{
		PrepareStmt: false,
		NowFunc:     func() time.Time { return time.Now().UTC() },
		Logger:      newGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL lets `hiit status` read while a run is writing
	db.Exec("PRAGMA journal_mode=WAL")
	db.Exec("PRAGMA busy_timeout=5000")
	db.Exec("PRAGMA synchronous=NORMAL")
	db.Exec("PRAGMA foreign_keys=ON")

	if err := db.AutoMigrate(&WorkoutModel{}, &ExerciseModel{}, &ActiveSessionModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	logging.Logger.Debug("Database opened", "path", dbPath)
	return &SQLiteRepository{db: db}, nil
}

// NewSQLiteRepositoryForPath creates a new SQLiteRepository for a specific HIIT_HOME path
func NewSQLiteRepositoryForPath(hiitHomePath string) (*SQLiteRepository, error) {
	return NewSQLiteRepository(filepath.Join(hiitHomePath, "state.db"))
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func orderedExercises(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}

// GetWorkout implements WorkoutReader.GetWorkout
func (r *SQLiteRepository) GetWorkout(ctx context.Context, id string) (*domain.WorkoutDefinition, error) {
	var model WorkoutModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Preload("Exercises", orderedExercises).
			Where("id = ? AND is_deleted = ?", id, false).
			First(&model).Error
	}, defaultRetries)

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("workout %s: %w", id, domain.ErrWorkoutNotFound)
		}
		return nil, fmt.Errorf("failed to get workout %s: %w", id, err)
	}

	w := workoutModelToDomain(model)
	return &w, nil
}

// ListWorkouts implements WorkoutReader.ListWorkouts
func (r *SQLiteRepository) ListWorkouts(ctx context.Context) ([]domain.WorkoutDefinition, error) {
	var models []WorkoutModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).
			Preload("Exercises", orderedExercises).
			Where("is_deleted = ?", false).
			Order("is_pinned DESC, name").
			Find(&models).Error
	}, defaultRetries)
	if err != nil {
		return nil, fmt.Errorf("failed to list workouts: %w", err)
	}

	result := make([]domain.WorkoutDefinition, 0, len(models))
	for _, m := range models {
		result = append(result, workoutModelToDomain(m))
	}
	return result, nil
}

// UpsertWorkout implements WorkoutWriter.UpsertWorkout.
// The exercise list is replaced as a whole.
func (r *SQLiteRepository) UpsertWorkout(ctx context.Context, workout domain.WorkoutDefinition) error {
	return withRetry(func() error {
		return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			model := domainToWorkoutModel(workout)
			err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "id"}},
				DoUpdates: clause.AssignmentColumns([]string{"name", "prepare_sec", "source", "is_pinned", "is_deleted", "updated_at"}),
			}).Omit("Exercises").Create(&model).Error
			if err != nil {
				return fmt.Errorf("failed to save workout: %w", err)
			}

			if err := tx.Where("workout_id = ?", workout.ID).Delete(&ExerciseModel{}).Error; err != nil {
				return fmt.Errorf("failed to replace exercises: %w", err)
			}

			exercises := domainToExerciseModels(workout)
			if len(exercises) == 0 {
				return nil
			}
			if err := tx.Create(&exercises).Error; err != nil {
				return fmt.Errorf("failed to save exercises: %w", err)
			}
			return nil
		})
	}, defaultRetries)
}

// DeleteWorkout implements WorkoutWriter.DeleteWorkout (soft delete)
func (r *SQLiteRepository) DeleteWorkout(ctx context.Context, id string) error {
	return r.updateWorkout(ctx, id, "is_deleted", true)
}

// SetPinned implements WorkoutWriter.SetPinned
func (r *SQLiteRepository) SetPinned(ctx context.Context, id string, pinned bool) error {
	return r.updateWorkout(ctx, id, "is_pinned", pinned)
}

func (r *SQLiteRepository) updateWorkout(ctx context.Context, id, column string, value any) error {
	return withRetry(func() error {
		result := r.db.WithContext(ctx).Model(&WorkoutModel{}).
			Where("id = ? AND is_deleted = ?", id, false).
			Update(column, value)
		if result.Error != nil {
			return fmt.Errorf("failed to update %s: %w", column, result.Error)
		}
		if result.RowsAffected == 0 {
			return fmt.Errorf("workout %s: %w", id, domain.ErrWorkoutNotFound)
		}
		return nil
	}, defaultRetries)
}

// GetSession implements SessionStore.GetSession
func (r *SQLiteRepository) GetSession(ctx context.Context) (*domain.RuntimeSnapshot, error) {
	var model ActiveSessionModel

	err := withRetry(func() error {
		return r.db.WithContext(ctx).Where("id = ?", activeSessionID).First(&model).Error
	}, defaultRetries)

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}

	snapshot := sessionModelToDomain(model)
	return &snapshot, nil
}

// UpsertSession implements SessionStore.UpsertSession
func (r *SQLiteRepository) UpsertSession(ctx context.Context, snapshot domain.RuntimeSnapshot) error {
	return withRetry(func() error {
		model := domainToSessionModel(snapshot)
		err := r.db.WithContext(ctx).Clauses(clause.OnConflict{UpdateAll: true}).Create(&model).Error
		if err != nil {
			return fmt.Errorf("failed to save session: %w", err)
		}
		return nil
	}, defaultRetries)
}

// ClearSession implements SessionStore.ClearSession
func (r *SQLiteRepository) ClearSession(ctx context.Context) error {
	return withRetry(func() error {
		if err := r.db.WithContext(ctx).Where("id = ?", activeSessionID).Delete(&ActiveSessionModel{}).Error; err != nil {
			return fmt.Errorf("failed to clear session: %w", err)
		}
		return nil
	}, defaultRetries)
}

// withRetry retries operations on SQLITE_BUSY with exponential backoff
func withRetry(fn func() error, maxRetries int) error {
	for i := 0; i < maxRetries; i++ {
		err := fn()
		if err == nil {
			return nil
		}

		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && (sqliteErr.Code == sqlite3.ErrBusy || sqliteErr.Code == sqlite3.ErrLocked) {
			logging.Logger.Debug("Database busy, retrying", "attempt", i+1)
			time.Sleep(time.Millisecond * time.Duration(50*(i+1)))
			continue
		}

		return err
	}
	return fmt.Errorf("operation failed after %d retries", maxRetries)
}
