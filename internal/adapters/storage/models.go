package storage

import "time"

// WorkoutModel is the GORM model for workouts table
type WorkoutModel struct {
	CreatedAt  time.Time
	Exercises  []ExerciseModel `gorm:"foreignKey:WorkoutID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	ID         string          `gorm:"primaryKey"`
	IsDeleted  bool            `gorm:"not null;index:idx_is_deleted"`
	IsPinned   bool            `gorm:"not null"`
	Name       string          `gorm:"not null"`
	PrepareSec int             `gorm:"not null"`
	Source     string          `gorm:"not null;check:source IN ('system','user','preset')"`
	UpdatedAt  time.Time
}

// TableName specifies the table name for GORM
func (WorkoutModel) TableName() string { return "workouts" }

// ExerciseModel is the GORM model for exercises table
type ExerciseModel struct {
	CreatedAt     time.Time
	ID            string `gorm:"primaryKey"`
	Name          string `gorm:"not null"`
	Position      int    `gorm:"not null;index:idx_exercise_position"`
	RestPolicy    string `gorm:"not null;check:rest_policy IN ('same','none','custom')"`
	RestPolicySec int    `gorm:"not null"`
	RestSec       int    `gorm:"not null"`
	Sets          int    `gorm:"not null"`
	UpdatedAt     time.Time
	WorkSec       int    `gorm:"not null"`
	WorkoutID     string `gorm:"not null;index:idx_exercise_workout"`
}

// TableName specifies the table name for GORM
func (ExerciseModel) TableName() string { return "exercises" }

// activeSessionID is the primary key of the only active_session row
const activeSessionID = 1

// ActiveSessionModel is the GORM model for the single in-flight session
type ActiveSessionModel struct {
	AccumulatedPausedMs int64  `gorm:"not null"`
	ID                  uint   `gorm:"primaryKey;autoIncrement:false"`
	IsFinished          bool   `gorm:"not null"`
	IsPaused            bool   `gorm:"not null"`
	PausedAtMs          *int64
	SegmentIndex        int    `gorm:"not null"`
	SegmentStartedAtMs  int64  `gorm:"not null"`
	UpdatedAt           time.Time
	WorkoutID           string `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ActiveSessionModel) TableName() string { return "active_session" }
