package domain

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidWorkout  = errors.New("invalid workout")
	ErrSessionNotFound = errors.New("no active session")
	ErrWorkoutNotFound = errors.New("workout not found")
)

func invalidWorkout(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidWorkout, fmt.Sprintf(format, args...))
}
