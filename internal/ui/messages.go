package ui

import (
	"time"

	"github.com/renato0307/hiit/internal/domain"
)

// pollMsg asks the model to read the current timer state
type pollMsg time.Time

// PresentationMsg carries a throttled status update from the timer
type PresentationMsg domain.PresentationUpdate
