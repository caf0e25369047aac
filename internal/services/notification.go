package services

import (
	"fmt"
	"time"

	"github.com/renato0307/hiit/internal/domain"
	"github.com/renato0307/hiit/internal/logging"
	"github.com/renato0307/hiit/internal/ports"
)

// Presentation texts for terminal states
const (
	TextCompleted = "Workout complete"
	TextStopped   = "Workout stopped"
)

// NotificationService relays the session status to the presentation layer.
// Regular updates are throttled to one per wall clock second; forced updates
// (pause, resume, seek, start, finish, stop) go out immediately.
type NotificationService struct {
	hasLast    bool
	last       domain.PresentationUpdate
	lastSecond int64
	notifier   ports.Notifier
	now        func() time.Time
}

// NewNotificationService creates a new NotificationService.
// A nil notifier turns every update into a no-op.
func NewNotificationService(notifier ports.Notifier) *NotificationService {
	return &NotificationService{
		notifier: notifier,
		now:      time.Now,
	}
}

// Publish pushes the presentation of a render state
func (s *NotificationService) Publish(r domain.RenderState, force bool) {
	if r.IsFinished {
		s.push(domain.PresentationUpdate{
			IsFinished: true,
			IsPaused:   true,
			Label:      domain.LabelDone,
			Remaining:  domain.FormatSeconds(0),
			Text:       TextCompleted,
		}, force)
		return
	}
	s.Update(r.PhaseLabel, r.PhaseRemaining, r.IsPaused, force)
}

// Update pushes a phase label with its remaining time
func (s *NotificationService) Update(label string, remainingSec int, paused bool, force bool) {
	remaining := domain.FormatSeconds(remainingSec)
	text := fmt.Sprintf("%s: %s", label, remaining)
	if paused {
		text += " (paused)"
	}
	s.push(domain.PresentationUpdate{
		IsPaused:  paused,
		Label:     label,
		Remaining: remaining,
		Text:      text,
	}, force)
}

// Stopped pushes the stopped state, always immediately
func (s *NotificationService) Stopped() {
	s.push(domain.PresentationUpdate{
		IsFinished: true,
		IsPaused:   true,
		Label:      domain.LabelDone,
		Remaining:  domain.FormatSeconds(0),
		Text:       TextStopped,
	}, true)
}

func (s *NotificationService) push(update domain.PresentationUpdate, force bool) {
	if s.notifier == nil {
		return
	}

	second := s.now().Unix()
	sameSecond := s.hasLast && second == s.lastSecond
	if sameSecond && update == s.last {
		return
	}
	if sameSecond && !force {
		return
	}

	s.hasLast = true
	s.last = update
	s.lastSecond = second
	logging.Logger.Debug("Presentation update", "text", update.Text, "forced", force)
	s.notifier.Notify(update)
}
