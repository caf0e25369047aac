package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/renato0307/hiit/internal/domain"
	portsmocks "github.com/renato0307/hiit/internal/ports/mocks"
)

type fakeWallClock struct {
	now time.Time
}

func (c *fakeWallClock) Now() time.Time { return c.now }

func newThrottledService(t *testing.T) (*NotificationService, *portsmocks.MockNotifier, *fakeWallClock) {
	notifier := portsmocks.NewMockNotifier(t)
	clock := &fakeWallClock{now: time.Unix(1_700_000_000, 0)}
	service := NewNotificationService(notifier)
	service.now = clock.Now
	return service, notifier, clock
}

func TestNotificationService_ThrottlesToOnePerSecond(t *testing.T) {
	service, notifier, clock := newThrottledService(t)

	notifier.EXPECT().Notify(domain.PresentationUpdate{Label: "Squats", Remaining: "00:10", Text: "Squats: 00:10"}).Once()
	notifier.EXPECT().Notify(domain.PresentationUpdate{Label: "Squats", Remaining: "00:09", Text: "Squats: 00:09"}).Once()

	service.Update("Squats", 10, false, false)
	clock.now = clock.now.Add(400 * time.Millisecond)
	service.Update("Squats", 10, false, false)
	clock.now = clock.now.Add(300 * time.Millisecond)
	service.Update("Squats", 9, false, false)
	clock.now = clock.now.Add(400 * time.Millisecond)
	service.Update("Squats", 9, false, false)
}

func TestNotificationService_ForceBypassesThrottle(t *testing.T) {
	service, notifier, _ := newThrottledService(t)

	notifier.EXPECT().Notify(mock.Anything).Twice()

	service.Update("Squats", 10, false, false)
	service.Update("Squats", 10, true, true)
}

func TestNotificationService_IdenticalForcedUpdateIsNotRepeated(t *testing.T) {
	service, notifier, _ := newThrottledService(t)

	notifier.EXPECT().Notify(mock.Anything).Once()

	service.Update("REST", 5, true, true)
	service.Update("REST", 5, true, true)
}

func TestNotificationService_PublishFinished(t *testing.T) {
	service, notifier, _ := newThrottledService(t)

	notifier.EXPECT().Notify(mock.Anything).Run(func(update domain.PresentationUpdate) {
		assert.Equal(t, TextCompleted, update.Text)
		assert.True(t, update.IsFinished)
	}).Once()

	service.Publish(domain.RenderState{IsFinished: true, PhaseLabel: domain.LabelDone}, true)
}

func TestNotificationService_PublishPausedText(t *testing.T) {
	service, notifier, _ := newThrottledService(t)

	notifier.EXPECT().Notify(domain.PresentationUpdate{
		IsPaused:  true,
		Label:     "REST",
		Remaining: "01:05",
		Text:      "REST: 01:05 (paused)",
	}).Once()

	service.Publish(domain.RenderState{PhaseLabel: "REST", PhaseRemaining: 65, IsPaused: true}, true)
}

func TestNotificationService_NilNotifier(t *testing.T) {
	service := NewNotificationService(nil)

	assert.NotPanics(t, func() {
		service.Update("Squats", 3, false, true)
		service.Stopped()
	})
}
