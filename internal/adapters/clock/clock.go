// Package clock provides the monotonic time source used by the timer.
// It must keep counting while the machine sleeps so that an elapsed
// workout is caught up on wake.
package clock

import (
	"sync/atomic"
	"time"

	"github.com/renato0307/hiit/internal/logging"
	"github.com/renato0307/hiit/internal/ports"
)

// Clock implements ports.Clock
type Clock struct {
	fallbackStart time.Time
	failed        atomic.Bool
	source        func() (int64, error)
}

// Verify interface compliance at compile time
var _ ports.Clock = (*Clock)(nil)

// New creates a clock backed by the platform's sleep-inclusive clock
func New() *Clock {
	return &Clock{
		fallbackStart: time.Now(),
		source:        bootClockMs,
	}
}

// NowMs returns milliseconds since boot. If the platform clock fails the
// process-local monotonic clock is used, which cannot survive a restart.
func (c *Clock) NowMs() int64 {
	if !c.failed.Load() {
		ms, err := c.source()
		if err == nil {
			return ms
		}
		logging.Logger.Warn("Boot clock unavailable, using process clock", "error", err)
		c.failed.Store(true)
	}
	return time.Since(c.fallbackStart).Milliseconds()
}
