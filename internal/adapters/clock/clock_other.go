//go:build !linux && !darwin

package clock

import "errors"

// bootClockMs has no sleep-inclusive source here; NowMs falls back to the process clock
func bootClockMs() (int64, error) {
	return 0, errors.New("boot clock not supported on this platform")
}
