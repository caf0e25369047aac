//go:build linux || darwin

package clock

import (
	"golang.org/x/sys/unix"
)

// bootClockMs reads CLOCK_BOOTTIME on Linux and CLOCK_MONOTONIC on macOS,
// both of which include time spent suspended.
func bootClockMs() (int64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(bootClockID, &ts); err != nil {
		return 0, err
	}
	return ts.Sec*1000 + int64(ts.Nsec)/1_000_000, nil
}
