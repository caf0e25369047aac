//go:build linux

package clock

import "golang.org/x/sys/unix"

const bootClockID = unix.CLOCK_BOOTTIME
