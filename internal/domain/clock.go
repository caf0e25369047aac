package domain

// Session clock arithmetic. All timestamps are milliseconds read from a
// monotonic clock that keeps counting while the machine sleeps; wall clock
// changes never reach these functions.

// RemainingMs returns the milliseconds left in a segment.
// When paused, time stops at pausedAtMs.
func RemainingMs(durationSec int, startedAtMs, accumulatedPausedMs int64, pausedAtMs *int64, nowMs int64) int64 {
	stop := nowMs
	if pausedAtMs != nil {
		stop = *pausedAtMs
	}
	elapsed := max(0, stop-startedAtMs-accumulatedPausedMs)
	return max(0, int64(max(0, durationSec))*1000-elapsed)
}

// RemainingSeconds is RemainingMs rounded up to whole seconds, so that
// 1..999ms still shows as 1 and 0 only appears once time is really up.
func RemainingSeconds(durationSec int, startedAtMs, accumulatedPausedMs int64, pausedAtMs *int64, nowMs int64) int {
	return ceilSeconds(RemainingMs(durationSec, startedAtMs, accumulatedPausedMs, pausedAtMs, nowMs))
}

func ceilSeconds(ms int64) int {
	if ms <= 0 {
		return 0
	}
	return int((ms + 999) / 1000)
}

// SegmentEndMs is the clock reading at which a running segment ends
func SegmentEndMs(durationSec int, startedAtMs, accumulatedPausedMs int64) int64 {
	return startedAtMs + accumulatedPausedMs + int64(max(0, durationSec))*1000
}

// Pause freezes the remaining time. Already paused snapshots are returned as is.
func Pause(s RuntimeSnapshot, nowMs int64) RuntimeSnapshot {
	if s.IsPaused {
		return s
	}
	s.IsPaused = true
	s.PausedAtMs = &nowMs
	return s
}

// Resume shifts the segment end by exactly the paused interval.
// The segment start is never re-anchored to now.
func Resume(s RuntimeSnapshot, nowMs int64) RuntimeSnapshot {
	if !s.IsPaused {
		return s
	}
	pausedAt := nowMs
	if s.PausedAtMs != nil {
		pausedAt = *s.PausedAtMs
	}
	s.AccumulatedPausedMs += max(0, nowMs-pausedAt)
	s.IsPaused = false
	s.PausedAtMs = nil
	return s
}

// Seek moves to another segment, anchored at startMs and unpaused
func Seek(s RuntimeSnapshot, index int, startMs int64) RuntimeSnapshot {
	s.SegmentIndex = index
	s.SegmentStartedAtMs = startMs
	s.IsPaused = false
	s.PausedAtMs = nil
	s.AccumulatedPausedMs = 0
	return s
}
