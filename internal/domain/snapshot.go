package domain

// RuntimeSnapshot is the minimal state needed to rebuild the countdown at any
// later instant. It is a value: every transition produces a new snapshot.
type RuntimeSnapshot struct {
	AccumulatedPausedMs int64 // paused time within the current segment
	IsFinished          bool
	IsPaused            bool
	PausedAtMs          *int64 // set only while paused
	SegmentIndex        int
	SegmentStartedAtMs  int64
	WorkoutID           string
}

// NewRuntimeSnapshot starts a session at the first segment
func NewRuntimeSnapshot(workoutID string, nowMs int64) RuntimeSnapshot {
	return RuntimeSnapshot{
		WorkoutID:          workoutID,
		SegmentIndex:       0,
		SegmentStartedAtMs: nowMs,
	}
}

// RemainingSeconds is the displayed remaining time of the current segment
func (s RuntimeSnapshot) RemainingSeconds(p *Plan, nowMs int64) int {
	seg := p.Segment(s.SegmentIndex)
	return RemainingSeconds(seg.DurationSec(), s.SegmentStartedAtMs, s.AccumulatedPausedMs, s.PausedAtMs, nowMs)
}

// IsAfter reports whether any timestamp of the snapshot lies beyond nowMs,
// which happens when the clock source was reset (reboot) since it was saved.
func (s RuntimeSnapshot) IsAfter(nowMs int64) bool {
	if s.SegmentStartedAtMs > nowMs {
		return true
	}
	return s.PausedAtMs != nil && *s.PausedAtMs > nowMs
}

// Reanchor moves the current segment onto a clock that restarted, keeping
// index and pause state. A paused segment keeps the time it had run; a
// running one restarts at full length since its progress is unknown.
func (s RuntimeSnapshot) Reanchor(nowMs int64) RuntimeSnapshot {
	var elapsed int64
	if s.IsPaused && s.PausedAtMs != nil {
		elapsed = max(*s.PausedAtMs-s.SegmentStartedAtMs-s.AccumulatedPausedMs, 0)
	}
	s.SegmentStartedAtMs = nowMs - elapsed
	s.AccumulatedPausedMs = 0
	if s.IsPaused {
		s.PausedAtMs = &nowMs
	}
	return s
}

// CatchUp advances s through every segment that ended by nowMs. Each next
// segment starts where the previous one ended, so long gaps never add drift.
// Paused and finished snapshots are returned unchanged. The second result
// reports whether the index moved.
func CatchUp(p *Plan, s RuntimeSnapshot, nowMs int64) (RuntimeSnapshot, bool) {
	if s.IsPaused || s.IsFinished {
		return s, false
	}

	advanced := false
	for !s.IsFinished {
		seg := p.Segment(s.SegmentIndex)
		if RemainingMs(seg.DurationSec(), s.SegmentStartedAtMs, s.AccumulatedPausedMs, s.PausedAtMs, nowMs) > 0 {
			break
		}
		end := SegmentEndMs(seg.DurationSec(), s.SegmentStartedAtMs, s.AccumulatedPausedMs)
		index := min(s.SegmentIndex+1, p.DoneIndex)
		s = Seek(s, index, end)
		s.IsFinished = p.IsDone(index)
		advanced = true
	}
	return s, advanced
}
