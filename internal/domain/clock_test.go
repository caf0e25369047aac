package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func ptr(v int64) *int64 { return &v }

func TestRemainingSeconds_RoundsUp(t *testing.T) {
	tests := []struct {
		name     string
		nowMs    int64
		expected int
	}{
		{"at start", 0, 10},
		{"1ms elapsed", 1, 10},
		{"999ms elapsed", 999, 10},
		{"exactly one second", 1_000, 9},
		{"1ms left", 9_999, 1},
		{"exactly done", 10_000, 0},
		{"overdue", 15_000, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, RemainingSeconds(10, 0, 0, nil, tt.nowMs))
		})
	}
}

func TestRemainingMs_ClockBeforeStart(t *testing.T) {
	assert.Equal(t, int64(10_000), RemainingMs(10, 5_000, 0, nil, 1_000))
}

func TestRemainingMs_PausedStopsAtPausedAt(t *testing.T) {
	assert.Equal(t, int64(7_000), RemainingMs(10, 0, 0, ptr(3_000), 60_000))
}

func TestRemainingMs_AccumulatedPauseShiftsEnd(t *testing.T) {
	assert.Equal(t, int64(5_000), RemainingMs(10, 0, 2_000, nil, 7_000))
}

func TestPauseResume_DriftLaw(t *testing.T) {
	for _, pauseMs := range []int64{0, 1, 999, 1_000, 300_000, 86_400_000} {
		s := NewRuntimeSnapshot("w", 1_000)
		t0 := int64(4_250)
		before := RemainingSeconds(10, s.SegmentStartedAtMs, s.AccumulatedPausedMs, s.PausedAtMs, t0)

		s = Pause(s, t0)
		s = Resume(s, t0+pauseMs)
		after := RemainingSeconds(10, s.SegmentStartedAtMs, s.AccumulatedPausedMs, s.PausedAtMs, t0+pauseMs)

		assert.Equal(t, before, after, "pause of %dms", pauseMs)
		assert.Equal(t, int64(1_000), s.SegmentStartedAtMs)
	}
}

func TestPauseResume_FiveMinutePause(t *testing.T) {
	start := int64(10_000)
	s := NewRuntimeSnapshot("w", start)

	s = Pause(s, start)
	s = Resume(s, start+300_000)

	assert.Equal(t, 10, RemainingSeconds(10, s.SegmentStartedAtMs, s.AccumulatedPausedMs, s.PausedAtMs, start+300_000))
	assert.Equal(t, int64(300_000), s.AccumulatedPausedMs)
	assert.Nil(t, s.PausedAtMs)
	assert.False(t, s.IsPaused)
}

func TestPause_IsIdempotent(t *testing.T) {
	s := Pause(NewRuntimeSnapshot("w", 0), 2_000)
	again := Pause(s, 5_000)

	assert.Equal(t, int64(2_000), *again.PausedAtMs)
}

func TestResume_NeverNegative(t *testing.T) {
	s := Pause(NewRuntimeSnapshot("w", 0), 5_000)
	s = Resume(s, 4_000)

	assert.Equal(t, int64(0), s.AccumulatedPausedMs)
}

func TestResume_NotPausedIsNoop(t *testing.T) {
	s := NewRuntimeSnapshot("w", 0)
	assert.Equal(t, s, Resume(s, 9_000))
}

func TestSeek_ResetsPauseBookkeeping(t *testing.T) {
	s := NewRuntimeSnapshot("w", 0)
	s = Pause(s, 1_000)
	s.AccumulatedPausedMs = 400

	s = Seek(s, 3, 7_000)

	assert.Equal(t, 3, s.SegmentIndex)
	assert.Equal(t, int64(7_000), s.SegmentStartedAtMs)
	assert.False(t, s.IsPaused)
	assert.Nil(t, s.PausedAtMs)
	assert.Equal(t, int64(0), s.AccumulatedPausedMs)
}

func TestSegmentEndMs(t *testing.T) {
	assert.Equal(t, int64(13_500), SegmentEndMs(10, 1_000, 2_500))
	assert.Equal(t, int64(1_000), SegmentEndMs(-5, 1_000, 0))
}

func TestRuntimeSnapshot_Reanchor(t *testing.T) {
	s := NewRuntimeSnapshot("w", 50_000)
	s.SegmentIndex = 2
	s = Pause(s, 52_000)
	s.AccumulatedPausedMs = 300

	assert.True(t, s.IsAfter(1_000))
	assert.False(t, s.IsAfter(60_000))

	s = s.Reanchor(5_000)

	// 2000ms ran before the pause, 300ms of it paused earlier
	assert.Equal(t, 2, s.SegmentIndex)
	assert.Equal(t, int64(3_300), s.SegmentStartedAtMs)
	assert.Equal(t, int64(0), s.AccumulatedPausedMs)
	assert.True(t, s.IsPaused)
	assert.Equal(t, int64(5_000), *s.PausedAtMs)
	assert.False(t, s.IsAfter(5_000))
	assert.Equal(t, int64(1_700), *s.PausedAtMs-s.SegmentStartedAtMs)
}

func TestRuntimeSnapshot_ReanchorRunningRestartsSegment(t *testing.T) {
	s := NewRuntimeSnapshot("w", 50_000)
	s.AccumulatedPausedMs = 400

	s = s.Reanchor(1_000)

	assert.Equal(t, int64(1_000), s.SegmentStartedAtMs)
	assert.Equal(t, int64(0), s.AccumulatedPausedMs)
	assert.Nil(t, s.PausedAtMs)
}
