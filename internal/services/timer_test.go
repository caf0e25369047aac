package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/renato0307/hiit/internal/domain"
	portsmocks "github.com/renato0307/hiit/internal/ports/mocks"
)

type fakeClock struct {
	now atomic.Int64
}

func (c *fakeClock) NowMs() int64     { return c.now.Load() }
func (c *fakeClock) advance(ms int64) { c.now.Add(ms) }

type fakeSessionStore struct {
	mu       sync.Mutex
	clears   int
	snapshot *domain.RuntimeSnapshot
	upserts  int
}

func (s *fakeSessionStore) GetSession(_ context.Context) (*domain.RuntimeSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.snapshot == nil {
		return nil, nil
	}
	copied := *s.snapshot
	return &copied, nil
}

func (s *fakeSessionStore) UpsertSession(_ context.Context, snapshot domain.RuntimeSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = &snapshot
	s.upserts++
	return nil
}

func (s *fakeSessionStore) ClearSession(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.snapshot = nil
	s.clears++
	return nil
}

func (s *fakeSessionStore) stored() *domain.RuntimeSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot
}

type fakeWorkoutReader struct {
	workouts map[string]domain.WorkoutDefinition
}

func (r *fakeWorkoutReader) GetWorkout(_ context.Context, id string) (*domain.WorkoutDefinition, error) {
	w, ok := r.workouts[id]
	if !ok {
		return nil, domain.ErrWorkoutNotFound
	}
	return &w, nil
}

func (r *fakeWorkoutReader) ListWorkouts(_ context.Context) ([]domain.WorkoutDefinition, error) {
	out := make([]domain.WorkoutDefinition, 0, len(r.workouts))
	for _, w := range r.workouts {
		out = append(out, w)
	}
	return out, nil
}

type fakeCuePlayer struct {
	mu     sync.Mutex
	closes int
	plays  []domain.CueID
	ready  bool
}

func (p *fakeCuePlayer) Preload(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ready = true
	return nil
}

func (p *fakeCuePlayer) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

func (p *fakeCuePlayer) Play(cue domain.CueID, _ float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.plays = append(p.plays, cue)
	return nil
}

func (p *fakeCuePlayer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ready = false
	p.closes++
	return nil
}

func (p *fakeCuePlayer) played() []domain.CueID {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]domain.CueID(nil), p.plays...)
}

type timerHarness struct {
	cancel context.CancelFunc
	clock  *fakeClock
	done   chan error
	player *fakeCuePlayer
	store  *fakeSessionStore
	timer  *TimerService
}

const startMs = int64(1_000_000)

func newTimerHarness(t *testing.T, workouts ...domain.WorkoutDefinition) *timerHarness {
	t.Helper()

	reader := &fakeWorkoutReader{workouts: map[string]domain.WorkoutDefinition{}}
	for _, w := range workouts {
		reader.workouts[w.ID] = w
	}

	h := &timerHarness{
		clock:  &fakeClock{},
		done:   make(chan error, 1),
		player: &fakeCuePlayer{},
		store:  &fakeSessionStore{},
	}
	h.clock.now.Store(startMs)
	// Ticks are driven by hand; the real tick source never fires within a test
	h.timer = NewTimerService(
		h.clock,
		h.store,
		reader,
		NewCueDispatcher(h.player, testCueConfig()),
		NewNotificationService(nil),
		time.Hour,
	)
	return h
}

func (h *timerHarness) run() {
	ctx, cancel := context.WithCancel(context.Background())
	h.cancel = cancel
	go func() { h.done <- h.timer.Run(ctx) }()
}

func (h *timerHarness) close(t *testing.T) {
	h.cancel()
	require.NoError(t, <-h.done)
}

func (h *timerHarness) flush(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, h.timer.Flush(ctx))
}

func (h *timerHarness) tickAt(t *testing.T, offsetMs int64) {
	h.clock.now.Store(startMs + offsetMs)
	h.timer.Tick()
	h.flush(t)
}

func testWorkout(id string, sets, workSec, restSec int, policy domain.RestPolicy) domain.WorkoutDefinition {
	return domain.WorkoutDefinition{
		ID:   id,
		Name: "Test " + id,
		Exercises: []domain.ExerciseDefinition{{
			ID:         id + "-ex",
			Name:       "Squats",
			Sets:       sets,
			WorkSec:    workSec,
			RestSec:    restSec,
			RestPolicy: policy,
		}},
	}
}

func TestTimer_StartEntersFirstSegment(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := newTimerHarness(t, testWorkout("w", 2, 10, 10, domain.NoRest()))
	h.run()
	defer h.close(t)

	h.timer.Start("w")
	h.flush(t)

	state := h.timer.State()
	assert.True(t, state.IsActive)
	assert.Equal(t, domain.PhaseWork, state.Phase)
	assert.Equal(t, 10, state.PhaseRemaining)
	assert.Equal(t, 30, state.TotalRemaining)
	assert.Equal(t, []domain.CueID{domain.CueWorkStart}, h.player.played())

	stored := h.store.stored()
	require.NotNil(t, stored)
	assert.Equal(t, "w", stored.WorkoutID)
	assert.Equal(t, startMs, stored.SegmentStartedAtMs)
}

func TestTimer_StartUnknownWorkoutIsNoop(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := newTimerHarness(t)
	h.run()
	defer h.close(t)

	h.timer.Start("missing")
	h.timer.Next()
	h.timer.PauseResume()
	h.flush(t)

	assert.Equal(t, domain.IdleRenderState(), h.timer.State())
	assert.Nil(t, h.store.stored())
	assert.Empty(t, h.player.played())
}

func TestTimer_CatchUpAfterLongSuspensionLandsOnDone(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := newTimerHarness(t, testWorkout("w", 1, 5, 0, domain.NoRest()))
	h.run()
	defer h.close(t)

	h.timer.Start("w")
	h.flush(t)
	h.tickAt(t, 5_400)

	state := h.timer.State()
	assert.True(t, state.IsFinished)
	assert.Equal(t, domain.PhaseDone, state.Phase)
	assert.Equal(t, []domain.CueID{domain.CueWorkStart, domain.CueFinished}, h.player.played())
	assert.Nil(t, h.store.stored())

	// Finished sessions ignore navigation
	h.timer.Previous()
	h.tickAt(t, 9_000)
	assert.True(t, h.timer.State().IsFinished)
	assert.Len(t, h.player.played(), 2)
}

func TestTimer_CatchUpStartsSegmentsAtPreviousEnd(t *testing.T) {
	defer goleak.VerifyNone(t)
	// Work 10, Rest 10, Work 10, Rest 5, Done
	h := newTimerHarness(t, testWorkout("w", 2, 10, 10, domain.CustomRest(5)))
	h.run()
	defer h.close(t)

	h.timer.Start("w")
	h.flush(t)
	h.tickAt(t, 27_300)

	state := h.timer.State()
	assert.Equal(t, 2, state.SegmentIndex)
	assert.Equal(t, 3, state.PhaseRemaining)
	assert.Equal(t, 8, state.TotalRemaining)

	stored := h.store.stored()
	require.NotNil(t, stored)
	assert.Equal(t, startMs+20_000, stored.SegmentStartedAtMs)

	// Only the landed segment is announced
	assert.Equal(t, []domain.CueID{domain.CueWorkStart, domain.CueWorkStart}, h.player.played())
}

func TestTimer_CatchUpMatchesManualStepping(t *testing.T) {
	defer goleak.VerifyNone(t)
	w := testWorkout("w", 3, 20, 10, domain.SameAsRegularRest())

	auto := newTimerHarness(t, w)
	auto.run()
	defer auto.close(t)
	auto.timer.Start("w")
	auto.flush(t)
	auto.tickAt(t, 75_000)

	manual := newTimerHarness(t, w)
	manual.run()
	defer manual.close(t)
	manual.timer.Start("w")
	for i := 0; i < 4; i++ {
		manual.timer.Next()
	}
	manual.flush(t)

	assert.Equal(t, manual.timer.State().SegmentIndex, auto.timer.State().SegmentIndex)

	// Far beyond the end never passes Done
	auto.tickAt(t, 10_000_000)
	plan := domain.NewPlan(w)
	assert.Equal(t, plan.DoneIndex, auto.timer.State().SegmentIndex)
	assert.True(t, auto.timer.State().IsFinished)
}

func TestTimer_PauseDoesNotConsumeTime(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := newTimerHarness(t, testWorkout("w", 1, 10, 0, domain.NoRest()))
	h.run()
	defer h.close(t)

	h.timer.Start("w")
	h.flush(t)
	h.timer.PauseResume()
	h.flush(t)
	assert.True(t, h.timer.State().IsPaused)

	h.clock.advance(300_000)
	h.timer.Tick()
	h.timer.PauseResume()
	h.flush(t)

	state := h.timer.State()
	assert.False(t, state.IsPaused)
	assert.Equal(t, 10, state.PhaseRemaining)
	assert.Equal(t, int64(300_000), h.store.stored().AccumulatedPausedMs)
	assert.Equal(t, startMs, h.store.stored().SegmentStartedAtMs)
}

func TestTimer_PauseResumeImmediatelyKeepsSecond(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := newTimerHarness(t, testWorkout("w", 1, 10, 0, domain.NoRest()))
	h.run()
	defer h.close(t)

	h.timer.Start("w")
	h.flush(t)
	h.tickAt(t, 2_500)
	before := h.timer.State().PhaseRemaining

	h.timer.PauseResume()
	h.timer.PauseResume()
	h.flush(t)

	assert.Equal(t, before, h.timer.State().PhaseRemaining)
}

func TestTimer_CountdownCuesOnTicks(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := newTimerHarness(t, testWorkout("w", 1, 5, 0, domain.NoRest()))
	h.run()
	defer h.close(t)

	h.timer.Start("w")
	h.flush(t)
	for _, offset := range []int64{1_100, 2_100, 2_500, 3_100, 4_100, 4_900} {
		h.tickAt(t, offset)
	}

	assert.Equal(t, []domain.CueID{
		domain.CueWorkStart,
		domain.CueCountdown,
		domain.CueCountdown,
		domain.CueCountdown,
	}, h.player.played())
}

func TestTimer_NextPreviousAndJumpTo(t *testing.T) {
	defer goleak.VerifyNone(t)
	// Work, Rest, Work, Done
	h := newTimerHarness(t, testWorkout("w", 2, 10, 10, domain.NoRest()))
	h.run()
	defer h.close(t)

	h.timer.Start("w")
	h.flush(t)
	h.clock.advance(4_000)
	h.timer.Next()
	h.flush(t)
	assert.Equal(t, 1, h.timer.State().SegmentIndex)
	assert.Equal(t, 10, h.timer.State().PhaseRemaining)
	assert.Equal(t, startMs+4_000, h.store.stored().SegmentStartedAtMs)

	h.timer.Previous()
	h.timer.Previous()
	h.flush(t)
	assert.Equal(t, 0, h.timer.State().SegmentIndex)

	h.timer.JumpTo(99)
	h.flush(t)
	state := h.timer.State()
	assert.Equal(t, 3, state.SegmentIndex)
	assert.True(t, state.IsFinished)
	assert.Nil(t, h.store.stored())

	assert.Equal(t, []domain.CueID{
		domain.CueWorkStart,
		domain.CueRestStart,
		domain.CueWorkStart,
		domain.CueFinished,
	}, h.player.played())
}

func TestTimer_NextOnPausedSessionResumes(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := newTimerHarness(t, testWorkout("w", 2, 10, 10, domain.NoRest()))
	h.run()
	defer h.close(t)

	h.timer.Start("w")
	h.timer.PauseResume()
	h.timer.Next()
	h.flush(t)

	state := h.timer.State()
	assert.False(t, state.IsPaused)
	assert.Equal(t, domain.PhaseRest, state.Phase)
}

func TestTimer_StopClearsSession(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := newTimerHarness(t, testWorkout("w", 2, 10, 10, domain.NoRest()))
	h.run()
	defer h.close(t)

	h.timer.Start("w")
	h.timer.Stop()
	h.flush(t)

	state := h.timer.State()
	assert.False(t, state.IsActive)
	assert.True(t, state.IsFinished)
	assert.Equal(t, domain.PhaseDone, state.Phase)
	assert.Equal(t, "Test w", state.WorkoutName)
	assert.Nil(t, h.store.stored())

	// Commands after stop are ignored
	h.timer.Next()
	h.timer.PauseResume()
	h.flush(t)
	assert.False(t, h.timer.State().IsActive)
}

func TestTimer_RestoreResumesWithoutReplayingCue(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := newTimerHarness(t, testWorkout("w", 2, 10, 10, domain.NoRest()))
	h.store.snapshot = &domain.RuntimeSnapshot{
		WorkoutID:          "w",
		SegmentIndex:       1,
		SegmentStartedAtMs: startMs - 4_000,
	}
	h.run()
	defer h.close(t)

	h.timer.Restore()
	h.flush(t)

	state := h.timer.State()
	assert.True(t, state.IsActive)
	assert.Equal(t, 1, state.SegmentIndex)
	assert.Equal(t, 6, state.PhaseRemaining)
	assert.Empty(t, h.player.played())

	h.tickAt(t, 6_000)
	assert.Equal(t, 2, h.timer.State().SegmentIndex)
	assert.Equal(t, []domain.CueID{domain.CueWorkStart}, h.player.played())
}

func TestTimer_RestoreDiscardsUnusableSessions(t *testing.T) {
	tests := []struct {
		name     string
		snapshot domain.RuntimeSnapshot
	}{
		{"finished", domain.RuntimeSnapshot{WorkoutID: "w", IsFinished: true}},
		{"orphaned", domain.RuntimeSnapshot{WorkoutID: "gone"}},
		{"at the end", domain.RuntimeSnapshot{WorkoutID: "w", SegmentIndex: 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer goleak.VerifyNone(t)
			h := newTimerHarness(t, testWorkout("w", 2, 10, 10, domain.NoRest()))
			snapshot := tt.snapshot
			h.store.snapshot = &snapshot
			h.run()
			defer h.close(t)

			h.timer.Restore()
			h.flush(t)

			assert.Nil(t, h.store.stored())
			assert.Equal(t, 1, h.store.clears)
			assert.False(t, h.timer.State().IsActive)
		})
	}
}

func TestTimer_RestoreReanchorsSessionsFromTheFuture(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := newTimerHarness(t, testWorkout("w", 2, 10, 10, domain.NoRest()))
	pausedAt := startMs + 50_000
	h.store.snapshot = &domain.RuntimeSnapshot{
		WorkoutID:           "w",
		SegmentIndex:        2,
		SegmentStartedAtMs:  startMs + 47_000,
		AccumulatedPausedMs: 1_000,
		IsPaused:            true,
		PausedAtMs:          &pausedAt,
	}
	h.run()
	defer h.close(t)

	h.timer.Restore()
	h.flush(t)

	state := h.timer.State()
	assert.True(t, state.IsPaused)
	assert.Equal(t, 2, state.SegmentIndex)
	// 2s of the segment had run before the pause
	assert.Equal(t, 8, state.PhaseRemaining)

	stored := h.store.stored()
	require.NotNil(t, stored)
	assert.Equal(t, startMs-2_000, stored.SegmentStartedAtMs)
	assert.Equal(t, startMs, *stored.PausedAtMs)
}

func TestTimer_EmptyWorkoutFinishesImmediately(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := newTimerHarness(t, domain.WorkoutDefinition{ID: "empty", Name: "Empty"})
	h.run()
	defer h.close(t)

	h.timer.Start("empty")
	h.flush(t)

	assert.True(t, h.timer.State().IsFinished)
	assert.Equal(t, []domain.CueID{domain.CueFinished}, h.player.played())
	assert.Nil(t, h.store.stored())
}

func TestTimer_RunReleasesPlayerOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := newTimerHarness(t, testWorkout("w", 2, 10, 10, domain.NoRest()))
	h.run()

	h.timer.Start("w")
	h.flush(t)
	h.close(t)

	h.player.mu.Lock()
	defer h.player.mu.Unlock()
	assert.Equal(t, 1, h.player.closes)
	assert.False(t, h.player.ready)
}

func TestTimer_RealTickSourceAdvances(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := newTimerHarness(t, testWorkout("w", 1, 1, 0, domain.NoRest()))
	h.timer.tickInterval = 5 * time.Millisecond
	h.run()
	defer h.close(t)

	h.timer.Start("w")
	h.flush(t)
	h.clock.advance(1_000)

	assert.Eventually(t, func() bool {
		return h.timer.State().IsFinished
	}, 2*time.Second, 10*time.Millisecond)
}

func TestTimer_StoreErrorsNeverUndoTransitions(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := portsmocks.NewMockSessionStore(t)
	store.EXPECT().UpsertSession(mock.Anything, mock.Anything).Return(errors.New("disk full"))

	clock := &fakeClock{}
	clock.now.Store(startMs)
	reader := &fakeWorkoutReader{workouts: map[string]domain.WorkoutDefinition{
		"w1": testWorkout("w1", 2, 20, 10, domain.SameAsRegularRest()),
	}}
	timer := NewTimerService(clock, store, reader, NewCueDispatcher(&fakeCuePlayer{}, testCueConfig()), NewNotificationService(nil), time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- timer.Run(ctx) }()

	timer.Start("w1")
	timer.Next()
	flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer flushCancel()
	require.NoError(t, timer.Flush(flushCtx))

	state := timer.State()
	assert.True(t, state.IsActive)
	assert.Equal(t, 1, state.SegmentIndex)
	assert.Equal(t, domain.PhaseRest, state.Phase)

	cancel()
	require.NoError(t, <-done)
}

func TestTimer_PreviousOnFirstSegmentReplaysCountdown(t *testing.T) {
	defer goleak.VerifyNone(t)
	h := newTimerHarness(t, testWorkout("w", 1, 10, 0, domain.NoRest()))
	h.run()
	defer h.close(t)

	h.timer.Start("w")
	h.flush(t)
	for _, offset := range []int64{7_100, 8_100, 9_100} {
		h.tickAt(t, offset)
	}

	h.clock.now.Store(startMs + 9_500)
	h.timer.Previous()
	h.flush(t)
	assert.Equal(t, 10, h.timer.State().PhaseRemaining)

	for _, offset := range []int64{16_600, 17_600, 18_600} {
		h.tickAt(t, offset)
	}

	assert.Equal(t, []domain.CueID{
		domain.CueWorkStart,
		domain.CueCountdown,
		domain.CueCountdown,
		domain.CueCountdown,
		domain.CueCountdown,
		domain.CueCountdown,
		domain.CueCountdown,
	}, h.player.played())
}

func TestTimer_TicksAreCoalesced(t *testing.T) {
	h := newTimerHarness(t)

	for i := 0; i < 10; i++ {
		h.timer.Tick()
	}

	assert.Len(t, h.timer.commands, 1)
}

type blockingSessionStore struct {
	fakeSessionStore
	blocked atomic.Bool
	release chan struct{}
}

func (s *blockingSessionStore) UpsertSession(ctx context.Context, snapshot domain.RuntimeSnapshot) error {
	if s.blocked.Load() {
		<-s.release
	}
	return s.fakeSessionStore.UpsertSession(ctx, snapshot)
}

func TestTimer_SlowStoreNeverDropsUserCommands(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := &blockingSessionStore{release: make(chan struct{})}
	clock := &fakeClock{}
	clock.now.Store(startMs)
	reader := &fakeWorkoutReader{workouts: map[string]domain.WorkoutDefinition{
		"w": testWorkout("w", 2, 60, 10, domain.NoRest()),
	}}
	timer := NewTimerService(clock, store, reader, NewCueDispatcher(&fakeCuePlayer{}, testCueConfig()), NewNotificationService(nil), time.Millisecond)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- timer.Run(ctx) }()

	timer.Start("w")
	flushCtx, flushCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer flushCancel()
	require.NoError(t, timer.Flush(flushCtx))

	// The run loop stalls in persist while the tick source keeps firing
	store.blocked.Store(true)
	timer.PauseResume()
	time.Sleep(200 * time.Millisecond)
	timer.Stop()

	store.blocked.Store(false)
	close(store.release)
	require.NoError(t, timer.Flush(flushCtx))

	state := timer.State()
	assert.False(t, state.IsActive)
	assert.Nil(t, store.stored())

	cancel()
	require.NoError(t, <-done)
}
