package services

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/renato0307/hiit/internal/domain"
	"github.com/renato0307/hiit/internal/logging"
	"github.com/renato0307/hiit/internal/ports"
)

const (
	commandQueueSize    = 64
	defaultTickInterval = 100 * time.Millisecond
)

type commandKind string

const (
	cmdFlush       commandKind = "flush"
	cmdJumpTo      commandKind = "jump-to"
	cmdNext        commandKind = "next"
	cmdPauseResume commandKind = "pause-resume"
	cmdPrevious    commandKind = "previous"
	cmdRestore     commandKind = "restore"
	cmdStart       commandKind = "start"
	cmdStop        commandKind = "stop"
	cmdTick        commandKind = "tick"
)

type command struct {
	done      chan struct{}
	index     int
	kind      commandKind
	workoutID string
}

// TimerService runs a workout session. All state is owned by the goroutine
// executing Run; the exported command methods only enqueue work for it and
// never block. Readers get the latest RenderState through State.
type TimerService struct {
	clock         ports.Clock
	commands      chan command
	cues          *CueDispatcher
	notifications *NotificationService
	state         atomic.Pointer[domain.RenderState]
	store         ports.SessionStore
	tickInterval  time.Duration
	tickPending   atomic.Bool
	workouts      ports.WorkoutReader

	// owned by Run
	plan         *domain.Plan
	runCtx       context.Context
	snapshot     *domain.RuntimeSnapshot
	tickerCancel context.CancelFunc
	tickerDone   chan struct{}
}

// NewTimerService creates a new TimerService
func NewTimerService(
	clock ports.Clock,
	store ports.SessionStore,
	workouts ports.WorkoutReader,
	cues *CueDispatcher,
	notifications *NotificationService,
	tickInterval time.Duration,
) *TimerService {
	if tickInterval <= 0 {
		tickInterval = defaultTickInterval
	}
	s := &TimerService{
		clock:         clock,
		commands:      make(chan command, commandQueueSize),
		cues:          cues,
		notifications: notifications,
		store:         store,
		tickInterval:  tickInterval,
		workouts:      workouts,
	}
	idle := domain.IdleRenderState()
	s.state.Store(&idle)
	return s
}

// State returns the latest published RenderState
func (s *TimerService) State() domain.RenderState {
	return *s.state.Load()
}

// Start begins a new session for a workout, replacing any current one
func (s *TimerService) Start(workoutID string) {
	s.post(command{kind: cmdStart, workoutID: workoutID})
}

// PauseResume toggles between running and paused
func (s *TimerService) PauseResume() { s.post(command{kind: cmdPauseResume}) }

// Next skips to the next segment
func (s *TimerService) Next() { s.post(command{kind: cmdNext}) }

// Previous goes back one segment, or restarts the first one
func (s *TimerService) Previous() { s.post(command{kind: cmdPrevious}) }

// Stop ends the session and forgets it
func (s *TimerService) Stop() { s.post(command{kind: cmdStop}) }

// JumpTo seeks to a segment index, clamped to the timeline
func (s *TimerService) JumpTo(index int) {
	s.post(command{kind: cmdJumpTo, index: index})
}

// Restore resumes the session persisted by a previous process, if any
func (s *TimerService) Restore() { s.post(command{kind: cmdRestore}) }

// Tick asks the runtime to re-evaluate the clock now. At most one tick is
// queued at a time, so ticks never crowd out user commands.
func (s *TimerService) Tick() {
	if !s.tickPending.CompareAndSwap(false, true) {
		return
	}
	s.post(command{kind: cmdTick})
}

// Flush blocks until every command posted before it has been processed
func (s *TimerService) Flush(ctx context.Context) error {
	c := command{kind: cmdFlush, done: make(chan struct{})}
	select {
	case s.commands <- c:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case <-c.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *TimerService) post(c command) {
	select {
	case s.commands <- c:
	default:
		if c.kind == cmdTick {
			s.tickPending.Store(false)
			return
		}
		logging.Logger.Warn("Timer command queue full, dropping command", "command", c.kind)
	}
}

// Run processes commands until ctx is cancelled. On return the tick source
// is stopped and the cue player released.
func (s *TimerService) Run(ctx context.Context) error {
	s.runCtx = ctx
	defer func() {
		s.stopTicker()
		s.cues.Release()
	}()

	s.log().Debug("Timer started")
	for {
		select {
		case <-ctx.Done():
			s.log().Debug("Timer stopped")
			return nil
		case c := <-s.commands:
			s.handle(ctx, c)
		}
	}
}

func (s *TimerService) handle(ctx context.Context, c command) {
	if c.kind != cmdTick {
		s.log().Debug("Timer command", "command", c.kind)
	}

	switch c.kind {
	case cmdStart:
		s.start(ctx, c.workoutID)
	case cmdPauseResume:
		s.pauseResume(ctx)
	case cmdNext:
		if s.active() {
			s.seek(ctx, min(s.snapshot.SegmentIndex+1, s.plan.DoneIndex), false)
		}
	case cmdPrevious:
		if s.active() {
			s.seek(ctx, max(s.snapshot.SegmentIndex-1, 0), true)
		}
	case cmdJumpTo:
		if s.active() {
			s.seek(ctx, min(max(c.index, 0), s.plan.DoneIndex), true)
		}
	case cmdStop:
		s.stop(ctx)
	case cmdRestore:
		s.restore(ctx)
	case cmdTick:
		s.tickPending.Store(false)
		s.tick(ctx)
	case cmdFlush:
	}

	if c.done != nil {
		close(c.done)
	}
}

// active reports whether a running or paused session exists
func (s *TimerService) active() bool {
	if s.snapshot == nil || s.plan == nil {
		s.log().Debug("No session, ignoring command")
		return false
	}
	if s.snapshot.IsFinished {
		s.log().Debug("Session finished, ignoring command")
		return false
	}
	return true
}

func (s *TimerService) start(ctx context.Context, workoutID string) {
	workout, err := s.workouts.GetWorkout(ctx, workoutID)
	if err != nil {
		s.log().Warn("Cannot start workout", "workout_id", workoutID, "error", err)
		return
	}

	s.stopTicker()
	s.plan = domain.NewPlan(*workout)
	snapshot := domain.NewRuntimeSnapshot(workoutID, s.clock.NowMs())
	snapshot.IsFinished = s.plan.IsDone(0)
	s.snapshot = &snapshot

	s.log().Info("Workout started",
		"segments", len(s.plan.Segments),
		"total_sec", s.plan.TotalDurationSec())

	s.persist(ctx)
	s.cues.ResetForNewRun()
	s.cues.Preload(ctx)
	s.enterSegment()
}

func (s *TimerService) pauseResume(ctx context.Context) {
	if !s.active() {
		return
	}

	now := s.clock.NowMs()
	var next domain.RuntimeSnapshot
	if s.snapshot.IsPaused {
		next = domain.Resume(*s.snapshot, now)
	} else {
		next = domain.Pause(*s.snapshot, now)
	}
	s.snapshot = &next
	s.persist(ctx)

	if next.IsPaused {
		s.stopTicker()
	} else {
		s.startTicker()
	}
	s.notifications.Publish(s.publish(now), true)
}

// seek moves to index. allowSame restarts the current segment instead of
// ignoring the command.
func (s *TimerService) seek(ctx context.Context, index int, allowSame bool) {
	same := index == s.snapshot.SegmentIndex
	if same && !allowSame {
		return
	}

	next := domain.Seek(*s.snapshot, index, s.clock.NowMs())
	next.IsFinished = s.plan.IsDone(index)
	s.snapshot = &next
	s.persist(ctx)
	if same {
		s.cues.RestartSegment(index)
	}
	s.enterSegment()
}

func (s *TimerService) stop(ctx context.Context) {
	if err := s.store.ClearSession(ctx); err != nil {
		s.log().Error("Failed to clear session", "error", err)
	}

	s.stopTicker()
	s.cues.Release()

	terminal := domain.TerminalRenderState(s.State())
	s.state.Store(&terminal)
	s.plan = nil
	s.snapshot = nil

	s.notifications.Stopped()
	s.log().Info("Workout stopped")
}

func (s *TimerService) restore(ctx context.Context) {
	stored, err := s.store.GetSession(ctx)
	if err != nil {
		s.log().Error("Failed to read stored session", "error", err)
		return
	}
	if stored == nil {
		s.log().Debug("No stored session to restore")
		return
	}
	if stored.IsFinished {
		s.discard(ctx, "finished")
		return
	}

	workout, err := s.workouts.GetWorkout(ctx, stored.WorkoutID)
	if errors.Is(err, domain.ErrWorkoutNotFound) {
		s.discard(ctx, "workout no longer exists")
		return
	}
	if err != nil {
		s.log().Error("Failed to load workout of stored session", "workout_id", stored.WorkoutID, "error", err)
		return
	}

	plan := domain.NewPlan(*workout)
	if plan.IsDone(stored.SegmentIndex) {
		s.discard(ctx, "already at the end")
		return
	}

	s.stopTicker()
	s.plan = plan
	snapshot := *stored
	now := s.clock.NowMs()
	if snapshot.IsAfter(now) {
		s.log().Warn("Stored session is ahead of the clock, re-anchoring",
			"segment_started_at_ms", snapshot.SegmentStartedAtMs, "now_ms", now)
		snapshot = snapshot.Reanchor(now)
		s.snapshot = &snapshot
		s.persist(ctx)
	} else {
		s.snapshot = &snapshot
	}

	s.log().Info("Session restored",
		"segment_index", snapshot.SegmentIndex,
		"paused", snapshot.IsPaused)

	s.cues.ResetForNewRun()
	s.cues.Prime(snapshot.SegmentIndex)
	s.cues.Preload(ctx)
	s.notifications.Publish(s.publish(now), true)
	if !snapshot.IsPaused {
		s.startTicker()
	}
}

func (s *TimerService) discard(ctx context.Context, reason string) {
	s.log().Info("Discarding stored session", "reason", reason)
	if err := s.store.ClearSession(ctx); err != nil {
		s.log().Error("Failed to clear session", "error", err)
	}
}

// tick advances through every segment that ended since the last tick.
// Only the landed segment is announced.
func (s *TimerService) tick(ctx context.Context) {
	if s.snapshot == nil || s.plan == nil || s.snapshot.IsPaused || s.snapshot.IsFinished {
		return
	}

	now := s.clock.NowMs()
	next, advanced := domain.CatchUp(s.plan, *s.snapshot, now)
	if advanced {
		s.log().Debug("Auto advanced", "from", s.snapshot.SegmentIndex, "to", next.SegmentIndex)
		s.snapshot = &next
		s.persist(ctx)
		s.enterSegment()
		return
	}

	state := s.publish(now)
	s.cues.OnTick(next.SegmentIndex, s.plan.Segment(next.SegmentIndex), state.PhaseRemaining, next.IsPaused)
	s.notifications.Publish(state, false)
}

// enterSegment announces the current segment and keeps the ticker in line
// with the session state
func (s *TimerService) enterSegment() {
	idx := s.snapshot.SegmentIndex
	s.cues.OnSegmentChanged(idx, s.plan.Segment(idx), s.snapshot.IsPaused)
	state := s.publish(s.clock.NowMs())
	s.notifications.Publish(state, true)

	if s.snapshot.IsFinished {
		s.stopTicker()
		s.log().Info("Workout finished")
		return
	}
	s.startTicker()
}

// persist writes the snapshot, or clears the store once finished. Errors are
// logged and never undo the in-memory transition.
func (s *TimerService) persist(ctx context.Context) {
	var err error
	if s.snapshot.IsFinished {
		err = s.store.ClearSession(ctx)
	} else {
		err = s.store.UpsertSession(ctx, *s.snapshot)
	}
	if err != nil {
		s.log().Error("Failed to persist session", "error", err)
	}
}

// log tags records with the workout of the current session. Only the Run
// goroutine may call it.
func (s *TimerService) log() *slog.Logger {
	if s.snapshot == nil {
		return logging.Logger
	}
	return logging.ForSession(s.snapshot.WorkoutID)
}

func (s *TimerService) publish(nowMs int64) domain.RenderState {
	state := domain.IdleRenderState()
	if s.snapshot != nil && s.plan != nil {
		state = domain.Render(s.plan, *s.snapshot, nowMs)
	}
	s.state.Store(&state)
	return state
}

// startTicker starts the tick source unless it already runs
func (s *TimerService) startTicker() {
	if s.tickerCancel != nil || s.runCtx == nil {
		return
	}

	ctx, cancel := context.WithCancel(s.runCtx)
	done := make(chan struct{})
	s.tickerCancel = cancel
	s.tickerDone = done

	go func() {
		defer close(done)
		ticker := time.NewTicker(s.tickInterval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.Tick()
			}
		}
	}()
}

func (s *TimerService) stopTicker() {
	if s.tickerCancel == nil {
		return
	}
	s.tickerCancel()
	<-s.tickerDone
	s.tickerCancel = nil
	s.tickerDone = nil
}
