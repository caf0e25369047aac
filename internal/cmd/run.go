package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/renato0307/hiit/internal/domain"
	"github.com/renato0307/hiit/internal/logging"
	"github.com/renato0307/hiit/internal/services"
	"github.com/renato0307/hiit/internal/ui"
)

// flushTimeout bounds how long a command waits for the timer to apply queued work
const flushTimeout = 5 * time.Second

// RunCmd runs a workout in the terminal
type RunCmd struct {
	Dev       bool   `help:"Enable development mode (shows version info)"`
	Headless  bool   `help:"Print status lines instead of the full-screen view"`
	WorkoutID string `arg:"" optional:"" help:"Workout to start (omit to resume the active session)"`
}

// Run executes the run command
func (r *RunCmd) Run(cli *CLI) error {
	if r.WorkoutID != "" {
		if _, err := cli.Container.WorkoutService.Get(context.Background(), r.WorkoutID); err != nil {
			return fmt.Errorf("failed to load workout: %w", err)
		}
	}
	return runSession(cli, r.WorkoutID, r.Headless, r.Dev)
}

// runSession starts workoutID (or restores the stored session when empty)
// and drives it with the TUI or the headless printer until it ends or the
// user quits. Quitting keeps the session so a later run resumes it.
func runSession(cli *CLI, workoutID string, headless, dev bool) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	var (
		notifier = &ui.ProgramNotifier{}
		timer    *services.TimerService
	)
	if headless {
		timer = cli.Container.NewTimer(ui.NewLineNotifier(os.Stdout), cli.CueConfig())
	} else {
		timer = cli.Container.NewTimer(notifier, cli.CueConfig())
	}

	g, gctx := errgroup.WithContext(ctx)
	runCtx, stopRuntime := context.WithCancel(gctx)
	defer stopRuntime()

	g.Go(func() error {
		return timer.Run(runCtx)
	})

	if workoutID != "" {
		logging.Logger.Info("Starting workout", "workout_id", workoutID)
		timer.Start(workoutID)
	} else {
		logging.Logger.Info("Resuming active session")
		timer.Restore()
	}

	flushCtx, flushCancel := context.WithTimeout(gctx, flushTimeout)
	err := timer.Flush(flushCtx)
	flushCancel()
	if err != nil {
		stopRuntime()
		_ = g.Wait()
		return fmt.Errorf("timer did not respond: %w", err)
	}

	if !timer.State().IsActive {
		stopRuntime()
		_ = g.Wait()
		if workoutID == "" {
			return fmt.Errorf("%w; pass a workout id or use 'hiit quick'", domain.ErrSessionNotFound)
		}
		return fmt.Errorf("workout %s could not be started", workoutID)
	}

	g.Go(func() error {
		defer stopRuntime()

		var (
			err  error
			quit bool
		)
		if headless {
			err = waitForFinish(runCtx, timer)
		} else {
			quit, err = runTUI(runCtx, timer, notifier, dev)
		}

		// Apply commands posted right before quitting
		flushCtx, flushCancel := context.WithTimeout(runCtx, flushTimeout)
		defer flushCancel()
		_ = timer.Flush(flushCtx)

		if notice := keptSessionNotice(quit, timer.State()); notice != "" {
			logging.Logger.Info("Left the run screen, session kept")
			fmt.Println(notice)
		}
		return err
	})

	return g.Wait()
}

// runTUI shows the run screen until it exits. quit reports whether the user
// left it with the quit key.
func runTUI(ctx context.Context, timer *services.TimerService, notifier *ui.ProgramNotifier, dev bool) (quit bool, err error) {
	model := ui.NewRunModel(timer, ui.DefaultPollInterval, dev)
	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	notifier.Attach(program)

	logging.Logger.Info("Starting TUI program")
	if _, err := program.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		logging.Logger.Error("TUI program error", "error", err)
		return false, fmt.Errorf("error running program: %w", err)
	}
	logging.Logger.Info("TUI program exited normally")
	return model.Quitting(), nil
}

// keptSessionNotice tells the user how to come back to a session left
// running by quitting the run screen
func keptSessionNotice(quit bool, state domain.RenderState) string {
	if !quit || !state.IsActive || state.IsFinished {
		return ""
	}
	return fmt.Sprintf("%s is still running. Use 'hiit run' to resume or 'hiit stop' to end it.", state.WorkoutName)
}

// waitForFinish polls the timer until the session ends or ctx is cancelled
func waitForFinish(ctx context.Context, timer *services.TimerService) error {
	ticker := time.NewTicker(ui.DefaultPollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if state := timer.State(); state.IsFinished || !state.IsActive {
				logging.Logger.Info("Headless run ended", "finished", state.IsFinished)
				return nil
			}
		}
	}
}

// withTimer runs a timer without presentation for the duration of fn
func withTimer(cli *CLI, fn func(timer *services.TimerService) error) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cues := cli.CueConfig()
	cues.SoundsEnabled = false
	timer := cli.Container.NewTimer(nil, cues)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return timer.Run(gctx)
	})

	err := fn(timer)
	if err == nil {
		flushCtx, flushCancel := context.WithTimeout(gctx, flushTimeout)
		err = timer.Flush(flushCtx)
		flushCancel()
	}

	cancel()
	if waitErr := g.Wait(); err == nil {
		err = waitErr
	}
	return err
}

// describe renders a one-line summary of a render state
func describe(r domain.RenderState) string {
	if !r.IsActive {
		return "No active workout"
	}
	if r.IsFinished {
		return services.TextCompleted
	}
	line := fmt.Sprintf("%s: %s", r.PhaseLabel, domain.FormatSeconds(r.PhaseRemaining))
	if r.SetsTotal > 0 {
		line += fmt.Sprintf(" (set %d/%d)", r.SetIndex, r.SetsTotal)
	}
	if r.IsPaused {
		line += " (paused)"
	}
	return line
}
