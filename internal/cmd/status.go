package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/renato0307/hiit/internal/domain"
)

// StatusCmd prints the active session without changing it
type StatusCmd struct {
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
}

// Run executes the status command
func (s *StatusCmd) Run(cli *CLI) error {
	state, err := currentState(context.Background(), cli)
	if err != nil {
		return err
	}

	if s.Format == "json" {
		return printJSON(state)
	}
	fmt.Println(describe(state))
	return nil
}

// currentState renders the stored session at the current instant. Segments
// that ended meanwhile are skipped in memory only; the running process (or
// the next run) persists them.
func currentState(ctx context.Context, cli *CLI) (domain.RenderState, error) {
	snapshot, err := cli.Container.Repository.GetSession(ctx)
	if err != nil {
		return domain.RenderState{}, fmt.Errorf("failed to read session: %w", err)
	}
	if snapshot == nil {
		return domain.IdleRenderState(), nil
	}

	workout, err := cli.Container.Repository.GetWorkout(ctx, snapshot.WorkoutID)
	if errors.Is(err, domain.ErrWorkoutNotFound) {
		return domain.IdleRenderState(), nil
	}
	if err != nil {
		return domain.RenderState{}, fmt.Errorf("failed to load workout: %w", err)
	}

	plan := domain.NewPlan(*workout)
	now := cli.Container.Clock.NowMs()
	current := *snapshot
	if current.IsAfter(now) {
		current = current.Reanchor(now)
	}
	current, _ = domain.CatchUp(plan, current, now)
	return domain.Render(plan, current, now), nil
}
