package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/renato0307/hiit/internal/domain"
	"github.com/renato0307/hiit/internal/logging"
	"github.com/renato0307/hiit/internal/ui"
)

// QuickCmd edits and runs the quick start workout
type QuickCmd struct {
	Dev          bool `help:"Enable development mode (shows version info)"`
	Headless     bool `help:"Print status lines instead of the full-screen view"`
	NoForm       bool `help:"Skip the form and use saved values and flags"`
	Rest         int  `help:"Rest seconds between sets (-1 = keep saved)" default:"-1"`
	Sets         int  `help:"Number of sets (0 = keep saved)" default:"0"`
	SkipLastRest bool `help:"Skip the rest after the last set"`
	Work         int  `help:"Work seconds per set (0 = keep saved)" default:"0"`
}

// Run executes the quick command
func (q *QuickCmd) Run(cli *CLI) error {
	ctx := context.Background()
	service := cli.Container.WorkoutService

	params, err := service.QuickStartParams(ctx, quickStartDefaults(cli))
	if err != nil {
		return fmt.Errorf("failed to load quick start: %w", err)
	}
	params = q.apply(params)

	if !q.NoForm {
		params, err = ui.NewQuickStartForm(params).Run()
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("quick start form failed: %w", err)
		}
	}

	if _, err := service.SaveQuickStart(ctx, params); err != nil {
		return fmt.Errorf("failed to save quick start: %w", err)
	}
	logging.Logger.Info("Quick start saved", "sets", params.Sets, "work_sec", params.WorkSec, "rest_sec", params.RestSec)

	return runSession(cli, domain.QuickStartID, q.Headless, q.Dev)
}

// apply overrides saved values with the flags that were given
func (q *QuickCmd) apply(p domain.QuickStartParams) domain.QuickStartParams {
	if q.Sets > 0 {
		p.Sets = q.Sets
	}
	if q.Work > 0 {
		p.WorkSec = q.Work
	}
	if q.Rest >= 0 {
		p.RestSec = q.Rest
	}
	if q.SkipLastRest {
		p.SkipLastRest = true
	}
	return p
}

// quickStartDefaults returns the settings.json quick start values, or the built-in ones
func quickStartDefaults(cli *CLI) domain.QuickStartParams {
	qs, ok := cli.settings.QuickStartDefaults()
	if !ok {
		return domain.DefaultQuickStartParams()
	}
	return domain.QuickStartParams{
		RestSec:      qs.RestSec,
		Sets:         qs.Sets,
		SkipLastRest: qs.SkipLastRest,
		WorkSec:      qs.WorkSec,
	}
}
