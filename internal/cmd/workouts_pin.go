package cmd

import (
	"context"
	"fmt"
)

// WorkoutsPinCmd toggles the pinned flag of a workout
type WorkoutsPinCmd struct {
	ID string `arg:"" help:"ID of the workout to pin or unpin"`
}

// Run executes the pin command
func (w *WorkoutsPinCmd) Run(cli *CLI) error {
	pinned, err := cli.Container.WorkoutService.TogglePin(context.Background(), w.ID)
	if err != nil {
		return fmt.Errorf("failed to toggle pin: %w", err)
	}

	if pinned {
		fmt.Printf("Pinned %s\n", w.ID)
	} else {
		fmt.Printf("Unpinned %s\n", w.ID)
	}
	return nil
}
