package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/hiit/internal/services"
)

// StopCmd stops the active session
type StopCmd struct{}

// Run executes the stop command
func (s *StopCmd) Run(cli *CLI) error {
	state, err := currentState(context.Background(), cli)
	if err != nil {
		return err
	}
	if !state.IsActive {
		fmt.Println("No active workout")
		return nil
	}

	err = withTimer(cli, func(timer *services.TimerService) error {
		timer.Restore()
		timer.Stop()
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to stop session: %w", err)
	}

	fmt.Printf("Stopped %s\n", state.WorkoutName)
	return nil
}
