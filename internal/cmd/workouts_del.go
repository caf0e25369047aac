package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// WorkoutsDelCmd deletes a workout
type WorkoutsDelCmd struct {
	Force bool   `help:"Skip confirmation prompt" short:"f"`
	ID    string `arg:"" help:"ID of the workout to delete"`
}

// Run executes the delete command
func (w *WorkoutsDelCmd) Run(cli *CLI) error {
	ctx := context.Background()
	service := cli.Container.WorkoutService

	workout, err := service.Get(ctx, w.ID)
	if err != nil {
		return fmt.Errorf("failed to get workout: %w", err)
	}

	if !w.Force {
		fmt.Printf("Delete workout '%s' (%s)? [y/N]: ", workout.Name, workout.ID)
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Cancelled")
			return nil
		}
	}

	if err := service.Delete(ctx, w.ID); err != nil {
		return fmt.Errorf("failed to delete workout: %w", err)
	}
	fmt.Printf("Deleted workout '%s'\n", workout.Name)
	return nil
}
