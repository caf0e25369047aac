package cmd

import (
	"context"
	"fmt"
)

// WorkoutsExportCmd exports workouts to a YAML file
type WorkoutsExportCmd struct {
	IDs  []string `help:"Workout IDs to export (default: all)" name:"id"`
	Path string   `arg:"" help:"Destination YAML file" type:"path"`
}

// Run executes the export command
func (w *WorkoutsExportCmd) Run(cli *CLI) error {
	n, err := cli.Container.WorkoutService.Export(context.Background(), w.Path, w.IDs...)
	if err != nil {
		return fmt.Errorf("failed to export workouts: %w", err)
	}
	fmt.Printf("Exported %d workouts to %s\n", n, w.Path)
	return nil
}
