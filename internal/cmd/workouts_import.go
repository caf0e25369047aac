package cmd

import (
	"context"
	"fmt"
)

// WorkoutsImportCmd imports workouts from a YAML file
type WorkoutsImportCmd struct {
	Path string `arg:"" help:"YAML file with a top-level 'workouts' list" type:"path"`
}

// Run executes the import command
func (w *WorkoutsImportCmd) Run(cli *CLI) error {
	imported, err := cli.Container.WorkoutService.Import(context.Background(), w.Path)
	if err != nil {
		return fmt.Errorf("failed to import workouts: %w", err)
	}

	for _, wk := range imported {
		fmt.Printf("Imported %s (%s)\n", wk.Name, wk.ID)
	}
	fmt.Printf("\nTotal: %d workouts\n", len(imported))
	return nil
}
