package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/hiit/internal/domain"
)

// WorkoutsShowCmd shows a specific workout
type WorkoutsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ID     string `arg:"" help:"ID of the workout to show"`
}

type exerciseView struct {
	LastRest    string `json:"last_rest"`
	LastRestSec int    `json:"last_rest_sec"`
	Name        string `json:"name"`
	RestSec     int    `json:"rest_sec"`
	Sets        int    `json:"sets"`
	WorkSec     int    `json:"work_sec"`
}

type workoutView struct {
	Exercises  []exerciseView `json:"exercises"`
	ID         string         `json:"id"`
	Name       string         `json:"name"`
	Pinned     bool           `json:"pinned"`
	PrepareSec int            `json:"prepare_sec"`
	Source     string         `json:"source"`
	TotalSec   int            `json:"total_sec"`
}

// Run executes the show command
func (w *WorkoutsShowCmd) Run(cli *CLI) error {
	workout, err := cli.Container.WorkoutService.Get(context.Background(), w.ID)
	if err != nil {
		return fmt.Errorf("failed to get workout: %w", err)
	}

	view := workoutView{
		Exercises:  make([]exerciseView, 0, len(workout.Exercises)),
		ID:         workout.ID,
		Name:       workout.Name,
		Pinned:     workout.IsPinned,
		PrepareSec: workout.PrepareSec,
		Source:     sourceName(workout.Source),
		TotalSec:   domain.NewPlan(*workout).TotalDurationSec(),
	}
	for _, ex := range workout.Exercises {
		view.Exercises = append(view.Exercises, exerciseView{
			LastRest:    ex.RestPolicy.String(),
			LastRestSec: ex.RestPolicy.Resolve(ex.RestSec),
			Name:        ex.Name,
			RestSec:     ex.RestSec,
			Sets:        ex.Sets,
			WorkSec:     ex.WorkSec,
		})
	}

	if w.Format == "json" {
		return printJSON(view)
	}

	fmt.Printf("Workout: %s\n", view.Name)
	fmt.Printf("ID: %s\n", view.ID)
	fmt.Printf("Source: %s\n", view.Source)
	fmt.Printf("Pinned: %t\n", view.Pinned)
	fmt.Printf("Prepare: %s\n", domain.FormatSeconds(view.PrepareSec))
	fmt.Printf("Duration: %s\n\n", domain.FormatSeconds(view.TotalSec))

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tEXERCISE\tSETS\tWORK\tREST\tLAST REST")
	for i, ex := range view.Exercises {
		fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%s\t%s (%s)\n",
			i+1,
			ex.Name,
			ex.Sets,
			domain.FormatSeconds(ex.WorkSec),
			domain.FormatSeconds(ex.RestSec),
			ex.LastRest,
			domain.FormatSeconds(ex.LastRestSec))
	}
	return tw.Flush()
}
