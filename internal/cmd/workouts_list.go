package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/hiit/internal/domain"
	"github.com/renato0307/hiit/internal/logging"
)

// WorkoutsListCmd lists all workouts
type WorkoutsListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// workoutSummary is the list view of a workout
type workoutSummary struct {
	Exercises int    `json:"exercises"`
	ID        string `json:"id"`
	Name      string `json:"name"`
	Pinned    bool   `json:"pinned"`
	Source    string `json:"source"`
	TotalSec  int    `json:"total_sec"`
}

// Run executes the list command
func (w *WorkoutsListCmd) Run(cli *CLI) error {
	ctx := context.Background()
	service := cli.Container.WorkoutService

	if _, err := service.EnsureQuickStart(ctx, quickStartDefaults(cli)); err != nil {
		logging.Logger.Warn("Failed to create quick start workout", "error", err)
	}

	workouts, err := service.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list workouts: %w", err)
	}

	summaries := make([]workoutSummary, 0, len(workouts))
	for _, wk := range workouts {
		summaries = append(summaries, workoutSummary{
			Exercises: len(wk.Exercises),
			ID:        wk.ID,
			Name:      wk.Name,
			Pinned:    wk.IsPinned,
			Source:    sourceName(wk.Source),
			TotalSec:  domain.NewPlan(wk).TotalDurationSec(),
		})
	}

	if w.Format == "json" {
		return printJSON(summaries)
	}
	return w.printTable(summaries)
}

func (w *WorkoutsListCmd) printTable(summaries []workoutSummary) error {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tEXERCISES\tDURATION\tSOURCE\tPINNED")
	for _, s := range summaries {
		pinned := ""
		if s.Pinned {
			pinned = "✓"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			s.ID,
			s.Name,
			s.Exercises,
			domain.FormatSeconds(s.TotalSec),
			s.Source,
			pinned)
	}
	tw.Flush()

	fmt.Printf("\nTotal: %d workouts\n", len(summaries))
	return nil
}

func sourceName(s domain.WorkoutSource) string {
	switch s {
	case domain.SourceSystem:
		return "system"
	case domain.SourcePreset:
		return "preset"
	default:
		return "user"
	}
}

func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
