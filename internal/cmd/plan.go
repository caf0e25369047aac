package cmd

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/hiit/internal/domain"
)

// PlanCmd prints the flattened timeline of a workout
type PlanCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	ID     string `arg:"" help:"ID of the workout to plan"`
}

type segmentView struct {
	DurationSec int              `json:"duration_sec"`
	Index       int              `json:"index"`
	Kind        domain.PhaseKind `json:"kind"`
	Label       string           `json:"label"`
	RemainingAt int              `json:"remaining_at_start_sec"`
}

// Run executes the plan command
func (p *PlanCmd) Run(cli *CLI) error {
	workout, err := cli.Container.WorkoutService.Get(context.Background(), p.ID)
	if err != nil {
		return fmt.Errorf("failed to get workout: %w", err)
	}

	plan := domain.NewPlan(*workout)
	segments := make([]segmentView, 0, len(plan.Segments))
	for i, seg := range plan.Segments {
		segments = append(segments, segmentView{
			DurationSec: seg.DurationSec(),
			Index:       i,
			Kind:        seg.Kind(),
			Label:       segmentLabel(seg),
			RemainingAt: seg.DurationSec() + plan.FutureDurationSec[i],
		})
	}

	if p.Format == "json" {
		return printJSON(segments)
	}

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tKIND\tLABEL\tDURATION\tREMAINING")
	for _, s := range segments {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\n",
			s.Index,
			s.Kind,
			s.Label,
			domain.FormatSeconds(s.DurationSec),
			domain.FormatSeconds(s.RemainingAt))
	}
	tw.Flush()

	fmt.Printf("\nPhases: %d  Total: %s\n", plan.TotalPhases, domain.FormatSeconds(plan.TotalDurationSec()))
	return nil
}

func segmentLabel(seg domain.Segment) string {
	switch s := seg.(type) {
	case domain.Work:
		return fmt.Sprintf("%s %d/%d", s.ExerciseName, s.SetIndex, s.SetsTotal)
	case domain.Rest:
		return fmt.Sprintf("Rest after %s %d/%d", s.ExerciseName, s.SetIndex, s.SetsTotal)
	case domain.Prepare:
		return domain.LabelPrepare
	default:
		return domain.LabelDone
	}
}
