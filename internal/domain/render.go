package domain

import "fmt"

// Fixed phase labels
const (
	LabelDone    = "DONE"
	LabelPrepare = "PREPARE"
	LabelRest    = "REST"
)

// RenderState is the display-ready projection of a snapshot at one instant
type RenderState struct {
	IsActive       bool // a session exists
	IsFinished     bool
	IsPaused       bool
	NextLabel      string
	Phase          PhaseKind
	PhaseDuration  int
	PhaseIndex     int
	PhaseLabel     string
	PhaseRemaining int
	RestIndex      int
	RestTotal      int
	SegmentIndex   int
	SetIndex       int
	SetsTotal      int
	TotalPhases    int
	TotalRemaining int
	WorkoutName    string
}

// IdleRenderState is what is shown when no session exists
func IdleRenderState() RenderState {
	return RenderState{Phase: PhaseRest, PhaseLabel: LabelRest}
}

// Render projects a snapshot over a plan at nowMs.
// Terminal states render as paused with nothing remaining. The total remaining
// time is derived from the phase remaining time and the plan index, never
// tracked separately.
func Render(p *Plan, s RuntimeSnapshot, nowMs int64) RenderState {
	idx := p.clamp(s.SegmentIndex)
	seg := p.Segments[idx]
	done := p.IsDone(idx)

	phaseRemaining, totalRemaining := 0, 0
	if !done {
		phaseRemaining = s.RemainingSeconds(p, nowMs)
		totalRemaining = max(0, phaseRemaining+p.FutureDurationSec[idx])
	}

	phaseIndex := min(idx+1, p.TotalPhases)
	if done {
		phaseIndex = p.TotalPhases
	}

	r := RenderState{
		IsActive:       true,
		IsFinished:     done,
		IsPaused:       done || s.IsPaused,
		PhaseDuration:  seg.DurationSec(),
		PhaseIndex:     phaseIndex,
		PhaseRemaining: phaseRemaining,
		SegmentIndex:   idx,
		TotalPhases:    p.TotalPhases,
		TotalRemaining: totalRemaining,
		WorkoutName:    p.Workout.Name,
	}
	if !done {
		r.NextLabel = NextLabel(p.Segment(min(idx+1, p.DoneIndex)))
	}

	switch seg := seg.(type) {
	case Prepare:
		r.Phase = PhasePrepare
		r.PhaseLabel = LabelPrepare
	case Work:
		r.Phase = PhaseWork
		r.PhaseLabel = seg.ExerciseName
		if r.PhaseLabel == "" {
			r.PhaseLabel = "Work"
		}
		r.SetIndex = seg.SetIndex
		r.SetsTotal = seg.SetsTotal
	case Rest:
		r.Phase = PhaseRest
		r.PhaseLabel = LabelRest
		r.SetIndex = seg.SetIndex
		r.SetsTotal = seg.SetsTotal
		r.RestIndex = p.RestOrdinal[idx]
		r.RestTotal = p.RestTotal[seg.ExerciseName]
	case Done:
		r.Phase = PhaseDone
		r.PhaseLabel = LabelDone
	default:
		unknownSegment(seg)
	}

	// An index past Done on a malformed plan still renders as Done.
	if done && r.Phase != PhaseDone {
		r.Phase = PhaseDone
		r.PhaseLabel = LabelDone
		r.SetIndex, r.SetsTotal, r.RestIndex, r.RestTotal = 0, 0, 0, 0
	}
	return r
}

// TerminalRenderState is the frozen Done view shown after a session stops
func TerminalRenderState(last RenderState) RenderState {
	last.Phase = PhaseDone
	last.PhaseLabel = LabelDone
	last.PhaseDuration = 0
	last.PhaseRemaining = 0
	last.TotalRemaining = 0
	last.NextLabel = ""
	last.IsPaused = true
	last.IsFinished = true
	last.IsActive = false
	return last
}

// NextLabel previews a segment: its kind and formatted duration
func NextLabel(s Segment) string {
	switch s := s.(type) {
	case Prepare:
		return "Prepare"
	case Work:
		return fmt.Sprintf("%s %s", s.ExerciseName, FormatSeconds(s.Duration))
	case Rest:
		return fmt.Sprintf("Rest %s", FormatSeconds(s.Duration))
	case Done:
		return ""
	default:
		unknownSegment(s)
		return ""
	}
}

// FormatSeconds renders seconds as mm:ss, clamping negatives to zero
func FormatSeconds(totalSec int) string {
	sec := max(0, totalSec)
	return fmt.Sprintf("%02d:%02d", sec/60, sec%60)
}
