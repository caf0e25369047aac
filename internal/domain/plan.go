package domain

// BuildSegments flattens a workout into Prepare, (Work, Rest)*, Done.
// Prepare appears once, only when the prepare time is positive. After every
// set but the last the regular rest is used; after the last set the
// exercise's rest policy decides. Rest segments are only emitted with a
// positive duration. Negative values are clamped to zero.
func BuildSegments(w WorkoutDefinition) []Segment {
	out := make([]Segment, 0, 64)

	if w.PrepareSec > 0 {
		out = append(out, Prepare{Duration: w.PrepareSec})
	}

	for _, ex := range w.Exercises {
		setsTotal := max(0, ex.Sets)
		workSec := max(0, ex.WorkSec)
		for set := 1; set <= setsTotal; set++ {
			out = append(out, Work{
				ExerciseName: ex.Name,
				SetIndex:     set,
				SetsTotal:    setsTotal,
				Duration:     workSec,
			})

			restSec := max(0, ex.RestSec)
			if set == setsTotal {
				restSec = ex.RestPolicy.Resolve(ex.RestSec)
			}
			if restSec > 0 {
				out = append(out, Rest{
					ExerciseName: ex.Name,
					SetIndex:     set,
					SetsTotal:    setsTotal,
					Duration:     restSec,
				})
			}
		}
	}

	return append(out, Done{})
}

// TotalDurationSec sums the durations of all non-Done segments
func TotalDurationSec(segments []Segment) int {
	total := 0
	for _, s := range segments {
		if s.Kind() == PhaseDone {
			continue
		}
		total += max(0, s.DurationSec())
	}
	return total
}

// Plan is the segment timeline of one workout plus lookup tables derived once
type Plan struct {
	DoneIndex         int
	FutureDurationSec []int // sum of durations strictly after i, before Done
	RestOrdinal       []int // 1-based occurrence of a Rest within its exercise, 0 otherwise
	RestTotal         map[string]int
	Segments          []Segment
	TotalPhases       int
	Workout           WorkoutDefinition
}

// NewPlan plans a workout and derives its metadata index
func NewPlan(w WorkoutDefinition) *Plan {
	segments := BuildSegments(w)

	doneIndex := len(segments) - 1
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i].Kind() == PhaseDone {
			doneIndex = i
			break
		}
	}

	future := make([]int, len(segments))
	sum := 0
	for i := doneIndex - 1; i >= 0; i-- {
		sum += max(0, segments[i+1].DurationSec())
		future[i] = sum
	}

	ordinals := make([]int, len(segments))
	totals := make(map[string]int)
	for i := 0; i < doneIndex; i++ {
		rest, ok := segments[i].(Rest)
		if !ok {
			continue
		}
		totals[rest.ExerciseName]++
		ordinals[i] = totals[rest.ExerciseName]
	}

	return &Plan{
		DoneIndex:         doneIndex,
		FutureDurationSec: future,
		RestOrdinal:       ordinals,
		RestTotal:         totals,
		Segments:          segments,
		TotalPhases:       max(0, doneIndex),
		Workout:           w,
	}
}

// Segment returns the segment at index i clamped to the timeline bounds
func (p *Plan) Segment(i int) Segment {
	return p.Segments[p.clamp(i)]
}

// TotalDurationSec is the workout length in seconds
func (p *Plan) TotalDurationSec() int {
	return TotalDurationSec(p.Segments)
}

// IsDone reports whether index i is at or past the terminal segment
func (p *Plan) IsDone(i int) bool {
	return i >= p.DoneIndex || p.Segment(i).Kind() == PhaseDone
}

func (p *Plan) clamp(i int) int {
	return min(max(i, 0), len(p.Segments)-1)
}
