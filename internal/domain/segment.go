package domain

import "fmt"

// PhaseKind identifies the kind of a segment
type PhaseKind string

const (
	PhaseDone    PhaseKind = "done"
	PhasePrepare PhaseKind = "prepare"
	PhaseRest    PhaseKind = "rest"
	PhaseWork    PhaseKind = "work"
)

// Segment is one timed phase of a flattened workout timeline.
// Implementations: Prepare, Work, Rest, Done.
type Segment interface {
	Kind() PhaseKind
	DurationSec() int
	isSegment()
}

// Prepare is the countdown before the first exercise
type Prepare struct {
	Duration int
}

// Work is one work set of an exercise
type Work struct {
	Duration     int
	ExerciseName string
	SetIndex     int // 1-based
	SetsTotal    int
}

// Rest follows a work set of an exercise
type Rest struct {
	Duration     int
	ExerciseName string
	SetIndex     int // 1-based, the set this rest follows
	SetsTotal    int
}

// Done is the terminal segment, always last and always zero length
type Done struct{}

func (Prepare) Kind() PhaseKind { return PhasePrepare }
func (Work) Kind() PhaseKind    { return PhaseWork }
func (Rest) Kind() PhaseKind    { return PhaseRest }
func (Done) Kind() PhaseKind    { return PhaseDone }

func (s Prepare) DurationSec() int { return s.Duration }
func (s Work) DurationSec() int    { return s.Duration }
func (s Rest) DurationSec() int    { return s.Duration }
func (Done) DurationSec() int      { return 0 }

func (Prepare) isSegment() {}
func (Work) isSegment()    {}
func (Rest) isSegment()    {}
func (Done) isSegment()    {}

// unknownSegment panics on a Segment implementation the type switches don't know
func unknownSegment(s Segment) {
	panic(fmt.Sprintf("domain: unknown segment type %T", s))
}
