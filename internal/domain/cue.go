package domain

// CueID identifies an audio cue. Players map ids to sounds.
type CueID string

const (
	CueCountdown CueID = "countdown"
	CueFinished  CueID = "finished"
	CueRestStart CueID = "rest-start"
	CueWorkStart CueID = "work-start"
)

// AllCues lists every cue in a stable order
func AllCues() []CueID {
	return []CueID{CueWorkStart, CueRestStart, CueCountdown, CueFinished}
}

// PresentationUpdate is one push to the presentation collaborator
type PresentationUpdate struct {
	IsFinished bool
	IsPaused   bool
	Label      string
	Remaining  string // mm:ss
	Text       string // "<label>: <remaining>" or "Workout complete"
}
