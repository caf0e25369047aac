//go:build darwin

package sound

import (
	"strconv"

	"github.com/renato0307/hiit/internal/domain"
)

// defaultSpecs lists the system sounds for a cue
func defaultSpecs(cue domain.CueID) []soundSpec {
	var files []string
	switch cue {
	case domain.CueWorkStart:
		files = []string{"/System/Library/Sounds/Hero.aiff", "/System/Library/Sounds/Ping.aiff"}
	case domain.CueRestStart:
		files = []string{"/System/Library/Sounds/Glass.aiff", "/System/Library/Sounds/Tink.aiff"}
	case domain.CueCountdown:
		files = []string{"/System/Library/Sounds/Tink.aiff", "/System/Library/Sounds/Pop.aiff"}
	case domain.CueFinished:
		files = []string{"/System/Library/Sounds/Submarine.aiff", "/System/Library/Sounds/Purr.aiff"}
	default:
		files = []string{"/System/Library/Sounds/Glass.aiff"}
	}

	specs := make([]soundSpec, 0, len(files))
	for _, f := range files {
		specs = append(specs, soundSpec{player: "afplay", file: f})
	}
	return specs
}

func overrideSpecs(file string) []soundSpec {
	return []soundSpec{{player: "afplay", file: file}}
}

// playArgs builds the afplay command line, volume 1 being the normal level
func playArgs(spec soundSpec, volume float64) []string {
	return []string{"-v", strconv.FormatFloat(volume, 'f', 2, 64), spec.file}
}
