//go:build linux

package sound

import (
	"fmt"

	"github.com/renato0307/hiit/internal/domain"
)

const freedesktop = "/usr/share/sounds/freedesktop/stereo/"

// defaultSpecs lists the freedesktop sounds for a cue, PulseAudio first and ALSA second
func defaultSpecs(cue domain.CueID) []soundSpec {
	var name string
	switch cue {
	case domain.CueWorkStart:
		name = "bell"
	case domain.CueRestStart:
		name = "message"
	case domain.CueCountdown:
		name = "audio-volume-change"
	case domain.CueFinished:
		name = "complete"
	default:
		name = "bell"
	}
	return []soundSpec{
		{player: "paplay", file: freedesktop + name + ".oga"},
		{player: "aplay", file: freedesktop + name + ".wav"},
	}
}

func overrideSpecs(file string) []soundSpec {
	return []soundSpec{
		{player: "paplay", file: file},
		{player: "aplay", file: file},
	}
}

// playArgs builds the command line. paplay takes a linear volume where
// 65536 is 100%; aplay has no volume control.
func playArgs(spec soundSpec, volume float64) []string {
	if spec.player == "paplay" {
		return []string{fmt.Sprintf("--volume=%d", int(volume*65536)), spec.file}
	}
	return []string{"-q", spec.file}
}
