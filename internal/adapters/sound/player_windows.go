//go:build windows

package sound

import (
	"fmt"

	"github.com/renato0307/hiit/internal/domain"
)

// defaultSpecs maps a cue to a built-in Windows system sound
func defaultSpecs(cue domain.CueID) []soundSpec {
	var sound string
	switch cue {
	case domain.CueWorkStart:
		sound = "Exclamation"
	case domain.CueRestStart:
		sound = "Asterisk"
	case domain.CueFinished:
		sound = "Question"
	default:
		sound = "Beep"
	}
	return []soundSpec{{
		builtin: true,
		file:    fmt.Sprintf("[System.Media.SystemSounds]::%s.Play()", sound),
		player:  "powershell",
	}}
}

func overrideSpecs(file string) []soundSpec {
	return []soundSpec{{player: "powershell", file: file}}
}

// playArgs builds the PowerShell command. System sounds ignore the volume.
func playArgs(spec soundSpec, volume float64) []string {
	if spec.builtin {
		return []string{"-c", spec.file}
	}
	return []string{"-c", fmt.Sprintf(
		"$p = New-Object System.Windows.Media.MediaPlayer; $p.Open('%s'); $p.Volume = %.2f; $p.Play(); Start-Sleep -s 2",
		spec.file, volume)}
}
