//go:build !darwin && !linux && !windows

package sound

import "github.com/renato0307/hiit/internal/domain"

// defaultSpecs has nothing to offer on unsupported platforms: every cue rings the terminal bell
func defaultSpecs(domain.CueID) []soundSpec { return nil }

func overrideSpecs(string) []soundSpec { return nil }

func playArgs(spec soundSpec, _ float64) []string { return []string{spec.file} }
