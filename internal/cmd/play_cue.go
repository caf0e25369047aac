package cmd

import (
	"context"
	"fmt"

	"github.com/renato0307/hiit/internal/domain"
)

// PlayCueCmd plays one audio cue
type PlayCueCmd struct {
	Cue string `arg:"" help:"Cue to play" enum:"work-start,rest-start,countdown,finished" default:"work-start"`
}

// Run executes the play-cue command
func (p *PlayCueCmd) Run(cli *CLI) error {
	cues := cli.CueConfig()
	if !cues.SoundsEnabled {
		fmt.Println("Sounds are disabled")
		return nil
	}

	player := cli.Container.CuePlayer
	if err := player.Preload(context.Background()); err != nil {
		return fmt.Errorf("failed to load sounds: %w", err)
	}
	defer player.Close()

	volume := cues.CueVolume()
	if domain.CueID(p.Cue) == domain.CueCountdown {
		volume = cues.CountdownVolume()
	}
	return player.Play(domain.CueID(p.Cue), volume)
}
