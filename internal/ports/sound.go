package ports

import (
	"context"

	"github.com/renato0307/hiit/internal/domain"
)

// CuePlayer plays workout audio cues
type CuePlayer interface {
	// Preload prepares the cue sounds. Ready reports true once it succeeded.
	Preload(ctx context.Context) error

	// Ready reports whether cues can be played right now
	Ready() bool

	// Play starts a cue without waiting for it to finish. Volume is in [0,1].
	Play(cue domain.CueID, volume float64) error

	// Close cancels pending loads and releases the player
	Close() error
}
