package services

import (
	"context"

	"github.com/renato0307/hiit/internal/config"
	"github.com/renato0307/hiit/internal/domain"
	"github.com/renato0307/hiit/internal/logging"
	"github.com/renato0307/hiit/internal/ports"
)

// CueDispatcher decides when audio cues fire. It remembers what it already
// played so repeated segment notifications and ticks never replay a cue.
// It is not safe for concurrent use; the timer owns it.
type CueDispatcher struct {
	cues   config.CueConfig
	player ports.CuePlayer

	countdownFired map[int]bool
	countdownIndex int
	finishedPlayed bool
	lastIndex      int
}

// NewCueDispatcher creates a dispatcher that plays through player
func NewCueDispatcher(player ports.CuePlayer, cues config.CueConfig) *CueDispatcher {
	d := &CueDispatcher{
		cues:   cues,
		player: player,
	}
	d.ResetForNewRun()
	return d
}

// ResetForNewRun forgets every cue played so far, including the finished latch
func (d *CueDispatcher) ResetForNewRun() {
	d.lastIndex = -1
	d.finishedPlayed = false
	d.resetCountdown(-1)
}

// Prime marks index as already entered, so a restored session does not
// replay the cue of the segment it was interrupted in
func (d *CueDispatcher) Prime(index int) {
	d.lastIndex = index
	d.resetCountdown(index)
}

// RestartSegment re-arms the countdown of a segment entered again in place.
// The entry cue is not replayed.
func (d *CueDispatcher) RestartSegment(index int) {
	d.lastIndex = index
	d.resetCountdown(index)
}

// Preload prepares the player. Failures leave the player not ready, which
// silently drops cues until a later preload succeeds.
func (d *CueDispatcher) Preload(ctx context.Context) {
	if !d.cues.SoundsEnabled {
		return
	}
	if err := d.player.Preload(ctx); err != nil {
		logging.Logger.Warn("Failed to preload cues", "error", err)
	}
}

// Release frees the player resources
func (d *CueDispatcher) Release() {
	if err := d.player.Close(); err != nil {
		logging.Logger.Warn("Failed to release cue player", "error", err)
	}
}

// OnSegmentChanged plays the entry cue of a segment once per index
func (d *CueDispatcher) OnSegmentChanged(index int, seg domain.Segment, paused bool) {
	if !d.cues.SoundsEnabled || paused || index == d.lastIndex {
		return
	}
	d.lastIndex = index
	d.resetCountdown(index)

	switch seg.(type) {
	case domain.Work:
		d.play(domain.CueWorkStart, d.cues.CueVolume())
	case domain.Rest:
		d.play(domain.CueRestStart, d.cues.CueVolume())
	case domain.Done:
		if d.finishedPlayed {
			return
		}
		d.finishedPlayed = true
		d.play(domain.CueFinished, d.cues.CueVolume())
	case domain.Prepare:
		// no entry cue
	default:
		logging.Logger.Warn("Unknown segment kind, no cue", "kind", seg.Kind())
	}
}

// OnTick plays the countdown cue when the remaining seconds hit a trigger
// value that has not fired yet for this segment
func (d *CueDispatcher) OnTick(index int, seg domain.Segment, remainingSec int, paused bool) {
	if !d.cues.CountdownEnabled() || paused || !d.countdownEligible(seg) {
		return
	}
	if index != d.countdownIndex {
		d.resetCountdown(index)
	}
	if d.countdownFired[remainingSec] || !d.cues.IsCountdownSecond(remainingSec) {
		return
	}
	d.countdownFired[remainingSec] = true
	d.play(domain.CueCountdown, d.cues.CountdownVolume())
}

func (d *CueDispatcher) countdownEligible(seg domain.Segment) bool {
	switch seg.Kind() {
	case domain.PhaseWork, domain.PhaseRest:
		return true
	case domain.PhasePrepare:
		return d.cues.IncludePrepare
	default:
		return false
	}
}

func (d *CueDispatcher) resetCountdown(index int) {
	d.countdownIndex = index
	d.countdownFired = make(map[int]bool)
}

func (d *CueDispatcher) play(cue domain.CueID, volume float64) {
	if !d.player.Ready() {
		logging.Logger.Debug("Cue player not ready, dropping cue", "cue", cue)
		return
	}
	if err := d.player.Play(cue, volume); err != nil {
		logging.Logger.Warn("Failed to play cue", "cue", cue, "error", err)
	}
}
