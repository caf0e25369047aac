package sound

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"sync"

	"github.com/renato0307/hiit/internal/domain"
	"github.com/renato0307/hiit/internal/logging"
	"github.com/renato0307/hiit/internal/ports"
)

// soundSpec is one way of playing a cue: a player command and what it plays
type soundSpec struct {
	builtin bool // file is not a path, nothing to check on disk
	file    string
	player  string
}

// Player implements ports.CuePlayer by spawning the platform sound player.
// Platform-specific sound choices are in player_*.go files with build tags.
type Player struct {
	mu        sync.Mutex
	bell      io.Writer
	lookPath  func(file string) (string, error)
	overrides map[domain.CueID]string
	ready     bool
	resolved  map[domain.CueID]soundSpec
	start     func(name string, args ...string) error
	stat      func(name string) (os.FileInfo, error)
}

// Verify interface compliance at compile time
var _ ports.CuePlayer = (*Player)(nil)

// NewPlayer creates a new sound player. overrides maps cue ids to sound
// files that take precedence over the platform defaults.
func NewPlayer(overrides map[string]string) *Player {
	o := make(map[domain.CueID]string, len(overrides))
	for cue, file := range overrides {
		o[domain.CueID(cue)] = file
	}
	return &Player{
		bell:      os.Stdout,
		lookPath:  exec.LookPath,
		overrides: o,
		start:     startDetached,
		stat:      os.Stat,
	}
}

// Preload resolves, for every cue, the first sound that can actually be
// played here. Cues without one fall back to the terminal bell.
func (p *Player) Preload(ctx context.Context) error {
	resolved := make(map[domain.CueID]soundSpec)
	for _, cue := range domain.AllCues() {
		if err := ctx.Err(); err != nil {
			return err
		}

		candidates := defaultSpecs(cue)
		if file, ok := p.overrides[cue]; ok && file != "" {
			candidates = append(overrideSpecs(file), candidates...)
		}

		for _, spec := range candidates {
			if p.usable(spec) {
				resolved[cue] = spec
				break
			}
		}
		if spec, ok := resolved[cue]; ok {
			logging.Logger.Debug("Cue resolved", "cue", cue, "player", spec.player, "file", spec.file)
		} else {
			logging.Logger.Debug("No sound for cue, using terminal bell", "cue", cue)
		}
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.resolved = resolved
	p.ready = true
	return nil
}

// Ready reports whether Preload completed since the last Close
func (p *Player) Ready() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ready
}

// Play starts the cue sound without waiting for it to finish
func (p *Player) Play(cue domain.CueID, volume float64) error {
	p.mu.Lock()
	ready := p.ready
	spec, ok := p.resolved[cue]
	p.mu.Unlock()

	if !ready {
		return fmt.Errorf("cue player not ready")
	}
	if !ok {
		return p.terminalBell()
	}

	volume = min(max(volume, 0), 1)
	if err := p.start(spec.player, playArgs(spec, volume)...); err != nil {
		logging.Logger.Warn("Sound player failed, using terminal bell", "player", spec.player, "error", err)
		return p.terminalBell()
	}
	return nil
}

// Close forgets resolved sounds; a later Preload makes the player ready again
func (p *Player) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.ready = false
	p.resolved = nil
	return nil
}

func (p *Player) usable(spec soundSpec) bool {
	if _, err := p.lookPath(spec.player); err != nil {
		return false
	}
	if spec.builtin {
		return true
	}
	_, err := p.stat(spec.file)
	return err == nil
}

// terminalBell outputs a terminal bell character as fallback
func (p *Player) terminalBell() error {
	_, err := fmt.Fprint(p.bell, "\a")
	return err
}

// startDetached starts a command and reaps it in the background
func startDetached(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	go func() {
		_ = cmd.Wait()
	}()
	return nil
}
