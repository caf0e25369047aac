package config

import "time"

// CueConfig holds the resolved audio cue policy
type CueConfig struct {
	CountdownSeconds          []int
	CountdownVolumeMultiplier float64
	IncludePrepare            bool
	SoundsEnabled             bool
	Volume                    float64
}

// NewCueConfig resolves the cue policy from settings, falling back to defaults
// for every value the settings file leaves out
func NewCueConfig(s *Settings) CueConfig {
	config := CueConfig{
		CountdownVolumeMultiplier: DefaultCountdownVolumeMultiplier,
		SoundsEnabled:             true,
		Volume:                    DefaultVolume,
	}
	if s == nil {
		s = &Settings{}
	}

	if s.CountdownSeconds != nil {
		config.CountdownSeconds = append([]int(nil), s.CountdownSeconds...)
	} else {
		// Default list is a constant, parsing cannot fail
		config.CountdownSeconds, _ = ParseIntList(DefaultCountdownSeconds)
	}
	if s.CountdownVolumeMultiplier != nil {
		config.CountdownVolumeMultiplier = *s.CountdownVolumeMultiplier
	}
	if s.CountdownIncludePrepare != nil {
		config.IncludePrepare = *s.CountdownIncludePrepare
	}
	if s.SoundsEnabled != nil {
		config.SoundsEnabled = *s.SoundsEnabled
	}
	if s.Volume != nil {
		config.Volume = *s.Volume
	}

	return config
}

// CountdownEnabled reports whether any countdown cue can fire
func (c CueConfig) CountdownEnabled() bool {
	return c.SoundsEnabled && len(c.CountdownSeconds) > 0
}

// IsCountdownSecond reports whether a countdown cue fires at sec remaining
func (c CueConfig) IsCountdownSecond(sec int) bool {
	for _, s := range c.CountdownSeconds {
		if s == sec {
			return true
		}
	}
	return false
}

// CueVolume is the base volume clamped to [0,1]
func (c CueConfig) CueVolume() float64 {
	return clampVolume(c.Volume)
}

// CountdownVolume is the base volume scaled by the countdown multiplier, clamped to [0,1]
func (c CueConfig) CountdownVolume() float64 {
	return clampVolume(c.CueVolume() * c.CountdownVolumeMultiplier)
}

// TickInterval returns the runtime tick period
func (s *Settings) TickInterval() time.Duration {
	if s == nil || s.TickIntervalMs == nil || *s.TickIntervalMs <= 0 {
		return DefaultTickIntervalMs * time.Millisecond
	}
	return time.Duration(*s.TickIntervalMs) * time.Millisecond
}

// QuickStartDefaults returns the quick start form defaults from settings, if any
func (s *Settings) QuickStartDefaults() (QuickStart, bool) {
	if s == nil || s.QuickStart == nil {
		return QuickStart{}, false
	}
	return *s.QuickStart, true
}

func clampVolume(v float64) float64 {
	return min(max(v, 0), 1)
}
