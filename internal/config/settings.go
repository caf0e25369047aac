package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/renato0307/hiit/internal/paths"
)

// Defaults used when neither flags, env vars nor settings.json say otherwise
const (
	DefaultCountdownSeconds          = "3,2,1"
	DefaultCountdownVolumeMultiplier = 0.6
	DefaultTickIntervalMs            = 100
	DefaultVolume                    = 0.8
)

// Settings represents the structure of $HIIT_HOME/settings.json
type Settings struct {
	CountdownIncludePrepare   *bool       `json:"countdown_include_prepare,omitempty"`
	CountdownSeconds          IntArray    `json:"countdown_seconds,omitempty"`
	CountdownVolumeMultiplier *float64    `json:"countdown_volume_multiplier,omitempty"`
	Debug                     *bool       `json:"debug,omitempty"`
	MaxLogFiles               *int        `json:"max_log_files,omitempty"`
	QuickStart                *QuickStart `json:"quick_start,omitempty"`
	Sounds                    SoundFiles  `json:"sounds,omitempty"`
	SoundsEnabled             *bool       `json:"sounds_enabled,omitempty"`
	TickIntervalMs            *int        `json:"tick_interval_ms,omitempty"`
	Volume                    *float64    `json:"volume,omitempty"`
}

// QuickStart holds the defaults offered by the quick start form on first use
type QuickStart struct {
	RestSec      int  `json:"rest_sec"`
	Sets         int  `json:"sets"`
	SkipLastRest bool `json:"skip_last_rest"`
	WorkSec      int  `json:"work_sec"`
}

// SoundFiles overrides the sound file used for each cue id
type SoundFiles map[string]string

// IntArray supports both JSON arrays and comma-separated strings
type IntArray []int

// UnmarshalJSON implements custom unmarshaling for IntArray
func (ia *IntArray) UnmarshalJSON(data []byte) error {
	var arr []int
	if err := json.Unmarshal(data, &arr); err == nil {
		*ia = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	parsed, err := ParseIntList(str)
	if err != nil {
		return err
	}
	*ia = parsed
	return nil
}

// ParseIntList splits a comma-separated list of integers, ignoring blanks
func ParseIntList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	result := make([]int, 0, len(parts))
	for _, p := range parts {
		trimmed := strings.TrimSpace(p)
		if trimmed == "" {
			continue
		}
		n, err := strconv.Atoi(trimmed)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", trimmed, err)
		}
		result = append(result, n)
	}
	return result, nil
}

// LoadSettings loads settings from $HIIT_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(paths.GetSettingsPath())
}

// LoadSettingsFrom loads settings from a specific file
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	for cue, file := range settings.Sounds {
		settings.Sounds[cue] = paths.ExpandPath(file)
	}

	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	return &settings, nil
}

// SaveSettings saves settings to $HIIT_HOME/settings.json
func SaveSettings(settings *Settings) error {
	path := paths.GetSettingsPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}

// Validate checks value ranges
func (s *Settings) Validate() error {
	if s.Volume != nil && (*s.Volume < 0 || *s.Volume > 1) {
		return fmt.Errorf("volume must be between 0 and 1, got %v", *s.Volume)
	}
	if s.CountdownVolumeMultiplier != nil && *s.CountdownVolumeMultiplier < 0 {
		return fmt.Errorf("countdown_volume_multiplier cannot be negative")
	}
	if s.TickIntervalMs != nil && *s.TickIntervalMs <= 0 {
		return fmt.Errorf("tick_interval_ms must be positive")
	}
	for _, sec := range s.CountdownSeconds {
		if sec <= 0 {
			return fmt.Errorf("countdown_seconds must be positive, got %d", sec)
		}
	}
	return nil
}
