package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/renato0307/hiit/internal/config"
	"github.com/renato0307/hiit/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	NoSounds    bool             `help:"Disable audio cues" env:"HIIT_NO_SOUNDS"`
	Volume      float64          `help:"Cue volume between 0 and 1" default:"0.8" env:"HIIT_VOLUME"`

	Run      RunCmd      `cmd:"" help:"Run a workout, or resume the active one (default)" default:"withargs"`
	Quick    QuickCmd    `cmd:"quick" help:"Configure and run the quick start workout"`
	Workouts WorkoutsCmd `cmd:"workouts" help:"Manage workouts (list, show, import, export, del, pin)"`
	Plan     PlanCmd     `cmd:"plan" help:"Show the timeline of a workout"`
	Status   StatusCmd   `cmd:"status" help:"Show the active session"`
	Stop     StopCmd     `cmd:"stop" help:"Stop the active session"`
	PlayCue  PlayCueCmd  `cmd:"play-cue" help:"Play an audio cue (to test sound setup)"`
	Settings SettingsCmd `cmd:"settings" help:"Manage settings (show)"`
	Info     VersionCmd  `cmd:"version" help:"Print version information"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply() error {
	if c.settings == nil {
		c.settings = &config.Settings{}
	}
	c.applySettings()

	if c.Volume < 0 || c.Volume > 1 {
		return fmt.Errorf("volume must be between 0 and 1, got %v", c.Volume)
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Child processes (sound players spawned by play-cue) share the log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("HIIT_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("HIIT_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv("HIIT_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	// Create container AFTER logging is initialized so GORM logs go to the right place
	container, err := NewContainer(c.settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// applySettings fills flags left at their defaults from settings.json.
// Precedence: CLI flags > env vars > settings.json > defaults.
func (c *CLI) applySettings() {
	s := c.settings

	if c.MaxLogFiles == logging.DefaultMaxLogFiles && !hasEnv("HIIT_MAX_LOG_FILES") && s.MaxLogFiles != nil {
		c.MaxLogFiles = *s.MaxLogFiles
	}

	if !c.Debug && !hasEnv("HIIT_DEBUG") && s.Debug != nil && *s.Debug {
		c.Debug = true
	}

	if c.Volume == config.DefaultVolume && !hasEnv("HIIT_VOLUME") && s.Volume != nil {
		c.Volume = *s.Volume
	}

	if !c.NoSounds && !hasEnv("HIIT_NO_SOUNDS") && s.SoundsEnabled != nil && !*s.SoundsEnabled {
		c.NoSounds = true
	}
}

// CueConfig returns the cue policy after flags and env vars were applied
func (c *CLI) CueConfig() config.CueConfig {
	cues := config.NewCueConfig(c.settings)
	cues.SoundsEnabled = !c.NoSounds
	cues.Volume = c.Volume
	return cues
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

func hasEnv(name string) bool {
	_, ok := os.LookupEnv(name)
	return ok
}
