package cmd

import (
	"github.com/spf13/afero"

	adapterclock "github.com/renato0307/hiit/internal/adapters/clock"
	adaptersound "github.com/renato0307/hiit/internal/adapters/sound"
	adapterstorage "github.com/renato0307/hiit/internal/adapters/storage"
	adapterworkoutfile "github.com/renato0307/hiit/internal/adapters/workoutfile"
	"github.com/renato0307/hiit/internal/config"
	"github.com/renato0307/hiit/internal/paths"
	"github.com/renato0307/hiit/internal/ports"
	"github.com/renato0307/hiit/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Adapters
	Clock      ports.Clock
	CuePlayer  ports.CuePlayer
	Repository ports.Repository

	// Services
	WorkoutService *services.WorkoutService

	settings *config.Settings
}

// NewContainer creates a new Container with all dependencies wired
func NewContainer(settings *config.Settings) (*Container, error) {
	repo, err := adapterstorage.NewSQLiteRepository(paths.GetDBPath())
	if err != nil {
		return nil, err
	}

	if settings == nil {
		settings = &config.Settings{}
	}

	files := adapterworkoutfile.NewYAMLStore(afero.NewOsFs())

	return &Container{
		Clock:          adapterclock.New(),
		CuePlayer:      adaptersound.NewPlayer(settings.Sounds),
		Repository:     repo,
		WorkoutService: services.NewWorkoutService(repo, files),
		settings:       settings,
	}, nil
}

// NewTimer wires a timer for one run. notifier may be nil.
func (c *Container) NewTimer(notifier ports.Notifier, cues config.CueConfig) *services.TimerService {
	return services.NewTimerService(
		c.Clock,
		c.Repository,
		c.Repository,
		services.NewCueDispatcher(c.CuePlayer, cues),
		services.NewNotificationService(notifier),
		c.settings.TickInterval(),
	)
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.Repository != nil {
		return c.Repository.Close()
	}
	return nil
}
