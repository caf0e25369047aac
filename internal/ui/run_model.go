package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/hiit/internal/domain"
	"github.com/renato0307/hiit/internal/logging"
	"github.com/renato0307/hiit/internal/theme"
)

// DefaultPollInterval is how often the run screen reads the timer state
const DefaultPollInterval = 100 * time.Millisecond

// TimerController is the part of the timer the run screen drives
type TimerController interface {
	State() domain.RenderState
	PauseResume()
	Next()
	Previous()
	Stop()
}

// RunModel is the full-screen view of a running workout.
// It only polls the timer's published state and posts commands; all
// timing lives in the timer.
type RunModel struct {
	devMode      bool
	help         help.Model
	keys         KeyMap
	pollInterval time.Duration
	progress     progress.Model
	quitting     bool
	state        domain.RenderState
	statusText   string
	stopped      bool
	timer        TimerController
	width        int
}

// NewRunModel creates the run screen for timer
func NewRunModel(timer TimerController, pollInterval time.Duration, devMode bool) *RunModel {
	if pollInterval <= 0 {
		pollInterval = DefaultPollInterval
	}
	return &RunModel{
		devMode:      devMode,
		help:         help.New(),
		keys:         NewKeyMap(),
		pollInterval: pollInterval,
		progress:     progress.New(progress.WithoutPercentage(), progress.WithSolidFill(string(theme.ColorWork))),
		state:        timer.State(),
		timer:        timer,
	}
}

func (m *RunModel) Init() tea.Cmd {
	return m.poll()
}

func (m *RunModel) poll() tea.Cmd {
	return tea.Tick(m.pollInterval, func(t time.Time) tea.Msg {
		return pollMsg(t)
	})
}

func (m *RunModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pollMsg:
		m.state = m.timer.State()
		return m, m.poll()

	case PresentationMsg:
		m.statusText = msg.Text
		return m, tea.SetWindowTitle("hiit · " + msg.Text)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		m.progress.Width = max(10, min(msg.Width-4, 60))
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *RunModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit), key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.stopped || m.state.IsFinished {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Pause):
		m.timer.PauseResume()
	case key.Matches(msg, m.keys.Next):
		m.timer.Next()
	case key.Matches(msg, m.keys.Previous):
		m.timer.Previous()
	case key.Matches(msg, m.keys.Stop):
		logging.Logger.Info("Workout stopped from the run screen")
		m.timer.Stop()
		m.stopped = true
		m.state = domain.TerminalRenderState(m.state)
	}
	return m, nil
}

// Quitting reports whether the user asked to leave the screen
func (m *RunModel) Quitting() bool {
	return m.quitting
}

func (m *RunModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(renderHeader(m.devMode, m.state.WorkoutName))

	r := m.state
	switch {
	case m.stopped:
		b.WriteString(theme.PhaseStyle(domain.PhaseDone, false).Render("STOPPED"))
		b.WriteString("\n\n")
		b.WriteString(theme.MutedStyle.Render("Press q to exit."))
	case r.IsFinished:
		b.WriteString(theme.PhaseStyle(domain.PhaseDone, false).Render(domain.LabelDone))
		b.WriteString("\n\n")
		b.WriteString(theme.RemainingStyle.Render("Workout complete"))
		b.WriteString("\n\n")
		b.WriteString(theme.MutedStyle.Render("Press q to exit."))
	case !r.IsActive:
		b.WriteString(theme.MutedStyle.Render("No active workout."))
	default:
		b.WriteString(m.renderActive(r))
	}

	b.WriteString("\n")
	b.WriteString(theme.HelpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

func (m *RunModel) renderActive(r domain.RenderState) string {
	var b strings.Builder

	b.WriteString(theme.PhaseStyle(r.Phase, r.IsPaused).Render(strings.ToUpper(r.PhaseLabel)))
	if r.IsPaused {
		b.WriteString("  " + theme.PausedStyle.Render("paused"))
	}
	b.WriteString("\n\n")

	remaining := theme.RemainingStyle
	if r.PhaseRemaining <= 3 && !r.IsPaused {
		remaining = remaining.Foreground(theme.ColorWarning)
	}
	b.WriteString(remaining.Render(domain.FormatSeconds(r.PhaseRemaining)))
	b.WriteString("\n")
	b.WriteString(m.progress.ViewAs(phaseProgress(r)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, counters(r)...))
	b.WriteString("\n")
	if r.NextLabel != "" {
		b.WriteString(theme.NextLabelStyle.Render("Next: " + r.NextLabel))
		b.WriteString("\n")
	}
	return b.String()
}

// counters renders the set, rest, phase and total counters present in r
func counters(r domain.RenderState) []string {
	var parts []string
	add := func(label, value string) {
		parts = append(parts, theme.CounterStyle.Render(fmt.Sprintf("%s %s   ", label, value)))
	}
	if r.SetsTotal > 0 {
		add("Set", fmt.Sprintf("%d/%d", r.SetIndex, r.SetsTotal))
	}
	if r.RestTotal > 0 {
		add("Rest", fmt.Sprintf("%d/%d", r.RestIndex, r.RestTotal))
	}
	add("Phase", fmt.Sprintf("%d/%d", r.PhaseIndex, r.TotalPhases))
	add("Total", domain.FormatSeconds(r.TotalRemaining))
	return parts
}

// phaseProgress is the elapsed fraction of the current phase
func phaseProgress(r domain.RenderState) float64 {
	if r.PhaseDuration <= 0 {
		return 1
	}
	return 1 - float64(r.PhaseRemaining)/float64(r.PhaseDuration)
}
