package theme

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/renato0307/hiit/internal/domain"
)

// Main UI styles
var (
	HelpStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Padding(1, 0)

	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorNormal)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Padding(1, 0)
)

// Timer screen styles
var (
	PhaseLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1)

	RemainingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorHighlight)

	NextLabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	CounterStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle)

	PausedStyle = lipgloss.NewStyle().
			Foreground(ColorPaused).
			Italic(true)
)

// Dialog header styles
var (
	AppNameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SubtitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	VersionStyle = lipgloss.NewStyle().
			Foreground(ColorVersion)
)

// Workout list styles
var (
	PinnedStyle = lipgloss.NewStyle().
			Foreground(ColorPinned)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorSubtle).
			Width(14)
)

// PhaseColor returns the color of a phase; paused sessions are gray
func PhaseColor(phase domain.PhaseKind, paused bool) Color {
	if paused && phase != domain.PhaseDone {
		return ColorPaused
	}
	switch phase {
	case domain.PhasePrepare:
		return ColorPrepare
	case domain.PhaseWork:
		return ColorWork
	case domain.PhaseDone:
		return ColorDone
	default:
		return ColorRest
	}
}

// PhaseStyle renders a phase label in its color
func PhaseStyle(phase domain.PhaseKind, paused bool) lipgloss.Style {
	return PhaseLabelStyle.
		Foreground(lipgloss.Color("0")).
		Background(PhaseColor(phase, paused))
}
