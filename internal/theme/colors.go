package theme

import "github.com/charmbracelet/lipgloss"

// Color is an alias for lipgloss.Color for convenience
type Color = lipgloss.Color

// Brand colors
const (
	ColorPrimary   Color = "99" // Purple - app name, titles
	ColorSecondary Color = "86" // Cyan - subtitles
)

// Phase colors
const (
	ColorDone    Color = "99"  // Purple - workout complete
	ColorPaused  Color = "8"   // Gray - paused
	ColorPrepare Color = "3"   // Yellow - get ready
	ColorRest    Color = "33"  // Blue - rest
	ColorWork    Color = "2"   // Green - work
	ColorWarning Color = "196" // Bright red - countdown seconds
)

// UI semantic colors
const (
	ColorError     Color = "196" // Bright red
	ColorHighlight Color = "255" // White - emphasis
	ColorMuted     Color = "241" // Gray - secondary text
	ColorNormal    Color = "250" // Default text
	ColorSubtle    Color = "245" // Light gray - labels
	ColorVersion   Color = "240" // Dark gray
)

// Accent colors
const (
	ColorHelpGroup Color = "141" // Purple
	ColorPinned    Color = "226" // Yellow - pinned workouts
)
