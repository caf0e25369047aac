package ui

import (
	"fmt"

	"github.com/renato0307/hiit/internal/theme"
)

// VersionInfo holds version information for display in UI headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Version   string
}

// DefaultVersionInfo provides default values when version info is not available
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Version:   "dev",
}

var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderHeader renders the app name, the version in dev mode, and an optional subtitle
func renderHeader(devMode bool, subtitle string) string {
	line := theme.AppNameStyle.Render("hiit")
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		line += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s", versionInfo.Version, commit, versionInfo.GoVersion))
	}
	if subtitle != "" {
		line += "  " + theme.SubtitleStyle.Render(subtitle)
	}
	return line + "\n\n"
}
