package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/renato0307/hiit/internal/config"
	"github.com/renato0307/hiit/internal/paths"
)

// SettingsCmd manages settings
type SettingsCmd struct {
	Show SettingsShowCmd `cmd:"show" help:"Show settings file location, effective values and available options" default:"1"`
}

// SettingsShowCmd displays settings metadata
type SettingsShowCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// Run executes the show command
func (s *SettingsShowCmd) Run(cli *CLI) error {
	settingsFile := paths.GetSettingsPath()
	example := config.GetSettingsExample()
	cues := cli.CueConfig()
	effective := map[string]any{
		"countdown_include_prepare":   cues.IncludePrepare,
		"countdown_seconds":           cues.CountdownSeconds,
		"countdown_volume_multiplier": cues.CountdownVolumeMultiplier,
		"sounds_enabled":              cues.SoundsEnabled,
		"tick_interval_ms":            cli.settings.TickInterval().Milliseconds(),
		"volume":                      cues.Volume,
	}

	if s.Format == "json" {
		return printJSON(map[string]any{
			"effective":     effective,
			"format":        example,
			"settings_file": settingsFile,
		})
	}

	fmt.Printf("Settings file: %s\n\n", settingsFile)

	fmt.Println("Effective values:")
	fmt.Println()
	printSettingsTable(effective)

	fmt.Println()
	fmt.Println("Example settings.json:")
	fmt.Println()
	printSettingsTable(example)

	fmt.Println()
	fmt.Println("Create or edit this file to configure hiit.")
	fmt.Println("All settings are optional and have sensible defaults.")
	return nil
}

func printSettingsTable(values map[string]any) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, key := range keys {
		var valueStr string
		switch v := values[key].(type) {
		case string:
			valueStr = v
		case bool:
			valueStr = fmt.Sprintf("%t", v)
		case int:
			valueStr = fmt.Sprintf("%d", v)
		default:
			data, err := json.Marshal(v)
			if err != nil {
				valueStr = fmt.Sprintf("%v", v)
			} else {
				valueStr = string(data)
			}
		}
		fmt.Fprintf(w, "%s\t%s\n", key, valueStr)
	}
	w.Flush()
}
