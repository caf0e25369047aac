package config

import (
	"reflect"
	"strings"
)

// GetSettingsExample uses reflection to generate example settings
// This automatically stays in sync when new fields are added to Settings
func GetSettingsExample() map[string]any {
	var s Settings
	t := reflect.TypeOf(s)
	example := make(map[string]any)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		jsonTag := field.Tag.Get("json")
		if jsonTag == "" {
			continue
		}

		jsonName := strings.Split(jsonTag, ",")[0]
		example[jsonName] = generateExampleValue(field.Type, jsonName)
	}

	return example
}

// generateExampleValue creates appropriate example values based on type and field name
func generateExampleValue(t reflect.Type, fieldName string) any {
	if t.Kind() == reflect.Ptr {
		elemType := t.Elem()

		if elemType.Name() == "QuickStart" {
			return QuickStart{Sets: 8, WorkSec: 20, RestSec: 10}
		}

		switch elemType.Kind() {
		case reflect.Bool:
			return fieldName == "debug" || fieldName == "sounds_enabled"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return 1000
			case "tick_interval_ms":
				return DefaultTickIntervalMs
			}
			return 10
		case reflect.Float64:
			if fieldName == "countdown_volume_multiplier" {
				return DefaultCountdownVolumeMultiplier
			}
			return DefaultVolume
		}
	}

	switch t.Kind() {
	case reflect.Map:
		if t.Name() == "SoundFiles" {
			return map[string]string{
				"finished":   "~/.hiit/sounds/gong.wav",
				"work-start": "~/.hiit/sounds/whistle.wav",
			}
		}
	case reflect.Slice:
		if t.Elem().Kind() == reflect.Int {
			return []int{3, 2, 1}
		}
	}

	return nil
}
