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
	if t.Name() == "KeyBindingsConfig" {
		if fieldName == "screen_keys" {
			return map[string]any{
				"shake": "S",
				"flip":  []string{"U", "F"},
			}
		}
		return map[string]any{
			"shake": "s",
			"flip":  []string{"u", "f"},
		}
	}

	if t.Kind() == reflect.Ptr {
		switch t.Elem().Kind() {
		case reflect.Bool:
			return fieldName == "debug"
		case reflect.Int:
			switch fieldName {
			case "max_log_files":
				return 100
			case "window_width":
				return 390
			case "window_height":
				return 844
			}
			return 10
		case reflect.Float64:
			return 0.8
		}
	}

	if t.Kind() == reflect.String {
		switch fieldName {
		case "frontend":
			return FrontendScreen
		case "sound_file":
			return "~/.shamebell/shame.mp3"
		default:
			return "example"
		}
	}

	return nil
}
