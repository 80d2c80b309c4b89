package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"slices"
	"strings"
	"text/tabwriter"

	"github.com/Adlai-Holler/ShameBell/internal/config"
	"github.com/Adlai-Holler/ShameBell/internal/screen"
	"github.com/Adlai-Holler/ShameBell/internal/ui"
)

// SettingsKeysCmd manages keyboard shortcuts
type SettingsKeysCmd struct {
	List SettingsKeysListCmd `cmd:"list" help:"List all key bindings (defaults and custom)" default:"1"`
	Set  SettingsKeysSetCmd  `cmd:"set" help:"Set a key binding"`
}

// SettingsKeysListCmd lists all key bindings
type SettingsKeysListCmd struct {
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
	Screen bool   `help:"Show the window bindings instead of the terminal ones"`
}

// SettingsKeysSetCmd sets a key binding
type SettingsKeysSetCmd struct {
	Key    string `arg:"" help:"Key name (e.g., shake, flip, quit)"`
	Value  string `arg:"" help:"Key binding (e.g., s, ctrl+s, or comma-separated for multiple: u,f)"`
	Screen bool   `help:"Set a window binding instead of a terminal one"`
}

// keyCatalog describes the bindings of one front end
type keyCatalog struct {
	custom   config.KeyBindingsConfig
	defaults map[string][]string
	frontend string
	names    []string
}

func terminalCatalog(settings *config.Settings) keyCatalog {
	return keyCatalog{
		custom:   settings.Keys,
		defaults: ui.GetDefaultKeyBindings(),
		frontend: config.FrontendTerminal,
		names:    ui.GetValidKeyNames(),
	}
}

func screenCatalog(settings *config.Settings) keyCatalog {
	keys := screen.DefaultKeys()
	defaults := map[string][]string{
		screen.BindingFlip:       screen.KeyNames(keys.Flip),
		screen.BindingFullscreen: screen.KeyNames(keys.Fullscreen),
		screen.BindingQuit:       screen.KeyNames(keys.Quit),
		screen.BindingShake:      screen.KeyNames(keys.Shake),
	}
	return keyCatalog{
		custom:   settings.ScreenKeys,
		defaults: defaults,
		frontend: config.FrontendScreen,
		names:    screen.BindingNames,
	}
}

func catalogFor(settings *config.Settings, useScreen bool) keyCatalog {
	if useScreen {
		return screenCatalog(settings)
	}
	return terminalCatalog(settings)
}

// Run executes the list command
func (s *SettingsKeysListCmd) Run(cli *CLI) error {
	catalog := catalogFor(cli.LoadedSettings(), s.Screen)

	if s.Format == "json" {
		return s.outputJSON(catalog)
	}

	return s.outputTable(catalog)
}

func (s *SettingsKeysListCmd) outputJSON(catalog keyCatalog) error {
	result := make(map[string]map[string]any)

	for _, name := range catalog.names {
		entry := make(map[string]any)
		entry["default"] = catalog.defaults[name]

		if custom, ok := catalog.custom[name]; ok && len(custom) > 0 {
			entry["custom"] = custom
		}

		result[name] = entry
	}

	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

func (s *SettingsKeysListCmd) outputTable(catalog keyCatalog) error {
	settingsFile := config.GetSettingsPath()
	fmt.Printf("Key Bindings for the %s (settings file: %s)\n\n", catalog.frontend, settingsFile)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Name\tDefault\tCustom")
	fmt.Fprintln(w, "────\t───────\t──────")

	for _, name := range catalog.names {
		defaultKeys := joinKeys(catalog.defaults[name])
		customStr := "-"

		if custom, ok := catalog.custom[name]; ok && len(custom) > 0 {
			customStr = joinKeys(custom)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\n", name, defaultKeys, customStr)
	}

	w.Flush()

	fmt.Println()
	fmt.Println("Use 'shamebell settings keys set <name> <value>' to customize.")
	return nil
}

// Run executes the set command
func (s *SettingsKeysSetCmd) Run(cli *CLI) error {
	catalog := catalogFor(cli.LoadedSettings(), s.Screen)

	if !slices.Contains(catalog.names, s.Key) {
		return fmt.Errorf("unknown key '%s'. Valid keys: %s",
			s.Key, strings.Join(catalog.names, ", "))
	}

	values := parseKeyValues(s.Value)
	if len(values) == 0 {
		return fmt.Errorf("value cannot be empty")
	}

	if catalog.frontend == config.FrontendScreen {
		// reject names Ebitengine doesn't know before saving them
		if _, err := screen.ParseKeys(config.KeyBindingsConfig{s.Key: values}); err != nil {
			return err
		}
	}

	if err := cli.Container.SettingsService.SetKeyBinding(catalog.frontend, s.Key, values, catalog.names); err != nil {
		return err
	}

	fmt.Printf("Set '%s' to: %s\n", s.Key, strings.Join(values, ", "))
	return nil
}

// joinKeys lists keys for display, spelling out the space bar
func joinKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, ", ")
}

// parseKeyValues parses comma-separated key values
func parseKeyValues(value string) []string {
	parts := strings.Split(value, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
