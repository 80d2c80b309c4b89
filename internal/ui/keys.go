package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"

	"github.com/Adlai-Holler/ShameBell/internal/config"
)

// KeyMap contains the terminal key bindings
type KeyMap struct {
	Finger    key.Binding
	Flip      key.Binding
	ForceQuit key.Binding
	Help      key.Binding
	Quit      key.Binding
	Shake     key.Binding
}

// NewKeyMap creates a KeyMap, applying custom keys over the defaults.
// Pass nil to use default bindings.
func NewKeyMap(customKeys config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Finger:    buildBinding("finger", defaults, customKeys),
		Flip:      buildBinding("flip", defaults, customKeys),
		ForceQuit: buildBinding("force_quit", defaults, customKeys),
		Help:      buildBinding("help", defaults, customKeys),
		Quit:      buildBinding("quit", defaults, customKeys),
		Shake:     buildBinding("shake", defaults, customKeys),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Finger, k.Shake, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Finger, k.Shake, k.Flip},
		{k.Help, k.Quit, k.ForceQuit},
	}
}

// buildBinding creates a key.Binding from the key definition, using custom keys if provided
func buildBinding(name string, defaults map[string][]string, customKeys config.KeyBindingsConfig) key.Binding {
	def := GetKeyDefinition(name)
	if def == nil {
		panic("unknown key definition: " + name)
	}

	keys := defaults[name]
	if custom, ok := customKeys[name]; ok && len(custom) > 0 {
		keys = make([]string, len(custom))
		for i, k := range custom {
			// bubbletea reports the space bar as " "
			if k == "space" {
				k = " "
			}
			keys[i] = k
		}
	}

	return key.NewBinding(
		key.WithKeys(keys...),
		key.WithHelp(helpKeys(keys), def.Help),
	)
}

func helpKeys(keys []string) string {
	names := make([]string, len(keys))
	for i, k := range keys {
		if k == " " {
			k = "space"
		}
		names[i] = k
	}
	return strings.Join(names, "/")
}
