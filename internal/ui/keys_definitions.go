package ui

import (
	"sort"
	"sync"
)

// KeyDefinition defines the metadata for a configurable key binding.
// All key bindings are defined here as the single source of truth.
type KeyDefinition struct {
	Defaults []string
	Help     string
	Name     string
}

// AllKeyDefinitions contains all configurable terminal key bindings
var AllKeyDefinitions = []KeyDefinition{
	// Bell keys
	{Name: "finger", Defaults: []string{" "}, Help: "put finger down / lift it"},
	{Name: "flip", Defaults: []string{"u"}, Help: "turn phone over"},
	{Name: "shake", Defaults: []string{"s"}, Help: "shake"},

	// Application keys
	{Name: "force_quit", Defaults: []string{"ctrl+c"}, Help: "force quit"},
	{Name: "help", Defaults: []string{"?"}, Help: "more keys"},
	{Name: "quit", Defaults: []string{"q", "esc"}, Help: "quit"},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key name, or nil
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	def, ok := keyDefinitionsMap[name]
	if !ok {
		return nil
	}
	return &def
}

// GetValidKeyNames returns the sorted binding names accepted in settings.json
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, 0, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			validKeyNames = append(validKeyNames, def.Name)
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}
