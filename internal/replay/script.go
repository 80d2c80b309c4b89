package replay

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Adlai-Holler/ShameBell/internal/domain"
)

// Step events that are not bell events
const (
	EventOrientation   = "orientation"
	EventTouchCanceled = "touch-cancelled"
)

// StepEvents lists every event a script step may name
var StepEvents = []string{
	domain.TouchBegan.String(),
	domain.TouchEnded.String(),
	EventTouchCanceled,
	domain.Shake.String(),
	domain.AudioFinished.String(),
	domain.AudioInterrupted.String(),
	EventOrientation,
}

// Script is a named sequence of input events
type Script struct {
	Name  string `yaml:"name"`
	Steps []Step `yaml:"steps"`
}

// Step is one input event, optionally followed by a state assertion
type Step struct {
	Event      string `yaml:"event"`
	Expect     string `yaml:"expect,omitempty"`
	Portrait   *bool  `yaml:"portrait,omitempty"` // orientation steps default to portrait
	Touch      int    `yaml:"touch,omitempty"`
	UpsideDown bool   `yaml:"upside_down,omitempty"`
}

// IsPortrait reports the portrait flag of an orientation step
func (s Step) IsPortrait() bool {
	return s.Portrait == nil || *s.Portrait
}

// Describe renders the step for tables and errors
func (s Step) Describe() string {
	switch s.Event {
	case domain.TouchBegan.String(), domain.TouchEnded.String(), EventTouchCanceled:
		return fmt.Sprintf("%s #%d", s.Event, s.Touch)
	case EventOrientation:
		facing := "upright"
		if s.UpsideDown {
			facing = "upside down"
		}
		if !s.IsPortrait() {
			facing += ", landscape"
		}
		return fmt.Sprintf("%s (%s)", s.Event, facing)
	default:
		return s.Event
	}
}

// Load reads and parses a script file
func Load(path string) (*Script, error) {
	ext := strings.ToLower(filepath.Ext(path))
	if ext != ".yaml" && ext != ".yml" {
		return nil, fmt.Errorf("%w: %s is not a YAML file", domain.ErrInvalidScript, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read script: %w", err)
	}

	script, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if script.Name == "" {
		script.Name = strings.TrimSuffix(filepath.Base(path), ext)
	}
	return script, nil
}

// Parse decodes and validates a YAML script
func Parse(data []byte) (*Script, error) {
	script := &Script{}
	if err := yaml.Unmarshal(data, script); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidScript, err)
	}
	if err := script.Validate(); err != nil {
		return nil, err
	}
	return script, nil
}

// Validate checks every step's event and expectation
func (s *Script) Validate() error {
	if len(s.Steps) == 0 {
		return fmt.Errorf("%w: no steps", domain.ErrInvalidScript)
	}

	for i, step := range s.Steps {
		if !slices.Contains(StepEvents, step.Event) {
			return fmt.Errorf("step %d: %w: %q (valid: %s)", i+1, domain.ErrUnknownEvent, step.Event, strings.Join(StepEvents, ", "))
		}
		if step.Expect != "" {
			if _, err := domain.ParseState(step.Expect); err != nil {
				return fmt.Errorf("step %d: %w: %v", i+1, domain.ErrInvalidScript, err)
			}
		}
	}
	return nil
}
