// Package demo provides infrastructure for generating demos of veneer.
// Scenarios drive the real app model over a deterministic browser shell,
// so recordings are reproducible and need no terminal.
package demo

import (
	"strconv"
	"time"

	"github.com/zhubert/veneer/internal/browser"
	"github.com/zhubert/veneer/internal/ui"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait pauses for a duration (for timing/pacing).
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepCapture captures the current frame (for selective capture).
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
	// StepFlash shows a footer flash message.
	StepFlash
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText
	Text string

	// For StepWait
	Duration time.Duration

	// For StepAnnotate
	Annotation string

	// For StepFlash
	FlashText string
	FlashType ui.FlashType
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 120)
	Height      int // Terminal height (default 40)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial browser state for a demo.
type ScenarioSetup struct {
	// SampleData seeds the sample history and bookmarks.
	SampleData bool

	// HomeURL opens a "Homepage" tab instead of the default one when set.
	HomeURL string

	Theme  browser.Theme
	Accent string
}

// DefaultSetup returns a setup with sample data and the light theme.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{
		SampleData: true,
		Theme:      browser.ThemeLight,
	}
}

// Validate checks that the scenario is valid and fills in defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 120
	}
	if s.Height <= 0 {
		s.Height = 40
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	if s.Setup.Theme == "" {
		s.Setup.Theme = browser.ThemeLight
	}
	if _, err := browser.ParseTheme(string(s.Setup.Theme)); err != nil {
		return &ValidationError{Field: "Setup.Theme", Message: err.Error()}
	}
	for i, step := range s.Steps {
		if step.Type == StepKey && step.Key == "" {
			return &ValidationError{Field: "Steps", Message: "key step " + strconv.Itoa(i) + " has no key"}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// TypeWithDesc creates a text typing step with a description.
func TypeWithDesc(text, description string) Step {
	return Step{
		Type:        StepTypeText,
		Text:        text,
		Description: description,
	}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}

// Flash creates a step that shows a footer flash message.
func Flash(text string, flashType ui.FlashType) Step {
	return Step{
		Type:      StepFlash,
		FlashText: text,
		FlashType: flashType,
	}
}

// Visit focuses the address bar, clears it, types url and submits.
func Visit(url string) []Step {
	return []Step{
		KeyWithDesc("l", "focus address bar"),
		Key("ctrl+u"),
		TypeWithDesc(url, "type address"),
		Key("enter"),
	}
}

// Sequence flattens groups of steps into one list.
func Sequence(groups ...[]Step) []Step {
	var steps []Step
	for _, g := range groups {
		steps = append(steps, g...)
	}
	return steps
}
