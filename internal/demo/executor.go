package demo

import (
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/veneer/internal/app"
	"github.com/zhubert/veneer/internal/browser"
	"github.com/zhubert/veneer/internal/config"
	"github.com/zhubert/veneer/internal/logger"
)

// Epoch is the wall-clock time demo shells start from.
var Epoch = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every key and typed character
	CaptureEveryStep bool

	// TypeDelay is the delay between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the delay after key presses (default: 100ms)
	KeyDelay time.Duration
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false,
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config ExecutorConfig
	model  *app.Model
	frames []Frame

	currentAnnotation string

	nextID int
	now    time.Time
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	return &Executor{
		config: cfg,
		frames: []Frame{},
	}
}

// Model returns the app model driven by the last Run.
func (e *Executor) Model() *app.Model {
	return e.model
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	log := logger.WithComponent("demo")
	log.Info("running scenario", "name", scenario.Name, "steps", len(scenario.Steps))

	e.setup(scenario)

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	log.Info("scenario finished", "name", scenario.Name, "frames", len(e.frames))
	return e.frames, nil
}

// setup builds a deterministic shell and model for the scenario.
func (e *Executor) setup(scenario *Scenario) {
	e.frames = []Frame{}
	e.currentAnnotation = ""
	e.nextID = 0
	e.now = Epoch

	setup := scenario.Setup
	opts := []browser.Option{
		browser.WithIDSource(e.newID),
		browser.WithClock(e.clock),
		browser.WithTheme(setup.Theme),
	}
	if setup.Accent != "" {
		opts = append(opts, browser.WithAccent(setup.Accent))
	}
	if setup.HomeURL != "" {
		opts = append(opts, browser.WithHomeTab(browser.HomeTabTitle, setup.HomeURL))
	}
	if setup.SampleData {
		opts = append(opts, browser.WithSampleData())
	}

	// Unsaved config: demos never touch the user's file or send notifications
	cfg := config.New("")
	e.model = app.New(cfg, browser.New(opts...), "demo")

	e.update(tea.WindowSizeMsg{
		Width:  scenario.Width,
		Height: scenario.Height,
	})
}

func (e *Executor) newID() string {
	e.nextID++
	return fmt.Sprintf("demo-%d", e.nextID)
}

// clock advances a minute per call so history timestamps differ.
func (e *Executor) clock() time.Time {
	t := e.now
	e.now = e.now.Add(time.Minute)
	return t
}

// executeStep executes a single demo step.
func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.sendKey(step.Key)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			e.sendKey(string(ch))
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepAnnotate:
		// Applies to the next captured frame
		e.currentAnnotation = step.Annotation

	case StepCapture:
		e.captureFrame(index, 0)

	case StepFlash:
		e.model.ShowFlash(step.FlashText, step.FlashType)
		e.captureFrame(index, 100*time.Millisecond)

	default:
		return fmt.Errorf("unknown step type %d", step.Type)
	}

	return nil
}

// captureFrame captures the current view as a frame.
func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	e.frames = append(e.frames, Frame{
		Content:    e.model.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
	})
	e.currentAnnotation = ""
}

// sendKey sends a key press to the model. Returned commands are dropped so
// clipboard writes and notifications never leave the demo.
func (e *Executor) sendKey(key string) {
	e.update(keyPress(key))
}

func (e *Executor) update(msg tea.Msg) {
	result, _ := e.model.Update(msg)
	e.model = result.(*app.Model)
}

// keyPress converts a key string to a tea.KeyPressMsg.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case "enter":
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case "escape", "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "backspace":
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case "up":
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case "down":
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case "left":
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case "right":
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case "space":
		return tea.KeyPressMsg{Code: tea.KeySpace, Text: " "}
	case "ctrl+d", "ctrl+g", "ctrl+l", "ctrl+t", "ctrl+u", "ctrl+w":
		return tea.KeyPressMsg{Code: rune(key[len(key)-1]), Mod: tea.ModCtrl}
	default:
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
