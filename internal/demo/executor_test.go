package demo

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/veneer/internal/app"
	"github.com/zhubert/veneer/internal/browser"
	"github.com/zhubert/veneer/internal/ui"
)

func resetTheme(t *testing.T) {
	t.Cleanup(func() {
		ui.SetAccent("")
		ui.SetTheme(ui.DefaultTheme)
	})
}

func runScenario(t *testing.T, cfg ExecutorConfig, steps ...Step) (*Executor, []Frame) {
	t.Helper()
	resetTheme(t)

	scenario := &Scenario{
		Name:   "test",
		Width:  100,
		Height: 30,
		Setup:  DefaultSetup(),
		Steps:  steps,
	}
	executor := NewExecutor(cfg)
	frames, err := executor.Run(scenario)
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	return executor, frames
}

func TestExecutorDefaultConfig(t *testing.T) {
	cfg := DefaultExecutorConfig()

	if cfg.CaptureEveryStep {
		t.Error("CaptureEveryStep should be false by default")
	}
	if cfg.TypeDelay != 50*time.Millisecond {
		t.Errorf("TypeDelay = %v, want 50ms", cfg.TypeDelay)
	}
	if cfg.KeyDelay != 100*time.Millisecond {
		t.Errorf("KeyDelay = %v, want 100ms", cfg.KeyDelay)
	}
}

func TestExecutorRun(t *testing.T) {
	cfg := DefaultExecutorConfig()
	cfg.CaptureEveryStep = true

	executor, frames := runScenario(t, cfg,
		Wait(100*time.Millisecond),
		Key("t"),
		Wait(100*time.Millisecond),
	)

	// Initial frame + wait + key + wait
	if len(frames) != 4 {
		t.Errorf("Expected 4 frames, got %d", len(frames))
	}
	if frames[0].Delay != 500*time.Millisecond {
		t.Errorf("First frame delay = %v, want 500ms", frames[0].Delay)
	}
	if frames[2].StepIndex != 1 || frames[2].Delay != cfg.KeyDelay {
		t.Errorf("key frame = step %d delay %v", frames[2].StepIndex, frames[2].Delay)
	}
	if got := len(executor.Model().Shell().Tabs()); got != 2 {
		t.Errorf("tabs = %d, want 2", got)
	}
}

func TestExecutorRun_SelectiveCapture(t *testing.T) {
	_, frames := runScenario(t, DefaultExecutorConfig(),
		Key("t"),
		Type("abc"),
		Capture(),
	)

	// Keys and typing do not capture unless asked to
	if len(frames) != 2 {
		t.Errorf("Expected 2 frames, got %d", len(frames))
	}
	if frames[1].Delay != 0 {
		t.Errorf("capture delay = %v, want 0", frames[1].Delay)
	}
}

func TestExecutorRun_TypeCapturesPerCharacter(t *testing.T) {
	cfg := DefaultExecutorConfig()
	cfg.CaptureEveryStep = true

	_, frames := runScenario(t, cfg, Type("abc"))
	if len(frames) != 4 {
		t.Errorf("Expected 4 frames, got %d", len(frames))
	}
	for _, f := range frames[1:] {
		if f.Delay != cfg.TypeDelay {
			t.Errorf("typing frame delay = %v, want %v", f.Delay, cfg.TypeDelay)
		}
	}
}

func TestExecutorRun_Annotation(t *testing.T) {
	_, frames := runScenario(t, DefaultExecutorConfig(),
		Annotate("hello"),
		Capture(),
		Capture(),
	)

	if len(frames) != 3 {
		t.Fatalf("Expected 3 frames, got %d", len(frames))
	}
	if frames[1].Annotation != "hello" {
		t.Errorf("annotated frame = %q, want hello", frames[1].Annotation)
	}
	if frames[2].Annotation != "" {
		t.Errorf("annotation should apply to one frame, got %q", frames[2].Annotation)
	}
}

func TestExecutorRun_Visit(t *testing.T) {
	executor, _ := runScenario(t, DefaultExecutorConfig(), Visit("https://go.dev/doc")...)

	m := executor.Model()
	tab := m.Shell().ActiveTab()
	if tab.URL != "https://go.dev/doc" {
		t.Errorf("URL = %q, want https://go.dev/doc", tab.URL)
	}
	if tab.Title != "go.dev" {
		t.Errorf("Title = %q, want go.dev", tab.Title)
	}
	if m.Focus() != app.FocusPage {
		t.Errorf("focus = %v, want page", m.Focus())
	}
	if h := m.Shell().History(); len(h) == 0 || h[0].URL != "https://go.dev/doc" {
		t.Errorf("history should start with the visit: %+v", h)
	}
}

func TestExecutorRun_Flash(t *testing.T) {
	_, frames := runScenario(t, DefaultExecutorConfig(), Flash("Demo flash", ui.FlashInfo))

	last := ansi.Strip(frames[len(frames)-1].Content)
	if !strings.Contains(last, "Demo flash") {
		t.Errorf("flash missing from frame:\n%s", last)
	}
}

func TestExecutorRun_Errors(t *testing.T) {
	resetTheme(t)

	tests := []struct {
		name     string
		scenario *Scenario
	}{
		{"invalid scenario", &Scenario{}},
		{"unknown step", &Scenario{Name: "test", Steps: []Step{{Type: StepType(99)}}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewExecutor(DefaultExecutorConfig()).Run(tt.scenario); err == nil {
				t.Error("Run() should fail")
			}
		})
	}
}

func TestExecutorRun_Deterministic(t *testing.T) {
	steps := Sequence(Visit("https://github.com"), []Step{Key("b"), Wait(time.Second)})

	_, first := runScenario(t, DefaultExecutorConfig(), steps...)
	executor, second := runScenario(t, DefaultExecutorConfig(), steps...)

	if len(first) != len(second) {
		t.Fatalf("frame counts differ: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].Content != second[i].Content {
			t.Errorf("frame %d differs between runs", i)
		}
	}

	if id := executor.Model().Shell().Tabs()[0].ID; id != "demo-1" {
		t.Errorf("first tab id = %q, want demo-1", id)
	}
}

func TestExecutorSetup_Options(t *testing.T) {
	resetTheme(t)

	scenario := &Scenario{
		Name: "options",
		Setup: &ScenarioSetup{
			HomeURL: "https://news.ycombinator.com",
			Theme:   browser.ThemeDark,
			Accent:  "#7C3AED",
		},
	}
	executor := NewExecutor(DefaultExecutorConfig())
	if _, err := executor.Run(scenario); err != nil {
		t.Fatalf("Run() error = %v", err)
	}

	shell := executor.Model().Shell()
	if tab := shell.ActiveTab(); tab.Title != browser.HomeTabTitle || tab.URL != "https://news.ycombinator.com" {
		t.Errorf("home tab = %+v", tab)
	}
	if prefs := shell.Prefs(); prefs.Theme != browser.ThemeDark || prefs.Accent != "#7C3AED" {
		t.Errorf("prefs = %+v", prefs)
	}
	if len(shell.Bookmarks()) != 0 {
		t.Error("no sample data was requested")
	}
	if ui.CurrentThemeName() != ui.ThemeDark {
		t.Errorf("ui theme = %q, want dark", ui.CurrentThemeName())
	}
}

func TestKeyPress(t *testing.T) {
	tests := []string{"enter", "tab", "esc", "backspace", "up", "down", "ctrl+l", "ctrl+u", "ctrl+w", "a", "?", "T"}
	for _, key := range tests {
		if got := keyPress(key).String(); got != key {
			t.Errorf("keyPress(%q).String() = %q", key, got)
		}
	}
}

func TestGenerateASCIICast(t *testing.T) {
	frames := []Frame{
		{Content: "first\nline", Delay: 500 * time.Millisecond},
		{Content: "second", Delay: time.Second, Annotation: "note"},
	}

	var buf bytes.Buffer
	if err := GenerateASCIICastWithTitle(&buf, frames, 80, 24, "demo"); err != nil {
		t.Fatalf("GenerateASCIICast() error = %v", err)
	}

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	// header + two output events + one marker
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), buf.String())
	}

	var header castHeader
	if err := json.Unmarshal([]byte(lines[0]), &header); err != nil {
		t.Fatalf("header: %v", err)
	}
	if header.Version != 2 || header.Width != 80 || header.Height != 24 || header.Title != "demo" {
		t.Errorf("header = %+v", header)
	}

	var event []any
	if err := json.Unmarshal([]byte(lines[1]), &event); err != nil {
		t.Fatalf("event: %v", err)
	}
	if event[0].(float64) != 0.5 || event[1] != "o" {
		t.Errorf("first event = %v", event)
	}
	if data := event[2].(string); !strings.Contains(data, "first\r\nline") || !strings.HasPrefix(data, clearScreen) {
		t.Errorf("frame data = %q", data)
	}

	if err := json.Unmarshal([]byte(lines[2]), &event); err != nil {
		t.Fatalf("event: %v", err)
	}
	if event[0].(float64) != 1.5 {
		t.Errorf("second event time = %v, want 1.5", event[0])
	}

	if err := json.Unmarshal([]byte(lines[3]), &event); err != nil {
		t.Fatalf("marker: %v", err)
	}
	if event[1] != "m" || event[2] != "note" {
		t.Errorf("marker = %v", event)
	}
}
