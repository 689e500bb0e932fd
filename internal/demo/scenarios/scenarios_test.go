package scenarios

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/veneer/internal/browser"
	"github.com/zhubert/veneer/internal/demo"
)

func TestAll(t *testing.T) {
	scenarios := All()

	if len(scenarios) != 2 {
		t.Errorf("All() should return 2 scenarios, got %d", len(scenarios))
	}

	seen := make(map[string]bool)
	for _, s := range scenarios {
		if err := s.Validate(); err != nil {
			t.Errorf("Scenario %q validation failed: %v", s.Name, err)
		}
		if seen[s.Name] {
			t.Errorf("duplicate scenario name %q", s.Name)
		}
		seen[s.Name] = true
		if s.Description == "" {
			t.Errorf("Scenario %q has no description", s.Name)
		}
	}
}

func TestGet(t *testing.T) {
	tests := []struct {
		name      string
		wantFound bool
	}{
		{"basic", true},
		{"comprehensive", true},
		{"nonexistent", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			scenario := Get(tt.name)
			found := scenario != nil

			if found != tt.wantFound {
				t.Errorf("Get(%q) found = %v, want %v", tt.name, found, tt.wantFound)
			}
		})
	}
}

func run(t *testing.T, s *demo.Scenario) (*demo.Executor, []demo.Frame) {
	t.Helper()
	executor := demo.NewExecutor(demo.DefaultExecutorConfig())
	frames, err := executor.Run(s)
	if err != nil {
		t.Fatalf("Run(%s) error = %v", s.Name, err)
	}
	if len(frames) < 5 {
		t.Errorf("%s captured only %d frames", s.Name, len(frames))
	}
	return executor, frames
}

func TestBasicScenario(t *testing.T) {
	executor, frames := run(t, Basic)
	shell := executor.Model().Shell()

	if got := len(shell.Tabs()); got != 2 {
		t.Errorf("tabs = %d, want 2", got)
	}
	if got := shell.ActiveTab().URL; got != "https://github.com/zhubert" {
		t.Errorf("active url = %q", got)
	}

	// Three sample bookmarks plus the one added during the tour
	bookmarks := shell.Bookmarks()
	if len(bookmarks) != 4 {
		t.Fatalf("bookmarks = %d, want 4", len(bookmarks))
	}
	if last := bookmarks[len(bookmarks)-1]; last.Title != "github.com" {
		t.Errorf("new bookmark title = %q, want github.com", last.Title)
	}

	if shell.Prefs().Theme != browser.ThemeDark {
		t.Errorf("theme = %q, want dark", shell.Prefs().Theme)
	}

	annotated := 0
	for _, f := range frames {
		if f.Annotation != "" {
			annotated++
		}
	}
	if annotated != 4 {
		t.Errorf("annotated frames = %d, want 4", annotated)
	}
}

func TestComprehensiveScenario(t *testing.T) {
	executor, frames := run(t, Comprehensive)
	shell := executor.Model().Shell()

	if got := len(shell.Tabs()); got != 1 {
		t.Errorf("tabs = %d, want 1", got)
	}
	if tab := shell.ActiveTab(); tab.URL == "" || tab.Title == browser.DefaultTabTitle {
		t.Errorf("active tab = %+v", tab)
	}
	if len(shell.History()) != 0 {
		t.Errorf("history should be cleared, has %d entries", len(shell.History()))
	}
	if shell.Prefs().Accent != "#7C3AED" {
		t.Errorf("accent = %q", shell.Prefs().Accent)
	}
	if shell.SettingsOpen() {
		t.Error("settings should be closed at the end")
	}

	last := ansi.Strip(frames[len(frames)-1].Content)
	if !strings.Contains(last, "That's veneer") {
		t.Error("closing flash missing from the last frame")
	}
}

func TestScenariosUseOnlyKnownSteps(t *testing.T) {
	for _, s := range All() {
		for i, step := range s.Steps {
			switch step.Type {
			case demo.StepWait, demo.StepKey, demo.StepTypeText, demo.StepCapture, demo.StepAnnotate, demo.StepFlash:
			default:
				t.Errorf("%s step %d has unknown type %d", s.Name, i, step.Type)
			}
		}
	}
}
