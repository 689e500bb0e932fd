package modals

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/x/ansi"
)

const testSource = `<!DOCTYPE html>
<html>
  <head><title>github.com</title></head>
  <body><h1>github.com</h1></body>
</html>`

func TestHighlightSource_KeepsText(t *testing.T) {
	out := HighlightSource(testSource, "html")
	if plain := strings.TrimRight(ansi.Strip(out), "\n"); plain != testSource {
		t.Errorf("stripped highlight differs from input:\n%q\n%q", plain, testSource)
	}
}

func TestHighlightSource_UnknownLanguageFallsBack(t *testing.T) {
	out := HighlightSource("plain text", "no-such-language")
	if !strings.Contains(ansi.Strip(out), "plain text") {
		t.Errorf("fallback lost text: %q", out)
	}
}

func TestViewSourceState(t *testing.T) {
	s := NewViewSourceState("https://github.com", testSource)
	s.SetSize(100, 30)

	if s.Title() != "view-source:https://github.com" {
		t.Errorf("title = %q", s.Title())
	}
	out := ansi.Strip(s.Render())
	if !strings.Contains(out, "<title>github.com</title>") {
		t.Errorf("render missing source: %q", out)
	}

	// scrolling should not panic or change the source
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.Source != testSource {
		t.Error("source changed after scroll")
	}
}
