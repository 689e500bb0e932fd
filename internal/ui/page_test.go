package ui

import (
	"strings"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/veneer/internal/browser"
)

func TestPage_View(t *testing.T) {
	p := NewPage()
	p.SetSize(80, 20)
	p.SetTab(browser.Tab{ID: "a", Title: "github.com", URL: "https://github.com/foo"})

	view := p.View()
	plain := ansi.Strip(view)
	for _, want := range []string{"github.com", "https://github.com/foo", "placeholder"} {
		if !strings.Contains(plain, want) {
			t.Errorf("missing %q in:\n%s", want, plain)
		}
	}
	if got := lipgloss.Height(view); got != 20 {
		t.Errorf("height = %d, want 20", got)
	}
}

func TestPage_EmptyTitleFallsBack(t *testing.T) {
	p := NewPage()
	p.SetSize(80, 20)
	p.SetTab(browser.Tab{URL: "https://example.com"})

	if plain := ansi.Strip(p.View()); !strings.Contains(plain, browser.DefaultTabTitle) {
		t.Errorf("expected %q fallback in:\n%s", browser.DefaultTabTitle, plain)
	}
}

func TestPage_ZeroSize(t *testing.T) {
	if got := NewPage().View(); got != "" {
		t.Errorf("View() with no size = %q", got)
	}
}

func TestPageSource(t *testing.T) {
	src := PageSource(browser.Tab{Title: "github.com", URL: "https://github.com/foo"})

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>github.com</title>",
		`<a href="https://github.com/foo">`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("missing %q in:\n%s", want, src)
		}
	}
}

func TestPageSource_EscapesValues(t *testing.T) {
	src := PageSource(browser.Tab{Title: "<script>", URL: `https://x.test/?a="b"&c`})

	if strings.Contains(src, "<script>") {
		t.Error("title should be escaped")
	}
	if !strings.Contains(src, "&lt;script&gt;") {
		t.Errorf("escaped title missing:\n%s", src)
	}
	if !strings.Contains(src, "&amp;c") {
		t.Errorf("escaped url missing:\n%s", src)
	}
}
