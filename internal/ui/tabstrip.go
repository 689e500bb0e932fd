package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/zhubert/veneer/internal/browser"
)

// TabStrip renders the row of open tabs.
type TabStrip struct {
	width    int
	tabs     []browser.Tab
	activeID string
}

// NewTabStrip creates an empty tab strip
func NewTabStrip() *TabStrip {
	return &TabStrip{}
}

// SetWidth sets the strip width
func (s *TabStrip) SetWidth(width int) {
	s.width = width
}

// SetTabs replaces the displayed tabs and the active tab id
func (s *TabStrip) SetTabs(tabs []browser.Tab, activeID string) {
	s.tabs = tabs
	s.activeID = activeID
}

// tabLabel returns the unstyled label for the tab at index i. Only the first
// nine tabs get a number since those are the ones reachable by a digit key.
func tabLabel(i int, tab browser.Tab) string {
	title := tab.Title
	if title == "" {
		title = browser.DefaultTabTitle
	}
	title = runewidth.Truncate(title, TabMaxWidth, "…")
	if tab.Favicon != "" {
		title = tab.Favicon + " " + title
	}
	if i < 9 {
		return fmt.Sprintf("%d %s ×", i+1, title)
	}
	return title + " ×"
}

// View renders the strip, scrolling so the active tab is always visible.
func (s *TabStrip) View() string {
	if s.width <= 0 {
		return ""
	}

	rendered := make([]string, len(s.tabs))
	activeIdx := 0
	for i, tab := range s.tabs {
		style := TabStyle
		if tab.ID == s.activeID {
			style = TabActiveStyle
			activeIdx = i
		}
		rendered[i] = style.Render(tabLabel(i, tab))
	}
	newTab := TabNewStyle.Render("+")
	sep := lipgloss.NewStyle().Foreground(ColorBorder).Render("│")

	widthFrom := func(start int) int {
		w := lipgloss.Width(newTab)
		for _, r := range rendered[start:] {
			w += lipgloss.Width(r) + lipgloss.Width(sep)
		}
		return w
	}

	// Drop tabs off the left edge until the active one fits
	start := 0
	for start < activeIdx && widthFrom(start) > s.width {
		start++
	}

	var b strings.Builder
	if start > 0 {
		b.WriteString(TabStyle.Render("‹"))
	}
	for _, r := range rendered[start:] {
		b.WriteString(r)
		b.WriteString(sep)
	}
	b.WriteString(newTab)

	line := ansi.Truncate(b.String(), s.width, "›")
	return lipgloss.NewStyle().Width(s.width).Render(line)
}
