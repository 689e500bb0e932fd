package ui

import (
	"fmt"
	"html"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/veneer/internal/browser"
)

// Page renders the placeholder content area for the active tab. Nothing is
// fetched; the card only echoes the tab's title and url.
type Page struct {
	width  int
	height int
	tab    browser.Tab
}

// NewPage creates an empty page view
func NewPage() *Page {
	return &Page{}
}

// SetSize sets the page area dimensions
func (p *Page) SetSize(width, height int) {
	p.width = width
	p.height = height
}

// SetTab sets the tab whose placeholder is shown
func (p *Page) SetTab(tab browser.Tab) {
	p.tab = tab
}

// View renders the placeholder card centered in the page area
func (p *Page) View() string {
	if p.width <= 0 || p.height <= 0 {
		return ""
	}

	cardWidth := min(max(p.width-8, 20), 72)
	textWidth := cardWidth - 10

	title := p.tab.Title
	if title == "" {
		title = browser.DefaultTabTitle
	}

	icon := "🌐"
	if p.tab.Favicon != "" {
		icon = p.tab.Favicon
	}

	card := PageCardStyle.Width(cardWidth).Render(lipgloss.JoinVertical(lipgloss.Center,
		PageTitleStyle.Render(icon),
		"",
		PageTitleStyle.Render(ansi.Truncate(title, textWidth, "…")),
		PageURLStyle.Render(ansi.Truncate(p.tab.URL, textWidth, "…")),
		"",
		PageTextStyle.Width(textWidth).Render("This is a placeholder. Page content is not loaded."),
	))

	return lipgloss.Place(p.width, p.height, lipgloss.Center, lipgloss.Center, card)
}

// PageSource returns the HTML document shown by view-source for a tab.
func PageSource(tab browser.Tab) string {
	title := html.EscapeString(tab.Title)
	url := html.EscapeString(tab.URL)
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="utf-8">
  <title>%s</title>
</head>
<body>
  <main class="placeholder">
    <h1>%s</h1>
    <p><a href="%s">%s</a></p>
  </main>
</body>
</html>
`, title, title, url, url)
}
