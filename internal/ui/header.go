package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// appTitle is the left-hand label; the first len(appTitle) cells are bold.
const appTitle = " veneer"

// Header represents the top header bar
type Header struct {
	width     int
	pageTitle string
	themeName ThemeName
}

// NewHeader creates a new header
func NewHeader() *Header {
	return &Header{themeName: DefaultTheme}
}

// SetWidth sets the header width
func (h *Header) SetWidth(width int) {
	h.width = width
}

// SetPageTitle sets the active tab title shown on the right
func (h *Header) SetPageTitle(title string) {
	h.pageTitle = title
}

// SetThemeName sets which theme icon to show
func (h *Header) SetThemeName(name ThemeName) {
	h.themeName = name
}

// View renders the header
func (h *Header) View() string {
	icon := "☀"
	if h.themeName == ThemeDark {
		icon = "☾"
	}
	rightText := icon + " "

	if h.pageTitle != "" {
		room := h.width - runewidth.StringWidth(appTitle) - runewidth.StringWidth(rightText) - 4
		if room > 0 {
			rightText = runewidth.Truncate(h.pageTitle, room, "…") + "  " + rightText
		}
	}

	paddingLen := max(h.width-runewidth.StringWidth(appTitle)-runewidth.StringWidth(rightText), 0)
	fullContent := appTitle + strings.Repeat(" ", paddingLen) + rightText

	return h.renderGradient(fullContent)
}

// parseHexColor parses a hex color string (e.g., "#2563EB") into RGB components
func parseHexColor(hex string) (r, g, b int) {
	if len(hex) == 7 && hex[0] == '#' {
		fmt.Sscanf(hex[1:], "%02x%02x%02x", &r, &g, &b)
	}
	return
}

// renderGradient renders content over a background that fades from the
// primary color to the theme background. It walks grapheme clusters so
// emoji in page titles keep their width.
func (h *Header) renderGradient(content string) string {
	if content == "" {
		return ""
	}

	theme := CurrentTheme()
	startR, startG, startB := parseHexColor(theme.Primary)
	endR, endG, endB := parseHexColor(theme.Bg)

	textColor := lipgloss.Color(theme.TextInverse)
	fadedColor := lipgloss.Color(theme.Text)

	total := uniseg.GraphemeClusterCount(content)
	titleClusters := uniseg.GraphemeClusterCount(appTitle)

	var result strings.Builder
	gr := uniseg.NewGraphemes(content)
	for i := 0; gr.Next(); i++ {
		t := float64(i) / float64(total)

		cr := int(float64(startR)*(1-t) + float64(endR)*t)
		cg := int(float64(startG)*(1-t) + float64(endG)*t)
		cb := int(float64(startB)*(1-t) + float64(endB)*t)

		style := lipgloss.NewStyle().
			Background(lipgloss.Color(fmt.Sprintf("#%02X%02X%02X", cr, cg, cb))).
			Bold(i < titleClusters)

		// Past the midpoint the background is closer to Bg than Primary
		if t < 0.5 {
			style = style.Foreground(textColor)
		} else {
			style = style.Foreground(fadedColor)
		}

		result.WriteString(style.Render(gr.Str()))
	}

	return result.String()
}
