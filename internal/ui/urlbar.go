package ui

import (
	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// URLBar is the address bar: back/forward arrows and an editable url.
type URLBar struct {
	input      textinput.Model
	width      int
	canBack    bool
	canForward bool
}

// NewURLBar creates an unfocused address bar
func NewURLBar() *URLBar {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Search or enter address"
	ti.CharLimit = URLCharLimit
	return &URLBar{input: ti}
}

// SetWidth sets the total width including arrows and border
func (u *URLBar) SetWidth(width int) {
	u.width = width
	u.input.SetWidth(max(width-u.chromeWidth(), 1))
}

// chromeWidth is everything on the line that isn't the input itself:
// the arrows, the gap, the border and the padding.
func (u *URLBar) chromeWidth() int {
	return lipgloss.Width(u.arrows()) + 1 + BorderSize + 2
}

// SetNav sets whether the back and forward arrows are enabled
func (u *URLBar) SetNav(canBack, canForward bool) {
	u.canBack = canBack
	u.canForward = canForward
}

// SetValue replaces the text and moves the cursor to the end
func (u *URLBar) SetValue(url string) {
	u.input.SetValue(url)
	u.input.CursorEnd()
}

// Value returns the current text
func (u *URLBar) Value() string {
	return u.input.Value()
}

// Focus gives the address bar keyboard focus
func (u *URLBar) Focus() tea.Cmd {
	return u.input.Focus()
}

// Blur removes keyboard focus
func (u *URLBar) Blur() {
	u.input.Blur()
}

// Focused reports whether the address bar has focus
func (u *URLBar) Focused() bool {
	return u.input.Focused()
}

// Update forwards a message to the text input
func (u *URLBar) Update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	u.input, cmd = u.input.Update(msg)
	return cmd
}

func (u *URLBar) arrows() string {
	back, forward := NavArrowDisabledStyle.Render("←"), NavArrowDisabledStyle.Render("→")
	if u.canBack {
		back = NavArrowStyle.Render("←")
	}
	if u.canForward {
		forward = NavArrowStyle.Render("→")
	}
	return " " + back + " " + forward
}

// View renders the bar; it is URLBarHeight lines tall.
func (u *URLBar) View() string {
	style := URLBarStyle
	if u.input.Focused() {
		style = URLBarFocusedStyle
	}

	arrows := u.arrows()
	boxWidth := max(u.width-lipgloss.Width(arrows)-1, 4)
	box := style.Width(boxWidth).Render(u.input.View())

	// Center the arrows on the input line
	arrowCol := lipgloss.NewStyle().PaddingTop(1).Render(arrows)
	return lipgloss.JoinHorizontal(lipgloss.Top, arrowCol, " ", box)
}
