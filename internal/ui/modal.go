package ui

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	uv "github.com/charmbracelet/ultraviolet"

	"github.com/zhubert/veneer/internal/ui/modals"
)

// Modal represents a popup dialog with type-safe state management.
// The State field is nil when no modal is visible.
type Modal struct {
	State modals.ModalState
	error string

	screenWidth  int
	screenHeight int
}

// NewModal creates a new modal
func NewModal() *Modal {
	return &Modal{}
}

// Show displays a modal with the given state
func (m *Modal) Show(state modals.ModalState) {
	m.State = state
	m.error = ""
	m.applySize()
}

// Hide hides the modal
func (m *Modal) Hide() {
	m.State = nil
	m.error = ""
}

// IsVisible returns whether the modal is visible
func (m *Modal) IsVisible() bool {
	return m.State != nil
}

// SetError sets an error message
func (m *Modal) SetError(err string) {
	m.error = err
}

// GetError returns the current error message
func (m *Modal) GetError() string {
	return m.error
}

// SetScreenSize records the terminal size so sized modals can fit it
func (m *Modal) SetScreenSize(width, height int) {
	m.screenWidth = width
	m.screenHeight = height
	m.applySize()
}

func (m *Modal) applySize() {
	sized, ok := m.State.(modals.ModalWithSize)
	if !ok || m.screenWidth == 0 {
		return
	}
	// Modal border and padding take 6 columns and 4 rows
	width := min(m.width(), m.screenWidth-4) - 6
	sized.SetSize(width, m.screenHeight-8)
}

func (m *Modal) width() int {
	if pw, ok := m.State.(modals.ModalWithPreferredWidth); ok {
		return pw.PreferredWidth()
	}
	return ModalWidth
}

// Update handles messages by delegating to the current state
func (m *Modal) Update(msg tea.Msg) (*Modal, tea.Cmd) {
	if m.State == nil {
		return m, nil
	}
	var cmd tea.Cmd
	m.State, cmd = m.State.Update(msg)
	return m, cmd
}

// render returns the bordered modal box
func (m *Modal) render() string {
	content := m.State.Render()
	if m.error != "" {
		content += "\n" + StatusErrorStyle.Render(m.error)
	}

	width := m.width()
	if m.screenWidth > 0 {
		width = min(width, m.screenWidth-4)
	}
	return ModalStyle.Width(width).Render(content)
}

// View renders the modal centered on an otherwise empty screen
func (m *Modal) View(screenWidth, screenHeight int) string {
	if m.State == nil {
		return ""
	}

	return lipgloss.Place(
		screenWidth, screenHeight,
		lipgloss.Center, lipgloss.Center,
		m.render(),
	)
}

// Overlay draws the modal centered on top of base, leaving the rest of
// base visible around it.
func (m *Modal) Overlay(base string, screenWidth, screenHeight int) string {
	if m.State == nil || screenWidth <= 0 || screenHeight <= 0 {
		return base
	}

	box := m.render()
	boxWidth, boxHeight := lipgloss.Width(box), lipgloss.Height(box)
	x := max((screenWidth-boxWidth)/2, 0)
	y := max((screenHeight-boxHeight)/2, 0)

	area := uv.Rect(0, 0, screenWidth, screenHeight)
	scr := uv.NewScreenBuffer(area.Dx(), area.Dy())
	uv.NewStyledString(base).Draw(scr, area)
	uv.NewStyledString(box).Draw(scr, uv.Rect(x, y, boxWidth, boxHeight))

	return scr.Render()
}
