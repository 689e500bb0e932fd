package ui

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"
)

// KeyBinding represents a keyboard shortcut
type KeyBinding struct {
	Key  string
	Desc string
}

// FlashType controls the icon and color of a flash message
type FlashType int

const (
	FlashError FlashType = iota
	FlashWarning
	FlashInfo
	FlashSuccess
)

// DefaultFlashDuration is how long a flash stays up unless told otherwise
const DefaultFlashDuration = 3 * time.Second

// FlashMessage is a transient status line that replaces the key bindings
type FlashMessage struct {
	Text      string
	Type      FlashType
	CreatedAt time.Time
	Duration  time.Duration
}

// IsExpired returns whether the message has outlived its duration
func (f *FlashMessage) IsExpired() bool {
	return time.Since(f.CreatedAt) > f.Duration
}

// FlashTickMsg is sent periodically while a flash is visible
type FlashTickMsg time.Time

// FlashTick returns a command that sends a FlashTickMsg after a second
func FlashTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return FlashTickMsg(t)
	})
}

// FooterMode selects which bindings are shown
type FooterMode int

const (
	FooterBrowse FooterMode = iota
	FooterURLEdit
	FooterSearch
	FooterPanel
)

// Footer represents the bottom footer bar with keybindings
type Footer struct {
	width        int
	mode         FooterMode
	bindings     []KeyBinding
	flashMessage *FlashMessage
}

// NewFooter creates a new footer
func NewFooter() *Footer {
	return &Footer{
		bindings: []KeyBinding{
			{Key: "t", Desc: "new tab"},
			{Key: "w", Desc: "close"},
			{Key: "l", Desc: "address"},
			{Key: "b", Desc: "bookmark"},
			{Key: "/", Desc: "search"},
			{Key: "tab", Desc: "panel"},
			{Key: "T", Desc: "theme"},
			{Key: "?", Desc: "help"},
			{Key: "q", Desc: "quit"},
		},
	}
}

// SetWidth sets the footer width
func (f *Footer) SetWidth(width int) {
	f.width = width
}

// SetMode sets which bindings the footer shows
func (f *Footer) SetMode(mode FooterMode) {
	f.mode = mode
}

// SetBindings allows custom keybindings for browse mode
func (f *Footer) SetBindings(bindings []KeyBinding) {
	f.bindings = bindings
}

// SetFlash shows a message for DefaultFlashDuration
func (f *Footer) SetFlash(text string, flashType FlashType) {
	f.SetFlashWithDuration(text, flashType, DefaultFlashDuration)
}

// SetFlashWithDuration shows a message for the given duration
func (f *Footer) SetFlashWithDuration(text string, flashType FlashType, duration time.Duration) {
	f.flashMessage = &FlashMessage{
		Text:      text,
		Type:      flashType,
		CreatedAt: time.Now(),
		Duration:  duration,
	}
}

// ClearFlash removes the flash message
func (f *Footer) ClearFlash() {
	f.flashMessage = nil
}

// HasFlash reports whether a flash message is set
func (f *Footer) HasFlash() bool {
	return f.flashMessage != nil
}

// ClearIfExpired removes an expired flash and reports whether it did
func (f *Footer) ClearIfExpired() bool {
	if f.flashMessage != nil && f.flashMessage.IsExpired() {
		f.flashMessage = nil
		return true
	}
	return false
}

func (f *Footer) modeBindings() []KeyBinding {
	switch f.mode {
	case FooterURLEdit:
		return []KeyBinding{
			{Key: "enter", Desc: "go"},
			{Key: "esc", Desc: "cancel"},
		}
	case FooterSearch:
		return []KeyBinding{
			{Key: "type", Desc: "filter"},
			{Key: "enter", Desc: "done"},
			{Key: "esc", Desc: "clear"},
		}
	case FooterPanel:
		return []KeyBinding{
			{Key: "↑/↓", Desc: "select"},
			{Key: "enter", Desc: "open"},
			{Key: "d", Desc: "delete"},
			{Key: "tab", Desc: "next panel"},
			{Key: "esc", Desc: "back"},
		}
	}
	return f.bindings
}

func (f *Footer) renderFlash() string {
	var icon string
	var color = ColorText
	switch f.flashMessage.Type {
	case FlashError:
		icon, color = "✕", ColorError
	case FlashWarning:
		icon, color = "⚠", ColorWarning
	case FlashInfo:
		icon, color = "ℹ", ColorInfo
	case FlashSuccess:
		icon, color = "✓", ColorSuccess
	}
	style := lipgloss.NewStyle().Foreground(color).Bold(true)
	return style.Render(icon + " " + f.flashMessage.Text)
}

// View renders the footer
func (f *Footer) View() string {
	if f.flashMessage != nil {
		return FooterStyle.Width(f.width).Render(ansi.Truncate(f.renderFlash(), max(f.width-2, 1), "…"))
	}

	var parts []string
	for _, b := range f.modeBindings() {
		parts = append(parts, FooterKeyStyle.Render(b.Key)+FooterDescStyle.Render(": "+b.Desc))
	}
	content := strings.Join(parts, "  "+lipgloss.NewStyle().Foreground(ColorBorder).Render("|")+"  ")

	return FooterStyle.Width(f.width).Render(ansi.Truncate(content, max(f.width-2, 1), "…"))
}
