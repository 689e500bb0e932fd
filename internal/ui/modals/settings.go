package modals

import (
	"slices"
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// AccentPresets are offered as examples in the accent field description.
var AccentPresets = []string{"#2563EB", "#7C3AED", "#10B981", "#F59E0B", "#E11D48"}

const (
	optionNotifications = "notifications"
	optionSaveDefaults  = "save-defaults"
)

// SettingsState is the browser settings dialog: theme, accent color and
// general options.
type SettingsState struct {
	selectedTheme  string
	OriginalTheme  string
	accent         string
	OriginalAccent string

	NotificationsEnabled bool
	SaveDefaults         bool // write theme/accent/notifications to the config file

	generalOptions []string

	form *huh.Form

	availableWidth int
}

func (*SettingsState) modalState() {}

func (s *SettingsState) PreferredWidth() int { return ModalWidthWide }

// SetSize updates the available width for rendering content.
func (s *SettingsState) SetSize(width, height int) {
	s.availableWidth = width
	s.form.WithWidth(s.contentWidth())
}

func (s *SettingsState) contentWidth() int {
	if s.availableWidth > 0 {
		return s.availableWidth - 10
	}
	return ModalWidthWide - 10
}

func (s *SettingsState) Title() string { return "Browser Settings" }

func (s *SettingsState) Help() string {
	return "Tab: next field  Enter: apply  Esc: cancel"
}

func (s *SettingsState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	desc := lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		MarginBottom(1).
		Render("Personalize the interface to your liking")
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, desc, s.form.View(), help)
}

func (s *SettingsState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	s.syncFromMultiSelect()
	return s, cmd
}

func (s *SettingsState) syncFromMultiSelect() {
	s.NotificationsEnabled = slices.Contains(s.generalOptions, optionNotifications)
	s.SaveDefaults = slices.Contains(s.generalOptions, optionSaveDefaults)
}

// GetSelectedTheme returns "light" or "dark".
func (s *SettingsState) GetSelectedTheme() string {
	return s.selectedTheme
}

// ThemeChanged returns true if the selected theme differs from the original.
func (s *SettingsState) ThemeChanged() bool {
	return s.selectedTheme != s.OriginalTheme
}

// GetAccent returns the accent text as typed, trimmed.
func (s *SettingsState) GetAccent() string {
	return strings.TrimSpace(s.accent)
}

// AccentChanged reports whether the accent field was edited.
func (s *SettingsState) AccentChanged() bool {
	return !strings.EqualFold(s.GetAccent(), s.OriginalAccent)
}

// GetNotificationsEnabled returns whether notifications are enabled
func (s *SettingsState) GetNotificationsEnabled() bool {
	return s.NotificationsEnabled
}

// NewSettingsState creates a SettingsState seeded with the current values.
func NewSettingsState(currentTheme, currentAccent string, notificationsEnabled bool) *SettingsState {
	s := &SettingsState{
		selectedTheme:        currentTheme,
		OriginalTheme:        currentTheme,
		accent:               currentAccent,
		OriginalAccent:       currentAccent,
		NotificationsEnabled: notificationsEnabled,
		availableWidth:       ModalWidthWide,
	}

	generalOpts := []huh.Option[string]{
		huh.NewOption("Desktop notifications", optionNotifications).
			Selected(notificationsEnabled),
		huh.NewOption("Use as startup defaults", optionSaveDefaults),
	}
	if notificationsEnabled {
		s.generalOptions = append(s.generalOptions, optionNotifications)
	}

	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(
					huh.NewOption("☀ Light", "light"),
					huh.NewOption("☾ Dark", "dark"),
				).
				Value(&s.selectedTheme),
			huh.NewInput().
				Title("Accent color").
				Description("Hex color, e.g. "+strings.Join(AccentPresets, " ")).
				Placeholder("#2563EB").
				CharLimit(7).
				Value(&s.accent),
			huh.NewMultiSelect[string]().
				Title("Options").
				Options(generalOpts...).
				Height(len(generalOpts)).
				Value(&s.generalOptions),
		),
	).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(s.contentWidth()).
		WithLayout(huh.LayoutStack)

	initHuhForm(s.form)
	return s
}
