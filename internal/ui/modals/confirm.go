package modals

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// ConfirmClearHistoryState asks before dropping every history entry.
type ConfirmClearHistoryState struct {
	Count     int
	confirmed bool
	form      *huh.Form
}

func (*ConfirmClearHistoryState) modalState() {}

func (s *ConfirmClearHistoryState) Title() string { return "Clear History?" }

func (s *ConfirmClearHistoryState) Help() string {
	return "left/right to choose, Enter to confirm, Esc to cancel"
}

func (s *ConfirmClearHistoryState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	message := lipgloss.NewStyle().
		Foreground(ColorText).
		MarginBottom(1).
		Render(fmt.Sprintf("This removes %d history %s. Bookmarks are kept.", s.Count, plural(s.Count, "entry", "entries")))
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, message, s.form.View(), help)
}

func (s *ConfirmClearHistoryState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// Confirmed reports whether the affirmative button is selected.
func (s *ConfirmClearHistoryState) Confirmed() bool {
	return s.confirmed
}

// NewConfirmClearHistoryState creates the dialog with "Cancel" preselected.
func NewConfirmClearHistoryState(count int) *ConfirmClearHistoryState {
	s := &ConfirmClearHistoryState{Count: count}
	s.form = huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Affirmative("Clear").
				Negative("Cancel").
				Value(&s.confirmed),
		),
	).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 10)

	initHuhForm(s.form)
	return s
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
