package modals

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	huh "charm.land/huh/v2"
	"charm.land/lipgloss/v2"
)

// BookmarkFolderState edits the folder label of one bookmark.
type BookmarkFolderState struct {
	BookmarkID string
	Bookmark   string // title shown above the field
	folder     string
	form       *huh.Form
}

func (*BookmarkFolderState) modalState() {}

func (s *BookmarkFolderState) Title() string { return "Bookmark Folder" }

func (s *BookmarkFolderState) Help() string {
	return "Enter: save  Esc: cancel  (empty removes the folder)"
}

func (s *BookmarkFolderState) Render() string {
	title := ModalTitleStyle.Render(s.Title())
	name := lipgloss.NewStyle().
		Foreground(ColorSecondary).
		Bold(true).
		MarginBottom(1).
		Render(TruncateString(s.Bookmark, ModalWidth-8))
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, name, s.form.View(), help)
}

func (s *BookmarkFolderState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.form, cmd = huhFormUpdate(s.form, msg)
	return s, cmd
}

// GetFolder returns the folder label, trimmed.
func (s *BookmarkFolderState) GetFolder() string {
	return strings.TrimSpace(s.folder)
}

// NewBookmarkFolderState creates the dialog, suggesting existing folders.
func NewBookmarkFolderState(id, title, current string, folders []string) *BookmarkFolderState {
	s := &BookmarkFolderState{
		BookmarkID: id,
		Bookmark:   title,
		folder:     current,
	}

	input := huh.NewInput().
		Title("Folder").
		Placeholder("e.g. Dev").
		CharLimit(ModalInputCharLimit).
		Value(&s.folder)
	if len(folders) > 0 {
		input = input.Description("Existing: " + strings.Join(folders, ", "))
	}

	s.form = huh.NewForm(huh.NewGroup(input)).
		WithTheme(ModalTheme()).
		WithShowHelp(false).
		WithWidth(ModalWidth - 10)

	initHuhForm(s.form)
	return s
}
