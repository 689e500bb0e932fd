package modals

import (
	"fmt"
	"os"
	"strings"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
)

// LogViewerState shows the debug log in a scrollable viewport.
type LogViewerState struct {
	Path       string
	FollowTail bool

	viewport viewport.Model
}

func (*LogViewerState) modalState() {}

func (s *LogViewerState) PreferredWidth() int { return ModalWidthWide }

func (s *LogViewerState) Title() string { return "Debug Log" }

func (s *LogViewerState) Help() string {
	return "up/down: scroll  f: follow  r: refresh  Esc: close"
}

func (s *LogViewerState) Render() string {
	title := ModalTitleStyle.Render(s.Title())

	pathStyle := lipgloss.NewStyle().Foreground(ColorTextMuted)
	follow := pathStyle.Render("[f: follow]")
	if s.FollowTail {
		follow = lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true).Render("[Follow]")
	}
	bar := pathStyle.Render(TruncateString(s.Path, ModalWidthWide-20)) + " " + follow

	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, bar, s.viewport.View(), help)
}

func (s *LogViewerState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "f":
			s.FollowTail = !s.FollowTail
			if s.FollowTail {
				s.viewport.GotoBottom()
			}
			return s, nil
		case "r":
			s.Reload()
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

// SetSize implements ModalWithSize.
func (s *LogViewerState) SetSize(width, height int) {
	const overhead = 5
	s.viewport.SetWidth(max(width-6, 10))
	s.viewport.SetHeight(max(min(height-overhead, SourceModalHeight), 3))
}

// Reload re-reads the log file.
func (s *LogViewerState) Reload() {
	content, err := os.ReadFile(s.Path)
	if err != nil {
		s.viewport.SetContent(fmt.Sprintf("Error reading log file: %v", err))
		return
	}
	if len(content) == 0 {
		s.viewport.SetContent("Log is empty")
		return
	}

	s.viewport.SetContent(highlightLogContent(string(content)))
	if s.FollowTail {
		s.viewport.GotoBottom()
	} else {
		s.viewport.GotoTop()
	}
}

// NewLogViewerState opens the log at path, scrolled to the end.
func NewLogViewerState(path string) *LogViewerState {
	vp := viewport.New()
	vp.SetWidth(ModalWidthWide - 6)
	vp.SetHeight(SourceModalHeight)
	vp.SoftWrap = true

	s := &LogViewerState{
		Path:       path,
		FollowTail: true,
		viewport:   vp,
	}
	s.Reload()
	return s
}

func highlightLogContent(content string) string {
	var sb strings.Builder
	for line := range strings.SplitSeq(strings.TrimRight(content, "\n"), "\n") {
		sb.WriteString(highlightLogLine(line))
		sb.WriteString("\n")
	}
	return sb.String()
}

// highlightLogLine colors the level=... attribute of a slog text line.
func highlightLogLine(line string) string {
	levels := []struct {
		token string
		style lipgloss.Style
	}{
		{"level=ERROR", StatusErrorStyle},
		{"level=WARN", lipgloss.NewStyle().Foreground(ColorWarning).Bold(true)},
		{"level=INFO", lipgloss.NewStyle().Foreground(ColorSecondary)},
		{"level=DEBUG", lipgloss.NewStyle().Foreground(ColorTextMuted)},
	}

	for _, l := range levels {
		if strings.Contains(line, l.token) {
			return strings.Replace(line, l.token, l.style.Render(l.token), 1)
		}
	}
	return line
}
