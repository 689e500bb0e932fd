package modals

import (
	"bytes"

	"charm.land/bubbles/v2/viewport"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// ViewSourceState shows the placeholder markup for the active tab.
type ViewSourceState struct {
	URL      string
	Source   string
	viewport viewport.Model
}

func (*ViewSourceState) modalState() {}

func (s *ViewSourceState) PreferredWidth() int { return ModalWidthWide }

func (s *ViewSourceState) Title() string { return "view-source:" + s.URL }

func (s *ViewSourceState) Help() string {
	return "up/down/pgup/pgdn: scroll  Esc: close"
}

func (s *ViewSourceState) Render() string {
	title := ModalTitleStyle.Render(TruncateString(s.Title(), ModalWidthWide-8))
	help := ModalHelpStyle.Render(s.Help())
	return lipgloss.JoinVertical(lipgloss.Left, title, s.viewport.View(), help)
}

func (s *ViewSourceState) Update(msg tea.Msg) (ModalState, tea.Cmd) {
	var cmd tea.Cmd
	s.viewport, cmd = s.viewport.Update(msg)
	return s, cmd
}

// SetSize implements ModalWithSize.
func (s *ViewSourceState) SetSize(width, height int) {
	const overhead = 4
	s.viewport.SetWidth(max(width-6, 10))
	s.viewport.SetHeight(max(min(height-overhead, SourceModalHeight), 3))
}

// NewViewSourceState highlights source as HTML and shows it in a scrollable
// viewport.
func NewViewSourceState(url, source string) *ViewSourceState {
	vp := viewport.New()
	vp.SetWidth(ModalWidthWide - 6)
	vp.SetHeight(SourceModalHeight)
	vp.SetContent(HighlightSource(source, "html"))

	return &ViewSourceState{
		URL:      url,
		Source:   source,
		viewport: vp,
	}
}

// HighlightSource applies syntax highlighting using the current CodeStyle.
// On any error the input is returned unchanged.
func HighlightSource(code, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	style := styles.Get(CodeStyle)
	if style == nil {
		style = styles.Fallback
	}

	formatter := formatters.Get("terminal256")
	if formatter == nil {
		formatter = formatters.Fallback
	}

	iterator, err := lexer.Tokenise(nil, code)
	if err != nil {
		return code
	}

	var buf bytes.Buffer
	if err := formatter.Format(&buf, style, iterator); err != nil {
		return code
	}
	return buf.String()
}
