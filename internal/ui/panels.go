package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/zhubert/veneer/internal/browser"
)

// PanelTab identifies which view the side panel shows.
type PanelTab int

const (
	PanelBookmarks PanelTab = iota
	PanelHistory
	PanelSettings
)

func (p PanelTab) String() string {
	switch p {
	case PanelBookmarks:
		return "Bookmarks"
	case PanelHistory:
		return "History"
	case PanelSettings:
		return "Settings"
	}
	return "Unknown"
}

// Tagline is shown in the settings panel's about section.
const Tagline = "A customizable browser focused on performance and personalization"

// SidePanel is the right-hand column with bookmarks, history and settings.
type SidePanel struct {
	width   int
	height  int
	focused bool
	active  PanelTab

	search textinput.Model

	bookmarks []browser.Bookmark
	history   []browser.HistoryItem
	stats     browser.Stats
	theme     browser.Theme
	accent    string

	bookmarkIdx  int
	historyIdx   int
	scrollOffset int
}

// NewSidePanel creates a side panel showing bookmarks
func NewSidePanel() *SidePanel {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "Search bookmarks and history"
	ti.CharLimit = ModalInputCharLimit

	return &SidePanel{
		search: ti,
		theme:  browser.ThemeLight,
	}
}

// SetSize sets the panel dimensions including its border
func (s *SidePanel) SetSize(width, height int) {
	s.width = width
	s.height = height
	// Leave room for the "/ " prefix
	s.search.SetWidth(max(GetViewContext().InnerWidth(width)-4, 1))
}

// SetFocused sets whether the panel has keyboard focus
func (s *SidePanel) SetFocused(focused bool) {
	s.focused = focused
}

// IsFocused returns whether the panel has keyboard focus
func (s *SidePanel) IsFocused() bool {
	return s.focused
}

// ActiveTab returns the panel view being shown
func (s *SidePanel) ActiveTab() PanelTab {
	return s.active
}

// SetActiveTab switches the panel view
func (s *SidePanel) SetActiveTab(tab PanelTab) {
	if tab == s.active {
		return
	}
	s.active = tab
	s.scrollOffset = 0
}

// NextTab cycles bookmarks → history → settings → bookmarks
func (s *SidePanel) NextTab() {
	s.SetActiveTab((s.active + 1) % 3)
}

// IsListTab reports whether the active view is a searchable list
func (s *SidePanel) IsListTab() bool {
	return s.active == PanelBookmarks || s.active == PanelHistory
}

// SetBookmarks replaces the (already filtered) bookmarks
func (s *SidePanel) SetBookmarks(items []browser.Bookmark) {
	s.bookmarks = items
	s.bookmarkIdx = clampIndex(s.bookmarkIdx, len(items))
}

// SetHistory replaces the (already filtered) history
func (s *SidePanel) SetHistory(items []browser.HistoryItem) {
	s.history = items
	s.historyIdx = clampIndex(s.historyIdx, len(items))
}

// SetStats sets the counts shown in the settings view
func (s *SidePanel) SetStats(stats browser.Stats) {
	s.stats = stats
}

// SetPrefs sets the theme and accent shown in the settings view
func (s *SidePanel) SetPrefs(theme browser.Theme, accent string) {
	s.theme = theme
	s.accent = accent
}

func clampIndex(idx, n int) int {
	if n == 0 || idx < 0 {
		return 0
	}
	return min(idx, n-1)
}

// MoveUp moves the selection up in the active list
func (s *SidePanel) MoveUp() {
	switch s.active {
	case PanelBookmarks:
		s.bookmarkIdx = clampIndex(s.bookmarkIdx-1, len(s.bookmarks))
	case PanelHistory:
		s.historyIdx = clampIndex(s.historyIdx-1, len(s.history))
	}
}

// MoveDown moves the selection down in the active list
func (s *SidePanel) MoveDown() {
	switch s.active {
	case PanelBookmarks:
		s.bookmarkIdx = clampIndex(s.bookmarkIdx+1, len(s.bookmarks))
	case PanelHistory:
		s.historyIdx = clampIndex(s.historyIdx+1, len(s.history))
	}
}

// SelectedBookmark returns the highlighted bookmark, if any
func (s *SidePanel) SelectedBookmark() (browser.Bookmark, bool) {
	if len(s.bookmarks) == 0 {
		return browser.Bookmark{}, false
	}
	return s.bookmarks[s.bookmarkIdx], true
}

// SelectedHistory returns the highlighted history item, if any
func (s *SidePanel) SelectedHistory() (browser.HistoryItem, bool) {
	if len(s.history) == 0 {
		return browser.HistoryItem{}, false
	}
	return s.history[s.historyIdx], true
}

// FocusSearch focuses the search input
func (s *SidePanel) FocusSearch() tea.Cmd {
	return s.search.Focus()
}

// BlurSearch removes focus from the search input
func (s *SidePanel) BlurSearch() {
	s.search.Blur()
}

// SearchFocused reports whether the search input has focus
func (s *SidePanel) SearchFocused() bool {
	return s.search.Focused()
}

// SearchValue returns the search text
func (s *SidePanel) SearchValue() string {
	return s.search.Value()
}

// SetSearchValue replaces the search text
func (s *SidePanel) SetSearchValue(text string) {
	s.search.SetValue(text)
	s.search.CursorEnd()
}

// UpdateSearch forwards a message to the search input
func (s *SidePanel) UpdateSearch(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	s.search, cmd = s.search.Update(msg)
	return cmd
}

// View renders the panel
func (s *SidePanel) View() string {
	ctx := GetViewContext()

	style := PanelStyle
	if s.focused {
		style = PanelFocusedStyle
	}

	innerWidth := ctx.InnerWidth(s.width)
	innerHeight := ctx.InnerHeight(s.height)
	if innerWidth <= 0 || innerHeight <= 0 {
		return ""
	}

	lines := []string{s.renderTabs(innerWidth)}

	switch s.active {
	case PanelBookmarks, PanelHistory:
		lines = append(lines, s.renderSearch())
		lines = append(lines, s.renderList(innerWidth, innerHeight-len(lines))...)
	case PanelSettings:
		lines = append(lines, s.renderSettings(innerWidth)...)
	}

	if len(lines) > innerHeight {
		lines = lines[:innerHeight]
	}

	// In lipgloss v2, Width/Height include borders, so pass full panel size
	return style.Width(s.width).Height(s.height).Render(strings.Join(lines, "\n"))
}

func (s *SidePanel) renderTabs(width int) string {
	var parts []string
	for _, tab := range []PanelTab{PanelBookmarks, PanelHistory, PanelSettings} {
		label := tab.String()
		if tab == s.active {
			parts = append(parts, PanelTabActiveStyle.Render(label))
		} else {
			parts = append(parts, PanelTabStyle.Render(label))
		}
	}
	return ansi.Truncate(strings.Join(parts, ""), width, "")
}

func (s *SidePanel) renderSearch() string {
	prefix := lipgloss.NewStyle().Foreground(ColorSecondary).Bold(true).Render("/")
	return " " + prefix + " " + s.search.View()
}

// renderList renders bookmark or history rows into at most height lines,
// keeping the selected row visible and leaving the last line for a hint.
func (s *SidePanel) renderList(width, height int) []string {
	hint := "d: delete  f: folder  enter: open"
	count, selected := len(s.bookmarks), s.bookmarkIdx
	if s.active == PanelHistory {
		hint = "enter: open  C: clear history"
		count, selected = len(s.history), s.historyIdx
	}

	if count == 0 {
		msg := "No bookmarks yet. Press b to add one."
		if s.active == PanelHistory {
			msg = "No history yet."
		}
		if s.search.Value() != "" {
			msg = "No matches."
		}
		return []string{"", EmptyStateStyle.Render(msg)}
	}

	var allLines []string
	for i := range count {
		var title, detail, tag string
		if s.active == PanelBookmarks {
			b := s.bookmarks[i]
			title, detail = b.Title, b.URL
			if b.Folder != "" {
				tag = FolderBadgeStyle.Render(b.Folder)
			}
		} else {
			h := s.history[i]
			title, detail = h.Title, h.URL
			tag = StatLabelStyle.Render(h.Timestamp.Format("15:04"))
		}
		allLines = append(allLines, s.renderRow(width, i == selected, title, detail, tag)...)
	}

	visibleHeight := max(height-1, RowHeight)
	selectedStartLine := selected * RowHeight
	if selectedStartLine < s.scrollOffset {
		s.scrollOffset = selectedStartLine
	} else if selectedStartLine+RowHeight > s.scrollOffset+visibleHeight {
		s.scrollOffset = selectedStartLine + RowHeight - visibleHeight
	}
	s.scrollOffset = max(min(s.scrollOffset, len(allLines)-visibleHeight), 0)

	allLines = allLines[s.scrollOffset:]
	if len(allLines) > visibleHeight {
		allLines = allLines[:visibleHeight]
	}

	for len(allLines) < visibleHeight {
		allLines = append(allLines, "")
	}
	return append(allLines, ItemURLStyle.Render(ansi.Truncate(hint, width-2, "…")))
}

func (s *SidePanel) renderRow(width int, selected bool, title, detail, tag string) []string {
	itemStyle := SidebarItemStyle.Width(width)
	prefix := "  "
	if selected {
		itemStyle = SidebarSelectedStyle.Width(width)
		prefix = "> "
	}

	// padding takes one cell on each side
	titleLine := itemStyle.Render(ansi.Truncate(prefix+title, width-2, "…"))

	detailWidth := width - 4 - lipgloss.Width(tag)
	if tag != "" {
		detailWidth--
	}
	detailLine := ItemURLStyle.Render("  " + ansi.Truncate(detail, max(detailWidth, 1), "…"))
	if tag != "" {
		gap := max(width-lipgloss.Width(detailLine)-lipgloss.Width(tag), 1)
		detailLine += strings.Repeat(" ", gap) + tag
	}

	return []string{titleLine, detailLine}
}

func (s *SidePanel) renderSettings(width int) []string {
	heading := PanelTitleStyle
	light := ThemeOptionStyle.Render("☀ Light")
	dark := ThemeOptionStyle.Render("☾ Dark")
	if s.theme == browser.ThemeDark {
		dark = ThemeOptionActiveStyle.Render("☾ Dark")
	} else {
		light = ThemeOptionActiveStyle.Render("☀ Light")
	}
	themeRow := lipgloss.JoinHorizontal(lipgloss.Top, " ", light, " ", dark)

	accent := s.accent
	swatch := ""
	if accent != "" {
		swatch = lipgloss.NewStyle().Foreground(lipgloss.Color(accent)).Render("██") + " "
	}

	stat := func(label string, n int) string {
		return " " + StatLabelStyle.Render(fmt.Sprintf("%-15s", label)) + StatValueStyle.Render(fmt.Sprint(n))
	}

	lines := []string{heading.Render("Theme")}
	lines = append(lines, strings.Split(themeRow, "\n")...)
	lines = append(lines,
		ItemURLStyle.Render("L/D: light/dark  T: toggle"),
		"",
		heading.Render("Accent"),
		" "+swatch+StatValueStyle.Render(accent),
		"",
		heading.Render("Statistics"),
		stat("Open tabs", s.stats.Tabs),
		stat("History items", s.stats.History),
		stat("Bookmarks", s.stats.Bookmarks),
		"",
		heading.Render("About"),
	)
	about := lipgloss.NewStyle().Foreground(ColorTextMuted).Width(width).Padding(0, 1).Render(Tagline)
	lines = append(lines, strings.Split(about, "\n")...)
	lines = append(lines, "", ItemURLStyle.Render(",: all settings"))
	return lines
}
