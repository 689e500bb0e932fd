package app

import (
	"slices"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/zhubert/veneer/internal/ui"
)

// updateSizes recalculates and applies dimensions to all UI components
func (m *Model) updateSizes() {
	ctx := ui.GetViewContext()
	ctx.UpdateTerminalSize(m.width, m.height)

	m.header.SetWidth(ctx.TerminalWidth)
	m.tabStrip.SetWidth(ctx.TerminalWidth)
	m.urlBar.SetWidth(ctx.TerminalWidth)
	m.footer.SetWidth(ctx.TerminalWidth)
	m.page.SetSize(ctx.PageWidth, ctx.ContentHeight)
	m.panel.SetSize(ctx.PanelWidth, ctx.ContentHeight)
	m.modal.SetScreenSize(ctx.TerminalWidth, ctx.TerminalHeight)
}

// sync copies the shell's read surface into the components.
func (m *Model) sync() {
	active := m.shell.ActiveTab()
	prefs := m.shell.Prefs()

	m.header.SetPageTitle(active.Title)
	m.header.SetThemeName(ui.ThemeName(prefs.Theme))
	m.tabStrip.SetTabs(m.shell.Tabs(), active.ID)

	m.urlBar.SetNav(m.shell.CanGoBack(), m.shell.CanGoForward())
	if !m.urlBar.Focused() {
		m.urlBar.SetValue(m.shell.URLInput())
	}

	m.page.SetTab(active)

	m.panel.SetBookmarks(slices.Collect(m.shell.FilteredBookmarks()))
	m.panel.SetHistory(slices.Collect(m.shell.FilteredHistory()))
	m.panel.SetStats(m.shell.Stats())
	m.panel.SetPrefs(prefs.Theme, prefs.Accent)
	if !m.panel.SearchFocused() {
		m.panel.SetSearchValue(prefs.SearchQuery)
	}
}

// View renders the app
func (m *Model) View() tea.View {
	var v tea.View
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		v.SetContent("Loading...")
		return v
	}

	v.SetContent(m.render())
	return v
}

func (m *Model) render() string {
	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.page.View(),
		m.panel.View(),
	)

	view := lipgloss.JoinVertical(
		lipgloss.Left,
		m.header.View(),
		m.tabStrip.View(),
		m.urlBar.View(),
		body,
		m.footer.View(),
	)

	ctx := ui.GetViewContext()
	return m.modal.Overlay(view, ctx.TerminalWidth, ctx.TerminalHeight)
}

// RenderToString renders the current frame as a string, for demos and tests.
func (m *Model) RenderToString() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	return m.render()
}
