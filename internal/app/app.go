package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/veneer/internal/browser"
	"github.com/zhubert/veneer/internal/config"
	"github.com/zhubert/veneer/internal/keys"
	"github.com/zhubert/veneer/internal/logger"
	"github.com/zhubert/veneer/internal/ui"
	"github.com/zhubert/veneer/internal/ui/modals"
)

// FocusArea represents which part of the chrome receives key input
type FocusArea int

const (
	FocusPage   FocusArea = iota // shortcuts
	FocusURL                     // address bar editing
	FocusSearch                  // side panel search box
	FocusPanel                   // side panel list selection
)

func (f FocusArea) String() string {
	switch f {
	case FocusPage:
		return "page"
	case FocusURL:
		return "url"
	case FocusSearch:
		return "search"
	case FocusPanel:
		return "panel"
	}
	return fmt.Sprintf("FocusArea(%d)", int(f))
}

// Model is the main Bubble Tea model. It owns no browser state itself:
// everything shown is copied out of shell by sync after each update.
type Model struct {
	shell   *browser.Shell
	config  *config.Config
	version string

	header   *ui.Header
	tabStrip *ui.TabStrip
	urlBar   *ui.URLBar
	page     *ui.Page
	panel    *ui.SidePanel
	footer   *ui.Footer
	modal    *ui.Modal

	width  int
	height int
	focus  FocusArea
}

// New creates a new app model around shell. Theme and accent events from
// the shell are applied to the ui palette.
func New(cfg *config.Config, shell *browser.Shell, version string) *Model {
	m := &Model{
		shell:    shell,
		config:   cfg,
		version:  version,
		header:   ui.NewHeader(),
		tabStrip: ui.NewTabStrip(),
		urlBar:   ui.NewURLBar(),
		page:     ui.NewPage(),
		panel:    ui.NewSidePanel(),
		footer:   ui.NewFooter(),
		modal:    ui.NewModal(),
		focus:    FocusPage,
	}

	shell.Subscribe(browser.ObserverFuncs{
		OnTheme: func(t browser.Theme) {
			logger.WithComponent("app").Debug("theme changed", "theme", t)
			ui.SetThemeByName(string(t))
		},
		OnAccent: func(accent string) {
			logger.WithComponent("app").Debug("accent changed", "accent", accent)
			ui.SetAccent(accent)
		},
	})

	prefs := shell.Prefs()
	ui.SetThemeByName(string(prefs.Theme))
	ui.SetAccent(prefs.Accent)

	m.sync()
	return m
}

// Shell returns the browser state the model drives.
func (m *Model) Shell() *browser.Shell {
	return m.shell
}

// Focus returns the focused area.
func (m *Model) Focus() FocusArea {
	return m.focus
}

// Init implements tea.Model
func (m *Model) Init() tea.Cmd {
	logger.WithComponent("app").Info("veneer started", "version", m.version, "tabs", len(m.shell.Tabs()))
	return nil
}

// Update implements tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	result, cmd := m.update(msg)
	m.sync()
	return result, cmd
}

func (m *Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateSizes()
		return m, nil

	case ui.FlashTickMsg:
		if m.footer.ClearIfExpired() || !m.footer.HasFlash() {
			return m, nil
		}
		return m, ui.FlashTick()

	case modals.HelpShortcutTriggeredMsg:
		return m.handleHelpShortcutTrigger(msg.Key)

	case tea.KeyPressMsg:
		return m.handleKey(msg)
	}

	// Cursor blinks and other component messages
	if m.modal.IsVisible() {
		modal, cmd := m.modal.Update(msg)
		m.modal = modal
		return m, cmd
	}
	switch m.focus {
	case FocusURL:
		return m, m.urlBar.Update(msg)
	case FocusSearch:
		return m, m.panel.UpdateSearch(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == keys.CtrlC {
		return m, tea.Quit
	}

	if m.modal.IsVisible() {
		return m.handleModalKey(msg)
	}

	switch m.focus {
	case FocusURL:
		return m.handleURLKey(key, msg)
	case FocusSearch:
		return m.handleSearchKey(key, msg)
	case FocusPanel:
		if result, cmd, handled := m.handlePanelKey(key); handled {
			return result, cmd
		}
	}

	if result, cmd, ok := m.ExecuteShortcut(key); ok {
		return result, cmd
	}
	return m, nil
}

// handleURLKey handles input while the address bar is being edited.
func (m *Model) handleURLKey(key string, msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Enter:
		text := m.urlBar.Value()
		m.shell.SetURLInput(text)
		m.setFocus(FocusPage)
		m.shell.SubmitURLInput()
		if err := browser.ValidateURL(text); err != nil {
			logger.WithComponent("app").Warn("navigated to unusual address", "url", text, "error", err)
			return m, m.ShowFlashWarning(fmt.Sprintf("Not a full address: %q", text))
		}
		return m, nil
	case keys.Escape:
		m.shell.SetURLInput(m.shell.ActiveTab().URL)
		m.setFocus(FocusPage)
		return m, nil
	}

	cmd := m.urlBar.Update(msg)
	m.shell.SetURLInput(m.urlBar.Value())
	return m, cmd
}

// handleSearchKey handles input while the panel search box is focused.
func (m *Model) handleSearchKey(key string, msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Enter:
		m.setFocus(FocusPanel)
		return m, nil
	case keys.Escape:
		m.shell.SetSearchQuery("")
		m.panel.SetSearchValue("")
		m.setFocus(FocusPage)
		return m, nil
	}

	cmd := m.panel.UpdateSearch(msg)
	m.shell.SetSearchQuery(m.panel.SearchValue())
	return m, cmd
}

// handlePanelKey handles list navigation when the side panel has focus.
// Keys it does not claim fall through to the shortcut registry.
func (m *Model) handlePanelKey(key string) (tea.Model, tea.Cmd, bool) {
	switch key {
	case keys.Up, "k":
		m.panel.MoveUp()
		return m, nil, true
	case keys.Down, "j":
		m.panel.MoveDown()
		return m, nil, true
	case keys.Escape:
		m.setFocus(FocusPage)
		return m, nil, true
	case keys.Enter:
		result, cmd := m.openSelected()
		return result, cmd, true
	}
	return m, nil, false
}

// openSelected navigates to the selected bookmark, or replays the selected
// history entry.
func (m *Model) openSelected() (tea.Model, tea.Cmd) {
	switch m.panel.ActiveTab() {
	case ui.PanelBookmarks:
		if b, ok := m.panel.SelectedBookmark(); ok {
			m.shell.Navigate(b.URL)
			m.setFocus(FocusPage)
		}
	case ui.PanelHistory:
		if h, ok := m.panel.SelectedHistory(); ok {
			m.shell.ReplayHistory(h.URL)
			m.setFocus(FocusPage)
		}
	}
	return m, nil
}

// setFocus moves key input to area and updates component focus to match.
func (m *Model) setFocus(area FocusArea) tea.Cmd {
	m.focus = area

	var cmd tea.Cmd
	if area == FocusURL {
		m.urlBar.SetValue(m.shell.URLInput())
		cmd = m.urlBar.Focus()
	} else {
		m.urlBar.Blur()
	}
	if area == FocusSearch {
		cmd = m.panel.FocusSearch()
	} else {
		m.panel.BlurSearch()
	}
	m.panel.SetFocused(area == FocusPanel || area == FocusSearch)

	switch area {
	case FocusURL:
		m.footer.SetMode(ui.FooterURLEdit)
	case FocusSearch:
		m.footer.SetMode(ui.FooterSearch)
	case FocusPanel:
		m.footer.SetMode(ui.FooterPanel)
	default:
		m.footer.SetMode(ui.FooterBrowse)
	}
	return cmd
}
