package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/veneer/internal/browser"
	"github.com/zhubert/veneer/internal/clipboard"
	"github.com/zhubert/veneer/internal/logger"
	"github.com/zhubert/veneer/internal/notification"
	"github.com/zhubert/veneer/internal/ui"
	"github.com/zhubert/veneer/internal/ui/modals"
)

// Shortcut represents a keyboard shortcut with its metadata and handler.
// This is the single source of truth for all shortcuts in the application.
type Shortcut struct {
	Key            string                              // The key binding (e.g., "t", "ctrl+l")
	Aliases        []string                            // Other keys that run the same handler
	DisplayKey     string                              // Display name in help; defaults to Key
	Description    string                              // Human-readable description
	Category       string                              // Section for help modal grouping
	RequiresPanel  bool                                // Side panel must have focus
	RequiresListed bool                                // A bookmark or history row must be selected
	Handler        func(m *Model) (tea.Model, tea.Cmd) // Action to perform
	Condition      func(m *Model) bool                 // Optional extra condition
}

// Categories for organizing shortcuts in the help modal
const (
	CategoryTabs       = "Tabs"
	CategoryNavigation = "Navigation"
	CategoryLibrary    = "Bookmarks & History"
	CategoryAppearance = "Appearance"
	CategoryGeneral    = "General"
)

// categoryOrder defines the display order of categories in the help modal
var categoryOrder = []string{
	CategoryTabs,
	CategoryNavigation,
	CategoryLibrary,
	CategoryAppearance,
	CategoryGeneral,
}

// ShortcutRegistry is the central registry of all keyboard shortcuts.
// Add new shortcuts here and they will automatically appear in the help modal
// and be executable from both direct key presses and the help modal.
var ShortcutRegistry = []Shortcut{
	// Tabs
	{
		Key:         "t",
		Aliases:     []string{"ctrl+t"},
		Description: "Open a new tab",
		Category:    CategoryTabs,
		Handler:     shortcutOpenTab,
	},
	{
		Key:         "w",
		Aliases:     []string{"ctrl+w"},
		Description: "Close the active tab",
		Category:    CategoryTabs,
		Handler:     shortcutCloseTab,
	},
	{
		Key:         "]",
		Description: "Next tab",
		Category:    CategoryTabs,
		Handler:     shortcutNextTab,
		Condition:   func(m *Model) bool { return len(m.shell.Tabs()) > 1 },
	},
	{
		Key:         "[",
		Description: "Previous tab",
		Category:    CategoryTabs,
		Handler:     shortcutPrevTab,
		Condition:   func(m *Model) bool { return len(m.shell.Tabs()) > 1 },
	},

	// Navigation
	{
		Key:         "l",
		Aliases:     []string{"ctrl+l"},
		Description: "Edit the address",
		Category:    CategoryNavigation,
		Handler:     shortcutEditURL,
	},
	{
		Key:         "<",
		Description: "Back",
		Category:    CategoryNavigation,
		Handler:     shortcutBack,
		Condition:   func(m *Model) bool { return m.shell.CanGoBack() },
	},
	{
		Key:         ">",
		Description: "Forward",
		Category:    CategoryNavigation,
		Handler:     shortcutForward,
		Condition:   func(m *Model) bool { return m.shell.CanGoForward() },
	},
	{
		Key:         "y",
		Description: "Copy the address",
		Category:    CategoryNavigation,
		Handler:     shortcutCopyURL,
	},
	{
		Key:         "v",
		Description: "View page source",
		Category:    CategoryNavigation,
		Handler:     shortcutViewSource,
	},

	// Bookmarks & History
	{
		Key:         "b",
		Aliases:     []string{"ctrl+d"},
		Description: "Bookmark this page",
		Category:    CategoryLibrary,
		Handler:     shortcutAddBookmark,
	},
	{
		Key:            "d",
		Description:    "Delete selected bookmark",
		Category:       CategoryLibrary,
		RequiresPanel:  true,
		RequiresListed: true,
		Handler:        shortcutDeleteBookmark,
		Condition:      func(m *Model) bool { return m.panel.ActiveTab() == ui.PanelBookmarks },
	},
	{
		Key:            "f",
		Description:    "Set folder of selected bookmark",
		Category:       CategoryLibrary,
		RequiresPanel:  true,
		RequiresListed: true,
		Handler:        shortcutBookmarkFolder,
		Condition:      func(m *Model) bool { return m.panel.ActiveTab() == ui.PanelBookmarks },
	},
	{
		Key:         "C",
		Description: "Clear history",
		Category:    CategoryLibrary,
		Handler:     shortcutClearHistory,
		Condition:   func(m *Model) bool { return len(m.shell.History()) > 0 },
	},
	{
		Key:         "/",
		Description: "Search bookmarks and history",
		Category:    CategoryLibrary,
		Handler:     shortcutSearch,
	},
	{
		Key:         "tab",
		DisplayKey:  "Tab",
		Description: "Focus side panel / next panel",
		Category:    CategoryLibrary,
		Handler:     shortcutNextPanel,
	},

	// Appearance
	{
		Key:         "T",
		Description: "Toggle light/dark theme",
		Category:    CategoryAppearance,
		Handler:     shortcutToggleTheme,
	},
	{
		Key:         "L",
		Description: "Light theme",
		Category:    CategoryAppearance,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return setTheme(m, browser.ThemeLight) },
	},
	{
		Key:         "D",
		Description: "Dark theme",
		Category:    CategoryAppearance,
		Handler:     func(m *Model) (tea.Model, tea.Cmd) { return setTheme(m, browser.ThemeDark) },
	},
	{
		Key:         ",",
		Description: "Settings",
		Category:    CategoryAppearance,
		Handler:     shortcutSettings,
	},

	// General
	{
		Key:         "ctrl+g",
		DisplayKey:  "ctrl-g",
		Description: "Show debug log",
		Category:    CategoryGeneral,
		Handler:     shortcutDebugLog,
	},
	{
		Key:         "q",
		Description: "Quit",
		Category:    CategoryGeneral,
		Handler:     shortcutQuit,
	},
}

// helpShortcut is defined separately to avoid initialization cycle.
// It references ShortcutRegistry, so it can't be in the registry itself.
var helpShortcut = Shortcut{
	Key:         "?",
	Description: "Show this help",
	Category:    CategoryGeneral,
}

// DisplayOnlyShortcuts are shown in help but not executable from the help modal.
var DisplayOnlyShortcuts = []Shortcut{
	{DisplayKey: "1-9", Description: "Jump to tab by position", Category: CategoryTabs},
	{DisplayKey: "Enter", Description: "Go to the typed address", Category: CategoryNavigation},
	{DisplayKey: "↑/↓ or j/k", Description: "Move through bookmarks or history", Category: CategoryLibrary},
	{DisplayKey: "Enter", Description: "Open bookmark / Revisit history entry", Category: CategoryLibrary},
	{DisplayKey: "Esc", Description: "Cancel editing / Leave panel", Category: CategoryGeneral},
}

// isShortcutApplicable checks if a shortcut is applicable given the current model state.
// This is used to filter which shortcuts appear in the help modal.
func (m *Model) isShortcutApplicable(s Shortcut) bool {
	if s.RequiresPanel && m.focus != FocusPanel {
		return false
	}
	if s.RequiresListed && !m.hasListSelection() {
		return false
	}
	if s.Condition != nil && !s.Condition(m) {
		return false
	}
	return true
}

func (m *Model) hasListSelection() bool {
	switch m.panel.ActiveTab() {
	case ui.PanelBookmarks:
		_, ok := m.panel.SelectedBookmark()
		return ok
	case ui.PanelHistory:
		_, ok := m.panel.SelectedHistory()
		return ok
	}
	return false
}

// matches reports whether key triggers s.
func (s Shortcut) matches(key string) bool {
	if s.Key == key {
		return true
	}
	for _, alias := range s.Aliases {
		if alias == key {
			return true
		}
	}
	return false
}

// ExecuteShortcut runs the shortcut bound to key. The bool is false when no
// shortcut claimed the key.
func (m *Model) ExecuteShortcut(key string) (tea.Model, tea.Cmd, bool) {
	log := logger.WithComponent("shortcuts")

	// Handle help shortcut specially (defined outside registry to avoid init cycle)
	if key == helpShortcut.Key {
		result, cmd := shortcutHelp(m)
		return result, cmd, true
	}

	if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
		m.shell.SelectTabAt(int(key[0] - '1'))
		return m, nil, true
	}

	for _, s := range ShortcutRegistry {
		if !s.matches(key) {
			continue
		}
		if !m.isShortcutApplicable(s) {
			log.Debug("shortcut guard failed", "key", key, "focus", m.focus)
			return m, nil, false
		}
		log.Debug("executing shortcut", "key", key)
		result, cmd := s.Handler(m)
		return result, cmd, true
	}
	return m, nil, false
}

// getApplicableHelpSections groups the applicable shortcuts by category,
// in categoryOrder.
func (m *Model) getApplicableHelpSections(registry []Shortcut, displayOnly []Shortcut) []modals.HelpSection {
	categories := make(map[string][]modals.HelpShortcut)

	for _, s := range registry {
		if !m.isShortcutApplicable(s) {
			continue
		}
		displayKey := s.DisplayKey
		if displayKey == "" {
			displayKey = s.Key
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  displayKey,
			Desc: s.Description,
		})
	}

	// Display-only entries only join categories that already have something
	for _, s := range displayOnly {
		if _, ok := categories[s.Category]; !ok {
			continue
		}
		categories[s.Category] = append(categories[s.Category], modals.HelpShortcut{
			Key:  s.DisplayKey,
			Desc: s.Description,
		})
	}

	var sections []modals.HelpSection
	for _, cat := range categoryOrder {
		if shortcuts, ok := categories[cat]; ok {
			sections = append(sections, modals.HelpSection{Title: cat, Shortcuts: shortcuts})
		}
	}
	return sections
}

// =============================================================================
// Shortcut handlers
// =============================================================================

func shortcutOpenTab(m *Model) (tea.Model, tea.Cmd) {
	tab := m.shell.OpenTab()
	logger.WithComponent("app").Debug("opened tab", "id", tab.ID)
	return m, nil
}

func shortcutCloseTab(m *Model) (tea.Model, tea.Cmd) {
	m.shell.CloseTab(m.shell.ActiveTabID())
	return m, nil
}

func shortcutNextTab(m *Model) (tea.Model, tea.Cmd) {
	m.shell.NextTab()
	return m, nil
}

func shortcutPrevTab(m *Model) (tea.Model, tea.Cmd) {
	m.shell.PrevTab()
	return m, nil
}

func shortcutEditURL(m *Model) (tea.Model, tea.Cmd) {
	return m, m.setFocus(FocusURL)
}

func shortcutBack(m *Model) (tea.Model, tea.Cmd) {
	m.shell.Back()
	return m, nil
}

func shortcutForward(m *Model) (tea.Model, tea.Cmd) {
	m.shell.Forward()
	return m, nil
}

func shortcutCopyURL(m *Model) (tea.Model, tea.Cmd) {
	url := m.shell.ActiveTab().URL
	if err := clipboard.WriteText(url); err != nil {
		logger.WithComponent("app").Error("failed to copy to clipboard", "error", err)
		return m, m.ShowFlashError("Clipboard unavailable")
	}
	return m, m.ShowFlashSuccess("Copied " + url)
}

func shortcutViewSource(m *Model) (tea.Model, tea.Cmd) {
	tab := m.shell.ActiveTab()
	m.modal.Show(modals.NewViewSourceState(tab.URL, ui.PageSource(tab)))
	return m, nil
}

func shortcutAddBookmark(m *Model) (tea.Model, tea.Cmd) {
	b, ok := m.shell.AddBookmark()
	if !ok {
		return m, m.ShowFlashWarning("Nothing to bookmark")
	}
	cmds := []tea.Cmd{m.ShowFlashSuccess("Bookmarked " + b.Title)}
	if m.config.GetNotificationsEnabled() {
		title := b.Title
		cmds = append(cmds, func() tea.Msg {
			_ = notification.BookmarkAdded(title)
			return nil
		})
	}
	return m, tea.Batch(cmds...)
}

func shortcutDeleteBookmark(m *Model) (tea.Model, tea.Cmd) {
	b, ok := m.panel.SelectedBookmark()
	if !ok {
		return m, nil
	}
	m.shell.DeleteBookmark(b.ID)
	return m, m.ShowFlashInfo("Removed bookmark " + b.Title)
}

func shortcutBookmarkFolder(m *Model) (tea.Model, tea.Cmd) {
	b, ok := m.panel.SelectedBookmark()
	if !ok {
		return m, nil
	}
	m.modal.Show(modals.NewBookmarkFolderState(b.ID, b.Title, b.Folder, m.shell.Folders()))
	return m, nil
}

func shortcutClearHistory(m *Model) (tea.Model, tea.Cmd) {
	m.modal.Show(modals.NewConfirmClearHistoryState(len(m.shell.History())))
	return m, nil
}

func shortcutSearch(m *Model) (tea.Model, tea.Cmd) {
	if !m.panel.IsListTab() {
		m.panel.SetActiveTab(ui.PanelBookmarks)
	}
	return m, m.setFocus(FocusSearch)
}

func shortcutNextPanel(m *Model) (tea.Model, tea.Cmd) {
	if m.focus == FocusPanel {
		m.panel.NextTab()
		return m, nil
	}
	return m, m.setFocus(FocusPanel)
}

func shortcutToggleTheme(m *Model) (tea.Model, tea.Cmd) {
	t := m.shell.ToggleTheme()
	return m, m.ShowFlashInfo(themeLabel(t) + " theme")
}

func setTheme(m *Model, t browser.Theme) (tea.Model, tea.Cmd) {
	m.shell.SetTheme(t)
	return m, nil
}

func themeLabel(t browser.Theme) string {
	s := string(t)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func shortcutSettings(m *Model) (tea.Model, tea.Cmd) {
	prefs := m.shell.Prefs()
	m.shell.OpenSettings()
	m.modal.Show(modals.NewSettingsState(string(prefs.Theme), prefs.Accent, m.config.GetNotificationsEnabled()))
	return m, nil
}

func shortcutDebugLog(m *Model) (tea.Model, tea.Cmd) {
	path := logger.Path()
	if path == "" {
		path = logger.DefaultLogPath
	}
	m.modal.Show(modals.NewLogViewerState(path))
	return m, nil
}

func shortcutHelp(m *Model) (tea.Model, tea.Cmd) {
	allShortcuts := append(append([]Shortcut(nil), ShortcutRegistry...), helpShortcut)
	sections := m.getApplicableHelpSections(allShortcuts, DisplayOnlyShortcuts)
	m.modal.Show(modals.NewHelpStateFromSections(sections))
	return m, nil
}

func shortcutQuit(m *Model) (tea.Model, tea.Cmd) {
	logger.WithComponent("app").Info("quitting", "stats", fmt.Sprintf("%+v", m.shell.Stats()))
	return m, tea.Quit
}
