package app

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/veneer/internal/browser"
	"github.com/zhubert/veneer/internal/keys"
	"github.com/zhubert/veneer/internal/logger"
	"github.com/zhubert/veneer/internal/notification"
	"github.com/zhubert/veneer/internal/ui/modals"
)

// handleModalKey routes a key press to the handler for the visible modal.
func (m *Model) handleModalKey(msg tea.KeyPressMsg) (tea.Model, tea.Cmd) {
	key := msg.String()

	switch s := m.modal.State.(type) {
	case *modals.HelpState:
		return m.handleHelpModal(key, msg, s)
	case *modals.SettingsState:
		return m.handleSettingsModal(key, msg, s)
	case *modals.ConfirmClearHistoryState:
		return m.handleConfirmClearHistoryModal(key, msg, s)
	case *modals.BookmarkFolderState:
		return m.handleBookmarkFolderModal(key, msg, s)
	case *modals.ViewSourceState:
		return m.handleViewerModal(key, msg, "v")
	case *modals.LogViewerState:
		return m.handleViewerModal(key, msg, keys.CtrlG)
	}

	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// forwardToModal passes msg to the visible modal state.
func (m *Model) forwardToModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	modal, cmd := m.modal.Update(msg)
	m.modal = modal
	return m, cmd
}

// handleHelpModal handles key events for the Help modal.
func (m *Model) handleHelpModal(key string, msg tea.KeyPressMsg, state *modals.HelpState) (tea.Model, tea.Cmd) {
	// While filtering, forward all keys to the list (Esc cancels filter, Enter applies)
	if state.IsFiltering() {
		return m.forwardToModal(msg)
	}

	switch key {
	case keys.Escape, "?", "q":
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		shortcut := state.GetSelectedShortcut()
		if shortcut != nil {
			m.modal.Hide()
			return m, func() tea.Msg {
				return modals.HelpShortcutTriggeredMsg{Key: shortcut.Key}
			}
		}
		return m, nil
	}
	return m.forwardToModal(msg)
}

// handleHelpShortcutTrigger handles shortcuts triggered from the help modal.
// It normalizes display keys and delegates to the shortcut registry.
func (m *Model) handleHelpShortcutTrigger(key string) (tea.Model, tea.Cmd) {
	normalizedKey := normalizeHelpDisplayKey(key)
	if normalizedKey == "" {
		return m, nil // Display-only shortcut, no action
	}

	result, cmd, _ := m.ExecuteShortcut(normalizedKey)
	return result, cmd
}

// normalizeHelpDisplayKey converts help modal display keys to actual key values.
// Returns empty string for display-only shortcuts that shouldn't be executed.
func normalizeHelpDisplayKey(displayKey string) string {
	switch displayKey {
	case "1-9", "↑/↓ or j/k", "Enter", "Esc":
		return ""
	case "Tab":
		return "tab"
	}
	if after, ok := strings.CutPrefix(displayKey, "ctrl-"); ok {
		return "ctrl+" + after
	}
	// Single letters are case sensitive (T, L, D, C)
	return displayKey
}

// handleSettingsModal applies theme and accent through the shell, and writes
// them to the config file when "Use as startup defaults" is checked.
func (m *Model) handleSettingsModal(key string, msg tea.KeyPressMsg, state *modals.SettingsState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.closeSettings()
		return m, nil
	case keys.Enter:
		if state.AccentChanged() {
			if err := m.shell.SetAccent(state.GetAccent()); err != nil {
				m.modal.SetError(fmt.Sprintf("Invalid accent color %q", state.GetAccent()))
				return m, nil
			}
		}
		if state.ThemeChanged() {
			t, err := browser.ParseTheme(state.GetSelectedTheme())
			if err != nil {
				m.modal.SetError(err.Error())
				return m, nil
			}
			m.shell.SetTheme(t)
		}
		m.config.SetNotificationsEnabled(state.GetNotificationsEnabled())

		if state.SaveDefaults {
			prefs := m.shell.Prefs()
			m.config.SetTheme(string(prefs.Theme))
			m.config.SetAccent(prefs.Accent)
			if err := m.config.Save(); err != nil {
				logger.WithComponent("app").Error("failed to save settings", "error", err)
				m.modal.SetError("Failed to save: " + err.Error())
				return m, nil
			}
			m.closeSettings()
			return m, m.ShowFlashSuccess("Saved startup defaults")
		}
		m.closeSettings()
		return m, nil
	}
	return m.forwardToModal(msg)
}

func (m *Model) closeSettings() {
	m.shell.CloseSettings()
	m.modal.Hide()
}

// handleConfirmClearHistoryModal clears history on Enter with "Clear"
// selected, or on y.
func (m *Model) handleConfirmClearHistoryModal(key string, msg tea.KeyPressMsg, state *modals.ConfirmClearHistoryState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape, "n":
		m.modal.Hide()
		return m, nil
	case "y":
		return m.clearHistory()
	case keys.Enter:
		if state.Confirmed() {
			return m.clearHistory()
		}
		m.modal.Hide()
		return m, nil
	}
	return m.forwardToModal(msg)
}

func (m *Model) clearHistory() (tea.Model, tea.Cmd) {
	n := len(m.shell.History())
	m.shell.ClearHistory()
	m.modal.Hide()
	logger.WithComponent("app").Info("cleared history", "entries", n)

	cmds := []tea.Cmd{m.ShowFlashSuccess(fmt.Sprintf("Cleared %d history %s", n, pluralize(n, "entry", "entries")))}
	if m.config.GetNotificationsEnabled() {
		cmds = append(cmds, func() tea.Msg {
			_ = notification.HistoryCleared(n)
			return nil
		})
	}
	return m, tea.Batch(cmds...)
}

// handleBookmarkFolderModal saves the folder label on Enter.
func (m *Model) handleBookmarkFolderModal(key string, msg tea.KeyPressMsg, state *modals.BookmarkFolderState) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape:
		m.modal.Hide()
		return m, nil
	case keys.Enter:
		m.modal.Hide()
		if !m.shell.SetBookmarkFolder(state.BookmarkID, state.GetFolder()) {
			return m, m.ShowFlashWarning("Bookmark no longer exists")
		}
		if state.GetFolder() == "" {
			return m, m.ShowFlashInfo("Removed folder from " + state.Bookmark)
		}
		return m, m.ShowFlashInfo(fmt.Sprintf("Moved %s to %s", state.Bookmark, state.GetFolder()))
	}
	return m.forwardToModal(msg)
}

// handleViewerModal handles the read-only viewers (page source, debug log).
// closeKey is the shortcut that opened the viewer; pressing it again closes it.
func (m *Model) handleViewerModal(key string, msg tea.KeyPressMsg, closeKey string) (tea.Model, tea.Cmd) {
	switch key {
	case keys.Escape, "q", closeKey:
		m.modal.Hide()
		return m, nil
	}
	return m.forwardToModal(msg)
}

func pluralize(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
