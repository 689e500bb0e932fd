package browser

import (
	"iter"
	"strings"

	"github.com/zhubert/veneer/internal/errors"
)

// Prefs returns the current view preferences.
func (s *Shell) Prefs() ViewPrefs {
	return s.prefs
}

// ToggleTheme flips between light and dark and reports the new theme.
func (s *Shell) ToggleTheme() Theme {
	s.prefs.Theme = s.prefs.Theme.Toggle()
	s.log.Debug("theme toggled", "theme", s.prefs.Theme)
	s.emitTheme(s.prefs.Theme)
	return s.prefs.Theme
}

// SetTheme sets the theme explicitly. Observers hear about it only when the
// value changes.
func (s *Shell) SetTheme(t Theme) {
	if t != ThemeLight && t != ThemeDark {
		return
	}
	if t == s.prefs.Theme {
		return
	}
	s.prefs.Theme = t
	s.log.Debug("theme set", "theme", t)
	s.emitTheme(t)
}

// SetAccent sets the accent color. It must be a #RRGGBB hex value.
func (s *Shell) SetAccent(accent string) error {
	normalized, ok := normalizeAccent(accent)
	if !ok {
		return errors.InvalidAccent(accent)
	}
	if normalized == s.prefs.Accent {
		return nil
	}
	s.prefs.Accent = normalized
	s.emitAccent(normalized)
	return nil
}

// normalizeAccent accepts "#rrggbb" or "rrggbb" and returns "#RRGGBB".
func normalizeAccent(accent string) (string, bool) {
	hex := strings.TrimPrefix(strings.TrimSpace(accent), "#")
	if len(hex) != 6 {
		return "", false
	}
	for _, c := range hex {
		switch {
		case c >= '0' && c <= '9', c >= 'a' && c <= 'f', c >= 'A' && c <= 'F':
		default:
			return "", false
		}
	}
	return "#" + strings.ToUpper(hex), true
}

// SetSearchQuery sets the query shared by the bookmarks and history panels.
func (s *Shell) SetSearchQuery(text string) {
	s.prefs.SearchQuery = text
}

// FilteredBookmarks applies the shared search query to bookmarks.
func (s *Shell) FilteredBookmarks() iter.Seq[Bookmark] {
	return s.FilterBookmarks(s.prefs.SearchQuery)
}

// FilteredHistory applies the shared search query to history.
func (s *Shell) FilteredHistory() iter.Seq[HistoryItem] {
	return s.FilterHistory(s.prefs.SearchQuery)
}

func (s *Shell) OpenSettings()      { s.settingsOpen = true }
func (s *Shell) CloseSettings()     { s.settingsOpen = false }
func (s *Shell) SettingsOpen() bool { return s.settingsOpen }
