package browser

import (
	"strings"
	"time"

	"github.com/zhubert/veneer/internal/errors"
)

// Defaults used when a Shell is built without options.
const (
	DefaultURL       = "https://example.com"
	DefaultTabTitle  = "New Tab"
	DefaultPageTitle = "Page"
	HomeTabTitle     = "Homepage"
	DefaultAccent    = "#2563EB"
)

// Tab is a browsing context holding one url/title pair.
type Tab struct {
	ID      string
	Title   string
	URL     string
	Favicon string // optional reference, never fetched
}

// HistoryItem records one navigation.
type HistoryItem struct {
	ID        string
	Title     string
	URL       string
	Timestamp time.Time
	Favicon   string
}

// Bookmark is a saved url/title pair, optionally grouped by folder label.
type Bookmark struct {
	ID      string
	Title   string
	URL     string
	Folder  string
	Favicon string
}

// Theme is the light/dark view preference.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// ParseTheme accepts "light" or "dark" in any case.
func ParseTheme(s string) (Theme, error) {
	switch Theme(strings.ToLower(strings.TrimSpace(s))) {
	case ThemeLight:
		return ThemeLight, nil
	case ThemeDark:
		return ThemeDark, nil
	}
	return "", errors.InvalidTheme(s)
}

// ViewPrefs are process-wide and reset on restart.
type ViewPrefs struct {
	Theme       Theme
	SearchQuery string
	Accent      string
}

// Stats are the counts shown in the settings panel.
type Stats struct {
	Tabs      int
	History   int
	Bookmarks int
}
