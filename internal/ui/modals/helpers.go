package modals

import "github.com/mattn/go-runewidth"

// TruncateString shortens s to at most maxWidth terminal cells, ending in "...".
func TruncateString(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	return runewidth.Truncate(s, maxWidth, "...")
}
