package browser

import (
	"iter"
	"slices"
)

// History returns a copy of the history, newest first.
func (s *Shell) History() []HistoryItem {
	return slices.Clone(s.history)
}

// ClearHistory drops every history entry.
func (s *Shell) ClearHistory() {
	n := len(s.history)
	s.history = nil
	s.log.Debug("history cleared", "removed", n)
}

// FilterHistory yields entries whose title or url contains query, ignoring
// case, newest first.
func (s *Shell) FilterHistory(query string) iter.Seq[HistoryItem] {
	return func(yield func(HistoryItem) bool) {
		for _, h := range s.history {
			if matches(query, h.Title, h.URL) && !yield(h) {
				return
			}
		}
	}
}

// ReplayHistory revisits url in the active tab. A new entry is always
// recorded, even when url is already the newest one.
func (s *Shell) ReplayHistory(url string) HistoryItem {
	s.urlInput = url
	return s.Navigate(url)
}
