package browser

import (
	"strings"

	"github.com/zhubert/veneer/internal/errors"
)

// DeriveTitle returns the host segment of a url: the third "/"-separated
// piece, so "https://github.com/foo" gives "github.com". Anything without
// one gives DefaultPageTitle. It never fails.
func DeriveTitle(url string) string {
	parts := strings.Split(url, "/")
	if len(parts) > 2 && parts[2] != "" {
		return parts[2]
	}
	return DefaultPageTitle
}

// ValidateURL reports whether url looks navigable. Navigation does not
// depend on it; callers use it to warn.
func ValidateURL(url string) error {
	trimmed := strings.TrimSpace(url)
	if trimmed == "" {
		return errors.InvalidURL(url, "empty")
	}
	scheme, rest, ok := strings.Cut(trimmed, "://")
	if !ok || scheme == "" {
		return errors.InvalidURL(url, "missing scheme")
	}
	if rest == "" {
		return errors.InvalidURL(url, "missing host")
	}
	return nil
}

// Navigate points the active tab at url and records a history entry.
func (s *Shell) Navigate(url string) HistoryItem {
	item, _ := s.NavigateTab(s.activeTabID, url)
	return item
}

// NavigateTab points the given tab at url and prepends exactly one history
// entry. It returns false, leaving history alone, if the tab does not exist.
func (s *Shell) NavigateTab(id, url string) (HistoryItem, bool) {
	idx := s.tabIndex(id)
	if idx < 0 {
		return HistoryItem{}, false
	}

	title := DeriveTitle(url)
	s.tabs[idx].URL = url
	s.tabs[idx].Title = title
	if tr, ok := s.trails[id]; ok {
		tr.push(title, url)
	}

	item := HistoryItem{
		ID:        s.newID(),
		Title:     title,
		URL:       url,
		Timestamp: s.now(),
	}
	s.history = append([]HistoryItem{item}, s.history...)

	if id == s.activeTabID {
		s.urlInput = url
	}
	s.log.Debug("navigated", "tab", id, "url", url, "title", title)
	return item, true
}

// CanGoBack reports whether the active tab has an earlier visit.
func (s *Shell) CanGoBack() bool {
	tr := s.trails[s.activeTabID]
	return tr != nil && tr.pos > 0
}

// CanGoForward reports whether the active tab has a later visit.
func (s *Shell) CanGoForward() bool {
	tr := s.trails[s.activeTabID]
	return tr != nil && tr.pos < len(tr.entries)-1
}

// Back moves the active tab to its previous visit. History is not touched.
func (s *Shell) Back() bool {
	if !s.CanGoBack() {
		return false
	}
	tr := s.trails[s.activeTabID]
	tr.pos--
	s.showVisit(tr.entries[tr.pos])
	return true
}

// Forward moves the active tab to its next visit. History is not touched.
func (s *Shell) Forward() bool {
	if !s.CanGoForward() {
		return false
	}
	tr := s.trails[s.activeTabID]
	tr.pos++
	s.showVisit(tr.entries[tr.pos])
	return true
}

func (s *Shell) showVisit(v visit) {
	idx := s.tabIndex(s.activeTabID)
	if idx < 0 {
		return
	}
	s.tabs[idx].URL = v.url
	s.tabs[idx].Title = v.title
	s.urlInput = v.url
}

// SetURLInput replaces the address bar text.
func (s *Shell) SetURLInput(text string) {
	s.urlInput = text
}

// URLInput returns the address bar text.
func (s *Shell) URLInput() string {
	return s.urlInput
}

// SubmitURLInput navigates the active tab to the address bar text.
func (s *Shell) SubmitURLInput() HistoryItem {
	return s.Navigate(s.urlInput)
}
