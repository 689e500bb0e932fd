package browser

import "slices"

// trail is one tab's visit stack. pos indexes the entry currently shown.
type trail struct {
	entries []visit
	pos     int
}

type visit struct {
	title string
	url   string
}

func newTrail(title, url string) *trail {
	return &trail{entries: []visit{{title: title, url: url}}}
}

// push records a new visit, dropping anything ahead of the current position.
func (tr *trail) push(title, url string) {
	tr.entries = append(tr.entries[:tr.pos+1], visit{title: title, url: url})
	tr.pos = len(tr.entries) - 1
}

func (s *Shell) appendTab(title, url string) Tab {
	tab := Tab{ID: s.newID(), Title: title, URL: url}
	s.tabs = append(s.tabs, tab)
	s.trails[tab.ID] = newTrail(title, url)
	return tab
}

func (s *Shell) tabIndex(id string) int {
	return slices.IndexFunc(s.tabs, func(t Tab) bool { return t.ID == id })
}

// OpenTab appends a blank tab pointed at the default url and makes it active.
func (s *Shell) OpenTab() Tab {
	tab := s.appendTab(DefaultTabTitle, s.defaultURL)
	s.activeTabID = tab.ID
	s.urlInput = tab.URL
	s.log.Debug("tab opened", "id", tab.ID, "count", len(s.tabs))
	return tab
}

// CloseTab removes the tab with the given id. The tab list is never left
// empty: closing the only tab first appends a fresh default tab. If the
// closed tab was active, the first remaining tab becomes active.
func (s *Shell) CloseTab(id string) {
	idx := s.tabIndex(id)
	if idx < 0 {
		return
	}

	if len(s.tabs) == 1 {
		s.appendTab(DefaultTabTitle, s.defaultURL)
	}

	s.tabs = slices.Delete(s.tabs, idx, idx+1)
	delete(s.trails, id)

	if s.activeTabID == id {
		s.activeTabID = s.tabs[0].ID
		s.urlInput = s.tabs[0].URL
	}
	s.log.Debug("tab closed", "id", id, "count", len(s.tabs), "active", s.activeTabID)
}

// SelectTab makes the tab with the given id active. Unknown ids are ignored.
func (s *Shell) SelectTab(id string) {
	idx := s.tabIndex(id)
	if idx < 0 {
		return
	}
	s.activeTabID = id
	s.urlInput = s.tabs[idx].URL
}

// SelectTabAt selects by zero-based position in the tab strip.
func (s *Shell) SelectTabAt(index int) {
	if index < 0 || index >= len(s.tabs) {
		return
	}
	s.SelectTab(s.tabs[index].ID)
}

// NextTab selects the tab to the right of the active one, wrapping around.
func (s *Shell) NextTab() {
	idx := s.tabIndex(s.activeTabID)
	s.SelectTabAt((idx + 1) % len(s.tabs))
}

// PrevTab selects the tab to the left of the active one, wrapping around.
func (s *Shell) PrevTab() {
	idx := s.tabIndex(s.activeTabID)
	s.SelectTabAt((idx - 1 + len(s.tabs)) % len(s.tabs))
}

// Tabs returns a copy of the tabs in display order.
func (s *Shell) Tabs() []Tab {
	return slices.Clone(s.tabs)
}

// ActiveTab returns the active tab.
func (s *Shell) ActiveTab() Tab {
	if idx := s.tabIndex(s.activeTabID); idx >= 0 {
		return s.tabs[idx]
	}
	return s.tabs[0]
}

// ActiveTabID returns the id of the active tab.
func (s *Shell) ActiveTabID() string {
	return s.activeTabID
}

// ActiveIndex returns the position of the active tab in the strip.
func (s *Shell) ActiveIndex() int {
	return max(s.tabIndex(s.activeTabID), 0)
}
