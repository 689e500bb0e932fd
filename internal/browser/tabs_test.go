package browser

import (
	"slices"
	"testing"
)

func TestOpenTab(t *testing.T) {
	s := newTestShell()
	home := s.ActiveTab()

	tab := s.OpenTab()

	if tab.Title != DefaultTabTitle || tab.URL != DefaultURL {
		t.Errorf("new tab = %+v", tab)
	}
	if s.ActiveTabID() != tab.ID {
		t.Errorf("active = %q, want new tab %q", s.ActiveTabID(), tab.ID)
	}
	if got := tabIDs(s); !slices.Equal(got, []string{home.ID, tab.ID}) {
		t.Errorf("tab order = %v", got)
	}
	if s.URLInput() != tab.URL {
		t.Errorf("url input = %q, want %q", s.URLInput(), tab.URL)
	}
}

func TestCloseTab(t *testing.T) {
	tests := []struct {
		name       string
		open       int    // extra tabs opened after the home tab
		activeAt   int    // index selected before closing
		closeAt    int    // index closed
		wantCount  int
		wantActive string // id expected to be active afterwards
	}{
		{name: "inactive tab keeps active", open: 2, activeAt: 0, closeAt: 2, wantCount: 2, wantActive: "id-1"},
		{name: "active middle tab falls back to first", open: 2, activeAt: 1, closeAt: 1, wantCount: 2, wantActive: "id-1"},
		{name: "active first tab falls back to new first", open: 2, activeAt: 0, closeAt: 0, wantCount: 2, wantActive: "id-2"},
		{name: "last active tab falls back to first", open: 1, activeAt: 1, closeAt: 1, wantCount: 1, wantActive: "id-1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := newTestShell()
			for range tt.open {
				s.OpenTab()
			}
			s.SelectTabAt(tt.activeAt)
			s.CloseTab(s.Tabs()[tt.closeAt].ID)

			if got := len(s.Tabs()); got != tt.wantCount {
				t.Errorf("tab count = %d, want %d", got, tt.wantCount)
			}
			if s.ActiveTabID() != tt.wantActive {
				t.Errorf("active = %q, want %q", s.ActiveTabID(), tt.wantActive)
			}
			if s.URLInput() != s.ActiveTab().URL {
				t.Errorf("url input %q does not follow active tab %q", s.URLInput(), s.ActiveTab().URL)
			}
		})
	}
}

func TestCloseTab_OnlyTabSynthesizesDefault(t *testing.T) {
	s := newTestShell()
	s.Navigate("https://github.com/foo")
	only := s.ActiveTabID()

	s.CloseTab(only)

	tabs := s.Tabs()
	if len(tabs) != 1 {
		t.Fatalf("expected 1 tab, got %d", len(tabs))
	}
	if tabs[0].ID == only {
		t.Error("closed tab should be gone")
	}
	if tabs[0].Title != DefaultTabTitle || tabs[0].URL != DefaultURL {
		t.Errorf("synthesized tab = %+v", tabs[0])
	}
	if s.ActiveTabID() != tabs[0].ID {
		t.Errorf("active = %q, want %q", s.ActiveTabID(), tabs[0].ID)
	}
	if s.URLInput() != DefaultURL {
		t.Errorf("url input = %q", s.URLInput())
	}
}

func TestCloseTab_UnknownIDIsNoop(t *testing.T) {
	s := newTestShell()
	s.OpenTab()
	before := tabIDs(s)
	active := s.ActiveTabID()

	s.CloseTab("missing")

	if got := tabIDs(s); !slices.Equal(got, before) {
		t.Errorf("tabs = %v, want %v", got, before)
	}
	if s.ActiveTabID() != active {
		t.Errorf("active changed to %q", s.ActiveTabID())
	}
}

func TestSelectTab(t *testing.T) {
	s := newTestShell()
	home := s.ActiveTab()
	s.OpenTab()

	s.SelectTab(home.ID)
	if s.ActiveTabID() != home.ID {
		t.Errorf("active = %q, want %q", s.ActiveTabID(), home.ID)
	}
	if s.URLInput() != home.URL {
		t.Errorf("url input = %q, want %q", s.URLInput(), home.URL)
	}

	s.SelectTab("missing")
	if s.ActiveTabID() != home.ID {
		t.Errorf("unknown id changed active to %q", s.ActiveTabID())
	}
}

func TestSelectTabAt_OutOfRange(t *testing.T) {
	s := newTestShell()
	s.OpenTab()
	active := s.ActiveTabID()

	for _, idx := range []int{-1, 2, 9} {
		s.SelectTabAt(idx)
		if s.ActiveTabID() != active {
			t.Errorf("SelectTabAt(%d) changed active to %q", idx, s.ActiveTabID())
		}
	}
}

func TestNextPrevTab_Wrap(t *testing.T) {
	s := newTestShell()
	s.OpenTab()
	s.OpenTab()
	ids := tabIDs(s)
	s.SelectTabAt(0)

	s.NextTab()
	if s.ActiveTabID() != ids[1] {
		t.Errorf("next: active = %q, want %q", s.ActiveTabID(), ids[1])
	}
	s.NextTab()
	s.NextTab()
	if s.ActiveTabID() != ids[0] {
		t.Errorf("next should wrap to first, got %q", s.ActiveTabID())
	}
	s.PrevTab()
	if s.ActiveTabID() != ids[2] {
		t.Errorf("prev should wrap to last, got %q", s.ActiveTabID())
	}
	if s.ActiveIndex() != 2 {
		t.Errorf("ActiveIndex = %d, want 2", s.ActiveIndex())
	}
}
