package modals

import (
	"strings"
	"testing"
)

func TestBookmarkFolderState(t *testing.T) {
	s := NewBookmarkFolderState("bm-1", "GitHub", "  Dev ", []string{"Dev", "Search"})

	if s.BookmarkID != "bm-1" {
		t.Errorf("id = %q", s.BookmarkID)
	}
	if s.GetFolder() != "Dev" {
		t.Errorf("folder = %q, want trimmed Dev", s.GetFolder())
	}

	out := s.Render()
	for _, want := range []string{"Bookmark Folder", "GitHub", "Existing: Dev, Search"} {
		if !strings.Contains(out, want) {
			t.Errorf("render missing %q", want)
		}
	}
}
