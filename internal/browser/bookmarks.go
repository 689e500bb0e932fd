package browser

import (
	"iter"
	"slices"
	"strings"
)

// AddBookmark saves the active tab's title and url. Duplicates are allowed.
func (s *Shell) AddBookmark() (Bookmark, bool) {
	tab := s.ActiveTab()
	bm := Bookmark{
		ID:    s.newID(),
		Title: tab.Title,
		URL:   tab.URL,
	}
	s.bookmarks = append(s.bookmarks, bm)
	s.log.Debug("bookmark added", "id", bm.ID, "url", bm.URL)
	return bm, true
}

// DeleteBookmark removes the bookmark with the given id, if present.
func (s *Shell) DeleteBookmark(id string) {
	idx := slices.IndexFunc(s.bookmarks, func(b Bookmark) bool { return b.ID == id })
	if idx < 0 {
		return
	}
	s.bookmarks = slices.Delete(s.bookmarks, idx, idx+1)
	s.log.Debug("bookmark deleted", "id", id)
}

// SetBookmarkFolder sets the folder label of a bookmark. An empty folder
// ungroups it. It returns false if the bookmark does not exist.
func (s *Shell) SetBookmarkFolder(id, folder string) bool {
	idx := slices.IndexFunc(s.bookmarks, func(b Bookmark) bool { return b.ID == id })
	if idx < 0 {
		return false
	}
	s.bookmarks[idx].Folder = strings.TrimSpace(folder)
	return true
}

// Bookmarks returns a copy of the bookmarks in insertion order.
func (s *Shell) Bookmarks() []Bookmark {
	return slices.Clone(s.bookmarks)
}

// FilterBookmarks yields bookmarks whose title or url contains query,
// ignoring case. The sequence reads the current bookmarks each time it is
// ranged over.
func (s *Shell) FilterBookmarks(query string) iter.Seq[Bookmark] {
	return func(yield func(Bookmark) bool) {
		for _, b := range s.bookmarks {
			if matches(query, b.Title, b.URL) && !yield(b) {
				return
			}
		}
	}
}

// Folders lists distinct non-empty folder labels in first-seen order.
func (s *Shell) Folders() []string {
	var folders []string
	for _, b := range s.bookmarks {
		if b.Folder != "" && !slices.Contains(folders, b.Folder) {
			folders = append(folders, b.Folder)
		}
	}
	return folders
}

func matches(query, title, url string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(title), q) ||
		strings.Contains(strings.ToLower(url), q)
}
