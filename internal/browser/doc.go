// Package browser holds the in-memory state behind veneer's browser chrome.
//
// # Overview
//
// A Shell owns four collections and the view preferences:
//   - Tabs: ordered, display order; never empty
//   - Active tab: always resolves to a tab in the sequence
//   - History: newest-first log of navigations
//   - Bookmarks: insertion-ordered saved url/title pairs
//   - ViewPrefs: theme, shared search query, accent color
//
// Nothing here loads pages. Navigate rewrites the active tab and records a
// history entry; the presentation layer shows a placeholder.
//
// # Invariants
//
// Closing the last tab synthesizes a default tab before removal, so the
// sequence is never empty. Operations on an unknown id are no-ops. Title
// derivation never fails: a url without a host segment becomes "Page".
//
// # Events
//
// Theme and accent changes are reported to Observers instead of being
// applied here. The app layer restyles the UI in response.
//
// # Concurrency
//
// A Shell is not safe for concurrent use. Bubble Tea's update loop is the
// only caller and serializes every operation.
package browser
