// Package ui provides the presentation components for the veneer TUI.
//
// # Layout
//
//	┌─────────────────────────────────────────────────────┐
//	│ Header (1 line)                                     │
//	│ Tab strip (1 line)                                  │
//	│ Address bar (3 lines)                               │
//	├───────────────────────────────────┬─────────────────┤
//	│                                   │                 │
//	│   Page placeholder                │   Side panel    │
//	│   (2/3 width)                     │   (1/3 width)   │
//	│                                   │                 │
//	├───────────────────────────────────┴─────────────────┤
//	│ Footer (1 line)                                     │
//	└─────────────────────────────────────────────────────┘
//
// ViewContext owns the size arithmetic. Components hold no browser state of
// their own; the app copies what they need out of browser.Shell before each
// render.
//
// # Themes
//
// There are two palettes, light and dark, matching the browser's theme
// preference. SetAccent overrides the primary color of either. Every style
// variable in styles.go is rebuilt by regenerateStyles when the theme or
// accent changes, and the modals package gets its copies at the same time.
package ui
