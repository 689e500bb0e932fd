// Package app is the Bubble Tea model for veneer.
//
// Model turns key presses into browser.Shell operations and copies the
// shell's read surface into the ui components after every update. Keys are
// routed in this order:
//
//  1. a visible modal (handleModalKey)
//  2. the address bar or panel search box, while either is being edited
//  3. panel list navigation, while the side panel has focus
//  4. the shortcut registry (shortcuts.go)
//
// Theme and accent changes arrive as shell events and are applied to the ui
// palette by the observer registered in New.
package app
