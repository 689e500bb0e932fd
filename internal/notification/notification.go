// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"fmt"
	"sync"

	"github.com/gen2brain/beeep"
	"github.com/zhubert/veneer/internal/logger"
)

// AppName is the title used for every notification.
const AppName = "veneer"

// Notifier matches beeep.Notify.
type Notifier func(title, message string, icon any) error

var (
	mu     sync.Mutex
	notify Notifier = beeep.Notify
)

// SetNotifier replaces the notification backend, for tests.
func SetNotifier(n Notifier) {
	mu.Lock()
	defer mu.Unlock()
	notify = n
}

// ResetNotifier restores beeep.Notify.
func ResetNotifier() {
	SetNotifier(beeep.Notify)
}

// Send sends a desktop notification with the given title and message.
func Send(title, message string) error {
	mu.Lock()
	n := notify
	mu.Unlock()

	log := logger.WithComponent("notification")
	log.Debug("sending notification", "title", title, "message", message)
	// Empty icon lets beeep pick the platform default
	if err := n(title, message, ""); err != nil {
		log.Warn("failed to send notification", "error", err)
		return err
	}
	return nil
}

// BookmarkAdded announces a new bookmark.
func BookmarkAdded(title string) error {
	return Send(AppName, fmt.Sprintf("Bookmarked %s", title))
}

// HistoryCleared announces that n history entries were removed.
func HistoryCleared(n int) error {
	noun := "entries"
	if n == 1 {
		noun = "entry"
	}
	return Send(AppName, fmt.Sprintf("Cleared %d history %s", n, noun))
}
