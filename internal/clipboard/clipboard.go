// Package clipboard copies text such as the current page url to the system
// clipboard.
package clipboard

import (
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/veneer/internal/errors"
	"github.com/zhubert/veneer/internal/logger"
)

// backend is the system clipboard; tests swap it out.
type backend struct {
	init  func() error
	write func(text []byte)
	read  func() []byte
}

var (
	mu          sync.Mutex
	initialized bool
	sys         = systemBackend()
)

func systemBackend() backend {
	return backend{
		init:  clipboard.Init,
		write: func(text []byte) { clipboard.Write(clipboard.FmtText, text) },
		read:  func() []byte { return clipboard.Read(clipboard.FmtText) },
	}
}

// Init initializes the clipboard. Safe to call more than once.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return nil
	}
	if err := sys.init(); err != nil {
		logger.WithComponent("clipboard").Warn("failed to initialize clipboard", "error", err)
		return errors.ClipboardUnavailable(err)
	}
	initialized = true
	logger.WithComponent("clipboard").Debug("clipboard initialized")
	return nil
}

// WriteText writes text to the clipboard.
func WriteText(text string) error {
	mu.Lock()
	defer mu.Unlock()
	if err := initLocked(); err != nil {
		return err
	}
	sys.write([]byte(text))
	logger.WithComponent("clipboard").Debug("wrote text", "bytes", len(text))
	return nil
}

// ReadText reads text from the clipboard. An empty clipboard is not an error.
func ReadText() (string, error) {
	mu.Lock()
	defer mu.Unlock()
	if err := initLocked(); err != nil {
		return "", err
	}
	return string(sys.read()), nil
}

// SetBackend replaces the system clipboard with the given functions.
func SetBackend(init func() error, write func([]byte), read func() []byte) {
	mu.Lock()
	defer mu.Unlock()
	sys = backend{init: init, write: write, read: read}
	initialized = false
}

// ResetBackend restores the system clipboard.
func ResetBackend() {
	mu.Lock()
	defer mu.Unlock()
	sys = systemBackend()
	initialized = false
}
