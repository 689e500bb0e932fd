package app

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/veneer/internal/browser"
	"github.com/zhubert/veneer/internal/config"
	"github.com/zhubert/veneer/internal/keys"
	"github.com/zhubert/veneer/internal/logger"
	"github.com/zhubert/veneer/internal/notification"
	"github.com/zhubert/veneer/internal/ui"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	// Never pop real desktop notifications from tests
	notification.SetNotifier(func(string, string, any) error { return nil })

	code := m.Run()

	ui.SetAccent("")
	ui.SetTheme(ui.DefaultTheme)
	logger.Reset()
	os.Exit(code)
}

var testEpoch = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

// testConfig creates a config that saves into a temp dir.
func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return config.New(filepath.Join(t.TempDir(), "config.json"))
}

// testShell creates a shell with predictable ids and timestamps.
func testShell(opts ...browser.Option) *browser.Shell {
	n := 0
	clock := 0
	base := []browser.Option{
		browser.WithIDSource(func() string {
			n++
			return fmt.Sprintf("id-%d", n)
		}),
		browser.WithClock(func() time.Time {
			clock++
			return testEpoch.Add(time.Duration(clock) * time.Minute)
		}),
	}
	return browser.New(append(base, opts...)...)
}

// testModelWithSize creates a test Model and sets its size.
func testModelWithSize(t *testing.T, width, height int, opts ...browser.Option) *Model {
	t.Helper()
	t.Cleanup(func() {
		ui.SetAccent("")
		ui.SetTheme(ui.DefaultTheme)
	})
	m := New(testConfig(t), testShell(opts...), "0.0.0-test")
	m.Update(tea.WindowSizeMsg{Width: width, Height: height})
	return m
}

// keyPress creates a tea.KeyPressMsg for the given key string.
// Examples: "a", "enter", "tab", "esc", "ctrl+t", "up", "down"
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.Left:
		return tea.KeyPressMsg{Code: tea.KeyLeft}
	case keys.Right:
		return tea.KeyPressMsg{Code: tea.KeyRight}
	case keys.CtrlC:
		return tea.KeyPressMsg{Code: 'c', Mod: tea.ModCtrl}
	case keys.CtrlD:
		return tea.KeyPressMsg{Code: 'd', Mod: tea.ModCtrl}
	case keys.CtrlG:
		return tea.KeyPressMsg{Code: 'g', Mod: tea.ModCtrl}
	case keys.CtrlL:
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	case keys.CtrlT:
		return tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}
	case keys.CtrlW:
		return tea.KeyPressMsg{Code: 'w', Mod: tea.ModCtrl}
	default:
		// Regular character - for single characters, set both Code and Text
		if len(key) == 1 {
			return tea.KeyPressMsg{Code: rune(key[0]), Text: key}
		}
		// Fallback for unknown keys
		return tea.KeyPressMsg{Text: key}
	}
}

// sendKey sends a key press to the model and returns the updated model.
func sendKey(m *Model, key string) *Model {
	result, _ := m.Update(keyPress(key))
	return result.(*Model)
}

// sendKeys sends each key in order.
func sendKeys(m *Model, keys ...string) *Model {
	for _, k := range keys {
		m = sendKey(m, k)
	}
	return m
}

// typeText simulates typing a string by sending individual character key presses.
func typeText(m *Model, text string) *Model {
	for _, ch := range text {
		m = sendKey(m, string(ch))
	}
	return m
}

// navigateTo drives the address bar: l, clear, type, enter.
func navigateTo(m *Model, url string) *Model {
	m = sendKey(m, "l")
	m.urlBar.SetValue("")
	m = typeText(m, url)
	return sendKey(m, keys.Enter)
}
