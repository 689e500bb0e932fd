package notification

import (
	"errors"
	"os"
	"testing"

	"github.com/zhubert/veneer/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)
	os.Exit(m.Run())
}

type call struct {
	title   string
	message string
	icon    any
}

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []call
	err   error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, call{title, message, icon})
	return m.err
}

func install(t *testing.T, err error) *mockNotification {
	mock := &mockNotification{err: err}
	SetNotifier(mock.notify)
	t.Cleanup(ResetNotifier)
	return mock
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{"successful notification", "Test Title", "Test Message", nil, false},
		{"notification error", "Test Title", "Test Message", errors.New("notification failed"), true},
		{"empty title", "", "Message with empty title", nil, false},
		{"unicode content", "通知", "🎉 Notification with emoji", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := install(t, tt.mockErr)

			err := Send(tt.title, tt.message)
			if tt.expectError && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != tt.title || mock.calls[0].message != tt.message {
				t.Errorf("call = %+v", mock.calls[0])
			}
		})
	}
}

func TestBrowserEvents(t *testing.T) {
	tests := []struct {
		name string
		send func() error
		want string
	}{
		{"bookmark", func() error { return BookmarkAdded("github.com") }, "Bookmarked github.com"},
		{"clear one", func() error { return HistoryCleared(1) }, "Cleared 1 history entry"},
		{"clear many", func() error { return HistoryCleared(12) }, "Cleared 12 history entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := install(t, nil)

			if err := tt.send(); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			if mock.calls[0].title != AppName {
				t.Errorf("title = %q, want %q", mock.calls[0].title, AppName)
			}
			if mock.calls[0].message != tt.want {
				t.Errorf("message = %q, want %q", mock.calls[0].message, tt.want)
			}
		})
	}
}

func TestResetNotifier(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	ResetNotifier()

	mu.Lock()
	defer mu.Unlock()
	if notify == nil {
		t.Fatal("ResetNotifier left a nil backend")
	}
	if len(mock.calls) != 0 {
		t.Error("reset should not invoke the previous notifier")
	}
}
