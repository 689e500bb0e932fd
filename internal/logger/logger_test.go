package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// setupTestLogger creates a temp log file and initializes the logger with it.
func setupTestLogger(t *testing.T) string {
	t.Helper()
	Reset()

	logPath := filepath.Join(t.TempDir(), "test-debug.log")
	if err := Init(logPath); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	t.Cleanup(Reset)
	return logPath
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read log file: %v", err)
	}
	return string(content)
}

func TestLevels_Formatting(t *testing.T) {
	setupTestLogger(t)

	Debug("integer: %d", 123)
	Info("string: %s", "hello")
	Warn("float: %.2f", 3.14159)
	Error("multiple: %s=%d", "count", 5)
}

func TestDebugSuppressedAtInfo(t *testing.T) {
	path := setupTestLogger(t)

	Debug("hidden-debug-marker")
	Info("visible-info-marker")

	content := readLog(t, path)
	if strings.Contains(content, "hidden-debug-marker") {
		t.Error("debug message should not be written at info level")
	}
	if !strings.Contains(content, "visible-info-marker") {
		t.Error("info message should be written")
	}
}

func TestSetDebug_EnablesDebug(t *testing.T) {
	path := setupTestLogger(t)
	SetDebug(true)

	Debug("debug-unique-12345")

	if !strings.Contains(readLog(t, path), "debug-unique-12345") {
		t.Error("log file should contain the debug message")
	}
}

func TestWithComponent(t *testing.T) {
	path := setupTestLogger(t)

	WithComponent("browser").Info("tab opened", "id", "tab-1")

	content := readLog(t, path)
	if !strings.Contains(content, "component=browser") {
		t.Errorf("expected component attribute in log, got %q", content)
	}
	if !strings.Contains(content, "id=tab-1") {
		t.Errorf("expected id attribute in log, got %q", content)
	}
}

func TestPath(t *testing.T) {
	path := setupTestLogger(t)
	if got := Path(); got != path {
		t.Errorf("Path() = %q, want %q", got, path)
	}
}

func TestInit_SecondCallIsNoop(t *testing.T) {
	path := setupTestLogger(t)

	other := filepath.Join(t.TempDir(), "other.log")
	if err := Init(other); err != nil {
		t.Fatalf("second Init returned error: %v", err)
	}
	if Path() != path {
		t.Errorf("second Init should not switch files, got %q", Path())
	}
}

func TestInit_BadPath(t *testing.T) {
	Reset()
	defer Reset()

	if err := Init("/nonexistent/dir/veneer.log"); err == nil {
		t.Error("expected error for unwritable path")
	}
}

func TestReset(t *testing.T) {
	tmpDir := t.TempDir()
	logPath1 := filepath.Join(tmpDir, "log1.log")
	logPath2 := filepath.Join(tmpDir, "log2.log")

	Reset()
	if err := Init(logPath1); err != nil {
		t.Fatalf("Failed to init logger: %v", err)
	}
	Info("message to log1")

	Reset()
	if err := Init(logPath2); err != nil {
		t.Fatalf("Failed to reinit logger: %v", err)
	}
	Info("message to log2")
	Reset()

	content1 := readLog(t, logPath1)
	content2 := readLog(t, logPath2)
	if !strings.Contains(content1, "message to log1") || strings.Contains(content1, "message to log2") {
		t.Errorf("log1 has wrong content: %q", content1)
	}
	if !strings.Contains(content2, "message to log2") || strings.Contains(content2, "message to log1") {
		t.Errorf("log2 has wrong content: %q", content2)
	}
}

func TestConcurrentLogging(t *testing.T) {
	setupTestLogger(t)

	done := make(chan bool)
	for i := 0; i < 10; i++ {
		go func(n int) {
			for j := 0; j < 100; j++ {
				Info("concurrent test %d-%d", n, j)
			}
			done <- true
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}

func TestClose_NoPanicWhenCalledTwice(t *testing.T) {
	setupTestLogger(t)
	Close()
	Close()
	// Logging after close is dropped silently
	Info("after close")
}
