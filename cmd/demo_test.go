package cmd

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/zhubert/veneer/internal/demo/scenarios"
)

func TestDemoList(t *testing.T) {
	out, err := execute(t, "demo", "list")
	if err != nil {
		t.Fatalf("demo list error = %v", err)
	}
	for _, s := range scenarios.All() {
		if !strings.Contains(out, s.Name) || !strings.Contains(out, s.Description) {
			t.Errorf("scenario %q missing from:\n%s", s.Name, out)
		}
	}
}

func TestGetScenario(t *testing.T) {
	t.Cleanup(func() { demoWidth, demoHeight = 120, 40 })

	if _, err := getScenario("nonexistent"); err == nil {
		t.Error("getScenario should fail for an unknown name")
	}

	demoWidth, demoHeight = 90, 30
	s, err := getScenario("basic")
	if err != nil {
		t.Fatalf("getScenario() error = %v", err)
	}
	if s.Width != 90 || s.Height != 30 {
		t.Errorf("size = %dx%d, want 90x30", s.Width, s.Height)
	}
	if scenarios.Basic.Width != 120 {
		t.Errorf("overrides leaked into the shared scenario: width %d", scenarios.Basic.Width)
	}
}

func TestDemoRun(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "frames.txt")

	if _, err := execute(t, "demo", "run", "basic", "-o", outFile, "-w", "100", "-H", "30"); err != nil {
		t.Fatalf("demo run error = %v", err)
	}

	data, err := os.ReadFile(outFile)
	if err != nil {
		t.Fatal(err)
	}
	text := string(data)
	if !strings.HasPrefix(text, "Captured ") {
		t.Errorf("unexpected output start: %q", text[:min(len(text), 40)])
	}
	if !strings.Contains(text, "=== Frame 0 (delay: 500ms) ===") {
		t.Error("first frame header missing")
	}
	if !strings.Contains(text, "Annotation: A browser shell in your terminal") {
		t.Error("annotation missing")
	}
}

func TestDemoRun_UnknownScenario(t *testing.T) {
	if _, err := execute(t, "demo", "run", "nonexistent"); err == nil {
		t.Error("demo run should fail for an unknown scenario")
	}
}

func TestDemoCast(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "basic.cast")

	out, err := execute(t, "demo", "cast", "basic", "-o", outFile)
	if err != nil {
		t.Fatalf("demo cast error = %v", err)
	}
	if !strings.Contains(out, "Generated "+outFile) {
		t.Errorf("output = %q", out)
	}

	f, err := os.Open(outFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 1024*1024), 16*1024*1024)
	if !scanner.Scan() {
		t.Fatal("cast file is empty")
	}
	var header struct {
		Version int    `json:"version"`
		Width   int    `json:"width"`
		Height  int    `json:"height"`
		Title   string `json:"title"`
	}
	if err := json.Unmarshal(scanner.Bytes(), &header); err != nil {
		t.Fatalf("header: %v", err)
	}
	if header.Version != 2 || header.Width != 120 || header.Height != 40 {
		t.Errorf("header = %+v", header)
	}
	if !strings.HasPrefix(header.Title, "veneer: ") {
		t.Errorf("title = %q", header.Title)
	}

	events := 0
	for scanner.Scan() {
		events++
	}
	if events == 0 {
		t.Error("cast file has no events")
	}
}
