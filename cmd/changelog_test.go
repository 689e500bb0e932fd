package cmd

import (
	"strings"
	"testing"

	"github.com/zhubert/veneer/internal/changelog"
)

func TestChangelog(t *testing.T) {
	t.Cleanup(func() { changelogSince = "" })

	entries := changelog.Entries()
	if len(entries) < 2 {
		t.Skip("needs at least two releases")
	}
	newest, oldest := entries[0], entries[len(entries)-1]

	out, err := execute(t, "changelog")
	if err != nil {
		t.Fatalf("changelog error = %v", err)
	}
	if !strings.Contains(out, "v"+newest.Version) || !strings.Contains(out, "v"+oldest.Version) {
		t.Errorf("full changelog missing versions:\n%s", out)
	}

	out, err = execute(t, "changelog", "--since", oldest.Version)
	if err != nil {
		t.Fatalf("changelog --since error = %v", err)
	}
	if strings.Contains(out, "v"+oldest.Version+" ") {
		t.Errorf("--since should exclude %s:\n%s", oldest.Version, out)
	}

	out, err = execute(t, "changelog", "--since", newest.Version)
	if err != nil {
		t.Fatalf("changelog --since error = %v", err)
	}
	if !strings.Contains(out, "No changes since") {
		t.Errorf("output = %q", out)
	}
}
