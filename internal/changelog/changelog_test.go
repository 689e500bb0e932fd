package changelog

import (
	"bytes"
	"testing"
)

const sample = `# Changelog

Intro text that is not a change.

## v1.2.0 (2026-02-01)
- Added a thing
- Fixed another thing

## 1.1.0
- Older change
  ignored continuation line

## v1.0.0 (2026-01-01)
`

func TestParse(t *testing.T) {
	entries := Parse(sample)
	if len(entries) != 3 {
		t.Fatalf("Parse() returned %d entries, want 3", len(entries))
	}

	tests := []struct {
		version string
		date    string
		changes int
	}{
		{"1.2.0", "2026-02-01", 2},
		{"1.1.0", "", 1},
		{"1.0.0", "2026-01-01", 0},
	}
	for i, tt := range tests {
		e := entries[i]
		if e.Version != tt.version || e.Date != tt.date || len(e.Changes) != tt.changes {
			t.Errorf("entry %d = %+v, want version %s date %q with %d changes", i, e, tt.version, tt.date, tt.changes)
		}
	}
	if entries[0].Changes[1] != "Fixed another thing" {
		t.Errorf("change text = %q", entries[0].Changes[1])
	}
}

func TestParse_Empty(t *testing.T) {
	if got := Parse("no versions here\n- stray bullet"); len(got) != 0 {
		t.Errorf("Parse() = %+v, want none", got)
	}
}

func TestEmbeddedChangelog(t *testing.T) {
	entries := Entries()
	if len(entries) == 0 {
		t.Fatal("embedded changelog has no entries")
	}
	for i := 1; i < len(entries); i++ {
		if CompareVersions(entries[i-1].Version, entries[i].Version) <= 0 {
			t.Errorf("entries out of order: %s before %s", entries[i-1].Version, entries[i].Version)
		}
	}
	for _, e := range entries {
		if len(e.Changes) == 0 {
			t.Errorf("v%s has no changes", e.Version)
		}
	}
}

func TestCompareVersions(t *testing.T) {
	tests := []struct {
		a, b string
		want int
	}{
		{"1.0.0", "1.0.0", 0},
		{"v1.0.0", "1.0.0", 0},
		{"1.0.1", "1.0.0", 1},
		{"1.0.0", "1.1.0", -1},
		{"2.0.0", "1.9.9", 1},
		{"0.10.0", "0.9.0", 1},
		{"1.2", "1.2.0", 0},
		{"1.2.0-rc.1", "1.2.0", 0},
	}
	for _, tt := range tests {
		if got := CompareVersions(tt.a, tt.b); got != tt.want {
			t.Errorf("CompareVersions(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestParseVersion(t *testing.T) {
	tests := []struct {
		in     string
		want   [3]int
		wantOK bool
	}{
		{"1.2.3", [3]int{1, 2, 3}, true},
		{"v0.3.0", [3]int{0, 3, 0}, true},
		{"2", [3]int{2, 0, 0}, true},
		{"1.2.3-beta", [3]int{1, 2, 3}, true},
		{"dev", [3]int{}, false},
		{"", [3]int{}, false},
	}
	for _, tt := range tests {
		got, ok := parseVersion(tt.in)
		if ok != tt.wantOK || (ok && got != tt.want) {
			t.Errorf("parseVersion(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestSince(t *testing.T) {
	entries := Parse(sample)

	tests := []struct {
		version string
		want    int
	}{
		{"", 3},
		{"dev", 3},
		{"1.0.0", 2},
		{"v1.1.0", 1},
		{"1.2.0", 0},
		{"9.0.0", 0},
	}
	for _, tt := range tests {
		if got := Since(tt.version, entries); len(got) != tt.want {
			t.Errorf("Since(%q) returned %d entries, want %d", tt.version, len(got), tt.want)
		}
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, Parse(sample)[:2]); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	want := "v1.2.0 (2026-02-01)\n  - Added a thing\n  - Fixed another thing\n\nv1.1.0\n  - Older change\n"
	if buf.String() != want {
		t.Errorf("Write() =\n%q\nwant\n%q", buf.String(), want)
	}
}
