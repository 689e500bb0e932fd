// Package changelog parses the release notes embedded in the binary.
package changelog

import (
	_ "embed"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

//go:embed CHANGELOG.md
var Content string

// Entry is one released version and its notes.
type Entry struct {
	Version string
	Date    string
	Changes []string
}

// versionRegex matches headers like "## v0.3.0 (2026-09-28)" or "## 0.3.0"
var versionRegex = regexp.MustCompile(`^##\s+v?(\d+\.\d+\.\d+)(?:\s+\(([^)]+)\))?`)

// Parse extracts entries from markdown, newest first as written.
func Parse(content string) []Entry {
	var entries []Entry
	var current *Entry

	for line := range strings.Lines(content) {
		line = strings.TrimSpace(line)

		if m := versionRegex.FindStringSubmatch(line); m != nil {
			if current != nil {
				entries = append(entries, *current)
			}
			current = &Entry{Version: m[1], Date: m[2]}
			continue
		}

		if current == nil {
			continue
		}
		if change, ok := strings.CutPrefix(line, "- "); ok {
			current.Changes = append(current.Changes, change)
		}
	}

	if current != nil {
		entries = append(entries, *current)
	}
	return entries
}

// Entries returns the embedded changelog.
func Entries() []Entry {
	return Parse(Content)
}

// Since returns the entries newer than version. An empty or unparseable
// version ("dev") returns everything.
func Since(version string, entries []Entry) []Entry {
	if _, ok := parseVersion(version); !ok {
		return entries
	}

	var result []Entry
	for _, e := range entries {
		if CompareVersions(e.Version, version) > 0 {
			result = append(result, e)
		}
	}
	return result
}

// CompareVersions compares two semantic versions.
// Returns -1 if a < b, 0 if a == b, 1 if a > b.
func CompareVersions(a, b string) int {
	av, _ := parseVersion(a)
	bv, _ := parseVersion(b)

	for i := range 3 {
		switch {
		case av[i] < bv[i]:
			return -1
		case av[i] > bv[i]:
			return 1
		}
	}
	return 0
}

// parseVersion extracts [major, minor, patch], ignoring any "-suffix".
func parseVersion(v string) ([3]int, bool) {
	v = strings.TrimPrefix(strings.TrimSpace(v), "v")
	v, _, _ = strings.Cut(v, "-")

	var result [3]int
	parts := strings.Split(v, ".")
	if len(parts) == 0 || parts[0] == "" {
		return result, false
	}
	for i := 0; i < 3 && i < len(parts); i++ {
		n, err := strconv.Atoi(parts[i])
		if err != nil {
			return result, false
		}
		result[i] = n
	}
	return result, true
}

// Write prints entries as plain text.
func Write(w io.Writer, entries []Entry) error {
	for i, e := range entries {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		header := "v" + e.Version
		if e.Date != "" {
			header += " (" + e.Date + ")"
		}
		if _, err := fmt.Fprintln(w, header); err != nil {
			return err
		}
		for _, c := range e.Changes {
			if _, err := fmt.Fprintf(w, "  - %s\n", c); err != nil {
				return err
			}
		}
	}
	return nil
}
