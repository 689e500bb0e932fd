// Package scenarios contains built-in demo scenarios for veneer.
package scenarios

import (
	"time"

	"github.com/zhubert/veneer/internal/demo"
)

// Basic walks through everyday browsing:
// - Opening a second tab and typing an address
// - Bookmarking the page and finding it again with search
// - Switching to the dark theme and opening the help overlay
var Basic = &demo.Scenario{
	Name:        "basic",
	Description: "Open a tab, browse, bookmark and search",
	Width:       120,
	Height:      40,
	Setup:       demo.DefaultSetup(),
	Steps: demo.Sequence(
		[]demo.Step{
			demo.Annotate("A browser shell in your terminal"),
			demo.Wait(1 * time.Second),

			demo.KeyWithDesc("t", "open a new tab"),
			demo.Wait(500 * time.Millisecond),
		},
		demo.Visit("https://github.com/zhubert"),
		[]demo.Step{
			demo.Annotate("Titles come from the address"),
			demo.Wait(800 * time.Millisecond),

			demo.KeyWithDesc("b", "bookmark the page"),
			demo.Wait(800 * time.Millisecond),

			demo.KeyWithDesc("/", "search bookmarks"),
			demo.TypeWithDesc("git", "filter by text"),
			demo.Annotate("Search filters by title or address"),
			demo.Wait(1 * time.Second),

			demo.KeyWithDesc("enter", "move into the list"),
			demo.KeyWithDesc("down", "select the new bookmark"),
			demo.Wait(500 * time.Millisecond),
			demo.KeyWithDesc("enter", "open it"),
			demo.Wait(800 * time.Millisecond),

			demo.KeyWithDesc("T", "toggle theme"),
			demo.Annotate("Dark theme"),
			demo.Wait(1 * time.Second),

			demo.KeyWithDesc("?", "show help"),
			demo.Wait(1500 * time.Millisecond),
			demo.Key("esc"),
			demo.Wait(500 * time.Millisecond),
		},
	),
}

// All returns all available scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Basic,
		Comprehensive,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
