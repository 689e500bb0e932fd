package scenarios

import (
	"time"

	"github.com/zhubert/veneer/internal/demo"
	"github.com/zhubert/veneer/internal/ui"
)

// Comprehensive tours the rest of the chrome. The flow is:
// 1. Start from a homepage tab and visit two sites
// 2. Step back and forward through the tab's trail
// 3. Revisit a page from the history panel
// 4. Peek at the page source and the settings dialog
// 5. Clear history behind a confirmation
var Comprehensive = &demo.Scenario{
	Name:        "comprehensive",
	Description: "History, back/forward, view source, settings and clearing history",
	Width:       120,
	Height:      40,
	Setup: &demo.ScenarioSetup{
		SampleData: true,
		HomeURL:    "https://news.ycombinator.com",
		Accent:     "#7C3AED",
	},
	Steps: demo.Sequence(
		[]demo.Step{
			demo.Annotate("Starting from the homepage"),
			demo.Wait(1 * time.Second),
		},
		demo.Visit("https://go.dev"),
		[]demo.Step{demo.Wait(500 * time.Millisecond)},
		demo.Visit("https://pkg.go.dev/iter"),
		[]demo.Step{
			demo.Wait(800 * time.Millisecond),

			demo.KeyWithDesc("<", "go back"),
			demo.Annotate("Back and forward stay within the tab"),
			demo.Wait(800 * time.Millisecond),
			demo.KeyWithDesc(">", "go forward"),
			demo.Wait(500 * time.Millisecond),

			demo.KeyWithDesc("tab", "focus the side panel"),
			demo.KeyWithDesc("tab", "switch to history"),
			demo.Wait(800 * time.Millisecond),
			demo.KeyWithDesc("down", "pick an older visit"),
			demo.KeyWithDesc("enter", "revisit it"),
			demo.Annotate("Revisiting adds a new history entry"),
			demo.Wait(1 * time.Second),

			demo.KeyWithDesc("v", "view source"),
			demo.Wait(1500 * time.Millisecond),
			demo.Key("v"),

			demo.KeyWithDesc(",", "open settings"),
			demo.Wait(1500 * time.Millisecond),
			demo.Key("esc"),

			demo.KeyWithDesc("C", "clear history"),
			demo.Wait(1 * time.Second),
			demo.KeyWithDesc("y", "confirm"),
			demo.Wait(800 * time.Millisecond),

			demo.Flash("That's veneer", ui.FlashSuccess),
			demo.Wait(1 * time.Second),
		},
	),
}
