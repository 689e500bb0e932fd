package ui

import (
	"sync"
	"testing"
)

func TestGetViewContext_Singleton(t *testing.T) {
	if GetViewContext() != GetViewContext() {
		t.Error("GetViewContext should return the same instance")
	}
}

func TestViewContext_UpdateTerminalSize(t *testing.T) {
	ctx := GetViewContext()
	ctx.UpdateTerminalSize(120, 40)

	if ctx.TerminalWidth != 120 || ctx.TerminalHeight != 40 {
		t.Errorf("terminal = %dx%d, want 120x40", ctx.TerminalWidth, ctx.TerminalHeight)
	}

	wantContent := 40 - HeaderHeight - TabStripHeight - URLBarHeight - FooterHeight
	if ctx.ContentHeight != wantContent {
		t.Errorf("ContentHeight = %d, want %d", ctx.ContentHeight, wantContent)
	}

	if ctx.PanelWidth != 120/PanelWidthRatio {
		t.Errorf("PanelWidth = %d, want %d", ctx.PanelWidth, 120/PanelWidthRatio)
	}
	if ctx.PanelWidth+ctx.PageWidth != 120 {
		t.Errorf("page %d + panel %d should fill the width", ctx.PageWidth, ctx.PanelWidth)
	}
}

func TestViewContext_ClampsSmallTerminals(t *testing.T) {
	ctx := GetViewContext()
	ctx.UpdateTerminalSize(10, 3)

	if ctx.TerminalWidth != MinTerminalWidth {
		t.Errorf("width = %d, want %d", ctx.TerminalWidth, MinTerminalWidth)
	}
	if ctx.TerminalHeight != MinTerminalHeight {
		t.Errorf("height = %d, want %d", ctx.TerminalHeight, MinTerminalHeight)
	}
	if ctx.ContentHeight <= 0 {
		t.Errorf("ContentHeight = %d, want positive", ctx.ContentHeight)
	}
}

func TestViewContext_InnerDimensions(t *testing.T) {
	ctx := GetViewContext()

	tests := []struct {
		size int
		want int
	}{
		{40, 40 - BorderSize},
		{10, 10 - BorderSize},
		{BorderSize, 0},
	}

	for _, tt := range tests {
		if got := ctx.InnerWidth(tt.size); got != tt.want {
			t.Errorf("InnerWidth(%d) = %d, want %d", tt.size, got, tt.want)
		}
		if got := ctx.InnerHeight(tt.size); got != tt.want {
			t.Errorf("InnerHeight(%d) = %d, want %d", tt.size, got, tt.want)
		}
	}
}

func TestViewContext_ConcurrentResize(t *testing.T) {
	ctx := GetViewContext()

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			ctx.UpdateTerminalSize(80+i, 24+i)
		}(i)
	}
	wg.Wait()

	ctx.UpdateTerminalSize(100, 30)
	if ctx.TerminalWidth != 100 {
		t.Errorf("TerminalWidth = %d after final resize", ctx.TerminalWidth)
	}
}
