package ui

import (
	"sync"

	"github.com/zhubert/veneer/internal/logger"
)

// ViewContext holds centralized layout calculations.
// All size calculations should go through this to avoid duplication.
type ViewContext struct {
	// Terminal dimensions
	TerminalWidth  int
	TerminalHeight int

	// Calculated dimensions
	HeaderHeight   int
	TabStripHeight int
	URLBarHeight   int
	FooterHeight   int
	ContentHeight  int
	PanelWidth     int
	PageWidth      int

	mu sync.Mutex
}

var ctx *ViewContext
var ctxOnce sync.Once

// GetViewContext returns the singleton ViewContext instance
func GetViewContext() *ViewContext {
	ctxOnce.Do(func() {
		ctx = &ViewContext{
			HeaderHeight:   HeaderHeight,
			TabStripHeight: TabStripHeight,
			URLBarHeight:   URLBarHeight,
			FooterHeight:   FooterHeight,
		}
		logger.WithComponent("ui").Debug("ViewContext initialized")
	})
	return ctx
}

// UpdateTerminalSize recalculates all dimensions when terminal size changes.
// It should be called from the main event loop when the terminal is resized.
func (v *ViewContext) UpdateTerminalSize(width, height int) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if width < MinTerminalWidth {
		width = MinTerminalWidth
	}
	if height < MinTerminalHeight {
		height = MinTerminalHeight
	}

	v.TerminalWidth = width
	v.TerminalHeight = height

	v.HeaderHeight = HeaderHeight
	v.TabStripHeight = TabStripHeight
	v.URLBarHeight = URLBarHeight
	v.FooterHeight = FooterHeight

	// Page and side panel share everything below the address bar
	v.ContentHeight = height - v.HeaderHeight - v.TabStripHeight - v.URLBarHeight - v.FooterHeight

	v.PanelWidth = width / PanelWidthRatio
	v.PageWidth = width - v.PanelWidth

	logger.WithComponent("ui").Debug("Terminal size updated",
		"width", width,
		"height", height,
		"contentHeight", v.ContentHeight,
		"panelWidth", v.PanelWidth,
		"pageWidth", v.PageWidth,
	)
}

// InnerWidth returns the usable width inside a panel with borders
func (v *ViewContext) InnerWidth(panelWidth int) int {
	return panelWidth - BorderSize
}

// InnerHeight returns the usable height inside a panel with borders
func (v *ViewContext) InnerHeight(panelHeight int) int {
	return panelHeight - BorderSize
}
