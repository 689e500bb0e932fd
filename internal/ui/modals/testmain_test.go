package modals

import (
	"os"
	"testing"

	"charm.land/lipgloss/v2"
	"github.com/zhubert/veneer/internal/logger"
)

func TestMain(m *testing.M) {
	// Disable logging during tests to avoid polluting /tmp/veneer-debug.log
	logger.Reset()
	logger.Init(os.DevNull)

	base := lipgloss.NewStyle()
	SetStyles(base, base, base.Bold(true),
		lipgloss.Color("#2563EB"), lipgloss.Color("#0EA5E9"), lipgloss.Color("#111827"),
		lipgloss.Color("#6B7280"), lipgloss.Color("#FFFFFF"), lipgloss.Color("#D97706"),
		"github")

	ModalWidth = 80
	ModalWidthWide = 120
	ModalInputWidth = 72
	ModalInputCharLimit = 256
	HelpModalMaxVisible = 10

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}
