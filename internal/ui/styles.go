package ui

import (
	"image/color"

	"charm.land/lipgloss/v2"
)

// Color palette, rebuilt from the current theme by regenerateStyles.
var (
	ColorPrimary     color.Color
	ColorSecondary   color.Color
	ColorBorder      color.Color
	ColorBorderFocus color.Color
	ColorBg          color.Color
	ColorSurface     color.Color
	ColorText        color.Color
	ColorTextMuted   color.Color
	ColorTextInverse color.Color
	ColorWarning     color.Color
	ColorInfo        color.Color
	ColorError       color.Color
	ColorSuccess     color.Color
)

// Header and footer styles
var (
	HeaderStyle     lipgloss.Style
	FooterStyle     lipgloss.Style
	FooterKeyStyle  lipgloss.Style
	FooterDescStyle lipgloss.Style
)

// Tab strip and address bar styles
var (
	TabStyle              lipgloss.Style
	TabActiveStyle        lipgloss.Style
	TabNewStyle           lipgloss.Style
	URLBarStyle           lipgloss.Style
	URLBarFocusedStyle    lipgloss.Style
	NavArrowStyle         lipgloss.Style
	NavArrowDisabledStyle lipgloss.Style
)

// Side panel styles
var (
	PanelStyle             lipgloss.Style
	PanelFocusedStyle      lipgloss.Style
	PanelTitleStyle        lipgloss.Style
	PanelTabStyle          lipgloss.Style
	PanelTabActiveStyle    lipgloss.Style
	SidebarItemStyle       lipgloss.Style
	SidebarSelectedStyle   lipgloss.Style
	ItemURLStyle           lipgloss.Style
	FolderBadgeStyle       lipgloss.Style
	EmptyStateStyle        lipgloss.Style
	StatLabelStyle         lipgloss.Style
	StatValueStyle         lipgloss.Style
	ThemeOptionStyle       lipgloss.Style
	ThemeOptionActiveStyle lipgloss.Style
)

// Placeholder page styles
var (
	PageCardStyle  lipgloss.Style
	PageTitleStyle lipgloss.Style
	PageURLStyle   lipgloss.Style
	PageTextStyle  lipgloss.Style
)

// Modal and status styles
var (
	ModalStyle       lipgloss.Style
	ModalTitleStyle  lipgloss.Style
	ModalHelpStyle   lipgloss.Style
	StatusErrorStyle lipgloss.Style
)
