package ui

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/zhubert/veneer/internal/ui/modals"
)

// Theme defines a complete color palette for the application.
type Theme struct {
	// Name is the display name of the theme
	Name string

	// Primary is the accent color (focus, highlights, active tab)
	Primary string
	// Secondary is used for key hints and info
	Secondary string

	// Background colors
	Bg         string // Main background
	BgSelected string // Selected row background (defaults to Primary if empty)
	Surface    string // Page card background

	// Text colors
	Text        string // Primary text
	TextMuted   string // Secondary/muted text
	TextInverse string // Text on colored backgrounds

	// Semantic colors
	Warning string
	Error   string
	Success string
	Info    string

	// Border colors
	Border      string // Default borders
	BorderFocus string // Focused element borders (defaults to Primary if empty)

	// CodeStyle is the chroma style used for view-source
	CodeStyle string
}

// GetBgSelected returns the selected background color, defaulting to Primary
func (t Theme) GetBgSelected() string {
	if t.BgSelected != "" {
		return t.BgSelected
	}
	return t.Primary
}

// GetBorderFocus returns the focused border color, defaulting to Primary
func (t Theme) GetBorderFocus() string {
	if t.BorderFocus != "" {
		return t.BorderFocus
	}
	return t.Primary
}

// ThemeName is a type for theme identifiers
type ThemeName string

// Available theme names. They match the browser's light/dark preference.
const (
	ThemeLight ThemeName = "light"
	ThemeDark  ThemeName = "dark"
)

// DefaultTheme is the default theme name
const DefaultTheme = ThemeLight

// BuiltinThemes contains all built-in themes
var BuiltinThemes = map[ThemeName]Theme{
	ThemeLight: {
		Name:        "Light",
		Primary:     "#2563EB",
		Secondary:   "#0891B2",
		Bg:          "#FFFFFF",
		BgSelected:  "#DBEAFE",
		Surface:     "#F3F4F6",
		Text:        "#111827",
		TextMuted:   "#6B7280",
		TextInverse: "#FFFFFF",
		Warning:     "#D97706",
		Error:       "#DC2626",
		Success:     "#16A34A",
		Info:        "#0891B2",
		Border:      "#D1D5DB",
		CodeStyle:   "github",
	},
	ThemeDark: {
		Name:        "Dark",
		Primary:     "#3B82F6",
		Secondary:   "#22D3EE",
		Bg:          "#111827",
		BgSelected:  "#1E3A8A",
		Surface:     "#1F2937",
		Text:        "#F9FAFB",
		TextMuted:   "#9CA3AF",
		TextInverse: "#111827",
		Warning:     "#F59E0B",
		Error:       "#EF4444",
		Success:     "#10B981",
		Info:        "#06B6D4",
		Border:      "#374151",
		CodeStyle:   "monokai",
	},
}

// ThemeNames returns a list of all available theme names in display order
func ThemeNames() []ThemeName {
	return []ThemeName{ThemeLight, ThemeDark}
}

// GetTheme returns a theme by name, defaulting to Light if not found
func GetTheme(name ThemeName) Theme {
	if theme, ok := BuiltinThemes[ThemeName(strings.ToLower(string(name)))]; ok {
		return theme
	}
	return BuiltinThemes[DefaultTheme]
}

var (
	currentThemeName = DefaultTheme
	currentAccent    string
	currentTheme     = BuiltinThemes[DefaultTheme]
)

// CurrentTheme returns the active palette, with the accent applied.
func CurrentTheme() Theme {
	return currentTheme
}

// CurrentThemeName returns the name of the current theme
func CurrentThemeName() ThemeName {
	return currentThemeName
}

// CurrentAccent returns the accent override, or "" when the theme's own
// primary color is in use.
func CurrentAccent() string {
	return currentAccent
}

// SetTheme sets the active theme and regenerates all styles
func SetTheme(name ThemeName) {
	if _, ok := BuiltinThemes[ThemeName(strings.ToLower(string(name)))]; ok {
		currentThemeName = ThemeName(strings.ToLower(string(name)))
	} else {
		currentThemeName = DefaultTheme
	}
	applyPalette()
}

// SetThemeByName sets the active theme by string name
func SetThemeByName(name string) {
	SetTheme(ThemeName(name))
}

// SetAccent replaces the primary color of every theme. An empty accent
// restores the theme's own primary.
func SetAccent(accent string) {
	currentAccent = accent
	applyPalette()
}

func applyPalette() {
	t := GetTheme(currentThemeName)
	if currentAccent != "" {
		t.Primary = currentAccent
		t.BorderFocus = currentAccent
	}
	currentTheme = t
	regenerateStyles()
}

func init() {
	modals.ModalWidth = ModalWidth
	modals.ModalWidthWide = ModalWidthWide
	modals.ModalInputWidth = ModalInputWidth
	modals.ModalInputCharLimit = ModalInputCharLimit
	modals.HelpModalMaxVisible = HelpModalMaxVisible

	regenerateStyles()
}

// regenerateStyles updates all style variables based on the current theme
func regenerateStyles() {
	t := currentTheme

	ColorPrimary = lipgloss.Color(t.Primary)
	ColorSecondary = lipgloss.Color(t.Secondary)
	ColorBorder = lipgloss.Color(t.Border)
	ColorBorderFocus = lipgloss.Color(t.GetBorderFocus())
	ColorBg = lipgloss.Color(t.Bg)
	ColorSurface = lipgloss.Color(t.Surface)
	ColorText = lipgloss.Color(t.Text)
	ColorTextMuted = lipgloss.Color(t.TextMuted)
	ColorTextInverse = lipgloss.Color(t.TextInverse)
	ColorWarning = lipgloss.Color(t.Warning)
	ColorInfo = lipgloss.Color(t.Info)
	ColorError = lipgloss.Color(t.Error)
	ColorSuccess = lipgloss.Color(t.Success)

	// Header
	HeaderStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorPrimary).
		Padding(0, 1)

	// Footer
	FooterStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FooterKeyStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorSecondary)

	FooterDescStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	// Tab strip
	TabStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	TabActiveStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	TabNewStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Padding(0, 1)

	// Address bar
	URLBarStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	URLBarFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus).
		Padding(0, 1)

	NavArrowStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)

	NavArrowDisabledStyle = lipgloss.NewStyle().
		Foreground(ColorBorder)

	// Panels
	PanelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder)

	PanelFocusedStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorderFocus)

	PanelTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		Padding(0, 1)

	PanelTabStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	PanelTabActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Underline(true).
		Padding(0, 1)

	SidebarItemStyle = lipgloss.NewStyle().
		Padding(0, 1)

	SidebarSelectedStyle = lipgloss.NewStyle().
		Background(lipgloss.Color(t.GetBgSelected())).
		Foreground(ColorText).
		Bold(true).
		Padding(0, 1)

	ItemURLStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Padding(0, 1)

	FolderBadgeStyle = lipgloss.NewStyle().
		Foreground(ColorTextInverse).
		Background(ColorSecondary).
		Padding(0, 1)

	EmptyStateStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		Padding(0, 1)

	StatLabelStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted)

	StatValueStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Bold(true)

	ThemeOptionStyle = lipgloss.NewStyle().
		Foreground(ColorText).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Padding(0, 1)

	ThemeOptionActiveStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Bold(true).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(0, 1)

	// Page
	PageCardStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBorder).
		Background(ColorSurface).
		Padding(1, 4).
		Align(lipgloss.Center)

	PageTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorText).
		Background(ColorSurface)

	PageURLStyle = lipgloss.NewStyle().
		Foreground(ColorPrimary).
		Background(ColorSurface)

	PageTextStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Background(ColorSurface)

	// Modals
	ModalStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorPrimary).
		Padding(1, 2).
		Width(ModalWidth)

	ModalTitleStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(ColorPrimary).
		MarginBottom(1)

	ModalHelpStyle = lipgloss.NewStyle().
		Foreground(ColorTextMuted).
		Italic(true).
		MarginTop(1)

	StatusErrorStyle = lipgloss.NewStyle().
		Foreground(ColorError).
		Bold(true)

	modals.SetStyles(
		ModalTitleStyle, ModalHelpStyle, StatusErrorStyle,
		ColorPrimary, ColorSecondary, ColorText, ColorTextMuted, ColorTextInverse, ColorWarning,
		t.CodeStyle,
	)
}
