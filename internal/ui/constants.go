package ui

// Layout constants for panel sizing
const (
	// HeaderHeight is the height of the header in lines
	HeaderHeight = 1

	// TabStripHeight is the height of the tab strip in lines
	TabStripHeight = 1

	// URLBarHeight is the address bar height including its border
	URLBarHeight = 3

	// FooterHeight is the height of the footer in lines
	FooterHeight = 1

	// BorderSize is the total border width (1 on each side)
	BorderSize = 2

	// PanelWidthRatio is the denominator for side panel width (1/3 of total width)
	PanelWidthRatio = 3

	// TitleHeight is the height of panel titles
	TitleHeight = 1

	// SearchHeight is the height of the search line in list panels
	SearchHeight = 1

	// RowHeight is the number of lines a bookmark or history row takes
	RowHeight = 2

	// TabMaxWidth caps the rendered width of a single tab title
	TabMaxWidth = 22

	// URLCharLimit is the longest url the address bar accepts
	URLCharLimit = 2048
)

// Terminal size floor; smaller terminals are laid out as if they were this big.
const (
	MinTerminalWidth  = 60
	MinTerminalHeight = 16
)

// Modal dimensions
const (
	// ModalWidth is the default width of modals
	ModalWidth = 60

	// ModalWidthWide is used by the settings, source and log modals
	ModalWidthWide = 90

	// ModalInputCharLimit is the character limit for modal text inputs
	ModalInputCharLimit = 256

	// ModalInputWidth is the width of modal text inputs
	ModalInputWidth = 50

	// HelpModalMaxVisible is the number of rows the help list shows
	HelpModalMaxVisible = 18
)
