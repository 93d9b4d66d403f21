package ui

// Layout constants for consistent spacing and dimensions.
const (
	SidebarWidth = 20

	ContentHorizontalPadding = 4
	StatusBarHeight          = 1

	// Deduction page split
	FormPaneRatio    = 0.5
	PreviewPaneRatio = 0.5
	PaneDivider      = 2

	GaugeWidth = 30

	RecentRecordCount = 5

	MinimumTerminalWidth  = 80
	MinimumTerminalHeight = 20
)

// ContentWidth returns the usable page width for a terminal width.
func ContentWidth(terminalWidth int) int {
	w := terminalWidth - SidebarWidth - ContentHorizontalPadding
	if w < 20 {
		w = 20
	}
	return w
}

// ContentHeight returns the usable page height for a terminal height.
func ContentHeight(terminalHeight int) int {
	h := terminalHeight - StatusBarHeight - 1
	if h < 5 {
		h = 5
	}
	return h
}

// SplitPaneWidths calculates the form and preview pane widths for the
// deduction page.
func SplitPaneWidths(totalWidth int) (formWidth, previewWidth int) {
	formWidth = int(float64(totalWidth) * FormPaneRatio)
	previewWidth = totalWidth - formWidth - PaneDivider
	return
}
