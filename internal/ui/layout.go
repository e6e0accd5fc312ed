package ui

import "folio/internal/viewstate"

// Screen geometry shared by rendering and mouse hit-testing.
const (
	// Desktop sidebar: one icon per row, separated by a blank row, below a top margin.
	// The tooltip column fits the longest label plus a leading space; the extra column
	// is the sidebar's right border.
	sidebarTop       = 1
	sidebarSpacing   = 2
	sidebarIconWidth = 3
	tooltipWidth     = 12
	sidebarWidth     = sidebarIconWidth + tooltipWidth + 1

	// Mobile: a one-row header holding the menu button, then the body or the menu.
	headerHeight    = 1
	menuButtonLabel = "☰ Menu"
	menuTop         = headerHeight + 1 // first menu item row

	footerHeight = 1
)

// sidebarStep is the row distance between icons in a sidebar height rows tall. Icons
// drop their blank separator rows when the spaced layout does not fit.
func sidebarStep(height int) int {
	last := len(viewstate.Sections()) - 1
	if sidebarTop+last*sidebarSpacing < height {
		return sidebarSpacing
	}
	return 1
}

// sidebarRow returns the screen row of section's icon in a sidebar height rows tall.
func sidebarRow(s viewstate.Section, height int) int {
	return sidebarTop + int(s)*sidebarStep(height)
}

// sidebarHit maps a screen cell to the sidebar icon under it. Rows at or below height
// are not drawn and never hit.
func sidebarHit(x, y, height int) (viewstate.Section, bool) {
	if x < 0 || x >= sidebarIconWidth || y < 0 || y >= height {
		return 0, false
	}
	for _, s := range viewstate.Sections() {
		if sidebarRow(s, height) == y {
			return s, true
		}
	}
	return 0, false
}

// menuButtonHit reports whether a screen cell is on the mobile menu button.
func menuButtonHit(x, y int) bool {
	return y == 0 && x >= 0 && x < len([]rune(menuButtonLabel))
}

// menuHit maps a screen row in the open mobile menu to its section.
func menuHit(y int) (viewstate.Section, bool) {
	i := y - menuTop
	if i < 0 {
		return 0, false
	}
	secs := viewstate.Sections()
	if i >= len(secs) {
		return 0, false
	}
	return secs[i], true
}

// bodySize returns the space left for the active section view.
func bodySize(state viewstate.State, width, height int) (int, int) {
	if state.IsMobile() {
		return max(width, 0), max(height-headerHeight-footerHeight, 0)
	}
	return max(width-sidebarWidth, 0), max(height-footerHeight, 0)
}
