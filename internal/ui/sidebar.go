package ui

import (
	"strings"

	"folio/internal/ui/textutil"
	"folio/internal/viewstate"
)

// RenderSidebar draws the desktop navigation column: one icon per section and, beside
// the hovered icon, its label as a tooltip.
func RenderSidebar(state viewstate.State, height int) string {
	rows := max(height, sidebarRow(viewstate.SectionContact, height)+1)
	lines := make([]string, rows)
	for i := range lines {
		lines[i] = strings.Repeat(" ", sidebarIconWidth+tooltipWidth)
	}
	for _, s := range viewstate.Sections() {
		icon := textutil.PadRightVisual(" "+s.Icon(), sidebarIconWidth)
		style := Styles.IconNormal
		hovered := state.HoveredLabel() != "" && state.HoveredLabel() == s.Label()
		switch {
		case state.Is(s):
			style = Styles.IconActive
		case hovered:
			style = Styles.IconHovered
		}
		tip := strings.Repeat(" ", tooltipWidth)
		if hovered {
			tip = Styles.Tooltip.Render(textutil.PadRightVisual(" "+s.Label(), tooltipWidth))
		}
		lines[sidebarRow(s, height)] = style.Render(icon) + tip
	}
	return Styles.Sidebar.Render(strings.Join(lines[:max(height, 1)], "\n"))
}
