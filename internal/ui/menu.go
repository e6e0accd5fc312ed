package ui

import (
	"strings"

	"folio/internal/viewstate"
)

// RenderHeader draws the mobile top bar: the menu button and the owner's name.
func RenderHeader(name string, width int) string {
	bar := Styles.MenuButton.Render(menuButtonLabel) + "  " + Styles.Header.Render(name)
	return Styles.Normal.MaxWidth(max(width, 1)).Render(bar)
}

// RenderMenu draws the full-screen mobile menu listing every section. cursor marks the
// item Enter would select; the active section is highlighted.
func RenderMenu(state viewstate.State, cursor int) string {
	var b strings.Builder
	b.WriteString("\n")
	for i, s := range viewstate.Sections() {
		marker := "  "
		if i == cursor {
			marker = Styles.MenuCursor.Render("› ")
		}
		style := Styles.MenuItem
		if state.Is(s) {
			style = Styles.MenuActive
		}
		b.WriteString(marker + style.Render(s.Icon()+"  "+s.Label()))
		if i < len(viewstate.Sections())-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
