// Package textutil measures and fits text by terminal column width.
package textutil

import "github.com/mattn/go-runewidth"

// Ellipsis marks truncated text.
const Ellipsis = "…"

// Width returns the number of terminal columns s occupies. s must not contain ANSI escapes.
func Width(s string) int {
	return runewidth.StringWidth(s)
}

// Truncate shortens s to at most maxWidth columns, ending in Ellipsis when cut.
func Truncate(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if Width(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, Ellipsis)
}

// PadRightVisual fits s to exactly targetWidth columns, padding with spaces or truncating.
func PadRightVisual(s string, targetWidth int) string {
	if Width(s) >= targetWidth {
		return Truncate(s, targetWidth)
	}
	return runewidth.FillRight(s, targetWidth)
}
