package ui

import "github.com/charmbracelet/lipgloss"

// Theme colors used throughout the UI
const (
	ColorAccent    = "86"  // Cyan/green - titles, active icon
	ColorHighlight = "205" // Magenta - selection, borders, tooltips
	ColorMuted     = "241" // Gray - hints, inactive icons
	ColorText      = "252" // Light gray - body text
	ColorDim       = "243" // Darker gray - dates, secondary text
)

// Styles contains shared style definitions used across views and modals.
var Styles = struct {
	Title    lipgloss.Style // Bold accent - section titles
	Subtitle lipgloss.Style // Highlight - entry headings (job title, degree)
	Box      lipgloss.Style // Rounded box - modals
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Dim      lipgloss.Style // Dates and metadata
	Hint     lipgloss.Style // Footer help text
	Empty    lipgloss.Style // Empty state text (muted, italic)

	Sidebar     lipgloss.Style // Desktop navigation column
	IconActive  lipgloss.Style
	IconNormal  lipgloss.Style
	IconHovered lipgloss.Style
	Tooltip     lipgloss.Style // Hover label beside a sidebar icon

	Header     lipgloss.Style // Mobile top bar
	MenuButton lipgloss.Style
	MenuItem   lipgloss.Style
	MenuActive lipgloss.Style
	MenuCursor lipgloss.Style

	InputLabel   lipgloss.Style
	InputFocused lipgloss.Style
	Tag          lipgloss.Style // Project tech tags
}{
	Title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	Subtitle: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorHighlight)),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorHighlight)).
		Padding(1, 2),
	Normal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	Muted: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Dim: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)),
	Hint: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	Empty: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)).
		Italic(true),
	Sidebar: lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderRight(true).
		BorderForeground(lipgloss.Color(ColorMuted)),
	IconActive: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	IconNormal: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	IconHovered: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Tooltip: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Italic(true),
	Header: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(ColorAccent)),
	MenuButton: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	MenuItem: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorText)),
	MenuActive: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorAccent)).
		Bold(true),
	MenuCursor: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true),
	InputLabel: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorMuted)),
	InputFocused: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)),
	Tag: lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorDim)).
		Italic(true),
}
