package ui

import (
	"folio/internal/viewstate"

	tea "github.com/charmbracelet/bubbletea"
)

// View is a Bubble Tea component owned by the root model: a section body or a modal.
// Update returns the view to keep, which lets a modal replace itself.
type View interface {
	Init() tea.Cmd
	Update(tea.Msg) (View, tea.Cmd)
	View() string
}

// SectionView is a View bound to one section that can be resized to the body area.
type SectionView interface {
	View
	Section() viewstate.Section
	SetSize(width, height int)
}
