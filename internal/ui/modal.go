package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ModalStack holds blocking dialogs. While any modal is open it receives all input and
// is drawn centered over the shell.
type ModalStack struct {
	views []View
}

// Open pushes v and returns its Init command.
func (s *ModalStack) Open(v View) tea.Cmd {
	s.views = append(s.views, v)
	return v.Init()
}

// Dismiss closes the topmost modal. Reports false if none was open.
func (s *ModalStack) Dismiss() bool {
	if len(s.views) == 0 {
		return false
	}
	s.views = s.views[:len(s.views)-1]
	return true
}

// Top returns the topmost modal, or nil.
func (s *ModalStack) Top() View {
	if len(s.views) == 0 {
		return nil
	}
	return s.views[len(s.views)-1]
}

// Len returns the number of open modals.
func (s *ModalStack) Len() int {
	return len(s.views)
}

// Update forwards msg to the topmost modal. Reports false if none was open.
func (s *ModalStack) Update(msg tea.Msg) (tea.Cmd, bool) {
	if len(s.views) == 0 {
		return nil, false
	}
	top := len(s.views) - 1
	v, cmd := s.views[top].Update(msg)
	s.views[top] = v
	return cmd, true
}

// Render draws the topmost modal centered in a width×height screen.
func (s *ModalStack) Render(width, height int) string {
	top := s.Top()
	if top == nil {
		return ""
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, top.View())
}
