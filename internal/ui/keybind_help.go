package ui

import (
	"folio/internal/viewstate"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

func newHelpModel() help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHighlight)).
		Bold(true)
	h.Styles.ShortDesc = Styles.Hint
	h.Styles.ShortSeparator = Styles.Hint
	return h
}

// RenderKeybindHelp produces the transient box shown while a leader sequence is typed.
func RenderKeybindHelp(h *KeyHandler, mode AppMode) string {
	if h == nil || !h.LeaderWaiting {
		return ""
	}
	seq := h.Sequence()
	hints := h.Registry.LeaderHints(seq, mode)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(ColorAccent)).
		Padding(0, 1)
	return box.Render(Styles.Hint.Render(seq) + " " + newHelpModel().ShortHelpView(hints))
}

// footerBindings lists the keys worth showing in the status line for the current state.
func footerBindings(mode AppMode, state viewstate.State) []key.Binding {
	if mode == ModeCompose {
		return []key.Binding{
			key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
			key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "next/send")),
			key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "send")),
			key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "done")),
		}
	}
	out := []key.Binding{
		key.NewBinding(key.WithKeys("1", "2", "3", "4", "5", "6"), key.WithHelp("1-6", "section")),
		key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next")),
	}
	if state.IsMobile() {
		out = append(out, key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "menu")))
	}
	if state.Is(viewstate.SectionContact) {
		out = append(out, key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "write")))
	}
	return append(out,
		key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC", "more")),
		key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	)
}

// RenderFooter renders the one-line key hint bar.
func RenderFooter(mode AppMode, state viewstate.State, width int) string {
	h := newHelpModel()
	h.Width = width
	return h.ShortHelpView(footerBindings(mode, state))
}
