package ui

import (
	"folio/internal/contact"

	tea "github.com/charmbracelet/bubbletea"
)

// AckModal shows the acknowledgment after a contact form submission.
// Enter, Esc or space dismisses it.
type AckModal struct {
	Message contact.Acknowledgment
}

var _ View = (*AckModal)(nil)

// NewAckModal creates the acknowledgment dialog.
func NewAckModal(ack contact.Acknowledgment) *AckModal {
	return &AckModal{Message: ack}
}

// Init implements View.
func (m *AckModal) Init() tea.Cmd {
	return nil
}

// Update implements View.
func (m *AckModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "enter", "esc", " ":
			return m, func() tea.Msg { return DismissModalMsg{} }
		}
	}
	return m, nil
}

// View implements View.
func (m *AckModal) View() string {
	content := Styles.Title.Render("Message sent") + "\n\n"
	content += Styles.Normal.Render(string(m.Message))
	content += "\n\n" + Styles.Hint.Render("Enter: OK")
	return Styles.Box.Render(content)
}
