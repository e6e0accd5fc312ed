package ui

import (
	"strings"

	"folio/internal/contact"
	"folio/internal/content"
	"folio/internal/viewstate"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// ContactView is the contact section: an intro line and three text inputs.
// Keys reach the inputs only while the form is focused (ModeCompose).
type ContactView struct {
	info    content.Contact
	inputs  []textinput.Model
	ring    fieldRing
	focused bool
	width   int
}

var _ SectionView = (*ContactView)(nil)

// NewContactView creates the contact section with empty fields.
func NewContactView(info content.Contact) *ContactView {
	placeholders := map[contact.Field]string{
		contact.FieldName:    "Your name",
		contact.FieldEmail:   "you@example.com",
		contact.FieldMessage: "Say hello",
	}
	v := &ContactView{info: info, ring: newFieldRing(), width: defaultBodyWidth}
	v.ring.OnChange = func(from, _ contact.Field) { v.inputs[from].Blur() }
	for _, f := range contact.Fields() {
		ti := textinput.New()
		ti.Placeholder = placeholders[f]
		ti.Prompt = ""
		ti.CharLimit = 0
		v.inputs = append(v.inputs, ti)
	}
	v.SetSize(defaultBodyWidth, defaultBodyHeight)
	return v
}

// Section implements SectionView.
func (v *ContactView) Section() viewstate.Section { return viewstate.SectionContact }

// SetSize implements SectionView.
func (v *ContactView) SetSize(width, height int) {
	if width <= 0 {
		return
	}
	v.width = width
	for i := range v.inputs {
		v.inputs[i].Width = max(min(width-4, 60), 10)
	}
}

// Form reads the current value of the three inputs.
func (v *ContactView) Form() contact.Form {
	var f contact.Form
	for i, field := range contact.Fields() {
		f = f.With(field, v.inputs[i].Value())
	}
	return f
}

// SetForm writes f into the inputs and moves the cursor back to the first field.
func (v *ContactView) SetForm(f contact.Form) {
	for i, field := range contact.Fields() {
		v.inputs[i].SetValue(f.Get(field))
	}
	v.ring.SetFocus(contact.FieldName)
}

// Focused reports whether the form is receiving keys.
func (v *ContactView) Focused() bool { return v.focused }

// FocusedField returns the field with the cursor.
func (v *ContactView) FocusedField() contact.Field { return v.ring.Current() }

// Focus starts editing at the current field.
func (v *ContactView) Focus() tea.Cmd {
	v.focused = true
	return v.inputs[v.ring.Index()].Focus()
}

// Blur stops editing. Field values are kept.
func (v *ContactView) Blur() {
	v.focused = false
	for i := range v.inputs {
		v.inputs[i].Blur()
	}
}

func (v *ContactView) move(delta int) tea.Cmd {
	v.ring.Move(delta)
	return v.Focus()
}

func (v *ContactView) submit() tea.Cmd {
	form := v.Form()
	return func() tea.Msg { return SubmitContactMsg{Form: form} }
}

// Init implements View.
func (v *ContactView) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (v *ContactView) Update(msg tea.Msg) (View, tea.Cmd) {
	if !v.focused {
		return v, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			return v, msgCmd(BlurFormMsg{})
		case "tab", "down":
			return v, v.move(1)
		case "shift+tab", "up":
			return v, v.move(-1)
		case "ctrl+s":
			return v, v.submit()
		case "enter":
			if v.ring.OnLast() {
				return v, v.submit()
			}
			return v, v.move(1)
		}
	}
	var cmd tea.Cmd
	i := v.ring.Index()
	v.inputs[i], cmd = v.inputs[i].Update(msg)
	return v, cmd
}

// View implements View.
func (v *ContactView) View() string {
	var b strings.Builder
	b.WriteString(Styles.Title.Render("Contact") + "\n\n")
	if v.info.Intro != "" {
		b.WriteString(Styles.Normal.Width(max(v.width, 10)).Render(v.info.Intro) + "\n")
	}
	if v.info.Email != "" {
		b.WriteString(Styles.Dim.Render(v.info.Email) + "\n")
	}
	b.WriteString("\n")
	for i, field := range contact.Fields() {
		label := Styles.InputLabel
		marker := "  "
		if v.focused && i == v.ring.Index() {
			label = Styles.InputFocused
			marker = Styles.InputFocused.Render("› ")
		}
		b.WriteString(marker + label.Render(strings.ToUpper(field.String()[:1])+field.String()[1:]) + "\n")
		b.WriteString("  " + v.inputs[i].View() + "\n\n")
	}
	if !v.focused {
		b.WriteString(Styles.Hint.Render("Press i to write a message"))
	} else {
		b.WriteString(Styles.Hint.Render("Enter on Message or ctrl+s to send"))
	}
	return b.String()
}
