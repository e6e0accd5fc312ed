package ui

import (
	"folio/internal/contact"
	"folio/internal/viewstate"
)

// LoadedMsg is sent once when the loading gate's delay elapses.
type LoadedMsg struct{}

// SelectSectionMsg is sent when the user picks a section (key, click, or menu).
type SelectSectionMsg struct {
	Section viewstate.Section
}

// NextSectionMsg selects the section after the active one (tab).
type NextSectionMsg struct{}

// PrevSectionMsg selects the section before the active one (shift+tab).
type PrevSectionMsg struct{}

// ToggleMenuMsg opens or closes the mobile overlay menu (m, or clicking the menu button).
type ToggleMenuMsg struct{}

// FocusFormMsg moves keyboard input into the contact form (i).
type FocusFormMsg struct{}

// BlurFormMsg returns keyboard input to navigation (Esc in the form).
type BlurFormMsg struct{}

// SubmitContactMsg carries the contact form values at the moment of submission.
type SubmitContactMsg struct {
	Form contact.Form
}

// DismissModalMsg closes the topmost modal.
type DismissModalMsg struct{}

// quitMsg tears the shell down before quitting the program.
type quitMsg struct{}
