package ui

import (
	"folio/internal/contact"
	"folio/internal/viewstate"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// handleResize recomputes the layout for the new terminal size and resizes every section
// so that switching never shows a stale width.
func (a *AppModel) handleResize(msg tea.WindowSizeMsg) tea.Cmd {
	a.width, a.height = msg.Width, msg.Height
	wasMobile := a.State.IsMobile()
	a.State = a.State.Resize(a.cfg.PixelWidth(msg.Width), a.cfg.Breakpoint)
	if wasMobile != a.State.IsMobile() {
		a.logger.Debug("layout changed",
			zap.Bool("mobile", a.State.IsMobile()),
			zap.Int("columns", msg.Width),
			zap.Int("width_px", a.State.ViewportWidth()))
	}
	bw, bh := bodySize(a.State, msg.Width, msg.Height)
	if !a.State.IsMobile() {
		bw-- // left padding beside the sidebar
	}
	a.Sections.SetSize(bw, bh)
	return nil
}

// handleSelect switches sections. Leaving the contact section ends form editing.
func (a *AppModel) handleSelect(s viewstate.Section) tea.Cmd {
	from := a.State.ActiveSection()
	a.State = a.State.Select(s)
	to := a.State.ActiveSection()
	if a.Mode == ModeCompose && to != viewstate.SectionContact {
		a.Sections.Contact.Blur()
		a.Mode = ModeBrowse
	}
	if from != to {
		a.logger.Debug("section selected", zap.Stringer("from", from), zap.Stringer("to", to))
		if a.navigator != nil {
			a.navigator.Navigated(a.scope.Context(), from, to)
		}
	}
	return nil
}

// handleToggleMenu opens or closes the mobile menu. While it is open the menu owns the
// keyboard, so form editing ends first.
func (a *AppModel) handleToggleMenu() tea.Cmd {
	a.State = a.State.ToggleMenu()
	if !a.State.IsMobileMenuOpen() {
		return nil
	}
	if a.Mode == ModeCompose {
		a.Sections.Contact.Blur()
		a.Mode = ModeBrowse
	}
	a.MenuCursor = int(a.State.ActiveSection())
	return nil
}

func (a *AppModel) handleFocusForm() tea.Cmd {
	if !a.State.Is(viewstate.SectionContact) || a.State.IsMobileMenuOpen() || a.State.IsLoading() {
		return nil
	}
	a.Mode = ModeCompose
	return a.Sections.Contact.Focus()
}

// handleSubmit hands the captured form to the contact handler, clears the inputs and
// shows the acknowledgment.
func (a *AppModel) handleSubmit(form contact.Form) tea.Cmd {
	ack, reset := a.handler.Submit(a.scope.Context(), form)
	a.Sections.Contact.SetForm(reset)
	a.Sections.Contact.Blur()
	a.Mode = ModeBrowse
	return a.Modals.Open(NewAckModal(ack))
}

func (a *AppModel) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if a.Modals.Len() > 0 {
		return nil
	}
	press := msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft

	if a.State.IsMobile() {
		switch {
		case press && menuButtonHit(msg.X, msg.Y):
			return msgCmd(ToggleMenuMsg{})
		case a.State.IsMobileMenuOpen():
			if s, ok := menuHit(msg.Y); ok && press {
				return a.handleSelect(s)
			}
			return nil
		}
		_, cmd := a.Active().Update(msg)
		return cmd
	}

	w, h := a.screenSize()
	_, bh := bodySize(a.State, w, h)
	s, onIcon := sidebarHit(msg.X, msg.Y, bh)
	switch {
	case press && onIcon:
		return a.handleSelect(s)
	case msg.Action == tea.MouseActionMotion && onIcon:
		a.State = a.State.Hover(s)
		return nil
	case msg.Action == tea.MouseActionMotion:
		a.State = a.State.Unhover()
		return nil
	}
	_, cmd := a.Active().Update(msg)
	return cmd
}

func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		return msgCmd(quitMsg{})
	}
	if a.Modals.Len() > 0 {
		cmd, _ := a.Modals.Update(msg)
		return cmd
	}
	if a.Mode == ModeCompose {
		_, cmd := a.Sections.Contact.Update(msg)
		return cmd
	}
	if a.State.IsMobileMenuOpen() && !a.KeyHandler.LeaderWaiting {
		if cmd, ok := a.handleMenuKey(msg); ok {
			return cmd
		}
	}
	if consumed, cmd := a.KeyHandler.Handle(msg, a.Mode); consumed {
		return cmd
	}
	if msg.String() == "enter" && a.State.Is(viewstate.SectionContact) {
		return a.handleFocusForm()
	}
	_, cmd := a.Active().Update(msg)
	return cmd
}

// handleMenuKey moves the cursor in the open mobile menu. Reports false for keys the
// menu does not use.
func (a *AppModel) handleMenuKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	n := len(viewstate.Sections())
	switch msg.String() {
	case "up", "k":
		a.MenuCursor = (a.MenuCursor + n - 1) % n
	case "down", "j":
		a.MenuCursor = (a.MenuCursor + 1) % n
	case "enter":
		return a.handleSelect(viewstate.Sections()[a.MenuCursor]), true
	case "esc":
		a.State = a.State.CloseMenu()
	default:
		return nil, false
	}
	return nil, true
}
