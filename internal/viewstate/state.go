// Package viewstate holds the shell's navigation and layout state as one immutable value.
//
// Every user or viewport event maps to a method on State that returns the next State;
// nothing in this package mutates a State in place, so a transition can be tested by
// comparing two values.
package viewstate

// DefaultBreakpoint is the viewport width, in logical pixels, at which the shell switches
// from the overlay menu layout to the persistent sidebar layout.
const DefaultBreakpoint Breakpoint = 768

// Breakpoint is a width threshold in logical pixels.
// Widths strictly below the threshold are mobile.
type Breakpoint int

// IsMobile reports whether a viewport of widthPx logical pixels uses the mobile layout.
func (bp Breakpoint) IsMobile(widthPx int) bool {
	return widthPx < int(bp)
}

// State is the complete view state of the portfolio shell.
type State struct {
	active        Section
	hovered       string
	loading       bool
	menuOpen      bool
	mobile        bool
	viewportWidth int
}

// Initial returns the state at startup: home active, loading, desktop, menu closed.
func Initial() State {
	return State{
		active:  SectionHome,
		loading: true,
	}
}

func (s State) ActiveSection() Section { return s.active }
func (s State) HoveredLabel() string { return s.hovered }
func (s State) IsLoading() bool { return s.loading }
func (s State) IsMobileMenuOpen() bool { return s.menuOpen }
func (s State) IsMobile() bool { return s.mobile }
func (s State) ViewportWidth() int { return s.viewportWidth }
func (s State) Is(section Section) bool { return s.active == section }

// Select makes section the active section and closes the mobile menu in the same step.
// Invalid sections leave the state unchanged.
func (s State) Select(section Section) State {
	if !section.Valid() {
		return s
	}
	s.active = section
	s.menuOpen = false
	return s
}

// Next selects the section after the active one, wrapping to the first.
func (s State) Next() State {
	return s.Select(Section((int(s.active) + 1) % sectionCount))
}

// Prev selects the section before the active one, wrapping to the last.
func (s State) Prev() State {
	return s.Select(Section((int(s.active) + sectionCount - 1) % sectionCount))
}

// Hover records the label of the section under the pointer. Ignored on mobile,
// where there is no hover.
func (s State) Hover(section Section) State {
	if s.mobile || !section.Valid() {
		return s
	}
	s.hovered = section.Label()
	return s
}

// Unhover clears the hovered label.
func (s State) Unhover() State {
	s.hovered = ""
	return s
}

// ToggleMenu opens or closes the overlay menu. The toggle control only exists in the
// mobile layout, so on desktop this is a no-op.
func (s State) ToggleMenu() State {
	if !s.mobile {
		return s
	}
	s.menuOpen = !s.menuOpen
	return s
}

// CloseMenu closes the overlay menu if it is open.
func (s State) CloseMenu() State {
	s.menuOpen = false
	return s
}

// Resize recomputes the layout for a viewport of widthPx logical pixels.
// Entering mobile clears the hover label; leaving mobile closes the menu.
func (s State) Resize(widthPx int, bp Breakpoint) State {
	s.viewportWidth = widthPx
	mobile := bp.IsMobile(widthPx)
	switch {
	case mobile && !s.mobile:
		s.hovered = ""
	case !mobile && s.mobile:
		s.menuOpen = false
	}
	s.mobile = mobile
	return s
}

// FinishLoading clears the loading flag. Loading never starts again.
func (s State) FinishLoading() State {
	s.loading = false
	return s
}
