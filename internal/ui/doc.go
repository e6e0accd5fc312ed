// Package ui renders the portfolio shell with Bubble Tea.
//
// Core pieces:
//   - AppModel: root model; owns the viewstate.State value and replaces it on every event
//   - SectionViews: one View per section, chosen by RenderSection
//   - Sidebar / mobile menu: navigation, chosen by the width breakpoint
//   - ContactView: the contact form; submissions go through contact.Handler
//   - OverlayStack: modal views (the submission acknowledgment)
//   - KeybindRegistry / KeyHandler: single keys and SPC-leader sequences
package ui
