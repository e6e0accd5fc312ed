package ui

import (
	"time"

	"folio/internal/lifecycle"
	"folio/internal/viewstate"

	tea "github.com/charmbracelet/bubbletea"
)

// loadingGateCmd waits delay on scope and then reports LoadedMsg.
// If the scope closes first the command yields nil and the shell never leaves loading.
func loadingGateCmd(scope *lifecycle.Scope, delay time.Duration) tea.Cmd {
	return func() tea.Msg {
		if !scope.Sleep(delay) {
			return nil
		}
		return LoadedMsg{}
	}
}

func selectSectionCmd(s viewstate.Section) tea.Cmd {
	return func() tea.Msg { return SelectSectionMsg{Section: s} }
}

func msgCmd(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
