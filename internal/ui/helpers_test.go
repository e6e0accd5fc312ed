package ui

import (
	"context"
	"testing"
	"time"

	"folio/internal/config"
	"folio/internal/contact"
	"folio/internal/content"
	"folio/internal/viewstate"

	tea "github.com/charmbracelet/bubbletea"
)

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "space", " ":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

// recordingSink collects contact submissions.
type recordingSink struct {
	got []contact.Submission
}

func (r *recordingSink) Record(_ context.Context, sub contact.Submission) {
	r.got = append(r.got, sub)
}

// recordingNavigator collects section changes.
type recordingNavigator struct {
	moves [][2]string
}

func (r *recordingNavigator) Navigated(_ context.Context, from, to viewstate.Section) {
	r.moves = append(r.moves, [2]string{from.String(), to.String()})
}

type testApp struct {
	*appModelAdapter
	sink *recordingSink
	nav  *recordingNavigator
}

// newTestApp builds a loaded (not loading) shell sized as a desktop terminal.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	sink := &recordingSink{}
	nav := &recordingNavigator{}
	m := NewAppModel(Options{
		Portfolio: content.Default(),
		Handler:   contact.NewHandler(sink),
		Navigator: nav,
		Config:    config.Config{LoadingDelay: time.Millisecond},
	})
	t.Cleanup(m.Close)
	app := &testApp{appModelAdapter: m.AsTeaModel().(*appModelAdapter), sink: sink, nav: nav}
	app.send(LoadedMsg{})
	app.send(tea.WindowSizeMsg{Width: 120, Height: 40})
	return app
}

// send delivers msg and then every message produced by the resulting commands that
// belongs to this package. Framework commands (cursor blink, spinner ticks) are not run.
func (a *testApp) send(msg tea.Msg) {
	_, cmd := a.Update(msg)
	a.settle(cmd)
}

// iconRow is the screen row of s's sidebar icon at the current terminal size.
func (a *testApp) iconRow(s viewstate.Section) int {
	w, h := a.screenSize()
	_, bh := bodySize(a.State, w, h)
	return sidebarRow(s, bh)
}

func (a *testApp) click(x, y int) {
	a.send(tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
}

func (a *testApp) press(keys ...string) {
	for _, k := range keys {
		a.send(keyMsg(k))
	}
}

func (a *testApp) settle(cmd tea.Cmd) {
	for _, msg := range collect(cmd) {
		if isShellMsg(msg) {
			a.send(msg)
		}
	}
}

// collect runs cmd and flattens batches. Commands that do not return promptly are
// abandoned; they belong to timers the tests do not exercise.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		if batch, ok := msg.(tea.BatchMsg); ok {
			var out []tea.Msg
			for _, c := range batch {
				out = append(out, collect(c)...)
			}
			return out
		}
		if msg == nil {
			return nil
		}
		return []tea.Msg{msg}
	case <-time.After(20 * time.Millisecond):
		return nil
	}
}

func isShellMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case LoadedMsg, SelectSectionMsg, NextSectionMsg, PrevSectionMsg, ToggleMenuMsg,
		FocusFormMsg, BlurFormMsg, SubmitContactMsg, DismissModalMsg:
		return true
	}
	return false
}
