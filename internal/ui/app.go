package ui

import (
	"context"

	"folio/internal/config"
	"folio/internal/contact"
	"folio/internal/content"
	"folio/internal/lifecycle"
	"folio/internal/viewstate"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"
)

// Navigator observes section changes (telemetry).
type Navigator interface {
	Navigated(ctx context.Context, from, to viewstate.Section)
}

// Options configures NewAppModel. Zero values fall back to defaults; in Config only the
// breakpoint and cell width do, a zero LoadingDelay ends loading immediately.
type Options struct {
	Context   context.Context
	Portfolio content.Portfolio
	Handler   *contact.Handler
	Navigator Navigator
	Logger    *zap.Logger
	Config    config.Config
}

// AppModel is the root model. It owns the view state value and replaces it on every event;
// section views, modals and the key handler hang off it.
type AppModel struct {
	Mode       AppMode
	State      viewstate.State
	Sections   *SectionViews
	Modals     ModalStack
	KeyHandler *KeyHandler
	MenuCursor int

	name      string
	spinner   spinner.Model
	handler   *contact.Handler
	navigator Navigator
	logger    *zap.Logger
	scope     *lifecycle.Scope
	cfg       config.Config
	width     int
	height    int
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) *AppModel {
	if opts.Context == nil {
		opts.Context = context.Background()
	}
	if opts.Portfolio.Profile.Name == "" {
		opts.Portfolio = content.Default()
	}
	if opts.Handler == nil {
		opts.Handler = contact.NewHandler(contact.Discard)
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	defaults := config.Defaults()
	if opts.Config.Breakpoint <= 0 {
		opts.Config.Breakpoint = defaults.Breakpoint
	}
	if opts.Config.CellWidth <= 0 {
		opts.Config.CellWidth = defaults.CellWidth
	}

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccent))

	return &AppModel{
		Mode:       ModeBrowse,
		State:      viewstate.Initial(),
		Sections:   NewSectionViews(opts.Portfolio),
		KeyHandler: NewKeyHandler(newRegistry()),
		name:       opts.Portfolio.Profile.Name,
		spinner:    s,
		handler:    opts.Handler,
		navigator:  opts.Navigator,
		logger:     opts.Logger,
		scope:      lifecycle.NewScope(opts.Context),
		cfg:        opts.Config,
	}
}

// newRegistry binds the shell's navigation keys.
func newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	quit := msgCmd(quitMsg{})
	reg.Bind("ctrl+c", quit, "Quit")
	reg.BindForMode("q", quit, "Quit", ModeBrowse)
	reg.BindForMode("SPC q", quit, "Quit", ModeBrowse)
	reg.BindForMode("tab", msgCmd(NextSectionMsg{}), "Next section", ModeBrowse)
	reg.BindForMode("shift+tab", msgCmd(PrevSectionMsg{}), "Previous section", ModeBrowse)
	reg.BindForMode("m", msgCmd(ToggleMenuMsg{}), "Menu", ModeBrowse)
	reg.BindForMode("SPC m", msgCmd(ToggleMenuMsg{}), "Menu", ModeBrowse)
	reg.BindForMode("i", msgCmd(FocusFormMsg{}), "Write message", ModeBrowse)
	reg.Group("s", "Section")
	leaderKeys := map[viewstate.Section]string{
		viewstate.SectionHome:       "h",
		viewstate.SectionAbout:      "a",
		viewstate.SectionExperience: "e",
		viewstate.SectionEducation:  "d",
		viewstate.SectionProjects:   "p",
		viewstate.SectionContact:    "c",
	}
	for i, s := range viewstate.Sections() {
		reg.BindForMode(string(rune('1'+i)), selectSectionCmd(s), s.Label(), ModeBrowse)
		reg.BindForMode("SPC s "+leaderKeys[s], selectSectionCmd(s), s.Label(), ModeBrowse)
	}
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

// Close tears the shell down: the loading gate and anything else on the scope is
// cancelled. Safe to call more than once.
func (m *AppModel) Close() {
	m.scope.Close()
}

// Active returns the view currently rendered in the body.
func (m *AppModel) Active() SectionView {
	return RenderSection(m.State, m.Sections)
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.Batch(
		loadingGateCmd(a.scope, a.cfg.LoadingDelay),
		a.spinner.Tick,
		a.Sections.Init(),
	)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case quitMsg:
		a.Close()
		return a, tea.Quit
	case LoadedMsg:
		a.State = a.State.FinishLoading()
		return a, nil
	case spinner.TickMsg:
		if !a.State.IsLoading() {
			return a, nil
		}
		var cmd tea.Cmd
		a.spinner, cmd = a.spinner.Update(msg)
		return a, cmd
	case tea.WindowSizeMsg:
		return a, a.handleResize(msg)
	case SelectSectionMsg:
		return a, a.handleSelect(msg.Section)
	case NextSectionMsg:
		return a, a.handleSelect(a.State.Next().ActiveSection())
	case PrevSectionMsg:
		return a, a.handleSelect(a.State.Prev().ActiveSection())
	case ToggleMenuMsg:
		return a, a.handleToggleMenu()
	case FocusFormMsg:
		return a, a.handleFocusForm()
	case BlurFormMsg:
		a.Sections.Contact.Blur()
		a.Mode = ModeBrowse
		return a, nil
	case SubmitContactMsg:
		return a, a.handleSubmit(msg.Form)
	case DismissModalMsg:
		a.Modals.Dismiss()
		return a, nil
	case tea.MouseMsg:
		return a, a.handleMouse(msg)
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	}

	target := a.Active()
	if a.Mode == ModeCompose {
		target = a.Sections.Contact
	}
	_, cmd := target.Update(msg)
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	width, height := a.screenSize()
	if a.Modals.Len() > 0 {
		return a.Modals.Render(width, height)
	}

	_, bh := bodySize(a.State, width, height)
	var screen string
	if a.State.IsMobile() {
		main := a.body()
		if a.State.IsMobileMenuOpen() {
			main = RenderMenu(a.State, a.MenuCursor)
		}
		screen = RenderHeader(a.name, width) + "\n" + fitHeight(main, bh)
	} else {
		body := lipgloss.NewStyle().PaddingLeft(1).Render(a.body())
		screen = lipgloss.JoinHorizontal(lipgloss.Top, RenderSidebar(a.State, bh), fitHeight(body, bh))
	}

	bar := RenderFooter(a.Mode, a.State, width)
	if a.KeyHandler.LeaderWaiting {
		bar = RenderKeybindHelp(a.KeyHandler, a.Mode)
	}
	return screen + "\n" + bar
}

// screenSize is the last reported terminal size, or a default before the first resize.
func (m *AppModel) screenSize() (int, int) {
	if m.width == 0 || m.height == 0 {
		return defaultBodyWidth + sidebarWidth + 1, defaultBodyHeight + footerHeight
	}
	return m.width, m.height
}

func (a *appModelAdapter) body() string {
	if a.State.IsLoading() {
		return a.spinner.View() + " " + Styles.Muted.Render("Loading…")
	}
	return a.Active().View()
}

func fitHeight(s string, h int) string {
	return lipgloss.NewStyle().Height(h).MaxHeight(h).Render(s)
}
