package ui

import (
	"folio/internal/content"
	"folio/internal/viewstate"

	tea "github.com/charmbracelet/bubbletea"
)

// SectionViews holds one view per section. Every field must be non-nil.
type SectionViews struct {
	Home       *HomeView
	About      *AboutView
	Experience *ExperienceView
	Education  *EducationView
	Projects   *ProjectsView
	Contact    *ContactView
}

// NewSectionViews builds all six views from the portfolio content.
func NewSectionViews(p content.Portfolio) *SectionViews {
	return &SectionViews{
		Home:       NewHomeView(p.Profile),
		About:      NewAboutView(p.Profile),
		Experience: NewExperienceView(p.Experience),
		Education:  NewEducationView(p.Education),
		Projects:   NewProjectsView(p.Projects),
		Contact:    NewContactView(p.Contact),
	}
}

// For returns the view of section s.
func (v *SectionViews) For(s viewstate.Section) SectionView {
	switch s {
	case viewstate.SectionHome:
		return v.Home
	case viewstate.SectionAbout:
		return v.About
	case viewstate.SectionExperience:
		return v.Experience
	case viewstate.SectionEducation:
		return v.Education
	case viewstate.SectionProjects:
		return v.Projects
	case viewstate.SectionContact:
		return v.Contact
	}
	return v.Home
}

// All returns every view in navigation order.
func (v *SectionViews) All() []SectionView {
	out := make([]SectionView, 0, len(viewstate.Sections()))
	for _, s := range viewstate.Sections() {
		out = append(out, v.For(s))
	}
	return out
}

// SetSize resizes every view so switching sections never shows a stale layout.
func (v *SectionViews) SetSize(width, height int) {
	for _, sv := range v.All() {
		sv.SetSize(width, height)
	}
}

// Init batches every view's Init command.
func (v *SectionViews) Init() tea.Cmd {
	var cmds []tea.Cmd
	for _, sv := range v.All() {
		cmds = append(cmds, sv.Init())
	}
	return tea.Batch(cmds...)
}

// RenderSection returns the one view to draw for state.
func RenderSection(state viewstate.State, views *SectionViews) SectionView {
	return views.For(state.ActiveSection())
}
