package ui

import (
	"fmt"
	"strings"

	"folio/internal/content"
	"folio/internal/viewstate"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
)

// Size used until the first WindowSizeMsg arrives (and in tests).
const (
	defaultBodyWidth  = 80
	defaultBodyHeight = 20
)

// page is the scrollable body shared by the read-only sections. render builds the
// content for a given width; it is re-run on every resize.
type page struct {
	section  viewstate.Section
	title    string
	viewport viewport.Model
	render   func(width int) string
}

func newPage(s viewstate.Section, render func(width int) string) page {
	p := page{
		section:  s,
		title:    s.Label(),
		viewport: viewport.New(defaultBodyWidth, defaultBodyHeight),
		render:   render,
	}
	p.viewport.SetContent(render(defaultBodyWidth))
	return p
}

func (p *page) Section() viewstate.Section { return p.section }

func (p *page) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	offset := p.viewport.YOffset
	p.viewport.Width = width
	p.viewport.Height = max(height-2, 1) // title and blank line
	p.viewport.SetContent(p.render(width))
	p.viewport.SetYOffset(offset)
}

// scroll forwards navigation keys and wheel events to the viewport.
func (p *page) scroll(msg tea.Msg) tea.Cmd {
	switch msg.(type) {
	case tea.KeyMsg, tea.MouseMsg:
		var cmd tea.Cmd
		p.viewport, cmd = p.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (p *page) view() string {
	return Styles.Title.Render(p.title) + "\n\n" + p.viewport.View()
}

func bullets(items []string, width int) string {
	var b strings.Builder
	style := Styles.Normal.Width(max(width-4, 10))
	for _, item := range items {
		lines := strings.Split(style.Render(item), "\n")
		for i, l := range lines {
			prefix := "    "
			if i == 0 {
				prefix = "  • "
			}
			b.WriteString(prefix + l + "\n")
		}
	}
	return b.String()
}

// HomeView introduces the portfolio owner.
type HomeView struct {
	page
	profile content.Profile
}

var _ SectionView = (*HomeView)(nil)

// NewHomeView creates the home section.
func NewHomeView(p content.Profile) *HomeView {
	v := &HomeView{profile: p}
	v.page = newPage(viewstate.SectionHome, v.renderBody)
	v.title = "Hello"
	return v
}

func (v *HomeView) renderBody(width int) string {
	var b strings.Builder
	b.WriteString(Styles.Subtitle.Render(v.profile.Name) + "\n")
	if v.profile.Title != "" {
		b.WriteString(Styles.Muted.Render(v.profile.Title) + "\n")
	}
	if v.profile.Tagline != "" {
		b.WriteString("\n" + Styles.Normal.Width(max(width, 10)).Render(v.profile.Tagline) + "\n")
	}
	if len(v.profile.Links) > 0 {
		b.WriteString("\n")
		for _, l := range v.profile.Links {
			b.WriteString(fmt.Sprintf("  %s  %s\n", Styles.Subtitle.Render(l.Label), Styles.Dim.Render(l.URL)))
		}
	}
	return b.String()
}

// Init implements View.
func (v *HomeView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *HomeView) Update(msg tea.Msg) (View, tea.Cmd) { return v, v.scroll(msg) }

// View implements View.
func (v *HomeView) View() string { return v.view() }

// AboutView renders the profile's markdown biography.
type AboutView struct {
	page
	markdown string
	renderer *glamour.TermRenderer
	wrap     int
}

var _ SectionView = (*AboutView)(nil)

// NewAboutView creates the about section.
func NewAboutView(p content.Profile) *AboutView {
	v := &AboutView{markdown: p.About}
	v.page = newPage(viewstate.SectionAbout, v.renderBody)
	return v
}

func (v *AboutView) renderBody(width int) string {
	if strings.TrimSpace(v.markdown) == "" {
		return Styles.Empty.Render("Nothing here yet.")
	}
	if v.renderer == nil || v.wrap != width {
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle("dark"),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return v.markdown
		}
		v.renderer, v.wrap = r, width
	}
	out, err := v.renderer.Render(v.markdown)
	if err != nil {
		return v.markdown
	}
	return out
}

// Init implements View.
func (v *AboutView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *AboutView) Update(msg tea.Msg) (View, tea.Cmd) { return v, v.scroll(msg) }

// View implements View.
func (v *AboutView) View() string { return v.view() }

// ExperienceView lists jobs, most recent first as given in the content.
type ExperienceView struct {
	page
	jobs []content.Job
}

var _ SectionView = (*ExperienceView)(nil)

// NewExperienceView creates the experience section.
func NewExperienceView(jobs []content.Job) *ExperienceView {
	v := &ExperienceView{jobs: jobs}
	v.page = newPage(viewstate.SectionExperience, v.renderBody)
	return v
}

func (v *ExperienceView) renderBody(width int) string {
	if len(v.jobs) == 0 {
		return Styles.Empty.Render("No experience listed.")
	}
	var b strings.Builder
	for i, j := range v.jobs {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Styles.Subtitle.Render(j.Title) + " " + Styles.Muted.Render("@ "+j.Company) + "\n")
		b.WriteString(Styles.Dim.Render(dateRange(j.StartDate, j.EndDate)) + "\n")
		b.WriteString(bullets(j.Bullets, width))
	}
	return b.String()
}

// Init implements View.
func (v *ExperienceView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *ExperienceView) Update(msg tea.Msg) (View, tea.Cmd) { return v, v.scroll(msg) }

// View implements View.
func (v *ExperienceView) View() string { return v.view() }

// EducationView lists degrees and certifications.
type EducationView struct {
	page
	degrees []content.Degree
}

var _ SectionView = (*EducationView)(nil)

// NewEducationView creates the education section.
func NewEducationView(degrees []content.Degree) *EducationView {
	v := &EducationView{degrees: degrees}
	v.page = newPage(viewstate.SectionEducation, v.renderBody)
	return v
}

func (v *EducationView) renderBody(width int) string {
	if len(v.degrees) == 0 {
		return Styles.Empty.Render("No education listed.")
	}
	var b strings.Builder
	for i, d := range v.degrees {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Styles.Subtitle.Render(d.Degree) + "\n")
		b.WriteString(Styles.Muted.Render(d.Institution) + "  " + Styles.Dim.Render(dateRange(d.StartDate, d.EndDate)) + "\n")
		b.WriteString(bullets(d.Bullets, width))
	}
	return b.String()
}

// Init implements View.
func (v *EducationView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *EducationView) Update(msg tea.Msg) (View, tea.Cmd) { return v, v.scroll(msg) }

// View implements View.
func (v *EducationView) View() string { return v.view() }

// ProjectsView lists projects with their tech tags.
type ProjectsView struct {
	page
	projects []content.Project
}

var _ SectionView = (*ProjectsView)(nil)

// NewProjectsView creates the projects section.
func NewProjectsView(projects []content.Project) *ProjectsView {
	v := &ProjectsView{projects: projects}
	v.page = newPage(viewstate.SectionProjects, v.renderBody)
	return v
}

func (v *ProjectsView) renderBody(width int) string {
	if len(v.projects) == 0 {
		return Styles.Empty.Render("No projects listed.")
	}
	var b strings.Builder
	desc := Styles.Normal.Width(max(width-2, 10))
	for i, p := range v.projects {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(Styles.Subtitle.Render(p.Name))
		if len(p.Tech) > 0 {
			b.WriteString("  " + Styles.Tag.Render(strings.Join(p.Tech, " · ")))
		}
		b.WriteString("\n")
		if p.Description != "" {
			b.WriteString(lipgloss.NewStyle().PaddingLeft(2).Render(desc.Render(p.Description)) + "\n")
		}
		if p.URL != "" {
			b.WriteString("  " + Styles.Dim.Render(p.URL) + "\n")
		}
	}
	return b.String()
}

// Init implements View.
func (v *ProjectsView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *ProjectsView) Update(msg tea.Msg) (View, tea.Cmd) { return v, v.scroll(msg) }

// View implements View.
func (v *ProjectsView) View() string { return v.view() }

func dateRange(start, end string) string {
	switch {
	case start == "" && end == "":
		return ""
	case end == "":
		return start
	case start == "":
		return end
	}
	return start + " – " + end
}
