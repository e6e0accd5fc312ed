package ui

import (
	"strings"
	"testing"

	"folio/internal/content"
	"folio/internal/viewstate"
)

func TestSectionViews_ForEverySection(t *testing.T) {
	views := NewSectionViews(content.Default())
	for _, s := range viewstate.Sections() {
		v := views.For(s)
		if v == nil {
			t.Fatalf("no view for %v", s)
		}
		if v.Section() != s {
			t.Errorf("For(%v) returned the %v view", s, v.Section())
		}
	}
	if got := len(views.All()); got != len(viewstate.Sections()) {
		t.Errorf("All() = %d views, want %d", got, len(viewstate.Sections()))
	}
}

func TestRenderSection_FollowsState(t *testing.T) {
	views := NewSectionViews(content.Default())
	st := viewstate.Initial()
	for _, s := range viewstate.Sections() {
		st = st.Select(s)
		if got := RenderSection(st, views).Section(); got != s {
			t.Errorf("RenderSection after Select(%v) = %v", s, got)
		}
	}
}

func TestSectionViews_RenderContent(t *testing.T) {
	p := content.Default()
	views := NewSectionViews(p)
	views.SetSize(70, 200)

	tests := []struct {
		section viewstate.Section
		want    string
	}{
		{viewstate.SectionHome, p.Profile.Name},
		{viewstate.SectionExperience, p.Experience[0].Company},
		{viewstate.SectionEducation, p.Education[0].Institution},
		{viewstate.SectionProjects, p.Projects[0].Name},
		{viewstate.SectionContact, "Message"},
	}
	for _, tt := range tests {
		t.Run(tt.section.String(), func(t *testing.T) {
			if got := views.For(tt.section).View(); !strings.Contains(got, tt.want) {
				t.Errorf("view missing %q:\n%s", tt.want, got)
			}
		})
	}
}

func TestSectionViews_EmptyContent(t *testing.T) {
	views := NewSectionViews(content.Portfolio{Profile: content.Profile{Name: "N"}})
	checks := map[viewstate.Section]string{
		viewstate.SectionAbout:      "Nothing here yet.",
		viewstate.SectionExperience: "No experience listed.",
		viewstate.SectionEducation:  "No education listed.",
		viewstate.SectionProjects:   "No projects listed.",
	}
	for s, want := range checks {
		if got := views.For(s).View(); !strings.Contains(got, want) {
			t.Errorf("%v: missing %q", s, want)
		}
	}
}

func TestAboutView_RendersMarkdown(t *testing.T) {
	v := NewAboutView(content.Profile{About: "plain words here"})
	v.SetSize(60, 20)
	if got := v.View(); !strings.Contains(got, "plain") {
		t.Errorf("about view missing text:\n%s", got)
	}
}

func TestDateRange(t *testing.T) {
	tests := []struct{ start, end, want string }{
		{"", "", ""},
		{"2019", "", "2019"},
		{"", "2020", "2020"},
		{"2019", "2020", "2019 – 2020"},
	}
	for _, tt := range tests {
		if got := dateRange(tt.start, tt.end); got != tt.want {
			t.Errorf("dateRange(%q, %q) = %q, want %q", tt.start, tt.end, got, tt.want)
		}
	}
}

func TestPage_ResizeKeepsScrollOffset(t *testing.T) {
	var jobs []content.Job
	for i := 0; i < 20; i++ {
		jobs = append(jobs, content.Job{Title: "Engineer", Company: "Acme", Bullets: []string{"Shipped things"}})
	}
	v := NewExperienceView(jobs)
	v.SetSize(60, 12)
	for i := 0; i < 5; i++ {
		v.Update(keyMsg("down"))
	}
	if v.viewport.YOffset != 5 {
		t.Fatalf("offset after scrolling = %d, want 5", v.viewport.YOffset)
	}

	v.SetSize(70, 14)
	if v.viewport.YOffset != 5 {
		t.Errorf("offset after resize = %d, want 5", v.viewport.YOffset)
	}

	v.SetSize(70, 1000)
	if v.viewport.YOffset != 0 {
		t.Errorf("offset once everything fits = %d, want 0", v.viewport.YOffset)
	}
}
