package viewstate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allowState = cmp.AllowUnexported(State{})

func TestInitial(t *testing.T) {
	s := Initial()
	assert.Equal(t, SectionHome, s.ActiveSection())
	assert.True(t, s.IsLoading())
	assert.False(t, s.IsMobileMenuOpen())
	assert.False(t, s.IsMobile())
	assert.Empty(t, s.HoveredLabel())
}

func TestSelect_EverySection(t *testing.T) {
	for _, sec := range Sections() {
		t.Run(sec.String(), func(t *testing.T) {
			s := Initial().Select(sec)
			assert.Equal(t, sec, s.ActiveSection())
			for _, other := range Sections() {
				assert.Equal(t, other == sec, s.Is(other), "Is(%s)", other)
			}
		})
	}
}

func TestSelect_Idempotent(t *testing.T) {
	once := Initial().Select(SectionProjects)
	twice := once.Select(SectionProjects)
	if diff := cmp.Diff(once, twice, allowState); diff != "" {
		t.Errorf("reselect changed state (-once +twice):\n%s", diff)
	}
}

func TestSelect_ClosesMobileMenu(t *testing.T) {
	s := Initial().Resize(400, DefaultBreakpoint).ToggleMenu()
	require.True(t, s.IsMobileMenuOpen())

	s = s.Select(SectionContact)
	assert.Equal(t, SectionContact, s.ActiveSection())
	assert.False(t, s.IsMobileMenuOpen())
}

func TestSelect_InvalidSectionIgnored(t *testing.T) {
	s := Initial().Select(SectionAbout)
	got := s.Select(Section(42))
	if diff := cmp.Diff(s, got, allowState); diff != "" {
		t.Errorf("invalid select changed state:\n%s", diff)
	}
}

func TestSelect_DoesNotMutateReceiver(t *testing.T) {
	s := Initial()
	_ = s.Select(SectionEducation)
	assert.Equal(t, SectionHome, s.ActiveSection())
}

func TestNextPrev_Wrap(t *testing.T) {
	s := Initial()
	assert.Equal(t, SectionAbout, s.Next().ActiveSection())
	assert.Equal(t, SectionContact, s.Prev().ActiveSection())
	assert.Equal(t, SectionHome, s.Select(SectionContact).Next().ActiveSection())

	walked := s
	for range Sections() {
		walked = walked.Next()
	}
	assert.Equal(t, SectionHome, walked.ActiveSection())
}

func TestBreakpoint_Boundary(t *testing.T) {
	tests := []struct {
		width  int
		mobile bool
	}{
		{0, true},
		{320, true},
		{767, true},
		{768, false},
		{769, false},
		{1920, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.mobile, DefaultBreakpoint.IsMobile(tt.width), "width %d", tt.width)
	}
}

func TestResize_CrossesBoundaryBothWays(t *testing.T) {
	s := Initial().Resize(768, DefaultBreakpoint)
	assert.False(t, s.IsMobile())

	s = s.Resize(767, DefaultBreakpoint)
	assert.True(t, s.IsMobile())
	assert.Equal(t, 767, s.ViewportWidth())

	s = s.Resize(768, DefaultBreakpoint)
	assert.False(t, s.IsMobile())
}

func TestResize_LeavingMobileClosesMenu(t *testing.T) {
	s := Initial().Resize(500, DefaultBreakpoint).ToggleMenu()
	require.True(t, s.IsMobileMenuOpen())

	// Staying mobile keeps the menu open.
	s = s.Resize(600, DefaultBreakpoint)
	assert.True(t, s.IsMobileMenuOpen())

	s = s.Resize(1024, DefaultBreakpoint)
	assert.False(t, s.IsMobile())
	assert.False(t, s.IsMobileMenuOpen())
}

func TestResize_EnteringMobileClearsHover(t *testing.T) {
	s := Initial().Resize(1024, DefaultBreakpoint).Hover(SectionAbout)
	require.Equal(t, "About", s.HoveredLabel())

	s = s.Resize(700, DefaultBreakpoint)
	assert.Empty(t, s.HoveredLabel())
}

func TestResize_CustomBreakpoint(t *testing.T) {
	bp := Breakpoint(1000)
	assert.True(t, Initial().Resize(999, bp).IsMobile())
	assert.False(t, Initial().Resize(1000, bp).IsMobile())
}

func TestHover(t *testing.T) {
	s := Initial().Resize(1024, DefaultBreakpoint)
	s = s.Hover(SectionExperience)
	assert.Equal(t, "Experience", s.HoveredLabel())
	s = s.Unhover()
	assert.Empty(t, s.HoveredLabel())
}

func TestHover_IgnoredOnMobile(t *testing.T) {
	s := Initial().Resize(320, DefaultBreakpoint).Hover(SectionExperience)
	assert.Empty(t, s.HoveredLabel())
}

func TestToggleMenu(t *testing.T) {
	desktop := Initial().Resize(1024, DefaultBreakpoint)
	assert.False(t, desktop.ToggleMenu().IsMobileMenuOpen(), "toggle is a no-op on desktop")

	mobile := Initial().Resize(320, DefaultBreakpoint)
	open := mobile.ToggleMenu()
	assert.True(t, open.IsMobileMenuOpen())
	assert.False(t, open.ToggleMenu().IsMobileMenuOpen())
	assert.False(t, open.CloseMenu().IsMobileMenuOpen())
}

func TestFinishLoading_OneWay(t *testing.T) {
	s := Initial().FinishLoading()
	assert.False(t, s.IsLoading())
	assert.False(t, s.FinishLoading().IsLoading())

	// No other transition brings loading back.
	s = s.Select(SectionAbout).Resize(300, DefaultBreakpoint).ToggleMenu().Next()
	assert.False(t, s.IsLoading())
}
