package viewstate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownSection is returned by ParseSection for keys that name no section.
var ErrUnknownSection = errors.New("unknown section")

// Section identifies one of the six content views the shell can display.
type Section int

const (
	SectionHome Section = iota
	SectionAbout
	SectionExperience
	SectionEducation
	SectionProjects
	SectionContact
)

// sectionCount must follow the last Section constant.
const sectionCount = int(SectionContact) + 1

// Sections returns every section in navigation order.
func Sections() []Section {
	out := make([]Section, 0, sectionCount)
	for i := 0; i < sectionCount; i++ {
		out = append(out, Section(i))
	}
	return out
}

// String returns the section key ("home", "about", ...).
func (s Section) String() string {
	switch s {
	case SectionHome:
		return "home"
	case SectionAbout:
		return "about"
	case SectionExperience:
		return "experience"
	case SectionEducation:
		return "education"
	case SectionProjects:
		return "projects"
	case SectionContact:
		return "contact"
	default:
		return fmt.Sprintf("Section(%d)", int(s))
	}
}

// Label is the human-readable name shown in tooltips and the mobile menu.
func (s Section) Label() string {
	switch s {
	case SectionHome:
		return "Home"
	case SectionAbout:
		return "About"
	case SectionExperience:
		return "Experience"
	case SectionEducation:
		return "Education"
	case SectionProjects:
		return "Projects"
	case SectionContact:
		return "Contact"
	default:
		return ""
	}
}

// Icon is the single-glyph sidebar marker for the section.
func (s Section) Icon() string {
	switch s {
	case SectionHome:
		return "⌂"
	case SectionAbout:
		return "☺"
	case SectionExperience:
		return "⚒"
	case SectionEducation:
		return "✎"
	case SectionProjects:
		return "◆"
	case SectionContact:
		return "✉"
	default:
		return "?"
	}
}

// Valid reports whether s is one of the six declared sections.
func (s Section) Valid() bool {
	return s >= SectionHome && int(s) < sectionCount
}

// ParseSection maps a key such as "projects" to its Section.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseSection(key string) (Section, error) {
	k := strings.ToLower(strings.TrimSpace(key))
	for _, s := range Sections() {
		if s.String() == k {
			return s, nil
		}
	}
	return SectionHome, fmt.Errorf("%w: %q", ErrUnknownSection, key)
}
