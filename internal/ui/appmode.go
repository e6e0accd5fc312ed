package ui

// AppMode says where keyboard input goes.
type AppMode int

const (
	// ModeBrowse routes keys to navigation bindings.
	ModeBrowse AppMode = iota
	// ModeCompose routes keys to the focused contact form field.
	ModeCompose
)

func (m AppMode) String() string {
	switch m {
	case ModeBrowse:
		return "Browse"
	case ModeCompose:
		return "Compose"
	default:
		return "Unknown"
	}
}
