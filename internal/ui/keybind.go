package ui

import (
	"sort"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// leaderSeq is the canonical name of the leader key in sequences ("SPC s h").
const leaderSeq = "SPC"

type binding struct {
	cmd   tea.Cmd
	desc  string
	modes []AppMode // empty = every mode
}

// KeybindRegistry maps key sequences to commands.
// Sequences use spacemacs-style notation: "SPC s a" is space, then s, then a.
// Single keys use tea.KeyMsg.String() names: "q", "tab", "shift+tab", "ctrl+c".
type KeybindRegistry struct {
	bindings map[string]binding
	// groups labels a leader prefix that opens a submenu, e.g. "s" -> "Section".
	groups map[string]string
}

// NewKeybindRegistry creates an empty registry.
func NewKeybindRegistry() *KeybindRegistry {
	return &KeybindRegistry{
		bindings: make(map[string]binding),
		groups:   make(map[string]string),
	}
}

// Bind registers seq for every mode. Overwrites any existing binding.
func (r *KeybindRegistry) Bind(seq string, cmd tea.Cmd, desc string) {
	r.BindForMode(seq, cmd, desc)
}

// BindForMode registers seq for the listed modes only (all modes when none are given).
func (r *KeybindRegistry) BindForMode(seq string, cmd tea.Cmd, desc string, modes ...AppMode) {
	r.bindings[normalizeSeq(seq)] = binding{cmd: cmd, desc: desc, modes: modes}
}

// Group labels a first-level leader key that only opens further bindings.
func (r *KeybindRegistry) Group(k, label string) {
	r.groups[k] = label
}

// Lookup returns the command bound to seq in mode, or nil.
func (r *KeybindRegistry) Lookup(seq string, mode AppMode) tea.Cmd {
	b, ok := r.bindings[normalizeSeq(seq)]
	if !ok || !b.appliesTo(mode) {
		return nil
	}
	return b.cmd
}

// HasPrefix reports whether some binding continues after seq.
func (r *KeybindRegistry) HasPrefix(seq string) bool {
	prefix := normalizeSeq(seq) + " "
	for k := range r.bindings {
		if strings.HasPrefix(k, prefix) {
			return true
		}
	}
	return false
}

// LeaderHints lists the keys that may follow seq in mode, sorted by key.
// A key that opens a deeper level is described by its Group label.
func (r *KeybindRegistry) LeaderHints(seq string, mode AppMode) []key.Binding {
	prefix := normalizeSeq(seq) + " "
	descs := make(map[string]string)
	for s, b := range r.bindings {
		if b.cmd == nil || !strings.HasPrefix(s, prefix) || !b.appliesTo(mode) {
			continue
		}
		rest := strings.Fields(strings.TrimPrefix(s, prefix))
		if len(rest) == 0 {
			continue
		}
		next := rest[0]
		if len(rest) > 1 {
			label, ok := r.groups[next]
			if !ok {
				label = next + "…"
			}
			descs[next] = label
			continue
		}
		desc := b.desc
		if desc == "" {
			desc = s
		}
		descs[next] = desc
	}

	keys := make([]string, 0, len(descs))
	for k := range descs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]key.Binding, 0, len(keys)+1)
	for _, k := range keys {
		out = append(out, key.NewBinding(key.WithKeys(k), key.WithHelp(k, descs[k])))
	}
	out = append(out, key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")))
	return out
}

func (b binding) appliesTo(mode AppMode) bool {
	if len(b.modes) == 0 {
		return true
	}
	for _, m := range b.modes {
		if m == mode {
			return true
		}
	}
	return false
}

// normalizeSeq converts tea key strings to canonical form ("space" and " " become "SPC").
func normalizeSeq(seq string) string {
	if seq == " " {
		return leaderSeq
	}
	parts := strings.Fields(seq)
	for i, p := range parts {
		if p == "space" {
			parts[i] = leaderSeq
		}
	}
	return strings.Join(parts, " ")
}

// KeyHandler tracks leader state and dispatches keys to the registry.
type KeyHandler struct {
	Registry      *KeybindRegistry
	LeaderWaiting bool
	Buffer        []string // sequence typed so far in leader mode, starting with "SPC"
}

// NewKeyHandler creates a handler with space as leader.
func NewKeyHandler(reg *KeybindRegistry) *KeyHandler {
	return &KeyHandler{Registry: reg}
}

// Sequence returns the leader sequence typed so far ("" outside leader mode).
func (h *KeyHandler) Sequence() string {
	return strings.Join(h.Buffer, " ")
}

// Handle processes a KeyMsg in mode. Returns (consumed, cmd).
// Consumed keys must not be passed on to views.
func (h *KeyHandler) Handle(msg tea.KeyMsg, mode AppMode) (consumed bool, cmd tea.Cmd) {
	s := normalizeSeq(msg.String())

	if h.LeaderWaiting {
		if s == "esc" {
			h.reset()
			return true, nil
		}
		h.Buffer = append(h.Buffer, s)
		seq := h.Sequence()
		if c := h.Registry.Lookup(seq, mode); c != nil {
			h.reset()
			return true, c
		}
		if !h.Registry.HasPrefix(seq) {
			h.reset()
		}
		return true, nil
	}

	if s == leaderSeq && h.Registry.HasPrefix(leaderSeq) {
		h.LeaderWaiting = true
		h.Buffer = []string{leaderSeq}
		return true, nil
	}

	if c := h.Registry.Lookup(s, mode); c != nil {
		return true, c
	}
	return false, nil
}

func (h *KeyHandler) reset() {
	h.LeaderWaiting = false
	h.Buffer = nil
}
