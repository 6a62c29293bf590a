package core

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tabset/tabs"
)

// KeyBinding maps keys to a shell action. Scopes name where it applies:
// ScopeStrip, ScopePanel, a screen scope such as "screen:picker", or
// ScopeScreens for every overlay. No scopes means everywhere.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

// Binding converts b into a bubbles key binding. The first key is the one
// shown in help.
func (b KeyBinding) Binding() key.Binding {
	keys := make([]string, 0, len(b.Keys))
	for _, k := range b.Keys {
		if k = normalizeKey(k); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], b.Description))
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

// Action resolves a key press to the first action bound to it in scope.
func (r *KeyRegistry) Action(msg tea.KeyMsg, scope string) (string, bool) {
	for _, b := range r.BindingsForScope(scope) {
		if key.Matches(msg, b.Binding()) {
			return b.Action, true
		}
	}
	return "", false
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	for _, b := range r.BindingsForScope(scope) {
		if b.Action == action && key.Matches(msg, b.Binding()) {
			return true
		}
	}
	return false
}

// KeysFor lists the keys bound to action in scope.
func (r *KeyRegistry) KeysFor(action, scope string) []string {
	var out []string
	for _, b := range r.BindingsForScope(scope) {
		if b.Action == action {
			out = append(out, b.Binding().Keys()...)
		}
	}
	return out
}

// Help is the footer's binding list for scope. While the strip holds focus
// its navigation keys come first.
func (r *KeyRegistry) Help(scope string, g *tabs.Group) []key.Binding {
	var out []key.Binding
	if scope == ScopeStrip && g != nil {
		out = append(out, g.ShortHelp()...)
	}
	for _, b := range r.BindingsForScope(scope) {
		if kb := b.Binding(); kb.Enabled() {
			out = append(out, kb)
		}
	}
	return out
}

// normalizeKey lowercases named keys ("Ctrl+K" becomes "ctrl+k") and keeps
// single runes as typed, so "G" and "g" stay distinct.
func normalizeKey(k string) string {
	k = strings.TrimSpace(k)
	if len([]rune(k)) <= 1 {
		return k
	}
	return strings.ToLower(k)
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		switch {
		case s == "*", s == scope:
			return true
		case s == ScopeScreens && strings.HasPrefix(scope, screenScopePrefix):
			return true
		}
	}
	return false
}
