package core

import "strings"

func DefaultKeyBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "quit", Scopes: []string{ScopeStrip, ScopePanel}},
		{Keys: []string{"tab"}, Action: "toggle-focus", Description: "focus strip", Scopes: []string{ScopeStrip, ScopePanel}},
		{Keys: []string{"ctrl+k"}, Action: "open-command-palette", Description: "commands", Scopes: []string{ScopeStrip, ScopePanel}},
		{Keys: []string{"/"}, Action: "open-tab-picker", Description: "find tab", Scopes: []string{ScopeStrip, ScopePanel}},
		{Keys: []string{"p"}, Action: "cycle-placement", Description: "placement", Scopes: []string{ScopeStrip, ScopePanel}},
		{Keys: []string{"a"}, Action: "toggle-activation", Description: "activation", Scopes: []string{ScopeStrip, ScopePanel}},
		{Keys: []string{"s"}, Action: "toggle-scroll-controls", Description: "scroll buttons", Scopes: []string{ScopeStrip, ScopePanel}},
		{Keys: []string{"["}, Action: "scroll-backward", Description: "scroll back", Scopes: []string{ScopeStrip, ScopePanel}},
		{Keys: []string{"]"}, Action: "scroll-forward", Description: "scroll fwd", Scopes: []string{ScopeStrip, ScopePanel}},
		{Keys: []string{"esc"}, Action: "close", Description: "close", Scopes: []string{ScopeScreens}},
		{Keys: []string{"enter"}, Action: "select", Description: "select", Scopes: []string{ScopeScreens}},
	}
}

// KeybindingsByAction groups bindings by action. The first binding of an
// action wins.
func KeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of every binding whose action has
// an override. Actions absent from actionKeys keep their defaults.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := KeyBinding{
			Keys:        append([]string(nil), b.Keys...),
			Action:      b.Action,
			Description: b.Description,
			Scopes:      append([]string(nil), b.Scopes...),
		}
		if keys, ok := actionKeys[b.Action]; ok && len(keys) > 0 {
			next.Keys = append([]string(nil), keys...)
		}
		out = append(out, next)
	}
	return out
}
