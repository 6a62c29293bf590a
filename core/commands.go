package core

import (
	"cmp"
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// Command is a shell action reachable from the palette and, when a key
// binding names its ID, from the keyboard.
type Command struct {
	ID          string
	Name        string
	Description string
	Scopes      []string
	Execute     func(m *Model) tea.Cmd
	Disabled    func(m *Model) (bool, string)
}

type CommandResult struct {
	CommandID string
	Name      string
	Desc      string
	Keys      []string
	Disabled  bool
	Reason    string
}

// CommandRegistry keeps commands in registration order. Registering an ID
// again replaces the command in place.
type CommandRegistry struct {
	order []string
	byID  map[string]Command
}

func NewCommandRegistry(cmds []Command) *CommandRegistry {
	reg := &CommandRegistry{byID: map[string]Command{}}
	for _, c := range cmds {
		reg.Register(c)
	}
	return reg
}

func (r *CommandRegistry) Register(c Command) {
	if c.ID == "" {
		return
	}
	if _, ok := r.byID[c.ID]; !ok {
		r.order = append(r.order, c.ID)
	}
	r.byID[c.ID] = c
}

func (r *CommandRegistry) Has(id string) bool {
	_, ok := r.byID[id]
	return ok
}

// Search ranks the commands of scope against query with the same fuzzy
// scoring as the tab finder. Enabled commands come first. Each result
// carries the keys bound to it in scope.
func (r *CommandRegistry) Search(query, scope string, m *Model) []CommandResult {
	q := strings.TrimSpace(query)
	type ranked struct {
		res   CommandResult
		score int
	}
	rows := make([]ranked, 0, len(r.order))
	for _, id := range r.order {
		c := r.byID[id]
		if !scopeMatch(scope, c.Scopes) {
			continue
		}
		ok, score := fuzzyMatchScore(c.Name+" "+c.ID+" "+c.Description, q)
		if !ok {
			continue
		}
		res := CommandResult{CommandID: c.ID, Name: c.Name, Desc: c.Description}
		if c.Disabled != nil {
			res.Disabled, res.Reason = c.Disabled(m)
		}
		if m != nil && m.keys != nil {
			res.Keys = m.keys.KeysFor(c.ID, scope)
		}
		rows = append(rows, ranked{res: res, score: score})
	}
	slices.SortStableFunc(rows, func(a, b ranked) int {
		if a.res.Disabled != b.res.Disabled {
			if !a.res.Disabled {
				return -1
			}
			return 1
		}
		if a.score != b.score {
			return cmp.Compare(b.score, a.score)
		}
		return cmp.Compare(a.res.Name, b.res.Name)
	})
	out := make([]CommandResult, len(rows))
	for i, row := range rows {
		out[i] = row.res
	}
	return out
}

func (r *CommandRegistry) Execute(id string, m *Model) tea.Cmd {
	c, ok := r.byID[id]
	if !ok {
		return StatusCmd("Unknown command: " + id)
	}
	if c.Disabled != nil {
		if disabled, reason := c.Disabled(m); disabled {
			if reason == "" {
				reason = c.Name + " is unavailable"
			}
			return StatusCmd(reason)
		}
	}
	if c.Execute == nil {
		return nil
	}
	if m != nil && m.Logger != nil {
		m.Logger.Debug("command", "id", id)
	}
	return c.Execute(m)
}
