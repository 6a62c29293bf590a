package core

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tabset/tabs"
)

const storeTimeout = 2 * time.Second

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, m.group.Resize(m.bodySize())
	case StatusMsg:
		m.status = msg.Text
		m.statusErr = msg.IsErr
		return m, nil
	case PushScreenMsg:
		m.screens.Push(msg.Screen, m.group)
		return m, nil
	case PopScreenMsg:
		m.screens.Pop(m.group)
		return m, nil
	case CommandExecuteMsg:
		return m, m.commands.Execute(msg.CommandID, &m)
	case ShowTabMsg:
		return m, m.group.Show(msg.Name)
	case tabs.ShowMsg:
		label := msg.Name
		if t, ok := m.group.Tab(msg.Name); ok {
			label = t.Label()
		}
		m.SetStatus("Showing " + label)
		return m, m.saveSelection(msg.Group, msg.Name)
	case tabs.HideMsg:
		m.Logger.Debug("panel hidden", "group", msg.Group, "name", msg.Name)
		return m, nil
	case tabs.CloseMsg:
		return m, m.closeTab(msg.Name)
	case tea.MouseMsg:
		if m.screens.Top() != nil {
			return m, nil
		}
		return m, m.group.Update(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			m.quitting = true
			return m, tea.Quit
		}

		if top := m.screens.Top(); top != nil {
			next, cmd, pop := top.Update(msg)
			if pop {
				m.screens.Pop(m.group)
				return m, cmd
			}
			m.screens.Replace(next)
			return m, cmd
		}

		scope := m.ActiveScope()
		action, bound := m.keys.Action(msg, scope)
		switch action {
		case "quit":
			m.quitting = true
			return m, tea.Quit
		case "toggle-focus":
			m.ToggleStripFocus()
			return m, nil
		}
		if m.group != nil {
			if handled, cmd := m.group.HandleKey(msg); handled {
				return m, cmd
			}
		}
		if !bound {
			return m, nil
		}
		switch {
		case action == "open-command-palette" && m.OpenCommandModal != nil:
			m.PushScreen(m.OpenCommandModal(&m, scope))
			return m, nil
		case action == "open-tab-picker" && m.OpenTabPicker != nil:
			m.PushScreen(m.OpenTabPicker(&m))
			return m, nil
		case m.commands.Has(action):
			m.Logger.Debug("key command", "key", msg.String(), "command", action, "scope", scope)
			return m, m.commands.Execute(action, &m)
		}
		return m, nil
	}

	if top := m.screens.Top(); top != nil {
		next, cmd, pop := top.Update(msg)
		if pop {
			m.screens.Pop(m.group)
		} else {
			m.screens.Replace(next)
		}
		return m, tea.Batch(cmd, m.group.Update(msg))
	}
	return m, m.group.Update(msg)
}

func (m *Model) saveSelection(groupID, name string) tea.Cmd {
	if m.store == nil {
		return nil
	}
	store := m.store
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
		defer cancel()
		if err := store.SaveSelection(ctx, groupID, name); err != nil {
			return StatusMsg{Text: "save selection: " + err.Error(), IsErr: true}
		}
		return nil
	}
}

// closeTab honors a close request by removing the tab and its panel.
func (m *Model) closeTab(name string) tea.Cmd {
	t, ok := m.group.Tab(name)
	if !ok {
		return nil
	}
	cmds := []tea.Cmd{m.group.RemoveTab(t)}
	if p, ok := m.group.Panel(name); ok {
		cmds = append(cmds, m.group.RemovePanel(p))
	}
	m.SetStatus("Closed " + t.Label())
	if m.store != nil {
		store, groupID := m.store, m.group.ID()
		cmds = append(cmds, func() tea.Msg {
			ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
			defer cancel()
			if err := store.SaveClosed(ctx, groupID, name); err != nil {
				return StatusMsg{Text: "save closed tab: " + err.Error(), IsErr: true}
			}
			return nil
		})
	}
	return tea.Batch(cmds...)
}
