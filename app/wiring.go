package app

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/tabset/core"
	"github.com/jask/tabset/icons"
	"github.com/jask/tabset/internal/config"
	"github.com/jask/tabset/internal/scroll"
	"github.com/jask/tabset/screens"
	"github.com/jask/tabset/tabs"
)

// DemoGroupID is stable across runs so remembered state finds its group.
const DemoGroupID = "demo"

type Deps struct {
	Config config.Config
	Store  *Store
	Logger *log.Logger
	Zones  *zone.Manager
	Icons  *icons.Registry
	// ExtraTabs is the number of numbered closable tabs after the fixed ones.
	ExtraTabs int
}

func (d Deps) logger() *log.Logger {
	if d.Logger == nil {
		return log.New(io.Discard)
	}
	return d.Logger
}

// NewGroup builds the demo group from config, restoring the remembered
// selection and leaving out tabs the user closed.
func NewGroup(ctx context.Context, deps Deps) (*tabs.Group, error) {
	cfg := deps.Config.Tabs
	activation, err := tabs.ParseActivation(cfg.Activation)
	if err != nil {
		return nil, err
	}
	placement, err := tabs.ParsePlacement(cfg.Placement)
	if err != nil {
		return nil, err
	}
	behavior, err := scroll.ParseBehavior(cfg.ScrollBehavior)
	if err != nil {
		return nil, err
	}

	var active string
	closed := map[string]bool{}
	if deps.Store != nil {
		active, closed, err = deps.Store.Restore(ctx, DemoGroupID)
		if err != nil {
			return nil, err
		}
	}

	reg := deps.Icons
	if reg == nil {
		reg = icons.Default()
	}
	g := tabs.New(
		tabs.WithID(DemoGroupID),
		tabs.WithActivation(activation),
		tabs.WithPlacement(placement),
		tabs.WithNoScrollControls(cfg.NoScrollControls),
		tabs.WithScrollBehavior(behavior),
		tabs.WithFrameInterval(cfg.FrameInterval),
		tabs.WithIcons(reg, cfg.IconLibrary),
		tabs.WithZones(deps.Zones),
		tabs.WithLogger(deps.logger()),
		tabs.WithActive(active),
	)
	for _, spec := range DemoTabs(deps.ExtraTabs) {
		if closed[spec.Name] {
			continue
		}
		tab, panel := spec.Build()
		g.AddTab(tab)
		g.AddPanel(panel)
	}
	deps.logger().Debug("demo group built", "tabs", len(g.Tabs()), "closed", len(closed), "restored", active)
	return g, nil
}

// NewModel assembles the shell around the demo group.
func NewModel(ctx context.Context, deps Deps) (core.Model, error) {
	g, err := NewGroup(ctx, deps)
	if err != nil {
		return core.Model{}, fmt.Errorf("build tab group: %w", err)
	}
	bindings := core.ApplyActionKeybindings(core.DefaultKeyBindings(), deps.Config.Keys)
	var store core.SelectionStore
	if deps.Store != nil {
		store = deps.Store
	}
	m := core.NewModel("tabset", g, core.NewKeyRegistry(bindings), core.NewCommandRegistry(nil), store)
	m.Zones = deps.Zones
	m.Logger = deps.logger()
	ConfigureModel(&m, deps)
	return m, nil
}

func ConfigureModel(m *core.Model, deps Deps) {
	if m == nil {
		return
	}
	m.OpenCommandModal = func(model *core.Model, scope string) core.Screen {
		return screens.NewCommandPalette(model, scope)
	}
	m.OpenTabPicker = func(model *core.Model) core.Screen {
		return screens.NewTabPicker(core.TabPickerItems(model.Group()))
	}
	RegisterCommands(m.CommandRegistry(), deps.Store, DemoTabs(deps.ExtraTabs))
}

var placements = []tabs.Placement{tabs.PlacementTop, tabs.PlacementBottom, tabs.PlacementStart, tabs.PlacementEnd}

var shellScopes = []string{core.ScopeStrip, core.ScopePanel}

func RegisterCommands(reg *core.CommandRegistry, store *Store, specs []TabSpec) {
	reg.Register(core.Command{
		ID:          "cycle-placement",
		Name:        "Cycle placement",
		Description: "Move the tab strip to the next edge",
		Scopes:      shellScopes,
		Execute: func(m *core.Model) tea.Cmd {
			g := m.Group()
			next := placements[0]
			for i, p := range placements {
				if p == g.Placement() {
					next = placements[(i+1)%len(placements)]
				}
			}
			m.SetStatus("Placement: " + next.String())
			return g.SetPlacement(next)
		},
	})
	reg.Register(core.Command{
		ID:          "toggle-activation",
		Name:        "Toggle activation",
		Description: "Switch between automatic and manual activation",
		Scopes:      shellScopes,
		Execute: func(m *core.Model) tea.Cmd {
			g := m.Group()
			if g.Activation() == tabs.ActivationAuto {
				g.SetActivation(tabs.ActivationManual)
			} else {
				g.SetActivation(tabs.ActivationAuto)
			}
			m.SetStatus("Activation: " + g.Activation().String())
			return nil
		},
	})
	reg.Register(core.Command{
		ID:          "toggle-scroll-controls",
		Name:        "Toggle scroll buttons",
		Description: "Allow or suppress the strip's scroll buttons",
		Scopes:      shellScopes,
		Execute: func(m *core.Model) tea.Cmd {
			g := m.Group()
			off := !g.NoScrollControls()
			if off {
				m.SetStatus("Scroll buttons off")
			} else {
				m.SetStatus("Scroll buttons on")
			}
			return g.SetNoScrollControls(off)
		},
	})
	reg.Register(core.Command{
		ID:          "scroll-backward",
		Name:        "Scroll tabs back",
		Description: "Scroll the strip back by one viewport",
		Scopes:      shellScopes,
		Disabled:    scrollDisabled(func(g *tabs.Group) bool { return g.CanScrollBackward() }),
		Execute:     func(m *core.Model) tea.Cmd { return m.Group().ScrollBackward() },
	})
	reg.Register(core.Command{
		ID:          "scroll-forward",
		Name:        "Scroll tabs forward",
		Description: "Scroll the strip forward by one viewport",
		Scopes:      shellScopes,
		Disabled:    scrollDisabled(func(g *tabs.Group) bool { return g.CanScrollForward() }),
		Execute:     func(m *core.Model) tea.Cmd { return m.Group().ScrollForward() },
	})
	reg.Register(core.Command{
		ID:          "toggle-disabled-tab",
		Name:        "Toggle disabled tab",
		Description: "Enable or disable the Disabled tab",
		Scopes:      shellScopes,
		Disabled: func(m *core.Model) (bool, string) {
			if _, ok := m.Group().Tab("disabled"); !ok {
				return true, "No Disabled tab"
			}
			return false, ""
		},
		Execute: func(m *core.Model) tea.Cmd {
			t, _ := m.Group().Tab("disabled")
			if t.Disabled() {
				m.SetStatus("Disabled tab enabled")
			} else {
				m.SetStatus("Disabled tab disabled")
			}
			return t.SetDisabled(!t.Disabled())
		},
	})
	reg.Register(core.Command{
		ID:          "reopen-closed-tabs",
		Name:        "Reopen closed tabs",
		Description: "Bring back every tab closed in this group",
		Scopes:      shellScopes,
		Disabled: func(*core.Model) (bool, string) {
			if store == nil {
				return true, "No store configured"
			}
			return false, ""
		},
		Execute: func(m *core.Model) tea.Cmd {
			g := m.Group()
			names, err := store.Reopen(context.Background(), g.ID())
			if err != nil {
				return core.ErrorCmd(err)
			}
			cmds := make([]tea.Cmd, 0, 2*len(names))
			reopened := 0
			for _, name := range names {
				spec, ok := findSpec(specs, name)
				if !ok {
					continue
				}
				if _, exists := g.Tab(name); exists {
					continue
				}
				tab, panel := spec.Build()
				cmds = append(cmds, g.AddTab(tab), g.AddPanel(panel))
				reopened++
			}
			m.SetStatus(fmt.Sprintf("Reopened %d tab(s)", reopened))
			return tea.Batch(cmds...)
		},
	})
}

func scrollDisabled(can func(*tabs.Group) bool) func(*core.Model) (bool, string) {
	return func(m *core.Model) (bool, string) {
		g := m.Group()
		if !g.ScrollButtonsVisible() {
			return true, "Tab strip fits"
		}
		if !can(g) {
			return true, "Already at the edge"
		}
		return false, ""
	}
}
