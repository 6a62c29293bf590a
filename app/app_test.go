package app

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jask/tabset/core"
	"github.com/jask/tabset/internal/config"
	"github.com/jask/tabset/tabs"
)

func testConfig() config.Config {
	return config.Config{
		Tabs: config.TabsConfig{
			Activation:     "auto",
			Placement:      "top",
			ScrollBehavior: "instant",
			FrameInterval:  time.Millisecond,
		},
	}
}

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, db, err := OpenStore(filepath.Join(t.TempDir(), "data", "tabset.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return store
}

func TestDemoTabsAppendNumberedClosableTabs(t *testing.T) {
	specs := DemoTabs(3)
	require.Len(t, specs, 7)
	require.True(t, specs[3].Disabled)
	require.Equal(t, "tab-3", specs[6].Name)
	require.True(t, specs[6].Closable)
}

func TestNewGroupRestoresSelectionAndSkipsClosedTabs(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	require.NoError(t, store.SaveSelection(ctx, DemoGroupID, "advanced"))
	require.NoError(t, store.SaveClosed(ctx, DemoGroupID, "tab-2"))

	g, err := NewGroup(ctx, Deps{Config: testConfig(), Store: store, ExtraTabs: 3})
	require.NoError(t, err)
	g.Init()

	require.Equal(t, "advanced", g.ActiveName())
	_, ok := g.Tab("tab-2")
	require.False(t, ok)
	require.Len(t, g.Tabs(), 6)
}

func TestNewGroupFallsBackWhenRememberedTabIsClosed(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	require.NoError(t, store.SaveSelection(ctx, DemoGroupID, "tab-1"))
	require.NoError(t, store.SaveClosed(ctx, DemoGroupID, "tab-1"))

	g, err := NewGroup(ctx, Deps{Config: testConfig(), Store: store, ExtraTabs: 1})
	require.NoError(t, err)
	g.Init()
	require.Equal(t, "general", g.ActiveName())
}

func TestNewGroupRejectsBadConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Tabs.Placement = "diagonal"
	_, err := NewGroup(context.Background(), Deps{Config: cfg})
	require.ErrorIs(t, err, tabs.ErrUnknownPlacement)
}

func TestCommandsDriveGroupSettings(t *testing.T) {
	m, err := NewModel(context.Background(), Deps{Config: testConfig()})
	require.NoError(t, err)
	m.Init()
	reg := m.CommandRegistry()

	reg.Execute("cycle-placement", &m)
	require.Equal(t, tabs.PlacementBottom, m.Group().Placement())

	reg.Execute("toggle-activation", &m)
	require.Equal(t, tabs.ActivationManual, m.Group().Activation())

	reg.Execute("toggle-scroll-controls", &m)
	require.True(t, m.Group().NoScrollControls())

	reg.Execute("toggle-disabled-tab", &m)
	tab, ok := m.Group().Tab("disabled")
	require.True(t, ok)
	require.False(t, tab.Disabled())

	msg := reg.Execute("scroll-forward", &m)()
	require.Equal(t, core.StatusMsg{Text: "Tab strip fits"}, msg)

	msg = reg.Execute("reopen-closed-tabs", &m)()
	require.Equal(t, core.StatusMsg{Text: "No store configured"}, msg)
}

func TestReopenClosedTabsRestoresThem(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	require.NoError(t, store.SaveClosed(ctx, DemoGroupID, "tab-1"))

	m, err := NewModel(ctx, Deps{Config: testConfig(), Store: store, ExtraTabs: 2})
	require.NoError(t, err)
	m.Init()
	_, ok := m.Group().Tab("tab-1")
	require.False(t, ok)

	m.CommandRegistry().Execute("reopen-closed-tabs", &m)
	_, ok = m.Group().Tab("tab-1")
	require.True(t, ok)
	_, ok = m.Group().Panel("tab-1")
	require.True(t, ok)
	status, _ := m.Status()
	require.Equal(t, "Reopened 1 tab(s)", status)

	_, closed, err := store.Restore(ctx, DemoGroupID)
	require.NoError(t, err)
	require.Empty(t, closed)
}

func TestKeyOverridesFromConfig(t *testing.T) {
	cfg := testConfig()
	cfg.Keys = map[string][]string{"quit": {"x"}}
	m, err := NewModel(context.Background(), Deps{Config: cfg})
	require.NoError(t, err)
	bindings := m.KeyRegistry().BindingsForScope(core.ScopePanel)
	for _, b := range bindings {
		if b.Action == "quit" {
			require.Equal(t, []string{"x"}, b.Keys)
			return
		}
	}
	t.Fatalf("quit binding missing")
}

func TestStoreClearIsAllOrNothing(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	require.NoError(t, store.SaveSelection(ctx, DemoGroupID, "advanced"))
	require.NoError(t, store.SaveClosed(ctx, DemoGroupID, "tab-1"))

	_, err := store.db.ExecContext(ctx, `DROP TABLE closed_tabs`)
	require.NoError(t, err)
	_, _, err = store.Clear(ctx)
	require.ErrorContains(t, err, "clear closed tabs")

	sels, err := store.Selections.List(ctx)
	require.NoError(t, err)
	require.Len(t, sels, 1, "selections must survive a failed clear")
}

func TestStoreClearAndGroups(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	require.NoError(t, store.SaveSelection(ctx, DemoGroupID, "custom"))
	require.NoError(t, store.SaveClosed(ctx, "aside", "notes"))
	require.NoError(t, store.SaveClosed(ctx, "aside", "drafts"))

	groups, err := store.Groups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 2)
	require.Equal(t, "aside", groups[0].GroupID)
	require.Empty(t, groups[0].Panel)
	require.ElementsMatch(t, []string{"notes", "drafts"}, groups[0].Closed)
	require.Equal(t, DemoGroupID, groups[1].GroupID)
	require.Equal(t, "custom", groups[1].Panel)
	require.Empty(t, groups[1].Closed)

	sels, closed, err := store.Clear(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), sels)
	require.Equal(t, int64(2), closed)
	groups, err = store.Groups(ctx)
	require.NoError(t, err)
	require.Empty(t, groups)
}

func TestStoreReopenReturnsAndForgetsClosedTabs(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)
	require.NoError(t, store.SaveClosed(ctx, DemoGroupID, "tab-1"))
	require.NoError(t, store.SaveClosed(ctx, "aside", "notes"))

	names, err := store.Reopen(ctx, DemoGroupID)
	require.NoError(t, err)
	require.Equal(t, []string{"tab-1"}, names)

	groups, err := store.Groups(ctx)
	require.NoError(t, err)
	require.Len(t, groups, 1)
	require.Equal(t, "aside", groups[0].GroupID)
}
