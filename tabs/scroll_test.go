package tabs

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/jask/tabset/internal/scroll"
)

func sizedGroup(t *testing.T, width, height, tabs int, opts ...Option) *Group {
	t.Helper()
	g := testGroup(opts...)
	addNumbered(g, tabs)
	initCmd := g.Init()
	resizeCmd := g.Resize(width, height)
	drain(t, g, tea.Batch(initCmd, resizeCmd))
	return g
}

func TestScrollButtonsShownWhenStripOverflows(t *testing.T) {
	g := sizedGroup(t, 40, 10, 30)
	require.True(t, g.ScrollButtonsVisible())
	require.False(t, g.CanScrollBackward())
	require.True(t, g.CanScrollForward())
}

func TestScrollButtonsHiddenForVerticalPlacement(t *testing.T) {
	for _, p := range []Placement{PlacementStart, PlacementEnd} {
		g := sizedGroup(t, 40, 10, 30, WithPlacement(p))
		require.False(t, g.ScrollButtonsVisible(), p.String())
	}
}

func TestScrollButtonsHiddenWhenDisabledOrFitting(t *testing.T) {
	g := sizedGroup(t, 40, 10, 30, WithNoScrollControls(true))
	require.False(t, g.ScrollButtonsVisible())

	g = sizedGroup(t, 40, 10, 3)
	require.False(t, g.ScrollButtonsVisible())
}

func TestScrollButtonsToggleWithSettings(t *testing.T) {
	g := sizedGroup(t, 40, 10, 30)
	require.True(t, g.ScrollButtonsVisible())
	drain(t, g, g.SetNoScrollControls(true))
	require.False(t, g.ScrollButtonsVisible())
	drain(t, g, g.SetNoScrollControls(false))
	require.True(t, g.ScrollButtonsVisible())
	drain(t, g, g.Resize(400, 10))
	require.False(t, g.ScrollButtonsVisible())
}

func TestResizeBurstCoalescesToOneFrame(t *testing.T) {
	g := testGroup()
	addNumbered(g, 30)
	first := g.Init()
	require.NotNil(t, first)
	require.Nil(t, g.Resize(40, 10))
	require.Nil(t, g.Resize(41, 10))
	require.Nil(t, g.Resize(42, 10))
	drain(t, g, first)
	require.True(t, g.ScrollButtonsVisible())
	require.NotNil(t, g.Resize(43, 10), "a new frame is requested once the previous one ran")
}

func TestMeasurementSkippedWhileCollapsed(t *testing.T) {
	g := testGroup()
	addNumbered(g, 30)
	drain(t, g, g.Init())
	require.False(t, g.ScrollButtonsVisible())
	require.Equal(t, "", g.View())

	drain(t, g, g.Resize(40, 10))
	require.True(t, g.ScrollButtonsVisible())
}

func TestShowScrollsActiveTabIntoView(t *testing.T) {
	g := sizedGroup(t, 40, 10, 30)
	drain(t, g, g.Show("t30"))

	sp := g.geometry.spans[g.ActiveTab()]
	require.True(t, g.scroll.Visible(float64(sp.start), float64(sp.extent)))
	require.Greater(t, g.ScrollOffset(), 0)
	require.False(t, g.CanScrollForward())
	require.True(t, g.CanScrollBackward())
}

func TestSmoothScrollConvergesOverFrames(t *testing.T) {
	g := sizedGroup(t, 40, 10, 30, WithScrollBehavior(scroll.Smooth))
	cmd := g.Show("t30")
	drain(t, g, cmd)
	require.False(t, g.scroll.Animating())
	require.Equal(t, int(g.scroll.Target()), g.ScrollOffset())
	require.False(t, g.CanScrollForward())
}

func TestScrollButtonsMoveOneViewport(t *testing.T) {
	g := sizedGroup(t, 40, 10, 30)
	viewport := int(g.scroll.Viewport())
	require.Equal(t, 40-2*scrollButtonWidth, viewport)

	drain(t, g, g.ScrollForward())
	require.Equal(t, viewport, g.ScrollOffset())
	drain(t, g, g.ScrollBackward())
	require.Equal(t, 0, g.ScrollOffset())
}

func TestFramesForOtherGroupsAreIgnored(t *testing.T) {
	g := sizedGroup(t, 40, 10, 30)
	require.Nil(t, g.Update(scroll.FrameMsg{Owner: "other", Kind: scroll.FrameMeasure}))
	require.Nil(t, g.Update(settleMsg{group: "other", seq: 1}))
}
