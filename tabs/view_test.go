package tabs

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/tabset/icons"
)

func viewLines(t *testing.T, g *Group) []string {
	t.Helper()
	out := ansi.Strip(g.View())
	lines := strings.Split(out, "\n")
	w, h := g.Size()
	if len(lines) != h {
		t.Fatalf("view has %d lines, want %d", len(lines), h)
	}
	for i, line := range lines {
		if got := ansi.StringWidth(line); got != w {
			t.Fatalf("line %d width = %d, want %d: %q", i, got, w, line)
		}
	}
	return lines
}

func labelledGroup(t *testing.T, width, height int, opts ...Option) *Group {
	t.Helper()
	g := testGroup(opts...)
	addPair(g, "a", "Alpha")
	addPair(g, "b", "Beta")
	drain(t, g, g.Init())
	drain(t, g, g.Resize(width, height))
	return g
}

func TestViewTopPlacement(t *testing.T) {
	g := labelledGroup(t, 30, 5)
	lines := viewLines(t, g)
	if !strings.Contains(lines[0], "Alpha") || !strings.Contains(lines[0], "Beta") {
		t.Fatalf("strip missing labels: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "━━━━━━━") {
		t.Fatalf("indicator should sit under the active tab: %q", lines[1])
	}
	if !strings.Contains(lines[2], "Alpha body") {
		t.Fatalf("active panel not drawn: %q", lines[2])
	}
}

func TestViewBottomPlacement(t *testing.T) {
	g := labelledGroup(t, 30, 5, WithPlacement(PlacementBottom))
	lines := viewLines(t, g)
	if !strings.Contains(lines[0], "Alpha body") {
		t.Fatalf("panel should be on top: %q", lines[0])
	}
	if !strings.Contains(lines[4], "Alpha") || strings.Contains(lines[4], "body") {
		t.Fatalf("strip should be the last line: %q", lines[4])
	}
}

func TestViewStartAndEndPlacement(t *testing.T) {
	g := labelledGroup(t, 40, 4, WithPlacement(PlacementStart))
	lines := viewLines(t, g)
	if !strings.HasPrefix(lines[0], " Alpha ") || !strings.Contains(lines[0], "▌") || !strings.Contains(lines[0], "Alpha body") {
		t.Fatalf("unexpected start row: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], " Beta ") {
		t.Fatalf("unexpected second row: %q", lines[1])
	}

	g = labelledGroup(t, 40, 4, WithPlacement(PlacementEnd))
	lines = viewLines(t, g)
	if !strings.HasPrefix(lines[0], "Alpha body") || !strings.Contains(lines[0], "▌ Alpha") {
		t.Fatalf("unexpected end row: %q", lines[0])
	}
}

func TestViewShowsScrollButtonsWhenOverflowing(t *testing.T) {
	g := sizedGroup(t, 40, 4, 30)
	lines := viewLines(t, g)
	if !strings.HasPrefix(lines[0], " ‹ ") || !strings.HasSuffix(lines[0], " › ") {
		t.Fatalf("scroll buttons missing: %q", lines[0])
	}

	g = sizedGroup(t, 40, 4, 30, WithIcons(icons.NewRegistry(), icons.ASCIILibrary))
	lines = viewLines(t, g)
	if !strings.HasPrefix(lines[0], " < ") || !strings.HasSuffix(lines[0], " > ") {
		t.Fatalf("ascii scroll buttons missing: %q", lines[0])
	}
}

func TestViewClosableTabShowsCloseGlyph(t *testing.T) {
	g := testGroup()
	addPair(g, "a", "Alpha", TabClosable(true))
	drain(t, g, g.Init())
	drain(t, g, g.Resize(30, 3))
	lines := viewLines(t, g)
	if !strings.HasPrefix(lines[0], " Alpha × ") {
		t.Fatalf("close glyph missing: %q", lines[0])
	}
}

func TestViewWindowFollowsScrollOffset(t *testing.T) {
	g := sizedGroup(t, 40, 3, 30)
	drain(t, g, g.Show("t30"))
	lines := viewLines(t, g)
	if !strings.Contains(lines[0], "Tab 30") || strings.Contains(lines[0], "Tab 1 ") {
		t.Fatalf("window should show the end of the strip: %q", lines[0])
	}
}
