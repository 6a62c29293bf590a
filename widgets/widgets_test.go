package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

type fixedWidget struct{ text string }

func (w fixedWidget) Render(width, height int) string {
	return w.text
}

func TestHStackFixedAndFlexibleSizes(t *testing.T) {
	h := HStack{Widgets: []Widget{fixedWidget{"A"}, fixedWidget{"B"}}, Sizes: []int{5, 0}, Gap: 1}
	lines := strings.Split(h.Render(20, 2), "\n")
	if len(lines) != 2 {
		t.Fatalf("line count = %d, want 2", len(lines))
	}
	if got := ansi.StringWidth(lines[0]); got != 20 {
		t.Fatalf("row width = %d, want 20", got)
	}
	if !strings.HasPrefix(lines[0], "A    ") || lines[0][6] != 'B' {
		t.Fatalf("unexpected layout %q", lines[0])
	}
}

func TestVStackSpacing(t *testing.T) {
	v := VStack{Widgets: []Widget{fixedWidget{"top"}, fixedWidget{"bottom"}}, Sizes: []int{1, 0}, Spacing: 1}
	lines := strings.Split(v.Render(20, 6), "\n")
	if len(lines) != 6 {
		t.Fatalf("line count = %d, want 6", len(lines))
	}
	if lines[0] != "top" || lines[2] != "bottom" {
		t.Fatalf("unexpected stack %q", lines)
	}
}

func TestSplitSizesShrinksFixedWhenTooSmall(t *testing.T) {
	got := splitSizes(6, 3, []int{4, 4, 0})
	if got[0] != 4 || got[1] != 2 || got[2] != 0 {
		t.Fatalf("splitSizes = %v", got)
	}
}

func TestTextTruncatesToBox(t *testing.T) {
	out := Text("abcdef\nsecond\nthird").Render(3, 2)
	if out != "abc\nsec" {
		t.Fatalf("text render = %q", out)
	}
}

func TestPaneDrawsTitleAndBody(t *testing.T) {
	out := Pane{Title: "General", Body: Text("hello")}.Render(20, 4)
	lines := strings.Split(out, "\n")
	if len(lines) != 4 {
		t.Fatalf("line count = %d, want 4", len(lines))
	}
	if !strings.Contains(lines[0], "General") || !strings.Contains(lines[1], "hello") {
		t.Fatalf("unexpected pane %q", lines)
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != 20 {
			t.Fatalf("line %d width = %d, want 20", i, w)
		}
	}
}

func TestRenderPopupOverlaysWithoutDroppingBase(t *testing.T) {
	base := strings.Join([]string{
		"row-0................",
		"row-1................",
		"row-2................",
		"row-3................",
		"row-4................",
		"row-5................",
		"row-6................",
		"row-7................",
		"row-8................",
	}, "\n")
	out := RenderPopup(base, "Popup", 20, 9)
	lines := strings.Split(out, "\n")
	if len(lines) != 9 {
		t.Fatalf("line count = %d, want 9", len(lines))
	}
	if !strings.Contains(out, "Popup") {
		t.Fatalf("expected popup content in output")
	}
	if !strings.Contains(lines[0], "row-0") {
		t.Fatalf("expected top base row preserved, got %q", lines[0])
	}
	if !strings.Contains(lines[8], "row-8") {
		t.Fatalf("expected bottom base row preserved, got %q", lines[8])
	}
}
