package widgets

import "strings"

// VStack stacks widgets top to bottom. Sizes holds a fixed height per widget;
// zero entries share whatever height remains.
type VStack struct {
	Widgets []Widget
	Sizes   []int
	Spacing int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	spacingTotal := max(0, v.Spacing*(len(v.Widgets)-1))
	heights := splitSizes(max(0, height-spacingTotal), len(v.Widgets), v.Sizes)
	lines := make([]string, 0, height)
	for i, w := range v.Widgets {
		if heights[i] > 0 && w != nil {
			lines = append(lines, FitHeight(w.Render(width, heights[i]), heights[i]))
		}
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, "")
			}
		}
	}
	return FitHeight(strings.Join(lines, "\n"), height)
}

// HStack places widgets left to right. Sizes holds a fixed width per widget;
// zero entries share whatever width remains.
type HStack struct {
	Widgets []Widget
	Sizes   []int
	Gap     int
}

func (h HStack) Render(width, height int) string {
	if len(h.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Widgets)-1))
	widths := splitSizes(max(0, width-gapTotal), len(h.Widgets), h.Sizes)
	rendered := make([][]string, len(h.Widgets))
	for i, w := range h.Widgets {
		if widths[i] <= 0 || w == nil {
			continue
		}
		rendered[i] = splitToLines(w.Render(widths[i], height), height)
	}
	out := make([]string, 0, height)
	for line := 0; line < height; line++ {
		cols := make([]string, 0, len(rendered))
		for i := range rendered {
			if widths[i] <= 0 {
				continue
			}
			cell := ""
			if line < len(rendered[i]) {
				cell = rendered[i][line]
			}
			cols = append(cols, padRight(cell, widths[i]))
		}
		out = append(out, strings.Join(cols, strings.Repeat(" ", h.Gap)))
	}
	return strings.Join(out, "\n")
}

// splitSizes hands fixed sizes out first, then divides the rest evenly across
// the flexible slots. Fixed sizes are shrunk when they do not fit.
func splitSizes(total, n int, sizes []int) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	flex := 0
	used := 0
	for i := range out {
		if i < len(sizes) && sizes[i] > 0 {
			out[i] = min(sizes[i], max(0, total-used))
			used += out[i]
			continue
		}
		flex++
	}
	if flex == 0 {
		return out
	}
	rest := max(0, total-used)
	share := rest / flex
	extra := rest % flex
	for i := range out {
		if i < len(sizes) && sizes[i] > 0 {
			continue
		}
		out[i] = share
		if extra > 0 {
			out[i]++
			extra--
		}
	}
	return out
}
