package core

import "github.com/jask/tabset/tabs"

// ScreenStack holds the overlays drawn above the tab group. An overlay takes
// keyboard focus from the strip while it is open and hands it back when it
// closes.
type ScreenStack struct {
	items []stackedScreen
}

type stackedScreen struct {
	screen     Screen
	stripFocus bool
}

func (s *ScreenStack) Push(screen Screen, g *tabs.Group) {
	if screen == nil {
		return
	}
	focused := g != nil && g.Focused()
	if focused {
		g.Blur()
	}
	s.items = append(s.items, stackedScreen{screen: screen, stripFocus: focused})
}

func (s *ScreenStack) Pop(g *tabs.Group) Screen {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	if last.stripFocus && g != nil {
		g.Focus()
	}
	return last.screen
}

// Replace swaps the top screen for its updated value.
func (s *ScreenStack) Replace(screen Screen) {
	if len(s.items) == 0 || screen == nil {
		return
	}
	s.items[len(s.items)-1].screen = screen
}

func (s ScreenStack) Top() Screen {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1].screen
}

func (s ScreenStack) Len() int {
	return len(s.items)
}
