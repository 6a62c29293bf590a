package tabs

import (
	"fmt"
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/tabset/internal/scroll"
	"github.com/jask/tabset/widgets"
)

func testGroup(opts ...Option) *Group {
	base := []Option{
		WithID("g"),
		WithFrameInterval(time.Millisecond),
		WithScrollBehavior(scroll.Instant),
	}
	return New(append(base, opts...)...)
}

func addPair(g *Group, name, label string, opts ...TabOption) (*Tab, *Panel) {
	tab := NewTab(name, label, opts...)
	panel := NewPanel(name, widgets.Text(label+" body"))
	g.AddTab(tab)
	g.AddPanel(panel)
	return tab, panel
}

func addNumbered(g *Group, n int) {
	for i := 1; i <= n; i++ {
		addPair(g, fmt.Sprintf("t%d", i), fmt.Sprintf("Tab %d", i))
	}
}

type recorder struct {
	events []string
}

func (r *recorder) listen(g *Group) {
	for _, kind := range []EventKind{EventBeforeHide, EventBeforeShow, EventHide, EventShow, EventClose} {
		g.On(kind, func(e *Event) {
			r.events = append(r.events, e.Kind.String()+":"+e.Name)
		})
	}
}

// drain runs cmd and everything it produces, feeding the group's own
// messages back through Update. Other messages are returned in the order
// the program would deliver them.
func drain(t *testing.T, g *Group, cmd tea.Cmd) []tea.Msg {
	t.Helper()
	var out []tea.Msg
	queue := []tea.Cmd{cmd}
	for steps := 0; len(queue) > 0; steps++ {
		if steps > 2000 {
			t.Fatalf("commands did not settle")
		}
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if cmds, ok := nestedCmds(msg); ok {
			queue = append(append([]tea.Cmd{}, cmds...), queue...)
			continue
		}
		switch msg.(type) {
		case settleMsg, scroll.FrameMsg:
			queue = append(queue, g.Update(msg))
		case nil:
		default:
			out = append(out, msg)
		}
	}
	return out
}

// nestedCmds unwraps batch and sequence messages, both of which are slices
// of commands.
func nestedCmds(msg tea.Msg) ([]tea.Cmd, bool) {
	if batch, ok := msg.(tea.BatchMsg); ok {
		return batch, true
	}
	v := reflect.ValueOf(msg)
	if !v.IsValid() || v.Kind() != reflect.Slice || v.Type().Elem() != reflect.TypeOf(tea.Cmd(nil)) {
		return nil, false
	}
	cmds := make([]tea.Cmd, v.Len())
	for i := range cmds {
		cmds[i], _ = v.Index(i).Interface().(tea.Cmd)
	}
	return cmds, true
}

func activeCount(g *Group) (tabs, panels int) {
	for _, t := range g.Tabs() {
		if t.Active() {
			tabs++
		}
	}
	for _, p := range g.Panels() {
		if p.Active() {
			panels++
		}
	}
	return tabs, panels
}
