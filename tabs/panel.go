package tabs

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/jask/tabset/widgets"
)

// PanelObserver is notified when a panel's name changes.
type PanelObserver func(p *Panel) tea.Cmd

// Panel is the content shown while the tab naming it is selected. Only the
// owning Group writes its active state.
type Panel struct {
	id         string
	name       string
	active     bool
	labelledBy string
	content    widgets.Widget

	attrs     map[string]string
	observers observers[PanelObserver]
}

type PanelOption func(*Panel)

func PanelID(id string) PanelOption {
	return func(p *Panel) {
		if id = strings.TrimSpace(id); id != "" {
			p.id = id
		}
	}
}

func NewPanel(name string, content widgets.Widget, opts ...PanelOption) *Panel {
	p := &Panel{name: name, content: content}
	for _, opt := range opts {
		opt(p)
	}
	if p.id == "" {
		p.id = "panel-" + uuid.NewString()
	}
	p.syncAttributes()
	return p
}

func (p *Panel) ID() string                  { return p.id }
func (p *Panel) Name() string                { return p.name }
func (p *Panel) Active() bool                { return p.active }
func (p *Panel) LabelledBy() string          { return p.labelledBy }
func (p *Panel) Content() widgets.Widget     { return p.content }
func (p *Panel) SetContent(w widgets.Widget) { p.content = w }

type PanelDescriptor struct {
	Name   string
	Active bool
}

func (p *Panel) Descriptor() PanelDescriptor {
	return PanelDescriptor{Name: p.name, Active: p.active}
}

func (p *Panel) SetName(name string) tea.Cmd {
	if p.name == name {
		return nil
	}
	p.name = name
	var cmds []tea.Cmd
	for _, fn := range p.observers.snapshot() {
		cmds = append(cmds, fn(p))
	}
	return tea.Batch(cmds...)
}

func (p *Panel) Attr(name string) (string, bool) {
	v, ok := p.attrs[name]
	return v, ok
}

func (p *Panel) Attributes() map[string]string {
	out := make(map[string]string, len(p.attrs))
	for k, v := range p.attrs {
		out[k] = v
	}
	return out
}

func (p *Panel) Observe(fn PanelObserver) func() {
	if fn == nil {
		return func() {}
	}
	return p.observers.add(fn)
}

// Render draws the content regardless of active state; the group decides
// which panel is drawn.
func (p *Panel) Render(width, height int) string {
	if p.content == nil || width <= 0 || height <= 0 {
		return ""
	}
	return widgets.FitCanvas(p.content.Render(width, height), width, height)
}

func (p *Panel) setActive(v bool) {
	p.active = v
	p.syncAttributes()
}

func (p *Panel) setLabelledBy(id string) {
	p.labelledBy = id
	p.syncAttributes()
}

func (p *Panel) syncAttributes() {
	p.attrs = map[string]string{
		"id":          p.id,
		"role":        "tabpanel",
		"aria-hidden": strconv.FormatBool(!p.active),
	}
	if p.labelledBy != "" {
		p.attrs["aria-labelledby"] = p.labelledBy
	}
}
