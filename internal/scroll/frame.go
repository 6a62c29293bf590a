package scroll

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// DefaultFrameInterval is one frame at 60fps.
const DefaultFrameInterval = time.Second / 60

type FrameKind int

const (
	FrameMeasure FrameKind = iota
	FrameAnimate
)

// FrameMsg is delivered at a frame boundary to the coalescer that requested it.
type FrameMsg struct {
	Owner string
	Kind  FrameKind
	Gen   uint64
}

// Coalescer turns any number of requests made within one frame into a single
// trailing FrameMsg.
type Coalescer struct {
	owner    string
	kind     FrameKind
	interval time.Duration
	gen      uint64
	pending  bool
}

func NewCoalescer(owner string, kind FrameKind, interval time.Duration) *Coalescer {
	if interval <= 0 {
		interval = DefaultFrameInterval
	}
	return &Coalescer{owner: owner, kind: kind, interval: interval}
}

func (c *Coalescer) Pending() bool { return c.pending }

// Request schedules the next frame. It returns nil when a frame is already
// scheduled.
func (c *Coalescer) Request() tea.Cmd {
	if c.pending {
		return nil
	}
	c.pending = true
	msg := FrameMsg{Owner: c.owner, Kind: c.kind, Gen: c.gen}
	return tea.Tick(c.interval, func(time.Time) tea.Msg { return msg })
}

// Accept consumes msg if it is the frame this coalescer is waiting for.
func (c *Coalescer) Accept(msg FrameMsg) bool {
	if !c.pending || msg.Owner != c.owner || msg.Kind != c.kind || msg.Gen != c.gen {
		return false
	}
	c.pending = false
	return true
}

// Cancel drops the pending frame; a tick already in flight is ignored when it
// arrives.
func (c *Coalescer) Cancel() {
	c.gen++
	c.pending = false
}
