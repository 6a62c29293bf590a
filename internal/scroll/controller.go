package scroll

import (
	"fmt"
	"math"
	"strings"
)

// Epsilon absorbs rounding between measured extents and rendered cells.
const Epsilon = 0.5

// smoothFactor is the share of the remaining distance covered per frame.
const smoothFactor = 0.35

type Behavior int

const (
	Smooth Behavior = iota
	Instant
)

func (b Behavior) String() string {
	switch b {
	case Instant:
		return "instant"
	default:
		return "smooth"
	}
}

func ParseBehavior(s string) (Behavior, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "smooth":
		return Smooth, nil
	case "instant", "auto":
		return Instant, nil
	default:
		return Smooth, fmt.Errorf("unknown scroll behavior %q", s)
	}
}

// Controller tracks how far a strip of content is scrolled inside its
// viewport along one axis. Extents are in terminal cells.
type Controller struct {
	content  float64
	viewport float64
	offset   float64
	target   float64
	behavior Behavior
	measured bool
}

func NewController(behavior Behavior) *Controller {
	return &Controller{behavior: behavior}
}

func (c *Controller) Behavior() Behavior     { return c.behavior }
func (c *Controller) SetBehavior(b Behavior) { c.behavior = b }
func (c *Controller) Measured() bool         { return c.measured }
func (c *Controller) Content() float64       { return c.content }
func (c *Controller) Viewport() float64      { return c.viewport }
func (c *Controller) Offset() float64        { return c.offset }
func (c *Controller) Target() float64        { return c.target }

// Cell is the offset rounded to a whole column or row.
func (c *Controller) Cell() int {
	return int(math.Round(c.offset))
}

// Measure records new extents. A non-positive viewport means the layout could
// not be read (detached or collapsed); the previous measurement is kept and
// false is returned so the caller retries on the next resize.
func (c *Controller) Measure(content, viewport float64) bool {
	if viewport <= 0 || content < 0 || math.IsNaN(content) || math.IsNaN(viewport) {
		return false
	}
	c.content = content
	c.viewport = viewport
	c.measured = true
	c.offset = c.clamp(c.offset)
	c.target = c.clamp(c.target)
	return true
}

// Reset forgets the measurement and scroll position.
func (c *Controller) Reset() {
	*c = Controller{behavior: c.behavior}
}

func (c *Controller) Overflowing() bool {
	return c.measured && c.content > c.viewport+Epsilon
}

func (c *Controller) CanScrollBackward() bool {
	return c.measured && c.offset > Epsilon
}

func (c *Controller) CanScrollForward() bool {
	return c.measured && c.offset+c.viewport < c.content-Epsilon
}

// ScrollBy moves the scroll target by delta. It reports whether animation
// frames are needed to reach the target.
func (c *Controller) ScrollBy(delta float64) bool {
	if !c.measured {
		return false
	}
	return c.ScrollTo(c.target + delta)
}

func (c *Controller) ScrollBackward() bool { return c.ScrollBy(-c.viewport) }
func (c *Controller) ScrollForward() bool  { return c.ScrollBy(c.viewport) }

func (c *Controller) ScrollTo(offset float64) bool {
	if !c.measured {
		return false
	}
	c.target = c.clamp(offset)
	if c.behavior == Instant {
		c.offset = c.target
	}
	return c.Animating()
}

// Visible reports whether [start, start+extent) lies inside the viewport.
func (c *Controller) Visible(start, extent float64) bool {
	if !c.measured {
		return false
	}
	return start >= c.target-Epsilon && start+extent <= c.target+c.viewport+Epsilon
}

// ScrollIntoView centers the given span when any part of it is outside the
// viewport. It reports whether animation frames are needed.
func (c *Controller) ScrollIntoView(start, extent float64) bool {
	if !c.measured || c.Visible(start, extent) {
		return false
	}
	return c.ScrollTo(start + extent/2 - c.viewport/2)
}

func (c *Controller) Animating() bool {
	return math.Abs(c.target-c.offset) > 0.01
}

// Step advances a smooth scroll by one frame and reports whether more frames
// are needed.
func (c *Controller) Step() bool {
	diff := c.target - c.offset
	if math.Abs(diff) <= 1 {
		c.offset = c.target
		return false
	}
	step := diff * smoothFactor
	if math.Abs(step) < 1 {
		step = math.Copysign(1, diff)
	}
	c.offset = c.clamp(c.offset + step)
	return c.Animating()
}

func (c *Controller) clamp(v float64) float64 {
	limit := math.Max(0, c.content-c.viewport)
	if v < 0 {
		return 0
	}
	if v > limit {
		return limit
	}
	return v
}
