package tabs

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	zone "github.com/lrstanley/bubblezone"

	"github.com/jask/tabset/icons"
	"github.com/jask/tabset/internal/scroll"
)

var (
	ErrUnknownActivation = errors.New("unknown activation")
	ErrUnknownPlacement  = errors.New("unknown placement")
)

// Activation decides whether moving keyboard focus also selects.
type Activation int

const (
	ActivationAuto Activation = iota
	ActivationManual
)

func (a Activation) String() string {
	if a == ActivationManual {
		return "manual"
	}
	return "auto"
}

func ParseActivation(s string) (Activation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ActivationAuto, nil
	case "manual":
		return ActivationManual, nil
	default:
		return ActivationAuto, fmt.Errorf("%w: %q", ErrUnknownActivation, s)
	}
}

// Placement is the edge of the group the header strip is drawn on.
type Placement int

const (
	PlacementTop Placement = iota
	PlacementBottom
	PlacementStart
	PlacementEnd
)

func (p Placement) String() string {
	switch p {
	case PlacementBottom:
		return "bottom"
	case PlacementStart:
		return "start"
	case PlacementEnd:
		return "end"
	default:
		return "top"
	}
}

// Horizontal reports whether the strip runs left to right.
func (p Placement) Horizontal() bool {
	return p == PlacementTop || p == PlacementBottom
}

func ParsePlacement(s string) (Placement, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "top":
		return PlacementTop, nil
	case "bottom":
		return PlacementBottom, nil
	case "start", "left":
		return PlacementStart, nil
	case "end", "right":
		return PlacementEnd, nil
	default:
		return PlacementTop, fmt.Errorf("%w: %q", ErrUnknownPlacement, s)
	}
}

type Option func(*Group)

func WithID(id string) Option {
	return func(g *Group) {
		if id = strings.TrimSpace(id); id != "" {
			g.id = id
		}
	}
}

func WithActivation(a Activation) Option { return func(g *Group) { g.activation = a } }

func WithPlacement(p Placement) Option { return func(g *Group) { g.placement = p } }

func WithNoScrollControls(v bool) Option { return func(g *Group) { g.noScrollControls = v } }

func WithScrollBehavior(b scroll.Behavior) Option { return func(g *Group) { g.behavior = b } }

// WithFrameInterval sets how long geometry recomputation and animation wait
// for the next frame.
func WithFrameInterval(d time.Duration) Option { return func(g *Group) { g.frameInterval = d } }

// WithActive preselects a panel. It is honored at Init if the matching tab
// exists and is enabled.
func WithActive(name string) Option { return func(g *Group) { g.activeName = name } }

func WithKeyMap(km KeyMap) Option { return func(g *Group) { g.keys = km } }

func WithStyles(s Styles) Option { return func(g *Group) { g.styles = s } }

func WithIcons(reg *icons.Registry, library string) Option {
	return func(g *Group) {
		if reg != nil {
			g.icons = reg
		}
		if library != "" {
			g.iconLibrary = library
		}
	}
}

// WithZones enables mouse handling. The embedder must pass its final view
// through the same manager's Scan.
func WithZones(z *zone.Manager) Option { return func(g *Group) { g.zones = z } }

func WithLogger(l *log.Logger) Option {
	return func(g *Group) {
		if l != nil {
			g.logger = l
		}
	}
}
