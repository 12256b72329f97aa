package behavior

import (
	"time"

	"github.com/verte-zerg/flick/internal/model"
)

// Bounces enables elastic overscroll at the start and end edge of an axis.
type Bounces [2]bool

// Options configures a single axis engine.
type Options struct {
	Scrollable            bool
	Momentum              bool
	MomentumLimitTime     time.Duration
	MomentumLimitDistance float64
	Deceleration          float64
	SwipeBounceTime       time.Duration
	SwipeTime             time.Duration
	Bounces               Bounces
	Axis                  Axis
}

// NewOptions derives per-axis options from the scroller configuration.
func NewOptions(cfg model.ScrollConfig, axis Axis, bounces Bounces) Options {
	scrollable := cfg.ScrollY
	if axis == Horizontal {
		scrollable = cfg.ScrollX
	}
	return Options{
		Scrollable:            scrollable,
		Momentum:              cfg.Momentum,
		MomentumLimitTime:     cfg.MomentumLimitTime,
		MomentumLimitDistance: cfg.MomentumLimitDistance,
		Deceleration:          cfg.Deceleration,
		SwipeBounceTime:       cfg.SwipeBounceTime,
		SwipeTime:             cfg.SwipeTime,
		Bounces:               bounces,
		Axis:                  axis,
	}
}

// BouncesFor picks the edge flags that apply to an axis.
func BouncesFor(b model.Bounce, axis Axis) Bounces {
	if axis == Horizontal {
		return Bounces{b.Left, b.Right}
	}
	return Bounces{b.Top, b.Bottom}
}
