// Package behavior implements single-axis scroll physics: rubber-band
// boundaries, momentum projection and direction bookkeeping.
//
// A Behavior never measures, schedules or renders anything. The caller feeds
// it rectangles and pointer deltas and applies the positions it returns.
package behavior

import (
	"math"
	"time"
)

// momentumRate scales the elastic overshoot allowed past an edge.
const momentumRate = 15

// MomentumData is the projected trajectory passed to momentum subscribers.
type MomentumData struct {
	Destination float64
	Duration    time.Duration
	Rate        float64
}

// MomentumInfo is the outcome of a finished gesture. Destination is only
// meaningful when HasDestination is set.
type MomentumInfo struct {
	Destination    float64
	HasDestination bool
	Duration       time.Duration
}

// CheckResult reports the boundary-adjusted position.
type CheckResult struct {
	Position   float64
	InBoundary bool
}

// Behavior tracks the scroll state of one axis.
type Behavior struct {
	opts     Options
	size     rectField
	position rectField

	wrapperRect Rect
	contentRect Rect

	wrapperSize       float64
	contentSize       float64
	originWrapperSize float64
	originContentSize float64
	relativeOffset    float64
	minScrollPos      float64
	maxScrollPos      float64
	hasScroll         bool

	currentPos      float64
	startPos        float64
	absStartPos     float64
	dist            float64
	direction       Direction
	movingDirection Direction

	hooks hooks
}

// New returns an engine for the axis named in opts.
func New(opts Options) *Behavior {
	size, position := opts.Axis.fields()
	return &Behavior{
		opts:     opts,
		size:     size,
		position: position,
	}
}

// Options returns the engine configuration.
func (b *Behavior) Options() Options {
	return b.opts
}

// OnMomentum subscribes to momentum projections. The returned func cancels
// the subscription.
func (b *Behavior) OnMomentum(fn MomentumFunc) func() {
	return b.hooks.onMomentum(fn)
}

// OnEnd subscribes to gestures that end without momentum.
func (b *Behavior) OnEnd(fn EndFunc) func() {
	return b.hooks.onEnd(fn)
}

// Start begins a gesture.
func (b *Behavior) Start() {
	b.direction = Default
	b.movingDirection = Default
	b.dist = 0
}

// Move returns the candidate position for a pointer delta. The caller is
// responsible for storing it with UpdatePosition.
func (b *Behavior) Move(delta float64) float64 {
	b.movingDirection = directionOf(delta)
	if !b.hasScroll {
		return b.currentPos
	}

	newPos := b.currentPos + delta
	if newPos > b.minScrollPos || newPos < b.maxScrollPos {
		if (newPos > b.minScrollPos && b.opts.Bounces[0]) ||
			(newPos < b.maxScrollPos && b.opts.Bounces[1]) {
			newPos = b.currentPos + delta/3
		} else if newPos > b.minScrollPos {
			newPos = b.minScrollPos
		} else {
			newPos = b.maxScrollPos
		}
	}
	return newPos
}

// End finishes a gesture that lasted elapsed and decides whether a momentum
// trajectory follows.
func (b *Behavior) End(elapsed time.Duration) MomentumInfo {
	info := MomentumInfo{}

	absDist := math.Abs(b.currentPos - b.startPos)
	if b.opts.Momentum &&
		elapsed > 0 &&
		elapsed < b.opts.MomentumLimitTime &&
		absDist > b.opts.MomentumLimitDistance {
		if !b.hasScroll {
			return MomentumInfo{Destination: round(b.currentPos), HasDestination: true}
		}
		wrapperSize := 0.0
		if (b.direction == Negative && b.opts.Bounces[0]) ||
			(b.direction == Positive && b.opts.Bounces[1]) {
			wrapperSize = b.wrapperSize
		}
		return b.momentum(b.currentPos, b.startPos, elapsed, b.maxScrollPos, b.minScrollPos, wrapperSize)
	}

	b.hooks.emitEnd(info)
	return info
}

func (b *Behavior) momentum(current, start float64, elapsed time.Duration, lowerMargin, upperMargin, wrapperSize float64) MomentumInfo {
	distance := current - start
	speed := math.Abs(distance) / milliseconds(elapsed)

	sign := 1.0
	if distance < 0 {
		sign = -1
	}
	data := MomentumData{
		Destination: current + (speed/b.opts.Deceleration)*sign,
		Duration:    b.opts.SwipeTime,
		Rate:        momentumRate,
	}
	data = b.hooks.emitMomentum(data, distance)

	rate := data.Rate
	if rate <= 0 {
		rate = momentumRate
	}
	if data.Destination < lowerMargin {
		if wrapperSize != 0 {
			data.Destination = math.Max(lowerMargin-wrapperSize/4, lowerMargin-(wrapperSize/rate)*speed)
		} else {
			data.Destination = lowerMargin
		}
		data.Duration = b.opts.SwipeBounceTime
	} else if data.Destination > upperMargin {
		if wrapperSize != 0 {
			data.Destination = math.Min(upperMargin+wrapperSize/4, upperMargin+(wrapperSize/rate)*speed)
		} else {
			data.Destination = upperMargin
		}
		data.Duration = b.opts.SwipeBounceTime
	}

	return MomentumInfo{
		Destination:    round(data.Destination),
		HasDestination: true,
		Duration:       data.Duration,
	}
}

// UpdateDirection settles the net direction of travel since the last
// absolute anchor.
func (b *Behavior) UpdateDirection() {
	absDist := round(b.currentPos) - b.absStartPos
	switch {
	case absDist > 0:
		b.direction = Negative
	case absDist < 0:
		b.direction = Positive
	default:
		b.direction = Default
	}
}

// SetDimensions stores new wrapper and content rectangles and refreshes the
// derived geometry.
func (b *Behavior) SetDimensions(wrapper, content Rect) {
	b.wrapperRect = wrapper
	b.contentRect = content
	b.Refresh()
}

// Refresh recomputes geometry from the stored rectangles.
func (b *Behavior) Refresh() {
	b.wrapperSize = b.size(b.wrapperRect)
	b.originWrapperSize = b.wrapperSize
	b.contentSize = b.size(b.contentRect)
	b.originContentSize = b.contentSize
	b.relativeOffset = b.position(b.contentRect) - b.position(b.wrapperRect)

	b.minScrollPos = 0
	b.maxScrollPos = b.wrapperSize - b.contentSize

	b.hasScroll = b.opts.Scrollable && b.maxScrollPos < b.minScrollPos
	if !b.hasScroll {
		b.maxScrollPos = b.minScrollPos
		b.contentSize = b.wrapperSize
	}

	b.direction = Default
}

// UpdatePosition stores the authoritative scroll offset.
func (b *Behavior) UpdatePosition(pos float64) {
	b.currentPos = pos
}

// CurrentPos returns the scroll offset rounded to a whole pixel.
func (b *Behavior) CurrentPos() float64 {
	return round(b.currentPos)
}

// RawPos returns the unrounded scroll offset.
func (b *Behavior) RawPos() float64 {
	return b.currentPos
}

// CheckInBoundary reports where the current offset belongs and whether it is
// already there.
func (b *Behavior) CheckInBoundary() CheckResult {
	position := round(b.AdjustPosition(b.currentPos))
	return CheckResult{
		Position:   position,
		InBoundary: position == b.CurrentPos(),
	}
}

// AdjustPosition snaps pos into the legal scroll range.
func (b *Behavior) AdjustPosition(pos float64) float64 {
	roundPos := round(pos)
	if !b.hasScroll || roundPos > b.minScrollPos {
		roundPos = b.minScrollPos
	} else if roundPos < b.maxScrollPos {
		roundPos = b.maxScrollPos
	}
	return roundPos
}

// UpdateStartPos anchors momentum distance at the current offset.
func (b *Behavior) UpdateStartPos() {
	b.startPos = b.currentPos
}

// UpdateAbsStartPos anchors direction tracking at the current offset.
func (b *Behavior) UpdateAbsStartPos() {
	b.absStartPos = b.currentPos
}

// ResetStartPos anchors both momentum distance and direction tracking.
func (b *Behavior) ResetStartPos() {
	b.UpdateStartPos()
	b.UpdateAbsStartPos()
}

// AbsDist accumulates delta and returns the absolute pointer travel since
// Start.
func (b *Behavior) AbsDist(delta float64) float64 {
	b.dist += delta
	return math.Abs(b.dist)
}

// Destroy releases all subscribers. The engine must not be used afterwards.
func (b *Behavior) Destroy() {
	b.hooks.destroy()
}

// HasScroll reports whether the axis has any travel range.
func (b *Behavior) HasScroll() bool { return b.hasScroll }

// MinScrollPos returns the start-edge offset, always 0.
func (b *Behavior) MinScrollPos() float64 { return b.minScrollPos }

// MaxScrollPos returns the end-edge offset.
func (b *Behavior) MaxScrollPos() float64 { return b.maxScrollPos }

// WrapperSize returns the wrapper extent along the axis.
func (b *Behavior) WrapperSize() float64 { return b.wrapperSize }

// ContentSize returns the content extent along the axis.
func (b *Behavior) ContentSize() float64 { return b.contentSize }

// OriginWrapperSize returns the measured wrapper extent.
func (b *Behavior) OriginWrapperSize() float64 { return b.originWrapperSize }

// OriginContentSize returns the measured content extent.
func (b *Behavior) OriginContentSize() float64 { return b.originContentSize }

// RelativeOffset returns the content position relative to the wrapper.
func (b *Behavior) RelativeOffset() float64 { return b.relativeOffset }

// StartPos returns the momentum anchor.
func (b *Behavior) StartPos() float64 { return b.startPos }

// AbsStartPos returns the direction anchor.
func (b *Behavior) AbsStartPos() float64 { return b.absStartPos }

// Direction returns the settled direction of the gesture.
func (b *Behavior) Direction() Direction { return b.direction }

// MovingDirection returns the direction of the latest Move.
func (b *Behavior) MovingDirection() Direction { return b.movingDirection }

// round rounds half toward positive infinity, so -2.5 becomes -2.
func round(v float64) float64 {
	return math.Floor(v + 0.5)
}

func milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
