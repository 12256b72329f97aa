// Package scroller drives a pair of axis engines from pointer gestures.
package scroller

import (
	"math"
	"time"

	"github.com/verte-zerg/flick/internal/behavior"
	"github.com/verte-zerg/flick/internal/log"
	"github.com/verte-zerg/flick/internal/model"
)

// Point is a position or pointer coordinate in cells.
type Point struct {
	X float64
	Y float64
}

// DirectionLock restricts a gesture to one axis.
type DirectionLock int

// DirectionLock values. LockDefault means the lock is not resolved yet.
const (
	LockDefault DirectionLock = iota
	LockHorizontal
	LockVertical
	LockNone
)

// String implements fmt.Stringer.
func (l DirectionLock) String() string {
	switch l {
	case LockHorizontal:
		return "horizontal"
	case LockVertical:
		return "vertical"
	case LockNone:
		return "none"
	default:
		return "default"
	}
}

// Kind describes what a Trajectory animates.
type Kind int

// Trajectory kinds.
const (
	KindNone Kind = iota
	KindMomentum
	KindMomentumBounce
	KindBounce
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindMomentum:
		return "momentum"
	case KindMomentumBounce:
		return "momentum-bounce"
	case KindBounce:
		return "bounce"
	default:
		return "none"
	}
}

// Trajectory is an animation the caller should run after a gesture.
type Trajectory struct {
	From     Point
	To       Point
	Duration time.Duration
	Kind     Kind
}

// Scroller coordinates the horizontal and vertical engines.
type Scroller struct {
	cfg    model.ScrollConfig
	x      *behavior.Behavior
	y      *behavior.Behavior
	logger *log.Logger

	active    bool
	moved     bool
	lock      DirectionLock
	last      Point
	startTime time.Time
	endTime   time.Time
	moving    [2]behavior.Direction
}

// New returns a Scroller configured by cfg. A nil logger discards records.
func New(cfg model.ScrollConfig, logger *log.Logger) *Scroller {
	if logger == nil {
		logger = log.Discard()
	}
	s := &Scroller{
		cfg:    cfg,
		x:      behavior.New(behavior.NewOptions(cfg, behavior.Horizontal, behavior.BouncesFor(cfg.Bounce, behavior.Horizontal))),
		y:      behavior.New(behavior.NewOptions(cfg, behavior.Vertical, behavior.BouncesFor(cfg.Bounce, behavior.Vertical))),
		logger: logger,
	}
	for _, b := range []*behavior.Behavior{s.x, s.y} {
		axisLogger := logger.With("axis", b.Options().Axis.String())
		b.OnMomentum(func(data behavior.MomentumData, distance float64) behavior.MomentumData {
			axisLogger.Debug("momentum projected",
				"destination", data.Destination,
				"duration", data.Duration,
				"distance", distance,
			)
			return data
		})
		b.OnEnd(func(behavior.MomentumInfo) {
			axisLogger.Debug("gesture ended without momentum")
		})
	}
	return s
}

// Axis returns the engine for an axis.
func (s *Scroller) Axis(a behavior.Axis) *behavior.Behavior {
	if a == behavior.Horizontal {
		return s.x
	}
	return s.y
}

// OnMomentum subscribes fn to momentum projections on both axes.
func (s *Scroller) OnMomentum(fn behavior.MomentumFunc) func() {
	cancelX := s.x.OnMomentum(fn)
	cancelY := s.y.OnMomentum(fn)
	return func() {
		cancelX()
		cancelY()
	}
}

// OnEnd subscribes fn to gestures that end without momentum on either axis.
func (s *Scroller) OnEnd(fn behavior.EndFunc) func() {
	cancelX := s.x.OnEnd(fn)
	cancelY := s.y.OnEnd(fn)
	return func() {
		cancelX()
		cancelY()
	}
}

// Config returns the scroller configuration.
func (s *Scroller) Config() model.ScrollConfig {
	return s.cfg
}

// Refresh applies new wrapper and content rectangles and snaps the position
// back into range.
func (s *Scroller) Refresh(wrapper, content behavior.Rect) {
	s.x.SetDimensions(wrapper, content)
	s.y.SetDimensions(wrapper, content)
	s.snap()
}

// Position returns the rounded scroll offset.
func (s *Scroller) Position() Point {
	return Point{X: s.x.CurrentPos(), Y: s.y.CurrentPos()}
}

// SetPosition stores an offset without clamping. Animators use it to apply
// frames.
func (s *Scroller) SetPosition(p Point) {
	s.x.UpdatePosition(p.X)
	s.y.UpdatePosition(p.Y)
}

// ScrollBy moves the content by a delta, clamped into range.
func (s *Scroller) ScrollBy(dx, dy float64) {
	s.ScrollTo(s.x.RawPos()+dx, s.y.RawPos()+dy)
}

// ScrollTo moves the content to an offset, clamped into range.
func (s *Scroller) ScrollTo(x, y float64) {
	s.x.UpdatePosition(s.x.AdjustPosition(x))
	s.y.UpdatePosition(s.y.AdjustPosition(y))
}

// Active reports whether a gesture is in progress.
func (s *Scroller) Active() bool {
	return s.active
}

// Lock returns the direction lock of the current gesture.
func (s *Scroller) Lock() DirectionLock {
	return s.lock
}

// Start begins a gesture at pointer p.
func (s *Scroller) Start(p Point, now time.Time) {
	s.active = true
	s.moved = false
	s.lock = LockDefault
	s.last = p
	s.startTime = now
	s.moving = [2]behavior.Direction{}

	s.x.Start()
	s.y.Start()
	s.x.ResetStartPos()
	s.y.ResetStartPos()
}

// Move feeds a pointer move and reports whether the content moved.
func (s *Scroller) Move(p Point, now time.Time) bool {
	if !s.active {
		return false
	}
	deltaX := p.X - s.last.X
	deltaY := p.Y - s.last.Y
	s.last = p

	absDistX := s.x.AbsDist(deltaX)
	absDistY := s.y.AbsDist(deltaY)

	// Travel must exceed the momentum distance before scrolling initiates,
	// unless the previous gesture ended recently.
	if now.Sub(s.endTime) > s.cfg.MomentumLimitTime &&
		absDistX < s.cfg.MomentumLimitDistance &&
		absDistY < s.cfg.MomentumLimitDistance {
		return false
	}

	deltaX, deltaY = s.adjustDelta(absDistX, absDistY, deltaX, deltaY)

	prev := s.Position()
	newX := s.x.Move(deltaX)
	newY := s.y.Move(deltaY)
	s.x.UpdatePosition(newX)
	s.y.UpdatePosition(newY)
	if !s.moved {
		s.moved = true
		s.logger.Debug("scroll started", "lock", s.lock.String())
	}

	if s.reversed() || now.Sub(s.startTime) > s.cfg.MomentumLimitTime {
		s.startTime = now
		s.x.UpdateStartPos()
		s.y.UpdateStartPos()
	}
	return s.Position() != prev
}

func (s *Scroller) adjustDelta(absDistX, absDistY, deltaX, deltaY float64) (float64, float64) {
	if s.lock == LockDefault && !s.cfg.FreeScroll {
		switch {
		case absDistX > absDistY+s.cfg.DirectionLockThreshold:
			s.lock = LockHorizontal
		case absDistY >= absDistX+s.cfg.DirectionLockThreshold:
			s.lock = LockVertical
		default:
			s.lock = LockNone
		}
	}
	switch s.lock {
	case LockHorizontal:
		deltaY = 0
	case LockVertical:
		deltaX = 0
	}
	return deltaX, deltaY
}

// reversed reports whether either axis changed its moving direction since
// the previous move.
func (s *Scroller) reversed() bool {
	current := [2]behavior.Direction{s.x.MovingDirection(), s.y.MovingDirection()}
	flipped := false
	for i, d := range current {
		if d == behavior.Default {
			continue
		}
		if s.moving[i] != behavior.Default && s.moving[i] != d {
			flipped = true
		}
		s.moving[i] = d
	}
	return flipped
}

// End finishes the gesture. The returned trajectory has KindNone when no
// animation is needed.
func (s *Scroller) End(now time.Time) Trajectory {
	if !s.active {
		return Trajectory{From: s.Position(), To: s.Position()}
	}
	s.active = false
	s.x.UpdateDirection()
	s.y.UpdateDirection()

	if t, ok := s.ResetPosition(); ok {
		s.endTime = now
		s.logger.Debug("gesture ended out of bounds", "to_x", t.To.X, "to_y", t.To.Y)
		return t
	}

	pos := s.Position()
	s.SetPosition(pos)
	s.endTime = now
	if !s.moved {
		return Trajectory{From: pos, To: pos}
	}

	elapsed := now.Sub(s.startTime)
	momentumX := s.x.End(elapsed)
	momentumY := s.y.End(elapsed)

	to := pos
	if momentumX.HasDestination {
		to.X = momentumX.Destination
	}
	if momentumY.HasDestination {
		to.Y = momentumY.Destination
	}
	t := Trajectory{
		From:     pos,
		To:       to,
		Duration: maxDuration(momentumX.Duration, momentumY.Duration),
	}
	if to == pos {
		return t
	}
	t.Kind = KindMomentum
	if s.outOfRange(to) {
		t.Kind = KindMomentumBounce
	}
	s.logger.Debug("momentum trajectory",
		"kind", t.Kind.String(),
		"to_x", to.X,
		"to_y", to.Y,
		"duration", t.Duration,
		"elapsed", elapsed,
	)
	return t
}

// ResetPosition returns a settle trajectory when the content sits outside
// the legal range.
func (s *Scroller) ResetPosition() (Trajectory, bool) {
	checkX := s.x.CheckInBoundary()
	checkY := s.y.CheckInBoundary()
	if checkX.InBoundary && checkY.InBoundary {
		return Trajectory{}, false
	}
	return Trajectory{
		From:     Point{X: s.x.RawPos(), Y: s.y.RawPos()},
		To:       Point{X: checkX.Position, Y: checkY.Position},
		Duration: s.cfg.BounceTime,
		Kind:     KindBounce,
	}, true
}

// Destroy releases both engines.
func (s *Scroller) Destroy() {
	s.x.Destroy()
	s.y.Destroy()
	s.active = false
}

func (s *Scroller) snap() {
	if t, ok := s.ResetPosition(); ok {
		s.SetPosition(t.To)
	}
}

func (s *Scroller) outOfRange(p Point) bool {
	return p.X > s.x.MinScrollPos() || p.X < s.x.MaxScrollPos() ||
		p.Y > s.y.MinScrollPos() || p.Y < s.y.MaxScrollPos()
}

func maxDuration(a, b time.Duration) time.Duration {
	return time.Duration(math.Max(float64(a), float64(b)))
}
