package animate

import (
	"fmt"
	"time"

	"github.com/verte-zerg/flick/internal/scroller"
)

// Mode selects how an Animation approaches its target.
type Mode int

// Animation modes.
const (
	ModeEase Mode = iota
	ModeSpring
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m == ModeSpring {
		return "spring"
	}
	return "ease"
}

// ParseMode parses "ease" or "spring".
func ParseMode(value string) (Mode, error) {
	switch value {
	case "", "ease":
		return ModeEase, nil
	case "spring":
		return ModeSpring, nil
	default:
		return ModeEase, fmt.Errorf("unknown settle mode %q", value)
	}
}

// Animation moves a point from one offset to another.
type Animation struct {
	kind     scroller.Kind
	from     scroller.Point
	to       scroller.Point
	duration time.Duration
	mode     Mode

	x, y   Tween
	spring *springField
	fps    int
	frames int
	done   bool
}

// New returns an animation from from to to. Spring mode ignores ease and
// treats duration as the approximate settle time.
func New(from, to scroller.Point, duration time.Duration, ease Ease, mode Mode, fps int) *Animation {
	if fps <= 0 {
		fps = 60
	}
	a := &Animation{
		from:     from,
		to:       to,
		duration: duration,
		mode:     mode,
		fps:      fps,
		x:        Tween{From: from.X, To: to.X, Duration: duration, Ease: ease},
		y:        Tween{From: from.Y, To: to.Y, Duration: duration, Ease: ease},
	}
	if mode == ModeSpring {
		a.spring = newSpringField(fps, duration, []float64{from.X, from.Y}, []float64{to.X, to.Y})
	}
	return a
}

// FromTrajectory builds the animation for a scroller trajectory, picking the
// ease that matches its kind.
func FromTrajectory(t scroller.Trajectory, mode Mode, fps int) *Animation {
	a := New(t.From, t.To, t.Duration, EaseFor(t.Kind), mode, fps)
	a.kind = t.Kind
	return a
}

// EaseFor returns the ease used for a trajectory kind.
func EaseFor(kind scroller.Kind) Ease {
	switch kind {
	case scroller.KindMomentum:
		return Swipe
	case scroller.KindMomentumBounce:
		return SwipeBounce
	case scroller.KindBounce:
		return Bounce
	default:
		return Linear
	}
}

// Kind returns the trajectory kind the animation was built from.
func (a *Animation) Kind() scroller.Kind {
	return a.kind
}

// Target returns the final offset.
func (a *Animation) Target() scroller.Point {
	return a.to
}

// Interval returns the frame interval.
func (a *Animation) Interval() time.Duration {
	return time.Second / time.Duration(a.fps)
}

// Step returns the offset after elapsed and whether the animation finished.
func (a *Animation) Step(elapsed time.Duration) (scroller.Point, bool) {
	if a.done {
		return a.to, true
	}
	if a.mode == ModeSpring {
		return a.stepSpring(elapsed)
	}
	p := scroller.Point{X: a.x.At(elapsed), Y: a.y.At(elapsed)}
	if a.x.Done(elapsed) && a.y.Done(elapsed) {
		a.done = true
		return a.to, true
	}
	return p, false
}

func (a *Animation) stepSpring(elapsed time.Duration) (scroller.Point, bool) {
	want := int(elapsed / a.Interval())
	rest := false
	for a.frames < want {
		a.frames++
		if rest = a.spring.step(); rest {
			break
		}
	}
	if rest || (a.frames == 0 && a.from == a.to) {
		a.done = true
		return a.to, true
	}
	return scroller.Point{X: a.spring.pos[0], Y: a.spring.pos[1]}, false
}
