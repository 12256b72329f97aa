package animate

import "time"

// Tween interpolates one coordinate over a fixed duration.
type Tween struct {
	From     float64
	To       float64
	Duration time.Duration
	Ease     Ease
}

// At returns the coordinate after elapsed.
func (tw Tween) At(elapsed time.Duration) float64 {
	if tw.Done(elapsed) {
		return tw.To
	}
	if elapsed <= 0 {
		return tw.From
	}
	ease := tw.Ease
	if ease == nil {
		ease = Linear
	}
	progress := float64(elapsed) / float64(tw.Duration)
	return tw.From + (tw.To-tw.From)*ease(progress)
}

// Done reports whether the tween has reached its target.
func (tw Tween) Done(elapsed time.Duration) bool {
	return tw.Duration <= 0 || elapsed >= tw.Duration
}
