// Package animate turns scroll trajectories into per-frame positions.
package animate

import "math"

// Ease maps linear progress in [0, 1] to eased progress.
type Ease func(t float64) float64

var (
	// Swipe decelerates sharply, used for momentum that stays in range.
	Swipe Ease = func(t float64) float64 {
		return 1 + math.Pow(t-1, 5)
	}
	// SwipeBounce is used for momentum that overshoots an edge.
	SwipeBounce Ease = func(t float64) float64 {
		return t * (2 - t)
	}
	// Bounce settles content back into range.
	Bounce Ease = func(t float64) float64 {
		return 1 - math.Pow(t-1, 4)
	}
	// Linear is the identity ease.
	Linear Ease = func(t float64) float64 {
		return t
	}
)
