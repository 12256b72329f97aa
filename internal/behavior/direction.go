package behavior

// Direction is the sign of content travel along an axis.
type Direction int

// Direction values. Positive means content travels bottom to top or right to
// left, i.e. the scroll offset decreases.
const (
	Negative Direction = -1
	Default  Direction = 0
	Positive Direction = 1
)

// String implements fmt.Stringer.
func (d Direction) String() string {
	switch d {
	case Positive:
		return "positive"
	case Negative:
		return "negative"
	default:
		return "default"
	}
}

// directionOf maps a pointer delta to a moving direction. A positive delta
// drags content toward the start edge, which is the Negative direction.
func directionOf(delta float64) Direction {
	switch {
	case delta > 0:
		return Negative
	case delta < 0:
		return Positive
	default:
		return Default
	}
}
