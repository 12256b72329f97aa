package behavior

// Axis selects which rectangle fields an engine reads.
type Axis int

// Axis values.
const (
	Vertical Axis = iota
	Horizontal
)

// String implements fmt.Stringer.
func (a Axis) String() string {
	if a == Horizontal {
		return "x"
	}
	return "y"
}

// Rect is a measured element rectangle.
type Rect struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// Right returns the right edge.
func (r Rect) Right() float64 {
	return r.Left + r.Width
}

// Bottom returns the bottom edge.
func (r Rect) Bottom() float64 {
	return r.Top + r.Height
}

type rectField func(Rect) float64

func rectWidth(r Rect) float64  { return r.Width }
func rectHeight(r Rect) float64 { return r.Height }
func rectLeft(r Rect) float64   { return r.Left }
func rectTop(r Rect) float64    { return r.Top }

// fields returns the size and position accessors for the axis.
func (a Axis) fields() (size, position rectField) {
	if a == Horizontal {
		return rectWidth, rectLeft
	}
	return rectHeight, rectTop
}
