package animate

import (
	"math"
	"time"

	"github.com/charmbracelet/harmonica"
)

const (
	springDamping     = 1.0
	springSettleRange = 7.0
	springMinFreq     = 1.0
	restDistance      = 0.5
	restVelocity      = 1.0
)

// springField animates a fixed set of coordinates with a shared spring.
type springField struct {
	spring harmonica.Spring
	pos    []float64
	vel    []float64
	target []float64
}

// newSpringField returns a critically damped field that settles in roughly
// settle at the given frame rate.
func newSpringField(fps int, settle time.Duration, from, to []float64) *springField {
	freq := springMinFreq
	if settle > 0 {
		freq = math.Max(springMinFreq, springSettleRange/settle.Seconds())
	}
	f := &springField{
		spring: harmonica.NewSpring(harmonica.FPS(fps), freq, springDamping),
		pos:    append([]float64(nil), from...),
		vel:    make([]float64, len(from)),
		target: append([]float64(nil), to...),
	}
	return f
}

// step advances every coordinate by one frame and reports whether all of
// them are at rest.
func (f *springField) step() bool {
	rest := true
	for i := range f.pos {
		if f.atRest(i) {
			f.pos[i] = f.target[i]
			f.vel[i] = 0
			continue
		}
		f.pos[i], f.vel[i] = f.spring.Update(f.pos[i], f.vel[i], f.target[i])
		if f.atRest(i) {
			f.pos[i] = f.target[i]
			f.vel[i] = 0
			continue
		}
		rest = false
	}
	return rest
}

func (f *springField) atRest(i int) bool {
	return math.Abs(f.pos[i]-f.target[i]) < restDistance && math.Abs(f.vel[i]) < restVelocity
}
