package behavior

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/flick/internal/model"
)

func testOptions() Options {
	return Options{
		Scrollable:            true,
		Momentum:              true,
		MomentumLimitTime:     300 * time.Millisecond,
		MomentumLimitDistance: 10,
		Deceleration:          0.0015,
		SwipeBounceTime:       500 * time.Millisecond,
		SwipeTime:             2500 * time.Millisecond,
		Bounces:               Bounces{true, true},
		Axis:                  Vertical,
	}
}

func newVertical(t *testing.T, opts Options, wrapperHeight, contentHeight float64) *Behavior {
	t.Helper()
	b := New(opts)
	b.SetDimensions(Rect{Width: 100, Height: wrapperHeight}, Rect{Width: 100, Height: contentHeight})
	return b
}

type geometry struct {
	wrapperSize       float64
	contentSize       float64
	originWrapperSize float64
	originContentSize float64
	relativeOffset    float64
	minScrollPos      float64
	maxScrollPos      float64
	hasScroll         bool
}

func snapshot(b *Behavior) geometry {
	return geometry{
		wrapperSize:       b.WrapperSize(),
		contentSize:       b.ContentSize(),
		originWrapperSize: b.OriginWrapperSize(),
		originContentSize: b.OriginContentSize(),
		relativeOffset:    b.RelativeOffset(),
		minScrollPos:      b.MinScrollPos(),
		maxScrollPos:      b.MaxScrollPos(),
		hasScroll:         b.HasScroll(),
	}
}

func TestRefreshOverflowingContent(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 500)

	assert.True(t, b.HasScroll())
	assert.Equal(t, 0.0, b.MinScrollPos())
	assert.Equal(t, -200.0, b.MaxScrollPos())
	assert.Equal(t, 300.0, b.WrapperSize())
	assert.Equal(t, 500.0, b.ContentSize())
}

func TestRefreshContentSmallerThanWrapper(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 200)

	assert.False(t, b.HasScroll())
	assert.Equal(t, 0.0, b.MinScrollPos())
	assert.Equal(t, 0.0, b.MaxScrollPos())
	assert.Equal(t, 300.0, b.ContentSize())
	assert.Equal(t, 200.0, b.OriginContentSize())
}

func TestRefreshNotScrollable(t *testing.T) {
	opts := testOptions()
	opts.Scrollable = false
	b := newVertical(t, opts, 300, 500)

	assert.False(t, b.HasScroll())
	assert.Equal(t, b.MinScrollPos(), b.MaxScrollPos())
	assert.Equal(t, 300.0, b.ContentSize())
}

func TestRefreshZeroRects(t *testing.T) {
	b := New(testOptions())
	b.SetDimensions(Rect{}, Rect{})

	assert.False(t, b.HasScroll())
	assert.Equal(t, 0.0, b.MaxScrollPos())
}

func TestRefreshHorizontalReadsWidthAndLeft(t *testing.T) {
	opts := testOptions()
	opts.Axis = Horizontal
	b := New(opts)
	b.SetDimensions(
		Rect{Left: 10, Top: 5, Width: 100, Height: 1000},
		Rect{Left: 30, Top: 0, Width: 400, Height: 10},
	)

	assert.True(t, b.HasScroll())
	assert.Equal(t, -300.0, b.MaxScrollPos())
	assert.Equal(t, 20.0, b.RelativeOffset())
}

func TestRefreshIsIdempotent(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 500)
	first := snapshot(b)
	b.SetDimensions(Rect{Width: 100, Height: 300}, Rect{Width: 100, Height: 500})
	assert.Equal(t, first, snapshot(b))
	b.Refresh()
	assert.Equal(t, first, snapshot(b))
}

func TestRefreshResetsDirection(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 500)
	b.UpdatePosition(20)
	b.UpdateDirection()
	require.Equal(t, Negative, b.Direction())

	b.Refresh()
	assert.Equal(t, Default, b.Direction())
}

func TestMoveInsideRange(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 500)
	b.UpdatePosition(-50)

	assert.Equal(t, -70.0, b.Move(-20))
	assert.Equal(t, -50.0, b.RawPos(), "move must not store the position")
}

func TestMoveHardClamp(t *testing.T) {
	opts := testOptions()
	opts.Bounces = Bounces{false, false}
	b := newVertical(t, opts, 300, 500)

	cases := []struct {
		current float64
		delta   float64
		want    float64
	}{
		{current: 0, delta: 30, want: 0},
		{current: -10, delta: 50, want: 0},
		{current: -190, delta: -30, want: -200},
		{current: -200, delta: -1, want: -200},
		{current: -100, delta: -500, want: -200},
	}
	for _, tc := range cases {
		b.UpdatePosition(tc.current)
		got := b.Move(tc.delta)
		assert.Equal(t, tc.want, got, "current=%v delta=%v", tc.current, tc.delta)
		assert.GreaterOrEqual(t, got, b.MaxScrollPos())
		assert.LessOrEqual(t, got, b.MinScrollPos())
	}
}

func TestMoveElasticDampening(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 500)

	b.UpdatePosition(0)
	assert.Equal(t, 10.0, b.Move(30))

	b.UpdatePosition(-200)
	assert.Equal(t, -210.0, b.Move(-30))

	b.UpdatePosition(-190)
	assert.Equal(t, -200.0, b.Move(-30))
}

func TestMoveBouncesPerEdge(t *testing.T) {
	opts := testOptions()
	opts.Bounces = Bounces{true, false}
	b := newVertical(t, opts, 300, 500)

	b.UpdatePosition(0)
	assert.Equal(t, 10.0, b.Move(30))

	b.UpdatePosition(-200)
	assert.Equal(t, -200.0, b.Move(-30))
}

func TestMoveWithoutScrollKeepsPosition(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 200)

	for _, delta := range []float64{-1000, -3, 0, 0.5, 42, 1e6} {
		assert.Equal(t, 0.0, b.Move(delta))
	}
	b.UpdatePosition(7)
	assert.Equal(t, 7.0, b.Move(-100))
}

func TestMoveDirectionSignConvention(t *testing.T) {
	for _, contentHeight := range []float64{500, 200} {
		b := newVertical(t, testOptions(), 300, contentHeight)
		b.Start()

		b.Move(10)
		assert.Equal(t, Negative, b.MovingDirection())
		b.Move(-10)
		assert.Equal(t, Positive, b.MovingDirection())
		b.Move(0)
		assert.Equal(t, Default, b.MovingDirection())
		assert.Equal(t, Default, b.Direction(), "move must not settle the direction")
	}
}

func TestStartResetsGestureState(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 500)
	b.AbsDist(25)
	b.Move(5)
	b.UpdatePosition(-30)
	b.UpdateDirection()

	b.Start()
	assert.Equal(t, Default, b.Direction())
	assert.Equal(t, Default, b.MovingDirection())
	assert.Equal(t, 4.0, b.AbsDist(-4))
}

func TestAbsDistAccumulatesSigned(t *testing.T) {
	b := New(testOptions())
	b.Start()

	assert.Equal(t, 5.0, b.AbsDist(5))
	assert.Equal(t, 3.0, b.AbsDist(-8))
	assert.Equal(t, 7.0, b.AbsDist(10))
}

func TestUpdateDirection(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 500)
	b.UpdatePosition(-100)
	b.ResetStartPos()

	b.UpdatePosition(-89.6)
	b.UpdateDirection()
	assert.Equal(t, Negative, b.Direction())

	b.UpdatePosition(-100.4)
	b.UpdateDirection()
	assert.Equal(t, Default, b.Direction())

	b.UpdatePosition(-103)
	b.UpdateDirection()
	assert.Equal(t, Positive, b.Direction())
}

func TestStartAnchors(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 500)
	b.UpdatePosition(-40)
	b.UpdateStartPos()
	assert.Equal(t, -40.0, b.StartPos())
	assert.Equal(t, 0.0, b.AbsStartPos())

	b.UpdatePosition(-60)
	b.UpdateAbsStartPos()
	assert.Equal(t, -40.0, b.StartPos())
	assert.Equal(t, -60.0, b.AbsStartPos())

	b.UpdatePosition(-80)
	b.ResetStartPos()
	assert.Equal(t, -80.0, b.StartPos())
	assert.Equal(t, -80.0, b.AbsStartPos())
}

func TestCurrentPosRounds(t *testing.T) {
	b := New(testOptions())
	b.UpdatePosition(-12.6)
	assert.Equal(t, -13.0, b.CurrentPos())
	assert.Equal(t, -12.6, b.RawPos())

	b.UpdatePosition(-2.5)
	assert.Equal(t, -2.0, b.CurrentPos())
}

func TestAdjustPosition(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 500)

	assert.Equal(t, 0.0, b.AdjustPosition(12))
	assert.Equal(t, -200.0, b.AdjustPosition(-250))
	assert.Equal(t, -100.0, b.AdjustPosition(-100.4))
	assert.Equal(t, -2.0, b.AdjustPosition(-2.5))

	noScroll := newVertical(t, testOptions(), 300, 200)
	assert.Equal(t, 0.0, noScroll.AdjustPosition(-40))
}

func TestCheckInBoundary(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 500)

	b.UpdatePosition(-250)
	assert.Equal(t, CheckResult{Position: -200, InBoundary: false}, b.CheckInBoundary())

	b.UpdatePosition(12)
	assert.Equal(t, CheckResult{Position: 0, InBoundary: false}, b.CheckInBoundary())

	b.UpdatePosition(-100.4)
	assert.Equal(t, CheckResult{Position: -100, InBoundary: true}, b.CheckInBoundary())

	noScroll := newVertical(t, testOptions(), 300, 200)
	noScroll.UpdatePosition(-5)
	assert.Equal(t, CheckResult{Position: 0, InBoundary: false}, noScroll.CheckInBoundary())
}

func TestEndMomentumEligibility(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 2000)
	ends := 0
	b.OnEnd(func(info MomentumInfo) {
		ends++
		assert.Equal(t, MomentumInfo{}, info)
	})

	b.Start()
	b.ResetStartPos()
	b.UpdatePosition(-50)
	info := b.End(200 * time.Millisecond)
	assert.True(t, info.HasDestination)
	assert.Equal(t, 0, ends)

	b.Start()
	b.UpdatePosition(0)
	b.ResetStartPos()
	b.UpdatePosition(-50)
	info = b.End(400 * time.Millisecond)
	assert.Equal(t, MomentumInfo{}, info)
	assert.Equal(t, 1, ends)
}

func TestEndRequiresDistanceAndMomentum(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 2000)
	b.ResetStartPos()
	b.UpdatePosition(-10)
	assert.False(t, b.End(100*time.Millisecond).HasDestination, "travel must exceed the limit")

	opts := testOptions()
	opts.Momentum = false
	off := newVertical(t, opts, 300, 2000)
	off.ResetStartPos()
	off.UpdatePosition(-80)
	assert.False(t, off.End(100*time.Millisecond).HasDestination)
}

func TestEndZeroDurationSkipsMomentum(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 2000)
	ends := 0
	b.OnEnd(func(MomentumInfo) { ends++ })
	b.ResetStartPos()
	b.UpdatePosition(-80)

	info := b.End(0)
	assert.Equal(t, MomentumInfo{}, info)
	assert.Equal(t, 1, ends)
}

func TestEndWithoutScrollReturnsCurrent(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 200)
	calls := 0
	b.OnEnd(func(MomentumInfo) { calls++ })
	b.OnMomentum(func(data MomentumData, _ float64) MomentumData {
		calls++
		return data
	})
	b.ResetStartPos()
	b.UpdatePosition(-50)

	info := b.End(100 * time.Millisecond)
	assert.Equal(t, MomentumInfo{Destination: -50, HasDestination: true}, info)
	assert.Equal(t, 0, calls)
}

func TestMomentumProjectionInRange(t *testing.T) {
	opts := testOptions()
	opts.Deceleration = 0.0006
	b := newVertical(t, opts, 300, 2000)

	var seen MomentumData
	var seenDistance float64
	b.OnMomentum(func(data MomentumData, distance float64) MomentumData {
		seen = data
		seenDistance = distance
		return data
	})

	b.Start()
	b.ResetStartPos()
	b.UpdatePosition(-100)
	b.UpdateDirection()
	info := b.End(200 * time.Millisecond)

	assert.InDelta(t, -933.333, seen.Destination, 0.001)
	assert.Equal(t, 2500*time.Millisecond, seen.Duration)
	assert.Equal(t, 15.0, seen.Rate)
	assert.Equal(t, -100.0, seenDistance)
	assert.Equal(t, MomentumInfo{Destination: -933, HasDestination: true, Duration: 2500 * time.Millisecond}, info)
}

func TestMomentumOvershootStartEdgeWithBounce(t *testing.T) {
	opts := testOptions()
	opts.Deceleration = 0.0006
	b := newVertical(t, opts, 300, 2000)

	b.Start()
	b.UpdatePosition(-500)
	b.ResetStartPos()
	b.UpdatePosition(-400)
	b.UpdateDirection()
	require.Equal(t, Negative, b.Direction())

	info := b.End(200 * time.Millisecond)
	// speed 0.5: min(0 + 300/4, 0 + 300/15*0.5)
	assert.Equal(t, 10.0, info.Destination)
	assert.Equal(t, 500*time.Millisecond, info.Duration)
}

func TestMomentumOvershootStartEdgeWithoutBounce(t *testing.T) {
	opts := testOptions()
	opts.Deceleration = 0.0006
	opts.Bounces = Bounces{false, true}
	b := newVertical(t, opts, 300, 2000)

	b.UpdatePosition(-500)
	b.ResetStartPos()
	b.UpdatePosition(-400)
	b.UpdateDirection()

	info := b.End(200 * time.Millisecond)
	assert.Equal(t, 0.0, info.Destination)
	assert.Equal(t, 500*time.Millisecond, info.Duration)
}

func TestMomentumOvershootEndEdge(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 500)

	b.Start()
	b.ResetStartPos()
	b.UpdatePosition(-50)
	b.UpdateDirection()
	require.Equal(t, Positive, b.Direction())

	info := b.End(200 * time.Millisecond)
	// speed 0.25: max(-200 - 75, -200 - 300/15*0.25)
	assert.Equal(t, -205.0, info.Destination)
	assert.Equal(t, 500*time.Millisecond, info.Duration)
}

func TestMomentumUsesSettledDirectionForElasticity(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 500)

	b.Start()
	b.ResetStartPos()
	b.UpdatePosition(-50)
	// direction left at Default: no edge elasticity applies
	info := b.End(200 * time.Millisecond)
	assert.Equal(t, -200.0, info.Destination)
	assert.Equal(t, 500*time.Millisecond, info.Duration)
}

func TestMomentumSubscriberOverride(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 2000)
	cancel := b.OnMomentum(func(data MomentumData, _ float64) MomentumData {
		data.Destination = -150.4
		data.Duration = time.Second
		return data
	})

	b.ResetStartPos()
	b.UpdatePosition(-100)
	info := b.End(100 * time.Millisecond)
	assert.Equal(t, MomentumInfo{Destination: -150, HasDestination: true, Duration: time.Second}, info)

	cancel()
	b.UpdatePosition(0)
	b.ResetStartPos()
	b.UpdatePosition(-100)
	info = b.End(100 * time.Millisecond)
	// speed 1: -100 - 1/0.0015
	assert.Equal(t, -767.0, info.Destination)
	assert.Equal(t, 2500*time.Millisecond, info.Duration)
}

func TestMomentumOverrideIsCorrectedAtEdges(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 500)
	b.OnMomentum(func(data MomentumData, _ float64) MomentumData {
		data.Destination = -10000
		data.Rate = 0
		return data
	})

	b.ResetStartPos()
	b.UpdatePosition(-50)
	b.UpdateDirection()
	info := b.End(200 * time.Millisecond)
	assert.Equal(t, -205.0, info.Destination)
}

func TestSubscribersRunInOrder(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 2000)
	var order []int
	b.OnMomentum(func(data MomentumData, _ float64) MomentumData {
		order = append(order, 1)
		data.Destination = -300
		return data
	})
	b.OnMomentum(func(data MomentumData, _ float64) MomentumData {
		order = append(order, 2)
		assert.Equal(t, -300.0, data.Destination)
		return data
	})

	b.ResetStartPos()
	b.UpdatePosition(-100)
	info := b.End(100 * time.Millisecond)
	assert.Equal(t, []int{1, 2}, order)
	assert.Equal(t, -300.0, info.Destination)
}

func TestDestroyReleasesSubscribers(t *testing.T) {
	b := newVertical(t, testOptions(), 300, 2000)
	calls := 0
	b.OnEnd(func(MomentumInfo) { calls++ })
	b.OnMomentum(func(data MomentumData, _ float64) MomentumData {
		calls++
		return data
	})

	b.Destroy()
	b.OnEnd(func(MomentumInfo) { calls++ })

	b.End(time.Second)
	b.ResetStartPos()
	b.UpdatePosition(-100)
	b.End(100 * time.Millisecond)
	assert.Equal(t, 0, calls)
}

func TestNewOptions(t *testing.T) {
	cfg := model.ScrollConfig{
		ScrollX:               true,
		ScrollY:               false,
		Momentum:              true,
		MomentumLimitTime:     300 * time.Millisecond,
		MomentumLimitDistance: 15,
		Deceleration:          0.0015,
		SwipeTime:             2500 * time.Millisecond,
		SwipeBounceTime:       500 * time.Millisecond,
		Bounce:                model.Bounce{Top: true, Bottom: false, Left: false, Right: true},
	}

	x := NewOptions(cfg, Horizontal, BouncesFor(cfg.Bounce, Horizontal))
	assert.True(t, x.Scrollable)
	assert.Equal(t, Bounces{false, true}, x.Bounces)
	assert.Equal(t, Horizontal, x.Axis)
	assert.Equal(t, 15.0, x.MomentumLimitDistance)

	y := NewOptions(cfg, Vertical, BouncesFor(cfg.Bounce, Vertical))
	assert.False(t, y.Scrollable)
	assert.Equal(t, Bounces{true, false}, y.Bounces)
	assert.Equal(t, 2500*time.Millisecond, y.SwipeTime)
}
