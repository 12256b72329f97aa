package stats

import (
	"context"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"github.com/verte-zerg/flick/internal/model"
	"github.com/verte-zerg/flick/internal/store"
)

const (
	defaultWidth = 80
	fastestCount = 10
)

// Report contains precomputed data for stats rendering.
type Report struct {
	Gestures         []model.GestureAggregate
	WindowGestureIDs []int64
	AxisAll          []model.AxisAggregate
	AxisWindow       []model.AxisAggregate
	Fastest          []model.GestureAggregate
}

// BuildReport loads and prepares data for stats rendering.
func BuildReport(ctx context.Context, st *store.Store, cfg model.StatsConfig) (Report, error) {
	gestures, err := st.ListGestures(ctx, cfg)
	if err != nil {
		return Report{}, err
	}

	allIDs := gestureIDs(gestures)
	windowIDs := lastGestureIDs(gestures, cfg.CurveWindow)
	axisAll, err := st.ListAxisAggregates(ctx, allIDs)
	if err != nil {
		return Report{}, err
	}
	axisWindow, err := st.ListAxisAggregates(ctx, windowIDs)
	if err != nil {
		return Report{}, err
	}

	return Report{
		Gestures:         gestures,
		WindowGestureIDs: windowIDs,
		AxisAll:          filterAxis(axisAll, cfg.Axis),
		AxisWindow:       filterAxis(axisWindow, cfg.Axis),
		Fastest:          FastestGestures(gestures, fastestCount),
	}, nil
}

// RenderText writes the whole report as plain text sized to width.
func RenderText(w io.Writer, report Report, window, width int) error {
	if err := RenderSummary(w, report.Gestures); err != nil {
		return err
	}
	if len(report.Gestures) == 0 {
		return nil
	}
	if err := RenderCurvesWithSize(w, report.Gestures, window, width); err != nil {
		return err
	}
	if err := RenderAxisTable(w, report.AxisAll); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Last %d gestures\n", len(report.WindowGestureIDs)); err != nil {
		return err
	}
	return RenderAxisTable(w, report.AxisWindow)
}

// OutputWidth returns the terminal width of f, or a default when f is not a
// terminal.
func OutputWidth(f *os.File) int {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return defaultWidth
	}
	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return defaultWidth
	}
	return width
}

func filterAxis(aggs []model.AxisAggregate, axis string) []model.AxisAggregate {
	if axis == "" {
		return aggs
	}
	var out []model.AxisAggregate
	for _, agg := range aggs {
		if agg.Axis == axis {
			out = append(out, agg)
		}
	}
	return out
}

func gestureIDs(gestures []model.GestureAggregate) []int64 {
	ids := make([]int64, len(gestures))
	for i, g := range gestures {
		ids[i] = g.GestureID
	}
	return ids
}

func lastGestureIDs(gestures []model.GestureAggregate, window int) []int64 {
	if window <= 0 || len(gestures) <= window {
		return gestureIDs(gestures)
	}
	return gestureIDs(gestures[len(gestures)-window:])
}
