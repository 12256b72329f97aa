// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/flick/internal/model"
)

const sparkChars = " .:-=+*#%@"

// GestureMetrics returns the release speed in cells per millisecond for a
// drag of distance over durationMs.
func GestureMetrics(distance float64, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return math.Abs(distance) / float64(durationMs)
}

// Speed returns the release speed of a gesture across both axes.
func Speed(g model.GestureAggregate) float64 {
	return GestureMetrics(math.Hypot(g.DistanceX, g.DistanceY), g.DurationMs)
}

// FlickRate returns the share of gestures that ended with momentum.
func FlickRate(gestures []model.GestureAggregate) float64 {
	if len(gestures) == 0 {
		return 0
	}
	flicks := 0
	for _, g := range gestures {
		if g.Momentum {
			flicks++
		}
	}
	return float64(flicks) / float64(len(gestures))
}

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal := values[0]
	maxVal := values[0]
	for _, v := range values[1:] {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		if idx < 0 {
			idx = 0
		}
		if idx >= len(sparkChars) {
			idx = len(sparkChars) - 1
		}
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// Downsample averages values into at most width buckets.
func Downsample(values []float64, width int) []float64 {
	if width <= 0 || len(values) <= width {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, width)
	for i := 0; i < width; i++ {
		lo := i * len(values) / width
		hi := (i + 1) * len(values) / width
		var sum float64
		for _, v := range values[lo:hi] {
			sum += v
		}
		out[i] = sum / float64(hi-lo)
	}
	return out
}

// RenderSummary prints a summary for gestures.
func RenderSummary(w io.Writer, gestures []model.GestureAggregate) error {
	if len(gestures) == 0 {
		_, err := fmt.Fprintln(w, "No gestures found.")
		return err
	}
	var totalSpeed, totalSettle float64
	bestSpeed := 0.0
	bounces := 0
	settled := 0
	for _, g := range gestures {
		speed := Speed(g)
		totalSpeed += speed
		if speed > bestSpeed {
			bestSpeed = speed
		}
		if g.Bounce {
			bounces++
		}
		if g.SettleMs > 0 {
			totalSettle += float64(g.SettleMs)
			settled++
		}
	}
	count := float64(len(gestures))
	avgSettle := 0.0
	if settled > 0 {
		avgSettle = totalSettle / float64(settled)
	}
	if _, err := fmt.Fprintln(w, "Summary"); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Gestures: %d\n", len(gestures)); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Flick rate: %.2f%%\n", FlickRate(gestures)*100); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Bounce rate: %.2f%%\n", float64(bounces)/count*100); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg speed: %.3f cells/ms\n", totalSpeed/count); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Best speed: %.3f cells/ms\n", bestSpeed); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Avg settle: %.0f ms\n", avgSettle); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderCurves prints moving-average sparklines of release speed and settle
// time.
func RenderCurves(w io.Writer, gestures []model.GestureAggregate, window int) error {
	return RenderCurvesWithSize(w, gestures, window, 0)
}

// RenderCurvesWithSize prints curves downsampled to fit totalWidth.
func RenderCurvesWithSize(w io.Writer, gestures []model.GestureAggregate, window, totalWidth int) error {
	if len(gestures) == 0 {
		return nil
	}
	speeds := make([]float64, len(gestures))
	settles := make([]float64, len(gestures))
	for i, g := range gestures {
		speeds[i] = Speed(g)
		settles[i] = float64(g.SettleMs)
	}
	series := []struct {
		name   string
		values []float64
	}{
		{"Speed ", MovingAverage(speeds, window)},
		{"Settle", MovingAverage(settles, window)},
	}
	width := 0
	if totalWidth > 0 {
		width = totalWidth - len(series[0].name) - 3
	}
	if _, err := fmt.Fprintln(w, "Curves"); err != nil {
		return err
	}
	for _, s := range series {
		if _, err := fmt.Fprintf(w, "%s |%s|\n", s.name, Sparkline(Downsample(s.values, width))); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}

// RenderAxisTable prints per-axis aggregates.
func RenderAxisTable(w io.Writer, aggs []model.AxisAggregate) error {
	if len(aggs) == 0 {
		_, err := fmt.Fprintln(w, "No axis stats found.")
		return err
	}
	if _, err := fmt.Fprintln(w, "Per-Axis"); err != nil {
		return err
	}

	cols := []column{
		{title: "Axis"},
		{title: "Gestures", numeric: true},
		{title: "Flicks", numeric: true},
		{title: "Avg Drag", numeric: true},
		{title: "Max Drag", numeric: true},
		{title: "Avg Travel", numeric: true},
		{title: "Avg Speed", numeric: true},
	}
	tableRows := make([][]string, 0, len(aggs))
	for _, agg := range aggs {
		n := float64(agg.Gestures)
		avgDrag, avgTravel := 0.0, 0.0
		if n > 0 {
			avgDrag = agg.DistanceSum / n
			avgTravel = agg.TravelSum / n
		}
		tableRows = append(tableRows, []string{
			agg.Axis,
			fmt.Sprintf("%d", agg.Gestures),
			fmt.Sprintf("%d", agg.Momentum),
			fmt.Sprintf("%.1f", avgDrag),
			fmt.Sprintf("%.1f", agg.DistanceMax),
			fmt.Sprintf("%.1f", avgTravel),
			fmt.Sprintf("%.3f", GestureMetrics(agg.DistanceSum, agg.DurationSumMs)),
		})
	}
	for _, line := range formatTable(cols, tableRows) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return nil
}
