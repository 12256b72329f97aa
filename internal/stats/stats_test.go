package stats

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/verte-zerg/flick/internal/model"
)

func TestGestureMetrics(t *testing.T) {
	if got := GestureMetrics(-40, 50); math.Abs(got-0.8) > 1e-9 {
		t.Fatalf("expected 0.8, got %f", got)
	}
	if got := GestureMetrics(40, 0); got != 0 {
		t.Fatalf("expected 0 for zero duration, got %f", got)
	}
	g := model.GestureAggregate{DistanceX: 30, DistanceY: -40, DurationMs: 100}
	if got := Speed(g); math.Abs(got-0.5) > 1e-9 {
		t.Fatalf("expected 0.5, got %f", got)
	}
}

func TestFlickRate(t *testing.T) {
	if FlickRate(nil) != 0 {
		t.Fatalf("expected 0 for no gestures")
	}
	gestures := []model.GestureAggregate{{Momentum: true}, {}, {}, {Momentum: true}}
	if got := FlickRate(gestures); got != 0.5 {
		t.Fatalf("expected 0.5, got %f", got)
	}
}

func TestMovingAverage(t *testing.T) {
	got := MovingAverage([]float64{2, 4, 6, 8}, 2)
	want := []float64{2, 3, 5, 7}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("index %d: expected %f, got %f", i, want[i], got[i])
		}
	}
}

func TestSparkline(t *testing.T) {
	if got := Sparkline([]float64{0, 9}); got != " @" {
		t.Fatalf("unexpected sparkline %q", got)
	}
	if got := Sparkline([]float64{3, 3, 3}); got != "+++" {
		t.Fatalf("unexpected flat sparkline %q", got)
	}
	if Sparkline(nil) != "" {
		t.Fatalf("expected empty sparkline")
	}
}

func TestDownsample(t *testing.T) {
	got := Downsample([]float64{1, 3, 5, 7, 9, 11}, 3)
	want := []float64{2, 6, 10}
	if len(got) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("bucket %d: expected %f, got %f", i, want[i], got[i])
		}
	}
	if len(Downsample([]float64{1, 2}, 10)) != 2 {
		t.Fatalf("expected short input unchanged")
	}
}

func TestRenderSummaryEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := RenderSummary(&buf, nil); err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(buf.String(), "No gestures found.") {
		t.Fatalf("unexpected output %q", buf.String())
	}
}

func TestRenderAxisTable(t *testing.T) {
	var buf bytes.Buffer
	aggs := []model.AxisAggregate{{Axis: "y", Gestures: 2, Momentum: 1, DistanceSum: 50, DistanceMax: 40, TravelSum: 226, DurationSumMs: 200}}
	if err := RenderAxisTable(&buf, aggs); err != nil {
		t.Fatalf("render: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", lines)
	}
	fields := strings.Fields(lines[2])
	want := []string{"y", "2", "1", "25.0", "40.0", "113.0", "0.250"}
	for i := range want {
		if fields[i] != want[i] {
			t.Fatalf("column %d: expected %q, got %q", i, want[i], fields[i])
		}
	}
}
