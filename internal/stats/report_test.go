package stats

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/verte-zerg/flick/internal/model"
	"github.com/verte-zerg/flick/internal/store"
)

func TestBuildReport(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "flick.db")
	st, err := store.Open(dbPath)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})

	ctx := context.Background()
	var ids []int64
	for i := 0; i < 3; i++ {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		end := start.Add(100 * time.Millisecond)
		stats := model.GestureStats{
			StartedAt:  start,
			EndedAt:    end,
			DurationMs: end.Sub(start).Milliseconds(),
			Momentum:   i%2 == 0,
			SettleMs:   500,
		}
		axes := []model.AxisStats{
			{Axis: "x", StartPos: 0, EndPos: -10, Destination: -10, Distance: -10, HasScroll: true},
			{Axis: "y", StartPos: 0, EndPos: float64(-20 * (i + 1)), Destination: -200, Distance: float64(-20 * (i + 1)), HasScroll: true},
		}
		id, err := st.InsertGesture(ctx, stats, axes)
		if err != nil {
			t.Fatalf("insert gesture: %v", err)
		}
		ids = append(ids, id)
	}

	cfg := model.StatsConfig{
		Last:        2,
		CurveWindow: 1,
		Axis:        "y",
	}
	report, err := BuildReport(ctx, st, cfg)
	if err != nil {
		t.Fatalf("build report: %v", err)
	}
	if len(report.Gestures) != 2 {
		t.Fatalf("expected 2 gestures, got %d", len(report.Gestures))
	}
	if report.Gestures[0].GestureID != ids[1] || report.Gestures[1].GestureID != ids[2] {
		t.Fatalf("unexpected gesture ids: %+v", report.Gestures)
	}
	if len(report.WindowGestureIDs) != 1 || report.WindowGestureIDs[0] != ids[2] {
		t.Fatalf("unexpected window gesture ids: %v", report.WindowGestureIDs)
	}
	if len(report.AxisAll) != 1 || report.AxisAll[0].Axis != "y" || report.AxisAll[0].Gestures != 2 {
		t.Fatalf("unexpected axis aggregates: %+v", report.AxisAll)
	}
	if len(report.AxisWindow) != 1 || report.AxisWindow[0].Gestures != 1 {
		t.Fatalf("unexpected window aggregates: %+v", report.AxisWindow)
	}
	if len(report.Fastest) != 2 || report.Fastest[0].GestureID != ids[2] {
		t.Fatalf("expected fastest gesture first, got %+v", report.Fastest)
	}

	var buf bytes.Buffer
	if err := RenderText(&buf, report, 1, 60); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Gestures: 2", "Flick rate: 50.00%", "Per-Axis", "Last 1 gestures"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in output:\n%s", want, out)
		}
	}
}
