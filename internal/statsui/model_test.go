package statsui

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/flick/internal/model"
	"github.com/verte-zerg/flick/internal/store"
)

func newTestStore(t *testing.T, gestures int) *store.Store {
	t.Helper()
	st, err := store.Open(filepath.Join(t.TempDir(), "flick.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = st.Close()
	})
	for i := 0; i < gestures; i++ {
		start := time.Unix(0, 0).Add(time.Duration(i) * time.Minute)
		stats := model.GestureStats{
			StartedAt:  start,
			EndedAt:    start.Add(80 * time.Millisecond),
			DurationMs: 80,
			Momentum:   true,
			SettleMs:   400,
		}
		axes := []model.AxisStats{
			{Axis: "y", StartPos: 0, EndPos: -30, Destination: -120, Distance: -30, HasScroll: true, Momentum: true},
		}
		if _, err := st.InsertGesture(context.Background(), stats, axes); err != nil {
			t.Fatalf("insert gesture: %v", err)
		}
	}
	return st
}

func TestStepWindow(t *testing.T) {
	tests := []struct {
		in, next, prev int
	}{
		{in: 1, next: 5, prev: 1},
		{in: 5, next: 10, prev: 1},
		{in: 7, next: 10, prev: 5},
		{in: 20, next: 25, prev: 15},
	}
	for _, tt := range tests {
		if got := stepWindow(tt.in, 1); got != tt.next {
			t.Fatalf("stepWindow(%d, 1) = %d, want %d", tt.in, got, tt.next)
		}
		if got := stepWindow(tt.in, -1); got != tt.prev {
			t.Fatalf("stepWindow(%d, -1) = %d, want %d", tt.in, got, tt.prev)
		}
	}
}

func TestSettingsFormApply(t *testing.T) {
	form := newSettingsForm()
	base := model.StatsConfig{CurveWindow: 20}
	form.show(base)
	if got := form.inputs[2].Value(); got != "20" {
		t.Fatalf("expected curve window prefilled, got %q", got)
	}

	form.inputs[0].SetValue("2024-05-01")
	form.inputs[1].SetValue("10")
	form.inputs[2].SetValue(" 3 ")
	form.inputs[3].SetValue("Y")
	cfg, err := form.apply(base)
	if err != nil {
		t.Fatalf("apply: %v", err)
	}
	if cfg.Since == nil || cfg.Since.Format(dateLayout) != "2024-05-01" {
		t.Fatalf("unexpected since: %v", cfg.Since)
	}
	if cfg.Last != 10 || cfg.CurveWindow != 3 || cfg.Axis != "y" {
		t.Fatalf("unexpected config: %+v", cfg)
	}

	form.inputs[3].SetValue("z")
	if got, err := form.apply(base); err == nil || got.Axis != "" {
		t.Fatalf("expected axis error and untouched base, got %+v %v", got, err)
	}
	form.inputs[3].SetValue("")
	form.inputs[2].SetValue("0")
	if _, err := form.apply(base); err == nil {
		t.Fatalf("expected curve window error")
	}
}

func TestSettingsFormFocusWraps(t *testing.T) {
	form := newSettingsForm()
	form.show(model.StatsConfig{CurveWindow: 5})
	form.focusOn(-1)
	if form.focus != len(formFields)-1 {
		t.Fatalf("expected last field, got %d", form.focus)
	}
	form.focusOn(len(formFields))
	if form.focus != 0 {
		t.Fatalf("expected first field, got %d", form.focus)
	}
}

func TestFormEnterReloadsReport(t *testing.T) {
	m := NewModel(newTestStore(t, 3), model.StatsConfig{CurveWindow: 20})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("/")})
	if !m.form.open {
		t.Fatalf("expected settings form to open")
	}
	m.form.inputs[1].SetValue("2")
	m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.form.open {
		t.Fatalf("expected form to close, err=%q", m.form.err)
	}
	if m.cfg.Last != 2 || len(m.report.Gestures) != 2 {
		t.Fatalf("expected 2 gestures after filter, got cfg=%+v gestures=%d", m.cfg, len(m.report.Gestures))
	}
}

func TestEllipsize(t *testing.T) {
	if got := ellipsize("abcdefgh", 6); got != "abc..." {
		t.Fatalf("unexpected ellipsize: %q", got)
	}
	if got := ellipsize("abc", 6); got != "abc" {
		t.Fatalf("unexpected ellipsize: %q", got)
	}
}

func TestViewRendersGestures(t *testing.T) {
	m := NewModel(newTestStore(t, 3), model.StatsConfig{CurveWindow: 2})
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	if len(m.report.Gestures) != 3 {
		t.Fatalf("expected 3 gestures, got %d", len(m.report.Gestures))
	}
	view := m.View()
	for _, want := range []string{"Overview", "Gestures", "Flick rate", "window=2"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("=")})
	if m.cfg.CurveWindow != 5 {
		t.Fatalf("expected curve window 5, got %d", m.cfg.CurveWindow)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyRight})
	if m.active != tabGestures {
		t.Fatalf("expected gestures tab, got %d", m.active)
	}
	if !strings.Contains(m.View(), "Speed") {
		t.Fatalf("expected gesture table header")
	}
}

func TestEmptyStoreShowsPlaceholder(t *testing.T) {
	m := NewModel(newTestStore(t, 0), model.StatsConfig{CurveWindow: 20})
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 20})
	if !strings.Contains(m.View(), "No gestures found.") {
		t.Fatalf("expected placeholder in view")
	}
}
