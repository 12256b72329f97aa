package tui

import (
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/flick/internal/animate"
	"github.com/verte-zerg/flick/internal/model"
	"github.com/verte-zerg/flick/internal/store"
)

var t0 = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func testScrollConfig() model.ScrollConfig {
	return model.ScrollConfig{
		ScrollX:                true,
		ScrollY:                true,
		DirectionLockThreshold: 2,
		Momentum:               true,
		MomentumLimitTime:      300 * time.Millisecond,
		MomentumLimitDistance:  3,
		Deceleration:           0.0015,
		SwipeTime:              2500 * time.Millisecond,
		SwipeBounceTime:        500 * time.Millisecond,
		BounceTime:             800 * time.Millisecond,
		Bounce:                 model.Bounce{Top: true, Bottom: true, Left: true, Right: true},
	}
}

// newTestModel returns a 20x10 playground over 20 short lines, so the
// wrapper is 18x6 and the vertical range is [-14, 0].
func newTestModel(t *testing.T, st *store.Store) (*Model, *time.Time) {
	t.Helper()
	lines := make([]string, 20)
	for i := range lines {
		lines[i] = fmt.Sprintf("line %02d", i)
	}
	m := NewModel(Options{
		Scroll:     testScrollConfig(),
		Playground: model.PlaygroundConfig{FPS: 60},
		Settle:     animate.ModeEase,
		Lines:      lines,
		Store:      st,
	})
	now := t0
	m.now = func() time.Time { return now }
	m.Update(tea.WindowSizeMsg{Width: 20, Height: 10})
	return m, &now
}

func press(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft}
}

func release(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
}
