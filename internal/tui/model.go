// Package tui provides the Bubble Tea scroll playground.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/verte-zerg/flick/internal/animate"
	"github.com/verte-zerg/flick/internal/behavior"
	"github.com/verte-zerg/flick/internal/generator"
	"github.com/verte-zerg/flick/internal/log"
	"github.com/verte-zerg/flick/internal/model"
	"github.com/verte-zerg/flick/internal/scroller"
	"github.com/verte-zerg/flick/internal/store"
)

const (
	footerLines   = 2
	borderSize    = 2
	wheelStep     = 3
	lineCacheSize = 1024
)

var (
	frameStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#5C5C5C"))
	activeStyle = frameStyle.Copy().BorderForeground(lipgloss.Color("#C89A3A"))
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// frameMsg drives animations. It carries the tick time.
type frameMsg time.Time

type lineKey struct {
	line   int
	offset int
	width  int
}

// Options configures the playground.
type Options struct {
	Scroll     model.ScrollConfig
	Playground model.PlaygroundConfig
	Settle     animate.Mode
	// Lines is fixed content. When empty, content is generated from Words.
	Lines     []string
	Words     []string
	Generator *generator.Generator
	Store     *store.Store
	Logger    *log.Logger
}

// gesture tracks a pointer gesture from press until its animation settles.
type gesture struct {
	startedAt  time.Time
	releasedAt time.Time
	startPos   scroller.Point
	axes       []model.AxisStats
	momentum   bool
	bounce     bool
}

// Model implements the Bubble Tea playground.
type Model struct {
	opts     Options
	scroller *scroller.Scroller
	logger   *log.Logger
	now      func() time.Time
	cache    *lru.Cache[lineKey, string]

	width  int
	height int
	lines  []string

	dragging  bool
	pending   *gesture
	anim      *animate.Animation
	animStart time.Time

	lastTrajectory scroller.Trajectory
	hasLast        bool
	gestures       int
}

// NewModel constructs a playground model.
func NewModel(opts Options) *Model {
	logger := opts.Logger
	if logger == nil {
		logger = log.Discard()
	}
	cache, err := lru.New[lineKey, string](lineCacheSize)
	if err != nil {
		logger.Error("failed to create line cache", "error", err)
	}
	m := &Model{
		opts:     opts,
		scroller: scroller.New(opts.Scroll, logger),
		logger:   logger,
		now:      time.Now,
		cache:    cache,
	}
	m.loadContent()
	m.loadGestureCount()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refresh()
		return m, nil
	case tea.MouseMsg:
		return m, m.handleMouse(msg)
	case tea.KeyMsg:
		return m, m.handleKey(msg)
	case frameMsg:
		return m, m.handleFrame(time.Time(msg))
	default:
		return m, nil
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	w, h := m.wrapperSize()
	if w <= 0 || h <= 0 {
		return ""
	}
	pos := m.scroller.Position()
	offsetX := int(-pos.X)
	offsetY := int(-pos.Y)

	rows := make([]string, h)
	blank := strings.Repeat(" ", w)
	for r := 0; r < h; r++ {
		idx := r + offsetY
		if idx < 0 || idx >= len(m.lines) {
			rows[r] = blank
			continue
		}
		rows[r] = m.cutCached(idx, offsetX, w)
	}
	style := frameStyle
	if m.dragging || m.anim != nil {
		style = activeStyle
	}
	return style.Render(strings.Join(rows, "\n")) + "\n" + m.renderFooter()
}

func (m *Model) cutCached(idx, offset, width int) string {
	if m.cache == nil {
		return cutLine(m.lines[idx], offset, width)
	}
	key := lineKey{line: idx, offset: offset, width: width}
	if s, ok := m.cache.Get(key); ok {
		return s
	}
	s := cutLine(m.lines[idx], offset, width)
	m.cache.Add(key, s)
	return s
}

func (m *Model) wrapperSize() (int, int) {
	return m.width - borderSize, m.height - borderSize - footerLines
}

// refresh measures the wrapper and content and hands them to the scroller.
func (m *Model) refresh() {
	w, h := m.wrapperSize()
	if w < 0 {
		w = 0
	}
	if h < 0 {
		h = 0
	}
	wrapper := behavior.Rect{Left: 1, Top: 1, Width: float64(w), Height: float64(h)}
	content := behavior.Rect{Left: 1, Top: 1, Width: float64(maxLineWidth(m.lines)), Height: float64(len(m.lines))}
	m.scroller.Refresh(wrapper, content)
}

func (m *Model) loadContent() {
	if len(m.opts.Lines) > 0 {
		m.lines = m.opts.Lines
	} else if m.opts.Generator != nil {
		pg := m.opts.Playground
		m.lines = m.opts.Generator.Lines(m.opts.Words, pg.Lines, pg.MinWords, pg.MaxWords)
	}
	if m.cache != nil {
		m.cache.Purge()
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	now := m.now()
	// Terminal coordinates are relative to the screen; the wrapper starts
	// inside the border.
	p := scroller.Point{X: float64(msg.X - 1), Y: float64(msg.Y - 1)}

	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.stopAnimation(now)
		m.scroller.ScrollBy(0, wheelStep)
		return nil
	case tea.MouseButtonWheelDown:
		m.stopAnimation(now)
		m.scroller.ScrollBy(0, -wheelStep)
		return nil
	case tea.MouseButtonWheelLeft:
		m.stopAnimation(now)
		m.scroller.ScrollBy(wheelStep, 0)
		return nil
	case tea.MouseButtonWheelRight:
		m.stopAnimation(now)
		m.scroller.ScrollBy(-wheelStep, 0)
		return nil
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return nil
		}
		m.stopAnimation(now)
		m.dragging = true
		m.pending = &gesture{startedAt: now, startPos: m.scroller.Position()}
		m.scroller.Start(p, now)
	case tea.MouseActionMotion:
		if m.dragging {
			m.scroller.Move(p, now)
		}
	case tea.MouseActionRelease:
		if !m.dragging {
			return nil
		}
		m.dragging = false
		return m.release(now)
	}
	return nil
}

func (m *Model) release(now time.Time) tea.Cmd {
	traj := m.scroller.End(now)
	m.lastTrajectory = traj
	m.hasLast = true

	g := m.pending
	if g == nil {
		g = &gesture{startedAt: now}
		m.pending = g
	}
	g.releasedAt = now
	g.momentum = traj.Kind == scroller.KindMomentum || traj.Kind == scroller.KindMomentumBounce
	g.bounce = traj.Kind == scroller.KindBounce || traj.Kind == scroller.KindMomentumBounce
	g.axes = m.axisStats(g, traj)

	if traj.Kind == scroller.KindNone {
		m.finishGesture(now)
		return nil
	}
	return m.startAnimation(traj, now)
}

func (m *Model) axisStats(g *gesture, traj scroller.Trajectory) []model.AxisStats {
	out := make([]model.AxisStats, 0, 2)
	for _, axis := range []behavior.Axis{behavior.Horizontal, behavior.Vertical} {
		b := m.scroller.Axis(axis)
		start, end, dest := g.startPos.X, traj.From.X, traj.To.X
		if axis == behavior.Vertical {
			start, end, dest = g.startPos.Y, traj.From.Y, traj.To.Y
		}
		out = append(out, model.AxisStats{
			Axis:        axis.String(),
			StartPos:    start,
			EndPos:      end,
			Destination: dest,
			Distance:    end - start,
			Direction:   int(b.Direction()),
			HasScroll:   b.HasScroll(),
			Momentum:    g.momentum && dest != end,
		})
	}
	return out
}

func (m *Model) startAnimation(traj scroller.Trajectory, now time.Time) tea.Cmd {
	m.anim = animate.FromTrajectory(traj, m.opts.Settle, m.opts.Playground.FPS)
	m.animStart = now
	return m.tick()
}

func (m *Model) tick() tea.Cmd {
	if m.anim == nil {
		return nil
	}
	return tea.Tick(m.anim.Interval(), func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m *Model) handleFrame(now time.Time) tea.Cmd {
	if m.anim == nil {
		return nil
	}
	p, done := m.anim.Step(now.Sub(m.animStart))
	m.scroller.SetPosition(p)
	if !done {
		return m.tick()
	}

	kind := m.anim.Kind()
	m.anim = nil
	if kind != scroller.KindBounce {
		if traj, ok := m.scroller.ResetPosition(); ok {
			if m.pending != nil {
				m.pending.bounce = true
			}
			m.lastTrajectory = traj
			return m.startAnimation(traj, now)
		}
	}
	m.finishGesture(now)
	return nil
}

// stopAnimation freezes an in-flight animation at its current frame.
func (m *Model) stopAnimation(now time.Time) {
	if m.anim == nil {
		return
	}
	p, _ := m.anim.Step(now.Sub(m.animStart))
	m.anim = nil
	m.scroller.SetPosition(p)
	m.scroller.ScrollTo(m.scroller.Position().X, m.scroller.Position().Y)
	m.finishGesture(now)
}

func (m *Model) finishGesture(settledAt time.Time) {
	g := m.pending
	m.pending = nil
	if g == nil || g.releasedAt.IsZero() {
		return
	}
	m.gestures++
	stats := model.GestureStats{
		StartedAt:  g.startedAt,
		EndedAt:    g.releasedAt,
		DurationMs: g.releasedAt.Sub(g.startedAt).Milliseconds(),
		Momentum:   g.momentum,
		Bounce:     g.bounce,
		SettleMs:   settledAt.Sub(g.releasedAt).Milliseconds(),
	}
	m.logger.Debug("gesture settled",
		"duration_ms", stats.DurationMs,
		"settle_ms", stats.SettleMs,
		"momentum", stats.Momentum,
		"bounce", stats.Bounce,
	)
	if m.opts.Store == nil {
		return
	}
	if _, err := m.opts.Store.InsertGesture(context.Background(), stats, g.axes); err != nil {
		m.logger.Error("failed to save gesture", "error", err)
	}
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	now := m.now()
	_, h := m.wrapperSize()
	switch msg.String() {
	case "ctrl+c", "q":
		m.stopAnimation(now)
		return tea.Quit
	case "up", "k":
		m.stopAnimation(now)
		m.scroller.ScrollBy(0, 1)
	case "down", "j":
		m.stopAnimation(now)
		m.scroller.ScrollBy(0, -1)
	case "left", "h":
		m.stopAnimation(now)
		m.scroller.ScrollBy(1, 0)
	case "right", "l":
		m.stopAnimation(now)
		m.scroller.ScrollBy(-1, 0)
	case "pgup", "b":
		m.stopAnimation(now)
		m.scroller.ScrollBy(0, float64(h))
	case "pgdown", " ", "f":
		m.stopAnimation(now)
		m.scroller.ScrollBy(0, -float64(h))
	case "home", "g":
		m.stopAnimation(now)
		m.scroller.ScrollTo(m.scroller.Position().X, 0)
	case "end", "G":
		m.stopAnimation(now)
		m.scroller.ScrollTo(m.scroller.Position().X, m.scroller.Axis(behavior.Vertical).MaxScrollPos())
	case "r":
		if len(m.opts.Lines) > 0 {
			return nil
		}
		m.stopAnimation(now)
		m.loadContent()
		m.refresh()
	}
	return nil
}

func (m *Model) loadGestureCount() {
	if m.opts.Store == nil {
		return
	}
	gestures, err := m.opts.Store.ListGestures(context.Background(), model.StatsConfig{})
	if err != nil {
		m.logger.Error("failed to load gesture stats", "error", err)
		return
	}
	m.gestures = len(gestures)
}

func (m *Model) renderFooter() string {
	x := m.scroller.Axis(behavior.Horizontal)
	y := m.scroller.Axis(behavior.Vertical)
	pos := m.scroller.Position()
	first := fmt.Sprintf("Pos %.0f,%.0f  Max %.0f,%.0f  Dir %s/%s  Moving %s/%s  Scroll %s/%s",
		pos.X, pos.Y,
		x.MaxScrollPos(), y.MaxScrollPos(),
		x.Direction(), y.Direction(),
		x.MovingDirection(), y.MovingDirection(),
		yesNo(x.HasScroll()), yesNo(y.HasScroll()),
	)
	second := fmt.Sprintf("Gestures %d", m.gestures)
	if m.hasLast {
		t := m.lastTrajectory
		second = fmt.Sprintf("Last %s → %.0f,%.0f in %dms  %s",
			t.Kind, t.To.X, t.To.Y, t.Duration.Milliseconds(), second)
	}
	return footerStyle.Render(first) + "\n" + footerStyle.Render(second)
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
