// Package statsui provides the Bubble Tea stats interface.
package statsui

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/flick/internal/model"
	"github.com/verte-zerg/flick/internal/stats"
	"github.com/verte-zerg/flick/internal/store"
)

type tab int

const (
	tabOverview tab = iota
	tabGestures
	tabAxes
	tabCount
)

func (t tab) title() string {
	switch t {
	case tabGestures:
		return "Gestures"
	case tabAxes:
		return "Axes"
	default:
		return "Overview"
	}
}

var (
	tabStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A")).
			Foreground(lipgloss.Color("#B0B0B0"))
	activeTabStyle = tabStyle.Copy().
			BorderForeground(lipgloss.Color("#C89A3A")).
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true)
	mutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	cardStyle  = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardLabelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// Model implements the Bubble Tea stats UI.
type Model struct {
	store *store.Store
	cfg   model.StatsConfig

	report  stats.Report
	loadErr error

	active   tab
	overview viewport.Model
	axes     viewport.Model
	gestures table.Model
	form     settingsForm

	width  int
	height int
}

// NewModel constructs a stats UI model and loads the first report.
func NewModel(st *store.Store, cfg model.StatsConfig) *Model {
	m := &Model{
		store:    st,
		cfg:      cfg,
		overview: viewport.New(0, 0),
		axes:     viewport.New(0, 0),
		gestures: newGestureTable(),
		form:     newSettingsForm(),
	}
	m.reload()
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
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		m.fillViewports()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.form.open {
			return m, m.updateForm(msg)
		}
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return tea.Quit
	case "left", "h", "shift+tab":
		m.selectTab(m.active - 1)
		return tea.ClearScreen
	case "right", "l", "tab":
		m.selectTab(m.active + 1)
		return tea.ClearScreen
	case "=", "+":
		m.cfg.CurveWindow = stepWindow(m.cfg.CurveWindow, 1)
		m.reload()
		return nil
	case "-":
		m.cfg.CurveWindow = stepWindow(m.cfg.CurveWindow, -1)
		m.reload()
		return nil
	case "/", "s":
		cmd := m.form.show(m.cfg)
		m.form.setWidth(m.width)
		return cmd
	}

	var cmd tea.Cmd
	switch m.active {
	case tabGestures:
		m.gestures, cmd = m.gestures.Update(msg)
	case tabAxes:
		m.axes, cmd = scrollViewport(m.axes, msg)
	default:
		m.overview, cmd = scrollViewport(m.overview, msg)
	}
	return cmd
}

func scrollViewport(vp viewport.Model, msg tea.KeyMsg) (viewport.Model, tea.Cmd) {
	switch msg.String() {
	case "g", "home":
		vp.GotoTop()
		return vp, nil
	case "G", "end":
		vp.GotoBottom()
		return vp, nil
	}
	return vp.Update(msg)
}

func (m *Model) updateForm(msg tea.KeyMsg) tea.Cmd {
	switch msg.Type {
	case tea.KeyEsc:
		m.form.hide()
		return nil
	case tea.KeyTab, tea.KeyDown:
		return m.form.focusOn(m.form.focus + 1)
	case tea.KeyShiftTab, tea.KeyUp:
		return m.form.focusOn(m.form.focus - 1)
	case tea.KeyEnter:
		cfg, err := m.form.apply(m.cfg)
		if err != nil {
			m.form.err = err.Error()
			return nil
		}
		m.form.hide()
		m.cfg = cfg
		m.reload()
		return nil
	}
	return m.form.update(msg)
}

func (m *Model) selectTab(t tab) {
	m.active = (t%tabCount + tabCount) % tabCount
	if m.active == tabGestures {
		m.gestures.Focus()
	} else {
		m.gestures.Blur()
	}
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	header := m.viewHeader()
	footer := m.viewFooter()
	return lipgloss.JoinVertical(lipgloss.Left,
		block(header, m.width, lipgloss.Height(header)),
		block(m.viewBody(), m.width, m.bodyHeight()),
		block(footer, m.width, lipgloss.Height(footer)),
	)
}

func (m *Model) viewHeader() string {
	titles := make([]string, 0, tabCount)
	for t := tabOverview; t < tabCount; t++ {
		style := tabStyle
		if t == m.active {
			style = activeTabStyle
		}
		titles = append(titles, style.Render(t.title()))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, titles...) + "\n" + mutedStyle.Render(ellipsize(m.filterLine(), m.width))
}

func (m *Model) filterLine() string {
	since, last, axis := "any", "all", "both"
	if m.cfg.Since != nil {
		since = m.cfg.Since.Format(dateLayout)
	}
	if m.cfg.Last > 0 {
		last = strconv.Itoa(m.cfg.Last)
	}
	if m.cfg.Axis != "" {
		axis = m.cfg.Axis
	}
	return fmt.Sprintf("Settings: since=%s  last=%s  window=%d  axis=%s", since, last, m.cfg.CurveWindow, axis)
}

func (m *Model) viewFooter() string {
	if m.form.open {
		return mutedStyle.Render("tab/up/down: field  enter: apply  esc: cancel")
	}
	help := mutedStyle.Render("Tabs: left/right  Scroll: up/down/pgup/pgdn  Window: -/=  Settings: /  Quit: q")
	if m.loadErr != nil {
		return help + "\n" + errorStyle.Render(m.loadErr.Error())
	}
	return help
}

func (m *Model) viewBody() string {
	switch {
	case m.form.open:
		return m.form.view()
	case m.loadErr != nil:
		return "Failed to load stats."
	case len(m.report.Gestures) == 0:
		return "No gestures found."
	}
	switch m.active {
	case tabGestures:
		return m.gestures.View()
	case tabAxes:
		return m.axes.View()
	default:
		return m.overview.View()
	}
}

// bodyHeight is the row budget left between header and footer.
func (m *Model) bodyHeight() int {
	header := lipgloss.Height(m.viewHeader())
	footer := lipgloss.Height(m.viewFooter())
	return max(1, m.height-header-footer)
}

func (m *Model) resize() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	h := m.bodyHeight()
	m.overview.Width, m.overview.Height = m.width, h
	m.axes.Width, m.axes.Height = m.width, h
	m.gestures.SetWidth(m.width)
	m.gestures.SetHeight(max(1, h-1))
	m.form.setWidth(m.width)
}

func (m *Model) reload() {
	report, err := stats.BuildReport(context.Background(), m.store, m.cfg)
	m.loadErr = err
	if err != nil {
		return
	}
	m.report = report
	m.gestures.SetRows(gestureRows(report.Gestures))
	m.resize()
	m.fillViewports()
}

func (m *Model) fillViewports() {
	if m.loadErr != nil {
		return
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	m.overview.SetContent(overviewText(m.report.Gestures, m.cfg.CurveWindow, width))
	m.axes.SetContent(axesText(m.report))
}

func overviewText(gestures []model.GestureAggregate, window, width int) string {
	if len(gestures) == 0 {
		return ""
	}
	var buf bytes.Buffer
	if err := stats.RenderCurvesWithSize(&buf, gestures, window, width); err != nil {
		return fmt.Sprintf("Failed to render curves: %v", err)
	}
	return strings.TrimRight(summaryCards(gestures, width)+"\n\n"+buf.String(), "\n")
}

func summaryCards(gestures []model.GestureAggregate, width int) string {
	var speedSum, settleSum, best float64
	bounces := 0
	for _, g := range gestures {
		speed := stats.Speed(g)
		speedSum += speed
		settleSum += float64(g.SettleMs)
		best = max(best, speed)
		if g.Bounce {
			bounces++
		}
	}
	n := float64(len(gestures))
	cards := []string{
		card("Gestures", strconv.Itoa(len(gestures))),
		card("Flick rate", fmt.Sprintf("%.1f%%", stats.FlickRate(gestures)*100)),
		card("Bounce rate", fmt.Sprintf("%.1f%%", float64(bounces)/n*100)),
		card("Avg speed", fmt.Sprintf("%.3f", speedSum/n)),
		card("Best speed", fmt.Sprintf("%.3f", best)),
		card("Avg settle", fmt.Sprintf("%.0f ms", settleSum/n)),
	}
	if width < 80 {
		return lipgloss.JoinVertical(lipgloss.Left, cards...)
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, cards[:3]...),
		lipgloss.JoinHorizontal(lipgloss.Top, cards[3:]...),
	)
}

func card(label, value string) string {
	return cardStyle.Render(cardLabelStyle.Render(label) + "\n" + cardValueStyle.Render(value))
}

func axesText(report stats.Report) string {
	var buf bytes.Buffer
	write := func() error {
		if err := stats.RenderAxisTable(&buf, report.AxisAll); err != nil {
			return err
		}
		if _, err := fmt.Fprintf(&buf, "\nLast %d gestures\n", len(report.WindowGestureIDs)); err != nil {
			return err
		}
		if err := stats.RenderAxisTable(&buf, report.AxisWindow); err != nil {
			return err
		}
		if len(report.Fastest) == 0 {
			return nil
		}
		if _, err := fmt.Fprintln(&buf, "\nFastest"); err != nil {
			return err
		}
		for i, g := range report.Fastest {
			if _, err := fmt.Fprintf(&buf, "%2d. #%-5d %.3f cells/ms  %s\n", i+1, g.GestureID, stats.Speed(g), g.EndedAt.Local().Format("2006-01-02 15:04")); err != nil {
				return err
			}
		}
		return nil
	}
	if err := write(); err != nil {
		return fmt.Sprintf("Failed to render axis stats: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func newGestureTable() table.Model {
	t := table.New(table.WithColumns([]table.Column{
		{Title: "#", Width: 6},
		{Title: "Ended", Width: 16},
		{Title: "Drag X", Width: 7},
		{Title: "Drag Y", Width: 7},
		{Title: "Ms", Width: 6},
		{Title: "Speed", Width: 7},
		{Title: "Flick", Width: 5},
		{Title: "Bounce", Width: 6},
		{Title: "Settle", Width: 6},
	}))
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		PaddingLeft(0)
	styles.Cell = styles.Cell.PaddingLeft(0)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#F0F0F0")).
		Background(lipgloss.NoColor{})
	t.SetStyles(styles)
	return t
}

// gestureRows lists gestures newest first.
func gestureRows(gestures []model.GestureAggregate) []table.Row {
	rows := make([]table.Row, 0, len(gestures))
	for i := len(gestures) - 1; i >= 0; i-- {
		g := gestures[i]
		rows = append(rows, table.Row{
			strconv.FormatInt(g.GestureID, 10),
			g.EndedAt.Local().Format("2006-01-02 15:04"),
			fmt.Sprintf("%.0f", g.DistanceX),
			fmt.Sprintf("%.0f", g.DistanceY),
			strconv.FormatInt(g.DurationMs, 10),
			fmt.Sprintf("%.3f", stats.Speed(g)),
			yesNo(g.Momentum),
			yesNo(g.Bounce),
			strconv.FormatInt(g.SettleMs, 10),
		})
	}
	return rows
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}
	return "no"
}
