package statsui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/flick/internal/model"
)

const dateLayout = "2006-01-02"

// formField binds one text input to a StatsConfig setting.
type formField struct {
	prompt string
	show   func(model.StatsConfig) string
	parse  func(string, *model.StatsConfig) error
}

var formFields = []formField{
	{
		prompt: "Since (YYYY-MM-DD): ",
		show: func(cfg model.StatsConfig) string {
			if cfg.Since == nil {
				return ""
			}
			return cfg.Since.Format(dateLayout)
		},
		parse: func(v string, cfg *model.StatsConfig) error {
			if v == "" {
				cfg.Since = nil
				return nil
			}
			t, err := time.ParseInLocation(dateLayout, v, time.Local)
			if err != nil {
				return fmt.Errorf("invalid since date (expected YYYY-MM-DD)")
			}
			cfg.Since = &t
			return nil
		},
	},
	{
		prompt: "Last gestures: ",
		show: func(cfg model.StatsConfig) string {
			if cfg.Last <= 0 {
				return ""
			}
			return strconv.Itoa(cfg.Last)
		},
		parse: func(v string, cfg *model.StatsConfig) error {
			if v == "" {
				cfg.Last = 0
				return nil
			}
			n, err := strconv.Atoi(v)
			if err != nil || n < 0 {
				return fmt.Errorf("invalid last value (use 0 or positive integer)")
			}
			cfg.Last = n
			return nil
		},
	},
	{
		prompt: "Curve window: ",
		show: func(cfg model.StatsConfig) string {
			return strconv.Itoa(cfg.CurveWindow)
		},
		parse: func(v string, cfg *model.StatsConfig) error {
			n, err := strconv.Atoi(v)
			if err != nil || n < 1 {
				return fmt.Errorf("invalid curve window (use integer >= 1)")
			}
			cfg.CurveWindow = n
			return nil
		},
	},
	{
		prompt: "Axis (x/y, empty for both): ",
		show: func(cfg model.StatsConfig) string {
			return cfg.Axis
		},
		parse: func(v string, cfg *model.StatsConfig) error {
			v = strings.ToLower(v)
			if v != "" && v != "x" && v != "y" {
				return fmt.Errorf("invalid axis (use x, y or leave empty)")
			}
			cfg.Axis = v
			return nil
		},
	},
}

// settingsForm edits the report filters in place of the tab body.
type settingsForm struct {
	open   bool
	inputs []textinput.Model
	focus  int
	err    string
}

func newSettingsForm() settingsForm {
	inputs := make([]textinput.Model, len(formFields))
	for i, f := range formFields {
		in := textinput.New()
		in.Prompt = f.prompt
		in.Cursor.SetMode(cursor.CursorBlink)
		inputs[i] = in
	}
	return settingsForm{inputs: inputs}
}

// show fills the inputs from cfg and focuses the first one.
func (f *settingsForm) show(cfg model.StatsConfig) tea.Cmd {
	f.open = true
	f.err = ""
	for i, field := range formFields {
		f.inputs[i].SetValue(field.show(cfg))
	}
	return f.focusOn(0)
}

func (f *settingsForm) hide() {
	f.open = false
	f.err = ""
}

func (f *settingsForm) focusOn(idx int) tea.Cmd {
	n := len(f.inputs)
	f.focus = ((idx % n) + n) % n
	var cmd tea.Cmd
	for i := range f.inputs {
		if i == f.focus {
			cmd = f.inputs[i].Focus()
			continue
		}
		f.inputs[i].Blur()
	}
	return cmd
}

func (f *settingsForm) setWidth(width int) {
	for i := range f.inputs {
		f.inputs[i].Width = max(10, width-lipgloss.Width(f.inputs[i].Prompt)-2)
	}
}

// apply parses every input on top of base. base is left untouched on error.
func (f *settingsForm) apply(base model.StatsConfig) (model.StatsConfig, error) {
	cfg := base
	for i, field := range formFields {
		if err := field.parse(strings.TrimSpace(f.inputs[i].Value()), &cfg); err != nil {
			return base, err
		}
	}
	return cfg, nil
}

func (f *settingsForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f *settingsForm) view() string {
	var b strings.Builder
	b.WriteString("Report settings")
	for _, in := range f.inputs {
		b.WriteString("\n")
		b.WriteString(in.View())
	}
	if f.err != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(f.err))
	}
	return b.String()
}
