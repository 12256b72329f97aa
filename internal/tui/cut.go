package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

type cell struct {
	s     string
	width int
}

func buildCells(line string) []cell {
	out := make([]cell, 0, len(line))
	for _, r := range line {
		w := runewidth.RuneWidth(r)
		if w == 0 {
			if len(out) > 0 {
				out[len(out)-1].s += string(r)
			}
			continue
		}
		out = append(out, cell{s: string(r), width: w})
	}
	return out
}

// cutLine returns exactly width columns of line starting at column offset.
// A negative offset pads the left edge. Wide runes split by either edge are
// replaced by spaces.
func cutLine(line string, offset, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	col := 0
	if offset < 0 {
		pad := -offset
		if pad > width {
			pad = width
		}
		b.WriteString(strings.Repeat(" ", pad))
		col = pad
		offset = 0
	}
	pos := 0
	for _, c := range buildCells(line) {
		if col >= width {
			break
		}
		start, end := pos, pos+c.width
		pos = end
		if end <= offset {
			continue
		}
		if start < offset {
			n := min(end-offset, width-col)
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		if col+c.width > width {
			n := width - col
			b.WriteString(strings.Repeat(" ", n))
			col += n
			continue
		}
		b.WriteString(c.s)
		col += c.width
	}
	if col < width {
		b.WriteString(strings.Repeat(" ", width-col))
	}
	return b.String()
}

func maxLineWidth(lines []string) int {
	widest := 0
	for _, line := range lines {
		if w := runewidth.StringWidth(line); w > widest {
			widest = w
		}
	}
	return widest
}
