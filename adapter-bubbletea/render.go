package adapter_bubbletea

import (
	"strings"

	"github.com/rivo/uniseg"
)

// renderVisibleSlice draws the rows inside the session window, one buffer
// line per screen row. Lines wider than the viewport are cut rather than
// wrapped so that rows and screen lines stay one to one.
func (m *Model) renderVisibleSlice() string {
	window := m.session.Window()
	lines := m.session.VisibleLines()
	cursor := m.session.Cursor()

	rendered := make([]string, 0, len(lines))
	for i, line := range lines {
		if window.Start+i == cursor.Row() {
			rendered = append(rendered, m.renderCursorLine(line, cursor.Column()))
			continue
		}
		rendered = append(rendered, m.theme.TextStyle.Render(truncateToWidth(line, m.width)))
	}

	return strings.Join(rendered, "\n")
}

// renderCursorLine draws line with the cell at col highlighted. A cursor in
// the append position gets a highlighted blank. When the cursor would fall
// past the right edge the line is shifted left until it fits.
func (m *Model) renderCursorLine(line string, col int) string {
	runes := []rune(line)
	col = min(col, len(runes))

	cursorWidth := 1
	if col < len(runes) {
		cursorWidth = uniseg.StringWidth(string(runes[col]))
	}

	start := 0
	if m.width > 0 {
		for start < col && uniseg.StringWidth(string(runes[start:col]))+cursorWidth > m.width {
			start++
		}
	}

	var b strings.Builder
	used := 0
	for i := start; i < len(runes); i++ {
		cell := string(runes[i])
		w := uniseg.StringWidth(cell)
		if m.width > 0 && used+w > m.width {
			break
		}
		used += w

		if i == col {
			b.WriteString(m.theme.CursorStyle.Render(cell))
		} else {
			b.WriteString(m.theme.TextStyle.Render(cell))
		}
	}

	if col == len(runes) && (m.width <= 0 || used < m.width) {
		b.WriteString(m.theme.CursorStyle.Render(" "))
	}

	return b.String()
}

// truncateToWidth cuts s to at most width terminal cells without splitting
// a grapheme cluster.
func truncateToWidth(s string, width int) string {
	if width <= 0 || uniseg.StringWidth(s) <= width {
		return s
	}

	var b strings.Builder
	used := 0
	state := -1
	for len(s) > 0 {
		var cluster string
		var w int
		cluster, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		if used+w > width {
			break
		}
		b.WriteString(cluster)
		used += w
	}

	return b.String()
}
