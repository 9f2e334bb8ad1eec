package adapter_bubbletea

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

// plainTheme renders without escape codes so output can be compared directly.
var plainTheme = Theme{
	TextStyle:   lipgloss.NewStyle(),
	CursorStyle: lipgloss.NewStyle(),
}

func TestTruncateToWidth(t *testing.T) {
	tests := []struct {
		name  string
		input string
		width int
		want  string
	}{
		{"fits", "hello", 10, "hello"},
		{"exact", "hello", 5, "hello"},
		{"cut", "hello world", 5, "hello"},
		{"wide runes", "日本語", 5, "日本"},
		{"no width", "hello", 0, "hello"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, truncateToWidth(tc.input, tc.width))
		})
	}
}

func TestRenderCursorLine(t *testing.T) {
	m := Model{theme: plainTheme, width: 10}

	assert.Equal(t, "abc", m.renderCursorLine("abc", 1))
	assert.Equal(t, "abc ", m.renderCursorLine("abc", 3))
	assert.Equal(t, " ", m.renderCursorLine("", 0))

	// The cursor cell stays on screen when the line is wider than the view.
	assert.Equal(t, "fghijklmn ", m.renderCursorLine("abcdefghijklmn", 14))
	assert.Equal(t, "abcdefghij", m.renderCursorLine("abcdefghijklmn", 2))
}
