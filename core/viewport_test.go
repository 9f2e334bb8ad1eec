package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeWindow(t *testing.T) {
	tests := []struct {
		name          string
		totalLines    int
		cursorRow     int
		visibleHeight int
		want          Window
	}{
		{"one row screen", 2, 0, 1, Window{0, 1}},
		{"fits exactly", 10, 0, 10, Window{0, 10}},
		{"shorter than screen", 3, 0, 10, Window{0, 3}},
		{"scrolled to cursor", 100, 40, 20, Window{40, 60}},
		{"tail of document", 100, 95, 20, Window{95, 100}},
		{"last line", 5, 4, 3, Window{4, 5}},
		{"zero height", 5, 2, 0, Window{2, 3}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ComputeWindow(tc.totalLines, tc.cursorRow, tc.visibleHeight))
		})
	}
}

func TestComputeWindowContainsCursor(t *testing.T) {
	for total := 1; total <= 12; total++ {
		for row := 0; row < total; row++ {
			for height := 0; height <= 15; height++ {
				w := ComputeWindow(total, row, height)

				assert.True(t, w.Contains(row), "total=%d row=%d height=%d: %v", total, row, height, w)
				assert.LessOrEqual(t, w.Len(), max(height, 1))
				assert.LessOrEqual(t, w.End, total)
			}
		}
	}
}
