package core

// Window is the half-open range of buffer rows [Start, End) shown on screen.
type Window struct {
	Start int
	End   int
}

func (w Window) Len() int {
	return w.End - w.Start
}

func (w Window) Contains(row int) bool {
	return row >= w.Start && row < w.End
}

// ComputeWindow returns the rows to draw. The window always starts at the
// cursor row and is cut short at the end of the buffer.
func ComputeWindow(totalLines, cursorRow, visibleHeight int) Window {
	// The cursor row is drawn even when the terminal reports no height.
	visibleHeight = max(visibleHeight, 1)

	if cursorRow+visibleHeight > totalLines {
		return Window{Start: cursorRow, End: totalLines}
	}

	return Window{Start: cursorRow, End: cursorRow + visibleHeight}
}
