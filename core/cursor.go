package core

// Position represents a specific location in the text buffer
type Position struct {
	Row int // Zero-indexed row (line number)
	Col int // Zero-indexed column (rune index in the line)
}

// Cursor is a bare (column, row) pair. It never validates: keeping the
// position inside the buffer is the job of the active mode.
type Cursor struct {
	column int
	row    int
}

func NewCursor(column, row int) Cursor {
	return Cursor{column: column, row: row}
}

func (c *Cursor) Column() int { return c.column }
func (c *Cursor) Row() int    { return c.row }

func (c *Cursor) SetColumn(column int) { c.column = column }
func (c *Cursor) SetRow(row int)       { c.row = row }

func (c *Cursor) IncColumn() { c.column++ }
func (c *Cursor) DecColumn() { c.column-- }
func (c *Cursor) IncRow()    { c.row++ }
func (c *Cursor) DecRow()    { c.row-- }

func (c *Cursor) Position() Position {
	return Position{Row: c.row, Col: c.column}
}
