package core

// Arrow-key motions shared by both modes. Each one checks its guard against
// the current line before touching the cursor, which keeps
// 0 <= row < LineCount() and 0 <= col <= RuneCount(row) true after every key.

func moveRight(s *Session) {
	cursor := s.Cursor()
	if cursor.Column() != s.buffer.RuneCount(cursor.Row()) {
		cursor.IncColumn()
	}
}

func moveLeft(s *Session) {
	cursor := s.Cursor()
	if cursor.Column() != 0 {
		cursor.DecColumn()
	}
}

func moveUp(s *Session) {
	cursor := s.Cursor()
	if cursor.Row() != 0 {
		cursor.DecRow()
		clampColumn(s)
	}
}

func moveDown(s *Session) {
	cursor := s.Cursor()
	if cursor.Row() < s.lastReachableRow() {
		cursor.IncRow()
		clampColumn(s)
	}
}

// lastReachableRow is the lowest row the down motion may land on. Unless
// ReachLastLine is set the final line is out of reach of down; Enter can
// still move the cursor onto it.
func (s *Session) lastReachableRow() int {
	if s.state.ReachLastLine {
		return s.buffer.LineCount() - 1
	}
	return s.buffer.LineCount() - 2
}

// clampColumn pulls the column back onto the current line.
func clampColumn(s *Session) {
	cursor := s.Cursor()
	cursor.SetColumn(min(cursor.Column(), s.buffer.RuneCount(cursor.Row())))
}
