package core

type insertMode struct{}

func NewInsertMode() EditorMode { return &insertMode{} }

func (m *insertMode) Name() Mode { return InsertionMode }

func (m *insertMode) Enter(session *Session) {
	session.UpdateStatus("-- INSERT --")
}

func (m *insertMode) Exit(session *Session) {}

func (m *insertMode) HandleKey(session *Session, key KeyEvent) error {
	buffer := session.buffer
	cursor := session.Cursor()
	row, col := cursor.Row(), cursor.Column()

	switch key.Key {
	case KeyEscape:
		if col != 0 {
			cursor.DecColumn()
		}
		return session.SetMode(NavigationMode)

	case KeyBackspace:
		if col != 0 {
			buffer.DeleteRune(row, col-1)
			cursor.DecColumn()
		} else if row != 0 {
			// At beginning of line, merge with previous line
			prevLen := buffer.JoinWithPrevious(row)
			cursor.DecRow()
			cursor.SetColumn(prevLen)
		}

	case KeyEnter:
		buffer.SplitLine(row, col)
		cursor.IncRow()
		cursor.SetColumn(0)

	case KeyUp:
		moveUp(session)

	case KeyDown:
		moveDown(session)

	case KeyRight:
		moveRight(session)

	case KeyLeft:
		moveLeft(session)

	default: // Handle regular character runes
		if key.IsPrintable() {
			buffer.InsertRune(row, col, key.Rune)
			cursor.IncColumn()
		}
	}

	return nil
}
