package core

type navigationMode struct{}

func NewNavigationMode() EditorMode { return &navigationMode{} }

func (m *navigationMode) Name() Mode { return NavigationMode }

func (m *navigationMode) Enter(session *Session) {
	session.UpdateStatus("-- NORMAL --")
}

func (m *navigationMode) Exit(session *Session) {}

func (m *navigationMode) HandleKey(session *Session, key KeyEvent) error {
	cursor := session.Cursor()
	lineLen := session.buffer.RuneCount(cursor.Row())

	switch {
	case key.IsCtrl('s'):
		if err := session.Save(); err != nil {
			// The document is still in memory, so a failed write here is
			// reported rather than fatal.
			session.DispatchError(ErrFailedToSaveId, err)
		}

	case key.Modifiers != ModNone:
		// No other chords are bound.

	case key.Rune == 'q':
		if err := session.Save(); err != nil {
			return err
		}
		session.Quit()

	case key.Rune == 'i':
		cursor.SetColumn(min(cursor.Column(), lineLen))
		return session.SetMode(InsertionMode)

	case key.Rune == 'l' || key.Key == KeyRight:
		moveRight(session)

	case key.Rune == 'h' || key.Key == KeyLeft:
		if cursor.Column() == 0 {
			break
		}
		if cursor.Column() > lineLen {
			// Stale column left behind by a shorter line.
			cursor.SetColumn(max(lineLen-1, 0))
		} else {
			cursor.DecColumn()
		}

	case key.Rune == 'j' || key.Key == KeyDown:
		moveDown(session)

	case key.Rune == 'k' || key.Key == KeyUp:
		moveUp(session)
	}

	return nil
}
