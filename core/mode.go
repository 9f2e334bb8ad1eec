package core

type Mode string

const (
	NavigationMode Mode = "navigation"
	InsertionMode  Mode = "insertion"
)

// Label is the short name shown in the status line.
func (m Mode) Label() string {
	switch m {
	case NavigationMode:
		return "NORMAL"
	case InsertionMode:
		return "INSERT"
	default:
		return string(m)
	}
}

// EditorMode is one state of the input state machine. Each mode owns its
// own key table; a new mode only has to satisfy this interface and be
// registered in NewSession.
type EditorMode interface {
	Name() Mode
	// HandleKey applies key to the session. A returned error is fatal
	// (it always wraps ErrIO); everything else is handled in place.
	HandleKey(session *Session, key KeyEvent) error
	Enter(session *Session) // Called when entering the mode
	Exit(session *Session)  // Called when exiting the mode
}
