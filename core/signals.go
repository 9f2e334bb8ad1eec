package core

type Signal any

type MessageSignal struct {
	id    string
	value string
}

func (m MessageSignal) Value() (id, message string) {
	id = m.id
	message = m.value

	return id, message
}

type SaveSignal struct {
	path string
}

// Value returns the path the buffer was written to.
func (s SaveSignal) Value() string {
	return s.path
}

type QuitSignal struct{}

type ErrorSignal Error

func (e ErrorSignal) Value() (id ErrorId, err error) {
	id = e.id
	err = e.err

	return id, err
}

type ModeChangeSignal struct {
	mode Mode
}

func (m ModeChangeSignal) Value() Mode {
	return m.mode
}

func (s *Session) DispatchSignal(signal Signal) {
	select {
	case s.updateSignal <- signal:
	default: // Ignore if the channel is full
	}
}
