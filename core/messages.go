package core

import "log"

var ChangesSavedMessage = "changes saved"

// DispatchMessage sends an informational message to the renderer. The id
// doubles as the text unless a value is given.
func (s *Session) DispatchMessage(id string, value ...string) {
	text := id
	if len(value) > 0 {
		text = value[0]
	}
	select {
	case s.updateSignal <- MessageSignal{id, text}:
	default:
		log.Println("Channel is full, unable to send message signal")
	}
}
