package core

import (
	"errors"
	"log"
)

var (
	ErrIO          = errors.New("io error")
	ErrInputDecode = errors.New("cannot decode input event")
	ErrInvalidMode = errors.New("invalid mode")
)

type ErrorId int

const (
	ErrInputDecodeId ErrorId = iota
	ErrFailedToSaveId
)

type Error struct {
	id  ErrorId
	err error
}

// DispatchError notifies the renderer of a non-fatal error.
func (s *Session) DispatchError(id ErrorId, err error) {
	select {
	case s.updateSignal <- ErrorSignal{id, err}:
	default:
		log.Println("Channel is full, unable to send error signal")
	}
}
