package core

import (
	"fmt"
)

// State is the part of the session the renderer reads on every draw.
type State struct {
	Mode           Mode   // Current editing mode
	StatusLine     string // Content of the status line (bottom line)
	Quit           bool   // Flag indicating if the editor should exit
	ViewportHeight int    // Number of lines that can be displayed
	ReachLastLine  bool   // Let the down motion land on the final line
}

// InitialState creates a default state
func InitialState() State {
	return State{
		Mode:           NavigationMode,
		StatusLine:     "-- NORMAL --",
		Quit:           false,
		ViewportHeight: 24,
	}
}

// Session is everything one editing session owns: the buffer, the cursor,
// the active mode and the quit flag. Only the goroutine driving the input
// loop may touch it.
type Session struct {
	buffer      *TextBuffer
	cursor      Cursor
	currentMode EditorMode
	modes       map[Mode]EditorMode
	state       State

	updateSignal chan Signal
}

// NewSession starts a session on buffer with the cursor at (0, 0) in
// navigation mode.
func NewSession(buffer *TextBuffer) *Session {
	s := &Session{
		buffer:       buffer,
		cursor:       NewCursor(0, 0),
		modes:        make(map[Mode]EditorMode),
		state:        InitialState(),
		updateSignal: make(chan Signal, 100), // Buffered channel for updates
	}

	for _, mode := range []EditorMode{NewNavigationMode(), NewInsertMode()} {
		s.modes[mode.Name()] = mode
	}

	s.currentMode = s.modes[s.state.Mode]
	s.currentMode.Enter(s)

	return s
}

func (s *Session) Buffer() *TextBuffer {
	return s.buffer
}

func (s *Session) Cursor() *Cursor {
	return &s.cursor
}

func (s *Session) GetState() State {
	return s.state
}

func (s *Session) Mode() Mode {
	return s.state.Mode
}

func (s *Session) IsNavigationMode() bool {
	return s.state.Mode == NavigationMode
}

func (s *Session) IsInsertionMode() bool {
	return s.state.Mode == InsertionMode
}

// ReachLastLine controls whether the down motion may move onto the last
// line of the buffer. It is off by default.
func (s *Session) ReachLastLine(reach bool) {
	s.state.ReachLastLine = reach
}

func (s *Session) SetViewportHeight(height int) {
	s.state.ViewportHeight = height
}

func (s *Session) UpdateStatus(status string) {
	s.state.StatusLine = status
}

func (s *Session) GetUpdateSignalChan() <-chan Signal {
	return s.updateSignal // Return the read-only channel
}

func (s *Session) SetMode(modeName Mode) error {
	newMode, ok := s.modes[modeName]
	if !ok {
		return fmt.Errorf("%w: %s", ErrInvalidMode, modeName)
	}

	if s.currentMode != nil {
		s.currentMode.Exit(s)
	}

	s.currentMode = newMode
	s.state.Mode = newMode.Name()
	s.currentMode.Enter(s)

	s.DispatchSignal(ModeChangeSignal{s.state.Mode})
	return nil
}

// HandleKey runs one key through the active mode. Any error returned wraps
// ErrIO and should end the session.
func (s *Session) HandleKey(key KeyEvent) error {
	if s.currentMode == nil {
		return ErrInvalidMode
	}

	return s.currentMode.HandleKey(s, key)
}

// Window returns the rows to draw for the current cursor and viewport height.
func (s *Session) Window() Window {
	return ComputeWindow(s.buffer.LineCount(), s.cursor.Row(), s.state.ViewportHeight)
}

// VisibleLines returns the lines inside Window.
func (s *Session) VisibleLines() []string {
	w := s.Window()
	return s.buffer.Lines()[w.Start:w.End]
}

// Save writes the buffer to its file.
func (s *Session) Save() error {
	if err := s.buffer.Save(); err != nil {
		return err
	}

	s.DispatchSignal(SaveSignal{s.buffer.Path()})
	s.DispatchMessage(ChangesSavedMessage)
	return nil
}

// Quit marks the session as finished.
func (s *Session) Quit() {
	s.state.Quit = true
	s.DispatchSignal(QuitSignal{})
}
