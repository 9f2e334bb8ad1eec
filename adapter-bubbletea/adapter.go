package adapter_bubbletea

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	editor "github.com/ionut-t/lineedit/core"
)

type Theme struct {
	NormalModeStyle  lipgloss.Style
	InsertModeStyle  lipgloss.Style
	StatusLineStyle  lipgloss.Style
	CommandLineStyle lipgloss.Style
	MessageStyle     lipgloss.Style
	ErrorStyle       lipgloss.Style
	TextStyle        lipgloss.Style
	CursorStyle      lipgloss.Style
}

var DefaultTheme = Theme{
	NormalModeStyle:  lipgloss.NewStyle().Background(lipgloss.Color("62")).Foreground(lipgloss.Color("255")),
	InsertModeStyle:  lipgloss.NewStyle().Background(lipgloss.Color("26")).Foreground(lipgloss.Color("255")),
	CommandLineStyle: lipgloss.NewStyle().Background(lipgloss.Color("235")).Foreground(lipgloss.Color("255")),
	StatusLineStyle:  lipgloss.NewStyle().Background(lipgloss.Color("236")).Foreground(lipgloss.Color("255")),
	MessageStyle:     lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	ErrorStyle:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	TextStyle:        lipgloss.NewStyle().Background(lipgloss.Color("#282c34")),
	CursorStyle:      lipgloss.NewStyle().Background(lipgloss.Color("255")).Foreground(lipgloss.Color("0")),
}

const messageDuration = 3 * time.Second

type Model struct {
	session        *editor.Session
	viewport       viewport.Model
	width          int
	height         int
	showStatusLine bool
	theme          Theme
	StatusLineFunc func() string
	err            error // fatal error that ended the session
	message        string
	messageErr     error
}

type messageMsg string

type errMsg error

// SaveMsg is emitted after the buffer has been written to Path.
type SaveMsg struct {
	Path string
}

type QuitMsg struct{}

type clearMsg struct{}

// signalMsg carries one signal from the session to Update.
type signalMsg struct {
	signal editor.Signal
}

func (m *Model) dispatchClearMsg() tea.Cmd {
	return tea.Tick(messageDuration, func(t time.Time) tea.Msg {
		return clearMsg{}
	})
}

// New creates an editor model over buffer sized to width x height cells.
func New(buffer *editor.TextBuffer, width, height int) Model {
	vp := viewport.New(width, height-2)

	m := Model{
		session:        editor.NewSession(buffer),
		viewport:       vp,
		showStatusLine: true,
		theme:          DefaultTheme,
	}

	m.SetSize(width, height)

	return m
}

// SetSize resizes the editor. The message line and, when shown, the status
// line take one row each; the rest is the text area.
func (m *Model) SetSize(width, height int) {
	reserved := 1
	if m.showStatusLine {
		reserved++
	}

	m.width = width
	m.height = height
	m.viewport.Width = width
	m.viewport.Height = max(height-reserved, 1)
	m.viewport.YOffset = 0

	m.session.SetViewportHeight(m.viewport.Height)
}

// WithTheme allows setting a custom theme for the editor.
func (m *Model) WithTheme(theme Theme) {
	m.theme = theme
}

// HideStatusLine controls whether to show the status line at the bottom of the viewport.
func (m *Model) HideStatusLine(hide bool) {
	m.showStatusLine = !hide
	m.SetSize(m.width, m.height)
}

// ReachLastLine lets the down motion move onto the final line of the file.
func (m *Model) ReachLastLine(reach bool) {
	m.session.ReachLastLine(reach)
}

// GetSession returns the underlying editing session.
func (m *Model) GetSession() *editor.Session {
	return m.session
}

// Err returns the fatal error that ended the session, if any.
func (m Model) Err() error {
	return m.err
}

func (m Model) Init() tea.Cmd {
	return m.listenForEditorUpdate()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)

	case tea.KeyMsg:
		// Pasted text is only ever text; outside insertion mode its runes
		// would run as commands.
		if msg.Paste && !m.session.IsInsertionMode() {
			err := fmt.Errorf("%w: paste outside insert mode", editor.ErrInputDecode)
			log.Printf("ignoring key: %v", err)
			m.session.DispatchError(editor.ErrInputDecodeId, err)
			break
		}

		keys, err := convertBubbleKey(msg)
		if err != nil {
			log.Printf("ignoring key: %v", err)
			break
		}

		for _, key := range keys {
			if err := m.session.HandleKey(key); err != nil {
				if errors.Is(err, editor.ErrIO) {
					m.err = err
					return m, tea.Quit
				}
				cmds = append(cmds, func() tea.Msg {
					return errMsg(err)
				})
			}

			if m.session.GetState().Quit {
				return m, tea.Quit
			}
		}

	case signalMsg:
		cmds = append(cmds, m.handleSignal(msg.signal), m.listenForEditorUpdate())

	case messageMsg:
		m.message = string(msg)
		m.messageErr = nil
		cmds = append(cmds, m.dispatchClearMsg())

	case errMsg:
		m.message = ""
		m.messageErr = msg
		cmds = append(cmds, m.dispatchClearMsg())

	case clearMsg:
		m.message = ""
		m.messageErr = nil

	case QuitMsg:
		return m, tea.Quit
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	m.viewport.SetContent(m.renderVisibleSlice())
	content := m.viewport.View()

	var commandLine string

	if m.message != "" {
		commandLine = m.theme.MessageStyle.Render(m.message)
	}

	if m.messageErr != nil {
		commandLine = m.theme.ErrorStyle.Render(m.messageErr.Error())
	}

	rows := []string{content}

	if m.showStatusLine {
		statusLine := m.getStatusLine()
		paddingWidth := m.width - lipgloss.Width(statusLine)
		if paddingWidth > 0 {
			statusLine += m.theme.StatusLineStyle.Render(strings.Repeat(" ", paddingWidth))
		}
		rows = append(rows, statusLine)
	}

	paddingWidth := m.width - lipgloss.Width(commandLine)
	if paddingWidth > 0 {
		commandLine += m.theme.CommandLineStyle.Render(strings.Repeat(" ", paddingWidth))
	}
	rows = append(rows, commandLine)

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m *Model) getStatusLine() string {
	if m.StatusLineFunc != nil {
		return m.StatusLineFunc()
	}

	mode := m.session.Mode()

	var statusLine string
	switch mode {
	case editor.InsertionMode:
		statusLine = m.theme.InsertModeStyle.Render(" " + mode.Label() + " ")
	default:
		statusLine = m.theme.NormalModeStyle.Render(" " + mode.Label() + " ")
	}

	buffer := m.session.Buffer()
	fileInfo := " " + filepath.Base(buffer.Path())
	if buffer.IsModified() {
		fileInfo += " [+]"
	}

	cursor := m.session.Cursor()
	cursorInfo := fmt.Sprintf("%d/%d ", cursor.Row()+1, cursor.Column()+1)

	width := m.width - (lipgloss.Width(statusLine) + lipgloss.Width(fileInfo) + lipgloss.Width(cursorInfo))
	gap := strings.Repeat(" ", max(0, width))

	statusLine += m.theme.StatusLineStyle.Render(
		fileInfo + gap + cursorInfo,
	)

	return statusLine
}

// listenForEditorUpdate waits for the next session signal. It is re-armed
// each time a signal arrives, so at most one listener is running.
func (m *Model) listenForEditorUpdate() tea.Cmd {
	updates := m.session.GetUpdateSignalChan()
	return func() tea.Msg {
		return signalMsg{<-updates}
	}
}

func (m *Model) handleSignal(signal editor.Signal) tea.Cmd {
	switch signal := signal.(type) {
	case editor.MessageSignal:
		_, message := signal.Value()
		return func() tea.Msg { return messageMsg(message) }

	case editor.ErrorSignal:
		_, err := signal.Value()
		return func() tea.Msg { return errMsg(err) }

	case editor.SaveSignal:
		path := signal.Value()
		return func() tea.Msg { return SaveMsg{Path: path} }

	case editor.ModeChangeSignal:
		return func() tea.Msg { return clearMsg{} }

	case editor.QuitSignal:
		return func() tea.Msg { return QuitMsg{} }
	}

	return nil
}

// convertBubbleKey turns one Bubble Tea key message into editor key events.
// Pasted text arrives as a single message and becomes one event per rune,
// with pasted line feeds turned into Enter.
func convertBubbleKey(msg tea.KeyMsg) ([]editor.KeyEvent, error) {
	key := editor.KeyEvent{}

	if msg.Alt {
		key.Modifiers |= editor.ModAlt
	}

	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return nil, fmt.Errorf("%w: empty rune event", editor.ErrInputDecode)
		}
		keys := make([]editor.KeyEvent, 0, len(msg.Runes))
		for _, r := range msg.Runes {
			if msg.Paste && r == '\n' {
				keys = append(keys, editor.KeyEvent{Key: editor.KeyEnter})
				continue
			}
			keys = append(keys, editor.KeyEvent{Rune: r, Modifiers: key.Modifiers})
		}
		return keys, nil
	case tea.KeyEnter:
		key.Key = editor.KeyEnter
	case tea.KeySpace:
		key.Key = editor.KeySpace
		key.Rune = ' '
	case tea.KeyEsc:
		key.Key = editor.KeyEscape
	case tea.KeyBackspace, tea.KeyCtrlH:
		key.Key = editor.KeyBackspace
	case tea.KeyTab:
		key.Key = editor.KeyTab
		key.Rune = '\t'
	case tea.KeyUp:
		key.Key = editor.KeyUp
	case tea.KeyDown:
		key.Key = editor.KeyDown
	case tea.KeyLeft:
		key.Key = editor.KeyLeft
	case tea.KeyRight:
		key.Key = editor.KeyRight
	case tea.KeyCtrlS:
		key.Rune = 's'
		key.Modifiers |= editor.ModCtrl
	default:
		return nil, fmt.Errorf("%w: %s", editor.ErrInputDecode, msg.String())
	}

	return []editor.KeyEvent{key}, nil
}
