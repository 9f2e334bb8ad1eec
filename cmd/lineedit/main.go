package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	editor "github.com/ionut-t/lineedit/adapter-bubbletea"
	"github.com/ionut-t/lineedit/core"
)

const debugLogFile = "lineedit-debug.log"

func main() {
	if len(os.Args) != 2 {
		fmt.Println("usage: lineedit <file>")
		os.Exit(2)
	}

	if err := run(os.Args[1]); err != nil {
		log.Fatalf("lineedit: %v", err)
	}
}

// run edits the file at path until the user quits. The debug log, if any,
// is closed and logging is back on stderr by the time it returns.
func run(path string) error {
	buffer, err := core.Load(path)
	if err != nil {
		return err
	}

	// The terminal belongs to the UI while the program runs.
	if os.Getenv("LINEEDIT_DEBUG") != "" {
		f, err := tea.LogToFile(debugLogFile, "debug")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}
	defer log.SetOutput(os.Stderr)

	final, err := tea.NewProgram(editor.New(buffer, 80, 24), tea.WithAltScreen()).Run()
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}

	if m, ok := final.(editor.Model); ok && m.Err() != nil {
		return m.Err()
	}

	return nil
}
