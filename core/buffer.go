package core

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"unicode/utf8"
)

// TextBuffer holds the lines of a single file. Lines are stored without
// terminators and there is always at least one line.
//
// The buffer does no bounds checking: the modes guard every index before
// calling into it.
type TextBuffer struct {
	path         string
	lines        []string
	savedContent string
}

// Load reads the file at path into a new buffer.
func Load(path string) (*TextBuffer, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w: %w", path, ErrIO, err)
	}

	return NewTextBuffer(path, content), nil
}

// NewTextBuffer creates a buffer backed by path from content already in memory.
func NewTextBuffer(path string, content []byte) *TextBuffer {
	b := &TextBuffer{path: path}
	b.SetContent(content)
	b.savedContent = b.Content()
	return b
}

func (b *TextBuffer) Path() string {
	return b.path
}

// SetContent replaces every line. Splitting on '\n' keeps a trailing newline
// as a final empty line, so Content reproduces the input byte for byte.
func (b *TextBuffer) SetContent(content []byte) {
	b.lines = strings.Split(string(content), "\n")
}

func (b *TextBuffer) Lines() []string {
	return b.lines
}

// LinesMut gives unrestricted access to the line sequence.
func (b *TextBuffer) LinesMut() *[]string {
	return &b.lines
}

func (b *TextBuffer) LineCount() int {
	return len(b.lines)
}

func (b *TextBuffer) Line(row int) string {
	return b.lines[row]
}

// RuneCount returns the length of a line in columns.
func (b *TextBuffer) RuneCount(row int) int {
	return utf8.RuneCountInString(b.lines[row])
}

// Content returns the buffer as it would be written to disk.
func (b *TextBuffer) Content() string {
	return strings.Join(b.lines, "\n")
}

func (b *TextBuffer) IsModified() bool {
	return b.savedContent != b.Content()
}

// Save overwrites the backing file. The write is not atomic: a failure part
// way through can leave the file truncated.
func (b *TextBuffer) Save() error {
	content := b.Content()
	if err := os.WriteFile(b.path, []byte(content), 0644); err != nil {
		return fmt.Errorf("save %s: %w: %w", b.path, ErrIO, err)
	}

	b.savedContent = content
	return nil
}

// --- Index-addressed mutation ---

// InsertRune inserts r before column col of row.
func (b *TextBuffer) InsertRune(row, col int, r rune) {
	line := []rune(b.lines[row])
	b.lines[row] = string(slices.Insert(line, col, r))
}

// DeleteRune removes the rune at column col of row.
func (b *TextBuffer) DeleteRune(row, col int) {
	line := []rune(b.lines[row])
	b.lines[row] = string(slices.Delete(line, col, col+1))
}

// SplitLine breaks row at col. The text from col onwards becomes a new line
// directly below.
func (b *TextBuffer) SplitLine(row, col int) {
	line := []rune(b.lines[row])
	head, tail := string(line[:col]), string(line[col:])

	b.lines[row] = head
	b.lines = slices.Insert(b.lines, row+1, tail)
}

// JoinWithPrevious appends row to the line above it and removes row.
// It returns the rune length the previous line had before the join.
func (b *TextBuffer) JoinWithPrevious(row int) int {
	prevLen := b.RuneCount(row - 1)

	b.lines[row-1] += b.lines[row]
	b.lines = slices.Delete(b.lines, row, row+1)

	return prevLen
}
