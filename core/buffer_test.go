package core

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "doc.txt")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestNewTextBufferSplitsOnLineFeed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{"empty file", "", []string{""}},
		{"single line", "hello", []string{"hello"}},
		{"two lines", "hello\nworld", []string{"hello", "world"}},
		{"trailing newline", "hello\n", []string{"hello", ""}},
		{"blank lines", "\n\n", []string{"", "", ""}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := NewTextBuffer("doc.txt", []byte(tc.content))
			if diff := cmp.Diff(tc.want, b.Lines()); diff != "" {
				t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, tc.content, b.Content())
			assert.False(t, b.IsModified())
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.txt"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestIOErrorsNameThePath(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "missing.txt")
	_, err := Load(missing)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "load "+missing+": "), err.Error())

	dir := t.TempDir()
	err = NewTextBuffer(dir, []byte("text")).Save()
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "save "+dir+": "), err.Error())
}

func TestLoadSaveRoundTrip(t *testing.T) {
	for _, content := range []string{"", "one", "one\ntwo\n", "a\n\nb", "héllo\twörld\n"} {
		path := writeTempFile(t, content)

		b, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, path, b.Path())
		require.NoError(t, b.Save())

		got, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Equal(t, content, string(got))
	}
}

func TestSaveFailureIsIOError(t *testing.T) {
	dir := t.TempDir()
	b := NewTextBuffer(dir, []byte("text"))

	err := b.Save()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIO)
}

func TestIsModified(t *testing.T) {
	path := writeTempFile(t, "cat")
	b, err := Load(path)
	require.NoError(t, err)

	b.InsertRune(0, 3, 's')
	assert.True(t, b.IsModified())

	require.NoError(t, b.Save())
	assert.False(t, b.IsModified())

	b.DeleteRune(0, 3)
	assert.True(t, b.IsModified())
}

func TestRuneOperations(t *testing.T) {
	b := NewTextBuffer("doc.txt", []byte("héllo\nwörld"))

	assert.Equal(t, 5, b.RuneCount(0))

	b.InsertRune(0, 2, 'X')
	assert.Equal(t, "héXllo", b.Line(0))

	b.DeleteRune(0, 1)
	assert.Equal(t, "hXllo", b.Line(0))

	b.InsertRune(1, 5, '!')
	assert.Equal(t, "wörld!", b.Line(1))
}

func TestSplitAndJoin(t *testing.T) {
	b := NewTextBuffer("doc.txt", []byte("first\nabcd\nlast"))

	b.SplitLine(1, 2)
	if diff := cmp.Diff([]string{"first", "ab", "cd", "last"}, b.Lines()); diff != "" {
		t.Errorf("after split (-want +got):\n%s", diff)
	}

	prevLen := b.JoinWithPrevious(2)
	assert.Equal(t, 2, prevLen)
	if diff := cmp.Diff([]string{"first", "abcd", "last"}, b.Lines()); diff != "" {
		t.Errorf("after join (-want +got):\n%s", diff)
	}
}

func TestSplitAtLineEdges(t *testing.T) {
	b := NewTextBuffer("doc.txt", []byte("abc"))

	b.SplitLine(0, 3)
	assert.Equal(t, []string{"abc", ""}, b.Lines())

	b.SplitLine(0, 0)
	assert.Equal(t, []string{"", "abc", ""}, b.Lines())
}

func TestLinesMut(t *testing.T) {
	b := NewTextBuffer("doc.txt", []byte("a\nb"))

	lines := b.LinesMut()
	*lines = append(*lines, "c")
	(*lines)[0] = "z"

	assert.Equal(t, []string{"z", "b", "c"}, b.Lines())
	assert.Equal(t, 3, b.LineCount())
}
