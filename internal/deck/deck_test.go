package deck

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readName(path string) ([]byte, error) {
	return []byte(path), nil
}

type shown struct {
	before, after string
	err           error
}

func (s *shown) show(before, after []byte) error {
	s.before, s.after = string(before), string(after)
	return s.err
}

func TestTurnWraps(t *testing.T) {
	d := New([]string{"a", "b", "c"})
	assert.Equal(t, "a", d.Current())

	var s shown
	require.NoError(t, d.Turn(1, readName, s.show))
	assert.Equal(t, "a", s.before)
	assert.Equal(t, "b", s.after)
	assert.Equal(t, "b", d.Current())

	require.NoError(t, d.Turn(1, readName, s.show))
	require.NoError(t, d.Turn(1, readName, s.show))
	assert.Equal(t, "a", s.after)

	require.NoError(t, d.Turn(-1, readName, s.show))
	assert.Equal(t, "a", s.before)
	assert.Equal(t, "c", s.after)
	assert.Equal(t, "c", d.Current())
}

func TestTurnFailureKeepsPosition(t *testing.T) {
	d := New([]string{"a", "b"})

	var s shown
	err := d.Turn(1, func(path string) ([]byte, error) {
		if path == "b" {
			return nil, errors.New("gone")
		}
		return []byte(path), nil
	}, s.show)
	assert.Error(t, err)
	assert.Equal(t, "a", d.Current())
	assert.Empty(t, s.before)
}

func TestTurnRejectedKeepsPosition(t *testing.T) {
	d := New([]string{"a", "b", "c"})
	rejected := errors.New("cannot decode")

	s := shown{err: rejected}
	err := d.Turn(1, readName, s.show)
	assert.ErrorIs(t, err, rejected)
	assert.Equal(t, "b", s.after)
	assert.Equal(t, "a", d.Current())

	s.err = nil
	require.NoError(t, d.Turn(1, readName, s.show))
	assert.Equal(t, "a", s.before)
	assert.Equal(t, "b", d.Current())
}

func TestTooFewPages(t *testing.T) {
	d := New(nil)
	assert.Equal(t, "", d.Current())

	var s shown
	assert.ErrorIs(t, d.Turn(1, readName, s.show), ErrTooFewPages)

	d.SetPages([]string{"only"})
	assert.ErrorIs(t, d.Turn(1, readName, s.show), ErrTooFewPages)
}

func TestShuffleKeepsPages(t *testing.T) {
	d := New([]string{"a", "b", "c", "d"})
	d.Shuffle()
	assert.ElementsMatch(t, []string{"a", "b", "c", "d"}, d.Pages())
	assert.Equal(t, 4, d.Len())
}

func TestReadDir(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"b.PNG", "a.jpg", "notes.txt", "c.webp"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), nil, 0o644))
	}
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.png"), 0o755))

	pages, err := ReadDir(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(dir, "a.jpg"),
		filepath.Join(dir, "b.PNG"),
		filepath.Join(dir, "c.webp"),
	}, pages)

	_, err = ReadDir(filepath.Join(dir, "missing"))
	assert.Error(t, err)
}
