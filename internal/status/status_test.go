package status

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	b := DefaultBoard()

	require.NoError(t, b.SetText(ElementProgress, "30/100"))
	text, err := b.Text(ElementProgress)
	require.NoError(t, err)
	assert.Equal(t, "30/100", text)

	err = b.SetText("missing", "x")
	assert.ErrorIs(t, err, ErrLookup)
	_, err = b.Text("missing")
	assert.ErrorIs(t, err, ErrLookup)

	b.Register("missing")
	assert.NoError(t, b.SetText("missing", "x"))

	snap := b.Snapshot()
	snap[ElementProgress] = "changed"
	text, _ = b.Text(ElementProgress)
	assert.Equal(t, "30/100", text)
}

func TestMulti(t *testing.T) {
	a := NewBoard("a")
	b := NewBoard("b")
	m := Multi{a, LogSink{}, b}

	err := m.SetText("a", "1")
	assert.ErrorIs(t, err, ErrLookup)
	text, _ := a.Text("a")
	assert.Equal(t, "1", text)

	assert.NoError(t, Multi{a, LogSink{}}.SetText("a", "2"))
}
