package status

import (
	"errors"
	"fmt"
	"maps"
	"sync"

	"github.com/charmbracelet/log"
)

// Element ids the transition engine reports to.
const (
	ElementProgress  = "progress"
	ElementDirection = "direction"
	ElementState     = "state"
)

var ErrLookup = errors.New("status element not found")

// Sink receives short status texts keyed by element id.
type Sink interface {
	SetText(id, text string) error
}

// Board is an in-memory set of named text elements. Writing to an id that
// was never registered fails with ErrLookup. It is safe for concurrent use;
// the render thread writes while IPC handlers read.
type Board struct {
	mu       sync.RWMutex
	elements map[string]string
}

func NewBoard(ids ...string) *Board {
	b := &Board{elements: make(map[string]string, len(ids))}
	for _, id := range ids {
		b.elements[id] = ""
	}
	return b
}

// DefaultBoard has every element the transition engine writes to.
func DefaultBoard() *Board {
	return NewBoard(ElementProgress, ElementDirection, ElementState)
}

func (b *Board) Register(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.elements[id]; !ok {
		b.elements[id] = ""
	}
}

func (b *Board) SetText(id, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if _, ok := b.elements[id]; !ok {
		return fmt.Errorf("%w: %q", ErrLookup, id)
	}
	b.elements[id] = text
	return nil
}

func (b *Board) Text(id string) (string, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	text, ok := b.elements[id]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrLookup, id)
	}
	return text, nil
}

// Snapshot returns a copy of every element.
func (b *Board) Snapshot() map[string]string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return maps.Clone(b.elements)
}

// LogSink writes status updates to the debug log.
type LogSink struct{}

func (LogSink) SetText(id, text string) error {
	log.Debug("status", "element", id, "text", text)
	return nil
}

// Multi fans a status update out to several sinks and returns the first
// error, after every sink has been written.
type Multi []Sink

func (m Multi) SetText(id, text string) error {
	var first error
	for _, s := range m {
		if err := s.SetText(id, text); err != nil && first == nil {
			first = err
		}
	}
	return first
}
