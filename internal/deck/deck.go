// Package deck keeps the ordered list of image files the daemon pages
// through.
package deck

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var ErrTooFewPages = errors.New("need at least two pages to turn")

// Extensions lists the file types ReadDir picks up.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tif", ".tiff", ".webp"}

type Deck struct {
	sync.Mutex
	pages []string
	pos   int
}

func New(pages []string) *Deck {
	return &Deck{pages: append([]string(nil), pages...)}
}

// ReadDir returns the image files directly inside dir, sorted by name.
func ReadDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	pages := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		for _, want := range Extensions {
			if ext == want {
				pages = append(pages, filepath.Join(dir, entry.Name()))
				break
			}
		}
	}
	return pages, nil
}

func (d *Deck) Pages() []string {
	d.Lock()
	defer d.Unlock()
	return append([]string(nil), d.pages...)
}

// SetPages replaces the deck and goes back to the first page.
func (d *Deck) SetPages(pages []string) {
	d.Lock()
	defer d.Unlock()
	d.pages = append([]string(nil), pages...)
	d.pos = 0
}

func (d *Deck) Len() int {
	d.Lock()
	defer d.Unlock()
	return len(d.pages)
}

// Current is the page on screen, or "" for an empty deck.
func (d *Deck) Current() string {
	d.Lock()
	defer d.Unlock()
	if len(d.pages) == 0 {
		return ""
	}
	return d.pages[d.pos]
}

func (d *Deck) Shuffle() {
	d.Lock()
	defer d.Unlock()

	rand.Shuffle(len(d.pages), func(i, j int) {
		d.pages[i], d.pages[j] = d.pages[j], d.pages[i]
	})
}

// Turn reads the current page and the page delta steps away, wrapping at
// either end, and hands both to show. The deck only moves once show has
// accepted the pair. The deck stays locked meanwhile so turns do not
// interleave.
func (d *Deck) Turn(delta int, read func(path string) ([]byte, error), show func(before, after []byte) error) error {
	d.Lock()
	defer d.Unlock()

	n := len(d.pages)
	if n < 2 {
		return fmt.Errorf("%w: deck has %d", ErrTooFewPages, n)
	}
	next := ((d.pos+delta)%n + n) % n

	before, err := read(d.pages[d.pos])
	if err != nil {
		return fmt.Errorf("error reading page: %w", err)
	}
	after, err := read(d.pages[next])
	if err != nil {
		return fmt.Errorf("error reading page: %w", err)
	}
	if err := show(before, after); err != nil {
		return err
	}

	d.pos = next
	return nil
}
