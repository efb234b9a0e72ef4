package types

import (
	"fmt"
	"strings"
)

type ScalingMode string

const (
	ScalingModeCenter        ScalingMode = "center"
	ScalingModeStretch       ScalingMode = "stretched"
	ScalingModeFitHorizontal ScalingMode = "horizontal"
	ScalingModeFitVertical   ScalingMode = "vertical"
)

// Direction is the way the outgoing image leaves the canvas.
type Direction string

const (
	DirectionUp    Direction = "up"
	DirectionRight Direction = "right"
	DirectionDown  Direction = "down"
	DirectionLeft  Direction = "left"
)

// Directions lists every supported direction in a stable order.
var Directions = []Direction{DirectionUp, DirectionRight, DirectionDown, DirectionLeft}

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// ParseDirection accepts any casing of a direction name.
func ParseDirection(s string) (Direction, error) {
	d := Direction(strings.ToLower(strings.TrimSpace(s)))
	if !d.Valid() {
		return "", fmt.Errorf("unknown direction %q", s)
	}
	return d, nil
}

func (d Direction) Valid() bool {
	switch d {
	case DirectionUp, DirectionRight, DirectionDown, DirectionLeft:
		return true
	}
	return false
}

// Axis returns X for horizontal slides and Y for vertical ones.
func (d Direction) Axis() Axis {
	if d == DirectionRight || d == DirectionLeft {
		return AxisX
	}
	return AxisY
}

// Sign is +1 when the slide moves towards increasing pixel coordinates
// (right, or down since y grows downwards) and -1 otherwise.
func (d Direction) Sign() float64 {
	if d == DirectionRight || d == DirectionDown {
		return 1
	}
	return -1
}

func (d Direction) String() string {
	return string(d)
}

// Offset is a translation in canvas pixels.
type Offset struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ImageBuffer is a decoded image: tightly packed RGBA rows, 4 bytes per pixel,
// not premultiplied.
type ImageBuffer struct {
	Width  int
	Height int
	Pix    []byte
}

// Validate reports whether the buffer holds exactly Width*Height RGBA pixels.
func (b ImageBuffer) Validate() error {
	if b.Width <= 0 || b.Height <= 0 {
		return fmt.Errorf("invalid image size %dx%d", b.Width, b.Height)
	}
	if want := b.Width * b.Height * 4; len(b.Pix) != want {
		return fmt.Errorf("image %dx%d needs %d bytes, got %d", b.Width, b.Height, want, len(b.Pix))
	}
	return nil
}
