// Package pager is the public face of the slide renderer: it decodes the
// two images of a transition and hands them to the transition controller.
package pager

import (
	"fmt"

	"github.com/matjam/slidepager/internal/frame"
	"github.com/matjam/slidepager/internal/imagecodec"
	"github.com/matjam/slidepager/internal/transition"
	"github.com/matjam/slidepager/internal/types"
)

var ErrDecode = imagecodec.ErrDecode

// Decoder turns encoded bytes into an RGBA buffer.
type Decoder interface {
	Decode(data []byte) (types.ImageBuffer, error)
}

// Controller is the part of transition.Controller the pager drives.
type Controller interface {
	Initialize() error
	Transition(dir types.Direction, steps int, before, after types.ImageBuffer) (*frame.Handle, error)
	Cancel()
}

type Pager struct {
	ctrl    Controller
	decoder Decoder
}

func New(ctrl Controller, decoder Decoder) *Pager {
	return &Pager{ctrl: ctrl, decoder: decoder}
}

func (p *Pager) Initialize() error {
	return p.ctrl.Initialize()
}

func (p *Pager) Up(steps int, before, after []byte) (*frame.Handle, error) {
	return p.Transition(types.DirectionUp, steps, before, after)
}

func (p *Pager) Right(steps int, before, after []byte) (*frame.Handle, error) {
	return p.Transition(types.DirectionRight, steps, before, after)
}

func (p *Pager) Down(steps int, before, after []byte) (*frame.Handle, error) {
	return p.Transition(types.DirectionDown, steps, before, after)
}

func (p *Pager) Left(steps int, before, after []byte) (*frame.Handle, error) {
	return p.Transition(types.DirectionLeft, steps, before, after)
}

// Transition decodes both images and starts the slide. It returns as soon
// as the slide is scheduled.
func (p *Pager) Transition(dir types.Direction, steps int, before, after []byte) (*frame.Handle, error) {
	if steps <= 0 {
		return nil, fmt.Errorf("%w: duration must be at least one step, got %d", transition.ErrInvalidParameter, steps)
	}
	b, err := p.decoder.Decode(before)
	if err != nil {
		return nil, fmt.Errorf("before image: %w", err)
	}
	a, err := p.decoder.Decode(after)
	if err != nil {
		return nil, fmt.Errorf("after image: %w", err)
	}
	return p.ctrl.Transition(dir, steps, b, a)
}

func (p *Pager) Cancel() {
	p.ctrl.Cancel()
}
