package transition

import (
	"fmt"

	"github.com/matjam/slidepager/internal/types"
)

// State is the progress of one slide.
type State struct {
	Direction   types.Direction `json:"direction"`
	TotalExtent float64         `json:"total_extent"` // canvas size along the slide axis
	StepSize    float64         `json:"step_size"`
	Steps       int             `json:"steps"`
	Frame       int             `json:"frame"`
	Progress    float64         `json:"progress"` // pixels slid so far
}

// NewState prepares a slide across a width x height canvas taking steps
// frames.
func NewState(dir types.Direction, steps, width, height int) (State, error) {
	if !dir.Valid() {
		return State{}, fmt.Errorf("%w: direction %q", ErrInvalidParameter, dir)
	}
	if steps <= 0 {
		return State{}, fmt.Errorf("%w: duration must be at least one step, got %d", ErrInvalidParameter, steps)
	}

	extent := float64(height)
	if dir.Axis() == types.AxisX {
		extent = float64(width)
	}
	if extent <= 0 {
		return State{}, fmt.Errorf("%w: canvas is %dx%d", ErrInvalidParameter, width, height)
	}

	return State{
		Direction:   dir,
		TotalExtent: extent,
		StepSize:    extent / float64(steps),
		Steps:       steps,
	}, nil
}

// Advance moves to the next frame. The last frame lands exactly on
// TotalExtent whether or not StepSize divides it.
func (s *State) Advance() {
	if s.Done() {
		return
	}
	s.Frame++
	if s.Frame >= s.Steps {
		s.Progress = s.TotalExtent
		return
	}
	s.Progress = min(s.TotalExtent, float64(s.Frame)*s.StepSize)
}

func (s State) Done() bool {
	return s.Progress >= s.TotalExtent
}

// Offsets returns where the outgoing and incoming images sit when the slide
// has advanced p pixels out of extent. Along the slide axis the outgoing
// image is at sign*p and the incoming one at sign*(p-extent), so the two
// always butt up against each other; the other axis is 0.
func Offsets(dir types.Direction, p, extent float64) (before, after types.Offset) {
	p = max(0, min(p, extent))
	sign := dir.Sign()
	b := positiveZero(sign * p)
	a := positiveZero(sign * (p - extent))

	if dir.Axis() == types.AxisX {
		return types.Offset{X: b}, types.Offset{X: a}
	}
	return types.Offset{Y: b}, types.Offset{Y: a}
}

func positiveZero(v float64) float64 {
	if v == 0 {
		return 0
	}
	return v
}
