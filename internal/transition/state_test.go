package transition

import (
	"math"
	"testing"

	"github.com/matjam/slidepager/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetsTable(t *testing.T) {
	const w, h = 100.0, 50.0

	cases := []struct {
		dir           types.Direction
		p             float64
		before, after types.Offset
	}{
		{types.DirectionUp, 20, types.Offset{Y: -20}, types.Offset{Y: 30}},
		{types.DirectionUp, h, types.Offset{Y: -h}, types.Offset{Y: 0}},
		{types.DirectionDown, 20, types.Offset{Y: 20}, types.Offset{Y: -30}},
		{types.DirectionDown, h, types.Offset{Y: h}, types.Offset{Y: 0}},
		{types.DirectionRight, 30, types.Offset{X: 30}, types.Offset{X: -70}},
		{types.DirectionRight, w, types.Offset{X: w}, types.Offset{X: 0}},
		{types.DirectionLeft, 30, types.Offset{X: -30}, types.Offset{X: 70}},
		{types.DirectionLeft, w, types.Offset{X: -w}, types.Offset{X: 0}},
		{types.DirectionLeft, 0, types.Offset{X: 0}, types.Offset{X: w}},
	}

	for _, c := range cases {
		extent := h
		if c.dir.Axis() == types.AxisX {
			extent = w
		}
		before, after := Offsets(c.dir, c.p, extent)
		assert.Equal(t, c.before, before, "%v before at %v", c.dir, c.p)
		assert.Equal(t, c.after, after, "%v after at %v", c.dir, c.p)
	}
}

func TestOffsetsAreComplementary(t *testing.T) {
	for _, dir := range types.Directions {
		for _, extent := range []float64{1, 50, 100, 333} {
			for p := 0.0; p <= extent; p += extent / 17 {
				before, after := Offsets(dir, p, extent)

				var along, cross float64
				if dir.Axis() == types.AxisX {
					along = math.Abs(before.X) + math.Abs(after.X)
					cross = math.Abs(before.Y) + math.Abs(after.Y)
				} else {
					along = math.Abs(before.Y) + math.Abs(after.Y)
					cross = math.Abs(before.X) + math.Abs(after.X)
				}
				assert.InDelta(t, extent, along, 1e-9, "%v p=%v", dir, p)
				assert.Zero(t, cross)
			}
		}
	}
}

func TestOffsetsClampOvershoot(t *testing.T) {
	before, after := Offsets(types.DirectionRight, 250, 100)
	assert.Equal(t, types.Offset{X: 100}, before)
	assert.Equal(t, types.Offset{X: 0}, after)
}

func TestStateFrames(t *testing.T) {
	cases := []struct {
		dir    types.Direction
		steps  int
		extent float64
	}{
		{types.DirectionRight, 10, 100},
		{types.DirectionLeft, 3, 100},
		{types.DirectionUp, 5, 50},
		{types.DirectionDown, 7, 50},
		{types.DirectionRight, 1, 100},
		{types.DirectionRight, 400, 100},
	}

	for _, c := range cases {
		s, err := NewState(c.dir, c.steps, 100, 50)
		require.NoError(t, err)
		assert.Equal(t, c.extent, s.TotalExtent)
		assert.InDelta(t, c.extent/float64(c.steps), s.StepSize, 1e-12)

		var progress []float64
		for !s.Done() {
			s.Advance()
			progress = append(progress, s.Progress)
		}

		// ceil(TotalExtent/StepSize) frames, which is the step count
		assert.Len(t, progress, c.steps, "%v over %d steps", c.dir, c.steps)
		assert.Equal(t, c.extent, progress[len(progress)-1])
		for i := 1; i < len(progress); i++ {
			assert.Greater(t, progress[i], progress[i-1])
		}

		s.Advance()
		assert.Equal(t, c.extent, s.Progress, "no overshoot once done")
	}
}

func TestNewStateInvalid(t *testing.T) {
	_, err := NewState(types.DirectionUp, 0, 100, 50)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewState(types.DirectionUp, -3, 100, 50)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewState(types.Direction("sideways"), 5, 100, 50)
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = NewState(types.DirectionUp, 5, 100, 0)
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
