package pager

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/matjam/slidepager/internal/frame"
	"github.com/matjam/slidepager/internal/gles/glestest"
	"github.com/matjam/slidepager/internal/imagecodec"
	"github.com/matjam/slidepager/internal/transition"
	"github.com/matjam/slidepager/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type surface struct{ w, h int }

func (s surface) Size() (int, int) { return s.w, s.h }

type host struct{}

func (host) RequestFrame() {}

func pngOf(t *testing.T, w, h int, c color.Color) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func newPager(t *testing.T) (*Pager, *frame.Scheduler, *glestest.Context) {
	t.Helper()
	gl := glestest.New()
	sched := frame.NewScheduler(host{})
	ctrl := transition.NewController(gl, surface{20, 10}, sched)
	p := New(ctrl, imagecodec.NewDecoder(20, 10, types.ScalingModeStretch))
	require.NoError(t, p.Initialize())
	require.NoError(t, p.Initialize())
	return p, sched, gl
}

func TestDirections(t *testing.T) {
	red := pngOf(t, 4, 4, color.RGBA{R: 255, A: 255})
	blue := pngOf(t, 8, 2, color.RGBA{B: 255, A: 255})

	ops := map[types.Direction]func(*Pager, int, []byte, []byte) (*frame.Handle, error){
		types.DirectionUp:    (*Pager).Up,
		types.DirectionRight: (*Pager).Right,
		types.DirectionDown:  (*Pager).Down,
		types.DirectionLeft:  (*Pager).Left,
	}

	for dir, op := range ops {
		p, sched, gl := newPager(t)

		h, err := op(p, 4, red, blue)
		require.NoError(t, err, dir)

		frames := 0
		for sched.Tick() {
			frames++
		}
		assert.Equal(t, 4, frames, dir)
		assert.NoError(t, h.Err())

		require.Len(t, gl.Uploads, 8)
		// decoded and scaled to the canvas before upload
		assert.Equal(t, int32(20), gl.Uploads[0].Width)
		assert.Equal(t, int32(10), gl.Uploads[0].Height)
		assert.Equal(t, []byte{255, 0, 0, 255}, gl.Uploads[0].Pixels[:4])
		assert.Equal(t, []byte{0, 0, 255, 255}, gl.Uploads[1].Pixels[:4])
	}
}

func TestDecodeErrorIsSurfaced(t *testing.T) {
	p, sched, _ := newPager(t)
	good := pngOf(t, 2, 2, color.White)

	_, err := p.Left(4, []byte("garbage"), good)
	assert.ErrorIs(t, err, ErrDecode)
	assert.Contains(t, err.Error(), "before image")

	_, err = p.Left(4, good, nil)
	assert.ErrorIs(t, err, ErrDecode)
	assert.Contains(t, err.Error(), "after image")

	assert.False(t, sched.Pending())
}

func TestZeroSteps(t *testing.T) {
	p, sched, _ := newPager(t)
	good := pngOf(t, 2, 2, color.White)

	_, err := p.Up(0, good, good)
	assert.ErrorIs(t, err, transition.ErrInvalidParameter)
	assert.False(t, sched.Pending())
}

func TestCancel(t *testing.T) {
	p, sched, _ := newPager(t)
	good := pngOf(t, 2, 2, color.White)

	h, err := p.Right(10, good, good)
	require.NoError(t, err)
	sched.Tick()
	p.Cancel()

	assert.False(t, sched.Tick())
	assert.ErrorIs(t, h.Err(), frame.ErrCancelled)
}
