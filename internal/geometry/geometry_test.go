package geometry

import (
	"testing"

	"github.com/matjam/slidepager/internal/gles"
	"github.com/matjam/slidepager/internal/gles/glestest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type point struct{ x, y float32 }

func triangles(v [VertexCount * 2]float32) [2][3]point {
	var tris [2][3]point
	for i := 0; i < VertexCount; i++ {
		tris[i/3][i%3] = point{v[i*2], v[i*2+1]}
	}
	return tris
}

func area(t [3]point) float32 {
	a := (t[1].x-t[0].x)*(t[2].y-t[0].y) - (t[2].x-t[0].x)*(t[1].y-t[0].y)
	if a < 0 {
		a = -a
	}
	return a / 2
}

func TestRectangleCoversBounds(t *testing.T) {
	cases := []struct {
		x, y, w, h float32
	}{
		{0, 0, 100, 50},
		{30, 0, 100, 50},
		{-70, 0, 100, 50},
		{0, -20, 100, 50},
		{0, 0, 1, 1},
	}

	for _, c := range cases {
		v := Rectangle(c.x, c.y, c.w, c.h)

		minX, minY := v[0], v[1]
		maxX, maxY := v[0], v[1]
		for i := 0; i < VertexCount; i++ {
			minX = min(minX, v[i*2])
			maxX = max(maxX, v[i*2])
			minY = min(minY, v[i*2+1])
			maxY = max(maxY, v[i*2+1])
		}
		assert.Equal(t, c.x, minX)
		assert.Equal(t, c.x+c.w, maxX)
		assert.Equal(t, c.y, minY)
		assert.Equal(t, c.y+c.h, maxY)

		// two triangles, each half the rectangle, together the whole of it
		tris := triangles(v)
		assert.InDelta(t, c.w*c.h/2, area(tris[0]), 1e-3)
		assert.InDelta(t, c.w*c.h/2, area(tris[1]), 1e-3)

		// they share exactly the diagonal (x2,y1)-(x1,y2), so they do not overlap
		shared := 0
		for _, p := range tris[0] {
			for _, q := range tris[1] {
				if p == q {
					shared++
				}
			}
		}
		assert.Equal(t, 2, shared)
	}
}

func TestSetRectangle(t *testing.T) {
	gl := glestest.New()
	b := NewBuffer(gl)

	b.SetRectangle(10, 20, 100, 50, 0)
	b.SetRectangle(0, 0, 1, 1, 1)

	require.Equal(t, 2, gl.BuffersCreated)
	pos := gl.Pointers[0]
	assert.Equal(t, int32(2), pos.Size)
	assert.Equal(t, gles.Float, pos.Type)
	assert.False(t, pos.Normalized)
	assert.Equal(t, int32(0), pos.Stride)
	assert.Equal(t, 0, pos.Offset)
	assert.True(t, gl.Enabled[0])
	assert.True(t, gl.Enabled[1])

	assert.Equal(t, []float32{10, 20, 110, 20, 10, 70, 10, 70, 110, 20, 110, 70}, gl.Buffers[pos.Buffer])
	assert.Equal(t, []float32{0, 0, 1, 0, 0, 1, 0, 1, 1, 0, 1, 1}, gl.Buffers[gl.Pointers[1].Buffer])

	// binding is left on the last written slot
	assert.Equal(t, gl.Pointers[1].Buffer, gl.BoundArrayBuffer())
}

func TestSetRectangleReusesBuffer(t *testing.T) {
	gl := glestest.New()
	b := NewBuffer(gl)

	for i := 0; i < 5; i++ {
		b.SetRectangle(float32(i), 0, 10, 10, 0)
	}
	assert.Equal(t, 1, gl.BuffersCreated)
	assert.Equal(t, float32(4), gl.Buffers[gl.Pointers[0].Buffer][0])

	b.Release()
	assert.Empty(t, gl.Buffers)
}
