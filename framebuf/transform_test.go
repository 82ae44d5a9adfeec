package framebuf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRotate(t *testing.T) {
	src := sample()

	t.Run("zero angle", func(t *testing.T) {
		m := New(src.Width(), src.Height())
		m.Rotate(src, 0)
		assert.Equal(t, src.Pix(), m.Pix())
	})

	t.Run("samples source", func(t *testing.T) {
		colors := map[Color]bool{}
		for _, c := range src.Pix() {
			colors[c] = true
		}

		m := New(10, 10)
		m.Rotate(src, math.Pi/3)
		for _, c := range m.Pix() {
			assert.True(t, colors[c], "unexpected color %s", c)
		}
	})
}

func TestZoom(t *testing.T) {
	src := New(4, 4)
	for y := range 4 {
		for x := range 4 {
			src.SetPixel(x, y, Color{uint8(x), uint8(y), 0, 0xFF})
		}
	}

	t.Run("identity", func(t *testing.T) {
		m := New(4, 4)
		m.Zoom(src, 1, 2, 2)
		assert.Equal(t, src.Pix(), m.Pix())
	})

	t.Run("magnify", func(t *testing.T) {
		m := New(4, 4)
		m.Zoom(src, 0.5, 2, 2)
		assert.Equal(t, Color{1, 1, 0, 0xFF}, m.Pixel(0, 0))
		assert.Equal(t, Color{1, 1, 0, 0xFF}, m.Pixel(1, 1))
		assert.Equal(t, Color{2, 2, 0, 0xFF}, m.Pixel(3, 3))
	})

	t.Run("clamped", func(t *testing.T) {
		m := New(4, 4)
		m.Zoom(src, 1, -100, -100)
		assert.Equal(t, 16, count(m, src.Pixel(0, 0)))
	})
}
