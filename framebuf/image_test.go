package framebuf

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// count returns the number of pixels of m equal to c.
func count(m *Image, c Color) int {
	var n int
	for _, p := range m.Pix() {
		if p == c {
			n++
		}
	}
	return n
}

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		wantW, wantH  int
	}{
		{"regular", 4, 3, 4, 3},
		{"zero width", 0, 3, 0, 0},
		{"negative", -2, 5, 0, 0},
	}
	for _, x := range tests {
		t.Run(x.name, func(t *testing.T) {
			m := New(x.width, x.height)
			assert.Equal(t, x.wantW, m.Width())
			assert.Equal(t, x.wantH, m.Height())
			assert.Len(t, m.Pix(), x.wantW*x.wantH)
			assert.Equal(t, x.wantW*x.wantH, count(m, Color{}))
		})
	}
}

func TestSafeAccessors(t *testing.T) {
	m := New(3, 2)
	m.SetPixel(0, 0, Red)
	m.SetPixel(2, 1, Blue)

	t.Run("clamped reads", func(t *testing.T) {
		assert.Equal(t, Red, m.PixelSafe(-5, -5))
		assert.Equal(t, Blue, m.PixelSafe(10, 10))
		assert.Equal(t, Blue, m.PixelSafe(2, 7))
	})

	t.Run("clamped writes", func(t *testing.T) {
		dup := m.Clone()
		dup.SetPixelSafe(99, -1, Green)
		assert.Equal(t, Green, dup.Pixel(2, 0))
		assert.Equal(t, Red, m.PixelSafe(0, 0))
	})

	t.Run("empty", func(t *testing.T) {
		e := New(0, 0)
		assert.True(t, e.Empty())
		assert.Equal(t, Color{}, e.PixelSafe(1, 1))
		assert.NotPanics(t, func() { e.SetPixelSafe(1, 1, Red) })
	})
}

func TestPixelRoundTrip(t *testing.T) {
	m := New(7, 5)
	for y := range m.Height() {
		for x := range m.Width() {
			m.SetPixel(x, y, Color{uint8(x), uint8(y), uint8(x * y), 0xFF})
		}
	}
	for y := range m.Height() {
		for x := range m.Width() {
			assert.Equal(t, Color{uint8(x), uint8(y), uint8(x * y), 0xFF}, m.Pixel(x, y), "(%d,%d)", x, y)
		}
	}

	m.Fill(Purple)
	assert.Equal(t, m.Width()*m.Height(), count(m, Purple))
}

func TestClone(t *testing.T) {
	m := New(2, 2)
	m.Fill(Yellow)
	dup := m.Clone()
	dup.SetPixel(1, 1, Black)

	assert.Equal(t, Yellow, m.Pixel(1, 1))
	assert.Equal(t, Black, dup.Pixel(1, 1))
}

func TestMoveFrom(t *testing.T) {
	src := New(2, 3)
	src.Fill(Cyan)
	dst := New(5, 5)
	dst.MoveFrom(src)

	assert.Equal(t, 2, dst.Width())
	assert.Equal(t, 3, dst.Height())
	assert.Equal(t, 6, count(dst, Cyan))
	assert.True(t, src.Empty())
	assert.Equal(t, 0, src.Width())

	dst.MoveFrom(dst)
	assert.Equal(t, 6, count(dst, Cyan))
}

func TestResize(t *testing.T) {
	m := New(2, 2)
	m.Fill(Red)

	m.Resize(3, 1)
	require.Equal(t, 3, m.Width())
	require.Equal(t, 1, m.Height())
	assert.Equal(t, []Color{Red, Red, {}}, m.Pix())
}

func TestScale(t *testing.T) {
	m := New(2, 1)
	m.SetPixel(0, 0, Red)
	m.SetPixel(1, 0, Blue)

	m.Scale(4, 2)
	require.Equal(t, 4, m.Width())
	require.Equal(t, 2, m.Height())
	assert.Equal(t, []Color{Red, Red, Blue, Blue, Red, Red, Blue, Blue}, m.Pix())
}

func TestFlip(t *testing.T) {
	m := New(2, 2)
	m.SetPixel(0, 0, Red)
	m.SetPixel(1, 0, Green)
	m.SetPixel(0, 1, Blue)
	m.SetPixel(1, 1, White)

	t.Run("x", func(t *testing.T) {
		dup := m.Clone()
		dup.FlipX()
		assert.Equal(t, []Color{Green, Red, White, Blue}, dup.Pix())
	})

	t.Run("y", func(t *testing.T) {
		dup := m.Clone()
		dup.FlipY()
		assert.Equal(t, []Color{Blue, White, Red, Green}, dup.Pix())
	})
}

func TestArea(t *testing.T) {
	m := New(3, 3)
	m.SetPixel(2, 2, Red)

	a := m.Area(1, 1, 3, 3)
	require.Equal(t, 3, a.Width())
	assert.Equal(t, Red, a.Pixel(1, 1))
	assert.Equal(t, Color{}, a.Pixel(2, 2))
}

func TestBlit(t *testing.T) {
	src := New(2, 2)
	src.Fill(Green)
	m := New(4, 4)

	m.Blit(src, 1, 1)
	assert.Equal(t, 4, count(m, Green))
	assert.Equal(t, Green, m.Pixel(2, 2))
	assert.Equal(t, Color{}, m.Pixel(3, 3))
}

func TestDrawImage(t *testing.T) {
	m := New(2, 2)
	assert.Equal(t, image.Rect(0, 0, 2, 2), m.Bounds())

	m.Set(1, 0, color.NRGBA{1, 2, 3, 4})
	m.Set(5, 5, color.White)
	assert.Equal(t, Color{1, 2, 3, 4}, m.Pixel(1, 0))
	assert.Equal(t, Color{}, m.At(5, 5))

	t.Run("FromImage", func(t *testing.T) {
		src := image.NewRGBA(image.Rect(10, 10, 12, 11))
		src.Set(11, 10, color.RGBA{0, 0, 0xFF, 0xFF})

		dst := FromImage(src)
		require.Equal(t, 2, dst.Width())
		require.Equal(t, 1, dst.Height())
		assert.Equal(t, Blue, dst.Pixel(1, 0))
		assert.Equal(t, Color{}, dst.Pixel(0, 0))
	})
}
