package framebuf

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDrawLine(t *testing.T) {
	t.Run("horizontal", func(t *testing.T) {
		m := New(10, 10)
		m.DrawLine(1, 2, Vec(5, 0), Red)
		assert.Equal(t, 5, count(m, Red))
		for x := 1; x <= 5; x++ {
			assert.Equal(t, Red, m.Pixel(x, 2), "x=%d", x)
		}
	})

	t.Run("vertical", func(t *testing.T) {
		m := New(10, 10)
		m.DrawLine(3, 8, Vec(0, -4), Green)
		assert.Equal(t, 4, count(m, Green))
		for y := 4; y < 8; y++ {
			assert.Equal(t, Green, m.Pixel(3, y), "y=%d", y)
		}
	})

	t.Run("zero direction", func(t *testing.T) {
		m := New(10, 10)
		m.DrawLine(4, 4, Vector2{}, Blue)
		assert.Equal(t, 1, count(m, Blue))
		assert.Equal(t, Blue, m.Pixel(4, 4))
	})

	t.Run("diagonal", func(t *testing.T) {
		m := New(10, 10)
		m.DrawLine(0, 0, Vec(6, 6), White)
		assert.Equal(t, White, m.Pixel(0, 0))
		assert.Equal(t, White, m.Pixel(3, 3))
		assert.GreaterOrEqual(t, count(m, White), 6)
	})

	t.Run("clipped", func(t *testing.T) {
		m := New(4, 4)
		assert.NotPanics(t, func() { m.DrawLine(-10, 2, Vec(30, 0), Red) })
		assert.Equal(t, 4, count(m, Red))
	})

	t.Run("far beyond the image", func(t *testing.T) {
		m := New(10, 10)
		m.DrawLine(0, 5, Vec(1e12, 0), Red)
		m.DrawLine(-1e12, 7, Vec(2e12, 0), Green)
		for x := range 10 {
			assert.Equal(t, Red, m.Pixel(x, 5), "x=%d", x)
			assert.Equal(t, Green, m.Pixel(x, 7), "x=%d", x)
		}

		m = New(10, 10)
		m.DrawLine(4, -1e12, Vec(0, 2e12), Blue)
		assert.Equal(t, 10, count(m, Blue))
		for y := range 10 {
			assert.Equal(t, Blue, m.Pixel(4, y), "y=%d", y)
		}
	})

	t.Run("steep outside lands on border", func(t *testing.T) {
		m := New(10, 10)
		// crosses x=0 at y=2, reaching row 0 while still left of the image
		m.DrawLine(-4, -2, Vec(8, 8), White)
		for y := range 3 {
			assert.Equal(t, White, m.Pixel(0, y), "y=%d", y)
		}
		assert.Equal(t, White, m.Pixel(3, 5))
	})

	t.Run("non-finite", func(t *testing.T) {
		m := New(4, 4)
		inf := math.Inf(1)
		assert.NotPanics(t, func() {
			m.DrawLine(0, 0, Vec(inf, 1), Red)
			m.DrawLine(math.NaN(), 0, Vec(1, 1), Red)
			m.DrawLine(0, -inf, Vec(0, inf), Red)
		})
	})
}

func TestDrawRectangle(t *testing.T) {
	t.Run("filled square", func(t *testing.T) {
		m := New(4, 4)
		m.Fill(Black)
		m.DrawRectangle(2, 2, 2, 2, White, true)
		for y := range 4 {
			for x := range 4 {
				want := Black
				if x >= 1 && x <= 2 && y >= 1 && y <= 2 {
					want = White
				}
				assert.Equal(t, want, m.Pixel(x, y), "(%d,%d)", x, y)
			}
		}
	})

	t.Run("filled", func(t *testing.T) {
		m := New(10, 10)
		m.DrawRectangle(5, 5, 4, 2, Red, true)
		assert.Equal(t, 8, count(m, Red))
		assert.Equal(t, Red, m.Pixel(3, 4))
		assert.Equal(t, Red, m.Pixel(6, 5))
	})

	t.Run("outline", func(t *testing.T) {
		m := New(10, 10)
		m.DrawRectangle(5, 5, 4, 4, Red, false)
		assert.Equal(t, 14, count(m, Red))
		// right column one past the filled area
		assert.Equal(t, Red, m.Pixel(7, 4))
		assert.Equal(t, Color{}, m.Pixel(4, 4))
	})

	t.Run("degenerate", func(t *testing.T) {
		m := New(10, 10)
		m.DrawRectangle(5, 5, 0, 4, Red, true)
		m.DrawRectangle(5, 5, 4, -1, Red, false)
		assert.Equal(t, 0, count(m, Red))
	})
}

func TestDrawCircle(t *testing.T) {
	t.Run("filled", func(t *testing.T) {
		m := New(40, 40)
		m.DrawCircle(20, 20, 10, Blue, true)
		assert.Equal(t, Blue, m.Pixel(20, 20))
		assert.Equal(t, Blue, m.Pixel(25, 20))
		assert.Equal(t, Color{}, m.Pixel(29, 29))
		assert.Equal(t, Color{}, m.Pixel(31, 20))
	})

	t.Run("outline", func(t *testing.T) {
		m := New(40, 40)
		m.DrawCircle(20, 20, 10, Blue, false)
		assert.Equal(t, Blue, m.Pixel(30, 20))
		assert.Equal(t, Blue, m.Pixel(10, 20))
		assert.Equal(t, Color{}, m.Pixel(20, 20))
	})

	t.Run("zero radius", func(t *testing.T) {
		m := New(5, 5)
		m.DrawCircle(2, 2, 0, Red, true)
		assert.Equal(t, 1, count(m, Red))
	})

	t.Run("negative radius", func(t *testing.T) {
		m := New(5, 5)
		m.DrawCircle(2, 2, -3, Red, true)
		assert.Equal(t, 0, count(m, Red))
	})
}
