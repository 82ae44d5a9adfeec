// Package framebuf implements the pixel buffer engine: an owned RGBA
// framebuffer with rasterization primitives, procedural patterns, color
// filters and inverse-mapping transforms.
package framebuf

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
)

// Image is a row-major pixel buffer with its origin at the top-left corner.
// The pixel array is exclusively owned: copies are made with Clone and
// ownership moves with MoveFrom.
type Image struct {
	width  int
	height int
	pix    []Color
}

var _ draw.Image = &Image{}

// New creates a zeroed image. Negative dimensions are treated as zero.
func New(width, height int) *Image {
	width, height = max(width, 0), max(height, 0)
	if width == 0 || height == 0 {
		width, height = 0, 0
	}
	return &Image{
		width:  width,
		height: height,
		pix:    make([]Color, width*height),
	}
}

// FromImage copies any image into a new framebuffer.
func FromImage(src image.Image) *Image {
	if m, ok := src.(*Image); ok {
		return m.Clone()
	}
	b := src.Bounds()
	dst := New(b.Dx(), b.Dy())
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}

func (m *Image) Width() int {
	return m.width
}

func (m *Image) Height() int {
	return m.height
}

// Empty reports whether the image holds no pixels.
func (m *Image) Empty() bool {
	return len(m.pix) == 0
}

// Pix exposes the pixel array for blitting. The slice is owned by m and is
// invalidated by Resize, Scale and MoveFrom.
func (m *Image) Pix() []Color {
	return m.pix
}

// Pixel returns the pixel at (x, y). Coordinates must be in bounds.
func (m *Image) Pixel(x, y int) Color {
	return m.pix[y*m.width+x]
}

// SetPixel sets the pixel at (x, y). Coordinates must be in bounds.
func (m *Image) SetPixel(x, y int, c Color) {
	m.pix[y*m.width+x] = c
}

// PixelSafe returns the pixel nearest to (x, y) inside the image. An empty
// image reads as the zero Color.
func (m *Image) PixelSafe(x, y int) Color {
	if m.Empty() {
		return Color{}
	}
	x, y = m.clamp(x, y)
	return m.pix[y*m.width+x]
}

// SetPixelSafe writes the pixel nearest to (x, y) inside the image. It is a
// no-op on an empty image.
func (m *Image) SetPixelSafe(x, y int, c Color) {
	if m.Empty() {
		return
	}
	x, y = m.clamp(x, y)
	m.pix[y*m.width+x] = c
}

func (m *Image) clamp(x, y int) (int, int) {
	return min(max(x, 0), m.width-1), min(max(y, 0), m.height-1)
}

// In reports whether (x, y) lies inside the image.
func (m *Image) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.width && y < m.height
}

// Fill sets every pixel to c.
func (m *Image) Fill(c Color) {
	for i := range m.pix {
		m.pix[i] = c
	}
}

// Clone returns a deep copy of m.
func (m *Image) Clone() *Image {
	dup := &Image{
		width:  m.width,
		height: m.height,
		pix:    make([]Color, len(m.pix)),
	}
	copy(dup.pix, m.pix)
	return dup
}

// MoveFrom takes ownership of the pixels of src, leaving src empty.
func (m *Image) MoveFrom(src *Image) {
	if m == src {
		return
	}
	m.width, m.height, m.pix = src.width, src.height, src.pix
	src.width, src.height, src.pix = 0, 0, nil
}

// Resize changes the image dimensions. The old content stays in the
// top-left corner, new cells are zeroed.
func (m *Image) Resize(width, height int) {
	dst := New(width, height)
	w, h := min(m.width, dst.width), min(m.height, dst.height)
	for y := range h {
		copy(dst.pix[y*dst.width:y*dst.width+w], m.pix[y*m.width:y*m.width+w])
	}
	m.MoveFrom(dst)
}

// Scale changes the image dimensions, resampling the content with a
// nearest-neighbour filter.
func (m *Image) Scale(width, height int) {
	dst := New(width, height)
	if !dst.Empty() && !m.Empty() {
		draw.NearestNeighbor.Scale(dst, dst.Bounds(), m, m.Bounds(), draw.Src, nil)
	}
	m.MoveFrom(dst)
}

// FlipX mirrors the image left to right.
func (m *Image) FlipX() {
	for y := range m.height {
		row := m.pix[y*m.width : (y+1)*m.width]
		for i, j := 0, len(row)-1; i < j; i, j = i+1, j-1 {
			row[i], row[j] = row[j], row[i]
		}
	}
}

// FlipY mirrors the image top to bottom.
func (m *Image) FlipY() {
	for top, bottom := 0, m.height-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := m.pix[top*m.width : (top+1)*m.width]
		b := m.pix[bottom*m.width : (bottom+1)*m.width]
		for i := range a {
			a[i], b[i] = b[i], a[i]
		}
	}
}

// Area returns a copy of the width x height region starting at (x, y).
// Cells falling outside m are left zeroed.
func (m *Image) Area(x, y, width, height int) *Image {
	res := New(width, height)
	for j := range res.height {
		for i := range res.width {
			if m.In(x+i, y+j) {
				res.SetPixel(i, j, m.Pixel(x+i, y+j))
			}
		}
	}
	return res
}

// Blit copies src onto m with its top-left corner at (x, y), writing through
// the clamping accessor.
func (m *Image) Blit(src *Image, x, y int) {
	for j := range src.height {
		for i := range src.width {
			m.SetPixelSafe(x+i, y+j, src.Pixel(i, j))
		}
	}
}

// ColorModel implements image.Image.
func (m *Image) ColorModel() color.Model {
	return Model
}

// Bounds implements image.Image.
func (m *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// At implements image.Image. Out of bounds reads return the zero Color.
func (m *Image) At(x, y int) color.Color {
	if !m.In(x, y) {
		return Color{}
	}
	return m.Pixel(x, y)
}

// Set implements draw.Image. Out of bounds writes are dropped.
func (m *Image) Set(x, y int, c color.Color) {
	if !m.In(x, y) {
		return
	}
	m.SetPixel(x, y, Model.Convert(c).(Color))
}
