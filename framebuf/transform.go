package framebuf

import "math"

// Rotate fills m with src rotated by angle radians around the center of m.
// Each destination pixel is mapped back into src and sampled with the
// clamping accessor, without interpolation.
func (m *Image) Rotate(src *Image, angle float64) {
	sin, cos := math.Sincos(angle)
	cx, cy := float64(m.width/2), float64(m.height/2)

	for y := range m.height {
		dy := float64(y) - cy
		for x := range m.width {
			dx := float64(x) - cx
			sx := dx*cos + dy*sin + cx
			sy := dy*cos - dx*sin + cy
			m.SetPixel(x, y, src.PixelSafe(int(sx), int(sy)))
		}
	}
}

// Zoom fills m with the area of src around (focusX, focusY) magnified by
// 1/factor. A factor below one enlarges the image.
func (m *Image) Zoom(src *Image, factor, focusX, focusY float64) {
	halfW, halfH := factor*float64(m.width)/2, factor*float64(m.height)/2

	for y := range m.height {
		sy := float64(y)*factor + focusY - halfH
		for x := range m.width {
			sx := float64(x)*factor + focusX - halfW
			m.SetPixel(x, y, src.PixelSafe(int(sx), int(sy)))
		}
	}
}
