package framebuf

import "math"

// lineStep is the parametric increment along the dominant axis. It is far
// below a pixel so every cell crossed by the segment gets written.
const lineStep = 0.0001

// DrawLine draws the segment from (x0, y0) to (x0+dir.X, y0+dir.Y).
//
// The segment is sampled along x (or along y when it is vertical) and the
// other coordinate is solved from dir.Y*x - dir.X*y + k = 0. Samples
// outside the image land on its border, so only the part of the segment
// over the image is stepped; the parts beyond it are drawn as border runs.
func (m *Image) DrawLine(x0, y0 float64, dir Vector2, c Color) {
	if m.Empty() {
		return
	}
	if dir.IsZero() {
		m.SetPixelSafe(int(x0), int(y0), c)
		return
	}

	xf, yf := x0+dir.X, y0+dir.Y
	k := dir.X*y0 - dir.Y*x0

	switch {
	case dir.X == 0:
		from, to := y0, yf
		if dir.Y < 0 {
			from, to = yf, y0
		}
		x := int(x0)
		if from < 0 {
			m.SetPixelSafe(x, 0, c)
		}
		if to > float64(m.height) {
			m.SetPixelSafe(x, m.height-1, c)
		}
		for y := max(from, 0); y < min(to, float64(m.height)); y += lineStep {
			x := (dir.X*y - k) / dir.Y
			m.SetPixelSafe(int(x), int(y), c)
		}
	default:
		from, to := x0, xf
		if dir.X < 0 {
			from, to = xf, x0
		}
		at := func(x float64) float64 { return (dir.Y*x + k) / dir.X }
		width := float64(m.width)
		if from < 0 {
			m.borderRun(0, at(from), at(min(to, 0)), c)
		}
		if to > width {
			m.borderRun(m.width-1, at(max(from, width)), at(to), c)
		}
		for x := max(from, 0); x < min(to, width); x += lineStep {
			m.SetPixelSafe(int(x), int(at(x)), c)
		}
	}
}

// borderRun paints column x between the rows holding ya and yb.
func (m *Image) borderRun(x int, ya, yb float64, c Color) {
	a, b := m.clampRow(ya), m.clampRow(yb)
	if a > b {
		a, b = b, a
	}
	for y := a; y <= b; y++ {
		m.SetPixel(x, y, c)
	}
}

func (m *Image) clampRow(y float64) int {
	switch {
	case !(y >= 0):
		return 0
	case y >= float64(m.height-1):
		return m.height - 1
	}
	return int(y)
}

// DrawRectangle draws a w x h rectangle centered on (cx, cy).
//
// The outline keeps the historical geometry: the right column is drawn at
// left+w rather than left+w-1, one pixel outside the filled area.
func (m *Image) DrawRectangle(cx, cy, w, h int, c Color, filled bool) {
	if w <= 0 || h <= 0 {
		return
	}
	left, top := cx-w/2, cy-h/2

	if filled {
		for y := top; y < top+h; y++ {
			for x := left; x < left+w; x++ {
				m.SetPixelSafe(x, y, c)
			}
		}
		return
	}

	for x := left; x < left+w; x++ {
		m.SetPixelSafe(x, top, c)
		m.SetPixelSafe(x, top+h-1, c)
	}
	for y := top; y < top+h; y++ {
		m.SetPixelSafe(left, y, c)
		m.SetPixelSafe(left+w, y, c)
	}
}

// DrawCircle draws a circle of radius r centered on (cx, cy) by testing
// every offset of the enclosing square against its polar projection.
// Outlines are expected to show gaps on steep sections.
func (m *Image) DrawCircle(cx, cy, r int, c Color, filled bool) {
	if r < 0 {
		return
	}
	fr := float64(r)
	for y := -fr; y <= fr; y++ {
		for x := -fr; x <= fr; x++ {
			theta := math.Atan2(y, x)
			var hit bool
			if filled {
				hit = math.Abs(x) <= math.Abs(fr*math.Cos(theta)) &&
					math.Abs(y) <= math.Abs(fr*math.Sin(theta))
			} else {
				hit = x == math.Round(fr*math.Cos(theta)) && y == math.Round(fr*math.Sin(theta))
			}
			if hit {
				m.SetPixelSafe(int(x)+cx, int(y)+cy, c)
			}
		}
	}
}
