package framebuf

import "math"

const (
	bandThickness = 10
	bandSpacing   = 20

	bilinearSteps = 10

	sinusoidAmplitude = 0.15
	sinusoidOffset    = 0.5
	sinusoidRange     = 230

	chessSquare = 30
)

// Corner colors of the bilinear pattern. Row 0 interpolates the first pair,
// the last row the second one.
var (
	bilinearFirstRow = [2]Color{Black, Red}
	bilinearLastRow  = [2]Color{Green, Yellow}
)

// centered returns the offset placing a size x size pattern in the middle of
// a canvas of the given size.
func centered(w, h, canvasW, canvasH int) (int, int) {
	return (canvasW - w) / 2, (canvasH - h) / 2
}

// DrawGradient paints a w x h horizontal gradient, red rising and blue
// falling from left to right, centered on a canvasW x canvasH area.
func (m *Image) DrawGradient(w, h, canvasW, canvasH int) {
	ox, oy := centered(w, h, canvasW, canvasH)
	for y := range h {
		for x := range w {
			f := 255 * float64(x) / float64(w)
			m.SetPixelSafe(ox+x, oy+y, RGB(f, 0, 255-f))
		}
	}
}

// DrawNotchGradient paints a radial grayscale ramp, black in the middle of
// the pattern and white at its corners.
func (m *Image) DrawNotchGradient(w, h, canvasW, canvasH int) {
	ox, oy := centered(w, h, canvasW, canvasH)
	diagonal := math.Hypot(float64(w/2), float64(h/2))
	if diagonal == 0 {
		diagonal = 1
	}
	for y := range h {
		for x := range w {
			radius := math.Hypot(float64(w/2-x), float64(h/2-y))
			v := 255 * radius / diagonal
			m.SetPixelSafe(ox+x, oy+y, RGB(v, v, v))
		}
	}
}

// DrawCheckedFrame covers the whole image with blue horizontal bands and
// red vertical bands over black, with pink squares where they cross.
func (m *Image) DrawCheckedFrame() {
	m.Fill(Black)
	period := bandThickness + bandSpacing

	for y := range m.height {
		inRow := y%period < bandThickness
		for x := range m.width {
			inCol := x%period < bandThickness
			switch {
			case inRow && inCol:
				m.SetPixel(x, y, Pink)
			case inRow:
				m.SetPixel(x, y, Blue)
			case inCol:
				m.SetPixel(x, y, Red)
			}
		}
	}
}

// DrawBilinearInterpolation paints a four corner interpolation quantized on
// a coarse grid, producing visible blocks rather than a smooth blend.
func (m *Image) DrawBilinearInterpolation(w, h, canvasW, canvasH int) {
	ox, oy := centered(w, h, canvasW, canvasH)
	stepX, stepY := max(w/bilinearSteps, 1), max(h/bilinearSteps, 1)

	for y := range h {
		ty := clamp01(float64(y/stepY) / (bilinearSteps - 1))
		for x := range w {
			tx := clamp01(float64(x/stepX) / (bilinearSteps - 1))

			first := bilinearFirstRow[0].Scale(1 - tx).Add(bilinearFirstRow[1].Scale(tx))
			last := bilinearLastRow[0].Scale(1 - tx).Add(bilinearLastRow[1].Scale(tx))
			m.SetPixelSafe(ox+x, oy+y, first.Scale(1-ty).Add(last.Scale(ty)).Color())
		}
	}
}

// DrawSinusoidGradient splits the pattern along a sine wave into two green
// ramps running in opposite directions.
func (m *Image) DrawSinusoidGradient(w, h, canvasW, canvasH int) {
	ox, oy := centered(w, h, canvasW, canvasH)
	for x := range w {
		nx := float64(x) / float64(w)
		limit := sinusoidAmplitude*math.Sin(2*math.Pi*nx) + sinusoidOffset

		for y := range h {
			ny := float64(y) / float64(h)
			g := sinusoidRange * ny
			if ny > limit {
				g = sinusoidRange * (1 - ny)
			}
			m.SetPixelSafe(ox+x, oy+y, RGB(0, g, 0))
		}
	}
}

// DrawChessBoard paints alternating white and black squares.
func (m *Image) DrawChessBoard(w, h, canvasW, canvasH int) {
	ox, oy := centered(w, h, canvasW, canvasH)
	for y := range h {
		for x := range w {
			c := Black
			if (x/chessSquare+y/chessSquare)%2 == 0 {
				c = White
			}
			m.SetPixelSafe(ox+x, oy+y, c)
		}
	}
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}
