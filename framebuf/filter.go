package framebuf

import (
	"fmt"
	"math"
)

const (
	thresholdLevel = 127
	blurTaps       = 7
)

// Channel selects the source of an output channel in SwapChannels.
type Channel uint8

const (
	ChannelZero Channel = iota
	ChannelRed
	ChannelBlue
	ChannelGreen

	numChannels
)

func (ch Channel) String() string {
	switch ch {
	case ChannelZero:
		return "0"
	case ChannelRed:
		return "r"
	case ChannelBlue:
		return "b"
	case ChannelGreen:
		return "g"
	}
	return fmt.Sprintf("Channel(%d)", uint8(ch))
}

func (ch Channel) of(c Color) uint8 {
	switch ch {
	case ChannelRed:
		return c.R
	case ChannelBlue:
		return c.B
	case ChannelGreen:
		return c.G
	}
	return 0
}

// apply replaces every pixel with fn(pixel).
func (m *Image) apply(fn func(Color) Color) {
	for i, c := range m.pix {
		m.pix[i] = fn(c)
	}
}

func channelSum(c Color) int {
	return int(c.R) + int(c.G) + int(c.B)
}

func luma(c Color) int {
	return channelSum(c) / 3
}

// Grayscale replaces every channel with the mean of red, green and blue.
func (m *Image) Grayscale() {
	m.apply(func(c Color) Color {
		v := uint8(luma(c))
		return Color{v, v, v, c.A}
	})
}

// Threshold turns every pixel black or white depending on its mean
// intensity.
func (m *Image) Threshold() {
	m.apply(func(c Color) Color {
		var v uint8
		// compare the exact mean, not its truncation
		if channelSum(c) > 3*thresholdLevel {
			v = 0xFF
		}
		return Color{v, v, v, c.A}
	})
}

// Invert replaces every channel with its complement.
func (m *Image) Invert() {
	m.apply(func(c Color) Color {
		return Color{0xFF - c.R, 0xFF - c.G, 0xFF - c.B, c.A}
	})
}

// ChannelManipulation doubles red (saturating) and halves green and blue.
func (m *Image) ChannelManipulation() {
	m.apply(func(c Color) Color {
		return Color{uint8(min(int(c.R)*2, 0xFF)), c.G / 2, c.B / 2, c.A}
	})
}

// SwapChannels rebuilds every pixel taking red, green and blue from the
// given sources.
func (m *Image) SwapChannels(r, g, b Channel) {
	m.apply(func(c Color) Color {
		return Color{r.of(c), g.of(c), b.of(c), c.A}
	})
}

// ChannelSwaps calls fn with every one of the 64 channel remappings of m,
// each applied to its own copy. The tag names the sources as "r_b_0".
// Iteration stops at the first error.
func (m *Image) ChannelSwaps(fn func(tag string, variant *Image) error) error {
	for r := range numChannels {
		for g := range numChannels {
			for b := range numChannels {
				variant := m.Clone()
				variant.SwapChannels(r, g, b)
				if err := fn(fmt.Sprintf("%s_%s_%s", r, g, b), variant); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// Blur applies a horizontal box filter over each pixel and the six pixels
// to its right. Reads past the right edge repeat the last column.
func (m *Image) Blur() {
	for y := range m.height {
		row := m.pix[y*m.width : (y+1)*m.width]
		for x := range row {
			var r, g, b int
			for i := range blurTaps {
				c := row[min(x+i, len(row)-1)]
				r += int(c.R)
				g += int(c.G)
				b += int(c.B)
			}
			row[x] = Color{uint8(r / blurTaps), uint8(g / blurTaps), uint8(b / blurTaps), row[x].A}
		}
	}
}

// Fade darkens pixels with their distance to the center of the image and
// brightens the middle.
func (m *Image) Fade() {
	cx, cy := m.width/2, m.height/2
	diagonal := math.Hypot(float64(cx), float64(cy))
	if diagonal == 0 {
		diagonal = 1
	}
	for y := range m.height {
		for x := range m.width {
			radius := math.Hypot(float64(cx-x), float64(cy-y))
			div := 4*radius/diagonal + 0.25
			c := m.Pixel(x, y)
			faded := c.Scale(1 / div).Color()
			faded.A = c.A
			m.SetPixel(x, y, faded)
		}
	}
}
