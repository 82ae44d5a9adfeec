package framebuf

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a non-premultiplied 8-bit RGBA pixel as stored in an Image.
type Color struct {
	R, G, B, A uint8
}

var (
	Black  = Color{0, 0, 0, 0xFF}
	White  = Color{0xFF, 0xFF, 0xFF, 0xFF}
	Gray   = Color{0x80, 0x80, 0x80, 0xFF}
	Red    = Color{0xFF, 0, 0, 0xFF}
	Green  = Color{0, 0xFF, 0, 0xFF}
	Blue   = Color{0, 0, 0xFF, 0xFF}
	Yellow = Color{0xFF, 0xFF, 0, 0xFF}
	Purple = Color{0x80, 0, 0x80, 0xFF}
	Cyan   = Color{0, 0xFF, 0xFF, 0xFF}
	Pink   = Color{0xFF, 0, 0xFF, 0xFF}
)

// Model converts any color.Color into a Color.
var Model = color.ModelFunc(colorConvert)

func colorConvert(c color.Color) color.Color {
	if col, ok := c.(Color); ok {
		return col
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, n.A}
}

// RGB builds an opaque Color, saturating every component into [0, 255].
func RGB(r, g, b float64) Color {
	return Tone{r, g, b}.Color()
}

// RGBA implements color.Color.
func (c Color) RGBA() (uint32, uint32, uint32, uint32) {
	return color.NRGBA{c.R, c.G, c.B, c.A}.RGBA()
}

// SameRGB reports whether both colors have identical red, green and blue
// components, ignoring alpha.
func (c Color) SameRGB(o Color) bool {
	return c.R == o.R && c.G == o.G && c.B == o.B
}

// Tone returns the floating point components of c.
func (c Color) Tone() Tone {
	return Tone{float64(c.R), float64(c.G), float64(c.B)}
}

// Add returns the unclamped component-wise sum of c and o.
func (c Color) Add(o Color) Tone {
	return c.Tone().Add(o.Tone())
}

// Scale returns the unclamped product of every component by f.
func (c Color) Scale(f float64) Tone {
	return c.Tone().Scale(f)
}

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Tone is an intermediate color value used for arithmetic. Its components are
// nominally in [0, 255] but may leave that range until converted back.
type Tone struct {
	R, G, B float64
}

func (t Tone) Add(o Tone) Tone {
	return Tone{t.R + o.R, t.G + o.G, t.B + o.B}
}

func (t Tone) Scale(f float64) Tone {
	return Tone{t.R * f, t.G * f, t.B * f}
}

// Color saturates t into an opaque Color. Fractions are truncated.
func (t Tone) Color() Color {
	return Color{channel(t.R), channel(t.G), channel(t.B), 0xFF}
}

func channel(v float64) uint8 {
	switch {
	case math.IsNaN(v), v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v)
}

// ParseHex reads a color written as #RGB, #RGBA, #RRGGBB or #RRGGBBAA.
func ParseHex(s string) (Color, error) {
	var c Color
	switch len(s) {
	case 4, 5:
		var n int
		var err error
		if len(s) == 4 {
			n, err = fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
			c.A = 0xF
		} else {
			n, err = fmt.Sscanf(s, "#%1x%1x%1x%1x", &c.R, &c.G, &c.B, &c.A)
		}
		if err != nil {
			return Color{}, fmt.Errorf("could not read color: %w", err)
		} else if n < 3 {
			return Color{}, fmt.Errorf("insufficient color fields: %d", n)
		}

		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
		c.A |= c.A << 4
	case 7, 9:
		var n int
		var err error
		if len(s) == 7 {
			n, err = fmt.Sscanf(s, "#%2x%2x%2x", &c.R, &c.G, &c.B)
			c.A = 0xFF
		} else {
			n, err = fmt.Sscanf(s, "#%2x%2x%2x%2x", &c.R, &c.G, &c.B, &c.A)
		}
		if err != nil {
			return Color{}, fmt.Errorf("could not read color: %w", err)
		} else if n < 3 {
			return Color{}, fmt.Errorf("insufficient color fields: %d", n)
		}
	default:
		return Color{}, fmt.Errorf("invalid color %q, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA", s)
	}

	return c, nil
}
