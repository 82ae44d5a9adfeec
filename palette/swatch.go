// Package palette defines the drawing swatches offered by the canvas
// toolbar and their storage as RIFF PAL files.
package palette

import (
	"fmt"
	"image/color"

	"framelab/framebuf"
)

// Swatch indexes a toolbar color, left to right.
type Swatch uint8

const (
	Black Swatch = iota
	Red
	Green
	Blue
	Yellow
	Purple
	Cyan
	White

	NumSwatches
)

var swatchNames = [NumSwatches]string{"black", "red", "green", "blue", "yellow", "purple", "cyan", "white"}

func (s Swatch) String() string {
	if s < NumSwatches {
		return swatchNames[s]
	}
	return fmt.Sprintf("Swatch(%d)", uint8(s))
}

// ParseSwatch returns the swatch with the given name.
func ParseSwatch(name string) (Swatch, error) {
	for i, n := range swatchNames {
		if n == name {
			return Swatch(i), nil
		}
	}
	return 0, fmt.Errorf("unknown swatch %q", name)
}

// Set holds the color of every swatch.
type Set [NumSwatches]framebuf.Color

// Default is the swatch set painted on the stock toolbar.
var Default = Set{
	framebuf.Black,
	framebuf.Red,
	framebuf.Green,
	framebuf.Blue,
	framebuf.Yellow,
	framebuf.Purple,
	framebuf.Cyan,
	framebuf.White,
}

// Color returns the color of swatch s.
func (p *Set) Color(s Swatch) framebuf.Color {
	return p[s]
}

// Lookup finds the first swatch whose color equals c, ignoring alpha.
func (p *Set) Lookup(c framebuf.Color) (Swatch, bool) {
	for i, col := range p {
		if col.SameRGB(c) {
			return Swatch(i), true
		}
	}
	return 0, false
}

// Palette returns the swatch colors as a color.Palette.
func (p *Set) Palette() color.Palette {
	pal := make(color.Palette, len(p))
	for i, c := range p {
		pal[i] = c
	}
	return pal
}

// FromPalette builds a set from the first NumSwatches colors of pal.
func FromPalette(pal color.Palette) (Set, error) {
	var p Set
	if len(pal) < len(p) {
		return p, fmt.Errorf("palette has %d colors, %d needed", len(pal), len(p))
	}
	for i := range p {
		p[i] = framebuf.Model.Convert(pal[i]).(framebuf.Color)
		p[i].A = 0xFF
	}
	return p, nil
}
