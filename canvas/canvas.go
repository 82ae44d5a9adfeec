// Package canvas composes the paint canvas: a toolbar strip along the bottom
// of the framebuffer and freehand strokes clipped above it.
package canvas

import (
	"framelab/framebuf"
	"framelab/palette"
)

// ToolbarHeight is the height of the stock toolbar strip.
const ToolbarHeight = 50

// Swatch highlight geometry, relative to the bottom of the window.
const (
	swatchFirstX  = 125
	swatchSpacing = 50
	highlightLift = 25
	highlightW    = 28
	highlightH    = 29
)

// LoadToolbar copies the top size rows of toolbar onto the bottom size rows
// of dst. Parts of the toolbar not overlapping dst are skipped.
func LoadToolbar(dst, toolbar *framebuf.Image, size int) {
	top := dst.Height() - size
	w := min(dst.Width(), toolbar.Width())
	rows := min(size, toolbar.Height())

	for y := range rows {
		if top+y < 0 {
			continue
		}
		for x := range w {
			dst.SetPixel(x, top+y, toolbar.Pixel(x, y))
		}
	}
}

// Highlight redraws the toolbar and outlines swatch s. windowHeight is the
// height of the window the toolbar sits at the bottom of.
func Highlight(dst, toolbar *framebuf.Image, size, windowHeight int, s palette.Swatch) {
	LoadToolbar(dst, toolbar, size)
	if s >= palette.NumSwatches {
		return
	}
	cx := swatchFirstX + swatchSpacing*int(s)
	dst.DrawRectangle(cx, windowHeight-highlightLift, highlightW, highlightH, framebuf.White, false)
}

// ChosenColor redraws the toolbar and outlines the swatch of set matching c.
// Colors outside the set only redraw the toolbar.
func ChosenColor(dst, toolbar *framebuf.Image, size, windowHeight int, set *palette.Set, c framebuf.Color) {
	s, ok := set.Lookup(c)
	if !ok {
		LoadToolbar(dst, toolbar, size)
		return
	}
	Highlight(dst, toolbar, size, windowHeight, s)
}

// DrawCanvas draws a freehand stroke from (x, y) along v, keeping it above
// the boundary row canvasHeight. A stroke starting on the toolbar is only
// drawn when it moves back into the canvas, starting from the boundary.
func DrawCanvas(dst *framebuf.Image, x, y float64, v framebuf.Vector2, canvasHeight int, c framebuf.Color) {
	limit := float64(canvasHeight)

	if y < limit {
		if y+v.Y >= limit {
			v.Y = limit - y - 1
		}
		dst.DrawLine(x, y, v, c)
		return
	}

	if y+v.Y <= limit {
		dst.DrawLine(x, limit-1, v, c)
	}
}
