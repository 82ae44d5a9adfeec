package canvas

import (
	"fmt"

	"framelab/palette"
)

// Button identifies a toolbar control.
type Button uint8

const (
	ButtonNone Button = iota
	ButtonClear
	ButtonSave
	ButtonSwatch
)

func (b Button) String() string {
	switch b {
	case ButtonNone:
		return "none"
	case ButtonClear:
		return "clear"
	case ButtonSave:
		return "save"
	case ButtonSwatch:
		return "swatch"
	}
	return fmt.Sprintf("Button(%d)", uint8(b))
}

// box is a hit area, inclusive, with vertical bounds measured up from the
// bottom of the window.
type box struct {
	minX, maxX float64
	up, down   float64
}

func (b box) contains(x, y, windowHeight float64) bool {
	return b.minX <= x && x <= b.maxX && windowHeight-b.up <= y && y <= windowHeight-b.down
}

var (
	clearBox  = box{minX: 11, maxX: 34, up: 40, down: 8}
	saveBox   = box{minX: 60, maxX: 91, up: 40, down: 9}
	swatchBox = box{minX: 112, maxX: 138, up: 38, down: 12}
)

// HitTest maps a pointer position to the toolbar control under it. The
// swatch is only meaningful for ButtonSwatch.
func HitTest(x, y, windowHeight float64) (Button, palette.Swatch) {
	switch {
	case clearBox.contains(x, y, windowHeight):
		return ButtonClear, 0
	case saveBox.contains(x, y, windowHeight):
		return ButtonSave, 0
	}

	for s := range palette.NumSwatches {
		b := swatchBox
		b.minX += float64(swatchSpacing * int(s))
		b.maxX += float64(swatchSpacing * int(s))
		if b.contains(x, y, windowHeight) {
			return ButtonSwatch, s
		}
	}
	return ButtonNone, 0
}
