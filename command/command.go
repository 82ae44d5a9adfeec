// Package command maps shell input to framebuffer operations. Exactly one
// Command is applied per tick, through a single dispatch table.
package command

import (
	"fmt"
	"sort"
)

// Command identifies a framebuffer operation.
type Command uint8

const (
	None Command = iota

	// Primitives
	Clear
	Line
	Rectangle
	FilledRectangle
	Circle
	FilledCircle

	// Patterns
	Gradient
	NotchGradient
	CheckedFrame
	Bilinear
	Sinusoid
	ChessBoard

	// Filters
	LoadImage
	Grayscale
	Invert
	Channels
	Threshold
	Blur
	Fade

	// Transforms
	Zoom
	RotateLeft
	RotateRight

	// Canvas
	OpenCanvas
	Paint

	// Export
	Swaps
	Screenshot

	numCommands
)

// commandNames maps canonical command names to commands. Used by script
// parsing and the CLI.
var commandNames = map[string]Command{
	"clear":            Clear,
	"line":             Line,
	"rectangle":        Rectangle,
	"filled-rectangle": FilledRectangle,
	"circle":           Circle,
	"filled-circle":    FilledCircle,
	"gradient":         Gradient,
	"notch-gradient":   NotchGradient,
	"checked-frame":    CheckedFrame,
	"bilinear":         Bilinear,
	"sinusoid":         Sinusoid,
	"chessboard":       ChessBoard,
	"load":             LoadImage,
	"grayscale":        Grayscale,
	"invert":           Invert,
	"channels":         Channels,
	"threshold":        Threshold,
	"blur":             Blur,
	"fade":             Fade,
	"zoom":             Zoom,
	"rotate-left":      RotateLeft,
	"rotate-right":     RotateRight,
	"canvas":           OpenCanvas,
	"paint":            Paint,
	"swaps":            Swaps,
	"screenshot":       Screenshot,
}

var names [numCommands]string

func init() {
	names[None] = "none"
	for name, cmd := range commandNames {
		names[cmd] = name
	}
}

func (c Command) String() string {
	if c < numCommands {
		return names[c]
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// ParseCommand resolves a command from its name or from a key of the
// default key map.
func ParseCommand(s string) (Command, error) {
	if cmd, ok := commandNames[s]; ok {
		return cmd, nil
	}
	if cmd, ok := DefaultKeyMap()[s]; ok {
		return cmd, nil
	}
	return None, fmt.Errorf("unknown command %q", s)
}

// Names lists every command name in alphabetical order.
func Names() []string {
	res := make([]string, 0, len(commandNames))
	for name := range commandNames {
		res = append(res, name)
	}
	sort.Strings(res)
	return res
}

// pointer reports whether the command is driven by the mouse. Keyboard
// commands close the paint canvas.
func (c Command) pointer() bool {
	switch c {
	case Line, Paint, OpenCanvas:
		return true
	}
	return false
}

// KeyMap binds key names to commands.
type KeyMap map[string]Command

// DefaultKeyMap returns the stock bindings of the lab shell.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		"0":     Clear,
		"r":     Rectangle,
		"e":     FilledRectangle,
		"c":     Circle,
		"v":     FilledCircle,
		"g":     Gradient,
		"n":     NotchGradient,
		"k":     CheckedFrame,
		"2":     Bilinear,
		"j":     Sinusoid,
		"h":     ChessBoard,
		"l":     LoadImage,
		"w":     Grayscale,
		"i":     Invert,
		"m":     Channels,
		"t":     Threshold,
		"b":     Blur,
		"f":     Fade,
		"z":     Zoom,
		"left":  RotateLeft,
		"right": RotateRight,
		"d":     OpenCanvas,
		"9":     Swaps,
		"s":     Screenshot,
	}
}
