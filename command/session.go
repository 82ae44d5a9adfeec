package command

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"time"

	"framelab/canvas"
	"framelab/export"
	"framelab/framebuf"
	"framelab/palette"
	"framelab/parallel"
)

var (
	ErrUnknownCommand = errors.New("unknown command")
	ErrNoSource       = errors.New("no source image")
	ErrNoToolbar      = errors.New("no toolbar image")
	ErrNoExporter     = errors.New("no export folder")
)

// Input is the shell state a command is applied with.
type Input struct {
	// Pointer is the current mouse position.
	Pointer framebuf.Vector2
	// Start is where the current drag began.
	Start framebuf.Vector2
	// Delta is the mouse movement during the last frame.
	Delta framebuf.Vector2
	// Width and Height are the window size. Zero means the framebuffer size.
	Width, Height int
	// Elapsed is the frame time of the tick.
	Elapsed time.Duration
}

// Settings holds the fixed shape parameters of the lab shell.
type Settings struct {
	RectWidth   int
	RectHeight  int
	Radius      int
	ZoomFactor  float64
	RotateStep  float64
	ToolbarSize int
}

func DefaultSettings() Settings {
	return Settings{
		RectWidth:   100,
		RectHeight:  150,
		Radius:      100,
		ZoomFactor:  0.4,
		RotateStep:  0.01,
		ToolbarSize: canvas.ToolbarHeight,
	}
}

// Session owns the active framebuffer and the auxiliary images commands
// sample from. It is not safe for concurrent use.
type Session struct {
	Frame      *framebuf.Image
	Source     *framebuf.Image
	SwapSource *framebuf.Image
	Toolbar    *framebuf.Image

	Swatches palette.Set
	Color    framebuf.Color
	Angle    float64
	Settings Settings

	Exporter *export.Exporter
	Pool     *parallel.Pool
	Rand     *rand.Rand
	Logger   *slog.Logger

	painting bool
	// command being applied, so shared handlers can tell variants apart
	cmd Command
}

// NewSession creates a session drawing into frame.
func NewSession(frame *framebuf.Image, seed uint64) *Session {
	return &Session{
		Frame:    frame,
		Swatches: palette.Default,
		Color:    framebuf.Black,
		Settings: DefaultSettings(),
		Rand:     rand.New(rand.NewPCG(seed, seed^0x9E3779B97F4A7C15)),
		Logger:   slog.Default(),
	}
}

type handler func(s *Session, in Input) error

var dispatch = map[Command]handler{
	Clear:           (*Session).clear,
	Line:            (*Session).line,
	Rectangle:       (*Session).rectangle,
	FilledRectangle: (*Session).rectangle,
	Circle:          (*Session).circle,
	FilledCircle:    (*Session).circle,
	Gradient:        (*Session).pattern,
	NotchGradient:   (*Session).pattern,
	CheckedFrame:    (*Session).pattern,
	Bilinear:        (*Session).pattern,
	Sinusoid:        (*Session).pattern,
	ChessBoard:      (*Session).pattern,
	LoadImage:       (*Session).load,
	Grayscale:       (*Session).filter,
	Invert:          (*Session).filter,
	Channels:        (*Session).filter,
	Threshold:       (*Session).filter,
	Blur:            (*Session).filter,
	Fade:            (*Session).filter,
	Zoom:            (*Session).zoom,
	RotateLeft:      (*Session).rotate,
	RotateRight:     (*Session).rotate,
	OpenCanvas:      (*Session).openCanvas,
	Paint:           (*Session).paint,
	Swaps:           (*Session).swaps,
	Screenshot:      (*Session).screenshot,
}

func (s *Session) current() Command {
	return s.cmd
}

// Apply runs one command against the framebuffer.
func (s *Session) Apply(cmd Command, in Input) error {
	h, ok := dispatch[cmd]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownCommand, cmd)
	}
	if in.Width <= 0 || in.Height <= 0 {
		in.Width, in.Height = s.Frame.Width(), s.Frame.Height()
	}
	if !cmd.pointer() {
		s.painting = false
	}

	s.cmd = cmd
	s.Logger.Debug("applying command", "command", cmd, "pointer", in.Pointer, "elapsed", in.Elapsed)
	if err := h(s, in); err != nil {
		return fmt.Errorf("could not apply %s: %w", cmd, err)
	}
	return nil
}

// Painting reports whether the paint canvas is open.
func (s *Session) Painting() bool {
	return s.painting
}

func (s *Session) randomColor() framebuf.Color {
	return framebuf.RGB(s.Rand.Float64()*255, s.Rand.Float64()*255, s.Rand.Float64()*255)
}

func (s *Session) clear(Input) error {
	s.Frame.Fill(framebuf.Black)
	return nil
}

func (s *Session) line(in Input) error {
	s.Frame.DrawLine(in.Start.X, in.Start.Y, in.Pointer.Sub(in.Start), s.randomColor())
	return nil
}

func (s *Session) rectangle(in Input) error {
	s.Frame.DrawRectangle(int(in.Pointer.X), int(in.Pointer.Y), s.Settings.RectWidth, s.Settings.RectHeight,
		s.randomColor(), s.current() == FilledRectangle)
	return nil
}

func (s *Session) circle(in Input) error {
	s.Frame.DrawCircle(int(in.Pointer.X), int(in.Pointer.Y), s.Settings.Radius,
		s.randomColor(), s.current() == FilledCircle)
	return nil
}

func (s *Session) pattern(in Input) error {
	w, h := in.Width, in.Height
	square := h * 3 / 4

	switch s.current() {
	case Gradient:
		s.Frame.DrawGradient(w, h, w, h)
	case NotchGradient:
		s.Frame.DrawNotchGradient(w, h, w, h)
	case CheckedFrame:
		s.Frame.DrawCheckedFrame()
	case Bilinear:
		s.Frame.DrawBilinearInterpolation(square, square, w, h)
	case Sinusoid:
		s.Frame.DrawSinusoidGradient(square, square, w, h)
	case ChessBoard:
		s.Frame.DrawChessBoard(w, h, w, h)
	}
	return nil
}

func (s *Session) filter(Input) error {
	switch s.current() {
	case Grayscale:
		s.Frame.Grayscale()
	case Invert:
		s.Frame.Invert()
	case Channels:
		s.Frame.ChannelManipulation()
	case Threshold:
		s.Frame.Threshold()
	case Blur:
		s.Frame.Blur()
	case Fade:
		s.Frame.Fade()
	}
	return nil
}

func (s *Session) load(Input) error {
	if s.Source == nil {
		return ErrNoSource
	}
	x := (s.Frame.Width() - s.Source.Width()) / 2
	y := (s.Frame.Height() - s.Source.Height()) / 2
	s.Frame.Blit(s.Source, x, y)
	return nil
}

func (s *Session) zoom(in Input) error {
	if s.Source == nil {
		return ErrNoSource
	}
	s.Frame.Zoom(s.Source, s.Settings.ZoomFactor, in.Pointer.X, in.Pointer.Y)
	return nil
}

func (s *Session) rotate(Input) error {
	if s.Source == nil {
		return ErrNoSource
	}
	if s.current() == RotateRight {
		s.Angle -= s.Settings.RotateStep
	} else {
		s.Angle += s.Settings.RotateStep
	}
	s.Frame.Rotate(s.Source, s.Angle)
	return nil
}

func (s *Session) openCanvas(in Input) error {
	if s.Toolbar == nil {
		return ErrNoToolbar
	}
	s.Frame.Fill(framebuf.White)
	canvas.ChosenColor(s.Frame, s.Toolbar, s.Settings.ToolbarSize, in.Height, &s.Swatches, s.Color)
	s.painting = true
	return nil
}

// paint handles a pressed left button on the open canvas: toolbar clicks
// first, then a stroke from the previous pointer position to the current
// one.
func (s *Session) paint(in Input) error {
	if !s.painting {
		s.Logger.Debug("paint ignored, canvas is closed")
		return nil
	}
	canvasHeight := in.Height - s.Settings.ToolbarSize

	button, swatch := canvas.HitTest(in.Pointer.X, in.Pointer.Y, float64(in.Height))
	switch button {
	case canvas.ButtonClear:
		s.Frame.Fill(framebuf.White)
		canvas.ChosenColor(s.Frame, s.Toolbar, s.Settings.ToolbarSize, in.Height, &s.Swatches, s.Color)
	case canvas.ButtonSave:
		if s.Exporter == nil {
			return ErrNoExporter
		}
		if _, err := s.Exporter.Screenshot(s.Frame, in.Width, canvasHeight, ""); err != nil {
			return err
		}
	case canvas.ButtonSwatch:
		s.Color = s.Swatches.Color(swatch)
		canvas.Highlight(s.Frame, s.Toolbar, s.Settings.ToolbarSize, in.Height, swatch)
	}

	from := in.Pointer.Sub(in.Delta)
	canvas.DrawCanvas(s.Frame, from.X, from.Y, in.Delta, canvasHeight, s.Color)
	return nil
}

func (s *Session) swaps(Input) error {
	src := s.SwapSource
	if src == nil {
		src = s.Source
	}
	switch {
	case src == nil:
		return ErrNoSource
	case s.Exporter == nil:
		return ErrNoExporter
	}

	pool := s.Pool
	if pool == nil {
		pool = parallel.Start(1)
	}
	n, err := s.Exporter.Swaps(src, pool)
	s.Logger.Info("channel swaps exported", "written", n)
	return err
}

func (s *Session) screenshot(Input) error {
	if s.Exporter == nil {
		return ErrNoExporter
	}
	_, err := s.Exporter.Screenshot(s.Frame, s.Frame.Width(), s.Frame.Height(), "")
	return err
}
