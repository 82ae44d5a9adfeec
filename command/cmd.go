package command

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"framelab/convert"
	"framelab/export"
	"framelab/framebuf"
	"framelab/palette"
	"framelab/parallel"
	"framelab/tga"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Width      int      `help:"Framebuffer width" default:"800"`
	Height     int      `help:"Framebuffer height" default:"600"`
	Background string   `help:"Initial framebuffer color" default:"#000"`
	Source     string   `help:"Image used by load, zoom and rotate" type:"existingfile" group:"images"`
	SwapSource string   `help:"Image remapped by swaps. Defaults to the source image." type:"existingfile" group:"images"`
	Toolbar    string   `help:"Toolbar image for the paint canvas" type:"existingfile" group:"images"`
	Palette    string   `help:"Swatch colors as a PAL file in RIFF format" type:"existingfile" group:"images"`
	Exports    string   `help:"Folder receiving screenshots and channel swaps" default:"exports" env:"FRAMELAB_EXPORTS"`
	Seed       uint64   `help:"Seed for the random primitive colors" default:"1"`
	Out        string   `help:"Destination TGA file" short:"o" required:""`
	Steps      []string `arg:"" optional:"" help:"Steps to apply, as name[@x,y[+dx,dy]]"`

	background framebuf.Color `kong:"-"`
	steps      []Step         `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid framebuffer size %dx%d", c.Width, c.Height)
	}

	var err error
	if c.background, err = framebuf.ParseHex(c.Background); err != nil {
		return fmt.Errorf("invalid background: %w", err)
	}
	c.background.A = 0xFF

	if c.Out, err = filepath.Abs(c.Out); err != nil {
		return fmt.Errorf("invalid output path: %w", err)
	}
	if !strings.EqualFold(filepath.Ext(c.Out), ".tga") {
		return fmt.Errorf("output %q is not a .tga file", c.Out)
	}

	c.steps = c.steps[:0]
	for _, s := range c.Steps {
		step, err := ParseStep(s)
		if err != nil {
			return err
		}
		c.steps = append(c.steps, step)
	}
	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	frame := framebuf.New(c.Width, c.Height)
	frame.Fill(c.background)

	s := NewSession(frame, c.Seed)
	s.Pool = pool
	s.Logger = slog.Default().With("out", c.Out)

	var err error
	if s.Source, err = openOptional(c.Source); err != nil {
		return err
	}
	if s.SwapSource, err = openOptional(c.SwapSource); err != nil {
		return err
	}
	if s.Toolbar, err = openOptional(c.Toolbar); err != nil {
		return err
	}
	if c.Palette != "" {
		if s.Swatches, err = palette.Load(c.Palette); err != nil {
			return err
		}
	}

	if c.Exports != "" && c.exports() {
		if err = os.MkdirAll(c.Exports, 0o755); err != nil {
			return fmt.Errorf("unable to create export folder %q: %w", c.Exports, err)
		}
		s.Exporter = export.New(c.Exports)
	}

	if err = s.Run(c.steps); err != nil {
		return err
	}

	if err = tga.Save(c.Out, s.Frame); err != nil {
		return fmt.Errorf("could not save framebuffer into %q: %w", c.Out, err)
	}
	slog.Info("framebuffer saved", "file", c.Out, "steps", len(c.steps))
	return nil
}

// exports reports whether any step may write into the export folder.
func (c *CLICmd) exports() bool {
	for _, step := range c.steps {
		switch step.Command {
		case Swaps, Screenshot, Paint:
			return true
		}
	}
	return false
}

func openOptional(name string) (*framebuf.Image, error) {
	if name == "" {
		return nil, nil
	}
	return convert.Open(name)
}
