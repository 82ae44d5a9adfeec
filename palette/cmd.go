package palette

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"framelab/framebuf"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Out    string            `help:"Destination PAL file" default:"toolbar.pal"`
	Colors map[string]string `help:"Swatch colors to override, e.g. red=#c00;cyan=#0ff" mapsep:";"`

	set Set `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	out, err := filepath.Abs(c.Out)
	if err != nil {
		return fmt.Errorf("invalid output path %q: %w", c.Out, err)
	}
	c.Out = out

	c.set = Default
	for name, hex := range c.Colors {
		s, err := ParseSwatch(name)
		if err != nil {
			return err
		}
		col, err := framebuf.ParseHex(hex)
		if err != nil {
			return fmt.Errorf("invalid color for swatch %s: %w", name, err)
		}
		col.A = 0xFF
		c.set[s] = col
	}
	return nil
}

func (c *CLICmd) Run() (err error) {
	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("could not create palette %q: %w", c.Out, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close palette %q: %w", c.Out, closeErr)
		}
	}()

	if err = c.set.WriteRIFF(f); err != nil {
		return err
	}

	slog.Info("palette written", "file", c.Out, "colors", len(c.set))
	return nil
}
