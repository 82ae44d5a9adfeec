package export

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"framelab/convert"
	"framelab/parallel"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Source string `arg:"" help:"Image to remap" type:"existingfile"`
	Dest   string `help:"Destination folder for the variants. Relative to the source folder if not absolute." default:"swaps"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	src, err := filepath.Abs(c.Source)
	if err != nil {
		return fmt.Errorf("invalid source path %q: %w", c.Source, err)
	}
	c.Source = src

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(filepath.Dir(src), c.Dest)
	}
	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	img, err := convert.Open(c.Source)
	if err != nil {
		return err
	}

	exp := New(c.Dest)
	n, err := exp.Swaps(img, pool)
	slog.Info("stats", "written", n, "source", c.Source)
	if err != nil {
		return fmt.Errorf("error exporting channel swaps: %w", err)
	}
	return nil
}
