package convert

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"framelab/framebuf"
	"framelab/palette"
	"framelab/parallel"
	"framelab/tga"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Scan    string `help:"Source folder to scan" default:"."`
	Dest    string `help:"Destination folder for converted pictures. Relative to scan dir if not absolute." default:"tga"`
	Resize  bool   `help:"Resize image" default:"false" group:"resize"`
	Width   int    `help:"Max width" group:"resize"`
	Height  int    `help:"Max height" group:"resize"`
	Crop    bool   `help:"Crop image to maintain requested aspect ratio" default:"false" group:"resize"`
	Fill    string `help:"If given and not cropping, will fill background with this color to maintain destination aspect ratio" group:"resize"`
	Palette string `help:"Reduce colors to the toolbar swatches ('toolbar') or to the first swatches of a PAL file in RIFF format" group:"palette"`
	Dither  bool   `help:"Apply dithering" default:"false" group:"palette"`

	fillColor *framebuf.Color `kong:"-"`
	swatches  *palette.Set    `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	if c.Resize {
		switch {
		case (c.Width < 0):
			return fmt.Errorf("invalid resize width: %d", c.Width)
		case (c.Height < 0):
			return fmt.Errorf("invalid resize height: %d", c.Height)
		case (c.Width == 0) && (c.Height == 0):
			return fmt.Errorf("no resize dimensions given")
		}
	}

	if (!c.Crop) && (c.Fill != "") {
		col, err := framebuf.ParseHex(c.Fill)
		if err != nil {
			return err
		}
		c.fillColor = &col
	}

	switch c.Palette {
	case "":
	case "toolbar":
		set := palette.Default
		c.swatches = &set
	default:
		set, err := palette.Load(c.Palette)
		if err != nil {
			return err
		}
		c.swatches = &set
	}

	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var processedCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		pool.Do(func() {
			if err := c.process(file.Name()); err != nil {
				errCount.Add(1)
				slog.Error("could not convert image", "file", file.Name(), "error", err)
				return
			}
			processedCount.Add(1)
		})
	}

	pool.Wait()

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *CLICmd) process(fileName string) error {
	filePath := filepath.Join(c.Scan, fileName)
	logger := slog.Default().With("file", filePath)

	img, err := Open(filePath)
	if err != nil {
		return err
	}

	if c.Resize {
		img = fit(logger, img, c.Width, c.Height, c.Crop, c.fillColor)
	}

	if c.swatches != nil {
		img = quantize(logger.With("palette", c.Palette), img, c.swatches, c.Dither)
	}

	destName := strings.TrimSuffix(fileName, filepath.Ext(fileName)) + ".tga"
	if err = tga.Save(filepath.Join(c.Dest, destName), img); err != nil {
		return fmt.Errorf("could not save image into %q: %w", c.Dest, err)
	}
	logger.Info("converted", "to", destName)
	return nil
}
