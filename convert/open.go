// Package convert imports pictures of any supported format into the TGA
// framebuffer format.
package convert

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log/slog"
	"os"

	"framelab/framebuf"
	_ "framelab/tga"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Open decodes the named picture into a framebuffer.
func Open(name string) (*framebuf.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open image %q: %w", name, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close image", "name", name, "error", closeErr)
		}
	}()

	img, _, err := decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode image %q: %w", name, err)
	}
	return img, nil
}

func decode(r io.Reader) (*framebuf.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", err
	}
	if fb, ok := img.(*framebuf.Image); ok {
		return fb, format, nil
	}
	return framebuf.FromImage(img), format, nil
}
