// Package tga reads and writes uncompressed truecolor TGA files.
//
// Only the subset produced by the lab tools is supported: image type 2, no
// color map, no image ID, 24 or 32 bits per pixel stored bottom-to-top in
// BGR(A) order. Writing always produces 24 bits per pixel.
package tga

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"framelab/framebuf"
)

// signature is the fixed header prefix of an uncompressed truecolor file.
var signature = [12]byte{0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0}

const maxDimension = 0xFFFF

var (
	ErrSignature  = errors.New("tga: not an uncompressed truecolor image")
	ErrDimensions = errors.New("tga: invalid dimensions")
	ErrDepth      = errors.New("tga: unsupported bit depth")
	ErrTruncated  = errors.New("tga: truncated data")
	ErrTooLarge   = errors.New("tga: image too large")
)

// spec is the image specification following the signature.
type spec struct {
	Width      uint16
	Height     uint16
	Depth      uint8
	Descriptor uint8
}

func init() {
	image.RegisterFormat("tga", string(signature[:]), decode, DecodeConfig)
}

func readSpec(r io.Reader) (spec, error) {
	var sig [len(signature)]byte
	if _, err := io.ReadFull(r, sig[:]); err != nil {
		return spec{}, fmt.Errorf("%w: %w", ErrSignature, err)
	}
	if sig != signature {
		return spec{}, ErrSignature
	}

	var s spec
	if err := binary.Read(r, binary.LittleEndian, &s); err != nil {
		return spec{}, fmt.Errorf("%w: could not read image specification: %w", ErrTruncated, err)
	}

	switch {
	case s.Width == 0 || s.Height == 0:
		return spec{}, fmt.Errorf("%w: %dx%d", ErrDimensions, s.Width, s.Height)
	case s.Depth != 24 && s.Depth != 32:
		return spec{}, fmt.Errorf("%w: %d bits per pixel", ErrDepth, s.Depth)
	}
	return s, nil
}

// DecodeConfig returns the dimensions of a TGA image without reading its
// pixels.
func DecodeConfig(r io.Reader) (image.Config, error) {
	s, err := readSpec(r)
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: framebuf.Model,
		Width:      int(s.Width),
		Height:     int(s.Height),
	}, nil
}

// Decode reads a TGA image. 24-bit images decode as opaque.
func Decode(r io.Reader) (*framebuf.Image, error) {
	s, err := readSpec(r)
	if err != nil {
		return nil, err
	}

	width, height := int(s.Width), int(s.Height)
	bpp := int(s.Depth) / 8

	// The buffer grows with the data actually read, so a header claiming
	// more pixels than the stream holds cannot force a large allocation.
	size := int64(width) * int64(height) * int64(bpp)
	var buf bytes.Buffer
	n, err := io.CopyN(&buf, r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: read %d of %d bytes of pixel data: %w", ErrTruncated, n, size, err)
	}
	data := buf.Bytes()

	img := framebuf.New(width, height)
	for y := range height {
		for x := range width {
			pos := (y*width + x) * bpp
			c := framebuf.Color{R: data[pos+2], G: data[pos+1], B: data[pos], A: 0xFF}
			if bpp == 4 {
				c.A = data[pos+3]
			}
			img.SetPixel(x, height-y-1, c)
		}
	}

	return img, nil
}

func decode(r io.Reader) (image.Image, error) {
	return Decode(r)
}

// Encode writes img as a 24-bit TGA image, dropping alpha.
func Encode(w io.Writer, img *framebuf.Image) error {
	width, height := img.Width(), img.Height()
	switch {
	case img.Empty():
		return fmt.Errorf("%w: empty image", ErrDimensions)
	case width > maxDimension || height > maxDimension:
		return fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}

	var buf bytes.Buffer
	buf.Grow(len(signature) + 6 + width*height*3)
	buf.Write(signature[:])
	if err := binary.Write(&buf, binary.LittleEndian, spec{
		Width:  uint16(width),
		Height: uint16(height),
		Depth:  24,
	}); err != nil {
		return fmt.Errorf("could not encode image specification: %w", err)
	}

	for y := height - 1; y >= 0; y-- {
		for x := range width {
			c := img.Pixel(x, y)
			buf.Write([]byte{c.B, c.G, c.R})
		}
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("could not write image: %w", err)
	}
	return nil
}

// Load replaces dst with the image stored in the named file. On failure dst
// is left untouched.
func Load(name string, dst *framebuf.Image) error {
	f, err := os.Open(name)
	if err != nil {
		return fmt.Errorf("could not open image %q: %w", name, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			slog.Error("could not close image", "name", name, "error", closeErr)
		}
	}()

	img, err := Decode(f)
	if err != nil {
		return fmt.Errorf("could not load image %q: %w", name, err)
	}

	dst.MoveFrom(img)
	return nil
}

// Save writes img into the named file. The data goes to a temporary file in
// the same folder first, so name is either replaced whole or left untouched.
func Save(name string, img *framebuf.Image) (err error) {
	dir, base := filepath.Split(name)
	if dir == "" {
		dir = "."
	}
	tmp, err := os.CreateTemp(dir, base)
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", base, err)
	}
	canRename := false
	defer func() {
		if defErr := tmp.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", base, defErr)
		}
		if defErr := tmp.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", base, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(tmp.Name(), name); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", base, defErr)
			}
		}
		if err != nil {
			if defErr := os.Remove(tmp.Name()); defErr != nil {
				slog.Error("could not remove temporary file", "name", tmp.Name(), "error", defErr)
			}
		}
	}()

	if err = Encode(tmp, img); err != nil {
		return fmt.Errorf("could not encode TGA destination %q: %w", base, err)
	}

	canRename = true
	return nil
}
