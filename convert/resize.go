package convert

import (
	"image"
	"log/slog"
	"math"

	"framelab/framebuf"
	"framelab/palette"

	"golang.org/x/image/draw"
)

// fit scales img into a width x height box with Catmull-Rom resampling. A
// zero dimension keeps the source one. With crop the source is trimmed to
// the box aspect ratio; otherwise the image is letterboxed, the bars painted
// with fill when given or dropped from the result when not.
func fit(logger *slog.Logger, img *framebuf.Image, width, height int, crop bool, fill *framebuf.Color) *framebuf.Image {
	srcBounds := img.Bounds()
	srcWidth := float64(srcBounds.Dx())
	srcHeight := float64(srcBounds.Dy())

	destWidth := float64(width)
	if destWidth == 0 {
		destWidth = srcWidth
	}

	destHeight := float64(height)
	if destHeight == 0 {
		destHeight = srcHeight
	}

	if (srcWidth == destWidth) && (srcHeight == destHeight) {
		return img
	}

	destSize := image.Rect(0, 0, int(destWidth), int(destHeight))
	destBounds := destSize

	srcAR := srcWidth / srcHeight
	destAR := destWidth / destHeight
	switch {
	case crop && srcAR < destAR:
		dh := int(math.Round((srcHeight - srcWidth/destAR) / 2))
		srcBounds.Min.Y += dh
		srcBounds.Max.Y -= dh
	case crop && srcAR > destAR:
		dw := int(math.Round((srcWidth - srcHeight*destAR) / 2))
		srcBounds.Min.X += dw
		srcBounds.Max.X -= dw
	case !crop && srcAR < destAR:
		dw := destHeight * srcAR
		if fill == nil {
			destSize.Max.X = int(math.Round(dw))
			destBounds.Max.X = destSize.Max.X
		} else {
			idw := int(math.Round((destWidth - dw) / 2))
			destBounds.Min.X += idw
			destBounds.Max.X -= idw
		}
	case !crop && srcAR > destAR:
		dh := destWidth / srcAR
		if fill == nil {
			destSize.Max.Y = int(math.Round(dh))
			destBounds.Max.Y = destSize.Max.Y
		} else {
			idh := int(math.Round((destHeight - dh) / 2))
			destBounds.Min.Y += idh
			destBounds.Max.Y -= idh
		}
	}

	logger.Info("resizing", "width", destBounds.Dx(), "height", destBounds.Dy())
	dest := framebuf.New(destSize.Dx(), destSize.Dy())
	if fill != nil {
		dest.Fill(*fill)
	}
	draw.CatmullRom.Scale(dest, destBounds, img, srcBounds, draw.Over, nil)

	return dest
}

// quantize maps img onto the colors of set, diffusing the error with
// Floyd-Steinberg when dither is set.
func quantize(logger *slog.Logger, img *framebuf.Image, set *palette.Set, dither bool) *framebuf.Image {
	colors := set.Palette()
	logger.Info("applying palette", "colors", len(colors), "dither", dither)

	r := img.Bounds()
	dest := image.NewPaletted(r, colors)
	if dither {
		draw.FloydSteinberg.Draw(dest, r, img, r.Min)
	} else {
		draw.Draw(dest, r, img, r.Min, draw.Src)
	}
	return framebuf.FromImage(dest)
}
