package imaging

import (
	"image"
	"image/color"

	"github.com/anthonynsimon/bild/parallel"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/colorconv"
)

// Invert returns a copy of img with every pixel's RGB channels complemented.
//
// Colors are read non-premultiplied, so translucent pixels invert their
// visible color rather than their premultiplied values. Alpha is preserved.
// The result's bounds start at (0,0).
func Invert(img image.Image) *image.NRGBA {
	out := imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		inv := colorconv.Invert(colorconv.RGB{R: c.R, G: c.G, B: c.B})
		return color.NRGBA{R: inv.R, G: inv.G, B: inv.B, A: c.A}
	})
	Logger().Debug("invert", "bounds", img.Bounds())
	return out
}

// Composite blends overlay over every pixel of img.
//
// Each pixel's RGB is treated as the opaque destination and replaced by
// colorconv.Blend(pixel, overlay); the pixel's own alpha is preserved. An
// overlay with A=255 paints the image flat, A=0 returns an unchanged copy.
func Composite(img image.Image, overlay colorconv.RGBA) *image.NRGBA {
	out := imaging.AdjustFunc(img, func(c color.NRGBA) color.NRGBA {
		b := colorconv.Blend(colorconv.RGB{R: c.R, G: c.G, B: c.B}, overlay)
		return color.NRGBA{R: b.R, G: b.G, B: b.B, A: c.A}
	})
	Logger().Debug("composite", "bounds", img.Bounds(), "overlay", colorconv.RGBToHex(colorconv.RGBAToRGB(overlay)), "alpha", overlay.A)
	return out
}

// WebSafe snaps every pixel of img to the 216-color web-safe palette.
//
// Rows are processed in parallel. Alpha is preserved and the result's bounds
// start at (0,0).
func WebSafe(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	width := dst.Bounds().Dx()

	parallel.Line(dst.Bounds().Dy(), func(start, end int) {
		for y := start; y < end; y++ {
			row := dst.Pix[y*dst.Stride : y*dst.Stride+width*4]
			for i := 0; i < len(row); i += 4 {
				c := colorconv.WebSafe(colorconv.RGB{R: row[i], G: row[i+1], B: row[i+2]})
				row[i], row[i+1], row[i+2] = c.R, c.G, c.B
			}
		}
	})

	Logger().Debug("websafe", "bounds", img.Bounds())
	return dst
}
