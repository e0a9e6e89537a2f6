package colorconv

import (
	"image/color"
	"math"
)

// RGB represents an opaque color with 8-bit components.
//
// Each component ranges from 0 to 255, where:
//   - 0 represents no intensity (black for all components)
//   - 255 represents full intensity (white for all components)
type RGB struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// RGBA represents a color with 8-bit components including alpha.
//
// Alpha is straight (not premultiplied) and represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
type RGBA struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// HSL represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSL struct {
	H float64 `json:"h"` // Hue: [0,360) degrees (0=red, 120=green, 240=blue)
	S float64 `json:"s"` // Saturation: [0,1] (0=gray, 1=vivid)
	L float64 `json:"l"` // Lightness: [0,1] (0=black, 0.5=normal, 1=white)
}

// HSV represents a color in HSV (Hue, Saturation, Value) color space.
type HSV struct {
	H float64 `json:"h"` // Hue: [0,360) degrees
	S float64 `json:"s"` // Saturation: [0,1]
	V float64 `json:"v"` // Value: [0,1] (0=black)
}

// CMYK represents a color in the subtractive CMYK model.
// All components are fractions in [0,1].
type CMYK struct {
	C float64 `json:"c"` // Cyan
	M float64 `json:"m"` // Magenta
	Y float64 `json:"y"` // Yellow
	K float64 `json:"k"` // Key (black)
}

// Valid reports whether h is in [0,360) and s, l are in [0,1].
// It never normalizes the value.
func (c HSL) Valid() bool {
	return validHue(c.H) && unit(c.S) && unit(c.L)
}

// Valid reports whether h is in [0,360) and s, v are in [0,1].
func (c HSV) Valid() bool {
	return validHue(c.H) && unit(c.S) && unit(c.V)
}

// Valid reports whether every component is in [0,1].
func (c CMYK) Valid() bool {
	return unit(c.C) && unit(c.M) && unit(c.Y) && unit(c.K)
}

// NaN fails both comparisons.
func validHue(h float64) bool { return h >= 0 && h < 360 }

func unit(x float64) bool { return x >= 0 && x <= 1 }

// RGBA implements color.Color. The color is fully opaque.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// RGBA implements color.Color, returning alpha-premultiplied values as the
// interface requires.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// FromColor converts any standard color to straight-alpha 8-bit RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{R: n.R, G: n.G, B: n.B, A: n.A}
}

// toByte scales a [0,1] channel to 8 bits, truncating. Out-of-range and NaN
// inputs are clamped so the float-to-integer conversion is always defined.
func toByte(x float64) uint8 {
	v := x * 255
	if !(v > 0) {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}

func max3(a, b, c float64) float64 { return math.Max(a, math.Max(b, c)) }

func min3(a, b, c float64) float64 { return math.Min(a, math.Min(b, c)) }
