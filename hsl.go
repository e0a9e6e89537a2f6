package colorconv

import "math"

// RGBToHSL converts an 8-bit RGB color to HSL.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to the 0-1 range
//  2. Find the min and max components
//  3. Calculate lightness as (max + min) / 2
//  4. Calculate saturation based on lightness
//  5. Calculate hue based on which component is max
//
// Achromatic colors (max == min) have hue and saturation 0.
func RGBToHSL(c RGB) HSL {
	r, g, b := normalize(c)
	cmax := max3(r, g, b)
	cmin := min3(r, g, b)

	l := (cmax + cmin) / 2
	if cmax == cmin {
		return HSL{H: 0, S: 0, L: l}
	}

	d := cmax - cmin
	var s float64
	if l > 0.5 {
		s = d / (2 - cmax - cmin)
	} else {
		s = d / (cmax + cmin)
	}

	return HSL{H: hue(r, g, b, cmax, d), S: s, L: l}
}

// HSLToRGB converts an HSL color to 8-bit RGB.
//
// Components are computed from chroma and truncated to 8 bits. A saturation
// of 0 gives chroma 0 and therefore the gray (l, l, l). Out-of-range input is
// not rejected; the result is clamped to [0,255].
func HSLToRGB(c HSL) RGB {
	chroma := (1 - math.Abs(2*c.L-1)) * c.S
	return fromChroma(c.H, chroma, c.L-chroma/2)
}

// InvertHSL returns the complementary color with inverted saturation and
// lightness: hue is rotated by 180 degrees, s becomes 1-s and l becomes 1-l.
func InvertHSL(c HSL) HSL {
	if c.H < 180 {
		c.H += 180
	} else {
		c.H -= 180
	}
	c.S = 1 - c.S
	c.L = 1 - c.L
	return c
}

func normalize(c RGB) (r, g, b float64) {
	return float64(c.R) / 255, float64(c.G) / 255, float64(c.B) / 255
}

// hue returns the hue in degrees for normalized channels with a non-zero
// spread d = cmax - cmin.
func hue(r, g, b, cmax, d float64) float64 {
	var h float64
	switch cmax {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h * 60
}

// fromChroma places chroma and the secondary component in the 60 degree
// sector of h, then adds the offset m to every channel.
func fromChroma(h, chroma, m float64) RGB {
	hp := h / 60
	x := chroma * (1 - math.Abs(math.Mod(hp, 2)-1))

	var r, g, b float64
	switch sector(hp) {
	case 0:
		r, g, b = chroma, x, 0
	case 1:
		r, g, b = x, chroma, 0
	case 2:
		r, g, b = 0, chroma, x
	case 3:
		r, g, b = 0, x, chroma
	case 4:
		r, g, b = x, 0, chroma
	default:
		r, g, b = chroma, 0, x
	}

	return RGB{R: toByte(r + m), G: toByte(g + m), B: toByte(b + m)}
}

// sector maps h/60 to 0..5. Hues outside [0,360) wrap around.
func sector(hp float64) int {
	if math.IsNaN(hp) || math.IsInf(hp, 0) {
		return 0
	}
	i := int(math.Mod(math.Floor(hp), 6))
	if i < 0 {
		i += 6
	}
	return i
}
