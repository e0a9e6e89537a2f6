package colorconv

import "math"

// RGBToHSV converts an 8-bit RGB color to HSV.
// Hue uses the same formula as RGBToHSL; saturation is 0 for black.
func RGBToHSV(c RGB) HSV {
	r, g, b := normalize(c)
	cmax := max3(r, g, b)
	d := cmax - min3(r, g, b)

	out := HSV{V: cmax}
	if d != 0 {
		out.H = hue(r, g, b, cmax, d)
	}
	if cmax != 0 {
		out.S = d / cmax
	}
	return out
}

// HSVToRGB converts an HSV color to 8-bit RGB, truncating each channel.
func HSVToRGB(c HSV) RGB {
	chroma := c.V * c.S
	return fromChroma(c.H, chroma, c.V-chroma)
}

// HSLToHSV converts directly between the two cylindrical models without an
// RGB round trip. Hue is carried over unchanged.
func HSLToHSV(c HSL) HSV {
	v := c.L + c.S*math.Min(c.L, 1-c.L)
	out := HSV{H: c.H, V: v}
	if v != 0 {
		out.S = 2 * (1 - c.L/v)
	}
	return out
}

// HSVToHSL is the inverse of HSLToHSV. Saturation is 0 at the black and
// white singularities (l == 0 or l == 1).
func HSVToHSL(c HSV) HSL {
	l := c.V * (1 - c.S/2)
	out := HSL{H: c.H, L: l}
	if l != 0 && l != 1 {
		out.S = (c.V - l) / math.Min(l, 1-l)
	}
	return out
}
