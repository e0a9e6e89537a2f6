package colorconv

// RGBToCMYK converts an 8-bit RGB color to CMYK.
//
// Pure black (k == 1) has no defined ink ratios; it yields c = m = y = 0
// instead of dividing by zero.
func RGBToCMYK(c RGB) CMYK {
	r, g, b := normalize(c)
	k := 1 - max3(r, g, b)
	if k == 1 {
		return CMYK{K: 1}
	}
	return CMYK{
		C: (1 - r - k) / (1 - k),
		M: (1 - g - k) / (1 - k),
		Y: (1 - b - k) / (1 - k),
		K: k,
	}
}

// CMYKToRGB converts a CMYK color to 8-bit RGB, truncating and clamping each
// channel to [0,255].
func CMYKToRGB(c CMYK) RGB {
	return RGB{
		R: toByte((1 - c.C) * (1 - c.K)),
		G: toByte((1 - c.M) * (1 - c.K)),
		B: toByte((1 - c.Y) * (1 - c.K)),
	}
}
