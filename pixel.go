package colorconv

// RGBToRGBA widens c to a fully opaque RGBA.
func RGBToRGBA(c RGB) RGBA {
	return RGBA{R: c.R, G: c.G, B: c.B, A: 0xFF}
}

// RGBAToRGB discards alpha.
func RGBAToRGB(c RGBA) RGB {
	return RGB{R: c.R, G: c.G, B: c.B}
}

// Blend composites src over dst with straight alpha:
//
//	out = (dst*(255-src.A) + src*src.A) / 255
//
// Each channel is computed in integer arithmetic and truncated. An opaque src
// replaces dst; a fully transparent src leaves it unchanged.
func Blend(dst RGB, src RGBA) RGB {
	return RGB{
		R: lerp(dst.R, src.R, src.A),
		G: lerp(dst.G, src.G, src.A),
		B: lerp(dst.B, src.B, src.A),
	}
}

// BlendInto replaces *dst with Blend(*dst, src).
func BlendInto(dst *RGB, src RGBA) {
	*dst = Blend(*dst, src)
}

func lerp(d, s, a uint8) uint8 {
	return uint8((uint32(d)*uint32(255-a) + uint32(s)*uint32(a)) / 255)
}

// Invert returns the bitwise complement of each channel (255 - v).
// Inverting twice yields the original color.
func Invert(c RGB) RGB {
	return RGB{R: ^c.R, G: ^c.G, B: ^c.B}
}

// InvertInPlace replaces *c with Invert(*c).
func InvertInPlace(c *RGB) {
	*c = Invert(*c)
}
