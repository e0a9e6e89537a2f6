package colorconv

import colorful "github.com/lucasb-eyer/go-colorful"

// Colorful returns c as a go-colorful color with components in [0,1].
func (c RGB) Colorful() colorful.Color {
	r, g, b := normalize(c)
	return colorful.Color{R: r, G: g, B: b}
}

// FromColorful converts a go-colorful color to 8-bit RGB. Components outside
// [0,1] are clamped and the result is rounded to the nearest 8-bit value.
func FromColorful(c colorful.Color) RGB {
	r, g, b := c.Clamped().RGB255()
	return RGB{R: r, G: g, B: b}
}
