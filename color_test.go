package colorconv

import (
	"image/color"
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/colornames"
)

func TestHSLValid(t *testing.T) {
	tests := []struct {
		name string
		c    HSL
		want bool
	}{
		{"red", HSL{0, 1, 0.5}, true},
		{"upper bounds", HSL{359.999, 1, 1}, true},
		{"hue 360", HSL{360, 0.5, 0.5}, false},
		{"negative hue", HSL{-1, 0.5, 0.5}, false},
		{"saturation over 1", HSL{10, 1.01, 0.5}, false},
		{"negative lightness", HSL{10, 0.5, -0.01}, false},
		{"NaN", HSL{math.NaN(), 0.5, 0.5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Valid(); got != tt.want {
				t.Errorf("Valid(%+v): got %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestHSVValid(t *testing.T) {
	tests := []struct {
		name string
		c    HSV
		want bool
	}{
		{"black", HSV{0, 0, 0}, true},
		{"blue", HSV{240, 1, 1}, true},
		{"hue 360", HSV{360, 1, 1}, false},
		{"value over 1", HSV{0, 0, 2}, false},
		{"NaN saturation", HSV{0, math.NaN(), 1}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Valid(); got != tt.want {
				t.Errorf("Valid(%+v): got %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestCMYKValid(t *testing.T) {
	tests := []struct {
		name string
		c    CMYK
		want bool
	}{
		{"black", CMYK{0, 0, 0, 1}, true},
		{"white", CMYK{0, 0, 0, 0}, true},
		{"cyan over 1", CMYK{1.5, 0, 0, 0}, false},
		{"negative key", CMYK{0, 0, 0, -0.1}, false},
		{"NaN magenta", CMYK{0, math.NaN(), 0, 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Valid(); got != tt.want {
				t.Errorf("Valid(%+v): got %v, want %v", tt.c, got, tt.want)
			}
		})
	}
}

func TestValidDoesNotNormalize(t *testing.T) {
	c := HSL{H: 400, S: 2, L: -1}
	_ = c.Valid()
	if c != (HSL{H: 400, S: 2, L: -1}) {
		t.Errorf("Valid mutated its receiver: %+v", c)
	}
}

func TestRGBImplementsColor(t *testing.T) {
	var c color.Color = RGB{R: 255, G: 128, B: 0}

	r, g, b, a := c.RGBA()
	if r != 0xffff || g != 0x8080 || b != 0 || a != 0xffff {
		t.Errorf("RGBA(): got (%#x,%#x,%#x,%#x), want (0xffff,0x8080,0,0xffff)", r, g, b, a)
	}
}

func TestRGBAPremultipliesForColor(t *testing.T) {
	var c color.Color = RGBA{R: 255, G: 0, B: 0, A: 0}

	r, _, _, a := c.RGBA()
	if r != 0 || a != 0 {
		t.Errorf("transparent RGBA(): got r=%#x a=%#x, want 0, 0", r, a)
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		c    color.Color
		want RGBA
	}{
		{"orange", colornames.Orange, RGBA{0xff, 0xa5, 0x00, 0xff}},
		{"navy", colornames.Navy, RGBA{0x00, 0x00, 0x80, 0xff}},
		{"gray16", color.Gray16{Y: 0xffff}, RGBA{0xff, 0xff, 0xff, 0xff}},
		{"straight alpha", color.NRGBA{R: 200, G: 100, B: 50, A: 0x80}, RGBA{200, 100, 50, 0x80}},
		{"own type", RGBA{1, 2, 3, 255}, RGBA{1, 2, 3, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.c); got != tt.want {
				t.Errorf("FromColor: got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestColorfulInterop(t *testing.T) {
	c := RGB{R: 51, G: 102, B: 204}

	if got := FromColorful(c.Colorful()); got != c {
		t.Errorf("round trip: got %+v, want %+v", got, c)
	}

	if got := FromColorful(colorful.Hsl(0, 1, 0.5)); got != (RGB{255, 0, 0}) {
		t.Errorf("colorful red: got %+v, want {255 0 0}", got)
	}

	// Out-of-gamut values are clamped.
	if got := FromColorful(colorful.Color{R: 1.5, G: -0.5, B: 0.5}); got.R != 255 || got.G != 0 {
		t.Errorf("clamped: got %+v, want R=255 G=0", got)
	}
}

func TestToByte(t *testing.T) {
	tests := []struct {
		in   float64
		want uint8
	}{
		{0, 0},
		{1, 255},
		{0.5, 127},
		{-0.2, 0},
		{1.7, 255},
		{math.NaN(), 0},
		{math.Inf(1), 255},
	}

	for _, tt := range tests {
		if got := toByte(tt.in); got != tt.want {
			t.Errorf("toByte(%v): got %d, want %d", tt.in, got, tt.want)
		}
	}
}
