package colorconv

import "fmt"

// Hex is an RGB color packed into 24 bits as 0xRRGGBB.
// The top byte is ignored on read.
type Hex uint32

// String formats the color as "#RRGGBB".
func (h Hex) String() string {
	c := HexToRGB(h)
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// RGBToHex packs an RGB color. It is lossless and inverted by HexToRGB.
func RGBToHex(c RGB) Hex {
	return Hex(c.R)<<16 | Hex(c.G)<<8 | Hex(c.B)
}

// HexToRGB unpacks the low three bytes of h.
func HexToRGB(h Hex) RGB {
	return RGB{R: uint8(h >> 16), G: uint8(h >> 8), B: uint8(h)}
}

// webSafeLevels holds the upper bound of each snapping interval and the
// level it snaps to. Read-only.
var webSafeLevels = [...]struct{ max, level uint8 }{
	{0x19, 0x00},
	{0x4C, 0x33},
	{0x7F, 0x66},
	{0xB2, 0x99},
	{0xE5, 0xCC},
}

func webSafe(v uint8) uint8 {
	for _, t := range webSafeLevels {
		if v <= t.max {
			return t.level
		}
	}
	return 0xFF
}

// HexWebSafe snaps each byte of h to the nearest of the six web-safe levels
// 0x00, 0x33, 0x66, 0x99, 0xCC and 0xFF. It is idempotent. The top byte of the
// result is always zero.
func HexWebSafe(h Hex) Hex {
	return RGBToHex(WebSafe(HexToRGB(h)))
}

// WebSafe snaps every channel of c to the web-safe palette.
func WebSafe(c RGB) RGB {
	return RGB{R: webSafe(c.R), G: webSafe(c.G), B: webSafe(c.B)}
}
