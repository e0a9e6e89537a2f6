// Package colorconv converts colors between RGB, RGBA, HSL, HSV, CMYK and
// packed hexadecimal, validates structured color values, and provides
// pixel-level operators (inversion, alpha blending, web-safe snapping).
//
// # Value Types
//
// All colors are small value types produced fresh by each conversion:
//   - RGB, RGBA: 8-bit channels (0-255); RGBA alpha is straight, 255 = opaque
//   - HSL, HSV: hue in degrees [0,360), other components in [0,1]
//   - CMYK: every component in [0,1]
//   - Hex: 24 bits packed as 0xRRGGBB
//
// RGB and RGBA implement image/color.Color, and FromColor converts back, so
// the types can be used directly with the standard image packages.
//
// # Validation
//
// Conversions never reject input. HSL.Valid, HSV.Valid and CMYK.Valid are
// advisory range checks a caller may run before trusting a value; out-of-range
// input silently produces an approximate result, and 8-bit outputs are always
// clamped to [0,255].
//
// # Precision
//
// Float-to-8-bit conversions truncate, so RGB -> HSL/HSV/CMYK -> RGB round
// trips reproduce each channel within 1. RGB <-> Hex is exact.
//
// The divisions that can hit zero are guarded and yield 0: RGB -> CMYK for
// pure black, HSL -> HSV at v == 0, and HSV -> HSL at l == 0 or l == 1.
//
// # Thread Safety
//
// Every function is pure and allocation-free, so all of them are safe for
// concurrent use.
package colorconv
