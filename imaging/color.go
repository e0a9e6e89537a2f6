package imaging

import (
	"fmt"
	"image"
	"sort"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/colorconv"
)

// ColorResult contains a color value in every supported representation.
//
// This struct provides the same color in several formats to suit different use cases:
//   - Hex: Compact string format for CSS/web usage (no alpha)
//   - RGB: Standard 8-bit components without alpha
//   - RGBA: 8-bit components with straight alpha
//   - HSL, HSV: Cylindrical models for intuitive color operations
//   - CMYK: Subtractive model for print
type ColorResult struct {
	Hex  string         `json:"hex"`  // Hex format "#RRGGBB"
	RGB  colorconv.RGB  `json:"rgb"`  // RGB components
	RGBA colorconv.RGBA `json:"rgba"` // RGBA components with alpha
	HSL  colorconv.HSL  `json:"hsl"`  // HSL representation
	HSV  colorconv.HSV  `json:"hsv"`  // HSV representation
	CMYK colorconv.CMYK `json:"cmyk"` // CMYK representation
}

// SampleColor extracts the color value at a specific pixel coordinate.
//
// Parameters:
//   - img: The source image to sample from.
//   - x: X coordinate (must lie within img.Bounds()).
//   - y: Y coordinate (must lie within img.Bounds()).
//
// Returns:
//   - *ColorResult: The color at (x, y) in every representation.
//   - error: Non-nil if coordinates are outside the image bounds.
//
// # Color Conversion
//
// The pixel is read non-premultiplied and reduced to 8 bits per channel. The
// Hex, HSL, HSV and CMYK fields describe the RGB channels only; use RGBA.A to
// get transparency information.
func SampleColor(img image.Image, x, y int) (*ColorResult, error) {
	if !image.Pt(x, y).In(img.Bounds()) {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c := colorconv.FromColor(img.At(x, y))
	return describe(c), nil
}

func describe(c colorconv.RGBA) *ColorResult {
	rgb := colorconv.RGBAToRGB(c)
	return &ColorResult{
		Hex:  colorconv.RGBToHex(rgb).String(),
		RGB:  rgb,
		RGBA: c,
		HSL:  colorconv.RGBToHSL(rgb),
		HSV:  colorconv.RGBToHSV(rgb),
		CMYK: colorconv.RGBToCMYK(rgb),
	}
}

// LabeledPoint represents a pixel coordinate with an optional descriptive label.
type LabeledPoint struct {
	X     int    // X coordinate
	Y     int    // Y coordinate
	Label string // Optional descriptive label for this point
}

// LabeledColorResult combines a color sample with its location and optional label.
type LabeledColorResult struct {
	Label string      `json:"label,omitempty"` // Optional label (empty if not provided)
	X     int         `json:"x"`               // X coordinate that was sampled
	Y     int         `json:"y"`               // Y coordinate that was sampled
	Color ColorResult `json:"color"`           // The color at this location
}

// MultiColorResult contains color samples from multiple points.
//
// Results are returned in the same order as the input points.
type MultiColorResult struct {
	Samples []LabeledColorResult `json:"samples"` // Color samples in input order
}

// SampleColorsMulti extracts colors at multiple pixel coordinates in a single call.
//
// Returns an error if any coordinate is outside the image bounds. On error, no
// partial results are returned.
//
// # Example
//
//	points := []imaging.LabeledPoint{
//	    {X: 10, Y: 20, Label: "background"},
//	    {X: 50, Y: 100, Label: "text"},
//	}
//	result, err := imaging.SampleColorsMulti(img, points)
func SampleColorsMulti(img image.Image, points []LabeledPoint) (*MultiColorResult, error) {
	results := make([]LabeledColorResult, 0, len(points))

	for _, p := range points {
		color, err := SampleColor(img, p.X, p.Y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample point (%d,%d): %w", p.X, p.Y, err)
		}
		results = append(results, LabeledColorResult{
			Label: p.Label,
			X:     p.X,
			Y:     p.Y,
			Color: *color,
		})
	}

	return &MultiColorResult{Samples: results}, nil
}

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
//   - Width = X2 - X1, Height = Y2 - Y1
type Region struct {
	X1 int // Left edge X coordinate (inclusive)
	Y1 int // Top edge Y coordinate (inclusive)
	X2 int // Right edge X coordinate (exclusive)
	Y2 int // Bottom edge Y coordinate (exclusive)
}

// ColorFrequency represents a web-safe color and its occurrence frequency.
type ColorFrequency struct {
	Hex        string        `json:"hex"`        // Hex color "#RRGGBB" (web-safe)
	Percentage float64       `json:"percentage"` // Percentage of pixels with this color (0-100)
	RGB        colorconv.RGB `json:"rgb"`        // RGB components (web-safe)
}

// DominantColorsResult contains the most frequently occurring colors in an image.
//
// Colors are sorted by frequency in descending order (most common first).
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"` // Colors sorted by frequency (descending)
}

// DominantColors extracts the N most common colors from an image or region.
//
// Parameters:
//   - img: The source image to analyze.
//   - count: Maximum number of colors to return (at least 1).
//   - region: Optional rectangular region to analyze. If nil, the entire image
//     is analyzed.
//
// # Color Quantization
//
// Similar colors are grouped by snapping every pixel to the web-safe palette
// with colorconv.HexWebSafe, so at most 216 distinct colors are reported.
// Alpha is ignored. Equal frequencies are ordered by ascending hex value.
//
// # Errors
//
//   - count is less than 1
//   - region is empty or does not overlap the image
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	if count < 1 {
		return nil, fmt.Errorf("invalid color count %d: must be at least 1", count)
	}

	src := img
	if region != nil {
		rect := image.Rect(region.X1, region.Y1, region.X2, region.Y2)
		if region.X1 >= region.X2 || region.Y1 >= region.Y2 || !rect.Overlaps(img.Bounds()) {
			return nil, fmt.Errorf("invalid region (%d,%d)-(%d,%d) for image bounds %v",
				region.X1, region.Y1, region.X2, region.Y2, img.Bounds())
		}
		src = imaging.Crop(img, rect)
	}

	counts := make(map[colorconv.Hex]int)
	bounds := src.Bounds()
	totalPixels := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := colorconv.RGBAToRGB(colorconv.FromColor(src.At(x, y)))
			counts[colorconv.HexWebSafe(colorconv.RGBToHex(c))]++
			totalPixels++
		}
	}

	colors := make([]ColorFrequency, 0, len(counts))
	keys := make([]colorconv.Hex, 0, len(counts))
	for hex := range counts {
		keys = append(keys, hex)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] > counts[keys[j]]
		}
		return keys[i] < keys[j]
	})

	for _, hex := range keys {
		colors = append(colors, ColorFrequency{
			Hex:        hex.String(),
			Percentage: float64(counts[hex]) / float64(totalPixels) * 100,
			RGB:        colorconv.HexToRGB(hex),
		})
	}

	if len(colors) > count {
		colors = colors[:count]
	}

	Logger().Debug("dominant colors", "bounds", bounds, "distinct", len(counts), "returned", len(colors))
	return &DominantColorsResult{Colors: colors}, nil
}
