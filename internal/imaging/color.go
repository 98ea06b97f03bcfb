package imaging

import (
	"fmt"
	"image"

	"github.com/lucasb-eyer/go-colorful"
)

// RGBColor represents an RGB color with 8-bit components.
type RGBColor struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// HSLColor represents a color in HSL (Hue, Saturation, Lightness) space.
//
// HSL separates the color type from its intensity, which makes fill colors
// easier to compare across lighting variations than raw RGB:
//   - Hue represents the color type (red, green, blue, ...)
//   - Saturation represents color intensity (gray to vivid)
//   - Lightness represents brightness (black to white)
type HSLColor struct {
	H int `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// FillColor is a sampled color in the three representations callers ask for.
type FillColor struct {
	Hex string   `json:"hex"` // Hex format "#rrggbb"
	RGB RGBColor `json:"rgb"` // 8-bit RGB components
	HSL HSLColor `json:"hsl"` // HSL representation
}

// SampleFillColor reads the pixel color at (x, y) and returns it as hex,
// RGB, and HSL.
//
// The coordinate is typically a detected shape's centroid, which for solid
// fills lands inside the shape. Hollow or concave shapes may place the
// centroid on background; callers wanting robustness should sample several
// interior points and compare.
//
// Returns an error when (x, y) lies outside the image bounds. Alpha is
// dropped: a translucent fill samples as its color composited over nothing.
func SampleFillColor(img image.Image, x, y int) (*FillColor, error) {
	bounds := img.Bounds()
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return nil, fmt.Errorf("coordinates (%d,%d) outside image bounds", x, y)
	}

	c, ok := colorful.MakeColor(img.At(x, y))
	if !ok {
		// Fully transparent pixel; report it as black.
		c = colorful.Color{}
	}

	h, s, l := c.Hsl()
	r8 := uint8(c.R*255 + 0.5)
	g8 := uint8(c.G*255 + 0.5)
	b8 := uint8(c.B*255 + 0.5)

	return &FillColor{
		Hex: c.Hex(),
		RGB: RGBColor{R: r8, G: g8, B: b8},
		HSL: HSLColor{H: int(h), S: int(s * 100), L: int(l * 100)},
	}, nil
}
