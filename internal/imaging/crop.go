package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"

	"github.com/disintegration/imaging"
)

// CropResult contains a cropped (and optionally scaled) image region encoded
// as base64 PNG.
type CropResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// Crop extracts a rectangular region from an image, typically to zoom into a
// detected shape's bounding box for closer inspection.
//
// Parameters:
//   - img: Source image.
//   - x1, y1: Top-left corner (inclusive).
//   - x2, y2: Bottom-right corner (exclusive).
//   - scale: Output scaling factor. 1.0 keeps the region size; values > 1
//     enlarge with Lanczos resampling. Non-positive values are treated as 1.0.
//
// Returns an error when the region extends outside the image or is empty.
func Crop(img image.Image, x1, y1, x2, y2 int, scale float64) (*CropResult, error) {
	bounds := img.Bounds()

	if x1 < bounds.Min.X || y1 < bounds.Min.Y || x2 > bounds.Max.X || y2 > bounds.Max.Y {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			x1, y1, x2, y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if x1 >= x2 || y1 >= y2 {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	cropped := imaging.Crop(img, image.Rect(x1, y1, x2, y2))

	if scale != 1.0 && scale > 0 {
		newWidth := int(float64(cropped.Bounds().Dx()) * scale)
		newHeight := int(float64(cropped.Bounds().Dy()) * scale)
		cropped = imaging.Resize(cropped, newWidth, newHeight, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, cropped); err != nil {
		return nil, fmt.Errorf("failed to encode cropped image: %w", err)
	}

	return &CropResult{
		Width:       cropped.Bounds().Dx(),
		Height:      cropped.Bounds().Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// CropBounds crops the region described by a detection bounding box, padded
// on all sides, clamped to the image.
//
// Padding gives the viewer context around the shape; a padding of 0 crops
// exactly the box. The box uses inclusive pixel extents (width counts
// pixels), matching detection results.
func CropBounds(img image.Image, x, y, width, height, padding int, scale float64) (*CropResult, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid bounding box %dx%d", width, height)
	}
	bounds := img.Bounds()

	x1 := x - padding
	y1 := y - padding
	x2 := x + width + padding
	y2 := y + height + padding

	if x1 < bounds.Min.X {
		x1 = bounds.Min.X
	}
	if y1 < bounds.Min.Y {
		y1 = bounds.Min.Y
	}
	if x2 > bounds.Max.X {
		x2 = bounds.Max.X
	}
	if y2 > bounds.Max.Y {
		y2 = bounds.Max.Y
	}

	return Crop(img, x1, y1, x2, y2, scale)
}
