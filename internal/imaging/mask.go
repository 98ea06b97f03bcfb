package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
)

// MaskPreviewResult contains a binary mask rendered as a base64 PNG.
//
// Foreground pixels are white (255) and background pixels black (0), so the
// preview shows exactly what the component labeling stage will see.
type MaskPreviewResult struct {
	// Width of the mask in pixels.
	Width int `json:"width"`

	// Height of the mask in pixels.
	Height int `json:"height"`

	// ImageBase64 is the rendered mask encoded as base64 PNG.
	ImageBase64 string `json:"image_base64"`

	// MimeType is always "image/png".
	MimeType string `json:"mime_type"`
}

// MaskPreview renders a binary mask (one byte per pixel, 0 or 1) as a
// grayscale PNG for visual threshold tuning.
//
// Parameters:
//   - mask: Row-major mask, len(mask) must equal width*height.
//   - width, height: Mask dimensions.
//
// Returns:
//   - *MaskPreviewResult: The rendered mask as base64 PNG.
//   - error: Non-nil for a dimension mismatch or a PNG encoding failure.
func MaskPreview(mask []uint8, width, height int) (*MaskPreviewResult, error) {
	if len(mask) != width*height {
		return nil, fmt.Errorf("mask length %d does not match %dx%d", len(mask), width, height)
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if mask[y*width+x] != 0 {
				img.SetGray(x, y, color.Gray{Y: 255})
			}
		}
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode mask image: %w", err)
	}

	return &MaskPreviewResult{
		Width:       width,
		Height:      height,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}
