package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// PixelBuffer is a flat row-major RGBA pixel buffer, 4 bytes per pixel.
//
// This is the exchange format between image acquisition and the detection
// pipeline: detection never sees an image.Image, only the raw bytes plus
// dimensions. The buffer layout matches image.NRGBA.Pix with a stride of
// exactly Width*4 (no row padding).
type PixelBuffer struct {
	Pix    []byte
	Width  int
	Height int
}

// NewPixelBuffer wraps an existing byte slice as a pixel buffer.
//
// Returns an error if the dimensions are not positive or the slice length
// does not equal Width*Height*4. The slice is not copied; the caller must
// not mutate it while the buffer is in use.
func NewPixelBuffer(pix []byte, width, height int) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid buffer dimensions %dx%d", width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("pixel slice length %d does not match %dx%d RGBA (want %d)",
			len(pix), width, height, width*height*4)
	}
	return &PixelBuffer{Pix: pix, Width: width, Height: height}, nil
}

// FromImage converts any image.Image into a tightly packed RGBA buffer.
//
// The conversion clones the image into NRGBA form, so the returned buffer
// is independent of the source image and its stride is always Width*4.
// Decoded formats with exotic color models (YCbCr JPEG, paletted GIF,
// 16-bit PNG) are normalized to 8-bit non-premultiplied RGBA here.
func FromImage(img image.Image) *PixelBuffer {
	clone := imaging.Clone(img)
	b := clone.Bounds()
	return &PixelBuffer{
		Pix:    clone.Pix,
		Width:  b.Dx(),
		Height: b.Dy(),
	}
}
