package detection

// Binarize converts an RGBA pixel buffer into a 0/1 foreground mask.
//
// A pixel is foreground (1) when the mean of its R, G and B channels is
// strictly below threshold; the alpha channel is ignored. The buffer is
// row-major with 4 bytes per pixel, and the returned mask has one byte per
// pixel in the same order.
//
// The caller must guarantee len(pix) == width*height*4; DetectShapes
// validates this before calling.
func Binarize(pix []byte, width, height int, threshold uint8) []uint8 {
	mask := make([]uint8, width*height)
	for i := range mask {
		off := i * 4
		sum := uint32(pix[off]) + uint32(pix[off+1]) + uint32(pix[off+2])
		if sum/3 < uint32(threshold) {
			mask[i] = 1
		}
	}
	return mask
}
