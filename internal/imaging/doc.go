// Package imaging provides image acquisition and presentation support around
// the detection pipeline.
//
// This package owns everything that touches image.Image: loading and caching
// decoded files, flattening them into the raw RGBA buffers the detection
// package consumes, optional denoise preprocessing, binary mask previews,
// fill-color sampling, and cropping. The detection pipeline itself never
// imports this package; the dependency runs the other way.
//
// # Coordinate System
//
// All pixel coordinates are 0-based with the origin at the top-left corner:
// X increases rightward, Y increases downward. Crop regions use an inclusive
// top-left and exclusive bottom-right corner.
//
// # Thread Safety
//
// ImageCache is safe for concurrent use. The remaining operations are
// stateless and can run concurrently on different images.
//
// # Error Handling
//
// Functions return errors for coordinates outside image bounds, invalid
// region specifications, file I/O failures during loading, and encoding
// failures during preview output.
package imaging
