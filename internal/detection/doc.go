// Package detection implements the geometric shape detection pipeline.
//
// Given a flat RGBA pixel buffer, the package reports the geometric shapes
// (circle, triangle, rectangle, pentagon, star, line) it contains, each with
// a confidence score, bounding box, centroid, and pixel area.
//
// # Pipeline
//
// Detection runs as a strictly sequential pipeline per image:
//
//  1. Binarization: RGB mean thresholding into a foreground mask
//  2. Component labeling: 4-connected flood fill over the mask
//  3. Noise/scale filtering: drop tiny specks and border-sized blobs
//  4. Contour extraction: component pixels with a non-member 8-neighbor
//  5. Contour tracing: Moore-neighbor boundary following into an ordered loop
//  6. Corner detection: curvature-window scan plus proximity merging
//  7. Polygon simplification: Douglas-Peucker, used for geometry statistics
//  8. Feature extraction: circularity, aspect ratio, solidity, convexity
//  9. Classification: ordered numeric-threshold rules, first match wins
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//
// # Adjacency Conventions
//
// Two different adjacency tests are used deliberately and must not be
// unified: the perimeter estimate feeding the circularity formula counts
// member pixels with a non-member 4-neighbor, while contour membership for
// tracing uses the 8-neighborhood. The classifier's confidence constants
// were tuned against this asymmetry.
//
// # Concurrency
//
// A detection call is a pure function of its input buffer. All intermediate
// state (mask, labels, contours) is freshly allocated per call, so any number
// of calls may run concurrently.
//
// # Limitations
//
//   - Only the six named shape classes are reported
//   - Only luminance thresholding is used; color plays no role
//   - Shapes under perspective distortion are not recognized
//   - No sub-pixel accuracy is attempted
package detection
