package detection

import (
	"fmt"
	"time"
)

// DetectShapes runs the full detection pipeline over one RGBA pixel buffer.
//
// Parameters:
//   - pix: row-major RGBA buffer, 4 bytes per pixel.
//   - width, height: image dimensions; width*height*4 must equal len(pix).
//   - opts: pipeline thresholds; zero-valued fields take their defaults
//     (see DefaultOptions).
//
// Returns:
//   - *ShapesResult: detections in component discovery order, with the
//     elapsed wall time and the source dimensions.
//   - error: non-nil only for invalid input (zero or negative dimensions,
//     buffer length mismatch); no partial result accompanies an error.
//
// # Behavior
//
// The call is a pure function of its inputs: running it twice on the same
// buffer yields identical results, and concurrent calls share no state.
// Components that survive the noise/scale filter but match no classification
// rule are silently excluded. There is no retry or adaptive re-threshold
// loop; callers wanting a different threshold re-invoke with different
// Options.
func DetectShapes(pix []byte, width, height int, opts Options) (*ShapesResult, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid image dimensions %dx%d", width, height)
	}
	if len(pix) != width*height*4 {
		return nil, fmt.Errorf("pixel buffer length %d does not match %dx%d RGBA (want %d)",
			len(pix), width, height, width*height*4)
	}
	opts = opts.withDefaults()

	start := time.Now()

	mask := Binarize(pix, width, height, opts.Threshold)
	components := findComponents(mask, width, height)

	maxArea := int(opts.MaxAreaFraction * float64(width) * float64(height))

	shapes := make([]DetectedShape, 0, len(components))
	for _, c := range components {
		// Filter before any per-component geometry work: tiny components
		// are noise, near-image-sized ones are background or border
		// artifacts.
		if len(c.points) < opts.MinArea || len(c.points) > maxArea {
			continue
		}
		if shape, ok := analyzeComponent(c, opts.SimplifyTolerance); ok {
			shapes = append(shapes, shape)
		}
	}

	return &ShapesResult{
		Shapes:       shapes,
		Count:        len(shapes),
		ProcessingMS: float64(time.Since(start).Microseconds()) / 1000.0,
		ImageWidth:   width,
		ImageHeight:  height,
	}, nil
}

// analyzeComponent runs the per-component stages: contour extraction and
// tracing, corner detection and merging, polygon simplification, feature
// computation, and classification.
//
// Degenerate geometry flows through rather than erroring: an unclosed trace
// yields a short open path, short contours skip curvature analysis, and the
// feature extractor zero-guards its ratios.
func analyzeComponent(c *component, simplifyTolerance float64) (DetectedShape, bool) {
	contour := extractContour(c)
	ordered := traceContour(contour)

	candidates := detectCorners(ordered, len(c.points))
	corners := mergeCorners(candidates, len(c.points))

	poly := simplifyPolygon(ordered, simplifyTolerance)

	f := computeFeatures(c, poly, len(corners))
	shapeType, confidence, ok := classify(f)
	if !ok {
		return DetectedShape{}, false
	}

	return DetectedShape{
		Type:       shapeType,
		Confidence: confidence,
		Bounds:     c.bounds(),
		Center:     c.centroid(),
		Area:       len(c.points),
	}, true
}
