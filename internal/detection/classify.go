package detection

// rule is one classification decision: a predicate over the feature vector
// and the outcome it assigns.
type rule struct {
	shape      ShapeType
	confidence float64
	match      func(f featureVector) bool
}

// classificationRules is evaluated strictly in order; the first matching rule
// wins. The ordering and every numeric threshold are load-bearing: the
// confidence constants were tuned together with the 4-neighbor perimeter and
// single-pass corner merging, so rules must not be reordered or "simplified".
var classificationRules = []rule{
	// Extremely elongated, sparse components are lines regardless of the
	// corner count their jagged ends produce.
	{ShapeLine, 0.95, func(f featureVector) bool {
		return (f.aspectRatio > 8 || f.aspectRatio < 0.125) && f.solidity < 0.6
	}},

	// Concave many-cornered outlines with poor roundness are stars.
	{ShapeStar, 0.85, func(f featureVector) bool {
		return !f.convex && f.vertices >= 5 && f.circularity < 0.7
	}},

	// Polygons by corner count, 3 through 6.
	{ShapeTriangle, 0.92, func(f featureVector) bool {
		return f.vertices == 3
	}},
	{ShapeRectangle, 0.95, func(f featureVector) bool {
		return f.vertices == 4 && f.solidity > 0.6
	}},
	// Five corners: a true pentagon is round-ish, square-ish and solid;
	// otherwise it is a rectangle whose corners over-counted.
	{ShapePentagon, 0.88, func(f featureVector) bool {
		return f.vertices == 5 && f.circularity > 0.7 &&
			f.aspectRatio > 0.92 && f.aspectRatio < 1.08 && f.solidity > 0.65
	}},
	{ShapeRectangle, 0.85, func(f featureVector) bool {
		return f.vertices == 5 && f.solidity < 0.60
	}},
	{ShapeRectangle, 0.85, func(f featureVector) bool {
		return f.vertices == 5 && (f.aspectRatio > 1.12 || f.aspectRatio < 0.88)
	}},
	{ShapeRectangle, 0.75, func(f featureVector) bool {
		return f.vertices == 5
	}},
	// Six corners on a round, square-ish outline is a pentagon whose
	// corner detector split one vertex.
	{ShapePentagon, 0.80, func(f featureVector) bool {
		return f.vertices == 6 && f.circularity > 0.65 &&
			f.aspectRatio > 0.9 && f.aspectRatio < 1.1
	}},

	// Circles: nearly cornerless and square-ish, or very round with at
	// most a few spurious corners.
	{ShapeCircle, 0.90, func(f featureVector) bool {
		return f.vertices <= 2 && f.aspectRatio > 0.8 && f.aspectRatio < 1.25
	}},
	{ShapeCircle, 0.88, func(f featureVector) bool {
		return f.circularity > 0.85 && f.vertices <= 3 &&
			f.aspectRatio > 0.75 && f.aspectRatio < 1.3
	}},

	// Fallbacks for convex, solid components that matched nothing above.
	{ShapeRectangle, 0.75, func(f featureVector) bool {
		return f.convex && f.solidity > 0.7 && (f.aspectRatio > 1.4 || f.aspectRatio < 0.7)
	}},
	{ShapePentagon, 0.72, func(f featureVector) bool {
		return f.convex && f.solidity > 0.7 &&
			f.aspectRatio > 0.9 && f.aspectRatio < 1.1 && f.circularity > 0.7
	}},
	{ShapeRectangle, 0.70, func(f featureVector) bool {
		return f.convex && f.solidity > 0.7 &&
			f.aspectRatio > 0.9 && f.aspectRatio < 1.1
	}},
	{ShapeRectangle, 0.65, func(f featureVector) bool {
		return f.convex && f.solidity > 0.7
	}},
}

// classify assigns a shape type and confidence to a feature vector, or
// reports no match. No match is a valid outcome, not an error: the component
// simply produces no detection.
func classify(f featureVector) (ShapeType, float64, bool) {
	for _, r := range classificationRules {
		if r.match(f) {
			return r.shape, r.confidence, true
		}
	}
	return "", 0, false
}
