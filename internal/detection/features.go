package detection

import "math"

// featureVector is the per-component scalar summary fed to the classifier.
type featureVector struct {
	area        int
	perimeter   int
	circularity float64
	aspectRatio float64
	solidity    float64
	convex      bool
	vertices    int
}

// computeFeatures derives the classification features from the component,
// its simplified polygon, and the merged corner count.
//
// Circularity is 4*pi*area/perimeter^2 over the 4-connected perimeter
// estimate: 1.0 for an ideal disk, ~0.785 for a square, 0 when the perimeter
// is 0. Aspect ratio and solidity come from the simplified polygon's bounding
// box (max-min extents, matching the original tuning), not the component's
// own bounding box. The vertex count is the merged corner count, never the
// polygon's point count.
//
// A degenerate polygon bounding box is tolerated rather than rejected:
// solidity defaults to 0, and the aspect ratio keeps IEEE division semantics
// (Inf for a zero-height box, NaN for a single point) so that threshold
// comparisons behave exactly as the tuned rules expect.
func computeFeatures(c *component, poly []Point, vertices int) featureVector {
	area := len(c.points)
	perimeter := c.perimeter()

	circularity := 0.0
	if perimeter > 0 {
		circularity = 4 * math.Pi * float64(area) / float64(perimeter*perimeter)
	}

	var w, h float64
	if len(poly) > 0 {
		minX, maxX := poly[0].X, poly[0].X
		minY, maxY := poly[0].Y, poly[0].Y
		for _, p := range poly[1:] {
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
		w = float64(maxX - minX)
		h = float64(maxY - minY)
	}

	solidity := 0.0
	if w*h > 0 {
		solidity = float64(area) / (w * h)
	}

	return featureVector{
		area:        area,
		perimeter:   perimeter,
		circularity: circularity,
		aspectRatio: w / h,
		solidity:    solidity,
		convex:      isConvex(poly),
		vertices:    vertices,
	}
}

// isConvex walks the polygon's vertices in order and checks that the cross
// products of consecutive edge vectors share a single rotational sign.
// Collinear triples (zero cross product) are skipped; polygons with fewer
// than 3 vertices are vacuously convex.
func isConvex(poly []Point) bool {
	n := len(poly)
	if n < 3 {
		return true
	}

	sign := 0
	for i := 0; i < n; i++ {
		p0 := poly[i]
		p1 := poly[(i+1)%n]
		p2 := poly[(i+2)%n]

		cross := (p1.X-p0.X)*(p2.Y-p1.Y) - (p1.Y-p0.Y)*(p2.X-p1.X)
		switch {
		case cross == 0:
			continue
		case cross > 0:
			if sign < 0 {
				return false
			}
			sign = 1
		default:
			if sign > 0 {
				return false
			}
			sign = -1
		}
	}
	return true
}
