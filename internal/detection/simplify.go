package detection

import "math"

// simplifyPolygon reduces an ordered point sequence to a minimal-vertex
// approximation with the Douglas-Peucker algorithm.
//
// The first and last input points are always preserved. The point of maximum
// perpendicular distance to the first-last chord is found; if it exceeds the
// tolerance the two halves are simplified recursively and concatenated
// (dropping the duplicated split point), otherwise the whole run collapses to
// its endpoints.
//
// Recursion depth is bounded by the input length, which is itself bounded by
// the contour size of one component.
//
// The result is used only for bounding-box statistics (aspect ratio,
// solidity) and the convexity test; vertex counting for classification comes
// from the corner detector instead.
func simplifyPolygon(points []Point, tolerance float64) []Point {
	if len(points) < 3 {
		out := make([]Point, len(points))
		copy(out, points)
		return out
	}

	first := points[0]
	last := points[len(points)-1]

	maxDist := 0.0
	maxIdx := 0
	for i := 1; i < len(points)-1; i++ {
		if d := perpendicularDistance(points[i], first, last); d > maxDist {
			maxDist = d
			maxIdx = i
		}
	}

	if maxDist > tolerance {
		left := simplifyPolygon(points[:maxIdx+1], tolerance)
		right := simplifyPolygon(points[maxIdx:], tolerance)
		return append(left[:len(left)-1], right...)
	}
	return []Point{first, last}
}

// perpendicularDistance is the distance from p to the line through a and b.
// When a == b the line degenerates and the plain point distance is used.
func perpendicularDistance(p, a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	if dx == 0 && dy == 0 {
		return math.Hypot(float64(p.X-a.X), float64(p.Y-a.Y))
	}
	return math.Abs(dx*float64(p.Y-a.Y)-dy*float64(p.X-a.X)) / math.Hypot(dx, dy)
}
