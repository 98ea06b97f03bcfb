package detection

import "math"

// cornerAngleMax is the turn-angle cutoff for a corner candidate: a contour
// point whose window vectors meet at less than 0.7*pi (~126 degrees) is a
// sufficiently sharp bend.
const cornerAngleMax = 0.7 * math.Pi

// detectCorners scans an ordered contour with a curvature window and returns
// the vertex candidates, in contour order.
//
// The window size scales with the component: clamp(round(sqrt(area)*0.1),
// 2, 10) steps. The turn angle at index i is the absolute angle between the
// vectors from point i to the points windowSize steps before and after it
// (indices wrap cyclically), computed with atan2 over cross and dot products.
//
// Contours shorter than 10 points are returned unchanged: every point is
// treated as a corner and left for the merge pass to collapse.
func detectCorners(contour []Point, area int) []Point {
	if len(contour) < 10 {
		return contour
	}

	window := int(math.Round(math.Sqrt(float64(area)) * 0.1))
	if window < 2 {
		window = 2
	}
	if window > 10 {
		window = 10
	}

	n := len(contour)
	var corners []Point
	for i, p := range contour {
		prev := contour[(i-window+n)%n]
		next := contour[(i+window)%n]

		v1x := float64(prev.X - p.X)
		v1y := float64(prev.Y - p.Y)
		v2x := float64(next.X - p.X)
		v2y := float64(next.Y - p.Y)

		cross := v1x*v2y - v1y*v2x
		dot := v1x*v2x + v1y*v2y
		if math.Abs(math.Atan2(cross, dot)) < cornerAngleMax {
			corners = append(corners, p)
		}
	}
	return corners
}

// mergeCorners collapses near-duplicate corner candidates by greedy
// clustering.
//
// Candidates are walked in order; each unabsorbed candidate gathers all later
// unabsorbed candidates within the merge distance max(5, sqrt(area)*0.06)
// (compared on squared distance) and the cluster is replaced by the
// coordinate-wise mean, rounded back to the pixel grid. Classification
// consumes only the merged count, so the sub-pixel part of the mean carries
// no signal downstream. Output order follows the first member of each
// cluster.
//
// The pass runs once rather than to a fixed point, so a cluster mean can in
// principle land within merge distance of a later cluster. The classifier's
// thresholds were tuned against this single-pass behavior.
func mergeCorners(candidates []Point, area int) []Point {
	if len(candidates) == 0 {
		return candidates
	}

	mergeDist := math.Max(5, math.Sqrt(float64(area))*0.06)
	maxDistSq := mergeDist * mergeDist

	absorbed := make([]bool, len(candidates))
	merged := make([]Point, 0, len(candidates))

	for i, p := range candidates {
		if absorbed[i] {
			continue
		}
		sumX, sumY, n := p.X, p.Y, 1
		for j := i + 1; j < len(candidates); j++ {
			if absorbed[j] {
				continue
			}
			dx := float64(candidates[j].X - p.X)
			dy := float64(candidates[j].Y - p.Y)
			if dx*dx+dy*dy <= maxDistSq {
				absorbed[j] = true
				sumX += candidates[j].X
				sumY += candidates[j].Y
				n++
			}
		}
		merged = append(merged, Point{
			X: int(math.Round(float64(sumX) / float64(n))),
			Y: int(math.Round(float64(sumY) / float64(n))),
		})
	}
	return merged
}
