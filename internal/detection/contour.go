package detection

// mooreDirs is the 8-neighborhood in clockwise order (image coordinates,
// Y down): E, SE, S, SW, W, NW, N, NE.
var mooreDirs = [8]Point{
	{1, 0}, {1, 1}, {0, 1}, {-1, 1},
	{-1, 0}, {-1, -1}, {0, -1}, {1, -1},
}

// contourSet is a component's boundary pixels with an O(1) membership test,
// keyed by y*width+x.
type contourSet struct {
	points        []Point
	member        map[int]struct{}
	width, height int
}

// contains reports whether (x, y) is a contour pixel. Off-image coordinates
// are non-members; without the bounds check the key arithmetic would wrap
// onto a neighboring row for components flush against the left or right edge.
func (s *contourSet) contains(x, y int) bool {
	if x < 0 || y < 0 || x >= s.width || y >= s.height {
		return false
	}
	_, ok := s.member[y*s.width+x]
	return ok
}

// extractContour selects the component pixels that touch a non-member
// 8-neighbor or the image border. Points are collected in the component's
// fill order; ordering is the tracer's job.
func extractContour(c *component) *contourSet {
	s := &contourSet{
		member: make(map[int]struct{}),
		width:  c.width,
		height: c.height,
	}
	for _, p := range c.points {
		boundary := false
		for _, d := range mooreDirs {
			if !c.contains(p.X+d.X, p.Y+d.Y) {
				boundary = true
				break
			}
		}
		if boundary {
			s.points = append(s.points, p)
			s.member[p.Y*s.width+p.X] = struct{}{}
		}
	}
	return s
}

// traceContour orders a contour point set into a cyclic sequence using
// Moore-neighbor boundary following.
//
// Tracing starts at the topmost-leftmost contour point (minimum Y, then
// minimum X) with the backtrack reference one step to its left. At each step
// the 8 neighbor directions are scanned clockwise starting just after the
// direction of the backtrack point; the first neighbor in the contour set
// becomes the next point, and the backtrack reference moves to the current
// point before advancing.
//
// The loop ends when the traversal returns to the start point. If no contour
// neighbor is found (isolated pixel, dead-end) the partial open path traced
// so far is returned rather than an error. A step cap bounds pathological
// inputs; every consecutive pair in the output is 8-adjacent.
func traceContour(s *contourSet) []Point {
	if len(s.points) == 0 {
		return nil
	}

	start := s.points[0]
	for _, p := range s.points[1:] {
		if p.Y < start.Y || (p.Y == start.Y && p.X < start.X) {
			start = p
		}
	}

	ordered := []Point{start}
	cur := start
	back := Point{X: start.X - 1, Y: start.Y}

	maxSteps := 4*len(s.points) + 8
	for step := 0; step < maxSteps; step++ {
		next, found := nextContourPoint(s, cur, back)
		if !found {
			break
		}
		back = cur
		cur = next
		if cur == start {
			break
		}
		ordered = append(ordered, cur)
	}
	return ordered
}

// nextContourPoint scans the Moore neighborhood of cur clockwise, starting
// just after the direction pointing at the backtrack point, and returns the
// first neighbor that belongs to the contour set.
func nextContourPoint(s *contourSet, cur, back Point) (Point, bool) {
	startDir := (dirIndex(back.X-cur.X, back.Y-cur.Y) + 1) % 8
	for k := 0; k < 8; k++ {
		d := mooreDirs[(startDir+k)%8]
		nx, ny := cur.X+d.X, cur.Y+d.Y
		if s.contains(nx, ny) {
			return Point{X: nx, Y: ny}, true
		}
	}
	return Point{}, false
}

// dirIndex maps a unit offset to its position in mooreDirs.
func dirIndex(dx, dy int) int {
	for i, d := range mooreDirs {
		if d.X == dx && d.Y == dy {
			return i
		}
	}
	return 0
}
