package detection

// component is a maximal 4-connected group of foreground pixels.
//
// Membership tests go through a shared label array indexed y*width+x rather
// than a per-component set, so contains is O(1) with no hashing.
type component struct {
	id     int32
	labels []int32
	width  int
	height int

	points                 []Point
	minX, minY, maxX, maxY int
}

// contains reports whether (x, y) is a member pixel. Coordinates outside the
// image are non-members, which makes the perimeter and contour tests treat
// the image border as background.
func (c *component) contains(x, y int) bool {
	if x < 0 || y < 0 || x >= c.width || y >= c.height {
		return false
	}
	return c.labels[y*c.width+x] == c.id
}

// centroid is the plain mean of all member pixel coordinates.
func (c *component) centroid() Centroid {
	var sumX, sumY float64
	for _, p := range c.points {
		sumX += float64(p.X)
		sumY += float64(p.Y)
	}
	n := float64(len(c.points))
	return Centroid{X: sumX / n, Y: sumY / n}
}

// perimeter counts member pixels with at least one non-member 4-neighbor.
// This 4-connected count feeds the circularity formula only; contour
// extraction for tracing uses the 8-neighborhood instead.
func (c *component) perimeter() int {
	n := 0
	for _, p := range c.points {
		if !c.contains(p.X+1, p.Y) || !c.contains(p.X-1, p.Y) ||
			!c.contains(p.X, p.Y+1) || !c.contains(p.X, p.Y-1) {
			n++
		}
	}
	return n
}

// bounds returns the component's bounding box as inclusive pixel extents.
func (c *component) bounds() BoundingBox {
	return BoundingBox{
		X:      c.minX,
		Y:      c.minY,
		Width:  c.maxX - c.minX + 1,
		Height: c.maxY - c.minY + 1,
	}
}

// findComponents groups foreground mask pixels into 4-connected components.
//
// Pixels are scanned in raster order; each unvisited foreground pixel seeds a
// breadth-first flood fill. Every foreground pixel is visited exactly once,
// and components are returned in the order their seed pixel is encountered
// (top-to-bottom, left-to-right). An empty mask yields no components.
func findComponents(mask []uint8, width, height int) []*component {
	labels := make([]int32, width*height)
	for i := range labels {
		labels[i] = -1
	}

	var comps []*component
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			idx := y*width + x
			if mask[idx] == 0 || labels[idx] >= 0 {
				continue
			}
			comps = append(comps, fillComponent(mask, labels, width, height, x, y, int32(len(comps))))
		}
	}
	return comps
}

// fillComponent runs a BFS flood fill over 4-connected foreground neighbors
// starting at the seed, labeling pixels and collecting the reachable set.
func fillComponent(mask []uint8, labels []int32, width, height, seedX, seedY int, id int32) *component {
	c := &component{
		id:     id,
		labels: labels,
		width:  width,
		height: height,
		minX:   seedX,
		minY:   seedY,
		maxX:   seedX,
		maxY:   seedY,
	}

	labels[seedY*width+seedX] = id
	queue := []Point{{X: seedX, Y: seedY}}

	for head := 0; head < len(queue); head++ {
		p := queue[head]
		c.points = append(c.points, p)
		if p.X < c.minX {
			c.minX = p.X
		}
		if p.X > c.maxX {
			c.maxX = p.X
		}
		if p.Y < c.minY {
			c.minY = p.Y
		}
		if p.Y > c.maxY {
			c.maxY = p.Y
		}

		// 4-connected neighbors only; diagonal contact does not join
		// components.
		for _, n := range [4]Point{
			{X: p.X + 1, Y: p.Y},
			{X: p.X - 1, Y: p.Y},
			{X: p.X, Y: p.Y + 1},
			{X: p.X, Y: p.Y - 1},
		} {
			if n.X < 0 || n.Y < 0 || n.X >= width || n.Y >= height {
				continue
			}
			nidx := n.Y*width + n.X
			if mask[nidx] == 1 && labels[nidx] < 0 {
				labels[nidx] = id
				queue = append(queue, n)
			}
		}
	}
	return c
}
