package detection

import (
	"math"
	"testing"
)

func TestDetectCorners_ShortContourUnchanged(t *testing.T) {
	contour := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 1}, {3, 2}, {2, 3}, {1, 3}, {0, 2}, {0, 1}}
	got := detectCorners(contour, 12)
	if len(got) != len(contour) {
		t.Fatalf("short contour must pass through: got %d points, want %d", len(got), len(contour))
	}
	for i := range contour {
		if got[i] != contour[i] {
			t.Errorf("point %d: got %+v, want %+v", i, got[i], contour[i])
		}
	}
}

func TestDetectCorners_StraightEdgeProducesNone(t *testing.T) {
	// A long horizontal run folded back on itself has turn angles of 0 or
	// pi along the straight stretches; only the two fold points bend.
	var contour []Point
	for x := 0; x < 30; x++ {
		contour = append(contour, Point{x, 0})
	}
	for x := 29; x >= 0; x-- {
		contour = append(contour, Point{x, 1})
	}
	got := detectCorners(contour, 60)
	// window = clamp(round(sqrt(60)*0.1), 2, 10) = 2; points far from the
	// folds see collinear windows (angle pi) and are rejected.
	for _, p := range got {
		if p.X > 4 && p.X < 25 {
			t.Errorf("mid-edge point %+v flagged as corner", p)
		}
	}
}

func TestSquareCornerPipeline(t *testing.T) {
	pix := newCanvas(100, 100)
	fillRect(pix, 100, 30, 30, 69, 69)
	mask := Binarize(pix, 100, 100, 128)
	comps := findComponents(mask, 100, 100)
	if len(comps) != 1 {
		t.Fatalf("expected 1 component, got %d", len(comps))
	}
	c := comps[0]

	ordered := traceContour(extractContour(c))
	candidates := detectCorners(ordered, len(c.points))
	corners := mergeCorners(candidates, len(c.points))

	if len(corners) != 4 {
		t.Fatalf("merged corners: got %d, want 4 (%v)", len(corners), corners)
	}
	for _, want := range []Point{{30, 30}, {69, 30}, {69, 69}, {30, 69}} {
		found := false
		for _, got := range corners {
			if math.Abs(float64(got.X-want.X)) <= 2 && math.Abs(float64(got.Y-want.Y)) <= 2 {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("no merged corner near %+v in %v", want, corners)
		}
	}
}

func TestMergeCorners_ClustersCollapse(t *testing.T) {
	// Area 100 gives mergeDist max(5, 0.6) = 5.
	candidates := []Point{{0, 0}, {1, 1}, {2, 0}, {100, 100}}
	got := mergeCorners(candidates, 100)
	if len(got) != 2 {
		t.Fatalf("merged count: got %d, want 2 (%v)", len(got), got)
	}
	if got[0] != (Point{1, 0}) {
		t.Errorf("cluster mean: got %+v, want (1,0)", got[0])
	}
	if got[1] != (Point{100, 100}) {
		t.Errorf("lone candidate moved: got %+v", got[1])
	}
}

func TestMergeCorners_SinglePassIsGreedy(t *testing.T) {
	// The second point is within range of the first, the third only within
	// range of the second. Greedy clustering from the first point absorbs
	// the second, leaving the third as its own corner.
	candidates := []Point{{0, 0}, {4, 0}, {8, 0}}
	got := mergeCorners(candidates, 100)
	if len(got) != 2 {
		t.Fatalf("merged count: got %d, want 2 (%v)", len(got), got)
	}
	if got[0] != (Point{2, 0}) || got[1] != (Point{8, 0}) {
		t.Errorf("clusters: got %v, want [(2,0) (8,0)]", got)
	}
}

func TestMergeCorners_Empty(t *testing.T) {
	if got := mergeCorners(nil, 500); len(got) != 0 {
		t.Errorf("empty input: got %v, want empty", got)
	}
}
