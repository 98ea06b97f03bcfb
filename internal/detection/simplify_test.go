package detection

import "testing"

func TestSimplifyPolygon_CollinearCollapses(t *testing.T) {
	points := []Point{{0, 0}, {1, 0}, {2, 0}, {3, 0}, {10, 0}}
	got := simplifyPolygon(points, 2.0)
	if len(got) != 2 || got[0] != (Point{0, 0}) || got[1] != (Point{10, 0}) {
		t.Errorf("collinear run: got %v, want endpoints only", got)
	}
}

func TestSimplifyPolygon_KeepsSignificantDeviation(t *testing.T) {
	points := []Point{{0, 0}, {5, 8}, {10, 0}}
	got := simplifyPolygon(points, 2.0)
	if len(got) != 3 {
		t.Fatalf("deviation above tolerance dropped: got %v", got)
	}
	if got[1] != (Point{5, 8}) {
		t.Errorf("split point: got %+v, want (5,8)", got[1])
	}
}

func TestSimplifyPolygon_DropsSmallDeviation(t *testing.T) {
	points := []Point{{0, 0}, {5, 1}, {10, 0}}
	got := simplifyPolygon(points, 2.0)
	if len(got) != 2 {
		t.Errorf("deviation below tolerance kept: got %v", got)
	}
}

func TestSimplifyPolygon_ShortInputCopied(t *testing.T) {
	points := []Point{{3, 4}, {5, 6}}
	got := simplifyPolygon(points, 2.0)
	if len(got) != 2 || got[0] != points[0] || got[1] != points[1] {
		t.Fatalf("short input: got %v, want verbatim copy", got)
	}
	got[0] = Point{99, 99}
	if points[0] != (Point{3, 4}) {
		t.Error("result aliases the input slice")
	}
}

func TestSimplifyPolygon_ZigZag(t *testing.T) {
	points := []Point{{0, 0}, {10, 10}, {20, 0}, {30, 10}, {40, 0}}
	got := simplifyPolygon(points, 2.0)
	if len(got) != 5 {
		t.Errorf("zig-zag vertices lost: got %v", got)
	}
}

func TestPerpendicularDistance(t *testing.T) {
	if d := perpendicularDistance(Point{5, 3}, Point{0, 0}, Point{10, 0}); d != 3 {
		t.Errorf("horizontal chord: got %v, want 3", d)
	}
	// Degenerate chord falls back to point distance.
	if d := perpendicularDistance(Point{3, 4}, Point{0, 0}, Point{0, 0}); d != 5 {
		t.Errorf("degenerate chord: got %v, want 5", d)
	}
}
