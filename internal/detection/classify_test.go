package detection

import "testing"

func TestClassify(t *testing.T) {
	cases := []struct {
		name       string
		f          featureVector
		wantShape  ShapeType
		wantConf   float64
		wantOK     bool
	}{
		{
			name:      "elongated sparse line",
			f:         featureVector{aspectRatio: 10, solidity: 0.3, circularity: 0.2, convex: true, vertices: 4},
			wantShape: ShapeLine, wantConf: 0.95, wantOK: true,
		},
		{
			name:      "vertical line",
			f:         featureVector{aspectRatio: 0.1, solidity: 0.4, circularity: 0.2, convex: true, vertices: 3},
			wantShape: ShapeLine, wantConf: 0.95, wantOK: true,
		},
		{
			name:      "concave many-cornered star",
			f:         featureVector{aspectRatio: 1.0, solidity: 0.5, circularity: 0.4, convex: false, vertices: 10},
			wantShape: ShapeStar, wantConf: 0.85, wantOK: true,
		},
		{
			name:      "three corners",
			f:         featureVector{aspectRatio: 1.0, solidity: 0.5, circularity: 0.6, convex: true, vertices: 3},
			wantShape: ShapeTriangle, wantConf: 0.92, wantOK: true,
		},
		{
			name:      "four corners solid",
			f:         featureVector{aspectRatio: 1.5, solidity: 0.9, circularity: 0.78, convex: true, vertices: 4},
			wantShape: ShapeRectangle, wantConf: 0.95, wantOK: true,
		},
		{
			name:      "true pentagon",
			f:         featureVector{aspectRatio: 1.0, solidity: 0.72, circularity: 0.75, convex: true, vertices: 5},
			wantShape: ShapePentagon, wantConf: 0.88, wantOK: true,
		},
		{
			name:      "five corners low solidity",
			f:         featureVector{aspectRatio: 1.0, solidity: 0.5, circularity: 0.5, convex: true, vertices: 5},
			wantShape: ShapeRectangle, wantConf: 0.85, wantOK: true,
		},
		{
			name:      "five corners elongated",
			f:         featureVector{aspectRatio: 1.5, solidity: 0.8, circularity: 0.6, convex: true, vertices: 5},
			wantShape: ShapeRectangle, wantConf: 0.85, wantOK: true,
		},
		{
			name:      "five corners default",
			f:         featureVector{aspectRatio: 1.0, solidity: 0.62, circularity: 0.72, convex: true, vertices: 5},
			wantShape: ShapeRectangle, wantConf: 0.75, wantOK: true,
		},
		{
			name:      "pentagon with split vertex",
			f:         featureVector{aspectRatio: 1.0, solidity: 0.7, circularity: 0.7, convex: true, vertices: 6},
			wantShape: ShapePentagon, wantConf: 0.80, wantOK: true,
		},
		{
			name:      "cornerless circle",
			f:         featureVector{aspectRatio: 1.0, solidity: 0.8, circularity: 0.9, convex: true, vertices: 0},
			wantShape: ShapeCircle, wantConf: 0.90, wantOK: true,
		},
		{
			name:      "round circle outside the tight aspect band",
			f:         featureVector{aspectRatio: 0.78, solidity: 0.8, circularity: 0.9, convex: true, vertices: 2},
			wantShape: ShapeCircle, wantConf: 0.88, wantOK: true,
		},
		{
			name:      "convex elongated fallback",
			f:         featureVector{aspectRatio: 1.5, solidity: 0.75, circularity: 0.6, convex: true, vertices: 7},
			wantShape: ShapeRectangle, wantConf: 0.75, wantOK: true,
		},
		{
			name:      "convex round square-ish fallback",
			f:         featureVector{aspectRatio: 1.0, solidity: 0.75, circularity: 0.72, convex: true, vertices: 7},
			wantShape: ShapePentagon, wantConf: 0.72, wantOK: true,
		},
		{
			name:      "convex square-ish fallback",
			f:         featureVector{aspectRatio: 1.0, solidity: 0.75, circularity: 0.6, convex: true, vertices: 7},
			wantShape: ShapeRectangle, wantConf: 0.70, wantOK: true,
		},
		{
			name:      "convex solid last resort",
			f:         featureVector{aspectRatio: 1.2, solidity: 0.75, circularity: 0.6, convex: true, vertices: 7},
			wantShape: ShapeRectangle, wantConf: 0.65, wantOK: true,
		},
		{
			name:   "no rule matches",
			f:      featureVector{aspectRatio: 1.0, solidity: 0.5, circularity: 0.75, convex: false, vertices: 4},
			wantOK: false,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			shape, conf, ok := classify(tc.f)
			if ok != tc.wantOK {
				t.Fatalf("ok: got %v, want %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if shape != tc.wantShape || conf != tc.wantConf {
				t.Errorf("got (%s, %v), want (%s, %v)", shape, conf, tc.wantShape, tc.wantConf)
			}
		})
	}
}

func TestClassify_OrderMatters(t *testing.T) {
	// An elongated sparse component with 4 corners satisfies both the line
	// rule and the rectangle rule; the line rule must win by position.
	f := featureVector{aspectRatio: 9, solidity: 0.55, circularity: 0.3, convex: true, vertices: 4}
	shape, conf, ok := classify(f)
	if !ok || shape != ShapeLine || conf != 0.95 {
		t.Errorf("got (%s, %v, %v), want line 0.95", shape, conf, ok)
	}
}
