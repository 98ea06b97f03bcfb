package eval

import (
	"fmt"
	"math"
	"strings"
	"sync"

	"github.com/shapetools/shape-detect-mcp/internal/detection"
	"github.com/shapetools/shape-detect-mcp/internal/imaging"
)

// RunOptions controls a corpus run.
type RunOptions struct {
	// Filter, when non-empty, runs only cases whose name contains it.
	// Filtered-out cases do not appear in the report at all.
	Filter string

	// Threshold overrides the binarization threshold for every case.
	// Zero keeps the pipeline default.
	Threshold uint8

	// Jobs is the number of cases processed concurrently. Values < 1 are
	// treated as 1.
	Jobs int

	// Progress, when non-nil, is called once per completed case from the
	// worker goroutines; it must be safe for concurrent use.
	Progress func()
}

// CaseResult is the outcome of one case.
type CaseResult struct {
	// Name of the case.
	Name string `json:"name"`

	// Skipped reports whether the case was excluded via its skip flag.
	Skipped bool `json:"skipped,omitempty"`

	// Passed is true when every expectation matched and no extra shapes
	// were detected. Always false for skipped or errored cases.
	Passed bool `json:"passed"`

	// Error holds a load or pipeline failure, empty otherwise.
	Error string `json:"error,omitempty"`

	// Mismatches lists human-readable reasons the case failed.
	Mismatches []string `json:"mismatches,omitempty"`

	// Detected is the number of shapes the pipeline found.
	Detected int `json:"detected"`

	// MatchedConfidences are the confidences of successfully matched
	// expectations, feeding the report's aggregate statistics.
	MatchedConfidences []float64 `json:"matched_confidences,omitempty"`
}

// Run evaluates every case in the manifest and returns per-case results in
// manifest order.
//
// Each worker runs the full pipeline independently: images are decoded
// per case and no state is shared beyond the result slot, so results are
// deterministic regardless of Jobs.
func Run(m *Manifest, opts RunOptions) []CaseResult {
	cases := selectCases(m, opts.Filter)
	results := make([]CaseResult, len(cases))

	jobs := opts.Jobs
	if jobs < 1 {
		jobs = 1
	}

	var wg sync.WaitGroup
	work := make(chan int)
	for w := 0; w < jobs; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range work {
				results[i] = runCase(cases[i], opts.Threshold)
				if opts.Progress != nil {
					opts.Progress()
				}
			}
		}()
	}
	for i := range cases {
		work <- i
	}
	close(work)
	wg.Wait()

	return results
}

// selectCases applies the name filter, keeping manifest order.
func selectCases(m *Manifest, filter string) []Case {
	if filter == "" {
		return m.Cases
	}
	filter = strings.ToLower(filter)
	var out []Case
	for _, c := range m.Cases {
		if strings.Contains(strings.ToLower(c.Name), filter) {
			out = append(out, c)
		}
	}
	return out
}

// runCase executes the pipeline for one case and matches the detections
// against the expectations.
func runCase(c Case, threshold uint8) CaseResult {
	result := CaseResult{Name: c.Name}
	if c.Skip {
		result.Skipped = true
		return result
	}

	cache := imaging.NewImageCache()
	img, err := cache.Load(c.Image)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	buf := imaging.FromImage(img)

	opts := detection.DefaultOptions()
	if threshold != 0 {
		opts.Threshold = threshold
	}
	detected, err := detection.DetectShapes(buf.Pix, buf.Width, buf.Height, opts)
	if err != nil {
		result.Error = err.Error()
		return result
	}
	result.Detected = detected.Count

	result.Mismatches, result.MatchedConfidences = matchShapes(c.Expected, detected.Shapes)
	result.Passed = len(result.Mismatches) == 0
	return result
}

// matchShapes greedily pairs expectations with detections.
//
// Expectations are walked in manifest order; each takes the first unclaimed
// detection that satisfies its type, confidence, and center constraints.
// Unsatisfied expectations and unclaimed detections both count as
// mismatches, so a passing case detects exactly what it is labeled with.
func matchShapes(expected []Expected, shapes []detection.DetectedShape) (mismatches []string, confidences []float64) {
	claimed := make([]bool, len(shapes))

	for _, exp := range expected {
		found := false
		for i, shape := range shapes {
			if claimed[i] || !satisfies(exp, shape) {
				continue
			}
			claimed[i] = true
			confidences = append(confidences, shape.Confidence)
			found = true
			break
		}
		if !found {
			mismatches = append(mismatches, describeMiss(exp))
		}
	}

	for i, shape := range shapes {
		if !claimed[i] {
			mismatches = append(mismatches,
				fmt.Sprintf("unexpected %s (confidence %.2f) at (%.1f, %.1f)",
					shape.Type, shape.Confidence, shape.Center.X, shape.Center.Y))
		}
	}
	return mismatches, confidences
}

func satisfies(exp Expected, shape detection.DetectedShape) bool {
	if shape.Type != exp.Type {
		return false
	}
	if shape.Confidence < exp.MinConfidence {
		return false
	}
	if exp.Center != nil {
		dx := shape.Center.X - exp.Center.X
		dy := shape.Center.Y - exp.Center.Y
		if math.Hypot(dx, dy) > exp.CenterTolerance {
			return false
		}
	}
	return true
}

func describeMiss(exp Expected) string {
	msg := fmt.Sprintf("no %s with confidence >= %.2f", exp.Type, exp.MinConfidence)
	if exp.Center != nil {
		msg += fmt.Sprintf(" within %.1fpx of (%.1f, %.1f)",
			exp.CenterTolerance, exp.Center.X, exp.Center.Y)
	}
	return msg
}
