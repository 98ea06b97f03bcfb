package eval

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/gonum/stat"
)

// Report aggregates a corpus run.
type Report struct {
	// RunID uniquely identifies this run for archiving and comparison.
	RunID string `json:"run_id"`

	// GeneratedAt is the wall-clock completion time.
	GeneratedAt time.Time `json:"generated_at"`

	// ElapsedMS is the total run duration in milliseconds.
	ElapsedMS float64 `json:"elapsed_ms"`

	// Passed, Failed, Skipped, Errored partition the cases.
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
	Errored int `json:"errored"`

	// MeanConfidence and StdDevConfidence summarize the confidences of
	// all matched expectations across the run. Both are 0 when nothing
	// matched; StdDevConfidence is 0 for a single match.
	MeanConfidence   float64 `json:"mean_confidence"`
	StdDevConfidence float64 `json:"stddev_confidence"`

	// Cases holds the per-case results in run order.
	Cases []CaseResult `json:"cases"`
}

// BuildReport assembles the aggregate report for one run.
func BuildReport(results []CaseResult, elapsed time.Duration) *Report {
	r := &Report{
		RunID:       uuid.NewString(),
		GeneratedAt: time.Now(),
		ElapsedMS:   float64(elapsed.Microseconds()) / 1000.0,
		Cases:       results,
	}

	var confidences []float64
	for _, c := range results {
		switch {
		case c.Skipped:
			r.Skipped++
		case c.Error != "":
			r.Errored++
		case c.Passed:
			r.Passed++
		default:
			r.Failed++
		}
		confidences = append(confidences, c.MatchedConfidences...)
	}

	if len(confidences) > 0 {
		r.MeanConfidence = stat.Mean(confidences, nil)
	}
	if len(confidences) > 1 {
		r.StdDevConfidence = stat.StdDev(confidences, nil)
	}
	return r
}

// Summary renders the report as human-readable text, one line per failed or
// errored case plus an aggregate footer.
func (r *Report) Summary() string {
	var b strings.Builder

	for _, c := range r.Cases {
		switch {
		case c.Skipped, c.Passed:
			continue
		case c.Error != "":
			fmt.Fprintf(&b, "ERROR %s: %s\n", c.Name, c.Error)
		default:
			fmt.Fprintf(&b, "FAIL  %s:\n", c.Name)
			for _, m := range c.Mismatches {
				fmt.Fprintf(&b, "      - %s\n", m)
			}
		}
	}

	fmt.Fprintf(&b, "run %s: %d passed, %d failed, %d errored, %d skipped in %.1fms\n",
		r.RunID, r.Passed, r.Failed, r.Errored, r.Skipped, r.ElapsedMS)
	if r.Passed+r.Failed > 0 {
		fmt.Fprintf(&b, "matched confidence: mean %.3f, stddev %.3f\n",
			r.MeanConfidence, r.StdDevConfidence)
	}
	return b.String()
}
