// Package eval runs the detection pipeline against a labeled image corpus
// and reports accuracy.
//
// A corpus is described by a JSON manifest of cases, each naming an image
// file and the shapes expected in it (type, minimum confidence, optionally a
// center position with tolerance). The runner detects shapes in every
// non-skipped case, matches detections to expectations greedily, and
// produces a report with per-case mismatch reasons and aggregate confidence
// statistics.
//
// Cases are independent and run in parallel; the pipeline shares no state
// between invocations, so worker count is purely a throughput knob.
package eval
