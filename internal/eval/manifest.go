package eval

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shapetools/shape-detect-mcp/internal/detection"
)

// Center is an expected centroid position in pixel coordinates.
type Center struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Expected describes one shape a case's image is labeled with.
type Expected struct {
	// Type is the expected shape classification.
	Type detection.ShapeType `json:"type"`

	// MinConfidence is the lowest acceptable confidence for the match.
	// Zero accepts any confidence.
	MinConfidence float64 `json:"min_confidence,omitempty"`

	// Center, when present, requires the detected centroid to lie within
	// CenterTolerance pixels (Euclidean) of this position.
	Center *Center `json:"center,omitempty"`

	// CenterTolerance is the allowed centroid distance in pixels. Ignored
	// when Center is nil; zero with a Center set means exact match.
	CenterTolerance float64 `json:"center_tolerance,omitempty"`
}

// Case is one labeled image in the corpus.
type Case struct {
	// Name identifies the case in reports and filters.
	Name string `json:"name"`

	// Image is the image file path, relative paths resolving against the
	// manifest's directory.
	Image string `json:"image"`

	// Skip excludes the case from the run while keeping it in the
	// manifest; skipped cases are counted separately in the report.
	Skip bool `json:"skip,omitempty"`

	// Expected lists every shape the image contains. An empty list means
	// the image must produce no detections.
	Expected []Expected `json:"expected"`
}

// Manifest is a labeled evaluation corpus.
type Manifest struct {
	Cases []Case `json:"cases"`
}

// LoadManifest reads and validates a manifest file.
//
// Relative image paths are rewritten to be relative to the manifest's
// directory, so a corpus can be checked out and run from anywhere.
// Validation rejects empty case names, duplicate names, and missing image
// paths; it does not check that the image files exist (the runner reports
// that per case).
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if len(m.Cases) == 0 {
		return nil, fmt.Errorf("manifest contains no cases")
	}

	base := filepath.Dir(path)
	seen := make(map[string]bool, len(m.Cases))
	for i := range m.Cases {
		c := &m.Cases[i]
		if c.Name == "" {
			return nil, fmt.Errorf("case %d has no name", i)
		}
		if seen[c.Name] {
			return nil, fmt.Errorf("duplicate case name %q", c.Name)
		}
		seen[c.Name] = true
		if c.Image == "" {
			return nil, fmt.Errorf("case %q has no image path", c.Name)
		}
		if !filepath.IsAbs(c.Image) {
			c.Image = filepath.Join(base, c.Image)
		}
	}
	return &m, nil
}
