package detection

// ShapeType identifies one of the six shape classes the pipeline reports.
type ShapeType string

// The shape classes the classifier can assign.
const (
	ShapeCircle    ShapeType = "circle"
	ShapeTriangle  ShapeType = "triangle"
	ShapeRectangle ShapeType = "rectangle"
	ShapePentagon  ShapeType = "pentagon"
	ShapeStar      ShapeType = "star"
	ShapeLine      ShapeType = "line"
)

// Point represents a 2D pixel coordinate.
type Point struct {
	X int `json:"x"` // Horizontal position (0 = leftmost)
	Y int `json:"y"` // Vertical position (0 = topmost)
}

// Centroid is the arithmetic mean of a component's pixel coordinates.
// Unlike Point it is not snapped to the pixel grid.
type Centroid struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// BoundingBox is an axis-aligned pixel-extent rectangle.
//
// (X, Y) is the top-left member pixel; Width and Height are inclusive pixel
// extents, so a solid 40x40 square reports Width == Height == 40.
type BoundingBox struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// DetectedShape is one classified component. Produced at most once per
// component that survives filtering and matches a classification rule.
type DetectedShape struct {
	// Type is the assigned shape class.
	Type ShapeType `json:"type"`

	// Confidence indicates how well the component's features matched the
	// winning classification rule (0.0 to 1.0).
	Confidence float64 `json:"confidence"`

	// Bounds is the bounding box of the source component.
	Bounds BoundingBox `json:"bounding_box"`

	// Center is the mean of the component's pixel coordinates.
	Center Centroid `json:"center"`

	// Area is the component's pixel count, exactly.
	Area int `json:"area"`
}

// ShapesResult is the sole externally visible artifact of one pipeline run.
type ShapesResult struct {
	// Shapes lists detections in component discovery order
	// (top-to-bottom, left-to-right by seed pixel).
	Shapes []DetectedShape `json:"shapes"`

	// Count is the number of shapes detected.
	Count int `json:"count"`

	// ProcessingMS is the wall-clock duration of the pipeline run
	// in milliseconds.
	ProcessingMS float64 `json:"processing_time_ms"`

	// ImageWidth and ImageHeight echo the source image dimensions.
	ImageWidth  int `json:"image_width"`
	ImageHeight int `json:"image_height"`
}

// Options holds the pipeline's tunable thresholds.
//
// The zero value of any field is replaced by its default, so callers may set
// only the fields they care about. DefaultOptions returns the tuned defaults;
// changing SimplifyTolerance or the adjacency behavior is not supported, as
// the classifier's confidence constants were calibrated against them.
type Options struct {
	// Threshold is the binarization cutoff: a pixel whose R/G/B mean is
	// strictly below it is foreground. Default 128.
	Threshold uint8

	// MinArea is the minimum component pixel count; smaller components are
	// discarded as noise. Default 20.
	MinArea int

	// MaxAreaFraction is the maximum component area as a fraction of the
	// image area; larger components are treated as background or border
	// artifacts. Default 0.8.
	MaxAreaFraction float64

	// SimplifyTolerance is the Douglas-Peucker perpendicular-distance
	// tolerance in pixels. Default 2.0.
	SimplifyTolerance float64
}

// DefaultOptions returns the thresholds the pipeline was tuned with.
func DefaultOptions() Options {
	return Options{
		Threshold:         128,
		MinArea:           20,
		MaxAreaFraction:   0.8,
		SimplifyTolerance: 2.0,
	}
}

// withDefaults fills zero-valued fields with their defaults.
func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Threshold == 0 {
		o.Threshold = def.Threshold
	}
	if o.MinArea == 0 {
		o.MinArea = def.MinArea
	}
	if o.MaxAreaFraction == 0 {
		o.MaxAreaFraction = def.MaxAreaFraction
	}
	if o.SimplifyTolerance == 0 {
		o.SimplifyTolerance = def.SimplifyTolerance
	}
	return o
}
