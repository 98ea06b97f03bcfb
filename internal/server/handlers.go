package server

import (
	"encoding/json"
	"fmt"
	"image"
	"math"

	"github.com/shapetools/shape-detect-mcp/internal/detection"
	"github.com/shapetools/shape-detect-mcp/internal/imaging"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "image_detect_shapes").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// Each tool handler:
//  1. Unmarshals arguments from JSON
//  2. Applies default values for optional parameters
//  3. Loads images from cache as needed
//  4. Calls the appropriate imaging/detection function
//  5. Returns the result or error
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Basic Image Information
	case "image_load":
		return s.handleImageLoad(args)
	case "image_dimensions":
		return s.handleImageDimensions(args)

	// Shape Detection
	case "image_detect_shapes":
		return s.handleImageDetectShapes(args)
	case "image_binarize_preview":
		return s.handleImageBinarizePreview(args)

	// Region Operations
	case "image_crop":
		return s.handleImageCrop(args)
	case "image_crop_shape":
		return s.handleImageCropShape(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Basic Image Information Handlers ===

type imageLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleImageLoad(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.LoadImageInfo(s.cache, a.Path)
}

func (s *Server) handleImageDimensions(args json.RawMessage) (interface{}, error) {
	var a imageLoadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	return imaging.GetDimensions(s.cache, a.Path)
}

// === Shape Detection Handlers ===

type imageDetectShapesArgs struct {
	Path         string  `json:"path"`
	Threshold    int     `json:"threshold"`
	MinArea      int     `json:"min_area"`
	DenoiseSigma float64 `json:"denoise_sigma"`
	IncludeFill  bool    `json:"include_fill"`
}

// annotatedShape extends a detection with the fill color sampled at its
// centroid, present only when include_fill was requested.
type annotatedShape struct {
	detection.DetectedShape
	Fill *imaging.FillColor `json:"fill,omitempty"`
}

// annotatedShapesResult mirrors detection.ShapesResult with fill annotations.
type annotatedShapesResult struct {
	Shapes       []annotatedShape `json:"shapes"`
	Count        int              `json:"count"`
	ProcessingMS float64          `json:"processing_time_ms"`
	ImageWidth   int              `json:"image_width"`
	ImageHeight  int              `json:"image_height"`
}

func (s *Server) handleImageDetectShapes(args json.RawMessage) (interface{}, error) {
	var a imageDetectShapesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Threshold < 0 || a.Threshold > 255 {
		return nil, fmt.Errorf("threshold %d out of range (1-255)", a.Threshold)
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	img = imaging.Denoise(img, a.DenoiseSigma)
	buf := imaging.FromImage(img)

	opts := detection.DefaultOptions()
	if a.Threshold != 0 {
		opts.Threshold = uint8(a.Threshold)
	}
	if a.MinArea != 0 {
		opts.MinArea = a.MinArea
	}

	result, err := detection.DetectShapes(buf.Pix, buf.Width, buf.Height, opts)
	if err != nil {
		return nil, err
	}
	if !a.IncludeFill {
		return result, nil
	}
	return s.annotateFills(img, result)
}

// annotateFills samples the fill color at each detected shape's centroid.
//
// Centroids of solid shapes land inside the shape; hollow or strongly
// concave outlines may sample background instead, which is reported as-is.
func (s *Server) annotateFills(img image.Image, result *detection.ShapesResult) (*annotatedShapesResult, error) {
	shapes := make([]annotatedShape, len(result.Shapes))
	for i, shape := range result.Shapes {
		x := int(math.Round(shape.Center.X))
		y := int(math.Round(shape.Center.Y))
		fill, err := imaging.SampleFillColor(img, x, y)
		if err != nil {
			return nil, fmt.Errorf("failed to sample fill for shape %d: %w", i, err)
		}
		shapes[i] = annotatedShape{DetectedShape: shape, Fill: fill}
	}
	return &annotatedShapesResult{
		Shapes:       shapes,
		Count:        result.Count,
		ProcessingMS: result.ProcessingMS,
		ImageWidth:   result.ImageWidth,
		ImageHeight:  result.ImageHeight,
	}, nil
}

type imageBinarizePreviewArgs struct {
	Path         string  `json:"path"`
	Threshold    int     `json:"threshold"`
	DenoiseSigma float64 `json:"denoise_sigma"`
}

func (s *Server) handleImageBinarizePreview(args json.RawMessage) (interface{}, error) {
	var a imageBinarizePreviewArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Threshold < 0 || a.Threshold > 255 {
		return nil, fmt.Errorf("threshold %d out of range (1-255)", a.Threshold)
	}
	if a.Threshold == 0 {
		a.Threshold = 128
	}

	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	img = imaging.Denoise(img, a.DenoiseSigma)
	buf := imaging.FromImage(img)

	mask := detection.Binarize(buf.Pix, buf.Width, buf.Height, uint8(a.Threshold))
	return imaging.MaskPreview(mask, buf.Width, buf.Height)
}

// === Region Operation Handlers ===

type imageCropArgs struct {
	Path  string  `json:"path"`
	X1    int     `json:"x1"`
	Y1    int     `json:"y1"`
	X2    int     `json:"x2"`
	Y2    int     `json:"y2"`
	Scale float64 `json:"scale"`
}

func (s *Server) handleImageCrop(args json.RawMessage) (interface{}, error) {
	var a imageCropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.Crop(img, a.X1, a.Y1, a.X2, a.Y2, a.Scale)
}

type imageCropShapeArgs struct {
	Path    string  `json:"path"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
	Width   int     `json:"width"`
	Height  int     `json:"height"`
	Padding int     `json:"padding"`
	Scale   float64 `json:"scale"`
}

func (s *Server) handleImageCropShape(args json.RawMessage) (interface{}, error) {
	var a imageCropShapeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Padding == 0 {
		a.Padding = 10
	}
	if a.Scale == 0 {
		a.Scale = 1.0
	}
	img, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return imaging.CropBounds(img, a.X, a.Y, a.Width, a.Height, a.Padding, a.Scale)
}
