package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format, color depth, and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_dimensions",
			Description: "Get the width and height of an image file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
				},
				"required": []string{"path"},
			},
		},

		// Shape Detection
		{
			Name:        "image_detect_shapes",
			Description: "Detect geometric shapes (circles, triangles, rectangles, pentagons, stars, lines) in an image. Dark regions on a light background are classified with per-shape confidence, bounding box, centroid, and pixel area.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Binarization threshold (1-255). Pixels with mean RGB below this are foreground. Default 128",
						"default":     128,
					},
					"min_area": map[string]interface{}{
						"type":        "integer",
						"description": "Minimum component area in pixels; smaller components are discarded as noise. Default 20",
						"default":     20,
					},
					"denoise_sigma": map[string]interface{}{
						"type":        "number",
						"description": "Optional Gaussian blur sigma applied before thresholding (e.g., 1.5 for scanned images). Default 0 (off)",
						"default":     0,
					},
					"include_fill": map[string]interface{}{
						"type":        "boolean",
						"description": "Annotate each detected shape with the fill color sampled at its centroid. Default false",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_binarize_preview",
			Description: "Render the binary foreground mask produced by a given threshold as a base64 PNG. Use this to tune the threshold before running shape detection.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"threshold": map[string]interface{}{
						"type":        "integer",
						"description": "Binarization threshold (1-255). Default 128",
						"default":     128,
					},
					"denoise_sigma": map[string]interface{}{
						"type":        "number",
						"description": "Optional Gaussian blur sigma applied before thresholding. Default 0 (off)",
						"default":     0,
					},
				},
				"required": []string{"path"},
			},
		},

		// Region Operations
		{
			Name:        "image_crop",
			Description: "Crop a rectangular region from an image and return it as base64-encoded PNG. Use this to zoom into areas that need detailed examination.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x1": map[string]interface{}{
						"type":        "integer",
						"description": "Left edge X coordinate (0-based)",
					},
					"y1": map[string]interface{}{
						"type":        "integer",
						"description": "Top edge Y coordinate (0-based)",
					},
					"x2": map[string]interface{}{
						"type":        "integer",
						"description": "Right edge X coordinate (exclusive)",
					},
					"y2": map[string]interface{}{
						"type":        "integer",
						"description": "Bottom edge Y coordinate (exclusive)",
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor (e.g., 2.0 to double size). Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "x1", "y1", "x2", "y2"},
			},
		},
		{
			Name:        "image_crop_shape",
			Description: "Crop a detected shape's bounding box (as returned by image_detect_shapes) with optional padding and scaling.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file",
					},
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "Bounding box left edge X coordinate",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Bounding box top edge Y coordinate",
					},
					"width": map[string]interface{}{
						"type":        "integer",
						"description": "Bounding box width in pixels",
					},
					"height": map[string]interface{}{
						"type":        "integer",
						"description": "Bounding box height in pixels",
					},
					"padding": map[string]interface{}{
						"type":        "integer",
						"description": "Context pixels added on every side, clamped to the image. Default 10",
						"default":     10,
					},
					"scale": map[string]interface{}{
						"type":        "number",
						"description": "Optional scale factor. Default 1.0",
						"default":     1.0,
					},
				},
				"required": []string{"path", "x", "y", "width", "height"},
			},
		},
	}
}
