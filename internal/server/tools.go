package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathSchema(description string) map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": description,
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Basic Image Information
		{
			Name:        "image_load",
			Description: "Load an image file and return its dimensions, format and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathSchema("Absolute path to the image file"),
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
					"path": pathSchema("Absolute path to the image file"),
				},
				"required": []string{"path"},
			},
		},

		// Edge Detection
		{
			Name: "image_sobel_edges",
			Description: "Run Sobel edge detection and quantize the edge strength into black, grey and white. " +
				"The result is 2 pixels smaller than the input in each direction. Writes to output_path if given, " +
				"otherwise returns the edge map as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":        pathSchema("Absolute path to the source image (at least 3x3 pixels)"),
					"output_path": pathSchema("Optional destination file; the format follows the extension (jpg, png, gif, tif, bmp)"),
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "image_sobel_batch",
			Description: "Run Sobel edge detection on several images concurrently. Each job succeeds or fails on its own.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"jobs": map[string]interface{}{
						"type":        "array",
						"description": "Images to process",
						"items": map[string]interface{}{
							"type": "object",
							"properties": map[string]interface{}{
								"input":  pathSchema("Absolute path to the source image"),
								"output": pathSchema("Optional destination file; defaults to <input>_edges.jpg"),
							},
							"required": []string{"input"},
						},
					},
				},
				"required": []string{"jobs"},
			},
		},
	}
}

func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
