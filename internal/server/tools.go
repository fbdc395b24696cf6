package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func pathProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path to the image file",
	}
}

func outputProperty() map[string]interface{} {
	return map[string]interface{}{
		"type":        "string",
		"description": "Absolute path of the PNG file to write",
	}
}

func boxProperty(side string) map[string]interface{} {
	return map[string]interface{}{
		"type": "integer",
		"description": "Bounding box " + side + " in pixels. The longer source side is scaled to its box side " +
			"and the other side follows the aspect ratio. Defaults to the other box side when omitted.",
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		{
			Name:        "raster_load",
			Description: "Decode an image file and return its dimensions, container format, pixel format and file size.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
				},
				"required": []string{"path"},
			},
		},
		{
			Name: "raster_pixel",
			Description: "Read the pixel at (x, y). Returns RGB, gray, hex and HSL. Coordinates outside the image " +
				"return in_bounds=false with gray=255 instead of an error.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty(),
					"x": map[string]interface{}{
						"type":        "integer",
						"description": "X coordinate (0-based, 0 = leftmost)",
					},
					"y": map[string]interface{}{
						"type":        "integer",
						"description": "Y coordinate (0-based, 0 = topmost)",
					},
					"grayscale": map[string]interface{}{
						"type":        "boolean",
						"description": "Read from the BT.601 grayscale version of the image. Default false",
						"default":     false,
					},
				},
				"required": []string{"path", "x", "y"},
			},
		},
		{
			Name:        "raster_grayscale",
			Description: "Convert an image to 8-bit grayscale using ITU-R BT.601 luma weights and write it as PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"output": outputProperty(),
				},
				"required": []string{"path", "output"},
			},
		},
		{
			Name:        "raster_resize",
			Description: "Resize an image with bilinear interpolation, preserving aspect ratio, and write it as PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"output": outputProperty(),
					"width":  boxProperty("width"),
					"height": boxProperty("height"),
				},
				"required": []string{"path", "output"},
			},
		},
		{
			Name:        "raster_convert",
			Description: "Optionally convert to grayscale, then optionally resize, and write the result as PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path":   pathProperty(),
					"output": outputProperty(),
					"grayscale": map[string]interface{}{
						"type":        "boolean",
						"description": "Convert to grayscale before resizing. Default false",
						"default":     false,
					},
					"width":  boxProperty("width"),
					"height": boxProperty("height"),
				},
				"required": []string{"path", "output"},
			},
		},
	}
}
