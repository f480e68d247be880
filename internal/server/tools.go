package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

func noArgsSchema() map[string]interface{} {
	return map[string]interface{}{
		"type":       "object",
		"properties": map[string]interface{}{},
	}
}

func idSchema(desc string) map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"id": map[string]interface{}{
				"type":        "string",
				"description": desc,
			},
		},
		"required": []string{"id"},
	}
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Session lifecycle
		{
			Name:        "redact_load_image",
			Description: "Load an image file and start an image redaction session. Any existing session and its marks are discarded.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the image file (PNG, JPEG, or GIF)",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "redact_load_text",
			Description: "Load a text file and start a text redaction session. Range offsets are UTF-16 code units into the document.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": map[string]interface{}{
						"type":        "string",
						"description": "Absolute path to the text file",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "redact_reset",
			Description: "Discard the active session, its marks, and all cached artifacts.",
			InputSchema: noArgsSchema(),
		},

		// Pointer events
		{
			Name:        "redact_pointer_down",
			Description: "Start drawing a redaction rectangle at a display-pixel position. Starting a new gesture discards any pending one.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "number",
						"description": "Pointer X in display pixels, relative to the image surface origin",
					},
					"y": map[string]interface{}{
						"type":        "number",
						"description": "Pointer Y in display pixels",
					},
					"display_width": map[string]interface{}{
						"type":        "number",
						"description": "Current rendered width of the image surface",
					},
					"display_height": map[string]interface{}{
						"type":        "number",
						"description": "Current rendered height of the image surface",
					},
				},
				"required": []string{"x", "y", "display_width", "display_height"},
			},
		},
		{
			Name:        "redact_pointer_move",
			Description: "Update the in-progress rectangle. Positions are clamped to the surface; dragging up or left is fine.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"x": map[string]interface{}{
						"type":        "number",
						"description": "Pointer X in display pixels",
					},
					"y": map[string]interface{}{
						"type":        "number",
						"description": "Pointer Y in display pixels",
					},
				},
				"required": []string{"x", "y"},
			},
		},
		{
			Name:        "redact_pointer_up",
			Description: "Finish the drawing gesture. Rectangles at or below 5 display pixels on either axis are treated as accidental clicks and dropped. Use this for cancelled gestures too (pointer leaving the surface).",
			InputSchema: noArgsSchema(),
		},

		// Region marks
		{
			Name:        "redact_region_list",
			Description: "List committed redaction rectangles in insertion order, in display coordinates.",
			InputSchema: noArgsSchema(),
		},
		{
			Name:        "redact_region_remove",
			Description: "Remove one redaction rectangle. Removing an unknown id is a no-op.",
			InputSchema: idSchema("Identifier of the rectangle to remove"),
		},
		{
			Name:        "redact_region_clear",
			Description: "Remove all redaction rectangles.",
			InputSchema: noArgsSchema(),
		},

		// Selection and ranges
		{
			Name:        "redact_selection_changed",
			Description: "Record the active text selection's offsets (UTF-16 code units). Only offsets cross this boundary, never the selected text.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"start": map[string]interface{}{
						"type":        "integer",
						"description": "Selection start offset (inclusive)",
					},
					"end": map[string]interface{}{
						"type":        "integer",
						"description": "Selection end offset (exclusive)",
					},
				},
				"required": []string{"start", "end"},
			},
		},
		{
			Name:        "redact_selection_commit",
			Description: "Commit the active selection as a redaction range and clear the selection. Degenerate selections are dropped silently.",
			InputSchema: noArgsSchema(),
		},
		{
			Name:        "redact_range_add",
			Description: "Commit a redaction range directly by offsets. Overlapping and nested ranges are allowed.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"start": map[string]interface{}{
						"type":        "integer",
						"description": "Range start offset (inclusive, UTF-16 code units)",
					},
					"end": map[string]interface{}{
						"type":        "integer",
						"description": "Range end offset (exclusive)",
					},
				},
				"required": []string{"start", "end"},
			},
		},
		{
			Name:        "redact_range_list",
			Description: "List committed redaction ranges in insertion order.",
			InputSchema: noArgsSchema(),
		},
		{
			Name:        "redact_range_remove",
			Description: "Remove one redaction range. Removing an unknown id is a no-op.",
			InputSchema: idSchema("Identifier of the range to remove"),
		},
		{
			Name:        "redact_range_clear",
			Description: "Remove all redaction ranges.",
			InputSchema: noArgsSchema(),
		},

		// Rendering and export
		{
			Name:        "redact_preview_image",
			Description: "Render the editing preview at display size: the image with committed regions highlighted. Returned as base64 PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"display_width": map[string]interface{}{
						"type":        "integer",
						"description": "Preview width in pixels",
					},
					"display_height": map[string]interface{}{
						"type":        "integer",
						"description": "Preview height in pixels",
					},
					"highlight_color": map[string]interface{}{
						"type":        "string",
						"description": "Hex fill color for region highlights. Default #1f6feb",
					},
				},
				"required": []string{"display_width", "display_height"},
			},
		},
		{
			Name:        "redact_text_preview",
			Description: "Partition the document into masked/unmasked runs for preview. Masked runs expose only their length, never their text.",
			InputSchema: noArgsSchema(),
		},
		{
			Name:        "redact_export_image",
			Description: "Render the final redacted raster at natural resolution with each region irreversibly blurred. display_width/height are the surface's rendered size right now; scale factors are derived from them per axis.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"display_width": map[string]interface{}{
						"type":        "number",
						"description": "Current rendered width of the image surface",
					},
					"display_height": map[string]interface{}{
						"type":        "number",
						"description": "Current rendered height of the image surface",
					},
				},
				"required": []string{"display_width", "display_height"},
			},
		},
		{
			Name:        "redact_export_text",
			Description: "Produce the redacted document: every code unit covered by any range becomes U+2588 FULL BLOCK. Output length always equals source length.",
			InputSchema: noArgsSchema(),
		},
	}
}
