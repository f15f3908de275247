package server

// Tool represents an MCP tool definition
type Tool struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

// pathProperty is the schema of the document path argument shared by the
// document tools.
var pathProperty = map[string]interface{}{
	"type":        "string",
	"description": "Absolute path to the ISCC-NBS XML document",
}

// GetToolDefinitions returns all available tools
func GetToolDefinitions() []Tool {
	return []Tool{
		// Document Operations
		{
			Name:        "iscc_validate",
			Description: "Check that an ISCC-NBS document partitions Munsell space: every cell covered exactly once, names consistent, every region non-degenerate. Always rereads the file.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"collect_all": map[string]interface{}{
						"type":        "boolean",
						"description": "Report every overlap and gap instead of stopping at the first. Default false",
						"default":     false,
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "iscc_region_colors",
			Description: "Return the mean color of each region of a valid document: Munsell centroid, approximate LCh, and displayable hex/RGB/HSL, with the region's level-3 name.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"ids": map[string]interface{}{
						"type":        "array",
						"items":       map[string]interface{}{"type": "integer"},
						"description": "Optional region ids to return. Default: all regions",
					},
				},
				"required": []string{"path"},
			},
		},
		{
			Name:        "iscc_classify",
			Description: "Find the region of a document that contains a Munsell color, e.g. \"5R 4/14\".",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Munsell notation \"<hue> <value>/<chroma>\"",
					},
				},
				"required": []string{"path", "color"},
			},
		},
		{
			Name:        "iscc_swatches",
			Description: "Render the region colors of a document as a grid of labelled squares and return it as base64-encoded PNG.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"path": pathProperty,
					"cell_size": map[string]interface{}{
						"type":        "integer",
						"description": "Swatch edge length in pixels (8-256). Default 32",
						"default":     32,
					},
				},
				"required": []string{"path"},
			},
		},

		// Munsell Conversions
		{
			Name:        "munsell_parse_hue",
			Description: "Parse a Munsell hue such as \"2.5YR\" into its position on the 0-100 hue circle and in degrees.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"hue": map[string]interface{}{
						"type":        "string",
						"description": "Munsell hue notation, number followed by R, YR, Y, GY, G, BG, B, PB, P or RP",
					},
				},
				"required": []string{"hue"},
			},
		},
		{
			Name:        "munsell_to_rgb",
			Description: "Convert a Munsell color to approximate CIE LCh and the nearest displayable sRGB color.",
			InputSchema: map[string]interface{}{
				"type": "object",
				"properties": map[string]interface{}{
					"color": map[string]interface{}{
						"type":        "string",
						"description": "Munsell notation \"<hue> <value>/<chroma>\"",
					},
				},
				"required": []string{"color"},
			},
		},
	}
}

// handleToolsList returns the list of available tools
func (s *Server) handleToolsList(req *MCPRequest) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"tools": GetToolDefinitions(),
		},
	}
}
