package server

import (
	"encoding/json"
	"fmt"

	"github.com/ironsheep/iscc-nbs-tools/internal/centroid"
	"github.com/ironsheep/iscc-nbs-tools/internal/document"
	"github.com/ironsheep/iscc-nbs-tools/internal/imaging"
	"github.com/ironsheep/iscc-nbs-tools/internal/iscc"
	"github.com/ironsheep/iscc-nbs-tools/internal/munsell"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "iscc_validate", "munsell_to_rgb").
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
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Document Operations
	case "iscc_validate":
		return s.handleValidate(args)
	case "iscc_region_colors":
		return s.handleRegionColors(args)
	case "iscc_classify":
		return s.handleClassify(args)
	case "iscc_swatches":
		return s.handleSwatches(args)

	// Munsell Conversions
	case "munsell_parse_hue":
		return s.handleParseHue(args)
	case "munsell_to_rgb":
		return s.handleMunsellToRGB(args)

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
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Result Types ===

// ValidateResult reports whether a document is a valid partition.
type ValidateResult struct {
	Path        string   `json:"path"`
	Valid       bool     `json:"valid"`
	Errors      []string `json:"errors,omitempty"`
	Blocks      int      `json:"blocks"`
	Regions     int      `json:"regions"`
	HueCells    int      `json:"hue_cells"`
	ChromaCells int      `json:"chroma_cells"`
	ValueCells  int      `json:"value_cells"`
}

// RegionColor is the computed color of one region.
type RegionColor struct {
	ID         int                 `json:"id"`
	Name       string              `json:"name,omitempty"`
	Abbr       string              `json:"abbr,omitempty"`
	Munsell    string              `json:"munsell"`
	LCh        munsell.LCh         `json:"lch"`
	GamutSteps int                 `json:"gamut_steps"`
	Color      imaging.ColorResult `json:"color"`
}

// RegionColorsResult lists region colors in id order.
type RegionColorsResult struct {
	Path    string        `json:"path"`
	Regions []RegionColor `json:"regions"`
}

// ClassifyResult is the region containing a Munsell color.
type ClassifyResult struct {
	Input  string      `json:"input"`
	Region RegionColor `json:"region"`
}

// HueResult describes a parsed Munsell hue.
type HueResult struct {
	Input      string  `json:"input"`
	Canonical  string  `json:"canonical"`
	Value      float64 `json:"value"`
	Normalized float64 `json:"normalized"`
	Degrees    float64 `json:"degrees"`
}

// ConversionResult is a Munsell color converted for display.
type ConversionResult struct {
	Munsell    string              `json:"munsell"`
	LCh        munsell.LCh         `json:"lch"`
	InGamut    bool                `json:"in_gamut"`
	Reduced    munsell.LCh         `json:"reduced"`
	GamutSteps int                 `json:"gamut_steps"`
	Color      imaging.ColorResult `json:"color"`
}

func regionColor(s *iscc.System, r centroid.Region) RegionColor {
	rc := RegionColor{
		ID:         r.ID,
		Munsell:    r.Munsell.String(),
		LCh:        r.LCh,
		GamutSteps: r.GamutSteps,
		Color:      imaging.NewColorResult(r.RGB),
	}
	if e, ok := s.Name(r.ID); ok {
		rc.Name = e.Name
		rc.Abbr = e.Abbr
	}
	return rc
}

// splitErrors flattens an errors.Join tree into its leaf messages.
func splitErrors(err error) []string {
	if multi, ok := err.(interface{ Unwrap() []error }); ok {
		var out []string
		for _, e := range multi.Unwrap() {
			out = append(out, splitErrors(e)...)
		}
		return out
	}
	return []string{err.Error()}
}

// === Document Operation Handlers ===

type validateArgs struct {
	Path       string `json:"path"`
	CollectAll bool   `json:"collect_all"`
}

// handleValidate rereads the document every time and drops any cached copy,
// so a fixed document is picked up by the other tools. Read and parse
// failures are tool errors; partition problems are reported in the result.
func (s *Server) handleValidate(args json.RawMessage) (interface{}, error) {
	var a validateArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	s.cache.Evict(a.Path)

	doc, err := document.Load(a.Path)
	if err != nil {
		return nil, err
	}

	result := &ValidateResult{Path: a.Path}
	sys, err := iscc.Build(doc, iscc.Options{CollectAll: a.CollectAll})
	if err != nil {
		result.Errors = splitErrors(err)
		return result, nil
	}

	result.Valid = true
	result.Blocks = len(sys.Blocks)
	result.Regions = len(sys.Regions)
	result.HueCells = sys.Axes.HueCells()
	result.ChromaCells = sys.Axes.ChromaCells()
	result.ValueCells = sys.Axes.ValueCells()
	return result, nil
}

type regionColorsArgs struct {
	Path string `json:"path"`
	IDs  []int  `json:"ids"`
}

func (s *Server) handleRegionColors(args json.RawMessage) (interface{}, error) {
	var a regionColorsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sys, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	result := &RegionColorsResult{Path: a.Path}
	if len(a.IDs) == 0 {
		for _, r := range sys.Regions {
			result.Regions = append(result.Regions, regionColor(sys, r))
		}
		return result, nil
	}

	for _, id := range a.IDs {
		r, ok := sys.Region(id)
		if !ok {
			return nil, fmt.Errorf("no region %d (document has 1-%d)", id, len(sys.Regions))
		}
		result.Regions = append(result.Regions, regionColor(sys, r))
	}
	return result, nil
}

type classifyArgs struct {
	Path  string `json:"path"`
	Color string `json:"color"`
}

func (s *Server) handleClassify(args json.RawMessage) (interface{}, error) {
	var a classifyArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := munsell.ParseColor(a.Color)
	if err != nil {
		return nil, err
	}
	sys, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	r, ok := sys.Classify(c)
	if !ok {
		return nil, fmt.Errorf("color %s is outside every region", c)
	}
	return &ClassifyResult{Input: a.Color, Region: regionColor(sys, r)}, nil
}

type swatchesArgs struct {
	Path     string `json:"path"`
	CellSize int    `json:"cell_size"`
}

func (s *Server) handleSwatches(args json.RawMessage) (interface{}, error) {
	var a swatchesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.CellSize == 0 {
		a.CellSize = imaging.DefaultCellSize
	}
	sys, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}

	img, err := imaging.RenderSwatches(sys.Regions, a.CellSize)
	if err != nil {
		return nil, err
	}
	return imaging.EncodePNGBase64(img, len(sys.Regions))
}

// === Munsell Conversion Handlers ===

type parseHueArgs struct {
	Hue string `json:"hue"`
}

func (s *Server) handleParseHue(args json.RawMessage) (interface{}, error) {
	var a parseHueArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	h, err := munsell.ParseHue(a.Hue)
	if err != nil {
		return nil, err
	}
	return &HueResult{
		Input:      a.Hue,
		Canonical:  h.String(),
		Value:      h.Raw(),
		Normalized: h.Normalized().Raw(),
		Degrees:    h.Degrees(),
	}, nil
}

type munsellToRGBArgs struct {
	Color string `json:"color"`
}

func (s *Server) handleMunsellToRGB(args json.RawMessage) (interface{}, error) {
	var a munsellToRGBArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := munsell.ParseColor(a.Color)
	if err != nil {
		return nil, err
	}

	lch := c.ToApproxLch()
	reduced, rgb, steps := centroid.ReduceToGamut(lch)
	return &ConversionResult{
		Munsell:    c.String(),
		LCh:        lch,
		InGamut:    lch.InGamut(),
		Reduced:    reduced,
		GamutSteps: steps,
		Color:      imaging.NewColorResult(rgb),
	}, nil
}
