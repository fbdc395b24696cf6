package server

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ironsheep/rastertool/internal/codec"
	"github.com/ironsheep/rastertool/internal/pipeline"
	"github.com/ironsheep/rastertool/internal/raster"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "raster_load", "raster_resize").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// errInvalidParams marks tool arguments that are malformed or missing. It is
// reported as JSON-RPC -32602 rather than a tool failure.
var errInvalidParams = errors.New("invalid params")

var (
	errMissingPath   = fmt.Errorf("%w: path is required", errInvalidParams)
	errMissingOutput = fmt.Errorf("%w: output is required", errInvalidParams)
)

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Malformed or missing tool arguments return code -32602. Other tool
// execution errors return code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if errors.Is(err, errInvalidParams) {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}
	if err != nil {
		s.logger.Warn("tool failed", "tool", params.Name, "error", err)
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
	case "raster_load":
		return s.handleRasterLoad(args)
	case "raster_pixel":
		return s.handleRasterPixel(args)
	case "raster_grayscale":
		return s.handleRasterGrayscale(args)
	case "raster_resize":
		return s.handleRasterResize(args)
	case "raster_convert":
		return s.handleRasterConvert(args)
	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// decodeArgs unmarshals tool arguments into v. Absent arguments decode as an
// empty object so the required-field checks report what is missing.
func decodeArgs(args json.RawMessage, v interface{}) error {
	if len(args) == 0 {
		args = json.RawMessage("{}")
	}
	if err := json.Unmarshal(args, v); err != nil {
		return fmt.Errorf("%w: %w", errInvalidParams, err)
	}
	return nil
}

type rasterLoadArgs struct {
	Path string `json:"path"`
}

func (s *Server) handleRasterLoad(args json.RawMessage) (interface{}, error) {
	var a rasterLoadArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errMissingPath
	}
	r, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	return codec.InfoFor(a.Path, r)
}

type rasterPixelArgs struct {
	Path      string `json:"path"`
	X         int    `json:"x"`
	Y         int    `json:"y"`
	Grayscale bool   `json:"grayscale"`
}

func (s *Server) handleRasterPixel(args json.RawMessage) (interface{}, error) {
	var a rasterPixelArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Path == "" {
		return nil, errMissingPath
	}
	r, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	if a.Grayscale {
		if r, err = raster.ToGrayscale(r); err != nil {
			return nil, err
		}
	}
	return raster.Sample(r, a.X, a.Y), nil
}

type rasterWriteArgs struct {
	Path      string `json:"path"`
	Output    string `json:"output"`
	Grayscale bool   `json:"grayscale"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
}

func (s *Server) writeRaster(a rasterWriteArgs, opts pipeline.Options) (interface{}, error) {
	if a.Path == "" {
		return nil, errMissingPath
	}
	if a.Output == "" {
		return nil, errMissingOutput
	}
	r, err := s.cache.Load(a.Path)
	if err != nil {
		return nil, err
	}
	res, err := pipeline.Write(r, a.Output, opts)
	if err != nil {
		return nil, err
	}
	// The output may overwrite a file that is already cached.
	s.cache.Evict(a.Output)
	return res, nil
}

func (s *Server) handleRasterGrayscale(args json.RawMessage) (interface{}, error) {
	var a rasterWriteArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.writeRaster(a, pipeline.Options{Grayscale: true})
}

func (s *Server) handleRasterResize(args json.RawMessage) (interface{}, error) {
	var a rasterWriteArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	if a.Width == 0 && a.Height == 0 {
		return nil, fmt.Errorf("%w: width or height is required", errInvalidParams)
	}
	return s.writeRaster(a, pipeline.Options{Width: a.Width, Height: a.Height})
}

func (s *Server) handleRasterConvert(args json.RawMessage) (interface{}, error) {
	var a rasterWriteArgs
	if err := decodeArgs(args, &a); err != nil {
		return nil, err
	}
	return s.writeRaster(a, pipeline.Options{Grayscale: a.Grayscale, Width: a.Width, Height: a.Height})
}
