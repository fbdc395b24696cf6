package server

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/ironsheep/rastertool/internal/codec"
)

// createTestImageFile creates a test image file and returns its path
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}

	path := filepath.Join(t.TempDir(), "handler-test.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}

	return path
}

// callTool invokes a tool through tools/call and decodes the text content
// into out. It returns the JSON-RPC error, if any.
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}, out interface{}) *MCPError {
	t.Helper()

	paramsJSON, err := json.Marshal(map[string]interface{}{
		"name":      name,
		"arguments": args,
	})
	if err != nil {
		t.Fatalf("failed to marshal params: %v", err)
	}

	resp := s.handleRequest(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Method:  "tools/call",
		Params:  paramsJSON,
	})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		return resp.Error
	}

	result, ok := resp.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("Result: got %T, want map", resp.Result)
	}
	content, ok := result["content"].([]map[string]interface{})
	if !ok || len(content) != 1 {
		t.Fatalf("content: got %v", result["content"])
	}
	text, _ := content[0]["text"].(string)
	if out != nil {
		if err := json.Unmarshal([]byte(text), out); err != nil {
			t.Fatalf("failed to decode tool result %q: %v", text, err)
		}
	}
	return nil
}

func TestHandleToolsCall_RasterLoad(t *testing.T) {
	s := New(nil)
	imgPath := createTestImageFile(t, 100, 80, color.RGBA{255, 0, 0, 255})

	var info codec.Info
	if rpcErr := callTool(t, s, "raster_load", map[string]interface{}{"path": imgPath}, &info); rpcErr != nil {
		t.Fatalf("Unexpected error: %+v", rpcErr)
	}
	if info.Width != 100 || info.Height != 80 {
		t.Errorf("dimensions: got %dx%d, want 100x80", info.Width, info.Height)
	}
	if info.Format != "png" || info.PixelFormat != "RGB24" {
		t.Errorf("formats: got %s/%s, want png/RGB24", info.Format, info.PixelFormat)
	}
	if s.cache.Len() != 1 {
		t.Errorf("cache: got %d entries, want 1", s.cache.Len())
	}
}

func TestHandleToolsCall_RasterPixel(t *testing.T) {
	s := New(nil)
	imgPath := createTestImageFile(t, 10, 10, color.RGBA{255, 0, 0, 255})

	tests := []struct {
		name         string
		args         map[string]interface{}
		wantGray     int
		wantInBounds bool
		wantHex      string
	}{
		{"rgb read", map[string]interface{}{"path": imgPath, "x": 5, "y": 5}, 255, true, "#ff0000"},
		{"gray read", map[string]interface{}{"path": imgPath, "x": 5, "y": 5, "grayscale": true}, 76, true, "#4c4c4c"},
		{"gray out of range", map[string]interface{}{"path": imgPath, "x": 50, "y": 5, "grayscale": true}, 255, false, "#ffffff"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var res struct {
				InBounds bool   `json:"in_bounds"`
				Gray     int    `json:"gray"`
				Hex      string `json:"hex"`
			}
			if rpcErr := callTool(t, s, "raster_pixel", tt.args, &res); rpcErr != nil {
				t.Fatalf("Unexpected error: %+v", rpcErr)
			}
			if res.InBounds != tt.wantInBounds {
				t.Errorf("in_bounds: got %v, want %v", res.InBounds, tt.wantInBounds)
			}
			if res.Gray != tt.wantGray {
				t.Errorf("gray: got %d, want %d", res.Gray, tt.wantGray)
			}
			if res.Hex != tt.wantHex {
				t.Errorf("hex: got %s, want %s", res.Hex, tt.wantHex)
			}
		})
	}
}

func TestHandleToolsCall_RasterGrayscale(t *testing.T) {
	s := New(nil)
	imgPath := createTestImageFile(t, 4, 4, color.RGBA{255, 0, 0, 255})
	outPath := filepath.Join(t.TempDir(), "gray.png")

	var res struct {
		Width  int    `json:"width"`
		Height int    `json:"height"`
		Format string `json:"format"`
	}
	if rpcErr := callTool(t, s, "raster_grayscale", map[string]interface{}{"path": imgPath, "output": outPath}, &res); rpcErr != nil {
		t.Fatalf("Unexpected error: %+v", rpcErr)
	}
	if res.Format != "Gray8" || res.Width != 4 || res.Height != 4 {
		t.Errorf("got %dx%d %s, want 4x4 Gray8", res.Width, res.Height, res.Format)
	}

	written, err := codec.Decode(outPath)
	if err != nil {
		t.Fatalf("Decode of output failed: %v", err)
	}
	if v, _ := written.GrayAt(0, 0); v != 76 {
		t.Errorf("written gray: got %d, want 76", v)
	}
}

func TestHandleToolsCall_RasterResize(t *testing.T) {
	s := New(nil)
	imgPath := createTestImageFile(t, 200, 100, color.RGBA{0, 128, 255, 255})
	outPath := filepath.Join(t.TempDir(), "small.png")

	var res struct {
		SrcWidth int `json:"src_width"`
		Width    int `json:"width"`
		Height   int `json:"height"`
	}
	args := map[string]interface{}{"path": imgPath, "output": outPath, "width": 100, "height": 100}
	if rpcErr := callTool(t, s, "raster_resize", args, &res); rpcErr != nil {
		t.Fatalf("Unexpected error: %+v", rpcErr)
	}
	if res.SrcWidth != 200 || res.Width != 100 || res.Height != 50 {
		t.Errorf("got src %d -> %dx%d, want 200 -> 100x50", res.SrcWidth, res.Width, res.Height)
	}
}

func TestHandleToolsCall_RasterConvert(t *testing.T) {
	s := New(nil)
	imgPath := createTestImageFile(t, 100, 200, color.RGBA{0, 255, 0, 255})
	outPath := filepath.Join(t.TempDir(), "converted.png")

	var res struct {
		Width  int    `json:"width"`
		Height int    `json:"height"`
		Format string `json:"format"`
	}
	args := map[string]interface{}{"path": imgPath, "output": outPath, "grayscale": true, "height": 100}
	if rpcErr := callTool(t, s, "raster_convert", args, &res); rpcErr != nil {
		t.Fatalf("Unexpected error: %+v", rpcErr)
	}
	if res.Width != 50 || res.Height != 100 || res.Format != "Gray8" {
		t.Errorf("got %dx%d %s, want 50x100 Gray8", res.Width, res.Height, res.Format)
	}
}

func TestHandleToolsCall_Errors(t *testing.T) {
	s := New(nil)
	imgPath := createTestImageFile(t, 10, 10, color.White)
	outDir := t.TempDir()

	tests := []struct {
		name string
		tool string
		args map[string]interface{}
	}{
		{"nonexistent file", "raster_load", map[string]interface{}{"path": "/nonexistent/image.png"}},
		{"negative box", "raster_resize", map[string]interface{}{"path": imgPath, "output": filepath.Join(outDir, "b.png"), "width": -4}},
		{"box too large", "raster_resize", map[string]interface{}{"path": imgPath, "output": filepath.Join(outDir, "d.png"), "width": 1 << 40}},
		{"unwritable output", "raster_convert", map[string]interface{}{"path": imgPath, "output": filepath.Join(outDir, "nope", "c.png")}},
		{"unknown tool", "nonexistent_tool", map[string]interface{}{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rpcErr := callTool(t, s, tt.tool, tt.args, nil)
			if rpcErr == nil {
				t.Fatal("expected a JSON-RPC error")
			}
			if rpcErr.Code != -32000 {
				t.Errorf("code: got %d, want -32000", rpcErr.Code)
			}
		})
	}
}

func TestHandleToolsCall_BadArguments(t *testing.T) {
	s := New(nil)
	imgPath := createTestImageFile(t, 10, 10, color.White)

	tests := []struct {
		name string
		tool string
		args map[string]interface{}
	}{
		{"path wrong type", "raster_load", map[string]interface{}{"path": 5}},
		{"missing arguments", "raster_load", nil},
		{"x wrong type", "raster_pixel", map[string]interface{}{"path": imgPath, "x": "left", "y": 1}},
		{"missing path", "raster_pixel", map[string]interface{}{"x": 1, "y": 1}},
		{"missing output", "raster_grayscale", map[string]interface{}{"path": imgPath}},
		{"resize without box", "raster_resize", map[string]interface{}{"path": imgPath, "output": "a.png"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rpcErr := callTool(t, s, tt.tool, tt.args, nil)
			if rpcErr == nil {
				t.Fatal("expected a JSON-RPC error")
			}
			if rpcErr.Code != -32602 {
				t.Errorf("code: got %d, want -32602", rpcErr.Code)
			}
		})
	}
}

func TestHandleToolsCall_RasterLoadDecodesOnce(t *testing.T) {
	s := New(nil)
	imgPath := createTestImageFile(t, 12, 6, color.White)

	if rpcErr := callTool(t, s, "raster_load", map[string]interface{}{"path": imgPath}, nil); rpcErr != nil {
		t.Fatalf("Unexpected error: %+v", rpcErr)
	}

	// Replace the file on disk; the cached raster must still be reported.
	replacement := createTestImageFile(t, 3, 3, color.Black)
	data, err := os.ReadFile(replacement)
	if err != nil {
		t.Fatalf("failed to read replacement: %v", err)
	}
	if err := os.WriteFile(imgPath, data, 0644); err != nil {
		t.Fatalf("failed to overwrite image: %v", err)
	}

	var info codec.Info
	if rpcErr := callTool(t, s, "raster_load", map[string]interface{}{"path": imgPath}, &info); rpcErr != nil {
		t.Fatalf("Unexpected error: %+v", rpcErr)
	}
	if info.Width != 12 || info.Height != 6 {
		t.Errorf("dimensions: got %dx%d, want cached 12x6", info.Width, info.Height)
	}
	if info.FileSizeBytes != int64(len(data)) {
		t.Errorf("FileSizeBytes: got %d, want %d", info.FileSizeBytes, len(data))
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := New(nil)

	resp := s.handleToolsCall(&MCPRequest{
		JSONRPC: "2.0",
		ID:      1,
		Params:  json.RawMessage(`"not an object"`),
	})

	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Errorf("expected -32602 error, got %+v", resp.Error)
	}
}
