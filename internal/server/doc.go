// Package server implements an MCP (Model Context Protocol) tool server for
// the raster operations.
//
// # Protocol
//
// The server speaks JSON-RPC 2.0 over a line-oriented stream:
//   - Input: one JSON-RPC request per line
//   - Output: one JSON-RPC response per line
//
// Supported methods:
//   - initialize: Protocol handshake
//   - notifications/initialized: Client acknowledgment (no response)
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
//   - raster_load: Decode an image and report its metadata
//   - raster_pixel: Read one pixel (RGB, gray, hex, HSL)
//   - raster_grayscale: Write a Gray8 PNG of an image
//   - raster_resize: Write an aspect-preserving resized PNG of an image
//   - raster_convert: Grayscale and/or resize in one call
//
// # Image Caching
//
// Decoded rasters are cached by path for the lifetime of the server, so
// repeated pixel reads on the same file decode it once.
//
// # Error Handling
//
// Tool failures become JSON-RPC errors with code -32000 and the Go error
// string in data. Malformed params yield -32602 and unknown methods -32601.
// Out-of-range pixel reads are not failures: they report in_bounds=false and
// the sentinel values.
package server
