// Package raster provides the in-memory image model and the pixel transforms
// built on top of it.
//
// A Raster is a 2D grid of 8-bit samples with a declared pixel format. Two
// formats exist: RGB24 (three interleaved channels per pixel) and Gray8 (one
// luminance channel per pixel). Every transform in this package allocates and
// returns a new Raster; the input is never modified.
//
// # Coordinate System
//
// Coordinates are 0-based with the origin at the top-left corner:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - Valid ranges are 0 <= x < Width() and 0 <= y < Height()
//
// # Transforms
//
//   - ToGrayscale: RGB24 -> Gray8 using ITU-R BT.601 luma weights
//   - ToRGB: Gray8 -> RGB24 by channel replication
//   - Resize: aspect-ratio-preserving bilinear resampling
//
// # Pixel Access
//
// RGBAt and GrayAt never fail. An out-of-range read returns a fixed sentinel
// (255 for gray, white for RGB) together with ok=false so callers that care
// can tell the difference.
//
// # Thread Safety
//
// A Raster is immutable once returned, so it may be read from any number of
// goroutines. Transforms hold no state between calls.
package raster
