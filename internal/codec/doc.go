// Package codec is the file boundary for rasters.
//
// Decode and Encode return structured errors wrapping ErrDecode and
// ErrEncode. Load and Save sit on top of them and absorb those errors into a
// status result, so a caller walking many files can keep going after one
// failure. Absorbed errors are written to the package logger (see SetLogger).
//
// # Formats
//
// Decoding accepts PNG, JPEG, GIF, BMP, TIFF and WebP. JPEG EXIF orientation
// is applied. Decoded rasters are always RGB24.
//
// Encoding always writes PNG: Gray8 rasters become 8-bit grayscale PNGs and
// RGB24 rasters become opaque RGBA PNGs. Encoding is lossless, so Decode of an
// encoded RGB24 raster reproduces it exactly.
//
// # Caching
//
// Cache keeps decoded rasters keyed by path for long-running callers such as
// the tool server. It is safe for concurrent use.
package codec
