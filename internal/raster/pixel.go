package raster

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// GraySentinel is returned by GrayAt for out-of-range coordinates.
const GraySentinel uint8 = 255

// RGBSentinel is returned by RGBAt for out-of-range coordinates.
var RGBSentinel = RGB{R: 255, G: 255, B: 255}

// RGB is an 8-bit color triple.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBAt returns the color at (x, y).
//
// For Gray8 rasters the luminance is replicated into all three channels.
// Out-of-range coordinates yield RGBSentinel and ok=false.
func (r *Raster) RGBAt(x, y int) (c RGB, ok bool) {
	if !r.InBounds(x, y) {
		return RGBSentinel, false
	}
	i := r.offset(x, y)
	if r.format == Gray8 {
		v := r.pix[i]
		return RGB{R: v, G: v, B: v}, true
	}
	return RGB{R: r.pix[i], G: r.pix[i+1], B: r.pix[i+2]}, true
}

// GrayAt returns the first sample of pixel (x, y): the luminance of a Gray8
// raster, or the red channel of an RGB24 raster. Use ToGrayscale first to
// read perceptual luminance from a color image.
//
// Out-of-range coordinates yield GraySentinel and ok=false.
func (r *Raster) GrayAt(x, y int) (v uint8, ok bool) {
	if !r.InBounds(x, y) {
		return GraySentinel, false
	}
	return r.pix[r.offset(x, y)], true
}

// HSL is a color in hue/saturation/lightness space.
type HSL struct {
	H int `json:"h"` // Hue: 0-360 degrees
	S int `json:"s"` // Saturation: 0-100 percent
	L int `json:"l"` // Lightness: 0-100 percent
}

// PixelResult describes one sampled pixel in several representations.
type PixelResult struct {
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Format   string `json:"format"`
	InBounds bool   `json:"in_bounds"`

	// RGB is set for both formats; Gray8 pixels report R=G=B.
	RGB RGB `json:"rgb"`

	// Gray is the first sample as returned by GrayAt.
	Gray uint8 `json:"gray"`

	// Hex is the "#rrggbb" form of RGB.
	Hex string `json:"hex"`

	HSL HSL `json:"hsl"`
}

// Sample reads pixel (x, y) and reports it in every supported
// representation. Out-of-range coordinates produce the sentinel values with
// InBounds=false rather than an error.
func Sample(r *Raster, x, y int) *PixelResult {
	rgb, ok := r.RGBAt(x, y)
	gray, _ := r.GrayAt(x, y)

	c := colorful.Color{
		R: float64(rgb.R) / 255.0,
		G: float64(rgb.G) / 255.0,
		B: float64(rgb.B) / 255.0,
	}
	h, s, l := c.Hsl()
	if math.IsNaN(h) {
		h = 0
	}

	return &PixelResult{
		X:        x,
		Y:        y,
		Format:   r.format.String(),
		InBounds: ok,
		RGB:      rgb,
		Gray:     gray,
		Hex:      c.Hex(),
		HSL: HSL{
			H: int(math.Round(h)) % 360,
			S: int(math.Round(s * 100)),
			L: int(math.Round(l * 100)),
		},
	}
}
