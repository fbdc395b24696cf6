package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/disintegration/imaging"
)

// Format is the pixel layout of a Raster.
type Format uint8

// Supported pixel formats. The zero value is not a valid format.
const (
	RGB24 Format = iota + 1
	Gray8
)

// Channels returns the number of 8-bit samples per pixel, or 0 for an
// unknown format.
func (f Format) Channels() int {
	switch f {
	case RGB24:
		return 3
	case Gray8:
		return 1
	}
	return 0
}

func (f Format) String() string {
	switch f {
	case RGB24:
		return "RGB24"
	case Gray8:
		return "Gray8"
	}
	return fmt.Sprintf("Format(%d)", uint8(f))
}

// Valid reports whether f is one of the declared formats.
func (f Format) Valid() bool {
	return f.Channels() > 0
}

// ParseFormat maps a case-insensitive name to a Format.
//
// Accepted names are "rgb24", "rgb", "gray8", "gray", "grey" and "luminance".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "rgb24", "rgb":
		return RGB24, nil
	case "gray8", "gray", "grey", "luminance":
		return Gray8, nil
	}
	return 0, fmt.Errorf("%w: unknown format %q", ErrFormat, s)
}

// Raster is an immutable 2D grid of 8-bit samples.
//
// Samples are stored row-major with interleaved channels, so the first sample
// of pixel (x, y) lives at index (y*width+x)*channels.
type Raster struct {
	width  int
	height int
	format Format
	pix    []uint8
}

// New returns a zero-filled (black) Raster.
//
// Returns ErrInvalidArgument if width or height is not positive, and
// ErrFormat if f is not a declared format.
func New(width, height int, f Format) (*Raster, error) {
	if err := checkGeometry(width, height, f); err != nil {
		return nil, err
	}
	return newRaster(width, height, f), nil
}

// FromPix builds a Raster from a packed sample buffer. The buffer is copied,
// so later writes to pix do not affect the Raster.
//
// len(pix) must equal width*height*f.Channels().
func FromPix(width, height int, f Format, pix []uint8) (*Raster, error) {
	if err := checkGeometry(width, height, f); err != nil {
		return nil, err
	}
	want := width * height * f.Channels()
	if len(pix) != want {
		return nil, fmt.Errorf("%w: buffer holds %d samples, %dx%d %s needs %d",
			ErrInvalidArgument, len(pix), width, height, f, want)
	}
	r := newRaster(width, height, f)
	copy(r.pix, pix)
	return r, nil
}

// FromImage converts any image.Image into an RGB24 Raster.
//
// The image is normalized to non-premultiplied RGBA first; alpha is then
// discarded and the unassociated color is kept. Returns ErrInvalidArgument
// for an empty image.
func FromImage(img image.Image) (*Raster, error) {
	b := img.Bounds()
	if b.Dx() <= 0 || b.Dy() <= 0 {
		return nil, fmt.Errorf("%w: empty image %v", ErrInvalidArgument, b)
	}

	src := imaging.Clone(img)
	r := newRaster(b.Dx(), b.Dy(), RGB24)
	for i, j := 0, 0; i < len(src.Pix); i, j = i+4, j+3 {
		r.pix[j+0] = src.Pix[i+0]
		r.pix[j+1] = src.Pix[i+1]
		r.pix[j+2] = src.Pix[i+2]
	}
	return r, nil
}

// MaxPixels is the largest width*height any constructor or Resize will
// allocate.
const MaxPixels = 1 << 28

func checkGeometry(width, height int, f Format) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidArgument, width, height)
	}
	// Dividing keeps the check itself from overflowing.
	if width > MaxPixels/height {
		return fmt.Errorf("%w: dimensions %dx%d exceed %d pixels", ErrInvalidArgument, width, height, MaxPixels)
	}
	if !f.Valid() {
		return fmt.Errorf("%w: %s", ErrFormat, f)
	}
	return nil
}

func newRaster(width, height int, f Format) *Raster {
	return &Raster{
		width:  width,
		height: height,
		format: f,
		pix:    make([]uint8, width*height*f.Channels()),
	}
}

// Width returns the raster width in pixels.
func (r *Raster) Width() int { return r.width }

// Height returns the raster height in pixels.
func (r *Raster) Height() int { return r.height }

// Format returns the pixel format.
func (r *Raster) Format() Format { return r.format }

// Bounds returns the raster rectangle anchored at the origin.
func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// Stride returns the number of samples in one row.
func (r *Raster) Stride() int {
	return r.width * r.format.Channels()
}

// Pix returns a copy of the packed sample buffer.
func (r *Raster) Pix() []uint8 {
	out := make([]uint8, len(r.pix))
	copy(out, r.pix)
	return out
}

// Clone returns an independent copy of r.
func (r *Raster) Clone() *Raster {
	c := newRaster(r.width, r.height, r.format)
	copy(c.pix, r.pix)
	return c
}

// Equal reports whether two rasters have the same geometry, format and
// samples.
func (r *Raster) Equal(o *Raster) bool {
	if r == nil || o == nil {
		return r == o
	}
	return r.width == o.width && r.height == o.height &&
		r.format == o.format && bytes.Equal(r.pix, o.pix)
}

// InBounds reports whether (x, y) addresses a pixel of r.
func (r *Raster) InBounds(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// Image returns a fresh standard library view of the raster: *image.Gray for
// Gray8 and a fully opaque *image.NRGBA for RGB24.
func (r *Raster) Image() image.Image {
	if r.format == Gray8 {
		g := image.NewGray(r.Bounds())
		copy(g.Pix, r.pix)
		return g
	}

	img := image.NewNRGBA(r.Bounds())
	for i, j := 0, 0; j < len(r.pix); i, j = i+4, j+3 {
		img.Pix[i+0] = r.pix[j+0]
		img.Pix[i+1] = r.pix[j+1]
		img.Pix[i+2] = r.pix[j+2]
		img.Pix[i+3] = 0xff
	}
	return img
}

// ColorModel returns the color model matching the raster format.
func (r *Raster) ColorModel() color.Model {
	if r.format == Gray8 {
		return color.GrayModel
	}
	return color.NRGBAModel
}

func (r *Raster) offset(x, y int) int {
	return (y*r.width + x) * r.format.Channels()
}
