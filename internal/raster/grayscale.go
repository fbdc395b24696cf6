package raster

import (
	"fmt"
	"math"
)

// ITU-R BT.601 luma weights. They are fixed so grayscale output is
// reproducible across releases.
const (
	LumaR = 0.299
	LumaG = 0.587
	LumaB = 0.114
)

// Luma returns round(0.299*r + 0.587*g + 0.114*b) clamped to [0,255].
func Luma(r, g, b uint8) uint8 {
	return clampUint8(math.Round(LumaR*float64(r) + LumaG*float64(g) + LumaB*float64(b)))
}

// ToGrayscale converts an RGB24 raster into a Gray8 raster of the same size.
//
// Each output sample is Luma(R, G, B) of the corresponding input pixel.
// Returns ErrFormat if src is not RGB24.
func ToGrayscale(src *Raster) (*Raster, error) {
	if src.format != RGB24 {
		return nil, fmt.Errorf("%w: grayscale conversion needs %s, got %s", ErrFormat, RGB24, src.format)
	}

	dst := newRaster(src.width, src.height, Gray8)
	for i, j := 0, 0; i < len(dst.pix); i, j = i+1, j+3 {
		dst.pix[i] = Luma(src.pix[j], src.pix[j+1], src.pix[j+2])
	}
	return dst, nil
}

// ToRGB expands a Gray8 raster into RGB24 by copying the luminance into all
// three channels. Returns ErrFormat if src is not Gray8.
func ToRGB(src *Raster) (*Raster, error) {
	if src.format != Gray8 {
		return nil, fmt.Errorf("%w: rgb expansion needs %s, got %s", ErrFormat, Gray8, src.format)
	}

	dst := newRaster(src.width, src.height, RGB24)
	for i, v := range src.pix {
		j := i * 3
		dst.pix[j+0] = v
		dst.pix[j+1] = v
		dst.pix[j+2] = v
	}
	return dst, nil
}

// Convert returns src in the requested format. Converting to the format src
// already has yields a clone.
func Convert(src *Raster, to Format) (*Raster, error) {
	switch {
	case src.format == to:
		return src.Clone(), nil
	case to == Gray8:
		return ToGrayscale(src)
	case to == RGB24:
		return ToRGB(src)
	}
	return nil, fmt.Errorf("%w: cannot convert %s to %s", ErrFormat, src.format, to)
}

func clampUint8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v)
}
