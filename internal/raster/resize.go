package raster

import (
	"fmt"
	"math"
)

// FitDimensions computes the output size for Resize.
//
// The longer source side is mapped onto the matching box side and the other
// side is scaled by the same factor, rounded to the nearest integer:
//
//	srcW > srcH:  outW = boxW, outH = round(boxW * srcH/srcW)
//	otherwise:    outH = boxH, outW = round(boxH * srcW/srcH)
//
// Square sources take the second branch. Only one box side is honored
// exactly, so the result may exceed the box on the derived side. Both results
// are clamped to at least 1.
func FitDimensions(srcW, srcH, boxW, boxH int) (outW, outH int) {
	if srcW > srcH {
		factor := float64(srcH) / float64(srcW)
		outW = boxW
		outH = int(math.Round(float64(boxW) * factor))
	} else {
		factor := float64(srcW) / float64(srcH)
		outH = boxH
		outW = int(math.Round(float64(boxH) * factor))
	}
	return max(outW, 1), max(outH, 1)
}

// Resize scales src to the size chosen by FitDimensions using bilinear
// interpolation. The output has the same format as src.
//
// Returns ErrInvalidArgument if boxW or boxH is not positive, or if the
// output would hold more than MaxPixels pixels.
func Resize(src *Raster, boxW, boxH int) (*Raster, error) {
	if boxW <= 0 || boxH <= 0 {
		return nil, fmt.Errorf("%w: resize box %dx%d must be positive", ErrInvalidArgument, boxW, boxH)
	}
	outW, outH := FitDimensions(src.width, src.height, boxW, boxH)
	if err := checkGeometry(outW, outH, src.format); err != nil {
		return nil, fmt.Errorf("resize to %dx%d: %w", outW, outH, err)
	}
	return resample(src, outW, outH), nil
}

// axisWeight is the pair of source indices and the blend factor used for one
// output coordinate.
type axisWeight struct {
	i0, i1 int
	frac   float64
}

// axisWeights maps every destination index to its source neighbours using
// pixel-centre alignment: s = (d+0.5)*srcLen/dstLen - 0.5.
func axisWeights(srcLen, dstLen int) []axisWeight {
	scale := float64(srcLen) / float64(dstLen)
	w := make([]axisWeight, dstLen)
	for d := range w {
		s := (float64(d)+0.5)*scale - 0.5
		if s < 0 {
			s = 0
		}
		if limit := float64(srcLen - 1); s > limit {
			s = limit
		}
		i0 := int(s)
		i1 := i0 + 1
		if i1 > srcLen-1 {
			i1 = srcLen - 1
		}
		w[d] = axisWeight{i0: i0, i1: i1, frac: s - float64(i0)}
	}
	return w
}

func resample(src *Raster, outW, outH int) *Raster {
	dst := newRaster(outW, outH, src.format)
	ch := src.format.Channels()
	xs := axisWeights(src.width, outW)
	ys := axisWeights(src.height, outH)

	stride := src.Stride()
	o := 0
	for _, wy := range ys {
		row0 := wy.i0 * stride
		row1 := wy.i1 * stride
		for _, wx := range xs {
			c0 := wx.i0 * ch
			c1 := wx.i1 * ch
			for c := 0; c < ch; c++ {
				top := lerp(float64(src.pix[row0+c0+c]), float64(src.pix[row0+c1+c]), wx.frac)
				bottom := lerp(float64(src.pix[row1+c0+c]), float64(src.pix[row1+c1+c]), wx.frac)
				dst.pix[o] = clampUint8(math.Round(lerp(top, bottom, wy.frac)))
				o++
			}
		}
	}
	return dst
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
