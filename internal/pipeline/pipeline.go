// Package pipeline chains the raster transforms and the PNG encoder:
// optional grayscale → optional resize → encode.
package pipeline

import (
	"fmt"

	"github.com/ironsheep/rastertool/internal/codec"
	"github.com/ironsheep/rastertool/internal/raster"
)

// Options controls which transforms run.
type Options struct {
	Grayscale bool // convert RGB24 to Gray8 before resizing
	Width     int  // resize box width; 0 takes Height
	Height    int  // resize box height; 0 takes Width
}

// Box returns the resize box after defaults are applied. ok is false when
// neither side is set, meaning no resize.
func (o Options) Box() (w, h int, ok bool, err error) {
	if o.Width < 0 || o.Height < 0 {
		return 0, 0, false, fmt.Errorf("%w: resize box %dx%d must not be negative",
			raster.ErrInvalidArgument, o.Width, o.Height)
	}
	w, h = o.Width, o.Height
	switch {
	case w == 0 && h == 0:
		return 0, 0, false, nil
	case w == 0:
		w = h
	case h == 0:
		h = w
	}
	return w, h, true, nil
}

// Result holds the output of a pipeline run.
type Result struct {
	Output    string `json:"output"`
	SrcWidth  int    `json:"src_width"`
	SrcHeight int    `json:"src_height"`
	Width     int    `json:"width"`
	Height    int    `json:"height"`
	Format    string `json:"format"`
}

// Apply runs the transforms selected by opts on src and returns a new
// raster. src is never modified; with no transforms selected a clone is
// returned. Grayscale on a Gray8 src fails with raster.ErrFormat.
func Apply(src *raster.Raster, opts Options) (*raster.Raster, error) {
	boxW, boxH, resize, err := opts.Box()
	if err != nil {
		return nil, err
	}

	out := src
	if opts.Grayscale {
		if out, err = raster.ToGrayscale(out); err != nil {
			return nil, fmt.Errorf("grayscale: %w", err)
		}
	}
	if resize {
		if out, err = raster.Resize(out, boxW, boxH); err != nil {
			return nil, fmt.Errorf("resize: %w", err)
		}
	}
	if out == src {
		out = src.Clone()
	}
	return out, nil
}

// Run decodes in, applies opts and encodes the result to out as PNG.
func Run(in, out string, opts Options) (*Result, error) {
	src, err := codec.Decode(in)
	if err != nil {
		return nil, err
	}
	return Write(src, out, opts)
}

// Write applies opts to an already decoded raster and encodes the result to
// out as PNG.
func Write(src *raster.Raster, out string, opts Options) (*Result, error) {
	dst, err := Apply(src, opts)
	if err != nil {
		return nil, err
	}

	if err := codec.Encode(dst, out); err != nil {
		return nil, err
	}

	codec.Logger().Info("raster written",
		"output", out,
		"width", dst.Width(),
		"height", dst.Height(),
		"format", dst.Format().String())

	return &Result{
		Output:    out,
		SrcWidth:  src.Width(),
		SrcHeight: src.Height(),
		Width:     dst.Width(),
		Height:    dst.Height(),
		Format:    dst.Format().String(),
	}, nil
}
