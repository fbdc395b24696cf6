package raster

import "errors"

var (
	// ErrFormat is returned when an operation is invoked on a Raster of the
	// wrong pixel format.
	ErrFormat = errors.New("unsupported pixel format")

	// ErrInvalidArgument is returned for non-positive dimensions or a pixel
	// buffer whose length does not match the declared geometry.
	ErrInvalidArgument = errors.New("invalid argument")
)
