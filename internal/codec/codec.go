package codec

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	"image/png"
	"os"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder

	"github.com/ironsheep/rastertool/internal/raster"
)

var (
	// ErrDecode wraps every failure to read or decode an image file.
	ErrDecode = errors.New("decode failed")

	// ErrEncode wraps every failure to encode or write an image file.
	ErrEncode = errors.New("encode failed")
)

// Decode reads the image at path and returns it as an RGB24 raster.
//
// EXIF orientation is applied for JPEG input, so the raster is upright the
// way a viewer would show it.
//
// # Errors
//
//   - Returns ErrDecode if the file does not exist or cannot be read
//   - Returns ErrDecode if the content is not a recognized image
func Decode(path string) (*raster.Raster, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}

	r, err := raster.FromImage(img)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrDecode, path, err)
	}
	return r, nil
}

// Encode writes r to path as a PNG file, replacing any existing file.
//
// A partially written file is removed when encoding fails.
func Encode(r *raster.Raster, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncode, err)
	}

	err = imaging.Encode(f, r.Image(), imaging.PNG, imaging.PNGCompressionLevel(png.DefaultCompression))
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		os.Remove(path)
		return fmt.Errorf("%w: %s: %w", ErrEncode, path, err)
	}
	return nil
}

// Load is Decode with the error absorbed: it returns nil and false when the
// file cannot be decoded. The error is logged at warn level.
func Load(path string) (*raster.Raster, bool) {
	r, err := Decode(path)
	if err != nil {
		Logger().Warn("load failed", "path", path, "error", err)
		return nil, false
	}
	return r, true
}

// Save is Encode with the error absorbed: it reports whether the file was
// written. The error is logged at warn level.
func Save(r *raster.Raster, path string) bool {
	if err := Encode(r, path); err != nil {
		Logger().Warn("save failed", "path", path, "error", err)
		return false
	}
	return true
}

// Info contains metadata about an image file.
type Info struct {
	// Width is the image width in pixels after orientation is applied.
	Width int `json:"width"`

	// Height is the image height in pixels after orientation is applied.
	Height int `json:"height"`

	// Format is the container detected from the file content, e.g. "png",
	// "jpeg", "gif", "bmp", "tiff" or "webp".
	Format string `json:"format"`

	// PixelFormat is the raster format Decode produces for this file.
	PixelFormat string `json:"pixel_format"`

	// FileSizeBytes is the size of the file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// ReadInfo decodes the file at path and reports its metadata.
func ReadInfo(path string) (*Info, error) {
	r, err := Decode(path)
	if err != nil {
		return nil, err
	}
	return InfoFor(path, r)
}

// InfoFor reports metadata for path using r, an already decoded copy of the
// file, so the pixel data is not decoded again. Only the file header is read.
func InfoFor(path string, r *raster.Raster) (*Info, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	return &Info{
		Width:         r.Width(),
		Height:        r.Height(),
		Format:        detectFormat(path),
		PixelFormat:   r.Format().String(),
		FileSizeBytes: stat.Size(),
	}, nil
}

func detectFormat(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return "unknown"
	}
	defer f.Close()

	_, name, err := image.DecodeConfig(f)
	if err != nil {
		return "unknown"
	}
	return name
}
