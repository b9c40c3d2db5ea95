// Package encode writes rendered face maps in the supported raster formats.
package encode

import (
	"image"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// ErrUnsupportedFormat is returned for image formats without an encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Encoder encodes an image into bytes.
type Encoder interface {
	// Encode encodes an image to bytes in the output format.
	Encode(img image.Image) ([]byte, error)

	// Format returns the format name (e.g. "jpeg", "png", "webp").
	Format() string

	// ContentType returns the MIME type of the encoded bytes.
	ContentType() string

	// FileExtension returns the appropriate file extension.
	FileExtension() string
}

// NewEncoder creates an encoder for the given format and quality.
// Quality is ignored by lossless formats.
func NewEncoder(format string, quality int) (Encoder, error) {
	switch strings.ToLower(format) {
	case "jpeg", "jpg":
		return &JPEGEncoder{Quality: quality}, nil
	case "png":
		return &PNGEncoder{}, nil
	case "webp":
		return newWebPEncoder(quality), nil
	default:
		return nil, errors.Wrapf(ErrUnsupportedFormat, "%q (supported: jpeg, png, webp)", format)
	}
}

// FormatFromPath infers the output format from the extension of path.
func FormatFromPath(path string) (string, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	switch ext {
	case "jpg", "jpeg":
		return "jpeg", nil
	case "png", "webp":
		return ext, nil
	case "":
		return "", errors.Wrapf(ErrUnsupportedFormat, "no extension on %q", path)
	default:
		return "", errors.Wrapf(ErrUnsupportedFormat, "extension %q", ext)
	}
}
