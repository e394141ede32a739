package contour

import (
	intImage "github.com/gogpu/contour/internal/image"
	"github.com/gogpu/contour/internal/march"
)

// Image is a public alias for the internal RGB buffer: 8-bit R, G, B
// triplets in row-major order.
type Image = intImage.RGB

// Codec errors.
var (
	// ErrUnsupportedFormat is returned when an image file extension or
	// header is not recognised.
	ErrUnsupportedFormat = intImage.ErrUnsupportedFormat

	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = intImage.ErrInvalidDimensions

	// ErrTooLarge is returned when an image header or allocation exceeds
	// the pixel limit.
	ErrTooLarge = intImage.ErrTooLarge
)

// NewImage creates a black width x height image.
func NewImage(width, height int) (*Image, error) {
	return intImage.NewRGB(width, height)
}

// LoadImage reads an image file, detecting the format from its content.
// Netpbm (PBM, PGM, PPM, PAM), PNG, JPEG, BMP, TIFF and WebP inputs are
// supported.
func LoadImage(path string) (*Image, error) {
	return intImage.Load(path)
}

// SaveImage writes img to path in the format given by the extension
// (.ppm, .png, .jpg, .bmp, .tiff). The file is replaced atomically, so a
// failed save leaves any existing file at path untouched.
func SaveImage(img *Image, path string) error {
	return img.Save(path)
}

// Point is a location inside a unit cell, (0,0) top-left to (1,1)
// bottom-right.
type Point = march.Point

// Segment is a contour piece between two cell edge midpoints.
type Segment = march.Segment

// Segments returns the contour segments drawn by the stencil of
// configuration k.
func Segments(k uint8) []Segment {
	return march.Segments(k)
}
