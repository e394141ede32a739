// Package image provides the RGB pixel buffer, bicubic sampling and codecs
// used by the contour pipeline.
//
// Pixels are stored as contiguous 8-bit R, G, B triplets in row-major order
// with no padding between rows.
package image

import (
	"errors"
	"fmt"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrTooLarge is returned when width*height exceeds MaxPixels.
	ErrTooLarge = errors.New("image: dimensions too large")
)

// BytesPerPixel is the storage size of one RGB pixel.
const BytesPerPixel = 3

// MaxPixels bounds width*height of any buffer, decoded or allocated.
const MaxPixels = 1 << 28

// RGB is a 24-bit RGB image buffer.
//
// Thread safety: RGB is safe for concurrent read access. Concurrent writes
// are safe only when goroutines write to disjoint pixel regions.
type RGB struct {
	pix    []byte
	width  int
	height int
}

// CheckDimensions reports whether a width x height buffer can be allocated.
func CheckDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return ErrInvalidDimensions
	}
	if width > MaxPixels/height {
		return fmt.Errorf("%w: %dx%d", ErrTooLarge, width, height)
	}
	return nil
}

// NewRGB creates a black image with the given dimensions.
func NewRGB(width, height int) (*RGB, error) {
	if err := CheckDimensions(width, height); err != nil {
		return nil, err
	}
	return &RGB{
		pix:    make([]byte, width*height*BytesPerPixel),
		width:  width,
		height: height,
	}, nil
}

// Bounds returns the image dimensions as (width, height).
func (b *RGB) Bounds() (int, int) {
	return b.width, b.height
}

// Stride returns the number of bytes per row.
func (b *RGB) Stride() int {
	return b.width * BytesPerPixel
}

// Pix returns the raw pixel data.
func (b *RGB) Pix() []byte {
	return b.pix
}

// RowBytes returns the pixel data for row y, or nil if y is out of bounds.
func (b *RGB) RowBytes(y int) []byte {
	if y < 0 || y >= b.height {
		return nil
	}
	stride := b.Stride()
	return b.pix[y*stride : (y+1)*stride]
}

// At returns the color of pixel (x, y). Coordinates must be in bounds.
func (b *RGB) At(x, y int) (r, g, bl uint8) {
	off := (y*b.width + x) * BytesPerPixel
	p := b.pix[off : off+3 : off+3]
	return p[0], p[1], p[2]
}

// SetRGB sets pixel (x, y). Coordinates must be in bounds.
func (b *RGB) SetRGB(x, y int, r, g, bl uint8) {
	off := (y*b.width + x) * BytesPerPixel
	p := b.pix[off : off+3 : off+3]
	p[0], p[1], p[2] = r, g, bl
}

// Fill sets every pixel to the given color.
func (b *RGB) Fill(r, g, bl uint8) {
	if len(b.pix) == 0 {
		return
	}
	b.pix[0], b.pix[1], b.pix[2] = r, g, bl
	// Doubling copy.
	for n := BytesPerPixel; n < len(b.pix); n *= 2 {
		copy(b.pix[n:], b.pix[:n])
	}
}

// Brightness returns the integer mean of the three channels of pixel (x, y).
func (b *RGB) Brightness(x, y int) uint8 {
	r, g, bl := b.At(x, y)
	return uint8((int(r) + int(g) + int(bl)) / 3)
}
