package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spakin/netpbm"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	_ "golang.org/x/image/webp" // register WebP decoder
)

// I/O errors.
var (
	// ErrUnsupportedFormat is returned when the image format is not supported.
	ErrUnsupportedFormat = errors.New("image: unsupported format")
)

// jpegQuality is used when saving JPEG output.
const jpegQuality = 95

// Load loads an image from the given file path. The format is detected
// from the content: Netpbm (PBM, PGM, PPM, PAM), PNG, JPEG, BMP, TIFF and
// WebP are recognised.
func Load(path string) (*RGB, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// Decode decodes an image from the given reader, auto-detecting the format.
// The header is checked against MaxPixels before any pixel data is read.
func Decode(r io.Reader) (*RGB, error) {
	var header bytes.Buffer
	cfg, _, err := image.DecodeConfig(io.TeeReader(r, &header))
	if err != nil {
		return nil, decodeError(err)
	}
	if err := CheckDimensions(cfg.Width, cfg.Height); err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}

	img, _, err := image.Decode(io.MultiReader(&header, r))
	if err != nil {
		return nil, decodeError(err)
	}
	return FromStdImage(img)
}

func decodeError(err error) error {
	if errors.Is(err, image.ErrFormat) {
		return fmt.Errorf("%w: %w", ErrUnsupportedFormat, err)
	}
	return fmt.Errorf("image: decode: %w", err)
}

// Save writes the image to path, choosing the encoder from the file
// extension. The data is written to a temporary file in the same directory
// and renamed over path only once encoding succeeded, so a failed Save
// leaves path untouched.
func (b *RGB) Save(path string) error {
	enc, err := encoderFor(path)
	if err != nil {
		return err
	}
	return writeFile(path, func(w io.Writer) error { return enc(b, w) })
}

// writeFile atomically replaces path with the bytes produced by write.
func writeFile(path string, write func(io.Writer) error) error {
	path = filepath.Clean(path)
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	tmp := f.Name()

	if err := write(f); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return err
	}
	if err := f.Chmod(0o644); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("image: chmod file: %w", err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("image: close file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("image: rename file: %w", err)
	}
	return nil
}

type encodeFunc func(b *RGB, w io.Writer) error

func encoderFor(path string) (encodeFunc, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".ppm", ".pnm":
		return (*RGB).EncodePPM, nil
	case ".png":
		return (*RGB).EncodePNG, nil
	case ".jpg", ".jpeg":
		return func(b *RGB, w io.Writer) error { return b.EncodeJPEG(w, jpegQuality) }, nil
	case ".bmp":
		return (*RGB).EncodeBMP, nil
	case ".tif", ".tiff":
		return (*RGB).EncodeTIFF, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
}

// EncodePPM encodes the image as a binary (P6) PPM with maxval 255.
func (b *RGB) EncodePPM(w io.Writer) error {
	opts := &netpbm.EncodeOptions{Format: netpbm.PPM, MaxValue: 255}
	if err := netpbm.Encode(w, b.ToStdImage(), opts); err != nil {
		return fmt.Errorf("image: encode PPM: %w", err)
	}
	return nil
}

// EncodePNG encodes the image as PNG to the given writer.
func (b *RGB) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// EncodeJPEG encodes the image as JPEG to the given writer with the given
// quality (1-100).
func (b *RGB) EncodeJPEG(w io.Writer, quality int) error {
	quality = clamp(quality, 1, 100)
	if err := jpeg.Encode(w, b.ToStdImage(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("image: encode JPEG: %w", err)
	}
	return nil
}

// EncodeBMP encodes the image as BMP to the given writer.
func (b *RGB) EncodeBMP(w io.Writer) error {
	if err := bmp.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode BMP: %w", err)
	}
	return nil
}

// EncodeTIFF encodes the image as deflate-compressed TIFF to the given writer.
func (b *RGB) EncodeTIFF(w io.Writer) error {
	opts := &tiff.Options{Compression: tiff.Deflate}
	if err := tiff.Encode(w, b.ToStdImage(), opts); err != nil {
		return fmt.Errorf("image: encode TIFF: %w", err)
	}
	return nil
}

// FromStdImage creates an RGB image from a standard library image.Image.
// Alpha is discarded; premultiplied colors are taken as they are. Images
// with no area are rejected with ErrInvalidDimensions.
func FromStdImage(img image.Image) (*RGB, error) {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	buf, err := NewRGB(width, height)
	if err != nil {
		return nil, err
	}

	// Fast paths for the common decoder outputs
	switch src := img.(type) {
	case *image.RGBA:
		for y := range height {
			copyRGBA(buf.RowBytes(y), src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):])
		}
		return buf, nil
	case *image.NRGBA:
		for y := range height {
			copyRGBA(buf.RowBytes(y), src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):])
		}
		return buf, nil
	case *image.Gray:
		for y := range height {
			row := buf.RowBytes(y)
			srow := src.Pix[src.PixOffset(bounds.Min.X, bounds.Min.Y+y):]
			for x := range width {
				v := srow[x]
				row[x*3], row[x*3+1], row[x*3+2] = v, v, v
			}
		}
		return buf, nil
	}

	// Generic slow path for any image type. Netpbm samples above the
	// file's maxval come back above 0xffff and are clamped.
	for y := range height {
		row := buf.RowBytes(y)
		for x := range width {
			r, g, b, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			// RGBA() returns 16-bit values, scale to 8-bit
			row[x*3] = byte(min(r>>8, 0xff))
			row[x*3+1] = byte(min(g>>8, 0xff))
			row[x*3+2] = byte(min(b>>8, 0xff))
		}
	}
	return buf, nil
}

// copyRGBA copies the color channels of 4-byte pixels into dst.
func copyRGBA(dst, src []byte) {
	for x := 0; x*3 < len(dst); x++ {
		dst[x*3] = src[x*4]
		dst[x*3+1] = src[x*4+1]
		dst[x*3+2] = src[x*4+2]
	}
}

// ToStdImage converts the image to an opaque *image.NRGBA.
func (b *RGB) ToStdImage() *image.NRGBA {
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		row := b.RowBytes(y)
		dst := nrgba.Pix[y*nrgba.Stride:]
		for x := range b.width {
			dst[x*4] = row[x*3]
			dst[x*4+1] = row[x*3+1]
			dst[x*4+2] = row[x*3+2]
			dst[x*4+3] = 255 // Opaque
		}
	}
	return nrgba
}
