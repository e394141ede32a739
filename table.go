package contour

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"golang.org/x/image/draw"

	intImage "github.com/gogpu/contour/internal/image"
	"github.com/gogpu/contour/internal/march"
)

// StencilCount is the number of marching squares configurations.
const StencilCount = 16

// stencilExts lists the asset extensions LoadTable looks for, in order.
var stencilExts = []string{".ppm", ".png"}

// Table is the contour lookup table: one stencil per 4-bit configuration
// k = 8*topLeft + 4*topRight + 2*bottomRight + 1*bottomLeft.
//
// A Table is immutable after construction and safe for concurrent use.
type Table struct {
	stencils march.Stencils
}

// NewTable builds a table from 16 stencils. The images are not copied and
// must not be modified afterwards.
func NewTable(stencils [StencilCount]*Image) (*Table, error) {
	for k, s := range stencils {
		if s == nil {
			return nil, fmt.Errorf("%w: stencil %d is nil", ErrStencilCount, k)
		}
	}
	return &Table{stencils: stencils}, nil
}

// LoadTable reads stencils 0..15 from dir. Stencil k is read from k.ppm, or
// k.png when no PPM file exists. Stencil dimensions are not checked against
// the grid step.
func LoadTable(dir string) (*Table, error) {
	var stencils [StencilCount]*Image
	for k := range stencils {
		path, err := stencilPath(dir, k)
		if err != nil {
			return nil, err
		}
		img, err := intImage.Load(path)
		if err != nil {
			return nil, fmt.Errorf("contour: load stencil %d: %w", k, err)
		}
		stencils[k] = img
	}

	t, err := NewTable(stencils)
	if err != nil {
		return nil, err
	}
	w, h := t.Size()
	Logger().Info("stencil table loaded", "dir", dir, "width", w, "height", h)
	return t, nil
}

// stencilPath returns the first existing asset file for stencil k.
func stencilPath(dir string, k int) (string, error) {
	name := strconv.Itoa(k)
	for _, ext := range stencilExts {
		path := filepath.Join(dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("contour: stencil %d: %w", k, err)
		}
	}
	return "", fmt.Errorf("contour: stencil %d: no asset in %s: %w", k, dir, fs.ErrNotExist)
}

// Stencil returns the stencil of configuration k (0-15).
func (t *Table) Stencil(k uint8) *Image {
	return t.stencils[k&0xF]
}

// Size returns the dimensions of stencil 0.
func (t *Table) Size() (width, height int) {
	return t.stencils[0].Bounds()
}

// Fit returns a table whose stencils are rescaled to width x height with a
// Catmull-Rom filter. Stencils that already have that size are shared.
func (t *Table) Fit(width, height int) (*Table, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("contour: fit %dx%d: %w", width, height, ErrInvalidDimensions)
	}

	var out Table
	for k, s := range t.stencils {
		if w, h := s.Bounds(); w == width && h == height {
			out.stencils[k] = s
			continue
		}
		dst := image.NewNRGBA(image.Rect(0, 0, width, height))
		src := s.ToStdImage()
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
		fitted, err := intImage.FromStdImage(dst)
		if err != nil {
			return nil, fmt.Errorf("contour: fit stencil %d: %w", k, err)
		}
		out.stencils[k] = fitted
	}
	return &out, nil
}
