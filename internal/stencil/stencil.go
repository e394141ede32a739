// Package stencil renders the 16 marching squares stencils with gg.
//
// A stencil is a white cell with the contour segments of its configuration
// drawn in black between edge midpoints.
package stencil

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/contour/internal/image"
	"github.com/gogpu/contour/internal/march"
)

// DefaultLineWidth is the stroke width, in pixels, used by Render when
// lineWidth is not positive.
const DefaultLineWidth = 1.5

// Render draws the stencil of configuration k as a width x height image.
func Render(k uint8, width, height int, lineWidth float64) (*image.RGB, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("stencil: %w: %dx%d", image.ErrInvalidDimensions, width, height)
	}
	if lineWidth <= 0 {
		lineWidth = DefaultLineWidth
	}

	dc := gg.NewContext(width, height)
	defer func() { _ = dc.Close() }()

	dc.ClearWithColor(gg.White)
	dc.SetRGB(0, 0, 0)
	dc.SetLineWidth(lineWidth)
	dc.SetLineCap(gg.LineCapButt)

	w, h := float64(width), float64(height)
	for _, s := range march.Segments(k) {
		dc.MoveTo(s.A.X*w, s.A.Y*h)
		dc.LineTo(s.B.X*w, s.B.Y*h)
	}
	if len(march.Segments(k)) > 0 {
		if err := dc.Stroke(); err != nil {
			return nil, fmt.Errorf("stencil: stroke configuration %d: %w", k, err)
		}
	}

	img, err := image.FromStdImage(dc.Image())
	if err != nil {
		return nil, fmt.Errorf("stencil: convert configuration %d: %w", k, err)
	}
	return img, nil
}

// RenderAll draws all 16 stencils at the given cell size.
func RenderAll(width, height int, lineWidth float64) (*march.Stencils, error) {
	var st march.Stencils
	for k := range st {
		img, err := Render(uint8(k), width, height, lineWidth)
		if err != nil {
			return nil, err
		}
		st[k] = img
	}
	return &st, nil
}
