package march

import (
	"github.com/gogpu/contour/internal/image"
	"github.com/gogpu/contour/internal/parallel"
)

// Stencils holds one stencil image per marching squares configuration.
type Stencils [16]*image.RGB

// Stamp copies the stencil selected by each cell's configuration into img
// for every cell in the rows owned by rows. Cell (i, j) covers pixels
// [j*stepX, (j+1)*stepX) x [i*stepY, (i+1)*stepY).
//
// The copy is clipped to the cell and to the image, so a stencil of the
// wrong size yields wrong pixels but never touches another worker's cells.
func Stamp(img *image.RGB, g *Grid, st *Stencils, rows parallel.Span, stepX, stepY int) {
	w, h := img.Bounds()

	for i := rows.Start; i < rows.End; i++ {
		y0 := i * stepY
		for j := range g.cols {
			stencil := st[g.Configuration(i, j)]
			if stencil == nil {
				continue
			}
			x0 := j * stepX
			sw, sh := stencil.Bounds()
			cw := min(sw, stepX, w-x0) * image.BytesPerPixel
			ch := min(sh, stepY, h-y0)
			if cw <= 0 {
				continue
			}
			for dy := range ch {
				dst := img.RowBytes(y0 + dy)[x0*image.BytesPerPixel:]
				copy(dst[:cw], stencil.RowBytes(dy)[:cw])
			}
		}
	}
}
