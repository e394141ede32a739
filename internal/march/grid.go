// Package march implements the per-partition kernels of the marching
// squares pipeline: bicubic resampling, binary grid sampling and contour
// stencil stamping.
//
// Every kernel takes the range of rows owned by one worker and only writes
// inside it, so kernels for different workers can run concurrently without
// locks. Ordering between kernels is the caller's job.
package march

// Cell values.
const (
	// Light marks a cell whose sampled brightness is above the threshold.
	Light uint8 = 0

	// Dark marks a cell whose sampled brightness is at or below the threshold.
	Dark uint8 = 1

	// Unset marks a cell that has not been sampled yet.
	Unset uint8 = 0xFF
)

// Grid is a binary occupancy grid of (Rows()+1) x (Cols()+1) cells stored
// row-major in a single slice. Row i samples image row i*stepY, column j
// samples image column j*stepX; the extra last row and column sample the
// image's last pixel row and column.
type Grid struct {
	rows  int
	cols  int
	cells []uint8
}

// NewGrid creates a grid for an image of width x height pixels sampled every
// stepX columns and stepY rows. All cells start Unset.
func NewGrid(width, height, stepX, stepY int) *Grid {
	g := &Grid{
		rows: height / stepY,
		cols: width / stepX,
	}
	g.cells = make([]uint8, (g.rows+1)*(g.cols+1))
	for i := range g.cells {
		g.cells[i] = Unset
	}
	return g
}

// Rows returns the number of full cell rows (the grid has Rows()+1 rows of
// values).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of full cell columns (the grid has Cols()+1
// columns of values).
func (g *Grid) Cols() int { return g.cols }

// At returns the value at grid row i, column j.
func (g *Grid) At(i, j int) uint8 {
	return g.cells[i*(g.cols+1)+j]
}

// Set stores v at grid row i, column j.
func (g *Grid) Set(i, j int, v uint8) {
	g.cells[i*(g.cols+1)+j] = v
}

// Cells returns the underlying row-major cell slice.
func (g *Grid) Cells() []uint8 {
	return g.cells
}

// Complete reports whether every cell holds Light or Dark.
func (g *Grid) Complete() bool {
	for _, c := range g.cells {
		if c != Light && c != Dark {
			return false
		}
	}
	return true
}

// Configuration returns the 4-bit marching squares index of the cell whose
// top-left value is at (i, j): 8*TL + 4*TR + 2*BR + 1*BL.
func (g *Grid) Configuration(i, j int) uint8 {
	stride := g.cols + 1
	top := i*stride + j
	bottom := top + stride
	return 8*g.cells[top] + 4*g.cells[top+1] + 2*g.cells[bottom+1] + g.cells[bottom]
}
