package march

import (
	"github.com/gogpu/contour/internal/image"
	"github.com/gogpu/contour/internal/parallel"
)

// Classify returns Dark if brightness is at or below threshold, else Light.
func Classify(brightness, threshold uint8) uint8 {
	if brightness > threshold {
		return Light
	}
	return Dark
}

// Sample classifies the grid rows owned by a into g.
//
// Interior cell (i, j) samples pixel (j*stepX, i*stepY). The trailing column
// of each owned row samples the image's last pixel column. If a owns the
// trailing row, that row (corner included) samples the image's last pixel
// row. g must have been created with NewGrid for img and the same steps.
func Sample(img *image.RGB, g *Grid, a parallel.Assignment, stepX, stepY int, threshold uint8) {
	w, h := img.Bounds()
	lastX, lastY := w-1, h-1
	cols := g.cols

	for i := a.Rows.Start; i < a.Rows.End; i++ {
		y := i * stepY
		for j := range cols {
			g.Set(i, j, Classify(img.Brightness(j*stepX, y), threshold))
		}
		g.Set(i, cols, Classify(img.Brightness(lastX, y), threshold))
	}

	if !a.OwnsTrailingRow {
		return
	}
	rows := g.rows
	for j := range cols {
		g.Set(rows, j, Classify(img.Brightness(j*stepX, lastY), threshold))
	}
	g.Set(rows, cols, Classify(img.Brightness(lastX, lastY), threshold))
}
