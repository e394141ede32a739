package march

import (
	"github.com/gogpu/contour/internal/image"
	"github.com/gogpu/contour/internal/parallel"
)

// Resample fills the output rows in rows of dst with a bicubic resampling
// of src. Output pixel (x, y) samples src at normalized coordinates
// (x/(W-1), y/(H-1)) where W x H are the bounds of dst, so both dst
// dimensions must be at least 2.
func Resample(dst, src *image.RGB, rows parallel.Span) {
	w, h := dst.Bounds()
	maxX := float64(w - 1)
	maxY := float64(h - 1)

	for y := rows.Start; y < rows.End; y++ {
		v := float64(y) / maxY
		for x := range w {
			r, g, b := image.SampleBicubic(src, float64(x)/maxX, v)
			dst.SetRGB(x, y, r, g, b)
		}
	}
}
