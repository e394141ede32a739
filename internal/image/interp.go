package image

import "math"

// SampleBicubic performs bicubic interpolation at normalized coordinates (u, v).
// u and v are in the range [0.0, 1.0] where (0,0) is top-left and (1,1) is
// bottom-right. Uses Catmull-Rom splines over a 4x4 pixel neighborhood;
// neighbors outside the image are clamped to the edge.
func SampleBicubic(img *RGB, u, v float64) (r, g, b byte) {
	w, h := img.Bounds()

	// Convert normalized coords to continuous pixel coords
	fx := u*float64(w) - 0.5
	fy := v*float64(h) - 0.5

	x := int(math.Floor(fx))
	y := int(math.Floor(fy))
	tx := fx - float64(x)
	ty := fy - float64(y)

	wx := cubicWeights(tx)
	wy := cubicWeights(ty)

	var sr, sg, sb float64
	for dy := range 4 {
		py := clamp(y+dy-1, 0, h-1)
		row := img.RowBytes(py)

		var rr, rg, rb float64
		for dx := range 4 {
			px := clamp(x+dx-1, 0, w-1) * BytesPerPixel
			rr += float64(row[px]) * wx[dx]
			rg += float64(row[px+1]) * wx[dx]
			rb += float64(row[px+2]) * wx[dx]
		}
		sr += rr * wy[dy]
		sg += rg * wy[dy]
		sb += rb * wy[dy]
	}

	r = byte(clampFloat(math.Round(sr), 0, 255))
	g = byte(clampFloat(math.Round(sg), 0, 255))
	b = byte(clampFloat(math.Round(sb), 0, 255))
	return r, g, b
}

// clamp clamps an integer value to [minVal, maxVal].
func clamp(val, minVal, maxVal int) int {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// clampFloat clamps a float64 value to [minVal, maxVal].
//
//nolint:unparam // minVal is always 0 currently, but function is general-purpose
func clampFloat(val, minVal, maxVal float64) float64 {
	if val < minVal {
		return minVal
	}
	if val > maxVal {
		return maxVal
	}
	return val
}

// cubicWeight computes the Catmull-Rom cubic weight for distance t.
func cubicWeight(t float64) float64 {
	// Catmull-Rom spline (Mitchell-Netravali with B=0, C=0.5):
	// |t| < 1: (1.5|t|³ - 2.5|t|² + 1)
	// 1 ≤ |t| < 2: (-0.5|t|³ + 2.5|t|² - 4|t| + 2)
	// |t| ≥ 2: 0
	absT := math.Abs(t)
	if absT < 1 {
		return 1.5*absT*absT*absT - 2.5*absT*absT + 1.0
	}
	if absT < 2 {
		return -0.5*absT*absT*absT + 2.5*absT*absT - 4.0*absT + 2.0
	}
	return 0
}

// cubicWeights returns the four tap weights for fractional offset t,
// ordered from the pixel before the sample point to two pixels after it.
func cubicWeights(t float64) [4]float64 {
	return [4]float64{
		cubicWeight(t + 1),
		cubicWeight(t),
		cubicWeight(t - 1),
		cubicWeight(t - 2),
	}
}
