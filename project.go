package flatgeom

import "math"

// projectX maps a longitude in degrees onto [0, 1]. Values outside
// [-180, 180] map outside the unit interval, deliberately unclamped.
func projectX(x float64) float64 {
	return x/360 + 0.5
}

// projectY maps a latitude in degrees onto [0, 1] using a spherical
// Mercator transform. The transform diverges near the poles, so the result
// is clamped to keep infinities out of the rest of the pipeline.
func projectY(y float64) float64 {
	sin := math.Sin(y * math.Pi / 180)
	y2 := 0.5 - 0.25*math.Log((1+sin)/(1-sin))/math.Pi

	if y2 < 0 {
		return 0
	}
	if y2 > 1 {
		return 1
	}
	return y2
}
