package utils

import (
	"math"
)

func Deg(rads float64) float64 {
	return rads / (math.Pi / 180)
}

func Rad(degrees float64) float64 {
	return (math.Pi / 180) * degrees
}

// Round rounds f to the given number of decimal places. Negative zero is
// folded into positive zero, so rounded values compare and print the same
// regardless of which side of zero they came from.
func Round(f float64, places int) float64 {
	p := math.Pow(10, float64(places))
	r := math.Round(f*p) / p
	if r == 0 {
		return 0
	}

	return r
}

// NormalizeDeg wraps an angle in degrees into [0, 360).
func NormalizeDeg(deg float64) float64 {
	d := math.Mod(deg, 360)
	if d < 0 {
		d += 360
	}

	return d
}
