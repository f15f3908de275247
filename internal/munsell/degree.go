package munsell

import "math"

// DegreeAverage returns the angle midway between a and b on the shorter arc.
//
// Both angles are in degrees and the result is in (-180, 180]. The midpoint
// of 350 and 20 is 5, not the 185 a plain arithmetic mean would give.
func DegreeAverage(a, b float64) float64 {
	ar := a * math.Pi / 180
	br := b * math.Pi / 180

	cavg := (math.Cos(ar) + math.Cos(br)) / 2
	savg := (math.Sin(ar) + math.Sin(br)) / 2

	return math.Atan2(savg, cavg) * 180 / math.Pi
}

// DegreeDiff returns the magnitude of the shortest angular distance between
// a and b, in degrees. The result is always in [0, 180].
func DegreeDiff(a, b float64) float64 {
	d := (a - b) * math.Pi / 180

	return math.Abs(math.Atan2(math.Sin(d), math.Cos(d)) * 180 / math.Pi)
}
