// Package munsell provides the value types used to describe colors in the
// Munsell system: a circular hue, a cylindrical hue/value/chroma color, and an
// approximate conversion from that color into CIE LCh(ab) and sRGB.
//
// # Hue Scale
//
// Hues live on a periodic scale of 100 points where 0 and 100 are the same
// hue. The circle is split into 10 sectors of 10 points each, labelled
//
//	R YR Y GY G BG B PB P RP
//
// and the point 0 is placed at 5R, so "5R" is 0, "5YR" is 10, "5Y" is 20 and
// so on. Lettered notation such as "7.5YR" is parsed with ParseHue.
//
// # Angles
//
// DegreeAverage and DegreeDiff operate on angles in degrees and are safe
// across the 0/360 boundary: they decompose each angle into unit-circle
// components instead of subtracting raw degree values.
//
// # Conversion
//
// Color.ToApproxLch is an approximation, not a colorimetric transform:
// lightness is value*10, chroma is chroma*5, and the hue is mapped through a
// piecewise-linear table anchored on the LCh angles of red, yellow, green,
// blue and purple. LCh.RGB hands the result to go-colorful for the final
// conversion to sRGB (D65).
package munsell
