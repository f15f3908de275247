// Package centroid computes a representative color for each region of a
// validated partition.
//
// Every block of a region is a sector of an annulus in the chroma/hue plane
// extruded along value. Its volume is
//
//	(chromaEnd² - chromaBegin²) * hueSpan/360 * (valueEnd - valueBegin)
//
// and its center is the midpoint of each range, with the hue midpoint taken
// on the circle. The region's centroid is the volume-weighted mean of its
// block centers; hue is averaged as a unit vector so that regions spanning
// 5RP..5R average correctly.
//
// Open-ended blocks are cut off at MaxChroma and MaxValue.
//
// The centroid is converted to CIE LCh with munsell.Color.ToApproxLch and
// its chroma is reduced in steps of GamutStep until the color fits in sRGB.
package centroid
