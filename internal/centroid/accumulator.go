package centroid

import (
	"errors"
	"fmt"
	"math"

	"github.com/ironsheep/iscc-nbs-tools/internal/munsell"
	"github.com/ironsheep/iscc-nbs-tools/internal/partition"
)

// Open-ended blocks are cut off at these boundaries so they contribute a
// finite volume.
const (
	MaxChroma = 16.0
	MaxValue  = 10.0
)

// ErrDegenerateRegion is matched by every *DegenerateRegionError.
var ErrDegenerateRegion = errors.New("degenerate region")

// DegenerateRegionError reports a region whose accumulated volume is zero or
// not finite, so no mean color can be derived for it. A region id that no
// block references is degenerate too.
type DegenerateRegionError struct {
	ID     int
	Volume float64
}

func (e *DegenerateRegionError) Error() string {
	return fmt.Sprintf("color %d has no usable volume (%g)", e.ID, e.Volume)
}

// Is reports ErrDegenerateRegion as a match.
func (e *DegenerateRegionError) Is(target error) bool {
	return target == ErrDegenerateRegion
}

// Accumulator sums the volume-weighted centers of the blocks of one region.
// The zero value is ready to use.
type Accumulator struct {
	value  float64
	chroma float64
	hueX   float64
	hueY   float64
	volume float64
}

// AddBlock adds the contribution of one block and returns its volume.
//
// The block is treated as a sector of an annulus in the chroma/hue plane
// extruded along value: its area is the difference of the two chroma radii
// squared, times the fraction of the circle its hue range spans.
func (a *Accumulator) AddBlock(b partition.Bounds) float64 {
	hb := b.HueBegin.Degrees()
	he := b.HueEnd.Degrees()
	cb, ce := b.ChromaBegin, math.Min(b.ChromaEnd, MaxChroma)
	vb, ve := b.ValueBegin, math.Min(b.ValueEnd, MaxValue)

	hueDelta := munsell.DegreeDiff(hb, he)

	outer := ce * ce * (hueDelta / 360)
	inner := cb * cb * (hueDelta / 360)
	volume := (outer - inner) * (ve - vb)

	centerChroma := (cb + ce) / 2
	centerValue := (vb + ve) / 2
	centerHue := munsell.DegreeAverage(hb, he) * math.Pi / 180

	a.value += centerValue * volume
	a.chroma += centerChroma * volume
	a.hueX += math.Cos(centerHue) * volume
	a.hueY += math.Sin(centerHue) * volume
	a.volume += volume

	return volume
}

// Volume returns the total volume added so far.
func (a *Accumulator) Volume() float64 {
	return a.volume
}

// Centroid returns the volume-weighted mean color. It fails with
// ErrDegenerateRegion if the accumulated volume is not positive and finite.
func (a *Accumulator) Centroid() (munsell.Color, error) {
	if !(a.volume > 0) || math.IsInf(a.volume, 0) {
		return munsell.Color{}, &DegenerateRegionError{Volume: a.volume}
	}

	angle := math.Atan2(a.hueY/a.volume, a.hueX/a.volume) * 180 / math.Pi

	return munsell.Color{
		Hue:    munsell.HueFromDegrees(angle),
		Value:  a.value / a.volume,
		Chroma: a.chroma / a.volume,
	}, nil
}
