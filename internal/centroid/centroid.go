package centroid

import (
	"errors"
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/iscc-nbs-tools/internal/munsell"
	"github.com/ironsheep/iscc-nbs-tools/internal/partition"
)

// Gamut reduction parameters. Each step scales LCh chroma by GamutStep; after
// MaxGamutIterations steps the color is clamped channel by channel.
const (
	GamutStep          = 0.99
	MaxGamutIterations = 1000
)

// Region is the mean color of one region id.
type Region struct {
	ID int

	// Munsell is the volume-weighted centroid in Munsell space.
	Munsell munsell.Color

	// LCh is the approximate CIE LCh of the centroid after gamut reduction.
	LCh munsell.LCh

	// RGB is the displayable sRGB color; every channel is in [0, 1].
	RGB colorful.Color

	// GamutSteps is the number of chroma reduction steps that were needed.
	GamutSteps int
}

// Compute derives one Region for every id from 1 to the largest id in
// blocks, ordered by id.
//
// Each block is resolved against axes and added to the accumulator of its
// region. Returns a *DegenerateRegionError if some id in the range has no
// volume, including ids no block references, and a *partition.ConfigError if
// a hue label is not in Munsell notation.
func Compute(axes *partition.Axes, blocks []partition.Block) ([]Region, error) {
	maxID := 0
	for _, b := range blocks {
		if b.Region > maxID {
			maxID = b.Region
		}
	}

	acc := make(map[int]*Accumulator, maxID)
	for _, b := range blocks {
		bounds, err := axes.Bounds(b)
		if err != nil {
			return nil, fmt.Errorf("color %d: %w", b.Region, err)
		}
		a, ok := acc[b.Region]
		if !ok {
			a = &Accumulator{}
			acc[b.Region] = a
		}
		a.AddBlock(bounds)
	}

	regions := make([]Region, 0, maxID)
	for id := 1; id <= maxID; id++ {
		a, ok := acc[id]
		if !ok {
			return nil, &DegenerateRegionError{ID: id}
		}
		r, err := finalize(id, a)
		if err != nil {
			return nil, err
		}
		regions = append(regions, r)
	}

	return regions, nil
}

func finalize(id int, a *Accumulator) (Region, error) {
	mc, err := a.Centroid()
	if err != nil {
		var de *DegenerateRegionError
		if errors.As(err, &de) {
			de.ID = id
		}
		return Region{}, err
	}

	lch, rgb, steps := ReduceToGamut(mc.ToApproxLch())

	return Region{
		ID:         id,
		Munsell:    mc,
		LCh:        lch,
		RGB:        rgb,
		GamutSteps: steps,
	}, nil
}

// ReduceToGamut scales down the chroma of lch until it converts to a valid
// sRGB color. It stops when the color is in gamut, the chroma reaches zero,
// or MaxGamutIterations steps have been taken; a color still out of range at
// that point is clamped. The returned RGB always has channels in [0, 1].
func ReduceToGamut(lch munsell.LCh) (munsell.LCh, colorful.Color, int) {
	rgb := lch.RGB()
	steps := 0
	for !rgb.IsValid() && lch.C > 0 && steps < MaxGamutIterations {
		lch.C *= GamutStep
		rgb = lch.RGB()
		steps++
	}

	if !rgb.IsValid() {
		rgb = rgb.Clamped()
	}
	return lch, rgb, steps
}
