package partition

import (
	"github.com/ironsheep/iscc-nbs-tools/internal/munsell"
)

// Bounds is a block with its index ranges resolved to concrete boundary
// values. Open-ended blocks keep the +Inf of the sentinel label.
type Bounds struct {
	Region      int
	HueBegin    munsell.Hue
	HueEnd      munsell.Hue
	ChromaBegin float64
	ChromaEnd   float64
	ValueBegin  float64
	ValueEnd    float64
}

// Bounds resolves b against the axes. Hue labels must be in lettered
// notation ("5R", "7.5YR"); any other hue label is a *ConfigError.
func (a *Axes) Bounds(b Block) (Bounds, error) {
	hb, err := a.huePoint(b.Hue.Begin)
	if err != nil {
		return Bounds{}, err
	}
	he, err := a.huePoint(b.Hue.End)
	if err != nil {
		return Bounds{}, err
	}

	return Bounds{
		Region:      b.Region,
		HueBegin:    hb,
		HueEnd:      he,
		ChromaBegin: a.chromaBounds[b.Chroma.Begin],
		ChromaEnd:   a.chromaBounds[b.Chroma.End],
		ValueBegin:  a.valueBounds[b.Value.Begin],
		ValueEnd:    a.valueBounds[b.Value.End],
	}, nil
}

func (a *Axes) huePoint(i int) (munsell.Hue, error) {
	h, err := munsell.ParseHue(a.Hues[i])
	if err != nil {
		return 0, &ConfigError{Tag: "hues", Label: a.Hues[i], Msg: "not a munsell hue", Err: err}
	}
	return h, nil
}

// Contains reports whether the Munsell color c falls inside the bounds.
// Chroma and value use half-open intervals; the hue test is inclusive at
// both ends and follows the circle from HueBegin to HueEnd.
func (b Bounds) Contains(c munsell.Color) bool {
	if c.Chroma < b.ChromaBegin || c.Chroma >= b.ChromaEnd {
		return false
	}
	if c.Value < b.ValueBegin || c.Value >= b.ValueEnd {
		return false
	}
	return hueBetween(c.Hue, b.HueBegin, b.HueEnd)
}

func hueBetween(h, a, b munsell.Hue) bool {
	h, a, b = h.Normalized(), a.Normalized(), b.Normalized()

	if a < b {
		return a <= h && h <= b
	}
	return a <= h || h <= b
}
