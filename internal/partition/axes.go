package partition

import (
	"math"
	"strconv"
)

// Axes holds the boundary labels of the three partition axes.
//
// Hues is cyclic: the cell after the last hue wraps back to index 0. Chromas
// and Values are linear and end in a sentinel label (conventionally "INF")
// that closes the last cell, so they describe len-1 cells each.
type Axes struct {
	Hues    []string
	Chromas []string
	Values  []string

	chromaBounds []float64
	valueBounds  []float64
}

// NewAxes validates the axis label lists and returns the parsed axes.
//
// Hues must be non-empty and distinct. Chromas and Values must have at least
// two labels, each parseable as a float ("INF" parses as +Inf), in strictly
// increasing order.
func NewAxes(hues, chromas, values []string) (*Axes, error) {
	if len(hues) == 0 {
		return nil, &ConfigError{Tag: "hues", Msg: "no hues"}
	}
	seen := make(map[string]bool, len(hues))
	for _, h := range hues {
		if seen[h] {
			return nil, &ConfigError{Tag: "hues", Label: h, Msg: "duplicate hue"}
		}
		seen[h] = true
	}

	cb, err := parseBoundaries("chromas", chromas)
	if err != nil {
		return nil, err
	}
	vb, err := parseBoundaries("values", values)
	if err != nil {
		return nil, err
	}

	return &Axes{
		Hues:         hues,
		Chromas:      chromas,
		Values:       values,
		chromaBounds: cb,
		valueBounds:  vb,
	}, nil
}

func parseBoundaries(tag string, labels []string) ([]float64, error) {
	if len(labels) < 2 {
		return nil, &ConfigError{Tag: tag, Msg: "need at least two boundaries"}
	}

	out := make([]float64, len(labels))
	for i, l := range labels {
		f, err := strconv.ParseFloat(l, 64)
		if err != nil || math.IsNaN(f) {
			return nil, &ConfigError{Tag: tag, Label: l, Msg: "not a number"}
		}
		if i > 0 && f <= out[i-1] {
			return nil, &ConfigError{Tag: tag, Label: l, Msg: "array is not in sorted order"}
		}
		out[i] = f
	}
	return out, nil
}

// HueCells returns the number of hue cells, equal to the number of hue labels.
func (a *Axes) HueCells() int { return len(a.Hues) }

// ChromaCells returns the number of chroma cells.
func (a *Axes) ChromaCells() int { return len(a.Chromas) - 1 }

// ValueCells returns the number of value cells.
func (a *Axes) ValueCells() int { return len(a.Values) - 1 }

// ChromaBoundary returns the numeric chroma boundary at index i.
func (a *Axes) ChromaBoundary(i int) float64 { return a.chromaBounds[i] }

// ValueBoundary returns the numeric value boundary at index i.
func (a *Axes) ValueBoundary(i int) float64 { return a.valueBounds[i] }

func (a *Axes) hueIndex(label string) (int, error) {
	return lookup("hues", a.Hues, label)
}

func (a *Axes) chromaIndex(label string) (int, error) {
	return lookup("chromas", a.Chromas, label)
}

func (a *Axes) valueIndex(label string) (int, error) {
	return lookup("values", a.Values, label)
}

func lookup(tag string, labels []string, label string) (int, error) {
	for i, l := range labels {
		if l == label {
			return i, nil
		}
	}
	return 0, &ConfigError{Tag: tag, Label: label, Msg: "unknown boundary"}
}

func (a *Axes) coord(h, c, v int) Coord {
	return Coord{
		Hue:         h,
		Chroma:      c,
		Value:       v,
		HueLabel:    a.Hues[h],
		ChromaLabel: a.Chromas[c],
		ValueLabel:  a.Values[v],
	}
}
