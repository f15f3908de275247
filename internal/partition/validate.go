package partition

import (
	"errors"
	"fmt"
	"strconv"
)

// Declaration is one rectangular region as read from the source document:
// a region id and a begin/end label on each axis.
//
// The hue range may wrap: if HueEnd comes before HueBegin on the hue axis the
// range crosses from the last hue back to the first. Several declarations may
// share a region id to describe a region that is not a single box.
type Declaration struct {
	Region      int
	HueBegin    string
	HueEnd      string
	ChromaBegin string
	ChromaEnd   string
	ValueBegin  string
	ValueEnd    string
}

// IndexRange is a half-open range of boundary indices on one axis.
type IndexRange struct {
	Begin int `json:"begin"`
	End   int `json:"end"`
}

// Block is a validated declaration, with labels resolved to axis indices.
type Block struct {
	Region int        `json:"region"`
	Hue    IndexRange `json:"hue"`
	Chroma IndexRange `json:"chroma"`
	Value  IndexRange `json:"value"`
}

// HueWraps reports whether the hue range crosses the end of the hue axis.
func (b Block) HueWraps() bool {
	return b.Hue.End < b.Hue.Begin
}

// Validate checks that decls tile the whole hue x chroma x value space of
// axes exactly once and returns one block per declaration, in input order.
//
// Declarations are applied in order. The first error stops validation:
//   - *ConfigError if a label is not on its axis, a chroma or value range
//     has its begin after its end, or a region id is < 1
//   - *OverlapError if a declaration claims a cell already claimed
//   - *GapError if, after all declarations, some cell is unclaimed
//
// An empty chroma or value range (begin == end) claims nothing; the cells it
// was meant to cover are reported as gaps.
func Validate(axes *Axes, decls []Declaration) ([]Block, error) {
	return validate(axes, decls, false)
}

// ValidateAll is like Validate but does not stop at the first problem. It
// keeps the first claim on each cell, skips declarations with bad labels, and
// returns every problem found joined with errors.Join. Blocks are returned
// only if there were no problems.
func ValidateAll(axes *Axes, decls []Declaration) ([]Block, error) {
	return validate(axes, decls, true)
}

func validate(axes *Axes, decls []Declaration, collect bool) ([]Block, error) {
	t := newTable(axes)
	blocks := make([]Block, 0, len(decls))
	var errs []error

	for _, d := range decls {
		b, err := axes.resolve(d)
		if err != nil {
			if !collect {
				return nil, err
			}
			errs = append(errs, err)
			continue
		}

		if err := t.claim(axes, b, func(err error) bool {
			errs = append(errs, err)
			return collect
		}); err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}

	for h := 0; h < t.hues; h++ {
		for c := 0; c < t.chromas; c++ {
			for v := 0; v < t.values; v++ {
				idx, _ := t.index(h, c, v)
				if t.cells[idx] != 0 {
					continue
				}
				gap := &GapError{Coord: axes.coord(h, c, v)}
				if !collect {
					return nil, gap
				}
				errs = append(errs, gap)
			}
		}
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return blocks, nil
}

// claim writes b's region id into every cell b covers. On an overlap it calls
// report; if report returns false the overlap is returned immediately.
func (t *table) claim(axes *Axes, b Block, report func(error) bool) error {
	hueEnd := b.Hue.End
	if b.HueWraps() {
		hueEnd += t.hues
	}

	for hl := b.Hue.Begin; hl < hueEnd; hl++ {
		h := hl % t.hues
		for c := b.Chroma.Begin; c < b.Chroma.End; c++ {
			for v := b.Value.Begin; v < b.Value.End; v++ {
				idx, ok := t.index(h, c, v)
				if !ok {
					return fmt.Errorf("cell (%d, %d, %d) outside %dx%dx%d table",
						h, c, v, t.hues, t.chromas, t.values)
				}

				if existing := t.cells[idx]; existing != 0 {
					err := &OverlapError{
						Coord:    axes.coord(h, c, v),
						Existing: existing,
						Incoming: b.Region,
					}
					if !report(err) {
						return err
					}
					continue
				}

				t.cells[idx] = b.Region
			}
		}
	}
	return nil
}

// resolve maps the labels of d to axis indices.
func (a *Axes) resolve(d Declaration) (Block, error) {
	if d.Region < 1 {
		return Block{}, &ConfigError{Tag: "range", Label: strconv.Itoa(d.Region), Msg: "region id must be positive"}
	}

	var b Block
	var err error
	b.Region = d.Region

	if b.Hue.Begin, err = a.hueIndex(d.HueBegin); err != nil {
		return Block{}, err
	}
	if b.Hue.End, err = a.hueIndex(d.HueEnd); err != nil {
		return Block{}, err
	}
	if b.Chroma.Begin, err = a.chromaIndex(d.ChromaBegin); err != nil {
		return Block{}, err
	}
	if b.Chroma.End, err = a.chromaIndex(d.ChromaEnd); err != nil {
		return Block{}, err
	}
	if b.Value.Begin, err = a.valueIndex(d.ValueBegin); err != nil {
		return Block{}, err
	}
	if b.Value.End, err = a.valueIndex(d.ValueEnd); err != nil {
		return Block{}, err
	}

	if b.Chroma.Begin > b.Chroma.End {
		return Block{}, &ConfigError{Tag: "range", Label: d.ChromaBegin + "-" + d.ChromaEnd, Msg: "chroma begin after end"}
	}
	if b.Value.Begin > b.Value.End {
		return Block{}, &ConfigError{Tag: "range", Label: d.ValueBegin + "-" + d.ValueEnd, Msg: "value begin after end"}
	}

	return b, nil
}
