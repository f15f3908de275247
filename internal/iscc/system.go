// Package iscc ties the document reader, the partition validator and the
// centroid computation together into a validated color naming system.
package iscc

import (
	"fmt"

	"github.com/ironsheep/iscc-nbs-tools/internal/centroid"
	"github.com/ironsheep/iscc-nbs-tools/internal/document"
	"github.com/ironsheep/iscc-nbs-tools/internal/munsell"
	"github.com/ironsheep/iscc-nbs-tools/internal/names"
	"github.com/ironsheep/iscc-nbs-tools/internal/partition"
)

// Options controls how a document is checked.
type Options struct {
	// CollectAll reports every overlap and gap instead of stopping at the
	// first one.
	CollectAll bool
}

// System is a fully validated ISCC-NBS document with its region colors.
type System struct {
	Axes    *partition.Axes
	Blocks  []partition.Block
	Regions []centroid.Region
	Names   *names.Tree

	bounds []partition.Bounds
}

// Open loads the document at path and builds a System from it.
func Open(path string, opts Options) (*System, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	return Build(doc, opts)
}

// Build validates doc and computes its region colors. Checks run in the
// order names, axes, partition, colors; the first failing step's error is
// returned.
func Build(doc *document.Document, opts Options) (*System, error) {
	tree := doc.Names()
	if err := tree.Validate(); err != nil {
		return nil, err
	}

	axes, err := doc.Axes()
	if err != nil {
		return nil, err
	}

	validate := partition.Validate
	if opts.CollectAll {
		validate = partition.ValidateAll
	}
	blocks, err := validate(axes, doc.Declarations())
	if err != nil {
		return nil, err
	}

	regions, err := centroid.Compute(axes, blocks)
	if err != nil {
		return nil, err
	}

	bounds := make([]partition.Bounds, len(blocks))
	for i, b := range blocks {
		// Compute already resolved every block, so this cannot fail.
		if bounds[i], err = axes.Bounds(b); err != nil {
			return nil, fmt.Errorf("color %d: %w", b.Region, err)
		}
	}

	return &System{
		Axes:    axes,
		Blocks:  blocks,
		Regions: regions,
		Names:   tree,
		bounds:  bounds,
	}, nil
}

// Region returns the computed color of region id.
func (s *System) Region(id int) (centroid.Region, bool) {
	if id < 1 || id > len(s.Regions) {
		return centroid.Region{}, false
	}
	return s.Regions[id-1], true
}

// Name returns the level-3 name entry for region id, if the document has one.
func (s *System) Name(id int) (names.Entry, bool) {
	return s.Names.Level3(id)
}

// Classify returns the region whose blocks contain c. Blocks are searched in
// document order and the first match wins; hue boundaries are inclusive, so a
// color exactly on a shared hue boundary goes to the earlier block.
func (s *System) Classify(c munsell.Color) (centroid.Region, bool) {
	for _, b := range s.bounds {
		if b.Contains(c) {
			return s.Region(b.Region)
		}
	}
	return centroid.Region{}, false
}
