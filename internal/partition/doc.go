// Package partition validates that a set of rectangular region declarations
// tiles the hue x chroma x value space exactly once.
//
// The space is described by three axes of boundary labels. The hue axis is
// cyclic and every hue label starts a cell, so a hue axis of H labels has H
// cells and a range from the last label to the first is a single cell. The
// chroma and value axes are linear and end in a sentinel label (usually
// "INF"), so an axis of N labels has N-1 cells.
//
// # Validation
//
// Validate builds a dense occupancy table with one region id per cell and
// applies each declaration in order. A declaration claiming a cell that is
// already claimed is an *OverlapError; a cell left unclaimed at the end is a
// *GapError. Labels that are not on their axis, unparseable boundaries and
// unsorted axes are *ConfigError. Validate stops at the first problem;
// ValidateAll collects all of them.
//
// All three error types match their sentinel with errors.Is:
//
//	blocks, err := partition.Validate(axes, decls)
//	if errors.Is(err, partition.ErrOverlap) {
//	    ...
//	}
//
// # Bounds
//
// Blocks keep axis indices. Axes.Bounds resolves a block to numeric chroma
// and value boundaries and Munsell hue points, which is what the centroid
// computation and color classification work on.
package partition
