package partition

import (
	"errors"
	"fmt"
)

var (
	// ErrConfig is matched by every *ConfigError.
	ErrConfig = errors.New("invalid partition configuration")

	// ErrOverlap is matched by every *OverlapError.
	ErrOverlap = errors.New("overlapping region declarations")

	// ErrGap is matched by every *GapError.
	ErrGap = errors.New("unfilled partition cell")
)

// ConfigError reports malformed input: an unparseable or unsorted axis
// boundary, a label that is not on its axis, or an invalid region id.
type ConfigError struct {
	Tag   string // axis or attribute the problem was found in, e.g. "chromas"
	Label string // offending label, if any
	Msg   string
	Err   error // underlying cause, if any
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Tag, e.Msg)
	if e.Label != "" {
		msg += fmt.Sprintf(": %q", e.Label)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// Is reports ErrConfig as a match.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// Coord addresses one cell of the occupancy table by axis index, together
// with the labels of the lower boundaries of that cell.
type Coord struct {
	Hue, Chroma, Value                int
	HueLabel, ChromaLabel, ValueLabel string
}

func (c Coord) String() string {
	return fmt.Sprintf("h=%s c=%s v=%s", c.HueLabel, c.ChromaLabel, c.ValueLabel)
}

// OverlapError reports two declarations claiming the same cell. Existing is
// the region that claimed it first, Incoming the one that tried to claim it
// again.
type OverlapError struct {
	Coord    Coord
	Existing int
	Incoming int
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("trying to place color %d over %d at %s", e.Incoming, e.Existing, e.Coord)
}

// Is reports ErrOverlap as a match.
func (e *OverlapError) Is(target error) bool {
	return target == ErrOverlap
}

// GapError reports a cell that no declaration claims.
type GapError struct {
	Coord Coord
}

func (e *GapError) Error() string {
	return fmt.Sprintf("no color placed at %s", e.Coord)
}

// Is reports ErrGap as a match.
func (e *GapError) Is(target error) bool {
	return target == ErrGap
}
