// Package names checks the color name hierarchy of an ISCC-NBS document.
//
// Names come in three levels (e.g. "red" > "dark red" > "dark purplish red").
// At every level each id, name and abbreviation must be unique and ids must
// run from 1 to the largest id without gaps.
package names

import (
	"errors"
	"fmt"
	"sort"
)

// ErrNames is matched by every *NameError.
var ErrNames = errors.New("invalid color names")

// Entry is one named color at some level of the hierarchy.
type Entry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
	Abbr string `json:"abbr"`
}

// NameError describes a problem at one level of the hierarchy.
type NameError struct {
	Level int
	Msg   string
}

func (e *NameError) Error() string {
	return fmt.Sprintf("level %d names: %s", e.Level, e.Msg)
}

// Is reports ErrNames as a match.
func (e *NameError) Is(target error) bool {
	return target == ErrNames
}

// Tree holds the entries of the three levels in document order.
type Tree struct {
	Levels [3][]Entry
}

// Add appends e to the given level (1-3).
func (t *Tree) Add(level int, e Entry) {
	t.Levels[level-1] = append(t.Levels[level-1], e)
}

// Validate checks every level and returns the first problem found.
func (t *Tree) Validate() error {
	for i, entries := range t.Levels {
		if err := validateLevel(i+1, entries); err != nil {
			return err
		}
	}
	return nil
}

func validateLevel(level int, entries []Entry) error {
	byID := make(map[int]Entry, len(entries))
	byName := make(map[string]int, len(entries))
	byAbbr := make(map[string]int, len(entries))
	maxID := 0

	for _, e := range entries {
		if prev, ok := byID[e.ID]; ok {
			return &NameError{Level: level, Msg: fmt.Sprintf("conflicting color ids for %d: %s and %s", e.ID, prev.Name, e.Name)}
		}
		if id, ok := byName[e.Name]; ok {
			return &NameError{Level: level, Msg: fmt.Sprintf("duplicate name %q used for both id %d and %d", e.Name, id, e.ID)}
		}
		if id, ok := byAbbr[e.Abbr]; ok {
			return &NameError{Level: level, Msg: fmt.Sprintf("duplicate abbr %q used for both id %d and %d", e.Abbr, id, e.ID)}
		}
		byID[e.ID] = e
		byName[e.Name] = e.ID
		byAbbr[e.Abbr] = e.ID
		if e.ID > maxID {
			maxID = e.ID
		}
	}

	for id := 1; id <= maxID; id++ {
		if _, ok := byID[id]; !ok {
			return &NameError{Level: level, Msg: fmt.Sprintf("missing color id %d in 1..%d", id, maxID)}
		}
	}
	return nil
}

// Lookup returns the entry with the given id at level (1-3).
func (t *Tree) Lookup(level, id int) (Entry, bool) {
	for _, e := range t.Levels[level-1] {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// Level3 returns the finest-grained entry for id; region ids of the
// partition refer to this level.
func (t *Tree) Level3(id int) (Entry, bool) {
	return t.Lookup(3, id)
}

// Sorted returns the entries of a level ordered by id.
func (t *Tree) Sorted(level int) []Entry {
	out := append([]Entry(nil), t.Levels[level-1]...)
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}
