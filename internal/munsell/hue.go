package munsell

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
)

// LetterCodes lists the ten hue sector codes in order around the circle.
// The sector index of a code is its position in this slice.
var LetterCodes = []string{"R", "YR", "Y", "GY", "G", "BG", "B", "PB", "P", "RP"}

// ErrInvalidHue is returned when a hue notation cannot be parsed.
var ErrInvalidHue = errors.New("invalid munsell hue")

// Two-letter codes come before the one-letter codes they start with, since
// the first matching alternative wins.
var huePattern = regexp.MustCompile(`^(\d*\.?\d+)(YR|GY|BG|PB|RP|R|Y|G|B|P)`)

// Hue is a circular quantity on the [0, 100) Munsell hue scale, where 0 and
// 100 are the same point.
//
// Values produced by ParseHue, HueFromDegrees and HueFromRadians are always
// normalized into [0, 100). NewHue does not normalize; callers that rely on
// periodicity must pass a normalized value.
type Hue float64

// NewHue returns the hue point v as-is.
func NewHue(v float64) Hue {
	return Hue(v)
}

// ParseHue parses lettered hue notation such as "5R" or "7.5YR".
//
// The hue number is measured from the start of its sector, so "5R" is the
// center of the red sector and maps to point 0, "5Y" to 20 and "10RP" to 95.
//
// Returns an error wrapping ErrInvalidHue if s does not start with a number
// followed by one of the ten sector codes.
func ParseHue(s string) (Hue, error) {
	m := huePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidHue, s)
	}

	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q: %v", ErrInvalidHue, s, err)
	}

	code := sectorIndex(m[2])
	if code < 0 {
		return 0, fmt.Errorf("%w: unknown hue code %q", ErrInvalidHue, m[2])
	}

	return Hue(math.Mod(float64(code*10)+(n-5)+100, 100)), nil
}

// MustParseHue is like ParseHue but panics on malformed input.
// It is intended for constant tables and tests.
func MustParseHue(s string) Hue {
	h, err := ParseHue(s)
	if err != nil {
		panic(err)
	}
	return h
}

// HueFromDegrees converts an angle in degrees to a normalized hue.
func HueFromDegrees(deg float64) Hue {
	return Hue(normalizePositive(deg * (100.0 / 360.0)))
}

// HueFromRadians converts an angle in radians to a normalized hue.
func HueFromRadians(rad float64) Hue {
	return HueFromDegrees(rad * 180 / math.Pi)
}

// Raw returns the hue point.
func (h Hue) Raw() float64 {
	return float64(h)
}

// Normalized folds the hue into [0, 100).
func (h Hue) Normalized() Hue {
	return Hue(normalizePositive(float64(h)))
}

// Degrees returns the hue as an angle in degrees. The result is not
// normalized.
func (h Hue) Degrees() float64 {
	return float64(h) * (360.0 / 100.0)
}

// Radians returns the hue as an angle in radians. The result is not
// normalized.
func (h Hue) Radians() float64 {
	return h.Degrees() * math.Pi / 180
}

// String renders the hue in canonical lettered notation with two decimals,
// e.g. "5.00R" or "7.50YR".
func (h Hue) String() string {
	hp := normalizePositive(float64(h) + 5)
	hn := math.Mod(hp, 10)
	index := int((hp - hn) / 10)
	if index >= len(LetterCodes) {
		index = len(LetterCodes) - 1
	}

	return fmt.Sprintf("%.2f%s", hn, LetterCodes[index])
}

func sectorIndex(code string) int {
	for i, c := range LetterCodes {
		if c == code {
			return i
		}
	}
	return -1
}

// normalizePositive folds p into [0, 100). Unlike math.Mod the result is
// never negative.
func normalizePositive(p float64) float64 {
	n := p - math.Floor(p/100)*100
	if n >= 100 {
		// tiny negative inputs round up to exactly 100
		return 0
	}
	return n
}
