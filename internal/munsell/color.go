package munsell

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// labHueAnchors are the LCh(ab) hue angles of the principal Munsell hues 5R,
// 5Y, 5G, 5B and 5P. LCh has four primaries, so purple is added to match the
// five Munsell principals, and red is repeated a full turn later to close the
// cycle.
var labHueAnchors = [6]float64{
	24,       // red
	90,       // yellow
	145,      // green
	245,      // blue
	310,      // purple
	360 + 24, // red again
}

// Color is a point in Munsell space.
//
// Value typically ranges over 0-10 and Chroma over 0-16, but neither is
// bounded here.
type Color struct {
	Hue    Hue
	Value  float64
	Chroma float64
}

// NewColor returns the Munsell color h v/c.
func NewColor(h Hue, value, chroma float64) Color {
	return Color{Hue: h, Value: value, Chroma: chroma}
}

// ParseColor parses "<hue> <value>/<chroma>" notation, e.g. "5R 4/14" or
// "7.5YR 6.5/3".
func ParseColor(s string) (Color, error) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return Color{}, fmt.Errorf("invalid munsell color %q: want \"<hue> <value>/<chroma>\"", s)
	}

	h, err := ParseHue(fields[0])
	if err != nil {
		return Color{}, err
	}

	vc := strings.SplitN(fields[1], "/", 2)
	if len(vc) != 2 {
		return Color{}, fmt.Errorf("invalid munsell color %q: missing value/chroma", s)
	}
	value, err := strconv.ParseFloat(vc[0], 64)
	if err != nil {
		return Color{}, fmt.Errorf("invalid munsell value in %q: %w", s, err)
	}
	chroma, err := strconv.ParseFloat(vc[1], 64)
	if err != nil {
		return Color{}, fmt.Errorf("invalid munsell chroma in %q: %w", s, err)
	}

	return Color{Hue: h, Value: value, Chroma: chroma}, nil
}

// String renders the color as "<hue> <value>/<chroma>".
func (c Color) String() string {
	return fmt.Sprintf("%s %s/%s", c.Hue,
		strconv.FormatFloat(c.Value, 'f', -1, 64),
		strconv.FormatFloat(c.Chroma, 'f', -1, 64))
}

// ToApproxLch returns an approximation of this color in CIE LCh(ab).
//
// Lightness is value*10 and chroma is chroma*5, similar to Paul Centore's
// CIELABtoApproxMunsellSpec. The hue is interpolated linearly between the
// anchor angles of the five principal hues.
func (c Color) ToApproxLch() LCh {
	hue := normalizePositive(c.Hue.Raw())

	pos := hue / 20
	index := int(pos)
	if index > 4 {
		index = 4
	}
	frac := pos - float64(index)

	h := labHueAnchors[index] + (labHueAnchors[index+1]-labHueAnchors[index])*frac

	return LCh{
		L: c.Value * 10,
		C: c.Chroma * 5,
		H: math.Mod(h, 360),
	}
}

// LCh is a color in CIE LCh(ab) with a D65 white point. L is in 0-100, C is in
// the same units as Lab a/b, and H is in degrees.
type LCh struct {
	L float64 `json:"l"`
	C float64 `json:"c"`
	H float64 `json:"h"`
}

// RGB converts to sRGB. The result may be outside [0, 1] per channel; use
// InGamut to check.
func (l LCh) RGB() colorful.Color {
	return colorful.Hcl(l.H, l.C/100, l.L/100)
}

// InGamut reports whether the color is representable in sRGB.
func (l LCh) InGamut() bool {
	return l.RGB().IsValid()
}
