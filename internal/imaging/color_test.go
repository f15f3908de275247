package imaging

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
)

func TestNewColorResult(t *testing.T) {
	tests := []struct {
		name  string
		color colorful.Color
		hex   string
		rgb   RGBColor
		hsl   HSLColor
	}{
		{"red", colorful.Color{R: 1}, "#FF0000", RGBColor{255, 0, 0}, HSLColor{0, 100, 50}},
		{"green", colorful.Color{G: 1}, "#00FF00", RGBColor{0, 255, 0}, HSLColor{120, 100, 50}},
		{"blue", colorful.Color{B: 1}, "#0000FF", RGBColor{0, 0, 255}, HSLColor{240, 100, 50}},
		{"white", colorful.Color{R: 1, G: 1, B: 1}, "#FFFFFF", RGBColor{255, 255, 255}, HSLColor{0, 0, 100}},
		{"black", colorful.Color{}, "#000000", RGBColor{0, 0, 0}, HSLColor{0, 0, 0}},
		{"out of gamut", colorful.Color{R: 1.5, G: -0.2, B: 0}, "#FF0000", RGBColor{255, 0, 0}, HSLColor{0, 100, 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewColorResult(tt.color)
			if got.Hex != tt.hex {
				t.Errorf("Hex: got %s, want %s", got.Hex, tt.hex)
			}
			if got.RGB != tt.rgb {
				t.Errorf("RGB: got %+v, want %+v", got.RGB, tt.rgb)
			}
			if got.HSL != tt.hsl {
				t.Errorf("HSL: got %+v, want %+v", got.HSL, tt.hsl)
			}
		})
	}
}

func TestContrastColor(t *testing.T) {
	if got := contrastColor(colorful.Color{R: 1, G: 1, B: 1}); got != (colorful.Color{}) {
		t.Errorf("on white: got %v, want black", got)
	}
	if got := contrastColor(colorful.Color{B: 0.4}); got != (colorful.Color{R: 1, G: 1, B: 1}) {
		t.Errorf("on dark blue: got %v, want white", got)
	}
}
