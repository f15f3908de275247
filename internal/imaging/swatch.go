package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/iscc-nbs-tools/internal/centroid"
)

// Swatch sheet layout.
const (
	SwatchColumns   = 16
	DefaultCellSize = 32
	MinCellSize     = 8
	MaxCellSize     = 256
)

// SwatchResult contains an encoded swatch sheet.
type SwatchResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	Columns     int    `json:"columns"`
	Count       int    `json:"count"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
}

// RenderSwatches lays the region colors out as a grid of solid squares, in
// region order, SwatchColumns per row. Each square is cell pixels wide and
// carries the region id in its top-left corner. Unused cells of the last row
// are left white.
func RenderSwatches(regions []centroid.Region, cell int) (*image.NRGBA, error) {
	if cell < MinCellSize || cell > MaxCellSize {
		return nil, fmt.Errorf("cell size %d outside [%d, %d]", cell, MinCellSize, MaxCellSize)
	}
	if len(regions) == 0 {
		return nil, fmt.Errorf("no regions to render")
	}

	cols := SwatchColumns
	if len(regions) < cols {
		cols = len(regions)
	}
	rows := (len(regions) + cols - 1) / cols

	sheet := imaging.New(cols*cell, rows*cell, color.White)
	for i, r := range regions {
		tile := imaging.New(cell, cell, r.RGB.Clamped())
		drawLabel(tile, 2, 2, strconv.Itoa(r.ID), contrastColor(r.RGB))
		sheet = imaging.Paste(sheet, tile, image.Pt((i%cols)*cell, (i/cols)*cell))
	}

	return sheet, nil
}

// EncodePNGBase64 encodes img as a base64 PNG.
func EncodePNGBase64(img image.Image, count int) (*SwatchResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}

	b := img.Bounds()
	cols := SwatchColumns
	if count < cols {
		cols = count
	}
	return &SwatchResult{
		Width:       b.Dx(),
		Height:      b.Dy(),
		Columns:     cols,
		Count:       count,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// SavePNG writes img to path as a PNG file.
func SavePNG(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save %s: %w", path, err)
	}
	return nil
}

// drawLabel draws text in a 3x5 pixel digit font with its top-left corner
// at (x, y). Characters other than digits are skipped.
func drawLabel(img draw.Image, x, y int, text string, fg color.Color) {
	glyphs := map[rune][]string{
		'0': {"111", "101", "101", "101", "111"},
		'1': {"010", "110", "010", "010", "111"},
		'2': {"111", "001", "111", "100", "111"},
		'3': {"111", "001", "111", "001", "111"},
		'4': {"101", "101", "111", "001", "001"},
		'5': {"111", "100", "111", "001", "111"},
		'6': {"111", "100", "111", "101", "111"},
		'7': {"111", "001", "001", "001", "001"},
		'8': {"111", "101", "111", "101", "111"},
		'9': {"111", "101", "111", "001", "111"},
	}

	bounds := img.Bounds()
	const charWidth = 4

	cx := x
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			cx += charWidth
			continue
		}
		for row, line := range glyph {
			for col, pixel := range line {
				if pixel != '1' {
					continue
				}
				p := image.Pt(cx+col, y+row)
				if p.In(bounds) {
					img.Set(p.X, p.Y, fg)
				}
			}
		}
		cx += charWidth
	}
}
