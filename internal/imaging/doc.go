// Package imaging renders computed region colors for display.
//
// # Color Representation
//
// Colors are returned in multiple formats for flexibility:
//   - Hex: 6-character format "#RRGGBB"
//   - RGB: 8-bit components (0-255)
//   - HSL: Hue (0-360), Saturation (0-100), Lightness (0-100)
//
// # Swatch Sheets
//
// RenderSwatches draws one square per region, left to right and top to
// bottom in region order, with (0,0) at the top-left corner. Sheets can be
// returned base64-encoded for MCP clients or written to disk as PNG.
package imaging
