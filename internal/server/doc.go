// Package server implements the MCP (Model Context Protocol) server for the
// ISCC-NBS color naming tools.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Document Operations:
//   - iscc_validate: Check that a document partitions Munsell space
//   - iscc_region_colors: Mean color of every region, with names
//   - iscc_classify: Region containing a Munsell color
//   - iscc_swatches: Region colors as a PNG swatch sheet
//
// Munsell Conversions:
//   - munsell_parse_hue: Hue notation to hue circle position
//   - munsell_to_rgb: Munsell color to approximate LCh and sRGB
//
// # Document Caching
//
// Validated documents are cached by path for the lifetime of the server
// process. iscc_validate always rereads its document and drops the cached
// copy, so it is the way to pick up edits.
//
// # Error Handling
//
// Tool execution errors are returned as JSON-RPC error responses with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: The Go error string
//
// iscc_validate is the exception: overlaps, gaps and other problems in a
// readable document are part of its result, not errors.
package server
