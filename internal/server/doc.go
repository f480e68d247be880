// Package server implements the MCP (Model Context Protocol) server for the
// redaction engine.
//
// This package provides a JSON-RPC 2.0 server that exposes the engine
// through the MCP protocol. A host UI (or any MCP-compatible client) plays
// the ingestion, layout, and export collaborators: it loads artifacts by
// path, adapts its native pointer/selection events into tool calls, supplies
// the surface's rendered size whenever a render needs one, and receives
// encoded results to write out.
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
// Session lifecycle:
//   - redact_load_image: Start an image session
//   - redact_load_text: Start a text session
//   - redact_reset: Discard the session and caches
//
// Pointer events (image sessions):
//   - redact_pointer_down / redact_pointer_move / redact_pointer_up:
//     the drawing gesture state machine
//
// Region marks:
//   - redact_region_list / redact_region_remove / redact_region_clear
//
// Selection and ranges (text sessions):
//   - redact_selection_changed / redact_selection_commit
//   - redact_range_add / redact_range_list / redact_range_remove /
//     redact_range_clear
//
// Rendering and export:
//   - redact_preview_image: display-scaled preview with highlights
//   - redact_text_preview: masked/unmasked run partition
//   - redact_export_image: natural-resolution blurred raster (base64 PNG)
//   - redact_export_text: sentinel-replaced document
//
// # Session Model
//
// The server owns at most one editing session. Loading an artifact replaces
// the session and destroys its marks; the protocol loop is single-threaded,
// so the session's one-mutator model holds. Loaded artifacts are cached by
// path for the lifetime of the process (or until redact_reset).
//
// # Error Handling
//
// Interaction noise — sub-threshold rectangles, degenerate selections —
// never produces an error; those tools report committed=false. Exporting
// without a loaded artifact, or with an unusable display size, is a real
// failure and returns a JSON-RPC error response with:
//   - code: -32000 (tool execution failure) or standard JSON-RPC codes
//   - message: Human-readable error description
//   - data: Additional error details (typically the Go error string)
//
// # Usage
//
// The server is typically started by an MCP client:
//
//	srv := server.New()
//	if err := srv.Run(); err != nil {
//	    log.Fatal(err)
//	}
package server
