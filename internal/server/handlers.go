package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"

	"github.com/ironsheep/redact-mcp/internal/artifact"
	"github.com/ironsheep/redact-mcp/internal/compositor"
	"github.com/ironsheep/redact-mcp/internal/region"
	"github.com/ironsheep/redact-mcp/internal/session"
	"github.com/ironsheep/redact-mcp/internal/textredact"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "redact_load_image").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified
// tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}

	result, err := s.executeTool(params.Name, params.Arguments)
	if err != nil {
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
//
// The host environment is expected to adapt its native input events into the
// pointer/selection tools: pointer-down carries the surface's current
// rendered size, selection-changed carries code-unit offsets only.
func (s *Server) executeTool(name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Session lifecycle
	case "redact_load_image":
		return s.handleLoadImage(args)
	case "redact_load_text":
		return s.handleLoadText(args)
	case "redact_reset":
		return s.handleReset(args)

	// Pointer events (image sessions)
	case "redact_pointer_down":
		return s.handlePointerDown(args)
	case "redact_pointer_move":
		return s.handlePointerMove(args)
	case "redact_pointer_up":
		return s.handlePointerUp(args)

	// Region marks
	case "redact_region_list":
		return s.handleRegionList(args)
	case "redact_region_remove":
		return s.handleRegionRemove(args)
	case "redact_region_clear":
		return s.handleRegionClear(args)

	// Selection events and range marks (text sessions)
	case "redact_selection_changed":
		return s.handleSelectionChanged(args)
	case "redact_selection_commit":
		return s.handleSelectionCommit(args)
	case "redact_range_add":
		return s.handleRangeAdd(args)
	case "redact_range_list":
		return s.handleRangeList(args)
	case "redact_range_remove":
		return s.handleRangeRemove(args)
	case "redact_range_clear":
		return s.handleRangeClear(args)

	// Rendering and export
	case "redact_preview_image":
		return s.handlePreviewImage(args)
	case "redact_text_preview":
		return s.handleTextPreview(args)
	case "redact_export_image":
		return s.handleExportImage(args)
	case "redact_export_text":
		return s.handleExportText(args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// Panics are suppressed; on marshal failure, returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// activeSession returns the current session or an error directing the caller
// to load an artifact first.
func (s *Server) activeSession() (*session.Session, error) {
	if s.sess == nil {
		return nil, fmt.Errorf("no active session: call redact_load_image or redact_load_text first")
	}
	return s.sess, nil
}

// === Session lifecycle handlers ===

type loadArgs struct {
	Path string `json:"path"`
}

// LoadResult describes the freshly loaded artifact.
type LoadResult struct {
	Kind   artifact.Kind `json:"kind"`
	Name   string        `json:"name"`
	Width  int           `json:"width,omitempty"`
	Height int           `json:"height,omitempty"`
	Length int           `json:"length,omitempty"`
}

func (s *Server) handleLoadImage(args json.RawMessage) (interface{}, error) {
	var a loadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if kind, err := artifact.Classify(a.Path); err != nil {
		return nil, err
	} else if kind != artifact.KindImage {
		return nil, fmt.Errorf("not an image file: %s", a.Path)
	}

	art, err := s.store.LoadImage(a.Path)
	if err != nil {
		return nil, err
	}

	// Loading a new artifact replaces the session; prior marks are gone.
	s.sess = session.NewImage(art)
	return &LoadResult{Kind: artifact.KindImage, Name: art.Name, Width: art.Width, Height: art.Height}, nil
}

func (s *Server) handleLoadText(args json.RawMessage) (interface{}, error) {
	var a loadArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if kind, err := artifact.Classify(a.Path); err != nil {
		return nil, err
	} else if kind != artifact.KindText {
		return nil, fmt.Errorf("not a text file: %s", a.Path)
	}

	art, err := s.store.LoadText(a.Path)
	if err != nil {
		return nil, err
	}

	s.sess = session.NewText(art)
	return &LoadResult{Kind: artifact.KindText, Name: art.Name, Length: art.Len()}, nil
}

func (s *Server) handleReset(json.RawMessage) (interface{}, error) {
	s.sess = nil
	s.store.Clear()
	return map[string]interface{}{"reset": true}, nil
}

// === Pointer event handlers ===

type pointerDownArgs struct {
	X             float64 `json:"x"`
	Y             float64 `json:"y"`
	DisplayWidth  float64 `json:"display_width"`
	DisplayHeight float64 `json:"display_height"`
}

func (s *Server) handlePointerDown(args json.RawMessage) (interface{}, error) {
	var a pointerDownArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.activeSession()
	if err != nil {
		return nil, err
	}
	sess.PointerDown(a.X, a.Y, a.DisplayWidth, a.DisplayHeight)
	return map[string]interface{}{"drawing": true}, nil
}

type pointerMoveArgs struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (s *Server) handlePointerMove(args json.RawMessage) (interface{}, error) {
	var a pointerMoveArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.activeSession()
	if err != nil {
		return nil, err
	}
	sess.PointerMove(a.X, a.Y)
	return map[string]interface{}{"drawing": true}, nil
}

// PointerUpResult reports the outcome of a finished drawing gesture.
type PointerUpResult struct {
	Committed bool         `json:"committed"`
	Mark      *region.Mark `json:"mark,omitempty"`
}

func (s *Server) handlePointerUp(json.RawMessage) (interface{}, error) {
	sess, err := s.activeSession()
	if err != nil {
		return nil, err
	}
	m, ok := sess.PointerUp()
	if !ok {
		return &PointerUpResult{Committed: false}, nil
	}
	return &PointerUpResult{Committed: true, Mark: &m}, nil
}

// === Region mark handlers ===

func (s *Server) handleRegionList(json.RawMessage) (interface{}, error) {
	sess, err := s.activeSession()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"regions": sess.Regions()}, nil
}

type removeArgs struct {
	ID string `json:"id"`
}

func (s *Server) handleRegionRemove(args json.RawMessage) (interface{}, error) {
	var a removeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.activeSession()
	if err != nil {
		return nil, err
	}
	sess.RemoveRegion(a.ID)
	return map[string]interface{}{"regions": sess.Regions()}, nil
}

func (s *Server) handleRegionClear(json.RawMessage) (interface{}, error) {
	sess, err := s.activeSession()
	if err != nil {
		return nil, err
	}
	sess.ClearRegions()
	return map[string]interface{}{"regions": sess.Regions()}, nil
}

// === Selection and range handlers ===

type selectionChangedArgs struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s *Server) handleSelectionChanged(args json.RawMessage) (interface{}, error) {
	var a selectionChangedArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.activeSession()
	if err != nil {
		return nil, err
	}
	sess.SelectionChanged(a.Start, a.End)
	return map[string]interface{}{"selection": []int{a.Start, a.End}}, nil
}

// RangeCommitResult reports the outcome of committing a selection or range.
type RangeCommitResult struct {
	Committed bool             `json:"committed"`
	Mark      *textredact.Mark `json:"mark,omitempty"`
}

func (s *Server) handleSelectionCommit(json.RawMessage) (interface{}, error) {
	sess, err := s.activeSession()
	if err != nil {
		return nil, err
	}
	m, ok := sess.CommitSelection()
	if !ok {
		return &RangeCommitResult{Committed: false}, nil
	}
	return &RangeCommitResult{Committed: true, Mark: &m}, nil
}

type rangeAddArgs struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

func (s *Server) handleRangeAdd(args json.RawMessage) (interface{}, error) {
	var a rangeAddArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.activeSession()
	if err != nil {
		return nil, err
	}
	m, ok := sess.AddRange(a.Start, a.End)
	if !ok {
		return &RangeCommitResult{Committed: false}, nil
	}
	return &RangeCommitResult{Committed: true, Mark: &m}, nil
}

func (s *Server) handleRangeList(json.RawMessage) (interface{}, error) {
	sess, err := s.activeSession()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"ranges": sess.Ranges()}, nil
}

func (s *Server) handleRangeRemove(args json.RawMessage) (interface{}, error) {
	var a removeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.activeSession()
	if err != nil {
		return nil, err
	}
	sess.RemoveRange(a.ID)
	return map[string]interface{}{"ranges": sess.Ranges()}, nil
}

func (s *Server) handleRangeClear(json.RawMessage) (interface{}, error) {
	sess, err := s.activeSession()
	if err != nil {
		return nil, err
	}
	sess.ClearRanges()
	return map[string]interface{}{"ranges": sess.Ranges()}, nil
}

// === Rendering and export handlers ===

type previewImageArgs struct {
	DisplayWidth   int    `json:"display_width"`
	DisplayHeight  int    `json:"display_height"`
	HighlightColor string `json:"highlight_color"`
}

// ImageResult carries a rendered raster as base64 PNG, in the same shape the
// export collaborator consumes.
type ImageResult struct {
	Width       int    `json:"width"`
	Height      int    `json:"height"`
	ImageBase64 string `json:"image_base64"`
	MimeType    string `json:"mime_type"`
	Filename    string `json:"filename,omitempty"`
}

func (s *Server) handlePreviewImage(args json.RawMessage) (interface{}, error) {
	var a previewImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.HighlightColor == "" {
		a.HighlightColor = compositor.DefaultHighlight
	}
	sess, err := s.activeSession()
	if err != nil {
		return nil, err
	}
	img, err := sess.PreviewImage(a.DisplayWidth, a.DisplayHeight, a.HighlightColor)
	if err != nil {
		return nil, err
	}
	return encodeImageResult(img, "")
}

type exportImageArgs struct {
	DisplayWidth  float64 `json:"display_width"`
	DisplayHeight float64 `json:"display_height"`
}

func (s *Server) handleExportImage(args json.RawMessage) (interface{}, error) {
	var a exportImageArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	sess, err := s.activeSession()
	if err != nil {
		return nil, err
	}
	img, filename, err := sess.ExportImage(a.DisplayWidth, a.DisplayHeight)
	if err != nil {
		return nil, err
	}
	return encodeImageResult(img, filename)
}

func (s *Server) handleTextPreview(json.RawMessage) (interface{}, error) {
	sess, err := s.activeSession()
	if err != nil {
		return nil, err
	}
	runs, err := sess.PreviewText()
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{"runs": runs}, nil
}

// TextExportResult carries the redacted document for the export collaborator.
type TextExportResult struct {
	Text     string `json:"text"`
	Length   int    `json:"length"`
	Filename string `json:"filename"`
}

func (s *Server) handleExportText(json.RawMessage) (interface{}, error) {
	sess, err := s.activeSession()
	if err != nil {
		return nil, err
	}
	text, filename, err := sess.ExportText()
	if err != nil {
		return nil, err
	}
	return &TextExportResult{Text: text, Length: len(text), Filename: filename}, nil
}

// encodeImageResult PNG-encodes a raster for transport. Encoding and naming
// belong to this boundary layer, not the engine.
func encodeImageResult(img *image.NRGBA, filename string) (*ImageResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode image: %w", err)
	}
	bounds := img.Bounds()
	return &ImageResult{
		Width:       bounds.Dx(),
		Height:      bounds.Dy(),
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
		Filename:    filename,
	}, nil
}
