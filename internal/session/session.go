// Package session owns one editing session: the loaded source artifact, its
// mark collections, and the interactive state machines that mutate them.
//
// The session is the engine's explicit input-event interface. Hosts adapt
// their native pointer and selection events into PointerDown/Move/Up,
// SelectionChanged and CommitSelection calls; the engine stays free of
// platform listener lifecycles. All mutation is synchronous and the session
// has exactly one mutator and one consumer, so no locking is involved.
package session

import (
	"fmt"
	"image"

	"github.com/ironsheep/redact-mcp/internal/artifact"
	"github.com/ironsheep/redact-mcp/internal/compositor"
	"github.com/ironsheep/redact-mcp/internal/region"
	"github.com/ironsheep/redact-mcp/internal/textredact"
)

// Session is one editing session over a single source artifact. Exactly one
// of the image/text fields is set; the mark collections are created empty on
// load and destroyed with the session.
type Session struct {
	kind artifact.Kind

	image   *artifact.Image
	regions *region.Collection
	drawer  *region.Drawer

	text   *artifact.Text
	ranges *textredact.Collection

	selStart     int
	selEnd       int
	hasSelection bool
}

// NewImage starts an image editing session.
func NewImage(art *artifact.Image) *Session {
	return &Session{
		kind:    artifact.KindImage,
		image:   art,
		regions: region.NewCollection(),
		drawer:  region.NewDrawer(),
	}
}

// NewText starts a text editing session.
func NewText(art *artifact.Text) *Session {
	docLen := 0
	if art != nil {
		docLen = art.Len()
	}
	return &Session{
		kind:   artifact.KindText,
		text:   art,
		ranges: textredact.NewCollection(docLen),
	}
}

// Kind returns the session's media kind.
func (s *Session) Kind() artifact.Kind {
	return s.kind
}

// === Pointer events (image sessions) ===

// PointerDown starts a drawing gesture at a display position. surfaceW and
// surfaceH are the current rendered size of the image surface, supplied by
// the host's layout at gesture start. On a text session this is a no-op.
func (s *Session) PointerDown(x, y, surfaceW, surfaceH float64) {
	if s.kind != artifact.KindImage {
		return
	}
	s.drawer.Begin(x, y, surfaceW, surfaceH)
}

// PointerMove updates the in-progress rectangle.
func (s *Session) PointerMove(x, y float64) {
	if s.kind != artifact.KindImage {
		return
	}
	s.drawer.Update(x, y)
}

// PointerUp ends the gesture; if the rectangle survives normalization and
// the minimum-size filter it is committed to the region collection. The
// committed mark and ok=true are returned, otherwise ok=false.
//
// A cancelled gesture (pointer leaving the surface) goes through this same
// path: whatever rectangle exists at that moment is normalized and filtered.
func (s *Session) PointerUp() (region.Mark, bool) {
	if s.kind != artifact.KindImage {
		return region.Mark{}, false
	}
	m, ok := s.drawer.End()
	if !ok {
		return region.Mark{}, false
	}
	return s.regions.Add(m), true
}

// Regions returns the committed region marks in insertion order.
func (s *Session) Regions() []region.Mark {
	if s.regions == nil {
		return nil
	}
	return s.regions.Marks()
}

// RemoveRegion removes one region mark by identifier; unknown ids are a
// no-op.
func (s *Session) RemoveRegion(id string) {
	if s.regions != nil {
		s.regions.Remove(id)
	}
}

// ClearRegions empties the region collection.
func (s *Session) ClearRegions() {
	if s.regions != nil {
		s.regions.Clear()
	}
}

// === Selection events (text sessions) ===

// SelectionChanged records the active selection's offsets. Only offsets are
// taken, never the selected text itself; the engine has no reason to see the
// sensitive substring. On an image session this is a no-op.
func (s *Session) SelectionChanged(start, end int) {
	if s.kind != artifact.KindText {
		return
	}
	s.selStart = start
	s.selEnd = end
	s.hasSelection = true
}

// CommitSelection turns the active selection into a committed range and
// clears the selection state. It is an explicit user action, not automatic
// on every selection change. ok is false when there is no selection or the
// selection is degenerate.
func (s *Session) CommitSelection() (textredact.Mark, bool) {
	if s.kind != artifact.KindText || !s.hasSelection {
		return textredact.Mark{}, false
	}
	start, end := s.selStart, s.selEnd
	s.selStart, s.selEnd = 0, 0
	s.hasSelection = false
	return s.ranges.Add(start, end)
}

// AddRange commits a range directly, bypassing selection state. Degenerate
// and out-of-bounds ranges are rejected silently.
func (s *Session) AddRange(start, end int) (textredact.Mark, bool) {
	if s.kind != artifact.KindText {
		return textredact.Mark{}, false
	}
	return s.ranges.Add(start, end)
}

// Ranges returns the committed range marks in insertion order.
func (s *Session) Ranges() []textredact.Mark {
	if s.ranges == nil {
		return nil
	}
	return s.ranges.Marks()
}

// RemoveRange removes one range mark by identifier; unknown ids are a no-op.
func (s *Session) RemoveRange(id string) {
	if s.ranges != nil {
		s.ranges.Remove(id)
	}
}

// ClearRanges empties the range collection.
func (s *Session) ClearRanges() {
	if s.ranges != nil {
		s.ranges.Clear()
	}
}

// === Rendering and export ===

// ExportFilename derives the deterministic filename hint for an exported
// artifact.
func ExportFilename(originalName string) string {
	return "redacted-" + originalName
}

// ExportImage renders the redacted raster at natural resolution and returns
// it with its filename hint. displayW and displayH are the image surface's
// current rendered size, supplied by the host's layout at this moment; the
// scale factors are derived here and never cached across layout changes.
//
// Export fails loudly when no decoded image is available or the display size
// is unusable. A failed export leaves the mark collection untouched, so the
// user can re-trigger it.
func (s *Session) ExportImage(displayW, displayH float64) (*image.NRGBA, string, error) {
	if s.kind != artifact.KindImage {
		return nil, "", fmt.Errorf("not an image session")
	}
	if s.image == nil || s.image.Bitmap == nil {
		return nil, "", fmt.Errorf("no source image loaded")
	}
	if displayW <= 0 || displayH <= 0 {
		return nil, "", fmt.Errorf("invalid display size %gx%g", displayW, displayH)
	}

	scaleX := float64(s.image.Width) / displayW
	scaleY := float64(s.image.Height) / displayH

	out, err := compositor.Composite(s.image.Bitmap, s.regions.Marks(), scaleX, scaleY)
	if err != nil {
		return nil, "", err
	}
	return out, ExportFilename(s.image.Name), nil
}

// PreviewImage renders the display-scaled editing preview with committed
// regions highlighted.
func (s *Session) PreviewImage(displayW, displayH int, highlightHex string) (*image.NRGBA, error) {
	if s.kind != artifact.KindImage {
		return nil, fmt.Errorf("not an image session")
	}
	if s.image == nil || s.image.Bitmap == nil {
		return nil, fmt.Errorf("no source image loaded")
	}
	return compositor.Preview(s.image.Bitmap, s.regions.Marks(), displayW, displayH, highlightHex)
}

// PreviewText returns the preview partition of the document: maximal
// same-mask runs with text attached to unmasked runs only.
func (s *Session) PreviewText() ([]textredact.Run, error) {
	if s.kind != artifact.KindText {
		return nil, fmt.Errorf("not a text session")
	}
	if s.text == nil {
		return nil, fmt.Errorf("no document loaded")
	}
	return textredact.PreviewRuns(s.text.Units, s.ranges.Marks()), nil
}

// ExportText produces the redacted document and its filename hint. Every
// code unit covered by any committed range becomes the sentinel glyph; the
// exported length always equals the source length.
func (s *Session) ExportText() (string, string, error) {
	if s.kind != artifact.KindText {
		return "", "", fmt.Errorf("not a text session")
	}
	if s.text == nil {
		return "", "", fmt.Errorf("no document loaded")
	}
	out := textredact.ExportString(s.text.Units, s.ranges.Marks())
	return out, ExportFilename(s.text.Name), nil
}
