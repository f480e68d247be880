package compositor

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/redact-mcp/internal/region"
)

// DefaultHighlight is the preview fill color used when the caller supplies no
// highlight color or an unparseable one.
const DefaultHighlight = "#1f6feb"

const (
	fillAlpha   = 72 // translucent enough to read the pixels underneath
	borderWidth = 2
)

// Preview renders the editing preview: the source resized to the current
// display size with each committed region overlaid as a translucent
// highlight with a solid border. Marks are already in display coordinates,
// so no scale mapping is involved.
//
// highlightHex is a hex fill color ("#RRGGBB"); the border is a darker shade
// derived from it.
func Preview(src image.Image, marks []region.Mark, displayW, displayH int, highlightHex string) (*image.NRGBA, error) {
	if src == nil {
		return nil, fmt.Errorf("no source image loaded")
	}
	if displayW <= 0 || displayH <= 0 {
		return nil, fmt.Errorf("invalid display size %dx%d", displayW, displayH)
	}

	fill, err := colorful.Hex(highlightHex)
	if err != nil {
		fill, _ = colorful.Hex(DefaultHighlight)
	}
	border := fill.BlendRgb(colorful.Color{}, 0.4)

	out := imaging.Resize(src, displayW, displayH, imaging.Lanczos)
	bounds := out.Bounds()

	fr, fg, fb := fill.RGB255()
	br, bg, bb := border.RGB255()
	fillCol := color.NRGBA{R: fr, G: fg, B: fb, A: fillAlpha}
	borderCol := color.NRGBA{R: br, G: bg, B: bb, A: 255}

	for _, m := range marks {
		r := ScaleRect(m, 1, 1).Intersect(bounds)
		if r.Empty() {
			continue
		}
		fillRect(out, r, fillCol)
		strokeRect(out, r, borderCol, borderWidth)
	}

	return out, nil
}

// fillRect paints a translucent rectangle over the destination.
func fillRect(dst draw.Image, r image.Rectangle, c color.Color) {
	draw.Draw(dst, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// strokeRect draws a rectangle outline of the given width, inset into the
// rectangle so it never spills outside the region.
func strokeRect(dst draw.Image, r image.Rectangle, c color.Color, w int) {
	if w <= 0 {
		return
	}
	src := image.NewUniform(c)
	top := image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+w)
	bottom := image.Rect(r.Min.X, r.Max.Y-w, r.Max.X, r.Max.Y)
	left := image.Rect(r.Min.X, r.Min.Y, r.Min.X+w, r.Max.Y)
	right := image.Rect(r.Max.X-w, r.Min.Y, r.Max.X, r.Max.Y)
	for _, edge := range []image.Rectangle{top, bottom, left, right} {
		draw.Draw(dst, edge.Intersect(r), src, image.Point{}, draw.Src)
	}
}
