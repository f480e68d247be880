package compositor

import (
	"fmt"
	"image"
	"image/draw"
	"math"

	"github.com/anthonynsimon/bild/blur"
	"github.com/disintegration/imaging"

	"github.com/ironsheep/redact-mcp/internal/region"
)

// blurRadius is the Gaussian blur radius applied inside redaction regions,
// in natural-resolution pixels. Fixed deliberately: redaction strength is not
// a user knob.
const blurRadius = 12.0

// ScaleRect maps a display-coordinate mark to a natural-resolution rectangle
// by scaling each axis independently. Each edge is scaled and rounded on its
// own, so marks that touch in display space still touch after mapping.
func ScaleRect(m region.Mark, scaleX, scaleY float64) image.Rectangle {
	x0 := int(math.Round(m.X * scaleX))
	y0 := int(math.Round(m.Y * scaleY))
	x1 := int(math.Round((m.X + m.W) * scaleX))
	y1 := int(math.Round((m.Y + m.H) * scaleY))
	return image.Rect(x0, y0, x1, y1)
}

// Composite renders the redacted raster at the source's natural resolution.
//
// The source is drawn unmodified as the base layer; for each mark the mapped
// rectangle is repainted from a blurred copy of the whole source. Rectangles
// are intersected with the image bounds, so marks that land partly or wholly
// outside the image clip silently, and zero-size rectangles after scaling are
// no-ops.
//
// Composite fails when src is nil (export invoked before an image finished
// loading). It never fails for any geometry of marks.
func Composite(src image.Image, marks []region.Mark, scaleX, scaleY float64) (*image.NRGBA, error) {
	if src == nil {
		return nil, fmt.Errorf("no source image loaded")
	}

	// Clone re-homes the pixels at (0,0) so mark rectangles and image
	// coordinates share an origin.
	out := imaging.Clone(src)
	if len(marks) == 0 {
		return out, nil
	}

	blurred := blur.Gaussian(out, blurRadius)
	bounds := out.Bounds()

	for _, m := range marks {
		r := ScaleRect(m, scaleX, scaleY).Intersect(bounds)
		if r.Empty() {
			continue
		}
		draw.Draw(out, r, blurred, r.Min, draw.Src)
	}

	return out, nil
}
