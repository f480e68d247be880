package compositor

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/redact-mcp/internal/region"
)

// createInMemoryImage creates a solid-color test image.
func createInMemoryImage(width, height int, c color.RGBA) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates a four-quadrant test image:
// red (top-left), green (top-right), blue (bottom-left), white (bottom-right).
func createPatternImage(width, height int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	midX := width / 2
	midY := height / 2
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.RGBA
			switch {
			case x < midX && y < midY:
				c = color.RGBA{255, 0, 0, 255}
			case x >= midX && y < midY:
				c = color.RGBA{0, 255, 0, 255}
			case x < midX && y >= midY:
				c = color.RGBA{0, 0, 255, 255}
			default:
				c = color.RGBA{255, 255, 255, 255}
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestScaleRect(t *testing.T) {
	tests := []struct {
		name   string
		m      region.Mark
		sx, sy float64
		want   image.Rectangle
	}{
		{"identity", region.Mark{X: 10, Y: 20, W: 30, H: 40}, 1, 1, image.Rect(10, 20, 40, 60)},
		{"uniform 2x", region.Mark{X: 80, Y: 50, W: 20, H: 30}, 2, 2, image.Rect(160, 100, 200, 160)},
		{"independent axes", region.Mark{X: 10, Y: 10, W: 10, H: 10}, 2, 4, image.Rect(20, 40, 40, 80)},
		{"fractional rounds", region.Mark{X: 1, Y: 1, W: 1, H: 1}, 1.5, 1.5, image.Rect(2, 2, 3, 3)},
		{"zero width", region.Mark{X: 10, Y: 10, W: 0, H: 10}, 2, 2, image.Rect(20, 20, 20, 40)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ScaleRect(tt.m, tt.sx, tt.sy)
			if got != tt.want {
				t.Errorf("ScaleRect: got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScaleRect_AdjacentStayAdjacent(t *testing.T) {
	// Two marks sharing an edge in display space must share it after scaling.
	a := region.Mark{X: 0, Y: 0, W: 33, H: 50}
	b := region.Mark{X: 33, Y: 0, W: 33, H: 50}

	ra := ScaleRect(a, 1.7, 1.7)
	rb := ScaleRect(b, 1.7, 1.7)

	if ra.Max.X != rb.Min.X {
		t.Errorf("edges diverged: a ends at %d, b starts at %d", ra.Max.X, rb.Min.X)
	}
}

func TestComposite_NilSource(t *testing.T) {
	_, err := Composite(nil, nil, 1, 1)
	if err == nil {
		t.Fatal("Composite with nil source should fail")
	}
}

func TestComposite_NoMarks(t *testing.T) {
	src := createPatternImage(100, 100)

	out, err := Composite(src, nil, 1, 1)
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}

	if !samePixels(src, out) {
		t.Error("output with no marks should be pixel-identical to the source")
	}
}

func TestComposite_RegionBlurred(t *testing.T) {
	src := createPatternImage(100, 100)
	// Mark straddling the four-color junction, where blur visibly mixes colors.
	marks := []region.Mark{{X: 30, Y: 30, W: 40, H: 40}}

	out, err := Composite(src, marks, 1, 1)
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}

	// Pixels near the color boundary inside the mark must change.
	changed := false
	for y := 30; y < 70 && !changed; y++ {
		for x := 30; x < 70 && !changed; x++ {
			if !samePixelAt(src, out, x, y) {
				changed = true
			}
		}
	}
	if !changed {
		t.Error("no pixel inside the marked region was blurred")
	}

	// Everything outside the mark is untouched.
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if x >= 30 && x < 70 && y >= 30 && y < 70 {
				continue
			}
			if !samePixelAt(src, out, x, y) {
				t.Fatalf("pixel outside the mark changed at (%d,%d)", x, y)
			}
		}
	}
}

func TestComposite_OrderInvariance(t *testing.T) {
	src := createPatternImage(120, 120)
	a := region.Mark{X: 20, Y: 20, W: 50, H: 50}
	b := region.Mark{X: 40, Y: 40, W: 50, H: 50} // overlaps a

	out1, err := Composite(src, []region.Mark{a, b}, 1, 1)
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	out2, err := Composite(src, []region.Mark{b, a}, 1, 1)
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}

	if !bytes.Equal(out1.Pix, out2.Pix) {
		t.Error("overlapping marks composited in different orders should be pixel-identical")
	}
}

func TestComposite_DuplicateMarkIdempotent(t *testing.T) {
	src := createPatternImage(100, 100)
	m := region.Mark{X: 25, Y: 25, W: 50, H: 50}

	once, err := Composite(src, []region.Mark{m}, 1, 1)
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	twice, err := Composite(src, []region.Mark{m, m}, 1, 1)
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}

	if !bytes.Equal(once.Pix, twice.Pix) {
		t.Error("a duplicated mark should not change the output")
	}
}

func TestComposite_ZeroSizeNoOp(t *testing.T) {
	src := createPatternImage(100, 100)
	marks := []region.Mark{{X: 50, Y: 50, W: 0, H: 30}}

	out, err := Composite(src, marks, 1, 1)
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}
	if !samePixels(src, out) {
		t.Error("zero-width mark should leave the image unchanged")
	}
}

func TestComposite_OutOfBoundsClipped(t *testing.T) {
	src := createPatternImage(100, 100)

	tests := []struct {
		name string
		m    region.Mark
	}{
		{"fully outside", region.Mark{X: 200, Y: 200, W: 50, H: 50}},
		{"negative origin", region.Mark{X: -500, Y: -500, W: 50, H: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := Composite(src, []region.Mark{tt.m}, 1, 1)
			if err != nil {
				t.Fatalf("Composite failed: %v", err)
			}
			if !samePixels(src, out) {
				t.Error("mark entirely outside the image should be a no-op")
			}
		})
	}
}

func TestComposite_PartialOverhangClips(t *testing.T) {
	src := createPatternImage(100, 100)
	// Hangs off the right edge; must clip, not error.
	marks := []region.Mark{{X: 80, Y: 40, W: 60, H: 30}}

	out, err := Composite(src, marks, 1, 1)
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}

	// Left of the mark must be untouched.
	for y := 0; y < 100; y++ {
		for x := 0; x < 80; x++ {
			if !samePixelAt(src, out, x, y) {
				t.Fatalf("pixel outside the mark changed at (%d,%d)", x, y)
			}
		}
	}
}

func TestComposite_DisplayScaleMapping(t *testing.T) {
	// Natural 200x100 shown at 100x50: scale factors are 2,2. A display mark
	// at (10,10,30,20) redacts natural (20,20)-(80,60) and nothing else.
	src := createPatternImage(200, 100)
	marks := []region.Mark{{X: 10, Y: 10, W: 30, H: 20}}

	out, err := Composite(src, marks, 2, 2)
	if err != nil {
		t.Fatalf("Composite failed: %v", err)
	}

	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			if x >= 20 && x < 80 && y >= 20 && y < 60 {
				continue
			}
			if !samePixelAt(src, out, x, y) {
				t.Fatalf("pixel outside the mapped region changed at (%d,%d)", x, y)
			}
		}
	}
}

func TestPreview_OverlayDrawn(t *testing.T) {
	src := createInMemoryImage(200, 100, color.RGBA{200, 200, 200, 255})
	marks := []region.Mark{{X: 10, Y: 10, W: 40, H: 30}}

	out, err := Preview(src, marks, 100, 50, DefaultHighlight)
	if err != nil {
		t.Fatalf("Preview failed: %v", err)
	}

	b := out.Bounds()
	if b.Dx() != 100 || b.Dy() != 50 {
		t.Fatalf("preview size: got %dx%d, want 100x50", b.Dx(), b.Dy())
	}

	// Inside the mark the highlight shifts the gray; outside it stays gray.
	inR, inG, inB, _ := out.At(30, 25).RGBA()
	outR, outG, outB, _ := out.At(80, 25).RGBA()
	if inR == outR && inG == outG && inB == outB {
		t.Error("marked region should be visually highlighted")
	}
}

func TestPreview_BadHighlightFallsBack(t *testing.T) {
	src := createInMemoryImage(100, 100, color.RGBA{200, 200, 200, 255})
	marks := []region.Mark{{X: 10, Y: 10, W: 40, H: 40}}

	if _, err := Preview(src, marks, 100, 100, "not-a-color"); err != nil {
		t.Fatalf("Preview should fall back to the default highlight: %v", err)
	}
}

func TestPreview_InvalidInput(t *testing.T) {
	src := createInMemoryImage(100, 100, color.RGBA{200, 200, 200, 255})

	if _, err := Preview(nil, nil, 100, 100, DefaultHighlight); err == nil {
		t.Error("Preview with nil source should fail")
	}
	if _, err := Preview(src, nil, 0, 100, DefaultHighlight); err == nil {
		t.Error("Preview with zero display width should fail")
	}
	if _, err := Preview(src, nil, 100, -1, DefaultHighlight); err == nil {
		t.Error("Preview with negative display height should fail")
	}
}

func samePixels(a, b image.Image) bool {
	ab, bb := a.Bounds(), b.Bounds()
	if ab.Dx() != bb.Dx() || ab.Dy() != bb.Dy() {
		return false
	}
	for y := 0; y < ab.Dy(); y++ {
		for x := 0; x < ab.Dx(); x++ {
			if !samePixelAt(a, b, x, y) {
				return false
			}
		}
	}
	return true
}

func samePixelAt(a, b image.Image, x, y int) bool {
	ar, ag, abl, aa := a.At(a.Bounds().Min.X+x, a.Bounds().Min.Y+y).RGBA()
	br, bg, bbl, ba := b.At(b.Bounds().Min.X+x, b.Bounds().Min.Y+y).RGBA()
	return ar == br && ag == bg && abl == bbl && aa == ba
}
