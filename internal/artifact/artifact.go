// Package artifact loads and holds the source artifact an editing session
// redacts: a decoded image with its natural pixel dimensions, or a text
// document held as UTF-16 code units.
//
// Artifacts are immutable once loaded. They own no marks; the session's mark
// collections reference them only through coordinate space (display pixels
// for images, code-unit indices for text).
package artifact

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"
	"unicode/utf16"
)

// Kind classifies an artifact by media type.
type Kind string

const (
	KindImage Kind = "image"
	KindText  Kind = "text"
)

// Image is a loaded image artifact: the decoded bitmap plus its natural
// (source-resolution) dimensions.
type Image struct {
	// Name is the artifact's base filename, used for export filename hints.
	Name string `json:"name"`

	// Width and Height are the natural pixel dimensions.
	Width  int `json:"width"`
	Height int `json:"height"`

	// Bitmap is the decoded image, ready to composite.
	Bitmap image.Image `json:"-"`
}

// Text is a loaded text artifact. Units holds the document as UTF-16 code
// units so range offsets match what host text-selection primitives report;
// surrogate pairs count as two units, same as the platform's offsets.
type Text struct {
	Name  string   `json:"name"`
	Units []uint16 `json:"-"`
}

// Len returns the document length in code units.
func (t *Text) Len() int {
	return len(t.Units)
}

// String decodes the document back to a Go string.
func (t *Text) String() string {
	return string(utf16.Decode(t.Units))
}

// NewText builds a text artifact from an in-memory document.
func NewText(name, content string) *Text {
	return &Text{Name: name, Units: utf16.Encode([]rune(content))}
}

// Classify determines an artifact's kind from its file extension. Anything
// that is neither a supported image nor a text format is rejected here, at
// ingestion, before the engine ever sees it.
func Classify(path string) (Kind, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return KindImage, nil
	case ".txt", ".md", ".log", ".csv", ".json":
		return KindText, nil
	default:
		return "", fmt.Errorf("unsupported content type: %s", filepath.Ext(path))
	}
}

// LoadImage opens and decodes an image file. Supported formats are PNG,
// JPEG, and GIF.
func LoadImage(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	bounds := img.Bounds()
	return &Image{
		Name:   filepath.Base(path),
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Bitmap: img,
	}, nil
}

// LoadText reads a text file into code units.
func LoadText(path string) (*Text, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read text: %w", err)
	}
	return NewText(filepath.Base(path), string(b)), nil
}
