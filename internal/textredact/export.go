package textredact

import "unicode/utf16"

// Sentinel is the fixed replacement glyph substituted for every redacted
// code unit on export. U+2588 FULL BLOCK is a single UTF-16 code unit, so
// replacement never changes the document's length.
const Sentinel = '█'

// Export produces the redacted document: a copy of doc in which every code
// unit covered by any mark is replaced by the Sentinel. It works directly
// from the ranges, index by index, so overlapping, nested and disjoint
// ranges all behave identically. Range bounds outside the document clip
// silently.
func Export(doc []uint16, marks []Mark) []uint16 {
	out := make([]uint16, len(doc))
	copy(out, doc)
	for _, m := range marks {
		start := m.Start
		if start < 0 {
			start = 0
		}
		for i := start; i < m.End && i < len(out); i++ {
			out[i] = uint16(Sentinel)
		}
	}
	return out
}

// ExportString is Export decoded back to a Go string for the export
// collaborator.
func ExportString(doc []uint16, marks []Mark) string {
	return string(utf16.Decode(Export(doc, marks)))
}
