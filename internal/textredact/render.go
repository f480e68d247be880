package textredact

import "unicode/utf16"

// Run is a maximal stretch of consecutive code units sharing one mask value.
//
// Unmasked runs carry their text so the preview can render it; masked runs
// carry only their length. The engine never hands masked content to a
// renderer — concealment happens here, not in styling.
type Run struct {
	Start  int    `json:"start"`
	End    int    `json:"end"`
	Masked bool   `json:"masked"`
	Text   string `json:"text,omitempty"`
}

// Len returns the run's length in code units. The preview renders masked
// runs as this many block glyphs, preserving character count and
// line-wrapping width.
func (r Run) Len() int {
	return r.End - r.Start
}

// Runs partitions a mask into maximal same-value runs, in document order.
// A single linear scan: a run is emitted whenever the mask value flips or
// the document ends. An empty mask yields no runs.
func Runs(mask []bool) []Run {
	if len(mask) == 0 {
		return nil
	}
	var runs []Run
	start := 0
	cur := mask[0]
	for i := 1; i < len(mask); i++ {
		if mask[i] != cur {
			runs = append(runs, Run{Start: start, End: i, Masked: cur})
			start = i
			cur = mask[i]
		}
	}
	runs = append(runs, Run{Start: start, End: len(mask), Masked: cur})
	return runs
}

// PreviewRuns derives the mask for the given marks and returns the preview
// partition of the document, attaching text to unmasked runs only.
func PreviewRuns(doc []uint16, marks []Mark) []Run {
	runs := Runs(DeriveMask(marks, len(doc)))
	for i, r := range runs {
		if !r.Masked {
			runs[i].Text = string(utf16.Decode(doc[r.Start:r.End]))
		}
	}
	return runs
}
