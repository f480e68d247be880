package textredact

import "github.com/google/uuid"

// Mark is one committed redaction range: a half-open [Start,End) interval of
// UTF-16 code-unit indices into the document.
type Mark struct {
	ID    string `json:"id"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// Collection is an ordered set of committed ranges over one document.
// Ranges may overlap or nest freely; insertion order is the only ordering.
//
// Like the region collection, it has a single logical owner and is not safe
// for concurrent use.
type Collection struct {
	docLen int
	marks  []Mark
}

// NewCollection returns an empty range collection for a document of docLen
// code units.
func NewCollection(docLen int) *Collection {
	return &Collection{docLen: docLen}
}

// Add appends a range with a fresh identifier. Degenerate (start == end) and
// out-of-bounds ranges are expected interaction noise: they are rejected
// silently and ok is false. No merging or deduplication happens here.
func (c *Collection) Add(start, end int) (Mark, bool) {
	if start < 0 || end > c.docLen || start >= end {
		return Mark{}, false
	}
	m := Mark{ID: uuid.NewString(), Start: start, End: end}
	c.marks = append(c.marks, m)
	return m, true
}

// Remove deletes the range with the given identifier; unknown identifiers
// are a no-op.
func (c *Collection) Remove(id string) {
	kept := c.marks[:0]
	for _, m := range c.marks {
		if m.ID != id {
			kept = append(kept, m)
		}
	}
	c.marks = kept
}

// Clear empties the collection.
func (c *Collection) Clear() {
	c.marks = nil
}

// Marks returns a copy of the committed ranges in insertion order.
func (c *Collection) Marks() []Mark {
	out := make([]Mark, len(c.marks))
	copy(out, c.marks)
	return out
}

// Len returns the number of committed ranges.
func (c *Collection) Len() int {
	return len(c.marks)
}

// DocLen returns the document length the collection validates against.
func (c *Collection) DocLen() int {
	return c.docLen
}

// DeriveMask computes the per-code-unit redaction mask: mask[i] is true iff
// some mark's [start,end) contains i. It is recomputed from scratch on every
// call so the result depends only on the current set of marks, never on the
// order they were added or removed in.
func DeriveMask(marks []Mark, docLen int) []bool {
	mask := make([]bool, docLen)
	for _, m := range marks {
		start := m.Start
		if start < 0 {
			start = 0
		}
		for i := start; i < m.End && i < docLen; i++ {
			mask[i] = true
		}
	}
	return mask
}
