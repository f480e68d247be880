package region

import "github.com/google/uuid"

// MinMarkSize is the minimum normalized width and height, in display pixels,
// a drawn rectangle must exceed to be committed. Anything at or below this is
// treated as an accidental click.
const MinMarkSize = 5.0

// Mark is one rectangular redaction region in display coordinates.
// X,Y is the top-left corner once normalized; W,H may be negative while a
// drag is in progress.
type Mark struct {
	ID string  `json:"id"`
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	W  float64 `json:"w"`
	H  float64 `json:"h"`
}

// Normalize returns the mark with a non-negative size, shifting the origin to
// the top-left corner. The geometric footprint is unchanged.
func (m Mark) Normalize() Mark {
	if m.W < 0 {
		m.X += m.W
		m.W = -m.W
	}
	if m.H < 0 {
		m.Y += m.H
		m.H = -m.H
	}
	return m
}

// Committable reports whether the mark passes the minimum-size filter after
// normalization.
func (m Mark) Committable() bool {
	n := m.Normalize()
	return n.W > MinMarkSize && n.H > MinMarkSize
}

// Collection is an ordered set of committed marks. Insertion order is the
// only ordering; overlaps are permitted and resolved by the compositor.
//
// A Collection has a single logical owner (the active editing session) and is
// not safe for concurrent use.
type Collection struct {
	marks []Mark
}

// NewCollection returns an empty mark collection.
func NewCollection() *Collection {
	return &Collection{}
}

// Add normalizes the mark, assigns it a fresh identifier and appends it.
// The stored mark is returned. Add does not apply the minimum-size filter;
// that is the Drawer's job, so that marks supplied directly by a host (e.g.
// restored from a prior interaction) are taken as-is.
func (c *Collection) Add(m Mark) Mark {
	m = m.Normalize()
	m.ID = uuid.NewString()
	c.marks = append(c.marks, m)
	return m
}

// Remove deletes the mark with the given identifier. Removing an unknown
// identifier is a no-op.
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

// Marks returns a copy of the committed marks in insertion order.
func (c *Collection) Marks() []Mark {
	out := make([]Mark, len(c.marks))
	copy(out, c.marks)
	return out
}

// Len returns the number of committed marks.
func (c *Collection) Len() int {
	return len(c.marks)
}
