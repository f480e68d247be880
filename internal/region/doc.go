// Package region implements the rectangle-mark model for image redaction.
//
// Marks live in display coordinates: pixel positions relative to the
// currently rendered (possibly scaled-down) surface, not the source image's
// natural resolution. Mapping to natural resolution happens later, in the
// compositor, using scale factors supplied at export time.
//
// A Drawer turns a pointer gesture (down, move, up) into a candidate mark.
// During the gesture the width and height may be negative (dragging up or
// left); Normalize shifts the origin so committed marks always have
// non-negative size. Rectangles whose normalized width or height is at or
// below MinMarkSize are treated as accidental clicks and never committed.
//
// A Collection is an ordered, append-only set of committed marks. Counts are
// assumed small; every operation is a linear scan.
package region
