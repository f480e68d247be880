// Package textredact implements the range-mark model and renderer for text
// redaction.
//
// Ranges are half-open [start,end) intervals over a document's UTF-16 code
// units, matching the offsets a host platform's text-selection primitives
// report. Overlapping and duplicate ranges are stored as-is; overlap is
// reconciled by DeriveMask, a pure function of the current marks, never by
// merging intervals at insertion time.
//
// Export replaces every covered code unit with the sentinel U+2588 FULL
// BLOCK. The sentinel is a single code unit, so the exported document always
// has exactly the source document's length.
package textredact
