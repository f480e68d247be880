// Package compositor renders redacted rasters from a source image and a set
// of region marks.
//
// Marks arrive in display coordinates. The compositor maps them to the
// source's natural resolution using per-axis scale factors supplied by the
// caller at render time (aspect ratio is not assumed preserved by layout),
// then paints a Gaussian-blurred copy of the source into each mapped
// rectangle. Everything outside the rectangles is left untouched.
//
// The blur operator and radius are the same for every region, so overlapping
// regions produce identical pixels regardless of processing order, and
// re-applying a region is a no-op.
package compositor
