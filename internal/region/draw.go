package region

// Drawer is the short-lived state machine behind an interactive drawing
// gesture: idle -> drawing -> idle. It holds at most one pending rectangle.
//
// Begin while a gesture is already pending discards the prior pending
// rectangle and starts fresh. Aborting a gesture (pointer leaving the
// surface) is not a separate path: the host calls End exactly as it would on
// pointer-up, and the usual normalization and size filter decide the outcome.
type Drawer struct {
	surfaceW float64
	surfaceH float64
	originX  float64
	originY  float64
	pending  Mark
	active   bool
}

// NewDrawer returns an idle Drawer.
func NewDrawer() *Drawer {
	return &Drawer{}
}

// Begin starts a pending mark with zero size at the pointer position, in
// display coordinates relative to the surface origin. surfaceW and surfaceH
// are the current rendered size of the surface; pointer positions are clamped
// into it for the rest of the gesture.
func (d *Drawer) Begin(x, y, surfaceW, surfaceH float64) {
	d.surfaceW = surfaceW
	d.surfaceH = surfaceH
	d.originX = clamp(x, 0, surfaceW)
	d.originY = clamp(y, 0, surfaceH)
	d.pending = Mark{X: d.originX, Y: d.originY}
	d.active = true
}

// Update recomputes the pending mark's size from the current pointer
// position. The position is clamped to the surface so the rectangle cannot be
// dragged outside it; the resulting width and height may be negative when
// dragging up or left. Update outside a gesture is a no-op.
func (d *Drawer) Update(x, y float64) {
	if !d.active {
		return
	}
	d.pending.W = clamp(x, 0, d.surfaceW) - d.originX
	d.pending.H = clamp(y, 0, d.surfaceH) - d.originY
}

// End finishes the gesture and returns the normalized candidate mark. ok is
// false when there is no pending gesture or the rectangle fails the
// minimum-size filter. The pending state is cleared regardless of outcome.
func (d *Drawer) End() (Mark, bool) {
	if !d.active {
		return Mark{}, false
	}
	m := d.pending
	d.pending = Mark{}
	d.active = false
	if !m.Committable() {
		return Mark{}, false
	}
	return m.Normalize(), true
}

// Active reports whether a drawing gesture is in progress.
func (d *Drawer) Active() bool {
	return d.active
}

// Pending returns the in-progress rectangle, un-normalized, for hosts that
// render a rubber-band box during the gesture. ok is false when idle.
func (d *Drawer) Pending() (Mark, bool) {
	if !d.active {
		return Mark{}, false
	}
	return d.pending, true
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
