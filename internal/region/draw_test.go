package region

import "testing"

func TestDrawer_BasicGesture(t *testing.T) {
	d := NewDrawer()

	d.Begin(10, 20, 500, 250)
	d.Update(60, 80)

	m, ok := d.End()
	if !ok {
		t.Fatal("gesture should commit")
	}
	want := Mark{X: 10, Y: 20, W: 50, H: 60}
	if m != want {
		t.Errorf("got %+v, want %+v", m, want)
	}
	if d.Active() {
		t.Error("drawer should be idle after End")
	}
}

func TestDrawer_DragUpLeft(t *testing.T) {
	d := NewDrawer()

	d.Begin(100, 50, 500, 250)
	d.Update(80, 80)

	// Pending rectangle keeps the signed size while the drag is live.
	p, ok := d.Pending()
	if !ok {
		t.Fatal("expected pending mark")
	}
	if p.W != -20 || p.H != 30 {
		t.Errorf("pending size: got (%v,%v), want (-20,30)", p.W, p.H)
	}

	m, ok := d.End()
	if !ok {
		t.Fatal("gesture should commit")
	}
	want := Mark{X: 80, Y: 50, W: 20, H: 30}
	if m != want {
		t.Errorf("got %+v, want %+v", m, want)
	}
}

func TestDrawer_ClampToSurface(t *testing.T) {
	d := NewDrawer()

	d.Begin(490, 240, 500, 250)
	d.Update(600, 300) // pointer dragged past the bottom-right corner

	m, ok := d.End()
	if !ok {
		t.Fatal("gesture should commit")
	}
	if m.X+m.W > 500 || m.Y+m.H > 250 {
		t.Errorf("rectangle escaped the surface: %+v", m)
	}
	if m.W != 10 || m.H != 10 {
		t.Errorf("size: got (%v,%v), want (10,10)", m.W, m.H)
	}
}

func TestDrawer_ClampNegativePointer(t *testing.T) {
	d := NewDrawer()

	d.Begin(30, 30, 500, 250)
	d.Update(-50, -50)

	m, ok := d.End()
	if !ok {
		t.Fatal("gesture should commit")
	}
	want := Mark{X: 0, Y: 0, W: 30, H: 30}
	if m != want {
		t.Errorf("got %+v, want %+v", m, want)
	}
}

func TestDrawer_TinyBoxRejected(t *testing.T) {
	d := NewDrawer()

	d.Begin(10, 10, 500, 250)
	d.Update(14, 14) // 4x4, below the noise threshold

	if _, ok := d.End(); ok {
		t.Error("sub-threshold box should not commit")
	}
	if d.Active() {
		t.Error("drawer should be idle after a rejected gesture")
	}
}

func TestDrawer_ThinBoxRejected(t *testing.T) {
	d := NewDrawer()

	// Wide but only 5px tall: the filter applies per axis.
	d.Begin(10, 10, 500, 250)
	d.Update(200, 15)

	if _, ok := d.End(); ok {
		t.Error("box with height at threshold should not commit")
	}
}

func TestDrawer_EndWithoutBegin(t *testing.T) {
	d := NewDrawer()
	if _, ok := d.End(); ok {
		t.Error("End without Begin should not commit")
	}
}

func TestDrawer_UpdateWithoutBegin(t *testing.T) {
	d := NewDrawer()
	d.Update(50, 50) // must not panic or create state
	if d.Active() {
		t.Error("Update without Begin should leave the drawer idle")
	}
}

func TestDrawer_RestartDiscardsPending(t *testing.T) {
	d := NewDrawer()

	d.Begin(10, 10, 500, 250)
	d.Update(200, 200)

	// A second Begin abandons the first gesture entirely.
	d.Begin(300, 100, 500, 250)
	d.Update(350, 160)

	m, ok := d.End()
	if !ok {
		t.Fatal("second gesture should commit")
	}
	want := Mark{X: 300, Y: 100, W: 50, H: 60}
	if m != want {
		t.Errorf("got %+v, want %+v", m, want)
	}
}

func TestDrawer_ZeroMovementGesture(t *testing.T) {
	// Pointer down and up at the same spot: a click, filtered out.
	d := NewDrawer()
	d.Begin(100, 100, 500, 250)
	if _, ok := d.End(); ok {
		t.Error("zero-size gesture should not commit")
	}
}
