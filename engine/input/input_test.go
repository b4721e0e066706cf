package input

import (
	"testing"
)

func TestTrackerKeysAreLowerCased(t *testing.T) {
	tr := NewTracker()
	tr.KeyDown("Shift")
	tr.KeyDown("W")

	s := tr.Snapshot()
	if !s.Pressed("shift") || !s.Pressed("w") {
		t.Fatalf("expected shift and w held")
	}
	m := s.Movement()
	if !m.Forward || !m.Sprint {
		t.Errorf("Movement() = %+v, want Forward and Sprint", m)
	}

	tr.KeyUp("w")
	if tr.Snapshot().Pressed("w") {
		t.Error("w should be released")
	}
}

func TestTrackerActivityRequiresLock(t *testing.T) {
	tr := NewTracker()
	tr.KeyDown("w")
	tr.PointerMove(10, 5)

	s := tr.Snapshot()
	if s.Activity {
		t.Error("input while unlocked must not count as activity")
	}
	if s.HasPointerDelta() {
		t.Error("pointer deltas while unlocked must be discarded")
	}
	if s.Directional() {
		t.Error("unlocked state must not be directional")
	}

	tr.SetPointerLock(true)
	tr.PointerMove(3, -2)
	s = tr.Snapshot()
	if !s.Activity {
		t.Error("pointer delta while locked should be activity")
	}
	if s.DeltaX != 3 || s.DeltaY != -2 {
		t.Errorf("delta = (%v, %v), want (3, -2)", s.DeltaX, s.DeltaY)
	}
	if !s.Directional() {
		t.Error("locked pointer delta should be directional")
	}
}

func TestSnapshotDrainsDeltas(t *testing.T) {
	tr := NewTracker()
	tr.SetPointerLock(true)
	tr.PointerMove(1, 1)
	tr.PointerMove(2, 3)

	s := tr.Snapshot()
	if s.DeltaX != 3 || s.DeltaY != 4 {
		t.Errorf("accumulated delta = (%v, %v), want (3, 4)", s.DeltaX, s.DeltaY)
	}

	s = tr.Snapshot()
	if s.HasPointerDelta() || s.Activity {
		t.Error("second snapshot should have no delta and no activity")
	}
}

func TestReleasingLockDropsPendingDelta(t *testing.T) {
	tr := NewTracker()
	tr.SetPointerLock(true)
	tr.PointerMove(5, 5)
	tr.SetPointerLock(false)

	if tr.Locked() {
		t.Fatal("expected unlocked")
	}
	if s := tr.Snapshot(); s.HasPointerDelta() {
		t.Errorf("pending delta should be dropped, got (%v, %v)", s.DeltaX, s.DeltaY)
	}
}

func TestNewState(t *testing.T) {
	s := NewState(true, 0, 0, "ArrowLeft")
	if !s.Movement().Left {
		t.Error("ArrowLeft should map to Left")
	}
	if !s.Activity || !s.Directional() {
		t.Error("held movement key while locked should be activity and directional")
	}

	idle := NewState(true, 0, 0)
	if idle.Activity || idle.Directional() {
		t.Error("empty state should be idle")
	}
}
