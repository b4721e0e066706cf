package camera

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

func TestTourRequiresPath(t *testing.T) {
	tour := NewTour(time.Second)
	if tour.Start(t0) {
		t.Error("Start without a path should fail")
	}
}

func TestTourPlayback(t *testing.T) {
	points := []mgl32.Vec3{{0, 1.6, 0}, {0, 1.6, -5}, {5, 1.6, -5}}
	looks := []mgl32.Vec3{{0, 1.6, -10}, {10, 1.6, -5}}
	tour := NewTour(10 * time.Second)
	tour.Setup(points, looks)
	if !tour.Start(t0) {
		t.Fatal("Start failed")
	}

	f := tour.Update(t0)
	if !approxVec(f.Position, points[0], 1e-5) || f.Done {
		t.Errorf("first frame %+v", f)
	}
	if f.LookIndex != 0 || !f.HasLook {
		t.Errorf("first look index %d", f.LookIndex)
	}

	f = tour.Update(t0.Add(9 * time.Second))
	if f.LookIndex != 1 {
		t.Errorf("late look index %d, want 1", f.LookIndex)
	}

	f = tour.Update(t0.Add(10 * time.Second))
	if !f.Done || tour.Active() {
		t.Errorf("tour not finished: %+v", f)
	}
	if !approxVec(f.Position, points[2], 1e-5) || f.Progress != 1 {
		t.Errorf("final frame %+v", f)
	}
}

func TestTourSetupCopies(t *testing.T) {
	looks := []mgl32.Vec3{{0, 0, -1}}
	tour := NewTour(time.Second)
	tour.Setup([]mgl32.Vec3{{0, 0, 0}}, looks)
	looks[0] = mgl32.Vec3{5, 5, 5}
	if tour.lookPoints[0] != (mgl32.Vec3{0, 0, -1}) {
		t.Error("tour aliases look points")
	}
}
