package camera

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCatmullRomEndpoints(t *testing.T) {
	pts := []mgl32.Vec3{{0, 1, 0}, {0, 1, -5}, {5, 2, -5}, {5, 1, 0}}
	path := NewCatmullRomPath(pts)

	if got := path.Point(0); !approxVec(got, pts[0], 1e-5) {
		t.Errorf("Point(0) = %v, want %v", got, pts[0])
	}
	if got := path.Point(1); !approxVec(got, pts[3], 1e-5) {
		t.Errorf("Point(1) = %v, want %v", got, pts[3])
	}
	// interior control points are interpolated at segment boundaries
	if got := path.Point(1.0 / 3); !approxVec(got, pts[1], 1e-4) {
		t.Errorf("Point(1/3) = %v, want %v", got, pts[1])
	}
}

func TestCatmullRomDegenerate(t *testing.T) {
	if got := NewCatmullRomPath(nil).Point(0.5); got != (mgl32.Vec3{}) {
		t.Errorf("empty path = %v", got)
	}
	one := mgl32.Vec3{1, 2, 3}
	if got := NewCatmullRomPath([]mgl32.Vec3{one}).Point(0.7); got != one {
		t.Errorf("single point path = %v", got)
	}
}

func TestCatmullRomCopiesInput(t *testing.T) {
	pts := []mgl32.Vec3{{0, 0, 0}, {1, 0, 0}}
	path := NewCatmullRomPath(pts)
	pts[0] = mgl32.Vec3{9, 9, 9}
	if path.Points()[0] != (mgl32.Vec3{}) {
		t.Error("path aliases caller slice")
	}
}
