package camera

import (
	"math"
	"testing"

	"github.com/Carmen-Shannon/oxy-gallery/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

func TestMoveDisplacementNormalized(t *testing.T) {
	straight, _ := moveDisplacement(input.Movement{Forward: true}, 0, 0.05, 0.01)
	diagonal, _ := moveDisplacement(input.Movement{Forward: true, Right: true}, 0, 0.05, 0.01)
	if !approx(straight.Len(), 0.05, 1e-6) {
		t.Errorf("straight length %v, want 0.05", straight.Len())
	}
	if !approx(diagonal.Len(), straight.Len(), 1e-6) {
		t.Errorf("diagonal length %v, straight %v", diagonal.Len(), straight.Len())
	}
	if !approxVec(straight, mgl32.Vec3{0, 0, -0.05}, 1e-6) {
		t.Errorf("forward at yaw 0 = %v", straight)
	}
}

func TestMoveDisplacementYawOnly(t *testing.T) {
	d, _ := moveDisplacement(input.Movement{Forward: true}, math.Pi/2, 0.05, 0.01)
	if !approxVec(d, mgl32.Vec3{-0.05, 0, 0}, 1e-6) {
		t.Errorf("forward at yaw π/2 = %v", d)
	}
	if d[1] != 0 {
		t.Errorf("movement left the floor: %v", d)
	}
}

func TestMoveDisplacementCancels(t *testing.T) {
	if _, ok := moveDisplacement(input.Movement{Forward: true, Backward: true}, 0, 1, 1); ok {
		t.Error("opposite keys should cancel")
	}
	if _, ok := moveDisplacement(input.Movement{Sprint: true}, 0, 1, 1); ok {
		t.Error("sprint alone should not move")
	}
}

func TestTryMoveRevertsExactly(t *testing.T) {
	from := mgl32.Vec3{1.25, 1.6, -3.5}
	var gotRadius float32
	blocked := func(pos mgl32.Vec3, radius float32) bool {
		gotRadius = radius
		return true
	}
	pos, ok := tryMove(from, mgl32.Vec3{0.1, 0, 0.1}, blocked)
	if ok || pos != from {
		t.Errorf("blocked move = %v, %v", pos, ok)
	}
	if gotRadius != CollisionRadius {
		t.Errorf("collision radius %v", gotRadius)
	}
	if pos, ok := tryMove(from, mgl32.Vec3{0.1, 0, 0}, nil); !ok || pos != from.Add(mgl32.Vec3{0.1, 0, 0}) {
		t.Errorf("free move = %v, %v", pos, ok)
	}
}
