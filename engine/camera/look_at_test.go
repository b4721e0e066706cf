package camera

import (
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"
)

func TestLookAtShortestPath(t *testing.T) {
	var l LookAnimator
	current := Orientation{Yaw: 3.0}
	target := Orientation{Yaw: -3.0}.Direction()

	o, running := l.Start(t0, current, mgl32.Vec3{}, target, time.Second)
	if !running || o != current {
		t.Fatalf("Start = %v, %v", o, running)
	}
	// 3.0 -> -3.0 crosses ±π: the short way is about +0.283, not -6
	if l.yawDelta <= 0 || !approx(l.yawDelta, 2*3.14159265-6, 1e-3) {
		t.Errorf("yawDelta = %v", l.yawDelta)
	}
	mid, ok := l.Update(t0.Add(500 * time.Millisecond))
	if !ok || mid.Yaw <= 3.0 {
		t.Errorf("mid-animation yaw %v should increase past 3.0", mid.Yaw)
	}
}

func TestLookAtSnapsAtEnd(t *testing.T) {
	var l LookAnimator
	eye := mgl32.Vec3{0, 1.6, 0}
	target := mgl32.Vec3{3, 2, -4}
	l.Start(t0, Orientation{}, eye, target, 2*time.Second)

	o, ok := l.Update(t0.Add(2 * time.Second))
	want := FromDirection(target.Sub(eye))
	if !ok || o != want {
		t.Errorf("final orientation %v, want exactly %v", o, want)
	}
	if l.Active() {
		t.Error("animator still active after completion")
	}
	if _, ok := l.Update(t0.Add(3 * time.Second)); ok {
		t.Error("inactive animator produced an orientation")
	}
}

func TestLookAtReplace(t *testing.T) {
	var l LookAnimator
	l.Start(t0, Orientation{}, mgl32.Vec3{}, mgl32.Vec3{1, 0, 0}, time.Second)
	l.Start(t0, Orientation{}, mgl32.Vec3{}, mgl32.Vec3{-1, 0, 0}, time.Second)
	want := FromDirection(mgl32.Vec3{-1, 0, 0})
	if l.Target() != want {
		t.Errorf("target %v, want %v", l.Target(), want)
	}
}

func TestLookAtDegenerate(t *testing.T) {
	var l LookAnimator
	current := Orientation{Yaw: 0.5}
	if o, running := l.Start(t0, current, mgl32.Vec3{1, 1, 1}, mgl32.Vec3{1, 1, 1}, time.Second); running || o != current {
		t.Errorf("zero-length look = %v, %v", o, running)
	}
	// already facing the target: snap, no animation
	if _, running := l.Start(t0, Orientation{}, mgl32.Vec3{}, mgl32.Vec3{0, 0, -5}, time.Second); running {
		t.Error("look at current direction should not animate")
	}
}
