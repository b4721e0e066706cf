package camera

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestCameraFollowsControllerPose(t *testing.T) {
	ctrl, _ := newTestController(WithPosition(1, 1.6, 2), WithOrientation(0.5, 0.1))
	cam := NewCamera(WithController(ctrl), WithAspect(2))

	if cam.Pose() != ctrl.Pose() {
		t.Errorf("camera pose %v, controller %v", cam.Pose(), ctrl.Pose())
	}

	// the eye maps to the view-space origin
	eye := ctrl.Pose().Position
	v := cam.ViewMatrix().Mul4x1(eye.Vec4(1))
	if !approxVec(v.Vec3(), mgl32.Vec3{}, 1e-5) {
		t.Errorf("eye in view space = %v", v)
	}

	// a point straight ahead lies on the -Z view axis
	ahead := eye.Add(ctrl.Pose().Forward().Mul(3))
	a := cam.ViewMatrix().Mul4x1(ahead.Vec4(1))
	if !approxVec(a.Vec3(), mgl32.Vec3{0, 0, -3}, 1e-4) {
		t.Errorf("forward point in view space = %v", a)
	}

	ctrl.SetPosition(mgl32.Vec3{4, 1.6, 4})
	cam.Update()
	if cam.Pose().Position != (mgl32.Vec3{4, 1.6, 4}) {
		t.Errorf("Update did not refresh pose: %v", cam.Pose().Position)
	}
}

func TestCameraProjection(t *testing.T) {
	cam := NewCamera(WithFov(1), WithAspect(1.5), WithNear(0.2), WithFar(50))
	want := mgl32.Perspective(1, 1.5, 0.2, 50)
	if cam.ProjectionMatrix() != want {
		t.Errorf("projection = %v, want %v", cam.ProjectionMatrix(), want)
	}
	id := cam.ProjectionMatrix().Mul4(cam.InverseProjectionMatrix())
	if !id.ApproxEqualThreshold(mgl32.Ident4(), 1e-4) {
		t.Errorf("projection * inverse = %v", id)
	}

	cam.SetAspect(2)
	if cam.Aspect() != 2 || cam.ProjectionMatrix() == want {
		t.Error("SetAspect did not rebuild the projection")
	}
}

func TestCameraUniformMarshal(t *testing.T) {
	ctrl, _ := newTestController(WithPosition(1, 2, 3))
	cam := NewCamera(WithController(ctrl))
	u := cam.Uniform()

	if u.Size() != 80 {
		t.Fatalf("uniform size %d, want 80", u.Size())
	}
	buf := u.Marshal()
	if len(buf) != 80 {
		t.Fatalf("marshal length %d", len(buf))
	}
	vp := cam.ViewProjectionMatrix()
	if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[0:])); got != vp[0] {
		t.Errorf("viewProj[0] = %v, want %v", got, vp[0])
	}
	for i, want := range []float32{1, 2, 3} {
		if got := math.Float32frombits(binary.LittleEndian.Uint32(buf[64+i*4:])); got != want {
			t.Errorf("position[%d] = %v, want %v", i, got, want)
		}
	}
}
