package camera

import (
	"testing"

	"github.com/Carmen-Shannon/oxy-gallery/common"
	"github.com/go-gl/mathgl/mgl32"
)

func TestNaturalMotionZeroIntensityIsNoop(t *testing.T) {
	n := NewNaturalMotion(DefaultNaturalMotionConfig())
	off, ok := n.Advance(0.5, 0)
	if ok || off != (MotionOffsets{}) {
		t.Errorf("Advance at zero intensity = %+v, %v", off, ok)
	}
	if b, w := n.Phases(); b != 0 || w != 0 {
		t.Errorf("phases advanced at zero intensity: %v %v", b, w)
	}
}

func TestNaturalMotionAdvancesPhases(t *testing.T) {
	cfg := DefaultNaturalMotionConfig()
	n := NewNaturalMotion(cfg)
	off, ok := n.Advance(1, 1)
	if !ok {
		t.Fatal("Advance at full intensity returned false")
	}
	b, w := n.Phases()
	if !approx(b, cfg.BreatheRate, 1e-6) || !approx(w, cfg.WiggleRate, 1e-6) {
		t.Errorf("phases = %v %v", b, w)
	}
	breathe := common.Sin(b) * cfg.BreatheAmplitude
	if !approx(off.Height, breathe*cfg.HeightFactor, 1e-7) {
		t.Errorf("height %v is not the scaled breathing offset", off.Height)
	}
	if !approx(off.Yaw, common.Sin(w)*cfg.WiggleAmplitude, 1e-7) {
		t.Errorf("yaw offset %v", off.Yaw)
	}
}

func TestNaturalMotionScalesWithIntensity(t *testing.T) {
	full := NewNaturalMotion(DefaultNaturalMotionConfig())
	half := NewNaturalMotion(DefaultNaturalMotionConfig())
	a, _ := full.Advance(0.7, 1)
	b, _ := half.Advance(0.7, 0.5)
	if !approx(b.Yaw, a.Yaw/2, 1e-7) || !approx(b.Pitch, a.Pitch/2, 1e-7) {
		t.Errorf("half intensity offsets %+v vs full %+v", b, a)
	}
}

func TestMotionOffsetsComposeIdentity(t *testing.T) {
	base := NewOrientation(0.4, 0.1).Quat()
	if got := (MotionOffsets{}).Compose(base); !got.ApproxEqual(base) {
		t.Errorf("zero offsets changed rotation: %v -> %v", base, got)
	}
	var p Pose
	p.Rotation = MotionOffsets{Yaw: 0.02}.Compose(mgl32.QuatIdent())
	if approxVec(p.Forward(), mgl32.Vec3{0, 0, -1}, 1e-4) {
		t.Error("yaw offset did not move the forward vector")
	}
}
