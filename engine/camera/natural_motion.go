package camera

import (
	"github.com/Carmen-Shannon/oxy-gallery/common"
	"github.com/go-gl/mathgl/mgl32"
)

// NaturalMotion synthesizes the small idle perturbations layered over the base
// orientation: a slow vertical "breathing" and a wandering wiggle.
type NaturalMotion struct {
	cfg NaturalMotionConfig

	breathePhase float32
	wigglePhase  float32
}

// MotionOffsets are the per-frame perturbations produced by NaturalMotion.
// They are transient and never written back into the base yaw/pitch.
type MotionOffsets struct {
	Yaw    float32
	Pitch  float32
	Height float32
}

// NewNaturalMotion creates a synthesizer with both phases at zero.
//
// Parameters:
//   - cfg: motion constants
//
// Returns:
//   - *NaturalMotion: the synthesizer
func NewNaturalMotion(cfg NaturalMotionConfig) *NaturalMotion {
	return &NaturalMotion{cfg: cfg}
}

// Advance steps both phases and returns the offsets for this frame.
// At zero intensity it does nothing at all, including advancing the phases.
//
// Parameters:
//   - deltaTime: frame time in seconds
//   - intensity: blend in [0, 1]
//
// Returns:
//   - MotionOffsets: the perturbations to compose over the base orientation
//   - bool: false if intensity was zero and nothing was computed
func (n *NaturalMotion) Advance(deltaTime, intensity float32) (MotionOffsets, bool) {
	if intensity <= 0 {
		return MotionOffsets{}, false
	}

	n.breathePhase = common.WrapPhase(n.breathePhase + n.cfg.BreatheRate*deltaTime)
	n.wigglePhase = common.WrapPhase(n.wigglePhase + n.cfg.WiggleRate*deltaTime)

	breathe := common.Sin(n.breathePhase) * n.cfg.BreatheAmplitude * intensity
	wiggleYaw := common.Sin(n.wigglePhase) * n.cfg.WiggleAmplitude * intensity
	wigglePitch := common.Cos(n.cfg.WigglePitchFrequency*n.wigglePhase) *
		n.cfg.WiggleAmplitude * n.cfg.WigglePitchScale * intensity

	return MotionOffsets{
		Yaw:    wiggleYaw,
		Pitch:  breathe + wigglePitch,
		Height: breathe * n.cfg.HeightFactor,
	}, true
}

// Phases returns the current breathe and wiggle phases.
func (n *NaturalMotion) Phases() (breathe, wiggle float32) {
	return n.breathePhase, n.wigglePhase
}

// Compose layers the offsets over a base rotation: base, then the yaw offset,
// then the pitch offset, each in the camera's local frame.
//
// Parameters:
//   - base: the manual/look-at rotation
//
// Returns:
//   - mgl32.Quat: the perturbed rotation
func (o MotionOffsets) Compose(base mgl32.Quat) mgl32.Quat {
	q := base.Mul(mgl32.QuatRotate(o.Yaw, worldUp))
	return q.Mul(mgl32.QuatRotate(o.Pitch, worldRight))
}
