package camera

import (
	"math"

	"github.com/Carmen-Shannon/oxy-gallery/common"
	"github.com/go-gl/mathgl/mgl32"
)

// PitchEpsilon keeps pitch strictly away from the poles so the yaw axis never flips.
const PitchEpsilon float32 = 0.01

// MaxPitch is the largest pitch magnitude an Orientation may hold.
const MaxPitch = float32(math.Pi/2) - PitchEpsilon

var (
	worldUp      = mgl32.Vec3{0, 1, 0}
	worldRight   = mgl32.Vec3{1, 0, 0}
	localForward = mgl32.Vec3{0, 0, -1}
)

// Orientation is a roll-free camera facing expressed as yaw (about world up) and pitch
// (about the yawed right axis), both in radians. Yaw 0 faces -Z.
type Orientation struct {
	Yaw   float32
	Pitch float32
}

// NewOrientation creates an orientation with pitch clamped away from the poles.
//
// Parameters:
//   - yaw: horizontal angle in radians
//   - pitch: vertical angle in radians
//
// Returns:
//   - Orientation: the clamped orientation
func NewOrientation(yaw, pitch float32) Orientation {
	return Orientation{Yaw: yaw, Pitch: ClampPitch(pitch)}
}

// ClampPitch limits pitch to (-π/2+ε, π/2-ε).
func ClampPitch(pitch float32) float32 {
	return common.Clamp(pitch, -MaxPitch, MaxPitch)
}

// FromDirection converts a forward direction into yaw and pitch:
// yaw = atan2(-dx, -dz), pitch = atan2(dy, sqrt(dx²+dz²)). The direction need not be normalized.
// Pitch is clamped, so straight up or down maps to the nearest representable pitch.
//
// Parameters:
//   - dir: the direction to face
//
// Returns:
//   - Orientation: the equivalent yaw/pitch
func FromDirection(dir mgl32.Vec3) Orientation {
	yaw := common.Atan2(-dir[0], -dir[2])
	pitch := common.Atan2(dir[1], common.Sqrt(dir[0]*dir[0]+dir[2]*dir[2]))
	return Orientation{Yaw: yaw, Pitch: ClampPitch(pitch)}
}

// Quat returns the rotation for this orientation: yaw about world up, then pitch
// about the resulting right axis. The order is fixed; reversing it introduces roll.
func (o Orientation) Quat() mgl32.Quat {
	yaw := mgl32.QuatRotate(o.Yaw, worldUp)
	pitch := mgl32.QuatRotate(o.Pitch, worldRight)
	return yaw.Mul(pitch)
}

// Direction returns the unit forward vector for this orientation.
func (o Orientation) Direction() mgl32.Vec3 {
	cp := common.Cos(o.Pitch)
	return mgl32.Vec3{
		-common.Sin(o.Yaw) * cp,
		common.Sin(o.Pitch),
		-common.Cos(o.Yaw) * cp,
	}
}

// Apply writes this orientation into the pose's rotation. The rotation is rebuilt from
// scratch, so applying the same orientation twice leaves the pose unchanged.
//
// Parameters:
//   - p: the pose to update
func (o Orientation) Apply(p *Pose) {
	p.Rotation = o.Quat()
}

// Pose is the camera output for a frame: world-space position and rotation.
type Pose struct {
	Position mgl32.Vec3
	Rotation mgl32.Quat
}

// Forward returns the pose's forward vector.
func (p Pose) Forward() mgl32.Vec3 {
	return p.Rotation.Rotate(localForward)
}

// Up returns the pose's up vector.
func (p Pose) Up() mgl32.Vec3 {
	return p.Rotation.Rotate(worldUp)
}
