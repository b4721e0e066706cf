package camera

import (
	"time"

	"github.com/Carmen-Shannon/oxy-gallery/common"
	"github.com/go-gl/mathgl/mgl32"
)

// lookAtEpsilon is the angular distance under which a look-at snaps instead of animating.
const lookAtEpsilon float32 = 1e-4

// LookAnimator performs a short eased reorientation toward a point. Only one animation
// runs at a time; starting another replaces it immediately.
type LookAnimator struct {
	active   bool
	start    time.Time
	duration time.Duration

	from Orientation
	to   Orientation
	// yawDelta is the shortest signed path from from.Yaw to to.Yaw.
	yawDelta float32
}

// Start begins an animation from the current orientation to face target from eye.
//
// Parameters:
//   - now: current time
//   - current: orientation at the start of the animation
//   - eye: camera position
//   - target: point to face
//   - duration: animation length
//
// Returns:
//   - Orientation: the orientation to use right now (current, or the target if it snapped)
//   - bool: true if an animation is running after the call
func (l *LookAnimator) Start(now time.Time, current Orientation, eye, target mgl32.Vec3, duration time.Duration) (Orientation, bool) {
	dir := target.Sub(eye)
	if dir.Len() < 1e-6 {
		return current, l.active
	}

	to := FromDirection(dir)
	yawDelta := common.ShortestAngle(current.Yaw, to.Yaw)
	pitchDelta := to.Pitch - current.Pitch
	if duration <= 0 || (abs32(yawDelta) < lookAtEpsilon && abs32(pitchDelta) < lookAtEpsilon) {
		l.active = false
		return to, false
	}

	l.active = true
	l.start = now
	l.duration = duration
	l.from = current
	l.to = to
	l.yawDelta = yawDelta
	return current, true
}

// Update advances the animation.
//
// Parameters:
//   - now: current time
//
// Returns:
//   - Orientation: the animated orientation (only meaningful when the bool is true)
//   - bool: true if the animator produced an orientation this frame
func (l *LookAnimator) Update(now time.Time) (Orientation, bool) {
	if !l.active {
		return Orientation{}, false
	}

	progress := common.Clamp(float32(now.Sub(l.start))/float32(l.duration), 0, 1)
	if progress >= 1 {
		l.active = false
		return l.to, true
	}

	e := common.EaseOutQuint(progress)
	return Orientation{
		Yaw:   l.from.Yaw + l.yawDelta*e,
		Pitch: ClampPitch(common.Lerp(l.from.Pitch, l.to.Pitch, e)),
	}, true
}

// Cancel stops any running animation where it is.
func (l *LookAnimator) Cancel() {
	l.active = false
}

// Active reports whether an animation is running.
func (l *LookAnimator) Active() bool {
	return l.active
}

// Target returns the orientation the current (or last) animation ends at.
func (l *LookAnimator) Target() Orientation {
	return l.to
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}
