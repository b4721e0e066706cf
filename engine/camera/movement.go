package camera

import (
	"github.com/Carmen-Shannon/oxy-gallery/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// CollisionFunc reports whether a sphere of the given radius at pos would penetrate the scene.
// It must always answer; the controller treats the result as authoritative.
type CollisionFunc func(pos mgl32.Vec3, radius float32) bool

// moveDisplacement converts movement flags into a world-space displacement.
// The direction is normalized (diagonals are no faster than single axes) and rotated by yaw
// only, so looking up or down never lifts the camera off the floor.
//
// Parameters:
//   - m: movement flags
//   - yaw: camera yaw in radians
//   - speed: distance factor per second/100
//   - deltaTime: frame time in seconds
//
// Returns:
//   - mgl32.Vec3: the displacement
//   - bool: false if no direction was requested
func moveDisplacement(m input.Movement, yaw, speed, deltaTime float32) (mgl32.Vec3, bool) {
	var dir mgl32.Vec3
	if m.Forward {
		dir[2]--
	}
	if m.Backward {
		dir[2]++
	}
	if m.Left {
		dir[0]--
	}
	if m.Right {
		dir[0]++
	}
	if dir.Len() == 0 {
		return mgl32.Vec3{}, false
	}

	dir = mgl32.QuatRotate(yaw, worldUp).Rotate(dir.Normalize())
	return dir.Mul(speed * deltaTime * 100), true
}

// tryMove applies a displacement unless the destination collides. A blocked move is
// rejected entirely rather than slid along the obstacle.
//
// Parameters:
//   - from: current position
//   - delta: proposed displacement
//   - collides: collision predicate, may be nil
//
// Returns:
//   - mgl32.Vec3: the new position (from, if blocked)
//   - bool: true if the move was applied
func tryMove(from, delta mgl32.Vec3, collides CollisionFunc) (mgl32.Vec3, bool) {
	proposed := from.Add(delta)
	if collides != nil && collides(proposed, CollisionRadius) {
		return from, false
	}
	return proposed, true
}
