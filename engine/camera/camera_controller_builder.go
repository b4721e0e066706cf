package camera

import (
	"math/rand/v2"
	"time"

	"github.com/Carmen-Shannon/oxy-gallery/engine/gallery"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraControllerOption is a functional option for configuring a CameraController.
type CameraControllerOption func(*cameraControllerImpl)

// WithMoveSpeed sets the walking speed factor.
//
// Parameters:
//   - speed: world units per frame at 100 fps
//
// Returns:
//   - CameraControllerOption: functional option to set the move speed
func WithMoveSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.moveSpeed = speed
	}
}

// WithSprintSpeed sets the speed factor used while shift is held.
//
// Parameters:
//   - speed: sprint speed factor
//
// Returns:
//   - CameraControllerOption: functional option to set the sprint speed
func WithSprintSpeed(speed float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.sprintSpeed = speed
	}
}

// WithMouseSensitivity sets the rotation per pixel of pointer movement.
//
// Parameters:
//   - sensitivity: radians per pixel
//
// Returns:
//   - CameraControllerOption: functional option to set mouse sensitivity
func WithMouseSensitivity(sensitivity float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.mouseSensitivity = sensitivity
	}
}

// WithIdleThreshold sets how long the user must be inactive before natural mode starts.
//
// Parameters:
//   - d: idle threshold
//
// Returns:
//   - CameraControllerOption: functional option to set the idle threshold
func WithIdleThreshold(d time.Duration) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.idleThreshold = d
	}
}

// WithTransitionDuration sets the length of the manual/natural blend.
//
// Parameters:
//   - d: transition duration
//
// Returns:
//   - CameraControllerOption: functional option to set the transition duration
func WithTransitionDuration(d time.Duration) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.transitionDuration = d
	}
}

// WithTourDuration sets the wall-clock length of the intro tour.
//
// Parameters:
//   - d: tour duration
//
// Returns:
//   - CameraControllerOption: functional option to set the tour duration
func WithTourDuration(d time.Duration) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.tourDuration = d
	}
}

// WithTourPath configures the tour spline and look points up front.
//
// Parameters:
//   - points: spline control points
//   - lookPoints: ordered gaze targets
//
// Returns:
//   - CameraControllerOption: functional option to set the tour path
func WithTourPath(points, lookPoints []mgl32.Vec3) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.tourPoints = points
		cc.tourLookPoints = lookPoints
	}
}

// WithArtworks sets the artworks the focus routine may attend to.
//
// Parameters:
//   - artworks: candidate artworks
//
// Returns:
//   - CameraControllerOption: functional option to set the artworks
func WithArtworks(artworks []*gallery.Artwork) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.artworks = artworks
	}
}

// WithCollision sets the collision query used for movement. Without one the camera moves freely.
//
// Parameters:
//   - fn: collision query, typically (*gallery.Gallery).Collides
//
// Returns:
//   - CameraControllerOption: functional option to set collision
func WithCollision(fn CollisionFunc) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.collides = fn
	}
}

// WithClock sets the time source. Defaults to SystemClock.
//
// Parameters:
//   - clock: the time source
//
// Returns:
//   - CameraControllerOption: functional option to set the clock
func WithClock(clock Clock) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.clock = clock
	}
}

// WithRand sets the random source used by the focus routine.
//
// Parameters:
//   - rng: random source
//
// Returns:
//   - CameraControllerOption: functional option to set the random source
func WithRand(rng *rand.Rand) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.rng = rng
	}
}

// WithPosition sets the initial camera position.
//
// Parameters:
//   - x: X coordinate
//   - y: Y coordinate (eye height)
//   - z: Z coordinate
//
// Returns:
//   - CameraControllerOption: functional option to set the position
func WithPosition(x, y, z float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.position = mgl32.Vec3{x, y, z}
	}
}

// WithOrientation sets the initial yaw and pitch.
//
// Parameters:
//   - yaw: rotation about world up in radians
//   - pitch: rotation about local right in radians, clamped
//
// Returns:
//   - CameraControllerOption: functional option to set the orientation
func WithOrientation(yaw, pitch float32) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.orientation = NewOrientation(yaw, pitch)
	}
}

// WithNaturalMotion overrides the breathing/wiggle parameters.
//
// Parameters:
//   - cfg: natural motion parameters
//
// Returns:
//   - CameraControllerOption: functional option to set natural motion
func WithNaturalMotion(cfg NaturalMotionConfig) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.naturalCfg = cfg
	}
}

// WithAttention overrides the focus routine parameters.
//
// Parameters:
//   - cfg: attention parameters
//
// Returns:
//   - CameraControllerOption: functional option to set attention
func WithAttention(cfg AttentionConfig) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.attentionCfg = cfg
	}
}

// WithEventBuffer sets the capacity of the event channel.
//
// Parameters:
//   - n: buffered events before new ones are dropped
//
// Returns:
//   - CameraControllerOption: functional option to set the event buffer
func WithEventBuffer(n int) CameraControllerOption {
	return func(cc *cameraControllerImpl) {
		cc.eventBuffer = n
	}
}
