package camera

import (
	"time"

	"github.com/Carmen-Shannon/oxy-gallery/engine/gallery"
	"github.com/Carmen-Shannon/oxy-gallery/engine/input"
	"github.com/go-gl/mathgl/mgl32"
)

// CameraController defines the union interface for the gallery camera.
// The controller owns the camera pose. Each frame it blends manual free-look,
// autonomous natural motion, the artwork focus routine and the intro tour into a
// single Pose, which the Camera reads to build its matrices. Embeds both
// naturalCameraController and tourCameraController.
type CameraController interface {
	naturalCameraController
	tourCameraController

	// Update advances the controller by one frame.
	//
	// Parameters:
	//   - deltaTime: frame time in seconds
	//   - in: input snapshot for this frame
	Update(deltaTime float32, in input.State)

	// Pose returns the final camera pose for the last frame, including natural-motion perturbation.
	//
	// Returns:
	//   - Pose: position and rotation
	Pose() Pose

	// Position returns the camera's base world-space position (without the breathing offset).
	//
	// Returns:
	//   - mgl32.Vec3: world-space position
	Position() mgl32.Vec3

	// SetPosition moves the camera without a collision check.
	//
	// Parameters:
	//   - p: world-space position
	SetPosition(p mgl32.Vec3)

	// Orientation returns the base yaw/pitch.
	//
	// Returns:
	//   - Orientation: the base orientation
	Orientation() Orientation

	// SetOrientation sets the base yaw/pitch. Pitch is clamped.
	//
	// Parameters:
	//   - o: the new orientation
	SetOrientation(o Orientation)

	// SmoothLookAt starts an eased reorientation toward target, replacing any running one.
	//
	// Parameters:
	//   - target: world-space point to face
	//   - duration: animation length
	SmoothLookAt(target mgl32.Vec3, duration time.Duration)

	// Mode returns the current controller mode.
	//
	// Returns:
	//   - Mode: manual, transitioning, natural or tour
	Mode() Mode

	// MouseSensitivity returns the radians of rotation per pixel of pointer movement.
	//
	// Returns:
	//   - float32: multiplier for pointer deltas
	MouseSensitivity() float32

	// MoveSpeed returns the walking speed factor.
	//
	// Returns:
	//   - float32: walking speed
	MoveSpeed() float32

	// SprintSpeed returns the speed factor used while shift is held.
	//
	// Returns:
	//   - float32: sprint speed
	SprintSpeed() float32

	// Events returns the channel the controller emits focus, blur, mode and tour events on.
	//
	// Returns:
	//   - <-chan Event: the event channel
	Events() <-chan Event
}

// naturalCameraController defines the idle-behaviour controls: the manual/natural blend
// and the artwork focus routine that runs while natural mode is blended in.
type naturalCameraController interface {
	// StartTransition begins blending toward natural (true) or manual (false) mode.
	// A request made while another transition runs is ignored.
	//
	// Parameters:
	//   - toNatural: target mode
	//
	// Returns:
	//   - bool: true if a transition was started
	StartTransition(toNatural bool) bool

	// Intensity returns the natural-motion blend in [0, 1].
	//
	// Returns:
	//   - float32: current intensity
	Intensity() float32

	// IsNaturalMode reports whether natural mode is active or being blended in.
	//
	// Returns:
	//   - bool: true in natural mode or while transitioning toward it
	IsNaturalMode() bool

	// InTransition reports whether a transition is running.
	//
	// Returns:
	//   - bool: true while transitioning
	InTransition() bool

	// IdleThreshold returns how long the user must be inactive before natural mode starts.
	//
	// Returns:
	//   - time.Duration: the idle threshold
	IdleThreshold() time.Duration

	// FocusedArtwork returns the artwork the camera is attending to, or nil.
	//
	// Returns:
	//   - *gallery.Artwork: the focused artwork or nil
	FocusedArtwork() *gallery.Artwork

	// SetArtworks replaces the artworks the focus routine may pick from.
	//
	// Parameters:
	//   - artworks: candidate artworks
	SetArtworks(artworks []*gallery.Artwork)
}

// tourCameraController defines the scripted intro tour controls.
type tourCameraController interface {
	// SetupCameraPath configures the tour spline and its look points.
	// Ignored while a tour is playing.
	//
	// Parameters:
	//   - points: spline control points
	//   - lookPoints: ordered gaze targets
	SetupCameraPath(points, lookPoints []mgl32.Vec3)

	// StartIntroAnimation starts the tour from the beginning.
	//
	// Returns:
	//   - bool: false if no path is configured or a tour is already playing
	StartIntroAnimation() bool

	// StopTour aborts a playing tour and returns control to the user.
	StopTour()

	// IsTourMode reports whether the tour is playing.
	//
	// Returns:
	//   - bool: true during the tour
	IsTourMode() bool

	// TourProgress returns the eased progress of the tour in [0, 1].
	//
	// Returns:
	//   - float32: tour progress
	TourProgress() float32
}
