package camera

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/Carmen-Shannon/oxy-gallery/engine/gallery"
	"github.com/Carmen-Shannon/oxy-gallery/engine/input"
	"github.com/Carmen-Shannon/oxy-gallery/internal/log"
	"github.com/go-gl/mathgl/mgl32"
)

// cameraControllerImpl is the single implementation of CameraController.
// All state is guarded by mu; Update runs once per frame from the engine tick while
// accessors may be called from the web overlay.
type cameraControllerImpl struct {
	mu    *sync.Mutex
	clock Clock
	rng   *rand.Rand

	// Base pose, excluding natural-motion perturbation
	position    mgl32.Vec3
	orientation Orientation

	// Final pose handed to the Camera
	pose         Pose
	heightOffset float32

	mode       Mode
	lastActive time.Time

	moveSpeed        float32
	sprintSpeed      float32
	mouseSensitivity float32
	idleThreshold    time.Duration
	collides         CollisionFunc

	transition *Transition
	natural    *NaturalMotion
	look       LookAnimator
	tour       *Tour
	focus      *FocusScanner

	events chan Event

	// Construction-time settings consumed by NewCameraController
	transitionDuration time.Duration
	tourDuration       time.Duration
	naturalCfg         NaturalMotionConfig
	attentionCfg       AttentionConfig
	artworks           []*gallery.Artwork
	tourPoints         []mgl32.Vec3
	tourLookPoints     []mgl32.Vec3
	eventBuffer        int
}

// Compile-time interface compliance check
var _ CameraController = &cameraControllerImpl{}

// NewCameraController creates a gallery camera controller in manual mode.
//
// Parameters:
//   - options: functional options to configure the controller
//
// Returns:
//   - CameraController: the newly created controller
func NewCameraController(options ...CameraControllerOption) CameraController {
	cc := &cameraControllerImpl{
		mu:    &sync.Mutex{},
		clock: SystemClock{},

		position: mgl32.Vec3{0, DefaultEyeHeight, 0},

		moveSpeed:        DefaultMoveSpeed,
		sprintSpeed:      DefaultSprintSpeed,
		mouseSensitivity: DefaultMouseSensitivity,
		idleThreshold:    DefaultIdleThreshold,

		transitionDuration: DefaultTransitionDuration,
		tourDuration:       DefaultTourDuration,
		naturalCfg:         DefaultNaturalMotionConfig(),
		attentionCfg:       DefaultAttentionConfig(),
		eventBuffer:        64,
	}

	for _, option := range options {
		option(cc)
	}

	if cc.rng == nil {
		seed := uint64(time.Now().UnixNano())
		cc.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}
	if cc.eventBuffer < 0 {
		cc.eventBuffer = 0
	}

	cc.transition = NewTransition(cc.transitionDuration)
	cc.natural = NewNaturalMotion(cc.naturalCfg)
	cc.tour = NewTour(cc.tourDuration)
	cc.focus = NewFocusScanner(cc.attentionCfg, cc.rng, cc.artworks)
	cc.events = make(chan Event, cc.eventBuffer)
	if len(cc.tourPoints) > 0 {
		cc.tour.Setup(cc.tourPoints, cc.tourLookPoints)
	}

	cc.lastActive = cc.clock.Now()
	cc.updatePose()
	return cc
}

// Update advances the controller by one frame. The tour, when playing, owns the pose
// outright; otherwise input, idle detection, the blend, look-at, natural motion, the
// focus routine and movement run in that order.
func (cc *cameraControllerImpl) Update(deltaTime float32, in input.State) {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	now := cc.clock.Now()

	if cc.mode == ModeTour {
		cc.stepTour(now)
		return
	}

	cc.applyInput(now, in)

	if cc.mode == ModeManual && now.Sub(cc.lastActive) > cc.idleThreshold {
		cc.startTransition(now, true)
	}

	cc.stepTransition(now)

	if o, ok := cc.look.Update(now); ok {
		cc.orientation = o
	}

	cc.orientation.Apply(&cc.pose)
	cc.heightOffset = 0
	if intensity := cc.transition.Intensity(); intensity > 0 {
		if off, ok := cc.natural.Advance(deltaTime, intensity); ok {
			cc.pose.Rotation = off.Compose(cc.pose.Rotation)
			cc.heightOffset = off.Height
		}
	}

	if cc.naturalActive() {
		cc.stepFocus(now)
	}

	cc.applyMovement(deltaTime, in)
	cc.pose.Position = cc.position.Add(mgl32.Vec3{0, cc.heightOffset, 0})
}

// applyInput handles activity, user reclaim and mouse look.
func (cc *cameraControllerImpl) applyInput(now time.Time, in input.State) {
	directional := in.Directional()
	if in.Activity || directional {
		cc.lastActive = now
	}
	if !in.Locked {
		return
	}

	if (in.Activity || directional || in.HasPointerDelta()) && cc.naturalActive() {
		cc.reclaim(now)
	}

	if in.HasPointerDelta() {
		cc.orientation.Yaw -= in.DeltaX * cc.mouseSensitivity
		cc.orientation.Pitch = ClampPitch(cc.orientation.Pitch - in.DeltaY*cc.mouseSensitivity)
		// A drag overrides any automated reorientation.
		cc.look.Cancel()
	}
}

// reclaim hands control back to the user from natural mode in the same frame.
func (cc *cameraControllerImpl) reclaim(now time.Time) {
	cc.releaseFocus(now, true)
	cc.look.Cancel()
	cc.transition.Preempt(now, false)
	cc.setMode(now, ModeTransitioning)
}

// startTransition begins a blend unless one is already running or the mode already matches.
func (cc *cameraControllerImpl) startTransition(now time.Time, toNatural bool) bool {
	switch {
	case cc.mode == ModeTour:
		return false
	case toNatural && cc.mode == ModeNatural, !toNatural && cc.mode == ModeManual:
		return false
	}

	if !cc.transition.Start(now, toNatural) {
		return false
	}
	if !toNatural {
		cc.releaseFocus(now, false)
		cc.look.Cancel()
	}
	cc.setMode(now, ModeTransitioning)
	return true
}

func (cc *cameraControllerImpl) stepTransition(now time.Time) {
	if cc.mode != ModeTransitioning {
		return
	}
	if _, done := cc.transition.Update(now); !done {
		return
	}
	if cc.transition.ToNatural() {
		cc.setMode(now, ModeNatural)
		return
	}
	cc.lastActive = now
	cc.setMode(now, ModeManual)
}

func (cc *cameraControllerImpl) stepFocus(now time.Time) {
	art, req := cc.focus.Update(now, cc.position, cc.orientation.Direction())
	if art != nil {
		cc.emit(now, EventFocus, art)
		log.Debug("artwork focused", "artwork", art.ID, "title", art.Meta.Title)
	}
	if req != nil {
		cc.startLook(now, req.target, req.duration)
	}
}

func (cc *cameraControllerImpl) startLook(now time.Time, target mgl32.Vec3, duration time.Duration) {
	o, _ := cc.look.Start(now, cc.orientation, cc.position, target, duration)
	cc.orientation = o
}

// releaseFocus clears the attended artwork. Blur is only announced when the user
// took control; other exits are visible through the mode event.
func (cc *cameraControllerImpl) releaseFocus(now time.Time, userTriggered bool) {
	art := cc.focus.Release(userTriggered)
	if art == nil || !userTriggered {
		return
	}
	cc.emit(now, EventBlur, art)
	log.Debug("focus released by user", "artwork", art.ID)
}

func (cc *cameraControllerImpl) applyMovement(deltaTime float32, in input.State) {
	if !in.Locked {
		return
	}
	m := in.Movement()
	speed := cc.moveSpeed
	if m.Sprint {
		speed = cc.sprintSpeed
	}
	delta, ok := moveDisplacement(m, cc.orientation.Yaw, speed, deltaTime)
	if !ok {
		return
	}
	cc.position, _ = tryMove(cc.position, delta, cc.collides)
}

func (cc *cameraControllerImpl) stepTour(now time.Time) {
	frame := cc.tour.Update(now)
	cc.position = frame.Position
	if frame.HasLook {
		cc.orientation = frame.Orientation
	}
	cc.heightOffset = 0
	cc.updatePose()
	if frame.Done {
		cc.finishTour(now)
	}
}

func (cc *cameraControllerImpl) finishTour(now time.Time) {
	cc.tour.Stop()
	cc.transition.Reset(0)
	cc.lastActive = now
	cc.setMode(now, ModeManual)
	cc.emit(now, EventTourEnd, nil)
	log.Info("tour finished")
}

// naturalActive reports whether natural mode is on or being blended in.
func (cc *cameraControllerImpl) naturalActive() bool {
	return cc.mode == ModeNatural || (cc.mode == ModeTransitioning && cc.transition.ToNatural())
}

func (cc *cameraControllerImpl) setMode(now time.Time, mode Mode) {
	if cc.mode == mode {
		return
	}
	log.Debug("camera mode changed", "from", cc.mode, "to", mode)
	cc.mode = mode
	cc.emit(now, EventMode, nil)
}

// emit publishes an event without blocking the frame. Events are dropped when the
// channel is full.
func (cc *cameraControllerImpl) emit(now time.Time, typ EventType, art *gallery.Artwork) {
	ev := Event{Type: typ, Time: now, Mode: cc.mode, Artwork: art}
	select {
	case cc.events <- ev:
	default:
		log.Warn("camera event dropped", "type", typ)
	}
}

// updatePose rebuilds the final pose from the base pose and height offset.
func (cc *cameraControllerImpl) updatePose() {
	cc.pose.Position = cc.position.Add(mgl32.Vec3{0, cc.heightOffset, 0})
	cc.orientation.Apply(&cc.pose)
}

// Pose returns the final camera pose.
func (cc *cameraControllerImpl) Pose() Pose {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.pose
}

// Position returns the base position.
func (cc *cameraControllerImpl) Position() mgl32.Vec3 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.position
}

// SetPosition moves the camera without a collision check.
func (cc *cameraControllerImpl) SetPosition(p mgl32.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.position = p
	cc.updatePose()
}

// Orientation returns the base yaw/pitch.
func (cc *cameraControllerImpl) Orientation() Orientation {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.orientation
}

// SetOrientation sets the base yaw/pitch, clamping pitch.
func (cc *cameraControllerImpl) SetOrientation(o Orientation) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.orientation = NewOrientation(o.Yaw, o.Pitch)
	cc.updatePose()
}

// SmoothLookAt starts an eased reorientation toward target.
func (cc *cameraControllerImpl) SmoothLookAt(target mgl32.Vec3, duration time.Duration) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if cc.mode == ModeTour {
		return
	}
	cc.startLook(cc.clock.Now(), target, duration)
	cc.updatePose()
}

// Mode returns the current mode.
func (cc *cameraControllerImpl) Mode() Mode {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mode
}

// MouseSensitivity returns the pointer sensitivity.
func (cc *cameraControllerImpl) MouseSensitivity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mouseSensitivity
}

// MoveSpeed returns the walking speed.
func (cc *cameraControllerImpl) MoveSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.moveSpeed
}

// SprintSpeed returns the sprint speed.
func (cc *cameraControllerImpl) SprintSpeed() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.sprintSpeed
}

// Events returns the event channel.
func (cc *cameraControllerImpl) Events() <-chan Event {
	return cc.events
}

// StartTransition begins blending toward natural or manual mode.
func (cc *cameraControllerImpl) StartTransition(toNatural bool) bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.startTransition(cc.clock.Now(), toNatural)
}

// Intensity returns the natural-motion blend.
func (cc *cameraControllerImpl) Intensity() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.transition.Intensity()
}

// IsNaturalMode reports whether natural mode is on or being blended in.
func (cc *cameraControllerImpl) IsNaturalMode() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.naturalActive()
}

// InTransition reports whether a blend is running.
func (cc *cameraControllerImpl) InTransition() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mode == ModeTransitioning
}

// IdleThreshold returns the idle threshold.
func (cc *cameraControllerImpl) IdleThreshold() time.Duration {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.idleThreshold
}

// FocusedArtwork returns the focused artwork, or nil.
func (cc *cameraControllerImpl) FocusedArtwork() *gallery.Artwork {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.focus.Focused()
}

// SetArtworks replaces the focus candidates.
func (cc *cameraControllerImpl) SetArtworks(artworks []*gallery.Artwork) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	cc.focus.SetArtworks(artworks)
}

// SetupCameraPath configures the tour. Ignored while the tour plays.
func (cc *cameraControllerImpl) SetupCameraPath(points, lookPoints []mgl32.Vec3) {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if cc.mode == ModeTour {
		log.Warn("tour path change ignored during playback")
		return
	}
	cc.tour.Setup(points, lookPoints)
}

// StartIntroAnimation starts the tour. Focus is cleared silently and any blend or
// look-at is cancelled.
func (cc *cameraControllerImpl) StartIntroAnimation() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()

	if cc.mode == ModeTour {
		return false
	}
	now := cc.clock.Now()
	if !cc.tour.Start(now) {
		log.Warn("tour requested without a camera path")
		return false
	}

	cc.releaseFocus(now, false)
	cc.look.Cancel()
	cc.transition.Reset(0)
	cc.setMode(now, ModeTour)
	cc.emit(now, EventTourStart, nil)
	log.Info("tour started", "duration", cc.tour.duration)

	cc.stepTour(now)
	return true
}

// StopTour aborts a playing tour.
func (cc *cameraControllerImpl) StopTour() {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	if cc.mode != ModeTour {
		return
	}
	cc.finishTour(cc.clock.Now())
}

// IsTourMode reports whether the tour is playing.
func (cc *cameraControllerImpl) IsTourMode() bool {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.mode == ModeTour
}

// TourProgress returns the eased tour progress.
func (cc *cameraControllerImpl) TourProgress() float32 {
	cc.mu.Lock()
	defer cc.mu.Unlock()
	return cc.tour.Progress()
}
