package camera

import (
	"time"

	"github.com/Carmen-Shannon/oxy-gallery/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Tour replays a scripted camera flight: position follows a spline while the gaze
// steps between discrete look points.
type Tour struct {
	duration time.Duration

	path       *CatmullRomPath
	lookPoints []mgl32.Vec3

	active   bool
	start    time.Time
	progress float32
}

// TourFrame is the camera state produced by one tour step.
type TourFrame struct {
	Position mgl32.Vec3
	// Orientation is valid only when HasLook is true.
	Orientation Orientation
	HasLook     bool
	// LookIndex is the index of the look point in use, or -1.
	LookIndex int
	// Progress is the eased spatial progress along the path.
	Progress float32
	// Done is true on the step that reached the end of the tour.
	Done bool
}

// NewTour creates a tour player with no path.
//
// Parameters:
//   - duration: wall-clock length of the tour
//
// Returns:
//   - *Tour: the player
func NewTour(duration time.Duration) *Tour {
	return &Tour{duration: duration}
}

// Setup stores the path and look points. Both are copied and stay fixed during playback.
//
// Parameters:
//   - points: spline control points
//   - lookPoints: gaze targets, in order
func (t *Tour) Setup(points, lookPoints []mgl32.Vec3) {
	t.path = NewCatmullRomPath(points)
	t.lookPoints = make([]mgl32.Vec3, len(lookPoints))
	copy(t.lookPoints, lookPoints)
}

// Ready reports whether a path with at least one point is configured.
func (t *Tour) Ready() bool {
	return t.path != nil && t.path.Len() > 0
}

// Start begins playback from progress 0.
//
// Parameters:
//   - now: current time
//
// Returns:
//   - bool: false if no path has been configured
func (t *Tour) Start(now time.Time) bool {
	if !t.Ready() {
		return false
	}
	t.active = true
	t.start = now
	t.progress = 0
	return true
}

// Stop ends playback without reaching the end.
func (t *Tour) Stop() {
	t.active = false
}

// Active reports whether the tour is playing.
func (t *Tour) Active() bool {
	return t.active
}

// Progress returns the eased progress of the last step.
func (t *Tour) Progress() float32 {
	return t.progress
}

// Update computes the camera state for now. Spatial progress is eased with easeInOutCubic;
// the gaze target is chosen by stepping through the look points, not by blending them.
//
// Parameters:
//   - now: current time
//
// Returns:
//   - TourFrame: position, orientation and completion for this step
func (t *Tour) Update(now time.Time) TourFrame {
	raw := float32(1)
	if t.duration > 0 {
		raw = common.Clamp(float32(now.Sub(t.start))/float32(t.duration), 0, 1)
	}
	t.progress = common.EaseInOutCubic(raw)

	frame := TourFrame{
		Position:  t.path.Point(t.progress),
		Progress:  t.progress,
		LookIndex: -1,
	}

	if n := len(t.lookPoints); n > 0 {
		idx := int(t.progress * float32(n))
		if idx >= n {
			idx = n - 1
		}
		dir := t.lookPoints[idx].Sub(frame.Position)
		if dir.Len() > 1e-6 {
			frame.Orientation = FromDirection(dir)
			frame.HasLook = true
		}
		frame.LookIndex = idx
	}

	if raw >= 1 {
		t.active = false
		frame.Done = true
	}
	return frame
}
