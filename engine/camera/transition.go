package camera

import (
	"time"

	"github.com/Carmen-Shannon/oxy-gallery/common"
)

// Transition drives the natural-motion intensity between manual (0) and natural (1).
//
// The curve is asymmetric: entering natural mode follows easeInOutCubic so autonomy drifts
// in slowly, while leaving follows 1-p² so the user gets the camera back almost at once.
type Transition struct {
	duration time.Duration

	active    bool
	toNatural bool
	start     time.Time
	from      float32

	intensity float32
}

// NewTransition creates an idle transition engine.
//
// Parameters:
//   - duration: how long a full transition takes
//
// Returns:
//   - *Transition: the engine, at intensity 0
func NewTransition(duration time.Duration) *Transition {
	return &Transition{duration: duration}
}

// Start begins a transition unless one is already running. Overlapping requests are dropped.
//
// Parameters:
//   - now: current time
//   - toNatural: true to blend into natural mode, false to blend out
//
// Returns:
//   - bool: true if a transition was started
func (t *Transition) Start(now time.Time, toNatural bool) bool {
	if t.active {
		return false
	}
	t.begin(now, toNatural)
	return true
}

// Preempt begins a transition even if one is running, continuing from the current
// intensity. It is reserved for user input reclaiming the camera.
//
// Parameters:
//   - now: current time
//   - toNatural: target mode
func (t *Transition) Preempt(now time.Time, toNatural bool) {
	t.begin(now, toNatural)
}

func (t *Transition) begin(now time.Time, toNatural bool) {
	t.active = true
	t.toNatural = toNatural
	t.start = now
	t.from = t.intensity
}

// Update advances the transition.
//
// Parameters:
//   - now: current time
//
// Returns:
//   - float32: the blended intensity
//   - bool: true on the update that completed the transition
func (t *Transition) Update(now time.Time) (float32, bool) {
	if !t.active {
		return t.intensity, false
	}

	progress := float32(1)
	if t.duration > 0 {
		progress = common.Clamp(float32(now.Sub(t.start))/float32(t.duration), 0, 1)
	}

	if progress >= 1 {
		t.active = false
		if t.toNatural {
			t.intensity = 1
		} else {
			t.intensity = 0
		}
		return t.intensity, true
	}

	if t.toNatural {
		t.intensity = t.from + (1-t.from)*common.EaseInOutCubic(progress)
	} else {
		t.intensity = t.from * common.FalloffQuadratic(progress)
	}
	return t.intensity, false
}

// Reset stops any transition and sets the intensity directly.
func (t *Transition) Reset(intensity float32) {
	t.active = false
	t.intensity = common.Clamp(intensity, 0, 1)
}

// Active reports whether a transition is in progress.
func (t *Transition) Active() bool { return t.active }

// ToNatural reports the direction of the current (or last) transition.
func (t *Transition) ToNatural() bool { return t.toNatural }

// Intensity returns the last computed intensity.
func (t *Transition) Intensity() float32 { return t.intensity }

// Duration returns the configured transition length.
func (t *Transition) Duration() time.Duration { return t.duration }
