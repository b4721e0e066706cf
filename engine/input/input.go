// Package input tracks keyboard and pointer state between frames.
//
// A Tracker is fed by the window adapter as raw events arrive. Once per frame the
// consumer takes an immutable State with Snapshot, which drains the pointer deltas
// accumulated since the previous snapshot.
package input

import (
	"strings"
	"sync"

	"github.com/Carmen-Shannon/oxy-gallery/common"
)

// Tracker accumulates input events. It is safe for use from the window thread
// and the engine tick goroutine at the same time.
type Tracker struct {
	mu *sync.Mutex

	keys   map[string]bool
	locked bool

	deltaX float32
	deltaY float32

	// activity is set by any key press or pointer delta received while locked.
	activity bool
}

// NewTracker creates an empty Tracker with pointer lock disengaged.
//
// Returns:
//   - *Tracker: the new tracker
func NewTracker() *Tracker {
	return &Tracker{
		mu:   &sync.Mutex{},
		keys: make(map[string]bool),
	}
}

// KeyDown records a key press. The identifier is lower-cased.
//
// Parameters:
//   - key: key identifier (e.g. "w", "Shift", "ArrowUp")
func (t *Tracker) KeyDown(key string) {
	key = strings.ToLower(key)
	if key == "" {
		return
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.keys[key] = true
	if t.locked {
		t.activity = true
	}
}

// KeyUp records a key release.
//
// Parameters:
//   - key: key identifier
func (t *Tracker) KeyUp(key string) {
	key = strings.ToLower(key)
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.keys, key)
}

// PointerMove accumulates a raw pointer delta. Deltas received while the pointer
// is not locked are discarded.
//
// Parameters:
//   - dx, dy: movement since the previous event, in pixels
func (t *Tracker) PointerMove(dx, dy float32) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.locked {
		return
	}
	t.deltaX += dx
	t.deltaY += dy
	if dx != 0 || dy != 0 {
		t.activity = true
	}
}

// SetPointerLock records a pointer-lock change. Releasing the lock drops any
// pending pointer delta.
//
// Parameters:
//   - locked: true when the pointer is captured by the viewer
func (t *Tracker) SetPointerLock(locked bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.locked = locked
	if !locked {
		t.deltaX, t.deltaY = 0, 0
	}
}

// Locked reports whether the pointer is currently locked.
func (t *Tracker) Locked() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.locked
}

// Snapshot returns the current input state and resets the per-frame accumulators
// (pointer delta and activity flag). Held keys persist across snapshots.
//
// Returns:
//   - State: an immutable copy of the input state
func (t *Tracker) Snapshot() State {
	t.mu.Lock()
	defer t.mu.Unlock()

	keys := make(map[string]bool, len(t.keys))
	for k, v := range t.keys {
		keys[k] = v
	}
	s := State{
		keys:     keys,
		Locked:   t.locked,
		DeltaX:   t.deltaX,
		DeltaY:   t.deltaY,
		Activity: t.activity,
	}
	t.deltaX, t.deltaY = 0, 0
	t.activity = false
	return s
}

// State is a per-frame snapshot of input.
type State struct {
	keys map[string]bool

	// Locked is true while the pointer is captured.
	Locked bool

	// DeltaX and DeltaY are the pointer movement accumulated since the previous snapshot.
	DeltaX float32
	DeltaY float32

	// Activity is true if a key was pressed or the pointer moved while locked.
	Activity bool
}

// NewState builds a State directly, for replaying recorded input or for tests.
//
// Parameters:
//   - locked: pointer-lock status
//   - dx, dy: pointer delta for the frame
//   - keys: identifiers of held keys
//
// Returns:
//   - State: the constructed snapshot; Activity is derived as a locked tracker would
func NewState(locked bool, dx, dy float32, keys ...string) State {
	m := make(map[string]bool, len(keys))
	for _, k := range keys {
		m[strings.ToLower(k)] = true
	}
	return State{
		keys:     m,
		Locked:   locked,
		DeltaX:   dx,
		DeltaY:   dy,
		Activity: locked && (len(keys) > 0 || dx != 0 || dy != 0),
	}
}

// Pressed reports whether the key is held.
func (s State) Pressed(key string) bool {
	return s.keys[strings.ToLower(key)]
}

// HasPointerDelta reports whether the pointer moved during the frame.
func (s State) HasPointerDelta() bool {
	return s.DeltaX != 0 || s.DeltaY != 0
}

// Movement is the set of movement flags derived from held keys.
type Movement struct {
	Forward  bool
	Backward bool
	Left     bool
	Right    bool
	Sprint   bool
}

// Any reports whether any directional flag is set.
func (m Movement) Any() bool {
	return m.Forward || m.Backward || m.Left || m.Right
}

// Movement derives WASD/arrow movement flags from the held keys.
func (s State) Movement() Movement {
	return Movement{
		Forward:  s.keys[common.KeyNameW] || s.keys[common.KeyNameArrowUp],
		Backward: s.keys[common.KeyNameS] || s.keys[common.KeyNameArrowDown],
		Left:     s.keys[common.KeyNameA] || s.keys[common.KeyNameArrowLeft],
		Right:    s.keys[common.KeyNameD] || s.keys[common.KeyNameArrowRight],
		Sprint:   s.keys[common.KeyNameShift],
	}
}

// Directional reports whether input that should steer the camera is present:
// a pointer delta or a held movement key, while locked.
func (s State) Directional() bool {
	if !s.Locked {
		return false
	}
	return s.HasPointerDelta() || s.Movement().Any()
}
