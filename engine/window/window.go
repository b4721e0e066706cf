package window

import (
	"runtime"

	"github.com/Carmen-Shannon/oxy-gallery/common"
	"github.com/pkg/errors"
)

// Window provides platform windowing and input event handling for the viewer.
// Key events are reported as lower-case key identifiers; pointer movement is reported as
// relative deltas and only while the pointer is locked.
type Window interface {
	// SetUpdateCallback sets the function called each message loop iteration.
	//
	// Parameters:
	//   - callback: function to call (or nil to disable)
	SetUpdateCallback(callback func())

	// SetResizeCallback sets the function called when the window is resized.
	//
	// Parameters:
	//   - callback: function receiving new width and height in pixels
	SetResizeCallback(callback func(width, height int))

	// SetKeyDownCallback sets the callback for key press events.
	//
	// Parameters:
	//   - callback: function receiving the key identifier (e.g. "w", "shift", "arrowup")
	SetKeyDownCallback(callback func(key string))

	// SetKeyUpCallback sets the callback for key release events.
	//
	// Parameters:
	//   - callback: function receiving the key identifier
	SetKeyUpCallback(callback func(key string))

	// SetPointerMoveCallback sets the callback for relative pointer motion while locked.
	//
	// Parameters:
	//   - callback: function receiving the pointer delta in pixels
	SetPointerMoveCallback(callback func(dx, dy float32))

	// SetPointerLockCallback sets the callback for pointer-lock changes.
	//
	// Parameters:
	//   - callback: function receiving the new lock state
	SetPointerLockCallback(callback func(locked bool))

	// SetPointerLock captures or releases the pointer.
	//
	// Parameters:
	//   - locked: true to capture
	SetPointerLock(locked bool)

	// PointerLocked reports whether the pointer is captured.
	//
	// Returns:
	//   - bool: true while locked
	PointerLocked() bool

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Stop ends the message loop without destroying the window. Must be called from the
	// message loop thread, typically from the update callback.
	Stop()

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Calls the update callback each iteration.
	ProcessMessages()

	// Width returns the current window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the current window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int

	// Aspect returns width divided by height, or 1 for a degenerate size.
	//
	// Returns:
	//   - float32: the aspect ratio
	Aspect() float32
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state, and event callbacks.
type engineWindow struct {
	title string

	maxWidth  int
	maxHeight int
	minWidth  int
	minHeight int

	width  int
	height int

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	pointer pointerState

	onUpdate      func()
	onResize      func(width, height int)
	onKeyDown     func(key string)
	onKeyUp       func(key string)
	onPointerMove func(dx, dy float32)
	onPointerLock func(locked bool)
}

// pointerState turns absolute cursor positions into deltas. The first sample after a
// lock only establishes the origin so the capture itself never produces a jump.
type pointerState struct {
	locked  bool
	hasLast bool
	lastX   float64
	lastY   float64
}

// sample records a cursor position and returns the delta since the previous one.
func (p *pointerState) sample(x, y float64) (dx, dy float32, ok bool) {
	if !p.locked {
		return 0, 0, false
	}
	if !p.hasLast {
		p.lastX, p.lastY, p.hasLast = x, y, true
		return 0, 0, false
	}
	dx, dy = float32(x-p.lastX), float32(y-p.lastY)
	p.lastX, p.lastY = x, y
	return dx, dy, dx != 0 || dy != 0
}

func (p *pointerState) setLocked(locked bool) bool {
	if p.locked == locked {
		return false
	}
	p.locked = locked
	p.hasLast = false
	return true
}

var _ Window = &engineWindow{}

// NewWindow creates and spawns a Window with the specified options.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the spawned window
//   - error: error if the platform window could not be created
func NewWindow(options ...WindowBuilderOption) (Window, error) {
	w := &engineWindow{
		title:     "oxy-gallery",
		maxWidth:  3840,
		maxHeight: 2160,
		minWidth:  640,
		minHeight: 360,
		width:     1280,
		height:    720,
	}
	for _, opt := range options {
		opt(w)
	}
	if err := newPlatformWindow(w); err != nil {
		return nil, errors.Wrap(err, "create platform window")
	}
	return w, nil
}

func (w *engineWindow) SetUpdateCallback(callback func()) {
	w.onUpdate = callback
}

func (w *engineWindow) SetResizeCallback(callback func(width, height int)) {
	w.onResize = callback
}

func (w *engineWindow) SetKeyDownCallback(callback func(key string)) {
	w.onKeyDown = callback
}

func (w *engineWindow) SetKeyUpCallback(callback func(key string)) {
	w.onKeyUp = callback
}

func (w *engineWindow) SetPointerMoveCallback(callback func(dx, dy float32)) {
	w.onPointerMove = callback
}

func (w *engineWindow) SetPointerLockCallback(callback func(locked bool)) {
	w.onPointerLock = callback
}

func (w *engineWindow) SetPointerLock(locked bool) {
	if !w.pointer.setLocked(locked) {
		return
	}
	platformSetCursorMode(w, locked)
	if w.onPointerLock != nil {
		w.onPointerLock(locked)
	}
}

func (w *engineWindow) PointerLocked() bool {
	return w.pointer.locked
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Stop() {
	platformStop(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if succ := platformProcessMessages(w); !succ {
			break
		}

		if w.onUpdate != nil {
			w.onUpdate()
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}

func (w *engineWindow) Aspect() float32 {
	if w.width <= 0 || w.height <= 0 {
		return 1
	}
	return float32(w.width) / float32(w.height)
}

// handleKey routes a key transition. Escape releases the pointer lock, or closes the
// window when the pointer is already free; it is never forwarded.
func (w *engineWindow) handleKey(key string, pressed bool) (closeWindow bool) {
	if key == common.KeyNameEscape {
		if !pressed {
			return false
		}
		if w.pointer.locked {
			w.SetPointerLock(false)
			return false
		}
		return true
	}
	if pressed {
		if w.onKeyDown != nil {
			w.onKeyDown(key)
		}
		return false
	}
	if w.onKeyUp != nil {
		w.onKeyUp(key)
	}
	return false
}

// handleCursor converts a cursor position into a pointer delta callback.
func (w *engineWindow) handleCursor(x, y float64) {
	dx, dy, ok := w.pointer.sample(x, y)
	if ok && w.onPointerMove != nil {
		w.onPointerMove(dx, dy)
	}
}
