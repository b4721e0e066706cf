package common

// Virtual key codes for cross-platform input handling.
// These values match GLFW key codes which use ASCII values for printable keys.
// Reference: https://pkg.go.dev/github.com/go-gl/glfw/v3.3/glfw#Key
const (
	KeyW     = 87  // W key (ASCII)
	KeyA     = 65  // A key (ASCII)
	KeyS     = 83  // S key (ASCII)
	KeyD     = 68  // D key (ASCII)
	KeyT     = 84  // T key (ASCII)
	KeySpace = 32  // Spacebar (ASCII)
	KeyEsc   = 256 // Escape key (GLFW)

	KeyRight = 262 // Right arrow (GLFW)
	KeyLeft  = 263 // Left arrow (GLFW)
	KeyDown  = 264 // Down arrow (GLFW)
	KeyUp    = 265 // Up arrow (GLFW)
)

// Additional non-printable keys
const (
	KeyLeftShift  = 340 // Left Shift (GLFW)
	KeyRightShift = 344 // Right Shift (GLFW)
)

// Lower-cased key identifiers used by the input tracker. They follow the
// names browsers report for KeyboardEvent.key so that recorded input and
// native window input share one vocabulary.
const (
	KeyNameW          = "w"
	KeyNameA          = "a"
	KeyNameS          = "s"
	KeyNameD          = "d"
	KeyNameT          = "t"
	KeyNameSpace      = " "
	KeyNameEscape     = "escape"
	KeyNameShift      = "shift"
	KeyNameArrowUp    = "arrowup"
	KeyNameArrowDown  = "arrowdown"
	KeyNameArrowLeft  = "arrowleft"
	KeyNameArrowRight = "arrowright"
)

var keyNames = map[uint32]string{
	KeyW:          KeyNameW,
	KeyA:          KeyNameA,
	KeyS:          KeyNameS,
	KeyD:          KeyNameD,
	KeyT:          KeyNameT,
	KeySpace:      KeyNameSpace,
	KeyEsc:        KeyNameEscape,
	KeyUp:         KeyNameArrowUp,
	KeyDown:       KeyNameArrowDown,
	KeyLeft:       KeyNameArrowLeft,
	KeyRight:      KeyNameArrowRight,
	KeyLeftShift:  KeyNameShift,
	KeyRightShift: KeyNameShift,
}

// KeyName maps a virtual key code to its lower-cased identifier.
// Printable ASCII letters and digits that have no explicit entry are lower-cased directly.
//
// Parameters:
//   - code: the virtual key code
//
// Returns:
//   - string: the key identifier, or "" if the key is not known
func KeyName(code uint32) string {
	if name, ok := keyNames[code]; ok {
		return name
	}
	switch {
	case code >= 'A' && code <= 'Z':
		return string(rune(code + ('a' - 'A')))
	case code >= '0' && code <= '9':
		return string(rune(code))
	}
	return ""
}
