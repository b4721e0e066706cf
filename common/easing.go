package common

// Easing functions map a normalized progress t in [0, 1] to an eased value in [0, 1].
// Inputs outside the range are clamped so callers can pass raw elapsed ratios.

// EaseInOutCubic accelerates through the first half and decelerates through the second.
//
// Parameters:
//   - t: progress in [0, 1]
//
// Returns:
//   - float32: eased progress, exactly 0 at t=0 and exactly 1 at t=1
func EaseInOutCubic(t float32) float32 {
	t = Clamp(t, 0, 1)
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}

// EaseOutQuint starts fast and settles very gently: 1-(1-t)^5.
//
// Parameters:
//   - t: progress in [0, 1]
//
// Returns:
//   - float32: eased progress
func EaseOutQuint(t float32) float32 {
	t = Clamp(t, 0, 1)
	f := 1 - t
	return 1 - f*f*f*f*f
}

// FalloffQuadratic is the complement of an ease-in quad: 1-t².
// It stays near 1 briefly and then drops away quickly.
//
// Parameters:
//   - t: progress in [0, 1]
//
// Returns:
//   - float32: 1 at t=0 down to exactly 0 at t=1
func FalloffQuadratic(t float32) float32 {
	t = Clamp(t, 0, 1)
	return 1 - t*t
}
