package common

import (
	"math"
)

// TwoPi is a full turn in radians.
const TwoPi = float32(2 * math.Pi)

// Number is the set of numeric types accepted by the generic helpers in this package.
type Number interface {
	~int | ~int32 | ~int64 | ~float32 | ~float64
}

// Clamp restricts v to the closed range [lo, hi].
//
// Parameters:
//   - v: the value to clamp
//   - lo: lower bound
//   - hi: upper bound
//
// Returns:
//   - T: v limited to [lo, hi]
func Clamp[T Number](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Lerp linearly interpolates between a and b.
//
// Parameters:
//   - a: value at t = 0
//   - b: value at t = 1
//   - t: interpolation factor
//
// Returns:
//   - float32: a + (b-a)*t
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

// WrapPhase wraps an accumulating phase back into [0, 2π).
//
// Parameters:
//   - phase: phase in radians, expected to be non-negative
//
// Returns:
//   - float32: the wrapped phase
func WrapPhase(phase float32) float32 {
	for phase >= TwoPi {
		phase -= TwoPi
	}
	for phase < 0 {
		phase += TwoPi
	}
	return phase
}

// ShortestAngle returns the signed difference to - from reduced to [-π, π], however
// many turns apart the two angles are.
//
// Parameters:
//   - from: start angle in radians
//   - to: target angle in radians
//
// Returns:
//   - float32: the shortest signed rotation from "from" to "to"
func ShortestAngle(from, to float32) float32 {
	return float32(math.Remainder(float64(to)-float64(from), 2*math.Pi))
}

// Sin and Cos are float32 conveniences over the math package.
func Sin(x float32) float32 { return float32(math.Sin(float64(x))) }

func Cos(x float32) float32 { return float32(math.Cos(float64(x))) }

// Atan2 is a float32 wrapper over math.Atan2.
func Atan2(y, x float32) float32 { return float32(math.Atan2(float64(y), float64(x))) }

// Sqrt is a float32 wrapper over math.Sqrt.
func Sqrt(x float32) float32 { return float32(math.Sqrt(float64(x))) }
