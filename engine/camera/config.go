package camera

import (
	"time"
)

// NaturalMotionConfig tunes the idle "breathing" and "wiggle" perturbations.
// Rates are in radians per second, amplitudes in radians at full intensity.
type NaturalMotionConfig struct {
	BreatheRate      float32
	BreatheAmplitude float32
	// HeightFactor scales the breathing pitch offset into a vertical position offset.
	HeightFactor float32

	WiggleRate      float32
	WiggleAmplitude float32
	// WigglePitchScale and WigglePitchFrequency shape the vertical wiggle relative to the horizontal one.
	WigglePitchScale     float32
	WigglePitchFrequency float32
}

// DefaultNaturalMotionConfig returns the tuned natural-motion constants.
func DefaultNaturalMotionConfig() NaturalMotionConfig {
	return NaturalMotionConfig{
		BreatheRate:      0.3,
		BreatheAmplitude: 0.008,
		HeightFactor:     0.05,

		WiggleRate:           0.2,
		WiggleAmplitude:      0.015,
		WigglePitchScale:     0.7,
		WigglePitchFrequency: 1.3,
	}
}

// Range is an inclusive interval of durations a random value is drawn from.
type Range struct {
	Min time.Duration
	Max time.Duration
}

// AttentionConfig tunes the artwork focus scanner and its glance-away cycle.
// The defaults were tuned by eye; they are configuration, not invariants.
type AttentionConfig struct {
	// ScanInterval is the minimum time between two scans for a new artwork.
	ScanInterval time.Duration

	// ConeThreshold is the minimum dot product between the camera forward vector and the
	// direction to an artwork (0.5 ≈ a 60° half-angle cone).
	ConeThreshold float32
	// DistanceFactor multiplies an artwork's viewing distance to get its visibility cutoff.
	DistanceFactor float32

	// CenterWeight and DistanceWeight form the selection score
	// CenterWeight·centeredness − DistanceWeight·distance.
	CenterWeight   float32
	DistanceWeight float32

	// FocusLookDuration is the look-at length when an artwork is first focused.
	FocusLookDuration time.Duration
	// GlanceLookDuration is the look-at length for glancing away and back.
	GlanceLookDuration time.Duration

	// InitialEngage is how long the first dwell on a newly focused artwork lasts.
	InitialEngage Range
	// Reengage is how long each later dwell lasts.
	Reengage Range
	// LookBack is how long the gaze stays diverted before returning.
	LookBack Range

	// GlanceOffset bounds the random look-away offset on each axis (±x, ±y, ±z).
	GlanceOffset [3]float32
}

// DefaultAttentionConfig returns the tuned attention constants.
func DefaultAttentionConfig() AttentionConfig {
	return AttentionConfig{
		ScanInterval: 2000 * time.Millisecond,

		ConeThreshold:  0.5,
		DistanceFactor: 2,

		CenterWeight:   3,
		DistanceWeight: 0.1,

		FocusLookDuration:  4 * time.Second,
		GlanceLookDuration: 3 * time.Second,

		InitialEngage: Range{Min: 4 * time.Second, Max: 7 * time.Second},
		Reengage:      Range{Min: 3 * time.Second, Max: 7 * time.Second},
		LookBack:      Range{Min: 1000 * time.Millisecond, Max: 2500 * time.Millisecond},

		GlanceOffset: [3]float32{0.35, 0.15, 0.1},
	}
}

// Default controller settings.
const (
	DefaultMoveSpeed          float32 = 0.05
	DefaultSprintSpeed        float32 = 0.1
	DefaultMouseSensitivity   float32 = 0.002
	DefaultIdleThreshold              = 3000 * time.Millisecond
	DefaultTransitionDuration         = 2000 * time.Millisecond
	DefaultTourDuration               = 20 * time.Second
	DefaultEyeHeight          float32 = 1.6

	// CollisionRadius is the radius of the sphere tested against the collision predicate.
	CollisionRadius float32 = 0.5
)
