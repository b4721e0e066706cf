package common

import (
	"math"
	"testing"
)

func TestEaseInOutCubicEndpoints(t *testing.T) {
	if got := EaseInOutCubic(0); got != 0 {
		t.Errorf("EaseInOutCubic(0) = %v, want 0", got)
	}
	if got := EaseInOutCubic(1); got != 1 {
		t.Errorf("EaseInOutCubic(1) = %v, want 1", got)
	}
	if got := EaseInOutCubic(0.5); math.Abs(float64(got-0.5)) > 1e-6 {
		t.Errorf("EaseInOutCubic(0.5) = %v, want 0.5", got)
	}
	if got := EaseInOutCubic(2); got != 1 {
		t.Errorf("EaseInOutCubic should clamp, got %v", got)
	}
}

func TestEaseOutQuint(t *testing.T) {
	if got := EaseOutQuint(0); got != 0 {
		t.Errorf("EaseOutQuint(0) = %v", got)
	}
	if got := EaseOutQuint(1); got != 1 {
		t.Errorf("EaseOutQuint(1) = %v", got)
	}
	// fast start: more than half way after a fifth of the time
	if got := EaseOutQuint(0.2); got < 0.6 {
		t.Errorf("EaseOutQuint(0.2) = %v, expected > 0.6", got)
	}
}

func TestFalloffQuadratic(t *testing.T) {
	tests := []struct {
		in, want float32
	}{
		{0, 1},
		{0.5, 0.75},
		{1, 0},
		{-1, 1},
	}
	for _, tt := range tests {
		if got := FalloffQuadratic(tt.in); math.Abs(float64(got-tt.want)) > 1e-6 {
			t.Errorf("FalloffQuadratic(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestShortestAngle(t *testing.T) {
	tests := []struct {
		name     string
		from, to float32
		want     float32
	}{
		{"small positive", 0.1, 0.3, 0.2},
		{"across +pi", 3.0, -3.0, 2*math.Pi - 6},
		{"across -pi", -3.0, 3.0, 6 - 2*math.Pi},
		{"zero", 1, 1, 0},
		{"two turns ahead", 4*math.Pi + 0.3, 0, -0.3},
		{"three turns behind", -6*math.Pi - 0.2, 0.1, 0.3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ShortestAngle(tt.from, tt.to)
			if math.Abs(float64(got-tt.want)) > 1e-5 {
				t.Errorf("ShortestAngle(%v, %v) = %v, want %v", tt.from, tt.to, got, tt.want)
			}
			if math.Abs(float64(got)) > math.Pi+1e-6 {
				t.Errorf("ShortestAngle exceeded pi: %v", got)
			}
		})
	}
}

func TestWrapPhase(t *testing.T) {
	if got := WrapPhase(TwoPi + 0.5); math.Abs(float64(got-0.5)) > 1e-5 {
		t.Errorf("WrapPhase = %v, want 0.5", got)
	}
	if got := WrapPhase(1); got != 1 {
		t.Errorf("WrapPhase(1) = %v", got)
	}
}

func TestKeyName(t *testing.T) {
	tests := map[uint32]string{
		KeyW:          "w",
		KeyLeftShift:  "shift",
		KeyRightShift: "shift",
		KeyUp:         "arrowup",
		'Q':           "q",
		'7':           "7",
		999:           "",
	}
	for code, want := range tests {
		if got := KeyName(code); got != want {
			t.Errorf("KeyName(%d) = %q, want %q", code, got, want)
		}
	}
}

func TestCoalesce(t *testing.T) {
	if got := Coalesce(0, 0, 3, 4); got != 3 {
		t.Errorf("Coalesce = %d, want 3", got)
	}
	if got := Coalesce[float32](0, 0); got != 0 {
		t.Errorf("Coalesce of zeros = %v", got)
	}
}
