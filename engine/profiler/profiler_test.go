package profiler

import (
	"testing"
	"time"
)

func TestTickRespectsInterval(t *testing.T) {
	p := NewProfiler(time.Hour)
	for range 10 {
		if p.Tick() {
			t.Fatal("sampled before the interval elapsed")
		}
	}
	if !p.Last().At.IsZero() {
		t.Error("Last populated without a sample")
	}
}

func TestTickSamples(t *testing.T) {
	p := NewProfiler(0)
	if !p.Tick() {
		t.Fatal("zero interval should sample every tick")
	}
	s := p.Last()
	if s.At.IsZero() || s.TicksPerSecond <= 0 || s.SysMB <= 0 {
		t.Errorf("unexpected sample %+v", s)
	}
}
