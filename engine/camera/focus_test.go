package camera

import (
	"math/rand/v2"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-gallery/engine/gallery"
	"github.com/go-gl/mathgl/mgl32"
)

var forward = mgl32.Vec3{0, 0, -1}

func newTestScanner(arts ...*gallery.Artwork) *FocusScanner {
	return NewFocusScanner(DefaultAttentionConfig(), rand.New(rand.NewPCG(7, 11)), arts)
}

func art(id string, pos mgl32.Vec3) *gallery.Artwork {
	return gallery.NewArtwork(id, pos, gallery.Metadata{Title: id})
}

func TestFocusVisibility(t *testing.T) {
	f := newTestScanner()
	tests := []struct {
		name string
		pos  mgl32.Vec3
		want bool
	}{
		{"ahead", mgl32.Vec3{0, 0, -4}, true},
		{"edge of cone", mgl32.Vec3{3, 0, -4}, true},
		{"beside", mgl32.Vec3{4, 0, 0}, false},
		{"behind", mgl32.Vec3{0, 0, 4}, false},
		{"too far", mgl32.Vec3{0, 0, -11}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, _, _ := f.Visible(mgl32.Vec3{}, forward, art(tt.name, tt.pos))
			if ok != tt.want {
				t.Errorf("Visible = %v, want %v", ok, tt.want)
			}
		})
	}
}

func TestFocusBestPrefersCentered(t *testing.T) {
	a := art("side", mgl32.Vec3{2, 0, -4})
	b := art("center", mgl32.Vec3{0, 0, -4})
	f := newTestScanner(a, b)
	if got := f.Best(mgl32.Vec3{}, forward); got != b {
		t.Errorf("Best = %v, want center", got)
	}
}

func TestFocusScanInterval(t *testing.T) {
	f := newTestScanner()
	if a, _ := f.Update(t0, mgl32.Vec3{}, forward); a != nil {
		t.Fatal("focused with no artworks")
	}

	target := art("a", mgl32.Vec3{0, 0, -4})
	f.SetArtworks([]*gallery.Artwork{target})
	if a, _ := f.Update(t0.Add(time.Second), mgl32.Vec3{}, forward); a != nil {
		t.Error("scanned before the interval elapsed")
	}
	a, req := f.Update(t0.Add(2*time.Second), mgl32.Vec3{}, forward)
	if a != target || req == nil || req.target != target.Position || req.duration != 4*time.Second {
		t.Errorf("Update = %v, %+v", a, req)
	}
}

func TestFocusDoesNotSwitchTargets(t *testing.T) {
	first := art("first", mgl32.Vec3{0, 0, -4})
	second := art("second", mgl32.Vec3{0, 0, 4})
	f := newTestScanner(first, second)
	f.Update(t0, mgl32.Vec3{}, forward)

	// now facing the other artwork squarely
	for i := 1; i <= 3; i++ {
		a, _ := f.Update(t0.Add(time.Duration(i)*time.Second), mgl32.Vec3{}, mgl32.Vec3{0, 0, 1})
		if a != nil {
			t.Fatalf("switched focus to %s", a.ID)
		}
	}
	if f.Focused() != first {
		t.Errorf("Focused = %v", f.Focused())
	}
}

func TestFocusGlanceCycle(t *testing.T) {
	target := art("a", mgl32.Vec3{0, 1, -4})
	f := newTestScanner(target)
	cfg := DefaultAttentionConfig()
	f.Update(t0, mgl32.Vec3{}, forward)

	if _, req := f.Update(t0.Add(3*time.Second), mgl32.Vec3{}, forward); req != nil {
		t.Fatal("glanced away before the minimum dwell")
	}

	now := t0.Add(cfg.InitialEngage.Max)
	_, away := f.Update(now, mgl32.Vec3{}, forward)
	if away == nil || away.duration != cfg.GlanceLookDuration {
		t.Fatalf("expected glance-away request, got %+v", away)
	}
	off := away.target.Sub(target.Position)
	for i := range 3 {
		if off[i] > cfg.GlanceOffset[i] || off[i] < -cfg.GlanceOffset[i] {
			t.Errorf("look-away offset axis %d = %v out of range", i, off[i])
		}
	}
	if f.LookAwayPoint() != away.target {
		t.Error("LookAwayPoint does not match request")
	}

	now = now.Add(cfg.LookBack.Max)
	_, back := f.Update(now, mgl32.Vec3{}, forward)
	if back == nil || back.target != target.Position {
		t.Fatalf("expected glance-back request, got %+v", back)
	}
	if f.Focused() != target {
		t.Error("focus lost during the glance cycle")
	}
}

func TestFocusRelease(t *testing.T) {
	target := art("a", mgl32.Vec3{0, 0, -4})
	f := newTestScanner(target)
	f.Update(t0, mgl32.Vec3{}, forward)

	if prev := f.Release(true); prev != target {
		t.Errorf("Release returned %v", prev)
	}
	if f.Focused() != nil || !f.UserTriggeredBlur() {
		t.Error("release did not clear focus or record the user blur")
	}
	// a fresh scan may run immediately
	if a, _ := f.Update(t0.Add(time.Millisecond), mgl32.Vec3{}, forward); a != target {
		t.Error("no rescan after release")
	}
	if f.UserTriggeredBlur() {
		t.Error("user blur flag survived a new focus")
	}
}
