package camera

import (
	"math/rand/v2"
	"time"

	"github.com/Carmen-Shannon/oxy-gallery/engine/gallery"
	"github.com/go-gl/mathgl/mgl32"
)

// attentionPhase is the stage of the glance-away cycle while an artwork is focused.
type attentionPhase int

const (
	// phaseEngaged: looking at the artwork until engagedUntil.
	phaseEngaged attentionPhase = iota
	// phaseDiverted: glancing beside it until divertedUntil.
	phaseDiverted
)

// lookRequest asks the controller to start a look-at animation.
type lookRequest struct {
	target   mgl32.Vec3
	duration time.Duration
}

// FocusScanner picks an artwork to pay attention to while the camera idles and then
// runs a dwell / glance-away / glance-back cycle on it. It never switches targets
// while something is focused.
type FocusScanner struct {
	cfg AttentionConfig
	rng *rand.Rand

	artworks []*gallery.Artwork

	focused           *gallery.Artwork
	phase             attentionPhase
	engagedUntil      time.Time
	divertedUntil     time.Time
	lookAwayPoint     mgl32.Vec3
	userTriggeredBlur bool

	lastScan time.Time
	scanned  bool
}

// NewFocusScanner creates a scanner over the given artworks.
//
// Parameters:
//   - cfg: attention constants
//   - rng: random source for dwell times and glance offsets
//   - artworks: candidate artworks (read-only)
//
// Returns:
//   - *FocusScanner: the scanner, with nothing focused
func NewFocusScanner(cfg AttentionConfig, rng *rand.Rand, artworks []*gallery.Artwork) *FocusScanner {
	return &FocusScanner{
		cfg:      cfg,
		rng:      rng,
		artworks: artworks,
	}
}

// SetArtworks replaces the candidate list. A focused artwork stays focused.
func (f *FocusScanner) SetArtworks(artworks []*gallery.Artwork) {
	f.artworks = artworks
}

// Focused returns the focused artwork, or nil.
func (f *FocusScanner) Focused() *gallery.Artwork {
	return f.focused
}

// LookAwayPoint returns the point used by the last glance away.
func (f *FocusScanner) LookAwayPoint() mgl32.Vec3 {
	return f.lookAwayPoint
}

// UserTriggeredBlur reports whether the last release of focus was caused by the user.
func (f *FocusScanner) UserTriggeredBlur() bool {
	return f.userTriggeredBlur
}

// Visible reports whether an artwork passes the cone and distance tests from the camera,
// and returns its centeredness (dot product) and distance.
//
// Parameters:
//   - eye: camera position
//   - forward: unit camera forward vector
//   - art: candidate artwork
//
// Returns:
//   - bool: true if the artwork is inside the cone and close enough
//   - float32: centeredness in [-1, 1]
//   - float32: distance from the camera
func (f *FocusScanner) Visible(eye, forward mgl32.Vec3, art *gallery.Artwork) (bool, float32, float32) {
	to := art.Position.Sub(eye)
	dist := to.Len()
	if dist < 1e-6 {
		return false, 0, 0
	}
	centered := forward.Dot(to.Mul(1 / dist))
	if centered <= f.cfg.ConeThreshold {
		return false, centered, dist
	}
	if dist > f.cfg.DistanceFactor*art.ViewingDistance() {
		return false, centered, dist
	}
	return true, centered, dist
}

// Best returns the highest-scoring visible artwork, or nil. Ties keep the first one seen.
//
// Parameters:
//   - eye: camera position
//   - forward: unit camera forward vector
//
// Returns:
//   - *gallery.Artwork: the best candidate, or nil if none is visible
func (f *FocusScanner) Best(eye, forward mgl32.Vec3) *gallery.Artwork {
	var best *gallery.Artwork
	var bestScore float32
	for _, art := range f.artworks {
		if art == nil {
			continue
		}
		ok, centered, dist := f.Visible(eye, forward, art)
		if !ok {
			continue
		}
		score := f.cfg.CenterWeight*centered - f.cfg.DistanceWeight*dist
		if best == nil || score > bestScore {
			best = art
			bestScore = score
		}
	}
	return best
}

// Update runs one frame of the scanner.
//
// Parameters:
//   - now: current time
//   - eye: camera position
//   - forward: unit camera forward vector
//
// Returns:
//   - *gallery.Artwork: the artwork that became focused this frame, or nil
//   - *lookRequest: a look-at the controller should start, or nil
func (f *FocusScanner) Update(now time.Time, eye, forward mgl32.Vec3) (*gallery.Artwork, *lookRequest) {
	if f.focused != nil {
		return nil, f.cycle(now)
	}

	if f.scanned && now.Sub(f.lastScan) < f.cfg.ScanInterval {
		return nil, nil
	}
	f.scanned = true
	f.lastScan = now

	art := f.Best(eye, forward)
	if art == nil {
		return nil, nil
	}

	f.focused = art
	f.userTriggeredBlur = false
	f.phase = phaseEngaged
	f.engagedUntil = now.Add(f.draw(f.cfg.InitialEngage))
	return art, &lookRequest{target: art.Position, duration: f.cfg.FocusLookDuration}
}

// cycle advances the dwell / glance-away / glance-back cycle.
func (f *FocusScanner) cycle(now time.Time) *lookRequest {
	switch f.phase {
	case phaseEngaged:
		if now.Before(f.engagedUntil) {
			return nil
		}
		off := f.cfg.GlanceOffset
		f.lookAwayPoint = f.focused.Position.Add(mgl32.Vec3{
			f.spread(off[0]),
			f.spread(off[1]),
			f.spread(off[2]),
		})
		f.phase = phaseDiverted
		f.divertedUntil = now.Add(f.draw(f.cfg.LookBack))
		return &lookRequest{target: f.lookAwayPoint, duration: f.cfg.GlanceLookDuration}

	case phaseDiverted:
		if now.Before(f.divertedUntil) {
			return nil
		}
		f.phase = phaseEngaged
		f.engagedUntil = now.Add(f.draw(f.cfg.Reengage))
		return &lookRequest{target: f.focused.Position, duration: f.cfg.GlanceLookDuration}
	}
	return nil
}

// Release clears focus and returns the artwork that was focused, or nil.
// The scan timer is reset so a fresh scan may run as soon as natural mode resumes.
//
// Parameters:
//   - userTriggered: true if the user reclaimed the camera
//
// Returns:
//   - *gallery.Artwork: the previously focused artwork
func (f *FocusScanner) Release(userTriggered bool) *gallery.Artwork {
	prev := f.focused
	f.focused = nil
	f.phase = phaseEngaged
	f.engagedUntil = time.Time{}
	f.divertedUntil = time.Time{}
	f.scanned = false
	if prev != nil {
		f.userTriggeredBlur = userTriggered
	}
	return prev
}

// draw picks a uniformly random duration in r.
func (f *FocusScanner) draw(r Range) time.Duration {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + time.Duration(f.rng.Float64()*float64(r.Max-r.Min))
}

// spread picks a uniformly random value in [-limit, limit].
func (f *FocusScanner) spread(limit float32) float32 {
	return (float32(f.rng.Float64())*2 - 1) * limit
}
