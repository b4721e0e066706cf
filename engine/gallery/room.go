package gallery

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Box is an axis-aligned bounding box.
type Box struct {
	Min mgl32.Vec3 `json:"min"`
	Max mgl32.Vec3 `json:"max"`
}

// distanceSq returns the squared distance from p to the closest point of the box.
func (b Box) distanceSq(p mgl32.Vec3) float32 {
	var d float32
	for i := 0; i < 3; i++ {
		v := p[i]
		if v < b.Min[i] {
			d += (b.Min[i] - v) * (b.Min[i] - v)
		} else if v > b.Max[i] {
			d += (v - b.Max[i]) * (v - b.Max[i])
		}
	}
	return d
}

// Room is the walkable floor plan: a bounding box the visitor must stay inside,
// plus solid obstacles (benches, plinths, partitions) to stay out of.
type Room struct {
	Bounds    Box   `json:"bounds"`
	Obstacles []Box `json:"obstacles,omitempty"`
}

// Collides reports whether a sphere of the given radius at pos penetrates a wall or obstacle.
// Walls are tested on the horizontal plane only; the camera's height never collides with the ceiling.
//
// Parameters:
//   - pos: proposed sphere center
//   - radius: sphere radius
//
// Returns:
//   - bool: true if the proposed position is blocked
func (r *Room) Collides(pos mgl32.Vec3, radius float32) bool {
	if r == nil {
		return false
	}
	b := r.Bounds
	if b.Min != b.Max {
		if pos[0]-radius < b.Min[0] || pos[0]+radius > b.Max[0] ||
			pos[2]-radius < b.Min[2] || pos[2]+radius > b.Max[2] {
			return true
		}
	}
	r2 := radius * radius
	for _, o := range r.Obstacles {
		if o.distanceSq(pos) < r2 {
			return true
		}
	}
	return false
}
