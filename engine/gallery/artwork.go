// Package gallery describes the parts of the exhibition space that the camera core queries:
// the artworks hanging in the room and the room's collision volume. The scene layer owns
// these values; the camera only reads them.
package gallery

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
)

// DefaultViewingDistance is used when an artwork does not declare its own viewing distance.
const DefaultViewingDistance float32 = 5

// Metadata is the descriptive data shown alongside an artwork.
type Metadata struct {
	Title       string `json:"title"`
	Artist      string `json:"artist,omitempty"`
	Description string `json:"description,omitempty"`
	Year        int    `json:"year,omitempty"`

	// ViewingDistance is the comfortable distance from which the piece is meant to be seen.
	// Zero or negative means "not configured".
	ViewingDistance float32 `json:"viewingDistance,omitempty"`
}

// Artwork is a framed piece placed in the gallery.
type Artwork struct {
	ID       string     `json:"id"`
	Position mgl32.Vec3 `json:"position"`

	// Orientation tags the wall the artwork hangs on (e.g. "north").
	Orientation string `json:"orientation,omitempty"`

	Meta Metadata `json:"meta"`
}

// NewArtwork creates an artwork at the given position. An empty id is replaced with a random UUID.
//
// Parameters:
//   - id: stable identifier, or "" to generate one
//   - position: world-space center of the artwork
//   - meta: descriptive metadata
//
// Returns:
//   - *Artwork: the new artwork
func NewArtwork(id string, position mgl32.Vec3, meta Metadata) *Artwork {
	if id == "" {
		id = uuid.NewString()
	}
	return &Artwork{
		ID:       id,
		Position: position,
		Meta:     meta,
	}
}

// ViewingDistance returns the configured viewing distance, or DefaultViewingDistance when unset.
func (a *Artwork) ViewingDistance() float32 {
	if a == nil || a.Meta.ViewingDistance <= 0 {
		return DefaultViewingDistance
	}
	return a.Meta.ViewingDistance
}
