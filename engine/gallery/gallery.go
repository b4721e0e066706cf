package gallery

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Gallery groups the artworks with the room they hang in.
type Gallery struct {
	Name     string     `json:"name"`
	Room     Room       `json:"room"`
	Artworks []*Artwork `json:"artworks"`

	byID map[string]*Artwork
}

// NewGallery creates a gallery and indexes its artworks by ID.
//
// Parameters:
//   - name: display name of the exhibition
//   - room: collision volume
//   - artworks: the pieces on display
//
// Returns:
//   - *Gallery: the new gallery
func NewGallery(name string, room Room, artworks []*Artwork) *Gallery {
	g := &Gallery{
		Name:     name,
		Room:     room,
		Artworks: artworks,
		byID:     make(map[string]*Artwork, len(artworks)),
	}
	for _, a := range artworks {
		g.byID[a.ID] = a
	}
	return g
}

// Artwork looks up an artwork by ID. Returns nil when not found.
func (g *Gallery) Artwork(id string) *Artwork {
	return g.byID[id]
}

// Collides is the gallery's collision predicate, suitable for the camera controller.
func (g *Gallery) Collides(pos mgl32.Vec3, radius float32) bool {
	return g.Room.Collides(pos, radius)
}
