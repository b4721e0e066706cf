package camera

import (
	"time"

	"github.com/Carmen-Shannon/oxy-gallery/engine/gallery"
)

// Mode is the controller's top-level state.
type Mode int

const (
	// ModeManual: the user drives the camera.
	ModeManual Mode = iota
	// ModeTransitioning: blending between manual and natural; IsNaturalMode gives the direction.
	ModeTransitioning
	// ModeNatural: autonomous idle motion is fully blended in.
	ModeNatural
	// ModeTour: the scripted tour owns the camera.
	ModeTour
)

// String returns the mode name.
func (m Mode) String() string {
	switch m {
	case ModeManual:
		return "manual"
	case ModeTransitioning:
		return "transitioning"
	case ModeNatural:
		return "natural"
	case ModeTour:
		return "tour"
	}
	return "unknown"
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// EventType identifies what an Event reports.
type EventType int

const (
	// EventFocus: the camera started paying attention to Artwork.
	EventFocus EventType = iota + 1
	// EventBlur: attention on Artwork ended, by user reclaim or by leaving natural mode.
	EventBlur
	// EventMode: the controller entered Mode.
	EventMode
	// EventTourStart and EventTourEnd bracket intro tour playback.
	EventTourStart
	EventTourEnd
)

// String returns the event type name.
func (t EventType) String() string {
	switch t {
	case EventFocus:
		return "focus"
	case EventBlur:
		return "blur"
	case EventMode:
		return "mode"
	case EventTourStart:
		return "tour_start"
	case EventTourEnd:
		return "tour_end"
	}
	return "unknown"
}

// MarshalText encodes the event type by name.
func (t EventType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Event is emitted by the controller on its event channel.
type Event struct {
	Type    EventType        `json:"type"`
	Time    time.Time        `json:"time"`
	Mode    Mode             `json:"mode"`
	Artwork *gallery.Artwork `json:"artwork,omitempty"`
}
