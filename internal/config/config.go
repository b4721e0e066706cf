// Package config loads the viewer configuration from YAML.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/Carmen-Shannon/oxy-gallery/common"
	"github.com/Carmen-Shannon/oxy-gallery/engine"
	"github.com/Carmen-Shannon/oxy-gallery/engine/camera"
	"github.com/Carmen-Shannon/oxy-gallery/engine/gallery"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Vec3 is a YAML triple such as [1.5, 1.6, -4].
type Vec3 []float32

// vec converts to mgl32, failing unless exactly three components are given.
func (v Vec3) vec(field string) (mgl32.Vec3, error) {
	if len(v) != 3 {
		return mgl32.Vec3{}, errors.Errorf("%s: expected 3 components, got %d", field, len(v))
	}
	return mgl32.Vec3{v[0], v[1], v[2]}, nil
}

// WindowConfig sizes the viewer window.
type WindowConfig struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	MinWidth  int    `yaml:"min_width"`
	MinHeight int    `yaml:"min_height"`
	MaxWidth  int    `yaml:"max_width"`
	MaxHeight int    `yaml:"max_height"`
}

// EngineConfig controls the tick loop.
type EngineConfig struct {
	TickRate           float64 `yaml:"tick_rate"` // ticks per second
	Profiling          bool    `yaml:"profiling"`
	ProfilerIntervalMs int     `yaml:"profiler_interval_ms"`
}

// WebConfig controls the overlay HTTP/WebSocket server.
type WebConfig struct {
	Enabled bool   `yaml:"enabled"`
	Addr    string `yaml:"addr"` // e.g. "127.0.0.1:8088"
}

// NaturalMotionConfig overrides the idle breathing/wiggle constants.
type NaturalMotionConfig struct {
	BreatheRate          float32 `yaml:"breathe_rate"`
	BreatheAmplitude     float32 `yaml:"breathe_amplitude"`
	HeightFactor         float32 `yaml:"height_factor"`
	WiggleRate           float32 `yaml:"wiggle_rate"`
	WiggleAmplitude      float32 `yaml:"wiggle_amplitude"`
	WigglePitchScale     float32 `yaml:"wiggle_pitch_scale"`
	WigglePitchFrequency float32 `yaml:"wiggle_pitch_frequency"`
}

// AttentionConfig overrides the artwork focus constants.
type AttentionConfig struct {
	ScanIntervalMs int     `yaml:"scan_interval_ms"`
	ConeThreshold  float32 `yaml:"cone_threshold"`  // minimum dot product, in (-1, 1)
	DistanceFactor float32 `yaml:"distance_factor"` // multiple of the viewing distance
	CenterWeight   float32 `yaml:"center_weight"`
	DistanceWeight float32 `yaml:"distance_weight"`
}

// CameraConfig tunes the camera controller.
type CameraConfig struct {
	MoveSpeed            float32 `yaml:"move_speed"`
	SprintSpeed          float32 `yaml:"sprint_speed"`
	MouseSensitivity     float32 `yaml:"mouse_sensitivity"`
	IdleThresholdMs      int     `yaml:"idle_threshold_ms"`
	TransitionDurationMs int     `yaml:"transition_duration_ms"`
	TourDurationMs       int     `yaml:"tour_duration_ms"`
	EventBuffer          int     `yaml:"event_buffer"`

	StartPosition Vec3    `yaml:"start_position"`
	StartYaw      float32 `yaml:"start_yaw"`
	StartPitch    float32 `yaml:"start_pitch"`

	FovDeg float32 `yaml:"fov_deg"`
	Near   float32 `yaml:"near"`
	Far    float32 `yaml:"far"`

	TourAutoplay   bool   `yaml:"tour_autoplay"`
	TourPath       []Vec3 `yaml:"tour_path"`
	TourLookPoints []Vec3 `yaml:"tour_look_points"`

	NaturalMotion *NaturalMotionConfig `yaml:"natural_motion,omitempty"` // optional
	Attention     *AttentionConfig     `yaml:"attention,omitempty"`      // optional
}

// BoxConfig is an axis-aligned box.
type BoxConfig struct {
	Min Vec3 `yaml:"min"`
	Max Vec3 `yaml:"max"`
}

// RoomConfig is the walkable area.
type RoomConfig struct {
	Bounds    BoxConfig   `yaml:"bounds"`
	Obstacles []BoxConfig `yaml:"obstacles"`
}

// ArtworkConfig describes one piece on display.
type ArtworkConfig struct {
	ID              string  `yaml:"id"` // generated when empty
	Position        Vec3    `yaml:"position"`
	Orientation     string  `yaml:"orientation"`
	Title           string  `yaml:"title"`
	Artist          string  `yaml:"artist"`
	Description     string  `yaml:"description"`
	Year            int     `yaml:"year"`
	ViewingDistance float32 `yaml:"viewing_distance"` // 0 = default
}

// GalleryConfig describes the exhibition.
type GalleryConfig struct {
	Name     string          `yaml:"name"`
	Room     RoomConfig      `yaml:"room"`
	Artworks []ArtworkConfig `yaml:"artworks"`
}

// Config aggregates all application configuration.
type Config struct {
	LogLevel string        `yaml:"log_level"`
	Window   WindowConfig  `yaml:"window"`
	Engine   EngineConfig  `yaml:"engine"`
	Web      WebConfig     `yaml:"web"`
	Camera   CameraConfig  `yaml:"camera"`
	Gallery  GalleryConfig `yaml:"gallery"`
}

// Default returns a configuration that runs without a file: an empty 20x20 room with
// the camera at eye height in its center.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Window: WindowConfig{
			Title:     "oxy-gallery",
			Width:     1280,
			Height:    720,
			MinWidth:  640,
			MinHeight: 360,
			MaxWidth:  3840,
			MaxHeight: 2160,
		},
		Engine: EngineConfig{
			TickRate:           60,
			ProfilerIntervalMs: 1000,
		},
		Web: WebConfig{
			Enabled: true,
			Addr:    "127.0.0.1:8088",
		},
		Camera: CameraConfig{
			MoveSpeed:            camera.DefaultMoveSpeed,
			SprintSpeed:          camera.DefaultSprintSpeed,
			MouseSensitivity:     camera.DefaultMouseSensitivity,
			IdleThresholdMs:      int(camera.DefaultIdleThreshold / time.Millisecond),
			TransitionDurationMs: int(camera.DefaultTransitionDuration / time.Millisecond),
			TourDurationMs:       int(camera.DefaultTourDuration / time.Millisecond),
			EventBuffer:          64,
			StartPosition:        Vec3{0, camera.DefaultEyeHeight, 0},
			FovDeg:               60,
			Near:                 0.1,
			Far:                  200,
		},
		Gallery: GalleryConfig{
			Name: "Gallery",
			Room: RoomConfig{
				Bounds: BoxConfig{Min: Vec3{-10, 0, -10}, Max: Vec3{10, 4, 10}},
			},
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
// Keys absent from the file keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config file")
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, "unmarshal yaml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks ranges and vector shapes.
func (c *Config) Validate() error {
	cam := c.Camera
	switch {
	case cam.MoveSpeed <= 0:
		return errors.Errorf("camera.move_speed must be > 0, got %v", cam.MoveSpeed)
	case cam.SprintSpeed < cam.MoveSpeed:
		return errors.Errorf("camera.sprint_speed must be >= move_speed, got %v", cam.SprintSpeed)
	case cam.MouseSensitivity <= 0:
		return errors.Errorf("camera.mouse_sensitivity must be > 0, got %v", cam.MouseSensitivity)
	case cam.IdleThresholdMs < 0, cam.TransitionDurationMs < 0, cam.TourDurationMs < 0:
		return errors.New("camera durations must not be negative")
	case cam.FovDeg <= 0 || cam.FovDeg >= 180:
		return errors.Errorf("camera.fov_deg must be in (0, 180), got %v", cam.FovDeg)
	case cam.Near <= 0 || cam.Far <= cam.Near:
		return errors.Errorf("camera clip planes invalid: near %v far %v", cam.Near, cam.Far)
	}
	if _, err := cam.StartPosition.vec("camera.start_position"); err != nil {
		return err
	}
	if _, err := vecs("camera.tour_path", cam.TourPath); err != nil {
		return err
	}
	if _, err := vecs("camera.tour_look_points", cam.TourLookPoints); err != nil {
		return err
	}
	if cam.TourAutoplay && len(cam.TourPath) == 0 {
		return errors.New("camera.tour_autoplay requires camera.tour_path")
	}
	if a := cam.Attention; a != nil && (a.ConeThreshold <= -1 || a.ConeThreshold >= 1) {
		return errors.Errorf("camera.attention.cone_threshold must be in (-1, 1), got %v", a.ConeThreshold)
	}

	if c.Engine.TickRate < 0 {
		return errors.Errorf("engine.tick_rate must not be negative, got %v", c.Engine.TickRate)
	}
	if c.Web.Enabled && strings.TrimSpace(c.Web.Addr) == "" {
		return errors.New("web.addr is required when web.enabled is true")
	}

	if _, err := c.Gallery.room(); err != nil {
		return err
	}
	seen := make(map[string]bool, len(c.Gallery.Artworks))
	for i, a := range c.Gallery.Artworks {
		if _, err := a.Position.vec(fieldf("gallery.artworks", i, "position")); err != nil {
			return err
		}
		if a.ID != "" {
			if seen[a.ID] {
				return errors.Errorf("gallery.artworks: duplicate id %q", a.ID)
			}
			seen[a.ID] = true
		}
	}
	return nil
}

// BuildGallery builds the gallery described by the config.
func (c *Config) BuildGallery() (*gallery.Gallery, error) {
	room, err := c.Gallery.room()
	if err != nil {
		return nil, err
	}
	arts := make([]*gallery.Artwork, 0, len(c.Gallery.Artworks))
	for i, a := range c.Gallery.Artworks {
		pos, err := a.Position.vec(fieldf("gallery.artworks", i, "position"))
		if err != nil {
			return nil, err
		}
		art := gallery.NewArtwork(a.ID, pos, gallery.Metadata{
			Title:           a.Title,
			Artist:          a.Artist,
			Description:     a.Description,
			Year:            a.Year,
			ViewingDistance: a.ViewingDistance,
		})
		art.Orientation = a.Orientation
		arts = append(arts, art)
	}
	return gallery.NewGallery(c.Gallery.Name, room, arts), nil
}

// CameraOptions converts the camera section into controller options. Artworks and
// collision come from the built gallery.
func (c *Config) CameraOptions(g *gallery.Gallery) ([]camera.CameraControllerOption, error) {
	cam := c.Camera
	start, err := cam.StartPosition.vec("camera.start_position")
	if err != nil {
		return nil, err
	}
	path, err := vecs("camera.tour_path", cam.TourPath)
	if err != nil {
		return nil, err
	}
	looks, err := vecs("camera.tour_look_points", cam.TourLookPoints)
	if err != nil {
		return nil, err
	}

	opts := []camera.CameraControllerOption{
		camera.WithMoveSpeed(cam.MoveSpeed),
		camera.WithSprintSpeed(cam.SprintSpeed),
		camera.WithMouseSensitivity(cam.MouseSensitivity),
		camera.WithIdleThreshold(common.Milliseconds(cam.IdleThresholdMs)),
		camera.WithTransitionDuration(common.Milliseconds(cam.TransitionDurationMs)),
		camera.WithTourDuration(common.Milliseconds(cam.TourDurationMs)),
		camera.WithPosition(start[0], start[1], start[2]),
		camera.WithOrientation(cam.StartYaw, cam.StartPitch),
	}
	if cam.EventBuffer > 0 {
		opts = append(opts, camera.WithEventBuffer(cam.EventBuffer))
	}
	if len(path) > 0 {
		opts = append(opts, camera.WithTourPath(path, looks))
	}
	if g != nil {
		opts = append(opts, camera.WithArtworks(g.Artworks), camera.WithCollision(g.Collides))
	}

	if nm := cam.NaturalMotion; nm != nil {
		def := camera.DefaultNaturalMotionConfig()
		opts = append(opts, camera.WithNaturalMotion(camera.NaturalMotionConfig{
			BreatheRate:          common.Coalesce(nm.BreatheRate, def.BreatheRate),
			BreatheAmplitude:     common.Coalesce(nm.BreatheAmplitude, def.BreatheAmplitude),
			HeightFactor:         common.Coalesce(nm.HeightFactor, def.HeightFactor),
			WiggleRate:           common.Coalesce(nm.WiggleRate, def.WiggleRate),
			WiggleAmplitude:      common.Coalesce(nm.WiggleAmplitude, def.WiggleAmplitude),
			WigglePitchScale:     common.Coalesce(nm.WigglePitchScale, def.WigglePitchScale),
			WigglePitchFrequency: common.Coalesce(nm.WigglePitchFrequency, def.WigglePitchFrequency),
		}))
	}
	if a := cam.Attention; a != nil {
		att := camera.DefaultAttentionConfig()
		if a.ScanIntervalMs > 0 {
			att.ScanInterval = common.Milliseconds(a.ScanIntervalMs)
		}
		att.ConeThreshold = common.Coalesce(a.ConeThreshold, att.ConeThreshold)
		att.DistanceFactor = common.Coalesce(a.DistanceFactor, att.DistanceFactor)
		att.CenterWeight = common.Coalesce(a.CenterWeight, att.CenterWeight)
		att.DistanceWeight = common.Coalesce(a.DistanceWeight, att.DistanceWeight)
		opts = append(opts, camera.WithAttention(att))
	}
	return opts, nil
}

// LensOptions converts the projection settings into camera options.
func (c *Config) LensOptions() []camera.CameraBuilderOption {
	return []camera.CameraBuilderOption{
		camera.WithFov(mgl32.DegToRad(c.Camera.FovDeg)),
		camera.WithNear(c.Camera.Near),
		camera.WithFar(c.Camera.Far),
	}
}

// EngineOptions converts the engine section into engine options.
func (c *Config) EngineOptions() []engine.EngineBuilderOption {
	return []engine.EngineBuilderOption{
		engine.WithTickRate(c.Engine.TickRate),
		engine.WithProfiling(c.Engine.Profiling),
		engine.WithProfilerInterval(common.Milliseconds(c.Engine.ProfilerIntervalMs)),
	}
}

func (g GalleryConfig) room() (gallery.Room, error) {
	var room gallery.Room
	var err error
	if room.Bounds, err = g.Room.Bounds.box("gallery.room.bounds"); err != nil {
		return room, err
	}
	for i, o := range g.Room.Obstacles {
		b, err := o.box(fieldf("gallery.room.obstacles", i, ""))
		if err != nil {
			return room, err
		}
		room.Obstacles = append(room.Obstacles, b)
	}
	return room, nil
}

func (b BoxConfig) box(field string) (gallery.Box, error) {
	lo, err := b.Min.vec(field + ".min")
	if err != nil {
		return gallery.Box{}, err
	}
	hi, err := b.Max.vec(field + ".max")
	if err != nil {
		return gallery.Box{}, err
	}
	for i := range 3 {
		if hi[i] < lo[i] {
			return gallery.Box{}, errors.Errorf("%s: max below min on axis %d", field, i)
		}
	}
	return gallery.Box{Min: lo, Max: hi}, nil
}

func vecs(field string, in []Vec3) ([]mgl32.Vec3, error) {
	out := make([]mgl32.Vec3, 0, len(in))
	for i, v := range in {
		p, err := v.vec(fieldf(field, i, ""))
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

func fieldf(list string, i int, leaf string) string {
	s := list + "[" + strconv.Itoa(i) + "]"
	if leaf != "" {
		s += "." + leaf
	}
	return s
}
