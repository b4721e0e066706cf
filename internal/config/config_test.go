package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/Carmen-Shannon/oxy-gallery/engine/camera"
	"github.com/go-gl/mathgl/mgl32"
)

const sample = `
log_level: debug
web:
  addr: "127.0.0.1:9999"
camera:
  move_speed: 0.08
  sprint_speed: 0.2
  idle_threshold_ms: 5000
  start_position: [1, 1.7, 2]
  tour_autoplay: true
  tour_path:
    - [0, 1.6, 8]
    - [0, 1.6, 0]
    - [4, 1.6, -6]
  tour_look_points:
    - [0, 1.6, -9]
  attention:
    scan_interval_ms: 1500
gallery:
  name: Spring Show
  room:
    bounds: {min: [-8, 0, -9], max: [8, 4, 9]}
    obstacles:
      - {min: [-1, 0, -1], max: [1, 2, 1]}
  artworks:
    - id: starry
      position: [0, 1.6, -8.9]
      title: The Starry Night
      artist: Vincent van Gogh
      year: 1889
      viewing_distance: 4
    - position: [8.9, 1.6, 0]
      title: Untitled
      orientation: east
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "gallery.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v", err)
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sample))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.LogLevel != "debug" || cfg.Camera.MoveSpeed != 0.08 || cfg.Camera.IdleThresholdMs != 5000 {
		t.Errorf("unexpected values: %+v", cfg.Camera)
	}
	// untouched keys keep defaults
	if cfg.Camera.MouseSensitivity != camera.DefaultMouseSensitivity || cfg.Window.Width != 1280 {
		t.Errorf("defaults lost: sensitivity %v width %d", cfg.Camera.MouseSensitivity, cfg.Window.Width)
	}
	if !cfg.Web.Enabled || cfg.Web.Addr != "127.0.0.1:9999" {
		t.Errorf("web = %+v", cfg.Web)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "read config file") {
		t.Errorf("err = %v", err)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"bad yaml", "camera: [", "unmarshal yaml"},
		{"short vector", "camera:\n  start_position: [1, 2]", "camera.start_position"},
		{"short tour point", "camera:\n  tour_path: [[0, 1, 2], [3]]", "camera.tour_path[1]"},
		{"negative speed", "camera:\n  move_speed: -1", "move_speed"},
		{"slow sprint", "camera:\n  sprint_speed: 0.01", "sprint_speed"},
		{"autoplay without path", "camera:\n  tour_autoplay: true", "tour_autoplay"},
		{"inverted box", "gallery:\n  room:\n    bounds: {min: [1, 0, 0], max: [0, 1, 1]}", "max below min"},
		{"duplicate ids", "gallery:\n  artworks:\n    - {id: a, position: [0, 0, 0]}\n    - {id: a, position: [1, 0, 0]}", "duplicate id"},
		{"web without addr", "web:\n  addr: \"\"", "web.addr"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.body))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("err = %v, want substring %q", err, tt.want)
			}
		})
	}
}

func TestBuildGallery(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g, err := cfg.BuildGallery()
	if err != nil {
		t.Fatalf("BuildGallery: %v", err)
	}
	if g.Name != "Spring Show" || len(g.Artworks) != 2 {
		t.Fatalf("gallery = %+v", g)
	}
	starry := g.Artwork("starry")
	if starry == nil || starry.Meta.Year != 1889 || starry.ViewingDistance() != 4 {
		t.Errorf("starry = %+v", starry)
	}
	if g.Artworks[1].ID == "" || g.Artworks[1].Orientation != "east" {
		t.Errorf("second artwork = %+v", g.Artworks[1])
	}
	if !g.Collides(mgl32.Vec3{0, 1.6, 0}, 0.5) {
		t.Error("obstacle in the room center not loaded")
	}
}

func TestCameraOptions(t *testing.T) {
	cfg, err := Parse([]byte(sample))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	g, _ := cfg.BuildGallery()
	opts, err := cfg.CameraOptions(g)
	if err != nil {
		t.Fatalf("CameraOptions: %v", err)
	}
	cc := camera.NewCameraController(opts...)
	if cc.Position() != (mgl32.Vec3{1, 1.7, 2}) {
		t.Errorf("position %v", cc.Position())
	}
	if cc.MoveSpeed() != 0.08 || cc.SprintSpeed() != 0.2 {
		t.Errorf("speeds %v %v", cc.MoveSpeed(), cc.SprintSpeed())
	}
	if cc.IdleThreshold() != 5*time.Second {
		t.Errorf("idle threshold %v", cc.IdleThreshold())
	}
	if !cc.StartIntroAnimation() {
		t.Error("tour path not configured")
	}
}

func TestEngineAndLensOptions(t *testing.T) {
	cfg := Default()
	if n := len(cfg.EngineOptions()); n != 3 {
		t.Errorf("engine options = %d", n)
	}
	cam := camera.NewCamera(cfg.LensOptions()...)
	if !approx(cam.Fov(), mgl32.DegToRad(60)) || cam.Near() != 0.1 || cam.Far() != 200 {
		t.Errorf("lens fov %v near %v far %v", cam.Fov(), cam.Near(), cam.Far())
	}
}

func approx(a, b float32) bool {
	d := a - b
	return d < 1e-6 && d > -1e-6
}
