// Package web serves the overlay API: camera state over HTTP and focus/blur events over
// a websocket, for the info panel that accompanies the viewer.
package web

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/Carmen-Shannon/oxy-gallery/engine/camera"
	"github.com/Carmen-Shannon/oxy-gallery/engine/gallery"
	"github.com/Carmen-Shannon/oxy-gallery/engine/profiler"
	"github.com/Carmen-Shannon/oxy-gallery/internal/log"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
)

// Controller is the camera surface the overlay reads and drives.
type Controller interface {
	Pose() camera.Pose
	Orientation() camera.Orientation
	Mode() camera.Mode
	Intensity() float32
	FocusedArtwork() *gallery.Artwork
	StartIntroAnimation() bool
	StopTour()
	IsTourMode() bool
	TourProgress() float32
}

// Server wires the HTTP routes to the camera controller and gallery.
type Server struct {
	ctrl     Controller
	gallery  *gallery.Gallery
	hub      *Hub
	profiler *profiler.Profiler
	camera   camera.Camera

	upgrader     websocket.Upgrader
	pingInterval time.Duration
	writeWait    time.Duration
}

// ServerOption configures a Server.
type ServerOption func(*Server)

// WithProfiler exposes profiler samples on /api/stats.
func WithProfiler(p *profiler.Profiler) ServerOption {
	return func(s *Server) {
		s.profiler = p
	}
}

// WithCamera exposes the camera's matrices and packed uniform on /api/camera for
// external renderers.
func WithCamera(c camera.Camera) ServerOption {
	return func(s *Server) {
		s.camera = c
	}
}

// WithPingInterval sets how often idle websocket clients are pinged.
func WithPingInterval(d time.Duration) ServerOption {
	return func(s *Server) {
		s.pingInterval = d
	}
}

// NewServer creates the overlay server.
func NewServer(ctrl Controller, g *gallery.Gallery, hub *Hub, options ...ServerOption) *Server {
	s := &Server{
		ctrl:         ctrl,
		gallery:      g,
		hub:          hub,
		pingInterval: 30 * time.Second,
		writeWait:    10 * time.Second,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// The overlay is served from file:// or a dev server during development.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Handler returns the router wrapped in panic recovery and access logging.
func (s *Server) Handler() http.Handler {
	r := mux.NewRouter()
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/pose", s.handlePose).Methods(http.MethodGet)
	api.HandleFunc("/artworks", s.handleArtworks).Methods(http.MethodGet)
	api.HandleFunc("/artworks/{id}", s.handleArtwork).Methods(http.MethodGet)
	api.HandleFunc("/focus", s.handleFocus).Methods(http.MethodGet)
	api.HandleFunc("/tour", s.handleTourStart).Methods(http.MethodPost)
	api.HandleFunc("/tour", s.handleTourStop).Methods(http.MethodDelete)
	api.HandleFunc("/stats", s.handleStats).Methods(http.MethodGet)
	api.HandleFunc("/camera", s.handleCamera).Methods(http.MethodGet)
	api.HandleFunc("/camera/uniform", s.handleCameraUniform).Methods(http.MethodGet)
	r.HandleFunc("/ws", s.handleWS)

	var h http.Handler = r
	h = handlers.RecoveryHandler(handlers.RecoveryLogger(recoveryLogger{}), handlers.PrintRecoveryStack(true))(h)
	h = handlers.LoggingHandler(accessLog{}, h)
	return h
}

// ListenAndServe serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("web server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return errors.Wrap(err, "web server")
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return errors.Wrap(err, "web server shutdown")
		}
		return nil
	}
}

// accessLog routes gorilla's combined-log lines into the structured logger.
type accessLog struct{}

func (accessLog) Write(p []byte) (int, error) {
	log.Debug("http", "access", strings.TrimSpace(string(p)))
	return len(p), nil
}

type recoveryLogger struct{}

func (recoveryLogger) Println(v ...interface{}) {
	log.Error("http handler panic", "detail", v)
}
