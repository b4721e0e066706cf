package web

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/Carmen-Shannon/oxy-gallery/engine/camera"
	"github.com/Carmen-Shannon/oxy-gallery/engine/gallery"
	"github.com/Carmen-Shannon/oxy-gallery/internal/log"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
)

// PoseResponse is the body of GET /api/pose.
type PoseResponse struct {
	Position     [3]float32  `json:"position"`
	Rotation     [4]float32  `json:"rotation"` // w, x, y, z
	Yaw          float32     `json:"yaw"`
	Pitch        float32     `json:"pitch"`
	Mode         camera.Mode `json:"mode"`
	Intensity    float32     `json:"intensity"`
	TourProgress float32     `json:"tour_progress"`
}

// CameraResponse is the body of GET /api/camera. Matrices are column-major.
type CameraResponse struct {
	Fov               float32     `json:"fov"`
	Aspect            float32     `json:"aspect"`
	Near              float32     `json:"near"`
	Far               float32     `json:"far"`
	Eye               [3]float32  `json:"eye"`
	View              [16]float32 `json:"view"`
	Projection        [16]float32 `json:"projection"`
	ViewProj          [16]float32 `json:"view_proj"`
	InverseProjection [16]float32 `json:"inverse_projection"`
}

// FocusResponse is the body of GET /api/focus.
type FocusResponse struct {
	Focused *gallery.Artwork `json:"focused"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn("response encode failed", "error", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func (s *Server) handlePose(w http.ResponseWriter, r *http.Request) {
	p := s.ctrl.Pose()
	o := s.ctrl.Orientation()
	writeJSON(w, http.StatusOK, PoseResponse{
		Position:     p.Position,
		Rotation:     [4]float32{p.Rotation.W, p.Rotation.V[0], p.Rotation.V[1], p.Rotation.V[2]},
		Yaw:          o.Yaw,
		Pitch:        o.Pitch,
		Mode:         s.ctrl.Mode(),
		Intensity:    s.ctrl.Intensity(),
		TourProgress: s.ctrl.TourProgress(),
	})
}

func (s *Server) handleArtworks(w http.ResponseWriter, r *http.Request) {
	arts := []*gallery.Artwork{}
	if s.gallery != nil {
		arts = s.gallery.Artworks
	}
	writeJSON(w, http.StatusOK, arts)
}

func (s *Server) handleArtwork(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	if s.gallery == nil {
		writeError(w, http.StatusNotFound, "artwork not found")
		return
	}
	art := s.gallery.Artwork(id)
	if art == nil {
		writeError(w, http.StatusNotFound, "artwork not found")
		return
	}
	writeJSON(w, http.StatusOK, art)
}

func (s *Server) handleCamera(w http.ResponseWriter, r *http.Request) {
	if s.camera == nil {
		writeError(w, http.StatusNotFound, "no camera attached")
		return
	}
	u := s.camera.Uniform()
	writeJSON(w, http.StatusOK, CameraResponse{
		Fov:               s.camera.Fov(),
		Aspect:            s.camera.Aspect(),
		Near:              s.camera.Near(),
		Far:               s.camera.Far(),
		Eye:               u.CameraPosition,
		View:              s.camera.ViewMatrix(),
		Projection:        s.camera.ProjectionMatrix(),
		ViewProj:          u.ViewProj,
		InverseProjection: s.camera.InverseProjectionMatrix(),
	})
}

// handleCameraUniform serves the packed 80-byte uniform block, or its WGSL
// declaration with ?format=wgsl.
func (s *Server) handleCameraUniform(w http.ResponseWriter, r *http.Request) {
	if s.camera == nil {
		writeError(w, http.StatusNotFound, "no camera attached")
		return
	}
	if r.URL.Query().Get("format") == "wgsl" {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = io.WriteString(w, camera.GPUCameraUniformSource)
		return
	}
	u := s.camera.Uniform()
	w.Header().Set("Content-Type", "application/octet-stream")
	if _, err := w.Write(u.Marshal()); err != nil {
		log.Warn("uniform write failed", "error", err)
	}
}

func (s *Server) handleFocus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, FocusResponse{Focused: s.ctrl.FocusedArtwork()})
}

func (s *Server) handleTourStart(w http.ResponseWriter, r *http.Request) {
	if s.ctrl.IsTourMode() {
		writeError(w, http.StatusConflict, "tour already playing")
		return
	}
	if !s.ctrl.StartIntroAnimation() {
		writeError(w, http.StatusConflict, "no tour path configured")
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]string{"status": "started"})
}

func (s *Server) handleTourStop(w http.ResponseWriter, r *http.Request) {
	s.ctrl.StopTour()
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	if s.profiler == nil {
		writeError(w, http.StatusNotFound, "profiling disabled")
		return
	}
	writeJSON(w, http.StatusOK, s.profiler.Last())
}

// handleWS upgrades to a websocket and streams hub messages until either side closes.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("ws upgrade failed", "error", err)
		return
	}
	client, unsubscribe := s.hub.Subscribe()
	log.Info("ws client connected", "client", client.ID, "remote", r.RemoteAddr)

	done := make(chan struct{})
	go s.readPump(conn, done)
	s.writePump(conn, client, done)

	unsubscribe()
	conn.Close()
	log.Info("ws client disconnected", "client", client.ID)
}

// readPump drains client frames so control messages are processed, and signals when the
// peer goes away.
func (s *Server) readPump(conn *websocket.Conn, done chan<- struct{}) {
	defer close(done)
	conn.SetReadLimit(512)
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) writePump(conn *websocket.Conn, client *Client, done <-chan struct{}) {
	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case msg, ok := <-client.Messages():
			conn.SetWriteDeadline(time.Now().Add(s.writeWait))
			if !ok {
				conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				log.Debug("ws write failed", "client", client.ID, "error", err)
				return
			}
		case <-ticker.C:
			conn.SetWriteDeadline(time.Now().Add(s.writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Debug("ws ping failed", "client", client.ID, "error", err)
				return
			}
		}
	}
}
