// Package api provides HTTP API handlers for the mudra gesture control service.
package api

import (
	"encoding/json"
	"net/http"

	"github.com/ayusman/mudra/internal/app"
)

// SceneSource provides point-in-time scene and control state for the API.
type SceneSource interface {
	SceneState() app.SceneState
}

// StateHandler handles HTTP requests for the current scene state.
type StateHandler struct {
	scene SceneSource
}

// NewStateHandler creates a new StateHandler reading from the given source.
func NewStateHandler(scene SceneSource) *StateHandler {
	return &StateHandler{scene: scene}
}

// Response types

type vectorResponse struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type objectResponse struct {
	Position  vectorResponse `json:"position"`
	Scale     float64        `json:"scale"`
	ScaleY    float64        `json:"scale_y"`
	RotationY float64        `json:"rotation_y"`
	Color     string         `json:"color"`
}

type stateResponse struct {
	Object          objectResponse `json:"object"`
	Particles       int            `json:"particles"`
	Status          string         `json:"status"`
	Enabled         bool           `json:"enabled"`
	DragActive      bool           `json:"drag_active"`
	RotationEnabled bool           `json:"rotation_enabled"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// toStateResponse converts an app.SceneState to the wire representation.
func toStateResponse(s app.SceneState) stateResponse {
	return stateResponse{
		Object: objectResponse{
			Position: vectorResponse{
				X: s.Object.Position.X,
				Y: s.Object.Position.Y,
				Z: s.Object.Position.Z,
			},
			Scale:     s.Object.Scale,
			ScaleY:    s.Object.ScaleY,
			RotationY: s.Object.RotationY,
			Color:     s.Object.Color.Hex(),
		},
		Particles:       len(s.Particles),
		Status:          s.Status,
		Enabled:         s.Enabled,
		DragActive:      s.DragActive,
		RotationEnabled: s.RotationEnabled,
	}
}

// writeJSON writes a JSON response with the given status code.
func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		json.NewEncoder(w).Encode(data)
	}
}

// writeError writes a JSON error response.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// ServeHTTP handles GET /api/state and returns the current scene state.
func (h *StateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	writeJSON(w, http.StatusOK, toStateResponse(h.scene.SceneState()))
}
