package server

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/metrics"
	"github.com/ayusman/mudra/internal/server/api"
)

// DefaultStreamFPS is the scene broadcast rate when the config leaves it unset.
const DefaultStreamFPS = 30

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow local connections
	},
}

// SceneHandler broadcasts scene snapshots to websocket clients so a
// browser renderer can draw the controlled object and its particles.
type SceneHandler struct {
	scene   api.SceneSource
	clients map[*websocket.Conn]bool
	mu      sync.RWMutex
	stopCh  chan struct{}
}

// NewSceneHandler creates a SceneHandler broadcasting at the given rate.
func NewSceneHandler(scene api.SceneSource, fps int) *SceneHandler {
	if fps <= 0 {
		fps = DefaultStreamFPS
	}

	h := &SceneHandler{
		scene:   scene,
		clients: make(map[*websocket.Conn]bool),
		stopCh:  make(chan struct{}),
	}
	go h.broadcast(time.Second / time.Duration(fps))
	return h
}

// Wire types for the scene feed. Particles carry their full state here,
// unlike /api/state which only reports a count.

type particleMessage struct {
	Position vectorMessage `json:"position"`
	Life     float64       `json:"life"`
	Alpha    float64       `json:"alpha"`
	Color    string        `json:"color"`
}

type vectorMessage struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

type objectMessage struct {
	Position  vectorMessage `json:"position"`
	Scale     float64       `json:"scale"`
	ScaleY    float64       `json:"scale_y"`
	RotationY float64       `json:"rotation_y"`
	Color     string        `json:"color"`
}

type sceneMessage struct {
	Object    objectMessage     `json:"object"`
	Particles []particleMessage `json:"particles"`
	Status    string            `json:"status"`
	Timestamp int64             `json:"timestamp"`
}

// toSceneMessage converts an app.SceneState to the wire representation.
func toSceneMessage(s app.SceneState) sceneMessage {
	msg := sceneMessage{
		Object: objectMessage{
			Position: vectorMessage{
				X: s.Object.Position.X,
				Y: s.Object.Position.Y,
				Z: s.Object.Position.Z,
			},
			Scale:     s.Object.Scale,
			ScaleY:    s.Object.ScaleY,
			RotationY: s.Object.RotationY,
			Color:     s.Object.Color.Hex(),
		},
		Particles: make([]particleMessage, 0, len(s.Particles)),
		Status:    s.Status,
		Timestamp: time.Now().UnixMilli(),
	}

	for _, p := range s.Particles {
		msg.Particles = append(msg.Particles, particleMessage{
			Position: vectorMessage{X: p.Position.X, Y: p.Position.Y, Z: p.Position.Z},
			Life:     p.Life,
			Alpha:    p.Alpha,
			Color:    p.Color.Hex(),
		})
	}

	return msg
}

// ServeHTTP handles WebSocket upgrade requests.
func (h *SceneHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}
	defer conn.Close()

	h.mu.Lock()
	h.clients[conn] = true
	metrics.UpdateSceneClients(len(h.clients))
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.clients, conn)
		metrics.UpdateSceneClients(len(h.clients))
		h.mu.Unlock()
	}()

	// Keep connection alive by reading messages
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}

// broadcast pushes scene snapshots to all connected clients.
func (h *SceneHandler) broadcast(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-h.stopCh:
			return
		case <-ticker.C:
			h.mu.RLock()
			idle := len(h.clients) == 0
			h.mu.RUnlock()
			if idle {
				continue
			}

			msg, err := json.Marshal(toSceneMessage(h.scene.SceneState()))
			if err != nil {
				continue
			}

			h.mu.RLock()
			for conn := range h.clients {
				conn.WriteMessage(websocket.TextMessage, msg)
			}
			h.mu.RUnlock()
		}
	}
}

// Close stops the broadcast loop.
func (h *SceneHandler) Close() {
	close(h.stopCh)
}
