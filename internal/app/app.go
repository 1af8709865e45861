// Package app orchestrates the mudra gesture control service: it owns the
// camera, motion gate, hand detector, control router, and scene stage, and
// runs the two loops that drive them.
package app

import (
	"log"
	"sync"
	"time"

	"github.com/ayusman/mudra/internal/capture"
	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/plugin"
	"github.com/ayusman/mudra/internal/scene"
	"github.com/ayusman/mudra/internal/store"
)

// Pipeline timing defaults, used when the config leaves them unset.
const (
	// DefaultIdleFPS is the capture rate when no motion is detected.
	DefaultIdleFPS = 5
	// DefaultActiveFPS is the capture rate during active detection.
	DefaultActiveFPS = 15
	// DefaultTickRate is the scene animation rate in ticks per second.
	DefaultTickRate = 60
	// IdleTimeoutMs is the time in milliseconds without motion before the
	// pipeline drops back to the idle capture rate.
	IdleTimeoutMs = 2000
)

// Config holds configuration options for the application.
type Config struct {
	Store        *store.Store
	PluginDir    string
	CameraID     int
	Mirror       bool
	MotionThresh float64
	IdleFPS      int
	ActiveFPS    int
	TickRate     int
	Detector     detector.Config
	Debug        bool
}

// SceneState is a point-in-time copy of everything a reader needs to
// render or report the scene.
type SceneState struct {
	Object          scene.Object
	Particles       []scene.Particle
	Status          string
	Enabled         bool
	DragActive      bool
	RotationEnabled bool
}

// App wires the capture pipeline to the control engine and fans the
// results out to the journal, plugins, metrics, and status listeners.
type App struct {
	config     Config
	camera     capture.Camera
	motion     *capture.MotionDetector
	router     *control.Router
	stage      *scene.Stage
	pluginMgr  *plugin.Manager
	pluginExec *plugin.Executor

	// mu guards the enabled flag, the detector, and the status callback.
	mu       sync.RWMutex
	detector detector.Detector
	enabled  bool
	statusFn func(status string)
	stopCh   chan struct{}

	// sceneMu is the single lock around the control state and the stage.
	// The detect loop, the tick loop, and every reader go through it.
	sceneMu sync.Mutex
	status  string
}

// New creates a new App instance with the given configuration.
func New(config Config) *App {
	if config.MotionThresh <= 0 {
		config.MotionThresh = 1.0 // 1% pixel change
	}
	if config.IdleFPS <= 0 {
		config.IdleFPS = DefaultIdleFPS
	}
	if config.ActiveFPS <= 0 {
		config.ActiveFPS = DefaultActiveFPS
	}
	if config.TickRate <= 0 {
		config.TickRate = DefaultTickRate
	}
	if config.Detector.MaxHands == 0 {
		config.Detector = detector.DefaultConfig()
	}

	camera := capture.NewCamera(config.CameraID)
	camera.SetMirror(config.Mirror)

	a := &App{
		config:     config,
		camera:     camera,
		motion:     capture.NewMotionDetector(config.MotionThresh),
		router:     control.NewRouter(control.NewState()),
		stage:      scene.NewStage(time.Now()),
		pluginMgr:  plugin.NewManager(config.PluginDir),
		pluginExec: plugin.NewExecutor(5000), // 5 second timeout for plugin execution
		status:     "Initializing",
	}

	// Try MediaPipe first, fall back to mock detector
	if mp, err := detector.NewMediaPipeDetector(config.Detector); err == nil {
		a.detector = mp
		log.Println("Using MediaPipe hand detection")
	} else {
		log.Printf("MediaPipe not available (%v), using mock detector", err)
		a.detector = detector.NewMockDetector()
	}

	return a
}

// SetEnabled enables or disables gesture processing.
func (a *App) SetEnabled(enabled bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.enabled = enabled
}

// IsEnabled returns whether gesture processing is currently enabled.
func (a *App) IsEnabled() bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.enabled
}

// SetDetector sets the hand detector implementation to use.
func (a *App) SetDetector(d detector.Detector) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.detector = d
}

// SetStatusFunc registers a callback invoked whenever a frame produces a
// new status line. Used by the tray; nil disables the callback.
func (a *App) SetStatusFunc(fn func(status string)) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.statusFn = fn
}

// DiscoverPlugins scans the plugin directory and loads available plugins.
func (a *App) DiscoverPlugins() error {
	return a.pluginMgr.Discover()
}

// SceneState returns a copy of the current scene and control state.
func (a *App) SceneState() SceneState {
	a.sceneMu.Lock()
	snap := a.stage.Snapshot()
	st := a.router.State()
	state := SceneState{
		Object:          snap.Object,
		Particles:       snap.Particles,
		Status:          a.status,
		DragActive:      st.DragActive,
		RotationEnabled: st.RotationEnabled,
	}
	a.sceneMu.Unlock()

	state.Enabled = a.IsEnabled()
	return state
}

// Start opens the camera and begins the detect and tick loops.
func (a *App) Start() error {
	a.mu.Lock()
	defer a.mu.Unlock()

	// Don't start if already running
	if a.stopCh != nil {
		return nil
	}

	if err := a.camera.Open(); err != nil {
		return err
	}
	a.camera.SetFPS(a.config.IdleFPS)

	a.stopCh = make(chan struct{})
	go a.runDetectLoop(a.stopCh)
	go a.runTickLoop(a.stopCh)

	log.Println("Control pipeline started")
	return nil
}

// Stop halts both loops and releases resources.
func (a *App) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.stopCh != nil {
		close(a.stopCh)
		a.stopCh = nil
	}

	if err := a.camera.Close(); err != nil {
		log.Printf("Error closing camera: %v", err)
	}

	a.motion.Close()

	if a.detector != nil {
		if err := a.detector.Close(); err != nil {
			log.Printf("Error closing detector: %v", err)
		}
	}

	log.Println("Control pipeline stopped")
}

// Camera returns the camera instance.
func (a *App) Camera() capture.Camera {
	return a.camera
}

// MotionDetector returns the motion detector instance.
func (a *App) MotionDetector() *capture.MotionDetector {
	return a.motion
}

// PluginManager returns the plugin manager.
func (a *App) PluginManager() *plugin.Manager {
	return a.pluginMgr
}

// Detector returns the hand detector.
func (a *App) Detector() detector.Detector {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.detector
}
