// Package metrics provides Prometheus metrics for the mudra gesture service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager manages all Prometheus metrics for the mudra service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Pipeline Metrics - Capture and detection health
	framesProcessed prometheus.Counter
	handsSeen       *prometheus.CounterVec
	detectErrors    prometheus.Counter
	frameLatency    prometheus.Histogram

	// Gesture Metrics - What the hands actually did
	resets          prometheus.Counter
	colorChanges    prometheus.Counter
	rotationToggles prometheus.Counter
	dragsStarted    prometheus.Counter

	// Scene Metrics - What the object looks like right now
	liveParticles prometheus.Gauge
	objectScale   prometheus.Gauge
	sceneClients  prometheus.Gauge
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

// Initialize global metrics.
func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithPrometheusRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "mudra",
		subsystem:        "gesture",
		histogramBuckets: []float64{1, 2, 5, 10, 25, 50, 100, 250, 500},
		registry:         prometheus.DefaultRegisterer,
	}

	// Apply all options
	for _, opt := range opts {
		opt(m)
	}

	// Initialize metrics
	m.initializeMetrics()

	return m
}

// initializeMetrics creates all the Prometheus metrics.
func (m *Manager) initializeMetrics() {
	// Ensure metrics are registered on the configured registry (custom by default)
	auto := promauto.With(m.registry)

	// Pipeline Metrics - Capture and detection health
	m.framesProcessed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "frames_processed_total",
		Help:      "Total number of camera frames run through hand detection",
	})

	m.handsSeen = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "hands_seen_total",
			Help:      "Total number of hands detected, labeled by handedness",
		},
		[]string{"handedness"},
	)

	m.detectErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "detect_errors_total",
		Help:      "Total number of hand detection failures",
	})

	m.frameLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "frame_latency_milliseconds",
		Help:      "Histogram of per-frame detection and routing latency in milliseconds",
		Buckets:   m.histogramBuckets,
	})

	// Gesture Metrics - What the hands actually did
	m.resets = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "resets_total",
		Help:      "Total number of two-fist scene resets",
	})

	m.colorChanges = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "color_changes_total",
		Help:      "Total number of tap-triggered color changes",
	})

	m.rotationToggles = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "rotation_toggles_total",
		Help:      "Total number of double-tap rotation toggles",
	})

	m.dragsStarted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "drags_started_total",
		Help:      "Total number of drag gestures started",
	})

	// Scene Metrics - What the object looks like right now
	m.liveParticles = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "live_particles",
		Help:      "Current number of live burst particles",
	})

	m.objectScale = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "object_scale",
		Help:      "Current smoothed scale of the controlled object",
	})

	m.sceneClients = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "scene_clients",
		Help:      "Current number of connected scene websocket clients",
	})
}

// RecordFrameProcessed increments the processed frames counter.
func RecordFrameProcessed() {
	globalManager.framesProcessed.Inc()
}

// RecordHandSeen increments the hands seen counter for a handedness label.
func RecordHandSeen(handedness string) {
	globalManager.handsSeen.WithLabelValues(handedness).Inc()
}

// RecordDetectError increments the detection failure counter.
func RecordDetectError() {
	globalManager.detectErrors.Inc()
}

// RecordFrameLatency records per-frame processing latency in milliseconds.
func RecordFrameLatency(latencyMs float64) {
	globalManager.frameLatency.Observe(latencyMs)
}

// RecordReset increments the scene reset counter.
func RecordReset() {
	globalManager.resets.Inc()
}

// RecordColorChange increments the color change counter.
func RecordColorChange() {
	globalManager.colorChanges.Inc()
}

// RecordRotationToggle increments the rotation toggle counter.
func RecordRotationToggle() {
	globalManager.rotationToggles.Inc()
}

// RecordDragStart increments the drags started counter.
func RecordDragStart() {
	globalManager.dragsStarted.Inc()
}

// UpdateLiveParticles sets the current live particle count.
func UpdateLiveParticles(count int) {
	globalManager.liveParticles.Set(float64(count))
}

// UpdateObjectScale sets the current smoothed object scale.
func UpdateObjectScale(scale float64) {
	globalManager.objectScale.Set(scale)
}

// UpdateSceneClients sets the number of connected scene websocket clients.
func UpdateSceneClients(count int) {
	globalManager.sceneClients.Set(float64(count))
}

// GetRegistry returns the custom Prometheus registry used by our metrics.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
