// Package config defines service configuration for mudra, layered from
// defaults, an optional YAML file, and MUDRA_-prefixed environment variables.
package config

// Config contains process configuration for the mudra service.
type Config struct {
	// Addr is the HTTP listen address for the dashboard and API, e.g. ":8080".
	Addr string `koanf:"addr"`

	// CameraID selects the capture device passed to OpenCV.
	CameraID int `koanf:"camera_id"`

	// Mirror flips captured frames horizontally so landmark coordinates
	// match what the user sees on screen.
	Mirror bool `koanf:"mirror"`

	// MotionThreshold is the percentage of pixels that must change between
	// frames before the pipeline switches to the active capture rate.
	MotionThreshold float64 `koanf:"motion_threshold"`

	// IdleFPS and ActiveFPS bound the capture rate without and with motion.
	IdleFPS   int `koanf:"idle_fps"`
	ActiveFPS int `koanf:"active_fps"`

	// TickRate is the scene animation rate in ticks per second.
	TickRate int `koanf:"tick_rate"`

	// DBPath overrides the event journal location. Empty means ~/.mudra/mudra.db.
	DBPath string `koanf:"db_path"`

	// PluginDir overrides the plugin directory. Empty means ~/.mudra/plugins.
	PluginDir string `koanf:"plugin_dir"`

	// MinDetectionConf and MinTrackingConf are passed through to the hand
	// tracker (0.0-1.0).
	MinDetectionConf float64 `koanf:"min_detection_confidence"`
	MinTrackingConf  float64 `koanf:"min_tracking_confidence"`

	// StreamFPS caps the rate at which scene snapshots are pushed to
	// websocket clients.
	StreamFPS int `koanf:"stream_fps"`

	// Debug enables verbose pipeline logging.
	Debug bool `koanf:"debug"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Addr:             ":8080",
		CameraID:         0,
		Mirror:           true,
		MotionThreshold:  1.0,
		IdleFPS:          5,
		ActiveFPS:        15,
		TickRate:         60,
		MinDetectionConf: 0.5,
		MinTrackingConf:  0.5,
		StreamFPS:        30,
	}
}
