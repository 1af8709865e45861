package main

import (
	"fmt"
	"log"
	"os"
	"os/exec"
	"os/signal"
	"path/filepath"
	"runtime"
	"syscall"

	"github.com/ayusman/mudra/internal/app"
	"github.com/ayusman/mudra/internal/config"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/server"
	"github.com/ayusman/mudra/internal/store"
	"github.com/ayusman/mudra/internal/tray"
)

// runServe loads configuration, wires the store, app, and server
// together, and blocks until the tray quits or a signal arrives.
func runServe() error {
	if flagConfig != "" {
		os.Setenv("MUDRA_CONFIG", flagConfig)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if flagAddr != "" {
		cfg.Addr = flagAddr
	}
	if flagCamera >= 0 {
		cfg.CameraID = flagCamera
	}

	dataDir, err := ensureDataDir()
	if err != nil {
		return err
	}

	dbPath := cfg.DBPath
	if dbPath == "" {
		dbPath = filepath.Join(dataDir, "mudra.db")
	}
	st, err := store.New(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	pluginDir := cfg.PluginDir
	if pluginDir == "" {
		pluginDir = filepath.Join(dataDir, "plugins")
	}

	a := app.New(app.Config{
		Store:        st,
		PluginDir:    pluginDir,
		CameraID:     cfg.CameraID,
		Mirror:       cfg.Mirror,
		MotionThresh: cfg.MotionThreshold,
		IdleFPS:      cfg.IdleFPS,
		ActiveFPS:    cfg.ActiveFPS,
		TickRate:     cfg.TickRate,
		Detector: detector.Config{
			MaxHands:        2,
			MinConfidence:   cfg.MinDetectionConf,
			MinTrackingConf: cfg.MinTrackingConf,
		},
		Debug: cfg.Debug,
	})

	if err := a.DiscoverPlugins(); err != nil {
		log.Printf("Plugin discovery failed: %v", err)
	}

	a.SetEnabled(true)
	if err := a.Start(); err != nil {
		return fmt.Errorf("start pipeline: %w", err)
	}
	defer a.Stop()

	webDir := findWebDir(dataDir)
	if webDir != "" {
		log.Printf("Serving static files from: %s", webDir)
	}

	srv := server.New(server.Config{
		StaticDir: webDir,
		Store:     st,
		Camera:    a.Camera(),
		Scene:     a,
		StreamFPS: cfg.StreamFPS,
	})
	defer srv.Close()

	go func() {
		log.Printf("Starting server on %s", cfg.Addr)
		if err := srv.ListenAndServe(cfg.Addr); err != nil {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	if flagHeadless {
		return waitForSignal()
	}

	t := tray.New()
	a.SetStatusFunc(t.SetStatus)
	t.OnToggle(a.SetEnabled)
	t.OnDashboard(func() {
		if err := openBrowser(dashboardURL(cfg.Addr)); err != nil {
			log.Printf("Failed to open dashboard: %v", err)
		}
	})

	// Run blocks until the quit menu item is clicked.
	t.Run()
	return nil
}

// ensureDataDir creates and returns ~/.mudra.
func ensureDataDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}

	dataDir := filepath.Join(homeDir, ".mudra")
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", fmt.Errorf("create data directory: %w", err)
	}
	return dataDir, nil
}

// findWebDir searches for the bundled web renderer in common locations.
// It checks "web", "../web", "../../web", and <dataDir>/web, returning
// the first existing directory or empty string if none found.
func findWebDir(dataDir string) string {
	relativePaths := []string{"web", "../web", "../../web"}
	for _, p := range relativePaths {
		if info, err := os.Stat(p); err == nil && info.IsDir() {
			absPath, err := filepath.Abs(p)
			if err == nil {
				return absPath
			}
			return p
		}
	}

	homeWebDir := filepath.Join(dataDir, "web")
	if info, err := os.Stat(homeWebDir); err == nil && info.IsDir() {
		return homeWebDir
	}

	return ""
}

// dashboardURL turns a listen address into a browsable URL.
func dashboardURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "http://localhost" + addr
	}
	return "http://" + addr
}

// openBrowser opens a URL with the platform's default browser.
func openBrowser(url string) error {
	switch runtime.GOOS {
	case "darwin":
		return exec.Command("open", url).Start()
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url).Start()
	default:
		return exec.Command("xdg-open", url).Start()
	}
}

// waitForSignal blocks until SIGINT or SIGTERM.
func waitForSignal() error {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigCh
	log.Printf("Received %s, shutting down", sig)
	return nil
}
