package main

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/ayusman/mudra/internal/buildinfo"
)

var (
	// Global flags
	flagConfig   string
	flagAddr     string
	flagCamera   int
	flagHeadless bool
)

var rootCmd = &cobra.Command{
	Use:   "mudra",
	Short: "Hand-gesture control service for a 3D scene",
	Long: `mudra - derive stable control signals for a 3D object from a noisy
per-frame stream of hand landmarks.

The right hand drags and pinch-scales the object, the left hand recolors
it and toggles the idle animation, and a two-fist frame resets the scene.
The resulting transform, color, and particle state are served to a
browser renderer over a websocket feed, with a REST API, an event
journal, Prometheus metrics, and a system tray toggle alongside.

Configuration is layered from defaults, an optional YAML file
(MUDRA_CONFIG), and MUDRA_-prefixed environment variables.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the gesture control service",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(buildinfo.String())
		fmt.Printf("  go: %s\n", runtime.Version())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&flagAddr, "addr", "", "HTTP listen address (overrides config)")
	rootCmd.PersistentFlags().IntVar(&flagCamera, "camera", -1, "camera device ID (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&flagHeadless, "headless", false, "run without the system tray")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(versionCmd)
}
