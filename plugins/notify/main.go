// Package main provides a desktop notification plugin.
// It raises a notification for scene-level gesture events via
// notify-send on Linux or AppleScript on macOS.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"runtime"
)

// Request represents the input from the plugin executor.
type Request struct {
	Event  string          `json:"event"`
	Status string          `json:"status,omitempty"`
	Detail json.RawMessage `json:"detail,omitempty"`
}

// Response represents the output to the plugin executor.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

func main() {
	// Read request from stdin
	var req Request
	if err := json.NewDecoder(os.Stdin).Decode(&req); err != nil {
		writeErrorResponse(fmt.Sprintf("failed to decode request: %v", err))
		return
	}

	message, err := formatMessage(&req)
	if err != nil {
		writeErrorResponse(err.Error())
		return
	}

	if err := notify("mudra", message); err != nil {
		writeErrorResponse(fmt.Sprintf("notification failed: %v", err))
		return
	}

	writeSuccessResponse(message)
}

// formatMessage builds the notification text for a gesture event.
func formatMessage(req *Request) (string, error) {
	switch req.Event {
	case "reset":
		return "Scene reset to its starting transform", nil
	case "color_change":
		var detail struct {
			Color string `json:"color"`
		}
		if len(req.Detail) > 0 {
			_ = json.Unmarshal(req.Detail, &detail)
		}
		if detail.Color != "" {
			return fmt.Sprintf("Object color changed to %s", detail.Color), nil
		}
		return "Object color changed", nil
	case "rotation_toggle":
		var detail struct {
			Enabled bool `json:"enabled"`
		}
		if len(req.Detail) > 0 {
			_ = json.Unmarshal(req.Detail, &detail)
		}
		if detail.Enabled {
			return "Rotation enabled", nil
		}
		return "Rotation disabled", nil
	default:
		return "", fmt.Errorf("unsubscribed event: %s", req.Event)
	}
}

// notify raises a desktop notification using whatever the platform provides.
// Missing notifiers are not an error so the plugin stays usable headless.
func notify(title, message string) error {
	switch runtime.GOOS {
	case "darwin":
		script := fmt.Sprintf("display notification %q with title %q", message, title)
		cmd := exec.Command("osascript", "-e", script)
		if output, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("%w: %s", err, string(output))
		}
		return nil
	default:
		if _, err := exec.LookPath("notify-send"); err != nil {
			return nil
		}
		cmd := exec.Command("notify-send", title, message)
		if output, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("%w: %s", err, string(output))
		}
		return nil
	}
}

// writeErrorResponse writes an error response to stdout.
func writeErrorResponse(errMsg string) {
	resp := Response{
		Success: false,
		Error:   errMsg,
	}
	json.NewEncoder(os.Stdout).Encode(resp)
}

// writeSuccessResponse writes a success response to stdout.
func writeSuccessResponse(message string) {
	data, _ := json.Marshal(map[string]string{"message": message})
	resp := Response{
		Success: true,
		Data:    data,
	}
	json.NewEncoder(os.Stdout).Encode(resp)
}
