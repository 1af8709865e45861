// Package plugin provides plugin discovery and execution for the mudra gesture control service.
package plugin

import "encoding/json"

// Manifest describes a plugin's metadata and the gesture events it subscribes to.
type Manifest struct {
	Name        string   `json:"name"`
	Version     string   `json:"version"`
	Description string   `json:"description"`
	Executable  string   `json:"executable"`
	Events      []string `json:"events"`
}

// Request represents a gesture event delivered to a plugin.
type Request struct {
	Event  string          `json:"event"`
	Status string          `json:"status,omitempty"`
	Detail json.RawMessage `json:"detail,omitempty"`
}

// Response represents the response from a plugin execution.
type Response struct {
	Success bool            `json:"success"`
	Error   string          `json:"error,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// Plugin represents a discovered plugin with its manifest and location.
type Plugin struct {
	Manifest   Manifest
	Path       string
	Executable string
}
