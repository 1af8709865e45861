package control

// EventType identifies a discrete control occurrence.
type EventType string

const (
	// EventReset fires when a two-fist frame resets the scene.
	EventReset EventType = "reset"
	// EventColorChange fires when the left hand triggers a recolor.
	EventColorChange EventType = "color_change"
	// EventRotationToggle fires when a double-tap flips the idle
	// animation.
	EventRotationToggle EventType = "rotation_toggle"
	// EventDragStart and EventDragStop bracket a right-hand drag.
	EventDragStart EventType = "drag_start"
	EventDragStop  EventType = "drag_stop"
)

// Event is one discrete control occurrence, surfaced to the journal,
// plugin hooks, and metrics.
type Event struct {
	Type   EventType
	Detail map[string]any
}

// Status strings surfaced through the status channel.
const (
	StatusNoHands     = "No hands detected"
	StatusReset       = "Reset performed!"
	StatusRotationOn  = "Rotation enabled"
	StatusRotationOff = "Rotation disabled"
)
