package control

import (
	"time"

	"github.com/ayusman/mudra/internal/geom"
)

// State is the cross-frame control state for one session. It is
// created at session start, mutated once per landmark frame by the
// router, and discarded at session end; nothing in it is persisted.
type State struct {
	// DragActive reports whether the right hand currently owns a drag.
	DragActive bool

	// DragAnchor is the world point under the middle fingertip when
	// the drag started.
	DragAnchor geom.Point2D

	// ObjectAnchor is the object's world position captured at drag
	// start and re-captured on release, so drag deltas are always
	// relative to the object's resting place.
	ObjectAnchor geom.Point2D

	// CurrentScale converges toward TargetScale by exponential
	// smoothing, one step per right-hand frame.
	CurrentScale float64
	TargetScale  float64

	// RotationEnabled gates the idle rotation and breathing animation.
	RotationEnabled bool

	// LastTap and LastColorChange are the debounce timestamps for the
	// left hand's two independent timers.
	LastTap         time.Time
	LastColorChange time.Time
}

// NewState returns the state a fresh session starts from: unit scale,
// idle animation enabled, no drag.
func NewState() *State {
	return &State{
		CurrentScale:    1.0,
		TargetScale:     1.0,
		RotationEnabled: true,
	}
}
