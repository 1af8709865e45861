package scene

import "github.com/ayusman/mudra/internal/geom"

// IntentKind identifies a mutation the stage knows how to apply.
type IntentKind string

const (
	// IntentMove repositions the object in the world plane; depth is
	// never touched.
	IntentMove IntentKind = "move"
	// IntentSetScale sets the uniform control scale.
	IntentSetScale IntentKind = "set_scale"
	// IntentSetColor recolors the object and spawns a particle burst
	// at its current position.
	IntentSetColor IntentKind = "set_color"
	// IntentReset returns the transform to its initial state.
	IntentReset IntentKind = "reset"
)

// Intent is one requested mutation of the controlled object. Only the
// field matching Kind is meaningful.
type Intent struct {
	Kind  IntentKind
	Pos   geom.Point2D
	Scale float64
	Color RGB
}
