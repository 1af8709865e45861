package scene

import "gonum.org/v1/gonum/spatial/r3"

// BaseRadius is the object's unscaled radius in world units.
const BaseRadius = 1.0

// Object is the controlled object's transform and material state.
// Scale is the uniform control scale; ScaleY carries the display-only
// breathing modulation and tracks Scale exactly while animation is off.
type Object struct {
	Position  r3.Vec
	Scale     float64
	ScaleY    float64
	RotationY float64
	Color     RGB
}

// EffectiveRadius returns the object's current hit radius.
func (o Object) EffectiveRadius() float64 {
	return o.Scale * BaseRadius
}
