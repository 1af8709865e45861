// Package geom provides the planar world-space math used by the gesture
// controllers. Landmark coordinates are normalized image space (x,y in [0,1]);
// the controlled object lives in a world whose visible extent spans
// [-WorldSpan/2, WorldSpan/2] on both axes.
package geom

import "math"

// WorldSpan is the width and height of the interaction plane in world units.
// A landmark at image x=0 maps to world x=-5, at x=1 to world x=+5.
const WorldSpan = 10.0

// Point2D is a point on the interaction plane in world units.
type Point2D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Distance returns the Euclidean distance to another point.
func (p Point2D) Distance(other Point2D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Add returns the sum of two points.
func (p Point2D) Add(other Point2D) Point2D {
	return Point2D{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns the difference of two points.
func (p Point2D) Sub(other Point2D) Point2D {
	return Point2D{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns the point scaled by a factor.
func (p Point2D) Scale(factor float64) Point2D {
	return Point2D{X: p.X * factor, Y: p.Y * factor}
}

// MapToWorld projects a normalized image-space coordinate onto the
// interaction plane. The X axis is centered, the Y axis is centered and
// flipped (image Y grows downward, world Y grows upward). Depth is dropped:
// all interaction is planar.
func MapToWorld(x, y float64) Point2D {
	return Point2D{
		X: (x - 0.5) * WorldSpan,
		Y: (0.5 - y) * WorldSpan,
	}
}
