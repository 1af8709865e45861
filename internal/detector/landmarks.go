// Package detector provides hand detection interfaces and landmark types for
// the gesture control pipeline.
package detector

import (
	"math"
	"time"
)

// Hand landmark indices following MediaPipe convention.
// See: https://developers.google.com/mediapipe/solutions/vision/hand_landmarker
const (
	Wrist        = 0
	ThumbCMC     = 1
	ThumbMCP     = 2
	ThumbIP      = 3
	ThumbTip     = 4
	IndexMCP     = 5
	IndexPIP     = 6
	IndexDIP     = 7
	IndexTip     = 8
	MiddleMCP    = 9
	MiddlePIP    = 10
	MiddleDIP    = 11
	MiddleTip    = 12
	RingMCP      = 13
	RingPIP      = 14
	RingDIP      = 15
	RingTip      = 16
	PinkyMCP     = 17
	PinkyPIP     = 18
	PinkyDIP     = 19
	PinkyTip     = 20
	NumLandmarks = 21
)

// Point3D is a single landmark position in normalized image space:
// x and y in [0,1] relative to the frame, z a rough relative depth.
type Point3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// DistanceTo returns the Euclidean distance to another landmark.
func (p Point3D) DistanceTo(other Point3D) float64 {
	dx := p.X - other.X
	dy := p.Y - other.Y
	dz := p.Z - other.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// Handedness classifies a detected hand as left or right.
type Handedness string

const (
	// Left is the handedness label for a left hand.
	Left Handedness = "Left"
	// Right is the handedness label for a right hand.
	Right Handedness = "Right"
)

// Valid reports whether the label is one of the two known values.
func (h Handedness) Valid() bool {
	return h == Left || h == Right
}

// Hand is one detected hand: the 21 landmarks in anatomical order plus the
// handedness classification. Hands are produced fresh every frame; no
// identity persists across frames.
type Hand struct {
	Points     [NumLandmarks]Point3D `json:"points"`
	Handedness Handedness            `json:"handedness"`
	Score      float64               `json:"score"`
}

// Frame is the detector output for a single camera frame: zero or more hands.
type Frame struct {
	Hands      []Hand    `json:"hands"`
	CapturedAt time.Time `json:"-"`
}
