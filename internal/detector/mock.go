package detector

import (
	"gocv.io/x/gocv"
)

// MockDetector is a test implementation of the Detector interface.
// It allows tests to control the detection results.
type MockDetector struct {
	hands []Hand
	err   error
}

// NewMockDetector creates a new MockDetector instance.
func NewMockDetector() *MockDetector {
	return &MockDetector{}
}

// SetHands sets the hands that will be returned by Detect.
func (m *MockDetector) SetHands(hands []Hand) {
	m.hands = hands
}

// SetError sets the error that will be returned by Detect.
func (m *MockDetector) SetError(err error) {
	m.err = err
}

// Detect returns the pre-configured hands or error.
func (m *MockDetector) Detect(frame *gocv.Mat) ([]Hand, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.hands, nil
}

// Close is a no-op for the mock detector.
func (m *MockDetector) Close() error {
	return nil
}

// between returns the point a fraction t of the way from a to b.
func between(a, b Point3D, t float64) Point3D {
	return Point3D{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
		Z: a.Z + (b.Z-a.Z)*t,
	}
}

// FistHand returns a preset Hand with all fingers curled into a fist.
// Every fingertip, thumb included, sits well inside the fist threshold
// around the wrist.
func FistHand(handedness Handedness) Hand {
	hand := Hand{
		Handedness: handedness,
		Score:      0.95,
	}

	wrist := Point3D{X: 0.5, Y: 0.6, Z: 0.0}
	hand.Points[Wrist] = wrist

	// Thumb curled across the palm
	hand.Points[ThumbCMC] = Point3D{X: 0.53, Y: 0.58, Z: 0.0}
	hand.Points[ThumbMCP] = Point3D{X: 0.55, Y: 0.57, Z: -0.01}
	hand.Points[ThumbIP] = Point3D{X: 0.55, Y: 0.55, Z: -0.02}
	hand.Points[ThumbTip] = Point3D{X: 0.53, Y: 0.54, Z: -0.03}

	// Index finger curled
	hand.Points[IndexMCP] = Point3D{X: 0.52, Y: 0.53, Z: -0.01}
	hand.Points[IndexPIP] = Point3D{X: 0.52, Y: 0.51, Z: -0.03}
	hand.Points[IndexDIP] = Point3D{X: 0.52, Y: 0.53, Z: -0.04}
	hand.Points[IndexTip] = Point3D{X: 0.52, Y: 0.55, Z: -0.03}

	// Middle finger curled
	hand.Points[MiddleMCP] = Point3D{X: 0.49, Y: 0.52, Z: -0.01}
	hand.Points[MiddlePIP] = Point3D{X: 0.49, Y: 0.50, Z: -0.03}
	hand.Points[MiddleDIP] = Point3D{X: 0.49, Y: 0.53, Z: -0.04}
	hand.Points[MiddleTip] = Point3D{X: 0.49, Y: 0.55, Z: -0.03}

	// Ring finger curled
	hand.Points[RingMCP] = Point3D{X: 0.46, Y: 0.53, Z: -0.01}
	hand.Points[RingPIP] = Point3D{X: 0.46, Y: 0.51, Z: -0.03}
	hand.Points[RingDIP] = Point3D{X: 0.46, Y: 0.54, Z: -0.04}
	hand.Points[RingTip] = Point3D{X: 0.46, Y: 0.56, Z: -0.03}

	// Pinky finger curled
	hand.Points[PinkyMCP] = Point3D{X: 0.44, Y: 0.55, Z: -0.01}
	hand.Points[PinkyPIP] = Point3D{X: 0.44, Y: 0.53, Z: -0.03}
	hand.Points[PinkyDIP] = Point3D{X: 0.44, Y: 0.55, Z: -0.04}
	hand.Points[PinkyTip] = Point3D{X: 0.44, Y: 0.57, Z: -0.03}

	return hand
}

// OpenHand returns a preset Hand representing an open palm with all
// fingers spread, positioned in the upper part of the frame away from
// the world origin.
func OpenHand(handedness Handedness) Hand {
	hand := Hand{
		Handedness: handedness,
		Score:      0.95,
	}

	// Wrist at base
	hand.Points[Wrist] = Point3D{X: 0.5, Y: 0.8, Z: 0.0}

	// Thumb extended to the side
	hand.Points[ThumbCMC] = Point3D{X: 0.55, Y: 0.75, Z: 0.02}
	hand.Points[ThumbMCP] = Point3D{X: 0.62, Y: 0.70, Z: 0.03}
	hand.Points[ThumbIP] = Point3D{X: 0.68, Y: 0.65, Z: 0.03}
	hand.Points[ThumbTip] = Point3D{X: 0.73, Y: 0.60, Z: 0.03}

	// Index finger extended upward
	hand.Points[IndexMCP] = Point3D{X: 0.55, Y: 0.68, Z: 0.0}
	hand.Points[IndexPIP] = Point3D{X: 0.57, Y: 0.55, Z: 0.0}
	hand.Points[IndexDIP] = Point3D{X: 0.58, Y: 0.45, Z: 0.0}
	hand.Points[IndexTip] = Point3D{X: 0.58, Y: 0.35, Z: 0.0}

	// Middle finger extended upward (slightly longer)
	hand.Points[MiddleMCP] = Point3D{X: 0.50, Y: 0.66, Z: 0.0}
	hand.Points[MiddlePIP] = Point3D{X: 0.50, Y: 0.52, Z: 0.0}
	hand.Points[MiddleDIP] = Point3D{X: 0.50, Y: 0.40, Z: 0.0}
	hand.Points[MiddleTip] = Point3D{X: 0.50, Y: 0.28, Z: 0.0}

	// Ring finger extended upward
	hand.Points[RingMCP] = Point3D{X: 0.45, Y: 0.68, Z: 0.0}
	hand.Points[RingPIP] = Point3D{X: 0.43, Y: 0.55, Z: 0.0}
	hand.Points[RingDIP] = Point3D{X: 0.42, Y: 0.45, Z: 0.0}
	hand.Points[RingTip] = Point3D{X: 0.42, Y: 0.35, Z: 0.0}

	// Pinky finger extended upward
	hand.Points[PinkyMCP] = Point3D{X: 0.40, Y: 0.70, Z: 0.0}
	hand.Points[PinkyPIP] = Point3D{X: 0.37, Y: 0.60, Z: 0.0}
	hand.Points[PinkyDIP] = Point3D{X: 0.35, Y: 0.50, Z: 0.0}
	hand.Points[PinkyTip] = Point3D{X: 0.34, Y: 0.42, Z: 0.0}

	return hand
}

// PinchHand returns a preset Hand with thumb and index tips exactly
// pinchDist apart and the remaining fingers curled toward the palm, so
// the hand reads as a pinch rather than a fist or a reach.
func PinchHand(handedness Handedness, pinchDist float64) Hand {
	hand := Hand{
		Handedness: handedness,
		Score:      0.95,
	}

	wrist := Point3D{X: 0.5, Y: 0.75, Z: 0.0}
	hand.Points[Wrist] = wrist

	// Thumb and index tips symmetric about the palm center, pinchDist apart
	thumbTip := Point3D{X: 0.5 - pinchDist/2, Y: 0.55, Z: 0.0}
	indexTip := Point3D{X: 0.5 + pinchDist/2, Y: 0.55, Z: 0.0}
	hand.Points[ThumbTip] = thumbTip
	hand.Points[ThumbCMC] = between(wrist, thumbTip, 0.25)
	hand.Points[ThumbMCP] = between(wrist, thumbTip, 0.5)
	hand.Points[ThumbIP] = between(wrist, thumbTip, 0.75)
	hand.Points[IndexTip] = indexTip
	hand.Points[IndexMCP] = between(wrist, indexTip, 0.35)
	hand.Points[IndexPIP] = between(wrist, indexTip, 0.6)
	hand.Points[IndexDIP] = between(wrist, indexTip, 0.8)

	// Middle finger curled
	hand.Points[MiddleMCP] = Point3D{X: 0.49, Y: 0.68, Z: -0.01}
	hand.Points[MiddlePIP] = Point3D{X: 0.49, Y: 0.65, Z: -0.03}
	hand.Points[MiddleDIP] = Point3D{X: 0.49, Y: 0.64, Z: -0.03}
	hand.Points[MiddleTip] = Point3D{X: 0.49, Y: 0.63, Z: -0.02}

	// Ring finger curled
	hand.Points[RingMCP] = Point3D{X: 0.46, Y: 0.69, Z: -0.01}
	hand.Points[RingPIP] = Point3D{X: 0.46, Y: 0.66, Z: -0.03}
	hand.Points[RingDIP] = Point3D{X: 0.46, Y: 0.65, Z: -0.03}
	hand.Points[RingTip] = Point3D{X: 0.46, Y: 0.64, Z: -0.02}

	// Pinky finger curled
	hand.Points[PinkyMCP] = Point3D{X: 0.43, Y: 0.70, Z: -0.01}
	hand.Points[PinkyPIP] = Point3D{X: 0.43, Y: 0.68, Z: -0.03}
	hand.Points[PinkyDIP] = Point3D{X: 0.43, Y: 0.67, Z: -0.03}
	hand.Points[PinkyTip] = Point3D{X: 0.43, Y: 0.66, Z: -0.02}

	return hand
}

// ReachingHand returns a preset Hand with the middle finger extended to
// the given tip position. Thumb and index are held a neutral pinch
// width apart so scale control stays at its resting target when the
// hand is not over the object.
func ReachingHand(handedness Handedness, middleTip Point3D) Hand {
	hand := Hand{
		Handedness: handedness,
		Score:      0.95,
	}

	wrist := Point3D{X: middleTip.X, Y: middleTip.Y + 0.2, Z: middleTip.Z}
	hand.Points[Wrist] = wrist

	// Middle finger extended to the requested tip position
	hand.Points[MiddleTip] = middleTip
	hand.Points[MiddleMCP] = between(wrist, middleTip, 0.3)
	hand.Points[MiddlePIP] = between(wrist, middleTip, 0.55)
	hand.Points[MiddleDIP] = between(wrist, middleTip, 0.8)

	// Thumb and index half-curled at a neutral pinch width
	thumbTip := Point3D{X: wrist.X - 0.075, Y: wrist.Y - 0.06, Z: wrist.Z}
	indexTip := Point3D{X: wrist.X + 0.075, Y: wrist.Y - 0.06, Z: wrist.Z}
	hand.Points[ThumbTip] = thumbTip
	hand.Points[ThumbCMC] = between(wrist, thumbTip, 0.25)
	hand.Points[ThumbMCP] = between(wrist, thumbTip, 0.5)
	hand.Points[ThumbIP] = between(wrist, thumbTip, 0.75)
	hand.Points[IndexTip] = indexTip
	hand.Points[IndexMCP] = between(wrist, indexTip, 0.35)
	hand.Points[IndexPIP] = between(wrist, indexTip, 0.6)
	hand.Points[IndexDIP] = between(wrist, indexTip, 0.8)

	// Ring and pinky curled
	hand.Points[RingMCP] = Point3D{X: wrist.X - 0.03, Y: wrist.Y - 0.05, Z: wrist.Z - 0.01}
	hand.Points[RingPIP] = Point3D{X: wrist.X - 0.04, Y: wrist.Y - 0.08, Z: wrist.Z - 0.03}
	hand.Points[RingDIP] = Point3D{X: wrist.X - 0.05, Y: wrist.Y - 0.09, Z: wrist.Z - 0.03}
	hand.Points[RingTip] = Point3D{X: wrist.X - 0.05, Y: wrist.Y - 0.09, Z: wrist.Z - 0.02}
	hand.Points[PinkyMCP] = Point3D{X: wrist.X - 0.06, Y: wrist.Y - 0.04, Z: wrist.Z - 0.01}
	hand.Points[PinkyPIP] = Point3D{X: wrist.X - 0.07, Y: wrist.Y - 0.06, Z: wrist.Z - 0.03}
	hand.Points[PinkyDIP] = Point3D{X: wrist.X - 0.07, Y: wrist.Y - 0.07, Z: wrist.Z - 0.03}
	hand.Points[PinkyTip] = Point3D{X: wrist.X - 0.07, Y: wrist.Y - 0.07, Z: wrist.Z - 0.02}

	return hand
}

// PointingHand returns a preset Hand with the index finger extended to
// the given tip position and the remaining fingers curled.
func PointingHand(handedness Handedness, indexTip Point3D) Hand {
	hand := Hand{
		Handedness: handedness,
		Score:      0.95,
	}

	wrist := Point3D{X: indexTip.X, Y: indexTip.Y + 0.25, Z: indexTip.Z}
	hand.Points[Wrist] = wrist

	// Index finger extended to the requested tip position
	hand.Points[IndexTip] = indexTip
	hand.Points[IndexMCP] = between(wrist, indexTip, 0.3)
	hand.Points[IndexPIP] = between(wrist, indexTip, 0.55)
	hand.Points[IndexDIP] = between(wrist, indexTip, 0.8)

	// Thumb curled against the palm
	hand.Points[ThumbCMC] = Point3D{X: wrist.X + 0.02, Y: wrist.Y - 0.02, Z: wrist.Z}
	hand.Points[ThumbMCP] = Point3D{X: wrist.X + 0.04, Y: wrist.Y - 0.03, Z: wrist.Z - 0.01}
	hand.Points[ThumbIP] = Point3D{X: wrist.X + 0.04, Y: wrist.Y - 0.04, Z: wrist.Z - 0.02}
	hand.Points[ThumbTip] = Point3D{X: wrist.X + 0.03, Y: wrist.Y - 0.05, Z: wrist.Z - 0.02}

	// Middle, ring and pinky curled
	hand.Points[MiddleMCP] = Point3D{X: wrist.X - 0.01, Y: wrist.Y - 0.07, Z: wrist.Z - 0.01}
	hand.Points[MiddlePIP] = Point3D{X: wrist.X - 0.01, Y: wrist.Y - 0.10, Z: wrist.Z - 0.03}
	hand.Points[MiddleDIP] = Point3D{X: wrist.X - 0.01, Y: wrist.Y - 0.11, Z: wrist.Z - 0.03}
	hand.Points[MiddleTip] = Point3D{X: wrist.X - 0.01, Y: wrist.Y - 0.12, Z: wrist.Z - 0.02}
	hand.Points[RingMCP] = Point3D{X: wrist.X - 0.04, Y: wrist.Y - 0.06, Z: wrist.Z - 0.01}
	hand.Points[RingPIP] = Point3D{X: wrist.X - 0.05, Y: wrist.Y - 0.09, Z: wrist.Z - 0.03}
	hand.Points[RingDIP] = Point3D{X: wrist.X - 0.05, Y: wrist.Y - 0.10, Z: wrist.Z - 0.03}
	hand.Points[RingTip] = Point3D{X: wrist.X - 0.05, Y: wrist.Y - 0.10, Z: wrist.Z - 0.02}
	hand.Points[PinkyMCP] = Point3D{X: wrist.X - 0.07, Y: wrist.Y - 0.05, Z: wrist.Z - 0.01}
	hand.Points[PinkyPIP] = Point3D{X: wrist.X - 0.08, Y: wrist.Y - 0.07, Z: wrist.Z - 0.03}
	hand.Points[PinkyDIP] = Point3D{X: wrist.X - 0.08, Y: wrist.Y - 0.08, Z: wrist.Z - 0.03}
	hand.Points[PinkyTip] = Point3D{X: wrist.X - 0.08, Y: wrist.Y - 0.08, Z: wrist.Z - 0.02}

	return hand
}
