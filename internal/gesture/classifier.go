// Package gesture classifies hand landmark geometry into the fixed
// control vocabulary: fist, pinch, finger extension, and proximity to
// the controlled object. All classifiers are pure functions of a single
// hand's landmarks in normalized image space.
package gesture

import (
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/geom"
)

const (
	// FistThreshold is the maximum wrist-to-fingertip distance, in
	// normalized units, below which a finger counts as curled.
	FistThreshold = 0.1

	// ExtendedThreshold is the minimum wrist-to-middle-tip distance
	// above which the middle finger counts as extended.
	ExtendedThreshold = 0.15

	// NearMargin widens the object's hit radius so proximity tests
	// tolerate tracking jitter.
	NearMargin = 1.5
)

var fingerTips = []int{
	detector.IndexTip,
	detector.MiddleTip,
	detector.RingTip,
	detector.PinkyTip,
}

// IsFist reports whether all four fingertips and the thumb tip are
// curled in close to the wrist. The thumb is checked independently
// because it can stay extended while the other fingers curl.
func IsFist(hand detector.Hand) bool {
	wrist := hand.Points[detector.Wrist]

	var maxTip float64
	for _, tip := range fingerTips {
		if d := wrist.DistanceTo(hand.Points[tip]); d > maxTip {
			maxTip = d
		}
	}
	if maxTip >= FistThreshold {
		return false
	}

	return wrist.DistanceTo(hand.Points[detector.ThumbTip]) < FistThreshold
}

// PinchDistance returns the distance between the thumb tip and the
// index tip in normalized units.
func PinchDistance(hand detector.Hand) float64 {
	return hand.Points[detector.ThumbTip].DistanceTo(hand.Points[detector.IndexTip])
}

// IsMiddleFingerExtended reports whether the middle finger reaches far
// enough from the wrist to count as extended.
func IsMiddleFingerExtended(hand detector.Hand) bool {
	return hand.Points[detector.Wrist].DistanceTo(hand.Points[detector.MiddleTip]) > ExtendedThreshold
}

// IsNearObject reports whether the landmark point, mapped into world
// space, lies within the widened hit radius around center. Interaction
// is planar; the point's depth is ignored.
func IsNearObject(p detector.Point3D, center geom.Point2D, radius float64) bool {
	return geom.MapToWorld(p.X, p.Y).Distance(center) < radius*NearMargin
}
