package detector

import (
	"errors"
	"math"
	"testing"
)

const epsilon = 1e-9

func TestPoint3D_DistanceTo(t *testing.T) {
	t.Run("known distance", func(t *testing.T) {
		a := Point3D{X: 1.0, Y: 2.0, Z: 3.0}
		b := Point3D{X: 4.0, Y: 6.0, Z: 3.0}

		if d := a.DistanceTo(b); math.Abs(d-5.0) > epsilon {
			t.Errorf("expected distance 5.0, got %f", d)
		}
	})

	t.Run("zero distance to self", func(t *testing.T) {
		p := Point3D{X: 0.3, Y: 0.7, Z: -0.1}

		if d := p.DistanceTo(p); d != 0 {
			t.Errorf("expected distance 0, got %f", d)
		}
	})

	t.Run("symmetric", func(t *testing.T) {
		a := Point3D{X: 0.1, Y: 0.2, Z: 0.3}
		b := Point3D{X: 0.9, Y: 0.5, Z: -0.2}

		if a.DistanceTo(b) != b.DistanceTo(a) {
			t.Error("expected distance to be symmetric")
		}
	})
}

func TestHandedness_Valid(t *testing.T) {
	if !Left.Valid() {
		t.Error("expected Left to be valid")
	}
	if !Right.Valid() {
		t.Error("expected Right to be valid")
	}
	if Handedness("Both").Valid() {
		t.Error("expected unknown handedness to be invalid")
	}
	if Handedness("").Valid() {
		t.Error("expected empty handedness to be invalid")
	}
}

func TestMockDetector(t *testing.T) {
	t.Run("returns empty hands by default", func(t *testing.T) {
		mock := NewMockDetector()

		hands, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if hands != nil {
			t.Errorf("expected nil hands, got %v", hands)
		}
	})

	t.Run("returns configured hands", func(t *testing.T) {
		mock := NewMockDetector()

		expectedHands := []Hand{
			FistHand(Right),
			OpenHand(Left),
		}
		mock.SetHands(expectedHands)

		hands, err := mock.Detect(nil)

		if err != nil {
			t.Errorf("unexpected error: %v", err)
		}
		if len(hands) != 2 {
			t.Errorf("expected 2 hands, got %d", len(hands))
		}
		if hands[0].Handedness != Right || hands[1].Handedness != Left {
			t.Errorf("expected handedness order Right, Left, got %s, %s",
				hands[0].Handedness, hands[1].Handedness)
		}
	})

	t.Run("returns configured error", func(t *testing.T) {
		mock := NewMockDetector()

		expectedErr := errors.New("detection failed")
		mock.SetError(expectedErr)

		hands, err := mock.Detect(nil)

		if err != expectedErr {
			t.Errorf("expected error %v, got %v", expectedErr, err)
		}
		if hands != nil {
			t.Errorf("expected nil hands when error is set, got %v", hands)
		}
	})

	t.Run("Close returns nil", func(t *testing.T) {
		mock := NewMockDetector()

		err := mock.Close()

		if err != nil {
			t.Errorf("expected Close to return nil, got %v", err)
		}
	})

	t.Run("implements Detector interface", func(t *testing.T) {
		var _ Detector = (*MockDetector)(nil)
	})
}

func TestFistHand(t *testing.T) {
	hand := FistHand(Right)

	t.Run("has requested handedness and a confident score", func(t *testing.T) {
		if hand.Handedness != Right {
			t.Errorf("expected handedness Right, got %s", hand.Handedness)
		}
		if hand.Score < 0.9 {
			t.Errorf("expected score >= 0.9, got %f", hand.Score)
		}
	})

	t.Run("all fingertips close to the wrist", func(t *testing.T) {
		wrist := hand.Points[Wrist]
		for _, tip := range []int{ThumbTip, IndexTip, MiddleTip, RingTip, PinkyTip} {
			if d := wrist.DistanceTo(hand.Points[tip]); d >= 0.1 {
				t.Errorf("fingertip %d too far from wrist for a fist: %f", tip, d)
			}
		}
	})

	t.Run("middle finger not extended", func(t *testing.T) {
		d := hand.Points[Wrist].DistanceTo(hand.Points[MiddleTip])
		if d > 0.15 {
			t.Errorf("middle finger appears extended (wrist distance %f)", d)
		}
	})
}

func TestOpenHand(t *testing.T) {
	hand := OpenHand(Left)

	t.Run("has requested handedness", func(t *testing.T) {
		if hand.Handedness != Left {
			t.Errorf("expected handedness Left, got %s", hand.Handedness)
		}
	})

	t.Run("fingertips spread away from the wrist", func(t *testing.T) {
		wrist := hand.Points[Wrist]
		for _, tip := range []int{ThumbTip, IndexTip, MiddleTip, RingTip, PinkyTip} {
			if d := wrist.DistanceTo(hand.Points[tip]); d < 0.1 {
				t.Errorf("fingertip %d too close to wrist for an open palm: %f", tip, d)
			}
		}
	})

	t.Run("middle finger extended", func(t *testing.T) {
		d := hand.Points[Wrist].DistanceTo(hand.Points[MiddleTip])
		if d <= 0.15 {
			t.Errorf("middle finger not extended (wrist distance %f)", d)
		}
	})
}

func TestPinchHand(t *testing.T) {
	t.Run("thumb and index tips at the requested separation", func(t *testing.T) {
		for _, dist := range []float64{0.0, 0.05, 0.15, 0.25, 0.3} {
			hand := PinchHand(Right, dist)

			got := hand.Points[ThumbTip].DistanceTo(hand.Points[IndexTip])
			if math.Abs(got-dist) > epsilon {
				t.Errorf("pinch distance %f: got %f", dist, got)
			}
		}
	})

	t.Run("middle finger stays curled", func(t *testing.T) {
		hand := PinchHand(Right, 0.15)

		d := hand.Points[Wrist].DistanceTo(hand.Points[MiddleTip])
		if d > 0.15 {
			t.Errorf("middle finger appears extended (wrist distance %f)", d)
		}
		if d < 0.1 {
			t.Errorf("middle finger curled tight enough to read as a fist (wrist distance %f)", d)
		}
	})
}

func TestReachingHand(t *testing.T) {
	tip := Point3D{X: 0.5, Y: 0.5, Z: 0.0}
	hand := ReachingHand(Right, tip)

	t.Run("middle tip at the requested position", func(t *testing.T) {
		if hand.Points[MiddleTip] != tip {
			t.Errorf("expected middle tip at %v, got %v", tip, hand.Points[MiddleTip])
		}
	})

	t.Run("middle finger extended", func(t *testing.T) {
		d := hand.Points[Wrist].DistanceTo(hand.Points[MiddleTip])
		if d <= 0.15 {
			t.Errorf("middle finger not extended (wrist distance %f)", d)
		}
	})

	t.Run("thumb and index at neutral pinch width", func(t *testing.T) {
		got := hand.Points[ThumbTip].DistanceTo(hand.Points[IndexTip])
		if math.Abs(got-0.15) > epsilon {
			t.Errorf("expected neutral pinch distance 0.15, got %f", got)
		}
	})
}

func TestPointingHand(t *testing.T) {
	tip := Point3D{X: 0.4, Y: 0.45, Z: 0.0}
	hand := PointingHand(Left, tip)

	t.Run("index tip at the requested position", func(t *testing.T) {
		if hand.Points[IndexTip] != tip {
			t.Errorf("expected index tip at %v, got %v", tip, hand.Points[IndexTip])
		}
	})

	t.Run("index finger extended", func(t *testing.T) {
		d := hand.Points[Wrist].DistanceTo(hand.Points[IndexTip])
		if d < 0.2 {
			t.Errorf("index finger not extended (wrist distance %f)", d)
		}
	})

	t.Run("middle finger stays curled", func(t *testing.T) {
		d := hand.Points[Wrist].DistanceTo(hand.Points[MiddleTip])
		if d > 0.15 {
			t.Errorf("middle finger appears extended (wrist distance %f)", d)
		}
	})
}
