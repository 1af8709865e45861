package control

import (
	"math"
	"testing"
	"time"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/scene"
)

const epsilon = 1e-9

var testBase = time.Unix(1000, 0)

// step runs one frame the way the app loop does: snapshot the object,
// route the frame, apply the resulting intents.
func step(router *Router, stage *scene.Stage, now time.Time, hands ...detector.Hand) Result {
	res := router.Frame(detector.Frame{Hands: hands}, stage.Object(), now)
	stage.Apply(res.Intents)
	return res
}

func hasIntent(res Result, kind scene.IntentKind) bool {
	for _, intent := range res.Intents {
		if intent.Kind == kind {
			return true
		}
	}
	return false
}

func hasEvent(res Result, typ EventType) bool {
	for _, ev := range res.Events {
		if ev.Type == typ {
			return true
		}
	}
	return false
}

func TestTargetScale(t *testing.T) {
	t.Run("clamps below the pinch range", func(t *testing.T) {
		for _, pinch := range []float64{0.0, 0.03, 0.05} {
			if got := targetScale(pinch); got != scaleMin {
				t.Errorf("pinch %f: expected %f, got %f", pinch, scaleMin, got)
			}
		}
	})

	t.Run("clamps above the pinch range", func(t *testing.T) {
		for _, pinch := range []float64{0.25, 0.3, 1.0} {
			if got := targetScale(pinch); got != scaleMax {
				t.Errorf("pinch %f: expected %f, got %f", pinch, scaleMax, got)
			}
		}
	})

	t.Run("midpoint maps to the middle of the scale range", func(t *testing.T) {
		if got := targetScale(0.15); math.Abs(got-1.0) > epsilon {
			t.Errorf("expected 1.0 at the ramp midpoint, got %f", got)
		}
	})

	t.Run("ramp is linear", func(t *testing.T) {
		if got := targetScale(0.10); math.Abs(got-0.75) > epsilon {
			t.Errorf("expected 0.75 a quarter up the ramp, got %f", got)
		}
		if got := targetScale(0.20); math.Abs(got-1.25) > epsilon {
			t.Errorf("expected 1.25 three quarters up the ramp, got %f", got)
		}
	})
}

func TestRouter_Scale(t *testing.T) {
	t.Run("smoothing step emits the current scale", func(t *testing.T) {
		router := NewRouter(NewState())
		stage := scene.NewStage(testBase)

		res := step(router, stage, testBase, detector.PinchHand(detector.Right, 0.3))

		// One step from 1.0 toward 1.5.
		want := 1.0 + (1.5-1.0)*smoothing
		if got := router.State().CurrentScale; math.Abs(got-want) > epsilon {
			t.Errorf("expected current scale %f after one frame, got %f", want, got)
		}
		if !hasIntent(res, scene.IntentSetScale) {
			t.Fatal("expected a set-scale intent")
		}
		if got := stage.Object().Scale; math.Abs(got-want) > epsilon {
			t.Errorf("expected object scale %f, got %f", want, got)
		}
	})

	t.Run("smoothing is idempotent at the fixed point", func(t *testing.T) {
		router := NewRouter(NewState())
		router.State().CurrentScale = 1.5
		stage := scene.NewStage(testBase)

		step(router, stage, testBase, detector.PinchHand(detector.Right, 0.3))

		if got := router.State().CurrentScale; got != 1.5 {
			t.Errorf("expected current scale unchanged at 1.5, got %f", got)
		}
	})

	t.Run("converges within one percent in 29 frames without overshoot", func(t *testing.T) {
		router := NewRouter(NewState())
		stage := scene.NewStage(testBase)

		prev := router.State().CurrentScale
		for i := 0; i < 29; i++ {
			step(router, stage, testBase, detector.PinchHand(detector.Right, 0.3))

			cur := router.State().CurrentScale
			if cur < prev {
				t.Fatalf("frame %d: scale regressed from %f to %f", i, prev, cur)
			}
			if cur > 1.5 {
				t.Fatalf("frame %d: scale overshot to %f", i, cur)
			}
			prev = cur
		}

		if gap := 1.5 - router.State().CurrentScale; gap >= 0.005 {
			t.Errorf("expected scale within 0.005 of target after 29 frames, gap %f", gap)
		}
	})

	t.Run("target tracks the pinch distance across frames", func(t *testing.T) {
		router := NewRouter(NewState())
		stage := scene.NewStage(testBase)

		step(router, stage, testBase, detector.PinchHand(detector.Right, 0.3))
		if got := router.State().TargetScale; got != 1.5 {
			t.Fatalf("expected target 1.5, got %f", got)
		}

		step(router, stage, testBase, detector.PinchHand(detector.Right, 0.0))
		if got := router.State().TargetScale; got != 0.5 {
			t.Fatalf("expected target 0.5, got %f", got)
		}
	})
}

func TestRouter_Drag(t *testing.T) {
	reach := func(x, y float64) detector.Hand {
		return detector.ReachingHand(detector.Right, detector.Point3D{X: x, Y: y})
	}

	t.Run("starts only near the object", func(t *testing.T) {
		router := NewRouter(NewState())
		stage := scene.NewStage(testBase)

		// Middle tip maps to world (3, 0), outside the widened radius.
		res := step(router, stage, testBase, reach(0.8, 0.5))

		if router.State().DragActive {
			t.Fatal("expected no drag away from the object")
		}
		if hasIntent(res, scene.IntentMove) {
			t.Error("expected no move intent away from the object")
		}
		if !hasIntent(res, scene.IntentSetScale) {
			t.Error("expected scale control to run when not dragging")
		}
	})

	t.Run("drag suppresses scale and emits moves", func(t *testing.T) {
		router := NewRouter(NewState())
		stage := scene.NewStage(testBase)

		res := step(router, stage, testBase, reach(0.5, 0.5))

		if !router.State().DragActive {
			t.Fatal("expected drag to start over the object")
		}
		if !hasEvent(res, EventDragStart) {
			t.Error("expected a drag-start event")
		}
		if !hasIntent(res, scene.IntentMove) {
			t.Error("expected a move intent on the entry frame")
		}
		if hasIntent(res, scene.IntentSetScale) {
			t.Error("expected scale suppressed while dragging")
		}

		res = step(router, stage, testBase, reach(0.55, 0.45))
		obj := stage.Object()
		if math.Abs(obj.Position.X-0.5) > epsilon || math.Abs(obj.Position.Y-0.5) > epsilon {
			t.Errorf("expected object at (0.5, 0.5), got %v", obj.Position)
		}
		if hasIntent(res, scene.IntentSetScale) {
			t.Error("expected scale suppressed while dragging")
		}
	})

	t.Run("release and re-grasp is position-continuous", func(t *testing.T) {
		router := NewRouter(NewState())
		stage := scene.NewStage(testBase)

		// Grasp at world A=(0,0), drag to B=(0.5,0.5).
		step(router, stage, testBase, reach(0.5, 0.5))
		step(router, stage, testBase, reach(0.55, 0.45))

		// Curl the middle finger to release.
		res := step(router, stage, testBase, detector.PinchHand(detector.Right, 0.15))
		if router.State().DragActive {
			t.Fatal("expected drag released when the middle finger curls")
		}
		if !hasEvent(res, EventDragStop) {
			t.Error("expected a drag-stop event on release")
		}

		// Re-grasp at B: the object must not jump.
		step(router, stage, testBase, reach(0.55, 0.45))
		obj := stage.Object()
		if math.Abs(obj.Position.X-0.5) > epsilon || math.Abs(obj.Position.Y-0.5) > epsilon {
			t.Fatalf("expected no jump at re-grasp, got %v", obj.Position)
		}

		// Drag on to C: net displacement is C-A across both drags.
		step(router, stage, testBase, reach(0.6, 0.4))
		obj = stage.Object()
		if math.Abs(obj.Position.X-1.0) > epsilon || math.Abs(obj.Position.Y-1.0) > epsilon {
			t.Errorf("expected net displacement to (1.0, 1.0), got %v", obj.Position)
		}
	})

	t.Run("drag continues outside the hit radius while extended", func(t *testing.T) {
		router := NewRouter(NewState())
		stage := scene.NewStage(testBase)

		step(router, stage, testBase, reach(0.5, 0.5))
		// Far outside the original hit radius, still extended.
		res := step(router, stage, testBase, reach(0.9, 0.5))

		if !router.State().DragActive {
			t.Fatal("expected drag to survive leaving the hit radius")
		}
		if !hasIntent(res, scene.IntentMove) {
			t.Error("expected move intents to continue")
		}
		if got := stage.Object().Position.X; math.Abs(got-4.0) > epsilon {
			t.Errorf("expected object dragged to x=4.0, got %f", got)
		}
	})
}
