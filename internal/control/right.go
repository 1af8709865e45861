package control

import (
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/geom"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/scene"
)

const (
	// pinchMin and pinchMax bound the pinch distances mapped onto the
	// scale range; distances outside are clamped.
	pinchMin = 0.05
	pinchMax = 0.25

	// scaleMin and scaleMax bound the object's control scale.
	scaleMin = 0.5
	scaleMax = 1.5

	// smoothing is the per-frame low-pass factor pulling the current
	// scale toward the target. Raising it trades jitter rejection for
	// responsiveness.
	smoothing = 0.15
)

// rightHand runs the drag state machine and, when no drag is active,
// the pinch-to-scale control.
func (r *Router) rightHand(hand detector.Hand, obj scene.Object, res *Result) {
	s := r.state
	middleTip := hand.Points[detector.MiddleTip]
	extended := gesture.IsMiddleFingerExtended(hand)

	if !s.DragActive {
		if extended && gesture.IsNearObject(middleTip, objectCenter(obj), obj.EffectiveRadius()) {
			s.DragActive = true
			s.DragAnchor = geom.MapToWorld(middleTip.X, middleTip.Y)
			s.ObjectAnchor = objectCenter(obj)
			res.Events = append(res.Events, Event{
				Type: EventDragStart,
				Detail: map[string]any{
					"x": s.DragAnchor.X,
					"y": s.DragAnchor.Y,
				},
			})
		}
	} else if !extended {
		s.DragActive = false
		// The next drag starts from wherever the object came to rest.
		s.ObjectAnchor = objectCenter(obj)
		res.Events = append(res.Events, Event{
			Type:   EventDragStop,
			Detail: map[string]any{"cause": "release"},
		})
	}

	if s.DragActive {
		delta := geom.MapToWorld(middleTip.X, middleTip.Y).Sub(s.DragAnchor)
		res.Intents = append(res.Intents, scene.Intent{
			Kind: scene.IntentMove,
			Pos:  s.ObjectAnchor.Add(delta),
		})
		// Drag and scale are mutually exclusive per frame.
		return
	}

	s.TargetScale = targetScale(gesture.PinchDistance(hand))
	s.CurrentScale += (s.TargetScale - s.CurrentScale) * smoothing
	res.Intents = append(res.Intents, scene.Intent{
		Kind:  scene.IntentSetScale,
		Scale: s.CurrentScale,
	})
}

// targetScale maps a pinch distance onto the scale range by clamped
// linear interpolation.
func targetScale(pinch float64) float64 {
	if pinch < pinchMin {
		return scaleMin
	}
	if pinch > pinchMax {
		return scaleMax
	}
	return scaleMin + (pinch-pinchMin)*(scaleMax-scaleMin)/(pinchMax-pinchMin)
}

func objectCenter(obj scene.Object) geom.Point2D {
	return geom.Point2D{X: obj.Position.X, Y: obj.Position.Y}
}
