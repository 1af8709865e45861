package control

import (
	"time"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/scene"
)

const (
	// tapWindow is the maximum gap between two proximity frames for
	// them to count as a double tap.
	tapWindow = 300 * time.Millisecond

	// colorCooldown is the minimum interval between color changes.
	colorCooldown = 500 * time.Millisecond
)

// leftHand runs the proximity-gated color change and the double-tap
// rotation toggle. The two debounce timers are independent; both run
// on every frame where the index tip is near the object.
func (r *Router) leftHand(hand detector.Hand, obj scene.Object, now time.Time, res *Result) {
	s := r.state
	indexTip := hand.Points[detector.IndexTip]

	if !gesture.IsNearObject(indexTip, objectCenter(obj), obj.EffectiveRadius()) {
		return
	}

	// A second proximity frame inside the window toggles the idle
	// animation. Clearing the timestamp keeps a third frame from
	// toggling straight back.
	if !s.LastTap.IsZero() && now.Sub(s.LastTap) < tapWindow {
		s.RotationEnabled = !s.RotationEnabled
		s.LastTap = time.Time{}
		if s.RotationEnabled {
			res.Status = StatusRotationOn
		} else {
			res.Status = StatusRotationOff
		}
		res.Events = append(res.Events, Event{
			Type:   EventRotationToggle,
			Detail: map[string]any{"enabled": s.RotationEnabled},
		})
	} else {
		s.LastTap = now
	}

	if now.Sub(s.LastColorChange) > colorCooldown {
		color := scene.Palette[r.rng.Intn(len(scene.Palette))]
		s.LastColorChange = now
		res.Intents = append(res.Intents, scene.Intent{
			Kind:  scene.IntentSetColor,
			Color: color,
		})
		res.Events = append(res.Events, Event{
			Type:   EventColorChange,
			Detail: map[string]any{"color": color.Hex()},
		})
	}
}
