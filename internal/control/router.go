// Package control interprets landmark frames as gestures and turns
// them into scene intents. The router assigns each detected hand an
// asymmetric role: the right hand drags and scales the object, the
// left hand recolors it and toggles the idle animation, and a frame
// with both hands fisted resets the scene.
package control

import (
	"math/rand"
	"time"

	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/geom"
	"github.com/ayusman/mudra/internal/gesture"
	"github.com/ayusman/mudra/internal/scene"
)

// Result is the per-frame output of the router: the intents for the
// stage to apply in order, an optional status line, and the discrete
// events the frame produced.
type Result struct {
	Intents []scene.Intent
	Status  string
	Events  []Event
}

// Router turns landmark frames into scene intents against a State.
// Not safe for concurrent use; the caller serializes frames.
type Router struct {
	state *State
	rng   *rand.Rand
}

// NewRouter creates a router operating on the given session state.
func NewRouter(state *State) *Router {
	return &Router{
		state: state,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// State returns the session state the router mutates.
func (r *Router) State() *State {
	return r.state
}

// Frame processes one landmark frame against the current object view.
// Intents in the result are ordered right hand before left hand; the
// left hand's proximity tests already see the right hand's pending
// intents, so applying the batch in order reproduces direct-write
// semantics.
func (r *Router) Frame(frame detector.Frame, obj scene.Object, now time.Time) Result {
	var res Result

	if len(frame.Hands) == 0 {
		if r.state.DragActive {
			r.state.DragActive = false
			res.Events = append(res.Events, Event{
				Type:   EventDragStop,
				Detail: map[string]any{"cause": "hands_lost"},
			})
		}
		res.Status = StatusNoHands
		return res
	}

	left, right := splitHands(frame.Hands)

	// A two-fist frame resets the scene and processes nothing else.
	if left != nil && right != nil && gesture.IsFist(*left) && gesture.IsFist(*right) {
		r.resetState()
		res.Intents = append(res.Intents, scene.Intent{Kind: scene.IntentReset})
		res.Status = StatusReset
		res.Events = append(res.Events, Event{Type: EventReset})
		return res
	}

	if right != nil {
		r.rightHand(*right, obj, &res)
	}
	if left != nil {
		r.leftHand(*left, patchObject(obj, res.Intents), now, &res)
	}

	return res
}

// splitHands assigns at most one hand per handedness label. When the
// detector reports two hands with the same label, the first wins and
// the rest are ignored. Hands with an unknown label are dropped.
func splitHands(hands []detector.Hand) (left, right *detector.Hand) {
	for i := range hands {
		switch hands[i].Handedness {
		case detector.Left:
			if left == nil {
				left = &hands[i]
			}
		case detector.Right:
			if right == nil {
				right = &hands[i]
			}
		}
	}
	return left, right
}

// patchObject folds pending intents into a copy of the object view, so
// a controller running later in the frame sees the positions and
// scales already produced by an earlier one.
func patchObject(obj scene.Object, intents []scene.Intent) scene.Object {
	for _, intent := range intents {
		switch intent.Kind {
		case scene.IntentMove:
			obj.Position.X = intent.Pos.X
			obj.Position.Y = intent.Pos.Y
		case scene.IntentSetScale:
			obj.Scale = intent.Scale
		}
	}
	return obj
}

// resetState returns the session state to its initial values. The
// debounce timestamps deliberately survive: reset restores the scene,
// not the left hand's timers.
func (r *Router) resetState() {
	s := r.state
	s.DragActive = false
	s.DragAnchor = geom.Point2D{}
	s.ObjectAnchor = geom.Point2D{}
	s.CurrentScale = 1.0
	s.TargetScale = 1.0
	s.RotationEnabled = true
}
