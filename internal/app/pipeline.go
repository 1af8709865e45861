package app

import (
	"encoding/json"
	"log"
	"time"

	"github.com/ayusman/mudra/internal/control"
	"github.com/ayusman/mudra/internal/detector"
	"github.com/ayusman/mudra/internal/metrics"
	"github.com/ayusman/mudra/internal/plugin"
	"github.com/ayusman/mudra/internal/store"
)

// runDetectLoop is the capture-side loop: it reads camera frames, gates
// them on motion, runs hand detection, and feeds the results through the
// control router.
//
// Loop logic:
//  1. Start at the idle capture rate.
//  2. On motion, switch to the active rate and start detecting hands.
//  3. Route every detected frame through ProcessFrame.
//  4. After 2s without motion, drop back to the idle rate; one empty
//     frame is routed on the way down so no drag survives the handoff.
func (a *App) runDetectLoop(stopCh <-chan struct{}) {
	activeMode := false
	lastMotionTime := time.Now()

	frameInterval := time.Second / time.Duration(a.config.IdleFPS)
	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			if !a.IsEnabled() {
				continue
			}

			frame, err := a.camera.ReadFrame()
			if err != nil {
				log.Printf("Error reading frame: %v", err)
				continue
			}

			motionDetected, _ := a.motion.Detect(frame)

			if motionDetected {
				lastMotionTime = time.Now()

				if !activeMode {
					activeMode = true
					a.camera.SetFPS(a.config.ActiveFPS)
					ticker.Reset(time.Second / time.Duration(a.config.ActiveFPS))
					if a.config.Debug {
						log.Println("Switched to active mode")
					}
				}
			} else if activeMode && time.Since(lastMotionTime) > time.Duration(IdleTimeoutMs)*time.Millisecond {
				activeMode = false
				a.camera.SetFPS(a.config.IdleFPS)
				ticker.Reset(time.Second / time.Duration(a.config.IdleFPS))
				// Route one empty frame so an in-progress drag is
				// abandoned rather than frozen until the next motion.
				a.ProcessFrame(detector.Frame{CapturedAt: time.Now()}, time.Now())
				if a.config.Debug {
					log.Println("Switched to idle mode")
				}
			}

			if !activeMode {
				frame.Close()
				continue
			}

			start := time.Now()
			hands, err := a.Detector().Detect(frame)
			frame.Close()

			if err != nil {
				metrics.RecordDetectError()
				log.Printf("Error detecting hands: %v", err)
				continue
			}

			a.ProcessFrame(detector.Frame{Hands: hands, CapturedAt: start}, time.Now())
			metrics.RecordFrameLatency(float64(time.Since(start).Milliseconds()))
		}
	}
}

// ProcessFrame routes one landmark frame through the control engine and
// applies the resulting intents to the stage. It is the single write
// path for gesture input, shared by the detect loop and by tests that
// feed frames directly.
func (a *App) ProcessFrame(frame detector.Frame, now time.Time) control.Result {
	metrics.RecordFrameProcessed()
	for i := range frame.Hands {
		metrics.RecordHandSeen(string(frame.Hands[i].Handedness))
	}

	a.sceneMu.Lock()
	res := a.router.Frame(frame, a.stage.Object(), now)
	a.stage.Apply(res.Intents)
	if res.Status != "" {
		a.status = res.Status
	}
	scale := a.router.State().CurrentScale
	a.sceneMu.Unlock()

	metrics.UpdateObjectScale(scale)
	a.fanOut(res)
	return res
}

// runTickLoop advances the scene animation at the configured tick rate.
func (a *App) runTickLoop(stopCh <-chan struct{}) {
	ticker := time.NewTicker(time.Second / time.Duration(a.config.TickRate))
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			a.Tick(time.Now())
		}
	}
}

// Tick advances the stage by one rendered frame: idle rotation and
// breathing while no drag is active and rotation is enabled, particle
// decay always.
func (a *App) Tick(now time.Time) {
	a.sceneMu.Lock()
	st := a.router.State()
	animate := !st.DragActive && st.RotationEnabled
	a.stage.Tick(now, animate)
	particles := a.stage.ParticleCount()
	a.sceneMu.Unlock()

	metrics.UpdateLiveParticles(particles)
}

// fanOut distributes a frame's status and events to the status callback,
// metrics, the journal, and subscribed plugins.
func (a *App) fanOut(res control.Result) {
	if res.Status != "" {
		a.mu.RLock()
		statusFn := a.statusFn
		a.mu.RUnlock()
		if statusFn != nil {
			statusFn(res.Status)
		}
		if a.config.Debug {
			log.Printf("Status: %s", res.Status)
		}
	}

	for _, ev := range res.Events {
		a.recordEventMetric(ev.Type)
		a.journalEvent(ev, res.Status)
		a.dispatchPlugins(ev, res.Status)
	}
}

func (a *App) recordEventMetric(t control.EventType) {
	switch t {
	case control.EventReset:
		metrics.RecordReset()
	case control.EventColorChange:
		metrics.RecordColorChange()
	case control.EventRotationToggle:
		metrics.RecordRotationToggle()
	case control.EventDragStart:
		metrics.RecordDragStart()
	}
}

// journalEvent appends a control event to the sqlite journal.
func (a *App) journalEvent(ev control.Event, status string) {
	if a.config.Store == nil {
		return
	}

	detail, err := json.Marshal(ev.Detail)
	if err != nil {
		detail = []byte("{}")
	}

	e := &store.Event{
		Type:   string(ev.Type),
		Status: status,
		Detail: detail,
	}
	if err := a.config.Store.Events().Append(e); err != nil {
		log.Printf("Failed to journal %s event: %v", ev.Type, err)
	}
}

// dispatchPlugins delivers a control event to every plugin whose
// manifest subscribes to it. Execution is fire-and-forget; a failing
// plugin only logs.
func (a *App) dispatchPlugins(ev control.Event, status string) {
	subscribers := a.pluginMgr.Subscribers(string(ev.Type))
	if len(subscribers) == 0 {
		return
	}

	detail, err := json.Marshal(ev.Detail)
	if err != nil {
		detail = []byte("{}")
	}

	req := &plugin.Request{
		Event:  string(ev.Type),
		Status: status,
		Detail: detail,
	}

	for _, p := range subscribers {
		go func(p *plugin.Plugin) {
			if _, err := a.pluginExec.Execute(p, req); err != nil {
				log.Printf("Plugin %s failed on %s: %v", p.Manifest.Name, ev.Type, err)
			}
		}(p)
	}
}
