// Package scene owns the controlled object's transform and the
// particle feedback system. Controllers elsewhere compute intents; the
// Stage is the single mutation point that applies them, and the render
// tick advances idle animation and particle decay.
package scene

import (
	"math"
	"math/rand"
	"time"

	"gonum.org/v1/gonum/spatial/r3"
)

const (
	// rotationStep is the idle rotation advance per rendered frame.
	rotationStep = 0.005

	// breathAmplitude is the relative Y-scale swing of the breathing
	// animation.
	breathAmplitude = 0.05
)

// Stage holds the controlled object and its live particles. It is not
// safe for concurrent use; callers serialize access.
type Stage struct {
	object    Object
	particles []Particle
	start     time.Time
	rng       *rand.Rand
}

// Snapshot is a point-in-time copy of the stage for readers.
type Snapshot struct {
	Object    Object
	Particles []Particle
}

// NewStage creates a stage with the object at the origin, unit scale,
// and the first palette color.
func NewStage(now time.Time) *Stage {
	return &Stage{
		object: Object{
			Scale:  1.0,
			ScaleY: 1.0,
			Color:  Palette[0],
		},
		start: now,
		rng:   rand.New(rand.NewSource(now.UnixNano())),
	}
}

// Object returns a copy of the controlled object.
func (s *Stage) Object() Object {
	return s.object
}

// Snapshot returns a copy of the object and all live particles.
func (s *Stage) Snapshot() Snapshot {
	particles := make([]Particle, len(s.particles))
	copy(particles, s.particles)
	return Snapshot{
		Object:    s.object,
		Particles: particles,
	}
}

// ParticleCount returns the number of live particles.
func (s *Stage) ParticleCount() int {
	return len(s.particles)
}

// Apply materializes a batch of intents in order. The batch is the
// single mutation path for the object; callers decide intent ordering.
func (s *Stage) Apply(intents []Intent) {
	for _, intent := range intents {
		switch intent.Kind {
		case IntentMove:
			s.object.Position.X = intent.Pos.X
			s.object.Position.Y = intent.Pos.Y
		case IntentSetScale:
			s.object.Scale = intent.Scale
			s.object.ScaleY = intent.Scale
		case IntentSetColor:
			s.object.Color = intent.Color
			s.spawnBurst(s.object.Position, intent.Color)
		case IntentReset:
			s.object.Position = r3.Vec{}
			s.object.Scale = 1.0
			s.object.ScaleY = 1.0
			s.object.RotationY = 0
		}
	}
}

// Tick advances one rendered frame: idle rotation and breathing when
// animate is set, particle decay always.
func (s *Stage) Tick(now time.Time, animate bool) {
	if animate {
		s.object.RotationY += rotationStep
		elapsed := now.Sub(s.start).Seconds()
		s.object.ScaleY = s.object.Scale * (1 + breathAmplitude*math.Sin(elapsed))
	} else {
		s.object.ScaleY = s.object.Scale
	}
	s.tickParticles()
}
