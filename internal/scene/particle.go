package scene

import "gonum.org/v1/gonum/spatial/r3"

const (
	// burstCount is the number of particles spawned per color change.
	burstCount = 20

	// particleDecay is the lifetime removed per tick. One tick is one
	// rendered frame, nominally 1/60s.
	particleDecay = 1.0 / 60.0

	// velocitySpread is the width of the uniform velocity range per axis.
	velocitySpread = 0.1

	// lifeMin is the minimum starting lifetime in seconds; lifetimes
	// are sampled uniformly from [lifeMin, lifeMin+1).
	lifeMin = 1.0
)

// Particle is one short-lived feedback particle. Life counts down in
// seconds; Alpha is derived from Life each tick.
type Particle struct {
	Position r3.Vec
	Velocity r3.Vec
	Life     float64
	Color    RGB
	Alpha    float64
}

// spawnBurst appends a burst of particles at pos, all carrying color,
// with per-axis velocities sampled uniformly from the spread range.
func (s *Stage) spawnBurst(pos r3.Vec, color RGB) {
	for i := 0; i < burstCount; i++ {
		s.particles = append(s.particles, Particle{
			Position: pos,
			Velocity: r3.Vec{
				X: (s.rng.Float64() - 0.5) * velocitySpread,
				Y: (s.rng.Float64() - 0.5) * velocitySpread,
				Z: (s.rng.Float64() - 0.5) * velocitySpread,
			},
			Life:  lifeMin + s.rng.Float64(),
			Color: color,
			Alpha: 1.0,
		})
	}
}

// tickParticles advances every live particle by one frame and drops
// the expired ones in place.
func (s *Stage) tickParticles() {
	live := s.particles[:0]
	for _, p := range s.particles {
		p.Position = r3.Add(p.Position, p.Velocity)
		p.Life -= particleDecay
		if p.Life <= 0 {
			continue
		}
		p.Alpha = clamp01(p.Life)
		live = append(live, p)
	}
	s.particles = live
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
