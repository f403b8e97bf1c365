package swarm

import "github.com/lucasb-eyer/go-colorful"

// Motion holds the interpolation and jitter tuning shared by all states.
type Motion struct {
	Jitter   float64
	Return   float64
	Approach float64
	Snap     float64
	Step     float64
}

func DefaultMotion() Motion {
	return Motion{
		Jitter:   2,
		Return:   0.1,
		Approach: 0.05,
		Snap:     1,
		Step:     0.01,
	}
}

// Swarm is the particle collection shared between the scene and whichever
// state is active.
type Swarm struct {
	Particles []*Particle
	Motion    Motion
	PixelSize float64

	rng Rand
}

// New scatters n particles uniformly inside bounds with a random palette
// color each. Phases are spread evenly around the circle by index.
func New(n int, bounds Rect, palette []colorful.Color, rng Rand, motion Motion, pixelSize float64) *Swarm {
	s := &Swarm{
		Particles: make([]*Particle, 0, n),
		Motion:    motion,
		PixelSize: pixelSize,
		rng:       rng,
	}
	for i := 0; i < n; i++ {
		rest := Vec{
			X: uniform(rng, bounds.Min.X, bounds.Max.X),
			Y: uniform(rng, bounds.Min.Y, bounds.Max.Y),
		}
		var c colorful.Color
		if len(palette) > 0 {
			c = palette[int(rng.Float64()*float64(len(palette)))%len(palette)]
		}
		s.Particles = append(s.Particles, NewParticle(rest, c, twoPi/float64(n)*float64(i)))
	}
	return s
}

// Release marks every particle as returning to rest.
func (s *Swarm) Release() {
	for _, p := range s.Particles {
		p.Returning = true
	}
}

// Settled reports whether no particle is still returning.
func (s *Swarm) Settled() bool {
	for _, p := range s.Particles {
		if p.Returning {
			return false
		}
	}
	return true
}

// MeanRestDistance is the average distance of particles from their rest
// positions.
func (s *Swarm) MeanRestDistance() float64 {
	if len(s.Particles) == 0 {
		return 0
	}
	var sum float64
	for _, p := range s.Particles {
		sum += p.Pos.Dist(p.rest)
	}
	return sum / float64(len(s.Particles))
}

// Positions copies the current particle positions.
func (s *Swarm) Positions() []Vec {
	out := make([]Vec, len(s.Particles))
	for i, p := range s.Particles {
		out[i] = p.Pos
	}
	return out
}

func (s *Swarm) display(c Canvas) {
	for _, p := range s.Particles {
		p.Render(c, s.PixelSize)
	}
}
