package swarm

import (
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Rand is the uniform source used for placement and jitter.
// *math/rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Canvas is the drawing surface particles render onto.
type Canvas interface {
	FillRect(x, y, w, h float64, c color.Color)
}

type Particle struct {
	Pos       Vec
	Color     colorful.Color
	Phase     float64
	Returning bool

	rest Vec
}

func NewParticle(rest Vec, c colorful.Color, phase float64) *Particle {
	return &Particle{
		Pos:   rest,
		Color: c,
		Phase: phase,
		rest:  rest,
	}
}

func (p *Particle) Rest() Vec { return p.rest }

// Jitter places the particle within amp of its rest position on each axis.
// It does nothing while the particle is returning.
func (p *Particle) Jitter(rng Rand, amp float64) {
	if p.Returning {
		return
	}
	p.Pos = Vec{
		X: p.rest.X + uniform(rng, -amp, amp),
		Y: p.rest.Y + uniform(rng, -amp, amp),
	}
}

// ReturnToRest closes factor of the remaining distance to the rest position.
// Once closer than snap, the particle lands exactly on rest and stops
// returning. It reports whether the particle has settled.
func (p *Particle) ReturnToRest(factor, snap float64) bool {
	p.Pos = p.Pos.Lerp(p.rest, factor)
	if p.Pos.Dist(p.rest) < snap {
		p.Pos = p.rest
		p.Returning = false
	}
	return !p.Returning
}

func (p *Particle) MoveToward(target Vec, factor float64) {
	p.Pos = p.Pos.Lerp(target, factor)
}

func (p *Particle) Render(c Canvas, size float64) {
	c.FillRect(p.Pos.X, p.Pos.Y, size, size, p.Color)
}

func uniform(rng Rand, lo, hi float64) float64 {
	return lo + (hi-lo)*rng.Float64()
}
