package swarm

// State is the per-frame behavior applied to the whole swarm.
type State interface {
	Update(frame int)
	Display(c Canvas)
	Name() string
}

type base struct {
	swarm *Swarm
}

func (b base) Display(c Canvas) { b.swarm.display(c) }

// Idle vibrates particles around their rest positions and carries
// returning particles home.
type Idle struct {
	base
}

func NewIdle(s *Swarm) *Idle {
	return &Idle{base{swarm: s}}
}

func (i *Idle) Name() string { return "idle" }

func (i *Idle) Update(int) {
	m := i.swarm.Motion
	for _, p := range i.swarm.Particles {
		if p.Returning {
			p.ReturnToRest(m.Return, m.Snap)
		} else {
			p.Jitter(i.swarm.rng, m.Jitter)
		}
	}
}

// Congregated pulls every particle toward its target on a pattern.
type Congregated struct {
	base
	pattern Pattern
}

func NewCongregated(s *Swarm, p Pattern) *Congregated {
	return &Congregated{base: base{swarm: s}, pattern: p}
}

func (c *Congregated) Name() string { return "congregated:" + c.pattern.Shape().String() }

func (c *Congregated) Pattern() Pattern { return c.pattern }

func (c *Congregated) Update(frame int) {
	f := c.swarm.Motion.Approach
	for _, p := range c.swarm.Particles {
		p.MoveToward(c.pattern.TargetFor(p, frame), f)
	}
}
