package scene

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/pixelswarm/internal/config"
	"github.com/iburimskiy/pixelswarm/internal/log"
	"github.com/iburimskiy/pixelswarm/internal/swarm"
)

var (
	buttonFill  = colorful.Color{}
	hoverFill   = colorful.Color{R: 0.05, G: 0.2, B: 0.2}
	pulseTarget = colorful.Color{R: 1, G: 1, B: 1}
)

type Options struct {
	Width, Height int
	Particles     int

	Palette    []colorful.Color
	Background colorful.Color
	Frame      colorful.Color

	Motion        swarm.Motion
	PixelSize     float64
	FrameRatio    float64
	FrameInset    float64
	RadiusDivisor float64
	Buttons       ButtonLayout

	Rand   swarm.Rand
	Logger *log.Logger
}

// OptionsFromConfig resolves colors and geometry from a validated config.
func OptionsFromConfig(cfg *config.Config, rng swarm.Rand, logger *log.Logger) (Options, error) {
	palette, err := cfg.Palette()
	if err != nil {
		return Options{}, err
	}
	bg, frame, err := cfg.FrameColors()
	if err != nil {
		return Options{}, err
	}
	w, h := cfg.CanvasSize()
	return Options{
		Width:      w,
		Height:     h,
		Particles:  cfg.Particles,
		Palette:    palette,
		Background: bg,
		Frame:      frame,
		Motion: swarm.Motion{
			Jitter:   cfg.Motion.Jitter,
			Return:   cfg.Motion.Return,
			Approach: cfg.Motion.Approach,
			Snap:     cfg.Motion.Snap,
			Step:     cfg.Motion.Step,
		},
		PixelSize:     cfg.Geometry.PixelSize,
		FrameRatio:    cfg.Geometry.FrameRatio,
		FrameInset:    cfg.Geometry.FrameInset,
		RadiusDivisor: cfg.Geometry.RadiusDivisor,
		Buttons: ButtonLayout{
			Size:    cfg.Buttons.Size,
			Spacing: cfg.Buttons.Spacing,
			OffsetY: cfg.Buttons.OffsetY,
		},
		Rand:   rng,
		Logger: logger,
	}, nil
}

// Scene owns the swarm, the active state and the frame counter. It is
// mutated only through Tick and the input methods.
type Scene struct {
	opts   Options
	logger *log.Logger

	swarm *swarm.Swarm
	state swarm.State
	frame int

	frameRect swarm.Rect
	center    swarm.Vec
	radius    float64
	buttons   []Button
	hovered   int
	pulse     float64
}

func New(opts Options) *Scene {
	w, h := float64(opts.Width), float64(opts.Height)
	frameRect := FrameRect(w, h, opts.FrameRatio)

	s := &Scene{
		opts:      opts,
		logger:    opts.Logger,
		frameRect: frameRect,
		center:    swarm.Vec{X: w / 2, Y: h / 2},
		radius:    frameRect.W() / opts.RadiusDivisor,
		buttons:   Buttons(w, h, opts.Buttons),
		hovered:   -1,
	}
	s.swarm = swarm.New(opts.Particles, frameRect.Inset(opts.FrameInset), opts.Palette, opts.Rand, opts.Motion, opts.PixelSize)
	s.state = swarm.NewIdle(s.swarm)
	s.logger.Debugf("scene %dx%d with %d particles, path radius %.1f", opts.Width, opts.Height, opts.Particles, s.radius)
	return s
}

func (s *Scene) Swarm() *swarm.Swarm   { return s.swarm }
func (s *Scene) State() swarm.State    { return s.state }
func (s *Scene) Frame() int            { return s.frame }
func (s *Scene) Center() swarm.Vec     { return s.center }
func (s *Scene) Radius() float64       { return s.radius }
func (s *Scene) FrameRect() swarm.Rect { return s.frameRect }
func (s *Scene) Buttons() []Button     { return s.buttons }
func (s *Scene) Size() (int, int)      { return s.opts.Width, s.opts.Height }

// Tick advances the frame counter and updates the active state with it.
func (s *Scene) Tick() {
	s.frame++
	s.state.Update(s.frame)
}

// Activate switches to a congregated state on a fresh pattern. Particle
// positions are left alone, so swapping patterns mid-flight is smooth.
func (s *Scene) Activate(shape swarm.Shape) {
	pattern := swarm.NewPattern(shape, s.center, s.radius, s.opts.Motion.Step)
	prev := s.state.Name()
	s.state = swarm.NewCongregated(s.swarm, pattern)
	s.logger.Debugf("frame %d: %s -> %s", s.frame, prev, s.state.Name())
}

// Press routes a pointer press. It reports the activated shape, if any.
func (s *Scene) Press(x, y float64) (swarm.Shape, bool) {
	i := HitTest(s.buttons, swarm.Vec{X: x, Y: y})
	if i < 0 {
		return 0, false
	}
	shape := s.buttons[i].Shape
	s.Activate(shape)
	return shape, true
}

// Release sends every particle home and drops back to idle. Any pointer
// release does this, whether or not the press hit a button.
func (s *Scene) Release() {
	prev := s.state.Name()
	s.swarm.Release()
	s.state = swarm.NewIdle(s.swarm)
	s.logger.Debugf("frame %d: %s -> %s (release)", s.frame, prev, s.state.Name())
}

// Hover records which button, if any, is under the pointer.
func (s *Scene) Hover(x, y float64) {
	s.hovered = HitTest(s.buttons, swarm.Vec{X: x, Y: y})
}

// SetPulse brightens the frame border; level is clamped to [0,1].
func (s *Scene) SetPulse(level float64) {
	s.pulse = max(0, min(1, level))
}

func (s *Scene) Status() string {
	return fmt.Sprintf("frame %d | %s | %d particles", s.frame, s.state.Name(), len(s.swarm.Particles))
}

func (s *Scene) Draw(c Canvas) {
	c.Clear(s.opts.Background)

	border := s.opts.Frame
	if s.pulse > 0 {
		border = border.BlendLab(pulseTarget, s.pulse*0.6).Clamped()
	}
	r := s.frameRect
	c.StrokeRect(r.Min.X, r.Min.Y, r.W(), r.H(), border)

	s.state.Display(c)
	s.drawButtons(c)
}

func (s *Scene) drawButtons(c Canvas) {
	stroke := s.opts.Frame
	for i, b := range s.buttons {
		var fill color.Color = buttonFill
		if i == s.hovered {
			fill = hoverFill
		}
		r := b.Rect
		size := r.W()
		c.FillRect(r.Min.X, r.Min.Y, size, size, fill)
		c.StrokeRect(r.Min.X, r.Min.Y, size, size, stroke)

		switch b.Shape {
		case swarm.ShapeCircle:
			ctr := r.Center()
			c.StrokeCircle(ctr.X, ctr.Y, size/4, stroke)
		case swarm.ShapeSquare:
			c.StrokeRect(r.Min.X+size/4, r.Min.Y+size/4, size/2, size/2, stroke)
		case swarm.ShapeTriangle:
			c.StrokeTriangle(
				swarm.Vec{X: r.Min.X + size/2, Y: r.Min.Y + size/4},
				swarm.Vec{X: r.Min.X + size/4, Y: r.Min.Y + 3*size/4},
				swarm.Vec{X: r.Min.X + 3*size/4, Y: r.Min.Y + 3*size/4},
				stroke,
			)
		}
	}
}

// Settle holds shape for hold frames, releases, and records the mean
// distance from rest after every idle frame until the swarm is at rest or
// limit frames have passed. The first entry is the distance at release.
func (s *Scene) Settle(shape swarm.Shape, hold, limit int) ([]float64, bool) {
	s.Activate(shape)
	for i := 0; i < hold; i++ {
		s.Tick()
	}
	s.Release()

	trace := []float64{s.swarm.MeanRestDistance()}
	for i := 0; i < limit && !s.swarm.Settled(); i++ {
		s.Tick()
		trace = append(trace, s.swarm.MeanRestDistance())
	}
	return trace, s.swarm.Settled()
}
