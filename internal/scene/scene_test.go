package scene_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/iburimskiy/pixelswarm/internal/scene"
	"github.com/iburimskiy/pixelswarm/internal/swarm"
)

func pressButton(s *scene.Scene, i int) (swarm.Shape, bool) {
	c := s.Buttons()[i].Rect.Center()
	return s.Press(c.X, c.Y)
}

var _ = Describe("Scene", func() {
	var s *scene.Scene

	BeforeEach(func() {
		s = newScene(1)
	})

	Describe("construction", func() {
		It("starts idle with the default swarm", func() {
			Expect(s.State()).To(BeAssignableToTypeOf(&swarm.Idle{}))
			Expect(s.Swarm().Particles).To(HaveLen(200))
			Expect(s.Frame()).To(BeZero())
		})

		It("derives geometry from the canvas", func() {
			Expect(s.Center()).To(Equal(swarm.Vec{X: 300, Y: 300}))
			Expect(s.FrameRect()).To(Equal(swarm.RectXYWH(60, 60, 480, 480)))
			Expect(s.Radius()).To(BeNumerically("~", 160, 1e-9))
		})

		It("places particles inside the inset frame", func() {
			inner := s.FrameRect().Inset(10)
			for _, p := range s.Swarm().Particles {
				Expect(p.Rest().X).To(BeNumerically(">=", inner.Min.X))
				Expect(p.Rest().X).To(BeNumerically("<=", inner.Max.X))
				Expect(p.Rest().Y).To(BeNumerically(">=", inner.Min.Y))
				Expect(p.Rest().Y).To(BeNumerically("<=", inner.Max.Y))
			}
		})
	})

	Describe("input", func() {
		It("activates the pattern of the pressed button", func() {
			for i, want := range swarm.Shapes {
				shape, ok := pressButton(s, i)
				Expect(ok).To(BeTrue())
				Expect(shape).To(Equal(want))

				cong, isCong := s.State().(*swarm.Congregated)
				Expect(isCong).To(BeTrue())
				Expect(cong.Pattern().Shape()).To(Equal(want))
			}
		})

		It("ignores presses outside the buttons", func() {
			_, ok := s.Press(5, 5)
			Expect(ok).To(BeFalse())
			Expect(s.State()).To(BeAssignableToTypeOf(&swarm.Idle{}))
		})

		It("treats button borders as outside", func() {
			r := s.Buttons()[0].Rect
			_, ok := s.Press(r.Min.X, r.Min.Y+1)
			Expect(ok).To(BeFalse())
		})

		It("builds a fresh pattern on every activation", func() {
			pressButton(s, 1)
			first := s.State().(*swarm.Congregated).Pattern()
			pressButton(s, 1)
			second := s.State().(*swarm.Congregated).Pattern()
			Expect(second).NotTo(BeIdenticalTo(first))
		})

		It("releases back to idle with every particle returning", func() {
			pressButton(s, 0)
			s.Tick()
			s.Release()
			Expect(s.State()).To(BeAssignableToTypeOf(&swarm.Idle{}))
			for _, p := range s.Swarm().Particles {
				Expect(p.Returning).To(BeTrue())
			}
		})
	})

	Describe("circle congregation", func() {
		It("moves every particle 5% of the way to its orbit slot on the first frame", func() {
			before := s.Swarm().Positions()
			pressButton(s, 0)
			f := float64(s.Frame() + 1)
			s.Tick()

			for i, p := range s.Swarm().Particles {
				angle := p.Phase + 0.01*f
				target := swarm.Vec{
					X: 300 + s.Radius()*math.Cos(angle),
					Y: 300 + s.Radius()*math.Sin(angle),
				}
				want := before[i].Lerp(target, 0.05)
				Expect(p.Pos.X).To(BeNumerically("~", want.X, 1e-9))
				Expect(p.Pos.Y).To(BeNumerically("~", want.Y, 1e-9))
				Expect(p.Pos.Dist(target)).To(BeNumerically("<", before[i].Dist(target)))
			}
		})

		It("does not advance particle phases", func() {
			pressButton(s, 0)
			for i := 0; i < 10; i++ {
				s.Tick()
			}
			for i, p := range s.Swarm().Particles {
				Expect(p.Phase).To(BeNumerically("~", 2*math.Pi/200*float64(i), 1e-12))
			}
		})
	})

	Describe("pattern swap", func() {
		It("keeps positions when switching patterns without a release", func() {
			pressButton(s, 0)
			for i := 0; i < 30; i++ {
				s.Tick()
			}
			snapshot := s.Swarm().Positions()
			pressButton(s, 2)
			Expect(s.Swarm().Positions()).To(Equal(snapshot))
			for _, p := range s.Swarm().Particles {
				Expect(p.Returning).To(BeFalse())
			}
		})
	})

	Describe("release mid-congregation", func() {
		It("brings every particle back to rest in finitely many frames", func() {
			pressButton(s, 1)
			// about half way to the square
			for i := 0; i < 14; i++ {
				s.Tick()
			}
			Expect(s.Swarm().MeanRestDistance()).To(BeNumerically(">", 1))
			s.Release()

			frames := 0
			for !s.Swarm().Settled() && frames < 1000 {
				s.Tick()
				frames++
			}
			Expect(s.Swarm().Settled()).To(BeTrue())
			// back home, vibrating within the jitter amplitude
			for _, p := range s.Swarm().Particles {
				Expect(p.Pos.X).To(BeNumerically("~", p.Rest().X, 2))
				Expect(p.Pos.Y).To(BeNumerically("~", p.Rest().Y, 2))
			}
		})
	})

	Describe("drawing", func() {
		It("draws background, border, particles and buttons", func() {
			c := &recordingCanvas{}
			s.Draw(c)

			Expect(c.calls[0].op).To(Equal("clear"))
			Expect(c.calls[1]).To(Equal(call{op: "stroke", args: []float64{60, 60, 480, 480}}))
			// particles plus one fill per button
			Expect(c.count("fill")).To(Equal(200 + 3))
			Expect(c.count("circle")).To(Equal(1))
			Expect(c.count("triangle")).To(Equal(1))
			// border, three button outlines and the square icon
			Expect(c.count("stroke")).To(Equal(1 + 3 + 1))
		})

		It("draws buttons exactly where they are hit tested", func() {
			c := &recordingCanvas{}
			s.Draw(c)

			var outlines [][]float64
			for _, cl := range c.calls[1:] {
				if cl.op == "stroke" && cl.args[2] == 50 {
					outlines = append(outlines, cl.args)
				}
			}
			Expect(outlines).To(HaveLen(3))
			for i, b := range s.Buttons() {
				Expect(outlines[i]).To(Equal([]float64{b.Rect.Min.X, b.Rect.Min.Y, 50, 50}))
			}
		})

		It("clamps the border pulse", func() {
			s.SetPulse(4)
			Expect(func() { s.Draw(&recordingCanvas{}) }).NotTo(Panic())
		})
	})

	It("reports a status line", func() {
		pressButton(s, 2)
		s.Tick()
		Expect(s.Status()).To(Equal("frame 1 | congregated:triangle | 200 particles"))
	})
})

var _ = Describe("Settle", func() {
	It("records a shrinking trace that ends at rest", func() {
		s := newScene(7)
		trace, ok := s.Settle(swarm.ShapeTriangle, 60, 1000)

		Expect(ok).To(BeTrue())
		Expect(len(trace)).To(BeNumerically(">", 2))
		Expect(trace[0]).To(BeNumerically(">", 1))
		Expect(trace[len(trace)-1]).To(BeNumerically("<=", 2*math.Sqrt2))
		Expect(trace[len(trace)-1]).To(BeNumerically("<", trace[0]))
		Expect(s.State()).To(BeAssignableToTypeOf(&swarm.Idle{}))
		Expect(s.Frame()).To(Equal(60 + len(trace) - 1))
	})

	It("gives up after the limit", func() {
		s := newScene(7)
		trace, ok := s.Settle(swarm.ShapeCircle, 60, 3)

		Expect(ok).To(BeFalse())
		Expect(trace).To(HaveLen(4))
	})
})
