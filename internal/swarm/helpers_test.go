package swarm

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"
)

type recordingCanvas struct {
	rects  [][4]float64
	colors []color.Color
}

func (r *recordingCanvas) FillRect(x, y, w, h float64, c color.Color) {
	r.rects = append(r.rects, [4]float64{x, y, w, h})
	r.colors = append(r.colors, c)
}

var testPalette = []colorful.Color{
	{R: 1, G: 0.72, B: 0.01},
	{R: 0.98, G: 0.52, B: 0},
}

func newTestSwarm(n int, seed int64) *Swarm {
	bounds := RectXYWH(70, 70, 460, 460)
	return New(n, bounds, testPalette, rand.New(rand.NewSource(seed)), DefaultMotion(), 4)
}

// onSegment reports whether q lies on segment ab within eps.
func onSegment(q, a, b Vec, eps float64) bool {
	ab := b.Sub(a)
	aq := q.Sub(a)
	cross := ab.X*aq.Y - ab.Y*aq.X
	if math.Abs(cross) > eps*math.Hypot(ab.X, ab.Y) {
		return false
	}
	l2 := ab.X*ab.X + ab.Y*ab.Y
	t := (aq.X*ab.X + aq.Y*ab.Y) / l2
	return t >= -eps && t <= 1+eps
}
