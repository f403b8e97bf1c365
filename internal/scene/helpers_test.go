package scene_test

import (
	"image/color"
	"math/rand"

	"github.com/iburimskiy/pixelswarm/internal/config"
	"github.com/iburimskiy/pixelswarm/internal/log"
	"github.com/iburimskiy/pixelswarm/internal/scene"
	"github.com/iburimskiy/pixelswarm/internal/swarm"
)

type call struct {
	op   string
	args []float64
}

type recordingCanvas struct {
	calls []call
}

func (r *recordingCanvas) record(op string, args ...float64) {
	r.calls = append(r.calls, call{op: op, args: args})
}

func (r *recordingCanvas) Clear(color.Color) { r.record("clear") }

func (r *recordingCanvas) FillRect(x, y, w, h float64, _ color.Color) {
	r.record("fill", x, y, w, h)
}

func (r *recordingCanvas) StrokeRect(x, y, w, h float64, _ color.Color) {
	r.record("stroke", x, y, w, h)
}

func (r *recordingCanvas) StrokeCircle(cx, cy, rad float64, _ color.Color) {
	r.record("circle", cx, cy, rad)
}

func (r *recordingCanvas) StrokeTriangle(a, b, c swarm.Vec, _ color.Color) {
	r.record("triangle", a.X, a.Y, b.X, b.Y, c.X, c.Y)
}

func (r *recordingCanvas) count(op string) int {
	n := 0
	for _, c := range r.calls {
		if c.op == op {
			n++
		}
	}
	return n
}

func newScene(seed int64) *scene.Scene {
	opts, err := scene.OptionsFromConfig(config.DefaultConfig(), rand.New(rand.NewSource(seed)), log.Discard())
	if err != nil {
		panic(err)
	}
	return scene.New(opts)
}
