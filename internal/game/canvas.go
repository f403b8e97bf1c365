package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/pixelswarm/internal/scene"
	"github.com/iburimskiy/pixelswarm/internal/swarm"
)

const strokeWidth = 1

// screenCanvas draws a scene straight onto the ebiten screen image.
type screenCanvas struct {
	screen *ebiten.Image
}

var _ scene.Canvas = screenCanvas{}

func (c screenCanvas) Clear(col color.Color) {
	c.screen.Fill(col)
}

func (c screenCanvas) FillRect(x, y, w, h float64, col color.Color) {
	vector.DrawFilledRect(c.screen, float32(x), float32(y), float32(w), float32(h), col, false)
}

func (c screenCanvas) StrokeRect(x, y, w, h float64, col color.Color) {
	vector.StrokeRect(c.screen, float32(x), float32(y), float32(w), float32(h), strokeWidth, col, false)
}

func (c screenCanvas) StrokeCircle(cx, cy, r float64, col color.Color) {
	vector.StrokeCircle(c.screen, float32(cx), float32(cy), float32(r), strokeWidth, col, true)
}

func (c screenCanvas) StrokeTriangle(a, b, d swarm.Vec, col color.Color) {
	pts := [3]swarm.Vec{a, b, d}
	for i := range pts {
		p, q := pts[i], pts[(i+1)%3]
		vector.StrokeLine(c.screen, float32(p.X), float32(p.Y), float32(q.X), float32(q.Y), strokeWidth, col, true)
	}
}
