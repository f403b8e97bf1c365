package scene

import (
	"image/color"

	"github.com/iburimskiy/pixelswarm/internal/swarm"
)

// Canvas is everything a host has to provide to draw a scene.
type Canvas interface {
	swarm.Canvas
	Clear(c color.Color)
	StrokeRect(x, y, w, h float64, c color.Color)
	StrokeCircle(cx, cy, r float64, c color.Color)
	StrokeTriangle(a, b, c swarm.Vec, col color.Color)
}
