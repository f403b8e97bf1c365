package scene

import "github.com/iburimskiy/pixelswarm/internal/swarm"

// ButtonLayout sizes the control strip along the bottom edge.
type ButtonLayout struct {
	Size    float64
	Spacing float64
	OffsetY float64
}

type Button struct {
	Shape swarm.Shape
	Rect  swarm.Rect
}

// Buttons is the only place button geometry is computed. Rendering and hit
// testing both go through it.
func Buttons(w, h float64, l ButtonLayout) []Button {
	startX := w/2 - (1.5*l.Size + l.Spacing)
	startY := h - l.OffsetY

	out := make([]Button, len(swarm.Shapes))
	for i, shape := range swarm.Shapes {
		x := startX + float64(i)*(l.Size+l.Spacing)
		out[i] = Button{Shape: shape, Rect: swarm.RectXYWH(x, startY, l.Size, l.Size)}
	}
	return out
}

// HitTest returns the index of the button containing p, or -1.
func HitTest(buttons []Button, p swarm.Vec) int {
	for i, b := range buttons {
		if b.Rect.Contains(p) {
			return i
		}
	}
	return -1
}

// FrameRect is the square border centered on the canvas.
func FrameRect(w, h, ratio float64) swarm.Rect {
	size := min(w, h) * ratio
	return swarm.RectXYWH((w-size)/2, (h-size)/2, size, size)
}
