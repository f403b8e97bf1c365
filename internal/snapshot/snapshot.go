// Package snapshot renders a scene frame to SVG.
package snapshot

import (
	"image/color"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/iburimskiy/pixelswarm/internal/scene"
	"github.com/iburimskiy/pixelswarm/internal/swarm"
)

// Canvas draws onto an SVG document. Coordinates are rounded to whole
// units, which is what svgo emits.
type Canvas struct {
	svg           *svg.SVG
	width, height int
}

var _ scene.Canvas = (*Canvas)(nil)

func NewCanvas(w io.Writer, width, height int) *Canvas {
	c := &Canvas{svg: svg.New(w), width: width, height: height}
	c.svg.Start(width, height)
	return c
}

func (c *Canvas) Close() { c.svg.End() }

func (c *Canvas) Clear(col color.Color) {
	c.svg.Rect(0, 0, c.width, c.height, "fill:"+hex(col))
}

func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	c.svg.Rect(round(x), round(y), round(w), round(h), "fill:"+hex(col))
}

func (c *Canvas) StrokeRect(x, y, w, h float64, col color.Color) {
	c.svg.Rect(round(x), round(y), round(w), round(h), stroke(col))
}

func (c *Canvas) StrokeCircle(cx, cy, r float64, col color.Color) {
	c.svg.Circle(round(cx), round(cy), round(r), stroke(col))
}

func (c *Canvas) StrokeTriangle(a, b, d swarm.Vec, col color.Color) {
	xs := []int{round(a.X), round(b.X), round(d.X)}
	ys := []int{round(a.Y), round(b.Y), round(d.Y)}
	c.svg.Polygon(xs, ys, stroke(col))
}

// Write renders the current frame of s as a complete SVG document.
func Write(w io.Writer, s *scene.Scene) error {
	ew := &errWriter{w: w}
	width, height := s.Size()
	c := NewCanvas(ew, width, height)
	s.Draw(c)
	c.Close()
	return ew.err
}

type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return len(p), nil
	}
	if _, err := e.w.Write(p); err != nil {
		e.err = err
	}
	return len(p), nil
}

func stroke(col color.Color) string {
	return "fill:none;stroke-width:1;stroke:" + hex(col)
}

func hex(col color.Color) string {
	cf, _ := colorful.MakeColor(col)
	return cf.Clamped().Hex()
}

func round(v float64) int {
	return int(math.Round(v))
}
