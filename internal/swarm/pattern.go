package swarm

import (
	"fmt"
	"math"
	"strings"
)

const twoPi = 2 * math.Pi

type Shape int

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeTriangle
)

// Shapes lists every shape in button order.
var Shapes = []Shape{ShapeCircle, ShapeSquare, ShapeTriangle}

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeTriangle:
		return "triangle"
	default:
		return fmt.Sprintf("shape(%d)", int(s))
	}
}

func ParseShape(name string) (Shape, error) {
	for _, s := range Shapes {
		if strings.EqualFold(name, s.String()) {
			return s, nil
		}
	}
	return 0, fmt.Errorf("unknown shape %q", name)
}

// Pattern maps a particle to its target point on a perimeter for a frame.
type Pattern interface {
	TargetFor(p *Particle, frame int) Vec
	Shape() Shape
}

// NewPattern builds a fresh pattern of the given shape. Polygon vertices are
// computed here and nowhere else.
func NewPattern(shape Shape, center Vec, radius, step float64) Pattern {
	switch shape {
	case ShapeSquare:
		return NewSquare(center, radius, step)
	case ShapeTriangle:
		return NewTriangle(center, radius, step)
	default:
		return NewCircle(center, radius, step)
	}
}

// CirclePattern rotates every particle in lockstep. The particle phase is
// read, never written: rotation comes from the frame counter alone.
type CirclePattern struct {
	Center Vec
	Radius float64
	Speed  float64
}

func NewCircle(center Vec, radius, speed float64) *CirclePattern {
	return &CirclePattern{Center: center, Radius: radius, Speed: speed}
}

func (c *CirclePattern) Shape() Shape { return ShapeCircle }

func (c *CirclePattern) TargetFor(p *Particle, frame int) Vec {
	angle := p.Phase + float64(frame)*c.Speed
	return Vec{
		X: c.Center.X + c.Radius*math.Cos(angle),
		Y: c.Center.Y + c.Radius*math.Sin(angle),
	}
}

// PolygonPattern walks a closed polygon. Unlike CirclePattern it advances
// each particle's own phase by Step per call and ignores the frame counter.
type PolygonPattern struct {
	Radius float64
	Step   float64

	shape     Shape
	vertices  []Vec
	perimeter float64
}

// NewSquare builds an axis-aligned square with half-side radius, corners
// clockwise from top-left.
func NewSquare(center Vec, radius, step float64) *PolygonPattern {
	return &PolygonPattern{
		Radius: radius,
		Step:   step,
		shape:  ShapeSquare,
		vertices: []Vec{
			{center.X - radius, center.Y - radius},
			{center.X + radius, center.Y - radius},
			{center.X + radius, center.Y + radius},
			{center.X - radius, center.Y + radius},
		},
		perimeter: radius * 8,
	}
}

// NewTriangle builds an equilateral triangle inscribed in a circle of the
// given radius, apex up and base flat.
func NewTriangle(center Vec, radius, step float64) *PolygonPattern {
	dx := radius * math.Sin(math.Pi/3)
	return &PolygonPattern{
		Radius: radius,
		Step:   step,
		shape:  ShapeTriangle,
		vertices: []Vec{
			{center.X, center.Y - radius},
			{center.X - dx, center.Y + radius/2},
			{center.X + dx, center.Y + radius/2},
		},
		perimeter: radius * 3 * math.Sqrt(3),
	}
}

func (pp *PolygonPattern) Shape() Shape { return pp.shape }

func (pp *PolygonPattern) Vertices() []Vec {
	return append([]Vec(nil), pp.vertices...)
}

func (pp *PolygonPattern) Perimeter() float64 { return pp.perimeter }

func (pp *PolygonPattern) TargetFor(p *Particle, _ int) Vec {
	p.Phase += pp.Step
	return pp.Walk(p.Phase)
}

// Walk maps a phase angle to a point on the perimeter. One full turn of
// phase covers the whole perimeter once.
func (pp *PolygonPattern) Walk(phase float64) Vec {
	from, to, frac := pp.edgeAt(phase)
	return from.Lerp(to, frac)
}

func (pp *PolygonPattern) edgeAt(phase float64) (Vec, Vec, float64) {
	sides := len(pp.vertices)
	if pp.perimeter <= 0 {
		return pp.vertices[0], pp.vertices[0], 0
	}
	edgeLen := pp.perimeter / float64(sides)

	phase = math.Mod(phase, twoPi)
	if phase < 0 {
		phase += twoPi
	}
	cur := phase / twoPi * pp.perimeter
	edge := int(math.Floor(cur / edgeLen))
	frac := math.Mod(cur, edgeLen) / edgeLen

	return pp.vertices[edge%sides], pp.vertices[(edge+1)%sides], frac
}
