package swarm

import "math"

type Vec struct {
	X, Y float64
}

func (v Vec) Add(o Vec) Vec       { return Vec{v.X + o.X, v.Y + o.Y} }
func (v Vec) Sub(o Vec) Vec       { return Vec{v.X - o.X, v.Y - o.Y} }
func (v Vec) Scale(k float64) Vec { return Vec{v.X * k, v.Y * k} }
func (v Vec) Dist(o Vec) float64  { return math.Hypot(v.X-o.X, v.Y-o.Y) }
func (v Vec) Angle() float64      { return math.Atan2(v.Y, v.X) }
func (v Vec) Lerp(o Vec, t float64) Vec {
	return Vec{lerp(v.X, o.X, t), lerp(v.Y, o.Y, t)}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	Min, Max Vec
}

func RectXYWH(x, y, w, h float64) Rect {
	return Rect{Min: Vec{x, y}, Max: Vec{x + w, y + h}}
}

func (r Rect) W() float64 { return r.Max.X - r.Min.X }
func (r Rect) H() float64 { return r.Max.Y - r.Min.Y }

func (r Rect) Center() Vec {
	return Vec{(r.Min.X + r.Max.X) / 2, (r.Min.Y + r.Max.Y) / 2}
}

// Contains reports strict containment; points on the border are outside.
func (r Rect) Contains(p Vec) bool {
	return p.X > r.Min.X && p.X < r.Max.X && p.Y > r.Min.Y && p.Y < r.Max.Y
}

// Inset shrinks the rectangle by d on every side.
func (r Rect) Inset(d float64) Rect {
	return Rect{Min: Vec{r.Min.X + d, r.Min.Y + d}, Max: Vec{r.Max.X - d, r.Max.Y - d}}
}

func (r Rect) Overlaps(o Rect) bool {
	return r.Min.X < o.Max.X && o.Min.X < r.Max.X && r.Min.Y < o.Max.Y && o.Min.Y < r.Max.Y
}
