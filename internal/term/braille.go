package term

import (
	"image/color"
	"math"
	"strings"

	"github.com/iburimskiy/pixelswarm/internal/scene"
	"github.com/iburimskiy/pixelswarm/internal/swarm"
)

// Braille patterns: 2x4 dots per cell.
// 1 4
// 2 5
// 3 6
// 7 8
var pixelMap = [4][2]rune{
	{0x1, 0x8},
	{0x2, 0x10},
	{0x4, 0x20},
	{0x40, 0x80},
}

const brailleBlank = 0x2800

// Braille is a monochrome canvas that maps scene coordinates onto braille
// sub-pixels. Colors only matter for fills: dark fills erase.
type Braille struct {
	Width, Height int
	Grid          [][]rune

	sceneW, sceneH float64
}

var _ scene.Canvas = (*Braille)(nil)

// NewBraille sizes a canvas of cols x rows cells for a scene of the given
// size in scene units.
func NewBraille(cols, rows int, sceneW, sceneH float64) *Braille {
	b := &Braille{
		Width:  cols,
		Height: rows,
		Grid:   make([][]rune, rows),
		sceneW: sceneW,
		sceneH: sceneH,
	}
	for i := range b.Grid {
		b.Grid[i] = make([]rune, cols)
	}
	b.Clear(nil)
	return b
}

// Set lights the sub-pixel (x, y); out-of-range points are dropped.
func (b *Braille) Set(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= b.Width || row >= b.Height {
		return
	}
	b.Grid[row][col] |= pixelMap[y%4][x%2]
}

func (b *Braille) Unset(x, y int) {
	if x < 0 || y < 0 {
		return
	}
	col, row := x/2, y/4
	if col >= b.Width || row >= b.Height {
		return
	}
	b.Grid[row][col] &^= pixelMap[y%4][x%2]
}

func (b *Braille) IsSet(x, y int) bool {
	if x < 0 || y < 0 || x/2 >= b.Width || y/4 >= b.Height {
		return false
	}
	return b.Grid[y/4][x/2]&pixelMap[y%4][x%2] != 0
}

func (b *Braille) Clear(color.Color) {
	for i := range b.Grid {
		for j := range b.Grid[i] {
			b.Grid[i][j] = brailleBlank
		}
	}
}

// FillRect lights every sub-pixel the rectangle covers, at least one. Near
// black fills erase instead, so dark panels read as background.
func (b *Braille) FillRect(x, y, w, h float64, c color.Color) {
	plot := b.Set
	if isDark(c) {
		plot = b.Unset
	}
	x0, y0 := b.toSub(x, y)
	x1, y1 := b.toSub(x+w, y+h)
	for py := y0; py <= max(y0, y1-1); py++ {
		for px := x0; px <= max(x0, x1-1); px++ {
			plot(px, py)
		}
	}
}

func (b *Braille) StrokeRect(x, y, w, h float64, _ color.Color) {
	x0, y0 := b.toSub(x, y)
	x1, y1 := b.toSub(x+w, y+h)
	b.line(x0, y0, x1, y0)
	b.line(x1, y0, x1, y1)
	b.line(x1, y1, x0, y1)
	b.line(x0, y1, x0, y0)
}

func (b *Braille) StrokeCircle(cx, cy, r float64, _ color.Color) {
	steps := max(16, int(2*math.Pi*r*float64(b.Width*2)/b.sceneW))
	for i := 0; i < steps; i++ {
		a := 2 * math.Pi * float64(i) / float64(steps)
		b.Set(b.toSub(cx+r*math.Cos(a), cy+r*math.Sin(a)))
	}
}

func (b *Braille) StrokeTriangle(p, q, r swarm.Vec, _ color.Color) {
	px, py := b.toSub(p.X, p.Y)
	qx, qy := b.toSub(q.X, q.Y)
	rx, ry := b.toSub(r.X, r.Y)
	b.line(px, py, qx, qy)
	b.line(qx, qy, rx, ry)
	b.line(rx, ry, px, py)
}

func (b *Braille) String() string {
	var sb strings.Builder
	for i, row := range b.Grid {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}
	return sb.String()
}

func (b *Braille) toSub(x, y float64) (int, int) {
	return int(math.Floor(x * float64(b.Width*2) / b.sceneW)),
		int(math.Floor(y * float64(b.Height*4) / b.sceneH))
}

// line draws with Bresenham's algorithm.
func (b *Braille) line(x0, y0, x1, y1 int) {
	dx := absInt(x1 - x0)
	dy := absInt(y1 - y0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy

	for {
		b.Set(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

func isDark(c color.Color) bool {
	if c == nil {
		return true
	}
	r, g, bl, _ := c.RGBA()
	return r+g+bl < 3*0x1000
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
