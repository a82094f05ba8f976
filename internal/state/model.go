package state

import (
	"image/color"
	"math"
)

// Color is an RGB triple with each channel in [0,1].
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

var Black = Color{}

// ColorFromRGBA converts any image/color value, dropping alpha.
func ColorFromRGBA(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{R: float64(r) / 0xffff, G: float64(g) / 0xffff, B: float64(b) / 0xffff}
}

func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: channel(c.R), G: channel(c.G), B: channel(c.B), A: 0xff}
}

func channel(v float64) uint8 {
	return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
}

type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

func (p Point) Distance(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

type Kind int

const (
	KindCircle Kind = iota
	KindRectangle
	KindPolygon
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindRectangle:
		return "rectangle"
	case KindPolygon:
		return "polygon"
	}
	return "unknown"
}

// Shape is one of *Circle, *Rectangle or *Polygon. The set is closed: the
// unexported method keeps other packages from adding variants.
type Shape interface {
	Kind() Kind
	Fill() Color
	Contains(p Point) bool
	Bounds() Bounds
	shape()
}

type Circle struct {
	Center Point
	Radius float64
	fill   Color
}

func NewCircle(center Point, radius float64, fill Color) *Circle {
	return &Circle{Center: center, Radius: radius, fill: fill}
}

func (c *Circle) Kind() Kind  { return KindCircle }
func (c *Circle) Fill() Color { return c.fill }
func (c *Circle) shape()      {}

func (c *Circle) Contains(p Point) bool {
	return c.Center.Distance(p) <= c.Radius
}

func (c *Circle) Bounds() Bounds {
	return Bounds{
		X:      c.Center.X - c.Radius,
		Y:      c.Center.Y - c.Radius,
		Width:  2 * c.Radius,
		Height: 2 * c.Radius,
	}
}

// ResizeTo sets the radius to the distance from the fixed center to p.
func (c *Circle) ResizeTo(p Point) {
	c.Radius = c.Center.Distance(p)
}

// Rectangle is anchored at its top-left Origin. Width and Height are never negative.
type Rectangle struct {
	Origin Point
	Width  float64
	Height float64
	fill   Color
}

func NewRectangle(origin Point, width, height float64, fill Color) *Rectangle {
	return &Rectangle{Origin: origin, Width: math.Max(0, width), Height: math.Max(0, height), fill: fill}
}

func (r *Rectangle) Kind() Kind  { return KindRectangle }
func (r *Rectangle) Fill() Color { return r.fill }
func (r *Rectangle) shape()      {}

func (r *Rectangle) Bounds() Bounds {
	return Bounds{X: r.Origin.X, Y: r.Origin.Y, Width: r.Width, Height: r.Height}
}

func (r *Rectangle) Contains(p Point) bool {
	return r.Bounds().Contains(p)
}

// ResizeTo stretches the rectangle so its far corner follows p. An axis that
// would go negative is clamped to zero and its origin moves to p.
func (r *Rectangle) ResizeTo(p Point) {
	r.Width = p.X - r.Origin.X
	if r.Width < 0 {
		r.Width = 0
		r.Origin.X = p.X
	}
	r.Height = p.Y - r.Origin.Y
	if r.Height < 0 {
		r.Height = 0
		r.Origin.Y = p.Y
	}
}

// Polygon is built one vertex at a time while Open is true.
type Polygon struct {
	Vertices []Point
	Open     bool
	fill     Color
}

func NewPolygon(fill Color, vertices ...Point) *Polygon {
	return &Polygon{Vertices: vertices, Open: true, fill: fill}
}

func (g *Polygon) Kind() Kind  { return KindPolygon }
func (g *Polygon) Fill() Color { return g.fill }
func (g *Polygon) shape()      {}

func (g *Polygon) Append(p Point) {
	g.Vertices = append(g.Vertices, p)
}

func (g *Polygon) Close() {
	g.Open = false
}

// Bounds is the axis-aligned box around the vertices. It is also the hit
// region: Contains does not do a true point-in-polygon test.
func (g *Polygon) Bounds() Bounds {
	return boundsOf(g.Vertices)
}

func (g *Polygon) Contains(p Point) bool {
	if len(g.Vertices) == 0 {
		return false
	}
	return g.Bounds().Contains(p)
}
