// Package render draws a page of shapes onto a drawing surface.
package render

import "ShapeBoard/internal/state"

// Surface is a drawing target. Filled primitives are filled with the given
// color and then outlined in black.
type Surface interface {
	Circle(center state.Point, radius float64, fill state.Color) error
	Rectangle(x, y, width, height float64, fill state.Color) error
	Polygon(vertices []state.Point, fill state.Color) error
	Polyline(vertices []state.Point) error
	Label(text string, x, y float64) error
}

// Page indicator placement and size.
const (
	LabelX    = 10
	LabelY    = 30
	LabelSize = 20
)

// Page draws every shape of page in insertion order and then overlays label.
// It never mutates the page.
func Page(s Surface, page *state.Page, label string) error {
	for i := 0; i < page.Len(); i++ {
		if err := shape(s, page.At(i)); err != nil {
			return err
		}
	}
	return s.Label(label, LabelX, LabelY)
}

func shape(s Surface, sh state.Shape) error {
	switch v := sh.(type) {
	case *state.Circle:
		return s.Circle(v.Center, v.Radius, v.Fill())
	case *state.Rectangle:
		return s.Rectangle(v.Origin.X, v.Origin.Y, v.Width, v.Height, v.Fill())
	case *state.Polygon:
		if len(v.Vertices) < 2 {
			return nil
		}
		if v.Open {
			return s.Polyline(v.Vertices)
		}
		return s.Polygon(v.Vertices, v.Fill())
	}
	return nil
}
