package render

import (
	"fmt"

	"ShapeBoard/internal/state"
)

// Recorder is a Surface that keeps a textual log of draw calls.
type Recorder struct {
	Ops []string
}

func (r *Recorder) Circle(c state.Point, radius float64, fill state.Color) error {
	r.Ops = append(r.Ops, fmt.Sprintf("circle %g,%g r=%g fill=%v", c.X, c.Y, radius, fill))
	return nil
}

func (r *Recorder) Rectangle(x, y, w, h float64, fill state.Color) error {
	r.Ops = append(r.Ops, fmt.Sprintf("rect %g,%g %gx%g fill=%v", x, y, w, h, fill))
	return nil
}

func (r *Recorder) Polygon(vertices []state.Point, fill state.Color) error {
	r.Ops = append(r.Ops, fmt.Sprintf("polygon n=%d fill=%v", len(vertices), fill))
	return nil
}

func (r *Recorder) Polyline(vertices []state.Point) error {
	r.Ops = append(r.Ops, fmt.Sprintf("polyline n=%d", len(vertices)))
	return nil
}

func (r *Recorder) Label(text string, x, y float64) error {
	r.Ops = append(r.Ops, fmt.Sprintf("label %q at %g,%g", text, x, y))
	return nil
}
