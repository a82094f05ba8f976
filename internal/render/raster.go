package render

import (
	"fmt"
	"image"
	"sync"

	"ShapeBoard/internal/state"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
)

const strokeWidth = 1.5

var (
	boldOnce   sync.Once
	boldSource *text.FontSource
	boldErr    error
)

func labelFace() (text.Face, error) {
	boldOnce.Do(func() {
		boldSource, boldErr = text.NewFontSource(gobold.TTF)
	})
	if boldErr != nil {
		return nil, boldErr
	}
	return boldSource.Face(LabelSize), nil
}

// Raster paints onto an in-memory image through gg.
type Raster struct {
	dc *gg.Context
}

// NewRaster creates a white width x height surface. scale maps canvas
// coordinates to pixels.
func NewRaster(width, height int, scale float64) (*Raster, error) {
	dc := gg.NewContext(width, height)
	dc.ClearWithColor(gg.RGB(1, 1, 1))
	dc.Scale(scale, scale)
	dc.SetLineWidth(strokeWidth)

	face, err := labelFace()
	if err != nil {
		return nil, fmt.Errorf("load label font: %w", err)
	}
	dc.SetFont(face)
	return &Raster{dc: dc}, nil
}

func (r *Raster) Image() image.Image { return r.dc.Image() }

func (r *Raster) Close() error { return r.dc.Close() }

func (r *Raster) fillAndStroke(fill state.Color) error {
	r.dc.SetRGB(fill.R, fill.G, fill.B)
	if err := r.dc.FillPreserve(); err != nil {
		return err
	}
	r.dc.SetRGB(0, 0, 0)
	return r.dc.Stroke()
}

func (r *Raster) Circle(c state.Point, radius float64, fill state.Color) error {
	r.dc.DrawCircle(c.X, c.Y, radius)
	return r.fillAndStroke(fill)
}

func (r *Raster) Rectangle(x, y, w, h float64, fill state.Color) error {
	r.dc.DrawRectangle(x, y, w, h)
	return r.fillAndStroke(fill)
}

func (r *Raster) trace(vertices []state.Point) {
	r.dc.MoveTo(vertices[0].X, vertices[0].Y)
	for _, v := range vertices[1:] {
		r.dc.LineTo(v.X, v.Y)
	}
}

func (r *Raster) Polygon(vertices []state.Point, fill state.Color) error {
	r.trace(vertices)
	r.dc.ClosePath()
	return r.fillAndStroke(fill)
}

func (r *Raster) Polyline(vertices []state.Point) error {
	r.trace(vertices)
	r.dc.SetRGB(0, 0, 0)
	return r.dc.Stroke()
}

func (r *Raster) Label(s string, x, y float64) error {
	// DrawString ignores the transform.
	px, py := r.dc.TransformPoint(x, y)
	r.dc.SetRGB(0, 0, 0)
	r.dc.DrawString(s, px, py)
	return nil
}
