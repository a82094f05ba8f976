package state

import (
	"encoding/json"
	"fmt"
)

// shapeJSON is the wire envelope for the closed Shape variant. Only the
// fields of the named kind are set.
type shapeJSON struct {
	Kind     string  `json:"kind"`
	Color    Color   `json:"color"`
	Center   *Point  `json:"center,omitempty"`
	Radius   float64 `json:"radius,omitempty"`
	Origin   *Point  `json:"origin,omitempty"`
	Width    float64 `json:"width,omitempty"`
	Height   float64 `json:"height,omitempty"`
	Vertices []Point `json:"vertices,omitempty"`
	Open     bool    `json:"open,omitempty"`
}

func encodeShape(s Shape) shapeJSON {
	out := shapeJSON{Kind: s.Kind().String(), Color: s.Fill()}
	switch v := s.(type) {
	case *Circle:
		c := v.Center
		out.Center, out.Radius = &c, v.Radius
	case *Rectangle:
		o := v.Origin
		out.Origin, out.Width, out.Height = &o, v.Width, v.Height
	case *Polygon:
		out.Vertices = append([]Point(nil), v.Vertices...)
		out.Open = v.Open
	}
	return out
}

func decodeShape(in shapeJSON) (Shape, error) {
	switch in.Kind {
	case "circle":
		if in.Center == nil {
			return nil, fmt.Errorf("circle without center")
		}
		return NewCircle(*in.Center, in.Radius, in.Color), nil
	case "rectangle":
		if in.Origin == nil {
			return nil, fmt.Errorf("rectangle without origin")
		}
		return NewRectangle(*in.Origin, in.Width, in.Height, in.Color), nil
	case "polygon":
		g := NewPolygon(in.Color, in.Vertices...)
		g.Open = in.Open
		return g, nil
	}
	return nil, fmt.Errorf("unknown shape kind %q", in.Kind)
}

func (p *Page) MarshalJSON() ([]byte, error) {
	out := make([]shapeJSON, 0, len(p.shapes))
	for _, s := range p.shapes {
		out = append(out, encodeShape(s))
	}
	return json.Marshal(out)
}

func (p *Page) UnmarshalJSON(data []byte) error {
	var in []shapeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	shapes := make([]Shape, 0, len(in))
	for i, raw := range in {
		s, err := decodeShape(raw)
		if err != nil {
			return fmt.Errorf("shape %d: %w", i, err)
		}
		shapes = append(shapes, s)
	}
	p.shapes = shapes
	return nil
}

type documentJSON struct {
	Current int     `json:"current"`
	Pages   []*Page `json:"pages"`
}

func (d *Document) MarshalJSON() ([]byte, error) {
	return json.Marshal(documentJSON{Current: d.current, Pages: d.pages})
}

func (d *Document) UnmarshalJSON(data []byte) error {
	var in documentJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	if len(in.Pages) == 0 {
		return fmt.Errorf("document has no pages")
	}
	for i, p := range in.Pages {
		if p == nil {
			in.Pages[i] = &Page{}
		}
	}
	if in.Current < 0 || in.Current >= len(in.Pages) {
		return fmt.Errorf("page cursor %d out of range [0,%d)", in.Current, len(in.Pages))
	}
	d.pages, d.current = in.Pages, in.Current
	return nil
}
