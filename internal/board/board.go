// Package board is the canvas model: it turns pointer events and the active
// tool into edits of the shape list and renders the current page.
//
// A Board is not safe for concurrent use. The host delivers one event at a
// time from its event thread.
package board

import (
	"log"

	"ShapeBoard/internal/export"
	"ShapeBoard/internal/render"
	"ShapeBoard/internal/state"
)

// Defaults are the sizes of newly placed shapes.
type Defaults struct {
	CircleRadius float64
	RectWidth    float64
	RectHeight   float64
}

var DefaultSizes = Defaults{CircleRadius: 25, RectWidth: 50, RectHeight: 50}

type Button int

const (
	ButtonPrimary Button = iota + 1
	ButtonSecondary
	ButtonTertiary
)

// PressEvent is a button press at Pos. Double is set for the press that
// completes a double-click.
type PressEvent struct {
	Pos    state.Point
	Button Button
	Double bool
}

type Board struct {
	doc      *state.Document
	defaults Defaults
	tool     state.Tool
	color    state.Color

	// active is the shape being resized; nil when no gesture is in progress.
	active state.Shape

	OnRedraw func()
}

func New(defaults Defaults) *Board {
	return &Board{
		doc:      state.NewDocument(),
		defaults: defaults,
		color:    state.Black,
	}
}

func (b *Board) Document() *state.Document { return b.doc }

// Replace swaps in a whole document, e.g. one received from a sharing host.
func (b *Board) Replace(doc *state.Document) {
	b.doc = doc
	b.active = nil
	b.redraw()
}

func (b *Board) Tool() state.Tool   { return b.tool }
func (b *Board) Color() state.Color { return b.color }

// Dragging reports whether a resize gesture is in progress.
func (b *Board) Dragging() bool { return b.active != nil }

func (b *Board) redraw() {
	if b.OnRedraw != nil {
		b.OnRedraw()
	}
}

// SelectTool makes t the only active mode. Any gesture in progress ends.
func (b *Board) SelectTool(t state.Tool) {
	b.tool = t
	b.active = nil
}

// SetColor sets the color for shapes created from now on. Existing shapes
// keep theirs.
func (b *Board) SetColor(c state.Color) {
	b.color = c
}

func (b *Board) Press(ev PressEvent) {
	if ev.Button != ButtonPrimary {
		return
	}
	page := b.doc.Current()

	switch b.tool {
	case state.ToolEraser:
		i, s, ok := page.HitTest(ev.Pos)
		if !ok {
			return
		}
		page.Remove(i)
		log.Printf("[BOARD] Erased %s at (%.0f, %.0f)", s.Kind(), ev.Pos.X, ev.Pos.Y)
		b.redraw()

	case state.ToolCircle:
		if _, s, ok := page.HitTest(ev.Pos, state.KindCircle); ok {
			b.active = s
			return
		}
		page.Add(state.NewCircle(ev.Pos, b.defaults.CircleRadius, b.color))
		b.redraw()

	case state.ToolRectangle:
		if _, s, ok := page.HitTest(ev.Pos, state.KindRectangle); ok {
			b.active = s
			return
		}
		page.Add(state.NewRectangle(ev.Pos, b.defaults.RectWidth, b.defaults.RectHeight, b.color))
		b.redraw()

	case state.ToolPolygon:
		b.pressPolygon(page, ev)
	}
}

// openPolygon returns the polygon still being built on page, if any.
func openPolygon(page *state.Page) *state.Polygon {
	if g, ok := page.Last().(*state.Polygon); ok && g.Open {
		return g
	}
	return nil
}

func (b *Board) pressPolygon(page *state.Page, ev PressEvent) {
	g := openPolygon(page)
	if g == nil {
		g = state.NewPolygon(b.color)
		page.Add(g)
	}

	n := len(g.Vertices)
	if !ev.Double || n == 0 || g.Vertices[n-1] != ev.Pos {
		g.Append(ev.Pos)
	}
	if ev.Double {
		g.Close()
	}
	b.redraw()
}

// ClosePolygon finishes the polygon being built on the current page. It
// reports false when there is none.
func (b *Board) ClosePolygon() bool {
	g := openPolygon(b.doc.Current())
	if g == nil {
		return false
	}
	g.Close()
	b.redraw()
	return true
}

// Motion resizes the active shape to follow the pointer.
func (b *Board) Motion(p state.Point) {
	switch s := b.active.(type) {
	case *state.Circle:
		s.ResizeTo(p)
	case *state.Rectangle:
		s.ResizeTo(p)
	default:
		return
	}
	b.redraw()
}

func (b *Board) Release(button Button) {
	if button == ButtonPrimary {
		b.active = nil
	}
}

func (b *Board) AddPage() {
	b.active = nil
	b.doc.AddPage()
	b.redraw()
}

func (b *Board) NextPage() {
	if b.doc.NextPage() {
		b.active = nil
		b.redraw()
	}
}

func (b *Board) PrevPage() {
	if b.doc.PrevPage() {
		b.active = nil
		b.redraw()
	}
}

// Render draws the current page and its page indicator onto s.
func (b *Board) Render(s render.Surface) error {
	return render.Page(s, b.doc.Current(), b.doc.Label())
}

// Export writes the current page to dir as page_<n>.pdf and returns the path.
func (b *Board) Export(dir string) (string, error) {
	return export.SavePage(dir, b.doc.Index()+1, b.doc.Current(), b.doc.Label())
}
