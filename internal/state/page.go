package state

import "fmt"

// Page is an insertion-ordered list of shapes. Shapes have no identity
// beyond their position in the list.
type Page struct {
	shapes []Shape
}

func (p *Page) Add(s Shape) {
	p.shapes = append(p.shapes, s)
}

func (p *Page) Len() int { return len(p.shapes) }

func (p *Page) At(i int) Shape { return p.shapes[i] }

// Last returns the most recently added shape, or nil on an empty page.
func (p *Page) Last() Shape {
	if len(p.shapes) == 0 {
		return nil
	}
	return p.shapes[len(p.shapes)-1]
}

// Shapes returns a copy of the shape list in draw order.
func (p *Page) Shapes() []Shape {
	out := make([]Shape, len(p.shapes))
	copy(out, p.shapes)
	return out
}

// HitTest scans from oldest to newest and returns the first shape containing
// pt. When kinds is non-empty only shapes of those kinds are considered.
func (p *Page) HitTest(pt Point, kinds ...Kind) (int, Shape, bool) {
	for i, s := range p.shapes {
		if len(kinds) > 0 && !hasKind(kinds, s.Kind()) {
			continue
		}
		if s.Contains(pt) {
			return i, s, true
		}
	}
	return -1, nil, false
}

func hasKind(kinds []Kind, k Kind) bool {
	for _, want := range kinds {
		if want == k {
			return true
		}
	}
	return false
}

// Remove drops the shape at index i, keeping the order of the rest.
func (p *Page) Remove(i int) {
	copy(p.shapes[i:], p.shapes[i+1:])
	p.shapes[len(p.shapes)-1] = nil
	p.shapes = p.shapes[:len(p.shapes)-1]
}

// Document is a non-empty sequence of pages with a cursor on the current one.
// Pages are only ever appended.
type Document struct {
	pages   []*Page
	current int
}

func NewDocument() *Document {
	return &Document{pages: []*Page{{}}}
}

func (d *Document) Current() *Page { return d.pages[d.current] }

// Index is the zero-based cursor position.
func (d *Document) Index() int { return d.current }

func (d *Document) Count() int { return len(d.pages) }

func (d *Document) Page(i int) *Page { return d.pages[i] }

// AddPage appends an empty page and moves the cursor onto it.
func (d *Document) AddPage() {
	d.pages = append(d.pages, &Page{})
	d.current = len(d.pages) - 1
}

// NextPage advances the cursor. It reports false, leaving the cursor alone,
// on the last page.
func (d *Document) NextPage() bool {
	if d.current >= len(d.pages)-1 {
		return false
	}
	d.current++
	return true
}

func (d *Document) PrevPage() bool {
	if d.current <= 0 {
		return false
	}
	d.current--
	return true
}

// Label is the page indicator drawn over the canvas.
func (d *Document) Label() string {
	return fmt.Sprintf("Page %d of %d", d.current+1, len(d.pages))
}
