// Package export writes a single page of the board to a PDF file.
package export

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"ShapeBoard/internal/render"
	"ShapeBoard/internal/state"

	"github.com/jung-kurt/gofpdf"
)

// Exported pages are a fixed 800x600 points, matching the on-screen canvas.
const (
	PageWidth  = 800
	PageHeight = 600
)

// FileName is the file an exported page is written to, from its 1-indexed number.
func FileName(pageNumber int) string {
	return fmt.Sprintf("page_%d.pdf", pageNumber)
}

// PDF is a render.Surface over a single gofpdf page.
type PDF struct {
	doc *gofpdf.Fpdf
}

func NewPDF() *PDF {
	doc := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: PageWidth, Ht: PageHeight},
	})
	doc.SetAutoPageBreak(false, 0)
	doc.AddPage()
	doc.SetLineWidth(1)
	doc.SetDrawColor(0, 0, 0)
	return &PDF{doc: doc}
}

func rgb(c state.Color) (int, int, int) {
	n := c.NRGBA()
	return int(n.R), int(n.G), int(n.B)
}

func (p *PDF) Circle(c state.Point, radius float64, fill state.Color) error {
	p.doc.SetFillColor(rgb(fill))
	p.doc.Circle(c.X, c.Y, radius, "FD")
	return p.doc.Error()
}

func (p *PDF) Rectangle(x, y, w, h float64, fill state.Color) error {
	p.doc.SetFillColor(rgb(fill))
	p.doc.Rect(x, y, w, h, "FD")
	return p.doc.Error()
}

func points(vertices []state.Point) []gofpdf.PointType {
	out := make([]gofpdf.PointType, len(vertices))
	for i, v := range vertices {
		out[i] = gofpdf.PointType{X: v.X, Y: v.Y}
	}
	return out
}

func (p *PDF) Polygon(vertices []state.Point, fill state.Color) error {
	p.doc.SetFillColor(rgb(fill))
	p.doc.Polygon(points(vertices), "FD")
	return p.doc.Error()
}

func (p *PDF) Polyline(vertices []state.Point) error {
	p.doc.MoveTo(vertices[0].X, vertices[0].Y)
	for _, v := range vertices[1:] {
		p.doc.LineTo(v.X, v.Y)
	}
	p.doc.DrawPath("D")
	return p.doc.Error()
}

func (p *PDF) Label(text string, x, y float64) error {
	p.doc.SetTextColor(0, 0, 0)
	p.doc.SetFont("Helvetica", "B", render.LabelSize)
	p.doc.Text(x, y, text)
	return p.doc.Error()
}

// WritePage renders page with its label and writes the PDF to w.
func WritePage(w io.Writer, page *state.Page, label string) error {
	p := NewPDF()
	if err := render.Page(p, page, label); err != nil {
		return fmt.Errorf("render page: %w", err)
	}
	return p.doc.Output(w)
}

// SavePage writes the page to dir/page_<n>.pdf and returns the path.
func SavePage(dir string, pageNumber int, page *state.Page, label string) (string, error) {
	path := filepath.Join(dir, FileName(pageNumber))
	file, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close()

	if err := WritePage(file, page, label); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("close %s: %w", path, err)
	}
	log.Printf("[EXPORT] Saved current page as %s", path)
	return path, nil
}
