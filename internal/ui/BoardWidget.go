package ui

import (
	"image"
	"image/color"
	"image/draw"
	"log"

	"ShapeBoard/internal/board"
	"ShapeBoard/internal/export"
	"ShapeBoard/internal/render"
	"ShapeBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"
)

// BoardWidget hosts a board.Board: it forwards pointer events to it and
// paints its current page.
type BoardWidget struct {
	widget.BaseWidget
	Board     *board.Board
	ReadOnly  bool
	statusBar *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.DoubleTappable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(b *board.Board) *BoardWidget {
	w := &BoardWidget{
		Board:     b,
		statusBar: widget.NewLabel("Ready"),
	}
	b.OnRedraw = w.Refresh
	w.ExtendBaseWidget(w)
	return w
}

// SetStatus may be called from any goroutine.
func (w *BoardWidget) SetStatus(text string) {
	fyne.Do(func() {
		w.statusBar.SetText(text)
	})
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: float64(p.X), Y: float64(p.Y)}
}

func toButton(b desktop.MouseButton) board.Button {
	switch b {
	case desktop.MouseButtonPrimary:
		return board.ButtonPrimary
	case desktop.MouseButtonSecondary:
		return board.ButtonSecondary
	case desktop.MouseButtonTertiary:
		return board.ButtonTertiary
	}
	return 0
}

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if w.ReadOnly {
		return
	}
	w.Board.Press(board.PressEvent{Pos: toPoint(e.Position), Button: toButton(e.Button)})
}

func (w *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if w.ReadOnly {
		return
	}
	w.Board.Release(toButton(e.Button))
}

// DoubleTapped closes a polygon being built. Both presses of the double
// click have already been delivered through MouseDown.
func (w *BoardWidget) DoubleTapped(e *fyne.PointEvent) {
	if w.ReadOnly || w.Board.Tool() != state.ToolPolygon {
		return
	}
	w.Board.Press(board.PressEvent{Pos: toPoint(e.Position), Button: board.ButtonPrimary, Double: true})
}

func (w *BoardWidget) Dragged(e *fyne.DragEvent) {
	if w.ReadOnly || !w.Board.Dragging() {
		return
	}
	w.Board.Motion(toPoint(e.Position))
}

// DragEnd ends a resize even when the release lands outside the widget.
func (w *BoardWidget) DragEnd() {
	if w.ReadOnly {
		return
	}
	w.Board.Release(board.ButtonPrimary)
}

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{widget: w}
	r.raster = canvas.NewRaster(r.paint)
	return r
}

type boardWidgetRenderer struct {
	widget *BoardWidget
	raster *canvas.Raster
}

// paint renders the current page at pixel size w x h.
func (r *boardWidgetRenderer) paint(w, h int) image.Image {
	scale := 1.0
	if size := r.widget.Size(); size.Width > 0 {
		scale = float64(w) / float64(size.Width)
	}

	surface, err := render.NewRaster(w, h, scale)
	if err != nil {
		log.Printf("[BOARD] Cannot create raster: %v", err)
		return blank(w, h)
	}
	defer surface.Close()

	if err := r.widget.Board.Render(surface); err != nil {
		log.Printf("[BOARD] Render failed: %v", err)
	}
	return surface.Image()
}

func blank(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return img
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster}
}

func (r *boardWidgetRenderer) Refresh() {
	r.raster.Refresh()
}

func (r *boardWidgetRenderer) Destroy() {}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(export.PageWidth, export.PageHeight)
}
