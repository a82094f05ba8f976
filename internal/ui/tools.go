package ui

import (
	"fmt"
	"image/color"

	"ShapeBoard/internal/state"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(28, 28))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

var toolOptions = []string{"Circle", "Rectangle", "Polygon", "Eraser"}

// NewToolbar builds the tool, color, page and export controls for w.
func NewToolbar(w *BoardWidget, win fyne.Window, exportDir string) fyne.CanvasObject {
	b := w.Board

	// --- Tools ---
	tools := widget.NewRadioGroup(toolOptions, func(selected string) {
		if selected == "" {
			b.SelectTool(state.ToolNone)
			return
		}
		tool, err := state.ParseTool(selected)
		if err != nil {
			w.SetStatus(err.Error())
			return
		}
		b.SelectTool(tool)
	})
	tools.Horizontal = true

	closePolygon := widget.NewButton("Close Polygon", func() {
		if !b.ClosePolygon() {
			w.SetStatus("No open polygon on this page")
		}
	})

	// --- Color Palette ---
	swatch := canvas.NewRectangle(color.Black)
	swatch.SetMinSize(fyne.NewSize(28, 28))
	onColor := func(c color.Color) {
		b.SetColor(state.ColorFromRGBA(c))
		swatch.FillColor = c
		swatch.Refresh()
	}
	colorBox := container.NewHBox(
		newColorSwatch(color.Black, onColor),
		newColorSwatch(color.NRGBA{R: 255, A: 255}, onColor),
		newColorSwatch(color.NRGBA{G: 255, A: 255}, onColor),
		newColorSwatch(color.NRGBA{B: 255, A: 255}, onColor),
		newColorSwatch(color.NRGBA{R: 255, G: 255, A: 255}, onColor),
		widget.NewButton("More...", func() {
			picker := dialog.NewColorPicker("Shape Color", "Color for new shapes", onColor, win)
			picker.Advanced = true
			picker.Show()
		}),
		swatch,
	)

	// --- Pages ---
	pages := container.NewHBox(
		widget.NewButton("Previous Page", b.PrevPage),
		widget.NewButton("Next Page", b.NextPage),
		widget.NewButton("Add Page", b.AddPage),
	)

	save := widget.NewButton("Save as PDF", func() {
		path, err := b.Export(exportDir)
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		w.SetStatus(fmt.Sprintf("Saved current page as %s", path))
	})

	return container.NewVBox(
		container.NewHBox(widget.NewLabel("Tool:"), tools, closePolygon, layout.NewSpacer()),
		container.NewHBox(
			widget.NewLabel("Color:"), colorBox,
			widget.NewSeparator(),
			pages,
			widget.NewSeparator(),
			save,
			layout.NewSpacer(),
		),
	)
}
