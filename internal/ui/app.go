package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// RunApp opens the drawing window and blocks until it is closed. A
// non-empty shareLink is shown so viewers can join.
func RunApp(shareLink string, board *BoardWidget, exportDir string) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Drawing Application")

	toolbar := NewToolbar(board, myWindow, exportDir)

	bottom := fyne.CanvasObject(board.statusBar)
	if shareLink != "" {
		link := widget.NewEntry()
		link.SetText(shareLink)
		bottom = container.NewBorder(nil, nil, nil, link, board.statusBar)
	}

	myWindow.SetContent(container.NewBorder(toolbar, bottom, nil, nil, board))
	myWindow.ShowAndRun()
}

// RunViewer opens a read-only window that mirrors a remote board.
func RunViewer(board *BoardWidget) {
	board.ReadOnly = true

	myApp := app.New()
	myWindow := myApp.NewWindow("Drawing Application (viewer)")
	myWindow.SetContent(container.NewBorder(nil, board.statusBar, nil, nil, board))
	myWindow.ShowAndRun()
}
