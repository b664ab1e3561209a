package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"

	"FreehandBoard/internal/config"
	"FreehandBoard/internal/state"
)

// RunApp opens the board window and blocks until it is closed.
func RunApp(conf config.Config) {
	rec := state.NewRecorder(
		state.WithColor(conf.BrushColor()),
		state.WithThickness(conf.Brush.Thickness),
		state.WithUndoChord(conf.UndoChord()),
	)

	myApp := app.New()
	myWindow := myApp.NewWindow(conf.Window.Title)
	myWindow.Resize(fyne.NewSize(float32(conf.Window.Width), float32(conf.Window.Height)))

	board := NewBoardWidget(rec, conf.BackgroundColor())
	toolbar := NewToolbar(board)

	myWindow.SetContent(container.NewBorder(toolbar, nil, nil, nil, board))
	myWindow.Canvas().Focus(board)
	myWindow.ShowAndRun()
}
