package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// NewToolbar builds the action bar above the board.
func NewToolbar(board *BoardWidget) fyne.CanvasObject {
	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.DocumentCreateIcon(), board.Clear), // New canvas
		widget.NewToolbarAction(theme.ContentUndoIcon(), board.Undo),
	)

	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		layout.NewSpacer(),
		board.StatusBar(),
	)
}
