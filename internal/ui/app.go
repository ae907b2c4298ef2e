package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"

	"sketchboard/internal/state"
	"sketchboard/internal/tools"
)

// RunApp wires a session into the Fyne shell and blocks until the
// window closes.
func RunApp(session *tools.Session) {
	a := app.New()
	win := a.NewWindow("Sketchboard")
	win.Resize(fyne.NewSize(float32(session.CanvasWidth), float32(session.CanvasHeight)))

	board := NewBoardWidget(session)
	session.Controller.OnSceneChanged = func([]state.Element) {
		board.Refresh()
	}
	session.Controller.RequestText = func() {
		promptForText(session.Controller, win)
	}

	top := container.NewHBox(NewToolbar(session, board), NewExportBar(session, win))
	win.SetContent(container.NewBorder(top, nil, nil, nil, board))

	win.Canvas().AddShortcut(
		&desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierControl},
		func(fyne.Shortcut) { session.Controller.Undo() })
	win.Canvas().AddShortcut(
		&desktop.CustomShortcut{KeyName: fyne.KeyY, Modifier: fyne.KeyModifierControl},
		func(fyne.Shortcut) { session.Controller.Redo() })

	win.ShowAndRun()
}

// promptForText opens the text tool's entry dialog. The controller sits
// in its placing-text sub-state until the dialog resolves; closing
// without confirming cancels the placement.
func promptForText(c *tools.Controller, win fyne.Window) {
	confirmed := false
	d := dialog.NewEntryDialog("Add text", "Text", func(s string) {
		confirmed = true
		c.ConfirmText(s)
	}, win)
	d.SetOnClosed(func() {
		if !confirmed {
			c.CancelText()
		}
	})
	d.Show()
}
