package views

import (
	"image-viewer/internal/session"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

func (mv *MainView) buildMainMenu() *fyne.MainMenu {
	quit := fyne.NewMenuItem("Quit", func() {
		if app := fyne.CurrentApp(); app != nil {
			app.Quit()
		}
	})
	quit.IsQuit = true

	fileMenu := fyne.NewMenu("File",
		mv.commandItem("Open", session.CommandOpen),
		mv.commandItem("Convert & Save As...", session.CommandConvert),
		fyne.NewMenuItemSeparator(),
		quit,
	)

	viewMenu := fyne.NewMenu("View",
		mv.commandItem("Zoom In", session.CommandZoomIn),
		mv.commandItem("Zoom Out", session.CommandZoomOut),
		mv.commandItem("Fit to Window", session.CommandFit),
		mv.commandItem("Actual Size (1:1)", session.CommandActualSize),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mv.ShowAbout),
	)

	return fyne.NewMainMenu(fileMenu, viewMenu, helpMenu)
}

func (mv *MainView) commandItem(label string, cmd session.Command) *fyne.MenuItem {
	return fyne.NewMenuItem(label, func() { mv.emit(cmd) })
}

// shortcutBindings maps Ctrl (Cmd on macOS) key combinations to commands.
var shortcutBindings = []struct {
	key fyne.KeyName
	cmd session.Command
}{
	{fyne.KeyO, session.CommandOpen},
	{fyne.KeyS, session.CommandConvert},
	{fyne.KeyEqual, session.CommandZoomIn},
	{fyne.KeyMinus, session.CommandZoomOut},
	{fyne.Key0, session.CommandFit},
	{fyne.Key1, session.CommandActualSize},
}

func (mv *MainView) registerShortcuts() {
	c := mv.window.Canvas()
	for _, binding := range shortcutBindings {
		cmd := binding.cmd
		c.AddShortcut(&desktop.CustomShortcut{
			KeyName:  binding.key,
			Modifier: fyne.KeyModifierShortcutDefault,
		}, func(fyne.Shortcut) {
			mv.emit(cmd)
		})
	}
}
