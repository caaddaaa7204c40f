package app

import (
	"fmt"
	"image/color"
	"runtime"
	"sync/atomic"

	"image-viewer/internal/controllers"
	"image-viewer/internal/logger"
	"image-viewer/internal/pipeline"
	"image-viewer/internal/session"
	"image-viewer/internal/shutdown"
	"image-viewer/internal/timing"
	"image-viewer/internal/views"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
)

const (
	AppName         = "Image Viewer"
	AppID           = "com.imageviewer.viewer"
	AppVersion      = "1.0.0"
	WindowWidth     = 900
	WindowHeight    = 700
	MinWindowWidth  = 600
	MinWindowHeight = 400
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	view       *views.MainView
	controller *controllers.MainController
	shutdown   *shutdown.Manager
	logger     logger.Logger
	stopped    atomic.Bool
}

// NewApplication wires logger, pipeline, dispatcher, controller and view
// onto a fyne app. Tests pass a fyne test app.
func NewApplication(fyneApp fyne.App, log logger.Logger) *Application {
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	tracker := timing.NewTracker()
	dispatcher := session.NewDispatcher(
		pipeline.NewLoader(log, tracker),
		pipeline.NewSaver(log, tracker),
		log,
	)

	controller := controllers.NewMainController(dispatcher, log)
	view := views.NewMainView(window, AppName, AppVersion)
	controller.SetView(view)
	enforceMinSize(window)
	view.SetCommandHandler(controller.HandleCommand)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		view:       view,
		controller: controller,
		shutdown:   shutdown.NewManager(log),
		logger:     log,
	}
	application.shutdown.Register(timingReport{tracker: tracker, logger: log})
	application.shutdown.Register(application)

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":     AppVersion,
		"window_size": fmt.Sprintf("%dx%d", WindowWidth, WindowHeight),
		"go_version":  runtime.Version(),
	})

	return application
}

// timingReport logs how long loads and saves took over the session.
type timingReport struct {
	tracker *timing.Tracker
	logger  logger.Logger
}

func (r timingReport) Shutdown() {
	for _, operation := range []string{"load", "save"} {
		timings := r.tracker.GetTimings(operation)
		if len(timings) == 0 {
			continue
		}
		r.logger.Debug("Application", "operation timings", map[string]interface{}{
			"operation": operation,
			"count":     len(timings),
			"average":   r.tracker.GetAverageTime(operation).String(),
		})
	}
}

// enforceMinSize stacks a transparent spacer under the window content so the
// window cannot shrink below the minimum size.
func enforceMinSize(window fyne.Window) {
	spacer := canvas.NewRectangle(color.Transparent)
	spacer.SetMinSize(fyne.NewSize(MinWindowWidth, MinWindowHeight))
	window.SetContent(container.NewStack(spacer, window.Content()))
}

// NewDesktopApplication creates the real fyne app.
func NewDesktopApplication(log logger.Logger) *Application {
	fyneapp.SetMetadata(fyne.AppMetadata{
		ID:      AppID,
		Name:    AppName,
		Version: AppVersion,
	})
	return NewApplication(fyneapp.NewWithID(AppID), log)
}

// Run shows the window and blocks until the app quits. initialPath, when not
// empty, is opened once the event loop has started.
func (a *Application) Run(initialPath string) {
	if initialPath != "" {
		a.fyneApp.Lifecycle().SetOnStarted(func() {
			a.controller.OpenPath(initialPath)
		})
	}

	a.shutdown.Listen()
	a.view.Show()

	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()
	a.stopped.Store(true)

	a.shutdown.Shutdown()
	a.logger.Info("Application", "application terminated", nil)
}

// Shutdown quits the fyne event loop from any goroutine. It does nothing once
// the loop has returned.
func (a *Application) Shutdown() {
	if a.stopped.Load() {
		return
	}
	fyne.Do(a.fyneApp.Quit)
}
