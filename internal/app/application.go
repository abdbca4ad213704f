package app

import (
	"context"
	"os"

	"blackjack/internal/debug"
	"blackjack/internal/game"
	"blackjack/internal/gui"
	"blackjack/internal/shutdown"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const (
	AppName      = "Blackjack Game"
	AppID        = "com.cardtable.blackjack"
	AppVersion   = "1.0.0"
	WindowWidth  = 1000
	WindowHeight = 600
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	guiManager *gui.Manager
	controller *gui.Controller
	debugCoord *debug.DebugCoordinator
	lifecycle  *Lifecycle
}

func NewApplication() (*Application, error) {
	envErr := LoadEnvFile(EnvFile)
	config, warnings := LoadConfig(os.LookupEnv)

	debugCoord := debug.NewCoordinator(config.Debug)
	logger := debugCoord.Logger()

	if envErr != nil {
		logger.Warning("Application", "could not read env file", map[string]interface{}{
			"path":  EnvFile,
			"error": envErr.Error(),
		})
	}
	for _, w := range warnings {
		logger.Warning("Application", w, nil)
	}

	fyneApp := app.NewWithID(AppID)
	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(WindowWidth, WindowHeight))
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.SetMaster()

	logger.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  WindowWidth,
		"window_height": WindowHeight,
		"fps":           config.Controller.FPS,
		"dealer_delay":  config.Controller.DealerDelay.String(),
	})

	guiManager := gui.NewManager(window, debugCoord)
	controller := gui.NewController(game.NewTable(), guiManager, debugCoord, config.Controller)
	guiManager.SetEventHandler(controller.Send)
	window.Canvas().SetOnTypedKey(guiManager.HandleKey)

	shutdownMgr := shutdown.NewManager(logger)
	shutdownMgr.Register("debug", shutdown.Func(debugCoord.Shutdown))
	shutdownMgr.Register("gui", guiManager)
	shutdownMgr.Register("controller", controller)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		guiManager: guiManager,
		controller: controller,
		debugCoord: debugCoord,
		lifecycle:  NewLifecycle(shutdownMgr, logger),
	}

	logger.Info("Application", "initialization complete", nil)
	return application, nil
}

// Run shows the window and blocks until it is closed.
func (a *Application) Run(ctx context.Context) error {
	logger := a.debugCoord.Logger()

	a.window.SetCloseIntercept(func() {
		logger.Info("Application", "window close requested", nil)
		a.lifecycle.Shutdown()
		a.window.Close()
	})

	a.window.SetContent(a.guiManager.GetMainContainer())
	a.window.Show()

	a.lifecycle.Start(ctx, a.controller, func() {
		fyne.Do(a.window.Close)
	})

	logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return a.lifecycle.Err()
}
