package app

import (
	"fmt"

	"concept-visualizer/internal/config"
	"concept-visualizer/internal/controllers"
	"concept-visualizer/internal/logger"
	"concept-visualizer/internal/models"
	"concept-visualizer/internal/services"
	"concept-visualizer/internal/views"

	"fyne.io/fyne/v2"
	fyneapp "fyne.io/fyne/v2/app"
)

const (
	AppName     = "Concept Visualization — Codewars-style Interface"
	AppID       = "edu.phet.concept-visualizer"
	AppVersion  = "1.0.0"
	WindowTitle = AppName
)

// Services bundles the domain objects shared by the GUI and the CLI.
type Services struct {
	Catalog     *models.Catalog
	Assessments *models.AssessmentTable
	CatalogSvc  *services.CatalogService
	Launcher    *services.LaunchService
	Assessor    *services.AssessmentService
}

// NewServices loads the catalog named by cfg and builds the services around it.
func NewServices(cfg *config.Config, opener services.URLOpener, log logger.Logger) (*Services, error) {
	catalog, assessments, err := config.LoadCatalog(cfg.CatalogFile)
	if err != nil {
		return nil, err
	}
	if err := assessments.Validate(catalog); err != nil {
		// assessments for missing entries are harmless; report and keep going
		log.Warning("Application", "catalog and assessments disagree", map[string]interface{}{
			"error": err.Error(),
		})
	}

	return &Services{
		Catalog:     catalog,
		Assessments: assessments,
		CatalogSvc:  services.NewCatalogService(catalog, assessments),
		Launcher:    services.NewLaunchService(catalog, opener, log),
		Assessor:    services.NewAssessmentService(assessments, log),
	}, nil
}

// Application owns the fyne app, its window and the MVC components.
type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	config     *config.Config
	services   *Services
	controller *controllers.MainController
	view       *views.MainView
	lifecycle  *Lifecycle
}

// NewApplication builds the GUI on the real fyne driver.
func NewApplication(cfg *config.Config, log logger.Logger) (*Application, error) {
	return NewApplicationWith(fyneapp.NewWithID(AppID), cfg, log)
}

// NewApplicationWith builds the GUI on an existing fyne app; tests pass
// the fyne test app here.
func NewApplicationWith(fyneApp fyne.App, cfg *config.Config, log logger.Logger) (*Application, error) {
	fyneApp.Settings().SetTheme(views.NewTheme())

	var opener services.URLOpener = fyneApp
	if cfg.Opener == config.OpenerCommand {
		opener = services.NewCommandOpener()
	}

	svcs, err := NewServices(cfg, opener, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	window := fyneApp.NewWindow(WindowTitle)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	mainView := views.NewMainView(window)
	mainController := controllers.NewMainController(
		svcs.CatalogSvc,
		svcs.Launcher,
		svcs.Assessor,
		models.NewSelectionState(),
		log,
	)
	mainController.SetMainView(mainView)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		config:     cfg,
		services:   svcs,
		controller: mainController,
		view:       mainView,
	}
	application.lifecycle = NewLifecycle(application, log)
	application.setupWindowEvents()

	mainController.Start()

	log.Info("Application", "initialization complete", map[string]interface{}{
		"version":     AppVersion,
		"simulations": svcs.Catalog.Len(),
		"window_size": fmt.Sprintf("%.0fx%.0f", cfg.Window.Width, cfg.Window.Height),
		"opener":      cfg.Opener,
	})
	return application, nil
}

// setupWindowEvents asks before closing, then tears everything down.
func (a *Application) setupWindowEvents() {
	a.window.SetCloseIntercept(func() {
		a.logger.Info("Application", "window close requested", nil)
		a.view.ShowConfirm("Exit Application", "Are you sure you want to exit?", func(confirmed bool) {
			if confirmed {
				a.lifecycle.Shutdown()
				a.window.Close()
			}
		})
	})

	a.window.SetOnClosed(func() {
		a.logger.Info("Application", "window closed", nil)
		a.lifecycle.Shutdown()
	})
}

// confirmClose tears down and closes the window once the user agrees to exit.
func (a *Application) confirmClose(confirmed bool) {
	if !confirmed {
		a.logger.Debug("Application", "exit cancelled", nil)
		return
	}
	a.lifecycle.Shutdown()
	a.window.Close()
}

// Run shows the window and blocks in the fyne event loop.
func (a *Application) Run() {
	a.window.ShowAndRun()
}

// Shutdown stops the controller and quits the fyne app. Safe to call from
// any goroutine and more than once; after the window has closed it does
// nothing.
func (a *Application) Shutdown() {
	if a.lifecycle.IsShutdown() {
		return
	}
	a.lifecycle.Shutdown()
	fyne.Do(a.fyneApp.Quit)
}

func (a *Application) View() *views.MainView {
	return a.view
}

func (a *Application) Services() *Services {
	return a.services
}
