package controllers

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"concept-visualizer/internal/logger"
	"concept-visualizer/internal/models"
	"concept-visualizer/internal/services"
)

// View is the surface the controller drives. views.MainView implements it.
type View interface {
	SetSimulations(names []string)
	ShowSimulation(details services.SimulationDetails)
	ClearPrediction()
	ShowResult(result models.CheckResult)
	ClearResult()
	UpdateStatus(status string)
	ShowError(err error)

	SetSelectHandler(handler func(name string))
	SetLaunchHandler(handler func())
	SetCheckHandler(handler func(text string))
}

// Describer resolves display texts for a simulation.
type Describer interface {
	Names() []string
	First() (string, bool)
	Describe(name string) (services.SimulationDetails, error)
}

type Launcher interface {
	Launch(ctx context.Context, name string) error
}

type Assessor interface {
	Check(name, text string) models.CheckResult
}

// MainController maps the three widget events (select, launch, check) onto
// the services and pushes the results back into the view.
type MainController struct {
	catalog  Describer
	launcher Launcher
	assessor Assessor
	state    *models.SelectionState
	logger   logger.Logger

	mainView View

	ctx    context.Context
	cancel context.CancelFunc
}

func NewMainController(
	catalog Describer,
	launcher Launcher,
	assessor Assessor,
	state *models.SelectionState,
	log logger.Logger,
) *MainController {
	ctx, cancel := context.WithCancel(context.Background())
	return &MainController{
		catalog:  catalog,
		launcher: launcher,
		assessor: assessor,
		state:    state,
		logger:   log,
		ctx:      ctx,
		cancel:   cancel,
	}
}

// SetMainView associates the view and wires its event handlers.
func (mc *MainController) SetMainView(view View) {
	mc.mainView = view
	view.SetSelectHandler(mc.SelectSimulation)
	view.SetLaunchHandler(mc.LaunchCurrent)
	view.SetCheckHandler(mc.CheckPrediction)
	view.SetSimulations(mc.catalog.Names())
}

// Start selects the first catalog entry.
func (mc *MainController) Start() {
	if name, ok := mc.catalog.First(); ok {
		mc.SelectSimulation(name)
	}
}

func (mc *MainController) SelectSimulation(name string) {
	details, err := mc.catalog.Describe(name)
	if err != nil {
		mc.handleError("Selection failed", err)
		return
	}

	mc.state.Select(name)

	if mc.mainView != nil {
		mc.mainView.ShowSimulation(details)
		mc.mainView.ClearResult()
		mc.mainView.ClearPrediction()
		mc.mainView.UpdateStatus("Selected " + name)
	}

	mc.logger.Debug("MainController", "simulation selected", map[string]interface{}{
		"simulation": name,
		"category":   details.Category,
	})
}

// LaunchCurrent opens the current simulation; without one it does nothing.
func (mc *MainController) LaunchCurrent() {
	name, ok := mc.state.Current()
	if !ok {
		return
	}

	if err := mc.launcher.Launch(mc.ctx, name); err != nil {
		mc.handleError("Launch failed", err)
		// no dialog while shutting down
		if mc.mainView != nil && !errors.Is(err, context.Canceled) {
			mc.mainView.ShowError(fmt.Errorf("could not open %s: %w", name, err))
		}
		return
	}

	count := mc.state.RecordLaunch()
	if mc.mainView != nil {
		mc.mainView.UpdateStatus("Opened " + name + " in your browser")
	}
	mc.logger.Info("MainController", "simulation launched", map[string]interface{}{
		"simulation": name,
		"launches":   count,
	})
}

// CheckPrediction reports on text. Blank input never reaches the assessor.
func (mc *MainController) CheckPrediction(text string) {
	var result models.CheckResult
	if strings.TrimSpace(text) == "" {
		result = models.EmptyPredictionResult()
	} else {
		name, _ := mc.state.Current()
		result = mc.assessor.Check(name, text)
	}

	mc.state.SetLastResult(result)
	if mc.mainView != nil {
		mc.mainView.ShowResult(result)
	}
}

// Shutdown cancels pending launches.
func (mc *MainController) Shutdown() {
	mc.cancel()
	mc.logger.Info("MainController", "controller shut down", map[string]interface{}{
		"launches": mc.state.Launches(),
	})
}

func (mc *MainController) handleError(title string, err error) {
	mc.logger.Error("MainController", err, map[string]interface{}{
		"context": title,
	})
	if mc.mainView != nil {
		mc.mainView.UpdateStatus(title + ": " + err.Error())
	}
}
