package views

import (
	"concept-visualizer/internal/models"
	"concept-visualizer/internal/services"
	"concept-visualizer/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
)

const HeaderTitle = "Interactive Simulations"

// MainView is the single application window: header, simulation sidebar,
// central panel with the prediction check, and the hint footer.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	header        *canvas.Text
	sidebar       *components.Sidebar
	simPanel      *components.SimulationPanel
	prediction    *components.PredictionPanel
	statusBar     *components.StatusBar

	// Event handlers - connected to controller
	selectHandler func(string)
	launchHandler func()
	checkHandler  func(string)
}

// NewMainView creates a new main view
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.header = canvas.NewText(HeaderTitle, components.ColorTitle)
	mv.header.TextSize = components.HeaderTextSize
	mv.header.TextStyle = fyne.TextStyle{Bold: true}

	mv.sidebar = components.NewSidebar()
	mv.simPanel = components.NewSimulationPanel()
	mv.prediction = components.NewPredictionPanel()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	headerArea := container.NewStack(
		canvas.NewRectangle(components.ColorHeader),
		container.NewPadded(mv.header),
	)

	central := container.NewVScroll(container.NewPadded(container.NewVBox(
		mv.simPanel.GetContainer(),
		mv.prediction.GetContainer(),
	)))

	mv.mainContainer = container.NewBorder(
		headerArea,                // top
		nil,                       // bottom
		mv.sidebar.GetContainer(), // left
		nil,                       // right
		container.NewBorder(nil, mv.statusBar.GetContainer(), nil, nil, central),
	)

	mv.window.SetContent(container.NewStack(
		canvas.NewRectangle(components.ColorBackground),
		mv.mainContainer,
	))
}

// setupEventHandlers connects internal component events
func (mv *MainView) setupEventHandlers() {
	mv.sidebar.SetSelectHandler(func(name string) {
		if mv.selectHandler != nil {
			mv.selectHandler(name)
		}
	})

	mv.simPanel.SetLaunchHandler(func() {
		if mv.launchHandler != nil {
			mv.launchHandler()
		}
	})

	mv.prediction.SetCheckHandler(func(text string) {
		if mv.checkHandler != nil {
			mv.checkHandler(text)
		}
	})
}

// Event handler setters - called by controller

func (mv *MainView) SetSelectHandler(handler func(string)) {
	mv.selectHandler = handler
}

func (mv *MainView) SetLaunchHandler(handler func()) {
	mv.launchHandler = handler
}

func (mv *MainView) SetCheckHandler(handler func(string)) {
	mv.checkHandler = handler
}

// UI update methods - called by controller

// SetSimulations fills the sidebar and the Simulations menu.
func (mv *MainView) SetSimulations(names []string) {
	mv.sidebar.SetSimulations(names)
	mv.setupMenus(names)
}

func (mv *MainView) ShowSimulation(details services.SimulationDetails) {
	mv.simPanel.SetDetails(details.Title, details.Description)
	mv.statusBar.SetHint(details.Hint)
	mv.prediction.SetQuestion(details.Question)
	mv.sidebar.Highlight(details.Name)
}

func (mv *MainView) ClearPrediction() {
	mv.prediction.ClearEntry()
}

func (mv *MainView) ShowResult(result models.CheckResult) {
	mv.prediction.ShowResult(result)
}

func (mv *MainView) ClearResult() {
	mv.prediction.ClearResult()
}

// UpdateStatus updates the status bar message
func (mv *MainView) UpdateStatus(status string) {
	mv.statusBar.SetStatus(status)
}

func (mv *MainView) setupMenus(names []string) {
	items := make([]*fyne.MenuItem, 0, len(names)+2)
	for _, name := range names {
		items = append(items, fyne.NewMenuItem(name, func() {
			if mv.selectHandler != nil {
				mv.selectHandler(name)
			}
		}))
	}
	items = append(items,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem(components.LaunchButtonText, func() {
			if mv.launchHandler != nil {
				mv.launchHandler()
			}
		}),
	)

	mv.window.SetMainMenu(fyne.NewMainMenu(fyne.NewMenu("Simulations", items...)))
}

// ShowConfirm displays a confirmation dialog
func (mv *MainView) ShowConfirm(title, message string, callback func(bool)) {
	dialog.ShowConfirm(title, message, callback, mv.window)
}

// ShowError displays an error dialog on top of the window.
func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

// Show displays the main window
func (mv *MainView) Show() {
	mv.window.Show()
}

func (mv *MainView) GetWindow() fyne.Window {
	return mv.window
}

func (mv *MainView) Sidebar() *components.Sidebar {
	return mv.sidebar
}

func (mv *MainView) SimulationPanel() *components.SimulationPanel {
	return mv.simPanel
}

func (mv *MainView) PredictionPanel() *components.PredictionPanel {
	return mv.prediction
}

func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}
