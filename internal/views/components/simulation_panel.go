package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	WelcomeTitle       = "Welcome"
	WelcomeDescription = "Select a simulation from the left.\nOfficial PhET simulations will open in your browser."
	LaunchButtonText   = "Launch Simulation"
)

// SimulationPanel shows the selected simulation and the launch button.
type SimulationPanel struct {
	container    *fyne.Container
	title        *canvas.Text
	description  *widget.Label
	launchButton *widget.Button

	launchHandler func()
}

func NewSimulationPanel() *SimulationPanel {
	sp := &SimulationPanel{}
	sp.createComponents()
	sp.buildLayout()
	return sp
}

func (sp *SimulationPanel) createComponents() {
	sp.title = canvas.NewText(WelcomeTitle, ColorTitle)
	sp.title.TextSize = TitleTextSize
	sp.title.TextStyle = fyne.TextStyle{Bold: true}
	sp.title.Alignment = fyne.TextAlignCenter

	sp.description = widget.NewLabel(WelcomeDescription)
	sp.description.Wrapping = fyne.TextWrapWord

	sp.launchButton = widget.NewButton(LaunchButtonText, func() {
		if sp.launchHandler != nil {
			sp.launchHandler()
		}
	})
	sp.launchButton.Importance = widget.HighImportance
}

func (sp *SimulationPanel) buildLayout() {
	sp.container = container.NewVBox(
		container.NewPadded(sp.title),
		sp.description,
		container.NewCenter(sp.launchButton),
	)
}

// SetDetails swaps title and description.
func (sp *SimulationPanel) SetDetails(title, description string) {
	sp.title.Text = title
	sp.title.Refresh()
	sp.description.SetText(description)
}

func (sp *SimulationPanel) SetLaunchHandler(handler func()) {
	sp.launchHandler = handler
}

func (sp *SimulationPanel) Title() string {
	return sp.title.Text
}

func (sp *SimulationPanel) Description() string {
	return sp.description.Text
}

func (sp *SimulationPanel) LaunchButton() *widget.Button {
	return sp.launchButton
}

func (sp *SimulationPanel) GetContainer() *fyne.Container {
	return sp.container
}
