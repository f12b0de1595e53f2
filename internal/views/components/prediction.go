package components

import (
	"image/color"

	"concept-visualizer/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const DefaultPrompt = "Prediction (enter a number):"

// PredictionPanel holds the prediction entry, the check button and the
// colored result line.
type PredictionPanel struct {
	container   *fyne.Container
	prompt      *canvas.Text
	entry       *widget.Entry
	checkButton *widget.Button
	result      *canvas.Text

	checkHandler func(string)
}

func NewPredictionPanel() *PredictionPanel {
	pp := &PredictionPanel{}
	pp.createComponents()
	pp.buildLayout()
	return pp
}

func (pp *PredictionPanel) createComponents() {
	pp.prompt = canvas.NewText(DefaultPrompt, ColorSubtle)

	pp.entry = widget.NewEntry()
	pp.entry.SetPlaceHolder("e.g. 45")
	pp.entry.OnSubmitted = func(text string) {
		pp.submit()
	}

	pp.checkButton = widget.NewButton("Check Prediction", pp.submit)

	pp.result = canvas.NewText("", ColorSuccess)
}

func (pp *PredictionPanel) buildLayout() {
	entryBox := container.NewGridWrap(fyne.NewSize(200, pp.entry.MinSize().Height), pp.entry)

	pp.container = container.NewVBox(
		pp.prompt,
		container.NewHBox(entryBox, pp.checkButton),
		pp.result,
	)
}

func (pp *PredictionPanel) submit() {
	if pp.checkHandler != nil {
		pp.checkHandler(pp.entry.Text)
	}
}

// SetQuestion shows the question being asked, or the generic prompt
// when question is empty.
func (pp *PredictionPanel) SetQuestion(question string) {
	if question == "" {
		pp.prompt.Text = DefaultPrompt
	} else {
		pp.prompt.Text = question + " (enter a number):"
	}
	pp.prompt.Refresh()
}

func (pp *PredictionPanel) Prompt() string {
	return pp.prompt.Text
}

func (pp *PredictionPanel) SetCheckHandler(handler func(string)) {
	pp.checkHandler = handler
}

// ShowResult prints the message in the success or error color.
func (pp *PredictionPanel) ShowResult(result models.CheckResult) {
	pp.setResult(result.Message, ResultColor(result))
}

// ResultColor is green for a correct prediction, red otherwise.
func ResultColor(result models.CheckResult) color.Color {
	if result.OK {
		return ColorSuccess
	}
	return ColorError
}

func (pp *PredictionPanel) ClearResult() {
	pp.setResult("", ColorSuccess)
}

func (pp *PredictionPanel) setResult(text string, c color.Color) {
	pp.result.Text = text
	pp.result.Color = c
	pp.result.Refresh()
}

func (pp *PredictionPanel) ClearEntry() {
	pp.entry.SetText("")
}

func (pp *PredictionPanel) Entry() *widget.Entry {
	return pp.entry
}

func (pp *PredictionPanel) CheckButton() *widget.Button {
	return pp.checkButton
}

func (pp *PredictionPanel) ResultText() string {
	return pp.result.Text
}

func (pp *PredictionPanel) ResultColor() color.Color {
	return pp.result.Color
}

func (pp *PredictionPanel) GetContainer() *fyne.Container {
	return pp.container
}
