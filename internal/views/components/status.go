package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar is the footer: the hint for the current simulation and a
// one-line status message.
type StatusBar struct {
	container   *fyne.Container
	hintLabel   *widget.Label
	statusLabel *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.hintLabel = widget.NewLabel("")
	sb.hintLabel.Wrapping = fyne.TextWrapWord
	sb.statusLabel = widget.NewLabel("Ready")
	sb.statusLabel.Importance = widget.LowImportance
	sb.statusLabel.Truncation = fyne.TextTruncateEllipsis
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewStack(
		canvas.NewRectangle(ColorFooter),
		container.NewVBox(
			sb.hintLabel,
			widget.NewSeparator(),
			sb.statusLabel,
		),
	)
}

// SetHint updates the hint line
func (sb *StatusBar) SetHint(hint string) {
	sb.hintLabel.SetText(hint)
}

func (sb *StatusBar) GetHint() string {
	return sb.hintLabel.Text
}

// SetStatus updates the main status message
func (sb *StatusBar) SetStatus(status string) {
	sb.statusLabel.SetText(status)
}

// GetStatus returns the current status message
func (sb *StatusBar) GetStatus() string {
	return sb.statusLabel.Text
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
