package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Sidebar lists one button per simulation, in catalog order.
type Sidebar struct {
	container *fyne.Container
	list      *fyne.Container
	heading   *canvas.Text
	buttons   map[string]*widget.Button
	names     []string
	selected  string

	selectHandler func(string)
}

func NewSidebar() *Sidebar {
	sb := &Sidebar{
		buttons: make(map[string]*widget.Button),
	}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *Sidebar) createComponents() {
	sb.heading = canvas.NewText("Categories", ColorSubtle)
	sb.heading.TextStyle = fyne.TextStyle{Bold: true}
	sb.heading.Alignment = fyne.TextAlignCenter
	sb.list = container.NewVBox()
}

func (sb *Sidebar) buildLayout() {
	background := canvas.NewRectangle(ColorSidebar)
	background.SetMinSize(fyne.NewSize(SidebarWidth, 0))

	sb.container = container.NewStack(
		background,
		container.NewBorder(
			container.NewPadded(sb.heading),
			nil, nil, nil,
			container.NewVScroll(container.NewPadded(sb.list)),
		),
	)
}

// SetSimulations replaces the buttons.
func (sb *Sidebar) SetSimulations(names []string) {
	sb.list.RemoveAll()
	sb.buttons = make(map[string]*widget.Button, len(names))
	sb.names = append([]string(nil), names...)

	for _, name := range names {
		button := widget.NewButton(name, nil)
		button.Alignment = widget.ButtonAlignLeading
		button.Importance = widget.LowImportance
		button.OnTapped = func() {
			if sb.selectHandler != nil {
				sb.selectHandler(name)
			}
		}
		sb.buttons[name] = button
		sb.list.Add(button)
	}
	sb.Highlight(sb.selected)
}

// Highlight marks the button for name as selected.
func (sb *Sidebar) Highlight(name string) {
	sb.selected = name
	for n, button := range sb.buttons {
		if n == name {
			button.Importance = widget.HighImportance
		} else {
			button.Importance = widget.LowImportance
		}
		button.Refresh()
	}
}

func (sb *Sidebar) SetSelectHandler(handler func(string)) {
	sb.selectHandler = handler
}

// Button returns the button for name, or nil.
func (sb *Sidebar) Button(name string) *widget.Button {
	return sb.buttons[name]
}

func (sb *Sidebar) Names() []string {
	return append([]string(nil), sb.names...)
}

func (sb *Sidebar) Selected() string {
	return sb.selected
}

func (sb *Sidebar) GetContainer() *fyne.Container {
	return sb.container
}
