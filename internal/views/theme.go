package views

import (
	"image/color"

	"concept-visualizer/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// darkTheme overrides the default theme's colors with the application palette.
type darkTheme struct {
	fyne.Theme
}

// NewTheme returns the dark application theme.
func NewTheme() fyne.Theme {
	return &darkTheme{Theme: theme.DefaultTheme()}
}

func (t *darkTheme) Color(name fyne.ThemeColorName, _ fyne.ThemeVariant) color.Color {
	switch name {
	case theme.ColorNameBackground:
		return components.ColorBackground
	case theme.ColorNameForeground:
		return components.ColorText
	case theme.ColorNameButton:
		return components.ColorSidebarItem
	case theme.ColorNameHover:
		return components.ColorHover
	case theme.ColorNamePrimary:
		return components.ColorAccent
	case theme.ColorNameInputBackground:
		return components.ColorSidebarItem
	case theme.ColorNameSuccess:
		return components.ColorSuccess
	case theme.ColorNameError:
		return components.ColorError
	}
	return t.Theme.Color(name, theme.VariantDark)
}
