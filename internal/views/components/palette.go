package components

import "image/color"

// Dark palette shared by the components and the application theme.
var (
	ColorBackground  = color.NRGBA{R: 0x1e, G: 0x1e, B: 0x1e, A: 0xff}
	ColorHeader      = color.NRGBA{R: 0x11, G: 0x11, B: 0x11, A: 0xff}
	ColorSidebar     = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
	ColorSidebarItem = color.NRGBA{R: 0x2b, G: 0x2b, B: 0x2b, A: 0xff}
	ColorHover       = color.NRGBA{R: 0x3a, G: 0x3a, B: 0x3a, A: 0xff}
	ColorFooter      = color.NRGBA{R: 0x16, G: 0x16, B: 0x16, A: 0xff}
	ColorAccent      = color.NRGBA{R: 0x4a, G: 0x90, B: 0xe2, A: 0xff}

	ColorTitle   = color.NRGBA{R: 0xf7, G: 0xf7, B: 0xf7, A: 0xff}
	ColorText    = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	ColorSubtle  = color.NRGBA{R: 0xdd, G: 0xdd, B: 0xdd, A: 0xff}
	ColorSuccess = color.NRGBA{R: 0xaa, G: 0xff, B: 0xaa, A: 0xff}
	ColorError   = color.NRGBA{R: 0xff, G: 0x77, B: 0x77, A: 0xff}
)

const (
	SidebarWidth   = 260
	HeaderTextSize = 20
	TitleTextSize  = 18
)
