package render

import "image/color"

// Palette for the screenshot mockups, loosely following macOS light mode.
var (
	Background = color.RGBA{R: 0xEC, G: 0xEC, B: 0xEE, A: 0xFF}
	Panel      = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Foreground = color.RGBA{R: 0x1D, G: 0x1D, B: 0x1F, A: 0xFF}
	Secondary  = color.RGBA{R: 0x6E, G: 0x6E, B: 0x73, A: 0xFF}
	Separator  = color.RGBA{R: 0xD2, G: 0xD2, B: 0xD7, A: 0xFF}
	Accent     = color.RGBA{R: 0x0A, G: 0x84, B: 0xFF, A: 0xFF}
	Ready      = color.RGBA{R: 0x34, G: 0xC7, B: 0x59, A: 0xFF}

	// Indicator colors match the badge colors used in the manual.
	RecordingRed     = color.RGBA{R: 0xE7, G: 0x4C, B: 0x3C, A: 0xFF}
	TranscribingBlue = color.RGBA{R: 0x34, G: 0x98, B: 0xDB, A: 0xFF}
	Capsule          = color.RGBA{R: 0x24, G: 0x24, B: 0x26, A: 0xFF}
	CapsuleText      = color.RGBA{R: 0xF5, G: 0xF5, B: 0xF7, A: 0xFF}
)

// Supersample is the factor mockups are drawn at before being scaled down
// to their logical size.
const Supersample = 2
