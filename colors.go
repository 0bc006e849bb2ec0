package vtscreen

import "image/color"

// DefaultPalette is the standard xterm-compatible 256-color palette:
// 16 named colors (0-15), a 216-color cube (16-231), and 24 grayscale
// steps (232-255). Attr.FgCode/BgCode index into it when >= 0.
var DefaultPalette = [256]color.RGBA{
	// Standard colors (0-7)
	{0, 0, 0, 255},       // Black
	{205, 49, 49, 255},   // Red
	{13, 188, 121, 255},  // Green
	{229, 229, 16, 255},  // Yellow
	{36, 114, 200, 255},  // Blue
	{188, 63, 188, 255},  // Magenta
	{17, 168, 205, 255},  // Cyan
	{229, 229, 229, 255}, // White

	// Bright colors (8-15)
	{102, 102, 102, 255}, // Bright Black
	{241, 76, 76, 255},   // Bright Red
	{35, 209, 139, 255},  // Bright Green
	{245, 245, 67, 255},  // Bright Yellow
	{59, 142, 234, 255},  // Bright Blue
	{214, 112, 214, 255}, // Bright Magenta
	{41, 184, 219, 255},  // Bright Cyan
	{255, 255, 255, 255}, // Bright White

	// 216 colors (16-231) and grayscale (232-255) are generated below.
}

func init() {
	i := 16
	for r := 0; r < 6; r++ {
		for g := 0; g < 6; g++ {
			for b := 0; b < 6; b++ {
				DefaultPalette[i] = color.RGBA{
					R: uint8(r * 51),
					G: uint8(g * 51),
					B: uint8(b * 51),
					A: 255,
				}
				i++
			}
		}
	}

	for j := 0; j < 24; j++ {
		gray := uint8(8 + j*10)
		DefaultPalette[232+j] = color.RGBA{R: gray, G: gray, B: gray, A: 255}
	}
}

// DefaultForeground is the default text color (light gray).
var DefaultForeground = color.RGBA{R: 229, G: 229, B: 229, A: 255}

// DefaultBackground is the default background color (black).
var DefaultBackground = color.RGBA{R: 0, G: 0, B: 0, A: 255}

// DefaultCursorColor is the color used to render the cursor block.
var DefaultCursorColor = color.RGBA{R: 229, G: 229, B: 229, A: 255}
