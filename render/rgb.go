package render

import "github.com/gdamore/tcell/v2"

// RGB is a 24-bit colour
type RGB struct {
	R, G, B uint8
}

// Palette
var (
	RGBGreen  = RGB{R: 0, G: 230, B: 64}
	RGBYellow = RGB{R: 240, G: 220, B: 0}
	RGBRed    = RGB{R: 230, G: 40, B: 40}
)

// TCell converts to a tcell colour; tcell downsamples on 256-colour terminals
func (c RGB) TCell() tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// HealthColor returns the ship tint for a health value
func HealthColor(health int) RGB {
	switch {
	case health >= 3:
		return RGBGreen
	case health == 2:
		return RGBYellow
	default:
		return RGBRed
	}
}
