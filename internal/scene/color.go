package scene

import "fmt"

// RGB is an 8-bit-per-channel color.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Hex returns the color as a #rrggbb string.
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// Palette is the fixed set of colors the object cycles through. Twelve
// evenly spaced hues at full saturation.
var Palette = [12]RGB{
	{R: 255, G: 0, B: 0},   // red
	{R: 255, G: 128, B: 0}, // orange
	{R: 255, G: 255, B: 0}, // yellow
	{R: 128, G: 255, B: 0}, // chartreuse
	{R: 0, G: 255, B: 0},   // green
	{R: 0, G: 255, B: 128}, // spring green
	{R: 0, G: 255, B: 255}, // cyan
	{R: 0, G: 128, B: 255}, // azure
	{R: 0, G: 0, B: 255},   // blue
	{R: 128, G: 0, B: 255}, // violet
	{R: 255, G: 0, B: 255}, // magenta
	{R: 255, G: 0, B: 128}, // rose
}
