// pkg/render/color.go
package render

import "image/color"

// LaneColors — палитра статичного игрового поля
type LaneColors struct {
	Background color.RGBA
	Star       color.RGBA
	Path       color.RGBA
	PathCenter color.RGBA
	Base       color.RGBA
	BaseGlow   color.RGBA
	PathWidth  float32
}

// DarkenColor уменьшает яркость цвета
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// Fade умножает альфу c на f из [0, 1]. Каналы премультиплицированы,
// поэтому RGB масштабируются вместе с ней.
func Fade(c color.RGBA, f float64) color.RGBA {
	f = max(0, min(1, f))
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: uint8(float64(c.A) * f),
	}
}
