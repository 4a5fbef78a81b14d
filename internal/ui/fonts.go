// internal/ui/fonts.go
package ui

import (
	"fmt"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

const (
	titleFontSize   = 18
	regularFontSize = 14
	largeFontSize   = 40
)

// Fonts — набор шрифтов интерфейса
type Fonts struct {
	Regular font.Face
	Title   font.Face
	Large   font.Face
}

// LoadFonts создаёт шрифты из встроенного Go Regular.
func LoadFonts() (*Fonts, error) {
	tt, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	face := func(size float64) (font.Face, error) {
		return opentype.NewFace(tt, &opentype.FaceOptions{
			Size:    size,
			DPI:     72,
			Hinting: font.HintingFull,
		})
	}

	var f Fonts
	if f.Regular, err = face(regularFontSize); err != nil {
		return nil, fmt.Errorf("failed to create regular face: %w", err)
	}
	if f.Title, err = face(titleFontSize); err != nil {
		return nil, fmt.Errorf("failed to create title face: %w", err)
	}
	if f.Large, err = face(largeFontSize); err != nil {
		return nil, fmt.Errorf("failed to create large face: %w", err)
	}
	return &f, nil
}
