package ui

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/pkg/errors"
)

// ErrInvalidFont is returned when raylib could not build a font from the file.
var ErrInvalidFont = errors.New("invalid font")

// TextRenderer owns one loaded font at a fixed size.
type TextRenderer struct {
	font    rl.Font
	size    float32
	spacing float32
	color   rl.Color
}

// LoadFont loads a TTF file. It must be called after the window exists.
func LoadFont(path string, size int32) (*TextRenderer, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(err, "load font")
	}

	font := rl.LoadFontEx(path, size, nil)
	if !rl.IsFontValid(font) {
		return nil, errors.Wrapf(ErrInvalidFont, "load font %s", path)
	}

	return &TextRenderer{
		font:    font,
		size:    float32(size),
		spacing: 1,
		color:   rl.White,
	}, nil
}

// Draw renders text with its top-left corner at (x, y).
func (tr *TextRenderer) Draw(text string, x, y int32) {
	rl.DrawTextEx(tr.font, text, rl.Vector2{X: float32(x), Y: float32(y)}, tr.size, tr.spacing, tr.color)
}

// Close releases the font. The TextRenderer must not be used afterwards.
func (tr *TextRenderer) Close() {
	rl.UnloadFont(tr.font)
}
