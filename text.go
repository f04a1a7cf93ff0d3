package drift

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

// face is the shared bitmap face used for all text in drift. The page is
// decorative; a single fixed-width bitmap face keeps rendering free of font
// assets.
var face = text.NewGoXFace(basicfont.Face7x13)

// glyphHeight is the line height of the shared face in pixels.
const glyphHeight = 13

// glyphWidth is the advance of one glyph of the shared face in pixels.
const glyphWidth = 7

// DrawText draws s at (x, y) (top-left origin) with a uniform scale and color.
func DrawText(dst *ebiten.Image, s string, x, y, scale float64, c Color) {
	if dst == nil || s == "" {
		return
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(premultiply(c, c.A))
	text.Draw(dst, s, face, op)
}

// TextWidth returns the rendered width of s at the given scale.
func TextWidth(s string, scale float64) float64 {
	return text.Advance(s, face) * scale
}
