package gfx

import (
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// Printable ASCII covered by NewFontSheet.
const (
	firstPrintable = ' '
	lastPrintable  = '~'
)

// FontSheet is a glyph grid image rasterized from a font face, ready to be
// uploaded with NewTextureFromImage and drawn by a SpriteSheet or
// TextureAtlas.
type FontSheet struct {
	Image  *image.RGBA
	Glyphs *GlyphMap
	Cell   Vec2
}

// Size returns the sheet size in pixels.
func (f *FontSheet) Size() Vec2 {
	b := f.Image.Bounds()
	return Vec2{X: float32(b.Dx()), Y: float32(b.Dy())}
}

// NewFontSheet renders the printable ASCII range of face into cells of one
// advance width by one line height, perRow cells per row. Glyphs are white
// with coverage in every channel, so the sheet works both as an RGBA sprite
// sheet and as a red-channel atlas. Bytes outside the range map to '?'.
//
// Works with monospace faces such as basicfont.Face7x13; proportional faces
// are laid out on the width of 'M'.
func NewFontSheet(face font.Face, perRow int) *FontSheet {
	if perRow <= 0 {
		panic("gfx: font sheet needs at least one cell per row")
	}
	advance, ok := face.GlyphAdvance('M')
	if !ok {
		advance = font.MeasureString(face, "M")
	}
	m := face.Metrics()
	cellW := advance.Ceil()
	cellH := (m.Ascent + m.Descent).Ceil()

	count := int(lastPrintable - firstPrintable + 1)
	rows := (count + perRow - 1) / perRow
	img := image.NewRGBA(image.Rect(0, 0, perRow*cellW, rows*cellH))

	drawer := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.White),
		Face: face,
	}
	for i := 0; i < count; i++ {
		col, row := i%perRow, i/perRow
		drawer.Dot = fixed.Point26_6{
			X: fixed.I(col * cellW),
			Y: fixed.I(row*cellH) + m.Ascent,
		}
		drawer.DrawString(string(rune(firstPrintable + i)))
	}

	return &FontSheet{
		Image: img,
		Glyphs: &GlyphMap{
			Ranges:   []GlyphRange{{First: firstPrintable, Last: lastPrintable, Base: 0}},
			Fallback: '?' - firstPrintable,
		},
		Cell: Vec2{X: float32(cellW), Y: float32(cellH)},
	}
}
