package gfx

import (
	"fmt"
	"math"
)

// GlyphGrid describes a texture divided into equal rectangular cells, one
// glyph per cell, numbered left to right then top to bottom.
//
// UV coordinates are normalized to [0,1] by the texture size. Row 0 is the
// first row of the uploaded image, which is its top row for images uploaded
// top row first. Build grids with NewGlyphGrid; the methods panic on a grid
// with no columns.
type GlyphGrid struct {
	TextureWidth, TextureHeight float32
	CellWidth, CellHeight       float32
}

// NewGlyphGrid validates and returns a grid. The texture dimensions must be
// positive exact multiples of the cell dimensions, or UVs would drift out of
// the cells; anything else panics.
func NewGlyphGrid(textureSize, cellSize Vec2) GlyphGrid {
	if cellSize.X <= 0 || cellSize.Y <= 0 || textureSize.X <= 0 || textureSize.Y <= 0 {
		panic(fmt.Sprintf("gfx: glyph grid %vx%v with cells %vx%v: sizes must be positive",
			textureSize.X, textureSize.Y, cellSize.X, cellSize.Y))
	}
	if !isMultiple(textureSize.X, cellSize.X) || !isMultiple(textureSize.Y, cellSize.Y) {
		panic(fmt.Sprintf("gfx: texture %vx%v is not a whole number of %vx%v cells",
			textureSize.X, textureSize.Y, cellSize.X, cellSize.Y))
	}
	return GlyphGrid{
		TextureWidth:  textureSize.X,
		TextureHeight: textureSize.Y,
		CellWidth:     cellSize.X,
		CellHeight:    cellSize.Y,
	}
}

func isMultiple(total, cell float32) bool {
	n := float64(total) / float64(cell)
	return n >= 1 && n == math.Trunc(n)
}

// CellsPerRow returns how many cells fit across the texture. It panics for
// a grid narrower than one cell, such as the zero GlyphGrid.
func (g GlyphGrid) CellsPerRow() int {
	if g.CellWidth <= 0 || g.TextureWidth < g.CellWidth {
		panic(fmt.Sprintf("gfx: glyph grid %vx%v with cells %vx%v has no columns; use NewGlyphGrid",
			g.TextureWidth, g.TextureHeight, g.CellWidth, g.CellHeight))
	}
	return int(g.TextureWidth / g.CellWidth)
}

// Cell returns the column and row of glyph index.
func (g GlyphGrid) Cell(index int) (col, row int) {
	perRow := g.CellsPerRow()
	return index % perRow, index / perRow
}

// UV returns the normalized texture rectangle of glyph index. Indices past
// the last row yield coordinates above 1.
func (g GlyphGrid) UV(index int) UVRect {
	col, row := g.Cell(index)
	tw := g.CellWidth / g.TextureWidth
	th := g.CellHeight / g.TextureHeight
	u0 := float32(col) * g.CellWidth / g.TextureWidth
	v0 := float32(row) * g.CellHeight / g.TextureHeight
	return UVRect{U0: u0, V0: v0, U1: u0 + tw, V1: v0 + th}
}

// Quad returns the four corner positions and texture coordinates of glyph
// index drawn at pos with the given scale. Corners run bottom-left,
// bottom-right, top-right, top-left in a y-up space; the top edge takes the
// cell's first texel row so glyphs appear upright.
func (g GlyphGrid) Quad(pos Vec2, index int, scale float32) (positions, uvs [8]float32) {
	w := g.CellWidth * scale
	h := g.CellHeight * scale
	positions = [8]float32{
		pos.X, pos.Y,
		pos.X + w, pos.Y,
		pos.X + w, pos.Y + h,
		pos.X, pos.Y + h,
	}
	uv := g.UV(index)
	uvs = [8]float32{
		uv.U0, uv.V1,
		uv.U1, uv.V1,
		uv.U1, uv.V0,
		uv.U0, uv.V0,
	}
	return positions, uvs
}

// Advance returns the pen advance after one glyph at scale.
func (g GlyphGrid) Advance(scale float32) float32 {
	return g.CellWidth * scale
}

// GlyphRange maps the bytes First..Last onto consecutive glyph indices
// starting at Base.
type GlyphRange struct {
	First, Last byte
	Base        int
}

// GlyphMap translates text bytes to glyph indices of one particular font
// sheet. Ranges are tried in order, then Fixed; anything unmatched maps to
// Fallback. A nil *GlyphMap maps every byte to its own value.
type GlyphMap struct {
	Ranges   []GlyphRange
	Fixed    map[byte]int
	Fallback int
}

// MinogramGlyphs is the layout of the 78×70 "minogram" bitmap font sheet
// (6×10 cells, 13 per row): uppercase letters first, then lowercase, then
// digits.
var MinogramGlyphs = &GlyphMap{
	Ranges: []GlyphRange{
		{First: 'a', Last: 'z', Base: 'a' - 71},
		{First: 'A', Last: 'Z', Base: 'A' - 65},
		{First: '0', Last: '9', Base: '0' + 4},
	},
	Fixed:    map[byte]int{'.': 80},
	Fallback: 87,
}

// Index returns the glyph index for b.
func (m *GlyphMap) Index(b byte) int {
	if m == nil {
		return int(b)
	}
	for _, r := range m.Ranges {
		if b >= r.First && b <= r.Last {
			return r.Base + int(b-r.First)
		}
	}
	if i, ok := m.Fixed[b]; ok {
		return i
	}
	return m.Fallback
}

// Indices maps every byte of s. Multi-byte UTF-8 sequences map byte by byte.
func (m *GlyphMap) Indices(s string) []int {
	out := make([]int, len(s))
	for i := 0; i < len(s); i++ {
		out[i] = m.Index(s[i])
	}
	return out
}
