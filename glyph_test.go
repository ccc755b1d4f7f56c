package gfx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/gfx"
)

const uvEpsilon = 1e-6

func TestGlyphGridCellAndUV(t *testing.T) {
	g := gfx.NewGlyphGrid(gfx.Vec2{X: 780, Y: 70}, gfx.Vec2{X: 78, Y: 70})

	assert.Equal(t, 10, g.CellsPerRow())

	col, row := g.Cell(23)
	assert.Equal(t, 3, col)
	assert.Equal(t, 2, row)

	uv := g.UV(23)
	u0 := float32(3) * 78 / 780
	v0 := float32(2) * 70 / 70
	assert.InDelta(t, u0, uv.U0, uvEpsilon)
	assert.InDelta(t, v0, uv.V0, uvEpsilon)
	assert.InDelta(t, u0+float32(78)/780, uv.U1, uvEpsilon)
	assert.InDelta(t, v0+float32(70)/70, uv.V1, uvEpsilon)
}

func TestGlyphGridQuad(t *testing.T) {
	g := gfx.NewGlyphGrid(gfx.Vec2{X: 20, Y: 20}, gfx.Vec2{X: 10, Y: 10})

	positions, uvs := g.Quad(gfx.Vec2{X: 1, Y: 2}, 1, 2)

	assert.Equal(t, [8]float32{1, 2, 21, 2, 21, 22, 1, 22}, positions)
	// Bottom corners sample the cell's last row so the glyph is upright.
	assert.Equal(t, [8]float32{0.5, 0.5, 1, 0.5, 1, 0, 0.5, 0}, uvs)
	assert.Equal(t, float32(20), g.Advance(2))
}

func TestGlyphGridRejectsPartialCells(t *testing.T) {
	assert.Panics(t, func() { gfx.NewGlyphGrid(gfx.Vec2{X: 100, Y: 70}, gfx.Vec2{X: 78, Y: 70}) })
	assert.Panics(t, func() { gfx.NewGlyphGrid(gfx.Vec2{X: 78, Y: 70}, gfx.Vec2{X: 6, Y: 0}) })
	assert.Panics(t, func() { gfx.NewGlyphGrid(gfx.Vec2{X: 5, Y: 10}, gfx.Vec2{X: 6, Y: 10}) })
	assert.NotPanics(t, func() { gfx.NewGlyphGrid(gfx.Vec2{X: 78, Y: 70}, gfx.Vec2{X: 6, Y: 10}) })
}

func TestZeroGlyphGridPanicsWithContractMessage(t *testing.T) {
	var g gfx.GlyphGrid
	assert.PanicsWithValue(t,
		"gfx: glyph grid 0x0 with cells 0x0 has no columns; use NewGlyphGrid",
		func() { g.Cell(3) })
	assert.Panics(t, func() { g.UV(0) })
}

func TestMinogramGlyphs(t *testing.T) {
	g := gfx.NewGlyphGrid(gfx.Vec2{X: 78, Y: 70}, gfx.Vec2{X: 6, Y: 10})
	assert.Equal(t, 13, g.CellsPerRow())

	cases := map[byte]int{
		'A': 0, 'Z': 25,
		'a': 26, 'z': 51,
		'0': 52, '9': 61,
		'.': 80,
		'!': 87, ' ': 87,
	}
	for b, want := range cases {
		assert.Equal(t, want, gfx.MinogramGlyphs.Index(b), "byte %q", b)
	}
	assert.Equal(t, []int{7, 30, 80}, gfx.MinogramGlyphs.Indices("He."))
}

func TestNilGlyphMapIsIdentity(t *testing.T) {
	var m *gfx.GlyphMap
	assert.Equal(t, 65, m.Index('A'))
	assert.Equal(t, []int{0xC3, 0xA9}, m.Indices("é"))
}

func TestGlyphMapFixedAndFallback(t *testing.T) {
	m := &gfx.GlyphMap{
		Ranges:   []gfx.GlyphRange{{First: 'a', Last: 'c', Base: 10}},
		Fixed:    map[byte]int{'!': 3},
		Fallback: 1,
	}
	assert.Equal(t, []int{10, 12, 3, 1}, m.Indices("ac!x"))
}
