package gfx

const sheetVertexSource = `
#version 410 core
layout (location = 0) in vec2 position;
layout (location = 1) in vec2 tex_coords;
out vec2 frag_tex_coords;

uniform mat4 transform;

void main() {
    gl_Position = transform * vec4(position, 0.0, 1.0);
    frag_tex_coords = tex_coords;
}
`

const sheetFragmentSource = `
#version 410 core
in vec2 frag_tex_coords;
out vec4 color;

uniform sampler2D tex;

void main() {
    color = texture(tex, frag_tex_coords);
}
`

// SpriteSheet draws cells of a glyph grid texture as individual quads, one
// draw call per glyph. It owns its mesh and program and borrows the texture
// bound to its slot.
type SpriteSheet struct {
	d     Driver
	slot  *ActiveTextureSlot
	grid  GlyphGrid
	glyph *GlyphMap
	blend bool

	vao       *VertexArray
	positions *Buffer
	uvs       *Buffer
	indices   *Buffer
	program   *Program
}

// NewSpriteSheet creates a renderer for a textureSize sheet of symbolSize
// cells bound to slot. The sheet dimensions must be exact multiples of the
// cell size.
//
// Options: WithShaders, WithGlyphMap, WithAlphaBlend.
func NewSpriteSheet(d Driver, slot *ActiveTextureSlot, textureSize, symbolSize Vec2, opts ...Option) (*SpriteSheet, error) {
	grid := NewGlyphGrid(textureSize, symbolSize)
	o := applyOptions(opts)

	src := shaderSources(o, ShaderSources{Vertex: sheetVertexSource, Fragment: sheetFragmentSource})
	program, err := NewProgramFromSource(d, src.Vertex, src.Fragment)
	if err != nil {
		return nil, err
	}

	s := &SpriteSheet{
		d:       d,
		slot:    slot,
		grid:    grid,
		glyph:   GetOpt(o, OptGlyphMap),
		blend:   GetOpt(o, OptAlphaBlend),
		vao:     NewVertexArray(d),
		program: program,
	}
	s.vao.Bind()

	s.positions = NewBuffer(d, ArrayBuffer)
	s.positions.UploadEmpty(8*4, DynamicDraw)
	SetupAttribute(d, 0, 2, 0, 0, TypeFloat)

	s.uvs = NewBuffer(d, ArrayBuffer)
	s.uvs.UploadEmpty(8*4, DynamicDraw)
	SetupAttribute(d, 1, 2, 0, 0, TypeFloat)

	s.indices = NewBuffer(d, ElementArrayBuffer)
	s.indices.Upload(Uint32Bytes(quadIndices), StaticDraw)

	return s, nil
}

// Grid returns the sheet's cell layout.
func (s *SpriteSheet) Grid() GlyphGrid { return s.grid }

// DrawGlyph draws cell glyph with its bottom-left corner at pos, scaled by
// scale and transformed by transform.
func (s *SpriteSheet) DrawGlyph(pos Vec2, glyph int, transform Mat4, scale float32) error {
	positions, uvs := s.grid.Quad(pos, glyph, scale)

	s.vao.Bind()
	s.program.Use()
	s.slot.Rebind()
	s.positions.UpdateSubrange(0, Float32Bytes(positions[:]))
	s.uvs.UpdateSubrange(0, Float32Bytes(uvs[:]))

	if err := s.program.SetUniform("transform", transform); err != nil {
		return err
	}
	if err := s.program.SetUniform("tex", s.slot); err != nil {
		return err
	}

	if s.blend {
		EnableAlphaBlend(s.d)
	}

	s.indices.Bind()
	s.vao.DrawElements(Triangles, QuadIndexCount, TypeUnsignedInt)
	return nil
}

// DrawText draws text left to right starting at start, one glyph per byte,
// advancing the pen by the cell width times scale. There is no kerning or
// wrapping. It returns the number of glyphs drawn.
func (s *SpriteSheet) DrawText(text string, start Vec2, transform Mat4, scale float32) (int, error) {
	pen := start
	for i := 0; i < len(text); i++ {
		if err := s.DrawGlyph(pen, s.glyph.Index(text[i]), transform, scale); err != nil {
			return i, err
		}
		pen.X += s.grid.Advance(scale)
	}
	return len(text), nil
}

// Delete releases the sheet's mesh and program. The texture is not owned by
// the sheet.
func (s *SpriteSheet) Delete() {
	s.indices.Delete()
	s.uvs.Delete()
	s.positions.Delete()
	s.vao.Delete()
	s.program.Delete()
}
