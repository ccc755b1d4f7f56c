package gfx

const atlasVertexSource = `
#version 410 core
layout (location = 0) in vec4 vertex; // <vec2 pos, vec2 tex>
out vec2 tex_coords;

uniform mat4 projection;

void main() {
    gl_Position = projection * vec4(vertex.xy, 0.0, 1.0);
    tex_coords = vertex.zw;
}
`

const atlasFragmentSource = `
#version 410 core
in vec2 tex_coords;
out vec4 color;

uniform sampler2D text;

void main() {
    color = vec4(1.0, 1.0, 1.0, texture(text, tex_coords).r);
}
`

// atlasVertexCount is the number of vertices per glyph: two unindexed
// triangles.
const atlasVertexCount = 6

// TextureAtlas draws text from a single-channel glyph sheet, using the red
// channel as coverage. Unlike SpriteSheet it owns its texture and streams
// interleaved position+UV vertices through one buffer.
type TextureAtlas struct {
	d       Driver
	texture *Texture
	slot    *ActiveTextureSlot
	grid    GlyphGrid
	glyph   *GlyphMap
	blend   bool

	vao     *VertexArray
	buffer  *Buffer
	program *Program
}

// NewTextureAtlas creates an atlas over texture, which it takes ownership of
// once it returns without error.
// textureSize and symbolSize describe the cell grid.
//
// Options: WithShaders, WithGlyphMap, WithTextureSlot (default 1),
// WithAlphaBlend.
func NewTextureAtlas(d Driver, texture *Texture, textureSize, symbolSize Vec2, opts ...Option) (*TextureAtlas, error) {
	grid := NewGlyphGrid(textureSize, symbolSize)
	o := applyOptions(opts)

	slot, err := NewActiveTextureSlot(GetOpt(o, OptTextureSlot))
	if err != nil {
		return nil, err
	}

	src := shaderSources(o, ShaderSources{Vertex: atlasVertexSource, Fragment: atlasFragmentSource})
	program, err := NewProgramFromSource(d, src.Vertex, src.Fragment)
	if err != nil {
		return nil, err
	}

	a := &TextureAtlas{
		d:       d,
		texture: texture,
		slot:    slot,
		grid:    grid,
		glyph:   GetOpt(o, OptGlyphMap),
		blend:   GetOpt(o, OptAlphaBlend),
		vao:     NewVertexArray(d),
		program: program,
	}
	a.vao.Bind()
	a.buffer = NewBuffer(d, ArrayBuffer)
	a.buffer.UploadEmpty(atlasVertexCount*4*4, DynamicDraw)
	SetupAttribute(d, 0, 4, 0, 4, TypeFloat)

	return a, nil
}

// Grid returns the atlas cell layout.
func (a *TextureAtlas) Grid() GlyphGrid { return a.grid }

// Texture returns the owned texture.
func (a *TextureAtlas) Texture() *Texture { return a.texture }

// DrawGlyph draws cell glyph with its bottom-left corner at pos.
func (a *TextureAtlas) DrawGlyph(pos Vec2, glyph int, projection Mat4, scale float32) error {
	if err := a.bind(projection); err != nil {
		return err
	}
	a.drawGlyph(pos, glyph, scale)
	return nil
}

// DrawText draws text left to right from start, one glyph per byte. It
// returns the number of glyphs drawn.
func (a *TextureAtlas) DrawText(text string, start Vec2, projection Mat4, scale float32) (int, error) {
	if err := a.bind(projection); err != nil {
		return 0, err
	}
	pen := start
	for i := 0; i < len(text); i++ {
		a.drawGlyph(pen, a.glyph.Index(text[i]), scale)
		pen.X += a.grid.Advance(scale)
	}
	return len(text), nil
}

func (a *TextureAtlas) bind(projection Mat4) error {
	a.slot.Bind(a.d, a.texture)
	if a.blend {
		EnableAlphaBlend(a.d)
	}
	if err := a.program.SetUniform("text", a.slot); err != nil {
		return err
	}
	return a.program.SetUniform("projection", projection)
}

func (a *TextureAtlas) drawGlyph(pos Vec2, glyph int, scale float32) {
	p, uv := a.grid.Quad(pos, glyph, scale)
	// Corners 0-1-2 and 0-2-3 of the quad, each vertex <x, y, u, v>.
	vertices := make([]float32, 0, atlasVertexCount*4)
	for _, c := range [atlasVertexCount]int{0, 1, 2, 0, 2, 3} {
		vertices = append(vertices, p[c*2], p[c*2+1], uv[c*2], uv[c*2+1])
	}

	a.vao.Bind()
	a.buffer.UpdateSubrange(0, Float32Bytes(vertices))
	a.vao.DrawArrays(Triangles, 0, atlasVertexCount)
}

// Delete releases the texture, mesh and program.
func (a *TextureAtlas) Delete() {
	a.buffer.Delete()
	a.vao.Delete()
	a.program.Delete()
	a.texture.Delete()
}
