package gfx

// SpriteQuad is the mesh shared by every Sprite: one vertex array with a
// dynamic position buffer, a static UV buffer and a static index buffer for
// two triangles. Sprites sharing a quad must be drawn one after another on
// the same thread; each Draw rewrites the position buffer.
type SpriteQuad struct {
	vao       *VertexArray
	positions *Buffer
	uvs       *Buffer
	indices   *Buffer
}

// quadIndices splits the quad 0-1-2-3 into two triangles.
var quadIndices = []uint32{0, 1, 3, 1, 2, 3}

// quadUVs puts texel row 0 on the top edge, matching GlyphGrid.Quad, so
// textures uploaded top row first draw upright.
var quadUVs = []float32{0, 1, 1, 1, 1, 0, 0, 0}

// QuadIndexCount is the number of indices drawn per quad.
const QuadIndexCount = 6

// NewSpriteQuad allocates the shared sprite mesh.
func NewSpriteQuad(d Driver) *SpriteQuad {
	q := &SpriteQuad{vao: NewVertexArray(d)}
	q.vao.Bind()

	q.positions = NewBuffer(d, ArrayBuffer)
	q.positions.UploadEmpty(8*4, DynamicDraw)
	SetupAttribute(d, 0, 2, 0, 0, TypeFloat)

	q.uvs = NewBuffer(d, ArrayBuffer)
	q.uvs.Upload(Float32Bytes(quadUVs), StaticDraw)
	SetupAttribute(d, 1, 2, 0, 0, TypeFloat)

	q.indices = NewBuffer(d, ElementArrayBuffer)
	q.indices.Upload(Uint32Bytes(quadIndices), StaticDraw)

	return q
}

// Delete releases the mesh. Sprites using it must not be drawn afterwards.
func (q *SpriteQuad) Delete() {
	q.indices.Delete()
	q.uvs.Delete()
	q.positions.Delete()
	q.vao.Delete()
}

const spriteVertexSource = `
#version 410 core
layout (location = 0) in vec2 position;
layout (location = 1) in vec2 uv;
out vec2 tex_uv;

uniform mat4 mvp;

void main() {
    gl_Position = mvp * vec4(position, 0.0, 1.0);
    gl_Position.z = 0.0;
    tex_uv = uv;
}
`

const spriteFragmentSource = `
#version 410 core
in vec2 tex_uv;
out vec4 color;

uniform sampler2D sprite;

void main() {
    color = texture(sprite, tex_uv);
}
`

// Sprite draws one textured rectangle the size of its texture.
type Sprite struct {
	d       Driver
	quad    *SpriteQuad
	slot    *ActiveTextureSlot
	program *Program
	size    Vec2
}

// NewSprite creates a sprite that samples the texture bound to slot and
// draws through quad. size is the texture size in pixels. The texture's
// first row is drawn along the top edge, as NewTextureFromImage uploads it.
//
// Options: WithShaders. Replacement shaders must read attributes 0 (position)
// and 1 (uv) and declare the mvp and sprite uniforms.
func NewSprite(d Driver, quad *SpriteQuad, slot *ActiveTextureSlot, size Vec2, opts ...Option) (*Sprite, error) {
	src := shaderSources(applyOptions(opts), ShaderSources{Vertex: spriteVertexSource, Fragment: spriteFragmentSource})
	program, err := NewProgramFromSource(d, src.Vertex, src.Fragment)
	if err != nil {
		return nil, err
	}
	return &Sprite{d: d, quad: quad, slot: slot, program: program, size: size}, nil
}

// Size returns the unscaled sprite size.
func (s *Sprite) Size() Vec2 { return s.size }

// Bounds returns the rectangle covered by a draw at pos and scale.
func (s *Sprite) Bounds(pos Vec2, scale float32) Rect {
	return Rect{X: pos.X, Y: pos.Y, W: s.size.X * scale, H: s.size.Y * scale}
}

// Draw renders the sprite with its bottom-left corner at pos, scaled by
// scale and transformed by mvp. Every binding it relies on is re-issued.
func (s *Sprite) Draw(pos Vec2, mvp Mat4, scale float32) error {
	b := s.Bounds(pos, scale)
	verts := []float32{
		b.X, b.Y,
		b.X + b.W, b.Y,
		b.X + b.W, b.Y + b.H,
		b.X, b.Y + b.H,
	}

	s.program.Use()
	s.slot.Rebind()
	s.quad.vao.Bind()
	s.quad.positions.UpdateSubrange(0, Float32Bytes(verts))

	if err := s.program.SetUniform("mvp", mvp); err != nil {
		return err
	}
	if err := s.program.SetUniform("sprite", s.slot); err != nil {
		return err
	}

	s.quad.indices.Bind()
	s.quad.vao.DrawElements(Triangles, QuadIndexCount, TypeUnsignedInt)
	return nil
}

// Delete releases the sprite's program. The quad and texture are not owned
// by the sprite and stay alive.
func (s *Sprite) Delete() {
	s.program.Delete()
}
