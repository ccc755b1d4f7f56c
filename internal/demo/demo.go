// Package demo holds the scenes shared by the example program and the
// screenshot generator.
package demo

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font/basicfont"

	"github.com/go-theft-auto/gfx"
)

// Frame is the per-frame input of a scene.
type Frame struct {
	Time   float32
	Camera *gfx.Camera
}

// Scene is one self-contained drawing.
type Scene interface {
	Name() string
	Draw(f Frame) error
	Delete()
}

// Names lists the scenes New understands, in drawing order.
var Names = []string{"triangle", "text", "sprite"}

// New creates the named scene.
func New(d gfx.Driver, name string) (Scene, error) {
	var (
		s   Scene
		err error
	)
	switch name {
	case "triangle":
		s, err = NewTriangle(d)
	case "text":
		s, err = NewText(d)
	case "sprite":
		s, err = NewSprite(d)
	default:
		return nil, fmt.Errorf("unknown scene %q", name)
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

const triangleVertexSource = `
#version 410 core
layout (location = 0) in vec2 position;
out vec3 tint;

uniform float time;

void main() {
    float c = cos(time);
    float s = sin(time);
    gl_Position = vec4(c * position.x - s * position.y, s * position.x + c * position.y, 0.0, 1.0);
    tint = vec3(0.5 + 0.5 * c, 0.5 + 0.5 * s, 0.8);
}
`

const triangleFragmentSource = `
#version 410 core
in vec3 tint;
out vec4 color;

void main() {
    color = vec4(tint, 1.0);
}
`

// Triangle is a colored triangle rotating with time.
type Triangle struct {
	vao      *gfx.VertexArray
	vertices *gfx.Buffer
	program  *gfx.Program
}

// NewTriangle builds the triangle mesh and program.
func NewTriangle(d gfx.Driver) (*Triangle, error) {
	program, err := gfx.NewProgramFromSource(d, triangleVertexSource, triangleFragmentSource)
	if err != nil {
		return nil, fmt.Errorf("triangle program: %w", err)
	}
	t := &Triangle{vao: gfx.NewVertexArray(d), program: program}
	t.vao.Bind()
	t.vertices = gfx.NewBuffer(d, gfx.ArrayBuffer)
	t.vertices.Upload(gfx.Float32Bytes([]float32{
		-0.5, -0.5,
		0.5, -0.5,
		0.0, 0.5,
	}), gfx.StaticDraw)
	gfx.SetupAttribute(d, 0, 2, 0, 0, gfx.TypeFloat)
	return t, nil
}

func (t *Triangle) Name() string { return "triangle" }

func (t *Triangle) Draw(f Frame) error {
	t.program.Use()
	if err := t.program.SetUniform("time", gfx.Float(f.Time)); err != nil {
		return err
	}
	t.vao.DrawArrays(gfx.Triangles, 0, 3)
	return nil
}

func (t *Triangle) Delete() {
	t.vertices.Delete()
	t.vao.Delete()
	t.program.Delete()
}

// Text draws one line through a SpriteSheet and one through a TextureAtlas,
// both rasterized from basicfont.Face7x13.
type Text struct {
	texture *gfx.Texture
	sheet   *gfx.SpriteSheet
	atlas   *gfx.TextureAtlas
}

const textScale = 3

// NewText rasterizes the font and creates both text renderers.
func NewText(d gfx.Driver) (*Text, error) {
	fs := gfx.NewFontSheet(basicfont.Face7x13, 16)
	nearest := gfx.WithFilter(gfx.Nearest, gfx.Nearest)

	texture := gfx.NewTextureFromImage(d, fs.Image, nearest)
	slot := gfx.MustActiveTextureSlot(0)
	slot.Bind(d, texture)

	sheet, err := gfx.NewSpriteSheet(d, slot, fs.Size(), fs.Cell, gfx.WithGlyphMap(fs.Glyphs))
	if err != nil {
		texture.Delete()
		return nil, fmt.Errorf("sprite sheet: %w", err)
	}

	atlasTexture := gfx.NewTextureFromImage(d, fs.Image, nearest)
	atlas, err := gfx.NewTextureAtlas(d, atlasTexture, fs.Size(), fs.Cell,
		gfx.WithGlyphMap(fs.Glyphs), gfx.WithTextureSlot(2))
	if err != nil {
		atlasTexture.Delete()
		sheet.Delete()
		texture.Delete()
		return nil, fmt.Errorf("texture atlas: %w", err)
	}

	return &Text{texture: texture, sheet: sheet, atlas: atlas}, nil
}

func (t *Text) Name() string { return "text" }

func (t *Text) Draw(f Frame) error {
	projection := f.Camera.OrthoProjection()
	top := float32(f.Camera.Height)
	line := t.sheet.Grid().CellHeight * textScale

	if _, err := t.sheet.DrawText("Hello from gfx!", gfx.Vec2{X: 20, Y: top - 20 - line}, projection, textScale); err != nil {
		return err
	}
	_, err := t.atlas.DrawText(fmt.Sprintf("t = %.2fs", f.Time), gfx.Vec2{X: 20, Y: top - 40 - 2*line}, projection, textScale)
	return err
}

func (t *Text) Delete() {
	t.atlas.Delete()
	t.sheet.Delete()
	t.texture.Delete()
}

// Sprite draws a checkerboard sprite centered in the window. Scale can be
// changed between frames.
type Sprite struct {
	Scale float32

	quad    *gfx.SpriteQuad
	texture *gfx.Texture
	sprite  *gfx.Sprite
}

const (
	spriteScaleStep = 1.1
	spriteMinScale  = 0.1
	spriteMaxScale  = 10
)

// NewSprite creates the shared quad, the checkerboard texture and the sprite.
func NewSprite(d gfx.Driver) (*Sprite, error) {
	quad := gfx.NewSpriteQuad(d)
	texture := gfx.NewTextureFromImage(d, Checkerboard(64, 8), gfx.WithFilter(gfx.Nearest, gfx.Nearest))
	slot := gfx.MustActiveTextureSlot(3)
	slot.Bind(d, texture)

	sprite, err := gfx.NewSprite(d, quad, slot, texture.Size())
	if err != nil {
		texture.Delete()
		quad.Delete()
		return nil, fmt.Errorf("sprite: %w", err)
	}
	return &Sprite{Scale: 2, quad: quad, texture: texture, sprite: sprite}, nil
}

// Grow enlarges the sprite by one step.
func (s *Sprite) Grow() { s.Scale = min(s.Scale*spriteScaleStep, spriteMaxScale) }

// Shrink reduces the sprite by one step.
func (s *Sprite) Shrink() { s.Scale = max(s.Scale/spriteScaleStep, spriteMinScale) }

func (s *Sprite) Name() string { return "sprite" }

func (s *Sprite) Draw(f Frame) error {
	size := s.sprite.Size().Mul(s.Scale)
	center := gfx.Vec2{X: float32(f.Camera.Width) / 2, Y: float32(f.Camera.Height) / 2}
	return s.sprite.Draw(center.Sub(size.Mul(0.5)), f.Camera.OrthoProjection(), s.Scale)
}

func (s *Sprite) Delete() {
	s.sprite.Delete()
	s.texture.Delete()
	s.quad.Delete()
}

// Checkerboard returns a size×size image of alternating cell×cell squares.
func Checkerboard(size, cell int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	light := color.RGBA{R: 0xE0, G: 0xC0, B: 0x40, A: 0xFF}
	dark := color.RGBA{R: 0x30, G: 0x30, B: 0x60, A: 0xFF}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			c := dark
			if (x/cell+y/cell)%2 == 0 {
				c = light
			}
			img.SetRGBA(x, y, c)
		}
	}
	return img
}
