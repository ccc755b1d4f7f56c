package gfx_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/gfxtest"
)

const minimalVertexSource = `
#version 410 core
layout (location = 0) in vec2 position;

uniform mat4 mvp;
uniform float time;

void main() {
    gl_Position = mvp * vec4(position, time, 1.0);
}
`

const minimalFragmentSource = `
#version 410 core
out vec4 color;

uniform sampler2D tex;

void main() {
    color = texture(tex, vec2(0.0));
}
`

const brokenSource = `void main() {`

func TestProgramFromSourceLinks(t *testing.T) {
	d := gfxtest.New()
	p, err := gfx.NewProgramFromSource(d, minimalVertexSource, minimalFragmentSource)
	require.NoError(t, err)
	require.NotZero(t, p.ID())

	// Shaders are released once linked.
	assert.Equal(t, 0, d.Live(gfxtest.KindShader))
	assert.Equal(t, 2, d.Created(gfxtest.KindShader))
	assert.ElementsMatch(t, []string{"mvp", "time", "tex"}, d.Uniforms(p.ID()))

	p.Delete()
	p.Delete()
	assert.Equal(t, 0, d.Live(gfxtest.KindProgram))
	assert.Equal(t, 0, d.DoubleDeletes())
}

func TestInvalidFragmentShaderLeaksNothing(t *testing.T) {
	d := gfxtest.New()
	p, err := gfx.NewProgramFromSource(d, minimalVertexSource, brokenSource)
	require.Error(t, err)
	assert.Nil(t, p)

	var ce *gfx.CompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, gfx.FragmentStage, ce.Stage)
	assert.NotEmpty(t, ce.Log)
	assert.Contains(t, err.Error(), "fragment shader compilation failed")

	assert.Equal(t, 0, d.Live(gfxtest.KindShader))
	assert.Equal(t, 0, d.Live(gfxtest.KindProgram))
	assert.Equal(t, 0, d.Created(gfxtest.KindProgram))
	assert.Equal(t, 0, d.DoubleDeletes())
}

func TestInvalidVertexShader(t *testing.T) {
	d := gfxtest.New()
	_, err := gfx.NewProgramFromSource(d, brokenSource, minimalFragmentSource)

	var ce *gfx.CompileError
	require.True(t, errors.As(err, &ce))
	assert.Equal(t, gfx.VertexStage, ce.Stage)
	// The fragment stage is never attempted.
	assert.Equal(t, 1, d.Created(gfxtest.KindShader))
	assert.Equal(t, 0, d.Live(gfxtest.KindShader))
}

func TestLinkFailureReleasesEverything(t *testing.T) {
	d := gfxtest.New()
	d.FailLink = "error: varying tint not written by vertex shader"

	_, err := gfx.NewProgramFromSource(d, minimalVertexSource, minimalFragmentSource)

	var le *gfx.LinkError
	require.True(t, errors.As(err, &le))
	assert.Equal(t, d.FailLink, le.Log)
	assert.Equal(t, 0, d.Live(gfxtest.KindProgram))
	assert.Equal(t, 0, d.Live(gfxtest.KindShader))
}

func TestShaderConsumedByProgram(t *testing.T) {
	d := gfxtest.New()
	vs, err := gfx.NewVertexShader(d, minimalVertexSource)
	require.NoError(t, err)
	fs, err := gfx.NewFragmentShader(d, minimalFragmentSource)
	require.NoError(t, err)

	_, err = gfx.NewProgram(d, vs, fs)
	require.NoError(t, err)
	assert.True(t, vs.Consumed())
	assert.True(t, fs.Consumed())

	fs2, err := gfx.NewFragmentShader(d, minimalFragmentSource)
	require.NoError(t, err)
	assert.Panics(t, func() { _, _ = gfx.NewProgram(d, vs, fs2) })

	// Deleting a consumed shader is a no-op.
	vs.Delete()
	assert.Equal(t, 0, d.DoubleDeletes())
}

func TestNewProgramRejectsWrongStages(t *testing.T) {
	d := gfxtest.New()
	vs, err := gfx.NewVertexShader(d, minimalVertexSource)
	require.NoError(t, err)
	fs, err := gfx.NewFragmentShader(d, minimalFragmentSource)
	require.NoError(t, err)

	assert.Panics(t, func() { _, _ = gfx.NewProgram(d, fs, vs) })
	assert.Panics(t, func() { _, _ = gfx.NewProgram(d, nil, fs) })

	fs.Delete()
	assert.Panics(t, func() { _, _ = gfx.NewProgram(d, vs, fs) })
}

func TestShaderSourceWithNUL(t *testing.T) {
	d := gfxtest.New()
	_, err := gfx.NewVertexShader(d, "void main() {}\x00")

	var ne *gfx.NameConversionError
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, 14, ne.Offset)
	assert.Equal(t, 0, d.Created(gfxtest.KindShader))
}

func TestSetUniformValues(t *testing.T) {
	d := gfxtest.New()
	p, err := gfx.NewProgramFromSource(d, minimalVertexSource, minimalFragmentSource)
	require.NoError(t, err)

	require.NoError(t, p.SetUniform("time", gfx.Float(0.5)))
	require.NoError(t, p.SetUniform("mvp", gfx.Translate(1, 2, 3)))

	tex := gfx.NewTexture(d, make([]byte, 4), 1, 1)
	slot := gfx.MustActiveTextureSlot(5)
	slot.Bind(d, tex)
	require.NoError(t, p.SetUniform("tex", slot))

	v, ok := d.Uniform(p.ID(), "time")
	require.True(t, ok)
	assert.Equal(t, float32(0.5), v)

	v, ok = d.Uniform(p.ID(), "mvp")
	require.True(t, ok)
	assert.Equal(t, [16]float32(gfx.Translate(1, 2, 3)), v)

	v, ok = d.Uniform(p.ID(), "tex")
	require.True(t, ok)
	assert.Equal(t, int32(5), v)

	assert.Equal(t, p.ID(), d.CurrentProgram())
	assert.Empty(t, d.PendingErrors())
}

func TestSetUniformUnknownNameChangesNothing(t *testing.T) {
	d := gfxtest.New()
	p, err := gfx.NewProgramFromSource(d, minimalVertexSource, minimalFragmentSource)
	require.NoError(t, err)

	err = p.SetUniform("nope", gfx.Float(1))

	var ue *gfx.UnknownUniformError
	require.True(t, errors.As(err, &ue))
	assert.Equal(t, "nope", ue.Name)
	assert.Equal(t, "unknown uniform location: nope", err.Error())
	assert.Equal(t, 0, d.UniformWrites)
	assert.Zero(t, d.CurrentProgram())
}

func TestSetUniformNameWithNUL(t *testing.T) {
	d := gfxtest.New()
	p, err := gfx.NewProgramFromSource(d, minimalVertexSource, minimalFragmentSource)
	require.NoError(t, err)

	err = p.SetUniform("ti\x00me", gfx.Float(1))

	var ne *gfx.NameConversionError
	require.True(t, errors.As(err, &ne))
	assert.Equal(t, 2, ne.Offset)
	assert.Equal(t, 0, d.UniformWrites)
}

func TestSetUniformUnboundSlotPanics(t *testing.T) {
	d := gfxtest.New()
	p, err := gfx.NewProgramFromSource(d, minimalVertexSource, minimalFragmentSource)
	require.NoError(t, err)

	assert.Panics(t, func() { _ = p.SetUniform("tex", gfx.MustActiveTextureSlot(0)) })
}

func TestDeletedProgramPanicsOnUse(t *testing.T) {
	d := gfxtest.New()
	p, err := gfx.NewProgramFromSource(d, minimalVertexSource, minimalFragmentSource)
	require.NoError(t, err)
	p.Delete()

	assert.Panics(t, func() { p.Use() })
	assert.Panics(t, func() { _ = p.SetUniform("time", gfx.Float(1)) })
}
