package gfx_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/gfxtest"
)

func TestSetupAttributeConvertsToBytes(t *testing.T) {
	d := gfxtest.New()
	vao := gfx.NewVertexArray(d)
	vao.Bind()
	buf := gfx.NewBuffer(d, gfx.ArrayBuffer)
	buf.UploadEmpty(64, gfx.StaticDraw)

	gfx.SetupAttribute(d, 2, 3, 1, 4, gfx.TypeFloat)

	a, ok := d.Attrib(vao.ID(), 2)
	require.True(t, ok)
	assert.True(t, a.Enabled)
	assert.Equal(t, buf.ID(), a.Buffer)
	assert.Equal(t, int32(3), a.Size)
	assert.Equal(t, gfx.TypeFloat, a.Type)
	assert.False(t, a.Normalized)
	assert.Equal(t, int32(16), a.Stride)
	assert.Equal(t, 4, a.Offset)

	gfx.SetupAttribute(d, 3, 4, 2, 8, gfx.TypeUnsignedShort)
	a, _ = d.Attrib(vao.ID(), 3)
	assert.Equal(t, int32(16), a.Stride)
	assert.Equal(t, 4, a.Offset)
}

func TestSetupAttributeRejectsBadArguments(t *testing.T) {
	d := gfxtest.New()
	assert.Panics(t, func() { gfx.SetupAttribute(d, 0, 0, 0, 0, gfx.TypeFloat) })
	assert.Panics(t, func() { gfx.SetupAttribute(d, 0, 5, 0, 0, gfx.TypeFloat) })
	assert.Panics(t, func() { gfx.SetupAttribute(d, 0, 2, 0, 0, gfx.AttributeType(0x9999)) })
	assert.Panics(t, func() { gfx.SetupAttribute(d, 0, 2, -1, 0, gfx.TypeFloat) })
}

func TestSetupAttributeWithoutBindingsIsDriverError(t *testing.T) {
	d := gfxtest.New()
	gfx.SetupAttribute(d, 0, 2, 0, 0, gfx.TypeFloat)
	assert.Equal(t, []gfx.ErrorCode{gfx.InvalidOperation, gfx.InvalidOperation}, d.PendingErrors())
}

func TestAttributeTypeSize(t *testing.T) {
	sizes := map[gfx.AttributeType]int{
		gfx.TypeByte:          1,
		gfx.TypeUnsignedByte:  1,
		gfx.TypeShort:         2,
		gfx.TypeHalfFloat:     2,
		gfx.TypeUnsignedInt:   4,
		gfx.TypeFloat:         4,
		gfx.TypeFixed:         4,
		gfx.TypeDouble:        8,
		gfx.AttributeType(42): 0,
	}
	for typ, want := range sizes {
		assert.Equal(t, want, typ.Size(), typ.String())
	}
}

func TestEnumStrings(t *testing.T) {
	assert.Equal(t, "ArrayBuffer", gfx.ArrayBuffer.String())
	assert.Equal(t, "DrawTarget(0x0001)", gfx.DrawTarget(1).String())
	assert.Equal(t, "DynamicDraw", gfx.DynamicDraw.String())
	assert.Equal(t, "TriangleFan", gfx.TriangleFan.String())
	assert.Equal(t, "vertex", gfx.VertexStage.String())
	assert.Equal(t, "GL_INVALID_OPERATION", gfx.InvalidOperation.String())
	assert.Equal(t, "Blend", gfx.Blend.String())
	assert.Len(t, gfx.DrawTargets, 14)
}
