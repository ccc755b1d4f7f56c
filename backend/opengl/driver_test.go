package opengl

import (
	"testing"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gfx"
)

// The gfx enums are passed to gl unchanged, so their values must match.
func TestEnumValuesMatchGL(t *testing.T) {
	cases := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"ArrayBuffer", uint32(gfx.ArrayBuffer), gl.ARRAY_BUFFER},
		{"ElementArrayBuffer", uint32(gfx.ElementArrayBuffer), gl.ELEMENT_ARRAY_BUFFER},
		{"CopyReadBuffer", uint32(gfx.CopyReadBuffer), gl.COPY_READ_BUFFER},
		{"CopyWriteBuffer", uint32(gfx.CopyWriteBuffer), gl.COPY_WRITE_BUFFER},
		{"DrawIndirectBuffer", uint32(gfx.DrawIndirectBuffer), gl.DRAW_INDIRECT_BUFFER},
		{"PixelPackBuffer", uint32(gfx.PixelPackBuffer), gl.PIXEL_PACK_BUFFER},
		{"PixelUnpackBuffer", uint32(gfx.PixelUnpackBuffer), gl.PIXEL_UNPACK_BUFFER},
		{"TextureBuffer", uint32(gfx.TextureBuffer), gl.TEXTURE_BUFFER},
		{"TransformFeedbackBuffer", uint32(gfx.TransformFeedbackBuffer), gl.TRANSFORM_FEEDBACK_BUFFER},
		{"UniformBuffer", uint32(gfx.UniformBuffer), gl.UNIFORM_BUFFER},

		{"StreamDraw", uint32(gfx.StreamDraw), gl.STREAM_DRAW},
		{"StaticDraw", uint32(gfx.StaticDraw), gl.STATIC_DRAW},
		{"DynamicDraw", uint32(gfx.DynamicDraw), gl.DYNAMIC_DRAW},
		{"DynamicCopy", uint32(gfx.DynamicCopy), gl.DYNAMIC_COPY},

		{"Points", uint32(gfx.Points), gl.POINTS},
		{"Triangles", uint32(gfx.Triangles), gl.TRIANGLES},
		{"TriangleFan", uint32(gfx.TriangleFan), gl.TRIANGLE_FAN},

		{"TypeByte", uint32(gfx.TypeByte), gl.BYTE},
		{"TypeUnsignedInt", uint32(gfx.TypeUnsignedInt), gl.UNSIGNED_INT},
		{"TypeFloat", uint32(gfx.TypeFloat), gl.FLOAT},
		{"TypeDouble", uint32(gfx.TypeDouble), gl.DOUBLE},
		{"TypeHalfFloat", uint32(gfx.TypeHalfFloat), gl.HALF_FLOAT},
		{"TypeFixed", uint32(gfx.TypeFixed), gl.FIXED},

		{"VertexStage", uint32(gfx.VertexStage), gl.VERTEX_SHADER},
		{"FragmentStage", uint32(gfx.FragmentStage), gl.FRAGMENT_SHADER},

		{"Blend", uint32(gfx.Blend), gl.BLEND},
		{"DepthTest", uint32(gfx.DepthTest), gl.DEPTH_TEST},
		{"CullFace", uint32(gfx.CullFace), gl.CULL_FACE},
		{"ScissorTest", uint32(gfx.ScissorTest), gl.SCISSOR_TEST},

		{"BlendSrcAlpha", uint32(gfx.BlendSrcAlpha), gl.SRC_ALPHA},
		{"BlendOneMinusSrcAlpha", uint32(gfx.BlendOneMinusSrcAlpha), gl.ONE_MINUS_SRC_ALPHA},

		{"ClearColor", uint32(gfx.ClearColor), gl.COLOR_BUFFER_BIT},
		{"ClearDepth", uint32(gfx.ClearDepth), gl.DEPTH_BUFFER_BIT},
		{"ClearStencil", uint32(gfx.ClearStencil), gl.STENCIL_BUFFER_BIT},

		{"Nearest", uint32(gfx.Nearest), gl.NEAREST},
		{"Linear", uint32(gfx.Linear), gl.LINEAR},
		{"LinearMipmapLinear", uint32(gfx.LinearMipmapLinear), gl.LINEAR_MIPMAP_LINEAR},

		{"InvalidEnum", uint32(gfx.InvalidEnum), gl.INVALID_ENUM},
		{"InvalidOperation", uint32(gfx.InvalidOperation), gl.INVALID_OPERATION},
		{"OutOfMemory", uint32(gfx.OutOfMemory), gl.OUT_OF_MEMORY},
	}

	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("%s = 0x%04X, gl has 0x%04X", c.name, c.got, c.want)
		}
	}
}
