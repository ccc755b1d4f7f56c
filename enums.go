package gfx

import "fmt"

// The enumerations below carry the native OpenGL constant values so a Driver
// can hand them to the API unchanged.

// DrawTarget is the binding point a Buffer is attached to.
type DrawTarget uint32

const (
	ArrayBuffer             DrawTarget = 0x8892
	AtomicCounterBuffer     DrawTarget = 0x92C0
	CopyReadBuffer          DrawTarget = 0x8F36
	CopyWriteBuffer         DrawTarget = 0x8F37
	DispatchIndirectBuffer  DrawTarget = 0x90EE
	DrawIndirectBuffer      DrawTarget = 0x8F3F
	ElementArrayBuffer      DrawTarget = 0x8893
	PixelPackBuffer         DrawTarget = 0x88EB
	PixelUnpackBuffer       DrawTarget = 0x88EC
	QueryBuffer             DrawTarget = 0x9192
	ShaderStorageBuffer     DrawTarget = 0x90D2
	TextureBuffer           DrawTarget = 0x8C2A
	TransformFeedbackBuffer DrawTarget = 0x8C8E
	UniformBuffer           DrawTarget = 0x8A11
)

// DrawTargets lists every supported buffer target.
var DrawTargets = []DrawTarget{
	ArrayBuffer, AtomicCounterBuffer, CopyReadBuffer, CopyWriteBuffer,
	DispatchIndirectBuffer, DrawIndirectBuffer, ElementArrayBuffer,
	PixelPackBuffer, PixelUnpackBuffer, QueryBuffer, ShaderStorageBuffer,
	TextureBuffer, TransformFeedbackBuffer, UniformBuffer,
}

func (t DrawTarget) String() string {
	switch t {
	case ArrayBuffer:
		return "ArrayBuffer"
	case AtomicCounterBuffer:
		return "AtomicCounterBuffer"
	case CopyReadBuffer:
		return "CopyReadBuffer"
	case CopyWriteBuffer:
		return "CopyWriteBuffer"
	case DispatchIndirectBuffer:
		return "DispatchIndirectBuffer"
	case DrawIndirectBuffer:
		return "DrawIndirectBuffer"
	case ElementArrayBuffer:
		return "ElementArrayBuffer"
	case PixelPackBuffer:
		return "PixelPackBuffer"
	case PixelUnpackBuffer:
		return "PixelUnpackBuffer"
	case QueryBuffer:
		return "QueryBuffer"
	case ShaderStorageBuffer:
		return "ShaderStorageBuffer"
	case TextureBuffer:
		return "TextureBuffer"
	case TransformFeedbackBuffer:
		return "TransformFeedbackBuffer"
	case UniformBuffer:
		return "UniformBuffer"
	}
	return fmt.Sprintf("DrawTarget(0x%04X)", uint32(t))
}

// DrawUsage is the access-frequency hint given with a buffer upload.
// It is passed through to the driver and has no other effect.
type DrawUsage uint32

const (
	StreamDraw  DrawUsage = 0x88E0
	StreamRead  DrawUsage = 0x88E1
	StreamCopy  DrawUsage = 0x88E2
	StaticDraw  DrawUsage = 0x88E4
	StaticRead  DrawUsage = 0x88E5
	StaticCopy  DrawUsage = 0x88E6
	DynamicDraw DrawUsage = 0x88E8
	DynamicRead DrawUsage = 0x88E9
	DynamicCopy DrawUsage = 0x88EA
)

func (u DrawUsage) String() string {
	switch u {
	case StreamDraw:
		return "StreamDraw"
	case StreamRead:
		return "StreamRead"
	case StreamCopy:
		return "StreamCopy"
	case StaticDraw:
		return "StaticDraw"
	case StaticRead:
		return "StaticRead"
	case StaticCopy:
		return "StaticCopy"
	case DynamicDraw:
		return "DynamicDraw"
	case DynamicRead:
		return "DynamicRead"
	case DynamicCopy:
		return "DynamicCopy"
	}
	return fmt.Sprintf("DrawUsage(0x%04X)", uint32(u))
}

// DrawMode is the primitive assembly mode of a draw call.
type DrawMode uint32

const (
	Points        DrawMode = 0x0000
	Lines         DrawMode = 0x0001
	LineLoop      DrawMode = 0x0002
	LineStrip     DrawMode = 0x0003
	Triangles     DrawMode = 0x0004
	TriangleStrip DrawMode = 0x0005
	TriangleFan   DrawMode = 0x0006
)

func (m DrawMode) String() string {
	switch m {
	case Points:
		return "Points"
	case Lines:
		return "Lines"
	case LineLoop:
		return "LineLoop"
	case LineStrip:
		return "LineStrip"
	case Triangles:
		return "Triangles"
	case TriangleStrip:
		return "TriangleStrip"
	case TriangleFan:
		return "TriangleFan"
	}
	return fmt.Sprintf("DrawMode(%d)", uint32(m))
}

// AttributeType is the element type of a vertex attribute or index buffer.
type AttributeType uint32

const (
	TypeByte          AttributeType = 0x1400
	TypeUnsignedByte  AttributeType = 0x1401
	TypeShort         AttributeType = 0x1402
	TypeUnsignedShort AttributeType = 0x1403
	TypeInt           AttributeType = 0x1404
	TypeUnsignedInt   AttributeType = 0x1405
	TypeFloat         AttributeType = 0x1406
	TypeDouble        AttributeType = 0x140A
	TypeHalfFloat     AttributeType = 0x140B
	TypeFixed         AttributeType = 0x140C
)

// Size returns the size of one element in bytes, or 0 for an unknown type.
func (a AttributeType) Size() int {
	switch a {
	case TypeByte, TypeUnsignedByte:
		return 1
	case TypeShort, TypeUnsignedShort, TypeHalfFloat:
		return 2
	case TypeInt, TypeUnsignedInt, TypeFloat, TypeFixed:
		return 4
	case TypeDouble:
		return 8
	}
	return 0
}

func (a AttributeType) String() string {
	switch a {
	case TypeByte:
		return "Byte"
	case TypeUnsignedByte:
		return "UnsignedByte"
	case TypeShort:
		return "Short"
	case TypeUnsignedShort:
		return "UnsignedShort"
	case TypeInt:
		return "Int"
	case TypeUnsignedInt:
		return "UnsignedInt"
	case TypeFloat:
		return "Float"
	case TypeDouble:
		return "Double"
	case TypeHalfFloat:
		return "HalfFloat"
	case TypeFixed:
		return "Fixed"
	}
	return fmt.Sprintf("AttributeType(0x%04X)", uint32(a))
}

// ShaderStage selects the pipeline stage a Shader is compiled for.
type ShaderStage uint32

const (
	FragmentStage ShaderStage = 0x8B30
	VertexStage   ShaderStage = 0x8B31
)

func (s ShaderStage) String() string {
	switch s {
	case FragmentStage:
		return "fragment"
	case VertexStage:
		return "vertex"
	}
	return fmt.Sprintf("ShaderStage(0x%04X)", uint32(s))
}

// Capability is a server-side feature toggled with Enable/Disable.
type Capability uint32

const (
	Blend       Capability = 0x0BE2
	DepthTest   Capability = 0x0B71
	CullFace    Capability = 0x0B44
	ScissorTest Capability = 0x0C11
)

func (c Capability) String() string {
	switch c {
	case Blend:
		return "Blend"
	case DepthTest:
		return "DepthTest"
	case CullFace:
		return "CullFace"
	case ScissorTest:
		return "ScissorTest"
	}
	return fmt.Sprintf("Capability(0x%04X)", uint32(c))
}

// BlendFactor is a source or destination factor for BlendFunc.
type BlendFactor uint32

const (
	BlendZero             BlendFactor = 0x0000
	BlendOne              BlendFactor = 0x0001
	BlendSrcAlpha         BlendFactor = 0x0302
	BlendOneMinusSrcAlpha BlendFactor = 0x0303
)

// ClearFlags selects the buffers cleared by Clear. Flags combine with |.
type ClearFlags uint32

const (
	ClearDepth   ClearFlags = 0x0100
	ClearStencil ClearFlags = 0x0400
	ClearColor   ClearFlags = 0x4000
)

// TextureFilter is a minification or magnification filter.
type TextureFilter uint32

const (
	Nearest              TextureFilter = 0x2600
	Linear               TextureFilter = 0x2601
	NearestMipmapNearest TextureFilter = 0x2700
	LinearMipmapNearest  TextureFilter = 0x2701
	NearestMipmapLinear  TextureFilter = 0x2702
	LinearMipmapLinear   TextureFilter = 0x2703
)

// ErrorCode is a value reported by Driver.GetError.
type ErrorCode uint32

const (
	NoError                     ErrorCode = 0x0000
	InvalidEnum                 ErrorCode = 0x0500
	InvalidValue                ErrorCode = 0x0501
	InvalidOperation            ErrorCode = 0x0502
	StackOverflow               ErrorCode = 0x0503
	StackUnderflow              ErrorCode = 0x0504
	OutOfMemory                 ErrorCode = 0x0505
	InvalidFramebufferOperation ErrorCode = 0x0506
)

func (e ErrorCode) String() string {
	switch e {
	case NoError:
		return "GL_NO_ERROR"
	case InvalidEnum:
		return "GL_INVALID_ENUM"
	case InvalidValue:
		return "GL_INVALID_VALUE"
	case InvalidOperation:
		return "GL_INVALID_OPERATION"
	case StackOverflow:
		return "GL_STACK_OVERFLOW"
	case StackUnderflow:
		return "GL_STACK_UNDERFLOW"
	case OutOfMemory:
		return "GL_OUT_OF_MEMORY"
	case InvalidFramebufferOperation:
		return "GL_INVALID_FRAMEBUFFER_OPERATION"
	}
	return fmt.Sprintf("GL error 0x%04X", uint32(e))
}
