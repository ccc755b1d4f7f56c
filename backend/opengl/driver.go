// Package opengl provides the OpenGL 4.1 core-profile gfx.Driver and a small
// GLFW window helper.
package opengl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/go-theft-auto/gfx"
)

// Driver forwards gfx.Driver calls to the current OpenGL context. It holds no
// state of its own; all calls must come from the thread that made the
// context current.
type Driver struct{}

var _ gfx.Driver = (*Driver)(nil)

// New loads the OpenGL function pointers. A context must be current.
func New() (*Driver, error) {
	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("gl init: %w", err)
	}
	gfx.Logger().Info("opengl initialized",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))
	return &Driver{}, nil
}

// Version returns the GL_VERSION string of the current context.
func (*Driver) Version() string { return gl.GoStr(gl.GetString(gl.VERSION)) }

// ptr returns a pointer to the first byte of data, or nil for an empty slice.
func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

// cstr returns s as a NUL-terminated C string. Callers have already rejected
// embedded NULs.
func cstr(s string) *uint8 {
	return gl.Str(s + "\x00")
}

// --- buffers ---

func (*Driver) GenBuffer() uint32 {
	var id uint32
	gl.GenBuffers(1, &id)
	return id
}

func (*Driver) DeleteBuffer(id uint32) { gl.DeleteBuffers(1, &id) }

func (*Driver) BindBuffer(target gfx.DrawTarget, id uint32) { gl.BindBuffer(uint32(target), id) }

func (*Driver) BufferData(target gfx.DrawTarget, size int, data []byte, usage gfx.DrawUsage) {
	gl.BufferData(uint32(target), size, ptr(data), uint32(usage))
}

func (*Driver) BufferSubData(target gfx.DrawTarget, offset int, data []byte) {
	gl.BufferSubData(uint32(target), offset, len(data), ptr(data))
}

func (*Driver) GetBufferSubData(target gfx.DrawTarget, offset int, dst []byte) {
	gl.GetBufferSubData(uint32(target), offset, len(dst), ptr(dst))
}

// --- vertex arrays ---

func (*Driver) GenVertexArray() uint32 {
	var id uint32
	gl.GenVertexArrays(1, &id)
	return id
}

func (*Driver) DeleteVertexArray(id uint32) { gl.DeleteVertexArrays(1, &id) }

func (*Driver) BindVertexArray(id uint32) { gl.BindVertexArray(id) }

func (*Driver) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }

func (*Driver) VertexAttribPointer(index uint32, size int32, typ gfx.AttributeType, normalized bool, stride int32, offset int) {
	gl.VertexAttribPointerWithOffset(index, size, uint32(typ), normalized, stride, uintptr(offset))
}

func (*Driver) DrawArrays(mode gfx.DrawMode, first, count int32) {
	gl.DrawArrays(uint32(mode), first, count)
}

func (*Driver) DrawElements(mode gfx.DrawMode, count int32, typ gfx.AttributeType) {
	gl.DrawElements(uint32(mode), count, uint32(typ), nil)
}

// --- shaders and programs ---

func (*Driver) CreateShader(stage gfx.ShaderStage) uint32 { return gl.CreateShader(uint32(stage)) }

func (*Driver) ShaderSource(id uint32, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(id, 1, csource, nil)
	free()
}

func (*Driver) CompileShader(id uint32) { gl.CompileShader(id) }

func (*Driver) ShaderCompiled(id uint32) bool {
	var status int32
	gl.GetShaderiv(id, gl.COMPILE_STATUS, &status)
	return status != gl.FALSE
}

func (*Driver) ShaderInfoLog(id uint32) string {
	var logLength int32
	gl.GetShaderiv(id, gl.INFO_LOG_LENGTH, &logLength)
	log := make([]byte, logLength+1)
	gl.GetShaderInfoLog(id, logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (*Driver) DeleteShader(id uint32) { gl.DeleteShader(id) }

func (*Driver) CreateProgram() uint32 { return gl.CreateProgram() }

func (*Driver) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }

func (*Driver) LinkProgram(id uint32) { gl.LinkProgram(id) }

func (*Driver) ProgramLinked(id uint32) bool {
	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	return status != gl.FALSE
}

func (*Driver) ProgramInfoLog(id uint32) string {
	var logLength int32
	gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLength)
	log := make([]byte, logLength+1)
	gl.GetProgramInfoLog(id, logLength, nil, &log[0])
	return strings.TrimRight(string(log), "\x00")
}

func (*Driver) DeleteProgram(id uint32) { gl.DeleteProgram(id) }

func (*Driver) UseProgram(id uint32) { gl.UseProgram(id) }

func (*Driver) UniformLocation(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, cstr(name))
}

func (*Driver) Uniform1f(location int32, v float32) { gl.Uniform1f(location, v) }

func (*Driver) Uniform1i(location int32, v int32) { gl.Uniform1i(location, v) }

func (*Driver) UniformMatrix4fv(location int32, m *[16]float32) {
	gl.UniformMatrix4fv(location, 1, false, &m[0])
}

// --- textures ---

func (*Driver) GenTexture() uint32 {
	var id uint32
	gl.GenTextures(1, &id)
	return id
}

func (*Driver) DeleteTexture(id uint32) { gl.DeleteTextures(1, &id) }

func (*Driver) ActiveTexture(unit uint32) { gl.ActiveTexture(gl.TEXTURE0 + unit) }

func (*Driver) BindTexture(id uint32) { gl.BindTexture(gl.TEXTURE_2D, id) }

func (*Driver) TexImage2D(width, height int32, pixels []byte) {
	gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, ptr(pixels))
}

func (*Driver) TexFilter(min, mag gfx.TextureFilter) {
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, int32(min))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, int32(mag))
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
}

func (*Driver) GenerateMipmap() { gl.GenerateMipmap(gl.TEXTURE_2D) }

// --- frame state ---

func (*Driver) Enable(c gfx.Capability) { gl.Enable(uint32(c)) }

func (*Driver) Disable(c gfx.Capability) { gl.Disable(uint32(c)) }

func (*Driver) BlendFunc(src, dst gfx.BlendFactor) { gl.BlendFunc(uint32(src), uint32(dst)) }

func (*Driver) ClearColor(r, g, b, a float32) { gl.ClearColor(r, g, b, a) }

func (*Driver) Clear(mask gfx.ClearFlags) { gl.Clear(uint32(mask)) }

func (*Driver) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }

// ReadPixels reads RGBA8 pixels from the current read framebuffer, bottom row
// first.
func (*Driver) ReadPixels(x, y, width, height int32, dst []byte) {
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(x, y, width, height, gl.RGBA, gl.UNSIGNED_BYTE, ptr(dst))
}

func (*Driver) GetError() gfx.ErrorCode { return gfx.ErrorCode(gl.GetError()) }
