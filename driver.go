package gfx

// Driver is the boundary between the wrappers in this package and a native
// graphics API. Each method maps to one API entry point and operates on the
// driver's current binding state (bound buffer per target, bound vertex
// array, active program, active texture unit). That state is global to the
// context: every Bind call is visible to every later call on the same Driver.
//
// A Driver is not safe for concurrent use and must be called from the thread
// that owns the context.
//
// Strings handed to a Driver never contain NUL bytes. Enumerated arguments
// carry native constant values.
type Driver interface {
	// Buffers
	GenBuffer() uint32
	DeleteBuffer(id uint32)
	BindBuffer(target DrawTarget, id uint32)
	// BufferData (re)allocates size bytes for the buffer bound to target.
	// A nil data slice leaves the storage uninitialized.
	BufferData(target DrawTarget, size int, data []byte, usage DrawUsage)
	BufferSubData(target DrawTarget, offset int, data []byte)
	GetBufferSubData(target DrawTarget, offset int, dst []byte)

	// Vertex arrays and drawing
	GenVertexArray() uint32
	DeleteVertexArray(id uint32)
	BindVertexArray(id uint32)
	EnableVertexAttribArray(index uint32)
	// VertexAttribPointer takes stride and offset in bytes.
	VertexAttribPointer(index uint32, size int32, typ AttributeType, normalized bool, stride int32, offset int)
	DrawArrays(mode DrawMode, first, count int32)
	// DrawElements reads count indices from offset 0 of the bound element buffer.
	DrawElements(mode DrawMode, count int32, typ AttributeType)

	// Shaders and programs
	CreateShader(stage ShaderStage) uint32
	ShaderSource(id uint32, source string)
	CompileShader(id uint32)
	ShaderCompiled(id uint32) bool
	ShaderInfoLog(id uint32) string
	DeleteShader(id uint32)
	CreateProgram() uint32
	AttachShader(program, shader uint32)
	LinkProgram(id uint32)
	ProgramLinked(id uint32) bool
	ProgramInfoLog(id uint32) string
	DeleteProgram(id uint32)
	UseProgram(id uint32)
	// UniformLocation returns -1 if the program has no active uniform name.
	UniformLocation(program uint32, name string) int32
	Uniform1f(location int32, v float32)
	Uniform1i(location int32, v int32)
	// UniformMatrix4fv uploads one column-major matrix.
	UniformMatrix4fv(location int32, m *[16]float32)

	// Textures (2D target only)
	GenTexture() uint32
	DeleteTexture(id uint32)
	// ActiveTexture selects texture unit n (0-based).
	ActiveTexture(unit uint32)
	BindTexture(id uint32)
	// TexImage2D uploads tightly packed RGBA8 pixels to mip level 0.
	TexImage2D(width, height int32, pixels []byte)
	TexFilter(min, mag TextureFilter)
	GenerateMipmap()

	// Frame state
	Enable(c Capability)
	Disable(c Capability)
	BlendFunc(src, dst BlendFactor)
	ClearColor(r, g, b, a float32)
	Clear(mask ClearFlags)
	Viewport(x, y, width, height int32)
	// ReadPixels reads RGBA8 pixels from the framebuffer, bottom row first.
	ReadPixels(x, y, width, height int32, dst []byte)

	// GetError returns and clears the oldest recorded error, or NoError.
	GetError() ErrorCode
}
