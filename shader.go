package gfx

import "fmt"

// Shader is one compiled shader stage. A Shader is consumed by the Program it
// is linked into and cannot be used again afterwards.
type Shader struct {
	d        Driver
	id       uint32
	stage    ShaderStage
	consumed bool
}

// NewShader compiles source for stage. On failure the shader object is
// deleted and a *CompileError carrying the compiler log is returned.
func NewShader(d Driver, stage ShaderStage, source string) (*Shader, error) {
	if err := checkCString(source); err != nil {
		return nil, err
	}

	id := d.CreateShader(stage)
	d.ShaderSource(id, source)
	d.CompileShader(id)

	if !d.ShaderCompiled(id) {
		log := d.ShaderInfoLog(id)
		d.DeleteShader(id)
		return nil, &CompileError{Stage: stage, Log: log}
	}

	if verbose() {
		logger.Debug("shader compiled", "id", id, "stage", stage)
	}
	return &Shader{d: d, id: id, stage: stage}, nil
}

// NewVertexShader compiles a vertex stage.
func NewVertexShader(d Driver, source string) (*Shader, error) {
	return NewShader(d, VertexStage, source)
}

// NewFragmentShader compiles a fragment stage.
func NewFragmentShader(d Driver, source string) (*Shader, error) {
	return NewShader(d, FragmentStage, source)
}

// Stage returns the pipeline stage.
func (s *Shader) Stage() ShaderStage { return s.stage }

// Consumed reports whether the shader has been handed to a Program.
func (s *Shader) Consumed() bool { return s.consumed }

// Delete releases a shader that was never linked. Deleting a consumed shader
// has no effect.
func (s *Shader) Delete() {
	if s.id == 0 {
		return
	}
	s.d.DeleteShader(s.id)
	s.id = 0
}

// Program is a linked vertex+fragment program. A Program value only exists
// after a successful link.
type Program struct {
	d  Driver
	id uint32
}

// NewProgram links vs and fs into a program. Both shaders are consumed
// whatever the outcome: they are deleted once linking has been attempted and
// must not be passed to another program. On link failure the program object
// is deleted and a *LinkError is returned.
//
// Passing a consumed or deleted shader, or shaders of the wrong stage, panics.
func NewProgram(d Driver, vs, fs *Shader) (*Program, error) {
	consume(vs, VertexStage)
	consume(fs, FragmentStage)
	defer vs.release()
	defer fs.release()

	id := d.CreateProgram()
	d.AttachShader(id, vs.id)
	d.AttachShader(id, fs.id)
	d.LinkProgram(id)

	if !d.ProgramLinked(id) {
		log := d.ProgramInfoLog(id)
		d.DeleteProgram(id)
		return nil, &LinkError{Log: log}
	}

	if verbose() {
		logger.Debug("program linked", "id", id)
	}
	return &Program{d: d, id: id}, nil
}

// NewProgramFromSource compiles both stages and links them. Nothing is left
// allocated if any step fails.
func NewProgramFromSource(d Driver, vertexSource, fragmentSource string) (*Program, error) {
	vs, err := NewVertexShader(d, vertexSource)
	if err != nil {
		return nil, err
	}
	fs, err := NewFragmentShader(d, fragmentSource)
	if err != nil {
		vs.Delete()
		return nil, err
	}
	return NewProgram(d, vs, fs)
}

func consume(s *Shader, want ShaderStage) {
	switch {
	case s == nil:
		panic(fmt.Sprintf("gfx: nil %s shader", want))
	case s.consumed:
		panic(fmt.Sprintf("gfx: %s shader %d already linked into a program", s.stage, s.id))
	case s.id == 0:
		panic(fmt.Sprintf("gfx: %s shader was deleted before linking", s.stage))
	case s.stage != want:
		panic(fmt.Sprintf("gfx: expected a %s shader, got %s", want, s.stage))
	}
	s.consumed = true
}

// release deletes the native shader once the link no longer needs it.
func (s *Shader) release() {
	s.d.DeleteShader(s.id)
	s.id = 0
}

// ID returns the native handle, or 0 after Delete.
func (p *Program) ID() uint32 { return p.id }

// Use makes the program current for subsequent draws.
func (p *Program) Use() {
	if p.id == 0 {
		panic("gfx: use of deleted program")
	}
	p.d.UseProgram(p.id)
}

// SetUniform looks name up in the program and uploads value to it. The
// location is resolved on every call. An absent name yields an
// *UnknownUniformError and leaves the driver state untouched; otherwise the
// program is made current before the upload.
func (p *Program) SetUniform(name string, value Uniform) error {
	if err := checkCString(name); err != nil {
		return err
	}
	if p.id == 0 {
		panic("gfx: use of deleted program")
	}

	loc := p.d.UniformLocation(p.id, name)
	if loc < 0 {
		return &UnknownUniformError{Name: name}
	}

	p.Use()
	value.upload(p.d, loc)
	return nil
}

// Delete releases the program. Calling Delete again has no effect.
func (p *Program) Delete() {
	if p.id == 0 {
		return
	}
	if verbose() {
		logger.Debug("program deleted", "id", p.id)
	}
	p.d.DeleteProgram(p.id)
	p.id = 0
}
