package gfx

import (
	"errors"
	"fmt"
	"strings"
)

// ErrIndexOutOfRange is returned when a texture slot index is not below
// MaxTextureSlots.
var ErrIndexOutOfRange = errors.New("texture slot index out of range")

// CompileError reports a shader that failed to compile. Log holds the
// driver's compiler output.
type CompileError struct {
	Stage ShaderStage
	Log   string
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed: %s", e.Stage, e.Log)
}

// LinkError reports a program that failed to link. Log holds the driver's
// linker output.
type LinkError struct {
	Log string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("shader program linking failed: %s", e.Log)
}

// NameConversionError reports a string that cannot be passed to the driver
// because it contains a NUL byte.
type NameConversionError struct {
	Value string
	// Offset is the byte offset of the first NUL.
	Offset int
}

func (e *NameConversionError) Error() string {
	return fmt.Sprintf("cannot pass %q to the driver: NUL byte at offset %d", e.Value, e.Offset)
}

// UnknownUniformError reports a uniform name the linked program does not
// expose. Names removed by the shader compiler as unused report the same way.
type UnknownUniformError struct {
	Name string
}

func (e *UnknownUniformError) Error() string {
	return fmt.Sprintf("unknown uniform location: %s", e.Name)
}

// checkCString rejects strings with embedded NUL bytes.
func checkCString(s string) error {
	if i := strings.IndexByte(s, 0); i >= 0 {
		return &NameConversionError{Value: s, Offset: i}
	}
	return nil
}
