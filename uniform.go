package gfx

// Uniform is a value that can be written to a program uniform. The set of
// implementations is closed: Float, Mat4 and *ActiveTextureSlot.
type Uniform interface {
	upload(d Driver, location int32)
}

// Float is a scalar float uniform.
type Float float32

func (f Float) upload(d Driver, location int32) {
	d.Uniform1f(location, float32(f))
}

func (m Mat4) upload(d Driver, location int32) {
	d.UniformMatrix4fv(location, (*[16]float32)(&m))
}

// upload writes the slot index as a sampler binding. It panics if no texture
// was bound to the slot, since sampling would read an undefined texture.
func (s *ActiveTextureSlot) upload(d Driver, location int32) {
	if s.texture == nil {
		panic("gfx: no texture has been bound to this ActiveTextureSlot")
	}
	d.Uniform1i(location, int32(s.index))
}
