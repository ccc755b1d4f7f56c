package gfx

// VertexArray owns one native vertex array object. While bound, attribute
// setup and element-buffer binds are recorded into it.
type VertexArray struct {
	d  Driver
	id uint32
}

// NewVertexArray allocates a vertex array object.
func NewVertexArray(d Driver) *VertexArray {
	v := &VertexArray{d: d, id: d.GenVertexArray()}
	if verbose() {
		logger.Debug("vertex array created", "id", v.id)
	}
	return v
}

// ID returns the native handle, or 0 after Delete.
func (v *VertexArray) ID() uint32 { return v.id }

// Bind makes this the current vertex array.
func (v *VertexArray) Bind() {
	if v.id == 0 {
		panic("gfx: use of deleted vertex array")
	}
	v.d.BindVertexArray(v.id)
}

// DrawArrays binds the array and draws count vertices starting at first.
func (v *VertexArray) DrawArrays(mode DrawMode, first, count int) {
	v.Bind()
	v.d.DrawArrays(mode, int32(first), int32(count))
}

// DrawElements binds the array and draws count indices of type indexType
// from the start of the bound element buffer.
func (v *VertexArray) DrawElements(mode DrawMode, count int, indexType AttributeType) {
	v.Bind()
	v.d.DrawElements(mode, int32(count), indexType)
}

// Delete releases the native vertex array. Calling Delete again has no effect.
func (v *VertexArray) Delete() {
	if v.id == 0 {
		return
	}
	if verbose() {
		logger.Debug("vertex array deleted", "id", v.id)
	}
	v.d.DeleteVertexArray(v.id)
	v.id = 0
}
