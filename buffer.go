package gfx

// Buffer owns one native buffer object attached to a single target.
type Buffer struct {
	d      Driver
	id     uint32
	target DrawTarget
	size   int
}

// NewBuffer allocates a buffer object for target. Storage is allocated by
// Upload or UploadEmpty.
func NewBuffer(d Driver, target DrawTarget) *Buffer {
	b := &Buffer{d: d, id: d.GenBuffer(), target: target}
	if verbose() {
		logger.Debug("buffer created", "id", b.id, "target", target)
	}
	return b
}

// ID returns the native handle, or 0 after Delete.
func (b *Buffer) ID() uint32 { return b.id }

// Target returns the target the buffer binds to.
func (b *Buffer) Target() DrawTarget { return b.target }

// Size returns the byte size of the storage allocated by the last Upload or
// UploadEmpty.
func (b *Buffer) Size() int { return b.size }

// Bind makes the buffer current for its target.
func (b *Buffer) Bind() {
	b.mustLive()
	b.d.BindBuffer(b.target, b.id)
}

// Upload binds the buffer and replaces its storage with data.
func (b *Buffer) Upload(data []byte, usage DrawUsage) {
	b.Bind()
	b.d.BufferData(b.target, len(data), data, usage)
	b.size = len(data)
}

// UploadEmpty binds the buffer and reserves size bytes of uninitialized
// storage for later UpdateSubrange calls.
func (b *Buffer) UploadEmpty(size int, usage DrawUsage) {
	b.Bind()
	b.d.BufferData(b.target, size, nil, usage)
	b.size = size
}

// UpdateSubrange binds the buffer and overwrites len(data) bytes starting at
// offset. The caller must keep offset+len(data) within Size(); the range is
// not checked here and an overrun is reported only by the driver.
func (b *Buffer) UpdateSubrange(offset int, data []byte) {
	b.Bind()
	b.d.BufferSubData(b.target, offset, data)
}

// Read binds the buffer and copies len(dst) bytes starting at offset back
// from the driver.
func (b *Buffer) Read(offset int, dst []byte) {
	b.Bind()
	b.d.GetBufferSubData(b.target, offset, dst)
}

// Delete releases the native buffer. Calling Delete again has no effect.
func (b *Buffer) Delete() {
	if b.id == 0 {
		return
	}
	if verbose() {
		logger.Debug("buffer deleted", "id", b.id, "target", b.target)
	}
	b.d.DeleteBuffer(b.id)
	b.id = 0
	b.size = 0
}

func (b *Buffer) mustLive() {
	if b.id == 0 {
		panic("gfx: use of deleted buffer")
	}
}
