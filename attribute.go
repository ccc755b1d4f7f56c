package gfx

import "fmt"

// SetupAttribute enables attribute slot index on the bound vertex array and
// points it at the bound array buffer. size is the component count (1-4).
// offset and stride are counted in elements of typ, not bytes; a stride of 0
// means tightly packed.
//
// Call it once per slot after binding both the vertex array and the buffer.
// Failures surface only as driver error state.
func SetupAttribute(d Driver, index uint32, size, offset, stride int, typ AttributeType) {
	if size < 1 || size > 4 {
		panic(fmt.Sprintf("gfx: attribute %d: component count %d outside 1..4", index, size))
	}
	elem := typ.Size()
	if elem == 0 {
		panic(fmt.Sprintf("gfx: attribute %d: unsupported element type %s", index, typ))
	}
	if offset < 0 || stride < 0 {
		panic(fmt.Sprintf("gfx: attribute %d: negative offset %d or stride %d", index, offset, stride))
	}
	d.EnableVertexAttribArray(index)
	d.VertexAttribPointer(index, int32(size), typ, false, int32(stride*elem), offset*elem)
}
