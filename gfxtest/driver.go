// Package gfxtest provides an in-memory gfx.Driver that records what the
// wrappers ask of it. It models the binding state of an OpenGL context closely
// enough to catch missing binds, leaked or doubly deleted handles and uniform
// writes without a current program, and it keeps buffer contents so tests can
// read back what was uploaded.
//
// Shader "compilation" is a toy: a source compiles when it has a main
// function and balanced braces, and uniforms are collected from
// `uniform <type> <name>;` declarations.
package gfxtest

import (
	"encoding/binary"
	"math"
	"regexp"
	"strings"

	"github.com/go-theft-auto/gfx"
)

// Kind is a class of native handle.
type Kind int

const (
	KindBuffer Kind = iota
	KindVertexArray
	KindTexture
	KindShader
	KindProgram
)

func (k Kind) String() string {
	switch k {
	case KindBuffer:
		return "buffer"
	case KindVertexArray:
		return "vertex array"
	case KindTexture:
		return "texture"
	case KindShader:
		return "shader"
	case KindProgram:
		return "program"
	}
	return "unknown"
}

// Attrib is the recorded configuration of one vertex attribute slot.
type Attrib struct {
	Enabled    bool
	Buffer     uint32
	Size       int32
	Type       gfx.AttributeType
	Normalized bool
	Stride     int32 // bytes
	Offset     int   // bytes
}

// TextureInfo is the recorded state of a texture object.
type TextureInfo struct {
	Width, Height int
	Pixels        []byte
	Mipmapped     bool
	Min, Mag      gfx.TextureFilter
}

// DrawCall is a snapshot of the state a draw call saw.
type DrawCall struct {
	Mode        gfx.DrawMode
	First       int32
	Count       int32
	IndexType   gfx.AttributeType // zero for DrawArrays
	VertexArray uint32
	Program     uint32
	Textures    [gfx.MaxTextureSlots]uint32
	Blend       bool
	// Attribs holds, per enabled float attribute slot, the buffer contents
	// as seen through the slot's offset and stride.
	Attribs map[uint32][]float32
	// Indices holds the first Count indices of the element buffer for
	// DrawElements with TypeUnsignedInt.
	Indices []uint32
}

type buffer struct {
	data  []byte
	usage gfx.DrawUsage
}

type vertexArray struct {
	attribs  map[uint32]*Attrib
	elements uint32
}

type shader struct {
	stage    gfx.ShaderStage
	source   string
	compiled bool
	log      string
}

type program struct {
	shaders  []uint32
	linked   bool
	log      string
	uniforms []string
	values   map[int32]any
}

// Driver is a recording gfx.Driver. The zero value is not usable; call New.
type Driver struct {
	next          map[Kind]uint32
	live          map[Kind]map[uint32]bool
	created       map[Kind]int
	doubleDeletes int

	buffers     map[uint32]*buffer
	boundBuffer map[gfx.DrawTarget]uint32
	vaos        map[uint32]*vertexArray
	boundVAO    uint32

	shaders  map[uint32]*shader
	programs map[uint32]*program
	current  uint32

	textures   map[uint32]*TextureInfo
	activeUnit uint32
	units      [gfx.MaxTextureSlots]uint32

	enabled    map[gfx.Capability]bool
	blendSrc   gfx.BlendFactor
	blendDst   gfx.BlendFactor
	clearColor [4]float32
	cleared    gfx.ClearFlags
	viewport   [4]int32

	errors []gfx.ErrorCode

	// Draws lists every successful draw call in order.
	Draws []DrawCall
	// UniformWrites counts successful Uniform* calls.
	UniformWrites int
	// FailLink, when non-empty, makes every LinkProgram fail with this log.
	FailLink string
}

var _ gfx.Driver = (*Driver)(nil)

// New returns an empty recording driver.
func New() *Driver {
	return &Driver{
		next:        make(map[Kind]uint32),
		live:        make(map[Kind]map[uint32]bool),
		created:     make(map[Kind]int),
		buffers:     make(map[uint32]*buffer),
		boundBuffer: make(map[gfx.DrawTarget]uint32),
		vaos:        make(map[uint32]*vertexArray),
		shaders:     make(map[uint32]*shader),
		programs:    make(map[uint32]*program),
		textures:    make(map[uint32]*TextureInfo),
		enabled:     make(map[gfx.Capability]bool),
	}
}

// --- handle accounting ---

// alloc returns a fresh handle. Handles of a kind are never reused.
func (d *Driver) alloc(k Kind) uint32 {
	d.next[k]++
	id := d.next[k]
	if d.live[k] == nil {
		d.live[k] = make(map[uint32]bool)
	}
	d.live[k][id] = true
	d.created[k]++
	return id
}

// free releases a handle and reports whether it was live. 0 is ignored.
func (d *Driver) free(k Kind, id uint32) bool {
	if id == 0 {
		return false
	}
	if !d.live[k][id] {
		d.doubleDeletes++
		return false
	}
	delete(d.live[k], id)
	return true
}

func (d *Driver) isLive(k Kind, id uint32) bool { return d.live[k][id] }

// Live returns the number of handles of kind k that are allocated.
func (d *Driver) Live(k Kind) int { return len(d.live[k]) }

// Created returns the number of handles of kind k ever allocated.
func (d *Driver) Created(k Kind) int { return d.created[k] }

// DoubleDeletes counts deletes of handles that were not live.
func (d *Driver) DoubleDeletes() int { return d.doubleDeletes }

// IsLive reports whether handle id of kind k is allocated.
func (d *Driver) IsLive(k Kind, id uint32) bool { return d.isLive(k, id) }

// --- errors ---

func (d *Driver) fail(code gfx.ErrorCode) { d.errors = append(d.errors, code) }

// PushError queues an error for GetError.
func (d *Driver) PushError(code gfx.ErrorCode) { d.fail(code) }

// PendingErrors returns the queued errors without clearing them.
func (d *Driver) PendingErrors() []gfx.ErrorCode {
	return append([]gfx.ErrorCode(nil), d.errors...)
}

func (d *Driver) GetError() gfx.ErrorCode {
	if len(d.errors) == 0 {
		return gfx.NoError
	}
	code := d.errors[0]
	d.errors = d.errors[1:]
	return code
}

// --- buffers ---

func (d *Driver) GenBuffer() uint32 {
	id := d.alloc(KindBuffer)
	d.buffers[id] = &buffer{}
	return id
}

func (d *Driver) DeleteBuffer(id uint32) {
	if !d.free(KindBuffer, id) {
		return
	}
	delete(d.buffers, id)
	for t, b := range d.boundBuffer {
		if b == id {
			delete(d.boundBuffer, t)
		}
	}
	for _, v := range d.vaos {
		if v.elements == id {
			v.elements = 0
		}
	}
}

func (d *Driver) BindBuffer(target gfx.DrawTarget, id uint32) {
	if id != 0 && !d.isLive(KindBuffer, id) {
		d.fail(gfx.InvalidOperation)
		return
	}
	if target == gfx.ElementArrayBuffer && d.boundVAO != 0 {
		d.vaos[d.boundVAO].elements = id
		return
	}
	d.boundBuffer[target] = id
}

// BoundBuffer returns the buffer bound to target, honouring the element
// buffer binding of the current vertex array.
func (d *Driver) BoundBuffer(target gfx.DrawTarget) uint32 {
	if target == gfx.ElementArrayBuffer && d.boundVAO != 0 {
		return d.vaos[d.boundVAO].elements
	}
	return d.boundBuffer[target]
}

func (d *Driver) bound(target gfx.DrawTarget) *buffer {
	id := d.BoundBuffer(target)
	if id == 0 {
		d.fail(gfx.InvalidOperation)
		return nil
	}
	return d.buffers[id]
}

func (d *Driver) BufferData(target gfx.DrawTarget, size int, data []byte, usage gfx.DrawUsage) {
	b := d.bound(target)
	if b == nil {
		return
	}
	if size < 0 || len(data) > size {
		d.fail(gfx.InvalidValue)
		return
	}
	b.data = make([]byte, size)
	copy(b.data, data)
	b.usage = usage
}

func (d *Driver) BufferSubData(target gfx.DrawTarget, offset int, data []byte) {
	b := d.bound(target)
	if b == nil {
		return
	}
	if offset < 0 || offset+len(data) > len(b.data) {
		d.fail(gfx.InvalidValue)
		return
	}
	copy(b.data[offset:], data)
}

func (d *Driver) GetBufferSubData(target gfx.DrawTarget, offset int, dst []byte) {
	b := d.bound(target)
	if b == nil {
		return
	}
	if offset < 0 || offset+len(dst) > len(b.data) {
		d.fail(gfx.InvalidValue)
		return
	}
	copy(dst, b.data[offset:])
}

// BufferContents returns a copy of the storage of buffer id.
func (d *Driver) BufferContents(id uint32) []byte {
	b, ok := d.buffers[id]
	if !ok {
		return nil
	}
	return append([]byte(nil), b.data...)
}

// BufferUsage returns the usage hint of the last allocation of buffer id.
func (d *Driver) BufferUsage(id uint32) gfx.DrawUsage {
	if b, ok := d.buffers[id]; ok {
		return b.usage
	}
	return 0
}

// --- vertex arrays ---

func (d *Driver) GenVertexArray() uint32 {
	id := d.alloc(KindVertexArray)
	d.vaos[id] = &vertexArray{attribs: make(map[uint32]*Attrib)}
	return id
}

func (d *Driver) DeleteVertexArray(id uint32) {
	if !d.free(KindVertexArray, id) {
		return
	}
	delete(d.vaos, id)
	if d.boundVAO == id {
		d.boundVAO = 0
	}
}

func (d *Driver) BindVertexArray(id uint32) {
	if id != 0 && !d.isLive(KindVertexArray, id) {
		d.fail(gfx.InvalidOperation)
		return
	}
	d.boundVAO = id
}

// BoundVertexArray returns the current vertex array.
func (d *Driver) BoundVertexArray() uint32 { return d.boundVAO }

func (d *Driver) attrib(index uint32) *Attrib {
	if d.boundVAO == 0 {
		d.fail(gfx.InvalidOperation)
		return nil
	}
	v := d.vaos[d.boundVAO]
	a, ok := v.attribs[index]
	if !ok {
		a = &Attrib{}
		v.attribs[index] = a
	}
	return a
}

func (d *Driver) EnableVertexAttribArray(index uint32) {
	if a := d.attrib(index); a != nil {
		a.Enabled = true
	}
}

func (d *Driver) VertexAttribPointer(index uint32, size int32, typ gfx.AttributeType, normalized bool, stride int32, offset int) {
	if d.boundBuffer[gfx.ArrayBuffer] == 0 {
		d.fail(gfx.InvalidOperation)
		return
	}
	if size < 1 || size > 4 || stride < 0 {
		d.fail(gfx.InvalidValue)
		return
	}
	a := d.attrib(index)
	if a == nil {
		return
	}
	a.Buffer = d.boundBuffer[gfx.ArrayBuffer]
	a.Size = size
	a.Type = typ
	a.Normalized = normalized
	a.Stride = stride
	a.Offset = offset
}

// Attrib returns the configuration of slot index in vertex array vao.
func (d *Driver) Attrib(vao, index uint32) (Attrib, bool) {
	v, ok := d.vaos[vao]
	if !ok {
		return Attrib{}, false
	}
	a, ok := v.attribs[index]
	if !ok {
		return Attrib{}, false
	}
	return *a, true
}

// ElementBuffer returns the element buffer recorded in vertex array vao.
func (d *Driver) ElementBuffer(vao uint32) uint32 {
	if v, ok := d.vaos[vao]; ok {
		return v.elements
	}
	return 0
}

func (d *Driver) drawReady() bool {
	if d.boundVAO == 0 || d.current == 0 {
		d.fail(gfx.InvalidOperation)
		return false
	}
	return true
}

func (d *Driver) snapshot(mode gfx.DrawMode, first, count int32) DrawCall {
	dc := DrawCall{
		Mode:        mode,
		First:       first,
		Count:       count,
		VertexArray: d.boundVAO,
		Program:     d.current,
		Textures:    d.units,
		Blend:       d.enabled[gfx.Blend],
		Attribs:     make(map[uint32][]float32),
	}
	for index, a := range d.vaos[d.boundVAO].attribs {
		if !a.Enabled || a.Type != gfx.TypeFloat {
			continue
		}
		if b, ok := d.buffers[a.Buffer]; ok {
			dc.Attribs[index] = readFloats(b.data, a)
		}
	}
	return dc
}

func (d *Driver) DrawArrays(mode gfx.DrawMode, first, count int32) {
	if !d.drawReady() {
		return
	}
	d.Draws = append(d.Draws, d.snapshot(mode, first, count))
}

func (d *Driver) DrawElements(mode gfx.DrawMode, count int32, typ gfx.AttributeType) {
	if !d.drawReady() {
		return
	}
	elements := d.vaos[d.boundVAO].elements
	if elements == 0 {
		d.fail(gfx.InvalidOperation)
		return
	}
	dc := d.snapshot(mode, 0, count)
	dc.IndexType = typ
	if typ == gfx.TypeUnsignedInt {
		data := d.buffers[elements].data
		for i := 0; i < int(count) && (i+1)*4 <= len(data); i++ {
			dc.Indices = append(dc.Indices, binary.NativeEndian.Uint32(data[i*4:]))
		}
	}
	d.Draws = append(d.Draws, dc)
}

// readFloats decodes the components an attribute reads from data.
func readFloats(data []byte, a *Attrib) []float32 {
	elem := int(a.Size) * 4
	stride := int(a.Stride)
	if stride == 0 {
		stride = elem
	}
	var out []float32
	for off := a.Offset; off+elem <= len(data); off += stride {
		for c := 0; c < int(a.Size); c++ {
			bits := binary.NativeEndian.Uint32(data[off+c*4:])
			out = append(out, math.Float32frombits(bits))
		}
	}
	return out
}

// --- shaders and programs ---

var uniformDecl = regexp.MustCompile(`(?m)^\s*uniform\s+\w+\s+(\w+)\s*;`)

func (d *Driver) CreateShader(stage gfx.ShaderStage) uint32 {
	id := d.alloc(KindShader)
	d.shaders[id] = &shader{stage: stage}
	return id
}

func (d *Driver) ShaderSource(id uint32, source string) {
	s, ok := d.shaders[id]
	if !ok {
		d.fail(gfx.InvalidValue)
		return
	}
	s.source = source
}

func (d *Driver) CompileShader(id uint32) {
	s, ok := d.shaders[id]
	if !ok {
		d.fail(gfx.InvalidValue)
		return
	}
	switch {
	case !strings.Contains(s.source, "main"):
		s.compiled, s.log = false, "0:1(1): error: no function with name 'main'"
	case strings.Count(s.source, "{") != strings.Count(s.source, "}"):
		s.compiled, s.log = false, "0:1(1): error: syntax error, unexpected end of file"
	default:
		s.compiled, s.log = true, ""
	}
}

func (d *Driver) ShaderCompiled(id uint32) bool {
	s, ok := d.shaders[id]
	return ok && s.compiled
}

func (d *Driver) ShaderInfoLog(id uint32) string {
	if s, ok := d.shaders[id]; ok {
		return s.log
	}
	return ""
}

func (d *Driver) DeleteShader(id uint32) {
	if d.free(KindShader, id) {
		delete(d.shaders, id)
	}
}

func (d *Driver) CreateProgram() uint32 {
	id := d.alloc(KindProgram)
	d.programs[id] = &program{values: make(map[int32]any)}
	return id
}

func (d *Driver) AttachShader(programID, shaderID uint32) {
	p, ok := d.programs[programID]
	if !ok || !d.isLive(KindShader, shaderID) {
		d.fail(gfx.InvalidValue)
		return
	}
	p.shaders = append(p.shaders, shaderID)
}

func (d *Driver) LinkProgram(id uint32) {
	p, ok := d.programs[id]
	if !ok {
		d.fail(gfx.InvalidValue)
		return
	}
	if d.FailLink != "" {
		p.linked, p.log = false, d.FailLink
		return
	}

	stages := make(map[gfx.ShaderStage]bool)
	var uniforms []string
	seen := make(map[string]bool)
	for _, sid := range p.shaders {
		s, ok := d.shaders[sid]
		if !ok || !s.compiled {
			p.linked, p.log = false, "error: linking with uncompiled or deleted shader"
			return
		}
		stages[s.stage] = true
		for _, m := range uniformDecl.FindAllStringSubmatch(s.source, -1) {
			if !seen[m[1]] {
				seen[m[1]] = true
				uniforms = append(uniforms, m[1])
			}
		}
	}
	if !stages[gfx.VertexStage] || !stages[gfx.FragmentStage] {
		p.linked, p.log = false, "error: program needs a vertex and a fragment shader"
		return
	}
	p.linked, p.log, p.uniforms = true, "", uniforms
}

func (d *Driver) ProgramLinked(id uint32) bool {
	p, ok := d.programs[id]
	return ok && p.linked
}

func (d *Driver) ProgramInfoLog(id uint32) string {
	if p, ok := d.programs[id]; ok {
		return p.log
	}
	return ""
}

func (d *Driver) DeleteProgram(id uint32) {
	if !d.free(KindProgram, id) {
		return
	}
	delete(d.programs, id)
	if d.current == id {
		d.current = 0
	}
}

func (d *Driver) UseProgram(id uint32) {
	if id != 0 {
		p, ok := d.programs[id]
		if !ok || !p.linked {
			d.fail(gfx.InvalidOperation)
			return
		}
	}
	d.current = id
}

// CurrentProgram returns the program in use.
func (d *Driver) CurrentProgram() uint32 { return d.current }

func (d *Driver) UniformLocation(programID uint32, name string) int32 {
	p, ok := d.programs[programID]
	if !ok || !p.linked {
		d.fail(gfx.InvalidOperation)
		return -1
	}
	for i, u := range p.uniforms {
		if u == name {
			return int32(i)
		}
	}
	return -1
}

func (d *Driver) setUniform(location int32, v any) {
	p, ok := d.programs[d.current]
	if !ok || location < 0 || int(location) >= len(p.uniforms) {
		d.fail(gfx.InvalidOperation)
		return
	}
	p.values[location] = v
	d.UniformWrites++
}

func (d *Driver) Uniform1f(location int32, v float32) { d.setUniform(location, v) }

func (d *Driver) Uniform1i(location int32, v int32) { d.setUniform(location, v) }

func (d *Driver) UniformMatrix4fv(location int32, m *[16]float32) { d.setUniform(location, *m) }

// Uniform returns the last value written to uniform name of a program:
// float32, int32 or [16]float32.
func (d *Driver) Uniform(programID uint32, name string) (any, bool) {
	p, ok := d.programs[programID]
	if !ok {
		return nil, false
	}
	for i, u := range p.uniforms {
		if u == name {
			v, ok := p.values[int32(i)]
			return v, ok
		}
	}
	return nil, false
}

// Uniforms returns the active uniform names of a linked program.
func (d *Driver) Uniforms(programID uint32) []string {
	if p, ok := d.programs[programID]; ok {
		return append([]string(nil), p.uniforms...)
	}
	return nil
}

// --- textures ---

func (d *Driver) GenTexture() uint32 {
	id := d.alloc(KindTexture)
	d.textures[id] = &TextureInfo{}
	return id
}

func (d *Driver) DeleteTexture(id uint32) {
	if !d.free(KindTexture, id) {
		return
	}
	delete(d.textures, id)
	for i, t := range d.units {
		if t == id {
			d.units[i] = 0
		}
	}
}

func (d *Driver) ActiveTexture(unit uint32) {
	if unit >= gfx.MaxTextureSlots {
		d.fail(gfx.InvalidEnum)
		return
	}
	d.activeUnit = unit
}

func (d *Driver) BindTexture(id uint32) {
	if id != 0 && !d.isLive(KindTexture, id) {
		d.fail(gfx.InvalidOperation)
		return
	}
	d.units[d.activeUnit] = id
}

// ActiveUnit returns the active texture unit.
func (d *Driver) ActiveUnit() uint32 { return d.activeUnit }

// UnitTexture returns the texture bound to unit.
func (d *Driver) UnitTexture(unit uint32) uint32 { return d.units[unit] }

func (d *Driver) boundTexture() *TextureInfo {
	id := d.units[d.activeUnit]
	if id == 0 {
		d.fail(gfx.InvalidOperation)
		return nil
	}
	return d.textures[id]
}

func (d *Driver) TexImage2D(width, height int32, pixels []byte) {
	t := d.boundTexture()
	if t == nil {
		return
	}
	if len(pixels) != int(width*height*4) {
		d.fail(gfx.InvalidValue)
		return
	}
	t.Width, t.Height = int(width), int(height)
	t.Pixels = append([]byte(nil), pixels...)
	t.Mipmapped = false
}

func (d *Driver) TexFilter(min, mag gfx.TextureFilter) {
	if t := d.boundTexture(); t != nil {
		t.Min, t.Mag = min, mag
	}
}

func (d *Driver) GenerateMipmap() {
	if t := d.boundTexture(); t != nil {
		t.Mipmapped = true
	}
}

// Texture returns the recorded state of texture id.
func (d *Driver) Texture(id uint32) (TextureInfo, bool) {
	t, ok := d.textures[id]
	if !ok {
		return TextureInfo{}, false
	}
	return *t, true
}

// --- frame state ---

func (d *Driver) Enable(c gfx.Capability) { d.enabled[c] = true }

func (d *Driver) Disable(c gfx.Capability) { d.enabled[c] = false }

// Enabled reports whether capability c is on.
func (d *Driver) Enabled(c gfx.Capability) bool { return d.enabled[c] }

func (d *Driver) BlendFunc(src, dst gfx.BlendFactor) { d.blendSrc, d.blendDst = src, dst }

// BlendFactors returns the current blend factors.
func (d *Driver) BlendFactors() (src, dst gfx.BlendFactor) { return d.blendSrc, d.blendDst }

func (d *Driver) ClearColor(r, g, b, a float32) { d.clearColor = [4]float32{r, g, b, a} }

func (d *Driver) Clear(mask gfx.ClearFlags) { d.cleared |= mask }

// Cleared returns the union of all Clear masks so far.
func (d *Driver) Cleared() gfx.ClearFlags { return d.cleared }

func (d *Driver) Viewport(x, y, width, height int32) {
	if width < 0 || height < 0 {
		d.fail(gfx.InvalidValue)
		return
	}
	d.viewport = [4]int32{x, y, width, height}
}

// ViewportRect returns the last viewport.
func (d *Driver) ViewportRect() [4]int32 { return d.viewport }

// ReadPixels fills dst with the clear color; no rasterization is modelled.
func (d *Driver) ReadPixels(x, y, width, height int32, dst []byte) {
	if len(dst) < int(width*height*4) {
		d.fail(gfx.InvalidOperation)
		return
	}
	var px [4]byte
	for i, c := range d.clearColor {
		px[i] = byte(math.Round(float64(c) * 255))
	}
	for i := 0; i+4 <= int(width*height*4); i += 4 {
		copy(dst[i:], px[:])
	}
}
