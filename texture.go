package gfx

import (
	"fmt"
	"image"

	xdraw "golang.org/x/image/draw"
)

// MaxTextureSlots is the number of texture slots an ActiveTextureSlot can
// address.
const MaxTextureSlots = 32

// Texture owns one native 2D texture holding an RGBA8 image with a full
// mipmap chain.
type Texture struct {
	d      Driver
	id     uint32
	width  int
	height int
}

// NewTexture uploads pix, a tightly packed RGBA8 image of width×height pixels,
// and generates mipmaps. len(pix) must be width*height*4.
//
// Options: WithFilter, WithFlipY.
func NewTexture(d Driver, pix []byte, width, height int, opts ...Option) *Texture {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("gfx: texture size %dx%d must be positive", width, height))
	}
	if len(pix) != width*height*4 {
		panic(fmt.Sprintf("gfx: texture %dx%d needs %d RGBA8 bytes, got %d", width, height, width*height*4, len(pix)))
	}
	o := applyOptions(opts)
	if GetOpt(o, OptFlipY) {
		pix = flipRows(pix, width*4, height)
	}
	filter := GetOpt(o, OptFilter)

	t := &Texture{d: d, id: d.GenTexture(), width: width, height: height}
	d.BindTexture(t.id)
	d.TexImage2D(int32(width), int32(height), pix)
	d.TexFilter(filter.Min, filter.Mag)
	d.GenerateMipmap()

	if verbose() {
		logger.Debug("texture created", "id", t.id, "width", width, "height", height)
	}
	return t
}

// NewTextureFromImage converts img to RGBA8 and uploads it like NewTexture.
// Row 0 of the texture is the top row of img unless WithFlipY is given.
func NewTextureFromImage(d Driver, img image.Image, opts ...Option) *Texture {
	rgba := toRGBA(img)
	b := rgba.Bounds()
	return NewTexture(d, rgba.Pix, b.Dx(), b.Dy(), opts...)
}

// ID returns the native handle, or 0 after Delete.
func (t *Texture) ID() uint32 { return t.id }

// Width returns the width in pixels.
func (t *Texture) Width() int { return t.width }

// Height returns the height in pixels.
func (t *Texture) Height() int { return t.height }

// Size returns the texture dimensions as a Vec2.
func (t *Texture) Size() Vec2 { return Vec2{X: float32(t.width), Y: float32(t.height)} }

// Delete releases the native texture. Calling Delete again has no effect.
func (t *Texture) Delete() {
	if t.id == 0 {
		return
	}
	if verbose() {
		logger.Debug("texture deleted", "id", t.id)
	}
	t.d.DeleteTexture(t.id)
	t.id = 0
}

// toRGBA returns img as a tightly packed *image.RGBA anchored at the origin.
func toRGBA(img image.Image) *image.RGBA {
	b := img.Bounds()
	if rgba, ok := img.(*image.RGBA); ok && b.Min == (image.Point{}) && rgba.Stride == b.Dx()*4 {
		return rgba
	}
	dst := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, b.Min, xdraw.Src)
	return dst
}

// flipRows returns a copy of pix with its rows in reverse order.
func flipRows(pix []byte, rowLen, rows int) []byte {
	out := make([]byte, len(pix))
	for y := 0; y < rows; y++ {
		src := pix[y*rowLen : (y+1)*rowLen]
		copy(out[(rows-1-y)*rowLen:], src)
	}
	return out
}

// ActiveTextureSlot is one numbered texture unit plus the texture most
// recently bound to it through this value. The texture is borrowed: the
// slot never deletes it.
type ActiveTextureSlot struct {
	index   uint32
	d       Driver
	texture *Texture
}

// NewActiveTextureSlot returns slot index. index must be below
// MaxTextureSlots, otherwise the error wraps ErrIndexOutOfRange.
func NewActiveTextureSlot(index uint32) (*ActiveTextureSlot, error) {
	if index >= MaxTextureSlots {
		return nil, fmt.Errorf("slot %d (max %d): %w", index, MaxTextureSlots-1, ErrIndexOutOfRange)
	}
	return &ActiveTextureSlot{index: index}, nil
}

// MustActiveTextureSlot is like NewActiveTextureSlot but panics on error.
func MustActiveTextureSlot(index uint32) *ActiveTextureSlot {
	s, err := NewActiveTextureSlot(index)
	if err != nil {
		panic("gfx: " + err.Error())
	}
	return s
}

// Index returns the slot number.
func (s *ActiveTextureSlot) Index() uint32 { return s.index }

// Bound reports whether a texture has been bound through this slot.
func (s *ActiveTextureSlot) Bound() bool { return s.texture != nil }

// Texture returns the bound texture, or nil.
func (s *ActiveTextureSlot) Texture() *Texture { return s.texture }

// Bind activates the slot's texture unit, binds tex to it and records tex
// for later Rebind calls and uniform uploads.
func (s *ActiveTextureSlot) Bind(d Driver, tex *Texture) {
	if tex == nil || tex.id == 0 {
		panic("gfx: binding a nil or deleted texture")
	}
	s.d = d
	s.texture = tex
	s.Rebind()
}

// Rebind re-issues the unit activation and texture bind. Drawing code calls
// it before every draw because other code may have changed the binding.
func (s *ActiveTextureSlot) Rebind() {
	if s.texture == nil {
		panic("gfx: no texture has been bound to this ActiveTextureSlot")
	}
	if s.texture.id == 0 {
		panic("gfx: texture bound to this ActiveTextureSlot was deleted")
	}
	s.d.ActiveTexture(s.index)
	s.d.BindTexture(s.texture.id)
}
