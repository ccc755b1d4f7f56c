package gfx_test

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-theft-auto/gfx"
	"github.com/go-theft-auto/gfx/gfxtest"
)

func TestTextureCreateDelete(t *testing.T) {
	d := gfxtest.New()
	tex := gfx.NewTexture(d, make([]byte, 2*3*4), 2, 3)

	info, ok := d.Texture(tex.ID())
	require.True(t, ok)
	assert.Equal(t, 2, info.Width)
	assert.Equal(t, 3, info.Height)
	assert.True(t, info.Mipmapped)
	assert.Equal(t, gfx.LinearMipmapLinear, info.Min)
	assert.Equal(t, gfx.Linear, info.Mag)
	assert.Equal(t, gfx.Vec2{X: 2, Y: 3}, tex.Size())

	tex.Delete()
	tex.Delete()

	assert.Zero(t, tex.ID())
	assert.Equal(t, 0, d.Live(gfxtest.KindTexture))
	assert.Equal(t, 1, d.Created(gfxtest.KindTexture))
	assert.Equal(t, 0, d.DoubleDeletes())
}

func TestTextureRejectsWrongPixelCount(t *testing.T) {
	d := gfxtest.New()
	assert.Panics(t, func() { gfx.NewTexture(d, make([]byte, 15), 2, 2) })
	assert.Panics(t, func() { gfx.NewTexture(d, nil, 0, 2) })
	assert.Equal(t, 0, d.Created(gfxtest.KindTexture))
}

func TestTextureOptions(t *testing.T) {
	d := gfxtest.New()
	pix := []byte{
		1, 1, 1, 1, // top row
		2, 2, 2, 2, // bottom row
	}
	tex := gfx.NewTexture(d, pix, 1, 2, gfx.WithFlipY(), gfx.WithFilter(gfx.Nearest, gfx.Nearest))

	info, _ := d.Texture(tex.ID())
	assert.Equal(t, []byte{2, 2, 2, 2, 1, 1, 1, 1}, info.Pixels)
	assert.Equal(t, gfx.Nearest, info.Min)
	assert.Equal(t, gfx.Nearest, info.Mag)
	// The caller's slice is left alone.
	assert.Equal(t, byte(1), pix[0])
}

func TestTextureFromSubImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	red := color.RGBA{R: 0xFF, A: 0xFF}
	img.SetRGBA(2, 2, red)

	d := gfxtest.New()
	tex := gfx.NewTextureFromImage(d, img.SubImage(image.Rect(2, 2, 4, 4)))

	assert.Equal(t, 2, tex.Width())
	assert.Equal(t, 2, tex.Height())
	info, _ := d.Texture(tex.ID())
	require.Len(t, info.Pixels, 16)
	assert.Equal(t, []byte{0xFF, 0, 0, 0xFF}, info.Pixels[:4])
}

func TestTextureFromPalettedImage(t *testing.T) {
	img := image.NewPaletted(image.Rect(0, 0, 2, 1), color.Palette{color.Black, color.White})
	img.SetColorIndex(1, 0, 1)

	d := gfxtest.New()
	tex := gfx.NewTextureFromImage(d, img)

	info, _ := d.Texture(tex.ID())
	assert.Equal(t, []byte{0, 0, 0, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, info.Pixels)
}

func TestActiveTextureSlotRange(t *testing.T) {
	s, err := gfx.NewActiveTextureSlot(31)
	require.NoError(t, err)
	assert.Equal(t, uint32(31), s.Index())
	assert.False(t, s.Bound())

	_, err = gfx.NewActiveTextureSlot(32)
	require.Error(t, err)
	assert.True(t, errors.Is(err, gfx.ErrIndexOutOfRange))

	assert.Panics(t, func() { gfx.MustActiveTextureSlot(gfx.MaxTextureSlots) })
}

func TestActiveTextureSlotBind(t *testing.T) {
	d := gfxtest.New()
	tex := gfx.NewTexture(d, make([]byte, 4), 1, 1)
	other := gfx.NewTexture(d, make([]byte, 4), 1, 1)

	slot := gfx.MustActiveTextureSlot(4)
	slot.Bind(d, tex)
	assert.True(t, slot.Bound())
	assert.Same(t, tex, slot.Texture())
	assert.Equal(t, uint32(4), d.ActiveUnit())
	assert.Equal(t, tex.ID(), d.UnitTexture(4))

	// Someone else rebinds the unit; Rebind restores the slot's texture.
	d.BindTexture(other.ID())
	slot.Rebind()
	assert.Equal(t, tex.ID(), d.UnitTexture(4))
}

func TestActiveTextureSlotRejectsDeadTextures(t *testing.T) {
	d := gfxtest.New()
	slot := gfx.MustActiveTextureSlot(0)

	assert.Panics(t, func() { slot.Rebind() })
	assert.Panics(t, func() { slot.Bind(d, nil) })

	tex := gfx.NewTexture(d, make([]byte, 4), 1, 1)
	slot.Bind(d, tex)
	tex.Delete()
	assert.Panics(t, func() { slot.Rebind() })
	assert.Panics(t, func() { slot.Bind(d, tex) })
}
