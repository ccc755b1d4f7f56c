/*
Package gfx is a thin object layer over an OpenGL-style graphics driver:
buffers, vertex arrays, shader programs and textures, each owning exactly
one native handle, plus sprite and bitmap-font renderers built from them.

# Overview

Every wrapper talks to the native API through a Driver. The OpenGL
implementation lives in backend/opengl; package gfxtest provides an
in-memory recording Driver for tests.

Resources are created once at setup and released with Delete. Delete is
idempotent, so a handle is released exactly once.

# Quick Start

	// Setup, after a context is current
	d, _ := opengl.New()

	sheet := gfx.NewFontSheet(basicfont.Face7x13, 16)
	tex := gfx.NewTextureFromImage(d, sheet.Image, gfx.WithFilter(gfx.Nearest, gfx.Nearest))

	slot := gfx.MustActiveTextureSlot(0)
	slot.Bind(d, tex)

	text, err := gfx.NewSpriteSheet(d, slot, sheet.Size(), sheet.Cell, gfx.WithGlyphMap(sheet.Glyphs))
	if err != nil {
	    return err
	}
	defer text.Delete()

	// Frame loop
	for !window.ShouldClose() {
	    gfx.Clear(d, gfx.ClearColor)
	    text.DrawText("Hello", gfx.Vec2{X: 10, Y: 10}, camera.OrthoProjection(), 2)
	    gfx.DrainErrors(d)
	    window.SwapBuffers()
	}

# Binding state

The driver keeps one current vertex array, one buffer per target, one
program and one texture per unit. That state is global to the context.
Drawing operations in this package never assume a binding made elsewhere
still holds: each Draw re-binds its program, texture, vertex array and
buffers before it uploads or draws. All calls must come from the thread that
owns the context.

Sprites share one SpriteQuad mesh that is created explicitly and passed to
NewSprite. Because each Sprite.Draw rewrites the quad's position buffer,
sprite draws are strictly sequential.

# Errors

Four failures are returned as typed errors: *CompileError and *LinkError
carry the driver log, *NameConversionError rejects strings containing NUL,
and *UnknownUniformError names a uniform the program does not expose. A
texture slot index of 32 or more returns an error wrapping
ErrIndexOutOfRange.

Contract violations panic: uploading an ActiveTextureSlot with nothing
bound, reusing a shader that was already linked, a pixel buffer of the
wrong length, or a glyph grid whose texture is not a whole number of cells.

Native driver errors are never turned into Go errors. Call DrainErrors once
per frame to log them.

# Glyph layout

A GlyphGrid numbers cells left to right, top to bottom. Glyph n sits at
column n % perRow and row n / perRow, with normalized UVs

	u0 = col*cellW/texW, v0 = row*cellH/texH, u1 = u0+cellW/texW, v1 = v0+cellH/texH

Sprites and glyphs share one orientation: texel row 0 lands on the top edge
of the quad in a y-up space, so images uploaded top row first draw upright.

Text bytes become glyph indices through a GlyphMap, which is data: a
different font sheet needs a different map, not different code.
*/
package gfx
