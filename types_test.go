package gfx_test

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"

	"github.com/go-theft-auto/gfx"
)

const mathEpsilon = 1e-5

func assertVec4(t *testing.T, want, got [4]float32) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], mathEpsilon, "component %d of %v", i, got)
	}
}

func assertMat4(t *testing.T, want, got gfx.Mat4) {
	t.Helper()
	for i := range want {
		assert.InDelta(t, want[i], got[i], mathEpsilon, "element %d of %v", i, got)
	}
}

func TestVec(t *testing.T) {
	a := gfx.Vec2{X: 1, Y: 2}
	assert.Equal(t, gfx.Vec2{X: 4, Y: 6}, a.Add(gfx.Vec2{X: 3, Y: 4}))
	assert.Equal(t, gfx.Vec2{X: 0, Y: 1}, a.Sub(gfx.Vec2{X: 1, Y: 1}))
	assert.Equal(t, gfx.Vec2{X: 2, Y: 4}, a.Mul(2))

	x, y := gfx.Vec3{X: 1}, gfx.Vec3{Y: 1}
	assert.Equal(t, gfx.Vec3{Z: 1}, x.Cross(y))
	assert.Equal(t, float32(0), x.Dot(y))
	assert.InDelta(t, 5, gfx.Vec3{X: 3, Y: 4}.Len(), mathEpsilon)
	assert.InDelta(t, 1, gfx.Vec3{X: 3, Y: 4}.Normalize().Len(), mathEpsilon)
	assert.Equal(t, gfx.Vec3{}, gfx.Vec3{}.Normalize())
}

func TestRectContains(t *testing.T) {
	r := gfx.Rect{X: 10, Y: 10, W: 5, H: 5}
	assert.True(t, r.Contains(gfx.Vec2{X: 10, Y: 14}))
	assert.False(t, r.Contains(gfx.Vec2{X: 15, Y: 12}))
}

func TestMat4Mul(t *testing.T) {
	m := gfx.Translate(1, 2, 3).Mul(gfx.Scale(2, 2, 2))
	assertVec4(t, [4]float32{3, 4, 5, 1}, m.MulVec4(1, 1, 1, 1))
	assert.Equal(t, float32(1), m.At(0, 3))
	assert.Equal(t, m, m.Mul(gfx.Identity4()))
}

func TestOrthoMapsCorners(t *testing.T) {
	m := gfx.Ortho(0, 800, 0, 600, -1, 1)
	assertVec4(t, [4]float32{-1, -1, 0, 1}, m.MulVec4(0, 0, 0, 1))
	assertVec4(t, [4]float32{1, 1, 0, 1}, m.MulVec4(800, 600, 0, 1))
}

func TestPerspectiveDepthRange(t *testing.T) {
	m := gfx.Perspective(math32.Pi/2, 1, 0.1, 100)

	near := m.MulVec4(0, 0, -0.1, 1)
	assert.InDelta(t, -1, near[2]/near[3], mathEpsilon)

	far := m.MulVec4(0, 0, -100, 1)
	assert.InDelta(t, 1, far[2]/far[3], 1e-4)

	edge := m.MulVec4(1, 0, -1, 1)
	assert.InDelta(t, 1, edge[0]/edge[3], mathEpsilon)
}

func TestRotateY(t *testing.T) {
	m := gfx.RotateY(math32.Pi / 2)
	assertVec4(t, [4]float32{0, 0, -1, 1}, m.MulVec4(1, 0, 0, 1))
}

func TestCameraDefaults(t *testing.T) {
	c := gfx.NewCamera(800, 600)

	assert.InDelta(t, 0, c.Direction.X, mathEpsilon)
	assert.InDelta(t, 0, c.Direction.Y, mathEpsilon)
	assert.InDelta(t, -1, c.Direction.Z, mathEpsilon)
	assertMat4(t, gfx.Identity4(), c.View())
	assert.Equal(t, gfx.Ortho(0, 800, 0, 600, -1, 1), c.OrthoProjection())
	assertMat4(t, gfx.Perspective(math32.Pi/2, 800.0/600.0, 0.1, 100), c.Projection())

	c.Resize(100, 50)
	assert.Equal(t, gfx.Ortho(0, 100, 0, 50, -1, 1), c.OrthoProjection())
}

func TestCameraLook(t *testing.T) {
	c := gfx.NewCamera(800, 600)
	c.Look(math32.Pi/2, 0)

	assert.InDelta(t, -1, c.Direction.X, mathEpsilon)
	assert.InDelta(t, 0, c.Direction.Z, mathEpsilon)
	assert.InDelta(t, 1, c.Up.Y, mathEpsilon)

	c.Position = gfx.Vec3{X: 5}
	assertVec4(t, [4]float32{0, 0, -1, 1}, c.View().MulVec4(4, 0, 0, 1))
}
