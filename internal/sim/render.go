package sim

import "github.com/go-gl/mathgl/mgl32"

// TextureHandle identifies a texture owned by whatever loaded it.
// Zero means no texture.
type TextureHandle uint32

// NoTexture is the zero handle.
const NoTexture TextureHandle = 0

// RenderTarget receives textured unit quads. A quad spans [-0.5, 0.5] on
// both axes before the transform is applied.
type RenderTarget interface {
	SetTransform(m mgl32.Mat4)
	BindTexture(h TextureHandle)
	DrawQuad()
}

// Draw submits every active entity of the pools to t, pools in the given
// order and entities in slot order. It returns the number of quads drawn.
func Draw(t RenderTarget, pools ...*Pool) int {
	n := 0
	for _, p := range pools {
		for i := range p.Len() {
			e := p.At(i)
			if !e.Active {
				continue
			}
			t.SetTransform(e.Transform)
			t.BindTexture(e.Texture)
			t.DrawQuad()
			n++
		}
	}
	return n
}
