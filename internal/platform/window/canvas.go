//go:build ebiten

// Package window runs games in a desktop window through Ebiten. Entity
// quads become real textured sprites; HUD text uses Ebiten's debug font.
package window

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/render"
	"github.com/vovakirdan/quad-arcade/internal/sim"
)

// Debug font cell size in pixels.
const (
	cellW = 6
	cellH = 16
)

// Canvas implements render.Canvas on an Ebiten image.
type Canvas struct {
	dst       *ebiten.Image
	view      render.Viewport
	atlas     *render.Atlas
	area      image.Rectangle
	toPixels  mgl32.Mat4
	transform mgl32.Mat4
	texture   sim.TextureHandle

	white  *ebiten.Image
	images map[sim.TextureHandle]*ebiten.Image // decoded textures of atlas
}

// NewCanvas creates a canvas. Target must be called before each frame.
func NewCanvas() *Canvas {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &Canvas{white: white, transform: mgl32.Ident4()}
}

// Target sets the image the next frame is drawn on.
func (c *Canvas) Target(dst *ebiten.Image) {
	c.dst = dst
}

// Begin implements render.Canvas.
func (c *Canvas) Begin(view render.Viewport, atlas *render.Atlas) {
	if atlas != c.atlas {
		c.images = make(map[sim.TextureHandle]*ebiten.Image)
	}
	c.view = view
	c.atlas = atlas
	c.area = fitRect(c.dst.Bounds(), view.Aspect())
	c.toPixels = pixelMatrix(view, c.area)
	c.transform = mgl32.Ident4()
	c.texture = sim.NoTexture
	c.dst.Fill(color.Black)
}

// fitRect returns the largest rectangle of the given aspect centered in b.
func fitRect(b image.Rectangle, aspect float32) image.Rectangle {
	w, h := b.Dx(), b.Dy()
	if w <= 0 || h <= 0 || aspect <= 0 {
		return image.Rectangle{}
	}
	if float32(w) > aspect*float32(h) {
		w = int(aspect * float32(h))
	} else {
		h = int(float32(w) / aspect)
	}
	x := b.Min.X + (b.Dx()-w)/2
	y := b.Min.Y + (b.Dy()-h)/2
	return image.Rect(x, y, x+w, y+h)
}

// pixelMatrix maps world coordinates inside view onto area, y pointing down.
func pixelMatrix(view render.Viewport, area image.Rectangle) mgl32.Mat4 {
	if view.HalfW == 0 || view.HalfH == 0 {
		return mgl32.Ident4()
	}
	sx := float32(area.Dx()) / (2 * view.HalfW)
	sy := float32(area.Dy()) / (2 * view.HalfH)
	return mgl32.Translate3D(float32(area.Min.X)+float32(area.Dx())/2, float32(area.Min.Y)+float32(area.Dy())/2, 0).
		Mul4(mgl32.Scale3D(sx, -sy, 1)).
		Mul4(mgl32.Translate3D(-view.CenterX, -view.CenterY, 0))
}

// quadGeoM maps the pixels of a w×h image onto the unit quad under m.
func quadGeoM(m mgl32.Mat4, w, h int) ebiten.GeoM {
	var g ebiten.GeoM
	g.Scale(1/float64(w), -1/float64(h))
	g.Translate(-0.5, 0.5)

	var affine ebiten.GeoM
	affine.SetElement(0, 0, float64(m.At(0, 0)))
	affine.SetElement(0, 1, float64(m.At(0, 1)))
	affine.SetElement(0, 2, float64(m.At(0, 3)))
	affine.SetElement(1, 0, float64(m.At(1, 0)))
	affine.SetElement(1, 1, float64(m.At(1, 1)))
	affine.SetElement(1, 2, float64(m.At(1, 3)))
	g.Concat(affine)
	return g
}

// SetTransform implements sim.RenderTarget.
func (c *Canvas) SetTransform(m mgl32.Mat4) {
	c.transform = m
}

// BindTexture implements sim.RenderTarget.
func (c *Canvas) BindTexture(h sim.TextureHandle) {
	c.texture = h
}

// DrawQuad implements sim.RenderTarget. Glyph-only textures draw as a
// quad filled with their color.
func (c *Canvas) DrawQuad() {
	if c.area.Empty() {
		return
	}
	img, tint := c.white, core.ColorWhite
	if tex, ok := c.atlas.Get(c.texture); ok {
		tint = tex.Color
		if tex.Image != nil {
			img = c.image(c.texture, tex.Image)
		}
	}

	w, h := img.Bounds().Dx(), img.Bounds().Dy()
	op := &ebiten.DrawImageOptions{GeoM: quadGeoM(c.toPixels.Mul4(c.transform), w, h)}
	if img == c.white {
		r, g, b := tint.RGB()
		op.ColorScale.ScaleWithColor(color.RGBA{r, g, b, 0xff})
	}
	op.Filter = ebiten.FilterLinear
	c.dst.DrawImage(img, op)
}

func (c *Canvas) image(h sim.TextureHandle, src image.Image) *ebiten.Image {
	img, ok := c.images[h]
	if !ok {
		img = ebiten.NewImageFromImage(src)
		c.images[h] = img
	}
	return img
}

// Outline implements render.Canvas.
func (c *Canvas) Outline(clr core.Color) {
	r, g, b := clr.RGB()
	vector.StrokeRect(c.dst,
		float32(c.area.Min.X), float32(c.area.Min.Y),
		float32(c.area.Dx()), float32(c.area.Dy()),
		1, color.RGBA{r, g, b, 0xff}, false)
}

// Text implements render.Canvas. The debug font is white only.
func (c *Canvas) Text(col, row int, s string, _ core.Color) {
	ebitenutil.DebugPrintAt(c.dst, s, c.area.Min.X+col*cellW, c.area.Min.Y+row*cellH)
}

// TextCentered implements render.Canvas.
func (c *Canvas) TextCentered(row int, s string, clr core.Color) {
	c.Text((c.Columns()-len([]rune(s)))/2, row, s, clr)
}

// Columns implements render.Canvas.
func (c *Canvas) Columns() int {
	return c.area.Dx() / cellW
}

// Rows implements render.Canvas.
func (c *Canvas) Rows() int {
	return c.area.Dy() / cellH
}
