package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/sim"
)

// CellAspect is the height of a terminal cell in units of its width.
const CellAspect = 2.0

// ScreenCanvas rasterizes quads onto a core.Screen. The viewport is
// letterboxed so that world units stay square despite tall cells. A quad
// covers every cell whose center falls inside it; a quad smaller than a cell
// still marks the cell under its center.
type ScreenCanvas struct {
	screen    *core.Screen
	view      Viewport
	atlas     *Atlas
	area      core.Rect
	transform mgl32.Mat4
	texture   sim.TextureHandle
}

// NewScreenCanvas creates a canvas drawing into s.
func NewScreenCanvas(s *core.Screen) *ScreenCanvas {
	return &ScreenCanvas{screen: s, transform: mgl32.Ident4(), area: s.Bounds()}
}

// Begin implements Canvas.
func (c *ScreenCanvas) Begin(view Viewport, atlas *Atlas) {
	c.view = view
	c.atlas = atlas
	c.area = fitArea(c.screen.Width(), c.screen.Height(), view.Aspect())
	c.transform = mgl32.Ident4()
	c.texture = sim.NoTexture
}

// Area returns the screen cells the viewport occupies.
func (c *ScreenCanvas) Area() core.Rect {
	return c.area
}

// fitArea returns the largest centered cell rectangle with the given world
// aspect ratio.
func fitArea(w, h int, aspect float32) core.Rect {
	if w <= 0 || h <= 0 {
		return core.Rect{}
	}
	cols, rows := w, h
	want := float64(aspect) * CellAspect // columns per row
	if float64(w) > want*float64(h) {
		cols = max(1, int(math.Round(want*float64(h))))
	} else {
		rows = max(1, int(math.Round(float64(w)/want)))
	}
	return core.NewRect((w-cols)/2, (h-rows)/2, cols, rows)
}

// SetTransform implements sim.RenderTarget.
func (c *ScreenCanvas) SetTransform(m mgl32.Mat4) {
	c.transform = m
}

// BindTexture implements sim.RenderTarget.
func (c *ScreenCanvas) BindTexture(h sim.TextureHandle) {
	c.texture = h
}

// DrawQuad implements sim.RenderTarget.
func (c *ScreenCanvas) DrawQuad() {
	if c.area.Empty() || c.transform.Det() == 0 {
		return
	}
	glyph, color := DefaultGlyph, core.ColorDefault
	if tex, ok := c.atlas.Get(c.texture); ok {
		glyph, color = tex.Glyph, tex.Color
	}

	// Cell range covered by the transformed quad's bounding box.
	minX, minY := float32(math.MaxFloat32), float32(math.MaxFloat32)
	maxX, maxY := -minX, -minY
	for _, corner := range [4]mgl32.Vec4{{-0.5, -0.5, 0, 1}, {0.5, -0.5, 0, 1}, {0.5, 0.5, 0, 1}, {-0.5, 0.5, 0, 1}} {
		p := c.transform.Mul4x1(corner)
		minX, maxX = min(minX, p[0]), max(maxX, p[0])
		minY, maxY = min(minY, p[1]), max(maxY, p[1])
	}
	col0, row0 := c.worldToCell(minX, maxY)
	col1, row1 := c.worldToCell(maxX, minY)
	box := core.NewRect(int(math.Floor(float64(col0))), int(math.Floor(float64(row0))), 0, 0)
	box.W = int(math.Floor(float64(col1))) - box.X + 1
	box.H = int(math.Floor(float64(row1))) - box.Y + 1
	box = box.Clip(c.area)

	inv := c.transform.Inv()
	drawn := false
	for row := box.Y; row < box.Bottom(); row++ {
		for col := box.X; col < box.Right(); col++ {
			x, y := c.cellToWorld(float32(col)+0.5, float32(row)+0.5)
			local := inv.Mul4x1(mgl32.Vec4{x, y, 0, 1})
			if mgl32.Abs(local[0]) <= 0.5 && mgl32.Abs(local[1]) <= 0.5 {
				c.screen.SetColored(col, row, glyph, color)
				drawn = true
			}
		}
	}
	if drawn {
		return
	}

	center := c.transform.Col(3)
	col, row := c.worldToCell(center[0], center[1])
	ci, ri := int(math.Floor(float64(col))), int(math.Floor(float64(row)))
	if c.area.Contains(ci, ri) {
		c.screen.SetColored(ci, ri, glyph, color)
	}
}

// worldToCell maps a world point to fractional screen cell coordinates.
func (c *ScreenCanvas) worldToCell(x, y float32) (col, row float32) {
	left := c.view.CenterX - c.view.HalfW
	top := c.view.CenterY + c.view.HalfH
	col = float32(c.area.X) + (x-left)/(2*c.view.HalfW)*float32(c.area.W)
	row = float32(c.area.Y) + (top-y)/(2*c.view.HalfH)*float32(c.area.H)
	return col, row
}

// cellToWorld is the inverse of worldToCell.
func (c *ScreenCanvas) cellToWorld(col, row float32) (x, y float32) {
	left := c.view.CenterX - c.view.HalfW
	top := c.view.CenterY + c.view.HalfH
	x = left + (col-float32(c.area.X))/float32(c.area.W)*2*c.view.HalfW
	y = top - (row-float32(c.area.Y))/float32(c.area.H)*2*c.view.HalfH
	return x, y
}

// Outline implements Canvas. The frame is drawn one cell outside the
// viewport where the letterbox leaves room for it.
func (c *ScreenCanvas) Outline(color core.Color) {
	r := core.NewRect(c.area.X-1, c.area.Y-1, c.area.W+2, c.area.H+2)
	for x := r.X; x < r.Right(); x++ {
		c.setBorder(x, r.Y, '─', color)
		c.setBorder(x, r.Bottom()-1, '─', color)
	}
	for y := r.Y; y < r.Bottom(); y++ {
		c.setBorder(r.X, y, '│', color)
		c.setBorder(r.Right()-1, y, '│', color)
	}
	c.setBorder(r.X, r.Y, '┌', color)
	c.setBorder(r.Right()-1, r.Y, '┐', color)
	c.setBorder(r.X, r.Bottom()-1, '└', color)
	c.setBorder(r.Right()-1, r.Bottom()-1, '┘', color)
}

func (c *ScreenCanvas) setBorder(x, y int, r rune, color core.Color) {
	if c.area.Contains(x, y) {
		return
	}
	c.screen.SetColored(x, y, r, color)
}

// Text implements Canvas. Columns and rows are relative to the viewport area.
func (c *ScreenCanvas) Text(col, row int, s string, color core.Color) {
	c.screen.DrawTextColored(c.area.X+col, c.area.Y+row, s, color)
}

// TextCentered implements Canvas.
func (c *ScreenCanvas) TextCentered(row int, s string, color core.Color) {
	col := (c.area.W - len([]rune(s))) / 2
	c.Text(col, row, s, color)
}

// Columns implements Canvas.
func (c *ScreenCanvas) Columns() int {
	return c.area.W
}

// Rows implements Canvas.
func (c *ScreenCanvas) Rows() int {
	return c.area.H
}
