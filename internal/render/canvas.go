// Package render turns simulation quads into something visible. It defines
// the Canvas every frontend implements, the texture Atlas games load their
// sprites into, and a Canvas that rasterizes onto a core.Screen.
package render

import (
	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/sim"
)

// Viewport is the world rectangle a canvas shows, as an orthographic
// projection centered on (CenterX, CenterY).
type Viewport struct {
	CenterX, CenterY float32
	HalfW, HalfH     float32
}

// Ortho returns a viewport centered on the origin.
func Ortho(halfW, halfH float32) Viewport {
	return Viewport{HalfW: halfW, HalfH: halfH}
}

// Aspect returns width over height.
func (v Viewport) Aspect() float32 {
	if v.HalfH == 0 {
		return 1
	}
	return v.HalfW / v.HalfH
}

// Canvas is a frame being drawn. Games call Begin once per frame, submit
// entity quads through the sim.RenderTarget methods, then write HUD text on
// a character grid laid over the viewport.
type Canvas interface {
	sim.RenderTarget

	// Begin starts a frame showing view, resolving texture handles in atlas.
	Begin(view Viewport, atlas *Atlas)
	// Outline frames the viewport edge.
	Outline(c core.Color)
	// Text writes s at a character cell of the HUD grid.
	Text(col, row int, s string, c core.Color)
	// TextCentered writes s centered on a HUD grid row.
	TextCentered(row int, s string, c core.Color)
	// Columns and Rows give the HUD grid size.
	Columns() int
	Rows() int
}
