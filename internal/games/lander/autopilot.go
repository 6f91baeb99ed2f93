package lander

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/sim"
)

// Autopilot flight plan: fall to the hover band, slide under the ledge to
// the pad, then cut the thruster and drop.
const (
	hoverFloor = -1.9 // thrust when falling below this height
	hoverSink  = -0.2 // ...and sinking faster than this
	slideBelow = -1.3 // clear of the ledge, free to move sideways
	padSlack   = 0.05
)

// Autopilot returns the input a careful pilot would give this frame.
func (g *Game) Autopilot() core.InputFrame {
	var in core.InputFrame
	if g.world == nil || g.mode.Terminal() {
		return in
	}
	ship := g.world.Player()
	pad, ok := g.pad()
	if !ok {
		return in
	}

	dx := pad[0] - ship.Position[0]
	if mgl32.Abs(dx) <= padSlack {
		return in
	}
	if ship.Position[1] < slideBelow {
		if dx < 0 {
			in.Set(core.ActionLeft)
		} else {
			in.Set(core.ActionRight)
		}
	}
	if ship.Position[1] < hoverFloor && ship.Velocity[1] < hoverSink {
		in.Set(core.ActionJump)
	}
	return in
}

// pad returns the position of the first winning tile.
func (g *Game) pad() (mgl32.Vec3, bool) {
	p := g.world.Platforms
	for i := range p.Len() {
		if t := p.At(i); t.Active && t.Kind == sim.KindWinPlatform {
			return t.Position, true
		}
	}
	return mgl32.Vec3{}, false
}
