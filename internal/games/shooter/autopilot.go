package shooter

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/sim"
)

// Autopilot tuning, in world units.
const (
	aimSlack   = 0.3 // close enough under the target to hold still
	dodgeAbove = 3   // enemy bullets this far above are threats
	dodgeWidth = 1
)

// Autopilot keeps firing, lines up under the lowest enemy in reach and
// sidesteps enemy bullets about to hit.
func (g *Game) Autopilot() core.InputFrame {
	var in core.InputFrame
	if g.world == nil || g.mode.Terminal() {
		return in
	}
	p := g.world.Player()
	in.Set(core.ActionJump)

	if dx, ok := g.threat(p.Position); ok {
		if dx > 0 {
			in.Set(core.ActionLeft)
		} else {
			in.Set(core.ActionRight)
		}
		return in
	}

	target, ok := g.target()
	if !ok {
		return in
	}
	switch dx := target[0] - p.Position[0]; {
	case dx > aimSlack:
		in.Set(core.ActionRight)
	case dx < -aimSlack:
		in.Set(core.ActionLeft)
	}
	return in
}

// target returns the lowest enemy that is fighting inside the arena.
func (g *Game) target() (mgl32.Vec3, bool) {
	var best mgl32.Vec3
	found := false
	g.world.Enemies.Each(func(_ int, e *sim.Entity) {
		if !e.Active || e.State != sim.StateDefault {
			return
		}
		if !found || e.Position[1] < best[1] {
			best, found = e.Position, true
		}
	})
	return best, found
}

// threat reports the nearest enemy bullet closing in from above, as its x
// offset from pos.
func (g *Game) threat(pos mgl32.Vec3) (float32, bool) {
	var dx float32
	nearest := float32(dodgeAbove)
	found := false
	g.world.EnemyBullets.Each(func(_ int, b *sim.Entity) {
		if !b.Active || b.Velocity[1] >= 0 {
			return
		}
		dy := b.Position[1] - pos[1]
		if dy < 0 || dy > nearest || mgl32.Abs(b.Position[0]-pos[0]) > dodgeWidth {
			return
		}
		nearest, dx, found = dy, b.Position[0]-pos[0], true
	})
	return dx, found
}
