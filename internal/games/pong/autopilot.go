package pong

import "github.com/vovakirdan/quad-arcade/internal/core"

// Autopilot serves, then keeps the player paddle level with the ball.
func (g *Game) Autopilot() core.InputFrame {
	var in core.InputFrame
	if g.world == nil || g.mode.Terminal() {
		return in
	}
	b := g.ball()
	if !b.Launched {
		in.Set(core.ActionJump)
		return in
	}

	diff := b.Position[1] - g.world.Paddles.At(player).Position[1]
	switch {
	case diff > g.cfg.CPU.DeadZone:
		in.Set(core.ActionUp)
	case diff < -g.cfg.CPU.DeadZone:
		in.Set(core.ActionDown)
	}
	return in
}
