package sim

import "github.com/go-gl/mathgl/mgl32"

// Update advances the entity by one fixed step. Inactive entities are left
// untouched. Contact state from the previous tick is cleared first, and the
// render transform is refreshed last.
func (e *Entity) Update(dt float32, w *World) {
	if !e.Active {
		return
	}
	e.clearContacts()

	switch e.Kind {
	case KindPlayer:
		if w.Rules == RulesShooter {
			e.updateShip(dt, w)
		} else {
			e.updateLander(dt, w)
		}
	case KindBullet:
		e.Position = e.Position.Add(e.Velocity.Mul(dt))
		if e.Position[1] > w.BulletLimit.HalfH {
			e.Active = false
		}
	case KindEnemyBullet:
		e.Position = e.Position.Add(e.Velocity.Mul(dt))
		if mgl32.Abs(e.Position[1]) > w.BulletLimit.HalfH || mgl32.Abs(e.Position[0]) > w.BulletLimit.HalfW {
			e.Active = false
		}
	case KindEnemy:
		e.think(dt, w)
		CheckPool(e, w.Bullets)
	case KindPaddle:
		e.updatePaddle(dt, w)
	case KindBall:
		e.updateBall(dt, w)
	case KindRobot:
		e.updateRobot(dt, w)
	case KindMeteor:
		e.updateMeteor(dt, w)
	}

	e.UpdateTransform()
}

// updateLander integrates under acceleration and lands on platforms.
// Y is moved and corrected before X.
func (e *Entity) updateLander(dt float32, w *World) {
	if e.Jump {
		e.Jump = false
		e.Velocity[1] += e.JumpPower
	}
	e.Velocity[0] = e.Movement[0] * e.Speed
	e.Velocity = e.Velocity.Add(e.Acceleration.Mul(dt))

	e.Position[1] += e.Velocity[1] * dt
	ResolveAxis(e, w.Platforms, AxisY)

	e.Position[0] += e.Velocity[0] * dt
	ResolveAxis(e, w.Platforms, AxisX)
}

// updateShip moves freely inside the arena and fires on request.
func (e *Entity) updateShip(dt float32, w *World) {
	e.Velocity[0] = e.Movement[0] * e.Speed
	e.Velocity[1] = e.Movement[1] * e.Speed
	e.Velocity = e.Velocity.Add(e.Acceleration.Mul(dt))

	e.Position[1] = mgl32.Clamp(e.Position[1]+e.Velocity[1]*dt, -w.Arena.HalfH, w.Arena.HalfH)
	e.Position[0] = mgl32.Clamp(e.Position[0]+e.Velocity[0]*dt, -w.Arena.HalfW, w.Arena.HalfW)

	CheckPool(e, w.Enemies)
	CheckPool(e, w.EnemyBullets)

	if e.Fire {
		e.Fire = false
		Fire(e, w.Bullets, PlayerPattern)
	}
}

func (e *Entity) updatePaddle(dt float32, w *World) {
	e.Velocity[1] = e.Movement[1] * e.Speed
	limit := w.Arena.HalfH - e.Size[1]/2
	e.Position[1] = mgl32.Clamp(e.Position[1]+e.Velocity[1]*dt, -limit, limit)
}

// updateBall bounces off the top and bottom walls and the paddles. Reaching a
// side wall ends the rally: the ball stops, Launched clears and the Left or
// Right flag is raised. Paddle contact records the paddle as partner.
func (e *Entity) updateBall(dt float32, w *World) {
	if !e.Launched {
		return
	}
	e.Position = e.Position.Add(e.Velocity.Mul(dt))

	top := w.Arena.HalfH - e.Size[1]/2
	if e.Position[1] > top {
		e.Position[1] = top
		e.Velocity[1] = -mgl32.Abs(e.Velocity[1])
		e.Collided.Top = true
	} else if e.Position[1] < -top {
		e.Position[1] = -top
		e.Velocity[1] = mgl32.Abs(e.Velocity[1])
		e.Collided.Bottom = true
	}

	for i := range w.Paddles.Len() {
		p := w.Paddles.At(i)
		if !CheckOverlap(e, p) {
			continue
		}
		away := float32(1)
		if e.Position[0] < p.Position[0] {
			away = -1
		}
		if e.Velocity[0]*away < 0 {
			e.bounceOffPaddle(p, away, &w.Tuning)
		}
	}

	side := w.Arena.HalfW - e.Size[0]/2
	switch {
	case e.Position[0] > side:
		e.Position[0] = side
		e.stopBall()
		e.Collided.Right = true
	case e.Position[0] < -side:
		e.Position[0] = -side
		e.stopBall()
		e.Collided.Left = true
	}
}

// bounceOffPaddle sends the ball away from p. Spin bends the return angle by
// where the paddle was struck; speed-up scales the ball up to the cap.
func (e *Entity) bounceOffPaddle(p *Entity, away float32, t *Tuning) {
	e.Velocity[0] = mgl32.Abs(e.Velocity[0]) * away
	if t.PaddleSpin != 0 && p.Size[1] > 0 {
		offset := (e.Position[1] - p.Position[1]) / (p.Size[1] / 2)
		e.Velocity[1] += offset * t.PaddleSpin * mgl32.Abs(e.Velocity[0])
	}
	if t.PaddleSpeedup > 0 {
		e.Velocity = e.Velocity.Mul(t.PaddleSpeedup)
	}
	if t.MaxBallSpeed > 0 && e.Velocity.Len() > t.MaxBallSpeed {
		e.Velocity = e.Velocity.Normalize().Mul(t.MaxBallSpeed)
	}
}

func (e *Entity) stopBall() {
	e.Launched = false
	e.Velocity = mgl32.Vec3{}
}

// updateRobot walks back and forth, turning after covering the patrol distance.
func (e *Entity) updateRobot(dt float32, w *World) {
	if mgl32.Abs(e.Timer) > w.Tuning.RobotPatrol {
		e.Velocity[0] = -e.Velocity[0]
		e.Timer = 0
	}
	step := e.Velocity[0] * e.Speed * dt
	e.Position[0] += step
	e.Timer += step
}

// updateMeteor spins at a constant rate while its scale breathes in and out.
// Timer accumulates the pulse and Timer2 holds the current growth rate.
func (e *Entity) updateMeteor(dt float32, w *World) {
	t := &w.Tuning
	e.Rotation += t.MeteorSpin * dt

	if e.Timer2 == 0 {
		e.Timer2 = t.MeteorPulse
	}
	if e.Timer > t.MeteorPulseLimit {
		e.Timer2 = -t.MeteorPulse
		e.Timer = 0
	} else if e.Timer < -t.MeteorPulseLimit {
		e.Timer2 = t.MeteorPulse
		e.Timer = 0
	}
	e.Timer += dt * e.Timer2
	e.Scale = e.Scale.Mul(1 + dt*e.Timer2)
}
