package sim

import "github.com/go-gl/mathgl/mgl32"

// Archetype selects an enemy's behavior.
type Archetype uint8

const (
	ArchetypeNone Archetype = iota
	ArchetypeSniper
	ArchetypeBomber
	ArchetypeBoss
)

func (a Archetype) String() string {
	switch a {
	case ArchetypeSniper:
		return "sniper"
	case ArchetypeBomber:
		return "bomber"
	case ArchetypeBoss:
		return "boss"
	default:
		return "none"
	}
}

// BehaviorState is the enemy state machine position. Dead is terminal.
type BehaviorState uint8

const (
	StateIdle BehaviorState = iota
	StateEntering
	StateDefault
	StateDead
)

func (s BehaviorState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateEntering:
		return "entering"
	case StateDefault:
		return "default"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Fire patterns: one direction per bullet, scaled by the bullet's speed.
var (
	PlayerPattern = []mgl32.Vec2{{0, 1}}
	SniperPattern = []mgl32.Vec2{{0, -1}}
	BomberPattern = []mgl32.Vec2{{0, -1}, {0, 1}, {1, 0}, {-1, 0}}
	BossPattern   = []mgl32.Vec2{{-1, -1}, {0, -1}, {1, -1}}
)

// Fire spawns up to len(pattern) bullets from pool at the shooter's position.
// When fewer slots are free, only that many bullets are fired. It returns the
// number of bullets spawned.
func Fire(shooter *Entity, pool *Pool, pattern []mgl32.Vec2) int {
	n := 0
	for _, dir := range pattern {
		b, ok := pool.Spawn()
		if !ok {
			break
		}
		b.Position = shooter.Position
		b.Velocity = mgl32.Vec3{dir[0] * b.Speed, dir[1] * b.Speed, 0}
		b.ShotPower = shooter.ShotPower
		b.UpdateTransform()
		n++
	}
	return n
}

// think runs the archetype's state machine, fires if it decided to, and
// moves the enemy along its direction at its speed.
func (e *Entity) think(dt float32, w *World) {
	switch e.Archetype {
	case ArchetypeSniper:
		e.sniper(dt, w)
	case ArchetypeBomber:
		e.bomber(dt, w)
	case ArchetypeBoss:
		e.boss(dt, w)
	}

	if e.Fire {
		e.Fire = false
		Fire(e, w.EnemyBullets, e.Archetype.pattern())
	}

	e.Position = e.Position.Add(e.Velocity.Mul(e.Speed * dt))
}

func (a Archetype) pattern() []mgl32.Vec2 {
	switch a {
	case ArchetypeSniper:
		return SniperPattern
	case ArchetypeBomber:
		return BomberPattern
	case ArchetypeBoss:
		return BossPattern
	}
	return nil
}

// sniper drifts down while entering, then chases the player horizontally and
// fires straight down on a fixed period, bobbing vertically after each shot.
func (e *Entity) sniper(dt float32, w *World) {
	t := &w.Tuning
	switch e.State {
	case StateEntering:
		e.Health = t.EnteringHealth
		e.Velocity[1] = -1
		e.Timer += dt
		if e.Timer > t.SniperDriftPeriod {
			e.Timer = 0
			e.Velocity[0] = -e.Velocity[0]
		}
		if e.Position[1] < t.SniperEnterY {
			e.Health = t.SniperHealth
			e.State = StateDefault
			e.Timer = 0
		}

	case StateDefault:
		e.Timer += dt
		if e.Timer > t.SniperFirePeriod {
			e.Timer = 0
			e.Fire = true
			e.Velocity[1] = -e.Velocity[1]
		}
		e.Velocity[0] = 0
		if p := w.Player(); p != nil {
			switch {
			case p.Position[0] > e.Position[0]:
				e.Velocity[0] = 1
			case p.Position[0] < e.Position[0]:
				e.Velocity[0] = -1
			}
		}
	}
}

// bomber drops in along the left edge, then circles the arena border
// counter-clockwise, firing a four-way spread on a fixed period.
func (e *Entity) bomber(dt float32, w *World) {
	t := &w.Tuning
	left, right := -w.Arena.HalfW, w.Arena.HalfW
	top, bottom := w.Arena.HalfH, -w.Arena.HalfH

	switch e.State {
	case StateEntering:
		e.Health = t.EnteringHealth
		if e.Position[1] >= top {
			e.Velocity[1] = -1
		} else {
			e.Health = t.BomberHealth
			e.State = StateDefault
		}

	case StateDefault:
		e.Timer += dt
		if e.Timer > t.BomberFirePeriod {
			e.Timer = 0
			e.Fire = true
		}
		switch {
		case e.Position[0] <= left && e.Position[1] >= top:
			e.Position[0] = left
			e.Velocity = mgl32.Vec3{0, -1, 0}
		case e.Position[1] >= top:
			e.Position[1] = top
			e.Velocity = mgl32.Vec3{-1, 0, 0}
		case e.Position[0] >= right:
			e.Position[0] = right
			e.Velocity = mgl32.Vec3{0, 1, 0}
		case e.Position[1] <= bottom:
			e.Position[1] = bottom
			e.Velocity = mgl32.Vec3{1, 0, 0}
		}
	}
}

// boss waits idle until the game sends it in, descends, then sways while
// bouncing between the side limits and firing a downward fan.
func (e *Entity) boss(dt float32, w *World) {
	t := &w.Tuning
	switch e.State {
	case StateEntering:
		e.Health = t.BossEnteringHealth
		e.Velocity = mgl32.Vec3{0, -1, 0}
		if e.Position[1] <= t.BossEnterY {
			e.State = StateDefault
			e.Velocity[0] = 1
			e.Health = t.BossHealth
		}

	case StateDefault:
		e.Timer += dt
		if e.Timer > t.BossSwayPeriod {
			e.Timer = 0
			e.Velocity[1] = -e.Velocity[1]
		}
		e.Timer2 += dt
		if e.Timer2 > t.BossFirePeriod {
			e.Timer2 = 0
			e.Fire = true
		}
		if e.Position[0] >= t.BossBounceX {
			e.Velocity[0] = -1
		} else if e.Position[0] <= -t.BossBounceX {
			e.Velocity[0] = 1
		}
	}
}

// CountDead returns how many entities in pool are Dead, skipping the
// given archetype.
func CountDead(pool *Pool, skip Archetype) int {
	n := 0
	pool.Each(func(_ int, e *Entity) {
		if e.State == StateDead && e.Archetype != skip {
			n++
		}
	})
	return n
}
