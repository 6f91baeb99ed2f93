package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func shooterWorld(enemyBullets int) *World {
	w := NewWorld(RulesShooter)
	w.Arena = Bounds{HalfW: 19.5, HalfH: 14.5}
	w.BulletLimit = Bounds{HalfW: 21, HalfH: 16}
	w.EnemyBullets = NewPool(PoolEnemyBullets, enemyBullets, bulletProto())
	w.Bullets = NewPool(PoolBullets, 3, Entity{Kind: KindBullet, Speed: 16, Size: mgl32.Vec2{0.3, 0.3}})
	w.Enemies = NewPool(PoolEnemies, 1, Entity{})
	return w
}

func enemy(a Archetype, x, y, speed float32) Entity {
	e := box(KindEnemy, x, y, 0.95, 0.95)
	e.Archetype = a
	e.State = StateEntering
	e.Speed = speed
	e.ShotPower = 1
	e.Health = 1
	return e
}

// spawned counts every bullet ever claimed from the pool.
func spawned(p *Pool) int {
	n := 0
	for _, g := range p.gens {
		n += int(g)
	}
	return n
}

func TestBomberPatrolAndSpread(t *testing.T) {
	w := shooterWorld(50)
	b := w.Enemies.Place(0, enemy(ArchetypeBomber, -19.5, 14.5, 15))

	b.Update(stepDT, w)
	if b.State != StateEntering || b.Velocity[1] != -1 {
		t.Fatalf("after first tick: state %v velocity %v, expected entering downward", b.State, b.Velocity)
	}
	b.Update(stepDT, w)
	if b.State != StateDefault || b.Health != 1 {
		t.Fatalf("after second tick: state %v health %d, expected default with health 1", b.State, b.Health)
	}

	// Patrol: down the left edge, along the bottom, up the right, back along
	// the top, with a four-way volley every 2.5s throughout.
	legs := []mgl32.Vec3{b.Velocity}
	var volleyTicks []int
	for tick := 1; tick <= 60*25; tick++ {
		before := spawned(w.EnemyBullets)
		b.Update(stepDT, w)
		if n := spawned(w.EnemyBullets) - before; n > 0 {
			if n != 4 {
				t.Fatalf("volley size = %d, expected 4", n)
			}
			if len(volleyTicks) == 0 {
				want := []mgl32.Vec3{{0, -16, 0}, {0, 16, 0}, {16, 0, 0}, {-16, 0, 0}}
				for i, v := range want {
					if got := w.EnemyBullets.At(i).Velocity; got != v {
						t.Errorf("bullet %d velocity = %v, expected %v", i, got, v)
					}
				}
			}
			volleyTicks = append(volleyTicks, tick)
		}
		if b.Velocity != legs[len(legs)-1] {
			legs = append(legs, b.Velocity)
		}
		if mgl32.Abs(b.Position[0]) > 19.5+0.3 || mgl32.Abs(b.Position[1]) > 14.5+0.3 {
			t.Fatalf("bomber left the arena at %v", b.Position)
		}
	}

	expectedLegs := []mgl32.Vec3{{0, -1, 0}, {1, 0, 0}, {0, 1, 0}, {-1, 0, 0}, {0, -1, 0}}
	for i, v := range expectedLegs {
		if i >= len(legs) || legs[i] != v {
			t.Fatalf("patrol legs = %v, expected to start with %v", legs, expectedLegs)
		}
	}

	if len(volleyTicks) < 9 || len(volleyTicks) > 10 {
		t.Fatalf("volleys in 25s = %d, expected 9 or 10", len(volleyTicks))
	}
	prev := 0
	for _, tick := range volleyTicks {
		gap := float32(tick-prev) * stepDT
		if gap < 2.45 || gap > 2.55 {
			t.Errorf("volley gap = %.3fs, expected 2.5s", gap)
		}
		prev = tick
	}
}

func TestFireUsesOnlyFreeSlots(t *testing.T) {
	w := shooterWorld(2)
	b := enemy(ArchetypeBomber, 0, 0, 15)

	if n := Fire(&b, w.EnemyBullets, BomberPattern); n != 2 {
		t.Errorf("Fire() = %d, expected 2 with only two free slots", n)
	}
	if n := Fire(&b, w.EnemyBullets, BomberPattern); n != 0 {
		t.Errorf("Fire() on a full pool = %d, expected 0", n)
	}
	if w.EnemyBullets.ActiveCount() != 2 {
		t.Errorf("ActiveCount() = %d, expected 2", w.EnemyBullets.ActiveCount())
	}
}

func TestSniperEntersAndChasesPlayer(t *testing.T) {
	w := shooterWorld(50)
	w.Players = NewPool(PoolPlayer, 1, Entity{})
	w.Players.Place(0, box(KindPlayer, -10, -10, 0.95, 0.95))

	e := enemy(ArchetypeSniper, 0, 6, 4)
	e.Velocity = mgl32.Vec3{1, 0, 0}
	s := w.Enemies.Place(0, e)

	s.Update(stepDT, w)
	if s.Health != 100 {
		t.Errorf("entering health = %d, expected 100", s.Health)
	}
	for i := 0; i < 60 && s.State == StateEntering; i++ {
		s.Update(stepDT, w)
	}
	if s.State != StateDefault || s.Health != 1 {
		t.Fatalf("state %v health %d, expected default with health 1 below y=5", s.State, s.Health)
	}

	s.Update(stepDT, w)
	if s.Velocity[0] != -1 {
		t.Errorf("Velocity.x = %v, expected -1 toward the player", s.Velocity[0])
	}

	for range 100 {
		s.Update(stepDT, w)
	}
	if n := spawned(w.EnemyBullets); n != 1 {
		t.Errorf("shots after ~1.7s = %d, expected 1", n)
	}
	if v := w.EnemyBullets.At(0).Velocity; v != (mgl32.Vec3{0, -16, 0}) {
		t.Errorf("shot velocity = %v, expected straight down", v)
	}
}

func TestBossEntersThenFiresFan(t *testing.T) {
	w := shooterWorld(50)
	e := enemy(ArchetypeBoss, 0, 18, 4)
	e.State = StateIdle
	e.ShotPower = 3
	boss := w.Enemies.Place(0, e)

	for range 30 {
		boss.Update(stepDT, w)
	}
	if boss.Position[1] != 18 {
		t.Errorf("idle boss moved to %v", boss.Position)
	}

	boss.State = StateEntering
	boss.Update(stepDT, w)
	if boss.Health != 9000 {
		t.Errorf("entering health = %d, expected 9000", boss.Health)
	}
	for i := 0; i < 300 && boss.State == StateEntering; i++ {
		boss.Update(stepDT, w)
	}
	if boss.State != StateDefault || boss.Health != 5 || boss.Velocity[0] != 1 {
		t.Fatalf("state %v health %d velocity %v, expected default, 5, moving right", boss.State, boss.Health, boss.Velocity)
	}

	for range 65 {
		boss.Update(stepDT, w)
	}
	if n := spawned(w.EnemyBullets); n != 3 {
		t.Fatalf("boss volley = %d bullets, expected 3", n)
	}
	for i, dx := range []float32{-16, 0, 16} {
		b := w.EnemyBullets.At(i)
		if b.Velocity[0] != dx || b.Velocity[1] != -16 || b.ShotPower != 3 {
			t.Errorf("bullet %d velocity %v power %d, expected (%v, -16) power 3", i, b.Velocity, b.ShotPower, dx)
		}
	}
}

func TestCountDead(t *testing.T) {
	p := NewPool(PoolEnemies, 4, Entity{})
	for i, a := range []Archetype{ArchetypeSniper, ArchetypeBomber, ArchetypeBomber, ArchetypeBoss} {
		e := enemy(a, 0, 0, 1)
		e.Active = true
		p.Place(i, e)
	}
	p.At(0).Kill()
	p.At(2).Kill()
	p.At(3).Kill()

	if n := CountDead(p, ArchetypeBoss); n != 2 {
		t.Errorf("CountDead() = %d, expected 2", n)
	}
	if p.At(0).Active {
		t.Error("Kill() should deactivate")
	}
}
