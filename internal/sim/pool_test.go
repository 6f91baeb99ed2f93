package sim

import "testing"

func bulletProto() Entity {
	return Entity{Kind: KindEnemyBullet, Speed: 16, Size: [2]float32{0.3, 0.3}}
}

func TestPoolSpawnClaimsFirstInactive(t *testing.T) {
	p := NewPool(PoolEnemyBullets, 3, bulletProto())

	if p.ActiveCount() != 0 {
		t.Fatalf("ActiveCount() = %d, expected 0 for a new pool", p.ActiveCount())
	}

	a, _ := p.Spawn()
	b, _ := p.Spawn()
	if a != p.At(0) || b != p.At(1) {
		t.Fatal("Spawn() should claim slots in order")
	}

	p.Despawn(0)
	c, ok := p.Spawn()
	if !ok || c != p.At(0) {
		t.Error("Spawn() should reuse the first inactive slot")
	}
	if c.Speed != 16 {
		t.Errorf("spawned Speed = %v, expected prototype value 16", c.Speed)
	}
}

func TestPoolSpawnWhenFull(t *testing.T) {
	p := NewPool(PoolBullets, 2, bulletProto())
	p.Spawn()
	p.Spawn()

	if e, ok := p.Spawn(); ok || e != nil {
		t.Error("Spawn() on a full pool should fail without side effects")
	}
	if p.Free() != 0 {
		t.Errorf("Free() = %d, expected 0", p.Free())
	}

	var nilPool *Pool
	if _, ok := nilPool.Spawn(); ok {
		t.Error("Spawn() on a nil pool should fail")
	}
}

func TestRefInvalidatedByRecycling(t *testing.T) {
	w := NewWorld(RulesShooter)
	w.Bullets = NewPool(PoolBullets, 1, Entity{Kind: KindBullet})

	b, _ := w.Bullets.Spawn()
	ref := b.Ref()
	if ref.Kind != KindBullet {
		t.Errorf("Ref().Kind = %v, expected bullet", ref.Kind)
	}
	if w.Resolve(ref) != b {
		t.Fatal("Resolve() should find a live entity")
	}

	w.Bullets.Despawn(0)
	if w.Resolve(ref) != nil {
		t.Error("Resolve() should fail for a despawned slot")
	}

	w.Bullets.Spawn()
	if w.Resolve(ref) != nil {
		t.Error("Resolve() should fail for a recycled slot")
	}
	if w.Resolve(Ref{}) != nil {
		t.Error("Resolve() of the zero Ref should be nil")
	}
}

func TestPoolPlace(t *testing.T) {
	p := NewPool(PoolPlatforms, 2, Entity{})
	e := p.Place(1, Entity{Kind: KindWinPlatform, Active: true, Position: [3]float32{2, 3, 0}})

	if !e.Active || p.ActiveCount() != 1 {
		t.Error("Place() should install an active entity")
	}
	if got := e.Ref(); got.Index != 1 || got.Pool != PoolPlatforms || got.Kind != KindWinPlatform {
		t.Errorf("Ref() = %+v, expected slot 1 of platforms", got)
	}
	if tx := e.Transform.Col(3); tx[0] != 2 || tx[1] != 3 {
		t.Errorf("transform translation = (%v, %v), expected (2, 3)", tx[0], tx[1])
	}
}
