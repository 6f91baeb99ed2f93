package sim

// PoolID names the role of a pool inside a World.
type PoolID uint8

const (
	PoolNone PoolID = iota
	PoolPlayer
	PoolPlatforms
	PoolEnemies
	PoolBullets
	PoolEnemyBullets
	PoolPaddles
	PoolBalls
	PoolProps
)

// Pool is a fixed-capacity arena of entities. Slots are never allocated or
// freed after construction; spawning claims the first inactive slot and
// despawning clears its Active flag. Capacities are small (tens of slots), so
// the linear scan is the intended cost.
type Pool struct {
	id    PoolID
	slots []Entity
	gens  []uint32
}

// NewPool creates a pool of size inactive copies of proto.
func NewPool(id PoolID, size int, proto Entity) *Pool {
	p := &Pool{
		id:    id,
		slots: make([]Entity, size),
		gens:  make([]uint32, size),
	}
	for i := range p.slots {
		p.slots[i] = proto
		p.slots[i].Active = false
		p.slots[i].self = Ref{Pool: id, Index: i}
	}
	return p
}

// ID returns the pool's role.
func (p *Pool) ID() PoolID {
	return p.id
}

// Len returns the pool capacity.
func (p *Pool) Len() int {
	if p == nil {
		return 0
	}
	return len(p.slots)
}

// At returns the entity in slot i.
func (p *Pool) At(i int) *Entity {
	return &p.slots[i]
}

// Place installs e into slot i, typically while building a level.
// The slot starts a new generation.
func (p *Pool) Place(i int, e Entity) *Entity {
	p.gens[i]++
	e.self = Ref{Pool: p.id, Index: i, Gen: p.gens[i]}
	e.clearContacts()
	e.UpdateTransform()
	p.slots[i] = e
	return &p.slots[i]
}

// Spawn claims the first inactive slot, starting a new generation for it.
// It returns false when every slot is in use.
func (p *Pool) Spawn() (*Entity, bool) {
	if p == nil {
		return nil, false
	}
	for i := range p.slots {
		e := &p.slots[i]
		if e.Active {
			continue
		}
		p.gens[i]++
		e.self = Ref{Pool: p.id, Index: i, Gen: p.gens[i]}
		e.clearContacts()
		e.Timer, e.Timer2 = 0, 0
		e.Active = true
		return e, true
	}
	return nil, false
}

// Despawn returns slot i to the free list.
func (p *Pool) Despawn(i int) {
	p.slots[i].Active = false
}

// Ref returns a weak reference to slot i.
func (p *Pool) Ref(i int) Ref {
	return p.slots[i].Ref()
}

// Resolve returns the entity a ref points to, or nil when the slot has
// been recycled or is no longer active.
func (p *Pool) Resolve(r Ref) *Entity {
	if p == nil || r.Pool != p.id || r.Index < 0 || r.Index >= len(p.slots) {
		return nil
	}
	if p.gens[r.Index] != r.Gen {
		return nil
	}
	e := &p.slots[r.Index]
	if !e.Active {
		return nil
	}
	return e
}

// ActiveCount returns the number of slots in use.
func (p *Pool) ActiveCount() int {
	n := 0
	for i := range p.Len() {
		if p.slots[i].Active {
			n++
		}
	}
	return n
}

// Free returns the number of slots a Spawn could still claim.
func (p *Pool) Free() int {
	return p.Len() - p.ActiveCount()
}

// Each calls fn for every slot in order, active or not.
func (p *Pool) Each(fn func(i int, e *Entity)) {
	for i := range p.Len() {
		fn(i, &p.slots[i])
	}
}

// Update advances every active entity in slot order.
func (p *Pool) Update(dt float32, w *World) {
	for i := range p.Len() {
		p.slots[i].Update(dt, w)
	}
}
