// Package sim is the entity simulation shared by every arcade demo: fixed-size
// entity pools, axis-aligned box collision, enemy behaviors and the
// fixed-timestep loop. It draws through a RenderTarget and never touches a
// terminal, window or file.
package sim

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Kind tags what an entity is. Update dispatches on it.
type Kind uint8

const (
	KindNone Kind = iota
	KindPlayer
	KindEnemy
	KindBullet
	KindEnemyBullet
	KindWinPlatform
	KindLosePlatform
	KindPaddle
	KindBall
	KindRobot
	KindMeteor
)

// String returns a short lowercase name for logs.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	case KindBullet:
		return "bullet"
	case KindEnemyBullet:
		return "enemy-bullet"
	case KindWinPlatform:
		return "win-platform"
	case KindLosePlatform:
		return "lose-platform"
	case KindPaddle:
		return "paddle"
	case KindBall:
		return "ball"
	case KindRobot:
		return "robot"
	case KindMeteor:
		return "meteor"
	default:
		return "unknown"
	}
}

// Flags records which sides of an entity's box were hit this tick.
type Flags struct {
	Top, Bottom, Left, Right bool
}

// Any reports whether any side was hit.
func (f Flags) Any() bool {
	return f.Top || f.Bottom || f.Left || f.Right
}

// Ref is a weak reference to a pool slot. It never keeps a pointer, so a
// recycled slot is detected through its generation instead of aliasing.
type Ref struct {
	Pool  PoolID
	Index int
	Gen   uint32
	Kind  Kind // kind of the referenced entity when the ref was taken
}

// Valid reports whether the ref points anywhere at all.
func (r Ref) Valid() bool {
	return r.Kind != KindNone
}

// Entity is one simulated object. Position is the center of its box.
// The z components of the vectors are carried but unused.
type Entity struct {
	Kind   Kind
	Active bool

	Position     mgl32.Vec3
	Velocity     mgl32.Vec3
	Acceleration mgl32.Vec3
	Movement     mgl32.Vec3 // input or AI intent, read each tick
	Size         mgl32.Vec2 // full width and height of the collision box
	Speed        float32

	Health    int
	ShotPower int

	// Per-tick collision results, cleared at the start of every Update.
	Collided Flags
	Hit      bool
	Partner  Ref

	Jump      bool // latched until the next tick consumes it
	JumpPower float32
	Fire      bool // latched until the next tick consumes it
	Launched  bool

	Archetype Archetype
	State     BehaviorState
	Timer     float32
	Timer2    float32

	Scale     mgl32.Vec2
	Rotation  float32 // radians around z
	Texture   TextureHandle
	Transform mgl32.Mat4

	self Ref
}

// HalfExtents returns half the box width and height.
func (e *Entity) HalfExtents() mgl32.Vec2 {
	return e.Size.Mul(0.5)
}

// Ref returns a weak reference to this entity's pool slot.
// Entities that never went through a Pool return the zero Ref.
func (e *Entity) Ref() Ref {
	r := e.self
	r.Kind = e.Kind
	return r
}

// UpdateTransform recomputes the render transform from position,
// rotation and scale.
func (e *Entity) UpdateTransform() {
	sx, sy := e.Scale[0], e.Scale[1]
	if sx == 0 && sy == 0 {
		sx, sy = 1, 1
	}
	e.Transform = mgl32.Translate3D(e.Position[0], e.Position[1], e.Position[2]).
		Mul4(mgl32.HomogRotate3DZ(e.Rotation)).
		Mul4(mgl32.Scale3D(sx, sy, 1))
}

func (e *Entity) clearContacts() {
	e.Collided = Flags{}
	e.Hit = false
	e.Partner = Ref{}
}

// Kill deactivates the entity and marks it dead.
func (e *Entity) Kill() {
	e.Active = false
	e.State = StateDead
}
