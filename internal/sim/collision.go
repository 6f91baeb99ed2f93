package sim

import "github.com/go-gl/mathgl/mgl32"

// Axis selects a coordinate for ResolveAxis.
type Axis int

const (
	AxisX Axis = 0
	AxisY Axis = 1
)

// Overlaps reports whether two active boxes overlap strictly on both axes.
// Touching edges do not count.
func Overlaps(a, b *Entity) bool {
	if a == b || !a.Active || !b.Active {
		return false
	}
	dx := mgl32.Abs(a.Position[0]-b.Position[0]) - (a.Size[0]+b.Size[0])/2
	dy := mgl32.Abs(a.Position[1]-b.Position[1]) - (a.Size[1]+b.Size[1])/2
	return dx < 0 && dy < 0
}

// CheckOverlap is Overlaps that also records b as a's collision partner.
func CheckOverlap(a, b *Entity) bool {
	if !Overlaps(a, b) {
		return false
	}
	a.Hit = true
	a.Partner = b.Ref()
	return true
}

// CheckPool tests self against every entity in pool without moving anything.
// The last overlapping entity in slot order becomes the partner.
func CheckPool(self *Entity, pool *Pool) bool {
	hit := false
	for i := range pool.Len() {
		if CheckOverlap(self, pool.At(i)) {
			hit = true
		}
	}
	return hit
}

// ResolveAxis pushes self out of every overlapping entity in pool along one
// axis. The push is opposite to self's velocity on that axis, the velocity
// component is zeroed and the matching side flag is set. Corrections are
// applied in slot order, so the last one wins.
//
// With no velocity on the axis, self is pushed away from the other box's
// center, but only when this axis has the shallower overlap; otherwise the
// pass on the other axis separates them.
func ResolveAxis(self *Entity, pool *Pool, axis Axis) {
	a := int(axis)
	for i := range pool.Len() {
		other := pool.At(i)
		if !CheckOverlap(self, other) {
			continue
		}
		pen := penetration(self, other, a)
		dir := -sign(self.Velocity[a])
		if dir == 0 {
			if pen > penetration(self, other, 1-a) {
				continue
			}
			dir = 1
			if self.Position[a] < other.Position[a] {
				dir = -1
			}
		}

		self.Position[a] += dir * pen
		self.Velocity[a] = 0
		switch {
		case axis == AxisY && dir < 0:
			self.Collided.Top = true
		case axis == AxisY:
			self.Collided.Bottom = true
		case dir < 0:
			self.Collided.Right = true
		default:
			self.Collided.Left = true
		}
	}
}

// penetration is how deep a and b overlap along axis a.
func penetration(self, other *Entity, a int) float32 {
	dist := mgl32.Abs(self.Position[a] - other.Position[a])
	return mgl32.Abs(dist - self.Size[a]/2 - other.Size[a]/2)
}

func sign(v float32) float32 {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}
