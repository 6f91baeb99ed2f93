package sim

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

type recordedQuad struct {
	transform mgl32.Mat4
	texture   TextureHandle
}

type recordingTarget struct {
	transform mgl32.Mat4
	texture   TextureHandle
	quads     []recordedQuad
}

func (r *recordingTarget) SetTransform(m mgl32.Mat4)   { r.transform = m }
func (r *recordingTarget) BindTexture(h TextureHandle) { r.texture = h }
func (r *recordingTarget) DrawQuad() {
	r.quads = append(r.quads, recordedQuad{r.transform, r.texture})
}

func TestDrawSkipsInactive(t *testing.T) {
	p := NewPool(PoolEnemies, 3, Entity{})
	for i := range 3 {
		e := box(KindEnemy, float32(i), 0, 1, 1)
		e.Texture = TextureHandle(i + 1)
		p.Place(i, e)
	}
	p.Despawn(1)

	target := &recordingTarget{}
	if n := Draw(target, p, nil); n != 2 {
		t.Fatalf("Draw() = %d, expected 2", n)
	}
	if target.quads[0].texture != 1 || target.quads[1].texture != 3 {
		t.Errorf("textures = %v, %v, expected 1 and 3", target.quads[0].texture, target.quads[1].texture)
	}
	if tx := target.quads[1].transform.Col(3); tx[0] != 2 {
		t.Errorf("second quad x = %v, expected 2", tx[0])
	}
}

func TestUpdateTransformAppliesScaleAndRotation(t *testing.T) {
	e := box(KindMeteor, 3, -1, 1, 1)
	e.Scale = mgl32.Vec2{2, 2}
	e.Rotation = mgl32.DegToRad(90)
	e.UpdateTransform()

	// The unit quad's right edge midpoint ends up above the center.
	p := e.Transform.Mul4x1(mgl32.Vec4{0.5, 0, 0, 1})
	if !mgl32.FloatEqualThreshold(p[0], 3, 1e-5) || !mgl32.FloatEqualThreshold(p[1], 0, 1e-5) {
		t.Errorf("transformed point = (%v, %v), expected (3, 0)", p[0], p[1])
	}
}
