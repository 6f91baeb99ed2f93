package sim

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var stepDT = NewLoop(DefaultStep).DT()

func landerWorld() *World {
	w := NewWorld(RulesPlatformer)
	w.Platforms = NewPool(PoolPlatforms, 10, Entity{})
	for i := range 10 {
		kind := KindLosePlatform
		if i == 1 {
			kind = KindWinPlatform
		}
		w.Platforms.Place(i, box(kind, -4.5+float32(i), -3.25, 1, 1))
	}
	w.Players = NewPool(PoolPlayer, 1, Entity{})
	p := box(KindPlayer, 0, 5, 1, 1)
	p.Velocity = mgl32.Vec3{0, -1, 0}
	p.Speed = 1.5
	w.Players.Place(0, p)
	return w
}

func TestInactiveEntityIsUntouched(t *testing.T) {
	w := landerWorld()
	p := w.Player()
	p.Active = false
	before := *p

	for range 30 {
		p.Update(stepDT, w)
	}
	if p.Position != before.Position || p.Velocity != before.Velocity || p.Transform != before.Transform {
		t.Error("Update() changed an inactive entity")
	}
}

func TestLanderSettlesOnFloor(t *testing.T) {
	w := landerWorld()
	p := w.Player()

	ticks := 0
	for !p.Collided.Bottom && ticks < 1000 {
		p.Update(stepDT, w)
		ticks++
	}
	if !p.Collided.Bottom {
		t.Fatal("player never landed")
	}
	if p.Position[1] != -2.25 {
		t.Errorf("Position.y = %v, expected exactly -2.25", p.Position[1])
	}
	if p.Velocity[1] != 0 {
		t.Errorf("Velocity.y = %v, expected 0", p.Velocity[1])
	}
	if p.Partner.Kind != KindLosePlatform {
		t.Errorf("Partner.Kind = %v, expected lose-platform", p.Partner.Kind)
	}

	for range 60 {
		p.Update(stepDT, w)
	}
	if p.Position[1] != -2.25 {
		t.Errorf("Position.y drifted to %v after landing", p.Position[1])
	}
}

func TestLanderJumpIsOneShot(t *testing.T) {
	w := landerWorld()
	p := w.Player()
	p.Velocity = mgl32.Vec3{}
	p.JumpPower = 5
	p.Jump = true

	p.Update(stepDT, w)
	if p.Jump {
		t.Error("Jump should be cleared once consumed")
	}
	if p.Velocity[1] != 5 {
		t.Errorf("Velocity.y = %v, expected 5", p.Velocity[1])
	}
	p.Update(stepDT, w)
	if p.Velocity[1] != 5 {
		t.Errorf("Velocity.y = %v after second tick, expected no second impulse", p.Velocity[1])
	}
}

func pongWorld() *World {
	w := NewWorld(RulesPong)
	w.Arena = Bounds{HalfW: 5, HalfH: 3.75}
	w.Paddles = NewPool(PoolPaddles, 2, Entity{})
	w.Paddles.Place(0, box(KindPaddle, -4.5, 0, 0.25, 1))
	w.Paddles.Place(1, box(KindPaddle, 4.5, 0, 0.25, 1))
	w.Balls = NewPool(PoolBalls, 1, Entity{})
	w.Balls.Place(0, box(KindBall, 0, 0, 0.25, 0.25))
	return w
}

func TestBallReflectsOffTopWall(t *testing.T) {
	w := pongWorld()
	ball := w.Balls.At(0)
	ball.Position = mgl32.Vec3{0, 3.5, 0}
	ball.Velocity = mgl32.Vec3{1.0, 0.2, 0}.Mul(5)
	ball.Launched = true

	for i := 0; i < 60 && !ball.Collided.Top; i++ {
		ball.Update(stepDT, w)
	}
	if !ball.Collided.Top {
		t.Fatal("ball never reached the top wall")
	}
	if ball.Velocity[1] >= 0 {
		t.Errorf("Velocity.y = %v, expected negative after the top wall", ball.Velocity[1])
	}
	if ball.Velocity[0] <= 0 {
		t.Errorf("Velocity.x = %v, expected sign unchanged", ball.Velocity[0])
	}
	if ball.Position[1] > 3.75-0.125 {
		t.Errorf("Position.y = %v, expected inside the field", ball.Position[1])
	}
}

func TestBallNotLaunchedStaysPut(t *testing.T) {
	w := pongWorld()
	ball := w.Balls.At(0)
	ball.Velocity = mgl32.Vec3{3, 3, 0}

	ball.Update(stepDT, w)
	if ball.Position != (mgl32.Vec3{}) {
		t.Errorf("Position = %v, expected the ball to wait for launch", ball.Position)
	}
}

func TestBallBouncesOffPaddle(t *testing.T) {
	w := pongWorld()
	ball := w.Balls.At(0)
	ball.Position = mgl32.Vec3{-4.2, 0, 0}
	ball.Velocity = mgl32.Vec3{-5, 0, 0}
	ball.Launched = true

	ball.Update(stepDT, w)
	if ball.Velocity[0] != 5 {
		t.Errorf("Velocity.x = %v, expected 5 away from the left paddle", ball.Velocity[0])
	}
	if ball.Partner.Kind != KindPaddle {
		t.Errorf("Partner.Kind = %v, expected paddle", ball.Partner.Kind)
	}
}

func TestBallSideWallEndsRally(t *testing.T) {
	w := pongWorld()
	ball := w.Balls.At(0)
	ball.Position = mgl32.Vec3{4.8, 2, 0}
	ball.Velocity = mgl32.Vec3{5, 0, 0}
	ball.Launched = true

	ball.Update(stepDT, w)
	if !ball.Collided.Right {
		t.Fatal("Collided.Right = false, expected the right wall to be hit")
	}
	if ball.Launched || ball.Velocity != (mgl32.Vec3{}) {
		t.Error("ball should stop after a side wall")
	}
	if ball.Position[0] != 5-0.125 {
		t.Errorf("Position.x = %v, expected clamped to 4.875", ball.Position[0])
	}
}

func TestPaddleClampsToField(t *testing.T) {
	w := pongWorld()
	p := w.Paddles.At(0)
	p.Speed = 10
	p.Movement = mgl32.Vec3{0, 1, 0}

	for range 120 {
		p.Update(stepDT, w)
	}
	if p.Position[1] != 3.25 {
		t.Errorf("Position.y = %v, expected clamp at 3.25", p.Position[1])
	}
}

func TestScenePropsAnimate(t *testing.T) {
	w := NewWorld(RulesScene)
	w.Props = NewPool(PoolProps, 2, Entity{})
	robot := box(KindRobot, 0, 0, 1, 1)
	robot.Velocity = mgl32.Vec3{1, 0, 0}
	robot.Speed = 1
	w.Props.Place(0, robot)
	w.Props.Place(1, box(KindMeteor, 2, 2, 1, 1))

	flips := 0
	lastDir := float32(1)
	minScale, maxScale := float32(10), float32(0)
	for range 600 {
		w.Props.Update(stepDT, w)
		r, m := w.Props.At(0), w.Props.At(1)
		if r.Velocity[0] != lastDir {
			flips++
			lastDir = r.Velocity[0]
		}
		if r.Position[0] < -0.05 || r.Position[0] > 1.1 {
			t.Fatalf("robot left its patrol at x = %v", r.Position[0])
		}
		minScale = min(minScale, m.Scale[0])
		maxScale = max(maxScale, m.Scale[0])
	}

	if flips < 4 {
		t.Errorf("robot turned %d times in 10s, expected at least 4", flips)
	}
	if minScale < 0.95 || maxScale > 1.7 || maxScale < 1.3 {
		t.Errorf("meteor scale ranged [%v, %v], expected a pulse between 1 and ~1.65", minScale, maxScale)
	}
	rot := float64(w.Props.At(1).Rotation)
	if math.Abs(rot-10*math.Pi/2) > 0.01 {
		t.Errorf("meteor rotation = %v, expected 5π after 10s", rot)
	}
}
