package pong

import (
	"strings"
	"testing"
	"time"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/vovakirdan/quad-arcade/internal/core"
	"github.com/vovakirdan/quad-arcade/internal/render"
)

func newGame(t *testing.T, seed int64) *Game {
	t.Helper()
	g := New()
	cfg := core.DefaultConfig()
	cfg.Seed = seed
	g.Reset(cfg)
	return g
}

func launch() core.InputFrame {
	in := core.NewInputFrame()
	in.Set(core.ActionJump)
	return in
}

func TestResetPlacesPaddlesAndBall(t *testing.T) {
	g := newGame(t, 1)

	tests := []struct {
		slot int
		x    float32
	}{
		{player, -4.5},
		{cpu, 4.5},
	}
	for _, tc := range tests {
		p := g.world.Paddles.At(tc.slot)
		if !p.Active || p.Position != (mgl32.Vec3{tc.x, 0, 0}) {
			t.Errorf("paddle %d = active %v at %v, expected active at (%v, 0)", tc.slot, p.Active, p.Position, tc.x)
		}
	}
	if b := g.ball(); b.Launched || b.Position != (mgl32.Vec3{}) {
		t.Errorf("ball = launched %v at %v, expected waiting at the center", b.Launched, b.Position)
	}
}

func TestBallWaitsForServe(t *testing.T) {
	g := newGame(t, 1)
	g.Step(core.NewInputFrame(), g.loop.Step()*30)
	if b := g.ball(); b.Position != (mgl32.Vec3{}) {
		t.Errorf("ball moved to %v before the serve", b.Position)
	}

	g.Step(launch(), 0)
	b := g.ball()
	if !b.Launched {
		t.Fatal("ball not launched")
	}
	speed := g.cfg.Physics.BallSpeed
	if b.Velocity[0] != -speed {
		t.Errorf("serve vx = %v, expected %v toward the player", b.Velocity[0], -speed)
	}
	if limit := g.cfg.Physics.ServeAngle * speed; mgl32.Abs(b.Velocity[1]) > limit {
		t.Errorf("serve vy = %v, expected within ±%v", b.Velocity[1], limit)
	}
}

func TestServeIsSeeded(t *testing.T) {
	a, b := newGame(t, 42), newGame(t, 42)
	a.Step(launch(), 0)
	b.Step(launch(), 0)
	if a.ball().Velocity != b.ball().Velocity {
		t.Errorf("serves = %v and %v, expected equal for one seed", a.ball().Velocity, b.ball().Velocity)
	}
}

func TestTopWallReflects(t *testing.T) {
	g := newGame(t, 1)
	b := g.ball()
	b.Launched = true
	b.Position = mgl32.Vec3{0, 3.6, 0}
	b.Velocity = mgl32.Vec3{1, 2, 0}

	g.Tick(g.loop.DT())

	if b.Velocity[1] >= 0 {
		t.Errorf("vy = %v after the top wall, expected negative", b.Velocity[1])
	}
	if top := g.cfg.Field.HalfH - b.Size[1]/2; b.Position[1] > top {
		t.Errorf("ball y = %v, expected at most %v", b.Position[1], top)
	}
}

func TestMissedBallScores(t *testing.T) {
	tests := []struct {
		name     string
		vx       float32
		scores   [2]int
		serveDir float32
	}{
		{"player scores", 3, [2]int{1, 0}, 1},
		{"cpu scores", -3, [2]int{0, 1}, -1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newGame(t, 1)
			// Paddles out of the way.
			g.world.Paddles.At(player).Position[1] = -3
			g.world.Paddles.At(cpu).Position[1] = -3
			b := g.ball()
			b.Launched = true
			b.Position = mgl32.Vec3{0, 2, 0}
			b.Velocity = mgl32.Vec3{tc.vx, 0, 0}

			g.Step(core.NewInputFrame(), 3*time.Second)

			if g.scores != tc.scores {
				t.Errorf("scores = %v, expected %v", g.scores, tc.scores)
			}
			if b.Launched || b.Position != (mgl32.Vec3{}) {
				t.Errorf("ball = launched %v at %v, expected waiting at the center", b.Launched, b.Position)
			}
			if g.serveDir != tc.serveDir {
				t.Errorf("serveDir = %v, expected %v", g.serveDir, tc.serveDir)
			}
		})
	}
}

func TestWinScoreEndsGame(t *testing.T) {
	g := newGame(t, 1)
	g.scores[player] = g.cfg.Gameplay.WinScore - 1
	g.point(player)

	st := g.State()
	if !st.GameOver || st.Outcome != core.OutcomeWin || st.Score != g.cfg.Gameplay.WinScore {
		t.Errorf("state = %+v, expected a win at %d", st, g.cfg.Gameplay.WinScore)
	}
	if res := g.Step(launch(), time.Second); res.Ticks != 0 {
		t.Errorf("Step after game over ran %d ticks, expected 0", res.Ticks)
	}

	g = newGame(t, 1)
	g.scores[cpu] = g.cfg.Gameplay.WinScore - 1
	g.point(cpu)
	if g.State().Outcome != core.OutcomeLose {
		t.Errorf("Outcome = %v, expected lose", g.State().Outcome)
	}
}

func TestCPUTracksIncomingBall(t *testing.T) {
	g := newGame(t, 1)
	b := g.ball()
	b.Launched = true
	b.Position = mgl32.Vec3{1, 2, 0}
	b.Velocity = mgl32.Vec3{1, 0, 0}

	g.Tick(g.loop.DT())
	p := g.world.Paddles.At(cpu)
	if p.Movement[1] < float32(g.cfg.CPU.MinSkill)-1e-6 || p.Position[1] <= 0 {
		t.Errorf("cpu paddle = movement %v at %v, expected moving up", p.Movement[1], p.Position[1])
	}

	// Ball heading away: the CPU waits.
	b.Velocity = mgl32.Vec3{-1, 0, 0}
	g.Tick(g.loop.DT())
	if p.Movement[1] != 0 {
		t.Errorf("cpu movement = %v with the ball outgoing, expected 0", p.Movement[1])
	}
}

func TestPlayerPaddleFollowsInput(t *testing.T) {
	g := newGame(t, 1)
	up := core.NewInputFrame()
	up.Set(core.ActionUp)

	g.Step(up, 60*g.loop.Step())
	p := g.world.Paddles.At(player)
	limit := g.cfg.Field.HalfH - p.Size[1]/2
	if p.Position[1] != limit {
		t.Errorf("paddle y = %v after holding up, expected clamped at %v", p.Position[1], limit)
	}
}

func TestAutopilotRallies(t *testing.T) {
	g := newGame(t, 3)
	step := g.loop.Step()
	for i := 0; i < 60*120 && !g.State().GameOver; i++ {
		g.Step(g.Autopilot(), step)
	}
	if g.scores == ([2]int{}) {
		t.Error("no points after two minutes of play")
	}
}

func TestRenderDrawsScoreboard(t *testing.T) {
	g := newGame(t, 1)
	screen := core.NewScreen(80, 24)
	g.Render(render.NewScreenCanvas(screen))

	out := screen.String()
	for _, want := range []string{"P1", "CPU", "Press SPACE to serve"} {
		if !strings.Contains(out, want) {
			t.Errorf("screen missing %q", want)
		}
	}
	if !strings.ContainsRune(out, '●') {
		t.Error("ball glyph not drawn")
	}
}
