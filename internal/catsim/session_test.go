package catsim

import (
	"testing"
)

func testGrowth() GrowthParams {
	return GrowthParams{
		YoungAt: 8,
		GrownAt: 20,
		Radius:  [3]float64{1, 1.5, 2},
		Speed:   [3]float64{0.5, 0.6, 0.7},
	}
}

func testSessionParams() Params {
	return Params{
		Bounds:         Rect{X: 0, Y: 2, W: 80, H: 22},
		NearDistance:   6,
		HideChance:     0,
		HideCooldown:   40,
		HideMinTicks:   60,
		HideMaxTicks:   120,
		MinDwellTicks:  30,
		IdleInterval:   400,
		IdleMinTicks:   20,
		IdleMaxTicks:   40,
		Inset:          testInset,
		WanderJitter:   0.3,
		FleeSpeedScale: 2.5,
		FleeMargin:     4,
		MinHideGoal:    0,
		GraceTicks:     100000,
	}
}

func testObstacles() []Rect {
	return []Rect{
		{X: 20, Y: 8, W: 10, H: 6},
		{X: 50, Y: 12, W: 8, H: 5},
	}
}

func TestSessionForcedHideReachesGoal(t *testing.T) {
	p := testSessionParams()
	p.MinHideGoal = 3
	p.GraceTicks = 10

	s := NewSession(p, testGrowth(), testObstacles(), Vec{40, 12}, 42)

	// No pointer at all: only the forced fallback can start hide sessions.
	for i := 0; i < 5000 && s.HidesCompleted() < p.MinHideGoal; i++ {
		s.Step(Vec{}, false)
	}

	if got := s.HidesCompleted(); got < p.MinHideGoal {
		t.Errorf("forced fallback completed %d hides, want at least %d", got, p.MinHideGoal)
	}
}

func TestSessionHiddenInsideObstacle(t *testing.T) {
	p := testSessionParams()
	p.MinHideGoal = 2
	p.GraceTicks = 10
	obstacles := testObstacles()

	s := NewSession(p, testGrowth(), obstacles, Vec{40, 12}, 7)

	checked := 0
	for i := 0; i < 5000; i++ {
		s.Step(Vec{}, false)
		if !s.Hidden() {
			continue
		}
		checked++

		pos := s.Agent().Pos
		r := s.Agent().Radius
		inside := false
		for _, o := range obstacles {
			insetX := p.Inset.insetFor(o.W, r)
			insetY := p.Inset.insetFor(o.H, r)
			if pos.X >= o.X+insetX-1e-9 && pos.X <= o.Right()-insetX+1e-9 &&
				pos.Y >= o.Y+insetY-1e-9 && pos.Y <= o.Bottom()-insetY+1e-9 {
				inside = true
				break
			}
		}
		if !inside {
			t.Fatalf("tick %d: hidden at %v but not inside any obstacle's inset interior", i, pos)
		}
	}
	if checked == 0 {
		t.Fatal("session never reached the hidden state")
	}
}

func TestSessionAbortedHideDoesNotCount(t *testing.T) {
	p := testSessionParams()
	// One tick total budget: the cat cannot possibly reach a distant target.
	p.HideMinTicks = 1
	p.HideMaxTicks = 1

	start := Vec{70, 20}
	s := NewSession(p, testGrowth(), testObstacles(), start, 3)

	// Pointer on top of the cat triggers via the near-distance gate.
	s.Step(start, true)
	if s.State() != StateSeekingHide {
		t.Fatalf("near pointer should start a hide session, state=%v", s.State())
	}

	s.Step(Vec{}, false)
	if s.State() != StateWandering {
		t.Errorf("expired seek should return to wandering, state=%v", s.State())
	}
	if s.HidesCompleted() != 0 {
		t.Errorf("aborted attempt must not count, got %d", s.HidesCompleted())
	}
}

func TestSessionHideCooldown(t *testing.T) {
	p := testSessionParams()
	p.HideMinTicks = 1
	p.HideMaxTicks = 1

	start := Vec{70, 20}
	s := NewSession(p, testGrowth(), testObstacles(), start, 3)

	s.Step(start, true) // enters seek
	s.Step(Vec{}, false)
	if s.State() == StateSeekingHide {
		t.Fatal("seek should have expired")
	}

	// Pointer stays glued to the cat; the cooldown must hold the gate shut.
	for i := 1; i < p.HideCooldown; i++ {
		s.Step(s.Agent().Pos, true)
		if s.State() == StateSeekingHide {
			t.Fatalf("hide re-triggered after %d ticks, inside the %d-tick cooldown", i, p.HideCooldown)
		}
	}

	triggered := false
	for i := 0; i < 10; i++ {
		s.Step(s.Agent().Pos, true)
		if s.State() == StateSeekingHide {
			triggered = true
			break
		}
	}
	if !triggered {
		t.Error("hide should re-trigger once the cooldown has expired")
	}
}

func TestSessionPointerOutsideBoundsIgnored(t *testing.T) {
	p := testSessionParams()
	s := NewSession(p, testGrowth(), testObstacles(), Vec{40, 3.5}, 5)

	// Pointer within near distance of the cat but above the playable area.
	pointer := Vec{40, 1}
	for i := 0; i < 50; i++ {
		s.Step(pointer, true)
		if s.State() == StateSeekingHide {
			t.Fatal("pointer outside bounds must not trigger a hide")
		}
	}
}

func TestSessionHideChanceGate(t *testing.T) {
	p := testSessionParams()
	s := NewSession(p, testGrowth(), testObstacles(), Vec{40, 12}, 5)

	// Certain per-tick chance with a distant pointer inside bounds.
	s.TuneGates(1.0, 0)
	s.Step(Vec{5, 20}, true)
	if s.State() != StateSeekingHide {
		t.Errorf("hide chance of 1.0 should trigger immediately, state=%v", s.State())
	}
}

func TestSessionResolvesOneObstaclePerTick(t *testing.T) {
	p := testSessionParams()
	p.WanderJitter = 0

	// Two furniture blocks sharing an edge at x=36.
	s := NewSession(p, testGrowth(), []Rect{
		{X: 30, Y: 8, W: 6, H: 6},
		{X: 36, Y: 8, W: 6, H: 6},
	}, Vec{40, 20}, 1)

	// Park the agent on the shared edge, penetrating both blocks at once.
	s.agent.Pos = Vec{36, 11}
	s.agent.Vel = Vec{0, s.speed()}
	s.Step(Vec{}, false)

	if s.Agent().Vel.Y >= 0 {
		t.Fatalf("push-out should have reflected the velocity, vel=%v", s.Agent().Vel)
	}

	// One resolution per tick: the second block is left for later frames,
	// so the agent must still be penetrating at least one of them.
	overlapping := 0
	for _, o := range s.Obstacles() {
		if CircleRectOverlap(s.Agent().Pos, s.Agent().Radius, o) {
			overlapping++
		}
	}
	if overlapping == 0 {
		t.Errorf("both obstacles resolved in one tick, agent at %v", s.Agent().Pos)
	}
	if s.ElapsedTicks() != 1 {
		t.Errorf("elapsed ticks = %d after one step", s.ElapsedTicks())
	}
}

func TestSessionNoSpuriousWallBounce(t *testing.T) {
	p := testSessionParams()
	p.WanderJitter = 0

	s := NewSession(p, testGrowth(), nil, Vec{40, 12}, 1)
	r := s.Agent().Radius

	// Exactly on the left wall, moving inward: no reflection.
	s.agent.Pos = Vec{p.Bounds.X + r, 12}
	s.agent.Vel = Vec{s.speed(), 0}
	s.Step(Vec{}, false)
	if s.Agent().Vel.X <= 0 {
		t.Errorf("inward velocity on the wall must not reflect, vel=%v", s.Agent().Vel)
	}

	// Exactly on the left wall, moving along it: also no reflection.
	s.agent.Pos = Vec{p.Bounds.X + r, 12}
	s.agent.Vel = Vec{0, s.speed()}
	s.Step(Vec{}, false)
	if s.Agent().Vel.X != 0 || s.Agent().Vel.Y <= 0 {
		t.Errorf("tangential velocity on the wall must not reflect, vel=%v", s.Agent().Vel)
	}
}

func TestSessionWallBounceReflects(t *testing.T) {
	p := testSessionParams()
	p.WanderJitter = 0

	s := NewSession(p, testGrowth(), nil, Vec{40, 12}, 1)
	r := s.Agent().Radius
	maxX := p.Bounds.Right() - r

	s.agent.Pos = Vec{maxX - 0.2, 12}
	s.agent.Vel = Vec{s.speed(), 0}
	s.Step(Vec{}, false)

	if got := s.Agent().Pos.X; got > maxX {
		t.Errorf("agent clamped position %v exceeds wall at %v", got, maxX)
	}
	if s.Agent().Vel.X >= 0 {
		t.Errorf("outward velocity at the wall should reflect, vel=%v", s.Agent().Vel)
	}
}

func TestSessionStaysInBounds(t *testing.T) {
	p := testSessionParams()
	s := NewSession(p, testGrowth(), testObstacles(), Vec{40, 12}, 99)
	b := s.Bounds()

	for i := 0; i < 3000; i++ {
		s.Step(Vec{}, false)
		pos := s.Agent().Pos
		r := s.Agent().Radius
		const slack = 0.02
		if pos.X < b.X+r-slack || pos.X > b.Right()-r+slack ||
			pos.Y < b.Y+r-slack || pos.Y > b.Bottom()-r+slack {
			t.Fatalf("tick %d: agent at %v escaped bounds in state %v", i, pos, s.State())
		}
	}
}

func TestSessionIdleHoldsPosition(t *testing.T) {
	p := testSessionParams()
	p.IdleInterval = 5
	p.IdleMinTicks = 10
	p.IdleMaxTicks = 10

	s := NewSession(p, testGrowth(), nil, Vec{40, 12}, 17)

	for i := 0; i < 5 && s.State() != StateIdle; i++ {
		s.Step(Vec{}, false)
	}
	if s.State() != StateIdle {
		t.Fatal("session should idle at the configured interval")
	}

	held := s.Agent().Pos
	for s.State() == StateIdle {
		s.Step(Vec{}, false)
		if s.State() == StateIdle && s.Agent().Pos != held {
			t.Fatalf("agent moved while idle: %v -> %v", held, s.Agent().Pos)
		}
	}
	if s.State() != StateWandering {
		t.Errorf("idle should end back in wandering, state=%v", s.State())
	}
	if s.Agent().Vel == (Vec{}) {
		t.Error("wandering after idle should have nonzero velocity")
	}
}

func TestSessionFleeAndResume(t *testing.T) {
	p := testSessionParams()
	s := NewSession(p, testGrowth(), testObstacles(), Vec{40, 12}, 23)

	s.TriggerFlee()
	if s.State() != StateFleeing {
		t.Fatalf("TriggerFlee should enter fleeing, state=%v", s.State())
	}

	for i := 0; i < 2000 && !s.AwaitingResume(); i++ {
		s.Step(Vec{}, false)
	}
	if !s.AwaitingResume() {
		t.Fatal("fleeing agent never made it off-screen")
	}

	pos := s.Agent().Pos
	if pos.X >= p.Bounds.X && pos.X <= p.Bounds.Right() {
		t.Errorf("off-screen agent should be past a vertical edge, x=%v", pos.X)
	}

	// Stepping while awaiting resume is a no-op.
	before := s.Agent().Pos
	s.Step(Vec{}, false)
	if s.Agent().Pos != before {
		t.Error("agent moved while awaiting resume")
	}

	s.Resume(Vec{40, 12})
	if s.State() != StateWandering {
		t.Errorf("resume should return to wandering, state=%v", s.State())
	}
	if !p.Bounds.Contains(s.Agent().Pos) {
		t.Errorf("resumed agent at %v should be inside bounds", s.Agent().Pos)
	}
}

func TestSessionFleeTowardNearestEdge(t *testing.T) {
	p := testSessionParams()

	left := NewSession(p, testGrowth(), nil, Vec{10, 12}, 1)
	left.TriggerFlee()
	if left.Agent().Vel.X >= 0 {
		t.Errorf("agent on the left half should flee left, vel=%v", left.Agent().Vel)
	}

	right := NewSession(p, testGrowth(), nil, Vec{70, 12}, 1)
	right.TriggerFlee()
	if right.Agent().Vel.X <= 0 {
		t.Errorf("agent on the right half should flee right, vel=%v", right.Agent().Vel)
	}
}

func TestSessionGrowthMonotonic(t *testing.T) {
	s := NewSession(testSessionParams(), testGrowth(), nil, Vec{40, 12}, 1)

	if s.Agent().Stage != StageKitten {
		t.Fatalf("new session should start as kitten, got %v", s.Agent().Stage)
	}

	s.SetAffinity(10)
	if s.Agent().Stage != StageYoung || s.Agent().Radius != 1.5 {
		t.Errorf("affinity 10 should reach young/1.5, got %v/%v", s.Agent().Stage, s.Agent().Radius)
	}

	// A regressing affinity value never shrinks the cat.
	s.SetAffinity(0)
	if s.Agent().Stage != StageYoung {
		t.Errorf("stage regressed to %v", s.Agent().Stage)
	}

	s.SetAffinity(25)
	if s.Agent().Stage != StageGrown || s.Agent().Radius != 2 {
		t.Errorf("affinity 25 should reach grown/2, got %v/%v", s.Agent().Stage, s.Agent().Radius)
	}
}

func TestSessionDeterministic(t *testing.T) {
	p := testSessionParams()
	p.MinHideGoal = 2
	p.GraceTicks = 50

	run := func() (*Session, []Vec) {
		s := NewSession(p, testGrowth(), testObstacles(), Vec{40, 12}, 1234)
		trace := make([]Vec, 0, 2000)
		for i := 0; i < 2000; i++ {
			pointer := Vec{float64(i % 80), float64(4 + i%18)}
			s.Step(pointer, i%3 == 0)
			trace = append(trace, s.Agent().Pos)
		}
		return s, trace
	}

	a, traceA := run()
	b, traceB := run()

	for i := range traceA {
		if traceA[i] != traceB[i] {
			t.Fatalf("tick %d: positions diverge (%v vs %v)", i, traceA[i], traceB[i])
		}
	}
	if a.HidesCompleted() != b.HidesCompleted() {
		t.Errorf("hide counts diverge: %d vs %d", a.HidesCompleted(), b.HidesCompleted())
	}
}
