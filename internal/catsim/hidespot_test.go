package catsim

import (
	"math/rand"
	"testing"
)

var testInset = InsetParams{Min: 0.5, Fraction: 0.15}

func TestHideTargetFarSideScenario(t *testing.T) {
	// Agent near the obstacle, repel point far to the bottom-right: the
	// target must sit inside the obstacle on the side away from the repel
	// point.
	agent := Vec{100, 100}
	obstacle := Rect{X: 50, Y: 50, W: 100, H: 100}
	repel := Vec{700, 500}
	bounds := Rect{X: 0, Y: 0, W: 800, H: 600}

	target := HideTarget(agent, 30, []Rect{obstacle}, repel, bounds, testInset)

	insetX := testInset.insetFor(obstacle.W, 30)
	insetY := testInset.insetFor(obstacle.H, 30)

	if target.X < obstacle.X+insetX-1e-9 || target.X > obstacle.Right()-insetX+1e-9 {
		t.Errorf("target x=%v outside inset interior [%v, %v]", target.X, obstacle.X+insetX, obstacle.Right()-insetX)
	}
	if target.Y < obstacle.Y+insetY-1e-9 || target.Y > obstacle.Bottom()-insetY+1e-9 {
		t.Errorf("target y=%v outside inset interior [%v, %v]", target.Y, obstacle.Y+insetY, obstacle.Bottom()-insetY)
	}

	// Repel point is to the right of the obstacle center, so the far side
	// is the left interior edge.
	if target.X != obstacle.X+insetX {
		t.Errorf("expected left interior edge x=%v, got %v", obstacle.X+insetX, target.X)
	}
}

func TestHideTargetDeterministic(t *testing.T) {
	agent := Vec{12, 8}
	obstacles := []Rect{
		{X: 5, Y: 5, W: 10, H: 6},
		{X: 30, Y: 10, W: 8, H: 8},
	}
	repel := Vec{40, 3}
	bounds := Rect{X: 0, Y: 2, W: 80, H: 22}

	first := HideTarget(agent, 1.5, obstacles, repel, bounds, testInset)
	for i := 0; i < 10; i++ {
		if got := HideTarget(agent, 1.5, obstacles, repel, bounds, testInset); got != first {
			t.Fatalf("HideTarget not deterministic: %v then %v", first, got)
		}
	}
}

func TestHideTargetPicksNearestObstacle(t *testing.T) {
	near := Rect{X: 10, Y: 10, W: 10, H: 10}
	far := Rect{X: 60, Y: 10, W: 10, H: 10}
	bounds := Rect{X: 0, Y: 0, W: 80, H: 24}

	target := HideTarget(Vec{12, 12}, 1, []Rect{far, near}, Vec{0, 0}, bounds, testInset)
	if !near.Contains(target) {
		t.Errorf("target %v should be inside the nearest obstacle %+v", target, near)
	}
}

func TestHideTargetVerticalDominance(t *testing.T) {
	obstacle := Rect{X: 20, Y: 10, W: 10, H: 8}
	bounds := Rect{X: 0, Y: 0, W: 80, H: 40}

	// Repel point directly below the obstacle: vertical separation
	// dominates, so the top interior edge is preferred.
	target := HideTarget(Vec{25, 12}, 1, []Rect{obstacle}, Vec{25, 38}, bounds, testInset)

	insetY := testInset.insetFor(obstacle.H, 1)
	if target.Y != obstacle.Y+insetY {
		t.Errorf("expected top interior edge y=%v, got %v", obstacle.Y+insetY, target.Y)
	}
}

func TestHideTargetEmptyObstacles(t *testing.T) {
	bounds := Rect{X: 0, Y: 2, W: 80, H: 22}
	target := HideTarget(Vec{5, 5}, 1, nil, Vec{40, 12}, bounds, testInset)
	if target != bounds.Center() {
		t.Errorf("empty obstacle list should fall back to bounds center, got %v", target)
	}
}

func TestHideTargetTinyObstacleAnchorsNearTop(t *testing.T) {
	// An obstacle shorter than its insets collapses to a near-top anchor
	// instead of failing.
	obstacle := Rect{X: 10, Y: 10, W: 20, H: 0.6}
	bounds := Rect{X: 0, Y: 0, W: 80, H: 24}

	target := HideTarget(Vec{5, 10}, 2, []Rect{obstacle}, Vec{70, 10}, bounds, testInset)
	insetY := testInset.insetFor(obstacle.H, 2)
	if target.Y != obstacle.Y+insetY {
		t.Errorf("collapsed vertical range should anchor at the top inset, got y=%v", target.Y)
	}
}

// TestHideTargetAlwaysInsideProperty samples random scenes and checks the
// target stays inside the chosen obstacle's inset interior and the bounds.
func TestHideTargetAlwaysInsideProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	bounds := Rect{X: 0, Y: 2, W: 80, H: 22}

	for i := 0; i < 400; i++ {
		count := 1 + rng.Intn(5)
		obstacles := make([]Rect, count)
		for j := range obstacles {
			obstacles[j] = Rect{
				X: bounds.X + rng.Float64()*(bounds.W-12),
				Y: bounds.Y + rng.Float64()*(bounds.H-8),
				W: 4 + rng.Float64()*8,
				H: 3 + rng.Float64()*5,
			}
		}
		agent := Vec{bounds.X + rng.Float64()*bounds.W, bounds.Y + rng.Float64()*bounds.H}
		repel := Vec{rng.Float64() * 100, rng.Float64() * 40}
		radius := 0.5 + rng.Float64()*2

		target := HideTarget(agent, radius, obstacles, repel, bounds, testInset)

		if !bounds.Contains(target) {
			t.Fatalf("iteration %d: target %v outside bounds", i, target)
		}

		inside := false
		for _, o := range obstacles {
			insetX := testInset.insetFor(o.W, radius)
			insetY := testInset.insetFor(o.H, radius)
			if target.X >= o.X+insetX-1e-9 && target.X <= o.Right()-insetX+1e-9 &&
				target.Y >= o.Y+insetY-1e-9 && target.Y <= o.Bottom()-insetY+1e-9 {
				inside = true
				break
			}
		}
		if !inside {
			t.Fatalf("iteration %d: target %v not inside any obstacle's inset interior", i, target)
		}
	}
}
