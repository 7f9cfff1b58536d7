package catsim

// InsetParams controls how far inside an obstacle a hide target is placed.
type InsetParams struct {
	// Min is the smallest inset in cells, applied even to thin obstacles.
	Min float64
	// Fraction of the obstacle dimension used as the preferred inset.
	Fraction float64
}

// insetFor computes the per-axis inset: max(Min, min(Fraction*dim, radius)).
// The cap at the agent radius guarantees that a collision circle centered on
// the target stays inside the obstacle.
func (p InsetParams) insetFor(dim, radius float64) float64 {
	in := p.Fraction * dim
	if in > radius {
		in = radius
	}
	if in < p.Min {
		in = p.Min
	}
	return in
}

// HideTarget picks a point strictly inside the obstacle nearest to the agent,
// on the far side of the repel point, inset from the obstacle boundary so the
// agent is fully occluded once centered there. The result is deterministic
// for identical inputs. An empty obstacle list yields the bounds center.
func HideTarget(agent Vec, radius float64, obstacles []Rect, repel Vec, bounds Rect, p InsetParams) Vec {
	if len(obstacles) == 0 {
		return bounds.Center()
	}

	// Nearest obstacle by squared center distance. Obstacle counts are small,
	// a linear scan is plenty.
	best := obstacles[0]
	bestD := agent.Sub(best.Center()).LenSq()
	for _, o := range obstacles[1:] {
		if d := agent.Sub(o.Center()).LenSq(); d < bestD {
			best, bestD = o, d
		}
	}

	insetX := p.insetFor(best.W, radius)
	insetY := p.insetFor(best.H, radius)
	center := best.Center()

	var target Vec
	dx := center.X - repel.X
	dy := center.Y - repel.Y
	if abs(dx) >= abs(dy) {
		// Horizontal separation dominates: hide against the interior edge
		// farther from the repel point.
		if dx >= 0 {
			target.X = best.Right() - insetX
		} else {
			target.X = best.X + insetX
		}
		// Keep vertical placement near the agent's current height, but bias
		// away from the bottom edge so the cat doesn't peek out underneath.
		target.Y = clampRange(agent.Y, best.Y+insetY, best.Bottom()-2*insetY)
	} else {
		// Vertical separation dominates: the top interior edge is a fixed
		// preference (again avoiding bottom visibility).
		target.Y = best.Y + insetY
		target.X = clampRange(agent.X, best.X+insetX, best.Right()-insetX)
	}

	return bounds.ClampPoint(target)
}

// clampRange clamps v to [lo, hi]; a collapsed range (lo > hi, e.g. an
// obstacle shorter than its insets) anchors at lo, the "near top" end.
func clampRange(v, lo, hi float64) float64 {
	if lo > hi {
		return lo
	}
	return clampF(v, lo, hi)
}

func abs(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}
