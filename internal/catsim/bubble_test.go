package catsim

import "testing"

func testBubbleParams() BubbleParams {
	return BubbleParams{
		Width:          12,
		Height:         3,
		Gap:            1,
		Margin:         1,
		NearDistance:   10,
		OverlapPenalty: 1000,
		SafetyMargin:   0.5,
		StickyBias:     2,
		Smoothing:      0.3,
	}
}

func TestBubblePlacerPrefersTop(t *testing.T) {
	b := NewBubblePlacer(testBubbleParams())
	bounds := Rect{X: 0, Y: 0, W: 80, H: 24}
	subject := Rect{X: 38, Y: 10, W: 4, H: 3}

	// Pointer far away: no proximity term, top wins by order and sticky bias.
	side, _ := b.Place(subject, Vec{200, 200}, bounds)
	if side != SideTop {
		t.Errorf("expected top side for a centered subject, got %v", side)
	}
}

func TestBubblePlacerRespectsMargin(t *testing.T) {
	b := NewBubblePlacer(testBubbleParams())
	bounds := Rect{X: 0, Y: 0, W: 80, H: 24}

	// Subject jammed against the top edge: the top candidate cannot keep
	// its margin, so another side must win.
	subject := Rect{X: 38, Y: 0, W: 4, H: 3}
	side, pos := b.Place(subject, Vec{200, 200}, bounds)

	if side == SideTop {
		t.Error("top side should be invalid for a subject at the top edge")
	}
	p := testBubbleParams()
	if pos.X < bounds.X+p.Margin-1e-9 || pos.X+p.Width > bounds.Right()-p.Margin+1e-9 ||
		pos.Y < bounds.Y+p.Margin-1e-9 || pos.Y+p.Height > bounds.Bottom()-p.Margin+1e-9 {
		t.Errorf("chosen box at %v violates the bounds margin", pos)
	}
}

func TestBubblePlacerStickiness(t *testing.T) {
	b := NewBubblePlacer(testBubbleParams())
	bounds := Rect{X: 0, Y: 0, W: 80, H: 24}
	subject := Rect{X: 38, Y: 10, W: 4, H: 3}
	pointer := Vec{200, 200}

	first, _ := b.Place(subject, pointer, bounds)

	// Nudge the subject slightly; the sticky bias should keep the side.
	for i := 0; i < 5; i++ {
		subject.X += 0.3
		side, _ := b.Place(subject, pointer, bounds)
		if side != first {
			t.Fatalf("side flipped from %v to %v on a tiny subject move", first, side)
		}
	}
}

func TestBubblePlacerSmoothing(t *testing.T) {
	b := NewBubblePlacer(testBubbleParams())
	bounds := Rect{X: 0, Y: 0, W: 80, H: 24}
	subject := Rect{X: 30, Y: 10, W: 4, H: 3}

	_, start := b.Place(subject, Vec{200, 200}, bounds)

	// Jump the subject; the displayed anchor should move only a fraction of
	// the way toward the new target, not snap.
	subject.X = 50
	_, next := b.Place(subject, Vec{200, 200}, bounds)

	moved := next.Sub(start).Len()
	if moved == 0 {
		t.Fatal("anchor should move toward the new target")
	}
	// Full snap would be ~20 cells; smoothing at 0.3 keeps it well short.
	if moved > 10 {
		t.Errorf("anchor moved %v cells in one frame, smoothing not applied", moved)
	}
}

func TestBubblePlacerFallback(t *testing.T) {
	p := testBubbleParams()
	b := NewBubblePlacer(p)

	// Bounds too small for any candidate to keep its margin.
	bounds := Rect{X: 0, Y: 0, W: 13, H: 4}
	subject := Rect{X: 5, Y: 1, W: 3, H: 2}

	side, pos := b.Place(subject, Vec{0, 0}, bounds)
	if side != SideTop {
		t.Errorf("fallback should pick the default top side, got %v", side)
	}
	if pos.X < bounds.X-1e-9 || pos.Y < bounds.Y-1e-9 {
		t.Errorf("fallback position %v should still be clamped into bounds", pos)
	}
}

func TestBubblePlacerResetSnapsNextPlacement(t *testing.T) {
	b := NewBubblePlacer(testBubbleParams())
	bounds := Rect{X: 0, Y: 0, W: 80, H: 24}
	subject := Rect{X: 30, Y: 10, W: 4, H: 3}
	pointer := Vec{200, 200}

	side, pos := b.Place(subject, pointer, bounds)
	if b.Side() != side || b.Pos() != pos {
		t.Errorf("accessors disagree with Place: %v/%v vs %v/%v", b.Side(), b.Pos(), side, pos)
	}

	// After a reset the next placement snaps like a fresh placer would,
	// with no smoothing from the forgotten anchor.
	b.Reset()
	subject.X = 50
	_, next := b.Place(subject, pointer, bounds)

	fresh := NewBubblePlacer(testBubbleParams())
	_, want := fresh.Place(subject, pointer, bounds)
	if next != want {
		t.Errorf("placement after reset = %v, fresh placer gives %v", next, want)
	}
}

func TestBubblePlacerPointerProximity(t *testing.T) {
	p := testBubbleParams()
	p.StickyBias = 0
	b := NewBubblePlacer(p)
	bounds := Rect{X: 0, Y: 0, W: 80, H: 30}
	subject := Rect{X: 38, Y: 14, W: 4, H: 3}

	// Pointer close to the subject and below it: the bottom candidate's
	// center is nearest to the pointer, so it should win.
	pointer := Vec{40, 22}
	side, _ := b.Place(subject, pointer, bounds)
	if side != SideBottom {
		t.Errorf("expected bottom side toward a near pointer, got %v", side)
	}
}
