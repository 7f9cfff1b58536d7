package catsim

// Side identifies where a speech bubble is anchored relative to its subject.
type Side int

const (
	SideTop Side = iota
	SideRight
	SideLeft
	SideBottom
)

// String returns a human-readable name for the side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideLeft:
		return "left"
	case SideBottom:
		return "bottom"
	default:
		return "unknown"
	}
}

// candidateOrder is the fixed tie-break order when scores are equal; the
// current side is always tried first for stickiness.
var candidateOrder = [4]Side{SideTop, SideRight, SideLeft, SideBottom}

// BubbleParams tunes the placement scorer.
type BubbleParams struct {
	Width  float64 // label box width in cells
	Height float64 // label box height in cells
	Gap    float64 // distance between subject and box
	Margin float64 // required clearance from the playable bounds

	// NearDistance: the pointer-proximity score term only applies when the
	// pointer is within this distance of the subject center.
	NearDistance float64

	// OverlapPenalty is added when the candidate box covers the subject's
	// own (slightly inflated) bounding box.
	OverlapPenalty float64

	// SafetyMargin inflates the subject box for the overlap check.
	SafetyMargin float64

	// StickyBias is subtracted from the current side's score to discourage
	// oscillation between near-equal candidates.
	StickyBias float64

	// Smoothing is the exponential smoothing coefficient in (0,1);
	// displayed position moves by this fraction of the remaining distance
	// each frame.
	Smoothing float64
}

// BubblePlacer chooses a screen-anchored label position around a moving
// subject and smooths it across frames. It keeps only the current side and
// the smoothed coordinate between calls.
type BubblePlacer struct {
	params BubbleParams
	side   Side
	pos    Vec
	placed bool
}

// NewBubblePlacer creates a placer starting at the default (top) side.
func NewBubblePlacer(p BubbleParams) *BubblePlacer {
	return &BubblePlacer{params: p, side: SideTop}
}

// Side returns the currently chosen anchor side.
func (b *BubblePlacer) Side() Side {
	return b.side
}

// Pos returns the smoothed top-left anchor coordinate.
func (b *BubblePlacer) Pos() Vec {
	return b.pos
}

// Reset forgets the placement history so the next Place snaps.
func (b *BubblePlacer) Reset() {
	b.placed = false
	b.side = SideTop
}

// Place evaluates the four candidate sides around subject and updates the
// placer's side and smoothed position. Candidates whose clamped box cannot
// keep the required margin from bounds are invalid; among valid ones the
// lowest score wins. When no candidate is valid the placer falls back to the
// top side without smoothing.
func (b *BubblePlacer) Place(subject Rect, pointer Vec, bounds Rect) (Side, Vec) {
	p := b.params

	bestSide := SideTop
	bestPos := Vec{}
	bestScore := 0.0
	found := false

	subjCenter := subject.Center()
	pointerNear := pointer.Sub(subjCenter).Len() <= p.NearDistance
	inflated := subject.Inflate(p.SafetyMargin)

	for _, side := range b.orderedCandidates() {
		box, ok := b.candidateBox(side, subject, bounds)
		if !ok {
			continue
		}

		score := 0.0
		if pointerNear {
			score += pointer.Sub(box.Center()).Len()
		}
		if box.Intersects(inflated) {
			score += p.OverlapPenalty
		}
		if side == b.side {
			score -= p.StickyBias
		}

		if !found || score < bestScore {
			found = true
			bestSide = side
			bestPos = Vec{box.X, box.Y}
			bestScore = score
		}
	}

	if !found {
		// Nothing fits with margin; park at the default side, snapped.
		box := b.rawBox(SideTop, subject)
		pos := boundsClampBox(box, bounds)
		b.side = SideTop
		b.pos = pos
		b.placed = true
		return b.side, b.pos
	}

	b.side = bestSide
	if !b.placed {
		b.pos = bestPos
		b.placed = true
	} else {
		b.pos = b.pos.Add(bestPos.Sub(b.pos).Scale(p.Smoothing))
	}
	return b.side, b.pos
}

// orderedCandidates lists all sides with the current side first.
func (b *BubblePlacer) orderedCandidates() []Side {
	out := make([]Side, 0, 4)
	out = append(out, b.side)
	for _, s := range candidateOrder {
		if s != b.side {
			out = append(out, s)
		}
	}
	return out
}

// rawBox positions the label box adjacent to the subject on the given side.
func (b *BubblePlacer) rawBox(side Side, subject Rect) Rect {
	p := b.params
	c := subject.Center()
	switch side {
	case SideTop:
		return Rect{c.X - p.Width/2, subject.Y - p.Gap - p.Height, p.Width, p.Height}
	case SideBottom:
		return Rect{c.X - p.Width/2, subject.Bottom() + p.Gap, p.Width, p.Height}
	case SideLeft:
		return Rect{subject.X - p.Gap - p.Width, c.Y - p.Height/2, p.Width, p.Height}
	default: // SideRight
		return Rect{subject.Right() + p.Gap, c.Y - p.Height/2, p.Width, p.Height}
	}
}

// candidateBox clamps the raw box into bounds and reports whether it still
// honors the margin requirement afterwards.
func (b *BubblePlacer) candidateBox(side Side, subject Rect, bounds Rect) (Rect, bool) {
	p := b.params
	box := b.rawBox(side, subject)

	inner := Rect{
		X: bounds.X + p.Margin,
		Y: bounds.Y + p.Margin,
		W: bounds.W - 2*p.Margin,
		H: bounds.H - 2*p.Margin,
	}
	if box.W > inner.W || box.H > inner.H {
		return Rect{}, false
	}

	clamped := box
	clamped.X = clampF(clamped.X, inner.X, inner.Right()-box.W)
	clamped.Y = clampF(clamped.Y, inner.Y, inner.Bottom()-box.H)

	// A candidate that had to move by more than the gap to fit no longer
	// sits on its side of the subject; treat it as invalid so another side
	// gets picked instead.
	if abs(clamped.X-box.X) > p.Gap+p.Width/2 || abs(clamped.Y-box.Y) > p.Gap+p.Height/2 {
		return Rect{}, false
	}

	return clamped, true
}

// boundsClampBox clamps a box into bounds ignoring margins, used by the
// no-valid-candidate fallback.
func boundsClampBox(box Rect, bounds Rect) Vec {
	return Vec{
		X: clampF(box.X, bounds.X, bounds.Right()-box.W),
		Y: clampF(box.Y, bounds.Y, bounds.Bottom()-box.H),
	}
}
