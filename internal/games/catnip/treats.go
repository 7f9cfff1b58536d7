package catnip

import (
	"github.com/okatenko/catnip/internal/catsim"
	"github.com/okatenko/catnip/internal/config"
	"github.com/okatenko/catnip/internal/core"
)

// TreatKind identifies a throwable treat.
type TreatKind int

const (
	TreatKibble TreatKind = iota
	TreatYarn
	TreatTuna
	treatKindCount
)

// String returns the display name of the treat.
func (k TreatKind) String() string {
	switch k {
	case TreatKibble:
		return "kibble"
	case TreatYarn:
		return "yarn"
	case TreatTuna:
		return "tuna"
	default:
		return "unknown"
	}
}

// Glyph returns the rune used to draw the treat.
func (k TreatKind) Glyph() rune {
	switch k {
	case TreatKibble:
		return '·'
	case TreatYarn:
		return '@'
	case TreatTuna:
		return '≈'
	default:
		return '?'
	}
}

// Color returns the screen color for the treat.
func (k TreatKind) Color() core.Color {
	switch k {
	case TreatKibble:
		return core.ColorYellow
	case TreatYarn:
		return core.ColorBrightMagenta
	case TreatTuna:
		return core.ColorBrightCyan
	default:
		return core.ColorDefault
	}
}

// Points returns the affinity value of the treat under the given config.
func (k TreatKind) Points(cfg config.TreatsConfig) int {
	switch k {
	case TreatKibble:
		return cfg.KibblePoints
	case TreatYarn:
		return cfg.YarnPoints
	case TreatTuna:
		return cfg.TunaPoints
	default:
		return 0
	}
}

// landedTreatTTL is how long a treat stays on the floor before it is swept
// away, in ticks.
const landedTreatTTL = 900

// Treat is a single thrown or landed treat.
type Treat struct {
	Kind   TreatKind
	Pos    catsim.Vec
	target catsim.Vec
	Landed bool
	ttl    int
}

// treatManager owns all in-flight and landed treats for one game.
type treatManager struct {
	cfg    config.TreatsConfig
	treats []Treat
}

func newTreatManager(cfg config.TreatsConfig) *treatManager {
	return &treatManager{cfg: cfg}
}

// Reset removes all treats.
func (m *treatManager) Reset() {
	m.treats = m.treats[:0]
}

// Throw launches a treat from the play-area edge toward the target point.
func (m *treatManager) Throw(kind TreatKind, from, target catsim.Vec, bounds catsim.Rect) {
	m.treats = append(m.treats, Treat{
		Kind:   kind,
		Pos:    from,
		target: bounds.ClampPoint(target),
		ttl:    landedTreatTTL,
	})
}

// Update advances thrown treats toward their targets and ages landed ones.
func (m *treatManager) Update() {
	alive := m.treats[:0]
	for _, t := range m.treats {
		if t.Landed {
			t.ttl--
			if t.ttl > 0 {
				alive = append(alive, t)
			}
			continue
		}

		to := t.target.Sub(t.Pos)
		if to.Len() <= m.cfg.ThrowSpeed {
			t.Pos = t.target
			t.Landed = true
		} else {
			t.Pos = t.Pos.Add(to.Norm().Scale(m.cfg.ThrowSpeed))
		}
		alive = append(alive, t)
	}
	m.treats = alive
}

// TryEat consumes the nearest landed treat within eating range of the cat.
// Returns the affinity points awarded, or 0 if nothing was in reach.
func (m *treatManager) TryEat(catPos catsim.Vec) int {
	bestIdx := -1
	bestDist := m.cfg.EatRange
	for i, t := range m.treats {
		if !t.Landed {
			continue
		}
		if d := t.Pos.Sub(catPos).Len(); d <= bestDist {
			bestIdx = i
			bestDist = d
		}
	}
	if bestIdx < 0 {
		return 0
	}

	kind := m.treats[bestIdx].Kind
	m.treats = append(m.treats[:bestIdx], m.treats[bestIdx+1:]...)
	return kind.Points(m.cfg)
}

// Treats returns the live treat list for rendering.
func (m *treatManager) Treats() []Treat {
	return m.treats
}
