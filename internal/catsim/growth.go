package catsim

// Stage is the cat's growth stage, 1 (kitten) through 3 (grown).
// A session's stage never decreases.
type Stage int

const (
	StageKitten Stage = 1
	StageYoung  Stage = 2
	StageGrown  Stage = 3
)

// String returns a human-readable name for the stage.
func (s Stage) String() string {
	switch s {
	case StageKitten:
		return "kitten"
	case StageYoung:
		return "young"
	case StageGrown:
		return "grown"
	default:
		return "unknown"
	}
}

// GrowthParams maps affinity thresholds to per-stage size and speed.
type GrowthParams struct {
	// YoungAt and GrownAt are the affinity values at which the cat reaches
	// stage 2 and stage 3.
	YoungAt int
	GrownAt int

	// Radius and Speed are indexed by stage-1.
	Radius [3]float64
	Speed  [3]float64
}

// StageFor returns the growth stage for an affinity value.
func (g GrowthParams) StageFor(affinity int) Stage {
	switch {
	case affinity >= g.GrownAt:
		return StageGrown
	case affinity >= g.YoungAt:
		return StageYoung
	default:
		return StageKitten
	}
}

// RadiusFor returns the collision radius for a stage.
func (g GrowthParams) RadiusFor(s Stage) float64 {
	return g.Radius[stageIndex(s)]
}

// SpeedFor returns the movement speed (cells per tick) for a stage.
func (g GrowthParams) SpeedFor(s Stage) float64 {
	return g.Speed[stageIndex(s)]
}

func stageIndex(s Stage) int {
	if s < StageKitten {
		return 0
	}
	if s > StageGrown {
		return 2
	}
	return int(s) - 1
}
