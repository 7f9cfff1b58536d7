package config

import "math"

// TemperamentManager calculates the cat's effective shyness gates from its
// affinity. As the cat warms up to the player it hides less often and lets
// the pointer come closer.
type TemperamentManager struct {
	cfg             TemperamentConfig
	initialBoldness float64
}

// NewTemperamentManager creates a new temperament manager.
func NewTemperamentManager(cfg TemperamentConfig) *TemperamentManager {
	return &TemperamentManager{
		cfg:             cfg,
		initialBoldness: cfg.InitialBoldness,
	}
}

// SetInitialBoldness overrides the starting boldness (0.0 to 1.0).
func (t *TemperamentManager) SetInitialBoldness(level float64) {
	t.initialBoldness = clampF(level, 0.0, 1.0)
}

// SetEnabled enables or disables boldness progression.
func (t *TemperamentManager) SetEnabled(enabled bool) {
	t.cfg.Enabled = enabled
}

// IsEnabled returns whether boldness progression is active.
func (t *TemperamentManager) IsEnabled() bool {
	return t.cfg.Enabled
}

// Boldness returns the current boldness level (0.0 to 1.0) for an affinity.
func (t *TemperamentManager) Boldness(affinity int) float64 {
	if !t.cfg.Enabled {
		return t.initialBoldness
	}

	maxAt := float64(t.cfg.MaxAtAffinity)
	if maxAt <= 0 {
		maxAt = 1 // Prevent division by zero
	}
	progress := clampF(float64(affinity)/maxAt, 0.0, 1.0)

	// Interpolate from initial boldness to 1.0
	return t.initialBoldness + progress*(1.0-t.initialBoldness)
}

// HideChance returns the effective per-tick hide probability.
func (t *TemperamentManager) HideChance(base float64, affinity int) float64 {
	level := t.Boldness(affinity)
	return base * (1.0 - level*clampF(t.cfg.HideChanceScale, 0.0, 1.0))
}

// NearDistance returns the effective scare distance.
func (t *TemperamentManager) NearDistance(base float64, affinity int) float64 {
	level := t.Boldness(affinity)
	return base * (1.0 - level*clampF(t.cfg.NearDistanceScale, 0.0, 1.0))
}

// clampF restricts a float64 to [min, max].
func clampF(val, min, max float64) float64 {
	return math.Max(min, math.Min(max, val))
}
