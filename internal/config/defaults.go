package config

import (
	_ "embed"
)

//go:embed defaults/catnip.yaml
var defaultCatnipYAML []byte

// DefaultCatnipConfig returns the default cat game configuration.
// Durations assume the default 60 ticks per second.
func DefaultCatnipConfig() CatnipConfig {
	return CatnipConfig{
		Behavior: BehaviorConfig{
			NearDistance:   6,
			HideChance:     0.003,
			HideCooldown:   300, // 5s
			HideMinTicks:   240,
			HideMaxTicks:   600,
			MinDwellTicks:  120,
			IdleInterval:   480, // naps roughly every 8s of wandering
			IdleMinTicks:   90,
			IdleMaxTicks:   240,
			InsetMin:       0.5,
			InsetFraction:  0.15,
			WanderJitter:   0.25,
			FleeSpeedScale: 2.5,
			FleeMargin:     4,
		},
		Growth: GrowthConfig{
			YoungAt: 30,
			GrownAt: 80,
			Radius:  [3]float64{1.0, 1.5, 2.0},
			Speed:   [3]float64{0.12, 0.15, 0.18},
		},
		Bubble: BubbleConfig{
			Width:          14,
			Height:         3,
			Gap:            1,
			Margin:         1,
			NearDistance:   12,
			OverlapPenalty: 1000,
			SafetyMargin:   0.5,
			StickyBias:     2,
			Smoothing:      0.25,
		},
		Treats: TreatsConfig{
			ThrowSpeed:   0.8,
			EatRange:     1.5,
			PetRange:     3,
			PetPoints:    1,
			PetCooldown:  45,
			KibblePoints: 2,
			YarnPoints:   3,
			TunaPoints:   5,
		},
		Session: SessionConfig{
			CountdownTicks: 7200, // 2 minutes
			MinHideGoal:    2,
			GraceTicks:     1800,
		},
		Temperament: TemperamentConfig{
			Enabled:           true,
			InitialBoldness:   0.3,
			MaxAtAffinity:     100,
			HideChanceScale:   0.7,
			NearDistanceScale: 0.5,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "catnip", "catnip_zen":
		return defaultCatnipYAML
	default:
		return nil
	}
}
