// Package config provides YAML-based game configuration loading and
// temperament management for the game.
package config

// CatnipConfig contains all configuration for the Catnip cat game.
type CatnipConfig struct {
	Behavior    BehaviorConfig    `yaml:"behavior"`
	Growth      GrowthConfig      `yaml:"growth"`
	Bubble      BubbleConfig      `yaml:"bubble"`
	Treats      TreatsConfig      `yaml:"treats"`
	Session     SessionConfig     `yaml:"session"`
	Temperament TemperamentConfig `yaml:"temperament"`
}

// BehaviorConfig tunes the cat's state machine. All durations are in
// simulation ticks at the configured tick rate (60/s by default).
type BehaviorConfig struct {
	NearDistance   float64 `yaml:"near_distance"`    // pointer distance that scares the cat into hiding
	HideChance     float64 `yaml:"hide_chance"`      // per-tick random hide probability
	HideCooldown   int     `yaml:"hide_cooldown"`    // ticks before the next hide can start
	HideMinTicks   int     `yaml:"hide_min_ticks"`   // randomized hide session duration bounds
	HideMaxTicks   int     `yaml:"hide_max_ticks"`
	MinDwellTicks  int     `yaml:"min_dwell_ticks"`  // guaranteed wait for forced hides
	IdleInterval   int     `yaml:"idle_interval"`    // ticks of wandering between naps
	IdleMinTicks   int     `yaml:"idle_min_ticks"`   // randomized nap duration bounds
	IdleMaxTicks   int     `yaml:"idle_max_ticks"`
	InsetMin       float64 `yaml:"inset_min"`        // hide target inset floor
	InsetFraction  float64 `yaml:"inset_fraction"`   // hide target inset as a fraction of obstacle size
	WanderJitter   float64 `yaml:"wander_jitter"`    // max per-tick heading change in radians
	FleeSpeedScale float64 `yaml:"flee_speed_scale"` // speed multiplier while fleeing
	FleeMargin     float64 `yaml:"flee_margin"`      // distance past the screen edge that counts as gone
}

// GrowthConfig maps affinity to the cat's three growth stages.
// Radius and speed are indexed kitten, young, grown.
type GrowthConfig struct {
	YoungAt int        `yaml:"young_at"`
	GrownAt int        `yaml:"grown_at"`
	Radius  [3]float64 `yaml:"radius"`
	Speed   [3]float64 `yaml:"speed"`
}

// BubbleConfig tunes the speech bubble placement scorer.
type BubbleConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	Gap            float64 `yaml:"gap"`
	Margin         float64 `yaml:"margin"`
	NearDistance   float64 `yaml:"near_distance"`
	OverlapPenalty float64 `yaml:"overlap_penalty"`
	SafetyMargin   float64 `yaml:"safety_margin"`
	StickyBias     float64 `yaml:"sticky_bias"`
	Smoothing      float64 `yaml:"smoothing"`
}

// TreatsConfig tunes petting and treat throwing.
type TreatsConfig struct {
	ThrowSpeed   float64 `yaml:"throw_speed"`   // cells per tick for a thrown treat
	EatRange     float64 `yaml:"eat_range"`     // distance at which the cat eats a landed treat
	PetRange     float64 `yaml:"pet_range"`     // pointer distance at which petting connects
	PetPoints    int     `yaml:"pet_points"`    // affinity per successful pet
	PetCooldown  int     `yaml:"pet_cooldown"`  // ticks between pets
	KibblePoints int     `yaml:"kibble_points"` // affinity per eaten treat, by kind
	YarnPoints   int     `yaml:"yarn_points"`
	TunaPoints   int     `yaml:"tuna_points"`
}

// SessionConfig tunes the game session framing.
type SessionConfig struct {
	CountdownTicks int `yaml:"countdown_ticks"` // classic mode length; 0 means endless
	MinHideGoal    int `yaml:"min_hide_goal"`   // guaranteed hide sessions per game
	GraceTicks     int `yaml:"grace_ticks"`     // ticks before the hide guarantee kicks in
}

// TemperamentConfig defines how the cat's shyness fades as affinity grows.
type TemperamentConfig struct {
	Enabled           bool    `yaml:"enabled"`
	InitialBoldness   float64 `yaml:"initial_boldness"`    // 0.0 = skittish, 1.0 = fearless
	MaxAtAffinity     int     `yaml:"max_at_affinity"`     // affinity at which boldness reaches 1.0
	HideChanceScale   float64 `yaml:"hide_chance_scale"`   // fraction of hide chance removed at full boldness
	NearDistanceScale float64 `yaml:"near_distance_scale"` // fraction of near distance removed at full boldness
}

// TemperamentPreset represents a named starting temperament.
type TemperamentPreset string

const (
	TemperamentShy    TemperamentPreset = "shy"
	TemperamentNormal TemperamentPreset = "normal"
	TemperamentBold   TemperamentPreset = "bold"
	TemperamentFixed  TemperamentPreset = "fixed"
)

// InitialBoldnessForPreset returns the initial_boldness for a preset.
func InitialBoldnessForPreset(preset TemperamentPreset) float64 {
	switch preset {
	case TemperamentShy:
		return 0.0
	case TemperamentNormal:
		return 0.3
	case TemperamentBold:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables boldness progression.
func IsFixedPreset(preset TemperamentPreset) bool {
	return preset == TemperamentFixed
}
