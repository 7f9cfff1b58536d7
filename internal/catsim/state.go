package catsim

// State is the cat's behavior state. Exactly one state is active at a time;
// per-state data lives in the session next to the state tag rather than in
// parallel boolean flags.
type State int

const (
	// StateWandering is the default state: bounded movement with wall
	// bounce and obstacle push-out.
	StateWandering State = iota
	// StateIdle holds position for a randomized duration.
	StateIdle
	// StateSeekingHide walks toward a hide target inside an obstacle.
	StateSeekingHide
	// StateHiddenWaiting holds exactly on the hide target until the hide
	// session's remaining duration elapses.
	StateHiddenWaiting
	// StateFleeing runs off-screen at accelerated speed, ignoring bounds
	// and obstacles, then halts awaiting an external resume.
	StateFleeing
)

// String returns a human-readable name for the state.
func (s State) String() string {
	switch s {
	case StateWandering:
		return "wandering"
	case StateIdle:
		return "idle"
	case StateSeekingHide:
		return "seeking-hide"
	case StateHiddenWaiting:
		return "hidden"
	case StateFleeing:
		return "fleeing"
	default:
		return "unknown"
	}
}

// Agent is the moving subject: the cat's physical state as mutated by the
// behavior state machine and collision resolution each frame.
type Agent struct {
	Pos        Vec
	Vel        Vec
	Radius     float64
	Stage      Stage
	FacingLeft bool
}

// idleState is the per-state data for StateIdle.
type idleState struct {
	ticksLeft int
}

// hideState is the per-state data for StateSeekingHide / StateHiddenWaiting.
// ticksLeft covers travel plus wait; whatever remains on arrival is the
// dwell time.
type hideState struct {
	target    Vec
	ticksLeft int
}

// fleeState is the per-state data for StateFleeing.
type fleeState struct {
	dir       Vec
	offScreen bool
}
