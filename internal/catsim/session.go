package catsim

import (
	"math"
	"math/rand"
)

// Params is the static behavior configuration supplied at session start.
// All durations are in simulation ticks.
type Params struct {
	// Bounds is the playable area (screen minus the reserved HUD strip).
	// The agent center stays within Bounds inset by its radius, except
	// while fleeing.
	Bounds Rect

	// NearDistance triggers a hide when the pointer comes this close.
	NearDistance float64
	// HideChance is the per-tick random hide probability.
	HideChance float64
	// HideCooldown gates a new hide session after the previous one ended.
	HideCooldown int
	// HideMinTicks/HideMaxTicks bound the randomized travel+wait duration.
	HideMinTicks int
	HideMaxTicks int
	// MinDwellTicks is the guaranteed wait time for forced hide sessions.
	MinDwellTicks int

	// IdleInterval is how often the cat pauses; IdleMinTicks/IdleMaxTicks
	// bound the randomized pause duration.
	IdleInterval int
	IdleMinTicks int
	IdleMaxTicks int

	// Inset controls hide target placement inside obstacles.
	Inset InsetParams

	// WanderJitter is the maximum per-tick heading change in radians.
	WanderJitter float64

	// FleeSpeedScale multiplies the stage speed while fleeing; FleeMargin
	// is how far past the bounds the agent must be to count as gone.
	FleeSpeedScale float64
	FleeMargin     float64

	// MinHideGoal and GraceTicks drive the forced-hide fallback: after
	// GraceTicks, if fewer than MinHideGoal hides completed and nothing
	// blocks, a hide session is forced regardless of the normal gates.
	MinHideGoal int
	GraceTicks  int
}

// Session owns the cat agent and steps its behavior once per frame. All
// state is mutated in place by the single game-loop goroutine; nothing here
// is safe for concurrent use, by design.
type Session struct {
	params    Params
	growth    GrowthParams
	agent     Agent
	obstacles []Rect
	rng       *rand.Rand

	state State
	idle  idleState
	hide  hideState
	flee  fleeState

	cooldown   int
	nextIdleAt int
	hidesDone  int
	tick       int
	affinity   int
}

// NewSession creates a session with the agent at start, stage 1, moving in a
// seeded random direction. The obstacle slice is not copied; it is static
// for the life of the session.
func NewSession(p Params, g GrowthParams, obstacles []Rect, start Vec, seed int64) *Session {
	s := &Session{
		params:     p,
		growth:     g,
		obstacles:  obstacles,
		rng:        rand.New(rand.NewSource(seed)),
		state:      StateWandering,
		nextIdleAt: p.IdleInterval,
	}
	s.agent = Agent{
		Pos:    start,
		Radius: g.RadiusFor(StageKitten),
		Stage:  StageKitten,
	}
	s.agent.Vel = s.randomDirection().Scale(s.speed())
	return s
}

// Agent returns a copy of the agent's current physical state.
func (s *Session) Agent() Agent {
	return s.agent
}

// State returns the active behavior state.
func (s *Session) State() State {
	return s.state
}

// Hidden reports whether the cat is fully occluded inside an obstacle.
func (s *Session) Hidden() bool {
	return s.state == StateHiddenWaiting
}

// HidesCompleted returns how many hide sessions actually reached the
// waiting sub-state. Aborted attempts do not count.
func (s *Session) HidesCompleted() int {
	return s.hidesDone
}

// Obstacles returns the static obstacle list.
func (s *Session) Obstacles() []Rect {
	return s.obstacles
}

// Bounds returns the playable area.
func (s *Session) Bounds() Rect {
	return s.params.Bounds
}

// ElapsedTicks returns the number of Step calls so far.
func (s *Session) ElapsedTicks() int {
	return s.tick
}

// SetAffinity feeds the externally tracked affinity score into growth.
// Stage, radius and speed only ever increase over a session, even if the
// supplied value regresses.
func (s *Session) SetAffinity(a int) {
	if a > s.affinity {
		s.affinity = a
	}
	if stage := s.growth.StageFor(s.affinity); stage > s.agent.Stage {
		s.agent.Stage = stage
		s.agent.Radius = s.growth.RadiusFor(stage)
	}
}

// TuneGates overrides the hide trigger gates, letting the application scale
// shyness as the cat warms up to the player.
func (s *Session) TuneGates(hideChance, nearDistance float64) {
	s.params.HideChance = hideChance
	s.params.NearDistance = nearDistance
}

// TriggerFlee sends the cat running for the nearest vertical screen edge at
// accelerated speed. Bounds clamping and obstacle collision are disabled
// until the agent is fully off-screen.
func (s *Session) TriggerFlee() {
	dir := Vec{1, 0}
	if s.agent.Pos.X < s.params.Bounds.Center().X {
		dir = Vec{-1, 0}
	}
	s.state = StateFleeing
	s.flee = fleeState{dir: dir}
	s.agent.Vel = dir.Scale(s.speed() * s.params.FleeSpeedScale)
	s.agent.FacingLeft = dir.X < 0
}

// AwaitingResume reports whether the agent has fled fully off-screen and the
// session is halted pending Resume.
func (s *Session) AwaitingResume() bool {
	return s.state == StateFleeing && s.flee.offScreen
}

// Resume places the agent back in play after a completed flee.
func (s *Session) Resume(at Vec) {
	s.state = StateWandering
	s.flee = fleeState{}
	s.agent.Pos = s.clampIntoBounds(at)
	s.agent.Vel = s.randomDirection().Scale(s.speed())
	s.cooldown = 0
	s.nextIdleAt = s.tick + s.params.IdleInterval
}

// Step advances the behavior machine by one frame. pointer is the repel
// point (mouse position in play-area coordinates); pointerValid is false
// when no pointer position is known this frame.
func (s *Session) Step(pointer Vec, pointerValid bool) {
	s.tick++
	if s.cooldown > 0 {
		s.cooldown--
	}

	switch s.state {
	case StateFleeing:
		s.stepFlee()
	case StateSeekingHide:
		s.stepSeek()
	case StateHiddenWaiting:
		s.stepHidden()
	case StateIdle:
		s.stepIdle(pointer, pointerValid)
	default:
		s.stepWander(pointer, pointerValid)
	}
}

// speed returns the current stage movement speed in cells per tick.
func (s *Session) speed() float64 {
	return s.growth.SpeedFor(s.agent.Stage)
}

// --- per-state stepping ---

func (s *Session) stepWander(pointer Vec, pointerValid bool) {
	if trigger, forced := s.hideTrigger(pointer, pointerValid); trigger {
		s.enterHide(pointer, pointerValid, forced)
		return
	}

	if s.tick >= s.nextIdleAt {
		s.enterIdle()
		return
	}

	// Heading jitter keeps the wander organic without ever changing speed.
	jitter := (s.rng.Float64() - 0.5) * 2 * s.params.WanderJitter
	s.agent.Vel = rotate(s.agent.Vel, jitter).Norm().Scale(s.speed())

	s.agent.Pos = s.agent.Pos.Add(s.agent.Vel)
	s.bounceOffWalls()
	s.resolveObstacles()
	s.updateFacing(s.agent.Vel)
}

func (s *Session) stepIdle(pointer Vec, pointerValid bool) {
	if trigger, forced := s.hideTrigger(pointer, pointerValid); trigger {
		s.enterHide(pointer, pointerValid, forced)
		return
	}

	s.idle.ticksLeft--
	if s.idle.ticksLeft <= 0 {
		s.state = StateWandering
		s.agent.Vel = s.randomDirection().Scale(s.speed())
		s.nextIdleAt = s.tick + s.params.IdleInterval
	}
}

func (s *Session) stepSeek() {
	to := s.hide.target.Sub(s.agent.Pos)
	dist := to.Len()
	step := s.speed()

	if dist <= step {
		// Snap exactly onto the target; the remaining duration is the dwell.
		s.agent.Pos = s.hide.target
		s.agent.Vel = Vec{}
		s.state = StateHiddenWaiting
		return
	}

	move := to.Scale(step / dist)
	s.agent.Pos = s.agent.Pos.Add(move)
	s.agent.Vel = move
	s.updateFacing(move)

	// No obstacle push-out here: interpenetrating the obstacle is the point.
	s.hide.ticksLeft--
	if s.hide.ticksLeft <= 0 {
		// Ran out of time before arriving; the attempt does not count.
		s.endHideSession()
	}
}

func (s *Session) stepHidden() {
	s.hide.ticksLeft--
	if s.hide.ticksLeft <= 0 {
		s.hidesDone++
		s.endHideSession()
	}
}

func (s *Session) stepFlee() {
	if s.flee.offScreen {
		return
	}
	s.agent.Pos = s.agent.Pos.Add(s.agent.Vel)

	b := s.params.Bounds
	m := s.params.FleeMargin
	r := s.agent.Radius
	gone := s.agent.Pos.X+r < b.X-m ||
		s.agent.Pos.X-r > b.Right()+m ||
		s.agent.Pos.Y+r < b.Y-m ||
		s.agent.Pos.Y-r > b.Bottom()+m
	if gone {
		s.flee.offScreen = true
		s.agent.Vel = Vec{}
	}
}

// --- transitions ---

// hideTrigger decides whether a hide session starts this frame. The forced
// fallback guarantees the hide path is exercised at least MinHideGoal times:
// after the grace period it ignores the probability/distance gates (but
// still respects the cooldown, which is the only thing that can block here).
func (s *Session) hideTrigger(pointer Vec, pointerValid bool) (trigger, forced bool) {
	if s.cooldown > 0 {
		return false, false
	}

	if s.tick > s.params.GraceTicks && s.hidesDone < s.params.MinHideGoal {
		return true, true
	}

	if !pointerValid || !s.params.Bounds.Contains(pointer) {
		return false, false
	}
	if pointer.Sub(s.agent.Pos).Len() < s.params.NearDistance {
		return true, false
	}
	if s.rng.Float64() < s.params.HideChance {
		return true, false
	}
	return false, false
}

func (s *Session) enterHide(pointer Vec, pointerValid bool, forced bool) {
	repel := pointer
	if !pointerValid {
		repel = s.params.Bounds.Center()
	}

	target := HideTarget(s.agent.Pos, s.agent.Radius, s.obstacles, repel, s.params.Bounds, s.params.Inset)

	var duration int
	if forced {
		// Budget enough time to both arrive and wait the minimum dwell.
		travel := int(math.Ceil(target.Sub(s.agent.Pos).Len()/s.speed())) + 1
		duration = travel + s.params.MinDwellTicks
	} else {
		duration = s.randRange(s.params.HideMinTicks, s.params.HideMaxTicks)
	}

	s.state = StateSeekingHide
	s.hide = hideState{target: target, ticksLeft: duration}
}

func (s *Session) endHideSession() {
	s.state = StateWandering
	s.hide = hideState{}
	s.cooldown = s.params.HideCooldown
	s.agent.Vel = s.randomDirection().Scale(s.speed())
	s.nextIdleAt = s.tick + s.params.IdleInterval
}

func (s *Session) enterIdle() {
	s.state = StateIdle
	s.idle = idleState{ticksLeft: s.randRange(s.params.IdleMinTicks, s.params.IdleMaxTicks)}
	s.agent.Vel = Vec{}

	// Make sure the nap spot is clear of furniture and inside bounds.
	s.resolveObstacles()
	s.agent.Pos = s.clampIntoBounds(s.agent.Pos)
}

// --- movement helpers ---

// bounceOffWalls clamps the agent into bounds and inverts the velocity
// component pointing outward. A velocity already pointing inward is left
// alone, so sitting exactly on a wall never causes a spurious bounce.
func (s *Session) bounceOffWalls() {
	b := s.params.Bounds
	r := s.agent.Radius

	minX, maxX := b.X+r, b.Right()-r
	minY, maxY := b.Y+r, b.Bottom()-r

	if s.agent.Pos.X <= minX {
		s.agent.Pos.X = minX
		if s.agent.Vel.X < 0 {
			s.agent.Vel.X = -s.agent.Vel.X
		}
	} else if s.agent.Pos.X >= maxX {
		s.agent.Pos.X = maxX
		if s.agent.Vel.X > 0 {
			s.agent.Vel.X = -s.agent.Vel.X
		}
	}

	if s.agent.Pos.Y <= minY {
		s.agent.Pos.Y = minY
		if s.agent.Vel.Y < 0 {
			s.agent.Vel.Y = -s.agent.Vel.Y
		}
	} else if s.agent.Pos.Y >= maxY {
		s.agent.Pos.Y = maxY
		if s.agent.Vel.Y > 0 {
			s.agent.Vel.Y = -s.agent.Vel.Y
		}
	}
}

// resolveObstacles pushes the agent out of the first overlapping obstacle
// and stops. Simultaneous overlap with two rectangles resolves only one per
// frame; with the obstacle layouts this game uses, the agent may in rare
// configurations tunnel between two touching rectangles. Accepted trade-off
// for one-pass resolution.
func (s *Session) resolveObstacles() {
	for _, o := range s.obstacles {
		pos, vel, resolved := ResolveCircleRect(s.agent.Pos, s.agent.Radius, o, s.agent.Vel)
		if resolved {
			s.agent.Pos = pos
			s.agent.Vel = vel
			break
		}
	}
}

func (s *Session) clampIntoBounds(p Vec) Vec {
	b := s.params.Bounds
	r := s.agent.Radius
	return Vec{
		X: clampF(p.X, b.X+r, b.Right()-r),
		Y: clampF(p.Y, b.Y+r, b.Bottom()-r),
	}
}

func (s *Session) updateFacing(v Vec) {
	const tiny = 1e-9
	if v.X < -tiny {
		s.agent.FacingLeft = true
	} else if v.X > tiny {
		s.agent.FacingLeft = false
	}
}

func (s *Session) randomDirection() Vec {
	a := s.rng.Float64() * 2 * math.Pi
	return Vec{math.Cos(a), math.Sin(a)}
}

func (s *Session) randRange(min, max int) int {
	if max <= min {
		return min
	}
	return min + s.rng.Intn(max-min+1)
}

func rotate(v Vec, angle float64) Vec {
	sin, cos := math.Sin(angle), math.Cos(angle)
	return Vec{v.X*cos - v.Y*sin, v.X*sin + v.Y*cos}
}
