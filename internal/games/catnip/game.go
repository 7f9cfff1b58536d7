// Package catnip implements a virtual cat pet simulation game.
// The player moves the mouse pointer around the room, pets the cat, and
// throws treats; the cat wanders, naps, hides behind furniture when spooked,
// and grows as its affinity for the player increases.
package catnip

import (
	"fmt"

	"github.com/okatenko/catnip/internal/catsim"
	"github.com/okatenko/catnip/internal/config"
	"github.com/okatenko/catnip/internal/core"
	"github.com/okatenko/catnip/internal/registry"
)

// Mode selects the game framing.
type Mode int

const (
	// ModeClassic plays against a countdown; when time runs out the cat
	// flees and the final affinity is the score.
	ModeClassic Mode = iota
	// ModeZen has no timer and no game over; quit whenever.
	ModeZen
)

// Visual characters for rendering
const (
	BodyChar    = '█'
	EarChar     = '▲'
	EyeChar     = '•'
	TailChar    = '~'
	FurnChar    = '░'
	PointerChar = '+'
)

// hudRows is the number of screen rows reserved above the play area.
const hudRows = 1

// purrDuration is how long the purr bubble lingers after a pet, in ticks.
const purrDuration = 90

// Package-level settings applied by the CLI before game creation.
var (
	configPath        string
	temperamentPreset string
)

// SetConfigPath sets a custom config file path for the next game instance.
func SetConfigPath(path string) {
	configPath = path
}

// SetTemperamentPreset sets the temperament preset for the next game instance.
func SetTemperamentPreset(preset string) {
	temperamentPreset = preset
}

// Game implements the cat simulation game logic.
type Game struct {
	mode    Mode
	config  core.RuntimeConfig
	gameCfg config.CatnipConfig

	sim         *catsim.Session
	bubble      *catsim.BubblePlacer
	treats      *treatManager
	temperament *config.TemperamentManager
	bounds      catsim.Rect

	affinity    int
	selected    TreatKind
	petCooldown int
	purrTicks   int
	countdown   int

	pointer      catsim.Vec
	pointerValid bool

	gameOver bool
	paused   bool
}

// New creates a new cat game instance for the given mode.
func New(mode Mode) *Game {
	return &Game{mode: mode}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.mode == ModeZen {
		return "catnip_zen"
	}
	return "catnip"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.mode == ModeZen {
		return "Catnip (Zen)"
	}
	return "Catnip"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.config = cfg

	gameCfg, err := config.LoadCatnip(configPath)
	if err != nil {
		gameCfg = config.DefaultCatnipConfig()
	}
	if temperamentPreset != "" {
		config.ApplyTemperamentPreset(&gameCfg, config.TemperamentPreset(temperamentPreset))
	}
	g.gameCfg = gameCfg

	g.bounds = catsim.Rect{
		X: 0,
		Y: hudRows,
		W: float64(cfg.ScreenW),
		H: float64(cfg.ScreenH - hudRows),
	}
	furniture := furnitureLayout(g.bounds)

	g.temperament = config.NewTemperamentManager(gameCfg.Temperament)
	g.bubble = catsim.NewBubblePlacer(catsim.BubbleParams{
		Width:          gameCfg.Bubble.Width,
		Height:         gameCfg.Bubble.Height,
		Gap:            gameCfg.Bubble.Gap,
		Margin:         gameCfg.Bubble.Margin,
		NearDistance:   gameCfg.Bubble.NearDistance,
		OverlapPenalty: gameCfg.Bubble.OverlapPenalty,
		SafetyMargin:   gameCfg.Bubble.SafetyMargin,
		StickyBias:     gameCfg.Bubble.StickyBias,
		Smoothing:      gameCfg.Bubble.Smoothing,
	})
	g.treats = newTreatManager(gameCfg.Treats)

	start := catsim.Vec{
		X: g.bounds.X + g.bounds.W*0.3,
		Y: g.bounds.Y + g.bounds.H*0.6,
	}
	g.sim = catsim.NewSession(g.simParams(), g.growthParams(), furniture, start, cfg.Seed)

	g.affinity = 0
	g.selected = TreatKibble
	g.petCooldown = 0
	g.purrTicks = 0
	g.pointerValid = false
	g.gameOver = false
	g.paused = false

	g.countdown = 0
	if g.mode == ModeClassic {
		g.countdown = gameCfg.Session.CountdownTicks
	}
}

// simParams maps the loaded config onto the simulation parameters.
func (g *Game) simParams() catsim.Params {
	b := g.gameCfg.Behavior
	s := g.gameCfg.Session
	return catsim.Params{
		Bounds:         g.bounds,
		NearDistance:   b.NearDistance,
		HideChance:     b.HideChance,
		HideCooldown:   b.HideCooldown,
		HideMinTicks:   b.HideMinTicks,
		HideMaxTicks:   b.HideMaxTicks,
		MinDwellTicks:  b.MinDwellTicks,
		IdleInterval:   b.IdleInterval,
		IdleMinTicks:   b.IdleMinTicks,
		IdleMaxTicks:   b.IdleMaxTicks,
		Inset:          catsim.InsetParams{Min: b.InsetMin, Fraction: b.InsetFraction},
		WanderJitter:   b.WanderJitter,
		FleeSpeedScale: b.FleeSpeedScale,
		FleeMargin:     b.FleeMargin,
		MinHideGoal:    s.MinHideGoal,
		GraceTicks:     s.GraceTicks,
	}
}

func (g *Game) growthParams() catsim.GrowthParams {
	gr := g.gameCfg.Growth
	return catsim.GrowthParams{
		YoungAt: gr.YoungAt,
		GrownAt: gr.GrownAt,
		Radius:  gr.Radius,
		Speed:   gr.Speed,
	}
}

// furnitureLayout places the room furniture, scaled to the play area.
// The layout is fixed so hide spots stay where the player learned them.
func furnitureLayout(bounds catsim.Rect) []catsim.Rect {
	couchW := bounds.W * 0.18
	if couchW < 8 {
		couchW = 8
	}
	tableW := bounds.W * 0.14
	if tableW < 7 {
		tableW = 7
	}

	return []catsim.Rect{
		// Couch along the lower left
		{X: bounds.X + bounds.W*0.08, Y: bounds.Bottom() - 6, W: couchW, H: 4},
		// Table mid-right
		{X: bounds.X + bounds.W*0.55, Y: bounds.Y + bounds.H*0.3, W: tableW, H: 5},
		// Cardboard box top-right; cats love boxes
		{X: bounds.X + bounds.W*0.82, Y: bounds.Y + 1, W: 7, H: 3},
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.gameOver {
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.petCooldown > 0 {
		g.petCooldown--
	}
	if g.purrTicks > 0 {
		g.purrTicks--
	}

	g.pointerValid = in.PointerValid
	if in.PointerValid {
		g.pointer = catsim.Vec{X: float64(in.PointerX), Y: float64(in.PointerY)}
	}

	if in.Has(core.ActionCycleItem) {
		g.selected = (g.selected + 1) % treatKindCount
	}
	if in.Has(core.ActionThrow) && g.pointerValid {
		origin := catsim.Vec{X: g.bounds.X + 2, Y: g.bounds.Bottom() - 1}
		g.treats.Throw(g.selected, origin, g.pointer, g.bounds)
	}
	g.treats.Update()

	agent := g.sim.Agent()
	if in.Has(core.ActionPet) && g.pointerValid && g.catReachable() && g.petCooldown == 0 {
		if g.pointer.Sub(agent.Pos).Len() <= g.gameCfg.Treats.PetRange {
			g.affinity += g.gameCfg.Treats.PetPoints
			g.petCooldown = g.gameCfg.Treats.PetCooldown
			g.purrTicks = purrDuration
		}
	}
	if g.catReachable() {
		g.affinity += g.treats.TryEat(agent.Pos)
	}

	// Feed affinity back into growth and temperament before the sim tick.
	g.sim.SetAffinity(g.affinity)
	b := g.gameCfg.Behavior
	g.sim.TuneGates(
		g.temperament.HideChance(b.HideChance, g.affinity),
		g.temperament.NearDistance(b.NearDistance, g.affinity),
	)

	g.sim.Step(g.pointer, g.pointerValid)

	if g.mode == ModeClassic {
		if g.countdown > 0 {
			g.countdown--
			if g.countdown == 0 {
				g.sim.TriggerFlee()
			}
		}
		if g.sim.AwaitingResume() {
			g.gameOver = true
		}
	}

	return core.StepResult{State: g.State()}
}

// catReachable reports whether the cat can currently be petted or fed.
func (g *Game) catReachable() bool {
	switch g.sim.State() {
	case catsim.StateHiddenWaiting, catsim.StateSeekingHide, catsim.StateFleeing:
		return false
	default:
		return true
	}
}

// bubbleText picks the speech bubble content for this frame.
// Empty string means no bubble.
func (g *Game) bubbleText() string {
	switch g.sim.State() {
	case catsim.StateHiddenWaiting, catsim.StateSeekingHide:
		return ""
	case catsim.StateFleeing:
		return "!!!"
	case catsim.StateIdle:
		return "zzz..."
	}
	if g.purrTicks > 0 {
		return "purr~"
	}
	// An occasional meow while wandering.
	if g.sim.ElapsedTicks()%600 < 90 {
		return "meow?"
	}
	return ""
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.drawHUD(dst)
	g.drawFurniture(dst)
	g.drawTreats(dst)

	agent := g.sim.Agent()
	if !g.sim.Hidden() {
		g.drawCat(dst, agent)
		g.drawBubble(dst, agent)
	} else {
		// Forget the anchor so the bubble snaps when the cat re-emerges
		// instead of gliding over from the old hiding spot.
		g.bubble.Reset()
	}

	if g.pointerValid {
		dst.SetCell(int(g.pointer.X), int(g.pointer.Y), PointerChar, core.ColorBrightWhite)
	}

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.gameOver {
		g.drawCenteredMessage(dst, "THE CAT RAN OFF",
			fmt.Sprintf("Affinity: %d  |  Press R to play again", g.affinity))
	}
}

// drawHUD renders the status strip on the reserved top row.
func (g *Game) drawHUD(dst *core.Screen) {
	agent := g.sim.Agent()
	hud := fmt.Sprintf("♥ %d  %s  hides %d  [%s]",
		g.affinity, agent.Stage, g.sim.HidesCompleted(), g.selected)
	dst.DrawTextColor(1, 0, hud, core.ColorBrightWhite)

	if g.mode == ModeClassic {
		rate := g.config.TickRate
		if rate <= 0 {
			rate = 60
		}
		secs := g.countdown / rate
		timer := fmt.Sprintf("%d:%02d ", secs/60, secs%60)
		dst.DrawTextColor(dst.Width()-len(timer)-1, 0, timer, core.ColorBrightYellow)
	}
}

// drawFurniture renders the room's obstacles.
func (g *Game) drawFurniture(dst *core.Screen) {
	for _, f := range g.sim.Obstacles() {
		r := core.NewRect(int(f.X), int(f.Y), int(f.W), int(f.H))
		dst.DrawRectColor(r, FurnChar, core.ColorGray)
		dst.DrawBoxColor(r, core.ColorGray)
	}
}

// drawTreats renders in-flight and landed treats.
func (g *Game) drawTreats(dst *core.Screen) {
	for _, t := range g.treats.Treats() {
		dst.SetCell(int(t.Pos.X), int(t.Pos.Y), t.Kind.Glyph(), t.Kind.Color())
	}
}

// drawCat renders the cat, sized by growth stage and flipped by facing.
func (g *Game) drawCat(dst *core.Screen, agent catsim.Agent) {
	w := core.Max(2, int(2*agent.Radius))
	h := core.Max(1, int(agent.Radius)+1)
	x := int(agent.Pos.X) - w/2
	y := int(agent.Pos.Y) - h/2

	// Body
	dst.DrawRectColor(core.NewRect(x, y, w, h), BodyChar, core.ColorOrange)

	// Ears above the body corners; skipped when the body is flush against
	// the top wall and the ear row would land on the HUD.
	if y-1 >= hudRows {
		dst.SetCell(x, y-1, EarChar, core.ColorOrange)
		dst.SetCell(x+w-1, y-1, EarChar, core.ColorOrange)
	}

	// Eye on the facing side, tail trailing behind
	if agent.FacingLeft {
		dst.SetCell(x, y, EyeChar, core.ColorBrightWhite)
		dst.SetCell(x+w, y+h-1, TailChar, core.ColorOrange)
	} else {
		dst.SetCell(x+w-1, y, EyeChar, core.ColorBrightWhite)
		dst.SetCell(x-1, y+h-1, TailChar, core.ColorOrange)
	}
}

// drawBubble renders the speech bubble near the cat, if any.
func (g *Game) drawBubble(dst *core.Screen, agent catsim.Agent) {
	text := g.bubbleText()
	if text == "" {
		return
	}

	w := float64(core.Max(2, int(2*agent.Radius)))
	h := float64(core.Max(1, int(agent.Radius)+1))
	subject := catsim.Rect{X: agent.Pos.X - w/2, Y: agent.Pos.Y - h/2, W: w, H: h}

	pointer := g.pointer
	if !g.pointerValid {
		pointer = catsim.Vec{X: -1000, Y: -1000}
	}
	_, pos := g.bubble.Place(subject, pointer, g.bounds)

	boxW := int(g.gameCfg.Bubble.Width)
	boxH := int(g.gameCfg.Bubble.Height)
	box := core.NewRect(int(pos.X), int(pos.Y), boxW, boxH)
	dst.DrawRect(box, ' ')
	dst.DrawBoxColor(box, core.ColorCyan)

	textX := box.X + (boxW-len(text))/2
	dst.DrawTextColor(textX, box.Y+boxH/2, text, core.ColorBrightCyan)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.sim == nil {
		return core.GameState{}
	}
	return core.GameState{
		Score:    g.affinity,
		Hides:    g.sim.HidesCompleted(),
		Stage:    int(g.sim.Agent().Stage),
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Register both modes with the registry
func init() {
	registry.Register("catnip", func() registry.Game {
		return New(ModeClassic)
	})
	registry.Register("catnip_zen", func() registry.Game {
		return New(ModeZen)
	})
}
