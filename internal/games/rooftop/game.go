// Package rooftop implements a side-scrolling endless runner across
// procedurally generated building rooftops. The player auto-runs at a
// fixed screen position while the world scrolls underneath; the only
// verb is a variable-height jump.
package rooftop

import (
	"fmt"

	"github.com/vovakirdan/rooftop-run/internal/config"
	"github.com/vovakirdan/rooftop-run/internal/core"
	"github.com/vovakirdan/rooftop-run/internal/registry"
)

// Visual characters for rendering
const (
	RunnerHead = '◆'
	RunnerBody = '█'
	RoofChar   = '▀'
	WallChar   = '▓'
	WindowChar = '▪'
	TrailChar  = '·'
	DeathChar  = '✖'
)

// Game adapts the run controller to the platform's game interface. It
// translates platform actions into jump requests and quantizes the
// continuous world onto the cell buffer.
type Game struct {
	run     *Run
	runtime core.RuntimeConfig
	cfg     config.RooftopConfig
	paused  bool

	// listener survives Reset, which rebuilds the run.
	listener CueListener
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new rooftop runner game instance.
func New() *Game {
	return &Game{}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "rooftop"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rooftop Run"
}

// SetCueListener forwards simulation cues (jump, land, death) to the
// given listener. Safe to call at any time, including before Reset.
func (g *Game) SetCueListener(l CueListener) {
	g.listener = l
	if g.run != nil {
		g.run.SetListener(l)
	}
}

var _ registry.Game = (*Game)(nil)

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadRooftop(configPath)
	if err != nil {
		cfg = config.DefaultRooftopConfig()
	}
	g.cfg = cfg

	// Rebuild the run so a new seed or viewport takes effect on restart.
	g.run = NewRun(cfg, runtime)
	g.run.SetListener(g.listener)
	g.run.Reset()
	g.paused = false
}

// Step advances the game by deltaTimeMs of wall time.
func (g *Game) Step(in core.InputFrame, deltaTimeMs float64) core.StepResult {
	if in.Has(core.ActionPause) && !g.run.Over() {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionJump) {
		g.run.RequestJump()
	}
	if in.Has(core.ActionJumpRelease) {
		g.run.ReleaseJump()
	}

	g.run.Tick(deltaTimeMs)
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.run.Score(),
		GameOver: g.run.Over(),
		Paused:   g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	snap := g.run.Snapshot()

	for _, p := range snap.Platforms {
		g.drawBuilding(dst, p)
	}
	g.drawTrail(dst, snap.Player.Trail)
	g.drawRunner(dst, snap)
	g.drawHUD(dst, snap)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
	if snap.Phase == PhaseGameOver {
		g.drawCenteredMessage(dst, "GAME OVER",
			fmt.Sprintf("Score: %d  |  Press R to restart", snap.Score))
	}
}

// cellX quantizes a world x-coordinate to a screen column.
func (g *Game) cellX(dst *core.Screen, wx float64) int {
	return int(wx / g.runtime.ViewportW * float64(dst.Width()))
}

// cellY quantizes a world y-coordinate to a screen row.
func (g *Game) cellY(dst *core.Screen, wy float64) int {
	return int(wy / g.runtime.ViewportH * float64(dst.Height()))
}

// drawBuilding renders one building: the rooftop line, the wall body,
// and a window pattern derived from the platform's style seed so the
// facade is stable from frame to frame.
func (g *Game) drawBuilding(dst *core.Screen, p PlatformSnapshot) {
	x0 := core.Max(g.cellX(dst, p.X), 0)
	x1 := core.Min(g.cellX(dst, p.X+p.Width), dst.Width())
	roofY := g.cellY(dst, p.Y)

	for x := x0; x < x1; x++ {
		dst.SetColored(x, roofY, RoofChar, core.ColorWhite)
		for y := roofY + 1; y < dst.Height(); y++ {
			if styleHash(p.Style, x-x0, y-roofY)%6 == 0 {
				dst.SetColored(x, y, WindowChar, core.ColorYellow)
			} else {
				dst.SetColored(x, y, WallChar, core.ColorDarkGray)
			}
		}
	}
}

// drawTrail renders the motion trail, oldest points dimmest.
func (g *Game) drawTrail(dst *core.Screen, trail []TrailPoint) {
	for i, tp := range trail {
		x := g.cellX(dst, tp.X)
		y := g.cellY(dst, tp.Y+g.cfg.Player.Height/2)
		c := core.ColorDarkGray
		if i >= len(trail)/2 {
			c = core.ColorGray
		}
		if dst.GetCell(x, y).Rune == ' ' {
			dst.SetColored(x, y, TrailChar, c)
		}
	}
}

// drawRunner renders the player as a two-row sprite, switching to a
// death marker while the death animation plays.
func (g *Game) drawRunner(dst *core.Screen, snap Snapshot) {
	p := snap.Player
	x := g.cellX(dst, p.X)
	y := g.cellY(dst, p.Y)

	if snap.Phase != PhaseRunning {
		dst.SetColored(x, y, DeathChar, core.ColorRed)
		dst.SetColored(x+1, y, DeathChar, core.ColorRed)
		return
	}

	w := core.Max(g.cellX(dst, p.X+p.Width)-x, 1)
	h := core.Max(g.cellY(dst, p.Y+p.Height)-y, 2)

	dst.SetColored(x+w/2, y, RunnerHead, core.ColorBrightCyan)
	for dy := 1; dy < h; dy++ {
		for dx := 0; dx < w; dx++ {
			dst.SetColored(x+dx, y+dy, RunnerBody, core.ColorCyan)
		}
	}
}

// drawHUD renders score and speed in the top row.
func (g *Game) drawHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", snap.Score))
	speedText := fmt.Sprintf(" Spd: %.1f ", snap.Speed)
	dst.DrawText(dst.Width()-len(speedText)-2, 0, speedText)
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// styleHash mixes a style seed with a facade cell position. The same
// seed and cell always hash to the same value, keeping windows fixed to
// their building as it scrolls.
func styleHash(seed uint64, x, y int) uint64 {
	h := seed ^ uint64(x)*0x9E3779B97F4A7C15 ^ uint64(y)*0xBF58476D1CE4E5B9
	h ^= h >> 31
	h *= 0x94D049BB133111EB
	h ^= h >> 27
	return h
}

// Register the game with the registry
func init() {
	registry.Register("rooftop", func() registry.Game {
		return New()
	})
}
