package game

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"ballcollision/fps"
	"ballcollision/physics"
	"ballcollision/scenario"
)

// Game drives the simulation from ebiten's update loop
type Game struct {
	world    *physics.World
	renderer *Renderer
	config   scenario.Config

	// Frame rate smoothing for the window title
	fps *fps.Filter

	// Statistics of the most recent tick
	stats physics.TickStats

	// Captures profiles on frame rate drops; nil when disabled
	profiler *Profiler

	// Last update time for delta time calculation
	lastUpdateTime time.Time
}

// NewGame creates a game around an already populated world
func NewGame(config scenario.Config, world *physics.World) *Game {
	debugState := GetDebugState()
	debugState.ShowGrid = config.ShowGrid

	g := &Game{
		world:          world,
		renderer:       NewRenderer(),
		config:         config,
		fps:            fps.NewFilter(config.FPSWindow),
		lastUpdateTime: time.Now(),
	}
	if config.ProfileBelowFPS > 0 {
		g.profiler = NewProfiler(config.ProfileDir)
	}
	return g
}

// Update advances the simulation by the wall-clock time since the previous frame
func (g *Game) Update() error {
	// Calculate delta time
	now := time.Now()
	deltaTime := now.Sub(g.lastUpdateTime).Seconds()
	g.lastUpdateTime = now

	if deltaTime > 0 {
		g.fps.Push(1 / deltaTime)
	}

	// Clamp delta time to prevent large jumps (window drag, debugger pause)
	if deltaTime > g.config.MaxDeltaTime {
		deltaTime = g.config.MaxDeltaTime
	}

	// F1 toggles the partition grid, F2 the statistics overlay
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		debugState := GetDebugState()
		debugState.ShowGrid = !debugState.ShowGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		debugState := GetDebugState()
		debugState.ShowStats = !debugState.ShowStats
	}

	stats, err := g.world.Step(deltaTime)
	if err != nil {
		return fmt.Errorf("simulation tick failed: %w", err)
	}
	g.stats = stats

	average := g.fps.Average()
	ebiten.SetWindowTitle(fmt.Sprintf("FPS: %f", average))

	// Only judge the frame rate once the averaging window is full
	if g.profiler != nil && g.fps.Len() == g.config.FPSWindow && average < g.config.ProfileBelowFPS {
		reason := fmt.Sprintf("fps%.0f-bodies%d-pairs%d", average, len(g.world.Bodies()), stats.Pairs)
		if err := g.profiler.CaptureProfile(reason); err == nil {
			log.Printf("FPS drop detected (%.0f FPS), capturing profile %s", average, reason)
		}
	}
	return nil
}

// Draw renders the bodies and any enabled overlays
func (g *Game) Draw(screen *ebiten.Image) {
	g.renderer.Render(screen, g.world)

	debugState := GetDebugState()
	if debugState.ShowGrid {
		g.renderer.RenderGrid(screen, g.world)
	}
	if debugState.ShowStats {
		g.renderer.RenderStats(screen, g.stats, g.fps.Average())
	}
}

// Layout returns the fixed simulation size so the domain maps 1:1 to logical pixels
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.config.Width, g.config.Height
}
