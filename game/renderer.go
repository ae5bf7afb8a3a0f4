package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
	"gonum.org/v1/gonum/spatial/r2"

	"ballcollision/physics"
)

var (
	colorBody = color.RGBA{255, 255, 255, 255}
	colorFast = color.RGBA{255, 100, 0, 255}
	colorGrid = color.RGBA{0, 120, 255, 255}
	colorText = color.RGBA{0, 255, 0, 255}
)

// Renderer draws bodies and debug overlays
type Renderer struct {
	face text.Face
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	return &Renderer{
		face: text.NewGoXFace(basicfont.Face7x13),
	}
}

// Render draws every body as a filled circle centered on its position
func (r *Renderer) Render(screen *ebiten.Image, world *physics.World) {
	for _, b := range world.Bodies() {
		clr := colorBody
		if b.ID() == 0 {
			clr = colorFast
		}
		vector.DrawFilledCircle(screen, float32(b.X()), float32(b.Y()), float32(b.Radius()), clr, true)
	}
}

// RenderGrid outlines the partition cells
func (r *Renderer) RenderGrid(screen *ebiten.Image, world *physics.World) {
	for _, cell := range world.RegionBounds() {
		size := r2.Sub(cell.Max, cell.Min)
		vector.StrokeRect(screen,
			float32(cell.Min.X), float32(cell.Min.Y),
			float32(size.X), float32(size.Y),
			1, colorGrid, false)
	}
}

// RenderStats prints the last tick's statistics in the top-left corner
func (r *Renderer) RenderStats(screen *ebiten.Image, stats physics.TickStats, fps float64) {
	hud := fmt.Sprintf("FPS %.1f\nregions %d  assigned %d\nborder %d  found %d  pairs %d",
		fps, stats.Regions, stats.Assigned, stats.BorderHits, stats.Discovered, stats.Pairs)

	op := &text.DrawOptions{}
	op.GeoM.Translate(8, 8)
	op.ColorScale.ScaleWithColor(colorText)
	op.LineSpacing = 16
	text.Draw(screen, hud, r.face, op)
}
