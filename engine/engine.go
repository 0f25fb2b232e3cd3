// Package engine implements the Frame Driver: an ebiten.Game that
// polls input, applies kinematics, raycasts and renders every column,
// stamps the minimap, and blits the result each tick.
package engine

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Ghazaleh-ans/cub3d/config"
	"github.com/Ghazaleh-ans/cub3d/input"
	"github.com/Ghazaleh-ans/cub3d/minimap"
	"github.com/Ghazaleh-ans/cub3d/player"
	"github.com/Ghazaleh-ans/cub3d/raycaster"
	"github.com/Ghazaleh-ans/cub3d/render"
	"github.com/Ghazaleh-ans/cub3d/world"
)

// Game drives one running level: it owns the World, the per-tick
// framebuffer, the minimap overlay, and the kinematics/input mappers
// that feed them.
type Game struct {
	world *world.World
	fb    *render.Framebuffer
	mm    *minimap.Overlay

	kin    player.Kinematics
	mapper input.Mapper

	quit bool
}

// New builds a Game ready to run, sized per config, with the minimap
// stamped at the world's initial spawn position.
func New(w *world.World) *Game {
	g := &Game{
		world: w,
		fb:    render.NewFramebuffer(config.ViewportWidth, config.ViewportHeight),
		mm:    minimap.New(w.Grid, w.Colors, config.MinimapCellScale),
	}
	g.mm.Update(w.Player.Pos)
	return g
}

// Update polls input, applies translation/rotation for this tick, and
// checks the quit intent -- the only cancellation the core supports.
func (g *Game) Update() error {
	intent := g.mapper.Poll()
	if intent.Quit {
		g.quit = true
		return ebiten.Termination
	}

	dx, dy, theta := intentToMotion(g.world.Player, intent)
	if dx != 0 || dy != 0 {
		g.kin.Translate(g.world.Grid, &g.world.Player, dx, dy)
	}
	if theta != 0 {
		g.kin.Rotate(&g.world.Player, theta)
	}
	g.mm.Update(g.world.Player.Pos)

	return nil
}

// Draw fills the background, raycasts and renders every column,
// blits the framebuffer into screen, then stamps the minimap on top.
func (g *Game) Draw(screen *ebiten.Image) {
	render.FillBackground(g.fb, g.world.Colors)

	for sx := 0; sx < g.fb.Width; sx++ {
		hit := raycaster.Cast(g.world, sx, g.fb.Width)
		render.DrawColumn(g.fb, g.world, hit)
	}

	screen.WritePixels(g.fb.Pix)
	blitMinimap(screen, g.mm)
}

// Layout returns the fixed viewport resolution, forcing ebiten to
// scale the window rather than reflow the simulation's resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ViewportWidth, config.ViewportHeight
}

// blitMinimap copies the overlay's pixels onto screen's top-left
// corner at config's fixed offset, one pixel at a time -- the overlay
// is small (a few thousand pixels at most), so a per-pixel Set call is
// cheap enough not to warrant its own ebiten.Image/DrawImage pass.
func blitMinimap(screen *ebiten.Image, mm *minimap.Overlay) {
	img := mm.Image()
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			r, g, b, a := img.At(x, y)
			screen.Set(config.MinimapOffsetX+x, config.MinimapOffsetY+y,
				rgbaColor{r, g, b, a})
		}
	}
}
