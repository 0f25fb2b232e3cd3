// Package minimap implements the Minimap Overlay: a small top-down
// image of the grid, painted once at full size and then repainted
// incrementally as the player crosses cell boundaries.
package minimap

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Ghazaleh-ans/cub3d/render"
	"github.com/Ghazaleh-ans/cub3d/world"
)

// PlayerColor is the salient color the player's current cell is
// painted in, distinct from any wall or floor color.
var PlayerColor = world.PackRGB(0xff, 0, 0)

var wallColor = world.PackRGB(0, 0, 0)
var voidColor = world.PackRGB(0x60, 0x60, 0x60)

// Overlay holds the minimap's pristine per-cell base image (for
// repainting a vacated cell) and the live image currently shown.
type Overlay struct {
	Scale        int
	base, live   *render.Framebuffer
	prevX, prevY int
	hasPrev      bool
}

// New builds an Overlay for grid sized W*scale x H*scale pixels,
// coloring each cell once by its type: WALL->black, OPEN/SPAWN->the
// level's ceiling color, anything else (VOID)->gray.
func New(grid *world.Grid, colors world.ColorPair, scale int) *Overlay {
	w, h := grid.Width*scale, grid.Height*scale
	base := render.NewFramebuffer(w, h)
	ceiling := world.PackRGB(colors.Ceiling.R, colors.Ceiling.G, colors.Ceiling.B)

	for gy := 0; gy < grid.Height; gy++ {
		for gx := 0; gx < grid.Width; gx++ {
			c := cellColor(grid.Cells[gy][gx], ceiling)
			paintCell(base, gx, gy, scale, c)
		}
	}

	live := render.NewFramebuffer(w, h)
	copy(live.Pix, base.Pix)

	return &Overlay{Scale: scale, base: base, live: live}
}

func cellColor(c byte, ceiling uint32) uint32 {
	switch {
	case c == world.CellWall:
		return wallColor
	case c == world.CellOpen || world.IsSpawn(c):
		return ceiling
	default:
		return voidColor
	}
}

func paintCell(fb *render.Framebuffer, gx, gy, scale int, c uint32) {
	for y := gy * scale; y < (gy+1)*scale; y++ {
		for x := gx * scale; x < (gx+1)*scale; x++ {
			fb.Set(x, y, c)
		}
	}
}

// Update repaints the player's current and, if it changed, previous
// cell. It is a no-op for the cost of a full redraw -- only the two
// affected cells are ever touched.
func (o *Overlay) Update(pos mgl32.Vec2) {
	x := int(math.Floor(float64(pos.X())))
	y := int(math.Floor(float64(pos.Y())))

	if o.hasPrev && (x != o.prevX || y != o.prevY) {
		o.repaintFromBase(o.prevX, o.prevY)
	}
	paintCell(o.live, x, y, o.Scale, PlayerColor)

	o.prevX, o.prevY = x, y
	o.hasPrev = true
}

func (o *Overlay) repaintFromBase(gx, gy int) {
	for y := gy * o.Scale; y < (gy+1)*o.Scale; y++ {
		for x := gx * o.Scale; x < (gx+1)*o.Scale; x++ {
			r, g, b, _ := o.base.At(x, y)
			o.live.Set(x, y, world.PackRGB(r, g, b))
		}
	}
}

// Image returns the live framebuffer the Frame Driver blits each tick.
func (o *Overlay) Image() *render.Framebuffer { return o.live }
