// Package raycaster implements the DDA raycaster: for a given screen
// column it walks the grid one cell at a time along the ray until it
// hits a wall, and reports enough geometry for the column renderer to
// turn that hit into a textured vertical slice.
package raycaster

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Ghazaleh-ans/cub3d/world"
)

// Side identifies which axis the DDA loop last advanced on when it
// found a wall -- equivalently, whether the wall face is a
// north/south face (Y) or an east/west face (X).
type Side int

const (
	SideX Side = iota
	SideY
)

// HitRecord is everything the column renderer needs to turn one cast
// ray into a textured vertical slice.
type HitRecord struct {
	SX       int
	MX, MY   int
	HitSide  Side
	RDir     mgl32.Vec2
	PerpDist float32
}

// infOrInv returns |1/x|, treating division by zero as +Inf so a ray
// parallel to an axis never advances along it.
func infOrInv(x float32) float32 {
	if x == 0 {
		return float32(math.Inf(1))
	}
	return float32(math.Abs(float64(1 / x)))
}

// Cast walks the grid for screen column sx out of Ws total columns and
// returns the wall it hits. Termination is guaranteed by the grid's
// enclosure invariant: every open interior is walled off, so the DDA
// loop cannot walk off the grid without first finding a wall.
func Cast(w *world.World, sx, ws int) HitRecord {
	cx := 2*float32(sx)/float32(ws) - 1
	rdir := w.Player.Dir.Add(w.Player.Plane.Mul(cx))

	px, py := w.Player.Pos.X(), w.Player.Pos.Y()
	mx, my := int(math.Floor(float64(px))), int(math.Floor(float64(py)))

	ddx := infOrInv(rdir.X())
	ddy := infOrInv(rdir.Y())

	var stepX, stepY int
	var sideDistX, sideDistY float32

	if rdir.X() < 0 {
		stepX = -1
		sideDistX = (px - float32(mx)) * ddx
	} else {
		stepX = 1
		sideDistX = (float32(mx) + 1 - px) * ddx
	}
	if rdir.Y() < 0 {
		stepY = -1
		sideDistY = (py - float32(my)) * ddy
	} else {
		stepY = 1
		sideDistY = (float32(my) + 1 - py) * ddy
	}

	var hitSide Side
	for {
		if sideDistX < sideDistY {
			sideDistX += ddx
			mx += stepX
			hitSide = SideX
		} else {
			sideDistY += ddy
			my += stepY
			hitSide = SideY
		}
		if w.Grid.At(mx, my) == world.CellWall {
			break
		}
	}

	var perpDist float32
	if hitSide == SideX {
		perpDist = sideDistX - ddx
	} else {
		perpDist = sideDistY - ddy
	}

	return HitRecord{
		SX:       sx,
		MX:       mx,
		MY:       my,
		HitSide:  hitSide,
		RDir:     rdir,
		PerpDist: perpDist,
	}
}
