// Package player implements the Player Kinematics component: it
// translates and rotates a world.PlayerState in place, sliding along
// walls on collision and keeping dir/plane perpendicular under
// rotation.
package player

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Ghazaleh-ans/cub3d/world"
)

// Kinematics mutates a *world.PlayerState against a fixed grid. It
// holds no state of its own; every method takes the grid and state it
// operates on explicitly, so it is callable the same way from a tick
// loop or a table-driven test.
type Kinematics struct{}

// blocked reports whether the cell containing world-space point (a, b)
// is a wall, per grid.IsWall (out-of-bounds already counts as a wall).
func blocked(g *world.Grid, a, b float32) bool {
	return g.IsWall(int(math.Floor(float64(a))), int(math.Floor(float64(b))))
}

// Translate attempts to move state.Pos by (dx, dy), sliding along
// whichever axis isn't blocked and refusing corner-cutting when both
// individual axes are clear but the diagonal cell is a wall.
func (Kinematics) Translate(g *world.Grid, state *world.PlayerState, dx, dy float32) {
	if dx == 0 && dy == 0 {
		return
	}

	px, py := state.Pos.X(), state.Pos.Y()
	tx, ty := px+dx, py+dy

	bx := blocked(g, tx, py)
	by := blocked(g, px, ty)

	newX, newY := px, py

	switch {
	case dx != 0 && dy != 0:
		bd := blocked(g, tx, ty)
		if bd {
			if !bx {
				newX = tx
			} else if !by {
				newY = ty
			}
		} else {
			if !bx {
				newX = tx
			}
			if !by {
				newY = ty
			}
		}
	case dx != 0:
		if !bx {
			newX = tx
		}
	case dy != 0:
		if !by {
			newY = ty
		}
	}

	if blocked(g, newX, newY) {
		// Defense-in-depth: the moves above should never land inside a
		// wall, but a stale grid or a caller bypassing the checks above
		// must not be allowed to wedge the player into one.
		return
	}

	state.Pos = mgl32.Vec2{newX, newY}
}

// Rotate turns both dir and plane by theta radians, preserving the
// perpendicularity and lengths between them.
func (Kinematics) Rotate(state *world.PlayerState, theta float32) {
	cos := float32(math.Cos(float64(theta)))
	sin := float32(math.Sin(float64(theta)))

	dirX := state.Dir.X()
	state.Dir = mgl32.Vec2{
		dirX*cos - state.Dir.Y()*sin,
		dirX*sin + state.Dir.Y()*cos,
	}

	planeX := state.Plane.X()
	state.Plane = mgl32.Vec2{
		planeX*cos - state.Plane.Y()*sin,
		planeX*sin + state.Plane.Y()*cos,
	}
}
