package render

import (
	"math"

	"github.com/Ghazaleh-ans/cub3d/raycaster"
	"github.com/Ghazaleh-ans/cub3d/world"
)

// DrawColumn renders one vertical wall slice into fb from hit, reading
// wall texels from w.Textures and the player's current position from
// w.Player.
func DrawColumn(fb *Framebuffer, w *world.World, hit raycaster.HitRecord) {
	hs := fb.Height
	lineH := int(math.Round(float64(hs) / float64(hit.PerpDist)))
	if lineH < 1 {
		lineH = 1
	}

	drawStart := hs/2 - lineH/2
	if drawStart < 0 {
		drawStart = 0
	}
	drawEnd := hs/2 + lineH/2
	if drawEnd > hs-1 {
		drawEnd = hs - 1
	}

	face := selectFace(hit)
	tex := w.Textures.Face(face)
	t := tex.Side

	texX := wallTexX(w, hit, t)

	step := float64(t) / float64(lineH)
	texPos := (float64(drawStart) - float64(hs)/2 + float64(lineH)/2) * step

	for sy := drawStart; sy <= drawEnd; sy++ {
		texY := int(texPos) & (t - 1)
		texPos += step
		fb.Set(hit.SX, sy, tex.At(texX, texY))
	}
}

// selectFace maps a hit's side and ray direction sign to the cardinal
// wall face it struck.
func selectFace(hit raycaster.HitRecord) world.Face {
	switch {
	case hit.HitSide == raycaster.SideY && hit.RDir.Y() < 0:
		return world.FaceNorth
	case hit.HitSide == raycaster.SideY:
		return world.FaceSouth
	case hit.HitSide == raycaster.SideX && hit.RDir.X() < 0:
		return world.FaceWest
	default:
		return world.FaceEast
	}
}

// wallTexX computes the horizontal texel column a hit samples from,
// flipping it where needed so all four faces present a consistent
// handedness.
func wallTexX(w *world.World, hit raycaster.HitRecord, t int) int {
	var wallU float64
	if hit.HitSide == raycaster.SideX {
		wallU = float64(w.Player.Pos.Y()) + float64(hit.PerpDist)*float64(hit.RDir.Y())
	} else {
		wallU = float64(w.Player.Pos.X()) + float64(hit.PerpDist)*float64(hit.RDir.X())
	}
	wallU -= math.Floor(wallU)

	texX := int(wallU * float64(t))

	flip := (hit.HitSide == raycaster.SideX && hit.RDir.X() > 0) ||
		(hit.HitSide == raycaster.SideY && hit.RDir.Y() < 0)
	if flip {
		texX = t - 1 - texX
	}
	return texX
}
