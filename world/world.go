// Package world holds the World Model: the immutable-after-assembly
// grid, decoded textures, background colors, and the one mutable
// PlayerState, all built once by New after validation succeeds.
package world

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Decoder is the abstract ImageDecoder service the World Model
// consumes to turn a texture path into a TexelGrid. Side must be a
// power of two and consistent across all four calls -- New enforces
// this after decoding.
type Decoder interface {
	Decode(path string) (TexelGrid, error)
}

// Descriptor is the subset of a validated level the World Model needs
// to assemble itself: the four texture paths, already-validated
// colors, and a grid that still contains its one spawn glyph.
type Descriptor struct {
	NorthPath, SouthPath, EastPath, WestPath string
	Colors                                   ColorPair
	Grid                                     *Grid
}

// World is the assembled, mostly-immutable level: Grid, Textures and
// Colors never change after New returns; Player is mutated in place
// by the player package during a tick's pre-render phase.
type World struct {
	Grid     *Grid
	Textures TextureSet
	Colors   ColorPair
	Player   PlayerState
}

// New decodes the four wall textures via dec, locates the grid's one
// spawn glyph, sets the initial PlayerState from it, and rewrites the
// spawn cell to CellOpen so the raycaster sees a uniform open interior.
func New(d Descriptor, dec Decoder, planeLength float32) (*World, error) {
	north, err := dec.Decode(d.NorthPath)
	if err != nil {
		return nil, fmt.Errorf("decoding north texture %q: %w", d.NorthPath, err)
	}
	south, err := dec.Decode(d.SouthPath)
	if err != nil {
		return nil, fmt.Errorf("decoding south texture %q: %w", d.SouthPath, err)
	}
	east, err := dec.Decode(d.EastPath)
	if err != nil {
		return nil, fmt.Errorf("decoding east texture %q: %w", d.EastPath, err)
	}
	west, err := dec.Decode(d.WestPath)
	if err != nil {
		return nil, fmt.Errorf("decoding west texture %q: %w", d.WestPath, err)
	}

	for _, t := range []TexelGrid{north, south, east, west} {
		if !IsPowerOfTwo(t.Side) {
			return nil, fmt.Errorf("texture side %d is not a power of two", t.Side)
		}
		if t.Side != north.Side {
			return nil, fmt.Errorf("texture sides differ: %d vs %d", t.Side, north.Side)
		}
	}

	grid := d.Grid.Clone()

	sx, sy, glyph, err := findSpawn(grid)
	if err != nil {
		return nil, err
	}
	grid.Set(sx, sy, CellOpen)

	dir, plane := SpawnDirPlane(glyph, planeLength)

	w := &World{
		Grid:     grid,
		Textures: TextureSet{North: north, South: south, East: east, West: west},
		Colors:   d.Colors,
	}
	w.Player.Pos = mgl32.Vec2{float32(sx) + 0.5, float32(sy) + 0.5}
	w.Player.Dir = dir
	w.Player.Plane = plane

	return w, nil
}

func findSpawn(g *Grid) (x, y int, glyph byte, err error) {
	for row := 0; row < g.Height; row++ {
		for col := 0; col < g.Width; col++ {
			c := g.Cells[row][col]
			if IsSpawn(c) {
				return col, row, c, nil
			}
		}
	}
	return 0, 0, 0, fmt.Errorf("no spawn cell found in validated grid")
}
